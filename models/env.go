// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// EnvLine is a single line of an environment file together with its original
// line terminator ("\n", "\r\n", a bare "\r" or empty for an unterminated
// last line).
//
// A line is a directive when it does not start with '#' and contains '='.
// Everything else (comments, blank lines, lines without '=') is opaque and
// must be written back byte-for-byte.
type EnvLine struct {
	// Raw is the exact text of the line, terminator included.
	Raw string

	// Key is the variable name of a directive line: the text before the first
	// '=' after trimming surrounding whitespace. Empty for opaque lines.
	Key string

	// Directive reports whether the line encodes a KEY=VALUE pair.
	Directive bool
}

// ParseEnvLine classifies raw (one line including its terminator).
func ParseEnvLine(raw string) EnvLine {
	if strings.HasPrefix(raw, "#") || !strings.Contains(raw, "=") {
		return EnvLine{Raw: raw}
	}

	key, _, _ := strings.Cut(strings.TrimSpace(raw), "=")
	return EnvLine{Raw: raw, Key: key, Directive: true}
}

// Terminated reports whether the line ends with a line terminator.
func (l EnvLine) Terminated() bool {
	return strings.HasSuffix(l.Raw, "\n") || strings.HasSuffix(l.Raw, "\r")
}

// Value returns the value part of a directive line without the terminator.
// Opaque lines have no value.
func (l EnvLine) Value() string {
	if !l.Directive {
		return ""
	}
	_, value, _ := strings.Cut(strings.TrimRight(l.Raw, "\r\n"), "=")
	return value
}

// EnvFile is the ordered content of an environment file identified by Path.
type EnvFile struct {
	Path  string
	Lines []EnvLine
}

// Keys returns the distinct directive keys of the file in order of first
// appearance.
func (f EnvFile) Keys() []string {
	seen := make(map[string]struct{}, len(f.Lines))
	keys := make([]string, 0, len(f.Lines))
	for _, line := range f.Lines {
		if !line.Directive {
			continue
		}
		if _, ok := seen[line.Key]; ok {
			continue
		}
		seen[line.Key] = struct{}{}
		keys = append(keys, line.Key)
	}
	return keys
}

// Lookup returns the value of the first directive line with the given key.
func (f EnvFile) Lookup(key string) (string, bool) {
	for _, line := range f.Lines {
		if line.Directive && line.Key == key {
			return line.Value(), true
		}
	}
	return "", false
}

// Bytes renders the file content exactly as it will be written to disk.
func (f EnvFile) Bytes() []byte {
	var b strings.Builder
	for _, line := range f.Lines {
		b.WriteString(line.Raw)
	}
	return []byte(b.String())
}
