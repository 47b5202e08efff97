// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"
)

// ErrUserQuit is returned when the user aborts a prompt with ctrl+c or esc.
var ErrUserQuit = errors.New("setup aborted by user")

// HumanizeError turns low-level network failures into a message suitable for
// the terminal. Other errors are returned verbatim.
func HumanizeError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "network is unavailable or the Cursion API cannot be reached"
	}

	return err.Error()
}
