// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/cursion-setup/internal/logger"
	"github.com/MKhiriev/cursion-setup/models"
)

// envFileStorage is the file-system implementation of [EnvFileStorage].
type envFileStorage struct {
	// atomic selects temp-file + rename writes. When false the file is
	// truncated and rewritten in place, so a concurrent reader may observe a
	// partially written file.
	atomic bool

	logger *logger.Logger
}

// EnvFileOption customises an [EnvFileStorage] created by [NewEnvFileStorage].
type EnvFileOption func(*envFileStorage)

// WithAtomicWrites toggles atomic (temp file + rename) writes. Enabled by
// default.
func WithAtomicWrites(enabled bool) EnvFileOption {
	return func(s *envFileStorage) {
		s.atomic = enabled
	}
}

// NewEnvFileStorage constructs an [EnvFileStorage] that writes atomically
// unless disabled with [WithAtomicWrites].
func NewEnvFileStorage(log *logger.Logger, opts ...EnvFileOption) EnvFileStorage {
	s := &envFileStorage{atomic: true, logger: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Read implements [EnvFileStorage].
func (s *envFileStorage) Read(ctx context.Context, path string) (models.EnvFile, error) {
	if err := ctx.Err(); err != nil {
		return models.EnvFile{}, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return models.EnvFile{}, mapFSError("read", path, err)
	}

	return models.EnvFile{Path: path, Lines: splitLines(string(content))}, nil
}

// Merge implements [EnvFileStorage].
func (s *envFileStorage) Merge(ctx context.Context, path string, overrides models.OverrideSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateOverrides(overrides); err != nil {
		return fmt.Errorf("merge %s: %w", path, err)
	}

	// Rename replaces a symlink instead of its target, so resolve it first.
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return mapFSError("resolve", path, err)
	}

	info, err := os.Stat(target)
	if err != nil {
		return mapFSError("stat", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrIO, path)
	}

	file, err := s.Read(ctx, target)
	if err != nil {
		return err
	}

	merged, updated, appended := mergeLines(file, overrides)

	if s.atomic {
		err = writeFileAtomic(target, merged.Bytes(), info)
	} else {
		err = writeFileInPlace(target, merged.Bytes(), info.Mode().Perm())
	}
	if err != nil {
		return err
	}

	s.logger.Debug().
		Str("path", path).
		Int("updated", updated).
		Int("appended", appended).
		Bool("atomic", s.atomic).
		Msg("env file merged")

	return nil
}

// RenameIfExists implements [EnvFileStorage].
func (s *envFileStorage) RenameIfExists(ctx context.Context, oldPath, newPath string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if _, err := os.Lstat(newPath); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, mapFSError("stat", newPath, err)
	}

	if _, err := os.Lstat(oldPath); errors.Is(err, fs.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, mapFSError("stat", oldPath, err)
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return false, mapFSError("rename", oldPath, err)
	}

	s.logger.Info().Str("from", oldPath).Str("to", newPath).Msg("env template renamed")
	return true, nil
}

// mergeLines applies overrides to file and returns the new content together
// with the number of rewritten and appended lines. It never drops a line.
func mergeLines(file models.EnvFile, overrides models.OverrideSet) (models.EnvFile, int, int) {
	out := models.EnvFile{
		Path:  file.Path,
		Lines: make([]models.EnvLine, 0, len(file.Lines)+overrides.Len()),
	}
	seen := make(map[string]struct{}, overrides.Len())
	updated := 0

	for _, line := range file.Lines {
		if !line.Directive {
			out.Lines = append(out.Lines, line)
			continue
		}

		value, ok := overrides.Get(line.Key)
		if !ok {
			out.Lines = append(out.Lines, line)
			continue
		}

		out.Lines = append(out.Lines, directive(line.Key, value))
		seen[line.Key] = struct{}{}
		updated++
	}

	appended := 0
	for _, pair := range overrides.Pairs() {
		if _, ok := seen[pair.Key]; ok {
			continue
		}
		if appended == 0 && len(out.Lines) > 0 {
			// An unterminated last line would fuse with the first appended one.
			last := &out.Lines[len(out.Lines)-1]
			if !last.Terminated() {
				*last = models.ParseEnvLine(last.Raw + "\n")
			}
		}
		out.Lines = append(out.Lines, directive(pair.Key, pair.Value))
		appended++
	}

	return out, updated, appended
}

func directive(key, value string) models.EnvLine {
	return models.EnvLine{Raw: key + "=" + value + "\n", Key: key, Directive: true}
}

// splitLines splits content into lines, each keeping its own terminator.
// "\r\n", "\n" and a bare "\r" all end a line.
func splitLines(content string) []models.EnvLine {
	var lines []models.EnvLine
	for content != "" {
		i := strings.IndexAny(content, "\r\n")
		if i < 0 {
			lines = append(lines, models.ParseEnvLine(content))
			break
		}

		end := i + 1
		if content[i] == '\r' && end < len(content) && content[end] == '\n' {
			end++
		}
		lines = append(lines, models.ParseEnvLine(content[:end]))
		content = content[end:]
	}
	return lines
}

func validateOverrides(overrides models.OverrideSet) error {
	for _, pair := range overrides.Pairs() {
		if pair.Key == "" || strings.ContainsAny(pair.Key, "=\r\n") {
			return fmt.Errorf("%w: %q", ErrInvalidOverrideKey, pair.Key)
		}
		if strings.ContainsAny(pair.Value, "\r\n") {
			return fmt.Errorf("%w: value of %s contains a line terminator", ErrInvalidOverrideValue, pair.Key)
		}
	}
	return nil
}

// writeFileAtomic writes data to a temporary file in the same directory and
// renames it over path, so readers see either the old or the new content.
// The temp file takes the mode and, where permitted, the owner recorded in
// info.
func writeFileAtomic(path string, data []byte, info fs.FileInfo) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return mapFSError("create temp for", path, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return mapFSError("write", tmpName, err)
	}
	if uid, gid, ok := fileOwner(info); ok {
		// Only root may hand a file to another user; otherwise keep ours.
		if err = tmp.Chown(uid, gid); err != nil && !errors.Is(err, fs.ErrPermission) {
			return mapFSError("chown", tmpName, err)
		}
	}
	if err = tmp.Chmod(info.Mode().Perm()); err != nil {
		return mapFSError("chmod", tmpName, err)
	}
	if err = tmp.Sync(); err != nil {
		return mapFSError("sync", tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		return mapFSError("close", tmpName, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return mapFSError("rename", path, err)
	}
	return nil
}

func writeFileInPlace(path string, data []byte, perm fs.FileMode) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		return mapFSError("write", path, err)
	}
	return nil
}
