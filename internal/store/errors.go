package store

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors returned by [EnvFileStorage]. Callers should use
// [errors.Is] to match against these values; the returned error also wraps
// the underlying *fs.PathError when there is one.
var (
	// ErrFileNotFound is returned when the target env file does not exist.
	// No file is created in that case.
	ErrFileNotFound = errors.New("env file not found")

	// ErrPermissionDenied is returned when the env file (or its directory)
	// cannot be read or written by the current user.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIO is returned for any other read or write failure (disk full,
	// path is a directory, interrupted rename, ...).
	ErrIO = errors.New("env file i/o error")

	// ErrInvalidOverrideKey is returned when an override key is empty or
	// contains '=' or a line terminator.
	ErrInvalidOverrideKey = errors.New("invalid override key")

	// ErrInvalidOverrideValue is returned when an override value contains a
	// line terminator, which would split it across lines.
	ErrInvalidOverrideValue = errors.New("invalid override value")
)

// mapFSError classifies a file system error into one of the sentinels above.
func mapFSError(op, path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s %s: %w", ErrFileNotFound, op, path, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s %s: %w", ErrPermissionDenied, op, path, err)
	default:
		return fmt.Errorf("%w: %s %s: %w", ErrIO, op, path, err)
	}
}
