// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for the installer: environment files
// on the local file system.
//
// The central operation is [EnvFileStorage.Merge], which applies an ordered
// set of overrides onto an existing env file while preserving every other
// line (comments, blank lines, unknown variables) byte-for-byte.
package store

import (
	"context"

	"github.com/MKhiriev/cursion-setup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/env_file_storage_mock.go -package=mock

// EnvFileStorage reads and patches KEY=VALUE environment files.
//
// Implementations hold no state between calls. Concurrent merges into the
// same file are not guarded; callers run at most one merge per file at a time.
type EnvFileStorage interface {
	// Read loads the file at path and classifies each line. "\r\n", "\n" and
	// a bare "\r" are line terminators and are kept as they are.
	// Returns [ErrFileNotFound], [ErrPermissionDenied] or [ErrIO] (wrapped).
	Read(ctx context.Context, path string) (models.EnvFile, error)

	// Merge rewrites every directive line whose key is in overrides to
	// KEY=value, appends the keys that never appeared in override order, and
	// writes the result back over the file. The file must already exist.
	// Atomic writes keep the file's mode and, when running as root, its owner.
	//
	// Returns [ErrInvalidOverrideKey] or [ErrInvalidOverrideValue] before the
	// file is touched if overrides are malformed, and [ErrFileNotFound],
	// [ErrPermissionDenied] or [ErrIO] for file system failures.
	Merge(ctx context.Context, path string, overrides models.OverrideSet) error

	// RenameIfExists moves oldPath to newPath when oldPath exists and newPath
	// does not. It never overwrites an existing file. Reports whether a rename
	// happened.
	RenameIfExists(ctx context.Context, oldPath, newPath string) (bool, error)
}
