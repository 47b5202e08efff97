package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid license API settings
	// (for example, a malformed base URL or a non-positive timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid env file settings
	// (for example, an empty directory or a file name containing a path separator).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSetupConfigs indicates pre-supplied answers that can never be
	// accepted (for example, a license key with surrounding whitespace only).
	ErrInvalidSetupConfigs = errors.New("invalid setup configuration")
)
