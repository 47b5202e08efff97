// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.HTTPAddress != "" {
		var addr APIAddress
		if err := addr.Set(cfg.Adapter.HTTPAddress); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
		}
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	files := cfg.Storage.Files
	for _, name := range []string{files.ClientFile, files.ServerFile, files.MCPFile} {
		if name == "" {
			continue
		}
		if strings.ContainsRune(name, filepath.Separator) || name == "." || name == ".." {
			return fmt.Errorf("%w: env file name %q must not contain a path", ErrInvalidStorageConfigs, name)
		}
	}

	if strings.ContainsAny(files.TemplateSuffix, `/\`) {
		return fmt.Errorf("%w: template suffix %q must not contain a path", ErrInvalidStorageConfigs, files.TemplateSuffix)
	}

	return nil
}

func (cfg *InstallerConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	files := cfg.Storage.Files
	if files.EnvDir == "" || files.ClientFile == "" || files.ServerFile == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Setup.EnableMCP && files.MCPFile == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Setup.LicenseKey != "" && strings.TrimSpace(cfg.Setup.LicenseKey) == "" {
		return ErrInvalidSetupConfigs
	}

	return nil
}
