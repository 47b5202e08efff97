// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// cursion-setup installer. It aggregates all sub-configurations and is
// populated by merging built-in defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the log destination.
	App App `envPrefix:"APP_"`

	// Adapter holds the license API endpoint and its request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the location of the environment files the installer
	// writes and how they are written.
	Storage Storage `envPrefix:"STORAGE_"`

	// Setup holds answers supplied up front. Every non-empty answer skips
	// the matching interactive prompt.
	Setup Setup `envPrefix:"SETUP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogFile is the path of the JSON log file. Empty selects a file next to
	// the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds settings of the outbound license API client.
type Adapter struct {
	// HTTPAddress is the base URL of the Cursion API
	// (e.g. "https://api.cursion.dev").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single license verification request
	// (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the persistence settings of the installer.
type Storage struct {
	// Files holds the environment file locations.
	Files Files `envPrefix:"FILES_"`
}

// Files holds the location of the deployment's environment files.
type Files struct {
	// EnvDir is the directory containing the env files.
	// Env: STORAGE_FILES_ENV_DIR
	EnvDir string `env:"ENV_DIR"`

	// ClientFile is the web client env file name inside EnvDir.
	// Env: STORAGE_FILES_CLIENT_FILE
	ClientFile string `env:"CLIENT_FILE"`

	// ServerFile is the API server env file name inside EnvDir.
	// Env: STORAGE_FILES_SERVER_FILE
	ServerFile string `env:"SERVER_FILE"`

	// MCPFile is the MCP service env file name inside EnvDir. Only written
	// when MCP is enabled.
	// Env: STORAGE_FILES_MCP_FILE
	MCPFile string `env:"MCP_FILE"`

	// TemplateSuffix, when set, names a template next to each env file
	// (e.g. ".server.env.example") that is renamed into place before merging
	// if the env file does not exist yet.
	// Env: STORAGE_FILES_TEMPLATE_SUFFIX
	TemplateSuffix string `env:"TEMPLATE_SUFFIX"`

	// NonAtomic disables temp-file + rename writes and overwrites env files
	// in place.
	// Env: STORAGE_FILES_NON_ATOMIC
	NonAtomic bool `env:"NON_ATOMIC"`
}

// Setup holds pre-supplied installer answers.
type Setup struct {
	// Env: SETUP_LICENSE_KEY
	LicenseKey string `env:"LICENSE_KEY"`
	// Env: SETUP_ADMIN_EMAIL
	AdminEmail string `env:"ADMIN_EMAIL"`
	// Env: SETUP_ADMIN_PASS
	AdminPassword string `env:"ADMIN_PASS"`
	// Env: SETUP_SERVER_DOMAIN
	ServerDomain string `env:"SERVER_DOMAIN"`
	// Env: SETUP_CLIENT_DOMAIN
	ClientDomain string `env:"CLIENT_DOMAIN"`
	// Env: SETUP_GPT_KEY
	GPTKey string `env:"GPT_KEY"`
	// Env: SETUP_MCP_DOMAIN
	MCPDomain string `env:"MCP_DOMAIN"`
	// EnableMCP turns on the MCP service prompt and the .mcp.env target.
	// A non-empty MCPDomain enables it as well.
	// Env: SETUP_ENABLE_MCP
	EnableMCP bool `env:"ENABLE_MCP"`
}

// GetStructuredConfig loads, merges, and validates the installer
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags (parsed from args)
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
