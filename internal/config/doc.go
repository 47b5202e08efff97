// Package config provides configuration loading, merging, and validation
// facilities for the installer.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetStructuredConfig] for the raw merged view and
// [GetInstallerConfig] for the validated view consumed by the installer.
package config
