package config

import (
	"errors"
	"flag"
	"net/url"
	"strings"
	"time"
)

// APIAddress holds a validated base URL of the Cursion API.
// It implements the flag.Value interface.
type APIAddress struct {
	Scheme string
	Host   string
}

// ParseFlags parses all configuration flags from args (without the program
// name). Flags left unset produce zero values so they never override other
// sources during the merge.
//
// Flags:
//
//	-api license API base URL in format scheme://host[:port]
//	-request-timeout license request timeout (e.g., "30s", "1m")
//	-env-dir directory containing the env files
//	-template-suffix suffix of template files renamed into place
//	-non-atomic overwrite env files in place
//	-log-file log file path
//	-c/-config json file path with configs
//	-license-key license key
//	-admin-email admin email
//	-admin-pass admin password
//	-server-domain API server domain
//	-client-domain web client domain
//	-gpt-key OpenAI API key
//	-mcp-domain MCP service domain
//	-mcp enable MCP service configuration
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("cursion-setup", flag.ContinueOnError)

	var apiAddress APIAddress
	var requestTimeout time.Duration
	var envDir, templateSuffix, logFile string
	var nonAtomic bool
	var jsonConfigPath string
	var setup Setup

	fs.Var(&apiAddress, "api", "License API base URL scheme://host[:port]")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "License request timeout (e.g., 30s, 1m)")
	fs.StringVar(&envDir, "env-dir", "", "Directory containing the env files")
	fs.StringVar(&templateSuffix, "template-suffix", "", "Suffix of env file templates (e.g., .example)")
	fs.BoolVar(&nonAtomic, "non-atomic", false, "Overwrite env files in place")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	fs.StringVar(&setup.LicenseKey, "license-key", "", "Cursion license key")
	fs.StringVar(&setup.AdminEmail, "admin-email", "", "Admin email")
	fs.StringVar(&setup.AdminPassword, "admin-pass", "", "Admin password")
	fs.StringVar(&setup.ServerDomain, "server-domain", "", "API server domain")
	fs.StringVar(&setup.ClientDomain, "client-domain", "", "Web client domain")
	fs.StringVar(&setup.GPTKey, "gpt-key", "", "OpenAI API key")
	fs.StringVar(&setup.MCPDomain, "mcp-domain", "", "MCP service domain")
	fs.BoolVar(&setup.EnableMCP, "mcp", false, "Configure the MCP service")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			Files: Files{
				EnvDir:         envDir,
				TemplateSuffix: templateSuffix,
				NonAtomic:      nonAtomic,
			},
		},
		Setup:        setup,
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the canonical scheme://host form of the address.
// If neither Scheme nor Host are set, it returns an empty string.
func (a *APIAddress) String() string {
	if a.Scheme == "" && a.Host == "" {
		return ""
	}

	return a.Scheme + "://" + a.Host
}

// Set parses s as an absolute http or https URL and populates the
// APIAddress. Paths, queries and fragments are rejected.
func (a *APIAddress) Set(s string) error {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return err
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("need address in a form `scheme://host[:port]`")
	}

	if u.Host == "" {
		return errors.New("address host is empty")
	}

	if strings.Trim(u.Path, "/") != "" || u.RawQuery != "" || u.Fragment != "" {
		return errors.New("address must not contain a path, query or fragment")
	}

	a.Scheme = u.Scheme
	a.Host = u.Host
	return nil
}
