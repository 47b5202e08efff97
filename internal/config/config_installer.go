package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/cursion-setup/models"
)

// InstallerApp holds process-level installer settings.
type InstallerApp struct {
	// LogFile is the JSON log destination. Empty selects the default file
	// next to the executable.
	LogFile string
}

// InstallerAdapter holds settings used by the license API client.
type InstallerAdapter struct {
	// HTTPAddress is the base URL of the Cursion API.
	HTTPAddress string
	// RequestTimeout is the timeout of a single license verification request.
	RequestTimeout time.Duration
}

// InstallerFiles describes where the deployment's env files live.
type InstallerFiles struct {
	EnvDir         string
	ClientFile     string
	ServerFile     string
	MCPFile        string
	TemplateSuffix string
	// NonAtomic disables temp-file + rename writes.
	NonAtomic bool
}

// InstallerStorage groups installer storage settings.
type InstallerStorage struct {
	Files InstallerFiles
}

// InstallerSetup holds answers supplied before the interactive flow starts.
// Empty fields are prompted for.
type InstallerSetup struct {
	LicenseKey    string
	AdminEmail    string
	AdminPassword string
	ServerDomain  string
	ClientDomain  string
	GPTKey        string
	MCPDomain     string
	EnableMCP     bool
}

// InstallerConfig is the top-level installer configuration assembled from
// [StructuredConfig].
type InstallerConfig struct {
	// App contains process-level settings.
	App InstallerApp
	// Adapter contains the license API address and timeout.
	Adapter InstallerAdapter
	// Storage contains env file locations.
	Storage InstallerStorage
	// Setup contains pre-supplied answers.
	Setup InstallerSetup
}

// GetInstallerConfig builds and validates the installer config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig] using args as the
// command line, maps the fields relevant to the installer, and validates the
// resulting [InstallerConfig].
func GetInstallerConfig(args []string) (*InstallerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newInstallerConfig(cfg)
}

func newInstallerConfig(cfg *StructuredConfig) (*InstallerConfig, error) {
	files := cfg.Storage.Files
	setup := cfg.Setup

	installerCfg := &InstallerConfig{
		App: InstallerApp{
			LogFile: cfg.App.LogFile,
		},
		Adapter: InstallerAdapter{
			HTTPAddress:    strings.TrimRight(cfg.Adapter.HTTPAddress, "/"),
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: InstallerStorage{
			Files: InstallerFiles{
				EnvDir:         files.EnvDir,
				ClientFile:     files.ClientFile,
				ServerFile:     files.ServerFile,
				MCPFile:        files.MCPFile,
				TemplateSuffix: files.TemplateSuffix,
				NonAtomic:      files.NonAtomic,
			},
		},
		Setup: InstallerSetup{
			LicenseKey:    setup.LicenseKey,
			AdminEmail:    setup.AdminEmail,
			AdminPassword: setup.AdminPassword,
			ServerDomain:  setup.ServerDomain,
			ClientDomain:  setup.ClientDomain,
			GPTKey:        setup.GPTKey,
			MCPDomain:     setup.MCPDomain,
			EnableMCP:     setup.EnableMCP || setup.MCPDomain != "",
		},
	}

	return installerCfg, installerCfg.validate()
}

// Targets returns the env files the installer writes, in write order:
// client, server and, when MCP is enabled, the MCP service file.
func (cfg *InstallerConfig) Targets() []models.EnvTarget {
	files := cfg.Storage.Files

	targets := []models.EnvTarget{
		files.target(models.ClientGroup, files.ClientFile, false),
		files.target(models.ServerGroup, files.ServerFile, false),
	}

	if cfg.Setup.EnableMCP {
		targets = append(targets, files.target(models.MCPGroup, files.MCPFile, true))
	}

	return targets
}

func (f InstallerFiles) target(group models.VariableGroup, name string, optional bool) models.EnvTarget {
	path := filepath.Join(f.EnvDir, name)

	var template string
	if f.TemplateSuffix != "" {
		template = path + f.TemplateSuffix
	}

	return models.EnvTarget{
		Group:        group,
		Path:         path,
		TemplatePath: template,
		Optional:     optional,
	}
}
