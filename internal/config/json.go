package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags. Durations
// are accepted as strings ("30s") or integer nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		LogFile string `json:"log_file"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		Files struct {
			EnvDir         string `json:"env_dir"`
			ClientFile     string `json:"client_file"`
			ServerFile     string `json:"server_file"`
			MCPFile        string `json:"mcp_file"`
			TemplateSuffix string `json:"template_suffix"`
			NonAtomic      bool   `json:"non_atomic"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Setup struct {
		LicenseKey    string `json:"license_key"`
		AdminEmail    string `json:"admin_email"`
		AdminPassword string `json:"admin_pass"`
		ServerDomain  string `json:"server_domain"`
		ClientDomain  string `json:"client_domain"`
		GPTKey        string `json:"gpt_key"`
		MCPDomain     string `json:"mcp_domain"`
		EnableMCP     bool   `json:"enable_mcp"`
	} `json:"setup,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	files := jsonCfg.Storage.Files
	setup := jsonCfg.Setup

	cfg := &StructuredConfig{
		App: App{
			LogFile: jsonCfg.App.LogFile,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			Files: Files{
				EnvDir:         files.EnvDir,
				ClientFile:     files.ClientFile,
				ServerFile:     files.ServerFile,
				MCPFile:        files.MCPFile,
				TemplateSuffix: files.TemplateSuffix,
				NonAtomic:      files.NonAtomic,
			},
		},
		Setup: Setup{
			LicenseKey:    setup.LicenseKey,
			AdminEmail:    setup.AdminEmail,
			AdminPassword: setup.AdminPassword,
			ServerDomain:  setup.ServerDomain,
			ClientDomain:  setup.ClientDomain,
			GPTKey:        setup.GPTKey,
			MCPDomain:     setup.MCPDomain,
			EnableMCP:     setup.EnableMCP,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
