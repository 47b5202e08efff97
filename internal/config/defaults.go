package config

import "time"

// Built-in defaults. They match the layout of a standard self-hosted Cursion
// deployment.
const (
	DefaultAPIAddress     = "https://api.cursion.dev"
	DefaultRequestTimeout = 30 * time.Second
	DefaultEnvDir         = "/home/cursion/selfhost/env"
	DefaultClientFile     = ".client.env"
	DefaultServerFile     = ".server.env"
	DefaultMCPFile        = ".mcp.env"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    DefaultAPIAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			Files: Files{
				EnvDir:     DefaultEnvDir,
				ClientFile: DefaultClientFile,
				ServerFile: DefaultServerFile,
				MCPFile:    DefaultMCPFile,
			},
		},
	}
}
