package models

// VariableGroup names a set of variables written to one environment file.
type VariableGroup string

const (
	// ServerGroup holds the API server variables (.server.env).
	ServerGroup VariableGroup = "server"
	// ClientGroup holds the web client variables (.client.env).
	ClientGroup VariableGroup = "client"
	// MCPGroup holds the optional MCP service variables (.mcp.env).
	MCPGroup VariableGroup = "mcp"
)

// EnvTarget is an environment file the installer writes one variable group to.
type EnvTarget struct {
	Group VariableGroup
	// Path of the environment file. It must exist, or be produced by the
	// template rename pre-step.
	Path string
	// TemplatePath is renamed to Path before merging when Path does not exist.
	// Empty disables the pre-step.
	TemplatePath string
	// Optional targets are skipped when their group has no variables.
	Optional bool
}

// AppliedTarget reports what was written to a single target.
type AppliedTarget struct {
	Target EnvTarget
	// Renamed is true when the template was moved into place first.
	Renamed bool
	// Keys are the variable names written, in order.
	Keys []string
	// Preserved counts the keys already in the file that were left untouched.
	Preserved int
}
