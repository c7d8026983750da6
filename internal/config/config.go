// Package config provides the configuration schema, loader, and provider
// registry for the agent servers, plus the parser for MCP server config files.
package config

// LogLevel controls log verbosity for the agent server.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Config is the root configuration structure for an agent server.
// It is typically loaded from a YAML file using [Load] or [LoadFromReader].
// All fields are optional overrides: values left at their zero value (or nil)
// leave the environment-derived defaults untouched.
type Config struct {
	Server   ServerConfig  `yaml:"server"`
	Provider ProviderEntry `yaml:"provider"`
	Model    ModelSettings `yaml:"model"`
	Prompts  PromptsConfig `yaml:"prompts"`
	MCP      MCPConfig     `yaml:"mcp"`
}

// ServerConfig holds network and logging settings for the agent server.
type ServerConfig struct {
	// Host is the interface the server binds to (e.g., "0.0.0.0").
	Host string `yaml:"host"`

	// Port is the TCP port the server listens on.
	Port int `yaml:"port"`

	// LogLevel controls verbosity.
	LogLevel LogLevel `yaml:"log_level"`

	// Debug enables debug logging regardless of LogLevel.
	Debug bool `yaml:"debug"`
}

// ProviderEntry selects and configures the LLM backend.
// The Name field is used to look up the constructor in the [Registry].
type ProviderEntry struct {
	// Name selects the registered provider implementation (e.g., "openai", "ollama").
	Name string `yaml:"name"`

	// APIKey is the authentication key for the provider's API if any.
	APIKey string `yaml:"api_key"`

	// BaseURL overrides the provider's default API endpoint.
	// Leave empty to use the provider's built-in default.
	BaseURL string `yaml:"base_url"`

	// Model selects a specific model within the provider (e.g., "gpt-4o").
	Model string `yaml:"model"`

	// Options holds provider-specific configuration values not covered by the
	// standard fields above. Values may be strings, numbers, booleans, or nested maps.
	Options map[string]any `yaml:"options"`
}

// ModelSettings holds optional overrides for model invocation settings.
// Nil fields keep the environment-derived defaults.
type ModelSettings struct {
	// MaxTokens caps the completion tokens per model call.
	MaxTokens *int `yaml:"max_tokens"`

	// Temperature controls output randomness in the range [0.0, 2.0].
	Temperature *float64 `yaml:"temperature"`

	// ParallelToolCalls enables executing multiple tool calls concurrently.
	ParallelToolCalls *bool `yaml:"parallel_tool_calls"`

	// Timeout is the overall run deadline in seconds.
	Timeout *float64 `yaml:"timeout"`

	// ToolTimeout is the per-tool-call deadline in seconds.
	ToolTimeout *float64 `yaml:"tool_timeout"`
}

// PromptsConfig holds optional system prompt overrides.
type PromptsConfig struct {
	// Supervisor replaces the built-in supervisor system prompt.
	Supervisor string `yaml:"supervisor"`

	// Agents maps a resource-category tag (e.g., "catalog") to a replacement
	// sub-agent system prompt.
	Agents map[string]string `yaml:"agents"`
}

// MCPConfig selects where the agent finds its MCP tool server(s).
// URL and ConfigPath are mutually exclusive.
type MCPConfig struct {
	// URL is a single MCP endpoint address (e.g., "http://localhost:8000/mcp").
	URL string `yaml:"url"`

	// ConfigPath points at a JSONC file declaring multiple MCP servers
	// (see [LoadServers] for the format).
	ConfigPath string `yaml:"config"`
}
