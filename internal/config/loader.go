package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// ValidProviderNames lists known LLM provider names.
// Used by [Validate] to warn about unrecognised provider names.
var ValidProviderNames = []string{
	"openai", "anthropic", "gemini", "ollama",
	"deepseek", "mistral", "groq", "llamacpp", "llamafile",
}

// Load reads the YAML configuration file at path and returns a validated [Config].
// It is a convenience wrapper around [LoadFromReader] and [Validate].
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r and validates the result.
// Useful in tests where configs are constructed from string literals.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	// Server
	if cfg.Server.LogLevel != "" && !cfg.Server.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("server.log_level %q is invalid; valid values: debug, info, warn, error", cfg.Server.LogLevel))
	}
	if cfg.Server.Port != 0 && (cfg.Server.Port < 1 || cfg.Server.Port > 65535) {
		errs = append(errs, fmt.Errorf("server.port %d is out of range [1, 65535]", cfg.Server.Port))
	}

	// Provider name validation — warn for unknown provider names.
	validateProviderName(cfg.Provider.Name)

	// Model settings
	if cfg.Model.MaxTokens != nil && *cfg.Model.MaxTokens <= 0 {
		errs = append(errs, fmt.Errorf("model.max_tokens %d must be positive", *cfg.Model.MaxTokens))
	}
	if cfg.Model.Temperature != nil {
		if *cfg.Model.Temperature < 0 || *cfg.Model.Temperature > 2 {
			errs = append(errs, fmt.Errorf("model.temperature %.2f is out of range [0.0, 2.0]", *cfg.Model.Temperature))
		}
	}
	if cfg.Model.Timeout != nil && *cfg.Model.Timeout < 0 {
		errs = append(errs, fmt.Errorf("model.timeout %.1f must not be negative", *cfg.Model.Timeout))
	}
	if cfg.Model.ToolTimeout != nil && *cfg.Model.ToolTimeout < 0 {
		errs = append(errs, fmt.Errorf("model.tool_timeout %.1f must not be negative", *cfg.Model.ToolTimeout))
	}

	// MCP selection
	if cfg.MCP.URL != "" && cfg.MCP.ConfigPath != "" {
		errs = append(errs, errors.New("mcp.url and mcp.config are mutually exclusive"))
	}

	return errors.Join(errs...)
}

// validateProviderName logs a warning if name is non-empty and not found in
// the [ValidProviderNames] list.
func validateProviderName(name string) {
	if name == "" {
		return
	}
	if slices.Contains(ValidProviderNames, name) {
		return
	}
	slog.Warn("unknown provider name, may be a typo or third-party provider",
		"name", name,
		"known", ValidProviderNames,
	)
}
