package config_test

import (
	"strings"
	"testing"

	"github.com/arrmcp/arrmcp/internal/config"
)

func TestLoadFromReader_FullConfig(t *testing.T) {
	t.Parallel()
	yaml := `
server:
  host: 0.0.0.0
  port: 9000
  log_level: debug
provider:
  name: openai
  api_key: ollama
  base_url: http://host.docker.internal:1234/v1
  model: qwen/qwen3-coder-next
model:
  max_tokens: 16384
  temperature: 0.7
  parallel_tool_calls: true
  timeout: 32400
  tool_timeout: 32400
prompts:
  supervisor: "You run the show."
  agents:
    catalog: "You manage the catalog."
mcp:
  url: http://localhost:8000/mcp
`
	cfg, err := config.LoadFromReader(strings.NewReader(yaml))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Provider.Name != "openai" {
		t.Errorf("expected provider openai, got %q", cfg.Provider.Name)
	}
	if cfg.Model.MaxTokens == nil || *cfg.Model.MaxTokens != 16384 {
		t.Errorf("expected max_tokens 16384, got %v", cfg.Model.MaxTokens)
	}
	if cfg.Model.ParallelToolCalls == nil || !*cfg.Model.ParallelToolCalls {
		t.Error("expected parallel_tool_calls true")
	}
	if cfg.Prompts.Agents["catalog"] != "You manage the catalog." {
		t.Errorf("unexpected catalog prompt: %q", cfg.Prompts.Agents["catalog"])
	}
	if cfg.MCP.URL != "http://localhost:8000/mcp" {
		t.Errorf("unexpected mcp url: %q", cfg.MCP.URL)
	}
}

func TestLoadFromReader_UnknownFieldRejected(t *testing.T) {
	t.Parallel()
	yaml := `
server:
  host: 0.0.0.0
  listen_addr: ":9000"
`
	_, err := config.LoadFromReader(strings.NewReader(yaml))
	if err == nil {
		t.Fatal("expected error for unknown field, got nil")
	}
}

func TestLoadFromReader_EmptyConfigIsValid(t *testing.T) {
	t.Parallel()
	// All fields are optional overrides; an empty document decodes to EOF, so
	// use a minimal one-key document instead.
	yaml := `
server: {}
`
	cfg, err := config.LoadFromReader(strings.NewReader(yaml))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 0 {
		t.Errorf("expected zero port, got %d", cfg.Server.Port)
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()
	yaml := `
server:
  log_level: verbose
`
	_, err := config.LoadFromReader(strings.NewReader(yaml))
	if err == nil {
		t.Fatal("expected error for invalid log level, got nil")
	}
	if !strings.Contains(err.Error(), "log_level") {
		t.Errorf("error should mention log_level, got: %v", err)
	}
}

func TestValidate_PortOutOfRange(t *testing.T) {
	t.Parallel()
	yaml := `
server:
  port: 70000
`
	_, err := config.LoadFromReader(strings.NewReader(yaml))
	if err == nil {
		t.Fatal("expected error for out-of-range port, got nil")
	}
	if !strings.Contains(err.Error(), "port") {
		t.Errorf("error should mention port, got: %v", err)
	}
}

func TestValidate_TemperatureOutOfRange(t *testing.T) {
	t.Parallel()
	yaml := `
model:
  temperature: 3.5
`
	_, err := config.LoadFromReader(strings.NewReader(yaml))
	if err == nil {
		t.Fatal("expected error for out-of-range temperature, got nil")
	}
	if !strings.Contains(err.Error(), "temperature") {
		t.Errorf("error should mention temperature, got: %v", err)
	}
}

func TestValidate_NegativeMaxTokens(t *testing.T) {
	t.Parallel()
	yaml := `
model:
  max_tokens: -5
`
	_, err := config.LoadFromReader(strings.NewReader(yaml))
	if err == nil {
		t.Fatal("expected error for negative max_tokens, got nil")
	}
	if !strings.Contains(err.Error(), "max_tokens") {
		t.Errorf("error should mention max_tokens, got: %v", err)
	}
}

func TestValidate_MCPURLAndConfigExclusive(t *testing.T) {
	t.Parallel()
	yaml := `
mcp:
  url: http://localhost:8000/mcp
  config: /etc/arrmcp/mcp.json
`
	_, err := config.LoadFromReader(strings.NewReader(yaml))
	if err == nil {
		t.Fatal("expected error for url+config, got nil")
	}
	if !strings.Contains(err.Error(), "mutually exclusive") {
		t.Errorf("error should mention mutual exclusion, got: %v", err)
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	t.Parallel()
	yaml := `
server:
  log_level: loud
  port: -1
model:
  temperature: 9
`
	_, err := config.LoadFromReader(strings.NewReader(yaml))
	if err == nil {
		t.Fatal("expected errors, got nil")
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "log_level") {
		t.Errorf("error should mention log_level, got: %v", err)
	}
	if !strings.Contains(errStr, "port") {
		t.Errorf("error should mention port, got: %v", err)
	}
	if !strings.Contains(errStr, "temperature") {
		t.Errorf("error should mention temperature, got: %v", err)
	}
}

func TestValidate_UnknownProviderIsWarningOnly(t *testing.T) {
	t.Parallel()
	yaml := `
provider:
  name: fakecloud
`
	_, err := config.LoadFromReader(strings.NewReader(yaml))
	if err != nil {
		t.Fatalf("unknown provider should warn, not fail: %v", err)
	}
}

func TestValidProviderNames(t *testing.T) {
	t.Parallel()
	if len(config.ValidProviderNames) == 0 {
		t.Fatal("ValidProviderNames should not be empty")
	}
	found := false
	for _, n := range config.ValidProviderNames {
		if n == "openai" {
			found = true
			break
		}
	}
	if !found {
		t.Error("ValidProviderNames should contain \"openai\"")
	}
}
