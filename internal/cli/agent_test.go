package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arrmcp/arrmcp/internal/agent"
	"github.com/arrmcp/arrmcp/internal/config"
	"github.com/arrmcp/arrmcp/internal/endpoints"
)

func TestAgentMainRejectsBadPort(t *testing.T) {
	if got := AgentMain(endpoints.Radarr, nil, []string{"-port", "-1"}); got != 1 {
		t.Errorf("exit code = %d, want 1", got)
	}
}

func TestAgentMainRejectsMissingConfig(t *testing.T) {
	args := []string{"-config", filepath.Join(t.TempDir(), "none.yaml")}
	if got := AgentMain(endpoints.Radarr, nil, args); got != 1 {
		t.Errorf("exit code = %d, want 1", got)
	}
}

func TestAgentMainRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.yaml")
	if err := os.WriteFile(path, []byte("bogus_field: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := AgentMain(endpoints.Radarr, nil, []string{"-config", path}); got != 1 {
		t.Errorf("exit code = %d, want 1", got)
	}
}

func TestAgentMainRejectsUnknownProvider(t *testing.T) {
	args := []string{"-chat", "-provider", "yakbrain"}
	if got := AgentMain(endpoints.Radarr, nil, args); got != 1 {
		t.Errorf("exit code = %d, want 1", got)
	}
}

func TestAgentMainRejectsUnreachableMCP(t *testing.T) {
	args := []string{"-chat", "-mcp-url", "http://127.0.0.1:1/mcp"}
	if got := AgentMain(endpoints.Radarr, nil, args); got != 1 {
		t.Errorf("exit code = %d, want 1", got)
	}
}

func TestAgentMainRejectsBadServersFile(t *testing.T) {
	args := []string{"-chat", "-mcp-config", filepath.Join(t.TempDir(), "servers.json")}
	if got := AgentMain(endpoints.Radarr, nil, args); got != 1 {
		t.Errorf("exit code = %d, want 1", got)
	}
}

func TestAgentMainRejectsUnknownFlag(t *testing.T) {
	if got := AgentMain(endpoints.Radarr, nil, []string{"-no-such-flag"}); got != 2 {
		t.Errorf("exit code = %d, want 2", got)
	}
}

// TestApplyConfigPrecedence verifies the merge rules: explicitly set flags
// win; otherwise the config file replaces the env-derived values, and nil
// model settings keep theirs.
func TestApplyConfigPrecedence(t *testing.T) {
	t.Setenv("SUPERVISOR_SYSTEM_PROMPT", "")
	t.Setenv("CATALOG_AGENT_PROMPT", "")

	maxTokens := 2048
	timeout := 90.0
	cfg := &config.Config{
		Server: config.ServerConfig{Host: "10.0.0.5", Port: 9100, LogLevel: config.LogWarn},
		Provider: config.ProviderEntry{
			Name:    "ollama",
			Model:   "llama3",
			BaseURL: "http://ollama:11434",
			APIKey:  "file-key",
		},
		Model: config.ModelSettings{MaxTokens: &maxTokens, Timeout: &timeout},
		Prompts: config.PromptsConfig{
			Supervisor: "custom supervisor prompt",
			Agents:     map[string]string{"catalog": "custom catalog prompt"},
		},
		MCP: config.MCPConfig{URL: "http://mcp:8000/mcp"},
	}

	opts := agentOptions{
		host:     "0.0.0.0",
		port:     9000,
		provider: "openai",
		modelID:  "flag-model",
		baseURL:  "http://flag:1234/v1",
		apiKey:   "flag-key",
		settings: agent.Settings{MaxTokens: 16384, Temperature: 0.7, ToolTimeout: time.Hour},
	}
	// -model-id and -api-key were given on the command line.
	set := map[string]bool{"model-id": true, "api-key": true}

	applyConfig(&opts, cfg, set)

	if opts.host != "10.0.0.5" || opts.port != 9100 {
		t.Errorf("server = %s:%d, want 10.0.0.5:9100", opts.host, opts.port)
	}
	if opts.logLevel != config.LogWarn {
		t.Errorf("logLevel = %q, want warn", opts.logLevel)
	}
	if opts.provider != "ollama" || opts.baseURL != "http://ollama:11434" {
		t.Errorf("provider = %s @ %s, want ollama @ http://ollama:11434", opts.provider, opts.baseURL)
	}
	if opts.modelID != "flag-model" {
		t.Errorf("modelID = %q, the explicit flag must win", opts.modelID)
	}
	if opts.apiKey != "flag-key" {
		t.Errorf("apiKey = %q, the explicit flag must win", opts.apiKey)
	}
	if opts.mcpURL != "http://mcp:8000/mcp" {
		t.Errorf("mcpURL = %q", opts.mcpURL)
	}

	if opts.settings.MaxTokens != 2048 {
		t.Errorf("MaxTokens = %d, want 2048", opts.settings.MaxTokens)
	}
	if opts.settings.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v, want 90s", opts.settings.Timeout)
	}
	if opts.settings.Temperature != 0.7 {
		t.Errorf("Temperature = %v, nil setting must keep its value", opts.settings.Temperature)
	}
	if opts.settings.ToolTimeout != time.Hour {
		t.Errorf("ToolTimeout = %v, nil setting must keep its value", opts.settings.ToolTimeout)
	}

	if got := os.Getenv("SUPERVISOR_SYSTEM_PROMPT"); got != "custom supervisor prompt" {
		t.Errorf("SUPERVISOR_SYSTEM_PROMPT = %q", got)
	}
	if got := os.Getenv("CATALOG_AGENT_PROMPT"); got != "custom catalog prompt" {
		t.Errorf("CATALOG_AGENT_PROMPT = %q", got)
	}
}
