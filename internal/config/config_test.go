package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arrmcp/arrmcp/internal/config"
	"github.com/arrmcp/arrmcp/pkg/provider/llm"
)

// ── helpers ──────────────────────────────────────────────────────────────────

const sampleYAML = `
server:
  host: 127.0.0.1
  port: 9100
  log_level: info

provider:
  name: openai
  api_key: sk-test
  model: gpt-4o

model:
  max_tokens: 4096
  temperature: 0.2

prompts:
  supervisor: Keep it short.

mcp:
  url: http://localhost:8000/mcp
`

// ── YAML loading ──────────────────────────────────────────────────────────────

func TestLoadFromReader_Valid(t *testing.T) {
	cfg, err := config.LoadFromReader(strings.NewReader(sampleYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host: got %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("server.port: got %d, want 9100", cfg.Server.Port)
	}
	if cfg.Server.LogLevel != config.LogInfo {
		t.Errorf("server.log_level: got %q, want %q", cfg.Server.LogLevel, config.LogInfo)
	}
	if cfg.Provider.Name != "openai" {
		t.Errorf("provider.name: got %q, want %q", cfg.Provider.Name, "openai")
	}
	if cfg.Provider.APIKey != "sk-test" {
		t.Errorf("provider.api_key: got %q", cfg.Provider.APIKey)
	}
	if cfg.Model.MaxTokens == nil || *cfg.Model.MaxTokens != 4096 {
		t.Errorf("model.max_tokens: got %v, want 4096", cfg.Model.MaxTokens)
	}
	if cfg.Model.Temperature == nil || *cfg.Model.Temperature != 0.2 {
		t.Errorf("model.temperature: got %v, want 0.2", cfg.Model.Temperature)
	}
	if cfg.Model.ParallelToolCalls != nil {
		t.Error("model.parallel_tool_calls should be nil when omitted")
	}
	if cfg.Prompts.Supervisor != "Keep it short." {
		t.Errorf("prompts.supervisor: got %q", cfg.Prompts.Supervisor)
	}
}

func TestLoadFromReader_EmptyIsValid(t *testing.T) {
	// An empty config should succeed (no required top-level fields).
	_, err := config.LoadFromReader(strings.NewReader("{}"))
	if err != nil {
		t.Fatalf("unexpected error for empty config: %v", err)
	}
}

// ── File loading ──────────────────────────────────────────────────────────────

func TestLoad_FromFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "agent.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MCP.URL != "http://localhost:8000/mcp" {
		t.Errorf("mcp.url: got %q", cfg.MCP.URL)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("server: [not: a: mapping"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := config.Load(path)
	if err == nil {
		t.Fatal("expected error for malformed YAML, got nil")
	}
}

// ── LogLevel ──────────────────────────────────────────────────────────────────

func TestLogLevel_IsValid(t *testing.T) {
	t.Parallel()
	valid := []config.LogLevel{config.LogDebug, config.LogInfo, config.LogWarn, config.LogError}
	for _, l := range valid {
		if !l.IsValid() {
			t.Errorf("%q should be valid", l)
		}
	}
	invalid := []config.LogLevel{"", "trace", "INFO", "warning"}
	for _, l := range invalid {
		if l.IsValid() {
			t.Errorf("%q should be invalid", l)
		}
	}
}

// ── Registry ──────────────────────────────────────────────────────────────────

func TestRegistry_CreateLLM_NotRegistered(t *testing.T) {
	t.Parallel()
	reg := config.NewRegistry()
	_, err := reg.CreateLLM(config.ProviderEntry{Name: "nonexistent"})
	if !errors.Is(err, config.ErrProviderNotRegistered) {
		t.Fatalf("expected ErrProviderNotRegistered, got %v", err)
	}
}

func TestRegistry_RegisterAndCreate(t *testing.T) {
	t.Parallel()
	reg := config.NewRegistry()
	want := &stubProvider{}
	reg.RegisterLLM("stub", func(e config.ProviderEntry) (llm.Provider, error) {
		return want, nil
	})
	got, err := reg.CreateLLM(config.ProviderEntry{Name: "stub"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Error("expected the registered stub instance")
	}
}

func TestRegistry_FactoryError(t *testing.T) {
	t.Parallel()
	reg := config.NewRegistry()
	reg.RegisterLLM("broken", func(e config.ProviderEntry) (llm.Provider, error) {
		return nil, errors.New("boom")
	})
	_, err := reg.CreateLLM(config.ProviderEntry{Name: "broken"})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected factory error, got %v", err)
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()
	reg := config.NewRegistry()
	first := &stubProvider{}
	second := &stubProvider{}
	reg.RegisterLLM("dup", func(e config.ProviderEntry) (llm.Provider, error) { return first, nil })
	reg.RegisterLLM("dup", func(e config.ProviderEntry) (llm.Provider, error) { return second, nil })
	got, err := reg.CreateLLM(config.ProviderEntry{Name: "dup"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != second {
		t.Error("later registration should win")
	}
}

func TestDefaultRegistry_KnownProviders(t *testing.T) {
	t.Parallel()
	reg := config.DefaultRegistry()

	// openai uses the native SDK path and needs an API key.
	p, err := reg.CreateLLM(config.ProviderEntry{Name: "openai", APIKey: "sk-test", Model: "gpt-4o"})
	if err != nil {
		t.Fatalf("openai: unexpected error: %v", err)
	}
	if p == nil {
		t.Fatal("openai: expected non-nil provider")
	}

	// ollama needs neither key nor base URL.
	p, err = reg.CreateLLM(config.ProviderEntry{Name: "ollama", Model: "llama3"})
	if err != nil {
		t.Fatalf("ollama: unexpected error: %v", err)
	}
	if p == nil {
		t.Fatal("ollama: expected non-nil provider")
	}

	// anthropic goes through the any-llm backend.
	p, err = reg.CreateLLM(config.ProviderEntry{Name: "anthropic", APIKey: "sk-ant-test", Model: "claude-3-5-sonnet-latest"})
	if err != nil {
		t.Fatalf("anthropic: unexpected error: %v", err)
	}
	if p == nil {
		t.Fatal("anthropic: expected non-nil provider")
	}
}

func TestDefaultRegistry_OpenAIMissingKey(t *testing.T) {
	t.Parallel()
	reg := config.DefaultRegistry()
	_, err := reg.CreateLLM(config.ProviderEntry{Name: "openai", Model: "gpt-4o"})
	if err == nil {
		t.Fatal("expected error for openai without api key")
	}
}

// stubProvider is a minimal llm.Provider for registry tests.
type stubProvider struct{}

func (s *stubProvider) StreamCompletion(ctx context.Context, req llm.CompletionRequest) (<-chan llm.Chunk, error) {
	ch := make(chan llm.Chunk)
	close(ch)
	return ch, nil
}

func (s *stubProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	return &llm.CompletionResponse{}, nil
}

func (s *stubProvider) Capabilities() llm.ModelCapabilities {
	return llm.ModelCapabilities{}
}
