package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arrmcp/arrmcp/internal/config"
)

func TestParseServers_URLEntry(t *testing.T) {
	t.Parallel()
	doc := `{
  "mcpServers": {
    "radarr": {"url": "http://localhost:8000/mcp"}
  }
}`
	f, err := config.ParseServers([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entry, ok := f.MCPServers["radarr"]
	if !ok {
		t.Fatal("expected radarr entry")
	}
	if entry.URL != "http://localhost:8000/mcp" {
		t.Errorf("unexpected url: %q", entry.URL)
	}
	if entry.IsStdio() {
		t.Error("url entry should not be stdio")
	}
}

func TestParseServers_StdioEntry(t *testing.T) {
	t.Parallel()
	doc := `{
  "mcpServers": {
    "local": {
      "command": "radarr-mcp",
      "args": ["-transport", "stdio"],
      "env": {"RADARR_URL": "http://localhost:7878"}
    }
  }
}`
	f, err := config.ParseServers([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entry := f.MCPServers["local"]
	if !entry.IsStdio() {
		t.Error("command entry should be stdio")
	}
	if len(entry.Args) != 2 || entry.Args[0] != "-transport" {
		t.Errorf("unexpected args: %v", entry.Args)
	}
	if entry.Env["RADARR_URL"] != "http://localhost:7878" {
		t.Errorf("unexpected env: %v", entry.Env)
	}
}

func TestParseServers_CommentsAndTrailingCommas(t *testing.T) {
	t.Parallel()
	doc := `{
  // the main MCP server
  "mcpServers": {
    "radarr": {
      "url": "http://localhost:8000/mcp", // streamable http
    },
  },
}`
	f, err := config.ParseServers([]byte(doc))
	if err != nil {
		t.Fatalf("jsonc document should parse: %v", err)
	}
	if len(f.MCPServers) != 1 {
		t.Fatalf("expected 1 server, got %d", len(f.MCPServers))
	}
}

func TestParseServers_BothCommandAndURL(t *testing.T) {
	t.Parallel()
	doc := `{"mcpServers": {"bad": {"command": "x", "url": "http://y"}}}`
	_, err := config.ParseServers([]byte(doc))
	if err == nil {
		t.Fatal("expected error for command+url, got nil")
	}
	if !strings.Contains(err.Error(), "mutually exclusive") {
		t.Errorf("error should mention mutual exclusion, got: %v", err)
	}
}

func TestParseServers_NeitherCommandNorURL(t *testing.T) {
	t.Parallel()
	doc := `{"mcpServers": {"bad": {}}}`
	_, err := config.ParseServers([]byte(doc))
	if err == nil {
		t.Fatal("expected error for empty entry, got nil")
	}
}

func TestParseServers_ArgsWithoutCommand(t *testing.T) {
	t.Parallel()
	doc := `{"mcpServers": {"bad": {"url": "http://y", "args": ["-x"]}}}`
	_, err := config.ParseServers([]byte(doc))
	if err == nil {
		t.Fatal("expected error for args without command, got nil")
	}
}

func TestParseServers_NoServers(t *testing.T) {
	t.Parallel()
	doc := `{"mcpServers": {}}`
	_, err := config.ParseServers([]byte(doc))
	if err == nil {
		t.Fatal("expected error for empty mcpServers, got nil")
	}
}

func TestLoadServers_FromFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "mcp.json")
	doc := `{"mcpServers": {"radarr": {"url": "http://localhost:8000/mcp"}}}`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	f, err := config.LoadServers(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.MCPServers) != 1 {
		t.Fatalf("expected 1 server, got %d", len(f.MCPServers))
	}
}

func TestLoadServers_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := config.LoadServers(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}
