package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// ServersFile is the parsed MCP servers config file. The file format follows
// the common mcpServers convention used by MCP clients:
//
//	{
//	  "mcpServers": {
//	    "radarr": {"url": "http://localhost:8000/mcp"},
//	    "local": {"command": "radarr-mcp", "args": ["-transport", "stdio"], "env": {"RADARR_URL": "..."}}
//	  }
//	}
//
// Comments and trailing commas are tolerated (JSONC).
type ServersFile struct {
	MCPServers map[string]ServerEntry `json:"mcpServers"`
}

// ServerEntry describes how to reach a single MCP server. Exactly one of
// Command (stdio subprocess) or URL (HTTP endpoint) must be set.
type ServerEntry struct {
	// Command is the executable launched for a stdio server.
	Command string `json:"command"`

	// Args are the arguments passed to Command.
	Args []string `json:"args"`

	// Env holds additional environment variables injected into the subprocess.
	Env map[string]string `json:"env"`

	// URL is the MCP endpoint address for an HTTP server.
	URL string `json:"url"`
}

// IsStdio reports whether the entry launches a subprocess rather than
// connecting to an HTTP endpoint.
func (e ServerEntry) IsStdio() bool {
	return e.Command != ""
}

// LoadServers reads the MCP servers config file at path. The file may contain
// comments and trailing commas; it is normalised with jsonc before decoding.
func LoadServers(path string) (*ServersFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read mcp servers file %q: %w", path, err)
	}
	f, err := ParseServers(data)
	if err != nil {
		return nil, fmt.Errorf("config: parse mcp servers file %q: %w", path, err)
	}
	return f, nil
}

// ParseServers decodes and validates an MCP servers config document.
func ParseServers(data []byte) (*ServersFile, error) {
	f := &ServersFile{}
	if err := json.Unmarshal(jsonc.ToJSON(data), f); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks every server entry declares exactly one connection mechanism.
func (f *ServersFile) Validate() error {
	if len(f.MCPServers) == 0 {
		return errors.New("mcpServers must declare at least one server")
	}
	var errs []error
	for name, entry := range f.MCPServers {
		if entry.Command != "" && entry.URL != "" {
			errs = append(errs, fmt.Errorf("mcpServers.%s: command and url are mutually exclusive", name))
		}
		if entry.Command == "" && entry.URL == "" {
			errs = append(errs, fmt.Errorf("mcpServers.%s: either command or url is required", name))
		}
		if entry.Command == "" && (len(entry.Args) > 0 || len(entry.Env) > 0) {
			errs = append(errs, fmt.Errorf("mcpServers.%s: args/env are only valid with command", name))
		}
	}
	return errors.Join(errs...)
}
