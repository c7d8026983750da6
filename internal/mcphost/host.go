// Package mcphost connects an agent to its MCP tool servers.
//
// It wraps the official MCP Go SDK (github.com/modelcontextprotocol/go-sdk)
// client: one Host manages sessions to any number of servers (stdio
// subprocesses or HTTP endpoints), merges their tool catalogues, and routes
// tool calls to the owning session.
//
// Typical usage:
//
//	h := mcphost.New("radarr-agent", version.Version)
//	if err := h.ConnectURL(ctx, "radarr", "http://localhost:8000/mcp"); err != nil {
//	    ...
//	}
//	defer h.Close()
//
//	tools, err := h.Tools(ctx)
//	text, isErr, err := h.CallTool(ctx, "get_movie", map[string]any{"id": 42})
package mcphost

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"sort"
	"strings"
	"sync"

	"github.com/antzucaro/matchr"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/arrmcp/arrmcp/internal/config"
	"github.com/arrmcp/arrmcp/pkg/provider/llm"
)

// suggestThreshold is the maximum edit distance for "did you mean" hints.
const suggestThreshold = 3

// Host manages client sessions to one or more MCP servers.
//
// The zero value is NOT usable; create instances with [New].
// All methods are safe for concurrent use.
type Host struct {
	mu       sync.RWMutex
	sessions map[string]*mcpsdk.ClientSession // key: server name
	routes   map[string]string                // key: tool name → server name

	// client is reused across all server connections. The official SDK allows
	// a single Client to manage multiple sessions concurrently.
	client *mcpsdk.Client

	// httpClient, when set, is used for all HTTP transports. nil means the
	// SDK default (http.DefaultClient).
	httpClient *http.Client
}

// Option customizes a Host created by [New].
type Option func(*Host)

// WithHTTPClient makes the Host dial HTTP MCP endpoints with the given
// client, e.g. one whose TLS verification is disabled for self-signed
// development servers.
func WithHTTPClient(c *http.Client) Option {
	return func(h *Host) { h.httpClient = c }
}

// New creates a ready-to-use Host identifying itself to servers with the
// given client name and version.
func New(name, version string, opts ...Option) *Host {
	client := mcpsdk.NewClient(
		&mcpsdk.Implementation{Name: name, Version: version},
		nil,
	)
	h := &Host{
		sessions: make(map[string]*mcpsdk.ClientSession),
		routes:   make(map[string]string),
		client:   client,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Connect establishes a session to a single MCP server over the given
// transport and stores it under name. If a server with the same name is
// already connected, the old session is closed and replaced.
func (h *Host) Connect(ctx context.Context, name string, transport mcpsdk.Transport) error {
	if name == "" {
		return fmt.Errorf("mcphost: server name must not be empty")
	}

	session, err := h.client.Connect(ctx, transport, nil)
	if err != nil {
		return fmt.Errorf("mcphost: connect to server %q: %w", name, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if old, ok := h.sessions[name]; ok {
		_ = old.Close()
		for tool, srv := range h.routes {
			if srv == name {
				delete(h.routes, tool)
			}
		}
	}
	h.sessions[name] = session
	return nil
}

// ConnectURL connects to an MCP server over HTTP. Endpoints whose URL
// contains "sse" use the SSE client transport; anything else uses
// streamable HTTP.
func (h *Host) ConnectURL(ctx context.Context, name, url string) error {
	if url == "" {
		return fmt.Errorf("mcphost: server %q requires a non-empty URL", name)
	}
	return h.Connect(ctx, name, httpTransport(url, h.httpClient))
}

// ConnectConfig connects to every server declared in an MCP servers config
// file (see [config.LoadServers]). Servers are connected in name order; the
// first failure aborts and is returned.
func (h *Host) ConnectConfig(ctx context.Context, f *config.ServersFile) error {
	names := make([]string, 0, len(f.MCPServers))
	for name := range f.MCPServers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		entry := f.MCPServers[name]
		var transport mcpsdk.Transport
		if entry.IsStdio() {
			cmd := exec.CommandContext(ctx, entry.Command, entry.Args...)
			// Keep the parent environment; entry.Env adds or overrides.
			cmd.Env = os.Environ()
			for k, v := range entry.Env {
				cmd.Env = append(cmd.Env, k+"="+v)
			}
			transport = &mcpsdk.CommandTransport{Command: cmd}
		} else {
			transport = httpTransport(entry.URL, h.httpClient)
		}
		if err := h.Connect(ctx, name, transport); err != nil {
			return err
		}
	}
	return nil
}

// httpTransport picks the client transport for an HTTP MCP endpoint.
func httpTransport(url string, client *http.Client) mcpsdk.Transport {
	if strings.Contains(url, "sse") {
		return &mcpsdk.SSEClientTransport{Endpoint: url, HTTPClient: client}
	}
	return &mcpsdk.StreamableClientTransport{Endpoint: url, HTTPClient: client}
}

// Tools lists the tool definitions of every connected server, merged and
// sorted by name. Listing also refreshes the tool→server routing table used
// by [Host.CallTool], so servers that grow or shrink their catalogue are
// picked up on the next listing.
func (h *Host) Tools(ctx context.Context) ([]llm.ToolDefinition, error) {
	h.mu.RLock()
	sessions := make(map[string]*mcpsdk.ClientSession, len(h.sessions))
	for name, s := range h.sessions {
		sessions[name] = s
	}
	h.mu.RUnlock()

	var defs []llm.ToolDefinition
	routes := make(map[string]string)
	for serverName, session := range sessions {
		for tool, err := range session.Tools(ctx, nil) {
			if err != nil {
				return nil, fmt.Errorf("mcphost: list tools for server %q: %w", serverName, err)
			}
			defs = append(defs, llm.ToolDefinition{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  schemaToMap(tool.InputSchema),
			})
			routes[tool.Name] = serverName
		}
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })

	h.mu.Lock()
	h.routes = routes
	h.mu.Unlock()

	return defs, nil
}

// CallTool invokes the named tool and returns the concatenated text content
// of the result together with its error flag. A Go error is returned only
// for unknown tools and transport or protocol failures; application-level
// tool failures surface through the bool.
func (h *Host) CallTool(ctx context.Context, name string, args map[string]any) (string, bool, error) {
	session, ok := h.lookup(name)
	if !ok {
		// The routing table may be stale (or never populated); refresh once.
		if _, err := h.Tools(ctx); err == nil {
			session, ok = h.lookup(name)
		}
	}
	if !ok {
		return "", false, h.unknownTool(name)
	}

	result, err := session.CallTool(ctx, &mcpsdk.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		return "", false, fmt.Errorf("mcphost: call to tool %q failed: %w", name, err)
	}

	var sb strings.Builder
	for _, c := range result.Content {
		if tc, ok := c.(*mcpsdk.TextContent); ok {
			sb.WriteString(tc.Text)
		}
	}
	return sb.String(), result.IsError, nil
}

// lookup resolves a tool name to the session owning it.
func (h *Host) lookup(name string) (*mcpsdk.ClientSession, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	serverName, ok := h.routes[name]
	if !ok {
		return nil, false
	}
	session, ok := h.sessions[serverName]
	return session, ok
}

// unknownTool builds the not-found error, adding a "did you mean" hint when
// a known tool name is within edit distance 3.
func (h *Host) unknownTool(name string) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	best := ""
	bestDistance := suggestThreshold + 1
	for known := range h.routes {
		if d := matchr.Levenshtein(name, known); d < bestDistance {
			bestDistance = d
			best = known
		}
	}
	if best != "" {
		return fmt.Errorf("mcphost: tool %q not found; did you mean %q?", name, best)
	}
	return fmt.Errorf("mcphost: tool %q not found", name)
}

// Close shuts down all server sessions and clears the routing table.
// After Close returns the Host must not be used again.
func (h *Host) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var firstErr error
	for name, session := range h.sessions {
		if err := session.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("mcphost: close server %q: %w", name, err)
		}
		delete(h.sessions, name)
	}
	h.routes = make(map[string]string)
	return firstErr
}

// schemaToMap converts any schema value to a map[string]any for inclusion in
// an LLM tool definition.
func schemaToMap(schema any) map[string]any {
	if schema == nil {
		return map[string]any{"type": "object"}
	}
	if m, ok := schema.(map[string]any); ok {
		return m
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return map[string]any{"type": "object"}
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return map[string]any{"type": "object"}
	}
	return m
}
