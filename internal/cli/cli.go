// Package cli implements the command lines shared by the four arrmcp
// binaries: the MCP servers (chaptarr-mcp, radarr-mcp) run through
// [MCPMain], the agent servers (chaptarr-agent, radarr-agent) through
// [AgentMain]. Each main is a thin wrapper passing its service table and
// os.Args; everything else — flags, env defaults, wiring, lifecycle — lives
// here once.
//
// Flag defaults come from the environment where the deployments have always
// set them (TRANSPORT, HOST, PORT, PROVIDER, MODEL_ID, …), so the precedence
// is flag > env > built-in. The agents additionally accept a YAML config
// file slotting between flags and env.
package cli

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/arrmcp/arrmcp/internal/config"
)

// getEnv returns the environment value for key, or def when unset or empty.
func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// getEnvInt returns the integer environment value for key, or def when the
// variable is unset or unparsable.
func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// getEnvBool returns the boolean environment value for key, or def when the
// variable is unset or unparsable.
func getEnvBool(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// splitList parses a comma-separated flag value into its non-empty items.
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// newLogger builds the process logger. Logs always go to stderr: on the MCP
// stdio transport, stdout belongs to the protocol.
func newLogger(level config.LogLevel) *slog.Logger {
	var lvl slog.Level
	switch level {
	case config.LogDebug:
		lvl = slog.LevelDebug
	case config.LogWarn:
		lvl = slog.LevelWarn
	case config.LogError:
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
