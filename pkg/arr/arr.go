// Package arr provides the thin HTTP client shared by the *arr MCP servers.
//
// Every tool call constructs a fresh [Client] from a [Connection] and issues
// exactly one request through it; there is no pooling, retrying, or caching
// across calls. Responses are passed through verbatim as raw JSON. The only
// error shape for upstream failures is [*StatusError], carrying the HTTP
// status code and response text.
//
// Example usage:
//
//	conn := arr.ConnectionFromEnv("RADARR")
//	client := arr.New(conn)
//	raw, err := client.Do(ctx, http.MethodGet, "/api/v3/movie", nil, nil)
package arr

import (
	"os"
	"strconv"
	"strings"
)

// Connection holds the three injected connection parameters every tool
// accepts: the service base URL, the API key sent as X-Api-Key, and whether
// to verify the upstream TLS certificate.
type Connection struct {
	BaseURL string
	APIKey  string
	Verify  bool
}

// ConnectionFromEnv builds a Connection from <prefix>_BASE_URL,
// <prefix>_API_KEY and <prefix>_VERIFY. Verify defaults to false when the
// variable is unset or unparseable, mirroring the servers' insecure-by-default
// posture toward self-signed *arr instances.
func ConnectionFromEnv(prefix string) Connection {
	return Connection{
		BaseURL: os.Getenv(prefix + "_BASE_URL"),
		APIKey:  os.Getenv(prefix + "_API_KEY"),
		Verify:  parseBool(os.Getenv(prefix + "_VERIFY")),
	}
}

// parseBool is a forgiving boolean reader for env values: "1", "t", "true",
// "y", "yes" and "on" (any case) are true, everything else is false.
func parseBool(s string) bool {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return false
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	switch s {
	case "y", "yes", "on":
		return true
	}
	return false
}
