// Command radarr-mcp exposes the Radarr REST API as MCP tools.
package main

import (
	"os"

	"github.com/arrmcp/arrmcp/internal/cli"
	"github.com/arrmcp/arrmcp/internal/endpoints"
	"github.com/arrmcp/arrmcp/internal/mcpserver"
)

func main() {
	os.Exit(cli.MCPMain(endpoints.Radarr, mcpserver.RegisterRadarrExtras, os.Args[1:]))
}
