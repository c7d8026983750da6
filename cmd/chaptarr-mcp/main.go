// Command chaptarr-mcp exposes the Chaptarr REST API as MCP tools.
package main

import (
	"os"

	"github.com/arrmcp/arrmcp/internal/cli"
	"github.com/arrmcp/arrmcp/internal/endpoints"
)

func main() {
	os.Exit(cli.MCPMain(endpoints.Chaptarr, nil, os.Args[1:]))
}
