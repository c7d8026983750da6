// Command chaptarr-agent serves the Chaptarr supervisor agent over A2A and
// AG-UI.
package main

import (
	"os"

	"github.com/arrmcp/arrmcp/internal/cli"
	"github.com/arrmcp/arrmcp/internal/endpoints"
)

func main() {
	os.Exit(cli.AgentMain(endpoints.Chaptarr, nil, os.Args[1:]))
}
