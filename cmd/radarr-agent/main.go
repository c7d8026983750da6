// Command radarr-agent serves the Radarr supervisor agent over A2A and AG-UI.
package main

import (
	"os"

	"github.com/arrmcp/arrmcp/internal/cli"
	"github.com/arrmcp/arrmcp/internal/endpoints"
)

func main() {
	// The two hand-written Radarr tools are not part of the endpoint table;
	// they belong to the catalog sub-agent.
	extraTags := map[string]string{
		"lookup_movie": "catalog",
		"add_movie":    "catalog",
	}
	os.Exit(cli.AgentMain(endpoints.Radarr, extraTags, os.Args[1:]))
}
