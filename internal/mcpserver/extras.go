package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// The Radarr server carries two hand-written workflow tools on top of the
// endpoint table — lookup_movie and add_movie — plus its two prompts. The
// Chaptarr server registers none of these.

// RegisterRadarrExtras adds the movie workflow tools and prompts. The tools
// run through b's dispatch chain like every table tool and are tagged
// catalog.
func RegisterRadarrExtras(s *Server, b *Binder) {
	b.Register(s.impl, &mcp.Tool{
		Name:        "lookup_movie",
		Description: "Search for a movie using the lookup endpoint.",
		InputSchema: extraToolSchema(b.Service, map[string]*jsonschema.Schema{
			"term": {Type: "string", Description: "Search term for the movie"},
		}, []string{"term"}),
	}, "catalog", func(ctx context.Context, call *Call) (*Result, error) {
		return b.lookupMovie(ctx, call.Args)
	})

	b.Register(s.impl, &mcp.Tool{
		Name:        "add_movie",
		Description: "Lookup a movie by term, pick the first result, and add it to Radarr.",
		InputSchema: extraToolSchema(b.Service, map[string]*jsonschema.Schema{
			"term":               {Type: "string", Description: "Search term for the movie"},
			"root_folder_path":   {Type: "string", Description: "Root folder path for the movie"},
			"quality_profile_id": {Type: "integer", Description: "Quality profile ID for the movie"},
			"monitored":          {Type: "boolean", Description: "Monitor the movie"},
			"search_for_movie":   {Type: "boolean", Description: "Search for movie immediately"},
		}, []string{"term", "root_folder_path", "quality_profile_id"}),
	}, "catalog", func(ctx context.Context, call *Call) (*Result, error) {
		return b.addMovie(ctx, call.Args)
	})

	s.impl.AddPrompt(&mcp.Prompt{
		Name:        "search_movies",
		Description: "Search for a movie to add or view.",
		Arguments: []*mcp.PromptArgument{
			{Name: "query", Required: true},
		},
	}, func(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		query := req.Params.Arguments["query"]
		return &mcp.GetPromptResult{
			Description: "Search for a movie to add or view.",
			Messages: []*mcp.PromptMessage{{
				Role:    "user",
				Content: &mcp.TextContent{Text: fmt.Sprintf("Please search for the movie '%s'", query)},
			}},
		}, nil
	})

	s.impl.AddPrompt(&mcp.Prompt{
		Name:        "calendar",
		Description: "Check the upcoming movie schedule.",
	}, func(_ context.Context, _ *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return &mcp.GetPromptResult{
			Description: "Check the upcoming movie schedule.",
			Messages: []*mcp.PromptMessage{{
				Role:    "user",
				Content: &mcp.TextContent{Text: "Please check the upcoming movie schedule."},
			}},
		}, nil
	})
}

// lookupMovie performs the movie/lookup search with the given term.
func (b *Binder) lookupMovie(ctx context.Context, raw json.RawMessage) (*Result, error) {
	args, err := decodeArgs(raw)
	if err != nil {
		return nil, err
	}
	conn := b.connection(args)

	term, _ := args["term"].(string)
	if term == "" {
		return nil, errors.New(`missing required parameter "term"`)
	}
	query := url.Values{}
	query.Set("term", term)

	data, err := b.newClient(ctx, conn).Do(ctx, http.MethodGet, "/api/v3/movie/lookup", query, nil)
	if err != nil {
		return nil, err
	}
	return &Result{Text: string(data)}, nil
}

// addMovie looks the term up, takes the first result, fills in the library
// placement fields and posts it to the movie collection.
func (b *Binder) addMovie(ctx context.Context, raw json.RawMessage) (*Result, error) {
	args, err := decodeArgs(raw)
	if err != nil {
		return nil, err
	}
	conn := b.connection(args)

	term, _ := args["term"].(string)
	if term == "" {
		return nil, errors.New(`missing required parameter "term"`)
	}
	rootFolder, _ := args["root_folder_path"].(string)
	if rootFolder == "" {
		return nil, errors.New(`missing required parameter "root_folder_path"`)
	}
	profileRaw, ok := args["quality_profile_id"]
	if !ok {
		return nil, errors.New(`missing required parameter "quality_profile_id"`)
	}
	profileID, ok := profileRaw.(float64)
	if !ok {
		return nil, fmt.Errorf("quality_profile_id must be an integer, got %T", profileRaw)
	}

	client := b.newClient(ctx, conn)
	query := url.Values{}
	query.Set("term", term)
	data, err := client.Do(ctx, http.MethodGet, "/api/v3/movie/lookup", query, nil)
	if err != nil {
		return nil, err
	}

	var results []map[string]any
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("unexpected lookup response: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no movie found for term %q", term)
	}

	movie := results[0]
	movie["rootFolderPath"] = rootFolder
	movie["qualityProfileId"] = int(profileID)
	movie["monitored"] = boolArg(args, "monitored", true)
	movie["addOptions"] = map[string]any{
		"searchForMovie": boolArg(args, "search_for_movie", true),
	}

	data, err = client.Do(ctx, http.MethodPost, "/api/v3/movie", nil, movie)
	if err != nil {
		return nil, err
	}
	return &Result{Text: string(data)}, nil
}

// boolArg reads an optional boolean argument with a default.
func boolArg(args map[string]any, name string, fallback bool) bool {
	if v, ok := args[name].(bool); ok {
		return v
	}
	return fallback
}
