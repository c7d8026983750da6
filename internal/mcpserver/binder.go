package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/arrmcp/arrmcp/internal/authn"
	"github.com/arrmcp/arrmcp/internal/endpoints"
	"github.com/arrmcp/arrmcp/pkg/arr"
)

// Binder turns a service's endpoint table into registered MCP tools. Each
// call routes its arguments onto the endpoint's path, query, and body,
// builds a fresh [arr.Client], and performs the upstream request through the
// dispatch chain.
type Binder struct {
	Service *endpoints.Service
	Chain   Middleware
	Logger  *slog.Logger

	// ForwardUserToken forwards the caller's bearer token upstream as an
	// Authorization header. Only set in delegation mode.
	ForwardUserToken bool

	// Breakers fails calls fast while an upstream instance is down. Nil
	// disables the guard, as in tests that drive the binder directly.
	Breakers *arr.BreakerGroup
}

// RegisterAll adds one tool per table endpoint to the MCP server. Tool names
// are the endpoint names; descriptions are the endpoint summaries.
func (b *Binder) RegisterAll(server *mcp.Server) {
	for _, ep := range b.Service.Endpoints {
		tool := &mcp.Tool{
			Name:        ep.Name,
			Description: ep.Summary,
			InputSchema: InputSchema(b.Service, ep),
		}
		b.Register(server, tool, ep.Tag, func(ctx context.Context, call *Call) (*Result, error) {
			return b.invoke(ctx, ep, call.Args)
		})
	}
}

// Register adds a single tool whose handler runs through the dispatch chain.
// The service slug is appended to the tool's category tag, the labelling the
// per-service servers have always used.
func (b *Binder) Register(server *mcp.Server, tool *mcp.Tool, tag string, h Handler) {
	tags := []string{tag, b.Service.Slug}
	if b.Chain != nil {
		h = b.Chain(h)
	}
	handler := h
	server.AddTool(tool, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := handler(ctx, &Call{Tool: tool.Name, Tags: tags, Args: req.Params.Arguments})
		if err != nil {
			// The error middleware normally converts failures; this keeps
			// the session alive when running with a bare chain.
			res = &Result{Text: err.Error(), IsError: true}
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: res.Text}},
			IsError: res.IsError,
		}, nil
	})
}

// invoke performs one table-driven upstream request.
func (b *Binder) invoke(ctx context.Context, ep endpoints.Endpoint, raw json.RawMessage) (*Result, error) {
	args, err := decodeArgs(raw)
	if err != nil {
		return nil, err
	}
	conn := b.connection(args)

	pathValues := make(map[string]string)
	query := url.Values{}
	var body any

	for _, p := range ep.Params {
		v, ok := args[p.Name]
		if !ok || v == nil {
			if p.Required {
				return nil, fmt.Errorf("missing required parameter %q", p.Name)
			}
			continue
		}
		switch p.In {
		case endpoints.InPath:
			s, err := scalarString(v)
			if err != nil {
				return nil, fmt.Errorf("parameter %q: %w", p.Name, err)
			}
			pathValues[p.Name] = url.PathEscape(s)
		case endpoints.InQuery:
			if items, ok := v.([]any); ok {
				for _, item := range items {
					s, err := scalarString(item)
					if err != nil {
						return nil, fmt.Errorf("parameter %q: %w", p.Name, err)
					}
					query.Add(p.Name, s)
				}
				continue
			}
			s, err := scalarString(v)
			if err != nil {
				return nil, fmt.Errorf("parameter %q: %w", p.Name, err)
			}
			query.Set(p.Name, s)
		case endpoints.InBody:
			body = v
		}
	}

	data, err := b.newClient(ctx, conn).Do(ctx, ep.Method, ep.FillPath(pathValues), query, body)
	if err != nil {
		return nil, err
	}
	return &Result{Text: string(data)}, nil
}

// decodeArgs parses raw tool arguments into a map. Absent arguments are an
// empty map, not an error.
func decodeArgs(raw json.RawMessage) (map[string]any, error) {
	args := make(map[string]any)
	if len(raw) == 0 {
		return args, nil
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("invalid tool arguments: %w", err)
	}
	return args, nil
}

// connection resolves the three injected overrides against the service's
// environment defaults and removes them from the argument map so parameter
// routing never sees them.
func (b *Binder) connection(args map[string]any) arr.Connection {
	conn := arr.ConnectionFromEnv(b.Service.EnvPrefix)
	baseURL, apiKey, verify := connectionArgNames(b.Service)
	if v, ok := args[baseURL].(string); ok && v != "" {
		conn.BaseURL = v
	}
	if v, ok := args[apiKey].(string); ok && v != "" {
		conn.APIKey = v
	}
	if v, ok := args[verify].(bool); ok {
		conn.Verify = v
	}
	delete(args, baseURL)
	delete(args, apiKey)
	delete(args, verify)
	return conn
}

// newClient builds the per-call upstream client. In delegation mode the
// caller's bearer token, when captured by the auth middleware, rides along
// on every upstream request.
func (b *Binder) newClient(ctx context.Context, conn arr.Connection) *arr.Client {
	var opts []arr.Option
	if b.ForwardUserToken {
		if tok, ok := authn.UserTokenFromContext(ctx); ok {
			opts = append(opts, arr.WithHeader("Authorization", "Bearer "+tok))
		}
	}
	if b.Breakers != nil {
		opts = append(opts, arr.WithBreaker(b.Breakers.For(conn.BaseURL)))
	}
	return arr.New(conn, opts...)
}

// scalarString renders a JSON scalar for use in a path segment or query
// value. JSON numbers arrive as float64; whole values print without a
// decimal point so integer IDs survive the round trip.
func scalarString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case json.Number:
		return x.String(), nil
	default:
		return "", fmt.Errorf("expected a scalar value, got %T", v)
	}
}
