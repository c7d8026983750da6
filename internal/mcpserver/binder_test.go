package mcpserver

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/arrmcp/arrmcp/internal/endpoints"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// arrRequest is one request captured by the fake upstream.
type arrRequest struct {
	Method string
	Path   string
	Query  url.Values
	APIKey string
	Auth   string
	Body   []byte
}

type arrResponse struct {
	status int
	body   string
}

// fakeArr is a scripted upstream *arr instance backed by httptest.
type fakeArr struct {
	mu     sync.Mutex
	reqs   []arrRequest
	routes map[string]arrResponse
	srv    *httptest.Server
}

func newFakeArr(t *testing.T) *fakeArr {
	t.Helper()
	f := &fakeArr{routes: make(map[string]arrResponse)}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.reqs = append(f.reqs, arrRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			APIKey: r.Header.Get("X-Api-Key"),
			Auth:   r.Header.Get("Authorization"),
			Body:   body,
		})
		resp, ok := f.routes[r.Method+" "+r.URL.Path]
		f.mu.Unlock()
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"no route"}`))
			return
		}
		w.WriteHeader(resp.status)
		_, _ = w.Write([]byte(resp.body))
	}))
	t.Cleanup(f.srv.Close)
	return f
}

// route scripts the response for "METHOD /path".
func (f *fakeArr) route(method, path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[method+" "+path] = arrResponse{status: status, body: body}
}

func (f *fakeArr) requests() []arrRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]arrRequest, len(f.reqs))
	copy(out, f.reqs)
	return out
}

// testBinderService is a small Radarr-shaped table exercising all three
// parameter locations.
func testBinderService() *endpoints.Service {
	return &endpoints.Service{
		Name:      "Radarr",
		Slug:      "radarr",
		EnvPrefix: "RADARR",
		Endpoints: []endpoints.Endpoint{
			{
				Name: "get_movie_id", Method: "GET", Path: "/api/v3/movie/{id}",
				Summary: "Get a movie by ID.", Tag: "catalog",
				Params: []endpoints.Param{
					{Name: "id", Type: "integer", In: endpoints.InPath, Required: true},
				},
			},
			{
				Name: "get_queue", Method: "GET", Path: "/api/v3/queue",
				Summary: "Get the download queue.", Tag: "queue",
				Params: []endpoints.Param{
					{Name: "page", Type: "integer", In: endpoints.InQuery},
					{Name: "includeMovie", Type: "boolean", In: endpoints.InQuery},
					{Name: "tags", Type: "array", In: endpoints.InQuery},
				},
			},
			{
				Name: "post_movie", Method: "POST", Path: "/api/v3/movie",
				Summary: "Add a movie.", Tag: "catalog",
				Params: []endpoints.Param{
					{Name: "data", Type: "object", In: endpoints.InBody, Required: true},
				},
			},
		},
	}
}

// startSession binds b on a fresh server (plus the Radarr extras when asked)
// and connects an in-memory client session to it.
func startSession(t *testing.T, b *Binder, extras bool) *mcp.ClientSession {
	t.Helper()
	s := New(Config{Name: "Radarr", Transport: TransportStdio, Logger: testLogger()})
	s.Bind(b)
	if extras {
		RegisterRadarrExtras(s, b)
	}

	ct, st := mcp.NewInMemoryTransports()
	ss, err := s.impl.Connect(context.Background(), st, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	t.Cleanup(func() { _ = ss.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.0"}, nil)
	cs, err := client.Connect(context.Background(), ct, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { _ = cs.Close() })
	return cs
}

// callTool invokes one tool and returns its text content and error flag.
func callTool(t *testing.T, cs *mcp.ClientSession, name string, args map[string]any) (string, bool) {
	t.Helper()
	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		t.Fatalf("CallTool(%s): %v", name, err)
	}
	var text strings.Builder
	for _, c := range res.Content {
		if tc, ok := c.(*mcp.TextContent); ok {
			text.WriteString(tc.Text)
		}
	}
	return text.String(), res.IsError
}

// ─────────────────────────────────────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────────────────────────────────────

// TestBinderPathParam routes a path argument into the URL and strips the
// connection overrides from the forwarded request.
func TestBinderPathParam(t *testing.T) {
	t.Parallel()
	upstream := newFakeArr(t)
	upstream.route("GET", "/api/v3/movie/42", http.StatusOK, `{"id":42,"title":"Alien"}`)

	b := &Binder{Service: testBinderService(), Logger: testLogger()}
	cs := startSession(t, b, false)

	text, isErr := callTool(t, cs, "get_movie_id", map[string]any{
		"id":              42,
		"radarr_base_url": upstream.srv.URL,
		"radarr_api_key":  "secret-key",
		"radarr_verify":   false,
	})
	if isErr {
		t.Fatalf("tool errored: %s", text)
	}
	if text != `{"id":42,"title":"Alien"}` {
		t.Errorf("tool text = %q", text)
	}

	reqs := upstream.requests()
	if len(reqs) != 1 {
		t.Fatalf("upstream saw %d requests, want 1", len(reqs))
	}
	req := reqs[0]
	if req.Path != "/api/v3/movie/42" {
		t.Errorf("upstream path = %q, want /api/v3/movie/42", req.Path)
	}
	if req.APIKey != "secret-key" {
		t.Errorf("X-Api-Key = %q, want secret-key", req.APIKey)
	}
	if len(req.Query) != 0 {
		t.Errorf("connection overrides leaked into query: %v", req.Query)
	}
}

// TestBinderQueryParams encodes scalars and repeats array keys.
func TestBinderQueryParams(t *testing.T) {
	t.Parallel()
	upstream := newFakeArr(t)
	upstream.route("GET", "/api/v3/queue", http.StatusOK, `{"records":[]}`)

	b := &Binder{Service: testBinderService(), Logger: testLogger()}
	cs := startSession(t, b, false)

	text, isErr := callTool(t, cs, "get_queue", map[string]any{
		"page":            2,
		"includeMovie":    true,
		"tags":            []any{"a", "b"},
		"radarr_base_url": upstream.srv.URL,
	})
	if isErr {
		t.Fatalf("tool errored: %s", text)
	}

	req := upstream.requests()[0]
	if got := req.Query.Get("page"); got != "2" {
		t.Errorf("page = %q, want 2", got)
	}
	if got := req.Query.Get("includeMovie"); got != "true" {
		t.Errorf("includeMovie = %q, want true", got)
	}
	if got := req.Query["tags"]; len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("tags = %v, want [a b]", got)
	}
}

// TestBinderBodyParam sends the data argument as the JSON request body.
func TestBinderBodyParam(t *testing.T) {
	t.Parallel()
	upstream := newFakeArr(t)
	upstream.route("POST", "/api/v3/movie", http.StatusCreated, `{"id":7}`)

	b := &Binder{Service: testBinderService(), Logger: testLogger()}
	cs := startSession(t, b, false)

	text, isErr := callTool(t, cs, "post_movie", map[string]any{
		"data":            map[string]any{"title": "Alien", "tmdbId": 348},
		"radarr_base_url": upstream.srv.URL,
	})
	if isErr {
		t.Fatalf("tool errored: %s", text)
	}
	if text != `{"id":7}` {
		t.Errorf("tool text = %q", text)
	}

	var body map[string]any
	if err := json.Unmarshal(upstream.requests()[0].Body, &body); err != nil {
		t.Fatalf("decode upstream body: %v", err)
	}
	if body["title"] != "Alien" || body["tmdbId"] != float64(348) {
		t.Errorf("upstream body = %v", body)
	}
}

// TestBinderMissingRequired surfaces a tool error, not a protocol error.
func TestBinderMissingRequired(t *testing.T) {
	t.Parallel()
	upstream := newFakeArr(t)

	b := &Binder{Service: testBinderService(), Logger: testLogger()}
	cs := startSession(t, b, false)

	text, isErr := callTool(t, cs, "get_movie_id", map[string]any{
		"radarr_base_url": upstream.srv.URL,
	})
	if !isErr {
		t.Fatal("missing required parameter did not produce a tool error")
	}
	if !strings.Contains(text, `missing required parameter "id"`) {
		t.Errorf("tool text = %q", text)
	}
	if len(upstream.requests()) != 0 {
		t.Error("upstream was called despite the missing parameter")
	}
}

// TestBinderUpstreamError converts an HTTP failure into a tool error carrying
// the status error text.
func TestBinderUpstreamError(t *testing.T) {
	t.Parallel()
	upstream := newFakeArr(t)
	upstream.route("GET", "/api/v3/movie/42", http.StatusNotFound, `{"message":"NotFound"}`)

	b := &Binder{Service: testBinderService(), Logger: testLogger()}
	cs := startSession(t, b, false)

	text, isErr := callTool(t, cs, "get_movie_id", map[string]any{
		"id":              42,
		"radarr_base_url": upstream.srv.URL,
	})
	if !isErr {
		t.Fatal("upstream 404 did not produce a tool error")
	}
	if !strings.Contains(text, "API error: 404") {
		t.Errorf("tool text = %q, want the status error", text)
	}
}

// TestBinderChainApplied routes tool dispatch through the configured chain.
func TestBinderChainApplied(t *testing.T) {
	t.Parallel()
	upstream := newFakeArr(t)
	upstream.route("GET", "/api/v3/queue", http.StatusOK, `{"records":[]}`)

	var seen []string
	record := func(next Handler) Handler {
		return func(ctx context.Context, call *Call) (*Result, error) {
			seen = append(seen, call.Tool)
			return next(ctx, call)
		}
	}
	b := &Binder{Service: testBinderService(), Chain: Chain(record), Logger: testLogger()}
	cs := startSession(t, b, false)

	_, _ = callTool(t, cs, "get_queue", map[string]any{"radarr_base_url": upstream.srv.URL})
	if len(seen) != 1 || seen[0] != "get_queue" {
		t.Errorf("chain saw %v, want [get_queue]", seen)
	}
}

// TestBinderTags labels every call with the category and the service slug.
func TestBinderTags(t *testing.T) {
	t.Parallel()
	upstream := newFakeArr(t)
	upstream.route("GET", "/api/v3/queue", http.StatusOK, `{}`)

	var tags []string
	capture := func(next Handler) Handler {
		return func(ctx context.Context, call *Call) (*Result, error) {
			tags = call.Tags
			return next(ctx, call)
		}
	}
	b := &Binder{Service: testBinderService(), Chain: Chain(capture), Logger: testLogger()}
	cs := startSession(t, b, false)

	_, _ = callTool(t, cs, "get_queue", map[string]any{"radarr_base_url": upstream.srv.URL})
	if len(tags) != 2 || tags[0] != "queue" || tags[1] != "radarr" {
		t.Errorf("tags = %v, want [queue radarr]", tags)
	}
}

// TestBinderRegistersFullTable binds the real Radarr table and checks the
// tool count over the wire.
func TestBinderRegistersFullTable(t *testing.T) {
	t.Parallel()
	b := &Binder{Service: endpoints.Radarr, Logger: testLogger()}
	cs := startSession(t, b, false)

	count := 0
	for _, err := range cs.Tools(context.Background(), nil) {
		if err != nil {
			t.Fatalf("Tools: %v", err)
		}
		count++
	}
	if count != len(endpoints.Radarr.Endpoints) {
		t.Errorf("session lists %d tools, want %d", count, len(endpoints.Radarr.Endpoints))
	}
}

// TestScalarString covers the JSON scalar renderings used for path and query
// values.
func TestScalarString(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in      any
		want    string
		wantErr bool
	}{
		{"abc", "abc", false},
		{true, "true", false},
		{float64(42), "42", false},
		{float64(1.5), "1.5", false},
		{json.Number("19"), "19", false},
		{map[string]any{}, "", true},
	}
	for _, tc := range cases {
		got, err := scalarString(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("scalarString(%v) succeeded, want error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("scalarString(%v): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("scalarString(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// TestDecodeArgs treats absent arguments as an empty map.
func TestDecodeArgs(t *testing.T) {
	t.Parallel()
	args, err := decodeArgs(nil)
	if err != nil {
		t.Fatalf("decodeArgs(nil): %v", err)
	}
	if len(args) != 0 {
		t.Errorf("decodeArgs(nil) = %v, want empty map", args)
	}

	if _, err := decodeArgs(json.RawMessage(`[1,2]`)); err == nil {
		t.Error("decodeArgs on a JSON array succeeded, want error")
	}
}
