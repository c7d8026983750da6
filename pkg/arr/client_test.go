package arr_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arrmcp/arrmcp/pkg/arr"
)

// echoServer starts a test HTTP server that records the last request it saw
// and replies with the given status and body.
func echoServer(t *testing.T, status int, body string) (*httptest.Server, *http.Request) {
	t.Helper()
	captured := &http.Request{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = *r.Clone(r.Context())
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

// TestDo_APIKeyHeader verifies that the configured API key is sent as the
// X-Api-Key header on every request.
func TestDo_APIKeyHeader(t *testing.T) {
	srv, captured := echoServer(t, http.StatusOK, `{"ok":true}`)

	client := arr.New(arr.Connection{BaseURL: srv.URL, APIKey: "secret-key", Verify: true})
	_, err := client.Do(context.Background(), http.MethodGet, "/api/v1/author", nil, nil)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if got := captured.Header.Get("X-Api-Key"); got != "secret-key" {
		t.Errorf("X-Api-Key: got %q, want %q", got, "secret-key")
	}
}

// TestDo_NoAPIKeyHeader verifies that an empty API key produces no X-Api-Key
// header at all rather than an empty one.
func TestDo_NoAPIKeyHeader(t *testing.T) {
	srv, captured := echoServer(t, http.StatusOK, `{}`)

	client := arr.New(arr.Connection{BaseURL: srv.URL})
	_, err := client.Do(context.Background(), http.MethodGet, "/ping", nil, nil)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if _, ok := captured.Header["X-Api-Key"]; ok {
		t.Error("X-Api-Key header present, want absent")
	}
}

// TestDo_PassthroughJSON verifies that a JSON response body is returned
// verbatim, without re-encoding.
func TestDo_PassthroughJSON(t *testing.T) {
	const body = `[{"id":1,"title":"Dune"},{"id":2,"title":"Hyperion"}]`
	srv, _ := echoServer(t, http.StatusOK, body)

	client := arr.New(arr.Connection{BaseURL: srv.URL})
	got, err := client.Do(context.Background(), http.MethodGet, "/api/v3/movie", nil, nil)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if string(got) != body {
		t.Errorf("body: got %s, want %s", got, body)
	}
}

// TestDo_StatusError verifies that a response with status >= 400 yields a
// *StatusError carrying the status code and raw body text, rendered in the
// stable "API error" shape.
func TestDo_StatusError(t *testing.T) {
	srv, _ := echoServer(t, http.StatusNotFound, `{"message":"movie not found"}`)

	client := arr.New(arr.Connection{BaseURL: srv.URL})
	_, err := client.Do(context.Background(), http.MethodGet, "/api/v3/movie/99", nil, nil)
	if err == nil {
		t.Fatal("expected error for 404 response, got nil")
	}

	var statusErr *arr.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error type: got %T, want *arr.StatusError", err)
	}
	if statusErr.Status != http.StatusNotFound {
		t.Errorf("Status: got %d, want %d", statusErr.Status, http.StatusNotFound)
	}
	want := `API error: 404 - {"message":"movie not found"}`
	if err.Error() != want {
		t.Errorf("Error(): got %q, want %q", err.Error(), want)
	}
}

// TestDo_NoContent verifies that a 204 response is normalized to the
// {"status":"success"} sentinel.
func TestDo_NoContent(t *testing.T) {
	srv, _ := echoServer(t, http.StatusNoContent, "")

	client := arr.New(arr.Connection{BaseURL: srv.URL})
	got, err := client.Do(context.Background(), http.MethodDelete, "/api/v1/book/7", nil, nil)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if string(got) != `{"status":"success"}` {
		t.Errorf("body: got %s, want {\"status\":\"success\"}", got)
	}
}

// TestDo_NonJSONBody verifies that a successful response with a non-JSON body
// is wrapped into the {"status":"success","text":...} sentinel instead of
// failing.
func TestDo_NonJSONBody(t *testing.T) {
	srv, _ := echoServer(t, http.StatusOK, "OK")

	client := arr.New(arr.Connection{BaseURL: srv.URL})
	got, err := client.Do(context.Background(), http.MethodPost, "/api/v3/command", nil, nil)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}

	var wrapped struct {
		Status string `json:"status"`
		Text   string `json:"text"`
	}
	if err := json.Unmarshal(got, &wrapped); err != nil {
		t.Fatalf("unmarshal wrapped body: %v", err)
	}
	if wrapped.Status != "success" {
		t.Errorf("status: got %q, want %q", wrapped.Status, "success")
	}
	if wrapped.Text != "OK" {
		t.Errorf("text: got %q, want %q", wrapped.Text, "OK")
	}
}

// TestDo_EmptyBody verifies that a 200 response with an empty body is treated
// like any other non-JSON body and wrapped with an empty text field.
func TestDo_EmptyBody(t *testing.T) {
	srv, _ := echoServer(t, http.StatusOK, "")

	client := arr.New(arr.Connection{BaseURL: srv.URL})
	got, err := client.Do(context.Background(), http.MethodGet, "/api/v1/health", nil, nil)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}

	var wrapped struct {
		Status string `json:"status"`
		Text   string `json:"text"`
	}
	if err := json.Unmarshal(got, &wrapped); err != nil {
		t.Fatalf("unmarshal wrapped body: %v", err)
	}
	if wrapped.Status != "success" || wrapped.Text != "" {
		t.Errorf("wrapped: got %+v, want status=success text=\"\"", wrapped)
	}
}

// TestDo_QueryAndBody verifies that query parameters are encoded into the URL
// and that a request body is sent as JSON with the right Content-Type.
func TestDo_QueryAndBody(t *testing.T) {
	type probe struct {
		path        string
		rawQuery    string
		contentType string
		body        map[string]any
	}
	got := probe{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.path = r.URL.Path
		got.rawQuery = r.URL.RawQuery
		got.contentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&got.body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":42}`))
	}))
	defer srv.Close()

	client := arr.New(arr.Connection{BaseURL: srv.URL + "/"}) // trailing slash must not double up
	query := map[string][]string{"term": {"dune part two"}}
	body := map[string]any{"title": "Dune: Part Two", "monitored": true}

	resp, err := client.Do(context.Background(), http.MethodPost, "/api/v3/movie", query, body)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if string(resp) != `{"id":42}` {
		t.Errorf("response: got %s, want {\"id\":42}", resp)
	}
	if got.path != "/api/v3/movie" {
		t.Errorf("path: got %q, want %q", got.path, "/api/v3/movie")
	}
	if got.rawQuery != "term=dune+part+two" {
		t.Errorf("query: got %q, want %q", got.rawQuery, "term=dune+part+two")
	}
	if got.contentType != "application/json" {
		t.Errorf("Content-Type: got %q, want application/json", got.contentType)
	}
	if got.body["title"] != "Dune: Part Two" {
		t.Errorf("body title: got %v, want %q", got.body["title"], "Dune: Part Two")
	}
}

// TestDo_WithHeader verifies that extra headers configured on the client are
// forwarded upstream, which is how delegation mode passes the caller's bearer
// token through.
func TestDo_WithHeader(t *testing.T) {
	srv, captured := echoServer(t, http.StatusOK, `{}`)

	client := arr.New(arr.Connection{BaseURL: srv.URL, APIKey: "k"},
		arr.WithHeader("Authorization", "Bearer caller-token"))
	_, err := client.Do(context.Background(), http.MethodGet, "/api/v1/series", nil, nil)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if got := captured.Header.Get("Authorization"); got != "Bearer caller-token" {
		t.Errorf("Authorization: got %q, want %q", got, "Bearer caller-token")
	}
}

// TestDo_ContextCancelled verifies that an expired context aborts the request
// with an error.
func TestDo_ContextCancelled(t *testing.T) {
	srv, _ := echoServer(t, http.StatusOK, `{}`)

	client := arr.New(arr.Connection{BaseURL: srv.URL})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Do(ctx, http.MethodGet, "/api/v1/author", nil, nil)
	if err == nil {
		t.Fatal("expected error for cancelled context, got nil")
	}
}

// TestConnectionFromEnv verifies the env variable naming scheme and the
// insecure-by-default Verify behavior.
func TestConnectionFromEnv(t *testing.T) {
	t.Setenv("CHAPTARR_BASE_URL", "http://chaptarr:8787")
	t.Setenv("CHAPTARR_API_KEY", "abc123")
	t.Setenv("CHAPTARR_VERIFY", "true")

	conn := arr.ConnectionFromEnv("CHAPTARR")
	if conn.BaseURL != "http://chaptarr:8787" {
		t.Errorf("BaseURL: got %q, want %q", conn.BaseURL, "http://chaptarr:8787")
	}
	if conn.APIKey != "abc123" {
		t.Errorf("APIKey: got %q, want %q", conn.APIKey, "abc123")
	}
	if !conn.Verify {
		t.Error("Verify: got false, want true")
	}
}

// TestConnectionFromEnv_Defaults verifies that unset variables produce an
// empty connection with TLS verification off.
func TestConnectionFromEnv_Defaults(t *testing.T) {
	t.Setenv("RADARR_BASE_URL", "")
	t.Setenv("RADARR_API_KEY", "")
	t.Setenv("RADARR_VERIFY", "")

	conn := arr.ConnectionFromEnv("RADARR")
	if conn.BaseURL != "" || conn.APIKey != "" || conn.Verify {
		t.Errorf("connection: got %+v, want zero value", conn)
	}
}

// TestConnectionFromEnv_VerifyValues verifies the forgiving set of accepted
// boolean spellings for the VERIFY variable.
func TestConnectionFromEnv_VerifyValues(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"True", true},
		{"1", true},
		{"yes", true},
		{"on", true},
		{"false", false},
		{"False", false},
		{"0", false},
		{"no", false},
		{"garbage", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("SONARR_VERIFY", tt.value)
			conn := arr.ConnectionFromEnv("SONARR")
			if conn.Verify != tt.want {
				t.Errorf("Verify(%q): got %v, want %v", tt.value, conn.Verify, tt.want)
			}
		})
	}
}
