package agent

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/arrmcp/arrmcp/pkg/provider/llm"
	"github.com/arrmcp/arrmcp/pkg/provider/llm/mock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// fakeHostCall records one CallTool invocation.
type fakeHostCall struct {
	Name string
	Args map[string]any
}

// fakeHost is an in-memory ToolHost. When reply is nil every call returns
// ("ok", false, nil).
type fakeHost struct {
	mu       sync.Mutex
	tools    []llm.ToolDefinition
	toolsErr error
	reply    func(ctx context.Context, name string, args map[string]any) (string, bool, error)
	calls    []fakeHostCall
}

func (h *fakeHost) Tools(ctx context.Context) ([]llm.ToolDefinition, error) {
	if h.toolsErr != nil {
		return nil, h.toolsErr
	}
	return h.tools, nil
}

func (h *fakeHost) CallTool(ctx context.Context, name string, args map[string]any) (string, bool, error) {
	h.mu.Lock()
	h.calls = append(h.calls, fakeHostCall{Name: name, Args: args})
	reply := h.reply
	h.mu.Unlock()
	if reply != nil {
		return reply(ctx, name, args)
	}
	return "ok", false, nil
}

func (h *fakeHost) callNames() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	names := make([]string, len(h.calls))
	for i, c := range h.calls {
		names[i] = c.Name
	}
	return names
}

func newTestSubAgent(t *testing.T, provider llm.Provider, host ToolHost, settings Settings) *SubAgent {
	t.Helper()
	sub, err := NewSubAgent(SubAgentConfig{
		Name:         "Radarr_catalog_Agent",
		SystemPrompt: "You manage catalog resources.",
		Tools:        []llm.ToolDefinition{{Name: "get_movie"}},
		Provider:     provider,
		Host:         host,
		Settings:     settings,
	})
	if err != nil {
		t.Fatalf("NewSubAgent: %v", err)
	}
	return sub
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// TestNewSubAgentValidation verifies required-field checks.
func TestNewSubAgentValidation(t *testing.T) {
	t.Parallel()
	provider := &mock.Provider{}
	host := &fakeHost{}

	cases := []struct {
		name string
		cfg  SubAgentConfig
	}{
		{"empty name", SubAgentConfig{Provider: provider, Host: host}},
		{"nil provider", SubAgentConfig{Name: "a", Host: host}},
		{"nil host", SubAgentConfig{Name: "a", Provider: provider}},
	}
	for _, tc := range cases {
		if _, err := NewSubAgent(tc.cfg); err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
	}
}

// TestSubAgentRunDirectAnswer verifies a run that needs no tools.
func TestSubAgentRunDirectAnswer(t *testing.T) {
	t.Parallel()
	provider := &mock.Provider{
		CompleteResponse: &llm.CompletionResponse{Content: "All quiet."},
	}
	host := &fakeHost{}
	sub := newTestSubAgent(t, provider, host, Settings{MaxTokens: 512, Temperature: 0.3})

	out, err := sub.Run(context.Background(), "status?")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out != "All quiet." {
		t.Errorf("out = %q, want %q", out, "All quiet.")
	}
	if len(host.calls) != 0 {
		t.Errorf("host called %d times, want 0", len(host.calls))
	}

	req := provider.CompleteCalls[0].Req
	if req.SystemPrompt != "You manage catalog resources." {
		t.Errorf("SystemPrompt = %q", req.SystemPrompt)
	}
	if req.MaxTokens != 512 || req.Temperature != 0.3 {
		t.Errorf("settings not forwarded: MaxTokens=%d Temperature=%v", req.MaxTokens, req.Temperature)
	}
	if len(req.Tools) != 1 || req.Tools[0].Name != "get_movie" {
		t.Errorf("Tools = %+v, want the agent toolset", req.Tools)
	}
}

// TestSubAgentRunToolLoop verifies the execute-and-append round trip.
func TestSubAgentRunToolLoop(t *testing.T) {
	t.Parallel()
	provider := &mock.Provider{
		CompleteResponses: []*llm.CompletionResponse{
			{ToolCalls: []llm.ToolCall{{ID: "call-1", Name: "get_movie", Arguments: `{"id": 42}`}}},
			{Content: "Movie 42 is Alien."},
		},
	}
	host := &fakeHost{
		reply: func(_ context.Context, _ string, _ map[string]any) (string, bool, error) {
			return `{"title":"Alien"}`, false, nil
		},
	}
	sub := newTestSubAgent(t, provider, host, Settings{})

	out, err := sub.Run(context.Background(), "what is movie 42?")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out != "Movie 42 is Alien." {
		t.Errorf("out = %q", out)
	}

	if len(host.calls) != 1 || host.calls[0].Name != "get_movie" {
		t.Fatalf("host calls = %+v, want one get_movie call", host.calls)
	}
	if got := host.calls[0].Args["id"]; got != float64(42) {
		t.Errorf("args[id] = %v, want 42", got)
	}

	// Second completion sees: user, assistant (tool calls), tool result.
	msgs := provider.CompleteCalls[1].Req.Messages
	if len(msgs) != 3 {
		t.Fatalf("len(msgs) = %d, want 3", len(msgs))
	}
	if msgs[1].Role != "assistant" || len(msgs[1].ToolCalls) != 1 {
		t.Errorf("msgs[1] = %+v, want assistant with one tool call", msgs[1])
	}
	if msgs[2].Role != "tool" || msgs[2].ToolCallID != "call-1" || msgs[2].Content != `{"title":"Alien"}` {
		t.Errorf("msgs[2] = %+v, want the tool result", msgs[2])
	}
}

// TestSubAgentRunToolFailure verifies that host errors become tool messages
// and the loop keeps going.
func TestSubAgentRunToolFailure(t *testing.T) {
	t.Parallel()
	provider := &mock.Provider{
		CompleteResponses: []*llm.CompletionResponse{
			{ToolCalls: []llm.ToolCall{{ID: "call-1", Name: "get_movie", Arguments: `{}`}}},
			{Content: "Could not reach the library."},
		},
	}
	host := &fakeHost{
		reply: func(_ context.Context, _ string, _ map[string]any) (string, bool, error) {
			return "", false, errors.New("connection refused")
		},
	}
	sub := newTestSubAgent(t, provider, host, Settings{})

	out, err := sub.Run(context.Background(), "fetch")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out != "Could not reach the library." {
		t.Errorf("out = %q", out)
	}

	msgs := provider.CompleteCalls[1].Req.Messages
	if want := "Error: connection refused"; msgs[2].Content != want {
		t.Errorf("tool message = %q, want %q", msgs[2].Content, want)
	}
}

// TestSubAgentRunInvalidArguments verifies that unparsable tool arguments are
// reported to the model instead of aborting the run.
func TestSubAgentRunInvalidArguments(t *testing.T) {
	t.Parallel()
	provider := &mock.Provider{
		CompleteResponses: []*llm.CompletionResponse{
			{ToolCalls: []llm.ToolCall{{ID: "call-1", Name: "get_movie", Arguments: `{"id":`}}},
			{Content: "done"},
		},
	}
	host := &fakeHost{}
	sub := newTestSubAgent(t, provider, host, Settings{})

	if _, err := sub.Run(context.Background(), "fetch"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(host.calls) != 0 {
		t.Errorf("host called despite invalid arguments: %+v", host.calls)
	}
	msgs := provider.CompleteCalls[1].Req.Messages
	if !strings.Contains(msgs[2].Content, "invalid arguments for tool get_movie") {
		t.Errorf("tool message = %q", msgs[2].Content)
	}
}

// TestSubAgentRunIterationCap verifies the bounded loop.
func TestSubAgentRunIterationCap(t *testing.T) {
	t.Parallel()
	provider := &mock.Provider{
		// Every turn wants another tool call.
		CompleteResponse: &llm.CompletionResponse{
			ToolCalls: []llm.ToolCall{{ID: "call", Name: "get_movie", Arguments: `{}`}},
		},
	}
	host := &fakeHost{}
	sub := newTestSubAgent(t, provider, host, Settings{})

	_, err := sub.Run(context.Background(), "loop forever")
	if err == nil {
		t.Fatal("expected iteration cap error, got nil")
	}
	if !strings.Contains(err.Error(), "no final response after 16 iterations") {
		t.Errorf("err = %v", err)
	}
	if len(provider.CompleteCalls) != 16 {
		t.Errorf("completions = %d, want 16", len(provider.CompleteCalls))
	}
}

// TestSubAgentParallelToolCalls verifies that one turn's calls run
// concurrently when enabled, with results kept in call order.
func TestSubAgentParallelToolCalls(t *testing.T) {
	t.Parallel()
	provider := &mock.Provider{
		CompleteResponses: []*llm.CompletionResponse{
			{ToolCalls: []llm.ToolCall{
				{ID: "call-a", Name: "tool_a", Arguments: `{}`},
				{ID: "call-b", Name: "tool_b", Arguments: `{}`},
			}},
			{Content: "done"},
		},
	}

	// Each call blocks until both have started; sequential execution would
	// deadlock, so the timeout guard below doubles as the concurrency check.
	var entered sync.WaitGroup
	entered.Add(2)
	host := &fakeHost{
		reply: func(_ context.Context, name string, _ map[string]any) (string, bool, error) {
			entered.Done()
			entered.Wait()
			return "data for " + name, false, nil
		},
	}
	sub := newTestSubAgent(t, provider, host, Settings{ParallelToolCalls: true})

	done := make(chan error, 1)
	go func() {
		_, err := sub.Run(context.Background(), "both")
		done <- err
	}()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("tool calls did not run concurrently")
	}

	msgs := provider.CompleteCalls[1].Req.Messages
	if msgs[2].Content != "data for tool_a" || msgs[3].Content != "data for tool_b" {
		t.Errorf("results out of order: %q, %q", msgs[2].Content, msgs[3].Content)
	}
}

// TestSubAgentToolTimeout verifies the per-call deadline.
func TestSubAgentToolTimeout(t *testing.T) {
	t.Parallel()
	provider := &mock.Provider{
		CompleteResponses: []*llm.CompletionResponse{
			{ToolCalls: []llm.ToolCall{{ID: "call-1", Name: "get_movie", Arguments: `{}`}}},
			{Content: "done"},
		},
	}
	host := &fakeHost{
		reply: func(ctx context.Context, _ string, _ map[string]any) (string, bool, error) {
			select {
			case <-ctx.Done():
				return "", false, ctx.Err()
			case <-time.After(5 * time.Second):
				return "too late", false, nil
			}
		},
	}
	sub := newTestSubAgent(t, provider, host, Settings{ToolTimeout: 20 * time.Millisecond})

	if _, err := sub.Run(context.Background(), "slow"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	msgs := provider.CompleteCalls[1].Req.Messages
	if !strings.Contains(msgs[2].Content, "context deadline exceeded") {
		t.Errorf("tool message = %q, want a deadline error", msgs[2].Content)
	}
}

// TestSubAgentCompletionError verifies that provider failures abort the run.
func TestSubAgentCompletionError(t *testing.T) {
	t.Parallel()
	provider := &mock.Provider{CompleteErr: errors.New("model unavailable")}
	sub := newTestSubAgent(t, provider, &fakeHost{}, Settings{})

	_, err := sub.Run(context.Background(), "anything")
	if err == nil || !strings.Contains(err.Error(), "model unavailable") {
		t.Errorf("err = %v, want the provider error", err)
	}
}
