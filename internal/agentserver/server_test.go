package agentserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/arrmcp/arrmcp/internal/endpoints"
	"github.com/arrmcp/arrmcp/internal/observe"
	"github.com/arrmcp/arrmcp/internal/version"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

// stubRunner is a scripted Runner. Run returns output/err; RunStream yields
// deltas and then streamErr. The last task passed in is recorded.
type stubRunner struct {
	output    string
	err       error
	deltas    []string
	streamErr error

	gotTask string
}

func (r *stubRunner) Run(_ context.Context, task string) (string, error) {
	r.gotTask = task
	return r.output, r.err
}

func (r *stubRunner) RunStream(_ context.Context, task string) (<-chan string, <-chan error) {
	r.gotTask = task
	deltas := make(chan string, len(r.deltas))
	for _, d := range r.deltas {
		deltas <- d
	}
	close(deltas)
	errCh := make(chan error, 1)
	errCh <- r.streamErr
	return deltas, errCh
}

func testService() *endpoints.Service {
	return &endpoints.Service{
		Name:      "Radarr",
		Slug:      "radarr",
		EnvPrefix: "RADARR",
		Endpoints: []endpoints.Endpoint{
			{Name: "get_movie", Method: "GET", Path: "movie/{id}", Tag: "catalog"},
		},
	}
}

func testMetrics(t *testing.T) *observe.Metrics {
	t.Helper()
	mp := sdkmetric.NewMeterProvider()
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	m, err := observe.NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}
	return m
}

func newTestServer(t *testing.T, runner Runner) *Server {
	t.Helper()
	s, err := New(Config{
		Service: testService(),
		Runner:  runner,
		Addr:    "127.0.0.1:9000",
		Metrics: testMetrics(t),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

// rpcEnvelope mirrors rpcResponse but keeps Result raw for re-decoding.
type rpcEnvelope struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

// doRPC posts body to /a2a and decodes the JSON-RPC envelope.
func doRPC(t *testing.T, h http.Handler, body string) rpcEnvelope {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/a2a", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /a2a status = %d, want 200", rec.Code)
	}
	var env rpcEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode RPC response: %v", err)
	}
	return env
}

// decodeTask unmarshals an RPC result into a task.
func decodeTask(t *testing.T, raw json.RawMessage) a2aTask {
	t.Helper()
	var task a2aTask
	if err := json.Unmarshal(raw, &task); err != nil {
		t.Fatalf("decode task: %v", err)
	}
	return task
}

// decodeSSE parses the data lines of an SSE body into events.
func decodeSSE(t *testing.T, body string) []aguiEvent {
	t.Helper()
	var events []aguiEvent
	for _, line := range strings.Split(body, "\n") {
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var ev aguiEvent
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &ev); err != nil {
			t.Fatalf("decode SSE event %q: %v", line, err)
		}
		events = append(events, ev)
	}
	return events
}

func eventTypes(events []aguiEvent) []string {
	types := make([]string, len(events))
	for i, ev := range events {
		types[i] = ev.Type
	}
	return types
}

// ─────────────────────────────────────────────────────────────────────────────
// Construction and operations endpoints
// ─────────────────────────────────────────────────────────────────────────────

// TestNewValidation checks required config fields and default fill-in.
func TestNewValidation(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{Runner: &stubRunner{}}); err == nil {
		t.Error("New with nil Service succeeded, want error")
	}
	if _, err := New(Config{Service: testService()}); err == nil {
		t.Error("New with nil Runner succeeded, want error")
	}

	s, err := New(Config{Service: testService(), Runner: &stubRunner{}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.cfg.Name != "RadarrAgent" {
		t.Errorf("default Name = %q, want %q", s.cfg.Name, "RadarrAgent")
	}
	want := "A multi-agent system for managing Radarr resources via delegated specialists."
	if s.cfg.Description != want {
		t.Errorf("default Description = %q, want %q", s.cfg.Description, want)
	}
}

// TestHealthEndpoint verifies the liveness body served at /health.
func TestHealthEndpoint(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, &stubRunner{}).Handler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /health status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "OK" {
		t.Errorf(`status = %q, want "OK"`, body["status"])
	}
}

// TestMetricsEndpoint verifies that /metrics serves the Prometheus registry.
func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, &stubRunner{}).Handler()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /metrics status = %d, want 200", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Error("metrics body is empty")
	}
}

// TestRunGracefulShutdown starts the server on an ephemeral port and checks
// that cancelling the context shuts it down cleanly.
func TestRunGracefulShutdown(t *testing.T) {
	t.Parallel()
	s, err := New(Config{
		Service: testService(),
		Runner:  &stubRunner{},
		Addr:    "127.0.0.1:0",
		Metrics: testMetrics(t),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// A2A surface
// ─────────────────────────────────────────────────────────────────────────────

// TestAgentCard verifies the discovery document.
func TestAgentCard(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, &stubRunner{}).Handler()

	req := httptest.NewRequest(http.MethodGet, "/a2a/.well-known/agent-card.json", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("agent card status = %d, want 200", rec.Code)
	}
	var card agentCard
	if err := json.Unmarshal(rec.Body.Bytes(), &card); err != nil {
		t.Fatalf("decode card: %v", err)
	}

	if card.Name != "RadarrAgent" {
		t.Errorf("card name = %q, want %q", card.Name, "RadarrAgent")
	}
	if card.Version != version.Version {
		t.Errorf("card version = %q, want %q", card.Version, version.Version)
	}
	if !card.Capabilities.Streaming {
		t.Error("card does not advertise streaming")
	}
	if len(card.Skills) != 1 {
		t.Fatalf("card has %d skills, want 1", len(card.Skills))
	}
	skill := card.Skills[0]
	if skill.ID != "radarr_agent" {
		t.Errorf("skill id = %q, want %q", skill.ID, "radarr_agent")
	}
	if skill.Name != "Radarr Agent" {
		t.Errorf("skill name = %q, want %q", skill.Name, "Radarr Agent")
	}
	if skill.Description != "General access to Radarr tools" {
		t.Errorf("skill description = %q", skill.Description)
	}
	if len(skill.Tags) != 1 || skill.Tags[0] != "radarr" {
		t.Errorf("skill tags = %v, want [radarr]", skill.Tags)
	}
}

// TestMessageSend runs a task through message/send and fetches it back via
// tasks/get.
func TestMessageSend(t *testing.T) {
	t.Parallel()
	runner := &stubRunner{output: "Found 3 movies."}
	h := newTestServer(t, runner).Handler()

	env := doRPC(t, h, `{
		"jsonrpc": "2.0",
		"id": 1,
		"method": "message/send",
		"params": {"message": {
			"role": "user",
			"parts": [{"kind": "text", "text": "list my movies"}],
			"messageId": "m-1"
		}}
	}`)
	if env.Error != nil {
		t.Fatalf("message/send error: %+v", env.Error)
	}
	if runner.gotTask != "list my movies" {
		t.Errorf("runner task = %q, want %q", runner.gotTask, "list my movies")
	}

	task := decodeTask(t, env.Result)
	if task.Kind != "task" {
		t.Errorf("task kind = %q, want %q", task.Kind, "task")
	}
	if task.Status.State != taskCompleted {
		t.Errorf("task state = %q, want %q", task.Status.State, taskCompleted)
	}
	if task.ID == "" || task.ContextID == "" {
		t.Errorf("task has empty ids: %+v", task)
	}
	if len(task.Artifacts) != 1 || len(task.Artifacts[0].Parts) != 1 {
		t.Fatalf("task artifacts = %+v, want one artifact with one part", task.Artifacts)
	}
	if got := task.Artifacts[0].Parts[0].Text; got != "Found 3 movies." {
		t.Errorf("artifact text = %q, want %q", got, "Found 3 movies.")
	}

	// The task must be retrievable afterwards.
	env = doRPC(t, h, fmt.Sprintf(
		`{"jsonrpc":"2.0","id":2,"method":"tasks/get","params":{"id":%q}}`, task.ID))
	if env.Error != nil {
		t.Fatalf("tasks/get error: %+v", env.Error)
	}
	got := decodeTask(t, env.Result)
	if got.ID != task.ID || got.Status.State != taskCompleted {
		t.Errorf("tasks/get = %+v, want original task", got)
	}
}

// TestMessageSendFailure checks that a runner error becomes a failed task.
func TestMessageSendFailure(t *testing.T) {
	t.Parallel()
	runner := &stubRunner{err: errors.New("provider unreachable")}
	h := newTestServer(t, runner).Handler()

	env := doRPC(t, h, `{
		"jsonrpc": "2.0",
		"id": 3,
		"method": "message/send",
		"params": {"message": {"role": "user", "parts": [{"kind": "text", "text": "hi"}]}}
	}`)
	if env.Error != nil {
		t.Fatalf("message/send error: %+v", env.Error)
	}

	task := decodeTask(t, env.Result)
	if task.Status.State != taskFailed {
		t.Fatalf("task state = %q, want %q", task.Status.State, taskFailed)
	}
	if task.Status.Message == nil || len(task.Status.Message.Parts) == 0 {
		t.Fatal("failed task has no status message")
	}
	if got := task.Status.Message.Parts[0].Text; !strings.Contains(got, "provider unreachable") {
		t.Errorf("status message = %q, want the runner error", got)
	}
	if len(task.Artifacts) != 0 {
		t.Errorf("failed task has artifacts: %+v", task.Artifacts)
	}
}

// TestMessageSendNoText rejects messages without text parts.
func TestMessageSendNoText(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, &stubRunner{}).Handler()

	env := doRPC(t, h, `{
		"jsonrpc": "2.0",
		"id": 4,
		"method": "message/send",
		"params": {"message": {"role": "user", "parts": []}}
	}`)
	if env.Error == nil || env.Error.Code != codeInvalidParams {
		t.Fatalf("error = %+v, want code %d", env.Error, codeInvalidParams)
	}
}

// TestTasksGetUnknown returns the A2A task-not-found code.
func TestTasksGetUnknown(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, &stubRunner{}).Handler()

	env := doRPC(t, h, `{"jsonrpc":"2.0","id":5,"method":"tasks/get","params":{"id":"task-nope"}}`)
	if env.Error == nil || env.Error.Code != codeTaskNotFound {
		t.Fatalf("error = %+v, want code %d", env.Error, codeTaskNotFound)
	}
}

// TestRPCUnknownMethod returns -32601 with the method name.
func TestRPCUnknownMethod(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, &stubRunner{}).Handler()

	env := doRPC(t, h, `{"jsonrpc":"2.0","id":6,"method":"message/stream","params":{}}`)
	if env.Error == nil || env.Error.Code != codeMethodNotFound {
		t.Fatalf("error = %+v, want code %d", env.Error, codeMethodNotFound)
	}
	if !strings.Contains(env.Error.Message, "message/stream") {
		t.Errorf("error message = %q, want it to name the method", env.Error.Message)
	}
}

// TestRPCParseError returns -32700 for invalid JSON.
func TestRPCParseError(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, &stubRunner{}).Handler()

	env := doRPC(t, h, `{not json`)
	if env.Error == nil || env.Error.Code != codeParseError {
		t.Fatalf("error = %+v, want code %d", env.Error, codeParseError)
	}
}

// TestTaskStoreEviction checks the FIFO bound on the task store.
func TestTaskStoreEviction(t *testing.T) {
	t.Parallel()
	ts := newTaskStore()

	for i := 0; i < taskStoreCap+10; i++ {
		ts.put(a2aTask{ID: fmt.Sprintf("task-%d", i)})
	}

	if _, ok := ts.get("task-0"); ok {
		t.Error("oldest task still present, want evicted")
	}
	if _, ok := ts.get(fmt.Sprintf("task-%d", taskStoreCap+9)); !ok {
		t.Error("newest task missing")
	}
	if len(ts.tasks) != taskStoreCap {
		t.Errorf("store size = %d, want %d", len(ts.tasks), taskStoreCap)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// AG-UI surface
// ─────────────────────────────────────────────────────────────────────────────

// TestAGUIStream verifies the full happy-path event sequence.
func TestAGUIStream(t *testing.T) {
	t.Parallel()
	runner := &stubRunner{deltas: []string{"Hello ", "world."}}
	h := newTestServer(t, runner).Handler()

	req := httptest.NewRequest(http.MethodPost, "/ag-ui", strings.NewReader(`{
		"threadId": "thread-1",
		"runId": "run-1",
		"messages": [{"id": "m-1", "role": "user", "content": "greet me"}]
	}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("POST /ag-ui status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Content-Type = %q, want text/event-stream", ct)
	}
	if runner.gotTask != "greet me" {
		t.Errorf("runner task = %q, want %q", runner.gotTask, "greet me")
	}

	events := decodeSSE(t, rec.Body.String())
	want := []string{
		eventRunStarted,
		eventTextMessageStart,
		eventTextMessageContent,
		eventTextMessageContent,
		eventTextMessageEnd,
		eventRunFinished,
	}
	got := eventTypes(events)
	if len(got) != len(want) {
		t.Fatalf("event types = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event[%d] = %q, want %q (all: %v)", i, got[i], want[i], got)
		}
	}

	if events[0].ThreadID != "thread-1" || events[0].RunID != "run-1" {
		t.Errorf("RUN_STARTED ids = %q/%q", events[0].ThreadID, events[0].RunID)
	}
	if events[1].Role != "assistant" {
		t.Errorf("TEXT_MESSAGE_START role = %q, want assistant", events[1].Role)
	}
	if events[2].Delta != "Hello " || events[3].Delta != "world." {
		t.Errorf("deltas = %q, %q", events[2].Delta, events[3].Delta)
	}
	msgID := events[1].MessageID
	if msgID == "" || events[2].MessageID != msgID || events[4].MessageID != msgID {
		t.Error("message events do not share one messageId")
	}
	if events[5].ThreadID != "thread-1" || events[5].RunID != "run-1" {
		t.Errorf("RUN_FINISHED ids = %q/%q", events[5].ThreadID, events[5].RunID)
	}
}

// TestAGUIMalformed rejects bodies that do not decode.
func TestAGUIMalformed(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, &stubRunner{}).Handler()

	req := httptest.NewRequest(http.MethodPost, "/ag-ui", strings.NewReader(`{"threadId": 42}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body["error"] == "" {
		t.Error("error body has no error field")
	}
}

// TestAGUIMissingIDs rejects inputs without threadId/runId.
func TestAGUIMissingIDs(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, &stubRunner{}).Handler()

	req := httptest.NewRequest(http.MethodPost, "/ag-ui", strings.NewReader(`{
		"threadId": "thread-1",
		"messages": [{"id": "m-1", "role": "user", "content": "hi"}]
	}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

// TestAGUINoUserMessage emits RUN_ERROR when there is nothing to run.
func TestAGUINoUserMessage(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, &stubRunner{}).Handler()

	req := httptest.NewRequest(http.MethodPost, "/ag-ui", strings.NewReader(`{
		"threadId": "thread-1",
		"runId": "run-1",
		"messages": [{"id": "m-1", "role": "assistant", "content": "hello"}]
	}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	events := decodeSSE(t, rec.Body.String())
	got := eventTypes(events)
	if len(got) != 2 || got[0] != eventRunStarted || got[1] != eventRunError {
		t.Fatalf("event types = %v, want [RUN_STARTED RUN_ERROR]", got)
	}
}

// TestAGUIRunError surfaces stream failures as RUN_ERROR.
func TestAGUIRunError(t *testing.T) {
	t.Parallel()
	runner := &stubRunner{
		deltas:    []string{"partial"},
		streamErr: errors.New("supervisor: stream: 401 unauthorized"),
	}
	h := newTestServer(t, runner).Handler()

	req := httptest.NewRequest(http.MethodPost, "/ag-ui", strings.NewReader(`{
		"threadId": "thread-1",
		"runId": "run-1",
		"messages": [{"id": "m-1", "role": "user", "content": "hi"}]
	}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	events := decodeSSE(t, rec.Body.String())
	if len(events) == 0 {
		t.Fatal("no events")
	}
	last := events[len(events)-1]
	if last.Type != eventRunError {
		t.Fatalf("last event = %q, want RUN_ERROR (all: %v)", last.Type, eventTypes(events))
	}
	if !strings.Contains(last.Message, "401 unauthorized") {
		t.Errorf("RUN_ERROR message = %q, want the stream error", last.Message)
	}
	for _, ev := range events {
		if ev.Type == eventRunFinished {
			t.Error("RUN_FINISHED emitted despite failure")
		}
	}
}

// TestAGUIPrunesOversized drops oversized history before picking the task.
func TestAGUIPrunesOversized(t *testing.T) {
	t.Parallel()
	runner := &stubRunner{deltas: []string{"ok"}}
	h := newTestServer(t, runner).Handler()

	huge := strings.Repeat("x", maxHistoryMessageBytes+1)
	body := fmt.Sprintf(`{
		"threadId": "thread-1",
		"runId": "run-1",
		"messages": [
			{"id": "m-1", "role": "user", "content": "small question"},
			{"id": "m-2", "role": "user", "content": %q}
		]
	}`, huge)

	req := httptest.NewRequest(http.MethodPost, "/ag-ui", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if runner.gotTask != "small question" {
		t.Errorf("runner task = %q, want the surviving user message", runner.gotTask)
	}
}

// TestLastUserMessage picks the most recent user-role content.
func TestLastUserMessage(t *testing.T) {
	t.Parallel()
	msgs := []aguiMessage{
		{Role: "user", Content: "first"},
		{Role: "assistant", Content: "reply"},
		{Role: "user", Content: "second"},
		{Role: "assistant", Content: "reply two"},
	}
	if got := lastUserMessage(msgs); got != "second" {
		t.Errorf("lastUserMessage = %q, want %q", got, "second")
	}
	if got := lastUserMessage(nil); got != "" {
		t.Errorf("lastUserMessage(nil) = %q, want empty", got)
	}
}
