package agentserver

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/arrmcp/arrmcp/internal/version"
)

// The A2A surface is deliberately small: agent discovery via the well-known
// card plus the two JSON-RPC methods remote agents actually call, message/send
// and tasks/get. Tasks live in a bounded in-memory store and do not survive a
// restart.

// taskStoreCap bounds the ephemeral task store; oldest tasks are evicted.
const taskStoreCap = 256

// JSON-RPC 2.0 error codes. codeTaskNotFound is the A2A-assigned code for
// tasks/get misses.
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeTaskNotFound   = -32001
)

// Task lifecycle states. The server runs synchronously, so a task is already
// terminal by the time the caller sees it.
const (
	taskCompleted = "completed"
	taskFailed    = "failed"
)

// ─────────────────────────────────────────────────────────────────────────────
// Agent card
// ─────────────────────────────────────────────────────────────────────────────

// agentCard is the discovery document served at
// /a2a/.well-known/agent-card.json.
type agentCard struct {
	Name               string            `json:"name"`
	Description        string            `json:"description"`
	URL                string            `json:"url"`
	Version            string            `json:"version"`
	ProtocolVersion    string            `json:"protocolVersion"`
	Capabilities       agentCapabilities `json:"capabilities"`
	DefaultInputModes  []string          `json:"defaultInputModes"`
	DefaultOutputModes []string          `json:"defaultOutputModes"`
	Skills             []agentSkill      `json:"skills"`
}

type agentCapabilities struct {
	Streaming bool `json:"streaming"`
}

type agentSkill struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	InputModes  []string `json:"inputModes"`
	OutputModes []string `json:"outputModes"`
}

// newAgentCard builds the card from the server config: one general skill for
// the managed service, tagged with the service slug.
func newAgentCard(cfg Config) agentCard {
	svc := cfg.Service
	return agentCard{
		Name:               cfg.Name,
		Description:        cfg.Description,
		URL:                "http://" + cfg.Addr + "/a2a",
		Version:            version.Version,
		ProtocolVersion:    "0.2.5",
		Capabilities:       agentCapabilities{Streaming: true},
		DefaultInputModes:  []string{"text"},
		DefaultOutputModes: []string{"text"},
		Skills: []agentSkill{{
			ID:          svc.Slug + "_agent",
			Name:        svc.Name + " Agent",
			Description: fmt.Sprintf("General access to %s tools", svc.Name),
			Tags:        []string{svc.Slug},
			InputModes:  []string{"text"},
			OutputModes: []string{"text"},
		}},
	}
}

func (s *Server) handleAgentCard(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.card)
}

// ─────────────────────────────────────────────────────────────────────────────
// JSON-RPC endpoint
// ─────────────────────────────────────────────────────────────────────────────

type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

type rpcResponse struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      any       `json:"id"`
	Result  any       `json:"result,omitempty"`
	Error   *rpcError `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// a2aMessage is the inbound user message for message/send.
type a2aMessage struct {
	Role      string    `json:"role"`
	Parts     []a2aPart `json:"parts"`
	MessageID string    `json:"messageId,omitempty"`
	ContextID string    `json:"contextId,omitempty"`
	Kind      string    `json:"kind,omitempty"`
}

// a2aPart is a message or artifact fragment. Only text parts are supported.
type a2aPart struct {
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`
}

type a2aTask struct {
	ID        string        `json:"id"`
	ContextID string        `json:"contextId"`
	Kind      string        `json:"kind"`
	Status    a2aTaskStatus `json:"status"`
	Artifacts []a2aArtifact `json:"artifacts,omitempty"`
}

type a2aTaskStatus struct {
	State     string      `json:"state"`
	Message   *a2aMessage `json:"message,omitempty"`
	Timestamp string      `json:"timestamp"`
}

type a2aArtifact struct {
	ArtifactID string    `json:"artifactId"`
	Name       string    `json:"name,omitempty"`
	Parts      []a2aPart `json:"parts"`
}

type sendParams struct {
	Message a2aMessage `json:"message"`
}

type taskQueryParams struct {
	ID string `json:"id"`
}

// handleRPC dispatches POST /a2a. JSON-RPC errors are carried in the response
// body; the HTTP status is always 200 once the request reaches dispatch.
func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRPCError(w, nil, codeParseError, "parse error: "+err.Error())
		return
	}

	switch req.Method {
	case "message/send":
		s.rpcSendMessage(w, r, req)
	case "tasks/get":
		s.rpcGetTask(w, req)
	default:
		writeRPCError(w, req.ID, codeMethodNotFound,
			fmt.Sprintf("method %q not found", req.Method))
	}
}

// rpcSendMessage runs the supervisor on the message text and returns a
// terminal task. Supervisor failures become a failed task, not an RPC error.
func (s *Server) rpcSendMessage(w http.ResponseWriter, r *http.Request, req rpcRequest) {
	var params sendParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		writeRPCError(w, req.ID, codeInvalidParams, "invalid params: "+err.Error())
		return
	}
	task := messageText(params.Message)
	if task == "" {
		writeRPCError(w, req.ID, codeInvalidParams, "message has no text parts")
		return
	}

	ctx := r.Context()
	s.metrics.ActiveRuns.Add(ctx, 1)
	output, err := s.runner.Run(ctx, task)
	s.metrics.ActiveRuns.Add(ctx, -1)

	contextID := params.Message.ContextID
	if contextID == "" {
		contextID = newID("ctx")
	}
	t := a2aTask{
		ID:        newID("task"),
		ContextID: contextID,
		Kind:      "task",
		Status: a2aTaskStatus{
			State:     taskCompleted,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}
	if err != nil {
		s.logger.Error("message/send run failed", "task_id", t.ID, "err", err)
		t.Status.State = taskFailed
		t.Status.Message = &a2aMessage{
			Role:      "agent",
			Parts:     []a2aPart{{Kind: "text", Text: err.Error()}},
			MessageID: newID("msg"),
			Kind:      "message",
		}
	} else {
		t.Artifacts = []a2aArtifact{{
			ArtifactID: newID("artifact"),
			Name:       "result",
			Parts:      []a2aPart{{Kind: "text", Text: output}},
		}}
	}

	s.tasks.put(t)
	writeRPCResult(w, req.ID, t)
}

// rpcGetTask looks a task up by ID in the in-memory store.
func (s *Server) rpcGetTask(w http.ResponseWriter, req rpcRequest) {
	var params taskQueryParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		writeRPCError(w, req.ID, codeInvalidParams, "invalid params: "+err.Error())
		return
	}
	t, ok := s.tasks.get(params.ID)
	if !ok {
		writeRPCError(w, req.ID, codeTaskNotFound,
			fmt.Sprintf("task %q not found", params.ID))
		return
	}
	writeRPCResult(w, req.ID, t)
}

// messageText concatenates the text parts of a message.
func messageText(m a2aMessage) string {
	var text string
	for _, p := range m.Parts {
		if p.Kind == "text" {
			text += p.Text
		}
	}
	return text
}

func writeRPCResult(w http.ResponseWriter, id, result any) {
	writeJSON(w, http.StatusOK, rpcResponse{JSONRPC: "2.0", ID: id, Result: result})
}

func writeRPCError(w http.ResponseWriter, id any, code int, message string) {
	writeJSON(w, http.StatusOK, rpcResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &rpcError{Code: code, Message: message},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error":"encoding failed"}`, http.StatusInternalServerError)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Task store
// ─────────────────────────────────────────────────────────────────────────────

// taskStore holds recent tasks for tasks/get. It evicts in insertion order
// once taskStoreCap is reached.
type taskStore struct {
	mu    sync.Mutex
	tasks map[string]a2aTask
	order []string
}

func newTaskStore() *taskStore {
	return &taskStore{tasks: make(map[string]a2aTask)}
}

func (ts *taskStore) put(t a2aTask) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if _, exists := ts.tasks[t.ID]; !exists {
		ts.order = append(ts.order, t.ID)
	}
	ts.tasks[t.ID] = t
	for len(ts.order) > taskStoreCap {
		delete(ts.tasks, ts.order[0])
		ts.order = ts.order[1:]
	}
}

func (ts *taskStore) get(id string) (a2aTask, bool) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	t, ok := ts.tasks[id]
	return t, ok
}

// newID returns a prefixed random identifier, e.g. "task-9f2c4a1b0d3e5f67".
func newID(prefix string) string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf) // documented to never fail
	return prefix + "-" + hex.EncodeToString(buf)
}
