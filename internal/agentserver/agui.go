package agentserver

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// AG-UI event types emitted on the /ag-ui stream.
const (
	eventRunStarted         = "RUN_STARTED"
	eventRunFinished        = "RUN_FINISHED"
	eventRunError           = "RUN_ERROR"
	eventTextMessageStart   = "TEXT_MESSAGE_START"
	eventTextMessageContent = "TEXT_MESSAGE_CONTENT"
	eventTextMessageEnd     = "TEXT_MESSAGE_END"
)

// maxHistoryMessageBytes caps individual history messages replayed by UI
// clients; some frontends echo entire tool dumps back as context.
const maxHistoryMessageBytes = 8 * 1024

// runAgentInput is the AG-UI run request body.
type runAgentInput struct {
	ThreadID string        `json:"threadId"`
	RunID    string        `json:"runId"`
	Messages []aguiMessage `json:"messages"`
}

type aguiMessage struct {
	ID      string `json:"id"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

// aguiEvent is the wire form of every emitted event; fields not used by an
// event type are omitted.
type aguiEvent struct {
	Type      string `json:"type"`
	ThreadID  string `json:"threadId,omitempty"`
	RunID     string `json:"runId,omitempty"`
	MessageID string `json:"messageId,omitempty"`
	Role      string `json:"role,omitempty"`
	Delta     string `json:"delta,omitempty"`
	Message   string `json:"message,omitempty"`
}

// handleAGUI runs the supervisor on the latest user message and streams
// AG-UI events over SSE. Malformed input is rejected with a 422 before the
// stream starts; failures after that point surface as a RUN_ERROR event.
func (s *Server) handleAGUI(w http.ResponseWriter, r *http.Request) {
	var input runAgentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity,
			map[string]string{"error": "invalid run input: " + err.Error()})
		return
	}
	if input.ThreadID == "" || input.RunID == "" {
		writeJSON(w, http.StatusUnprocessableEntity,
			map[string]string{"error": "threadId and runId are required"})
		return
	}

	input.Messages = pruneOversized(s.logger, input.Messages)
	task := lastUserMessage(input.Messages)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	enc := newSSEEncoder(w)
	enc.write(aguiEvent{Type: eventRunStarted, ThreadID: input.ThreadID, RunID: input.RunID})

	if task == "" {
		enc.write(aguiEvent{Type: eventRunError, Message: "run input has no user message"})
		return
	}

	ctx := r.Context()
	s.metrics.ActiveRuns.Add(ctx, 1)
	defer s.metrics.ActiveRuns.Add(ctx, -1)

	deltas, errCh := s.runner.RunStream(ctx, task)

	messageID := newID("msg")
	started := false
	for delta := range deltas {
		if !started {
			enc.write(aguiEvent{Type: eventTextMessageStart, MessageID: messageID, Role: "assistant"})
			started = true
		}
		enc.write(aguiEvent{Type: eventTextMessageContent, MessageID: messageID, Delta: delta})
	}
	if started {
		enc.write(aguiEvent{Type: eventTextMessageEnd, MessageID: messageID})
	}

	if err := <-errCh; err != nil {
		s.logger.Error("ag-ui run failed",
			"thread_id", input.ThreadID, "run_id", input.RunID, "err", err)
		enc.write(aguiEvent{Type: eventRunError, Message: err.Error()})
		return
	}
	enc.write(aguiEvent{Type: eventRunFinished, ThreadID: input.ThreadID, RunID: input.RunID})
}

// pruneOversized drops history messages whose content exceeds
// maxHistoryMessageBytes before the run sees them.
func pruneOversized(logger *slog.Logger, msgs []aguiMessage) []aguiMessage {
	kept := make([]aguiMessage, 0, len(msgs))
	dropped := 0
	for _, m := range msgs {
		if len(m.Content) > maxHistoryMessageBytes {
			dropped++
			continue
		}
		kept = append(kept, m)
	}
	if dropped > 0 {
		logger.Debug("pruned oversized history messages",
			"dropped", dropped, "kept", len(kept))
	}
	return kept
}

// lastUserMessage returns the content of the most recent user-role message,
// which is the task for this run.
func lastUserMessage(msgs []aguiMessage) string {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == "user" {
			return msgs[i].Content
		}
	}
	return ""
}

// sseEncoder writes server-sent events and flushes after each one so deltas
// reach the client as they are produced.
type sseEncoder struct {
	w       io.Writer
	flusher http.Flusher
}

func newSSEEncoder(w http.ResponseWriter) *sseEncoder {
	enc := &sseEncoder{w: w}
	if f, ok := w.(http.Flusher); ok {
		enc.flusher = f
	}
	return enc
}

func (e *sseEncoder) write(ev aguiEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	fmt.Fprintf(e.w, "data: %s\n\n", data)
	if e.flusher != nil {
		e.flusher.Flush()
	}
}
