package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/arrmcp/arrmcp/internal/endpoints"
	"github.com/arrmcp/arrmcp/pkg/provider/llm"
)

// SupervisorConfig holds the dependencies for a [Supervisor].
type SupervisorConfig struct {
	// Service provides the category layout. Must not be nil.
	Service *endpoints.Service

	// Provider performs the model calls for the supervisor and every
	// sub-agent. Must not be nil.
	Provider llm.Provider

	// Host executes tool calls and lists the live toolset. Must not be nil.
	Host ToolHost

	// Settings carries model parameters and timeouts, shared with the
	// sub-agents.
	Settings Settings

	// ExtraTags assigns hand-written server tools that are absent from the
	// endpoint table to a resource category, so they still reach that
	// category's sub-agent. Keys are tool names, values category tags.
	ExtraTags map[string]string

	// Logger defaults to slog.Default when nil.
	Logger *slog.Logger
}

// Supervisor answers user requests by delegating to per-category sub-agents.
//
// Its own toolset contains exactly one delegation tool per resource category
// of the service; the actual MCP tools are only ever visible to the
// sub-agents.
type Supervisor struct {
	service  *endpoints.Service
	provider llm.Provider
	settings Settings
	logger   *slog.Logger

	prompt      string
	tools       []llm.ToolDefinition // delegation tools, one per category
	delegations map[string]string    // delegation tool name → category tag
	subs        map[string]*SubAgent // category tag → sub-agent
}

// NewSupervisor lists the host's tools, partitions them by resource category,
// and builds one sub-agent per category plus the supervisor that fronts them.
//
// Category membership comes from the service's endpoint table; tools outside
// the table are placed via cfg.ExtraTags and anything still unmatched is left
// out of every sub-agent.
func NewSupervisor(ctx context.Context, cfg SupervisorConfig) (*Supervisor, error) {
	if cfg.Service == nil {
		return nil, errors.New("agent: Service must not be nil")
	}
	if cfg.Provider == nil {
		return nil, errors.New("agent: Provider must not be nil")
	}
	if cfg.Host == nil {
		return nil, errors.New("agent: Host must not be nil")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	live, err := cfg.Host.Tools(ctx)
	if err != nil {
		return nil, fmt.Errorf("agent: list tools: %w", err)
	}

	byCategory := make(map[string][]llm.ToolDefinition)
	for _, tool := range live {
		tag, ok := categoryOf(cfg.Service, cfg.ExtraTags, tool.Name)
		if !ok {
			logger.Debug("tool matches no resource category", "tool", tool.Name)
			continue
		}
		byCategory[tag] = append(byCategory[tag], tool)
	}

	s := &Supervisor{
		service:     cfg.Service,
		provider:    cfg.Provider,
		settings:    cfg.Settings,
		logger:      logger,
		prompt:      SupervisorPrompt(cfg.Service.Name),
		delegations: make(map[string]string),
		subs:        make(map[string]*SubAgent),
	}

	for _, tag := range cfg.Service.Categories() {
		sub, err := NewSubAgent(SubAgentConfig{
			Name:         fmt.Sprintf("%s_%s_Agent", cfg.Service.Name, tag),
			SystemPrompt: SubAgentPrompt(cfg.Service.Name, tag),
			Tools:        byCategory[tag],
			Provider:     cfg.Provider,
			Host:         cfg.Host,
			Settings:     cfg.Settings,
			Logger:       logger,
		})
		if err != nil {
			return nil, err
		}
		tool := delegationTool(tag)
		s.subs[tag] = sub
		s.tools = append(s.tools, tool)
		s.delegations[tool.Name] = tag
	}

	logger.Info("supervisor initialized",
		"service", cfg.Service.Name,
		"sub_agents", len(s.subs),
		"tools", len(live))
	return s, nil
}

// delegationTool builds the supervisor-side tool that hands a task to one
// category's sub-agent.
func delegationTool(tag string) llm.ToolDefinition {
	display := displayTag(tag)
	return llm.ToolDefinition{
		Name:        "assign_task_to_" + tag + "_agent",
		Description: fmt.Sprintf("Assign a task related to %s to the %s Agent.", display, display),
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"task": map[string]any{"type": "string"},
			},
			"required": []string{"task"},
		},
	}
}

// categoryOf resolves a tool name to its resource category: first the
// endpoint table, then the extras map.
func categoryOf(svc *endpoints.Service, extras map[string]string, name string) (string, bool) {
	if ep, ok := svc.Find(name); ok {
		return ep.Tag, true
	}
	tag, ok := extras[name]
	return tag, ok
}

// Tools returns the supervisor's delegation tool definitions, one per
// resource category, in category order.
func (s *Supervisor) Tools() []llm.ToolDefinition {
	out := make([]llm.ToolDefinition, len(s.tools))
	copy(out, s.tools)
	return out
}

// Run answers one user task, blocking until the final text. The run is
// bounded by Settings.Timeout and the iteration cap.
func (s *Supervisor) Run(ctx context.Context, task string) (string, error) {
	if s.settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.settings.Timeout)
		defer cancel()
	}

	msgs := []llm.Message{{Role: "user", Content: task}}
	for range maxIterations {
		resp, err := s.provider.Complete(ctx, s.request(msgs))
		if err != nil {
			return "", fmt.Errorf("supervisor: completion: %w", err)
		}
		if len(resp.ToolCalls) == 0 {
			return resp.Content, nil
		}

		msgs = append(msgs, llm.Message{
			Role:      "assistant",
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		})
		msgs = append(msgs, executeToolCalls(ctx, s.settings, resp.ToolCalls, s.delegate)...)
	}
	return "", fmt.Errorf("supervisor: no final response after %d iterations", maxIterations)
}

// RunStream answers one user task, emitting assistant text deltas on the
// returned channel as they arrive. The channel closes when the run ends; the
// terminal error (nil on success) is buffered on the second channel.
func (s *Supervisor) RunStream(ctx context.Context, task string) (<-chan string, <-chan error) {
	deltas := make(chan string, 16)
	errCh := make(chan error, 1)
	go func() {
		defer close(deltas)
		errCh <- s.runStream(ctx, task, deltas)
	}()
	return deltas, errCh
}

func (s *Supervisor) runStream(ctx context.Context, task string, deltas chan<- string) error {
	if s.settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.settings.Timeout)
		defer cancel()
	}

	msgs := []llm.Message{{Role: "user", Content: task}}
	for range maxIterations {
		ch, err := s.provider.StreamCompletion(ctx, s.request(msgs))
		if err != nil {
			return fmt.Errorf("supervisor: completion: %w", err)
		}

		var text strings.Builder
		var toolCalls []llm.ToolCall
		for chunk := range ch {
			if chunk.FinishReason == "error" {
				return fmt.Errorf("supervisor: stream: %s", chunk.Text)
			}
			if chunk.Text != "" {
				text.WriteString(chunk.Text)
				select {
				case deltas <- chunk.Text:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			toolCalls = append(toolCalls, chunk.ToolCalls...)
		}
		if len(toolCalls) == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			return nil
		}

		msgs = append(msgs, llm.Message{
			Role:      "assistant",
			Content:   text.String(),
			ToolCalls: toolCalls,
		})
		msgs = append(msgs, executeToolCalls(ctx, s.settings, toolCalls, s.delegate)...)
	}
	return fmt.Errorf("supervisor: no final response after %d iterations", maxIterations)
}

func (s *Supervisor) request(msgs []llm.Message) llm.CompletionRequest {
	return llm.CompletionRequest{
		Messages:     msgs,
		Tools:        s.tools,
		Temperature:  s.settings.Temperature,
		MaxTokens:    s.settings.MaxTokens,
		SystemPrompt: s.prompt,
	}
}

// delegate hands one delegation tool call to the owning sub-agent. Every
// failure is rendered into the tool message ("Error executing task for
// <tag>: …") so the supervisor loop keeps going; there is no retry.
func (s *Supervisor) delegate(ctx context.Context, call llm.ToolCall) llm.Message {
	msg := llm.Message{Role: "tool", Name: call.Name, ToolCallID: call.ID}

	tag, ok := s.delegations[call.Name]
	if !ok {
		msg.Content = fmt.Sprintf("Error: unknown tool %q", call.Name)
		return msg
	}

	var args struct {
		Task string `json:"task"`
	}
	if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
		msg.Content = fmt.Sprintf("Error executing task for %s: invalid arguments: %v", tag, err)
		return msg
	}

	s.logger.Debug("delegating task", "category", tag, "task", args.Task)
	out, err := s.subs[tag].Run(ctx, args.Task)
	if err != nil {
		msg.Content = fmt.Sprintf("Error executing task for %s: %v", tag, err)
		return msg
	}
	msg.Content = out
	return msg
}
