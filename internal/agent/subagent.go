// Package agent implements the supervisor multi-agent system that fronts an
// MCP tool server.
//
// A [Supervisor] owns one [SubAgent] per resource category of its service.
// The supervisor's own toolset consists purely of delegation tools
// (assign_task_to_<tag>_agent); each sub-agent runs a bounded tool loop
// against the MCP host with its toolset filtered to one category.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/arrmcp/arrmcp/pkg/provider/llm"
)

// maxIterations bounds the completion/tool-execution loop of every agent. A
// run that still wants tools after this many model turns is aborted.
const maxIterations = 16

// ToolHost is the slice of the MCP host the agents use. *mcphost.Host
// satisfies it.
type ToolHost interface {
	// Tools lists the tool definitions of all connected servers.
	Tools(ctx context.Context) ([]llm.ToolDefinition, error)

	// CallTool invokes one tool and returns its text content and error flag.
	CallTool(ctx context.Context, name string, args map[string]any) (string, bool, error)
}

// SubAgentConfig holds the dependencies for one [SubAgent].
type SubAgentConfig struct {
	// Name identifies the agent in logs and errors (e.g. "Radarr_catalog_Agent").
	Name string

	// SystemPrompt is the agent's fixed system instruction.
	SystemPrompt string

	// Tools is the agent's toolset, already filtered to its category.
	Tools []llm.ToolDefinition

	// Provider performs the model calls. Must not be nil.
	Provider llm.Provider

	// Host executes the tool calls. Must not be nil.
	Host ToolHost

	// Settings carries model parameters and timeouts.
	Settings Settings

	// Logger defaults to slog.Default when nil.
	Logger *slog.Logger
}

// SubAgent runs a bounded completion/tool loop for one resource category.
type SubAgent struct {
	name         string
	systemPrompt string
	tools        []llm.ToolDefinition
	provider     llm.Provider
	host         ToolHost
	settings     Settings
	logger       *slog.Logger
}

// NewSubAgent validates cfg and builds the agent.
func NewSubAgent(cfg SubAgentConfig) (*SubAgent, error) {
	if cfg.Name == "" {
		return nil, errors.New("agent: Name must not be empty")
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
	return &SubAgent{
		name:         cfg.Name,
		systemPrompt: cfg.SystemPrompt,
		tools:        cfg.Tools,
		provider:     cfg.Provider,
		host:         cfg.Host,
		settings:     cfg.Settings,
		logger:       logger,
	}, nil
}

// Name returns the agent's identifier.
func (a *SubAgent) Name() string { return a.name }

// Run executes the task: completion, tool calls, appended results, repeat,
// until the model answers without tool calls or the iteration cap is hit.
func (a *SubAgent) Run(ctx context.Context, task string) (string, error) {
	msgs := []llm.Message{{Role: "user", Content: task}}

	for range maxIterations {
		resp, err := a.provider.Complete(ctx, llm.CompletionRequest{
			Messages:     msgs,
			Tools:        a.tools,
			Temperature:  a.settings.Temperature,
			MaxTokens:    a.settings.MaxTokens,
			SystemPrompt: a.systemPrompt,
		})
		if err != nil {
			return "", fmt.Errorf("agent %s: completion: %w", a.name, err)
		}
		if len(resp.ToolCalls) == 0 {
			return resp.Content, nil
		}

		msgs = append(msgs, llm.Message{
			Role:      "assistant",
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		})
		msgs = append(msgs, executeToolCalls(ctx, a.settings, resp.ToolCalls, a.callTool)...)
	}

	return "", fmt.Errorf("agent %s: no final response after %d iterations", a.name, maxIterations)
}

// callTool performs one MCP tool call under the per-call timeout. Failures of
// every kind are rendered into the message content so the loop can continue;
// the model decides how to react.
func (a *SubAgent) callTool(ctx context.Context, call llm.ToolCall) llm.Message {
	msg := llm.Message{Role: "tool", Name: call.Name, ToolCallID: call.ID}

	var args map[string]any
	if call.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			msg.Content = fmt.Sprintf("Error: invalid arguments for tool %s: %v", call.Name, err)
			return msg
		}
	}

	if a.settings.ToolTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.settings.ToolTimeout)
		defer cancel()
	}

	start := time.Now()
	text, isErr, err := a.host.CallTool(ctx, call.Name, args)
	if err != nil {
		msg.Content = "Error: " + err.Error()
	} else {
		msg.Content = text
	}
	a.logger.Debug("tool call finished",
		"agent", a.name,
		"tool", call.Name,
		"duration", time.Since(start),
		"is_error", isErr || err != nil)
	return msg
}

// executeToolCalls runs every tool call of one model turn, concurrently when
// parallel tool calls are enabled. Results come back in call order. exec
// never fails; failures are folded into the returned tool message.
func executeToolCalls(ctx context.Context, settings Settings, calls []llm.ToolCall, exec func(context.Context, llm.ToolCall) llm.Message) []llm.Message {
	results := make([]llm.Message, len(calls))

	if settings.ParallelToolCalls && len(calls) > 1 {
		g, gctx := errgroup.WithContext(ctx)
		for i, call := range calls {
			g.Go(func() error {
				results[i] = exec(gctx, call)
				return nil
			})
		}
		_ = g.Wait()
		return results
	}

	for i, call := range calls {
		results[i] = exec(ctx, call)
	}
	return results
}
