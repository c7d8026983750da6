package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"golang.org/x/time/rate"

	"github.com/arrmcp/arrmcp/internal/authn"
	"github.com/arrmcp/arrmcp/internal/observe"
	"github.com/arrmcp/arrmcp/internal/policy"
)

// Call is one tool invocation flowing through the dispatch chain.
type Call struct {
	Tool string
	Tags []string
	Args json.RawMessage
}

// Result is what a tool call produces: text content, flagged as an error
// when the handler or the upstream request failed.
type Result struct {
	Text    string
	IsError bool
}

// Handler executes one tool call.
type Handler func(ctx context.Context, call *Call) (*Result, error)

// Middleware decorates a Handler. The dispatch chain plays the role the
// original servers give their per-request middlewares, but wraps tool
// dispatch directly so it behaves identically on every transport.
type Middleware func(Handler) Handler

// Chain composes middlewares so that the first one is outermost.
func Chain(mws ...Middleware) Middleware {
	return func(h Handler) Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			h = mws[i](h)
		}
		return h
	}
}

// ErrorHandling converts handler errors and panics into tool error results,
// so a failing upstream never tears down the MCP session. It sits outermost.
func ErrorHandling(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, call *Call) (res *Result, err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("tool handler panicked",
						"tool", call.Tool, "panic", r, "stack", string(debug.Stack()))
					res = &Result{Text: fmt.Sprintf("internal error executing %s: %v", call.Tool, r), IsError: true}
					err = nil
				}
			}()
			res, err = next(ctx, call)
			if err != nil {
				logger.Debug("tool call failed", "tool", call.Tool, "error", err)
				return &Result{Text: err.Error(), IsError: true}, nil
			}
			return res, nil
		}
	}
}

// RateLimit enforces a server-wide requests-per-second budget shared by all
// tools. Over-limit calls fail immediately instead of queueing.
func RateLimit(limiter *rate.Limiter, logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, call *Call) (*Result, error) {
			if !limiter.Allow() {
				logger.Warn("rate limit exceeded", "tool", call.Tool)
				return &Result{Text: "Rate limit exceeded. Please try again later.", IsError: true}, nil
			}
			return next(ctx, call)
		}
	}
}

// Timing records the duration of each tool call to the OTel histogram and
// logs it at debug level.
func Timing(metrics *observe.Metrics, logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, call *Call) (*Result, error) {
			start := time.Now()
			res, err := next(ctx, call)
			d := time.Since(start)
			isErr := err != nil || (res != nil && res.IsError)
			metrics.RecordToolCall(ctx, call.Tool, d, isErr)
			logger.Debug("tool call timed", "tool", call.Tool, "duration", d)
			return res, err
		}
	}
}

// Logging writes a structured line when a tool call starts and when it
// completes.
func Logging(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, call *Call) (*Result, error) {
			logger.Info("tool call", "tool", call.Tool, "tags", call.Tags)
			res, err := next(ctx, call)
			switch {
			case err != nil:
				logger.Info("tool call failed", "tool", call.Tool, "error", err)
			case res != nil && res.IsError:
				logger.Info("tool call completed", "tool", call.Tool, "is_error", true)
			case res != nil:
				logger.Info("tool call completed", "tool", call.Tool, "is_error", false, "bytes", len(res.Text))
			}
			return res, err
		}
	}
}

// ClaimsLogging logs the verified claims of the calling principal when the
// HTTP auth middleware established one. Anonymous calls (stdio, auth-type
// none) pass through silently.
func ClaimsLogging(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, call *Call) (*Result, error) {
			if p, ok := authn.PrincipalFromContext(ctx); ok {
				logger.Debug("authenticated tool call",
					"tool", call.Tool,
					"subject", p.Subject,
					"client_id", p.ClientID,
					"scopes", p.Scopes)
			}
			return next(ctx, call)
		}
	}
}

// PolicyGate consults the policy engine before dispatch. Denied calls get a
// tool error; an engine failure propagates as an error (the error middleware
// turns it into a tool error with the failure text).
func PolicyGate(engine policy.Engine, logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, call *Call) (*Result, error) {
			var principal string
			if p, ok := authn.PrincipalFromContext(ctx); ok {
				principal = p.ClientID
			}
			dec, err := engine.Check(ctx, policy.Input{
				Principal: principal,
				Action:    policy.ActionCallTool,
				Resource:  call.Tool,
			})
			if err != nil {
				return nil, fmt.Errorf("policy check: %w", err)
			}
			if !dec.Allow {
				logger.Warn("policy denied tool call",
					"tool", call.Tool, "principal", principal, "reason", dec.Reason)
				return &Result{Text: "Access denied by policy", IsError: true}, nil
			}
			return next(ctx, call)
		}
	}
}
