// Package agentserver exposes a supervisor agent over HTTP.
//
// The server carries the three surfaces an agent deployment needs:
//
//   - A2A: agent-card discovery at GET /a2a/.well-known/agent-card.json and
//     a JSON-RPC 2.0 endpoint at POST /a2a supporting message/send and
//     tasks/get (tasks are held in an ephemeral in-memory store).
//   - AG-UI: POST /ag-ui accepts a RunAgentInput and answers with a
//     server-sent event stream of run lifecycle and text-delta events.
//   - Operations: GET /health, GET /readyz and a Prometheus GET /metrics.
//
// All routes are wrapped in the observe middleware, so every request gets a
// trace span, a correlation ID and request metrics. Timeouts are tuned for
// long-running agent requests: idle connections are kept for 30 minutes and
// shutdown drains in-flight runs for up to 60 seconds.
package agentserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arrmcp/arrmcp/internal/endpoints"
	"github.com/arrmcp/arrmcp/internal/health"
	"github.com/arrmcp/arrmcp/internal/observe"
	"github.com/arrmcp/arrmcp/internal/version"
)

const (
	// idleTimeout keeps agent connections alive between long tool chains.
	idleTimeout = 30 * time.Minute

	// drainTimeout bounds graceful shutdown once the run context is done.
	drainTimeout = 60 * time.Second

	readHeaderTimeout = 10 * time.Second
)

// Runner executes one agent task. *agent.Supervisor implements it.
type Runner interface {
	// Run executes the task and returns the final text response.
	Run(ctx context.Context, task string) (string, error)

	// RunStream executes the task and streams text deltas. The error
	// channel yields exactly one value after the delta channel closes.
	RunStream(ctx context.Context, task string) (<-chan string, <-chan error)
}

// Config carries the dependencies and identity of an agent server.
type Config struct {
	// Service is the managed *arr service; it provides the defaults for
	// the agent card. Must not be nil.
	Service *endpoints.Service

	// Runner executes agent tasks. Must not be nil.
	Runner Runner

	// Addr is the listen address, e.g. "0.0.0.0:9000".
	Addr string

	// Name is the agent display name. Defaults to "<Service>Agent".
	Name string

	// Description appears on the agent card. Defaults to a summary built
	// from the service name.
	Description string

	// Checkers are registered on the /readyz endpoint.
	Checkers []health.Checker

	// Metrics defaults to observe.DefaultMetrics.
	Metrics *observe.Metrics

	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// Server serves the A2A and AG-UI surfaces for one supervisor agent.
type Server struct {
	cfg     Config
	runner  Runner
	card    agentCard
	tasks   *taskStore
	metrics *observe.Metrics
	logger  *slog.Logger
}

// New validates cfg, fills in defaults and returns a ready-to-run Server.
func New(cfg Config) (*Server, error) {
	if cfg.Service == nil {
		return nil, errors.New("agentserver: Service must not be nil")
	}
	if cfg.Runner == nil {
		return nil, errors.New("agentserver: Runner must not be nil")
	}
	if cfg.Name == "" {
		cfg.Name = cfg.Service.Name + "Agent"
	}
	if cfg.Description == "" {
		cfg.Description = fmt.Sprintf(
			"A multi-agent system for managing %s resources via delegated specialists.",
			cfg.Service.Name)
	}
	if cfg.Metrics == nil {
		cfg.Metrics = observe.DefaultMetrics()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Server{
		cfg:     cfg,
		runner:  cfg.Runner,
		card:    newAgentCard(cfg),
		tasks:   newTaskStore(),
		metrics: cfg.Metrics,
		logger:  cfg.Logger,
	}, nil
}

// Handler builds the full route table wrapped in the observe middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	health.New(s.cfg.Checkers...).Register(mux)
	mux.HandleFunc("GET /a2a/.well-known/agent-card.json", s.handleAgentCard)
	mux.HandleFunc("POST /a2a", s.handleRPC)
	mux.HandleFunc("POST /ag-ui", s.handleAGUI)
	mux.Handle("GET /metrics", promhttp.Handler())

	return observe.Middleware(s.metrics)(mux)
}

// Run serves until ctx is cancelled, then drains in-flight requests for up
// to drainTimeout before returning.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
		// No WriteTimeout: /ag-ui streams for the whole run.
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("agent server listening",
		"agent", s.cfg.Name,
		"addr", s.cfg.Addr,
		"version", version.Info(),
	)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("agentserver: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("agent server shutting down", "drain", drainTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("agentserver: shutdown: %w", err)
	}
	return nil
}
