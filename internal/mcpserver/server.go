// Package mcpserver assembles the per-service MCP servers: the endpoint
// table binder, the tool dispatch chain, the transports and the HTTP
// plumbing around them.
//
// A server is built from a [Config], bound to a service table through a
// [Binder], and started with [Server.Run], which selects the transport:
// stdio for local clients, streamable HTTP or SSE behind the auth
// middleware for remote ones. All logging goes through slog; on the stdio
// transport stdout belongs to the protocol, so handlers must write to
// stderr.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	oauth "github.com/tuannvm/oauth-mcp-proxy"
	mcpoauth "github.com/tuannvm/oauth-mcp-proxy/mcp"

	"github.com/arrmcp/arrmcp/internal/authn"
	"github.com/arrmcp/arrmcp/internal/health"
	"github.com/arrmcp/arrmcp/internal/observe"
	"github.com/arrmcp/arrmcp/internal/version"
)

// Transport names accepted by -transport.
const (
	TransportStdio          = "stdio"
	TransportStreamableHTTP = "streamable-http"
	TransportSSE            = "sse"
)

// Auth modes accepted by -auth-type.
const (
	AuthNone        = "none"
	AuthStatic      = "static"
	AuthJWT         = "jwt"
	AuthOAuthProxy  = "oauth-proxy"
	AuthOIDCProxy   = "oidc-proxy"
	AuthRemoteOAuth = "remote-oauth"
)

const (
	httpReadHeaderTimeout = 10 * time.Second
	httpReadTimeout       = 30 * time.Second
	httpIdleTimeout       = 120 * time.Second

	// shutdownTimeout bounds the drain of open MCP sessions on SIGTERM.
	shutdownTimeout = 10 * time.Second
)

// Config assembles one MCP server.
type Config struct {
	// Name is the MCP implementation name, the plain service name
	// ("Radarr", "Chaptarr").
	Name string

	// Instructions is the optional usage guidance advertised to clients.
	Instructions string

	// Transport is one of the Transport* constants.
	Transport string

	// Addr is the listen address for the HTTP transports.
	Addr string

	// AuthType is one of the Auth* constants; it drives the banner and the
	// oauth-proxy special case. The Verifier carries the actual
	// verification logic for the other modes.
	AuthType string

	// Verifier checks bearer tokens on the HTTP transports. Nil means no
	// verification (auth-type none, or oauth-proxy which wraps externally).
	Verifier authn.TokenVerifier

	// OAuth configures the oauth-proxy mode. Required when AuthType is
	// AuthOAuthProxy.
	OAuth *oauth.Config

	// RemoteOAuth, when set, serves the protected-resource metadata
	// document for remote-oauth mode.
	RemoteOAuth *authn.RemoteOAuthConfig

	// Delegation forwards the caller's bearer token to the upstream
	// service. The flag here only captures tokens and prints the banner;
	// the Binder does the forwarding.
	Delegation bool

	// EunomiaType is the policy mode for the banner ("none", "embedded",
	// "remote"). The engine itself is part of the dispatch chain.
	EunomiaType string

	// Metrics defaults to observe.DefaultMetrics.
	Metrics *observe.Metrics

	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// Server wraps one mcp.Server together with its transport configuration.
type Server struct {
	impl    *mcp.Server
	cfg     Config
	metrics *observe.Metrics
	logger  *slog.Logger
}

// New builds the MCP server. Tools are attached afterwards via [Server.Bind]
// and, for Radarr, [RegisterRadarrExtras].
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = observe.DefaultMetrics()
	}
	if cfg.AuthType == "" {
		cfg.AuthType = AuthNone
	}
	if cfg.EunomiaType == "" {
		cfg.EunomiaType = "none"
	}
	impl := mcp.NewServer(
		&mcp.Implementation{Name: cfg.Name, Version: version.Version},
		&mcp.ServerOptions{Instructions: cfg.Instructions, Logger: cfg.Logger},
	)
	return &Server{impl: impl, cfg: cfg, metrics: cfg.Metrics, logger: cfg.Logger}
}

// Bind registers every endpoint of the binder's service table as a tool.
func (s *Server) Bind(b *Binder) {
	b.RegisterAll(s.impl)
}

// Run starts the configured transport and blocks until the context is done
// or the transport fails. An unknown transport is an error before anything
// is served.
func (s *Server) Run(ctx context.Context) error {
	s.logBanner()

	switch s.cfg.Transport {
	case TransportStdio:
		return s.impl.Run(ctx, &mcp.StdioTransport{})
	case TransportStreamableHTTP:
		handler := mcp.NewStreamableHTTPHandler(
			func(*http.Request) *mcp.Server { return s.impl }, nil)
		return s.serveHTTP(ctx, "/mcp", handler)
	case TransportSSE:
		handler := mcp.NewSSEHandler(
			func(*http.Request) *mcp.Server { return s.impl }, nil)
		return s.serveHTTP(ctx, "/sse", handler)
	default:
		return fmt.Errorf("mcpserver: unknown transport %q (want %s, %s or %s)",
			s.cfg.Transport, TransportStdio, TransportStreamableHTTP, TransportSSE)
	}
}

// serveHTTP mounts the MCP handler behind auth on mountPath, adds the
// operational endpoints, and serves with graceful shutdown.
func (s *Server) serveHTTP(ctx context.Context, mountPath string, mcpHandler http.Handler) error {
	mux := http.NewServeMux()
	health.New().Register(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	switch {
	case s.cfg.AuthType == AuthOAuthProxy:
		if s.cfg.OAuth == nil {
			return errors.New("mcpserver: oauth-proxy auth requires OAuth settings")
		}
		if mountPath != "/mcp" {
			return errors.New("mcpserver: oauth-proxy auth requires the streamable-http transport")
		}
		oauthServer, handler, err := mcpoauth.WithOAuth(mux, s.cfg.OAuth, s.impl)
		if err != nil {
			return fmt.Errorf("mcpserver: oauth setup: %w", err)
		}
		oauthServer.LogStartup(false)
		mux.Handle(mountPath, handler)
	default:
		wrap := authn.Middleware(s.cfg.Verifier, s.cfg.Delegation, s.logger)
		mux.Handle(mountPath, wrap(mcpHandler))
	}

	if s.cfg.RemoteOAuth != nil {
		mux.Handle("GET "+authn.WellKnownProtectedResource, s.cfg.RemoteOAuth.MetadataHandler())
	}

	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           observe.Middleware(s.metrics)(mux),
		ReadHeaderTimeout: httpReadHeaderTimeout,
		ReadTimeout:       httpReadTimeout,
		IdleTimeout:       httpIdleTimeout,
		// No WriteTimeout: both HTTP transports hold streaming responses.
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("MCP server listening", "addr", s.cfg.Addr, "path", mountPath)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("mcpserver: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("MCP server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("mcpserver: shutdown: %w", err)
	}
	return nil
}

// logBanner prints the startup summary the servers have always shown.
func (s *Server) logBanner() {
	s.logger.Info("starting MCP server",
		"server", s.cfg.Name,
		"version", version.Info(),
		"transport", strings.ToUpper(s.cfg.Transport),
		"auth", s.cfg.AuthType,
		"delegation", onOff(s.cfg.Delegation),
		"eunomia", s.cfg.EunomiaType,
	)
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}
