package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	oauth "github.com/tuannvm/oauth-mcp-proxy"
	"golang.org/x/time/rate"

	"github.com/arrmcp/arrmcp/internal/authn"
	"github.com/arrmcp/arrmcp/internal/config"
	"github.com/arrmcp/arrmcp/internal/endpoints"
	"github.com/arrmcp/arrmcp/internal/mcpserver"
	"github.com/arrmcp/arrmcp/internal/observe"
	"github.com/arrmcp/arrmcp/internal/policy"
	"github.com/arrmcp/arrmcp/internal/version"
	"github.com/arrmcp/arrmcp/pkg/arr"
)

// telemetryDrain bounds the exporter flush on shutdown.
const telemetryDrain = 5 * time.Second

// MCPMain runs one *arr MCP server to completion and returns the process
// exit code. svc supplies the endpoint table; extras, when non-nil, registers
// the service's hand-written tools and prompts after the table is bound.
func MCPMain(svc *endpoints.Service, extras func(*mcpserver.Server, *mcpserver.Binder), args []string) int {
	name := svc.Slug + "-mcp"
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	// ── Flags ──────────────────────────────────────────────────────────────────
	transport := fs.String("transport", getEnv("TRANSPORT", mcpserver.TransportStdio),
		"transport: stdio, streamable-http or sse")
	host := fs.String("host", getEnv("HOST", "0.0.0.0"), "listen interface for the HTTP transports")
	port := fs.Int("port", getEnvInt("PORT", 8000), "listen port for the HTTP transports")
	logLevel := fs.String("log-level", getEnv("LOG_LEVEL", "info"), "log level: debug, info, warn or error")

	authType := fs.String("auth-type", "none",
		"authentication: none, static, jwt, oauth-proxy, oidc-proxy or remote-oauth")

	tokenJWKSURI := fs.String("token-jwks-uri", getEnv("AUTH_JWT_JWKS_URI", ""),
		"JWKS endpoint for JWT verification")
	tokenIssuer := fs.String("token-issuer", getEnv("AUTH_JWT_ISSUER", ""), "expected JWT issuer")
	tokenAudience := fs.String("token-audience", getEnv("AUTH_JWT_AUDIENCE", ""), "expected JWT audience")
	tokenAlgorithm := fs.String("token-algorithm", getEnv("AUTH_JWT_ALGORITHM", ""),
		"JWT signing algorithm (e.g. RS256, HS256)")
	// -token-secret and -token-public-key share one env default; the verifier
	// sorts out which role the material plays from -token-algorithm.
	tokenSecret := fs.String("token-secret", getEnv("AUTH_JWT_PUBLIC_KEY", ""),
		"shared secret for HS* algorithms")
	tokenPublicKey := fs.String("token-public-key", getEnv("AUTH_JWT_PUBLIC_KEY", ""),
		"PEM public key literal or file path")
	requiredScopes := fs.String("required-scopes", getEnv("AUTH_JWT_REQUIRED_SCOPES", ""),
		"comma-separated scopes every token must carry")

	oauthProvider := fs.String("oauth-provider", "", "oauth-proxy provider (okta, google, hydra, ...)")
	oauthIssuer := fs.String("oauth-issuer", "", "oauth-proxy issuer URL")
	oauthAudience := fs.String("oauth-audience", "", "oauth-proxy expected audience")
	oauthServerURL := fs.String("oauth-server-url", "", "public URL this server is reached at")

	oidcConfigURL := fs.String("oidc-config-url", getEnv("OIDC_CONFIG_URL", ""),
		"OIDC discovery document URL")
	oidcClientID := fs.String("oidc-client-id", getEnv("OIDC_CLIENT_ID", ""), "OIDC client ID")
	oidcClientSecret := fs.String("oidc-client-secret", getEnv("OIDC_CLIENT_SECRET", ""), "OIDC client secret")
	oidcBaseURL := fs.String("oidc-base-url", "", "public base URL for the OIDC proxy")
	allowedRedirects := fs.String("allowed-client-redirect-uris", "",
		"comma-separated redirect URIs allowed for OIDC clients")

	remoteAuthServers := fs.String("remote-auth-servers", "",
		"comma-separated authorization server URLs for remote-oauth")
	remoteBaseURL := fs.String("remote-base-url", "", "public base URL for remote-oauth metadata")

	enableDelegation := fs.Bool("enable-delegation", getEnvBool("ENABLE_DELEGATION", false),
		"forward the caller's bearer token to the upstream service")
	audience := fs.String("audience", getEnv("AUDIENCE", ""), "delegation token audience")
	delegatedScopes := fs.String("delegated-scopes", getEnv("DELEGATED_SCOPES", "api"),
		"scopes requested for delegated tokens")

	eunomiaType := fs.String("eunomia-type", "none", "policy enforcement: none, embedded or remote")
	eunomiaPolicyFile := fs.String("eunomia-policy-file", "mcp_policies.json",
		"policy rules file for -eunomia-type=embedded")
	eunomiaRemoteURL := fs.String("eunomia-remote-url", "", "policy server URL for -eunomia-type=remote")

	rateLimit := fs.Float64("rate-limit", 10, "tool calls per second across the server")
	rateBurst := fs.Int("rate-burst", 20, "tool call burst size")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	// ── Validation ─────────────────────────────────────────────────────────────
	switch *transport {
	case mcpserver.TransportStdio, mcpserver.TransportStreamableHTTP, mcpserver.TransportSSE:
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown transport %q (want %s, %s or %s)\n",
			name, *transport, mcpserver.TransportStdio, mcpserver.TransportStreamableHTTP, mcpserver.TransportSSE)
		return 1
	}
	if *port < 1 || *port > 65535 {
		fmt.Fprintf(os.Stderr, "%s: port %d is out of range [1, 65535]\n", name, *port)
		return 1
	}
	if !config.LogLevel(*logLevel).IsValid() {
		fmt.Fprintf(os.Stderr, "%s: invalid log level %q\n", name, *logLevel)
		return 1
	}

	logger := newLogger(config.LogLevel(*logLevel))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Authentication ─────────────────────────────────────────────────────────
	oidcCfg := authn.OIDCConfig{
		ConfigURL:           *oidcConfigURL,
		ClientID:            *oidcClientID,
		ClientSecret:        *oidcClientSecret,
		BaseURL:             *oidcBaseURL,
		AllowedRedirectURIs: splitList(*allowedRedirects),
	}

	var (
		verifier  authn.TokenVerifier
		oauthCfg  *oauth.Config
		remoteCfg *authn.RemoteOAuthConfig
	)
	switch *authType {
	case mcpserver.AuthNone:
	case mcpserver.AuthStatic:
		verifier = authn.NewStaticVerifier(authn.DemoTokens())
	case mcpserver.AuthJWT:
		v, err := authn.NewJWTVerifier(ctx, authn.JWTConfig{
			JWKSURI:        *tokenJWKSURI,
			Issuer:         *tokenIssuer,
			Audience:       *tokenAudience,
			Algorithm:      *tokenAlgorithm,
			Secret:         *tokenSecret,
			PublicKey:      *tokenPublicKey,
			RequiredScopes: splitList(*requiredScopes),
		}, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			return 1
		}
		verifier = v
	case mcpserver.AuthOAuthProxy:
		oauthCfg = &oauth.Config{
			Provider:  *oauthProvider,
			Issuer:    *oauthIssuer,
			Audience:  *oauthAudience,
			ServerURL: *oauthServerURL,
		}
	case mcpserver.AuthOIDCProxy:
		v, err := authn.NewOIDCVerifier(ctx, oidcCfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			return 1
		}
		verifier = v
	case mcpserver.AuthRemoteOAuth:
		rc := authn.RemoteOAuthConfig{
			AuthServers: splitList(*remoteAuthServers),
			BaseURL:     *remoteBaseURL,
			JWKSURI:     *tokenJWKSURI,
			Issuer:      *tokenIssuer,
			Audience:    *tokenAudience,
		}
		v, err := authn.NewRemoteOAuthVerifier(ctx, rc, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			return 1
		}
		verifier = v
		remoteCfg = &rc
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown auth type %q\n", name, *authType)
		return 1
	}

	// ── Token delegation ───────────────────────────────────────────────────────
	var delegation *authn.Delegation
	if *enableDelegation {
		d, err := authn.SetupDelegation(ctx, *authType, *audience, *delegatedScopes, oidcCfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			return 1
		}
		delegation = d
	}

	// ── Policy engine ──────────────────────────────────────────────────────────
	var engine policy.Engine
	switch *eunomiaType {
	case "none":
	case "embedded":
		e, err := policy.LoadEmbedded(*eunomiaPolicyFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			return 1
		}
		engine = e
	case "remote":
		e, err := policy.NewRemote(*eunomiaRemoteURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			return 1
		}
		engine = e
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown eunomia type %q (want none, embedded or remote)\n", name, *eunomiaType)
		return 1
	}

	// ── Telemetry ──────────────────────────────────────────────────────────────
	// Only the HTTP transports expose /metrics; stdio keeps the no-op provider.
	if *transport != mcpserver.TransportStdio {
		shutdown, err := observe.InitProvider(ctx, observe.ProviderConfig{
			ServiceName:    name,
			ServiceVersion: version.Version,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: init telemetry: %v\n", name, err)
			return 1
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), telemetryDrain)
			defer cancel()
			if err := shutdown(sctx); err != nil {
				logger.Warn("telemetry shutdown", "err", err)
			}
		}()
	}
	metrics := observe.DefaultMetrics()

	// ── Dispatch chain ─────────────────────────────────────────────────────────
	limiter := rate.NewLimiter(rate.Limit(*rateLimit), *rateBurst)
	mws := []mcpserver.Middleware{
		mcpserver.ErrorHandling(logger),
		mcpserver.RateLimit(limiter, logger),
		mcpserver.Timing(metrics, logger),
		mcpserver.Logging(logger),
		mcpserver.ClaimsLogging(logger),
	}
	if engine != nil {
		mws = append(mws, mcpserver.PolicyGate(engine, logger))
	}

	binder := &mcpserver.Binder{
		Service:          svc,
		Chain:            mcpserver.Chain(mws...),
		Logger:           logger,
		ForwardUserToken: delegation != nil,
		Breakers:         arr.NewBreakerGroup(arr.BreakerConfig{}),
	}

	// ── Server ─────────────────────────────────────────────────────────────────
	srv := mcpserver.New(mcpserver.Config{
		Name:        svc.Name,
		Transport:   *transport,
		Addr:        net.JoinHostPort(*host, strconv.Itoa(*port)),
		AuthType:    *authType,
		Verifier:    verifier,
		OAuth:       oauthCfg,
		RemoteOAuth: remoteCfg,
		Delegation:  delegation != nil,
		EunomiaType: *eunomiaType,
		Metrics:     metrics,
		Logger:      logger,
	})
	srv.Bind(binder)
	if extras != nil {
		extras(srv, binder)
	}

	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return 1
	}
	return 0
}
