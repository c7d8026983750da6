package authn

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// RemoteOAuthConfig carries the flag values for -auth-type=remote-oauth:
// inbound tokens are verified against a JWKS endpoint while the server
// advertises external authorization servers through protected-resource
// metadata.
type RemoteOAuthConfig struct {
	AuthServers []string
	BaseURL     string
	JWKSURI     string
	Issuer      string
	Audience    string
}

// Validate applies the startup rules for the remote-oauth auth mode.
func (c *RemoteOAuthConfig) Validate() error {
	if len(c.AuthServers) == 0 || c.BaseURL == "" || c.JWKSURI == "" || c.Issuer == "" || c.Audience == "" {
		return fmt.Errorf("remote-oauth requires -remote-auth-servers, -remote-base-url, -token-jwks-uri, -token-issuer, -token-audience")
	}
	return nil
}

// NewRemoteOAuthVerifier builds the JWKS-backed token verifier for the
// remote-oauth mode.
func NewRemoteOAuthVerifier(ctx context.Context, cfg RemoteOAuthConfig, logger *slog.Logger) (*JWTVerifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewJWTVerifier(ctx, JWTConfig{
		JWKSURI:  cfg.JWKSURI,
		Issuer:   cfg.Issuer,
		Audience: cfg.Audience,
	}, logger)
}

// WellKnownProtectedResource is the path the protected-resource metadata is
// served under (RFC 9728).
const WellKnownProtectedResource = "/.well-known/oauth-protected-resource"

// MetadataHandler serves the protected-resource metadata document pointing
// clients at the external authorization servers.
func (c RemoteOAuthConfig) MetadataHandler() http.Handler {
	doc := map[string]any{
		"resource":                 c.BaseURL,
		"authorization_servers":    c.AuthServers,
		"bearer_methods_supported": []string{"header"},
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(doc)
	})
}
