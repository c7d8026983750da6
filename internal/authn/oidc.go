package authn

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
)

// OIDCConfig carries the -oidc-* flag values for -auth-type=oidc-proxy.
type OIDCConfig struct {
	ConfigURL           string
	ClientID            string
	ClientSecret        string
	BaseURL             string
	AllowedRedirectURIs []string
}

// Validate applies the startup rules for the oidc-proxy auth mode.
func (c *OIDCConfig) Validate() error {
	if c.ConfigURL == "" || c.ClientID == "" || c.ClientSecret == "" || c.BaseURL == "" {
		return fmt.Errorf("oidc-proxy requires -oidc-config-url, -oidc-client-id, -oidc-client-secret, -oidc-base-url")
	}
	return nil
}

// DiscoveryDocument is the subset of OIDC provider metadata the servers use.
type DiscoveryDocument struct {
	Issuer                string `json:"issuer"`
	AuthorizationEndpoint string `json:"authorization_endpoint"`
	TokenEndpoint         string `json:"token_endpoint"`
	JWKSURI               string `json:"jwks_uri"`
}

// FetchDiscovery downloads and decodes the provider metadata from the given
// OIDC configuration URL.
func FetchDiscovery(ctx context.Context, configURL string) (*DiscoveryDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, configURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch OIDC configuration: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch OIDC configuration: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch OIDC configuration: unexpected status %d", resp.StatusCode)
	}
	var doc DiscoveryDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode OIDC configuration: %w", err)
	}
	return &doc, nil
}

// OIDCVerifier verifies bearer tokens issued by a single OIDC provider,
// discovered from its configuration URL at startup.
type OIDCVerifier struct {
	cfg      OIDCConfig
	doc      *DiscoveryDocument
	verifier *oidc.IDTokenVerifier
}

// NewOIDCVerifier validates the config, fetches the provider metadata and
// prepares signature verification against the provider's JWKS. Access tokens
// from an OIDC provider carry provider-specific audiences, so only issuer,
// expiry and signature are enforced here.
func NewOIDCVerifier(ctx context.Context, cfg OIDCConfig, logger *slog.Logger) (*OIDCVerifier, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	doc, err := FetchDiscovery(ctx, cfg.ConfigURL)
	if err != nil {
		return nil, err
	}
	if doc.Issuer == "" || doc.JWKSURI == "" {
		return nil, fmt.Errorf("OIDC configuration at %s is missing issuer or jwks_uri", cfg.ConfigURL)
	}
	keySet := oidc.NewRemoteKeySet(ctx, doc.JWKSURI)
	verifier := oidc.NewVerifier(doc.Issuer, keySet, &oidc.Config{SkipClientIDCheck: true})
	logger.Info("OIDC verifier configured", "issuer", doc.Issuer, "jwks_uri", doc.JWKSURI)
	return &OIDCVerifier{cfg: cfg, doc: doc, verifier: verifier}, nil
}

// Discovery returns the provider metadata fetched at construction.
func (v *OIDCVerifier) Discovery() *DiscoveryDocument {
	return v.doc
}

func (v *OIDCVerifier) Verify(ctx context.Context, token string) (*Principal, error) {
	idToken, err := v.verifier.Verify(ctx, token)
	if err != nil {
		return nil, err
	}
	var claims map[string]any
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("decode token claims: %w", err)
	}
	return principalFromClaims(claims), nil
}

// Delegation holds the validated token-delegation settings. When enabled,
// the inbound bearer token is captured per request and forwarded upstream
// alongside the service API key.
type Delegation struct {
	Enabled       bool
	Audience      string
	Scopes        string
	TokenEndpoint string
}

// SetupDelegation validates the delegation flags and discovers the issuer's
// token endpoint. Delegation is only valid with -auth-type=oidc-proxy and a
// complete OIDC configuration; any failure here is a startup error.
func SetupDelegation(ctx context.Context, authType, audience, scopes string, oidcCfg OIDCConfig, logger *slog.Logger) (*Delegation, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if authType != "oidc-proxy" {
		return nil, fmt.Errorf("token delegation requires -auth-type=oidc-proxy")
	}
	if audience == "" {
		return nil, fmt.Errorf("-audience is required for delegation")
	}
	if oidcCfg.ConfigURL == "" || oidcCfg.ClientID == "" || oidcCfg.ClientSecret == "" {
		return nil, fmt.Errorf("delegation requires complete OIDC configuration (-oidc-config-url, -oidc-client-id, -oidc-client-secret)")
	}

	logger.Info("fetching OIDC configuration", "oidc_config_url", oidcCfg.ConfigURL)
	doc, err := FetchDiscovery(ctx, oidcCfg.ConfigURL)
	if err != nil {
		return nil, err
	}
	if doc.TokenEndpoint == "" {
		return nil, fmt.Errorf("no token_endpoint found in OIDC configuration")
	}
	logger.Info("OIDC configuration fetched successfully", "token_endpoint", doc.TokenEndpoint)

	return &Delegation{
		Enabled:       true,
		Audience:      audience,
		Scopes:        scopes,
		TokenEndpoint: doc.TokenEndpoint,
	}, nil
}
