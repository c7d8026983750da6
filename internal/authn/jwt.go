package authn

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
)

// JWTConfig carries the -token-* flag values for -auth-type=jwt. Exactly one
// verification source must be configured: a JWKS URI, an HS* shared secret,
// or a static PEM public key.
type JWTConfig struct {
	JWKSURI        string
	Issuer         string
	Audience       string
	Algorithm      string
	Secret         string // HS* shared secret, or a PEM public key literal
	PublicKey      string // PEM public key literal or path to a PEM file
	RequiredScopes []string
}

// Validate applies the startup rules for the jwt auth mode. Callers exit
// non-zero on error.
func (c *JWTConfig) Validate() error {
	keyMaterial := c.Secret
	if keyMaterial == "" {
		keyMaterial = c.PublicKey
	}
	if c.JWKSURI == "" && keyMaterial == "" {
		return fmt.Errorf("jwt auth requires either -token-jwks-uri or -token-secret/-token-public-key")
	}
	if c.Issuer == "" || c.Audience == "" {
		return fmt.Errorf("jwt auth requires -token-issuer and -token-audience")
	}
	if strings.HasPrefix(c.Algorithm, "HS") {
		if keyMaterial == "" {
			return fmt.Errorf("HMAC algorithm %s requires -token-secret", c.Algorithm)
		}
		if c.JWKSURI != "" {
			return fmt.Errorf("cannot use -token-jwks-uri with HMAC")
		}
	}
	return nil
}

// JWTVerifier verifies bearer JWTs either against a remote JWKS endpoint or
// with a locally configured key.
type JWTVerifier struct {
	cfg    JWTConfig
	remote *oidc.IDTokenVerifier // JWKS mode; nil in local-key mode
	key    any                   // []byte for HS*, parsed public key otherwise
	algs   []string
}

// NewJWTVerifier validates the config and builds the verifier. In JWKS mode
// the key set is fetched lazily on first verification; algorithm and key
// flags are ignored there (with a warning, matching the startup behavior of
// the servers). A -token-public-key naming an existing file is read as PEM.
func NewJWTVerifier(ctx context.Context, cfg JWTConfig, logger *slog.Logger) (*JWTVerifier, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pem := cfg.PublicKey
	if pem != "" {
		if fi, err := os.Stat(pem); err == nil && !fi.IsDir() {
			data, err := os.ReadFile(pem)
			if err != nil {
				return nil, fmt.Errorf("read public key file: %w", err)
			}
			logger.Info("loaded static public key", "path", pem)
			pem = string(data)
		}
	}

	v := &JWTVerifier{cfg: cfg}
	switch {
	case cfg.JWKSURI != "":
		if cfg.Algorithm != "" || cfg.Secret != "" || cfg.PublicKey != "" {
			logger.Warn("JWKS mode ignores -token-algorithm and -token-secret/-token-public-key")
		}
		keySet := oidc.NewRemoteKeySet(ctx, cfg.JWKSURI)
		v.remote = oidc.NewVerifier(cfg.Issuer, keySet, &oidc.Config{ClientID: cfg.Audience})
		logger.Info("JWT verifier configured", "mode", "JWKS", "jwks_uri", cfg.JWKSURI)

	case strings.HasPrefix(cfg.Algorithm, "HS"):
		secret := cfg.Secret
		if secret == "" {
			secret = pem
		}
		v.key = []byte(secret)
		v.algs = []string{cfg.Algorithm}
		logger.Info("JWT verifier configured", "mode", "HMAC", "algorithm", cfg.Algorithm)

	default:
		if pem == "" {
			pem = cfg.Secret
		}
		key, algs, err := parsePublicKey(pem, cfg.Algorithm)
		if err != nil {
			return nil, fmt.Errorf("parse static public key: %w", err)
		}
		v.key = key
		v.algs = algs
		logger.Info("JWT verifier configured", "mode", "static key", "algorithms", algs)
	}
	return v, nil
}

// parsePublicKey parses a PEM public key, using the configured algorithm to
// pick the key type, or trying RSA then ECDSA when no algorithm is given.
func parsePublicKey(pem, algorithm string) (any, []string, error) {
	switch {
	case strings.HasPrefix(algorithm, "RS"):
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pem))
		return key, []string{algorithm}, err
	case strings.HasPrefix(algorithm, "ES"):
		key, err := jwt.ParseECPublicKeyFromPEM([]byte(pem))
		return key, []string{algorithm}, err
	}
	if key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pem)); err == nil {
		return key, []string{"RS256", "RS384", "RS512"}, nil
	}
	key, err := jwt.ParseECPublicKeyFromPEM([]byte(pem))
	return key, []string{"ES256", "ES384", "ES512"}, err
}

func (v *JWTVerifier) Verify(ctx context.Context, token string) (*Principal, error) {
	var claims map[string]any
	if v.remote != nil {
		idToken, err := v.remote.Verify(ctx, token)
		if err != nil {
			return nil, err
		}
		if err := idToken.Claims(&claims); err != nil {
			return nil, fmt.Errorf("decode token claims: %w", err)
		}
	} else {
		parsed, err := jwt.Parse(token,
			func(*jwt.Token) (any, error) { return v.key, nil },
			jwt.WithValidMethods(v.algs),
			jwt.WithIssuer(v.cfg.Issuer),
			jwt.WithAudience(v.cfg.Audience),
			jwt.WithExpirationRequired(),
		)
		if err != nil {
			return nil, err
		}
		claims = parsed.Claims.(jwt.MapClaims)
	}

	p := principalFromClaims(claims)
	for _, required := range v.cfg.RequiredScopes {
		if !p.HasScope(required) {
			return nil, fmt.Errorf("token missing required scope %q", required)
		}
	}
	return p, nil
}

// principalFromClaims maps standard JWT claims onto a Principal. Scopes come
// from the space-separated "scope" claim or a "scopes" array; the client
// identity from "client_id", falling back to "azp" and then the subject.
func principalFromClaims(claims map[string]any) *Principal {
	p := &Principal{}
	if sub, ok := claims["sub"].(string); ok {
		p.Subject = sub
	}
	switch {
	case claims["client_id"] != nil:
		p.ClientID, _ = claims["client_id"].(string)
	case claims["azp"] != nil:
		p.ClientID, _ = claims["azp"].(string)
	default:
		p.ClientID = p.Subject
	}
	switch scope := claims["scope"].(type) {
	case string:
		p.Scopes = strings.Fields(scope)
	case []any:
		for _, s := range scope {
			if str, ok := s.(string); ok {
				p.Scopes = append(p.Scopes, str)
			}
		}
	}
	if p.Scopes == nil {
		if list, ok := claims["scopes"].([]any); ok {
			for _, s := range list {
				if str, ok := s.(string); ok {
					p.Scopes = append(p.Scopes, str)
				}
			}
		}
	}
	return p
}
