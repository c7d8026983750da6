// Package authn implements bearer-token authentication for the MCP servers'
// HTTP transports.
//
// A [TokenVerifier] checks an inbound bearer token and produces a
// [Principal]. The HTTP [Middleware] applies a verifier to every request
// except the health and well-known metadata endpoints, storing the verified
// principal (and, in delegation mode, the raw token) in the request context
// for the claims-logging middleware, the policy engine, and upstream token
// forwarding. Verifiers exist for the six auth modes the servers support:
// none, static, jwt, oauth-proxy, oidc-proxy and remote-oauth; oauth-proxy
// wraps the mux externally and has no verifier here.
//
// The stdio transport never authenticates; none of this package applies
// there.
package authn

import "context"

// Principal is the identity extracted from a verified token.
type Principal struct {
	Subject  string
	ClientID string
	Scopes   []string
}

type contextKey int

const (
	principalKey contextKey = iota
	userTokenKey
)

// WithPrincipal returns a context carrying the verified principal.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext returns the verified principal, if any.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey).(*Principal)
	return p, ok
}

// WithUserToken returns a context carrying the caller's raw bearer token.
// Only set in delegation mode, where upstream calls forward it.
func WithUserToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, userTokenKey, token)
}

// UserTokenFromContext returns the caller's raw bearer token, if captured.
func UserTokenFromContext(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(userTokenKey).(string)
	return t, ok && t != ""
}

// HasScope reports whether the principal carries the given scope.
func (p *Principal) HasScope(scope string) bool {
	if p == nil {
		return false
	}
	for _, s := range p.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}
