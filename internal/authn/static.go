package authn

import (
	"context"
	"fmt"
)

// TokenVerifier checks a bearer token and returns the principal it
// represents. Implementations must be safe for concurrent use.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Principal, error)
}

// StaticToken is one entry in a static token table.
type StaticToken struct {
	ClientID string
	Scopes   []string
}

// StaticVerifier authenticates against a fixed in-memory token table. It
// exists for development and internal testing, not production.
type StaticVerifier struct {
	tokens map[string]StaticToken
}

// NewStaticVerifier builds a verifier over the given token table.
func NewStaticVerifier(tokens map[string]StaticToken) *StaticVerifier {
	return &StaticVerifier{tokens: tokens}
}

// DemoTokens is the static token table the -auth-type=static mode ships
// with: two well-known tokens for local testing.
func DemoTokens() map[string]StaticToken {
	return map[string]StaticToken{
		"test-token":  {ClientID: "test-user", Scopes: []string{"read", "write"}},
		"admin-token": {ClientID: "admin", Scopes: []string{"admin"}},
	}
}

func (v *StaticVerifier) Verify(_ context.Context, token string) (*Principal, error) {
	entry, ok := v.tokens[token]
	if !ok {
		return nil, fmt.Errorf("unknown token")
	}
	return &Principal{
		Subject:  entry.ClientID,
		ClientID: entry.ClientID,
		Scopes:   entry.Scopes,
	}, nil
}
