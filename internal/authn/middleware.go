package authn

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

// Middleware wraps an HTTP handler with bearer-token verification. The
// health endpoint and well-known metadata documents stay reachable without
// credentials. A nil verifier disables verification but, when captureToken
// is set, still records any bearer token present so delegation keeps working
// behind an outer proxy.
func Middleware(verifier TokenVerifier, captureToken bool, logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/health" || strings.HasPrefix(r.URL.Path, "/.well-known/") {
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r)
			if verifier == nil {
				if captureToken && token != "" {
					r = r.WithContext(WithUserToken(r.Context(), token))
				}
				next.ServeHTTP(w, r)
				return
			}

			if token == "" {
				w.Header().Set("WWW-Authenticate", "Bearer")
				writeAuthError(w, http.StatusUnauthorized, "authorization required")
				return
			}
			principal, err := verifier.Verify(r.Context(), token)
			if err != nil {
				logger.Warn("token verification failed", "path", r.URL.Path, "error", err)
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				writeAuthError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := WithPrincipal(r.Context(), principal)
			if captureToken {
				ctx = WithUserToken(ctx, token)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer ..." header.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = fmt.Fprintf(w, `{"error":%q}`, msg)
}
