package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/opengamebackend/auth/pkg/jwtx"
	"github.com/opengamebackend/auth/pkg/slogx"
)

// TokenVerifier validates a compact access token and returns its claims.
type TokenVerifier interface {
	Verify(raw string) (jwtx.Claims, error)
}

// AuthnMiddleware requires a valid bearer token and injects the player id and
// roles into the request context for downstream handlers.
func AuthnMiddleware(v TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				writeBearerError(w, "token verification failed")
				return
			}

			ctx = context.WithValue(ctx, CtxKeyPlayerID, claims.Subject)
			ctx = context.WithValue(ctx, CtxKeyRoles, claims.Roles)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}
