package httpx

import (
	"net/http"
	"strings"
)

// RequireAnyRole passes the request through when the caller holds at least
// one of the listed roles. Must run after AuthnMiddleware.
func RequireAnyRole(required ...string) Middleware {
	want := make(map[string]struct{}, len(required))
	for _, r := range required {
		want[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, role := range rolesFromCtx(r.Context()) {
				if _, ok := want[role]; ok {
					next.ServeHTTP(w, r)
					return
				}
			}

			writeRoleError(w, required...)
		})
	}
}

func writeRoleError(w http.ResponseWriter, required ...string) {
	w.Header().
		Set("WWW-Authenticate", `Bearer error="insufficient_scope", scope="`+strings.Join(required, " ")+`"`)
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte("insufficient_role"))
}
