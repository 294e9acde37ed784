package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/wolfman30/medicare-clinic/internal/auth"
	"github.com/wolfman30/medicare-clinic/internal/session"
)

// RequireRole admits requests that carry a valid bearer token for role,
// issued to the same session, while that session is still signed in as role.
// Logging out therefore revokes the token immediately. It must run after
// Sessions.
func RequireRole(issuer *auth.TokenIssuer, role session.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "missing authorization header", http.StatusUnauthorized)
				return
			}
			claims, err := issuer.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil || claims.Role != role {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			st, ok := StoreFromContext(r.Context())
			if !ok || st.ID() != claims.SessionID {
				http.Error(w, "token does not belong to this session", http.StatusUnauthorized)
				return
			}
			if st.Session().Role() != role {
				http.Error(w, "session is not signed in", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the token claims accepted by RequireRole.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}
