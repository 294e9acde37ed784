package middleware

import (
	"context"
	"net/http"

	"github.com/wolfman30/medicare-clinic/internal/store"
)

// SessionHeader carries the client session id in both directions.
const SessionHeader = "X-Session-Id"

type contextKey string

const (
	storeKey  contextKey = "clientStore"
	claimsKey contextKey = "authClaims"
)

// Sessions attaches the caller's store to the request context. Unknown or
// missing ids get a freshly seeded session whose id is returned in the
// response header. Browsers cannot set headers on websocket upgrades, so the
// "session" query parameter is accepted as well.
func Sessions(reg *store.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(SessionHeader)
			if id == "" {
				id = r.URL.Query().Get("session")
			}
			st, _ := reg.Resolve(id)
			w.Header().Set(SessionHeader, st.ID())
			ctx := context.WithValue(r.Context(), storeKey, st)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// StoreFromContext returns the store attached by Sessions.
func StoreFromContext(ctx context.Context) (*store.Store, bool) {
	st, ok := ctx.Value(storeKey).(*store.Store)
	return st, ok
}
