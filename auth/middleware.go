package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey struct{}

// WithIdentity returns a context carrying the caller's identity.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the caller's identity, if the request carried a valid
// token.
func FromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(*Identity)
	return id, ok
}

// IsAuthenticated reports the request's auth flag.
func IsAuthenticated(ctx context.Context) bool {
	_, ok := FromContext(ctx)
	return ok
}

// Middleware verifies an "Authorization: Bearer <token>" header and, on
// success, attaches the identity to the request context. Absent or invalid
// tokens do not reject the request; the auth flag simply stays false and
// resolvers that demand it fail.
func (t *Tokens) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			raw, found = strings.CutPrefix(header, "bearer ")
		}
		if found {
			if id, err := t.Verify(strings.TrimSpace(raw)); err == nil {
				r = r.WithContext(WithIdentity(r.Context(), id))
			}
		}
		next.ServeHTTP(w, r)
	})
}
