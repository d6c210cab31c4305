// Package requestid assigns each request an ID that follows it through
// the log stream and back to the client.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Header carries the request ID on both requests and responses.
const Header = "X-Request-ID"

// maxLen bounds client-supplied IDs; anything longer is replaced.
const maxLen = 64

type ctxKey struct{}

// FromContext returns the request ID, or "" when none was assigned.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// WithRequestID stores id on the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// Middleware reuses a well-formed inbound X-Request-ID or assigns a
// fresh UUID, then echoes the ID on the response so clients can quote
// it when reporting a problem.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if !wellFormed(id) {
			id = uuid.NewString()
		}

		w.Header().Set(Header, id)

		ctx := WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// wellFormed accepts printable ASCII IDs of at most maxLen bytes, so
// client-chosen values cannot put control characters into the logs.
func wellFormed(id string) bool {
	if id == "" || len(id) > maxLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}
