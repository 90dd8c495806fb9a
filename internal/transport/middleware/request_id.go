package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/carewatch/carewatch-backend/pkg/ctxutil"
)

const requestIDHeader = "X-Request-Id"

// RequestID adopts the caller's request id or generates one, stores it in
// the context for log correlation, and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		ctx := ctxutil.WithRequestID(r.Context(), id)
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
