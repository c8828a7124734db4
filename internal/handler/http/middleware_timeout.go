package http

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// withTimeout bounds the request context by timeout. When the deadline has
// passed and the handler returned without writing anything, a 504 timeout
// envelope is sent instead of an empty response.
func (h *Handler) withTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			rw := &responseWriter{ResponseWriter: w}
			next.ServeHTTP(rw, r.WithContext(ctx))

			if !rw.wroteHeader && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				respondError(rw, r, ErrRequestTimeout, "request timed out")
			}
		})
	}
}
