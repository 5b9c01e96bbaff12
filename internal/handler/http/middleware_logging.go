package http

import (
	"net/http"
	"time"

	"github.com/mgavrilov/blackraven/internal/logger"
)

// withLogging emits one structured access-log line per request with the
// route, outcome status, response size, and handling time.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("remote", r.RemoteAddr).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}
