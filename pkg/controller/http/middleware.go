package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
)

// LoggingMiddleware embeds the base logger, tagged with the request ID, into
// each request context and logs the request once it completes
func LoggingMiddleware(ctx context.Context) func(next http.Handler) http.Handler {
	base := ctxlog.From(ctx)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := base
			if reqID := middleware.GetReqID(r.Context()); reqID != "" {
				logger = logger.With("request_id", reqID)
			}
			r = r.WithContext(ctxlog.With(r.Context(), logger))

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		})
	}
}
