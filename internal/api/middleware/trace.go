// Package middleware provides HTTP middleware for the API: request
// tracing and bearer-token authentication.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/serafaleo/wingman/internal/api/shared"
	"github.com/serafaleo/wingman/internal/platform/logger"
)

// Trace adds a trace ID to the request context and attaches a
// trace-scoped logger, so every downstream log line of the request can be
// correlated. Apply it before everything else in the chain.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
