package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/platform/logger"
)

// TraceMiddleware adds a trace ID to the request context and attaches a
// trace-scoped logger. This middleware should be applied early in the
// middleware chain so that all subsequent handlers have access to the
// trace ID.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Add a trace ID to the context
		ctx := shared.SetTraceID(r.Context())

		// Get the trace ID for logging
		traceID := shared.GetTraceID(ctx)

		// Carry a trace-scoped logger for downstream components
		log := slog.With(slog.String("trace_id", traceID))
		ctx = logger.WithContext(ctx, log)

		// Log the incoming request with trace ID
		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		// Continue with the updated context
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
