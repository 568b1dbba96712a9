package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/kanban-board/internal/domain"
	"github.com/jsamuelsen11/kanban-board/internal/platform/logging"
)

// Logging returns middleware that writes one access line per request.
//
// The downstream context carries a child logger bound to the request and
// correlation IDs and, when present, the acting user. Handlers and the board
// service pick it up via logging.FromContext. At debug level the request
// headers are logged with credentials masked.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			attrs := []any{
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			}
			if actor := domain.ActorFromContext(ctx); actor != "" {
				attrs = append(attrs, slog.String("actor", actor))
			}
			child := logger.With(attrs...)
			ctx = logging.WithLogger(ctx, child)

			if child.Enabled(ctx, slog.LevelDebug) {
				child.DebugContext(ctx, "request received",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					logging.Headers(r.Header),
				)
			}

			sr := newStatusRecorder(w)
			next.ServeHTTP(sr, r.WithContext(ctx))

			level := slog.LevelInfo
			if sr.status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			child.Log(ctx, level, "request completed",
				slog.String("method", r.Method),
				slog.String("route", routePattern(r)),
				slog.String("path", r.URL.Path),
				slog.Int("status", sr.status),
				slog.Int("bytes", sr.bytes),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
