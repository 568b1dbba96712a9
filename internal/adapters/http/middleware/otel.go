package middleware

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/kanban-board/internal/domain"
	"github.com/jsamuelsen11/kanban-board/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/kanban-board/internal/adapters/http"

// OpenTelemetry returns middleware that opens a server span per request,
// continuing any W3C trace context in the incoming headers, and records the
// http.server.request metrics. Spans and metrics are keyed by the chi route
// template rather than the raw path so board, column and task ids do not
// explode cardinality. A nil metrics skips recording.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := otel.Tracer(tracerName).Start(ctx, "HTTP "+r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					telemetry.AttrHTTPMethod.String(r.Method),
					attribute.String("http.target", r.URL.Path),
				),
			)
			defer span.End()

			if actor := domain.ActorFromContext(ctx); actor != "" {
				span.SetAttributes(telemetry.AttrActor.String(actor))
			}

			sr := newStatusRecorder(w)
			next.ServeHTTP(sr, r.WithContext(ctx))

			route := routePattern(r)
			span.SetName("HTTP " + r.Method + " " + route)
			span.SetAttributes(
				telemetry.AttrHTTPRoute.String(route),
				telemetry.AttrHTTPStatus.Int(sr.status),
			)
			if sr.status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(sr.status))
			}

			recordServerMetrics(ctx, metrics, r.Method, route, start, sr.status)
		})
	}
}

func recordServerMetrics(ctx context.Context, metrics *telemetry.Metrics, method, route string, start time.Time, status int) {
	if metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPRoute.String(route),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrResult.String(statusClass(status)),
	)
	metrics.ServerRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	metrics.ServerRequestTotal.Add(ctx, 1, attrs)
}

// statusClass buckets a status for the result attribute.
func statusClass(status int) string {
	switch {
	case status >= http.StatusInternalServerError:
		return "server_error"
	case status >= http.StatusBadRequest:
		return "client_error"
	default:
		return "success"
	}
}
