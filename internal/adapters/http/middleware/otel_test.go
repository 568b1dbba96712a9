package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/kanban-board/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/kanban-board/internal/platform/telemetry"
)

// These tests swap the global TracerProvider and therefore do not run in
// parallel.

func setupTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	return exporter
}

func spanAttrs(s tracetest.SpanStub) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value, len(s.Attributes))
	for _, a := range s.Attributes {
		out[a.Key] = a.Value
	}
	return out
}

func tracedRouter(metrics *telemetry.Metrics, status int) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Actor(), middleware.OpenTelemetry(metrics))
	r.Patch("/api/v1/tasks/{taskId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
	return r
}

func TestOpenTelemetry_SpanNamedByRoute(t *testing.T) {
	exporter := setupTracer(t)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/tasks/task-7", http.NoBody)
	req.Header.Set(middleware.ActorHeader, "user4")
	tracedRouter(nil, http.StatusOK).ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "HTTP PATCH /api/v1/tasks/{taskId}", spans[0].Name)

	attrs := spanAttrs(spans[0])
	assert.Equal(t, "PATCH", attrs["http.method"].AsString())
	assert.Equal(t, "/api/v1/tasks/{taskId}", attrs["http.route"].AsString())
	assert.Equal(t, "/api/v1/tasks/task-7", attrs["http.target"].AsString())
	assert.Equal(t, int64(http.StatusOK), attrs["http.status_code"].AsInt64())
	assert.Equal(t, "user4", attrs["kanban.actor"].AsString())
}

func TestOpenTelemetry_ErrorStatusOn5xx(t *testing.T) {
	exporter := setupTracer(t)

	tracedRouter(nil, http.StatusBadGateway).ServeHTTP(httptest.NewRecorder(),
		httptest.NewRequest(http.MethodPatch, "/api/v1/tasks/task-1", http.NoBody))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
}

func TestOpenTelemetry_ContinuesIncomingTrace(t *testing.T) {
	exporter := setupTracer(t)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/tasks/task-1", http.NoBody)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	tracedRouter(nil, http.StatusOK).ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", spans[0].SpanContext.TraceID().String())
	assert.Equal(t, "00f067aa0ba902b7", spans[0].Parent.SpanID().String())
}

func TestOpenTelemetry_RecordsMetricsByRoute(t *testing.T) {
	setupTracer(t)

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	metrics, err := telemetry.NewMetrics(mp, "test")
	require.NoError(t, err)

	h := tracedRouter(metrics, http.StatusNotFound)
	for _, id := range []string{"task-1", "task-2", "task-3"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPatch, "/api/v1/tasks/"+id, http.NoBody))
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var found bool
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.server.request.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			require.Len(t, sum.DataPoints, 1, "all task ids share one route series")
			dp := sum.DataPoints[0]
			assert.Equal(t, int64(3), dp.Value)
			route, _ := dp.Attributes.Value(telemetry.AttrHTTPRoute)
			assert.Equal(t, "/api/v1/tasks/{taskId}", route.AsString())
			result, _ := dp.Attributes.Value(telemetry.AttrResult)
			assert.Equal(t, "client_error", result.AsString())
			found = true
		}
	}
	assert.True(t, found, "http.server.request.total not recorded")
}

func TestOpenTelemetry_NilMetrics(t *testing.T) {
	t.Parallel()

	handler := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody))
	assert.Equal(t, http.StatusOK, rec.Code)
}
