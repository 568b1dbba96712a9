package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/kanban-board/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/kanban-board/internal/platform/httpclient"
)

type seenIDs struct {
	request, correlation string
	outbound             string
}

func captureIDs(seen *seenIDs) http.Handler {
	return http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen.request = middleware.RequestIDFromContext(r.Context())
		seen.correlation = middleware.CorrelationIDFromContext(r.Context())
		seen.outbound = httpclient.RequestIDFromContext(r.Context())
	})
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	t.Parallel()

	var seen seenIDs
	handler := middleware.RequestID()(captureIDs(&seen))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/boards", http.NoBody))

	parsed, err := uuid.Parse(seen.request)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.Equal(t, seen.request, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, seen.request, seen.outbound, "outbound calls must see the same request id")
}

func TestRequestID_UniquenessAcrossRequests(t *testing.T) {
	t.Parallel()

	ids := make(map[string]bool)
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ids[middleware.RequestIDFromContext(r.Context())] = true
	}))

	for range 100 {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	}

	assert.Len(t, ids, 100)
}

func TestIDs_HeaderHandling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		requestID       string
		correlationID   string
		wantRequest     string
		wantCorrelation string
	}{
		{
			name:            "both headers reused",
			requestID:       "req-1",
			correlationID:   "corr-1",
			wantRequest:     "req-1",
			wantCorrelation: "corr-1",
		},
		{
			name:            "correlation falls back to request id",
			requestID:       "req-2",
			wantRequest:     "req-2",
			wantCorrelation: "req-2",
		},
		{
			name:            "blank correlation header falls back",
			requestID:       "req-3",
			correlationID:   "   ",
			wantRequest:     "req-3",
			wantCorrelation: "req-3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seen seenIDs
			handler := middleware.RequestID()(middleware.CorrelationID()(captureIDs(&seen)))

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			req.Header.Set("X-Request-ID", tt.requestID)
			if tt.correlationID != "" {
				req.Header.Set("X-Correlation-ID", tt.correlationID)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantRequest, seen.request)
			assert.Equal(t, tt.wantCorrelation, seen.correlation)
			assert.Equal(t, tt.wantCorrelation, rec.Header().Get("X-Correlation-ID"))
		})
	}
}

func TestIDsFromContext_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, middleware.RequestIDFromContext(context.Background()))
	assert.Empty(t, middleware.CorrelationIDFromContext(context.Background()))
}
