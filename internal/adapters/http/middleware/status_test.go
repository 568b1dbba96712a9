package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestStatusRecorder(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	sr := newStatusRecorder(rec)

	sr.WriteHeader(http.StatusCreated)
	sr.WriteHeader(http.StatusTeapot)
	_, _ = sr.Write([]byte("hello"))

	assert.Equal(t, http.StatusCreated, sr.status)
	assert.Equal(t, 5, sr.bytes)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Same(t, rec, sr.Unwrap())
	assert.Same(t, sr, newStatusRecorder(sr), "recorders must not nest")
}

func TestStatusRecorder_ImplicitOK(t *testing.T) {
	t.Parallel()

	sr := newStatusRecorder(httptest.NewRecorder())
	_, _ = sr.Write([]byte("x"))

	assert.Equal(t, http.StatusOK, sr.status)
	assert.True(t, sr.written)
}

func TestRoutePattern(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/task-9", http.NoBody)
	assert.Equal(t, "/api/v1/tasks/task-9", routePattern(req))

	rctx := chi.NewRouteContext()
	rctx.RoutePatterns = []string{"/api/v1/*", "/tasks/{taskId}"}
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	assert.Equal(t, "/api/v1/tasks/{taskId}", routePattern(req))
}
