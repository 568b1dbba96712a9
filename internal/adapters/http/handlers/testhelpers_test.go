package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/kanban-board/internal/domain/board"
)

const testUpdatedValue = "Updated"

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

// withChiParams attaches chi URL parameters to r, as the router would.
func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures share ids so a board, its first column and that column's task
// line up.

func validBoard() board.Board {
	return board.Board{
		ID:          "board-1",
		Title:       "Project Alpha",
		Description: "Main product board",
		ColumnOrder: []string{"col-1", "col-2"},
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

func validColumn() board.Column {
	return board.Column{
		ID:        "col-1",
		Title:     "To Do",
		BoardID:   "board-1",
		TaskIDs:   []string{"task-1"},
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func validTask() board.Task {
	return board.Task{
		ID:          "task-1",
		Title:       "Write docs",
		Description: "API guide",
		Priority:    board.PriorityMedium,
		ColumnID:    "col-1",
		BoardID:     "board-1",
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

// jsonBody encodes v as a request body.
func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(v), "encoding request body")
	return &buf
}

// decodeJSON decodes the recorded response body into a T.
func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "decoding %s", rec.Body.String())
	return out
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	assert.Equal(t, want, rec.Code, "body = %s", rec.Body.String())
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
