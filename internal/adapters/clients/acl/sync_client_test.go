package acl

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsamuelsen11/kanban-board/internal/domain"
	"github.com/jsamuelsen11/kanban-board/internal/platform/config"
	"github.com/jsamuelsen11/kanban-board/internal/platform/httpclient"
)

// newTestClient creates an httpclient.Client pointing at the given test server
// with circuit breaker and retry configured for fast test execution.
func newTestClient(t *testing.T, baseURL string, attempts int) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     attempts,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
	return httpclient.New(cfg, "sync-api", nil, slog.New(slog.DiscardHandler))
}

// writeJSON encodes v as JSON to the response writer, failing the test on error.
func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("failed to encode response: %v", err)
	}
}

func testMutation() domain.Mutation {
	return domain.Mutation{
		ID:        "mut-42",
		Operation: "task.move",
		EntityID:  "task-1",
		Payload:   map[string]any{"destination_column_id": "col-2", "destination_index": 0},
		IssuedAt:  time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestSyncClient_ConfirmAccepted(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/mutations" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Idempotency-Key"); got != "mut-42" {
			t.Errorf("Idempotency-Key = %q, want %q", got, "mut-42")
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", got)
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		if body["operation"] != "task.move" || body["entity_id"] != "task-1" {
			t.Errorf("request body = %v", body)
		}
		if body["issued_at"] != "2026-05-01T09:00:00Z" {
			t.Errorf("issued_at = %v, want 2026-05-01T09:00:00Z", body["issued_at"])
		}

		writeJSON(t, w, map[string]any{"id": "mut-42", "status": "accepted"})
	}))
	defer ts.Close()

	client := NewSyncClient(newTestClient(t, ts.URL, 1), slog.New(slog.DiscardHandler))
	if err := client.Confirm(context.Background(), testMutation()); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
}

func TestSyncClient_ConfirmRejected(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, map[string]any{"id": "mut-42", "status": "rejected", "reason": "column archived"})
	}))
	defer ts.Close()

	client := NewSyncClient(newTestClient(t, ts.URL, 1), slog.New(slog.DiscardHandler))
	err := client.Confirm(context.Background(), testMutation())
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("Confirm() error = %v, want ErrConflict", err)
	}
}

func TestSyncClient_ConfirmHTTPErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "conflict", status: http.StatusConflict, want: domain.ErrConflict},
		{name: "forbidden", status: http.StatusForbidden, want: domain.ErrForbidden},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, want: domain.ErrValidation},
		{name: "unavailable", status: http.StatusServiceUnavailable, want: domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/problem+json")
				w.WriteHeader(tt.status)
				writeJSON(t, w, map[string]any{"title": http.StatusText(tt.status), "status": tt.status})
			}))
			defer ts.Close()

			client := NewSyncClient(newTestClient(t, ts.URL, 1), slog.New(slog.DiscardHandler))
			err := client.Confirm(context.Background(), testMutation())
			if !errors.Is(err, tt.want) {
				t.Errorf("Confirm() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSyncClient_RetriesKeepIdempotencyKey(t *testing.T) {
	t.Parallel()

	var keys []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		keys = append(keys, r.Header.Get("Idempotency-Key"))
		if len(keys) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		writeJSON(t, w, map[string]any{"id": "mut-42", "status": "accepted"})
	}))
	defer ts.Close()

	client := NewSyncClient(newTestClient(t, ts.URL, 3), slog.New(slog.DiscardHandler))
	if err := client.Confirm(context.Background(), testMutation()); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if len(keys) != 2 || keys[0] != "mut-42" || keys[1] != "mut-42" {
		t.Errorf("Idempotency-Key per attempt = %v, want [mut-42 mut-42]", keys)
	}
}

func TestSyncClient_Health(t *testing.T) {
	t.Parallel()

	client := NewSyncClient(newTestClient(t, "http://127.0.0.1:0", 1), slog.New(slog.DiscardHandler))
	if got := client.Name(); got != "sync-api" {
		t.Errorf("Name() = %q, want %q", got, "sync-api")
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() on a fresh client = %v, want nil", err)
	}
}

func TestSyncClient_ConnectionFailureIsUnavailable(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := ts.URL
	ts.Close()

	client := NewSyncClient(newTestClient(t, url, 1), slog.New(slog.DiscardHandler))
	err := client.Confirm(context.Background(), testMutation())
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("Confirm() error = %v, want ErrUnavailable", err)
	}
}
