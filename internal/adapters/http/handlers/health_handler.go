package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/kanban-board/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// ReadinessResponse is the body of GET /health/ready.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
	// PendingMutations counts batches applied locally but not yet settled.
	PendingMutations *int `json:"pending_mutations,omitempty"`
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
	pending  func() int
}

// HealthOption configures a HealthHandler.
type HealthOption func(*HealthHandler)

// WithPendingMutations adds the confirmation backlog to readiness output.
func WithPendingMutations(pending func() int) HealthOption {
	return func(h *HealthHandler) { h.pending = pending }
}

func NewHealthHandler(registry ports.HealthRegistry, opts ...HealthOption) *HealthHandler {
	h := &HealthHandler{registry: registry}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. Any failing transport check makes the
// service unready (503). The backlog is informational only.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp := ReadinessResponse{Status: statusReady, Checks: map[string]string{}}
	code := http.StatusOK

	for name, err := range h.registry.CheckAll(r.Context()) {
		if err == nil {
			resp.Checks[name] = statusOK
			continue
		}
		resp.Checks[name] = err.Error()
		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable
	}

	if h.pending != nil {
		n := h.pending()
		resp.PendingMutations = &n
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, code, resp)
}
