package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/kanban-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-board/internal/ports"
)

// TaskHandler handles HTTP requests addressed to tasks.
type TaskHandler struct {
	svc ports.BoardService
}

// NewTaskHandler creates a new TaskHandler with the given service port.
func NewTaskHandler(svc ports.BoardService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// GetTask handles GET /api/v1/tasks/{taskId}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "taskId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := h.svc.GetTask(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(t))
}

// UpdateTask handles PATCH /api/v1/tasks/{taskId}.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "taskId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateTask(r.Context(), id, mapUpdateTaskRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(updated))
}

// DeleteTask handles DELETE /api/v1/tasks/{taskId}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "taskId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteTask(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MoveTask handles POST /api/v1/tasks/move.
func (h *TaskHandler) MoveTask(w http.ResponseWriter, r *http.Request) {
	var req dto.MoveTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	moved, err := h.svc.MoveTask(r.Context(), req.SourceColumnID, req.DestColumnID, *req.From, *req.To)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(moved))
}
