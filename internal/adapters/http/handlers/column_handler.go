package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/kanban-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-board/internal/domain/board"
	"github.com/jsamuelsen11/kanban-board/internal/ports"
)

// ColumnHandler handles HTTP requests addressed to a single column.
type ColumnHandler struct {
	svc ports.BoardService
}

// NewColumnHandler creates a new ColumnHandler with the given service port.
func NewColumnHandler(svc ports.BoardService) *ColumnHandler {
	return &ColumnHandler{svc: svc}
}

// UpdateColumn handles PATCH /api/v1/columns/{columnId}.
func (h *ColumnHandler) UpdateColumn(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "columnId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateColumnRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateColumn(r.Context(), id, board.ColumnChanges{
		Title:    req.Title,
		WIPLimit: req.WIPLimit,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToColumnResponse(updated))
}

// DeleteColumn handles DELETE /api/v1/columns/{columnId}. The column's tasks
// are deleted with it.
func (h *ColumnHandler) DeleteColumn(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "columnId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteColumn(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListTasks handles GET /api/v1/columns/{columnId}/tasks.
func (h *ColumnHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "columnId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	tasks, err := h.svc.ListTasks(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskListResponse(tasks))
}

// CreateTask handles POST /api/v1/boards/{boardId}/columns/{columnId}/tasks.
func (h *ColumnHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "boardId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	columnID, err := pathID(r, "columnId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateTask(r.Context(), boardID, columnID, mapCreateTaskRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTaskResponse(created))
}
