package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/kanban-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-board/internal/domain/board"
	"github.com/jsamuelsen11/kanban-board/internal/ports"
)

// BoardHandler handles HTTP requests for boards and board-scoped column
// operations.
type BoardHandler struct {
	svc ports.BoardService
}

// NewBoardHandler creates a new BoardHandler with the given service port.
func NewBoardHandler(svc ports.BoardService) *BoardHandler {
	return &BoardHandler{svc: svc}
}

// ListBoards handles GET /api/v1/boards.
func (h *BoardHandler) ListBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := h.svc.ListBoards(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBoardListResponse(boards))
}

// CreateBoard handles POST /api/v1/boards.
func (h *BoardHandler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBoardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateBoard(r.Context(), req.Title, req.Description)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToBoardResponse(created))
}

// GetBoard handles GET /api/v1/boards/{boardId}.
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "boardId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	b, err := h.svc.GetBoard(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBoardResponse(b))
}

// UpdateBoard handles PATCH /api/v1/boards/{boardId}.
func (h *BoardHandler) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "boardId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateBoardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateBoard(r.Context(), id, board.BoardChanges{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBoardResponse(updated))
}

// DeleteBoard handles DELETE /api/v1/boards/{boardId}. Deleting an absent
// board answers 204.
func (h *BoardHandler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "boardId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteBoard(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// BoardView handles GET /api/v1/boards/{boardId}/view.
func (h *BoardHandler) BoardView(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "boardId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	filter, sort, err := parseViewQuery(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	view, err := h.svc.BoardView(r.Context(), id, filter, sort)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBoardViewResponse(view))
}

// SetActiveBoard handles POST /api/v1/boards/{boardId}/active.
func (h *BoardHandler) SetActiveBoard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "boardId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.SetActiveBoard(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ActiveBoard handles GET /api/v1/active-board.
func (h *BoardHandler) ActiveBoard(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.ActiveBoard(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBoardResponse(b))
}

// CreateColumn handles POST /api/v1/boards/{boardId}/columns.
func (h *BoardHandler) CreateColumn(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "boardId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateColumnRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateColumn(r.Context(), boardID, req.Title, req.WIPLimit)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToColumnResponse(created))
}

// MoveColumn handles POST /api/v1/boards/{boardId}/columns/move.
func (h *BoardHandler) MoveColumn(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "boardId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.MoveColumnRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	moved, err := h.svc.MoveColumn(r.Context(), boardID, *req.From, *req.To)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBoardResponse(moved))
}
