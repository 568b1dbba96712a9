package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/kanban-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-board/internal/ports"
)

// UserHandler serves the assignee directory and the acting user.
type UserHandler struct {
	svc ports.BoardService
}

// NewUserHandler creates a new UserHandler with the given service port.
func NewUserHandler(svc ports.BoardService) *UserHandler {
	return &UserHandler{svc: svc}
}

// ListUsers handles GET /api/v1/users.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserListResponse(users))
}

// CurrentUser handles GET /api/v1/users/current.
func (h *UserHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.CurrentUser(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserResponse(u))
}

// SetCurrentUser handles PUT /api/v1/users/current.
func (h *UserHandler) SetCurrentUser(w http.ResponseWriter, r *http.Request) {
	var req dto.SetCurrentUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, err := h.svc.SetCurrentUser(r.Context(), req.UserID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserResponse(u))
}
