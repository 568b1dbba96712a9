// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/kanban-board/internal/adapters/http/handlers"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Boards  *handlers.BoardHandler
	Columns *handlers.ColumnHandler
	Tasks   *handlers.TaskHandler
	Users   *handlers.UserHandler
	Health  *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		// Boards.
		r.Get("/boards", h.Boards.ListBoards)
		r.Post("/boards", h.Boards.CreateBoard)
		r.Get("/boards/{boardId}", h.Boards.GetBoard)
		r.Patch("/boards/{boardId}", h.Boards.UpdateBoard)
		r.Delete("/boards/{boardId}", h.Boards.DeleteBoard)
		r.Get("/boards/{boardId}/view", h.Boards.BoardView)
		r.Post("/boards/{boardId}/active", h.Boards.SetActiveBoard)
		r.Get("/active-board", h.Boards.ActiveBoard)

		// Columns.
		r.Post("/boards/{boardId}/columns", h.Boards.CreateColumn)
		r.Post("/boards/{boardId}/columns/move", h.Boards.MoveColumn)
		r.Patch("/columns/{columnId}", h.Columns.UpdateColumn)
		r.Delete("/columns/{columnId}", h.Columns.DeleteColumn)

		// Tasks.
		r.Get("/columns/{columnId}/tasks", h.Columns.ListTasks)
		r.Post("/boards/{boardId}/columns/{columnId}/tasks", h.Columns.CreateTask)
		r.Get("/tasks/{taskId}", h.Tasks.GetTask)
		r.Patch("/tasks/{taskId}", h.Tasks.UpdateTask)
		r.Delete("/tasks/{taskId}", h.Tasks.DeleteTask)
		r.Post("/tasks/move", h.Tasks.MoveTask)

		// Users.
		r.Get("/users", h.Users.ListUsers)
		r.Get("/users/current", h.Users.CurrentUser)
		r.Put("/users/current", h.Users.SetCurrentUser)
	})

	return r
}
