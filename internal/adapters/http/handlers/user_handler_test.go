package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/kanban-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-board/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/kanban-board/internal/domain"
	"github.com/jsamuelsen11/kanban-board/internal/domain/board"
	"github.com/jsamuelsen11/kanban-board/mocks"
)

func newUserHandler(t *testing.T) (*handlers.UserHandler, *mocks.MockBoardService) {
	t.Helper()
	svc := mocks.NewMockBoardService(t)
	return handlers.NewUserHandler(svc), svc
}

func TestListUsers(t *testing.T) {
	t.Parallel()
	h, svc := newUserHandler(t)

	svc.EXPECT().ListUsers(mock.Anything).Return([]board.User{
		{ID: "user1", Name: "John Doe", Email: "john@example.com", Role: "admin"},
		{ID: "user2", Name: "Jane Smith", Email: "jane@example.com", Role: "developer"},
	}, nil)

	rec := httptest.NewRecorder()
	h.ListUsers(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.UserListResponse](t, rec)
	if resp.Count != 2 {
		t.Errorf("Count = %d, want 2", resp.Count)
	}
}

func TestCurrentUser(t *testing.T) {
	t.Parallel()
	h, svc := newUserHandler(t)

	svc.EXPECT().CurrentUser(mock.Anything).Return(&board.User{ID: "user1", Name: "John Doe"}, nil)

	rec := httptest.NewRecorder()
	h.CurrentUser(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users/current", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.UserResponse](t, rec)
	if resp.ID != "user1" {
		t.Errorf("ID = %q, want %q", resp.ID, "user1")
	}
}

func TestSetCurrentUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       dto.SetCurrentUserRequest
		setup      func(svc *mocks.MockBoardService)
		wantStatus int
	}{
		{
			name: "switches user",
			body: dto.SetCurrentUserRequest{UserID: "user3"},
			setup: func(svc *mocks.MockBoardService) {
				svc.EXPECT().SetCurrentUser(mock.Anything, "user3").
					Return(&board.User{ID: "user3", Name: "Bob Johnson"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown user",
			body: dto.SetCurrentUserRequest{UserID: "user9"},
			setup: func(svc *mocks.MockBoardService) {
				svc.EXPECT().SetCurrentUser(mock.Anything, "user9").Return(nil, domain.NotFoundError("user", "user9"))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "missing user id",
			body:       dto.SetCurrentUserRequest{},
			setup:      func(*mocks.MockBoardService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newUserHandler(t)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			h.SetCurrentUser(rec, httptest.NewRequest(http.MethodPut, "/api/v1/users/current", jsonBody(t, tt.body)))

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}
