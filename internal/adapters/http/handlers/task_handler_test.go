package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/kanban-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-board/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/kanban-board/internal/domain"
	"github.com/jsamuelsen11/kanban-board/internal/domain/board"
	"github.com/jsamuelsen11/kanban-board/mocks"
)

func newTaskHandler(t *testing.T) (*handlers.TaskHandler, *mocks.MockBoardService) {
	t.Helper()
	svc := mocks.NewMockBoardService(t)
	return handlers.NewTaskHandler(svc), svc
}

func TestGetTask_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	task := validTask()
	svc.EXPECT().GetTask(mock.Anything, "task-1").Return(&task, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/tasks/task-1", nil),
		map[string]string{"taskId": "task-1"})
	h.GetTask(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskResponse](t, rec)
	if resp.ColumnID != "col-1" {
		t.Errorf("ColumnID = %q, want %q", resp.ColumnID, "col-1")
	}
	if resp.DueDate != nil || resp.AssignedTo != nil {
		t.Errorf("optional fields = (%v, %v), want nil", resp.DueDate, resp.AssignedTo)
	}
}

func TestUpdateTask_MapsChanges(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	high := board.PriorityHigh
	want := board.TaskChanges{
		Title:         strPtr(testUpdatedValue),
		Priority:      &high,
		ClearAssignee: true,
		ColumnID:      strPtr("col-2"),
	}
	updated := validTask()
	updated.Title = testUpdatedValue
	updated.ColumnID = "col-2"
	svc.EXPECT().UpdateTask(mock.Anything, "task-1", want).Return(&updated, nil)

	body := jsonBody(t, dto.UpdateTaskRequest{
		Title:         strPtr(testUpdatedValue),
		Priority:      strPtr("high"),
		ClearAssignee: true,
		ColumnID:      strPtr("col-2"),
	})
	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodPatch, "/api/v1/tasks/task-1", body),
		map[string]string{"taskId": "task-1"})
	h.UpdateTask(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskResponse](t, rec)
	if resp.ColumnID != "col-2" {
		t.Errorf("ColumnID = %q, want %q", resp.ColumnID, "col-2")
	}
}

func TestUpdateTask_InvalidPriority(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	body := jsonBody(t, dto.UpdateTaskRequest{Priority: strPtr("urgent")})
	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodPatch, "/api/v1/tasks/task-1", body),
		map[string]string{"taskId": "task-1"})
	h.UpdateTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestDeleteTask_NoContent(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().DeleteTask(mock.Anything, "task-1").Return(nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodDelete, "/api/v1/tasks/task-1", nil),
		map[string]string{"taskId": "task-1"})
	h.DeleteTask(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}

func TestMoveTask(t *testing.T) {
	t.Parallel()

	moved := validTask()
	moved.ColumnID = "col-2"

	tests := []struct {
		name       string
		result     *board.Task
		err        error
		wantStatus int
	}{
		{name: "success", result: &moved, wantStatus: http.StatusOK},
		{name: "index out of range", err: domain.IndexOutOfRangeError("task", 4, 1), wantStatus: http.StatusConflict},
		{name: "column missing", err: domain.NotFoundError("column", "col-2"), wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newTaskHandler(t)

			svc.EXPECT().MoveTask(mock.Anything, "col-1", "col-2", 0, 3).Return(tt.result, tt.err)

			body := jsonBody(t, dto.MoveTaskRequest{
				SourceColumnID: "col-1", DestColumnID: "col-2", From: intPtr(0), To: intPtr(3),
			})
			rec := httptest.NewRecorder()
			h.MoveTask(rec, httptest.NewRequest(http.MethodPost, "/api/v1/tasks/move", body))

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestUpdateTask_DueDateOnly(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	want := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	updated := validTask()
	updated.DueDate = &want
	svc.EXPECT().UpdateTask(mock.Anything, "task-1", mock.MatchedBy(func(c board.TaskChanges) bool {
		return c.DueDate != nil && c.DueDate.Equal(want) && !c.ClearDueDate
	})).Return(&updated, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodPatch, "/api/v1/tasks/task-1", strings.NewReader(`{"due_date":"2026-04-15"}`)),
		map[string]string{"taskId": "task-1"})
	h.UpdateTask(rec, req)

	requireStatus(t, rec, http.StatusOK)
}
