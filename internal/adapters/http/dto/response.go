// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/kanban-board/internal/domain/board"
	"github.com/jsamuelsen11/kanban-board/internal/ports"
)

// BoardResponse represents a single board in HTTP responses.
type BoardResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ColumnIDs   []string `json:"column_ids"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// BoardListResponse represents a list of boards in HTTP responses.
type BoardListResponse struct {
	Boards []BoardResponse `json:"boards"`
	Count  int             `json:"count"`
}

// ToBoardResponse converts a domain Board to an HTTP response DTO.
func ToBoardResponse(b *board.Board) BoardResponse {
	ids := b.ColumnOrder
	if ids == nil {
		ids = []string{}
	}
	return BoardResponse{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		ColumnIDs:   ids,
		CreatedAt:   formatTime(b.CreatedAt),
		UpdatedAt:   formatTime(b.UpdatedAt),
	}
}

// ToBoardListResponse converts a slice of boards to an HTTP list response DTO.
func ToBoardListResponse(boards []board.Board) BoardListResponse {
	items := make([]BoardResponse, len(boards))
	for i := range boards {
		items[i] = ToBoardResponse(&boards[i])
	}
	return BoardListResponse{Boards: items, Count: len(items)}
}

// ColumnResponse represents a single column in HTTP responses.
type ColumnResponse struct {
	ID        string   `json:"id"`
	BoardID   string   `json:"board_id"`
	Title     string   `json:"title"`
	TaskIDs   []string `json:"task_ids"`
	WIPLimit  int      `json:"wip_limit"`
	OverLimit bool     `json:"over_limit"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

// ToColumnResponse converts a domain Column to an HTTP response DTO.
func ToColumnResponse(c *board.Column) ColumnResponse {
	ids := c.TaskIDs
	if ids == nil {
		ids = []string{}
	}
	return ColumnResponse{
		ID:        c.ID,
		BoardID:   c.BoardID,
		Title:     c.Title,
		TaskIDs:   ids,
		WIPLimit:  c.WIPLimit,
		OverLimit: c.OverWIPLimit(),
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

// TaskResponse represents a single task in HTTP responses.
type TaskResponse struct {
	ID          string  `json:"id"`
	BoardID     string  `json:"board_id"`
	ColumnID    string  `json:"column_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date"`
	AssignedTo  *string `json:"assigned_to"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// TaskListResponse represents a list of tasks in HTTP responses.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Count int            `json:"count"`
}

// ToTaskResponse converts a domain Task to an HTTP response DTO.
func ToTaskResponse(t *board.Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID,
		BoardID:     t.BoardID,
		ColumnID:    t.ColumnID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority.String(),
		CreatedAt:   formatTime(t.CreatedAt),
		UpdatedAt:   formatTime(t.UpdatedAt),
	}
	if t.DueDate != nil {
		due := formatTime(*t.DueDate)
		resp.DueDate = &due
	}
	if t.AssignedTo != nil {
		a := *t.AssignedTo
		resp.AssignedTo = &a
	}
	return resp
}

// ToTaskListResponse converts a slice of tasks to an HTTP list response DTO.
func ToTaskListResponse(tasks []board.Task) TaskListResponse {
	items := make([]TaskResponse, len(tasks))
	for i := range tasks {
		items[i] = ToTaskResponse(&tasks[i])
	}
	return TaskListResponse{Tasks: items, Count: len(items)}
}

// BoardViewResponse is a board with its columns in display order, each
// holding the filtered and sorted tasks.
type BoardViewResponse struct {
	Board   BoardResponse        `json:"board"`
	Columns []ColumnViewResponse `json:"columns"`
}

// ColumnViewResponse is one column of a board view. Total counts every task
// in the column before filtering.
type ColumnViewResponse struct {
	ColumnResponse
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// ToBoardViewResponse converts a ports.BoardView to an HTTP response DTO.
func ToBoardViewResponse(v *ports.BoardView) BoardViewResponse {
	cols := make([]ColumnViewResponse, len(v.Columns))
	for i := range v.Columns {
		cv := &v.Columns[i]
		col := ToColumnResponse(&cv.Column)
		col.OverLimit = cv.OverLimit
		cols[i] = ColumnViewResponse{
			ColumnResponse: col,
			Tasks:          ToTaskListResponse(cv.Tasks).Tasks,
			Total:          cv.Total,
		}
	}
	return BoardViewResponse{
		Board:   ToBoardResponse(&v.Board),
		Columns: cols,
	}
}

// UserResponse represents a directory user in HTTP responses.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserListResponse represents the assignee directory in HTTP responses.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Count int            `json:"count"`
}

// ToUserResponse converts a domain User to an HTTP response DTO.
func ToUserResponse(u *board.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// ToUserListResponse converts a slice of users to an HTTP list response DTO.
func ToUserListResponse(users []board.User) UserListResponse {
	items := make([]UserResponse, len(users))
	for i := range users {
		items[i] = ToUserResponse(&users[i])
	}
	return UserListResponse{Users: items, Count: len(items)}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
