package ports

import (
	"context"

	"github.com/jsamuelsen11/kanban-board/internal/domain/board"
)

// BoardService defines the service port for kanban board operations.
// Implemented by the application layer; called by inbound adapters (handlers).
//
// Every mutating method applies its change to the local store before
// returning and queues the change for asynchronous confirmation. The returned
// entity is the optimistic result; if confirmation later fails the change is
// compensated.
type BoardService interface {
	// ListBoards returns all boards ordered by creation time.
	ListBoards(ctx context.Context) ([]board.Board, error)

	// GetBoard returns a single board by ID.
	// Returns domain.ErrNotFound if the board does not exist.
	GetBoard(ctx context.Context, id string) (*board.Board, error)

	// BoardView returns the board with its columns in display order and each
	// column's tasks filtered and sorted.
	// Returns domain.ErrNotFound if the board does not exist.
	BoardView(ctx context.Context, id string, filter board.Filter, sort board.Sort) (*BoardView, error)

	// CreateBoard creates a new board with no columns.
	// Returns domain.ErrValidation if the title is empty.
	CreateBoard(ctx context.Context, title, description string) (*board.Board, error)

	// UpdateBoard applies a partial update to a board.
	// Returns domain.ErrNotFound if the board does not exist.
	UpdateBoard(ctx context.Context, id string, changes board.BoardChanges) (*board.Board, error)

	// DeleteBoard removes a board with its columns and tasks. Deleting an
	// absent board succeeds.
	DeleteBoard(ctx context.Context, id string) error

	// CreateColumn appends a column to a board.
	// Returns domain.ErrNotFound if the board does not exist.
	CreateColumn(ctx context.Context, boardID, title string, wipLimit int) (*board.Column, error)

	// UpdateColumn applies a partial update to a column.
	// Returns domain.ErrNotFound if the column does not exist.
	UpdateColumn(ctx context.Context, id string, changes board.ColumnChanges) (*board.Column, error)

	// DeleteColumn removes a column and its tasks. Deleting an absent column
	// succeeds.
	DeleteColumn(ctx context.Context, id string) error

	// MoveColumn reorders a board's columns.
	// Returns domain.ErrNotFound or domain.ErrIndexOutOfRange.
	MoveColumn(ctx context.Context, boardID string, srcIndex, dstIndex int) (*board.Board, error)

	// ListTasks returns a column's tasks in order.
	// Returns domain.ErrNotFound if the column does not exist.
	ListTasks(ctx context.Context, columnID string) ([]board.Task, error)

	// GetTask returns a single task by ID.
	// Returns domain.ErrNotFound if the task does not exist.
	GetTask(ctx context.Context, id string) (*board.Task, error)

	// CreateTask appends a task to a column of the given board.
	// Returns domain.ErrNotFound if the column is not on the board.
	CreateTask(ctx context.Context, boardID, columnID string, fields board.TaskFields) (*board.Task, error)

	// UpdateTask applies a partial update to a task. A changed column moves
	// the task to the end of that column.
	// Returns domain.ErrNotFound if the task or target column does not exist.
	UpdateTask(ctx context.Context, id string, changes board.TaskChanges) (*board.Task, error)

	// DeleteTask removes a task. Deleting an absent task succeeds.
	DeleteTask(ctx context.Context, id string) error

	// MoveTask moves the task at srcIndex of one column to dstIndex of another
	// (or the same) column.
	// Returns domain.ErrNotFound or domain.ErrIndexOutOfRange.
	MoveTask(ctx context.Context, srcColumnID, dstColumnID string, srcIndex, dstIndex int) (*board.Task, error)

	// SetActiveBoard selects the board shown by default.
	// Returns domain.ErrNotFound if the board does not exist.
	SetActiveBoard(ctx context.Context, id string) error

	// ActiveBoard returns the selected board.
	// Returns domain.ErrNotFound if no board is selected.
	ActiveBoard(ctx context.Context) (*board.Board, error)

	// ListUsers returns the assignee directory.
	ListUsers(ctx context.Context) ([]board.User, error)

	// CurrentUser returns the acting user.
	CurrentUser(ctx context.Context) (*board.User, error)

	// SetCurrentUser switches the acting user.
	// Returns domain.ErrNotFound if the user does not exist.
	SetCurrentUser(ctx context.Context, id string) (*board.User, error)
}

// BoardView is a board with its resolved columns.
type BoardView struct {
	Board   board.Board
	Columns []ColumnView
}

// ColumnView is a column with its filtered and sorted tasks. Total counts
// every task in the column before filtering.
type ColumnView struct {
	Column    board.Column
	Tasks     []board.Task
	Total     int
	OverLimit bool
}
