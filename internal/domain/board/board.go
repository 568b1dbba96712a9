// Package board defines the kanban entities held by the normalized store:
// boards, columns, and tasks, plus the pure filtering and sorting helpers
// used to build read-only task views.
package board

import (
	"slices"
	"time"
)

// Board is the top-level container. ColumnOrder is authoritative: a column
// not listed here is not shown even if it exists in the column map.
type Board struct {
	ID          string
	Title       string
	Description string
	ColumnOrder []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	b.ColumnOrder = slices.Clone(b.ColumnOrder)
	return b
}

// Column is a named bucket within a board holding an ordered list of tasks.
type Column struct {
	ID        string
	Title     string
	BoardID   string
	TaskIDs   []string
	WIPLimit  int // 0 means unlimited
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy of the column.
func (c Column) Clone() Column {
	c.TaskIDs = slices.Clone(c.TaskIDs)
	return c
}

// OverWIPLimit reports whether the column holds more tasks than its WIP limit
// allows. The store never enforces the limit; callers decide what to do.
func (c Column) OverWIPLimit() bool {
	return c.WIPLimit > 0 && len(c.TaskIDs) > c.WIPLimit
}

// Task is a unit of work owned by exactly one column. BoardID is a
// denormalized copy of the owning column's board.
type Task struct {
	ID          string
	Title       string
	Description string
	Priority    Priority
	DueDate     *time.Time
	AssignedTo  *string
	ColumnID    string
	BoardID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Clone returns a deep copy of the task.
func (t Task) Clone() Task {
	if t.DueDate != nil {
		d := *t.DueDate
		t.DueDate = &d
	}
	if t.AssignedTo != nil {
		a := *t.AssignedTo
		t.AssignedTo = &a
	}
	return t
}

// Removed records entities taken out of the store by a delete, together with
// their former positions, so that the delete can be compensated exactly.
type Removed struct {
	Boards  []Board
	Columns []PlacedColumn
	Tasks   []PlacedTask
}

// Empty reports whether the delete removed nothing.
func (r Removed) Empty() bool {
	return len(r.Boards) == 0 && len(r.Columns) == 0 && len(r.Tasks) == 0
}

// PlacedColumn is a column with its index in the owning board's ColumnOrder.
// Index is -1 when the column was not listed in the order.
type PlacedColumn struct {
	Column Column
	Index  int
}

// PlacedTask is a task with its index in the owning column's TaskIDs.
type PlacedTask struct {
	Task  Task
	Index int
}
