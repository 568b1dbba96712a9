// Package store holds the normalized kanban entity store: boards, columns, and
// tasks kept as flat maps keyed by id, cross-referenced through ordered id
// lists.
//
// Every operation runs to completion under a single mutex and either fully
// succeeds or leaves the store untouched. Values handed to callers are deep
// copies, so callers can never mutate store state through them.
package store

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/kanban-board/internal/domain"
	"github.com/jsamuelsen11/kanban-board/internal/domain/board"
)

// Entity kinds used as id prefixes and in error messages.
const (
	KindBoard  = "board"
	KindColumn = "column"
	KindTask   = "task"
)

// IDGenerator returns a fresh unique id for an entity of the given kind.
type IDGenerator func(kind string) string

// NewID is the default IDGenerator: "<kind>-<uuid>".
func NewID(kind string) string {
	return kind + "-" + uuid.NewString()
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides the id generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) { s.newID = gen }
}

// WithClock overrides the time source used for CreatedAt/UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Store is the single owned aggregate of boards, columns, and tasks.
// It is safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	boards  map[string]*board.Board
	columns map[string]*board.Column
	tasks   map[string]*board.Task

	newID IDGenerator
	now   func() time.Time
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		boards:  make(map[string]*board.Board),
		columns: make(map[string]*board.Column),
		tasks:   make(map[string]*board.Task),
		newID:   NewID,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateBoard inserts a new board with an empty column order.
func (s *Store) CreateBoard(title, description string) board.Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	b := &board.Board{
		ID:          s.newID(KindBoard),
		Title:       title,
		Description: description,
		ColumnOrder: []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.boards[b.ID] = b
	return b.Clone()
}

// UpdateBoard merges changes into an existing board.
func (s *Store) UpdateBoard(id string, changes board.BoardChanges) (board.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.boards[id]
	if !ok {
		return board.Board{}, domain.NotFoundError(KindBoard, id)
	}
	changes.Apply(b)
	b.UpdatedAt = s.now()
	return b.Clone(), nil
}

// DeleteBoard removes a board together with all of its columns and their
// tasks. Deleting an absent board is a no-op and returns an empty record.
func (s *Store) DeleteBoard(id string) board.Removed {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.boards[id]
	if !ok {
		return board.Removed{}
	}

	removed := board.Removed{Boards: []board.Board{b.Clone()}}

	columnIDs := make(map[string]struct{})
	for cid, col := range s.columns {
		if col.BoardID != id {
			continue
		}
		columnIDs[cid] = struct{}{}
		removed.Columns = append(removed.Columns, board.PlacedColumn{
			Column: col.Clone(),
			Index:  slices.Index(b.ColumnOrder, cid),
		})
	}
	for tid, t := range s.tasks {
		_, inRemovedColumn := columnIDs[t.ColumnID]
		if t.BoardID != id && !inRemovedColumn {
			continue
		}
		removed.Tasks = append(removed.Tasks, board.PlacedTask{
			Task:  t.Clone(),
			Index: s.taskIndexLocked(t.ColumnID, tid),
		})
	}

	for _, pt := range removed.Tasks {
		delete(s.tasks, pt.Task.ID)
	}
	for cid := range columnIDs {
		delete(s.columns, cid)
	}
	delete(s.boards, id)

	sortRemoved(&removed)
	return removed
}

// CreateColumn appends a new column to the board's column order.
func (s *Store) CreateColumn(boardID, title string, wipLimit int) (board.Column, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.boards[boardID]
	if !ok {
		return board.Column{}, domain.NotFoundError(KindBoard, boardID)
	}

	now := s.now()
	col := &board.Column{
		ID:        s.newID(KindColumn),
		Title:     title,
		BoardID:   boardID,
		TaskIDs:   []string{},
		WIPLimit:  wipLimit,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.columns[col.ID] = col
	b.ColumnOrder = append(b.ColumnOrder, col.ID)
	b.UpdatedAt = now
	return col.Clone(), nil
}

// UpdateColumn merges changes into an existing column.
func (s *Store) UpdateColumn(id string, changes board.ColumnChanges) (board.Column, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, ok := s.columns[id]
	if !ok {
		return board.Column{}, domain.NotFoundError(KindColumn, id)
	}
	changes.Apply(col)
	col.UpdatedAt = s.now()
	return col.Clone(), nil
}

// DeleteColumn removes a column and its tasks, and drops the column from its
// board's order. Deleting an absent column is a no-op.
func (s *Store) DeleteColumn(id string) board.Removed {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, ok := s.columns[id]
	if !ok {
		return board.Removed{}
	}

	index := -1
	if b, ok := s.boards[col.BoardID]; ok {
		index = slices.Index(b.ColumnOrder, id)
		if index >= 0 {
			b.ColumnOrder = slices.Delete(slices.Clone(b.ColumnOrder), index, index+1)
			b.UpdatedAt = s.now()
		}
	}

	removed := board.Removed{
		Columns: []board.PlacedColumn{{Column: col.Clone(), Index: index}},
	}
	for tid, t := range s.tasks {
		if t.ColumnID != id {
			continue
		}
		removed.Tasks = append(removed.Tasks, board.PlacedTask{
			Task:  t.Clone(),
			Index: slices.Index(col.TaskIDs, tid),
		})
		delete(s.tasks, tid)
	}
	delete(s.columns, id)

	sortRemoved(&removed)
	return removed
}

// CreateTask appends a new task to the column's task list. The column must
// belong to boardID; the task's BoardID is derived from the column.
func (s *Store) CreateTask(boardID, columnID string, fields board.TaskFields) (board.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, ok := s.columns[columnID]
	if !ok || col.BoardID != boardID {
		return board.Task{}, domain.NotFoundError(KindColumn, columnID)
	}

	now := s.now()
	t := &board.Task{
		ID:          s.newID(KindTask),
		Title:       fields.Title,
		Description: fields.Description,
		Priority:    fields.Priority,
		ColumnID:    col.ID,
		BoardID:     col.BoardID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if t.Priority == "" {
		t.Priority = board.PriorityMedium
	}
	if fields.DueDate != nil {
		d := *fields.DueDate
		t.DueDate = &d
	}
	if fields.AssignedTo != nil {
		a := *fields.AssignedTo
		t.AssignedTo = &a
	}

	s.tasks[t.ID] = t
	col.TaskIDs = append(col.TaskIDs, t.ID)
	col.UpdatedAt = now
	return t.Clone(), nil
}

// UpdateTask merges changes into an existing task. A ColumnID different from
// the task's current column moves the task to the end of that column.
func (s *Store) UpdateTask(id string, changes board.TaskChanges) (board.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return board.Task{}, domain.NotFoundError(KindTask, id)
	}

	var target *board.Column
	if changes.ColumnID != nil && *changes.ColumnID != t.ColumnID {
		target, ok = s.columns[*changes.ColumnID]
		if !ok {
			return board.Task{}, domain.NotFoundError(KindColumn, *changes.ColumnID)
		}
	}

	now := s.now()
	changes.Apply(t)
	if target != nil {
		s.relocateTaskLocked(t, target, len(target.TaskIDs), now)
	}
	t.UpdatedAt = now
	return t.Clone(), nil
}

// DeleteTask removes a task and drops it from its column's task list.
// Deleting an absent task is a no-op.
func (s *Store) DeleteTask(id string) board.Removed {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return board.Removed{}
	}

	index := -1
	if col, ok := s.columns[t.ColumnID]; ok {
		index = slices.Index(col.TaskIDs, id)
		if index >= 0 {
			col.TaskIDs = slices.Delete(slices.Clone(col.TaskIDs), index, index+1)
			col.UpdatedAt = s.now()
		}
	}
	delete(s.tasks, id)

	return board.Removed{Tasks: []board.PlacedTask{{Task: t.Clone(), Index: index}}}
}

// MoveTask removes the task at srcIndex in the source column and inserts it
// at dstIndex in the destination column. dstIndex is clamped to the bounds
// of the destination list after the removal; srcIndex never is.
func (s *Store) MoveTask(srcColumnID, dstColumnID string, srcIndex, dstIndex int) (board.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.columns[srcColumnID]
	if !ok {
		return board.Task{}, domain.NotFoundError(KindColumn, srcColumnID)
	}
	dst, ok := s.columns[dstColumnID]
	if !ok {
		return board.Task{}, domain.NotFoundError(KindColumn, dstColumnID)
	}
	if srcIndex < 0 || srcIndex >= len(src.TaskIDs) {
		return board.Task{}, domain.IndexOutOfRangeError("source", srcIndex, len(src.TaskIDs))
	}
	t, ok := s.tasks[src.TaskIDs[srcIndex]]
	if !ok {
		return board.Task{}, domain.NotFoundError(KindTask, src.TaskIDs[srcIndex])
	}

	s.relocateTaskLocked(t, dst, dstIndex, s.now())
	return t.Clone(), nil
}

// RelocateTask places a task at index in the given column, wherever it
// currently is. It is the by-id form of MoveTask used for compensation,
// where list positions may have shifted since the original move.
func (s *Store) RelocateTask(taskID, columnID string, index int) (board.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[taskID]
	if !ok {
		return board.Task{}, domain.NotFoundError(KindTask, taskID)
	}
	dst, ok := s.columns[columnID]
	if !ok {
		return board.Task{}, domain.NotFoundError(KindColumn, columnID)
	}

	s.relocateTaskLocked(t, dst, index, s.now())
	return t.Clone(), nil
}

// MoveColumn reorders a board's columns using the same removal-then-insertion
// semantics as MoveTask.
func (s *Store) MoveColumn(boardID string, srcIndex, dstIndex int) (board.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.boards[boardID]
	if !ok {
		return board.Board{}, domain.NotFoundError(KindBoard, boardID)
	}
	if srcIndex < 0 || srcIndex >= len(b.ColumnOrder) {
		return board.Board{}, domain.IndexOutOfRangeError("source", srcIndex, len(b.ColumnOrder))
	}

	b.ColumnOrder = moveWithin(b.ColumnOrder, srcIndex, dstIndex)
	b.UpdatedAt = s.now()
	return b.Clone(), nil
}

// RelocateColumn places a column at index within its board's column order.
func (s *Store) RelocateColumn(columnID string, index int) (board.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, ok := s.columns[columnID]
	if !ok {
		return board.Board{}, domain.NotFoundError(KindColumn, columnID)
	}
	b, ok := s.boards[col.BoardID]
	if !ok {
		return board.Board{}, domain.NotFoundError(KindBoard, col.BoardID)
	}

	order := b.ColumnOrder
	if i := slices.Index(order, columnID); i >= 0 {
		order = slices.Delete(slices.Clone(order), i, i+1)
	}
	b.ColumnOrder = insertAt(order, columnID, index)
	b.UpdatedAt = s.now()
	return b.Clone(), nil
}

// relocateTaskLocked removes t from its current column (if listed there) and
// inserts it into dst at the clamped index. Caller must hold s.mu.
func (s *Store) relocateTaskLocked(t *board.Task, dst *board.Column, index int, now time.Time) {
	if src, ok := s.columns[t.ColumnID]; ok {
		if i := slices.Index(src.TaskIDs, t.ID); i >= 0 {
			src.TaskIDs = slices.Delete(slices.Clone(src.TaskIDs), i, i+1)
			src.UpdatedAt = now
		}
	}

	dst.TaskIDs = insertAt(dst.TaskIDs, t.ID, index)
	dst.UpdatedAt = now

	if t.ColumnID != dst.ID {
		t.ColumnID = dst.ID
		t.BoardID = dst.BoardID
		t.UpdatedAt = now
	}
}

// taskIndexLocked returns the position of taskID in the column's task list,
// or -1. Caller must hold s.mu.
func (s *Store) taskIndexLocked(columnID, taskID string) int {
	col, ok := s.columns[columnID]
	if !ok {
		return -1
	}
	return slices.Index(col.TaskIDs, taskID)
}

// moveWithin returns a copy of ids with the element at from moved to to,
// where to indexes the list after removal and is clamped to its bounds.
func moveWithin(ids []string, from, to int) []string {
	id := ids[from]
	rest := slices.Delete(slices.Clone(ids), from, from+1)
	return insertAt(rest, id, to)
}

// insertAt returns a copy of ids with id inserted at the clamped index.
func insertAt(ids []string, id string, index int) []string {
	index = max(0, min(index, len(ids)))
	return slices.Insert(slices.Clone(ids), index, id)
}

// sortRemoved orders removal records by parent, then position, so results are
// deterministic regardless of map iteration order and restore in list order.
func sortRemoved(r *board.Removed) {
	slices.SortFunc(r.Columns, func(a, b board.PlacedColumn) int {
		return cmp.Or(cmp.Compare(a.Column.BoardID, b.Column.BoardID), cmp.Compare(a.Index, b.Index), cmp.Compare(a.Column.ID, b.Column.ID))
	})
	slices.SortFunc(r.Tasks, func(a, b board.PlacedTask) int {
		return cmp.Or(cmp.Compare(a.Task.ColumnID, b.Task.ColumnID), cmp.Compare(a.Index, b.Index), cmp.Compare(a.Task.ID, b.Task.ID))
	})
}
