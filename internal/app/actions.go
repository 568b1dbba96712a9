package app

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/jsamuelsen11/kanban-board/internal/domain"
	"github.com/jsamuelsen11/kanban-board/internal/domain/board"
	"github.com/jsamuelsen11/kanban-board/internal/store"
)

// Each action applies one store mutation and knows its compensating inverse.
// Creates are undone by deletes, deletes by Restore, updates by re-applying
// the prior values, and moves by relocating the entity back by id, since list
// positions may have shifted by the time a rollback runs.

var (
	_ domain.Action = (*createBoardAction)(nil)
	_ domain.Action = (*updateBoardAction)(nil)
	_ domain.Action = (*deleteBoardAction)(nil)
	_ domain.Action = (*createColumnAction)(nil)
	_ domain.Action = (*updateColumnAction)(nil)
	_ domain.Action = (*deleteColumnAction)(nil)
	_ domain.Action = (*moveColumnAction)(nil)
	_ domain.Action = (*createTaskAction)(nil)
	_ domain.Action = (*updateTaskAction)(nil)
	_ domain.Action = (*deleteTaskAction)(nil)
	_ domain.Action = (*moveTaskAction)(nil)
)

// --- Board actions ---

type createBoardAction struct {
	store       *store.Store
	active      *ref[string]
	title, desc string

	created    board.Board
	prevActive string
}

func (a *createBoardAction) Execute(context.Context) error {
	a.created = a.store.CreateBoard(a.title, a.desc)
	a.prevActive = a.active.Get()
	a.active.Set(a.created.ID)
	return nil
}

func (a *createBoardAction) Rollback(context.Context) error {
	a.store.DeleteBoard(a.created.ID)
	if _, err := a.store.Board(a.prevActive); err != nil {
		a.prevActive = firstBoardID(a.store)
	}
	compareAndSet(a.active, a.created.ID, a.prevActive)
	return nil
}

func (a *createBoardAction) Description() string {
	return fmt.Sprintf("create board %q", a.title)
}

type updateBoardAction struct {
	store   *store.Store
	id      string
	changes board.BoardChanges

	prior   board.Board
	updated board.Board
}

func (a *updateBoardAction) Execute(context.Context) error {
	prior, err := a.store.Board(a.id)
	if err != nil {
		return err
	}
	updated, err := a.store.UpdateBoard(a.id, a.changes)
	if err != nil {
		return err
	}
	a.prior, a.updated = prior, updated
	return nil
}

func (a *updateBoardAction) Rollback(context.Context) error {
	_, err := a.store.UpdateBoard(a.id, board.BoardChanges{
		Title:       &a.prior.Title,
		Description: &a.prior.Description,
	})
	return err
}

func (a *updateBoardAction) Description() string {
	return "update board " + a.id
}

type deleteBoardAction struct {
	store  *store.Store
	active *ref[string]
	id     string

	removed    board.Removed
	reassigned bool
	nextActive string
}

func (a *deleteBoardAction) Execute(context.Context) error {
	a.removed = a.store.DeleteBoard(a.id)
	if a.removed.Empty() {
		return nil
	}
	a.nextActive = firstBoardID(a.store)
	a.reassigned = compareAndSet(a.active, a.id, a.nextActive)
	return nil
}

func (a *deleteBoardAction) Rollback(context.Context) error {
	if err := a.store.Restore(a.removed); err != nil {
		return err
	}
	if a.reassigned {
		compareAndSet(a.active, a.nextActive, a.id)
	}
	return nil
}

func (a *deleteBoardAction) Description() string {
	return "delete board " + a.id
}

// --- Column actions ---

type createColumnAction struct {
	store    *store.Store
	boardID  string
	title    string
	wipLimit int

	created board.Column
}

func (a *createColumnAction) Execute(context.Context) error {
	col, err := a.store.CreateColumn(a.boardID, a.title, a.wipLimit)
	if err != nil {
		return err
	}
	a.created = col
	return nil
}

func (a *createColumnAction) Rollback(context.Context) error {
	a.store.DeleteColumn(a.created.ID)
	return nil
}

func (a *createColumnAction) Description() string {
	return fmt.Sprintf("create column %q on board %s", a.title, a.boardID)
}

type updateColumnAction struct {
	store   *store.Store
	id      string
	changes board.ColumnChanges

	prior   board.Column
	updated board.Column
}

func (a *updateColumnAction) Execute(context.Context) error {
	prior, err := a.store.Column(a.id)
	if err != nil {
		return err
	}
	updated, err := a.store.UpdateColumn(a.id, a.changes)
	if err != nil {
		return err
	}
	a.prior, a.updated = prior, updated
	return nil
}

func (a *updateColumnAction) Rollback(context.Context) error {
	_, err := a.store.UpdateColumn(a.id, board.ColumnChanges{
		Title:    &a.prior.Title,
		WIPLimit: &a.prior.WIPLimit,
	})
	return err
}

func (a *updateColumnAction) Description() string {
	return "update column " + a.id
}

type deleteColumnAction struct {
	store *store.Store
	id    string

	removed board.Removed
}

func (a *deleteColumnAction) Execute(context.Context) error {
	a.removed = a.store.DeleteColumn(a.id)
	return nil
}

func (a *deleteColumnAction) Rollback(context.Context) error {
	return a.store.Restore(a.removed)
}

func (a *deleteColumnAction) Description() string {
	return "delete column " + a.id
}

type moveColumnAction struct {
	store          *store.Store
	boardID        string
	srcIdx, dstIdx int

	columnID string
	moved    board.Board
}

func (a *moveColumnAction) Execute(context.Context) error {
	moved, err := a.store.MoveColumn(a.boardID, a.srcIdx, a.dstIdx)
	if err != nil {
		return err
	}
	// The destination index is clamped the same way the store clamps it.
	a.columnID = moved.ColumnOrder[max(0, min(a.dstIdx, len(moved.ColumnOrder)-1))]
	a.moved = moved
	return nil
}

func (a *moveColumnAction) Rollback(context.Context) error {
	_, err := a.store.RelocateColumn(a.columnID, a.srcIdx)
	return err
}

func (a *moveColumnAction) Description() string {
	return fmt.Sprintf("move column %s[%d] to [%d]", a.boardID, a.srcIdx, a.dstIdx)
}

// --- Task actions ---

type createTaskAction struct {
	store    *store.Store
	boardID  string
	columnID string
	fields   board.TaskFields

	created board.Task
}

func (a *createTaskAction) Execute(context.Context) error {
	t, err := a.store.CreateTask(a.boardID, a.columnID, a.fields)
	if err != nil {
		return err
	}
	a.created = t
	return nil
}

func (a *createTaskAction) Rollback(context.Context) error {
	a.store.DeleteTask(a.created.ID)
	return nil
}

func (a *createTaskAction) Description() string {
	return fmt.Sprintf("create task %q in column %s", a.fields.Title, a.columnID)
}

type updateTaskAction struct {
	store   *store.Store
	id      string
	changes board.TaskChanges

	prior      board.Task
	priorIndex int
	updated    board.Task
}

func (a *updateTaskAction) Execute(context.Context) error {
	prior, err := a.store.Task(a.id)
	if err != nil {
		return err
	}
	index := -1
	if col, err := a.store.Column(prior.ColumnID); err == nil {
		index = slices.Index(col.TaskIDs, a.id)
	}

	updated, err := a.store.UpdateTask(a.id, a.changes)
	if err != nil {
		return err
	}
	a.prior, a.priorIndex, a.updated = prior, index, updated
	return nil
}

func (a *updateTaskAction) Rollback(context.Context) error {
	p := a.prior
	restore := board.TaskChanges{
		Title:         &p.Title,
		Description:   &p.Description,
		Priority:      &p.Priority,
		DueDate:       p.DueDate,
		ClearDueDate:  p.DueDate == nil,
		AssignedTo:    p.AssignedTo,
		ClearAssignee: p.AssignedTo == nil,
	}
	if _, err := a.store.UpdateTask(a.id, restore); err != nil {
		return err
	}

	if a.updated.ColumnID == p.ColumnID {
		return nil
	}
	index := a.priorIndex
	if index < 0 {
		index = math.MaxInt
	}
	_, err := a.store.RelocateTask(a.id, p.ColumnID, index)
	return err
}

func (a *updateTaskAction) Description() string {
	return "update task " + a.id
}

type deleteTaskAction struct {
	store *store.Store
	id    string

	removed board.Removed
}

func (a *deleteTaskAction) Execute(context.Context) error {
	a.removed = a.store.DeleteTask(a.id)
	return nil
}

func (a *deleteTaskAction) Rollback(context.Context) error {
	return a.store.Restore(a.removed)
}

func (a *deleteTaskAction) Description() string {
	return "delete task " + a.id
}

type moveTaskAction struct {
	store          *store.Store
	srcColumnID    string
	dstColumnID    string
	srcIdx, dstIdx int

	moved board.Task
}

func (a *moveTaskAction) Execute(context.Context) error {
	t, err := a.store.MoveTask(a.srcColumnID, a.dstColumnID, a.srcIdx, a.dstIdx)
	if err != nil {
		return err
	}
	a.moved = t
	return nil
}

func (a *moveTaskAction) Rollback(context.Context) error {
	_, err := a.store.RelocateTask(a.moved.ID, a.srcColumnID, a.srcIdx)
	return err
}

func (a *moveTaskAction) Description() string {
	return fmt.Sprintf("move task %s[%d] to %s[%d]", a.srcColumnID, a.srcIdx, a.dstColumnID, a.dstIdx)
}

// firstBoardID returns the id of the oldest board, or "" when there is none.
func firstBoardID(s *store.Store) string {
	boards := s.Boards()
	if len(boards) == 0 {
		return ""
	}
	return boards[0].ID
}
