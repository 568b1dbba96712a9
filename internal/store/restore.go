package store

import (
	"fmt"
	"slices"

	"github.com/jsamuelsen11/kanban-board/internal/domain"
	"github.com/jsamuelsen11/kanban-board/internal/domain/board"
)

// Restore re-inserts entities previously returned by a delete, placing each
// column and task back at its recorded position. It is the compensating
// inverse of DeleteBoard, DeleteColumn, and DeleteTask.
//
// Restore fails without mutation when an id is already taken (ErrConflict)
// or when a parent is neither present nor part of the record (ErrNotFound).
// Positions are clamped against the lists as they are now, since other
// mutations may have run since the delete.
func (s *Store) Restore(r board.Removed) error {
	if r.Empty() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkRestoreLocked(r); err != nil {
		return err
	}

	now := s.now()
	restoredBoards := make([]*board.Board, 0, len(r.Boards))
	for _, b := range r.Boards {
		cp := b.Clone()
		s.boards[cp.ID] = &cp
		restoredBoards = append(restoredBoards, &cp)
	}

	columns := slices.Clone(r.Columns)
	slices.SortStableFunc(columns, func(a, b board.PlacedColumn) int { return a.Index - b.Index })
	restoredColumns := make([]*board.Column, 0, len(columns))
	for _, pc := range columns {
		cp := pc.Column.Clone()
		s.columns[cp.ID] = &cp
		restoredColumns = append(restoredColumns, &cp)

		parent := s.boards[cp.BoardID]
		if pc.Index >= 0 && !slices.Contains(parent.ColumnOrder, cp.ID) {
			parent.ColumnOrder = insertAt(parent.ColumnOrder, cp.ID, pc.Index)
			parent.UpdatedAt = now
		}
	}

	tasks := slices.Clone(r.Tasks)
	slices.SortStableFunc(tasks, func(a, b board.PlacedTask) int { return a.Index - b.Index })
	for _, pt := range tasks {
		cp := pt.Task.Clone()
		parent := s.columns[cp.ColumnID]
		cp.BoardID = parent.BoardID
		s.tasks[cp.ID] = &cp

		if !slices.Contains(parent.TaskIDs, cp.ID) {
			index := pt.Index
			if index < 0 {
				index = len(parent.TaskIDs)
			}
			parent.TaskIDs = insertAt(parent.TaskIDs, cp.ID, index)
			parent.UpdatedAt = now
		}
	}

	// Restored order lists were captured at delete time; drop any entries
	// that no longer resolve to an owned entity.
	for _, b := range restoredBoards {
		b.ColumnOrder = slices.DeleteFunc(b.ColumnOrder, func(id string) bool {
			col, ok := s.columns[id]
			return !ok || col.BoardID != b.ID
		})
	}
	for _, col := range restoredColumns {
		col.TaskIDs = slices.DeleteFunc(col.TaskIDs, func(id string) bool {
			t, ok := s.tasks[id]
			return !ok || t.ColumnID != col.ID
		})
	}

	return nil
}

// checkRestoreLocked validates a restore record against current state.
// Caller must hold s.mu.
func (s *Store) checkRestoreLocked(r board.Removed) error {
	boardIDs := make(map[string]struct{}, len(r.Boards))
	for _, b := range r.Boards {
		if _, ok := s.boards[b.ID]; ok {
			return fmt.Errorf("restoring %s %q: %w", KindBoard, b.ID, domain.ErrConflict)
		}
		boardIDs[b.ID] = struct{}{}
	}

	columnIDs := make(map[string]struct{}, len(r.Columns))
	for _, pc := range r.Columns {
		if _, ok := s.columns[pc.Column.ID]; ok {
			return fmt.Errorf("restoring %s %q: %w", KindColumn, pc.Column.ID, domain.ErrConflict)
		}
		_, inRecord := boardIDs[pc.Column.BoardID]
		if _, ok := s.boards[pc.Column.BoardID]; !ok && !inRecord {
			return fmt.Errorf("restoring %s %q: %w", KindColumn, pc.Column.ID,
				domain.NotFoundError(KindBoard, pc.Column.BoardID))
		}
		columnIDs[pc.Column.ID] = struct{}{}
	}

	for _, pt := range r.Tasks {
		if _, ok := s.tasks[pt.Task.ID]; ok {
			return fmt.Errorf("restoring %s %q: %w", KindTask, pt.Task.ID, domain.ErrConflict)
		}
		_, inRecord := columnIDs[pt.Task.ColumnID]
		if _, ok := s.columns[pt.Task.ColumnID]; !ok && !inRecord {
			return fmt.Errorf("restoring %s %q: %w", KindTask, pt.Task.ID,
				domain.NotFoundError(KindColumn, pt.Task.ColumnID))
		}
	}

	return nil
}
