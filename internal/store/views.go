package store

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/jsamuelsen11/kanban-board/internal/domain"
	"github.com/jsamuelsen11/kanban-board/internal/domain/board"
)

// Snapshot is a deep copy of the full store state.
type Snapshot struct {
	Boards  map[string]board.Board
	Columns map[string]board.Column
	Tasks   map[string]board.Task
}

// Stats holds entity counts.
type Stats struct {
	Boards  int
	Columns int
	Tasks   int
}

// Boards returns all boards ordered by creation time.
func (s *Store) Boards() []board.Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]board.Board, 0, len(s.boards))
	for _, b := range s.boards {
		out = append(out, b.Clone())
	}
	slices.SortFunc(out, func(a, b board.Board) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
	return out
}

// Board returns a board by id.
func (s *Store) Board(id string) (board.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.boards[id]
	if !ok {
		return board.Board{}, domain.NotFoundError(KindBoard, id)
	}
	return b.Clone(), nil
}

// Column returns a column by id.
func (s *Store) Column(id string) (board.Column, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, ok := s.columns[id]
	if !ok {
		return board.Column{}, domain.NotFoundError(KindColumn, id)
	}
	return col.Clone(), nil
}

// Task returns a task by id.
func (s *Store) Task(id string) (board.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return board.Task{}, domain.NotFoundError(KindTask, id)
	}
	return t.Clone(), nil
}

// ColumnsForBoard resolves the board's column order through the column map,
// dropping ids that do not resolve.
func (s *Store) ColumnsForBoard(boardID string) ([]board.Column, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.boards[boardID]
	if !ok {
		return nil, domain.NotFoundError(KindBoard, boardID)
	}

	out := make([]board.Column, 0, len(b.ColumnOrder))
	for _, id := range b.ColumnOrder {
		if col, ok := s.columns[id]; ok {
			out = append(out, col.Clone())
		}
	}
	return out, nil
}

// TasksForColumn resolves the column's task ids through the task map, in
// order, dropping ids that do not resolve.
func (s *Store) TasksForColumn(columnID string) ([]board.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, ok := s.columns[columnID]
	if !ok {
		return nil, domain.NotFoundError(KindColumn, columnID)
	}

	out := make([]board.Task, 0, len(col.TaskIDs))
	for _, id := range col.TaskIDs {
		if t, ok := s.tasks[id]; ok {
			out = append(out, t.Clone())
		}
	}
	return out, nil
}

// Snapshot returns a deep copy of all entity maps.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Boards:  make(map[string]board.Board, len(s.boards)),
		Columns: make(map[string]board.Column, len(s.columns)),
		Tasks:   make(map[string]board.Task, len(s.tasks)),
	}
	for id, b := range s.boards {
		snap.Boards[id] = b.Clone()
	}
	for id, col := range s.columns {
		snap.Columns[id] = col.Clone()
	}
	for id, t := range s.tasks {
		snap.Tasks[id] = t.Clone()
	}
	return snap
}

// Stats returns current entity counts.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Stats{Boards: len(s.boards), Columns: len(s.columns), Tasks: len(s.tasks)}
}

// CheckInvariants verifies the referential invariants of the store and
// returns every violation found, joined. It returns nil for a consistent
// store.
func (s *Store) CheckInvariants() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error

	for _, bid := range slices.Sorted(maps.Keys(s.boards)) {
		b := s.boards[bid]
		seen := make(map[string]struct{}, len(b.ColumnOrder))
		for _, cid := range b.ColumnOrder {
			if _, dup := seen[cid]; dup {
				errs = append(errs, fmt.Errorf("board %q lists column %q more than once", bid, cid))
			}
			seen[cid] = struct{}{}

			col, ok := s.columns[cid]
			switch {
			case !ok:
				errs = append(errs, fmt.Errorf("board %q lists missing column %q", bid, cid))
			case col.BoardID != bid:
				errs = append(errs, fmt.Errorf("board %q lists column %q owned by board %q", bid, cid, col.BoardID))
			}
		}
	}

	membership := make(map[string]int, len(s.tasks))
	for _, cid := range slices.Sorted(maps.Keys(s.columns)) {
		col := s.columns[cid]
		if _, ok := s.boards[col.BoardID]; !ok {
			errs = append(errs, fmt.Errorf("column %q references missing board %q", cid, col.BoardID))
		}
		for _, tid := range col.TaskIDs {
			membership[tid]++

			t, ok := s.tasks[tid]
			switch {
			case !ok:
				errs = append(errs, fmt.Errorf("column %q lists missing task %q", cid, tid))
			case t.ColumnID != cid:
				errs = append(errs, fmt.Errorf("column %q lists task %q owned by column %q", cid, tid, t.ColumnID))
			case t.BoardID != col.BoardID:
				errs = append(errs, fmt.Errorf("task %q has board %q, column %q has board %q", tid, t.BoardID, cid, col.BoardID))
			}
		}
	}

	for _, tid := range slices.Sorted(maps.Keys(s.tasks)) {
		switch n := membership[tid]; {
		case n == 0:
			errs = append(errs, fmt.Errorf("task %q is not listed by any column", tid))
		case n > 1:
			errs = append(errs, fmt.Errorf("task %q is listed %d times", tid, n))
		}
	}

	return errors.Join(errs...)
}
