package store

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/kanban-board/internal/domain"
	"github.com/jsamuelsen11/kanban-board/internal/domain/board"
)

var baseTime = time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

// newTestStore returns a store with sequential ids ("task-1", "column-2", ...)
// and a clock that advances one second per call.
func newTestStore() *Store {
	var seq, tick int
	return New(
		WithIDGenerator(func(kind string) string {
			seq++
			return fmt.Sprintf("%s-%d", kind, seq)
		}),
		WithClock(func() time.Time {
			tick++
			return baseTime.Add(time.Duration(tick) * time.Second)
		}),
	)
}

// fixture is a board with columns and tasks created in a test store.
type fixture struct {
	store   *Store
	board   string
	columns []string
	tasks   [][]string
}

// newFixture creates one board with len(tasksPerColumn) columns, each holding
// the given number of tasks.
func newFixture(t *testing.T, tasksPerColumn ...int) fixture {
	t.Helper()

	s := newTestStore()
	b := s.CreateBoard("Board", "")
	f := fixture{store: s, board: b.ID}
	for i, n := range tasksPerColumn {
		col, err := s.CreateColumn(b.ID, fmt.Sprintf("Column %d", i), 0)
		require.NoError(t, err)
		f.columns = append(f.columns, col.ID)

		var ids []string
		for j := range n {
			task, err := s.CreateTask(b.ID, col.ID, board.TaskFields{Title: fmt.Sprintf("T%d.%d", i, j)})
			require.NoError(t, err)
			ids = append(ids, task.ID)
		}
		f.tasks = append(f.tasks, ids)
	}
	require.NoError(t, s.CheckInvariants())
	return f
}

func (f fixture) taskIDs(t *testing.T, columnID string) []string {
	t.Helper()
	col, err := f.store.Column(columnID)
	require.NoError(t, err)
	return col.TaskIDs
}

func TestCreateBoard(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	b := s.CreateBoard("Roadmap", "Q1 work")

	assert.Equal(t, "board-1", b.ID)
	assert.Equal(t, "Roadmap", b.Title)
	assert.Equal(t, "Q1 work", b.Description)
	assert.Empty(t, b.ColumnOrder)
	assert.Equal(t, b.CreatedAt, b.UpdatedAt)

	got, err := s.Board(b.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(b, got); diff != "" {
		t.Errorf("Board() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewID_Format(t *testing.T) {
	t.Parallel()

	id := NewID(KindTask)
	assert.Regexp(t, `^task-[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, id)
	assert.NotEqual(t, id, NewID(KindTask))
}

func TestUpdateBoard(t *testing.T) {
	t.Parallel()

	t.Run("merges changes", func(t *testing.T) {
		t.Parallel()
		s := newTestStore()
		b := s.CreateBoard("Old", "keep")

		title := "New"
		got, err := s.UpdateBoard(b.ID, board.BoardChanges{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "New", got.Title)
		assert.Equal(t, "keep", got.Description)
		assert.True(t, got.UpdatedAt.After(b.UpdatedAt))
	})

	t.Run("missing board", func(t *testing.T) {
		t.Parallel()
		s := newTestStore()
		_, err := s.UpdateBoard("board-x", board.BoardChanges{})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCreateColumn(t *testing.T) {
	t.Parallel()

	t.Run("appends to column order", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, 0, 0)

		col, err := f.store.CreateColumn(f.board, "Review", 3)
		require.NoError(t, err)
		assert.Equal(t, 3, col.WIPLimit)
		assert.Equal(t, f.board, col.BoardID)

		b, err := f.store.Board(f.board)
		require.NoError(t, err)
		assert.Equal(t, []string{f.columns[0], f.columns[1], col.ID}, b.ColumnOrder)
	})

	t.Run("missing board", func(t *testing.T) {
		t.Parallel()
		s := newTestStore()
		_, err := s.CreateColumn("board-x", "Todo", 0)
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.Equal(t, Stats{}, s.Stats())
	})
}

func TestUpdateColumn(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 1)
	limit := 5
	got, err := f.store.UpdateColumn(f.columns[0], board.ColumnChanges{WIPLimit: &limit})
	require.NoError(t, err)
	assert.Equal(t, 5, got.WIPLimit)
	assert.Equal(t, "Column 0", got.Title)

	_, err = f.store.UpdateColumn("column-x", board.ColumnChanges{})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateTask(t *testing.T) {
	t.Parallel()

	t.Run("appends and derives board", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, 1)

		due := baseTime.AddDate(0, 0, 3)
		user := "user-2"
		task, err := f.store.CreateTask(f.board, f.columns[0], board.TaskFields{
			Title:      "Write tests",
			Priority:   board.PriorityHigh,
			DueDate:    &due,
			AssignedTo: &user,
		})
		require.NoError(t, err)
		assert.Equal(t, f.columns[0], task.ColumnID)
		assert.Equal(t, f.board, task.BoardID)
		assert.Equal(t, board.PriorityHigh, task.Priority)
		assert.Equal(t, []string{f.tasks[0][0], task.ID}, f.taskIDs(t, f.columns[0]))

		due = due.AddDate(1, 0, 0)
		user = "user-3"
		stored, err := f.store.Task(task.ID)
		require.NoError(t, err)
		assert.Equal(t, baseTime.AddDate(0, 0, 3), *stored.DueDate)
		assert.Equal(t, "user-2", *stored.AssignedTo)
	})

	t.Run("defaults priority to medium", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, 0)
		task, err := f.store.CreateTask(f.board, f.columns[0], board.TaskFields{Title: "x"})
		require.NoError(t, err)
		assert.Equal(t, board.PriorityMedium, task.Priority)
	})

	t.Run("missing column", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, 0)
		_, err := f.store.CreateTask(f.board, "column-x", board.TaskFields{Title: "x"})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("column from another board", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, 0)
		other := f.store.CreateBoard("Other", "")
		_, err := f.store.CreateTask(other.ID, f.columns[0], board.TaskFields{Title: "x"})
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.Empty(t, f.taskIDs(t, f.columns[0]))
	})
}

func TestUpdateTask(t *testing.T) {
	t.Parallel()

	t.Run("field changes stay in place", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, 3)
		title := "Renamed"
		got, err := f.store.UpdateTask(f.tasks[0][1], board.TaskChanges{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Title)
		assert.Equal(t, f.tasks[0], f.taskIDs(t, f.columns[0]))
	})

	t.Run("column change moves to end", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, 2, 2)
		dst := f.columns[1]
		got, err := f.store.UpdateTask(f.tasks[0][0], board.TaskChanges{ColumnID: &dst})
		require.NoError(t, err)
		assert.Equal(t, dst, got.ColumnID)
		assert.Equal(t, []string{f.tasks[0][1]}, f.taskIDs(t, f.columns[0]))
		assert.Equal(t, []string{f.tasks[1][0], f.tasks[1][1], f.tasks[0][0]}, f.taskIDs(t, dst))
		require.NoError(t, f.store.CheckInvariants())
	})

	t.Run("same column id is not a move", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, 3)
		same := f.columns[0]
		_, err := f.store.UpdateTask(f.tasks[0][0], board.TaskChanges{ColumnID: &same})
		require.NoError(t, err)
		assert.Equal(t, f.tasks[0], f.taskIDs(t, same))
	})

	t.Run("missing target column leaves task untouched", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, 1)
		before := f.store.Snapshot()
		title := "changed"
		dst := "column-x"
		_, err := f.store.UpdateTask(f.tasks[0][0], board.TaskChanges{Title: &title, ColumnID: &dst})
		require.ErrorIs(t, err, domain.ErrNotFound)
		if diff := cmp.Diff(before, f.store.Snapshot()); diff != "" {
			t.Errorf("store mutated by failed update (-before +after):\n%s", diff)
		}
	})

	t.Run("missing task", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, 0)
		_, err := f.store.UpdateTask("task-x", board.TaskChanges{})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDeleteTask_Idempotent(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 3)
	removed := f.store.DeleteTask(f.tasks[0][1])
	require.Len(t, removed.Tasks, 1)
	assert.Equal(t, 1, removed.Tasks[0].Index)

	once := f.store.Snapshot()
	again := f.store.DeleteTask(f.tasks[0][1])
	assert.True(t, again.Empty())

	if diff := cmp.Diff(once, f.store.Snapshot()); diff != "" {
		t.Errorf("second delete changed state (-once +twice):\n%s", diff)
	}
	assert.Equal(t, []string{f.tasks[0][0], f.tasks[0][2]}, f.taskIDs(t, f.columns[0]))
	require.NoError(t, f.store.CheckInvariants())
}

func TestDeleteColumn_Cascades(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 2, 1, 0)
	removed := f.store.DeleteColumn(f.columns[1])

	require.Len(t, removed.Columns, 1)
	assert.Equal(t, 1, removed.Columns[0].Index)
	require.Len(t, removed.Tasks, 1)
	assert.Equal(t, f.tasks[1][0], removed.Tasks[0].Task.ID)

	b, err := f.store.Board(f.board)
	require.NoError(t, err)
	assert.Equal(t, []string{f.columns[0], f.columns[2]}, b.ColumnOrder)

	_, err = f.store.Task(f.tasks[1][0])
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, f.store.CheckInvariants())

	assert.True(t, f.store.DeleteColumn(f.columns[1]).Empty())
}

func TestDeleteBoard_Cascades(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 2, 2)
	keep := f.store.CreateBoard("Keep", "")
	keepCol, err := f.store.CreateColumn(keep.ID, "Todo", 0)
	require.NoError(t, err)
	keepTask, err := f.store.CreateTask(keep.ID, keepCol.ID, board.TaskFields{Title: "stay"})
	require.NoError(t, err)

	removed := f.store.DeleteBoard(f.board)
	assert.Len(t, removed.Boards, 1)
	assert.Len(t, removed.Columns, 2)
	assert.Len(t, removed.Tasks, 4)

	snap := f.store.Snapshot()
	for _, id := range f.columns {
		assert.NotContains(t, snap.Columns, id)
	}
	for _, ids := range f.tasks {
		for _, id := range ids {
			assert.NotContains(t, snap.Tasks, id)
		}
	}
	for _, col := range snap.Columns {
		assert.NotEqual(t, f.board, col.BoardID)
	}
	for _, task := range snap.Tasks {
		assert.NotEqual(t, f.board, task.BoardID)
	}
	assert.Contains(t, snap.Tasks, keepTask.ID)
	assert.Equal(t, Stats{Boards: 1, Columns: 1, Tasks: 1}, f.store.Stats())
	require.NoError(t, f.store.CheckInvariants())

	assert.True(t, f.store.DeleteBoard(f.board).Empty())
}

func TestMoveTask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src, dst int // column indexes in the fixture
		from, to int
		wantSrc  func(f fixture) []string
		wantDst  func(f fixture) []string
	}{
		{
			name: "same column front to back",
			src:  0, dst: 0, from: 0, to: 2,
			wantSrc: func(f fixture) []string { return []string{f.tasks[0][1], f.tasks[0][2], f.tasks[0][0]} },
		},
		{
			name: "same column back to front",
			src:  0, dst: 0, from: 2, to: 0,
			wantSrc: func(f fixture) []string { return []string{f.tasks[0][2], f.tasks[0][0], f.tasks[0][1]} },
		},
		{
			name: "same column destination clamped",
			src:  0, dst: 0, from: 0, to: 99,
			wantSrc: func(f fixture) []string { return []string{f.tasks[0][1], f.tasks[0][2], f.tasks[0][0]} },
		},
		{
			name: "negative destination clamped to front",
			src:  0, dst: 0, from: 1, to: -4,
			wantSrc: func(f fixture) []string { return []string{f.tasks[0][1], f.tasks[0][0], f.tasks[0][2]} },
		},
		{
			name: "cross column append",
			src:  0, dst: 1, from: 0, to: 1,
			wantSrc: func(f fixture) []string { return []string{f.tasks[0][1], f.tasks[0][2]} },
			wantDst: func(f fixture) []string { return []string{f.tasks[1][0], f.tasks[0][0]} },
		},
		{
			name: "cross column insert at front",
			src:  0, dst: 1, from: 2, to: 0,
			wantSrc: func(f fixture) []string { return []string{f.tasks[0][0], f.tasks[0][1]} },
			wantDst: func(f fixture) []string { return []string{f.tasks[0][2], f.tasks[1][0]} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t, 3, 1)
			srcID, dstID := f.columns[tt.src], f.columns[tt.dst]

			moved, err := f.store.MoveTask(srcID, dstID, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, dstID, moved.ColumnID)

			assert.Equal(t, tt.wantSrc(f), f.taskIDs(t, srcID))
			if tt.wantDst != nil {
				assert.Equal(t, tt.wantDst(f), f.taskIDs(t, dstID))
			}
			require.NoError(t, f.store.CheckInvariants())
		})
	}
}

func TestMoveTask_CrossBoard(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 1)
	b2 := f.store.CreateBoard("Second", "")
	col2, err := f.store.CreateColumn(b2.ID, "Inbox", 0)
	require.NoError(t, err)

	moved, err := f.store.MoveTask(f.columns[0], col2.ID, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, b2.ID, moved.BoardID)
	assert.Equal(t, col2.ID, moved.ColumnID)
	require.NoError(t, f.store.CheckInvariants())
}

func TestMoveTask_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		src, dst  string
		from      int
		wantError error
	}{
		{name: "source index past end", from: 3, wantError: domain.ErrIndexOutOfRange},
		{name: "source index negative", from: -1, wantError: domain.ErrIndexOutOfRange},
		{name: "missing source column", src: "column-x", wantError: domain.ErrNotFound},
		{name: "missing destination column", dst: "column-x", wantError: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t, 3, 1)
			src, dst := f.columns[0], f.columns[1]
			if tt.src != "" {
				src = tt.src
			}
			if tt.dst != "" {
				dst = tt.dst
			}

			before := f.store.Snapshot()
			_, err := f.store.MoveTask(src, dst, tt.from, 0)
			require.ErrorIs(t, err, tt.wantError)

			if diff := cmp.Diff(before, f.store.Snapshot()); diff != "" {
				t.Errorf("failed move mutated store (-before +after):\n%s", diff)
			}
		})
	}
}

func TestMoveColumn(t *testing.T) {
	t.Parallel()

	t.Run("reorders", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, 0, 0, 0)
		b, err := f.store.MoveColumn(f.board, 0, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{f.columns[1], f.columns[2], f.columns[0]}, b.ColumnOrder)
	})

	t.Run("round trip restores order", func(t *testing.T) {
		t.Parallel()

		for i := range 4 {
			for j := range 4 {
				f := newFixture(t, 0, 0, 0, 0)
				before, err := f.store.Board(f.board)
				require.NoError(t, err)

				_, err = f.store.MoveColumn(f.board, i, j)
				require.NoError(t, err)
				after, err := f.store.MoveColumn(f.board, j, i)
				require.NoError(t, err)

				assert.Equal(t, before.ColumnOrder, after.ColumnOrder, "move %d->%d and back", i, j)
			}
		}
	})

	t.Run("out of range", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, 0, 0)
		before := f.store.Snapshot()
		_, err := f.store.MoveColumn(f.board, 2, 0)
		require.ErrorIs(t, err, domain.ErrIndexOutOfRange)
		if diff := cmp.Diff(before, f.store.Snapshot()); diff != "" {
			t.Errorf("failed move mutated store (-before +after):\n%s", diff)
		}
	})

	t.Run("missing board", func(t *testing.T) {
		t.Parallel()
		s := newTestStore()
		_, err := s.MoveColumn("board-x", 0, 0)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRelocate(t *testing.T) {
	t.Parallel()

	t.Run("task back to original slot", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, 3, 2)
		id := f.tasks[0][1]

		_, err := f.store.MoveTask(f.columns[0], f.columns[1], 1, 0)
		require.NoError(t, err)
		_, err = f.store.RelocateTask(id, f.columns[0], 1)
		require.NoError(t, err)

		assert.Equal(t, f.tasks[0], f.taskIDs(t, f.columns[0]))
		assert.Equal(t, f.tasks[1], f.taskIDs(t, f.columns[1]))
		require.NoError(t, f.store.CheckInvariants())
	})

	t.Run("column back to original slot", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, 0, 0, 0)
		_, err := f.store.MoveColumn(f.board, 0, 2)
		require.NoError(t, err)
		b, err := f.store.RelocateColumn(f.columns[0], 0)
		require.NoError(t, err)
		assert.Equal(t, f.columns, b.ColumnOrder)
	})

	t.Run("missing ids", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, 1)
		_, err := f.store.RelocateTask("task-x", f.columns[0], 0)
		require.ErrorIs(t, err, domain.ErrNotFound)
		_, err = f.store.RelocateTask(f.tasks[0][0], "column-x", 0)
		require.ErrorIs(t, err, domain.ErrNotFound)
		_, err = f.store.RelocateColumn("column-x", 0)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRestore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		delete func(f fixture) board.Removed
	}{
		{name: "task", delete: func(f fixture) board.Removed { return f.store.DeleteTask(f.tasks[1][1]) }},
		{name: "column", delete: func(f fixture) board.Removed { return f.store.DeleteColumn(f.columns[1]) }},
		{name: "board", delete: func(f fixture) board.Removed { return f.store.DeleteBoard(f.board) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t, 2, 3, 1)
			before := f.store.Snapshot()

			removed := tt.delete(f)
			require.False(t, removed.Empty())
			require.NoError(t, f.store.Restore(removed))
			require.NoError(t, f.store.CheckInvariants())

			// UpdatedAt moves on the parents touched by delete and restore.
			ignoreUpdated := cmp.FilterPath(func(p cmp.Path) bool {
				return p.Last().String() == ".UpdatedAt"
			}, cmp.Ignore())
			if diff := cmp.Diff(before, f.store.Snapshot(), ignoreUpdated); diff != "" {
				t.Errorf("restore did not reproduce state (-before +after):\n%s", diff)
			}
		})
	}
}

func TestRestore_Errors(t *testing.T) {
	t.Parallel()

	t.Run("conflicting id", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, 1)
		task, err := f.store.Task(f.tasks[0][0])
		require.NoError(t, err)

		err = f.store.Restore(board.Removed{Tasks: []board.PlacedTask{{Task: task, Index: 0}}})
		require.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("missing parent", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, 1)
		removed := f.store.DeleteTask(f.tasks[0][0])
		f.store.DeleteColumn(f.columns[0])

		before := f.store.Snapshot()
		err := f.store.Restore(removed)
		require.ErrorIs(t, err, domain.ErrNotFound)
		if diff := cmp.Diff(before, f.store.Snapshot()); diff != "" {
			t.Errorf("failed restore mutated store (-before +after):\n%s", diff)
		}
	})

	t.Run("empty record is a no-op", func(t *testing.T) {
		t.Parallel()
		s := newTestStore()
		require.NoError(t, s.Restore(board.Removed{}))
	})
}

func TestViews(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 2, 1)

	cols, err := f.store.ColumnsForBoard(f.board)
	require.NoError(t, err)
	require.Len(t, cols, 2)
	assert.Equal(t, f.columns[0], cols[0].ID)

	tasks, err := f.store.TasksForColumn(f.columns[0])
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, f.tasks[0][1], tasks[1].ID)

	_, err = f.store.ColumnsForBoard("board-x")
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.store.TasksForColumn("column-x")
	require.ErrorIs(t, err, domain.ErrNotFound)

	second := f.store.CreateBoard("Second", "")
	boards := f.store.Boards()
	require.Len(t, boards, 2)
	assert.Equal(t, f.board, boards[0].ID)
	assert.Equal(t, second.ID, boards[1].ID)
}

func TestReturnedValuesAreCopies(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 2)

	b, err := f.store.Board(f.board)
	require.NoError(t, err)
	b.ColumnOrder[0] = "column-evil"

	col, err := f.store.Column(f.columns[0])
	require.NoError(t, err)
	col.TaskIDs[0] = "task-evil"

	snap := f.store.Snapshot()
	delete(snap.Tasks, f.tasks[0][0])

	require.NoError(t, f.store.CheckInvariants())
	assert.Equal(t, Stats{Boards: 1, Columns: 1, Tasks: 2}, f.store.Stats())
}

func TestCheckInvariants_DetectsCorruption(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 2)
	f.store.mu.Lock()
	f.store.columns[f.columns[0]].TaskIDs = append(f.store.columns[f.columns[0]].TaskIDs, "task-ghost")
	f.store.mu.Unlock()

	err := f.store.CheckInvariants()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task-ghost")
}

// TestRandomOperations_PreserveInvariants applies a long random sequence of
// operations, valid and invalid, and checks invariants after every step.
func TestRandomOperations_PreserveInvariants(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	rng := rand.New(rand.NewPCG(1, 2))

	pick := func(ids []string) string {
		if len(ids) == 0 {
			return "missing"
		}
		return ids[rng.IntN(len(ids))]
	}
	keys := func() (boards, columns, tasks []string) {
		snap := s.Snapshot()
		for id := range snap.Boards {
			boards = append(boards, id)
		}
		for id := range snap.Columns {
			columns = append(columns, id)
		}
		for id := range snap.Tasks {
			tasks = append(tasks, id)
		}
		return boards, columns, tasks
	}

	for step := range 2000 {
		boards, columns, tasks := keys()
		var err error

		switch rng.IntN(11) {
		case 0:
			s.CreateBoard("b", "")
		case 1:
			_, err = s.CreateColumn(pick(boards), "c", rng.IntN(3))
		case 2, 3:
			colID := pick(columns)
			col, cerr := s.Column(colID)
			boardID := "missing"
			if cerr == nil {
				boardID = col.BoardID
			}
			_, err = s.CreateTask(boardID, colID, board.TaskFields{Title: "t"})
		case 4:
			dst := pick(columns)
			_, err = s.UpdateTask(pick(tasks), board.TaskChanges{ColumnID: &dst})
		case 5:
			s.DeleteTask(pick(tasks))
		case 6:
			if rng.IntN(4) == 0 {
				s.DeleteColumn(pick(columns))
			}
		case 7:
			if rng.IntN(10) == 0 {
				s.DeleteBoard(pick(boards))
			}
		case 8, 9:
			_, err = s.MoveTask(pick(columns), pick(columns), rng.IntN(5)-1, rng.IntN(6)-1)
		case 10:
			_, err = s.MoveColumn(pick(boards), rng.IntN(4), rng.IntN(4))
		}

		if err != nil && !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrIndexOutOfRange) {
			t.Fatalf("step %d: unexpected error kind: %v", step, err)
		}
		if err := s.CheckInvariants(); err != nil {
			t.Fatalf("step %d: invariants violated:\n%v", step, err)
		}
	}
}
