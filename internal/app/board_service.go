// Package app provides the application service that drives the kanban store.
// It validates input, applies each change to the store immediately through a
// compensable action, and hands the change to the confirmation dispatcher.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/kanban-board/internal/app/optimistic"
	"github.com/jsamuelsen11/kanban-board/internal/domain"
	"github.com/jsamuelsen11/kanban-board/internal/domain/board"
	"github.com/jsamuelsen11/kanban-board/internal/platform/logging"
	"github.com/jsamuelsen11/kanban-board/internal/platform/telemetry"
	"github.com/jsamuelsen11/kanban-board/internal/ports"
	"github.com/jsamuelsen11/kanban-board/internal/store"
)

// Compile-time check that BoardService implements ports.BoardService.
var _ ports.BoardService = (*BoardService)(nil)

// Enqueuer accepts applied batches for confirmation.
// *optimistic.Dispatcher implements it.
type Enqueuer interface {
	Enqueue(ctx context.Context, b *optimistic.Batch) error
}

// Option configures a BoardService.
type Option func(*BoardService)

// WithClock overrides the time source used for mutation timestamps and due
// date buckets.
func WithClock(now func() time.Time) Option {
	return func(s *BoardService) { s.now = now }
}

// WithMutationIDs overrides the mutation id generator.
func WithMutationIDs(gen func() string) Option {
	return func(s *BoardService) { s.newMutationID = gen }
}

// WithUsers replaces the assignee directory. The first user becomes the
// current user.
func WithUsers(users []board.User) Option {
	return func(s *BoardService) { s.users = directory{users: users} }
}

// BoardService implements ports.BoardService on top of the entity store.
//
// Mutations follow the optimistic protocol: the store is changed before the
// method returns, and the change is compensated later if the confirmation
// backend rejects it. If the batch cannot be queued for confirmation the
// change is compensated immediately and the call fails with
// domain.ErrUnavailable.
type BoardService struct {
	store   *store.Store
	confirm Enqueuer
	metrics *telemetry.Metrics
	logger  *slog.Logger

	now           func() time.Time
	newMutationID func() string

	users       directory
	currentUser *ref[string]
	activeBoard *ref[string]
}

// NewBoardService creates a BoardService. metrics may be nil. The active
// board starts as the oldest board in the store, if any.
func NewBoardService(st *store.Store, confirm Enqueuer, metrics *telemetry.Metrics, logger *slog.Logger, opts ...Option) *BoardService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &BoardService{
		store:         st,
		confirm:       confirm,
		metrics:       metrics,
		logger:        logger,
		now:           time.Now,
		newMutationID: uuid.NewString,
		users:         directory{users: DefaultUsers()},
	}
	for _, opt := range opts {
		opt(s)
	}

	current := ""
	if len(s.users.users) > 0 {
		current = s.users.users[0].ID
	}
	s.currentUser = newRef(current)
	s.activeBoard = newRef(firstBoardID(st))
	return s
}

// --- Boards ---

// ListBoards returns all boards ordered by creation time.
func (s *BoardService) ListBoards(_ context.Context) ([]board.Board, error) {
	return s.store.Boards(), nil
}

// GetBoard returns a single board by ID.
func (s *BoardService) GetBoard(_ context.Context, id string) (*board.Board, error) {
	b, err := s.store.Board(id)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// BoardView returns the board with its columns in display order, each with
// its tasks filtered and sorted.
func (s *BoardService) BoardView(_ context.Context, id string, filter board.Filter, sort board.Sort) (*ports.BoardView, error) {
	b, err := s.store.Board(id)
	if err != nil {
		return nil, err
	}
	cols, err := s.store.ColumnsForBoard(id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	view := &ports.BoardView{Board: b, Columns: make([]ports.ColumnView, 0, len(cols))}
	for _, col := range cols {
		tasks, err := s.store.TasksForColumn(col.ID)
		if err != nil {
			// The column was removed between the two reads.
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}
		view.Columns = append(view.Columns, ports.ColumnView{
			Column:    col,
			Tasks:     board.View(tasks, filter, sort, now),
			Total:     len(tasks),
			OverLimit: col.OverWIPLimit(),
		})
	}
	return view, nil
}

// CreateBoard creates a board and makes it the active board.
func (s *BoardService) CreateBoard(ctx context.Context, title, description string) (*board.Board, error) {
	s.logger.InfoContext(ctx, "creating board", slog.String("title", title))

	if strings.TrimSpace(title) == "" {
		return nil, domain.FieldError("title", domain.MsgRequired)
	}

	a := &createBoardAction{store: s.store, active: s.activeBoard, title: title, desc: description}
	err := s.mutate(ctx, OpBoardCreate, a, func() (string, any) {
		return a.created.ID, boardPayload{Title: &title, Description: &description}
	})
	if err != nil {
		return nil, err
	}
	return &a.created, nil
}

// UpdateBoard applies a partial update to a board.
func (s *BoardService) UpdateBoard(ctx context.Context, id string, changes board.BoardChanges) (*board.Board, error) {
	s.logger.InfoContext(ctx, "updating board", slog.String("board_id", id))

	if err := changes.Validate(); err != nil {
		return nil, err
	}

	a := &updateBoardAction{store: s.store, id: id, changes: changes}
	err := s.mutate(ctx, OpBoardUpdate, a, func() (string, any) {
		return id, boardPayload{Title: changes.Title, Description: changes.Description}
	})
	if err != nil {
		return nil, err
	}
	return &a.updated, nil
}

// DeleteBoard removes a board with its columns and tasks. If it was the
// active board, the oldest remaining board becomes active.
func (s *BoardService) DeleteBoard(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "deleting board", slog.String("board_id", id))

	a := &deleteBoardAction{store: s.store, active: s.activeBoard, id: id}
	return s.mutate(ctx, OpBoardDelete, a, func() (string, any) { return id, nil })
}

// SetActiveBoard selects the board shown by default.
func (s *BoardService) SetActiveBoard(_ context.Context, id string) error {
	if _, err := s.store.Board(id); err != nil {
		return err
	}
	s.activeBoard.Set(id)
	return nil
}

// ActiveBoard returns the selected board.
func (s *BoardService) ActiveBoard(_ context.Context) (*board.Board, error) {
	id := s.activeBoard.Get()
	if id == "" {
		return nil, fmt.Errorf("no active board: %w", domain.ErrNotFound)
	}
	b, err := s.store.Board(id)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// --- Columns ---

// CreateColumn appends a column to a board.
func (s *BoardService) CreateColumn(ctx context.Context, boardID, title string, wipLimit int) (*board.Column, error) {
	s.logger.InfoContext(ctx, "creating column", slog.String("board_id", boardID), slog.String("title", title))

	if err := (&board.ColumnChanges{Title: &title, WIPLimit: &wipLimit}).Validate(); err != nil {
		return nil, err
	}

	a := &createColumnAction{store: s.store, boardID: boardID, title: title, wipLimit: wipLimit}
	err := s.mutate(ctx, OpColumnCreate, a, func() (string, any) {
		return a.created.ID, columnPayload{BoardID: boardID, Title: &title, WIPLimit: &wipLimit}
	})
	if err != nil {
		return nil, err
	}
	return &a.created, nil
}

// UpdateColumn applies a partial update to a column.
func (s *BoardService) UpdateColumn(ctx context.Context, id string, changes board.ColumnChanges) (*board.Column, error) {
	s.logger.InfoContext(ctx, "updating column", slog.String("column_id", id))

	if err := changes.Validate(); err != nil {
		return nil, err
	}

	a := &updateColumnAction{store: s.store, id: id, changes: changes}
	err := s.mutate(ctx, OpColumnUpdate, a, func() (string, any) {
		return id, columnPayload{Title: changes.Title, WIPLimit: changes.WIPLimit}
	})
	if err != nil {
		return nil, err
	}
	return &a.updated, nil
}

// DeleteColumn removes a column and its tasks.
func (s *BoardService) DeleteColumn(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "deleting column", slog.String("column_id", id))

	a := &deleteColumnAction{store: s.store, id: id}
	return s.mutate(ctx, OpColumnDelete, a, func() (string, any) { return id, nil })
}

// MoveColumn reorders a board's columns.
func (s *BoardService) MoveColumn(ctx context.Context, boardID string, srcIndex, dstIndex int) (*board.Board, error) {
	s.logger.InfoContext(ctx, "moving column",
		slog.String("board_id", boardID),
		slog.Int("source_index", srcIndex),
		slog.Int("destination_index", dstIndex),
	)

	a := &moveColumnAction{store: s.store, boardID: boardID, srcIdx: srcIndex, dstIdx: dstIndex}
	err := s.mutate(ctx, OpColumnMove, a, func() (string, any) {
		return a.columnID, movePayload{
			SourceID: boardID, DestinationID: boardID,
			SourceIndex: srcIndex, DestinationIndex: dstIndex,
		}
	})
	if err != nil {
		return nil, err
	}
	return &a.moved, nil
}

// --- Tasks ---

// ListTasks returns a column's tasks in order.
func (s *BoardService) ListTasks(_ context.Context, columnID string) ([]board.Task, error) {
	return s.store.TasksForColumn(columnID)
}

// GetTask returns a single task by ID.
func (s *BoardService) GetTask(_ context.Context, id string) (*board.Task, error) {
	t, err := s.store.Task(id)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTask appends a task to a column of the given board. An assignee must
// name a user in the directory.
func (s *BoardService) CreateTask(ctx context.Context, boardID, columnID string, fields board.TaskFields) (*board.Task, error) {
	s.logger.InfoContext(ctx, "creating task", slog.String("board_id", boardID), slog.String("column_id", columnID))

	if err := fields.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkAssignee(fields.AssignedTo); err != nil {
		return nil, err
	}

	a := &createTaskAction{store: s.store, boardID: boardID, columnID: columnID, fields: fields}
	err := s.mutate(ctx, OpTaskCreate, a, func() (string, any) {
		return a.created.ID, taskCreatePayload(boardID, columnID, &fields)
	})
	if err != nil {
		return nil, err
	}
	return &a.created, nil
}

// UpdateTask applies a partial update to a task.
func (s *BoardService) UpdateTask(ctx context.Context, id string, changes board.TaskChanges) (*board.Task, error) {
	s.logger.InfoContext(ctx, "updating task", slog.String("task_id", id))

	if err := changes.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkAssignee(changes.AssignedTo); err != nil {
		return nil, err
	}

	a := &updateTaskAction{store: s.store, id: id, changes: changes}
	err := s.mutate(ctx, OpTaskUpdate, a, func() (string, any) {
		return id, taskUpdatePayload(&changes)
	})
	if err != nil {
		return nil, err
	}
	return &a.updated, nil
}

// DeleteTask removes a task.
func (s *BoardService) DeleteTask(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "deleting task", slog.String("task_id", id))

	a := &deleteTaskAction{store: s.store, id: id}
	return s.mutate(ctx, OpTaskDelete, a, func() (string, any) { return id, nil })
}

// MoveTask moves the task at srcIndex of one column to dstIndex of another
// (or the same) column.
func (s *BoardService) MoveTask(ctx context.Context, srcColumnID, dstColumnID string, srcIndex, dstIndex int) (*board.Task, error) {
	s.logger.InfoContext(ctx, "moving task",
		slog.String("source_column_id", srcColumnID),
		slog.String("destination_column_id", dstColumnID),
		slog.Int("source_index", srcIndex),
		slog.Int("destination_index", dstIndex),
	)

	a := &moveTaskAction{
		store: s.store, srcColumnID: srcColumnID, dstColumnID: dstColumnID,
		srcIdx: srcIndex, dstIdx: dstIndex,
	}
	err := s.mutate(ctx, OpTaskMove, a, func() (string, any) {
		return a.moved.ID, movePayload{
			SourceID: srcColumnID, DestinationID: dstColumnID,
			SourceIndex: srcIndex, DestinationIndex: dstIndex,
		}
	})
	if err != nil {
		return nil, err
	}
	return &a.moved, nil
}

// --- Users ---

// ListUsers returns the assignee directory.
func (s *BoardService) ListUsers(_ context.Context) ([]board.User, error) {
	return s.users.list(), nil
}

// CurrentUser returns the acting user.
func (s *BoardService) CurrentUser(_ context.Context) (*board.User, error) {
	u, err := s.users.find(s.currentUser.Get())
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// SetCurrentUser switches the acting user.
func (s *BoardService) SetCurrentUser(ctx context.Context, id string) (*board.User, error) {
	u, err := s.users.find(id)
	if err != nil {
		return nil, err
	}
	s.currentUser.Set(u.ID)
	s.logger.InfoContext(ctx, "current user changed", slog.String("user_id", u.ID))
	return &u, nil
}

func (s *BoardService) checkAssignee(id *string) error {
	if id == nil {
		return nil
	}
	if _, err := s.users.find(*id); err != nil {
		return domain.FieldError("assigned_to", fmt.Sprintf("unknown user %q", *id))
	}
	return nil
}

// mutate runs one optimistic mutation: it applies action to the store in a
// new batch, describes the mutation once the action has run, and queues the
// batch for confirmation.
func (s *BoardService) mutate(ctx context.Context, operation string, action domain.Action, describe func() (entityID string, payload any)) error {
	actor := domain.ActorFromContext(ctx)
	if actor == "" {
		actor = s.currentUser.Get()
	}
	b := optimistic.NewBatch(domain.Mutation{
		ID:        s.newMutationID(),
		Operation: operation,
		Actor:     actor,
		IssuedAt:  s.now(),
	})
	actx := logging.WithLogger(ctx, s.logger)

	if err := b.Apply(actx, action); err != nil {
		s.recordMutation(ctx, operation, "failed")
		if !isExpected(err) {
			s.logger.ErrorContext(ctx, "mutation failed",
				slog.String("operation", operation),
				slog.Any("error", err),
			)
		}
		return unwrapApply(err)
	}
	b.Describe(describe())

	if err := s.confirm.Enqueue(ctx, b); err != nil {
		s.logger.ErrorContext(ctx, "queueing mutation for confirmation failed, compensating",
			slog.String("operation", operation),
			slog.String("mutation_id", b.Mutation().ID),
			slog.Any("error", err),
		)
		// Compensate with a context that outlives the caller's.
		_ = b.Settle(logging.WithLogger(context.WithoutCancel(ctx), s.logger), err)
		s.recordMutation(ctx, operation, "failed")
		return fmt.Errorf("%s: %w: %w", operation, domain.ErrUnavailable, err)
	}

	s.recordMutation(ctx, operation, "applied")
	return nil
}

func (s *BoardService) recordMutation(ctx context.Context, operation, result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.MutationTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrOperation.String(operation),
		telemetry.AttrResult.String(result),
	))
}

// isExpected reports whether err is a caller-facing outcome rather than a
// fault worth an error log.
func isExpected(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrIndexOutOfRange) ||
		errors.Is(err, domain.ErrValidation)
}

// unwrapApply strips the "applying <action>" prefix Batch.Apply adds so
// callers see the store's own error message.
func unwrapApply(err error) error {
	if inner := errors.Unwrap(err); inner != nil {
		return inner
	}
	return err
}
