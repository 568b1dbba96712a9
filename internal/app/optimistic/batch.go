// Package optimistic implements the apply-now, confirm-or-compensate update
// protocol used by the board service.
//
// A Batch groups the store mutations of one user action. Each mutation is
// applied to the store immediately through Batch.Apply, so the caller sees
// the optimistic result synchronously. The batch is then handed to a
// Dispatcher, which confirms it against the sync backend in issue order and
// settles it: a confirmed batch is left alone, a rejected batch has its
// actions rolled back in reverse order.
//
//	b := optimistic.NewBatch(mutation)
//	if err := b.Apply(ctx, createTask); err != nil {
//	    return err
//	}
//	dispatcher.Enqueue(ctx, b)
//
// Confirmation results are never written back into the store; the state
// produced by the synchronous call is the state that stands.
package optimistic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/kanban-board/internal/domain"
	"github.com/jsamuelsen11/kanban-board/internal/platform/logging"
)

// ErrSettled is returned when Apply or Settle is called on a batch that has
// already been settled.
var ErrSettled = errors.New("optimistic: batch already settled")

// ErrNilAction is returned when a nil Action is passed to Apply.
var ErrNilAction = errors.New("optimistic: nil action")

// Batch is the set of store mutations issued by one user action, together
// with the Mutation record sent for confirmation.
//
// Batch is safe for concurrent use.
type Batch struct {
	mutation domain.Mutation

	mu      sync.Mutex
	applied []domain.Action
	settled bool
	err     error
	done    chan struct{}
}

// NewBatch creates an empty batch for the given mutation.
func NewBatch(m domain.Mutation) *Batch {
	return &Batch{
		mutation: m,
		done:     make(chan struct{}),
	}
}

// Mutation returns the mutation record the batch will be confirmed with.
func (b *Batch) Mutation() domain.Mutation {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mutation
}

// Describe sets the mutation's entity id and payload. Creates call it after
// Apply, once the store has assigned the new entity's id.
func (b *Batch) Describe(entityID string, payload any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.mutation.EntityID = entityID
	b.mutation.Payload = payload
}

// Apply executes the action against local state and records it for
// compensation. If the action fails, actions already applied in this batch
// are rolled back in reverse order and the batch is settled with the error.
func (b *Batch) Apply(ctx context.Context, action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.settled {
		return ErrSettled
	}

	if err := action.Execute(ctx); err != nil {
		logging.FromContext(ctx).DebugContext(ctx, "optimistic action failed",
			slog.String("operation", "Batch.Apply"),
			slog.String("mutation_id", b.mutation.ID),
			slog.String("action", action.Description()),
			slog.Any("error", err),
		)
		b.rollbackLocked(ctx)
		b.settleLocked(err)
		return fmt.Errorf("applying %s: %w", action.Description(), err)
	}

	b.applied = append(b.applied, action)
	return nil
}

// Settle finishes the batch with the confirmation outcome. A nil confirmErr
// confirms the batch and is a no-op on local state. A non-nil confirmErr
// rolls back every applied action in reverse order. Rollback failures are
// logged and do not stop the remaining rollbacks.
func (b *Batch) Settle(ctx context.Context, confirmErr error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.settled {
		return ErrSettled
	}

	if confirmErr != nil {
		logging.FromContext(ctx).WarnContext(ctx, "confirmation rejected, compensating",
			slog.String("operation", "Batch.Settle"),
			slog.String("mutation_id", b.mutation.ID),
			slog.String("mutation", b.mutation.Operation),
			slog.Int("actions", len(b.applied)),
			slog.Any("error", confirmErr),
		)
		b.rollbackLocked(ctx)
	}

	b.settleLocked(confirmErr)
	return nil
}

// Done returns a channel that is closed once the batch is settled.
func (b *Batch) Done() <-chan struct{} {
	return b.done
}

// Err returns the error the batch was settled with, or nil while it is
// pending or after a successful confirmation.
func (b *Batch) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

func (b *Batch) settleLocked(err error) {
	b.settled = true
	b.err = err
	close(b.done)
}

// rollbackLocked rolls back applied actions newest first. Caller must hold b.mu.
func (b *Batch) rollbackLocked(ctx context.Context) {
	logger := logging.FromContext(ctx)
	for i := len(b.applied) - 1; i >= 0; i-- {
		action := b.applied[i]
		if err := action.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "compensation failed",
				slog.String("operation", "Batch.rollback"),
				slog.String("mutation_id", b.mutation.ID),
				slog.Int("step", i+1),
				slog.String("action", action.Description()),
				slog.Any("error", err),
			)
		}
	}
	b.applied = nil
}
