package optimistic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/kanban-board/internal/platform/config"
	"github.com/jsamuelsen11/kanban-board/internal/platform/logging"
	"github.com/jsamuelsen11/kanban-board/internal/platform/telemetry"
	"github.com/jsamuelsen11/kanban-board/internal/ports"
)

// ErrClosed is returned by Enqueue after Close has been called.
var ErrClosed = errors.New("optimistic: dispatcher closed")

// Dispatcher confirms batches one at a time, in the order they were enqueued,
// and settles each with the outcome. Running a single consumer keeps
// compensation in issue order: a later action is never rolled back before an
// earlier one has been settled.
type Dispatcher struct {
	confirmer ports.Confirmer
	timeout   time.Duration
	metrics   *telemetry.Metrics
	logger    *slog.Logger

	queue chan *Batch
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

// NewDispatcher creates a dispatcher. Run must be called to start consuming
// the queue. If metrics is nil, metric recording is skipped.
func NewDispatcher(cfg *config.OptimisticConfig, confirmer ports.Confirmer, metrics *telemetry.Metrics, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{
		confirmer: confirmer,
		timeout:   cfg.ConfirmTimeout,
		metrics:   metrics,
		logger:    logger,
		queue:     make(chan *Batch, cfg.QueueSize),
		done:      make(chan struct{}),
	}
}

// Enqueue hands a batch to the dispatcher. It blocks while the queue is full
// until ctx is done.
func (d *Dispatcher) Enqueue(ctx context.Context, b *Batch) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return ErrClosed
	}

	select {
	case d.queue <- b:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("enqueueing mutation %s: %w", b.Mutation().ID, ctx.Err())
	}
}

// Run consumes the queue until Close is called and every queued batch has
// been settled. Cancelling ctx does not abandon queued batches; confirmation
// calls made after cancellation still get their own timeout.
func (d *Dispatcher) Run(ctx context.Context) error {
	defer close(d.done)

	base := logging.WithLogger(context.WithoutCancel(ctx), d.logger)
	for b := range d.queue {
		d.confirm(base, b)
	}
	return nil
}

// Close stops accepting batches and waits for Run to drain the queue or for
// ctx to be done, whichever comes first. Close is idempotent.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("draining confirmation queue (%d pending): %w", len(d.queue), ctx.Err())
	}
}

// Pending returns the number of batches waiting to be confirmed.
func (d *Dispatcher) Pending() int {
	return len(d.queue)
}

// confirm runs one confirmation round trip and settles the batch.
func (d *Dispatcher) confirm(ctx context.Context, b *Batch) {
	m := b.Mutation()
	start := time.Now()

	cctx := ctx
	if d.timeout > 0 {
		var cancel context.CancelFunc
		cctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	confirmErr := d.confirmer.Confirm(cctx, m)
	if err := b.Settle(ctx, confirmErr); err != nil {
		d.logger.WarnContext(ctx, "batch settled before confirmation",
			slog.String("operation", "Dispatcher.confirm"),
			slog.String("mutation_id", m.ID),
			slog.Any("error", err),
		)
		return
	}

	result := "confirmed"
	if confirmErr != nil {
		result = "rejected"
	} else {
		d.logger.DebugContext(ctx, "mutation confirmed",
			slog.String("operation", "Dispatcher.confirm"),
			slog.String("mutation_id", m.ID),
			slog.String("mutation", m.Operation),
		)
	}
	d.recordMetrics(ctx, m.Operation, start, result)
}

// recordMetrics is safe to call with nil metrics.
func (d *Dispatcher) recordMetrics(ctx context.Context, operation string, start time.Time, result string) {
	if d.metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		telemetry.AttrOperation.String(operation),
		telemetry.AttrResult.String(result),
	)
	d.metrics.ConfirmationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	d.metrics.ConfirmationTotal.Add(ctx, 1, attrs)
	if result == "rejected" {
		d.metrics.CompensationTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrOperation.String(operation)))
	}
}
