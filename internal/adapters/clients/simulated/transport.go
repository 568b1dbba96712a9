// Package simulated provides an in-process confirm transport for local
// development and tests. It stands in for the sync API by waiting a
// configured delay and rejecting a configured fraction of mutations.
package simulated

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/jsamuelsen11/kanban-board/internal/domain"
	"github.com/jsamuelsen11/kanban-board/internal/platform/config"
	"github.com/jsamuelsen11/kanban-board/internal/ports"
)

var (
	_ ports.Confirmer     = (*Transport)(nil)
	_ ports.HealthChecker = (*Transport)(nil)
)

// Transport confirms mutations locally.
type Transport struct {
	delay    time.Duration
	failRate float64
	logger   *slog.Logger

	mu   sync.Mutex
	draw func() float64
}

// Option configures a Transport.
type Option func(*Transport)

// WithRand replaces the source of the rejection draw. draw must return
// values in [0, 1).
func WithRand(draw func() float64) Option {
	return func(t *Transport) { t.draw = draw }
}

// New creates a Transport from the confirm settings.
func New(cfg *config.ConfirmConfig, logger *slog.Logger, opts ...Option) *Transport {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	t := &Transport{
		delay:    cfg.Delay,
		failRate: cfg.FailRate,
		logger:   logger,
		draw:     rand.Float64,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Confirm waits for the configured delay and then accepts the mutation, or
// rejects it with domain.ErrUnavailable with probability FailRate. It returns
// ctx.Err() if ctx ends during the delay.
func (t *Transport) Confirm(ctx context.Context, m domain.Mutation) error {
	if t.delay > 0 {
		timer := time.NewTimer(t.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	if t.reject() {
		t.logger.DebugContext(ctx, "simulated rejection",
			slog.String("mutation_id", m.ID),
			slog.String("mutation", m.Operation),
		)
		return fmt.Errorf("simulated sync failure for %s: %w", m.ID, domain.ErrUnavailable)
	}
	return nil
}

func (t *Transport) reject() bool {
	if t.failRate <= 0 {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.draw() < t.failRate
}

// Name implements ports.HealthChecker.
func (t *Transport) Name() string { return "sync-simulated" }

// HealthCheck always reports healthy.
func (t *Transport) HealthCheck(context.Context) error { return nil }
