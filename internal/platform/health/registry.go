// Package health tracks the readiness of the components the board depends
// on, chiefly the confirm transport. The readiness endpoint asks the
// registry for a fresh verdict on every probe.
package health

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen11/kanban-board/internal/platform/fanout"
	"github.com/jsamuelsen11/kanban-board/internal/ports"
)

const (
	maxConcurrentChecks = 8
	defaultCheckTimeout = 2 * time.Second
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry holds one checker per name. Registering a second checker under a
// name already in use replaces the first.
type Registry struct {
	timeout time.Duration

	mu       sync.RWMutex
	order    []string
	checkers map[string]ports.HealthChecker
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds each individual check. A non-positive value leaves
// checks bounded only by the caller's context.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) { r.timeout = d }
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		timeout:  defaultCheckTimeout,
		checkers: make(map[string]ports.HealthChecker),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker, replacing any checker with the same name.
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.checkers[name]; !exists {
		r.order = append(r.order, name)
	}
	r.checkers[name] = checker
}

// Names returns the registered checker names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// CheckAll runs every check concurrently and returns the outcome per name.
// A nil value means the component is healthy.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	names := slices.Clone(r.order)
	checkers := make([]ports.HealthChecker, len(names))
	for i, name := range names {
		checkers[i] = r.checkers[name]
	}
	r.mu.RUnlock()

	outcomes := fanout.Run(ctx, maxConcurrentChecks, checkers, func(ctx context.Context, c ports.HealthChecker) (struct{}, error) {
		return struct{}{}, r.check(ctx, c)
	})

	results := make(map[string]error, len(names))
	for i, name := range names {
		results[name] = outcomes[i].Err
	}
	return results
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	return c.HealthCheck(ctx)
}
