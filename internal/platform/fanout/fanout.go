// Package fanout runs a function over a slice of items with bounded
// concurrency and returns per-item results in input order.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result holds the outcome for one item.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for each item with at most limit calls in flight. A failing
// item does not cancel the others; each error is reported in its own Result.
// Items still waiting for a slot when ctx ends get ctx.Err() without fn being
// called. A limit below 1 means no limit.
func Run[T, R any](ctx context.Context, limit int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			v, err := fn(ctx, item)
			results[i] = Result[R]{Value: v, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}
