// Package scheduler fans work out across a bounded pool of goroutines and
// gathers the results back in input order, cancelling the remaining work on
// the first error. It is the shared fan-out used to parse and emit a
// module's function bodies concurrently (spec.md §5).
package scheduler

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Config bounds how much concurrency Run is allowed to use.
type Config struct {
	// Limit caps the number of goroutines running fn at once. Zero or
	// negative means unbounded.
	Limit int
}

// Run calls fn(ctx, i) for every i in [0, n), gathering results into a
// slice indexed by i. Results are positional, not completion-ordered.
// The first error returned by any fn cancels ctx for the others and is
// returned once every in-flight call has settled.
func Run[T any](ctx context.Context, n int, cfg Config, fn func(ctx context.Context, i int) (T, error)) ([]T, error) {
	results := make([]T, n)
	g, gctx := errgroup.WithContext(ctx)
	if cfg.Limit > 0 {
		g.SetLimit(cfg.Limit)
	}
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			r, err := fn(gctx, i)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
