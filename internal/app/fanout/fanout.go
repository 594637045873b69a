// Package fanout runs one function over many items with bounded concurrency,
// keeping per-item results in input order. The batch commands use it to
// render or export several documents at once.
package fanout

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers goroutines and
// returns the results in input order. One item failing does not stop the
// others.
//
// Items not yet started when ctx is canceled record ctx.Err() and fn is not
// called for them. Items already running are expected to watch ctx
// themselves.
//
// maxWorkers below 1 is treated as 1. An empty items slice yields an empty,
// non-nil result slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			results[i] = Result[R]{Err: err}
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return nil
			}
			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// Errs joins the errors of results, prefixing each with label(index).
// It returns nil when every item succeeded.
func Errs[R any](results []Result[R], label func(int) string) error {
	var errs []error
	for i, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", label(i), r.Err))
		}
	}
	return errors.Join(errs...)
}
