// Package parallel evaluates independent work items across a bounded set of
// goroutines and reduces their results.
//
// Items are split into contiguous chunks, one per worker. Each worker keeps
// its own accumulator and the partial results are combined once after all
// workers finish, so the callback needs no locking as long as it only reads
// shared state.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Sum applies fn to every item and returns the total. workers <= 0 uses
// GOMAXPROCS. The first error cancels the remaining chunks and is returned.
func Sum[T any](ctx context.Context, items []T, workers int, fn func(T) (int64, error)) (int64, error) {
	if len(items) == 0 {
		return 0, ctx.Err()
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	chunk := (len(items) + workers - 1) / workers
	partial := make([]int64, workers)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= len(items) {
			break
		}
		hi := min(lo+chunk, len(items))
		g.Go(func() error {
			var acc int64
			for _, it := range items[lo:hi] {
				if err := gctx.Err(); err != nil {
					return err
				}
				v, err := fn(it)
				if err != nil {
					return err
				}
				acc += v
			}
			partial[w] = acc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total int64
	for _, v := range partial {
		total += v
	}
	return total, nil
}

// Count returns how many items satisfy pred.
func Count[T any](ctx context.Context, items []T, workers int, pred func(T) bool) (int, error) {
	n, err := Sum(ctx, items, workers, func(it T) (int64, error) {
		if pred(it) {
			return 1, nil
		}
		return 0, nil
	})
	return int(n), err
}
