package app

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// PartialResult holds the outcome of one item of a ForEachLimit run.
type PartialResult[T any] struct {
	Value T
	Err   error
}

// ForEachLimit calls fn for every item with at most limit calls in flight
// and returns the outcomes in item order. A failing item does not stop the
// others; a cancelled ctx stops scheduling and marks the remaining items
// with ctx.Err().
func ForEachLimit[I, T any](ctx context.Context, limit int, items []I, fn func(context.Context, I) (T, error)) []PartialResult[T] {
	results := make([]PartialResult[T], len(items))

	var g errgroup.Group
	g.SetLimit(max(limit, 1))

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			for j := i; j < len(items); j++ {
				results[j].Err = err
			}

			break
		}

		g.Go(func() error {
			value, err := fn(ctx, item)
			results[i] = PartialResult[T]{Value: value, Err: err}

			return nil
		})
	}

	_ = g.Wait()

	return results
}
