// Package batch runs independent operations in sequential batches of bounded
// concurrency. The batch bound is the only backpressure applied against the
// external API: batch k+1 does not start until every operation in batch k has
// completed, which serializes bursts without a token bucket.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultSize is the batch size used when the caller passes size <= 0.
const DefaultSize = 10

// Op is a single asynchronous operation producing a value of type T.
type Op[T any] func(ctx context.Context) (T, error)

// WaitAll executes ops in sequential batches of at most size concurrent
// operations. Results preserve input order regardless of completion timing.
//
// Within a batch every operation runs to completion even when a sibling
// fails; the first error is then propagated and no further batches start.
// Operations that need isolation must handle their own errors. The returned
// slice always has len(ops) entries; indexes of failed or never-started
// operations hold the zero value.
func WaitAll[T any](ctx context.Context, ops []Op[T], size int) ([]T, error) {
	if size <= 0 {
		size = DefaultSize
	}

	results := make([]T, len(ops))

	for from := 0; from < len(ops); from += size {
		to := from + size
		if to > len(ops) {
			to = len(ops)
		}

		// The zero-value group deliberately has no cancellation: a failing
		// operation must not abort its siblings in the same batch.
		var g errgroup.Group
		for i := from; i < to; i++ {
			g.Go(func() error {
				res, err := ops[i](ctx)
				if err != nil {
					return err
				}
				results[i] = res
				return nil
			})
		}

		err := g.Wait()
		if err != nil {
			return results, err
		}

		// Stop between batches when the run context is cancelled.
		err = ctx.Err()
		if err != nil {
			return results, err
		}
	}

	return results, nil
}
