// SPDX-License-Identifier: MIT

package parallel

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/simplealgebra/ring"
)

// Map evaluates fn on every input and returns the results in input order.
//
// Implementation:
//   - Stage 1 (Prepare): resolve options; workers = min(workers, len(inputs));
//     clone shared once per worker on the calling goroutine.
//   - Stage 2 (Execute): worker w handles inputs w, w+workers, ... with its
//     own clone, on an errgroup bound to ctx.
//   - Stage 3 (Finalize): the first error cancels the remaining work and is
//     returned wrapped with its worker and input position.
func Map[S ring.WorkerCloner[S], In, Out any](
	ctx context.Context,
	shared S,
	inputs []In,
	fn func(ctx context.Context, local S, in In) (Out, error),
	opts ...Option,
) ([]Out, error) {
	o := gatherOptions(opts...)
	out := make([]Out, len(inputs))
	if len(inputs) == 0 {
		return out, nil
	}

	workers := min(o.workers, len(inputs))
	locals := make([]S, workers)
	for w := range workers {
		locals[w] = shared.CloneForWorker(w)
	}

	g, gctx := errgroup.WithContext(ctx)
	for w := range workers {
		g.Go(func() error {
			start := time.Now()
			handled := 0
			for i := w; i < len(inputs); i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				v, err := fn(gctx, locals[w], inputs[i])
				if err != nil {
					o.logger.Debug("worker failed", zap.Int("worker", w), zap.Int("input", i), zap.Error(err))
					return fmt.Errorf("parallel: worker %d, input %d: %w", w, i, err)
				}
				out[i] = v
				handled++
			}
			o.logger.Debug("worker done",
				zap.Int("worker", w),
				zap.Int("handled", handled),
				zap.Duration("elapsed", time.Since(start)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Mutate applies mut to every element with one cloned mutator per worker.
func Mutate[T any](ctx context.Context, mut ring.Mutator[T], elems []T, opts ...Option) ([]T, error) {
	return Map(ctx, mut, elems, func(_ context.Context, m ring.Mutator[T], v T) (T, error) {
		return m.Mutate(v)
	}, opts...)
}
