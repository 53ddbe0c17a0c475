package concurrent

import (
	"context"
	"runtime"

	"github.com/zeusync/homing/pkg/sequence"
	"golang.org/x/sync/errgroup"
)

// ParallelMap applies mapFn to each element of the iterator in parallel, preserving order.
// The workers parameter bounds the number of goroutines; values below one use GOMAXPROCS.
// The first error cancels the context passed to the remaining calls and is returned.
func ParallelMap[T any, R any](
	ctx context.Context,
	i *sequence.Iterator[T],
	workers int,
	mapFn func(context.Context, T) (R, error),
) ([]R, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	in := i.Collect()
	out := make([]R, len(in))

	errGroup, groupCtx := errgroup.WithContext(ctx)
	errGroup.SetLimit(workers)

	for idx, val := range in {
		if groupCtx.Err() != nil {
			break
		}
		errGroup.Go(func() error {
			res, err := mapFn(groupCtx, val)
			if err != nil {
				return err
			}
			out[idx] = res
			return nil
		})
	}

	if err := errGroup.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
