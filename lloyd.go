package clustergo

import (
	"context"
	"math"
)

// Lloyd runs full-batch k-means (Lloyd's algorithm): every iteration
// assigns all samples to their nearest centroid in parallel, recomputes
// every centroid as the mean of its partition and consults the abort
// strategy. maxIter bounds the number of iterations; the default abort
// strategy additionally stops on the first iteration without improvement.
//
// The returned Result is an immutable snapshot; km itself is never
// mutated. Cancellation is honored between iterations only.
func (km *KMeans[T]) Lloyd(ctx context.Context, k, maxIter int, init InitStrategy[T], optFns ...RunOption) (*Result[T], error) {
	if err := km.validateK(k); err != nil {
		return nil, err
	}

	ro := newRunOptions(optFns)
	abort := ro.abort
	if abort == nil {
		abort = AbortOnConvergence{}
	}
	logger := km.logger.WithK(k)

	st := newRunState(km, k)
	if err := init(ctx, km, st, ro.rnd); err != nil {
		logger.LogRun(ctx, "lloyd", k, 0, 0, err)
		return nil, err
	}
	if ro.initDone != nil {
		ro.initDone()
	}

	prev := math.Inf(1)
	iterations := 0
	for iter := 0; iter < maxIter; iter++ {
		if err := ctx.Err(); err != nil {
			logger.LogRun(ctx, "lloyd", k, iterations, st.distsum, err)
			return nil, err
		}

		cur, err := km.assign(ctx, st)
		if err != nil {
			logger.LogRun(ctx, "lloyd", k, iterations, st.distsum, err)
			return nil, err
		}
		if err := km.update(ctx, st); err != nil {
			logger.LogRun(ctx, "lloyd", k, iterations, st.distsum, err)
			return nil, err
		}

		st.distsum = cur
		iterations = iter + 1

		if ro.iterationDone != nil {
			ro.iterationDone(iter, prev, cur)
		}
		logger.LogIteration(ctx, "lloyd", iter, prev, cur)

		cont := abort.Continue(iter, prev, cur, maxIter)
		prev = cur
		if !cont {
			break
		}
	}

	logger.LogRun(ctx, "lloyd", k, iterations, st.distsum, nil)

	return st.snapshot(km, iterations), nil
}
