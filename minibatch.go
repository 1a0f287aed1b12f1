package clustergo

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/clustergo/internal/lanes"
)

// MiniBatch runs mini-batch k-means: every iteration draws batchSize
// sample indices WITH replacement from the shared randomness source,
// assigns only that subset and folds each drawn sample into its centroid
// via an incremental running mean (c += (x-c)/count). Frequency counters
// persist and grow across the whole run; they are the running-mean
// denominators, not per-iteration partition sizes.
//
// The abort strategy sees batch-local distance sums, which are noisier
// than full-batch sums; the default AbortOnNoImprovement tolerates the
// resulting non-monotonic sequence. After termination one full assignment
// pass runs so the Result covers every sample and reports the full-data
// distance sum.
func (km *KMeans[T]) MiniBatch(ctx context.Context, batchSize, k, maxIter int, init InitStrategy[T], optFns ...RunOption) (*Result[T], error) {
	if batchSize < 1 {
		return nil, ErrInvalidBatchSize
	}
	if err := km.validateK(k); err != nil {
		return nil, err
	}

	ro := newRunOptions(optFns)
	abort := ro.abort
	if abort == nil {
		abort = &AbortOnNoImprovement{Patience: 3}
	}
	logger := km.logger.WithK(k)

	st := newRunState(km, k)
	if err := init(ctx, km, st, ro.rnd); err != nil {
		logger.LogRun(ctx, "minibatch", k, 0, 0, err)
		return nil, err
	}
	if ro.initDone != nil {
		ro.initDone()
	}

	workers := min(km.samples.Blocks(), batchSize)
	batch := make([]int, batchSize)
	batchAssign := make([]int, batchSize)
	partial := make([]float64, workers)

	prev := math.Inf(1)
	iterations := 0
	for iter := 0; iter < maxIter; iter++ {
		if err := ctx.Err(); err != nil {
			logger.LogRun(ctx, "minibatch", k, iterations, st.distsum, err)
			return nil, err
		}

		ro.rnd.FillIntn(batch, km.n)

		cur, err := km.assignBatch(ctx, st, batch, batchAssign, partial)
		if err != nil {
			logger.LogRun(ctx, "minibatch", k, iterations, st.distsum, err)
			return nil, err
		}
		km.updateBatch(st, batch, batchAssign)

		iterations = iter + 1

		if ro.iterationDone != nil {
			ro.iterationDone(iter, prev, cur)
		}
		logger.LogIteration(ctx, "minibatch", iter, prev, cur)

		cont := abort.Continue(iter, prev, cur, maxIter)
		prev = cur
		if !cont {
			break
		}
	}

	// Final full assignment so the snapshot covers every sample.
	full, err := km.assign(ctx, st)
	if err != nil {
		logger.LogRun(ctx, "minibatch", k, iterations, st.distsum, err)
		return nil, err
	}
	st.distsum = full

	logger.LogRun(ctx, "minibatch", k, iterations, st.distsum, nil)

	return st.snapshot(km, iterations), nil
}

// assignBatch assigns the drawn batch indices to their nearest centroids,
// splitting the batch into contiguous per-worker ranges.
func (km *KMeans[T]) assignBatch(ctx context.Context, st *runState[T], batch, batchAssign []int, partial []float64) (float64, error) {
	workers := len(partial)
	base, rem := len(batch)/workers, len(batch)%workers

	g, _ := errgroup.WithContext(ctx)
	start := 0
	for w := 0; w < workers; w++ {
		lo, n := start, base
		if w < rem {
			n++
		}
		hi := lo + n
		start = hi

		w := w
		g.Go(func() error {
			var sum float64
			for i := lo; i < hi; i++ {
				chunk := km.samples.Row(batch[i])
				best, bestDist := km.nearest(chunk, st)
				batchAssign[i] = best
				sum += float64(bestDist)
			}
			partial[w] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var distsum float64
	for _, s := range partial {
		distsum += s
	}
	if math.IsNaN(distsum) || math.IsInf(distsum, 0) {
		return 0, ErrNonFiniteDistance
	}

	return distsum, nil
}

// updateBatch folds the batch into the centroids sequentially, in draw
// order, keeping the update deterministic under a fixed seed.
func (km *KMeans[T]) updateBatch(st *runState[T], batch, batchAssign []int) {
	for i, idx := range batch {
		c := batchAssign[i]
		st.frequencies[c]++
		lanes.IncrementalMean(st.centroids.Row(c), km.samples.Row(idx), T(st.frequencies[c]))
		st.assignments[idx] = c
	}
}
