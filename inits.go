package clustergo

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/clustergo/internal/lanes"
	"github.com/hupe1980/clustergo/internal/rng"
)

// InitStrategy produces a valid initial (centroids, assignments) pair for
// a run. Strategies consume the shared randomness source strictly
// sequentially, so results are reproducible under a fixed seed.
//
// Pass one of the package-level strategies, instantiated for the sample
// type, e.g. clustergo.InitKMeansPlusPlus[float64].
type InitStrategy[T lanes.Float] func(ctx context.Context, km *KMeans[T], st *runState[T], rnd *rng.Source) error

// InitRandomPartition assigns every sample a uniformly random cluster and
// sets each centroid to the mean of its partition.
//
// A cluster that receives no samples keeps its zero centroid. That is a
// known degenerate case: the empty-cluster policy of the engines leaves
// such a centroid untouched for the rest of the run.
func InitRandomPartition[T lanes.Float](ctx context.Context, km *KMeans[T], st *runState[T], rnd *rng.Source) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Pass 1: random assignment and frequency tally.
	rnd.FillIntn(st.assignments, st.k)
	for _, a := range st.assignments {
		st.frequencies[a]++
	}

	// Pass 2: accumulate each sample scaled by 1/frequency, producing the
	// running mean directly.
	for i := 0; i < km.n; i++ {
		a := st.assignments[i]
		lanes.AddScaled(st.centroids.Row(a), km.samples.Row(i), 1/T(st.frequencies[a]))
	}

	return nil
}

// InitRandomSample copies k distinct samples verbatim as centroids.
//
// k is split across the stride blocks proportionally to their row counts
// (shares always sum to exactly k), and each block's share is drawn
// without replacement from its own rows.
func InitRandomSample[T lanes.Float](ctx context.Context, km *KMeans[T], st *runState[T], rnd *rng.Source) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ci := 0
	cum, prev := 0, 0
	for b := 0; b < km.samples.Blocks(); b++ {
		blk, _ := km.samples.Block(b)
		cum += blk.Rows()

		share := st.k*cum/km.n - prev
		prev += share
		if share == 0 {
			continue
		}

		for _, r := range rnd.Sample(blk.Rows(), share) {
			st.centroids.SetRow(ci, blk.Row(r))
			ci++
		}
	}

	return nil
}

// InitKMeansPlusPlus implements k-means++ seeding: each new centroid is
// drawn with probability proportional to the sample's distance to its
// nearest already-chosen centroid.
//
// The per-sample nearest distances are refreshed in parallel after every
// pick; the weighted draws themselves consume the shared randomness
// source sequentially.
func InitKMeansPlusPlus[T lanes.Float](ctx context.Context, km *KMeans[T], st *runState[T], rnd *rng.Source) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	st.centroids.SetRow(0, km.samples.Row(rnd.Intn(km.n)))

	weights := make([]float64, km.n)
	for i := range weights {
		weights[i] = math.Inf(1)
	}

	for c := 1; c < st.k; c++ {
		if err := updateNearestWeights(ctx, km, st.centroids.Row(c-1), weights); err != nil {
			return err
		}
		st.centroids.SetRow(c, km.samples.Row(rnd.Weighted(weights)))
	}

	return nil
}

// updateNearestWeights folds the distance to one new centroid into the
// per-sample nearest-distance vector, one worker per block.
func updateNearestWeights[T lanes.Float](ctx context.Context, km *KMeans[T], centroid []T, weights []float64) error {
	g, _ := errgroup.WithContext(ctx)
	for b := 0; b < km.samples.Blocks(); b++ {
		b := b
		g.Go(func() error {
			blk, start := km.samples.Block(b)
			for r := 0; r < blk.Rows(); r++ {
				d := float64(km.dist(blk.Row(r), centroid))
				if math.IsNaN(d) || math.IsInf(d, 0) {
					return ErrNonFiniteDistance
				}
				if d < weights[start+r] {
					weights[start+r] = d
				}
			}
			return nil
		})
	}

	return g.Wait()
}
