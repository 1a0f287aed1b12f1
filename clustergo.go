package clustergo

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/clustergo/distance"
	"github.com/hupe1980/clustergo/internal/block"
	"github.com/hupe1980/clustergo/internal/lanes"
)

// KMeans holds an immutable sample set prepared for clustering runs.
//
// The value is safe for concurrent use: run methods never mutate it, so
// multiple runs may share one KMeans instance.
type KMeans[T lanes.Float] struct {
	samples *block.Partitioned[T]
	dist    distance.Func[T]
	logger  *Logger
	n       int
	dim     int
}

// New copies the flat n x dim sample buffer into lane-aligned, partitioned
// storage and returns a KMeans instance ready for Lloyd or MiniBatch runs.
func New[T lanes.Float](samples []T, n, dim int, optFns ...Option[T]) (*KMeans[T], error) {
	if dim <= 0 {
		return nil, &ErrInvalidDimension{Dimension: dim}
	}
	if n <= 0 || len(samples) != n*dim {
		return nil, &ErrSampleLength{Expected: n * dim, Actual: len(samples)}
	}

	o := defaultOptions[T]()
	for _, fn := range optFns {
		fn(o)
	}

	dist := o.dist
	if dist == nil {
		var err error
		dist, err = distance.Provider[T](o.metric)
		if err != nil {
			return nil, err
		}
	}

	return &KMeans[T]{
		samples: block.NewPartitioned(samples, n, dim, o.parallelism, o.laneWidth),
		dist:    dist,
		logger:  o.logger.WithDimension(dim),
		n:       n,
		dim:     dim,
	}, nil
}

// N returns the sample count.
func (km *KMeans[T]) N() int { return km.n }

// Dim returns the sample dimension.
func (km *KMeans[T]) Dim() int { return km.dim }

// Stride returns the padded row width of the storage layout.
func (km *KMeans[T]) Stride() int { return km.samples.Stride() }

// Parallelism returns the number of stride blocks the samples are
// partitioned into.
func (km *KMeans[T]) Parallelism() int { return km.samples.Blocks() }

func (km *KMeans[T]) validateK(k int) error {
	if k < 1 || k > km.n {
		return ErrInvalidK
	}
	return nil
}

// assign runs the full assignment phase: every sample is assigned to its
// nearest centroid (ties broken by lowest centroid index) and the winning
// distances are summed. Workers own disjoint blocks; the per-worker sums
// are reduced after the join barrier.
func (km *KMeans[T]) assign(ctx context.Context, st *runState[T]) (float64, error) {
	partial := make([]float64, km.samples.Blocks())

	g, _ := errgroup.WithContext(ctx)
	for b := 0; b < km.samples.Blocks(); b++ {
		b := b
		g.Go(func() error {
			blk, start := km.samples.Block(b)
			var sum float64
			for r := 0; r < blk.Rows(); r++ {
				chunk := blk.Row(r)
				best, bestDist := km.nearest(chunk, st)
				st.assignments[start+r] = best
				sum += float64(bestDist)
			}
			partial[b] = sum
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

// nearest returns the arg-min centroid index and its distance for one
// sample chunk. Strict less-than keeps ties on the lowest index.
func (km *KMeans[T]) nearest(chunk []T, st *runState[T]) (int, T) {
	best := 0
	bestDist := km.dist(chunk, st.centroids.Row(0))
	for c := 1; c < st.k; c++ {
		if d := km.dist(chunk, st.centroids.Row(c)); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist
}

// update recomputes every centroid as the mean of its assigned samples,
// derived fresh from the assignment vector. Each worker accumulates
// partial sums and counts for its own block; the merge into the shared
// centroid buffer is the single synchronization point of the phase.
// Clusters that received no samples keep their previous centroid.
func (km *KMeans[T]) update(ctx context.Context, st *runState[T]) error {
	g, _ := errgroup.WithContext(ctx)
	for b := 0; b < km.samples.Blocks(); b++ {
		b := b
		g.Go(func() error {
			sums, counts := st.partialSums[b], st.partialCounts[b]
			clear(sums)
			clear(counts)

			blk, start := km.samples.Block(b)
			stride := st.centroids.Stride()
			for r := 0; r < blk.Rows(); r++ {
				a := st.assignments[start+r]
				lanes.Add(sums[a*stride:(a+1)*stride], blk.Row(r))
				counts[a]++
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Sequential reduction of the per-worker accumulators.
	sums, counts := st.partialSums[0], st.partialCounts[0]
	for b := 1; b < km.samples.Blocks(); b++ {
		lanes.Add(sums, st.partialSums[b])
		for c := range counts {
			counts[c] += st.partialCounts[b][c]
		}
	}

	stride := st.centroids.Stride()
	for c := 0; c < st.k; c++ {
		st.frequencies[c] = counts[c]
		if counts[c] == 0 {
			// Empty cluster: keep the previous centroid untouched.
			continue
		}
		row := st.centroids.Row(c)
		copy(row, sums[c*stride:(c+1)*stride])
		lanes.Scale(row, 1/T(counts[c]))
	}

	return nil
}
