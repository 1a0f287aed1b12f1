package clustergo

import (
	"github.com/hupe1980/clustergo/internal/block"
	"github.com/hupe1980/clustergo/internal/lanes"
)

// runState is the mutable accumulator of a single clustering invocation.
// It is created per run and never shared, so concurrent runs over the
// same sample set cannot observe each other's state.
type runState[T lanes.Float] struct {
	k           int
	centroids   *block.Strided[T]
	assignments []int
	frequencies []int
	distsum     float64

	// Per-worker scratch for the update phase, allocated once per run so
	// no buffer reallocation happens mid-run.
	partialSums   [][]T
	partialCounts [][]int
}

func newRunState[T lanes.Float](km *KMeans[T], k int) *runState[T] {
	p := km.samples.Blocks()
	stride := km.samples.Stride()

	st := &runState[T]{
		k:             k,
		centroids:     block.NewStrided[T](k, km.dim, km.samples.Width()),
		assignments:   make([]int, km.n),
		frequencies:   make([]int, k),
		partialSums:   make([][]T, p),
		partialCounts: make([][]int, p),
	}
	for b := 0; b < p; b++ {
		st.partialSums[b] = make([]T, k*stride)
		st.partialCounts[b] = make([]int, k)
	}

	return st
}

// snapshot freezes the run state into an immutable Result.
func (st *runState[T]) snapshot(km *KMeans[T], iterations int) *Result[T] {
	res := &Result[T]{
		K:           st.k,
		Dim:         km.dim,
		Stride:      st.centroids.Stride(),
		Centroids:   make([]T, st.k*st.centroids.Stride()),
		Assignments: make([]int, len(st.assignments)),
		Frequencies: make([]int, st.k),
		Distsum:     st.distsum,
		Iterations:  iterations,
	}
	copy(res.Centroids, st.centroids.Data())
	copy(res.Assignments, st.assignments)
	copy(res.Frequencies, st.frequencies)

	return res
}
