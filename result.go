package clustergo

import "github.com/hupe1980/clustergo/internal/lanes"

// Result is the immutable snapshot returned by a clustering run.
type Result[T lanes.Float] struct {
	// K is the number of clusters.
	K int
	// Dim is the true sample dimension.
	Dim int
	// Stride is the padded row width of Centroids.
	Stride int
	// Centroids holds K rows of Stride values each. Padding lanes past
	// Dim are zero.
	Centroids []T
	// Assignments maps every sample index to its centroid index in [0,K).
	Assignments []int
	// Frequencies holds the occupancy count per cluster. For full-batch
	// runs these are the final partition sizes and sum to the sample
	// count; for mini-batch runs they are the lifetime running counts
	// behind the incremental means. A zero entry marks a degenerate
	// (empty) cluster.
	Frequencies []int
	// Distsum is the aggregate distance between samples and their
	// assigned centroids, the objective being minimized.
	Distsum float64
	// Iterations is the number of completed iterations.
	Iterations int
}

// Centroid returns the Dim-dimensional view of centroid i, without
// padding lanes.
func (r *Result[T]) Centroid(i int) []T {
	return r.Centroids[i*r.Stride : i*r.Stride+r.Dim]
}
