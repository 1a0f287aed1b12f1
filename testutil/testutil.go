package testutil

import (
	"math/rand"

	"github.com/hupe1980/clustergo/internal/lanes"
)

// Uniform generates a flat n x dim sample buffer with values in [0, 1).
func Uniform[T lanes.Float](seed int64, n, dim int) []T {
	rnd := rand.New(rand.NewSource(seed))

	samples := make([]T, n*dim)
	for i := range samples {
		samples[i] = T(rnd.Float64())
	}

	return samples
}

// Clustered generates a flat n x dim sample buffer grouped around
// `clusters` random centers with Gaussian noise of the given spread.
// Samples are interleaved round-robin across the centers, so every
// center receives roughly n/clusters samples.
func Clustered[T lanes.Float](seed int64, n, dim, clusters int, spread float64) []T {
	rnd := rand.New(rand.NewSource(seed))

	centers := make([]float64, clusters*dim)
	for i := range centers {
		centers[i] = rnd.Float64() * 10
	}

	samples := make([]T, n*dim)
	for i := 0; i < n; i++ {
		c := i % clusters
		for j := 0; j < dim; j++ {
			samples[i*dim+j] = T(centers[c*dim+j] + rnd.NormFloat64()*spread)
		}
	}

	return samples
}

// Histograms generates a flat n x dim buffer of non-negative rows that
// each sum to one, suitable for the histogram distance.
func Histograms[T lanes.Float](seed int64, n, dim int) []T {
	rnd := rand.New(rand.NewSource(seed))

	samples := make([]T, n*dim)
	for i := 0; i < n; i++ {
		row := samples[i*dim : (i+1)*dim]
		for j := range row {
			row[j] = T(rnd.Float64())
		}
		lanes.Scale(row, 1/lanes.Sum(row))
	}

	return samples
}
