package distance

import (
	"fmt"

	"github.com/hupe1980/clustergo/internal/lanes"
)

// SquaredL2 calculates the squared L2 (Euclidean) distance between two
// chunks. The square root is intentionally omitted: assignment and
// convergence only need the relative ordering of distances.
//
// Assumes chunks are the same length (caller's responsibility).
func SquaredL2[T lanes.Float](a, b []T) T {
	return lanes.SquaredL2(a, b)
}

// ChiSquared calculates the chi-square histogram distance between two
// chunks: sum((a-b)^2 / (a+b)). Lanes with a zero sum contribute nothing,
// which makes the measure robust to zero counts and padding lanes.
//
// Assumes chunks are the same length (caller's responsibility).
func ChiSquared[T lanes.Float](a, b []T) T {
	return lanes.ChiSquared(a, b)
}

// Metric represents the distance metric used for sample comparison.
type Metric int

const (
	// MetricEuclidean is the squared L2 distance (default).
	MetricEuclidean Metric = iota
	// MetricHistogram is the chi-square histogram distance.
	MetricHistogram
)

func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "Euclidean"
	case MetricHistogram:
		return "Histogram"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Func is a function type for distance calculation over two equal-length,
// lane-aligned chunks. Implementations must be pure, deterministic and
// return a non-negative value that is minimal for equal chunks.
type Func[T lanes.Float] func(a, b []T) T

// Provider returns the distance function for the given metric.
func Provider[T lanes.Float](m Metric) (Func[T], error) {
	switch m {
	case MetricEuclidean:
		return SquaredL2[T], nil
	case MetricHistogram:
		return ChiSquared[T], nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
