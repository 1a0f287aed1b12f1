package clustergo

import (
	"runtime"
	"time"

	"github.com/hupe1980/clustergo/distance"
	"github.com/hupe1980/clustergo/internal/lanes"
	"github.com/hupe1980/clustergo/internal/rng"
)

type options[T lanes.Float] struct {
	metric      distance.Metric
	dist        distance.Func[T]
	parallelism int
	laneWidth   int
	logger      *Logger
}

// Option configures KMeans construction.
type Option[T lanes.Float] func(*options[T])

func defaultOptions[T lanes.Float]() *options[T] {
	return &options[T]{
		metric:      distance.MetricEuclidean,
		parallelism: runtime.GOMAXPROCS(0),
		laneWidth:   lanes.PreferredWidth(),
		logger:      NoopLogger(),
	}
}

// WithMetric selects the distance metric. Default is MetricEuclidean.
func WithMetric[T lanes.Float](m distance.Metric) Option[T] {
	return func(o *options[T]) {
		o.metric = m
	}
}

// WithDistanceFunc installs a custom distance function, overriding the
// metric selection. The function must be pure, deterministic and
// non-negative, and must ignore zero padding lanes.
func WithDistanceFunc[T lanes.Float](fn distance.Func[T]) Option[T] {
	return func(o *options[T]) {
		o.dist = fn
	}
}

// WithParallelism sets the number of stride blocks and therefore the
// degree of data parallelism. Values below 1 fall back to GOMAXPROCS.
func WithParallelism[T lanes.Float](p int) Option[T] {
	return func(o *options[T]) {
		if p < 1 {
			p = runtime.GOMAXPROCS(0)
		}
		o.parallelism = p
	}
}

// WithLaneWidth sets the lane width the storage layout is padded to.
// Width 1 is the scalar layout; every width yields identical numerics.
// Default is lanes.PreferredWidth() for the detected CPU.
func WithLaneWidth[T lanes.Float](w int) Option[T] {
	return func(o *options[T]) {
		if w < 1 {
			w = 1
		}
		o.laneWidth = w
	}
}

// WithLogger configures structured logging. Default is NoopLogger.
func WithLogger[T lanes.Float](l *Logger) Option[T] {
	return func(o *options[T]) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

type runOptions struct {
	rnd           *rng.Source
	abort         AbortStrategy
	initDone      func()
	iterationDone func(iter int, prevDistsum, newDistsum float64)
}

// RunOption configures a single clustering invocation.
type RunOption func(*runOptions)

func newRunOptions(opts []RunOption) *runOptions {
	ro := &runOptions{}
	for _, opt := range opts {
		opt(ro)
	}
	if ro.rnd == nil {
		ro.rnd = rng.NewSource(time.Now().UnixNano())
	}
	return ro
}

// WithSeed seeds the run's randomness source. Identical seed, inputs
// and configuration (including parallelism and lane width) yields
// identical results.
func WithSeed(seed int64) RunOption {
	return func(o *runOptions) {
		o.rnd = rng.NewSource(seed)
	}
}

// WithAbortStrategy sets the termination policy checked at every
// iteration boundary. Stateful strategies must not be shared between
// runs. Defaults: AbortOnConvergence for Lloyd, AbortOnNoImprovement
// for MiniBatch.
func WithAbortStrategy(s AbortStrategy) RunOption {
	return func(o *runOptions) {
		o.abort = s
	}
}

// WithInitDone registers a read-only observer invoked once after
// centroid initialization completes.
func WithInitDone(fn func()) RunOption {
	return func(o *runOptions) {
		o.initDone = fn
	}
}

// WithIterationDone registers a read-only observer invoked after each
// iteration with the previous and the candidate distance sum.
func WithIterationDone(fn func(iter int, prevDistsum, newDistsum float64)) RunOption {
	return func(o *runOptions) {
		o.iterationDone = fn
	}
}
