package clustergo

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/clustergo/internal/rng"
	"github.com/hupe1980/clustergo/testutil"
)

func TestMiniBatch_Invariants(t *testing.T) {
	ctx := context.Background()
	const n, dim, k, batch = 400, 4, 5, 64
	samples := testutil.Clustered[float64](51, n, dim, k, 0.2)

	km, err := New(samples, n, dim, WithParallelism[float64](4))
	require.NoError(t, err)

	res, err := km.MiniBatch(ctx, batch, k, 100, InitRandomSample[float64], WithSeed(1337))
	require.NoError(t, err)

	assert.Len(t, res.Assignments, n)
	assert.GreaterOrEqual(t, res.Iterations, 1)
	assert.GreaterOrEqual(t, res.Distsum, 0.0)
	for _, a := range res.Assignments {
		assert.GreaterOrEqual(t, a, 0)
		assert.Less(t, a, k)
	}

	// Frequencies are the lifetime running counts: one tally per draw.
	total := 0
	for _, f := range res.Frequencies {
		total += f
	}
	assert.Equal(t, res.Iterations*batch, total)
}

func TestMiniBatch_Determinism(t *testing.T) {
	ctx := context.Background()
	const n, dim, k, batch = 500, 3, 6, 50
	samples := testutil.Uniform[float64](53, n, dim)

	km, err := New(samples, n, dim, WithParallelism[float64](4))
	require.NoError(t, err)

	a, err := km.MiniBatch(ctx, batch, k, 60, InitKMeansPlusPlus[float64], WithSeed(77))
	require.NoError(t, err)
	b, err := km.MiniBatch(ctx, batch, k, 60, InitKMeansPlusPlus[float64], WithSeed(77))
	require.NoError(t, err)

	assert.Equal(t, a.Assignments, b.Assignments)
	assert.Equal(t, a.Centroids, b.Centroids)
	assert.Equal(t, a.Distsum, b.Distsum)
	assert.Equal(t, a.Iterations, b.Iterations)
}

func TestMiniBatch_InvalidArguments(t *testing.T) {
	ctx := context.Background()
	samples := testutil.Uniform[float64](1, 20, 2)

	km, err := New(samples, 20, 2)
	require.NoError(t, err)

	_, err = km.MiniBatch(ctx, 0, 3, 10, InitRandomSample[float64])
	assert.ErrorIs(t, err, ErrInvalidBatchSize)

	_, err = km.MiniBatch(ctx, 5, 0, 10, InitRandomSample[float64])
	assert.ErrorIs(t, err, ErrInvalidK)

	_, err = km.MiniBatch(ctx, 5, 21, 10, InitRandomSample[float64])
	assert.ErrorIs(t, err, ErrInvalidK)
}

func TestMiniBatch_EmptyClusterKeepsInitialCentroid(t *testing.T) {
	ctx := context.Background()
	const n, dim = 80, 2
	samples := testutil.Uniform[float64](59, n, dim)

	km, err := New(samples, n, dim, WithParallelism[float64](2))
	require.NoError(t, err)

	const far = 1e6
	pinned := func(ctx context.Context, km *KMeans[float64], st *runState[float64], rnd *rng.Source) error {
		st.centroids.SetRow(0, km.samples.Row(rnd.Intn(km.n)))
		st.centroids.SetRow(1, []float64{far, far})
		return nil
	}

	res, err := km.MiniBatch(ctx, 16, 2, 30, pinned, WithSeed(9), WithAbortStrategy(AbortNever{}))
	require.NoError(t, err)

	assert.Equal(t, []float64{far, far}, res.Centroid(1))
	assert.Zero(t, res.Frequencies[1])
	for _, v := range res.Centroids {
		assert.False(t, math.IsNaN(v))
	}
}

func TestMiniBatch_BatchLargerThanSamples(t *testing.T) {
	ctx := context.Background()
	const n, dim, k = 30, 2, 3
	samples := testutil.Uniform[float64](61, n, dim)

	km, err := New(samples, n, dim)
	require.NoError(t, err)

	// Drawing with replacement permits batches beyond the sample count.
	res, err := km.MiniBatch(ctx, 2*n, k, 20, InitRandomSample[float64], WithSeed(3))
	require.NoError(t, err)
	assert.Len(t, res.Assignments, n)
}

func TestMiniBatch_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	samples := testutil.Uniform[float64](1, 100, 2)
	km, err := New(samples, 100, 2)
	require.NoError(t, err)

	_, err = km.MiniBatch(ctx, 10, 3, 100, InitRandomSample[float64], WithSeed(1))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMiniBatch_ToleratesNoisyDistsums(t *testing.T) {
	ctx := context.Background()
	const n, dim, k, batch = 600, 3, 4, 32
	samples := testutil.Clustered[float64](67, n, dim, k, 0.3)

	km, err := New(samples, n, dim)
	require.NoError(t, err)

	iterations := 0
	res, err := km.MiniBatch(ctx, batch, k, 200, InitKMeansPlusPlus[float64],
		WithSeed(19),
		WithAbortStrategy(&AbortOnNoImprovement{Patience: 5}),
		WithIterationDone(func(_ int, _, _ float64) { iterations++ }),
	)
	require.NoError(t, err)

	assert.Equal(t, res.Iterations, iterations)
	assert.Greater(t, res.Iterations, 1, "patience must survive single noisy regressions")
}
