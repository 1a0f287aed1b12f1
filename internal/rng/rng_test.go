package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_Deterministic(t *testing.T) {
	a := NewSource(42)
	b := NewSource(42)

	for it := 0; it < 100; it++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	assert.Equal(t, a.Float64(), b.Float64())
}

func TestSource_Reset(t *testing.T) {
	r := NewSource(7)
	first := r.Intn(1 << 30)
	r.Intn(1 << 30)

	r.Reset()
	assert.Equal(t, first, r.Intn(1<<30))
	assert.Equal(t, int64(7), r.Seed())
}

func TestFillIntn(t *testing.T) {
	r := NewSource(1)
	dst := make([]int, 1000)
	r.FillIntn(dst, 5)

	for _, v := range dst {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 5)
	}

	// Single-lock fill draws the same sequence as per-call draws.
	a, b := NewSource(3), NewSource(3)
	bulk := make([]int, 10)
	a.FillIntn(bulk, 100)
	for i := range bulk {
		assert.Equal(t, b.Intn(100), bulk[i])
	}
}

func TestSample_Distinct(t *testing.T) {
	r := NewSource(9)

	picks := r.Sample(100, 5)
	require.Len(t, picks, 5)

	seen := map[int]struct{}{}
	for _, p := range picks {
		assert.GreaterOrEqual(t, p, 0)
		assert.Less(t, p, 100)
		seen[p] = struct{}{}
	}
	assert.Len(t, seen, 5)

	// k > n clamps to n.
	assert.Len(t, r.Sample(3, 10), 3)
}

func TestWeighted(t *testing.T) {
	r := NewSource(11)

	// All mass on one index.
	for it := 0; it < 20; it++ {
		assert.Equal(t, 2, r.Weighted([]float64{0, 0, 5, 0}))
	}

	// Zero total falls back deterministically.
	assert.Equal(t, 0, r.Weighted([]float64{0, 0, 0}))
}

func TestWeighted_Proportional(t *testing.T) {
	r := NewSource(13)

	counts := make([]int, 2)
	for it := 0; it < 10000; it++ {
		counts[r.Weighted([]float64{1, 3})]++
	}

	// Index 1 carries 75% of the mass.
	assert.InDelta(t, 7500, counts[1], 300)
}
