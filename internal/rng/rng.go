package rng

import (
	"math/rand"
	"sync"
)

// Source encapsulates a seeded random number generator.
// It is thread-safe; draws are strictly sequential.
type Source struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewSource creates a new Source with the specified seed.
func NewSource(seed int64) *Source {
	return &Source{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the Source to its initial seed.
func (r *Source) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *Source) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *Source) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *Source) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillIntn fills dst with pseudo-random numbers in [0,n).
// Locks only once per call (preferred over calling Intn in a loop).
func (r *Source) FillIntn(dst []int, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Intn(n)
	}
}

// Sample returns k distinct indices drawn without replacement from [0,n).
// Uses a partial Fisher-Yates shuffle, so only the first k draws of the
// underlying generator are consumed.
func (r *Source) Sample(n, k int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if k > n {
		k = n
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + r.rand.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	return idx[:k]
}

// Weighted returns an index drawn with probability proportional to
// weights[i]. The caller must ensure the weights sum to a positive,
// finite value.
func (r *Source) Weighted(weights []float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	var total float64
	for _, w := range weights {
		total += w
	}

	u := r.rand.Float64() * total
	var cumulative float64
	for i, w := range weights {
		cumulative += w
		if u < cumulative {
			return i
		}
	}

	// Rounding left u past the last positive weight.
	for i := len(weights) - 1; i > 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return 0
}
