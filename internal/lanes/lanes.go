package lanes

// Float is the primitive constraint shared by all clustering code.
type Float interface {
	~float32 | ~float64
}

// RoundUp returns dim rounded up to the next multiple of width.
func RoundUp(dim, width int) int {
	if width <= 1 {
		return dim
	}
	return (dim + width - 1) / width * width
}

// SquaredL2 calculates the squared L2 distance between two chunks.
//
// SAFETY: This function assumes len(a) == len(b).
// It does NOT perform bounds checks for performance reasons.
// Callers MUST ensure lengths match to avoid buffer over-reads.
func SquaredL2[T Float](a, b []T) T {
	var s0, s1, s2, s3 T

	i := 0
	for ; i+4 <= len(a); i += 4 {
		d0 := a[i] - b[i]
		d1 := a[i+1] - b[i+1]
		d2 := a[i+2] - b[i+2]
		d3 := a[i+3] - b[i+3]
		s0 += d0 * d0
		s1 += d1 * d1
		s2 += d2 * d2
		s3 += d3 * d3
	}
	for ; i < len(a); i++ {
		d := a[i] - b[i]
		s0 += d * d
	}

	return s0 + s1 + s2 + s3
}

// ChiSquared calculates the chi-square histogram distance between two
// chunks: sum((a-b)^2 / (a+b)). Lanes where a+b == 0 contribute nothing,
// which covers both zero counts and padding lanes.
func ChiSquared[T Float](a, b []T) T {
	var sum T
	for i := range a {
		s := a[i] + b[i]
		if s == 0 {
			continue
		}
		d := a[i] - b[i]
		sum += d * d / s
	}
	return sum
}

// Sum returns the sum of all elements of a.
func Sum[T Float](a []T) T {
	var s0, s1, s2, s3 T

	i := 0
	for ; i+4 <= len(a); i += 4 {
		s0 += a[i]
		s1 += a[i+1]
		s2 += a[i+2]
		s3 += a[i+3]
	}
	for ; i < len(a); i++ {
		s0 += a[i]
	}

	return s0 + s1 + s2 + s3
}

// Scale multiplies all elements of a by scalar in place.
func Scale[T Float](a []T, scalar T) {
	for i := range a {
		a[i] *= scalar
	}
}

// Add accumulates src into dst elementwise.
//
// SAFETY: assumes len(dst) == len(src), no bounds checks.
func Add[T Float](dst, src []T) {
	for i := range dst {
		dst[i] += src[i]
	}
}

// AddScaled accumulates src*scalar into dst elementwise.
//
// SAFETY: assumes len(dst) == len(src), no bounds checks.
func AddScaled[T Float](dst, src []T, scalar T) {
	for i := range dst {
		dst[i] += src[i] * scalar
	}
}

// IncrementalMean folds sample into the running mean dst with the given
// occupancy count: dst += (sample - dst) / count.
//
// SAFETY: assumes len(dst) == len(sample), no bounds checks.
func IncrementalMean[T Float](dst, sample []T, count T) {
	inv := 1 / count
	for i := range dst {
		dst[i] += (sample[i] - dst[i]) * inv
	}
}
