package clustergo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when k is zero or exceeds the sample count.
	ErrInvalidK = errors.New("k must be in [1, sample count]")

	// ErrInvalidBatchSize is returned when the mini-batch size is not positive.
	ErrInvalidBatchSize = errors.New("batch size must be positive")

	// ErrNonFiniteDistance is returned when an assignment phase produces a
	// NaN or infinite distance. It signals malformed input data and is
	// never masked or clamped.
	ErrNonFiniteDistance = errors.New("non-finite distance encountered")
)

// ErrInvalidDimension indicates an invalid configured dimension.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidDimension struct {
	Dimension int
	cause     error
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

func (e *ErrInvalidDimension) Unwrap() error { return e.cause }

// ErrSampleLength indicates a sample buffer whose length does not equal
// n * dim.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrSampleLength struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrSampleLength) Error() string {
	return fmt.Sprintf("sample buffer length mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrSampleLength) Unwrap() error { return e.cause }
