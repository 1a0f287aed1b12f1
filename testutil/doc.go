// Package testutil provides deterministic sample generators for tests
// and benchmarks.
package testutil
