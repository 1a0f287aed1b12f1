// Package distance provides the public API for sample/centroid distance
// calculations.
//
// Distance functions operate on lane-aligned chunks of equal length and
// return a non-negative dissimilarity. Zero padding past the true
// dimension never contributes to the result, so chunks may be compared at
// full stride width.
package distance
