// Package lanes provides the numeric kernels used by the clustering
// engines, generic over float32 and float64.
//
// All kernels operate on lane-aligned chunks: slices whose length is a
// multiple of the configured lane width, padded with zeros past the true
// dimension. The kernels are written with independent accumulators so the
// compiler can keep them in registers and vectorize the hot loops.
//
// Lane width selection is a layout decision, not a dispatch decision:
// every width produces identical numeric results, including width 1
// (pure scalar layout). PreferredWidth picks a default from the detected
// CPU features; set CLUSTERGO_LANES to override it.
package lanes
