// Package block provides the stride-padded matrix storage backing samples
// and centroids.
//
// Rows are stored dimension-major at stride width, where stride is the
// true dimension rounded up to the configured lane width. Padding lanes
// are zero and stay zero for the lifetime of the matrix.
//
// Sample matrices are additionally partitioned into P independent blocks,
// each owning a contiguous run of rows. During the read-heavy assignment
// phase every worker owns exactly one block, so iteration is allocation
// free and involves no cross-block mutation.
package block
