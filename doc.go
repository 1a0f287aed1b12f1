// Package clustergo provides high-throughput k-means clustering for Go.
//
// Clustergo computes k-means partitions over dense sample matrices. The
// storage layout is tuned for lane-parallel access (stride-padded rows,
// partitioned into per-worker blocks) and the engines run data-parallel
// fork-join phases across all cores. Both float32 and float64 samples are
// supported.
//
// # Quick Start
//
//	ctx := context.Background()
//
//	// samples is a flat buffer of n rows with dim values each.
//	km, _ := clustergo.New(samples, n, dim)
//
//	result, _ := km.Lloyd(ctx, 8, 100, clustergo.InitKMeansPlusPlus[float64],
//	    clustergo.WithSeed(1337))
//
//	fmt.Println(result.Assignments, result.Distsum)
//
// # Variants
//
// Two iterative variants are provided:
//
//	// Full-batch Lloyd's algorithm: every sample, every iteration.
//	result, _ := km.Lloyd(ctx, k, maxIter, clustergo.InitKMeansPlusPlus[float64])
//
//	// Mini-batch: a random subset per iteration, incremental centroid means.
//	result, _ := km.MiniBatch(ctx, 256, k, maxIter, clustergo.InitRandomSample[float64])
//
// # Determinism
//
// All randomness flows through a single seeded source with strictly
// sequential draws. Two runs with identical inputs, options and seed
// produce identical assignments, centroids and distance sums.
//
// # Observer callbacks
//
//	result, _ := km.Lloyd(ctx, k, maxIter, clustergo.InitRandomSample[float64],
//	    clustergo.WithInitDone(func() { fmt.Println("initialized") }),
//	    clustergo.WithIterationDone(func(iter int, prev, cur float64) {
//	        fmt.Printf("iteration %d: %.2f -> %.2f\n", iter, prev, cur)
//	    }))
//
// The callbacks are read-only observers; the engines never depend on them.
package clustergo
