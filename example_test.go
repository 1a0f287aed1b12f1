package clustergo_test

import (
	"context"
	"fmt"

	"github.com/hupe1980/clustergo"
	"github.com/hupe1980/clustergo/testutil"
)

func ExampleKMeans_Lloyd() {
	ctx := context.Background()

	const n, dim, k = 1000, 8, 4
	samples := testutil.Clustered[float64](1337, n, dim, k, 0.2)

	km, err := clustergo.New(samples, n, dim)
	if err != nil {
		panic(err)
	}

	result, err := km.Lloyd(ctx, k, 100, clustergo.InitKMeansPlusPlus[float64],
		clustergo.WithSeed(1337))
	if err != nil {
		panic(err)
	}

	fmt.Println(len(result.Assignments), result.K)
	// Output: 1000 4
}

func ExampleKMeans_MiniBatch() {
	ctx := context.Background()

	const n, dim, k = 5000, 16, 8
	samples := testutil.Clustered[float32](42, n, dim, k, 0.1)

	km, err := clustergo.New(samples, n, dim)
	if err != nil {
		panic(err)
	}

	result, err := km.MiniBatch(ctx, 256, k, 500, clustergo.InitRandomSample[float32],
		clustergo.WithSeed(42),
		clustergo.WithAbortStrategy(&clustergo.AbortOnNoImprovement{Patience: 10}))
	if err != nil {
		panic(err)
	}

	fmt.Println(len(result.Assignments), result.K)
	// Output: 5000 8
}
