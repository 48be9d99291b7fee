// Package clustergo provides an embedded K-Medoids (PAM) clustering
// library for Go.
//
// The library partitions a dataset into K clusters, each represented
// by one of its actual data points (the medoid). It accepts either raw
// feature vectors or a precomputed pairwise distance matrix, so
// arbitrary dissimilarity measures can be clustered without exposing
// feature space.
//
// # Quick Start
//
// Points mode:
//
//	ctx := context.Background()
//	ds, _ := dataset.FromPoints([][]float64{
//	    {0, 0}, {1, 0}, {10, 10}, {11, 10},
//	})
//	km := kmedoids.New([]int{0, 2})
//	result, _ := km.Process(ctx, ds)
//	fmt.Println(result.Medoids, result.Labels)
//
// Distance matrix mode:
//
//	ds, _ := dataset.FromMatrix(matrix)       // in-memory [][]float64
//	ds, _ := dataset.OpenMatrixFile("d.cgdm") // mmap-backed matrix file
//
// # Engine
//
// Engine wraps an algorithm with structured logging, metrics,
// resource limits, and snapshot persistence:
//
//	engine := clustergo.New(km,
//	    clustergo.WithLogLevel(slog.LevelInfo),
//	    clustergo.WithCompression(persistence.CompressionZSTD),
//	)
//	result, _ := engine.Process(ctx, ds)
//
//	store, _ := blobstore.NewLocalStore("./data")
//	_ = engine.SaveSnapshot(ctx, store, "snapshots/run1", &persistence.Snapshot{
//	    Algorithm: "kmedoids",
//	    Size:      ds.Len(),
//	    Result:    result,
//	})
//
// Snapshots can also target Amazon S3 (blobstore/s3) or MinIO
// (blobstore/minio).
//
// # Initialization
//
// Medoid seeds come from the caller. The initializer package provides
// uniform random and k-means++ style seeding:
//
//	seeds, _ := initializer.KMeansPP(ds, 3, nil, rng)
//	km := kmedoids.New(seeds)
//
// # Determinism
//
// Given the same dataset, initial medoids, and options, clustering is
// fully deterministic: all ties resolve to the lowest index, and the
// parallel execution path produces the same result as the serial one.
package clustergo
