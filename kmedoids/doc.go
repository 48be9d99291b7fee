// Package kmedoids implements K-Medoids clustering (PAM, Partitioning
// Around Medoids).
//
// The algorithm alternates two phases until the medoids stabilize:
// assign every item to its nearest medoid, then recompute each
// cluster's medoid as the member minimizing the total distance to all
// other members. Both phases break exact ties towards the lowest
// index, so identical inputs always produce identical outputs.
//
// The same loop runs over raw points with a pluggable metric or over a
// precomputed distance matrix; the representation is selected once per
// run from the dataset kind.
//
//	ds, _ := dataset.FromPoints([][]float64{{0, 0}, {1, 0}, {10, 10}, {11, 10}})
//	km := kmedoids.New([]int{0, 2})
//	result, err := km.Process(ctx, ds)
//
// PAM is a local-search heuristic: it converges to a local optimum
// that depends on the initial medoids. The initializer package
// provides random and k-means++ seeding.
package kmedoids
