// Package distance provides distance metrics for clustering.
//
// All metrics operate on []float64 points of equal length and satisfy
// symmetry and non-negativity. The triangle inequality is not required
// by the PAM core, which makes arbitrary dissimilarities usable.
//
// # Supported Metrics
//
//   - MetricSquaredEuclidean: squared L2 distance (default)
//   - MetricEuclidean: L2 distance
//   - MetricManhattan: L1 (city block) distance
//   - MetricChebyshev: L-infinity distance
//   - MetricCanberra: weighted L1 distance
//
// Minkowski is parameterized and therefore constructed directly:
//
//	fn := distance.Minkowski(3)
//	d := fn(a, b)
//
// # Usage
//
//	fn, err := distance.Provider(distance.MetricManhattan)
//	d := fn(a, b)
package distance
