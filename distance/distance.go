// Package distance provides the pluggable distance metrics used by the
// clustering algorithms.
package distance

import (
	"fmt"
	"math"
)

// Func is a function type for distance calculation between two points.
//
// Implementations must be symmetric, non-negative and return zero for
// identical inputs. The triangle inequality is not required by the
// clustering core.
//
// Assumes points are the same length (caller's responsibility).
type Func func(a, b []float64) float64

// SquaredEuclidean calculates the squared Euclidean distance between
// two points. This is the default metric: it preserves the ordering of
// Euclidean and avoids the square root on the hot path.
func SquaredEuclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Euclidean calculates the Euclidean (L2) distance between two points.
func Euclidean(a, b []float64) float64 {
	return math.Sqrt(SquaredEuclidean(a, b))
}

// Manhattan calculates the Manhattan (L1, city block) distance between
// two points.
func Manhattan(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum
}

// Chebyshev calculates the Chebyshev (L-infinity) distance between two
// points.
func Chebyshev(a, b []float64) float64 {
	var max float64
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > max {
			max = d
		}
	}
	return max
}

// Canberra calculates the Canberra distance between two points.
// Coordinates where both values are zero contribute nothing.
func Canberra(a, b []float64) float64 {
	var sum float64
	for i := range a {
		denom := math.Abs(a[i]) + math.Abs(b[i])
		if denom == 0 {
			continue
		}
		sum += math.Abs(a[i]-b[i]) / denom
	}
	return sum
}

// Minkowski returns the Minkowski distance function of order p.
// p = 1 is Manhattan, p = 2 is Euclidean.
func Minkowski(p float64) Func {
	return func(a, b []float64) float64 {
		var sum float64
		for i := range a {
			sum += math.Pow(math.Abs(a[i]-b[i]), p)
		}
		return math.Pow(sum, 1/p)
	}
}

// Metric represents a built-in distance metric.
type Metric int

const (
	MetricSquaredEuclidean Metric = iota
	MetricEuclidean
	MetricManhattan
	MetricChebyshev
	MetricCanberra
)

func (m Metric) String() string {
	switch m {
	case MetricSquaredEuclidean:
		return "squared-euclidean"
	case MetricEuclidean:
		return "euclidean"
	case MetricManhattan:
		return "manhattan"
	case MetricChebyshev:
		return "chebyshev"
	case MetricCanberra:
		return "canberra"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricSquaredEuclidean:
		return SquaredEuclidean, nil
	case MetricEuclidean:
		return Euclidean, nil
	case MetricManhattan:
		return Manhattan, nil
	case MetricChebyshev:
		return Chebyshev, nil
	case MetricCanberra:
		return Canberra, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
