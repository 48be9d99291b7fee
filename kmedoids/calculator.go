package kmedoids

import (
	"fmt"

	"github.com/hupe1980/clustergo/dataset"
	"github.com/hupe1980/clustergo/distance"
)

// distanceCalculator yields the pairwise distance between two dataset
// items by index, independent of the physical representation. It is
// constructed once per Process call; everything above it is agnostic
// to the dataset kind.
type distanceCalculator func(i, j int) float64

// newDistanceCalculator selects the calculator backend from the
// dataset kind: direct metric evaluation over raw points, or O(1)
// lookup into the precomputed matrix.
func newDistanceCalculator(ds *dataset.Dataset, fn distance.Func) (distanceCalculator, error) {
	switch ds.Kind() {
	case dataset.KindPoints:
		if fn == nil {
			fn = distance.SquaredEuclidean
		}
		return func(i, j int) float64 {
			return fn(ds.Point(i), ds.Point(j))
		}, nil
	case dataset.KindDistanceMatrix:
		return ds.At, nil
	default:
		return nil, fmt.Errorf("unsupported dataset kind: %v", ds.Kind())
	}
}
