// Package initializer provides medoid seeding strategies for the
// clustering algorithms. Seeding is separate from the optimization
// core: callers may also supply hand-picked initial medoids directly.
package initializer

import (
	"fmt"
	"math/rand"

	"github.com/hupe1980/clustergo/dataset"
	"github.com/hupe1980/clustergo/distance"
)

// ErrInvalidK indicates a requested cluster count outside [1, dataset size].
type ErrInvalidK struct {
	K    int
	Size int
}

func (e *ErrInvalidK) Error() string {
	return fmt.Sprintf("invalid k: %d for dataset of size %d", e.K, e.Size)
}

// Random picks k distinct item indices uniformly at random. Results
// are deterministic for a seeded rng; a nil rng falls back to the
// global source.
func Random(ds *dataset.Dataset, k int, rng *rand.Rand) ([]int, error) {
	n := ds.Len()
	if k <= 0 || k > n {
		return nil, &ErrInvalidK{K: k, Size: n}
	}

	var perm []int
	if rng != nil {
		perm = rng.Perm(n)
	} else {
		perm = rand.Perm(n)
	}
	return perm[:k], nil
}

// KMeansPP picks k distinct item indices with the k-means++ strategy:
// the first medoid is uniform, each further medoid is sampled with
// probability proportional to its distance to the nearest already
// chosen medoid. With the default squared Euclidean metric this is the
// classic D² weighting.
//
// In points mode fn is the metric (nil means squared Euclidean); for
// distance-matrix datasets fn is ignored.
func KMeansPP(ds *dataset.Dataset, k int, fn distance.Func, rng *rand.Rand) ([]int, error) {
	n := ds.Len()
	if k <= 0 || k > n {
		return nil, &ErrInvalidK{K: k, Size: n}
	}

	dist := pairwise(ds, fn)

	medoids := make([]int, 0, k)
	medoids = append(medoids, intn(rng, n))

	// nearest[i] tracks the distance from i to its closest chosen medoid.
	nearest := make([]float64, n)
	for i := range nearest {
		nearest[i] = dist(i, medoids[0])
	}

	chosen := make([]bool, n)
	chosen[medoids[0]] = true

	for len(medoids) < k {
		var total float64
		for i, d := range nearest {
			if !chosen[i] {
				total += d
			}
		}

		next := -1
		if total > 0 {
			target := float64n(rng, total)
			for i, d := range nearest {
				if chosen[i] {
					continue
				}
				target -= d
				if target <= 0 {
					next = i
					break
				}
			}
		}
		if next == -1 {
			// All remaining candidates coincide with a chosen medoid;
			// take the lowest unchosen index to stay deterministic.
			for i := range chosen {
				if !chosen[i] {
					next = i
					break
				}
			}
		}

		medoids = append(medoids, next)
		chosen[next] = true
		for i := range nearest {
			if d := dist(i, next); d < nearest[i] {
				nearest[i] = d
			}
		}
	}

	return medoids, nil
}

// pairwise yields index-pair distances for either dataset representation.
func pairwise(ds *dataset.Dataset, fn distance.Func) func(i, j int) float64 {
	if ds.Kind() == dataset.KindDistanceMatrix {
		return ds.At
	}
	if fn == nil {
		fn = distance.SquaredEuclidean
	}
	return func(i, j int) float64 {
		return fn(ds.Point(i), ds.Point(j))
	}
}

func intn(rng *rand.Rand, n int) int {
	if rng != nil {
		return rng.Intn(n)
	}
	return rand.Intn(n)
}

func float64n(rng *rand.Rand, max float64) float64 {
	if rng != nil {
		return rng.Float64() * max
	}
	return rand.Float64() * max
}
