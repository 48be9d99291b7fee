package kmedoids

import (
	"context"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/clustergo/cluster"
	"github.com/hupe1980/clustergo/dataset"
	"github.com/hupe1980/clustergo/distance"
)

const (
	// DefaultTolerance stops iteration once the maximum per-cluster
	// medoid movement falls to this value or below.
	DefaultTolerance = 0.01

	// DefaultMaxIterations bounds worst-case non-convergent oscillation.
	DefaultMaxIterations = 200

	// Assignment fans out to goroutines only above this dataset size;
	// below it the goroutine overhead dominates.
	parallelThreshold = 2048
)

// Options configures a KMedoids clusterer.
type Options struct {
	// Tolerance is the stop condition: iteration ends when the maximum
	// distance between a cluster's previous and new medoid is at most
	// Tolerance. Stability is measured by distance, not index identity:
	// a medoid may swap to a coincident point and still count as
	// converged.
	Tolerance float64

	// MaxIterations caps the optimization loop. Process returns
	// ErrNotConverged when the cap is reached first. Values <= 0 fall
	// back to DefaultMaxIterations.
	MaxIterations int

	// DistanceFunc is the metric used in points mode. Defaults to
	// distance.SquaredEuclidean. Ignored for distance-matrix datasets.
	DistanceFunc distance.Func

	// Parallelism bounds the goroutines used for assignment and medoid
	// recomputation. Values <= 0 fall back to GOMAXPROCS; 1 keeps the
	// run single-threaded.
	Parallelism int
}

// KMedoids implements K-Medoids clustering, also known as PAM
// (Partitioning Around Medoids). Unlike centroid-based clustering, a
// medoid is always an actual data point, which keeps the algorithm
// usable with arbitrary dissimilarities and robust to outliers.
//
// A KMedoids value is immutable after New and safe for concurrent
// Process calls; all per-run state lives on the call stack.
type KMedoids struct {
	initial []int
	opts    Options
}

// New creates a K-Medoids clusterer around the given initial medoids.
// Seeding is the caller's concern (see the initializer package); the
// number of initial medoids determines K.
func New(initialMedoids []int, optFns ...func(o *Options)) *KMedoids {
	opts := Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		DistanceFunc:  distance.SquaredEuclidean,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}
	if opts.Parallelism <= 0 {
		opts.Parallelism = runtime.GOMAXPROCS(0)
	}

	return &KMedoids{initial: slices.Clone(initialMedoids), opts: opts}
}

// Process runs the alternating optimization until the medoid movement
// drops to the tolerance, then performs a final assignment pass so the
// reported membership reflects exactly the returned medoids.
//
// The context is checked once per iteration; cancellation aborts the
// run without a partial result.
func (km *KMedoids) Process(ctx context.Context, ds *dataset.Dataset) (*cluster.Result, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}
	if km.opts.Tolerance < 0 {
		return nil, &ErrInvalidTolerance{Tolerance: km.opts.Tolerance}
	}

	n := ds.Len()
	if err := validateMedoids(km.initial, n); err != nil {
		return nil, err
	}

	calc, err := newDistanceCalculator(ds, km.opts.DistanceFunc)
	if err != nil {
		return nil, err
	}

	medoids := slices.Clone(km.initial)

	iterations := 0
	converged := false
	for iterations < km.opts.MaxIterations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		clusters, _, err := km.updateClusters(ctx, medoids, n, calc)
		if err != nil {
			return nil, err
		}

		next, err := km.calculateMedoids(ctx, clusters, calc)
		if err != nil {
			return nil, err
		}

		change := calculateChanges(medoids, next, calc)
		// Replace-then-check: the candidate is adopted unconditionally.
		medoids = next
		iterations++

		if change <= km.opts.Tolerance {
			converged = true
			break
		}
	}

	if !converged {
		return nil, &ErrNotConverged{Iterations: iterations, Tolerance: km.opts.Tolerance}
	}

	clusters, labels, err := km.updateClusters(ctx, medoids, n, calc)
	if err != nil {
		return nil, err
	}

	return &cluster.Result{
		Medoids:    medoids,
		Clusters:   clusters,
		Labels:     labels,
		Iterations: iterations,
	}, nil
}

// Cost returns the total intra-cluster distance of a result: the sum
// over all items of the distance to their cluster's medoid. Useful for
// comparing runs with different seeds.
func Cost(ds *dataset.Dataset, r *cluster.Result, fn distance.Func) (float64, error) {
	calc, err := newDistanceCalculator(ds, fn)
	if err != nil {
		return 0, err
	}

	var sum float64
	for k, c := range r.Clusters {
		for _, i := range c {
			sum += calc(i, r.Medoids[k])
		}
	}
	return sum, nil
}

func validateMedoids(medoids []int, n int) error {
	if len(medoids) == 0 {
		return ErrNoMedoids
	}

	seen := make(map[int]struct{}, len(medoids))
	for _, m := range medoids {
		if m < 0 || m >= n {
			return &ErrMedoidOutOfRange{Index: m, Size: n}
		}
		if _, ok := seen[m]; ok {
			return &ErrDuplicateMedoid{Index: m}
		}
		seen[m] = struct{}{}
	}
	return nil
}

// updateClusters partitions all item indices by nearest medoid. The
// previous partition is fully replaced. Ties go to the lowest medoid
// position, which keeps the assignment deterministic; a medoid always
// lands in its own cluster since its self-distance of zero dominates.
func (km *KMedoids) updateClusters(ctx context.Context, medoids []int, n int, calc distanceCalculator) ([]cluster.Cluster, []int, error) {
	if len(medoids) == 0 {
		return nil, nil, ErrNoMedoids
	}

	labels := make([]int, n)

	if km.opts.Parallelism <= 1 || n < parallelThreshold {
		for i := 0; i < n; i++ {
			labels[i] = nearestMedoid(i, medoids, calc)
		}
	} else {
		// Per-item assignments are independent; each goroutine fills a
		// disjoint label range over read-only shared state.
		g, gctx := errgroup.WithContext(ctx)
		chunk := (n + km.opts.Parallelism - 1) / km.opts.Parallelism
		for lo := 0; lo < n; lo += chunk {
			lo := lo
			hi := min(lo+chunk, n)
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				for i := lo; i < hi; i++ {
					labels[i] = nearestMedoid(i, medoids, calc)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, nil, err
		}
	}

	clusters := make([]cluster.Cluster, len(medoids))
	for i, k := range labels {
		clusters[k] = append(clusters[k], i)
	}
	for k := range clusters {
		if len(clusters[k]) == 0 {
			return nil, nil, &ErrDegenerateCluster{Cluster: k}
		}
	}
	return clusters, labels, nil
}

func nearestMedoid(i int, medoids []int, calc distanceCalculator) int {
	best := 0
	bestDist := calc(i, medoids[0])
	for k := 1; k < len(medoids); k++ {
		// Strict < keeps the first-encountered minimum on exact ties.
		if d := calc(i, medoids[k]); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}

// calculateMedoids recomputes the medoid of every cluster. Clusters
// are independent, so they are processed concurrently; each goroutine
// writes only its own output slot.
func (km *KMedoids) calculateMedoids(ctx context.Context, clusters []cluster.Cluster, calc distanceCalculator) ([]int, error) {
	medoids := make([]int, len(clusters))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(km.opts.Parallelism)
	for k := range clusters {
		k := k
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m, err := clusterMedoid(k, clusters[k], calc)
			if err != nil {
				return err
			}
			medoids[k] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return medoids, nil
}

// clusterMedoid returns the member of c minimizing the total distance
// to all other members. A singleton cluster trivially keeps its only
// member. Exact ties go to the lowest index (members are ascending).
func clusterMedoid(k int, c cluster.Cluster, calc distanceCalculator) (int, error) {
	if len(c) == 0 {
		return 0, &ErrDegenerateCluster{Cluster: k}
	}

	best := c[0]
	bestSum := medoidCandidateCost(c[0], c, calc)
	for _, candidate := range c[1:] {
		if sum := medoidCandidateCost(candidate, c, calc); sum < bestSum {
			best, bestSum = candidate, sum
		}
	}
	return best, nil
}

func medoidCandidateCost(candidate int, c cluster.Cluster, calc distanceCalculator) float64 {
	var sum float64
	for _, m := range c {
		if m == candidate {
			continue
		}
		sum += calc(candidate, m)
	}
	return sum
}

// calculateChanges returns the maximum per-position distance between
// the previous and the candidate medoids. The maximum (not the sum)
// makes convergence require every cluster's medoid to have stabilized.
func calculateChanges(prev, next []int, calc distanceCalculator) float64 {
	var maxChange float64
	for k := range prev {
		if d := calc(prev[k], next[k]); d > maxChange {
			maxChange = d
		}
	}
	return maxChange
}
