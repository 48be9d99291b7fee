// Package cluster provides the shared result model produced by the
// clustering algorithms.
package cluster

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Cluster is the set of dataset indices assigned to one medoid. The
// indices are kept in ascending order by the algorithms.
type Cluster []int

// Result is the outcome of one clustering run. Clusters and Labels are
// two views of the same partition: Labels[i] is the position of the
// cluster that item i belongs to, and position k of Medoids holds the
// representative of Clusters[k]. A Result is created fresh per run.
type Result struct {
	Medoids    []int     `json:"medoids"`
	Clusters   []Cluster `json:"clusters"`
	Labels     []int     `json:"labels"`
	Iterations int       `json:"iterations"`
}

// K returns the number of clusters.
func (r *Result) K() int { return len(r.Clusters) }

// Bitmap returns cluster k as a roaring bitmap. Useful for set algebra
// against other index sets (filters, other partitions).
func (r *Result) Bitmap(k int) *roaring.Bitmap {
	b := roaring.New()
	for _, i := range r.Clusters[k] {
		b.Add(uint32(i))
	}
	return b
}

// Validate checks the partition invariant for a dataset of size n:
// clusters are pairwise disjoint and cover every index exactly once,
// labels agree with cluster membership, and every medoid is a member
// of its own cluster.
func (r *Result) Validate(n int) error {
	if len(r.Medoids) != len(r.Clusters) {
		return fmt.Errorf("cluster result: %d medoids for %d clusters", len(r.Medoids), len(r.Clusters))
	}
	if len(r.Labels) != n {
		return fmt.Errorf("cluster result: %d labels for %d items", len(r.Labels), n)
	}

	seen := roaring.New()
	for k, c := range r.Clusters {
		if len(c) == 0 {
			return fmt.Errorf("cluster result: cluster %d is empty", k)
		}

		b := r.Bitmap(k)
		if seen.Intersects(b) {
			return fmt.Errorf("cluster result: cluster %d overlaps a previous cluster", k)
		}
		seen.Or(b)

		for _, i := range c {
			if i < 0 || i >= n {
				return fmt.Errorf("cluster result: cluster %d holds out-of-range index %d", k, i)
			}
			if r.Labels[i] != k {
				return fmt.Errorf("cluster result: item %d labeled %d but member of cluster %d", i, r.Labels[i], k)
			}
		}

		if !b.Contains(uint32(r.Medoids[k])) {
			return fmt.Errorf("cluster result: medoid %d not a member of its cluster %d", r.Medoids[k], k)
		}
	}

	if seen.GetCardinality() != uint64(n) {
		return fmt.Errorf("cluster result: clusters cover %d of %d items", seen.GetCardinality(), n)
	}
	return nil
}
