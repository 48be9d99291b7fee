package kmedoids

import (
	"errors"
	"fmt"
)

var (
	// ErrNilDataset is returned when Process is called without a dataset.
	ErrNilDataset = errors.New("dataset must not be nil")

	// ErrNoMedoids is returned when the initial medoid set is empty.
	ErrNoMedoids = errors.New("initial medoids must not be empty")
)

// ErrMedoidOutOfRange indicates an initial medoid index outside the
// dataset bounds.
type ErrMedoidOutOfRange struct {
	Index int
	Size  int
}

func (e *ErrMedoidOutOfRange) Error() string {
	return fmt.Sprintf("medoid index %d out of range [0,%d)", e.Index, e.Size)
}

// ErrDuplicateMedoid indicates the same index appearing twice in the
// initial medoid set.
type ErrDuplicateMedoid struct {
	Index int
}

func (e *ErrDuplicateMedoid) Error() string {
	return fmt.Sprintf("duplicate medoid index %d", e.Index)
}

// ErrInvalidTolerance indicates a negative convergence tolerance. A
// negative value can never be reached by a distance-valued change, so
// the run would always exhaust MaxIterations.
type ErrInvalidTolerance struct {
	Tolerance float64
}

func (e *ErrInvalidTolerance) Error() string {
	return fmt.Sprintf("tolerance must be non-negative, got %g", e.Tolerance)
}

// ErrDegenerateCluster indicates a cluster that became empty during
// assignment. This cannot happen with distinct medoids and the
// lowest-index tie-break; it surfaces unreachable input configurations
// instead of silently skipping the cluster.
type ErrDegenerateCluster struct {
	Cluster int
}

func (e *ErrDegenerateCluster) Error() string {
	return fmt.Sprintf("cluster %d became empty during assignment", e.Cluster)
}

// ErrNotConverged is returned when MaxIterations is reached before the
// medoid movement drops to the tolerance.
type ErrNotConverged struct {
	Iterations int
	Tolerance  float64
}

func (e *ErrNotConverged) Error() string {
	return fmt.Sprintf("did not converge within %d iterations (tolerance %g)", e.Iterations, e.Tolerance)
}
