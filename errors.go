package clustergo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/clustergo/dataset"
	"github.com/hupe1980/clustergo/kmedoids"
)

var (
	// ErrInvalidConfiguration is returned when the clustering inputs
	// are unusable: empty datasets, empty or duplicate medoid sets,
	// medoid indices outside the dataset bounds.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrDimensionMismatch is returned when dataset rows or points
	// disagree on dimensionality.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrDegenerateCluster is returned when a cluster becomes empty
	// during assignment.
	ErrDegenerateCluster = errors.New("degenerate cluster")

	// ErrNotConverged is returned when the iteration cap is reached
	// before medoid movement drops to the tolerance.
	ErrNotConverged = errors.New("not converged")
)

// translateError unifies subpackage errors under the root sentinels.
// The underlying error remains reachable via errors.As.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Configuration problems.
	if errors.Is(err, dataset.ErrEmptyDataset) ||
		errors.Is(err, kmedoids.ErrNilDataset) ||
		errors.Is(err, kmedoids.ErrNoMedoids) {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	var moor *kmedoids.ErrMedoidOutOfRange
	if errors.As(err, &moor) {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	var dup *kmedoids.ErrDuplicateMedoid
	if errors.As(err, &dup) {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	var it *kmedoids.ErrInvalidTolerance
	if errors.As(err, &it) {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	var im *dataset.ErrInvalidMatrix
	if errors.As(err, &im) {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	// Dimension normalization.
	var dm *dataset.ErrDimensionMismatch
	if errors.As(err, &dm) {
		return fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
	}
	var pd *dataset.ErrPointDimension
	if errors.As(err, &pd) {
		return fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
	}

	// Runtime outcomes.
	var dc *kmedoids.ErrDegenerateCluster
	if errors.As(err, &dc) {
		return fmt.Errorf("%w: %w", ErrDegenerateCluster, err)
	}
	var nc *kmedoids.ErrNotConverged
	if errors.As(err, &nc) {
		return fmt.Errorf("%w: %w", ErrNotConverged, err)
	}

	return err
}
