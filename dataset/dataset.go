// Package dataset provides the input container for clustering: either
// an ordered sequence of fixed-dimension points or a precomputed
// pairwise distance matrix.
package dataset

import (
	"fmt"
	"io"
)

// Kind tags the physical representation of a Dataset. It is fixed at
// construction time; algorithms select their distance calculator from
// it once per run and never branch on it afterwards.
type Kind int

const (
	// KindPoints means the dataset holds raw coordinate vectors.
	KindPoints Kind = iota
	// KindDistanceMatrix means the dataset holds a square matrix of
	// pairwise distances.
	KindDistanceMatrix
)

func (k Kind) String() string {
	switch k {
	case KindPoints:
		return "points"
	case KindDistanceMatrix:
		return "distance-matrix"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// matrixView abstracts the storage of a distance matrix so that both
// in-memory and mmap-backed matrices serve the same Dataset API.
type matrixView interface {
	size() int
	at(i, j int) float64
}

type denseMatrix [][]float64

func (m denseMatrix) size() int           { return len(m) }
func (m denseMatrix) at(i, j int) float64 { return m[i][j] }

// Dataset is an immutable view over clustering input. Items are
// addressed by index; algorithms never copy raw coordinates.
type Dataset struct {
	kind   Kind
	dim    int
	points [][]float64
	matrix matrixView
	closer io.Closer
}

// FromPoints creates a points-mode dataset. All points must share the
// same dimension. The slice is retained, not copied; callers must not
// mutate it while the dataset is in use.
func FromPoints(points [][]float64) (*Dataset, error) {
	if len(points) == 0 {
		return nil, ErrEmptyDataset
	}

	dim := len(points[0])
	if dim == 0 {
		return nil, &ErrPointDimension{Index: 0, Expected: 1, Actual: 0}
	}
	for i, p := range points {
		if len(p) != dim {
			return nil, &ErrPointDimension{Index: i, Expected: dim, Actual: len(p)}
		}
	}

	return &Dataset{kind: KindPoints, dim: dim, points: points}, nil
}

// FromMatrix creates a distance-matrix dataset. The matrix must be
// square, symmetric, non-negative and zero on the diagonal; violations
// are reported before any clustering begins. Validation is O(n²).
func FromMatrix(m [][]float64) (*Dataset, error) {
	if len(m) == 0 {
		return nil, ErrEmptyDataset
	}
	if err := validateMatrix(m); err != nil {
		return nil, err
	}
	return &Dataset{kind: KindDistanceMatrix, matrix: denseMatrix(m)}, nil
}

func validateMatrix(m [][]float64) error {
	n := len(m)
	for _, row := range m {
		if len(row) != n {
			return &ErrDimensionMismatch{Rows: n, Cols: len(row)}
		}
	}
	for i := 0; i < n; i++ {
		if m[i][i] != 0 {
			return &ErrInvalidMatrix{Row: i, Col: i, Reason: "diagonal entry must be zero"}
		}
		for j := i + 1; j < n; j++ {
			if m[i][j] < 0 {
				return &ErrInvalidMatrix{Row: i, Col: j, Reason: "entry must be non-negative"}
			}
			if m[i][j] != m[j][i] {
				return &ErrInvalidMatrix{Row: i, Col: j, Reason: "matrix must be symmetric"}
			}
		}
	}
	return nil
}

// Kind returns the physical representation of the dataset.
func (d *Dataset) Kind() Kind { return d.kind }

// Len returns the number of items in the dataset.
func (d *Dataset) Len() int {
	if d.kind == KindPoints {
		return len(d.points)
	}
	return d.matrix.size()
}

// Dim returns the point dimension, or 0 for distance-matrix datasets.
func (d *Dataset) Dim() int { return d.dim }

// Point returns the raw coordinates of item i. Valid only in points
// mode; the returned slice must not be mutated.
func (d *Dataset) Point(i int) []float64 { return d.points[i] }

// At returns the precomputed distance between items i and j. Valid
// only in distance-matrix mode.
func (d *Dataset) At(i, j int) float64 { return d.matrix.at(i, j) }

// Close releases resources held by file-backed datasets. It is a no-op
// for in-memory datasets.
func (d *Dataset) Close() error {
	if d.closer == nil {
		return nil
	}
	err := d.closer.Close()
	d.closer = nil
	return err
}
