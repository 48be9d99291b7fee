package dataset

import (
	"errors"
	"fmt"
)

// ErrEmptyDataset is returned when a dataset is constructed with no items.
var ErrEmptyDataset = errors.New("dataset must not be empty")

// ErrDimensionMismatch indicates a non-square distance matrix or a
// matrix file whose size disagrees with its header.
type ErrDimensionMismatch struct {
	Rows int
	Cols int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: %d rows but %d columns", e.Rows, e.Cols)
}

// ErrPointDimension indicates a point whose dimension disagrees with
// the rest of the dataset.
type ErrPointDimension struct {
	Index    int
	Expected int
	Actual   int
}

func (e *ErrPointDimension) Error() string {
	return fmt.Sprintf("point %d: expected dimension %d, got %d", e.Index, e.Expected, e.Actual)
}

// ErrInvalidMatrix indicates a distance matrix entry that violates the
// contract (negative, asymmetric or non-zero diagonal).
type ErrInvalidMatrix struct {
	Row    int
	Col    int
	Reason string
}

func (e *ErrInvalidMatrix) Error() string {
	return fmt.Sprintf("invalid distance matrix at (%d,%d): %s", e.Row, e.Col, e.Reason)
}
