// Package dataset provides the clustering input container.
//
// A Dataset is one of two physical representations, fixed at
// construction:
//
//   - KindPoints: an ordered sequence of fixed-dimension []float64
//     vectors, paired with a distance metric by the algorithm.
//   - KindDistanceMatrix: a square, symmetric, non-negative matrix of
//     precomputed pairwise distances with a zero diagonal.
//
// Algorithms address items only by index and obtain pairwise distances
// through a calculator selected from the Kind, so both representations
// behave identically above this package.
//
// Large precomputed matrices can be kept on disk in a compact binary
// format and memory-mapped:
//
//	_ = dataset.SaveMatrixFile("dist.cgdm", m)
//	ds, err := dataset.OpenMatrixFile("dist.cgdm")
//	defer ds.Close()
package dataset
