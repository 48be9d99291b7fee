// Package persistence stores and restores clustering snapshots.
//
// A snapshot records the clustering result plus the parameters that
// produced it. The on-disk format is self-describing: a small header
// carries the codec name, compression algorithm, and a CRC32 checksum
// of the compressed payload, so snapshots written with any codec or
// compression setting remain loadable.
package persistence
