// Package resource provides global resource governance for
// concurrent clustering runs: memory accounting for materialized
// distance matrices, worker slot limits, and IO throttling for
// snapshot persistence.
package resource
