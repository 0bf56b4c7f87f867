// Package sparse implements a dictionary-of-keys store for integer matrices
// with synchronized row and column indices.
//
// The sparse package provides:
//
//   - Matrix: associative storage of non-zero int64 entries keyed by (row, col),
//     with O(1) Get/Set and per-row / per-column index views.
//   - Arithmetic kernels: Add/Sub with a density-driven strategy switch,
//     Mul via dot-product key-set intersection, and Transpose.
//   - Dense: a row-major int64 matrix used as conversion target and as the
//     brute-force reference in tests.
//   - A canonical text codec (rows=/cols= header plus "(r, c, v)" lines,
//     sorted by row then column) with file-level helpers.
//
// Matrices never store an explicit zero: Set(r, c, 0) deletes, and arithmetic
// results drop coordinates whose combined value is zero. The non-zero set is
// the single source of truth; both indices are maintained inside the same
// mutation path, so the three views cannot drift apart.
//
// Matrices are safe for concurrent readers; Set requires external
// synchronization against any other access to the same instance.
//
// See the examples in this package for usage patterns.
package sparse
