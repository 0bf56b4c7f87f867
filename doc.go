// Package sparsemat is an in-memory engine for integer matrices in which
// most entries are zero.
//
// 🚀 What is sparsemat?
//
//	A small, deterministic library that stores only non-zero entries and
//	keeps row- and column-oriented indices in lockstep, so that:
//		• Point access (Get/Set) is O(1)
//		• Row and column traversal touch only stored entries
//		• Multiplication intersects index key sets instead of scanning ranges
//		• Addition/subtraction pick a strategy from operand density
//		• A line-oriented text format round-trips matrices byte-for-byte
//
// ✨ Why choose sparsemat?
//
//   - Predictable – every operation has a documented cost and a sentinel error
//   - Safe by construction – indices are maintained by a single mutation path
//   - Pure Go – no cgo, no hidden deps
//   - Honest arithmetic – int64 values and int64 accumulation, nothing implicit
//
// Everything lives in one engine package plus a thin command:
//
//	sparse/        — Matrix, Dense, arithmetic kernels, text codec, facades
//	cmd/sparsemat/ — file-in/file-out command over the engine's public surface
//	examples/      — runnable demonstration programs
//
// Quick taste:
//
//	m, _ := sparse.New(4, 5)
//	_ = m.Set(0, 0, 5)
//	_ = m.Set(3, 3, 9)
//	t := m.Transpose() // 5×4, entries mirrored
//
// See sparse/doc.go for the full contract.
package sparsemat
