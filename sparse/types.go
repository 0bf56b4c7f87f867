// SPDX-License-Identifier: MIT

// Package sparse: domain types shared by the store, kernels and codec.
// This file intentionally contains ONLY domain-facing types (coordinates,
// entries, strategy tags, operation stats). Errors and options live in
// dedicated files (errors.go, options.go) per the package conventions.
package sparse

import "time"

// Coord addresses one cell of a matrix. Row and Col are zero-based and must
// satisfy 0 ≤ Row < Rows(), 0 ≤ Col < Cols() for the owning matrix.
// Using a comparable struct keeps the key compact and hash-friendly.
type Coord struct {
	Row int // zero-based row index
	Col int // zero-based column index
}

// Entry is one stored cell: a coordinate plus its non-zero value.
// Entries returned by snapshot methods are sorted by (Row, Col) and are
// copies — mutating them never touches the source matrix.
type Entry struct {
	Row int   // zero-based row index
	Col int   // zero-based column index
	Val int64 // stored value, never 0
}

// Strategy selects how Add/Sub combine two operands. The choice is a pure
// performance knob: every strategy produces identical results.
type Strategy uint8

const (
	// StrategyAuto picks fold-in when the combined non-zero count stays below
	// DefaultFoldDensityThreshold of the total cell count, union otherwise.
	StrategyAuto Strategy = iota
	// StrategyUnion iterates the union of both operands' coordinate sets and
	// computes each combined value exactly once.
	StrategyUnion
	// StrategyFold seeds the result with the left operand, then folds the
	// right operand in entry by entry, deleting coordinates that reach zero.
	StrategyFold
)

// String returns the canonical tag for a strategy ("auto", "union", "fold").
func (s Strategy) String() string {
	switch s {
	case StrategyUnion:
		return "union"
	case StrategyFold:
		return "fold"
	default:
		return "auto"
	}
}

// Stats describes one completed arithmetic operation. It is filled through
// the WithStats option; matrices themselves carry no diagnostic state, so
// concurrent readers never observe hidden mutation.
type Stats struct {
	Op       string        // operation tag: "Add", "Sub" or "Mul"
	Strategy Strategy      // strategy actually executed; Mul has a single kernel and reports StrategyUnion
	Duration time.Duration // wall-clock time spent inside the kernel
}
