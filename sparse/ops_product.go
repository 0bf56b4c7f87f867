// SPDX-License-Identifier: MIT

// Package sparse - matrix product kernel (Mul).
//
// Purpose:
//   - Multiply two conformable matrices touching only stored entries.
//   - Candidate output cells are pairs (non-empty row of a) × (non-empty
//     column of b); empty rows and columns contribute nothing and are
//     skipped wholesale.
//   - Each dot product intersects the row's and the column's key sets by
//     probing the larger map with the smaller one's keys, bounding the cell
//     cost by O(min(|row_i|, |col_j|)).
//
// Accumulation is int64; products and sums wrap per Go int64 semantics.
// The kernel never iterates the full inner range [0, a.Cols()) — that would
// degrade the whole store to dense-matrix cost.

package sparse

import (
	"fmt"
	"time"
)

// Mul returns m × other as a new Matrix of shape (m.Rows(), other.Cols()).
// Returns ErrNilMatrix for a nil operand and ErrDimensionMismatch unless
// m.Cols() == other.Rows(). Operands are read-only for the whole call.
// Complexity: Σ over candidate cells of min(|row_i|, |col_j|).
func (m *Matrix) Mul(other *Matrix, opts ...Option) (*Matrix, error) {
	if err := validatePair(m, other, validateInnerDims); err != nil {
		return nil, fmt.Errorf("%s: %w", opMul, err)
	}
	o := gatherOptions(opts...)

	start := time.Now()
	out, _ := New(m.rows, other.cols) // shapes were validated at construction
	for i, row := range m.rowIndex {
		for j, col := range other.colIndex {
			if dot := dotProduct(row, col); dot != 0 {
				out.insert(i, j, dot)
			}
		}
	}

	if o.stats != nil {
		*o.stats = Stats{Op: opMul, Strategy: StrategyUnion, Duration: time.Since(start)}
	}

	return out, nil
}

// dotProduct accumulates Σ_k row[k]*col[k] over the intersection of the two
// key sets, iterating the smaller map and probing the larger one.
func dotProduct(row map[int]int64, col map[int]int64) int64 {
	// Walk the smaller side so the cost is min(|row|, |col|) probes.
	if len(col) < len(row) {
		row, col = col, row
	}

	var acc int64
	for k, v1 := range row {
		if v2, ok := col[k]; ok {
			acc += v1 * v2
		}
	}

	return acc
}
