// SPDX-License-Identifier: MIT

// Package sparse - element-wise kernels (Add/Sub).
//
// Purpose:
//   - Combine two shape-equal matrices entry by entry without ever touching
//     zero cells.
//   - Offer two result-identical strategies and resolve StrategyAuto from the
//     combined operand density (DefaultFoldDensityThreshold).
//
// Behavior highlights:
//   - A fresh Matrix is allocated; operands are read-only for the whole call.
//   - Coordinates whose combined value is 0 are never stored — the store never holds explicit zeros.
//   - Strategy choice is observable only through WithStats, never in results.
//
// Complexity quicksheet:
//   - union: O(na + nb) expected map work over the coordinate union.
//   - fold:  O(na) seed + O(nb) fold, cheapest when operands barely overlap.

package sparse

import (
	"fmt"
	"time"
)

// Operation name constants for unified error wrapping and stats tagging.
const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
)

// Add returns m + other as a new Matrix of the same shape.
// Returns ErrNilMatrix for a nil operand and ErrShapeMismatch unless both
// shapes are pairwise equal.
func (m *Matrix) Add(other *Matrix, opts ...Option) (*Matrix, error) {
	return m.combine(other, +1, opAdd, opts)
}

// Sub returns m - other as a new Matrix of the same shape.
// Returns ErrNilMatrix for a nil operand and ErrShapeMismatch unless both
// shapes are pairwise equal.
func (m *Matrix) Sub(other *Matrix, opts ...Option) (*Matrix, error) {
	return m.combine(other, -1, opSub, opts)
}

// combine computes out = m + sign*other for sign ∈ {+1, -1}.
// Internal helper shared by Add and Sub: validation, strategy resolution,
// kernel dispatch and stats capture live here exactly once.
func (m *Matrix) combine(other *Matrix, sign int64, opTag string, opts []Option) (*Matrix, error) {
	if err := validatePair(m, other, validateSameShape); err != nil {
		return nil, fmt.Errorf("%s: %w", opTag, err)
	}
	o := gatherOptions(opts...)

	strategy := o.strategy
	if strategy == StrategyAuto {
		strategy = resolveStrategy(m, other, o.foldThreshold)
	}

	start := time.Now()
	out, _ := New(m.rows, m.cols) // shapes were validated at construction
	switch strategy {
	case StrategyFold:
		m.foldInto(out, other, sign)
	default:
		m.unionInto(out, other, sign)
	}

	if o.stats != nil {
		*o.stats = Stats{Op: opTag, Strategy: strategy, Duration: time.Since(start)}
	}

	return out, nil
}

// resolveStrategy maps StrategyAuto onto a concrete kernel: fold-in while the
// combined non-zero count stays below threshold×(rows*cols), union otherwise.
// Mirrors the density heuristic the storage scheme is tuned for.
func resolveStrategy(a, b *Matrix, threshold float64) Strategy {
	combined := float64(len(a.elems) + len(b.elems))
	if combined < threshold*float64(a.rows)*float64(a.cols) {
		return StrategyFold
	}

	return StrategyUnion
}

// unionInto walks the union of both coordinate sets and writes each combined
// value exactly once. Coordinates present in both operands are visited once,
// from the left operand's pass.
func (m *Matrix) unionInto(out, other *Matrix, sign int64) {
	for key, v := range m.elems {
		sum := v + sign*other.elems[key]
		if sum != 0 {
			out.insert(key.Row, key.Col, sum)
		}
	}
	for key, v := range other.elems {
		if _, seen := m.elems[key]; seen {
			continue // already combined in the first pass
		}
		if sv := sign * v; sv != 0 {
			out.insert(key.Row, key.Col, sv)
		}
	}
}

// foldInto seeds out with the left operand, then folds the right operand in
// additively, deleting any coordinate whose running value reaches zero.
func (m *Matrix) foldInto(out, other *Matrix, sign int64) {
	for key, v := range m.elems {
		out.insert(key.Row, key.Col, v)
	}
	for key, v := range other.elems {
		sum := out.elems[key] + sign*v
		if sum == 0 {
			out.remove(key.Row, key.Col)
			continue
		}
		out.insert(key.Row, key.Col, sum)
	}
}
