// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels and facades minimal by delegating nil/shape/bounds checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Every validator is O(1).
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).
//  - Bounds validation lives on the receiver (see Matrix.inBounds) because it
//    needs the instance shape; cross-operand checks live here.

package sparse

// validateNotNil ensures the matrix reference is constructed.
// Returns ErrNilMatrix if m is nil.
func validateNotNil(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateSameShape ensures a and b have pairwise equal dimensions, the
// precondition of Add/Sub. Assumes both are non-nil (caller must ensure).
// Returns ErrShapeMismatch on the first differing dimension.
func validateSameShape(a, b *Matrix) error {
	if a.rows != b.rows || a.cols != b.cols {
		return ErrShapeMismatch
	}

	return nil
}

// validateInnerDims ensures a.Cols() == b.Rows(), the precondition of Mul.
// Assumes both are non-nil (caller must ensure).
// Returns ErrDimensionMismatch when the inner dimensions disagree.
func validateInnerDims(a, b *Matrix) error {
	if a.cols != b.rows {
		return ErrDimensionMismatch
	}

	return nil
}

// validatePair runs the canonical binary-operand sequence: both operands
// non-nil, then the supplied shape check.
func validatePair(a, b *Matrix, shapeCheck func(a, b *Matrix) error) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if err := validateNotNil(b); err != nil {
		return err
	}

	return shapeCheck(a, b)
}
