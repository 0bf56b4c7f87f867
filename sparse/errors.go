// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the sparse
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors in option constructors.

package sparse

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the detection site — callers still match via errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Constructors must validate shape before allocation.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be > 0")

	// ErrOutOfBounds indicates that a coordinate (row or column) lies outside
	// the declared shape. Public accessors (Get/Set) MUST return this, not panic.
	ErrOutOfBounds = errors.New("sparse: coordinate out of bounds")

	// ErrShapeMismatch indicates Add/Sub operands whose shapes are not
	// pairwise equal.
	ErrShapeMismatch = errors.New("sparse: operand shapes differ")

	// ErrDimensionMismatch indicates Mul operands with incompatible inner
	// dimensions (a.Cols() != b.Rows()).
	ErrDimensionMismatch = errors.New("sparse: incompatible inner dimensions")

	// ErrMalformedInput indicates a text decoding failure: missing or
	// unparsable header, wrong entry shape, non-integer field, or an entry
	// coordinate outside the declared dimensions.
	ErrMalformedInput = errors.New("sparse: malformed matrix text")

	// ErrResourceUnavailable indicates that the underlying file could not be
	// opened for reading (decode) or writing (encode). Propagated, not retried.
	ErrResourceUnavailable = errors.New("sparse: resource unavailable")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was
	// passed where a constructed matrix is required.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)
