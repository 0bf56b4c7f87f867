// SPDX-License-Identifier: MIT
// Package sparse — public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for common tasks.
//   - Avoid any logic duplication — each facade delegates to the canonical
//     method implementation.
//
// Determinism & Policy:
//   - Facades never change strategy resolution or loop behavior of the
//     underlying kernels; options pass through unchanged.
//   - Validation happens in the kernels; facades only forward.

package sparse

// Sum returns a + b. Thin alias of (*Matrix).Add with a symmetric name.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func Sum(a, b *Matrix, opts ...Option) (*Matrix, error) {
	if err := validateNotNil(a); err != nil {
		return nil, err
	}

	return a.Add(b, opts...)
}

// Diff returns a - b. Thin alias of (*Matrix).Sub with a symmetric name.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func Diff(a, b *Matrix, opts ...Option) (*Matrix, error) {
	if err := validateNotNil(a); err != nil {
		return nil, err
	}

	return a.Sub(b, opts...)
}

// Product returns a × b. Thin alias of (*Matrix).Mul.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Product(a, b *Matrix, opts ...Option) (*Matrix, error) {
	if err := validateNotNil(a); err != nil {
		return nil, err
	}

	return a.Mul(b, opts...)
}

// TransposeOf returns the transpose of m.
// Errors: ErrNilMatrix only; transposition itself cannot fail.
func TransposeOf(m *Matrix) (*Matrix, error) {
	if err := validateNotNil(m); err != nil {
		return nil, err
	}

	return m.Transpose(), nil
}

// NewIdentity returns I_n as a sparse Matrix (ones on the diagonal).
// Deterministic: fixed i-loop, one insert per diagonal cell.
// Complexity: O(n). Errors: ErrInvalidDimensions when n <= 0.
func NewIdentity(n int) (*Matrix, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.insert(i, i, 1)
	}

	return m, nil
}
