// SPDX-License-Identifier: MIT

// Package sparse - dense bridge (row-major int64 buffer).
//
// Purpose:
//   - Provide a cache-friendly row-major companion type with the explicit
//     index formula i*cols + j, for interop with code that expects full
//     storage and as the brute-force reference in tests.
//   - Keep the public surface consistent with Matrix: At/Set return errors
//     instead of panicking, constructors validate shape before allocation.
//
// Dense deliberately has no sparsity bookkeeping: it is O(rows*cols) memory
// regardless of content. Convert with Matrix.ToDense / FromDense.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c);
//     Mul: O(r*k*c) — intentionally dense, used as the reference kernel.

package sparse

import (
	"fmt"
	"strconv"
	"strings"
)

// Dense is a concrete row-major int64 matrix.
// data is a flat buffer of length rows*cols with offset = i*cols + j.
type Dense struct {
	rows, cols int
	data       []int64 // contiguous row-major storage (len == rows*cols)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates a zero-filled rows×cols dense matrix.
// Returns ErrInvalidDimensions unless rows > 0 and cols > 0.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{rows: rows, cols: cols, data: make([]int64, rows*cols)}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (d *Dense) Rows() int { return d.rows }

// Cols returns the number of columns. Complexity: O(1).
func (d *Dense) Cols() int { return d.cols }

// At returns the value at (row, col).
// Returns ErrOutOfBounds when the coordinate lies outside the shape.
func (d *Dense) At(row, col int) (int64, error) {
	if row < 0 || row >= d.rows || col < 0 || col >= d.cols {
		return 0, fmt.Errorf("Dense.At(%d,%d): shape %d×%d: %w",
			row, col, d.rows, d.cols, ErrOutOfBounds)
	}

	return d.data[row*d.cols+col], nil
}

// Set writes value at (row, col). Zero is stored explicitly — Dense has no
// non-zero bookkeeping. Returns ErrOutOfBounds outside the shape.
func (d *Dense) Set(row, col int, value int64) error {
	if row < 0 || row >= d.rows || col < 0 || col >= d.cols {
		return fmt.Errorf("Dense.Set(%d,%d): shape %d×%d: %w",
			row, col, d.rows, d.cols, ErrOutOfBounds)
	}
	d.data[row*d.cols+col] = value

	return nil
}

// Clone returns a deep copy sharing no storage with the original.
// Complexity: O(r*c).
func (d *Dense) Clone() *Dense {
	out := &Dense{rows: d.rows, cols: d.cols, data: make([]int64, len(d.data))}
	copy(out.data, d.data)

	return out
}

// Mul returns d × other using the classic triple loop over the full inner
// range. Dense by design: this is the reference kernel the sparse product is
// validated against. Returns ErrDimensionMismatch unless d.Cols() equals
// other.Rows(). Complexity: O(r*k*c).
func (d *Dense) Mul(other *Dense) (*Dense, error) {
	if d.cols != other.rows {
		return nil, fmt.Errorf("Dense.Mul: %w", ErrDimensionMismatch)
	}
	out, _ := NewDense(d.rows, other.cols)
	for i := 0; i < d.rows; i++ {
		for k := 0; k < d.cols; k++ {
			v := d.data[i*d.cols+k]
			if v == 0 {
				continue
			}
			for j := 0; j < other.cols; j++ {
				out.data[i*other.cols+j] += v * other.data[k*other.cols+j]
			}
		}
	}

	return out, nil
}

// String renders rows as "[v, v, v]" lines, one per row.
func (d *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < d.rows; i++ {
		sb.WriteString("[")
		for j := 0; j < d.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatInt(d.data[i*d.cols+j], 10))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// ToDense materializes m as a Dense matrix of the same shape.
// Complexity: O(r*c) allocation + O(n) writes.
func (m *Matrix) ToDense() *Dense {
	out, _ := NewDense(m.rows, m.cols) // shapes were validated at construction
	for key, v := range m.elems {
		out.data[key.Row*m.cols+key.Col] = v
	}

	return out
}

// FromDense builds a sparse Matrix holding the non-zero cells of d.
// Zero cells are skipped, never stored. Complexity: O(r*c) scan.
func FromDense(d *Dense) (*Matrix, error) {
	if d == nil {
		return nil, fmt.Errorf("FromDense: %w", ErrNilMatrix)
	}
	out, err := New(d.rows, d.cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < d.rows; i++ {
		for j := 0; j < d.cols; j++ {
			if v := d.data[i*d.cols+j]; v != 0 {
				out.insert(i, j, v)
			}
		}
	}

	return out, nil
}
