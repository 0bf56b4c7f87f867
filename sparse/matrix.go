// SPDX-License-Identifier: MIT

// Package sparse - dictionary-of-keys storage & safe accessors.
//
// Purpose:
//   - Store only non-zero entries, keyed by Coord, in a single canonical map.
//   - Maintain row-oriented and column-oriented index views inside one
//     mutation path (insert/remove), so the three views cannot diverge.
//   - Guarantee safety at the public surface: Get/Set return errors instead
//     of panicking.
//   - Keep snapshots deterministic: Entries/Row/Col/String sort before
//     returning; no map iteration order ever leaks to callers.
//
// Complexity quicksheet:
//   - New: O(1); Get/Set: O(1) amortized; NonZeroCount/Density: O(1);
//     Entries: O(n log n); Clone: O(n); Transpose: O(n).

package sparse

import (
	"fmt"
	"sort"
	"strings"
)

// Matrix is a fixed-shape sparse integer matrix. The zero value is not
// usable; construct instances with New, Decode or ReadFile.
//
// elems is the non-zero set and the single source of truth. rowIndex and
// colIndex are derived views restricted to rows/columns that currently hold
// at least one entry; they are updated only by insert and remove.
type Matrix struct {
	rows, cols int                   // shape, fixed for the lifetime of the instance
	elems      map[Coord]int64       // canonical non-zero set
	rowIndex   map[int]map[int]int64 // row -> (col -> value), no empty inner maps
	colIndex   map[int]map[int]int64 // col -> (row -> value), no empty inner maps
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New creates an empty rows×cols sparse matrix.
// Returns ErrInvalidDimensions unless rows > 0 and cols > 0.
// Complexity: O(1); storage grows with the number of non-zero entries only.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Matrix{
		rows:     rows,
		cols:     cols,
		elems:    make(map[Coord]int64),
		rowIndex: make(map[int]map[int]int64),
		colIndex: make(map[int]map[int]int64),
	}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// NonZeroCount returns the number of stored entries. Complexity: O(1).
func (m *Matrix) NonZeroCount() int { return len(m.elems) }

// Density returns NonZeroCount divided by the total cell count, in [0, 1].
// Defined as 0 for a zero cell count so the ratio never divides by zero.
// Complexity: O(1).
func (m *Matrix) Density() float64 {
	total := m.rows * m.cols
	if total == 0 {
		return 0
	}

	return float64(len(m.elems)) / float64(total)
}

// inBounds reports whether (row, col) lies inside the declared shape.
func (m *Matrix) inBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// boundsErrorf attaches the method tag and coordinates to ErrOutOfBounds.
// Stable, human-friendly message; preserves the sentinel via %w.
func (m *Matrix) boundsErrorf(method string, row, col int) error {
	return fmt.Errorf("Matrix.%s(%d,%d): shape %d×%d: %w",
		method, row, col, m.rows, m.cols, ErrOutOfBounds)
}

// Get returns the value at (row, col), or 0 when no entry is stored there.
// Returns ErrOutOfBounds when the coordinate lies outside the shape.
// No side effects. Complexity: O(1).
func (m *Matrix) Get(row, col int) (int64, error) {
	if !m.inBounds(row, col) {
		return 0, m.boundsErrorf("Get", row, col)
	}

	return m.elems[Coord{row, col}], nil
}

// Set writes value at (row, col). A zero value deletes any stored entry
// (and is a no-op when none exists); a non-zero value inserts or overwrites.
// All three views are updated atomically with respect to each other.
// Returns ErrOutOfBounds when the coordinate lies outside the shape.
// Complexity: O(1) amortized.
func (m *Matrix) Set(row, col int, value int64) error {
	if !m.inBounds(row, col) {
		return m.boundsErrorf("Set", row, col)
	}
	if value == 0 {
		m.remove(row, col)
		return nil
	}
	m.insert(row, col, value)

	return nil
}

// insert upserts (row, col) → value into the non-zero set and both indices.
// The only write path for non-zero values; callers must have checked bounds
// and value != 0.
func (m *Matrix) insert(row, col int, value int64) {
	m.elems[Coord{row, col}] = value

	r, ok := m.rowIndex[row]
	if !ok {
		r = make(map[int]int64)
		m.rowIndex[row] = r
	}
	r[col] = value

	c, ok := m.colIndex[col]
	if !ok {
		c = make(map[int]int64)
		m.colIndex[col] = c
	}
	c[row] = value
}

// remove deletes (row, col) from the non-zero set and both indices, dropping
// inner index maps that become empty. The only delete path; a no-op when the
// entry does not exist.
func (m *Matrix) remove(row, col int) {
	key := Coord{row, col}
	if _, ok := m.elems[key]; !ok {
		return
	}
	delete(m.elems, key)

	if r := m.rowIndex[row]; r != nil {
		delete(r, col)
		if len(r) == 0 {
			delete(m.rowIndex, row)
		}
	}
	if c := m.colIndex[col]; c != nil {
		delete(c, row)
		if len(c) == 0 {
			delete(m.colIndex, col)
		}
	}
}

// Entries returns every stored entry sorted by ascending row, then column.
// The slice and its elements are copies; mutating them leaves m untouched.
// Complexity: O(n log n).
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, 0, len(m.elems))
	for key, v := range m.elems {
		out = append(out, Entry{Row: key.Row, Col: key.Col, Val: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})

	return out
}

// Row returns the non-zero entries of row i sorted by ascending column.
// An empty slice means the row holds no entries; out-of-range rows yield
// ErrOutOfBounds. Complexity: O(k log k) for k entries in the row.
func (m *Matrix) Row(i int) ([]Entry, error) {
	if i < 0 || i >= m.rows {
		return nil, m.boundsErrorf("Row", i, 0)
	}
	line := m.rowIndex[i]
	out := make([]Entry, 0, len(line))
	for col, v := range line {
		out = append(out, Entry{Row: i, Col: col, Val: v})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Col < out[b].Col })

	return out, nil
}

// Col returns the non-zero entries of column j sorted by ascending row.
// An empty slice means the column holds no entries; out-of-range columns
// yield ErrOutOfBounds. Complexity: O(k log k) for k entries in the column.
func (m *Matrix) Col(j int) ([]Entry, error) {
	if j < 0 || j >= m.cols {
		return nil, m.boundsErrorf("Col", 0, j)
	}
	line := m.colIndex[j]
	out := make([]Entry, 0, len(line))
	for row, v := range line {
		out = append(out, Entry{Row: row, Col: j, Val: v})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Row < out[b].Row })

	return out, nil
}

// Clone returns a deep copy of m. The copy shares no storage with the
// original. Complexity: O(n).
func (m *Matrix) Clone() *Matrix {
	out, _ := New(m.rows, m.cols) // shape already validated at construction
	for key, v := range m.elems {
		out.insert(key.Row, key.Col, v)
	}

	return out
}

// Equal reports whether m and other have the same shape and the same
// non-zero set. A nil other is never equal. Complexity: O(n).
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	if len(m.elems) != len(other.elems) {
		return false
	}
	for key, v := range m.elems {
		if other.elems[key] != v {
			return false
		}
	}

	return true
}

// Transpose returns a new Matrix of shape cols×rows with every entry
// (r,c)→v mirrored to (c,r)→v. Operands are never mutated.
// Complexity: O(n).
func (m *Matrix) Transpose() *Matrix {
	out, _ := New(m.cols, m.rows) // swapped shape stays positive
	for key, v := range m.elems {
		out.insert(key.Col, key.Row, v)
	}

	return out
}

// String renders the canonical text encoding (see Encode): the dimension
// header followed by entries sorted by row, then column. Intended for
// debugging and log output; Decode accepts it unchanged.
func (m *Matrix) String() string {
	var sb strings.Builder
	_ = m.Encode(&sb) // strings.Builder never errors

	return sb.String()
}
