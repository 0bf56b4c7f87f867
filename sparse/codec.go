// SPDX-License-Identifier: MIT

// Package sparse - canonical text codec.
//
// Wire format (one matrix per stream):
//
//	rows=<positive integer>
//	cols=<positive integer>
//	(<row>, <col>, <value>)
//	...
//
// Header lines are mandatory and ordered (rows first, then cols). Every
// further non-blank line is one entry triple; whitespace around each number
// is ignored; blank lines are ignored anywhere. A zero value in an entry is
// legal and simply not stored. Encode emits entries sorted by ascending row
// then column — a compatibility contract for round-trip and diff-based
// testing, not an implementation detail.
//
// Decode validates, in order: header presence, header parse-ability as
// positive integers, entry bracket/comma shape, the three integer fields,
// and coordinate bounds against the declared shape. Every failure carries
// its 1-based line number and wraps ErrMalformedInput.

package sparse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Literal fragments of the wire format.
const (
	headerRowsPrefix = "rows="
	headerColsPrefix = "cols="
	entryOpen        = "("
	entryClose       = ")"
	entrySep         = ","
	entryFieldCount  = 3
)

// decodeErrorf builds a MalformedInput error carrying the offending line.
func decodeErrorf(line int, format string, args ...any) error {
	return fmt.Errorf("Decode: line %d: %s: %w", line, fmt.Sprintf(format, args...), ErrMalformedInput)
}

// Encode writes the canonical text form of m to w: the dimension header
// followed by every entry sorted by (row, col). Output is deterministic
// across repeated calls. Returns the first writer error unchanged.
// Complexity: O(n log n) for the sort plus O(n) writes.
func (m *Matrix) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s%d\n%s%d\n", headerRowsPrefix, m.rows, headerColsPrefix, m.cols); err != nil {
		return err
	}
	for _, e := range m.Entries() {
		if _, err := fmt.Fprintf(bw, "(%d, %d, %d)\n", e.Row, e.Col, e.Val); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Decode reads one matrix in the canonical text form from r.
// Returns ErrMalformedInput (with line context) on any structural or numeric
// violation, including entry coordinates outside the declared shape.
// Complexity: O(lines).
func Decode(r io.Reader) (*Matrix, error) {
	sc := bufio.NewScanner(r)

	rows, err := decodeHeader(sc, headerRowsPrefix, 1)
	if err != nil {
		return nil, err
	}
	cols, err := decodeHeader(sc, headerColsPrefix, 2)
	if err != nil {
		return nil, err
	}

	// decodeHeader guarantees positive dimensions, so New cannot fail here.
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}

	line := 2
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue // blank lines are legal anywhere
		}
		row, col, val, perr := parseEntry(text, line)
		if perr != nil {
			return nil, perr
		}
		if !m.inBounds(row, col) {
			return nil, decodeErrorf(line, "coordinate (%d, %d) outside %d×%d", row, col, rows, cols)
		}
		if val != 0 {
			m.insert(row, col, val)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("Decode: read: %w", err)
	}

	return m, nil
}

// decodeHeader consumes the next non-blank line and parses it as one
// "<prefix><positive integer>" header. hint is the nominal header position
// used in error messages when the stream ends early.
func decodeHeader(sc *bufio.Scanner, prefix string, hint int) (int, error) {
	line := hint - 1
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if !strings.HasPrefix(text, prefix) {
			return 0, decodeErrorf(line, "expected %q header, got %q", prefix, text)
		}
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(text, prefix)))
		if err != nil {
			return 0, decodeErrorf(line, "header %q is not an integer", text)
		}
		if n <= 0 {
			return 0, decodeErrorf(line, "header %q must be positive", text)
		}

		return n, nil
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("Decode: read: %w", err)
	}

	return 0, decodeErrorf(line+1, "missing %q header", prefix)
}

// parseEntry splits one "(r, c, v)" line into its three integer fields.
func parseEntry(text string, line int) (row, col int, val int64, err error) {
	if !strings.HasPrefix(text, entryOpen) || !strings.HasSuffix(text, entryClose) {
		return 0, 0, 0, decodeErrorf(line, "entry %q must be wrapped in parentheses", text)
	}
	inner := text[len(entryOpen) : len(text)-len(entryClose)]
	fields := strings.Split(inner, entrySep)
	if len(fields) != entryFieldCount {
		return 0, 0, 0, decodeErrorf(line, "entry %q must have exactly %d fields", text, entryFieldCount)
	}

	nums := make([]int64, entryFieldCount)
	for i, f := range fields {
		n, perr := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if perr != nil {
			return 0, 0, 0, decodeErrorf(line, "entry %q field %d is not an integer", text, i+1)
		}
		nums[i] = n
	}

	return int(nums[0]), int(nums[1]), nums[2], nil
}

// ReadFile opens path and decodes one matrix from it.
// Open failures wrap ErrResourceUnavailable (with the OS cause); content
// failures propagate from Decode unchanged.
func ReadFile(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile(%q): %w: %v", path, ErrResourceUnavailable, err)
	}
	defer f.Close()

	return Decode(f)
}

// WriteFile encodes m into path, creating or truncating the file.
// Create and close failures wrap ErrResourceUnavailable; write failures
// propagate from Encode unchanged.
func (m *Matrix) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile(%q): %w: %v", path, ErrResourceUnavailable, err)
	}
	if err = m.Encode(f); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("WriteFile(%q): %w: %v", path, ErrResourceUnavailable, err)
	}

	return nil
}
