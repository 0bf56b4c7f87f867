// SPDX-License-Identifier: MIT

package sparse

// Test-Bridge (White-Box) for Store Invariants
//
// Purpose:
//   - Expose the internal three-view bookkeeping to sparse_test ONLY, so the
//     sparsity invariants can be asserted after arbitrary mutation sequences
//     without widening the prod API.
//
// Provided Surface:
//   - InvariantsHold: verifies that the non-zero set contains no zeros, that
//     both indices mirror it exactly, and that no empty inner index map
//     lingers after deletions.
//   - ExportedResolveStrategy: thin pass-through to resolveStrategy for
//     white-box verification of the StrategyAuto cutoff.
//
// Notes:
//   - The file name ends in _test.go, so none of this exists in production
//     builds; keep all white-box bridges co-located here.

// ExportedResolveStrategy exposes resolveStrategy for white-box tests.
var ExportedResolveStrategy = resolveStrategy

// InvariantsHold reports whether m currently satisfies the store invariants:
// no stored zero, exact three-view agreement, and no dangling empty index
// lines. Complexity: O(n).
func InvariantsHold(m *Matrix) bool {
	// The canonical set must hold no explicit zero.
	for _, v := range m.elems {
		if v == 0 {
			return false
		}
	}
	// Every canonical entry must be mirrored in both indices.
	for key, v := range m.elems {
		if m.rowIndex[key.Row][key.Col] != v {
			return false
		}
		if m.colIndex[key.Col][key.Row] != v {
			return false
		}
	}
	// Indices must hold nothing beyond the canonical set and must
	// keep no empty inner maps.
	rowTotal := 0
	for _, line := range m.rowIndex {
		if len(line) == 0 {
			return false
		}
		rowTotal += len(line)
	}
	colTotal := 0
	for _, line := range m.colIndex {
		if len(line) == 0 {
			return false
		}
		colTotal += len(line)
	}

	return rowTotal == len(m.elems) && colTotal == len(m.elems)
}
