// SPDX-License-Identifier: MIT
// Package sparse_test contains shared test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for the store and kernel tests.
//   - Keep all matrices well-formed so invariant checks never interfere.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/stretchr/testify/require"
)

// mustNew allocates an r×c sparse matrix or aborts the test.
func mustNew(t testing.TB, r, c int) *sparse.Matrix {
	t.Helper()
	m, err := sparse.New(r, c)
	require.NoError(t, err)

	return m
}

// mustSet writes one entry or aborts the test.
func mustSet(t testing.TB, m *sparse.Matrix, row, col int, v int64) {
	t.Helper()
	require.NoError(t, m.Set(row, col, v))
}

// buildFrom fills a fresh r×c matrix from (row, col, value) triples.
func buildFrom(t testing.TB, r, c int, triples [][3]int64) *sparse.Matrix {
	t.Helper()
	m := mustNew(t, r, c)
	for _, e := range triples {
		mustSet(t, m, int(e[0]), int(e[1]), e[2])
	}

	return m
}

// fillRand scatters roughly n non-zero entries with a deterministic seed.
// Values are drawn from [-9, 9] excluding 0 so sparsity stays meaningful.
func fillRand(t testing.TB, m *sparse.Matrix, n int, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		v := int64(rng.Intn(18)) - 9
		if v == 0 {
			v = 1
		}
		mustSet(t, m, rng.Intn(m.Rows()), rng.Intn(m.Cols()), v)
	}
}

// requireEqualDense asserts that a sparse matrix and a dense matrix agree on
// every cell, comparing through the public accessors only.
func requireEqualDense(t testing.TB, m *sparse.Matrix, d *sparse.Dense) {
	t.Helper()
	require.Equal(t, m.Rows(), d.Rows())
	require.Equal(t, m.Cols(), d.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			sv, err := m.Get(i, j)
			require.NoError(t, err)
			dv, err := d.At(i, j)
			require.NoError(t, err)
			require.Equal(t, dv, sv, "cell (%d,%d)", i, j)
		}
	}
}
