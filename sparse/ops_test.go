// SPDX-License-Identifier: MIT
// Package sparse_test contains unit tests for the arithmetic kernels:
// Add/Sub strategy equivalence, the intersection-based product, and the
// algebraic properties the store guarantees.
package sparse_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/stretchr/testify/require"
)

// matrixA/matrixB are the reference 4×5 operands used across Add/Sub cases.
var (
	matrixA = [][3]int64{{0, 0, 5}, {0, 3, 8}, {1, 1, 3}, {1, 4, 12}, {2, 2, 7}, {3, 0, 4}, {3, 3, 9}}
	matrixB = [][3]int64{{0, 0, 2}, {0, 2, 6}, {1, 1, 5}, {2, 0, 8}, {2, 3, 4}, {3, 1, 1}, {3, 4, 7}}
)

// TestAddReferenceScenario pins the exact union of entries the 4×5 sum must
// contain — and nothing else.
func TestAddReferenceScenario(t *testing.T) {
	a := buildFrom(t, 4, 5, matrixA)
	b := buildFrom(t, 4, 5, matrixB)

	sum, err := a.Add(b)
	require.NoError(t, err)

	want := []sparse.Entry{
		{Row: 0, Col: 0, Val: 7}, {Row: 0, Col: 2, Val: 6}, {Row: 0, Col: 3, Val: 8},
		{Row: 1, Col: 1, Val: 8}, {Row: 1, Col: 4, Val: 12},
		{Row: 2, Col: 0, Val: 8}, {Row: 2, Col: 2, Val: 7}, {Row: 2, Col: 3, Val: 4},
		{Row: 3, Col: 0, Val: 4}, {Row: 3, Col: 1, Val: 1}, {Row: 3, Col: 3, Val: 9}, {Row: 3, Col: 4, Val: 7},
	}
	require.Equal(t, want, sum.Entries())      // exact entry set, sorted
	require.True(t, sparse.InvariantsHold(sum))
}

// TestAddCommutative asserts A+B == B+A on the reference operands and on a
// random pair.
func TestAddCommutative(t *testing.T) {
	a := buildFrom(t, 4, 5, matrixA)
	b := buildFrom(t, 4, 5, matrixB)
	ab, err := a.Add(b)
	require.NoError(t, err)
	ba, err := b.Add(a)
	require.NoError(t, err)
	require.True(t, ab.Equal(ba)) // commutativity

	x := mustNew(t, 12, 9)
	y := mustNew(t, 12, 9)
	fillRand(t, x, 30, 101)
	fillRand(t, y, 30, 202)
	xy, err := x.Add(y)
	require.NoError(t, err)
	yx, err := y.Add(x)
	require.NoError(t, err)
	require.True(t, xy.Equal(yx))
}

// TestSubSelfIsEmpty asserts A−A stores nothing at all.
func TestSubSelfIsEmpty(t *testing.T) {
	a := buildFrom(t, 4, 5, matrixA)
	diff, err := a.Sub(a)
	require.NoError(t, err)
	require.Equal(t, 0, diff.NonZeroCount())    // additive inverse
	require.True(t, sparse.InvariantsHold(diff)) // no dangling index lines either
}

// TestSubCancellationDropsEntries verifies partially cancelling operands:
// coordinates whose difference is zero must vanish from the result.
func TestSubCancellationDropsEntries(t *testing.T) {
	a := buildFrom(t, 2, 2, [][3]int64{{0, 0, 4}, {0, 1, 2}})
	b := buildFrom(t, 2, 2, [][3]int64{{0, 0, 4}, {1, 1, 3}})
	diff, err := a.Sub(b)
	require.NoError(t, err)
	want := []sparse.Entry{{Row: 0, Col: 1, Val: 2}, {Row: 1, Col: 1, Val: -3}}
	require.Equal(t, want, diff.Entries()) // (0,0) cancelled away
}

// TestAddStrategiesProduceIdenticalResults forces every strategy explicitly
// and compares against the automatic choice; results must be identical and
// the stats sink must report what actually ran.
func TestAddStrategiesProduceIdenticalResults(t *testing.T) {
	a := mustNew(t, 20, 20)
	b := mustNew(t, 20, 20)
	fillRand(t, a, 25, 42)
	fillRand(t, b, 25, 24)

	var st sparse.Stats
	union, err := a.Add(b, sparse.WithStrategy(sparse.StrategyUnion), sparse.WithStats(&st))
	require.NoError(t, err)
	require.Equal(t, "Add", st.Op)                      // op tag captured
	require.Equal(t, sparse.StrategyUnion, st.Strategy) // forced strategy honored

	fold, err := a.Add(b, sparse.WithStrategy(sparse.StrategyFold), sparse.WithStats(&st))
	require.NoError(t, err)
	require.Equal(t, sparse.StrategyFold, st.Strategy)

	auto, err := a.Add(b)
	require.NoError(t, err)

	require.True(t, union.Equal(fold)) // strategy is invisible in results
	require.True(t, union.Equal(auto))

	sub1, err := a.Sub(b, sparse.WithStrategy(sparse.StrategyUnion))
	require.NoError(t, err)
	sub2, err := a.Sub(b, sparse.WithStrategy(sparse.StrategyFold))
	require.NoError(t, err)
	require.True(t, sub1.Equal(sub2))
}

// TestResolveStrategyCutoff pins the StrategyAuto density cutoff white-box:
// below the threshold fold-in runs, at or above it union runs.
func TestResolveStrategyCutoff(t *testing.T) {
	a := mustNew(t, 100, 100) // 10000 cells; default cutoff is 100 combined entries
	b := mustNew(t, 100, 100)
	mustSet(t, a, 0, 0, 1) // one entry on each side: combined 2 << 100
	mustSet(t, b, 99, 99, 1)
	require.Equal(t, sparse.StrategyFold,
		sparse.ExportedResolveStrategy(a, b, sparse.DefaultFoldDensityThreshold))
	require.Equal(t, sparse.StrategyUnion,
		sparse.ExportedResolveStrategy(a, b, 0)) // zero threshold always unions
}

// TestAddShapeMismatch rejects operands whose shapes differ.
func TestAddShapeMismatch(t *testing.T) {
	a := mustNew(t, 2, 3)
	b := mustNew(t, 3, 2)
	_, err := a.Add(b)
	require.ErrorIs(t, err, sparse.ErrShapeMismatch)
	_, err = a.Sub(b)
	require.ErrorIs(t, err, sparse.ErrShapeMismatch)
	_, err = a.Add(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

// TestMulReferenceScenario pins the 3×4 · 4×2 product and cross-checks the
// intersection kernel against the brute-force dense reference.
func TestMulReferenceScenario(t *testing.T) {
	c := buildFrom(t, 3, 4, [][3]int64{{0, 0, 2}, {0, 2, 3}, {1, 1, 5}, {1, 3, 1}, {2, 0, 4}, {2, 2, 6}})
	d := buildFrom(t, 4, 2, [][3]int64{{0, 0, 1}, {0, 1, 2}, {1, 0, 3}, {2, 1, 4}, {3, 0, 5}})

	prod, err := c.Mul(d)
	require.NoError(t, err)
	require.Equal(t, 3, prod.Rows())
	require.Equal(t, 2, prod.Cols())

	want := []sparse.Entry{
		{Row: 0, Col: 0, Val: 2}, {Row: 0, Col: 1, Val: 16},
		{Row: 1, Col: 1, Val: 20},
		{Row: 2, Col: 0, Val: 8}, {Row: 2, Col: 1, Val: 32},
	}
	require.Equal(t, want, prod.Entries())

	// Brute-force dense reference over the full inner range.
	ref, err := c.ToDense().Mul(d.ToDense())
	require.NoError(t, err)
	requireEqualDense(t, prod, ref)
}

// TestMulAgainstDenseRandom cross-checks the sparse product on seeded random
// operands of awkward shapes.
func TestMulAgainstDenseRandom(t *testing.T) {
	a := mustNew(t, 7, 11)
	b := mustNew(t, 11, 5)
	fillRand(t, a, 18, 555)
	fillRand(t, b, 14, 777)

	prod, err := a.Mul(b)
	require.NoError(t, err)
	ref, err := a.ToDense().Mul(b.ToDense())
	require.NoError(t, err)
	requireEqualDense(t, prod, ref)
	require.True(t, sparse.InvariantsHold(prod))
}

// TestMulAssociative checks (A·B)·C == A·(B·C) on small integer matrices.
func TestMulAssociative(t *testing.T) {
	a := mustNew(t, 4, 6)
	b := mustNew(t, 6, 3)
	c := mustNew(t, 3, 5)
	fillRand(t, a, 8, 1)
	fillRand(t, b, 8, 2)
	fillRand(t, c, 8, 3)

	ab, err := a.Mul(b)
	require.NoError(t, err)
	left, err := ab.Mul(c)
	require.NoError(t, err)

	bc, err := b.Mul(c)
	require.NoError(t, err)
	right, err := a.Mul(bc)
	require.NoError(t, err)

	require.True(t, left.Equal(right))
}

// TestMulIdentity checks I·A == A == A·I through the NewIdentity facade.
func TestMulIdentity(t *testing.T) {
	a := buildFrom(t, 4, 5, matrixA)
	left, err := sparse.NewIdentity(4)
	require.NoError(t, err)
	right, err := sparse.NewIdentity(5)
	require.NoError(t, err)

	la, err := left.Mul(a)
	require.NoError(t, err)
	require.True(t, a.Equal(la))
	ar, err := a.Mul(right)
	require.NoError(t, err)
	require.True(t, a.Equal(ar))
}

// TestMulDimensionMismatch rejects incompatible inner dimensions.
func TestMulDimensionMismatch(t *testing.T) {
	a := mustNew(t, 3, 4)
	b := mustNew(t, 5, 2) // 4 != 5
	_, err := a.Mul(b)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
	_, err = a.Mul(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

// TestMulStatsCapture verifies the optional diagnostics on the product path.
func TestMulStatsCapture(t *testing.T) {
	a := buildFrom(t, 3, 4, [][3]int64{{0, 0, 2}})
	b := buildFrom(t, 4, 2, [][3]int64{{0, 1, 3}})
	var st sparse.Stats
	_, err := a.Mul(b, sparse.WithStats(&st))
	require.NoError(t, err)
	require.Equal(t, "Mul", st.Op)
	require.GreaterOrEqual(t, st.Duration, time.Duration(0)) // duration is set, never negative
}

// TestFacades exercises the package-level Sum/Diff/Product/TransposeOf
// delegates, including their nil-receiver guards.
func TestFacades(t *testing.T) {
	a := buildFrom(t, 4, 5, matrixA)
	b := buildFrom(t, 4, 5, matrixB)

	sum, err := sparse.Sum(a, b)
	require.NoError(t, err)
	direct, err := a.Add(b)
	require.NoError(t, err)
	require.True(t, sum.Equal(direct)) // facade delegates unchanged

	diff, err := sparse.Diff(a, b)
	require.NoError(t, err)
	back, err := diff.Add(b)
	require.NoError(t, err)
	require.True(t, a.Equal(back)) // (a-b)+b == a

	tr, err := sparse.TransposeOf(a)
	require.NoError(t, err)
	require.True(t, a.Equal(tr.Transpose()))

	_, err = sparse.Sum(nil, b)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = sparse.Product(nil, b)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = sparse.TransposeOf(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

// TestOperandsAreReadOnly asserts arithmetic never mutates its inputs.
func TestOperandsAreReadOnly(t *testing.T) {
	a := buildFrom(t, 4, 5, matrixA)
	b := buildFrom(t, 4, 5, matrixB)
	aCopy := a.Clone()
	bCopy := b.Clone()

	_, err := a.Add(b)
	require.NoError(t, err)
	_, err = a.Sub(b)
	require.NoError(t, err)
	_, err = a.Mul(b.Transpose())
	require.NoError(t, err)

	require.True(t, a.Equal(aCopy)) // left operand untouched
	require.True(t, b.Equal(bCopy)) // right operand untouched
}
