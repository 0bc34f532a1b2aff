// SPDX-License-Identifier: MIT
// Shared fixtures for the matrix_test package. All data is finite so the
// NaN/Inf policy never interferes with the property under test.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mafx/matrix"
)

// Tolerances for floating-point comparisons.
const (
	RtolTiny = 1e-12
	AtolTiny = 1e-9
)

// hide forwards every Matrix method but is not a *Dense, so kernels take
// their interface path. Results must match the *Dense path exactly.
type hide struct{ matrix.Matrix }

// MustDense returns an r×c zero matrix.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustRows builds a matrix from row literals.
func MustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err, "NewFromRows(%v)", rows)

	return m
}

// IdentityDense returns I_n.
func IdentityDense(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err, "NewIdentity(%d)", n)

	return m
}

// NewFilledDense builds an r×c matrix from row-major vals.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	require.Len(t, vals, r*c, "NewFilledDense(%d,%d)", r, c)
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = vals[i*c : (i+1)*c]
	}

	return MustRows(t, rows)
}

// RandIntDense returns an r×c matrix of integers in [lo,hi] from seed.
// Integer entries keep cofactor arithmetic exact, so results compare with ==.
func RandIntDense(t *testing.T, r, c, lo, hi int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewRandomInRange(r, c, lo, hi, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)

	return m
}

// RandFilledDense returns an r×c matrix of seeded uniform values in [-1,1).
func RandFilledDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	require.NoError(t, m.Apply(uniformFill(seed)))

	return m
}

// uniformFill returns an Apply callback drawing from a seeded U[-1,1).
func uniformFill(seed int64) func(i, j int, v float64) float64 {
	rng := rand.New(rand.NewSource(seed))
	return func(_, _ int, _ float64) float64 { return rng.Float64()*2 - 1 }
}

// MustSet writes m[i,j] = v.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d,%v)", i, j, v)
}

// MustAt reads m[i,j].
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// CompareExact requires m to equal the row literal want, value for value.
// Only for integer-valued or otherwise exactly representable results.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i, row := range want {
		require.Len(t, row, m.Cols(), "cols of row %d", i)
		for j, w := range row {
			require.Equal(t, w, MustAt(t, m, i, j), "m[%d,%d]", i, j)
		}
	}
}

// CompareClose requires AllClose(got, want) under (rtol, atol).
func CompareClose(t *testing.T, got, want matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, rtol, atol)
	require.NoError(t, err)
	require.True(t, ok, "AllClose(rtol=%g, atol=%g)\ngot:\n%v\nwant:\n%v", rtol, atol, got, want)
}

// mustDense and fillDenseRand are the benchmark-side twins of MustDense
// and RandFilledDense.
func mustDense(b *testing.B, r, c int) *matrix.Dense {
	d, err := matrix.NewZeros(r, c)
	if err != nil {
		b.Fatalf("NewZeros(%d,%d): %v", r, c, err)
	}

	return d
}

func fillDenseRand(b *testing.B, d *matrix.Dense, seed int64) {
	if err := d.Apply(uniformFill(seed)); err != nil {
		b.Fatal(err)
	}
}
