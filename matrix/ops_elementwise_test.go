// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mafx/matrix"
)

// --- Equal --------------------------------------------------------------------

func TestEqual(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]float64{{1, 2}, {3, 4}})

	require.True(t, matrix.Equal(a, b))
	require.True(t, matrix.Equal(hide{a}, b))
	require.True(t, matrix.EwEqual_TestOnly(a, hide{b}))

	MustSet(t, b, 1, 1, 5)
	require.False(t, matrix.Equal(a, b))
	require.False(t, matrix.Equal(hide{a}, hide{b}))

	// same data, different shape
	require.False(t, matrix.Equal(MustRows(t, [][]float64{{1, 2, 3, 4}}), a))

	require.True(t, matrix.Equal(nil, nil))
	require.False(t, matrix.Equal(a, nil))
	require.False(t, matrix.Equal(nil, a))
}

// --- AllClose -----------------------------------------------------------------

func TestAllClose_Table(t *testing.T) {
	t.Parallel()
	zero := NewFilledDense(t, 2, 2, []float64{0, 0, 0, 0})

	for _, tc := range []struct {
		name       string
		other      []float64
		rtol, atol float64
		want       bool
	}{
		{"identical", []float64{0, 0, 0, 0}, 1e-8, 1e-8, true},
		{"within atol", []float64{0, 0, 0, 1e-10}, 1e-8, 1e-8, true},
		{"outside atol", []float64{1e-6, 0, 0, 0}, 0, 1e-8, false},
		{"negative tolerances normalized", []float64{5e-6, 0, 0, 0}, -1e-5, -1e-5, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			other := NewFilledDense(t, 2, 2, tc.other)
			ok, err := matrix.AllClose(zero, other, tc.rtol, tc.atol)
			require.NoError(t, err)
			require.Equal(t, tc.want, ok)

			// interface path agrees
			slow, err := matrix.EwAllClose_TestOnly(hide{zero}, hide{other}, tc.rtol, tc.atol)
			require.NoError(t, err)
			require.Equal(t, ok, slow)
		})
	}
}

func TestAllClose_RelativeTolerance(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]float64{{1000}})
	b := MustRows(t, [][]float64{{1000.5}})

	ok, err := matrix.AllClose(a, b, 1e-3, 0)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = matrix.AllClose(a, b, 1e-4, 0)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAllClose_Errors(t *testing.T) {
	t.Parallel()
	a := MustDense(t, 2, 2)

	for _, tc := range []struct {
		name       string
		x, y       matrix.Matrix
		rtol, atol float64
		want       error
	}{
		{"shape", a, MustDense(t, 2, 3), 1e-6, 1e-6, matrix.ErrDimensionMismatch},
		{"nil", nil, a, 1e-6, 1e-6, matrix.ErrNilMatrix},
		{"rtol NaN", a, a, math.NaN(), 1e-6, matrix.ErrNaNInf},
		{"atol -Inf", a, a, 1e-6, math.Inf(-1), matrix.ErrNaNInf},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.AllClose(tc.x, tc.y, tc.rtol, tc.atol)
			require.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}
