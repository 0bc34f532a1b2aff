// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mafx/matrix"
)

// TestValidateBinarySameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateBinarySameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) matrix.Matrix {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(2, 2), matrix.ErrNilMatrix},
		{"second typed nil", zeros(2, 2), (*matrix.Dense)(nil), matrix.ErrNilMatrix},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateSquareNonNil covers nil inputs, square and non-square cases.
func TestValidateSquareNonNil(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"1x1", MustDense(t, 1, 1), nil},
		{"3x3", MustDense(t, 3, 3), nil},
		{"2x3", MustDense(t, 2, 3), matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquareNonNil(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()
	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 5)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), nil), matrix.ErrNilMatrix)
}

func TestValidateRectangular(t *testing.T) {
	t.Parallel()
	require.NoError(t, matrix.ValidateRectangular([][]float64{{1, 2}, {3, 4}}))
	require.ErrorIs(t, matrix.ValidateRectangular(nil), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.ValidateRectangular([][]float64{{}}), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.ValidateRectangular([][]float64{{1, 2}, {3}}), matrix.ErrDimensionMismatch)
}

// TestSentinelHierarchy pins the errors.Is relations callers rely on.
func TestSentinelHierarchy(t *testing.T) {
	require.ErrorIs(t, matrix.ErrNonSquare, matrix.ErrInvalidOperation)
	require.ErrorIs(t, matrix.ErrTooSmall, matrix.ErrInvalidOperation)
	require.NotErrorIs(t, matrix.ErrSingular, matrix.ErrInvalidOperation)
	require.ErrorIs(t, matrix.ErrIndexOutOfBounds, matrix.ErrOutOfRange)
}
