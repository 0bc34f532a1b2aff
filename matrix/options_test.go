// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mafx/matrix"
)

// TestDefaultOptions_Documented verifies that NewMatrixOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()
	if o.Eps != matrix.DefaultEpsilon {
		t.Fatalf("eps default mismatch: got %v, want %v", o.Eps, matrix.DefaultEpsilon)
	}
	if got := matrix.NewMatrixOptions().Epsilon(); got != matrix.DefaultEpsilon {
		t.Fatalf("NewMatrixOptions eps: got %v, want %v", got, matrix.DefaultEpsilon)
	}
}

// TestOptions_LastWriterWins ensures setters apply in order.
func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithEpsilon(1e-3), matrix.WithExact())
	require.Zero(t, o.Eps)

	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithExact(), matrix.WithEpsilon(1e-3))
	require.Equal(t, 1e-3, o.Eps)
}

func TestWithEpsilon_SetsValue(t *testing.T) {
	require.Equal(t, 0.25, matrix.NewMatrixOptions(matrix.WithEpsilon(0.25)).Epsilon())
	require.Zero(t, matrix.NewMatrixOptions(matrix.WithEpsilon(0)).Epsilon())
}

func TestPanics_WithEpsilon_Message(t *testing.T) {
	for _, eps := range []float64{-1, math.NaN(), math.Inf(1)} {
		require.PanicsWithValue(t, matrix.PanicEpsilonInvalid_TestOnly, func() { matrix.WithEpsilon(eps) })
	}
}
