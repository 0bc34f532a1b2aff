// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"

	"github.com/katalvlaran/mafx/matrix"
)

// Inverse returns m⁻¹ computed column by column from the LU factorization.
//
// Implementation:
//   - Stage 1: LU(m); a zero pivot ⇒ ErrSingular.
//   - Stage 2: for each basis vector e_j solve A·x = e_j and store x as column j.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrSingular.
// Complexity: O(n³) time, O(n²) space.
func Inverse(m matrix.Matrix) (*matrix.Dense, error) {
	f, err := LU(m)
	if err != nil {
		return nil, opsErrorf(opInverse, err)
	}
	if f.Singular {
		return nil, opsErrorf(opInverse, ErrSingular)
	}
	n := f.n
	inv, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, opsErrorf(opInverse, err)
	}

	e := make([]float64, n)
	x := make([]float64, n)
	var col, i int
	for col = 0; col < n; col++ {
		e[col] = 1
		f.solveInto(x, e)
		e[col] = 0
		for i = 0; i < n; i++ {
			if err = inv.Set(i, col, x[i]); err != nil {
				return nil, opsErrorf(opInverse, err)
			}
		}
	}

	return inv, nil
}

// Solve returns x with m·x = b.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch
// (len(b) != n), ErrSingular.
func Solve(m matrix.Matrix, b []float64) ([]float64, error) {
	f, err := LU(m)
	if err != nil {
		return nil, opsErrorf(opSolve, err)
	}
	if len(b) != f.n {
		return nil, opsErrorf(opSolve, fmt.Errorf("len(b)=%d, n=%d: %w", len(b), f.n, matrix.ErrDimensionMismatch))
	}
	if f.Singular {
		return nil, opsErrorf(opSolve, ErrSingular)
	}
	x := make([]float64, f.n)
	f.solveInto(x, b)

	return x, nil
}
