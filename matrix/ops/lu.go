// SPDX-License-Identifier: MIT

// Package ops provides floating-point factorizations for the matrix package:
// LU with partial pivoting and the determinant, inverse and linear solve
// built on it. They run in O(n³) and are the practical choice once the
// cofactor-expansion routines in package matrix become too slow.
package ops

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/mafx/matrix"
)

const (
	opLU      = "LU"
	opDet     = "Determinant"
	opInverse = "Inverse"
	opSolve   = "Solve"

	// ZeroPivot marks an exactly singular column during elimination.
	ZeroPivot = 0.0
)

// ErrSingular is matrix.ErrSingular so callers can match either package.
var ErrSingular = matrix.ErrSingular

// opsErrorf wraps err with the operation tag.
func opsErrorf(tag string, err error) error {
	return fmt.Errorf("ops.%s: %w", tag, err)
}

// Factorization is PA = LU for a square A.
//   - L is unit lower triangular, U upper triangular (stored packed in lu).
//   - Perm[i] is the source row of row i of PA.
//   - Sign is +1 or −1, the parity of Perm.
//   - Singular is set when a pivot column was entirely zero.
type Factorization struct {
	n        int
	lu       []float64
	Perm     []int
	Sign     float64
	Singular bool
}

// LU factorizes the square matrix m with partial (row) pivoting.
//
// Implementation:
//   - Stage 1: validate square; copy m into a packed row-major buffer.
//   - Stage 2: for each column k pick the row with the largest |a[i][k]|,
//     swap it up, store multipliers below the diagonal and update the
//     trailing block.
//
// A zero pivot does not fail the factorization; it marks it Singular so
// Determinant can return 0 and Inverse can return ErrSingular.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
// Complexity: O(n³) time, O(n²) space.
func LU(m matrix.Matrix) (*Factorization, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, opsErrorf(opLU, err)
	}
	n := m.Rows()
	f := &Factorization{
		n:    n,
		lu:   make([]float64, n*n),
		Perm: make([]int, n),
		Sign: 1,
	}

	var (
		i, j, k, p int
		v, maxAbs  float64
		err        error
	)
	for i = 0; i < n; i++ {
		f.Perm[i] = i
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, opsErrorf(opLU, err)
			}
			f.lu[i*n+j] = v
		}
	}

	a := f.lu
	for k = 0; k < n; k++ {
		p, maxAbs = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(a[i*n+k]); v > maxAbs {
				p, maxAbs = i, v
			}
		}
		if maxAbs == ZeroPivot {
			f.Singular = true
			continue
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			f.Perm[k], f.Perm[p] = f.Perm[p], f.Perm[k]
			f.Sign = -f.Sign
		}
		for i = k + 1; i < n; i++ {
			a[i*n+k] /= a[k*n+k]
			v = a[i*n+k]
			if v == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= v * a[k*n+j]
			}
		}
	}

	return f, nil
}

// L returns the unit lower-triangular factor as a new *matrix.Dense.
func (f *Factorization) L() *matrix.Dense {
	return f.extract(func(i, j int) (float64, bool) {
		switch {
		case i == j:
			return 1, true
		case i > j:
			return f.lu[i*f.n+j], true
		}
		return 0, false
	})
}

// U returns the upper-triangular factor as a new *matrix.Dense.
func (f *Factorization) U() *matrix.Dense {
	return f.extract(func(i, j int) (float64, bool) {
		if i <= j {
			return f.lu[i*f.n+j], true
		}
		return 0, false
	})
}

// P returns the permutation matrix with P·A = L·U.
func (f *Factorization) P() *matrix.Dense {
	return f.extract(func(i, j int) (float64, bool) {
		return 1, f.Perm[i] == j
	})
}

// extract builds an n×n Dense from the cells pick selects.
// n ≥ 1 and in-range indices make NewDense/Set infallible here.
func (f *Factorization) extract(pick func(i, j int) (float64, bool)) *matrix.Dense {
	out, _ := matrix.NewDense(f.n, f.n)
	var i, j int
	for i = 0; i < f.n; i++ {
		for j = 0; j < f.n; j++ {
			if v, ok := pick(i, j); ok {
				_ = out.Set(i, j, v)
			}
		}
	}

	return out
}

// Det returns the determinant: Sign · Π U[i][i].
func (f *Factorization) Det() float64 {
	if f.Singular {
		return 0
	}
	det := f.Sign
	for i := 0; i < f.n; i++ {
		det *= f.lu[i*f.n+i]
	}

	return det
}

// solveInto solves A·x = b for one right-hand side, writing x into dst.
// Assumes !f.Singular.
func (f *Factorization) solveInto(dst, b []float64) {
	n, a := f.n, f.lu
	var i, k int
	var sum float64
	// Forward: L·y = P·b.
	for i = 0; i < n; i++ {
		sum = b[f.Perm[i]]
		for k = 0; k < i; k++ {
			sum -= a[i*n+k] * dst[k]
		}
		dst[i] = sum
	}
	// Backward: U·x = y.
	for i = n - 1; i >= 0; i-- {
		sum = dst[i]
		for k = i + 1; k < n; k++ {
			sum -= a[i*n+k] * dst[k]
		}
		dst[i] = sum / a[i*n+i]
	}
}

// IsSingular reports whether err came from a singular factorization.
func IsSingular(err error) bool { return errors.Is(err, ErrSingular) }
