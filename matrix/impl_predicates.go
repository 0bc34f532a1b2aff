// SPDX-License-Identifier: MIT

// Package matrix - structural predicates and the trace.
//
// Purpose:
//   - Classify a matrix (square, symmetric, skew-symmetric, diagonal, scalar,
//     upper/lower triangular, orthogonal, nilpotent).
//   - Predicates without preconditions return a plain bool (nil ⇒ false);
//     those that require a square input return (value, error).
//
// Determinism & Policy:
//   - Checks over stored values compare exactly.
//   - Checks over computed products (orthogonal, nilpotency) use the tolerance
//     from Options (DefaultEpsilon unless overridden).

package matrix

import (
	"fmt"
	"math"
)

const (
	opTrace      = "Trace"
	opNilpotency = "NilpotencyIndex"
	opProperties = "Properties"
)

// IsSquare reports Rows == Cols. A nil matrix is not square.
func IsSquare(m Matrix) bool {
	return ValidateSquareNonNil(m) == nil
}

// denseOrNil materializes m for read-only scans; nil or unreadable input gives nil.
func denseOrNil(m Matrix) *Dense {
	if ValidateNotNil(m) != nil {
		return nil
	}
	d, err := toDense(m)
	if err != nil {
		return nil
	}

	return d
}

// IsSymmetric reports m == mᵀ. Non-square matrices are never symmetric.
// Complexity: O(n²), no allocation for *Dense.
func IsSymmetric(m Matrix) bool {
	d := denseOrNil(m)
	if d == nil || d.r != d.c {
		return false
	}
	n := d.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if d.data[i*n+j] != d.data[j*n+i] {
				return false
			}
		}
	}

	return true
}

// IsSkewSymmetric reports m == −mᵀ (which forces a zero diagonal).
// Complexity: O(n²).
func IsSkewSymmetric(m Matrix) bool {
	d := denseOrNil(m)
	if d == nil || d.r != d.c {
		return false
	}
	n := d.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			if d.data[i*n+j] != -d.data[j*n+i] {
				return false
			}
		}
	}

	return true
}

// IsDiagonal reports whether every off-diagonal entry is zero.
// Defined for any shape.
func IsDiagonal(m Matrix) bool {
	return allZeroWhere(m, func(i, j int) bool { return i != j })
}

// IsUpperTriangular reports whether every entry below the diagonal is zero.
func IsUpperTriangular(m Matrix) bool {
	return allZeroWhere(m, func(i, j int) bool { return i > j })
}

// IsLowerTriangular reports whether every entry above the diagonal is zero.
func IsLowerTriangular(m Matrix) bool {
	return allZeroWhere(m, func(i, j int) bool { return i < j })
}

// allZeroWhere reports whether m[i][j] == 0 for every (i,j) selected by pick.
func allZeroWhere(m Matrix, pick func(i, j int) bool) bool {
	d := denseOrNil(m)
	if d == nil {
		return false
	}
	ok := true
	d.Do(func(i, j int, v float64) bool {
		if pick(i, j) && v != 0 {
			ok = false
		}
		return ok
	})

	return ok
}

// IsScalar reports whether m is square, diagonal, and every diagonal entry
// equals the first one (k·I for some k). Works for any order n ≥ 1.
func IsScalar(m Matrix) bool {
	if !IsSquare(m) || !IsDiagonal(m) {
		return false
	}
	d := denseOrNil(m)
	n := d.r
	first := d.data[0]
	for i := 1; i < n; i++ {
		if d.data[i*n+i] != first {
			return false
		}
	}

	return true
}

// Trace returns the sum of the diagonal entries.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n).
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	sum := ZeroSum
	var v float64
	var err error
	for i := 0; i < m.Rows(); i++ {
		if v, err = m.At(i, i); err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		sum += v
	}

	return sum, nil
}

// IsOrthogonal reports whether m·mᵀ equals the identity of size Rows(m)
// within the tolerance. For a non-square m this tests for orthonormal rows.
func IsOrthogonal(m Matrix, opts ...Option) bool {
	if ValidateNotNil(m) != nil {
		return false
	}
	o := gatherOptions(opts...)
	t, err := Transpose(m)
	if err != nil {
		return false
	}
	p, err := Mul(m, t)
	if err != nil {
		return false
	}
	id, err := NewIdentity(m.Rows())
	if err != nil {
		return false
	}
	ok, err := AllClose(p, id, 0, o.eps)

	return err == nil && ok
}

// NilpotencyIndex returns the smallest i in [1, n] such that mⁱ is the zero
// matrix (within tolerance), or NotNilpotent when no such i exists. The
// search stops at n because an n×n nilpotent matrix always satisfies mⁿ = 0.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: p = m; for i = 1..n: zero? return i; p = p·m (same chain as Pow).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n⁴) worst case, Space O(n²).
func NilpotencyIndex(m Matrix, opts ...Option) (int, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opNilpotency, err)
	}
	o := gatherOptions(opts...)
	n := m.Rows()

	p := m.Clone()
	var err error
	for i := 1; i <= n; i++ {
		if isZeroMatrix(p, o.eps) {
			return i, nil
		}
		if i == n {
			break
		}
		if p, err = Mul(p, m); err != nil {
			return 0, matrixErrorf(opNilpotency, err)
		}
	}

	return NotNilpotent, nil
}

// IsNilpotent reports whether NilpotencyIndex found a finite index.
//
// Errors: ErrNilMatrix, ErrNonSquare.
func IsNilpotent(m Matrix, opts ...Option) (bool, error) {
	idx, err := NilpotencyIndex(m, opts...)
	if err != nil {
		return false, err
	}

	return idx != NotNilpotent, nil
}

// isZeroMatrix reports whether every |m[i][j]| ≤ eps.
func isZeroMatrix(m Matrix, eps float64) bool {
	d := denseOrNil(m)
	if d == nil {
		return false
	}
	for _, v := range d.data {
		if math.Abs(v) > eps {
			return false
		}
	}

	return true
}

// Report is the full structural profile of a matrix, as computed by Properties.
// Fields that need a square matrix are left at their zero value (and
// Nilpotency at NotNilpotent) for non-square input.
type Report struct {
	Rows            int
	Cols            int
	Square          bool
	Symmetric       bool
	SkewSymmetric   bool
	Diagonal        bool
	Scalar          bool
	UpperTriangular bool
	LowerTriangular bool
	Orthogonal      bool
	Nilpotent       bool
	Nilpotency      int
	Rank            int
	Trace           float64
	Determinant     float64
}

// Properties evaluates every predicate, the rank and, for square input, the
// trace, determinant and nilpotency index.
//
// Errors: ErrNilMatrix.
func Properties(m Matrix, opts ...Option) (Report, error) {
	if err := ValidateNotNil(m); err != nil {
		return Report{}, matrixErrorf(opProperties, err)
	}
	rep := Report{
		Rows:            m.Rows(),
		Cols:            m.Cols(),
		Square:          IsSquare(m),
		Symmetric:       IsSymmetric(m),
		SkewSymmetric:   IsSkewSymmetric(m),
		Diagonal:        IsDiagonal(m),
		Scalar:          IsScalar(m),
		UpperTriangular: IsUpperTriangular(m),
		LowerTriangular: IsLowerTriangular(m),
		Orthogonal:      IsOrthogonal(m, opts...),
		Nilpotency:      NotNilpotent,
	}

	var err error
	if rep.Rank, err = Rank(m, opts...); err != nil {
		return Report{}, matrixErrorf(opProperties, err)
	}
	if !rep.Square {
		return rep, nil
	}
	if rep.Trace, err = Trace(m); err != nil {
		return Report{}, matrixErrorf(opProperties, err)
	}
	if rep.Determinant, err = Determinant(m); err != nil {
		return Report{}, matrixErrorf(opProperties, err)
	}
	if rep.Nilpotency, err = NilpotencyIndex(m, opts...); err != nil {
		return Report{}, matrixErrorf(opProperties, fmt.Errorf("nilpotency: %w", err))
	}
	rep.Nilpotent = rep.Nilpotency != NotNilpotent

	return rep, nil
}
