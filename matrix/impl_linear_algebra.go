// SPDX-License-Identifier: MIT
// Package matrix - arithmetic kernels: sum, difference, product, transpose,
// scalar scaling and division, right division and integer powers.
//
// Every kernel validates its operands first, allocates a fresh *Dense and
// leaves the operands untouched. Operands that are not *Dense are read once
// through At into a scratch *Dense (toDense), so all arithmetic runs on flat
// row-major buffers with the same loop order whatever the input type.

package matrix

import "fmt"

// ZeroSum is the initial accumulator of dot products.
const ZeroSum = 0.0

// Operation tags used as error prefixes.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opScaleDiv  = "ScaleDiv"
	opDiv       = "Div"
	opPow       = "Pow"
	opMultiply  = "Multiply"
	opDivide    = "Divide"
)

// matrixErrorf prefixes err with the failing operation: "<tag>: <err>".
// Callers only invoke it with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// densePair materializes both operands of a binary kernel.
func densePair(a, b Matrix) (*Dense, *Dense, error) {
	da, err := toDense(a)
	if err != nil {
		return nil, nil, err
	}
	db, err := toDense(b)
	if err != nil {
		return nil, nil, err
	}

	return da, db, nil
}

// zipWith returns f(a[i,j], b[i,j]) for equally shaped a and b.
func zipWith(a, b Matrix, tag string, f func(x, y float64) float64) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	da, db, err := densePair(a, b)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	for idx, x := range da.data {
		out.data[idx] = f(x, db.data[idx])
	}

	return out, nil
}

// Add returns the element-wise sum A + B.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (Matrix, error) {
	return zipWith(a, b, opAdd, func(x, y float64) float64 { return x + y })
}

// Sub returns the element-wise difference A - B.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (Matrix, error) {
	return zipWith(a, b, opSub, func(x, y float64) float64 { return x - y })
}

// Mul returns the matrix product A·B, C[i][j] = Σ_k A[i][k]·B[k][j].
//
// The loop order is i→k→j so both B and C are walked along rows; a zero
// A[i][k] contributes nothing and is skipped.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (A.Cols != B.Rows).
// Complexity: O(r·n·c) time, O(r·c) space.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, db, err := densePair(a, b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, err := NewDense(da.r, db.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	inner, width := da.c, db.c
	var (
		i, k    int
		aik     float64
		outRow  []float64
		bRowBuf []float64
	)
	for i = 0; i < da.r; i++ {
		outRow = out.data[i*width : (i+1)*width]
		for k = 0; k < inner; k++ {
			if aik = da.data[i*inner+k]; aik == 0 {
				continue
			}
			bRowBuf = db.data[k*width : (k+1)*width]
			for j, bkj := range bRowBuf {
				outRow[j] += aik * bkj
			}
		}
	}

	return out, nil
}

// Transpose returns mᵀ, a cols×rows matrix with out[j][i] = m[i][j].
//
// Errors: ErrNilMatrix.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := NewDense(src.c, src.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for idx, v := range src.data {
		out.data[(idx%src.c)*src.r+idx/src.c] = v
	}

	return out, nil
}

// mapValues returns f applied to every element of m.
func mapValues(m Matrix, tag string, f func(v float64) float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out, err := NewDense(src.r, src.c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	for idx, v := range src.data {
		out.data[idx] = f(v)
	}

	return out, nil
}

// Scale returns alpha·m. Scalar multiplication commutes, so this serves
// both k·M and M·k.
//
// Errors: ErrNilMatrix.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	return mapValues(m, opScale, func(v float64) float64 { return v * alpha })
}

// ScaleDiv returns m / k, dividing each element by k (exact quotients stay exact).
//
// Errors: ErrNilMatrix, ErrDivisionByZero.
func ScaleDiv(m Matrix, k float64) (Matrix, error) {
	if k == 0 {
		return nil, matrixErrorf(opScaleDiv, ErrDivisionByZero)
	}

	return mapValues(m, opScaleDiv, func(v float64) float64 { return v / k })
}

// Negate returns -m.
func Negate(m Matrix) (Matrix, error) { return Scale(m, -1) }

// Div is right division, A·B⁻¹. It does not commute, and B must be square
// and non-singular.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular from the inverse;
// ErrDimensionMismatch when A.Cols != B.Rows.
// Complexity: dominated by the O(n!) cofactor inverse of B.
func Div(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	inv, err := Inverse(b)
	if err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	out, err := Mul(a, inv)
	if err != nil {
		return nil, matrixErrorf(opDiv, err)
	}

	return out, nil
}

// Pow returns mⁿ for square m and n ≥ 0 by repeated left-to-right
// multiplication. m⁰ is the identity, singular m included.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrInvalidArgument (n < 0).
// Complexity: O(n·k³) for a k×k matrix.
func Pow(m Matrix, n int) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if n < 0 {
		return nil, matrixErrorf(opPow, fmt.Errorf("exponent %d: %w", n, ErrInvalidArgument))
	}
	if n == 0 {
		id, err := NewIdentity(m.Rows())
		if err != nil {
			return nil, matrixErrorf(opPow, err)
		}

		return id, nil
	}

	acc := m.Clone()
	var err error
	for step := 1; step < n; step++ {
		if acc, err = Mul(acc, m); err != nil {
			return nil, matrixErrorf(opPow, err)
		}
	}

	return acc, nil
}

// Multiply picks the kernel from the operand kinds: Mul for two matrices,
// Scale when exactly one side is a scalar.
//
// Errors: ErrInvalidArgument for scalar×scalar or an empty Operand, plus
// whatever the chosen kernel returns.
func Multiply(x, y Operand) (Matrix, error) {
	var (
		out Matrix
		err error
	)
	switch {
	case x.IsMatrix() && y.IsMatrix():
		out, err = Mul(x.mat, y.mat)
	case x.IsMatrix() && y.IsScalar():
		out, err = Scale(x.mat, y.scalar)
	case x.IsScalar() && y.IsMatrix():
		out, err = Scale(y.mat, x.scalar)
	default:
		err = fmt.Errorf("unsupported operands: %w", ErrInvalidArgument)
	}
	if err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	return out, nil
}

// Divide picks ScaleDiv for matrix/scalar and Div for matrix/matrix.
//
// Errors: ErrInvalidArgument for a scalar dividend or an empty Operand.
func Divide(x, y Operand) (Matrix, error) {
	var (
		out Matrix
		err error
	)
	switch {
	case x.IsMatrix() && y.IsScalar():
		out, err = ScaleDiv(x.mat, y.scalar)
	case x.IsMatrix() && y.IsMatrix():
		out, err = Div(x.mat, y.mat)
	default:
		err = fmt.Errorf("unsupported operands: %w", ErrInvalidArgument)
	}
	if err != nil {
		return nil, matrixErrorf(opDivide, err)
	}

	return out, nil
}
