// SPDX-License-Identifier: MIT

// Package matrix - determinant engine: cofactor-expansion determinant,
// minors, cofactor matrix, adjugate and the adjugate-based inverse.
//
// Purpose:
//   - Reproduce the textbook Laplace expansion along row 0 so integer inputs
//     give exact integer determinants and inverses are adj(A)/det(A).
//   - Keep recursion shallow and allocation-free per call: the expansion
//     recurses once per order (depth n) and reuses one scratch buffer per
//     minor size.
//
// Complexity:
//   - Determinant is O(n!) in time; use ops.Determinant (LU) for large n.
//   - Cofactor/Adjugate/Inverse call Determinant n² times on (n-1)-minors.

package matrix

import "fmt"

const (
	opDeterminant = "Determinant"
	opMinor       = "Minor"
	opCofactor    = "Cofactor"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
)

// Determinant computes det(m) by cofactor expansion along the first row.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); materialize a flat *Dense view.
//   - Stage 2: 1×1 ⇒ the element; 2×2 ⇒ ad − bc.
//   - Stage 3: n ≥ 3 ⇒ Σ_i (−1)^i · a[0][i] · det(minor(0,i)), left to right.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n²) scratch.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return laplaceDet(d.data, d.r, newMinorScratch(d.r)), nil
}

// newMinorScratch allocates one buffer per minor order k ∈ [2, n-1];
// scratch[k] has k*k cells. Orders 0 and 1 are never materialized.
func newMinorScratch(n int) [][]float64 {
	scratch := make([][]float64, n)
	for k := 2; k < n; k++ {
		scratch[k] = make([]float64, k*k)
	}

	return scratch
}

// laplaceDet expands a (row-major n×n) along row 0.
// The minor for order n-1 is written into scratch[n-1], which the nested call
// only reads; deeper levels write into strictly smaller buffers.
func laplaceDet(a []float64, n int, scratch [][]float64) float64 {
	switch n {
	case 1:
		return a[0]
	case 2:
		return a[0]*a[3] - a[1]*a[2]
	}

	k := n - 1
	minor := scratch[k]
	det := ZeroSum
	sign := 1.0
	var col, i, j, dst int
	for col = 0; col < n; col++ {
		if a[col] != 0 {
			// Rows 1..n-1 without column col.
			dst = 0
			for i = 1; i < n; i++ {
				for j = 0; j < n; j++ {
					if j == col {
						continue
					}
					minor[dst] = a[i*n+j]
					dst++
				}
			}
			det += sign * a[col] * laplaceDet(minor, k, scratch)
		}
		sign = -sign
	}

	return det
}

// Minor returns the (r−1)×(c−1) submatrix of m with the given row and column removed.
// The input need not be square.
//
// Errors:
//   - ErrNilMatrix, ErrTooSmall (r < 2 or c < 2), ErrOutOfRange (row/col).
//
// Complexity: O(r*c).
func Minor(m Matrix, row, col int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows < 2 || cols < 2 {
		return nil, matrixErrorf(opMinor, fmt.Errorf("%dx%d: %w", rows, cols, ErrTooSmall))
	}
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	res, err := d.Induced(skipIndex(rows, row), skipIndex(cols, col))
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return res, nil
}

// skipIndex returns 0..n-1 without skip.
func skipIndex(n, skip int) []int {
	idx := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != skip {
			idx = append(idx, i)
		}
	}

	return idx
}

// Cofactor returns C with C[i][j] = (−1)^(i+j) · det(minor(i,j)).
// A 1×1 matrix has the empty minor, whose determinant is 1, so its
// cofactor matrix is [[1]].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity: O(n² · (n−1)!).
func Cofactor(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	n := m.Rows()
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	if n == 1 {
		res.data[0] = 1
		return res, nil
	}

	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	var (
		i, j  int
		minor *Dense
		sign  float64
	)
	scratch := newMinorScratch(n - 1)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if minor, err = Minor(d, i, j); err != nil {
				return nil, matrixErrorf(opCofactor, err)
			}
			sign = 1
			if (i+j)%2 == 1 {
				sign = -1
			}
			res.data[i*n+j] = sign * laplaceDet(minor.data, n-1, scratch)
		}
	}

	return res, nil
}

// Adjugate returns the transpose of the cofactor matrix.
//
// Errors: ErrNilMatrix, ErrNonSquare.
func Adjugate(m Matrix) (Matrix, error) {
	c, err := Cofactor(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	adj, err := Transpose(c)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adj, nil
}

// Inverse computes m⁻¹ = adj(m) / det(m).
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: det via cofactor expansion; det == 0 ⇒ ErrSingular.
//   - Stage 3: ScaleDiv(Adjugate(m), det).
//
// Behavior highlights:
//   - The singularity test is an exact zero check on the determinant, so
//     integer matrices are classified exactly.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity: O(n² · (n−1)!).
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	det, err := Determinant(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if det == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	adj, err := Adjugate(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := ScaleDiv(adj, det)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}
