// SPDX-License-Identifier: MIT

package ops

import "github.com/katalvlaran/mafx/matrix"

// Determinant computes det(m) through LU with partial pivoting.
// Unlike matrix.Determinant it is O(n³), at the price of rounding error on
// integer input (det of an integer matrix may come back as 41.99999999).
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
func Determinant(m matrix.Matrix) (float64, error) {
	f, err := LU(m)
	if err != nil {
		return 0, opsErrorf(opDet, err)
	}

	return f.Det(), nil
}
