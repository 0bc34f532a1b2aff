// SPDX-License-Identifier: MIT
// Package matrix - element-wise comparisons behind Equal and AllClose.

package matrix

import "math"

const opAllClose = "AllClose"

// everyPair reports whether keep holds for every pair of corresponding
// elements, stopping at the first failure. Shapes must already match.
func everyPair(a, b Matrix, keep func(x, y float64) bool) (bool, error) {
	da, db, err := densePair(a, b)
	if err != nil {
		return false, err
	}
	for idx, x := range da.data {
		if !keep(x, db.data[idx]) {
			return false, nil
		}
	}

	return true, nil
}

// ewEqual is exact equality of shape and values. Two nils are equal; a nil
// and a non-nil are not.
func ewEqual(a, b Matrix) bool {
	aNil, bNil := ValidateNotNil(a) != nil, ValidateNotNil(b) != nil
	if aNil || bNil {
		return aNil && bNil
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}
	same, err := everyPair(a, b, func(x, y float64) bool { return x == y })

	return err == nil && same
}

// ewAllClose reports |a-b| ≤ atol + rtol·|b| element-wise. Negative
// tolerances are taken by absolute value; non-finite ones are ErrNaNInf.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	within, err := everyPair(a, b, func(x, y float64) bool {
		return math.Abs(x-y) <= atol+rtol*math.Abs(y)
	})
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	return within, nil
}
