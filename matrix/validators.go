// SPDX-License-Identifier: MIT
// Package matrix - argument validation shared by every kernel.
//
// Validators return package sentinels prefixed with the validator name;
// kernels add their own operation tag on top. None of them allocate on
// success. Single-purpose validators (SameShape, Square) assume non-nil
// input; the composite ones check nil first.

package matrix

import "fmt"

// Validator names used as error prefixes.
const (
	vNotNil       = "ValidateNotNil"
	vSameShape    = "ValidateSameShape"
	vSquare       = "ValidateSquare"
	vBinary       = "ValidateBinarySameShape"
	vSquareNonNil = "ValidateSquareNonNil"
	vMul          = "ValidateMulCompatible"
	vRectangular  = "ValidateRectangular"
)

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// firstFailure runs checks in order and returns the first error, tagged.
func firstFailure(tag string, checks ...func() error) error {
	for _, check := range checks {
		if err := check(); err != nil {
			return validatorErrorf(tag, err)
		}
	}

	return nil
}

// ValidateNotNil returns ErrNilMatrix for a nil interface or a typed nil *Dense.
func ValidateNotNil(m Matrix) error {
	if d, isDense := m.(*Dense); m == nil || (isDense && d == nil) {
		return validatorErrorf(vNotNil, ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape returns ErrDimensionMismatch unless a and b have the
// same rows and columns.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf(vSameShape,
			fmt.Errorf("%dx%d vs %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateSquare returns ErrNonSquare unless Rows == Cols.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf(vSquare, fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare))
	}

	return nil
}

// ValidateBinarySameShape checks both operands for nil, then their shapes.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateBinarySameShape(a, b Matrix) error {
	return firstFailure(vBinary,
		func() error { return ValidateNotNil(a) },
		func() error { return ValidateNotNil(b) },
		func() error { return ValidateSameShape(a, b) },
	)
}

// ValidateSquareNonNil checks nil, then squareness.
//
// Errors: ErrNilMatrix, ErrNonSquare.
func ValidateSquareNonNil(m Matrix) error {
	return firstFailure(vSquareNonNil,
		func() error { return ValidateNotNil(m) },
		func() error { return ValidateSquare(m) },
	)
}

// ValidateMulCompatible checks both operands for nil, then a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b Matrix) error {
	return firstFailure(vMul,
		func() error { return ValidateNotNil(a) },
		func() error { return ValidateNotNil(b) },
		func() error {
			if a.Cols() != b.Rows() {
				return fmt.Errorf("%dx%d · %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
			}
			return nil
		},
	)
}

// ValidateRectangular requires at least one non-empty row and every row as
// long as the first.
//
// Errors: ErrInvalidDimensions (empty), ErrDimensionMismatch (ragged).
func ValidateRectangular(data [][]float64) error {
	if len(data) == 0 || len(data[0]) == 0 {
		return validatorErrorf(vRectangular, ErrInvalidDimensions)
	}
	for i, row := range data[1:] {
		if len(row) != len(data[0]) {
			return validatorErrorf(vRectangular,
				fmt.Errorf("row %d has %d values, want %d: %w", i+1, len(row), len(data[0]), ErrDimensionMismatch))
		}
	}

	return nil
}
