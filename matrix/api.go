// SPDX-License-Identifier: MIT
// Package matrix - builders, comparisons and short aliases.
//
// Random builders draw from a caller-supplied *rand.Rand; the package keeps
// no global source.

package matrix

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	opNewRandom   = "NewRandom"
	opNewFromRows = "NewFromRows"
	opIdentity    = "IdentityLike"
)

// NewZeros returns a rows×cols zero matrix (same as NewDense).
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns the n×n identity.
//
// Errors: ErrInvalidDimensions for n <= 0.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(id.data); i += n + 1 {
		id.data[i] = 1
	}

	return id, nil
}

// NewOnes returns a rows×cols matrix filled with 1.
func NewOnes(rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for idx := range m.data {
		m.data[idx] = 1.0
	}

	return m, nil
}

// NewRandom returns a rows×cols matrix of integers drawn uniformly from
// [RandomMin, RandomMax] using rng.
//
// Errors: ErrInvalidDimensions, ErrInvalidArgument (nil rng).
func NewRandom(rows, cols int, rng *rand.Rand) (*Dense, error) {
	return NewRandomInRange(rows, cols, RandomMin, RandomMax, rng)
}

// NewRandomInRange returns a rows×cols matrix of integers drawn uniformly
// from [lo, hi] using rng. Values are drawn in row-major order, so a fixed
// seed reproduces the same matrix.
//
// Errors:
//   - ErrInvalidDimensions (shape),
//   - ErrInvalidArgument (nil rng, lo > hi, or hi-lo+1 not representable as int).
//
// Complexity: O(r*c).
func NewRandomInRange(rows, cols, lo, hi int, rng *rand.Rand) (*Dense, error) {
	if rng == nil {
		return nil, matrixErrorf(opNewRandom, fmt.Errorf("nil rng: %w", ErrInvalidArgument))
	}
	if lo > hi {
		return nil, matrixErrorf(opNewRandom, fmt.Errorf("range [%d,%d]: %w", lo, hi, ErrInvalidArgument))
	}
	// hi >= lo, so the unsigned difference is exact even when hi-lo overflows int.
	if diff := uint64(hi) - uint64(lo); diff >= uint64(math.MaxInt) {
		return nil, matrixErrorf(opNewRandom, fmt.Errorf("range [%d,%d] too wide: %w", lo, hi, ErrInvalidArgument))
	}
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opNewRandom, err)
	}
	span := hi - lo + 1
	for idx := range m.data {
		m.data[idx] = float64(lo + rng.Intn(span))
	}

	return m, nil
}

// NewFromRows builds a matrix from a rectangular slice of rows; the shape is
// taken from data. data is copied.
//
// Errors: ErrInvalidDimensions (no rows / empty first row), ErrDimensionMismatch (ragged).
func NewFromRows(data [][]float64) (*Dense, error) {
	if err := ValidateRectangular(data); err != nil {
		return nil, matrixErrorf(opNewFromRows, err)
	}
	m, err := NewDenseFrom(len(data), len(data[0]), data)
	if err != nil {
		return nil, matrixErrorf(opNewFromRows, err)
	}

	return m, nil
}

// CloneMatrix is m.Clone().
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns the identity of m's (square) size.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return NewIdentity(m.Rows())
}

// Equal reports identical shape and values; nil equals only nil.
func Equal(a, b Matrix) bool { return ewEqual(a, b) }

// AllClose reports whether |a-b| ≤ atol + rtol·|b| holds element-wise.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (bad tolerance).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) { return ewAllClose(a, b, rtol, atol) }

// Short aliases.

// Sum is Add.
func Sum(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Diff is Sub.
func Diff(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// Product is Mul.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// T is Transpose.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// ScaleBy is Scale.
func ScaleBy(m Matrix, alpha float64) (Matrix, error) { return Scale(m, alpha) }

// InverseOf is Inverse.
func InverseOf(m Matrix) (Matrix, error) { return Inverse(m) }

// Det is Determinant.
func Det(m Matrix) (float64, error) { return Determinant(m) }
