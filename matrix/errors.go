// SPDX-License-Identifier: MIT
// Package matrix - sentinel errors.
//
// Kernels return these wrapped as "<Op>: ...: <sentinel>"; match with
// errors.Is. User input never causes a panic.
//
// Checks run in a fixed order, so the reported sentinel is predictable:
// nil, then shape or index, then dimension agreement, then square/size
// requirements, then numeric failures (singular, division by zero).

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrDimensionMismatch indicates incompatible dimensions between operands or
	// between a declared shape and the supplied rows (ragged input),
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/Col) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidOperation is the umbrella for operations the receiver's shape
	// does not support. ErrNonSquare and ErrTooSmall both match it via errors.Is.
	ErrInvalidOperation = errors.New("matrix: invalid operation")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = fmt.Errorf("%w: matrix must be square", ErrInvalidOperation)

	// ErrTooSmall signals that a minor was requested from a matrix with fewer
	// than two rows or columns.
	ErrTooSmall = fmt.Errorf("%w: matrix is too small", ErrInvalidOperation)

	// ErrSingular is returned when an inverse is requested for a matrix whose
	// determinant is zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrDivisionByZero is returned by scalar division with a zero divisor.
	ErrDivisionByZero = errors.New("matrix: division by zero")

	// ErrInvalidArgument covers bad non-matrix arguments: negative exponents,
	// unsupported operand kinds, empty random ranges, nil randomness sources.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, parsing).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrParse reports malformed text-format input.
	ErrParse = errors.New("matrix: parse error")
)

// ErrIndexOutOfBounds is the same sentinel as ErrOutOfRange, so
// errors.Is matches either name.
//
// Deprecated: use ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange
