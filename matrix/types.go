// SPDX-License-Identifier: MIT

// Package matrix - the Matrix interface and the Operand union.
package matrix

// Matrix is a mutable rows×cols grid of float64. Integers up to 2^53 are
// held exactly, so integer matrices stay exact through + - ×.
//
// Every kernel accepts a Matrix; *Dense is the only implementation in this
// package and the one kernels return.
type Matrix interface {
	Rows() int
	Cols() int
	// At returns element (i, j) or ErrOutOfRange.
	At(i, j int) (float64, error)
	// Set writes element (i, j); ErrOutOfRange for bad indices.
	Set(i, j int, v float64) error
	// Clone returns an independent deep copy.
	Clone() Matrix
}

// operandKind tags which field of Operand is meaningful.
type operandKind uint8

const (
	operandNone   operandKind = iota // zero Operand; rejected by every facade
	operandScalar                    // Operand.scalar is set
	operandMatrix                    // Operand.mat is set
)

// Operand is one side of a Multiply/Divide call: either a scalar or a Matrix.
// Build it with Scalar or Mat; the zero value is an unsupported operand and
// yields ErrInvalidArgument.
type Operand struct {
	kind   operandKind
	scalar float64
	mat    Matrix
}

// Scalar wraps k as an Operand.
func Scalar(k float64) Operand { return Operand{kind: operandScalar, scalar: k} }

// Mat wraps m as an Operand. A nil m is reported as ErrNilMatrix when used.
func Mat(m Matrix) Operand { return Operand{kind: operandMatrix, mat: m} }

// IsScalar reports whether o carries a scalar.
func (o Operand) IsScalar() bool { return o.kind == operandScalar }

// IsMatrix reports whether o carries a Matrix.
func (o Operand) IsMatrix() bool { return o.kind == operandMatrix }
