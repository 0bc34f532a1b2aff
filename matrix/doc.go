// Package matrix is a dense, row-major float64 matrix library with exact
// textbook algorithms for small matrices.
//
// The matrix package provides:
//
//   - Dense, a rectangular matrix that exclusively owns its storage; every
//     accessor that returns data returns a copy.
//   - Arithmetic: Add, Sub, Mul, Transpose, Scale, ScaleDiv, Div, Pow and the
//     polymorphic Multiply/Divide over Scalar/Mat operands.
//   - The determinant engine: cofactor-expansion Determinant, Minor,
//     Cofactor, Adjugate and the adjugate-based Inverse.
//   - RREF (Gauss-Jordan with first-nonzero pivoting) and Rank.
//   - Structural predicates (symmetric, skew-symmetric, diagonal, scalar,
//     triangular, orthogonal, nilpotent), Trace and a combined Properties report.
//   - Builders (NewIdentity, NewZeros, NewOnes, NewRandom, NewFromRows) and
//     the text/LaTeX/file formats (ParseText, FormatText, FormatLaTeX,
//     LoadFile, SaveFile).
//
// Errors are package sentinels wrapped with the failing operation's name;
// match them with errors.Is. ErrNonSquare and ErrTooSmall also match
// ErrInvalidOperation.
//
// Cofactor expansion is O(n!) and meant for the small matrices it is exact
// on. The ops subpackage carries LU-based determinant and inverse for
// larger inputs.
//
// See the examples in this package for usage patterns.
package matrix
