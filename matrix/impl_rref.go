// SPDX-License-Identifier: MIT

// Package matrix - row reducer: Gauss-Jordan elimination to reduced row
// echelon form and the rank derived from it.

package matrix

import "math"

const (
	opRREF = "RREF"
	opRank = "Rank"
)

// RREF returns the reduced row echelon form of m. m is never mutated.
//
// Implementation:
//   - Stage 1: clone m into a working *Dense.
//   - Stage 2: for each row r, look down column `lead` from row r for the
//     first non-zero entry (exact compare, no magnitude pivoting). If the
//     remaining column is all zero, advance `lead` and retry; stop when
//     `lead` reaches Cols.
//   - Stage 3: swap the pivot row into r, divide row r by the pivot, subtract
//     lv·row r from every other row (lv = that row's entry in column lead),
//     then advance `lead`.
//
// Behavior highlights:
//   - Division is always applied, so the output is floating-point even for
//     integer input; pivots are exactly 1 and pivot columns exactly 0 elsewhere,
//     which makes RREF(RREF(m)) == RREF(m).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r²·c), Space O(r·c).
func RREF(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRREF, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opRREF, err)
	}
	w := src.clone()
	rows, cols := w.r, w.c

	var (
		r, i, j int
		lead    int
		lv      float64
		base    int
		pivBase int
	)
	for r = 0; r < rows; r++ {
		if lead >= cols {
			break
		}
		// Pivot search: first non-zero in column lead at or below row r.
		i = r
		for w.data[i*cols+lead] == 0 {
			i++
			if i == rows {
				i = r
				lead++
				if lead == cols {
					return w, nil
				}
			}
		}
		w.swapRows(i, r)

		// Normalize the pivot row.
		pivBase = r * cols
		lv = w.data[pivBase+lead]
		for j = 0; j < cols; j++ {
			w.data[pivBase+j] /= lv
		}

		// Eliminate column lead from every other row.
		for i = 0; i < rows; i++ {
			if i == r {
				continue
			}
			base = i * cols
			lv = w.data[base+lead]
			for j = 0; j < cols; j++ {
				w.data[base+j] -= lv * w.data[pivBase+j]
			}
		}
		lead++
	}

	return w, nil
}

// swapRows exchanges rows a and b in place. Indices are trusted (internal use).
func (m *Dense) swapRows(a, b int) {
	if a == b {
		return
	}
	ra := m.data[a*m.c : (a+1)*m.c]
	rb := m.data[b*m.c : (b+1)*m.c]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}

// Rank returns the number of non-zero rows in RREF(m). A row is non-zero if
// any |v| exceeds the tolerance (DefaultEpsilon unless overridden).
//
// The tolerance only applies to the reduced matrix. RREF pivots on any
// exactly non-zero entry and normalizes it to 1, so a rounding residue left
// by elimination becomes a full pivot first: [[0.1,0.7],[0.3,2.1]] has rank 2
// here although its rows are proportional. Integer-valued input reduces
// exactly and is unaffected. Use ops.LU for a magnitude-pivoted view.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity: O(r²·c).
func Rank(m Matrix, opts ...Option) (int, error) {
	o := gatherOptions(opts...)
	red, err := RREF(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	rank := 0
	var i, j int
	for i = 0; i < red.r; i++ {
		for j = 0; j < red.c; j++ {
			if math.Abs(red.data[i*red.c+j]) > o.eps {
				rank++
				break
			}
		}
	}

	return rank, nil
}
