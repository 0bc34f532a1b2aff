// SPDX-License-Identifier: MIT

// Package matrix - Dense, the row-major matrix every kernel returns.
//
// Element (i,j) lives at data[i*c+j]. Bounds are checked on every public
// accessor and reported as ErrOutOfRange; nothing here panics on bad indices.
// A Dense never hands out its buffer: Row, Col, ToRows and Clone all copy.

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Method tags for Dense error messages.
const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxApply   = "Apply"
	ctxRow     = "Row"
	ctxCol     = "Col"
	ctxInduce  = "Induced"
	ctxNewFrom = "NewDenseFrom"
)

// String() layout: "[a, b]\n" per row.
const (
	debugRowOpen  = "["
	debugRowClose = "]\n"
	debugSep      = ", "
)

// denseErrorf formats "Dense.<method>(row,col): <err>".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a rows×cols float64 matrix stored row-major.
//
// r and c are positive for every Dense built by this package. When
// validateNaNInf is set (DefaultValidateNaNInf), writes of NaN or ±Inf are
// rejected with ErrNaNInf.
type Dense struct {
	r, c           int
	data           []float64
	validateNaNInf bool
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// MaxElements bounds rows×cols for every Dense; larger shapes are rejected
// before any allocation.
const MaxElements = min(math.MaxInt>>3, 1<<34)

// NewDense returns a rows×cols zero matrix.
//
// Errors: ErrInvalidDimensions unless rows > 0, cols > 0 and
// rows×cols ≤ MaxElements.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if rows > MaxElements/cols {
		return nil, fmt.Errorf("%dx%d exceeds %d elements: %w", rows, cols, MaxElements, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), validateNaNInf: DefaultValidateNaNInf}, nil
}

// NewDenseFrom returns a rows×cols matrix holding a copy of data; nil data
// gives the zero matrix. Later writes to data do not reach the matrix.
//
// Errors:
//   - ErrInvalidDimensions for a non-positive shape,
//   - ErrDimensionMismatch when data is not exactly rows×cols,
//   - ErrNaNInf for a non-finite value.
func NewDenseFrom(rows, cols int, data [][]float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return m, nil
	}
	if len(data) != rows {
		return nil, fmt.Errorf("%s: got %d rows, want %d: %w", ctxNewFrom, len(data), rows, ErrDimensionMismatch)
	}

	for i, row := range data {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxNewFrom, i, len(row), cols, ErrDimensionMismatch)
		}
		if m.validateNaNInf {
			for j, v := range row {
				if isNonFinite(v) {
					return nil, denseErrorf(ctxNewFrom, i, j, ErrNaNInf)
				}
			}
		}
		copy(m.rowSlice(i), row)
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape returns (Rows, Cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// rowSlice aliases row i of the buffer; package-internal only.
func (m *Dense) rowSlice(i int) []float64 { return m.data[i*m.c : (i+1)*m.c] }

// inBounds reports whether (row, col) addresses an element.
func (m *Dense) inBounds(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c
}

// At returns m[row][col].
//
// Errors: ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	if !m.inBounds(row, col) {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Set writes v to m[row][col].
//
// Errors: ErrOutOfRange, ErrNaNInf (non-finite v under the numeric policy).
func (m *Dense) Set(row, col int, v float64) error {
	if !m.inBounds(row, col) {
		return denseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[row*m.c+col] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}

	return append([]float64(nil), m.rowSlice(i)...), nil
}

// Col returns a copy of column j.
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxCol, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := range out {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Clone returns an independent deep copy with the same numeric policy.
func (m *Dense) Clone() Matrix { return m.clone() }

func (m *Dense) clone() *Dense {
	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           append([]float64(nil), m.data...),
		validateNaNInf: m.validateNaNInf,
	}
}

// ToRows returns the contents as newly allocated rows.
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = append([]float64(nil), m.rowSlice(i)...)
	}

	return out
}

// String is a debugging dump, one bracketed row per line. Use FormatText
// for the interchange format.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(debugRowOpen)
		for j, v := range m.rowSlice(i) {
			if j > 0 {
				b.WriteString(debugSep)
			}
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		b.WriteString(debugRowClose)
	}

	return b.String()
}

// Induced copies the submatrix picked by rowsIdx × colsIdx, in the given
// order. Repeated indices repeat rows or columns.
//
// Errors: ErrInvalidDimensions (empty index set), ErrOutOfRange.
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	out, err := NewDense(len(rowsIdx), len(colsIdx))
	if err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxInduce, err)
	}
	out.validateNaNInf = m.validateNaNInf

	for _, cj := range colsIdx {
		if cj < 0 || cj >= m.c {
			return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
		}
	}
	for i, ri := range rowsIdx {
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		dst, src := out.rowSlice(i), m.rowSlice(ri)
		for j, cj := range colsIdx {
			dst[j] = src[cj]
		}
	}

	return out, nil
}

// Do calls f for every element in row-major order until f returns false.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	for idx, v := range m.data {
		if !f(idx/m.c, idx%m.c, v) {
			return
		}
	}
}

// Apply overwrites every element with f(i, j, v) in row-major order.
// A non-finite result under the numeric policy stops the walk with
// ErrNaNInf; elements already visited keep their new values.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j int
	var nv float64
	for idx, v := range m.data {
		i, j = idx/m.c, idx%m.c
		if nv = f(i, j, v); m.validateNaNInf && isNonFinite(nv) {
			return denseErrorf(ctxApply, i, j, ErrNaNInf)
		}
		m.data[idx] = nv
	}

	return nil
}

// toDense returns m when it is already a *Dense, else a copy read through At.
// Kernels call it once and then index the flat buffer directly.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	for idx := range out.data {
		i, j := idx/out.c, idx%out.c
		if out.data[idx], err = m.At(i, j); err != nil {
			return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
		}
	}

	return out, nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
