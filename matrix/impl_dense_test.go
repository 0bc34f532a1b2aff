// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mafx/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{{0, 5}, {5, 0}, {-1, 2}, {0, 0}} {
		_, err := matrix.NewDense(tc.rows, tc.cols)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "%dx%d", tc.rows, tc.cols)
	}
}

func TestNewDenseDefaultZero(t *testing.T) {
	m := MustDense(t, 3, 4)
	m.Do(func(i, j int, v float64) bool {
		require.Zero(t, v, "[%d,%d]", i, j)
		return true
	})
}

// TestRowsCols verifies that Rows(), Cols() and Shape() agree.
func TestRowsCols(t *testing.T) {
	m := MustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

func TestNewDenseFrom(t *testing.T) {
	t.Parallel()

	t.Run("copies data", func(t *testing.T) {
		src := [][]float64{{1, 2}, {3, 4}}
		m, err := matrix.NewDenseFrom(2, 2, src)
		require.NoError(t, err)
		src[0][0] = 99
		require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	})

	t.Run("nil data is zeros", func(t *testing.T) {
		m, err := matrix.NewDenseFrom(2, 3, nil)
		require.NoError(t, err)
		CompareExact(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, m)
	})

	t.Run("row count mismatch", func(t *testing.T) {
		_, err := matrix.NewDenseFrom(3, 2, [][]float64{{1, 2}, {3, 4}})
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	})

	t.Run("ragged row", func(t *testing.T) {
		_, err := matrix.NewDenseFrom(2, 2, [][]float64{{1, 2}, {3}})
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	})

	t.Run("non-finite rejected", func(t *testing.T) {
		_, err := matrix.NewDenseFrom(1, 2, [][]float64{{1, math.NaN()}})
		require.ErrorIs(t, err, matrix.ErrNaNInf)
	})
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // alias of ErrOutOfRange
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.89))
	require.Equal(t, 7.89, MustAt(t, m, 1, 2))

	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 0}, {0, 2}})
	clone := m.Clone()
	MustSet(t, clone, 0, 0, 3)
	MustSet(t, m, 1, 1, 5)

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0))
	require.Equal(t, 2.0, MustAt(t, clone, 1, 1))
}

func TestRowColAreSnapshots(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)
	row[0] = 40
	require.Equal(t, 4.0, MustAt(t, m, 1, 0))

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, col)
	col[1] = 60
	require.Equal(t, 6.0, MustAt(t, m, 1, 2))

	rows := m.ToRows()
	rows[0][0] = 10
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

func TestInduced(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	sub, err := m.Induced([]int{0, 2}, []int{2, 0})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{3, 1}, {9, 7}}, sub)

	_, err = m.Induced(nil, []int{0})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = m.Induced([]int{3}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestApply(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * float64(i+1) }))
	CompareExact(t, [][]float64{{1, 2}, {6, 8}}, m)

	err := m.Apply(func(_, _ int, v float64) float64 { return v / 0 })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDo_EarlyExit(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	visits := 0
	m.Do(func(_, _ int, v float64) bool {
		visits++
		return v < 2
	})
	require.Equal(t, 2, visits)
}

// TestNewDenseTooLarge ensures oversized shapes fail instead of overflowing rows×cols.
func TestNewDenseTooLarge(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{math.MaxInt, 2},
		{2, math.MaxInt},
		{1 << 20, 1 << 20},
		{matrix.MaxElements + 1, 1},
	} {
		_, err := matrix.NewDense(tc.rows, tc.cols)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "%dx%d", tc.rows, tc.cols)
	}

	_, err := matrix.NewIdentity(math.MaxInt)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
