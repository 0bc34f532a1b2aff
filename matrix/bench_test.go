// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/mafx/matrix"
)

// cubicSizes feed the O(n³) kernels; cofactorSizes stay small because the
// determinant is O(n!).
var (
	cubicSizes    = []int{32, 64, 128}
	cofactorSizes = []int{6, 8, 9}
)

var (
	sinkM matrix.Matrix
	sinkF float64
	sinkI int
)

// benchBinary times op on two seeded n×n operands for every size.
func benchBinary(b *testing.B, sizes []int, op func(x, y matrix.Matrix) (matrix.Matrix, error)) {
	b.ReportAllocs()
	for _, n := range sizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := mustDense(b, n, n), mustDense(b, n, n)
			fillDenseRand(b, x, int64(n))
			fillDenseRand(b, y, int64(n)+1)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := op(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkAdd(b *testing.B) { benchBinary(b, cubicSizes, matrix.Add) }

func BenchmarkMul(b *testing.B) { benchBinary(b, cubicSizes, matrix.Mul) }

func BenchmarkRank(b *testing.B) {
	b.ReportAllocs()
	for _, n := range cubicSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustDense(b, n, n)
			fillDenseRand(b, x, 3)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r, err := matrix.Rank(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkI = r
			}
		})
	}
}

func BenchmarkDeterminant(b *testing.B) {
	b.ReportAllocs()
	for _, n := range cofactorSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustDense(b, n, n)
			fillDenseRand(b, x, 5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.Determinant(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}
