// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers and the options snapshot.
//
// Purpose:
//   - Expose UNEXPORTED kernels and the internal Options state to matrix_test ONLY.
//   - The file name ends in _test.go, so it never ships in production builds.
//
// Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields.

var (
	// FormatValue_TestOnly exposes the per-value text formatter.
	FormatValue_TestOnly = formatValue
	// SkipIndex_TestOnly exposes the minor index builder.
	SkipIndex_TestOnly = skipIndex
)

// Panic message exports to avoid "magic strings" in tests.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid

// EwEqual_TestOnly forwards to the private ewEqual kernel.
func EwEqual_TestOnly(a, b Matrix) bool { return ewEqual(a, b) }

// EwAllClose_TestOnly forwards to the private ewAllClose kernel.
func EwAllClose_TestOnly(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// LaplaceDet_TestOnly runs the raw cofactor recursion on a row-major n×n slice.
func LaplaceDet_TestOnly(a []float64, n int) float64 {
	return laplaceDet(a, n, newMinorScratch(n))
}

// OptionsSnapshot is a read-only copy of the internal Options.
type OptionsSnapshot struct {
	Eps float64
}

// GatherOptionsSnapshot_TestOnly returns the options after internal derivation.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// snapshotOf copies internal fields to a public struct.
func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{Eps: o.eps}
}
