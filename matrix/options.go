// SPDX-License-Identifier: MIT

// Package matrix - tolerance options.
//
// Predicates over stored values (symmetric, diagonal, triangular, scalar)
// compare exactly. The epsilon set here applies only where a computed
// product or reduced form is compared: IsOrthogonal, NilpotencyIndex, Rank.
// Option constructors panic on nonsensical arguments; that is a
// programming error, not input.
package matrix

// Numeric policy.
const (
	// DefaultEpsilon defines the non-negative tolerance used when comparing
	// computed results against exact targets (identity, zero rows, zero matrix).
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// Random builder range (inclusive on both ends).
const (
	RandomMin = 0
	RandomMax = 9
)

// NotNilpotent is the NilpotencyIndex sentinel for matrices with no zero power
// within the dimension bound.
const NotNilpotent = -1

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates Options; used by tolerance-aware kernels.
type Option func(*Options)

// Options holds the effective numeric policy for a single call.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// WithEpsilon sets the comparison tolerance for computed results.
// Panics if eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithExact disables the tolerance (eps = 0); computed results must match exactly.
func WithExact() Option {
	return func(o *Options) { o.eps = 0 }
}

// Epsilon returns the effective tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// NewMatrixOptions resolves opts on top of the defaults.
// Exposed for callers that want to inspect the effective policy.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user in order over the defaults; the last setter wins.
func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, set := range user {
		set(&o)
	}

	return o
}
