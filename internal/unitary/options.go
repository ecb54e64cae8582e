// SPDX-License-Identifier: MIT

// Package unitary: functional configuration for the numeric policy.
//   - Default* constants are the single source of truth.
//   - WithX constructors panic on nonsensical values (programmer error).
//   - gatherOptions resolves user options over defaults.
package unitary

import "math"

// DefaultEpsilon is the entrywise tolerance used by ApproxEqual and Validate.
// float32 catalogue constants are accurate to ~6e-8; 1e-6 leaves headroom for
// one 2×2 product.
const DefaultEpsilon = 1e-6

const panicEpsilonInvalid = "unitary: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// WithEpsilon sets the entrywise tolerance. Panics if eps is NaN, ±Inf or
// negative.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions applies user options over the defaults, in order.
func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
