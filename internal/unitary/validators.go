// SPDX-License-Identifier: MIT
// Package: unitary
//
// Purpose:
//   - Canonical checks for the catalogue invariant G†G = I.
//   - Differences are measured in float64 on the complex128 widening of each
//     entry, so the check itself adds no float32 rounding.

package unitary

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qgates/gate"
)

// maxAbsDiff returns max_{k} |a_k - b_k| over the four entries.
func maxAbsDiff(a, b gate.Gate) float64 {
	var (
		am = a.Matrix()
		bm = b.Matrix()
		d  float64
		i  int
		j  int
	)
	for i = 0; i < 2; i++ {
		for j = 0; j < 2; j++ {
			diff := cmplx.Abs(complex128(am[i][j]) - complex128(bm[i][j]))
			if math.IsNaN(diff) {
				return math.NaN()
			}
			if diff > d {
				d = diff
			}
		}
	}

	return d
}

// finite reports whether every entry of g has finite parts.
func finite(g gate.Gate) bool {
	for _, row := range g.Matrix() {
		for _, z := range row {
			w := complex128(z)
			if cmplx.IsNaN(w) || cmplx.IsInf(w) {
				return false
			}
		}
	}

	return true
}

// ApproxEqual reports whether every entry of a and b differs by at most eps
// (DefaultEpsilon unless overridden). Any NaN entry makes the result false.
func ApproxEqual(a, b gate.Gate, opts ...Option) bool {
	o := gatherOptions(opts...)
	d := maxAbsDiff(a, b)

	return !math.IsNaN(d) && d <= o.eps
}

// Deviation returns max_{k} |(G†G − I)_k|, the distance of g from unitarity.
// NaN entries yield NaN.
// Complexity: O(1).
func Deviation(g gate.Gate) float64 {
	return maxAbsDiff(Mul(Dagger(g), g), gate.ID())
}

// Validate checks that g is unitary within eps.
//
// Returns:
//   - ErrNaNInf if any entry is NaN or ±Inf.
//   - ErrNotUnitary if Deviation(g) > eps.
//
// Both are wrapped with the "Validate" tag.
func Validate(g gate.Gate, opts ...Option) error {
	o := gatherOptions(opts...)
	if !finite(g) {
		return validatorErrorf("Validate", ErrNaNInf)
	}
	if Deviation(g) > o.eps {
		return validatorErrorf("Validate", ErrNotUnitary)
	}

	return nil
}
