// SPDX-License-Identifier: MIT
// Package: unitary
//
// Purpose:
//   - Fixed-size 2×2 kernels over gate.Gate used by the validators.
//   - Row-major, deterministic, allocation-free; every kernel returns a fresh value.

package unitary

import "github.com/katalvlaran/qgates/gate"

// Mul returns the matrix product a·b.
// Complexity: O(1).
func Mul(a, b gate.Gate) gate.Gate {
	return gate.Gate{
		A: a.A*b.A + a.B*b.C,
		B: a.A*b.B + a.B*b.D,
		C: a.C*b.A + a.D*b.C,
		D: a.C*b.B + a.D*b.D,
	}
}

// Dagger returns the conjugate transpose g†.
func Dagger(g gate.Gate) gate.Gate {
	return gate.Gate{
		A: conj(g.A), B: conj(g.C),
		C: conj(g.B), D: conj(g.D),
	}
}

// Scale multiplies every entry of g by k (e.g. a global phase).
func Scale(g gate.Gate, k complex64) gate.Gate {
	return gate.Gate{
		A: k * g.A, B: k * g.B,
		C: k * g.C, D: k * g.D,
	}
}

// conj is the complex64 conjugate; math/cmplx only covers complex128.
func conj(z complex64) complex64 {
	return complex(real(z), -imag(z))
}
