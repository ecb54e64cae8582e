package gate

import (
	"math"
	"math/cmplx"
)

// invSqrt2 is 1/√2, the amplitude shared by H, NegH and T.
const invSqrt2 = 1 / math.Sqrt2

// ID returns the identity gate.
//
//	[1, 0]
//	[0, 1]
func ID() Gate {
	return Gate{
		A: 1, B: 0,
		C: 0, D: 1,
	}
}

// H returns the Hadamard gate.
//
//	[1/√2,  1/√2]
//	[1/√2, -1/√2]
func H() Gate {
	return Gate{
		A: complex(invSqrt2, 0), B: complex(invSqrt2, 0),
		C: complex(invSqrt2, 0), D: complex(-invSqrt2, 0),
	}
}

// NegH returns the Hadamard gate multiplied by the global phase -1.
//
//	[-1/√2, -1/√2]
//	[-1/√2,  1/√2]
func NegH() Gate {
	return Gate{
		A: complex(-invSqrt2, 0), B: complex(-invSqrt2, 0),
		C: complex(-invSqrt2, 0), D: complex(invSqrt2, 0),
	}
}

// X returns the Pauli-X (NOT) gate.
//
//	[0, 1]
//	[1, 0]
func X() Gate {
	return Gate{
		A: 0, B: 1,
		C: 1, D: 0,
	}
}

// Y returns the Pauli-Y gate.
//
//	[0, -i]
//	[i,  0]
func Y() Gate {
	return Gate{
		A: 0, B: complex(0, -1),
		C: complex(0, 1), D: 0,
	}
}

// Z returns the Pauli-Z gate.
//
//	[1,  0]
//	[0, -1]
func Z() Gate {
	return Gate{
		A: 1, B: 0,
		C: 0, D: -1,
	}
}

// S returns the S (phase) gate, a quarter turn about Z.
//
//	[1, 0]
//	[0, i]
func S() Gate {
	return Gate{
		A: 1, B: 0,
		C: 0, D: complex(0, 1),
	}
}

// T returns the T gate, an eighth turn about Z.
//
//	[1, 0]
//	[0, (1+i)/√2]
func T() Gate {
	return Gate{
		A: 1, B: 0,
		C: 0, D: complex(invSqrt2, invSqrt2),
	}
}

// R returns the phase-shift gate for angle theta (radians).
//
//	[1, 0]
//	[0, e^{iθ}]
//
// The bottom-right entry is e raised to the complex power iθ via cmplx.Pow,
// so every θ goes through the same path. NaN and ±Inf propagate.
// Complexity: O(1).
func R(theta float32) Gate {
	d := cmplx.Pow(complex(math.E, 0), complex(0, float64(theta)))

	return Gate{
		A: 1, B: 0,
		C: 0, D: complex64(d),
	}
}
