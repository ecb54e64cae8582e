package gate

import "fmt"

// Gate is a single-qubit gate: a 2×2 matrix of complex64 values in
// row-major order.
//
//	A B
//	C D
//
// No normalization or unitarity check happens at construction; the
// catalogue constructors are unitary by closed form.
type Gate struct {
	A, B complex64 // top row
	C, D complex64 // bottom row
}

// Matrix returns the gate as a row-major [2][2] array.
// Complexity: O(1).
func (g Gate) Matrix() [2][2]complex64 {
	return [2][2]complex64{
		{g.A, g.B},
		{g.C, g.D},
	}
}

// Entries returns the four scalars in row-major order.
func (g Gate) Entries() (a, b, c, d complex64) {
	return g.A, g.B, g.C, g.D
}

// String implements fmt.Stringer as [[a, b], [c, d]], each scalar in the
// default complex64 text form, e.g. (0.70710677+0i).
// Intended for debugging and logging, not for parsing.
func (g Gate) String() string {
	return fmt.Sprintf("[[%v, %v], [%v, %v]]", g.A, g.B, g.C, g.D)
}
