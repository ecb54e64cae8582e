package gate_test

import (
	"fmt"

	"github.com/katalvlaran/qgates/gate"
)

// ExampleX prints the Pauli-X gate in its canonical rendering.
func ExampleX() {
	fmt.Println(gate.X())
	// Output:
	// [[(0+0i), (1+0i)], [(1+0i), (0+0i)]]
}

// ExampleH shows the float32 rounding of 1/√2.
func ExampleH() {
	fmt.Println(gate.H())
	// Output:
	// [[(0.70710677+0i), (0.70710677+0i)], [(0.70710677+0i), (-0.70710677+0i)]]
}

// ExampleR builds the phase-shift gate at θ = 0, which is the identity.
func ExampleR() {
	fmt.Println(gate.R(0))
	// Output:
	// [[(1+0i), (0+0i)], [(0+0i), (1+0i)]]
}

// ExampleLookup resolves gates by name.
func ExampleLookup() {
	s, _ := gate.Lookup("phase")
	fmt.Println(s)

	_, err := gate.Lookup("r")
	fmt.Println(err)
	// Output:
	// [[(1+0i), (0+0i)], [(0+0i), (0+1i)]]
	// Lookup("r"): gate: parameterized gate requires exactly one angle
}
