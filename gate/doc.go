// Package gate is the canonical catalogue of single-qubit quantum gates.
//
// The gate package provides:
//
//   - Gate, a 2×2 complex64 matrix stored row-major as four scalar fields
//     (A B on the top row, C D on the bottom row).
//   - Pure constructors for the standard named gates: ID, H, NegH, X, Y, Z,
//     S and T.
//   - R(θ), the phase-shift family, whose bottom-right entry is e^{iθ}
//     computed through the general complex power routine.
//   - Name, Names and Lookup for resolving gates from their textual names.
//
// Every constructor is total, allocation-free and safe for concurrent use.
// Gates are plain values: there are no mutating methods, so a "new" gate is
// always a fresh value returned by copy.
//
// Composition of gates, application to state vectors and multi-qubit gates
// belong to the circuit layer that consumes this package.
//
//	go get github.com/katalvlaran/qgates/gate
package gate
