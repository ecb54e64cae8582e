// Package qgates is the canonical catalogue of single-qubit quantum gates
// for circuit simulators built in Go.
//
// What is inside:
//
//	gate/        — the Gate value type (2×2 complex64, row-major) and its
//	               constructors: ID, H, NegH, X, Y, Z, S, T and R(θ)
//	cmd/qgates/  — a small CLI to list, show and unitarity-check the catalogue
//
// Every gate is a plain value produced by a pure function: no shared state,
// no failure modes, safe for concurrent use. Composition, state-vector
// application and multi-qubit gates belong to the circuit layer above.
//
// Quick ASCII example, the Hadamard gate:
//
//	    ┌                ┐
//	    │ 1/√2    1/√2   │
//	    │ 1/√2   -1/√2   │
//	    └                ┘
//
//	go get github.com/katalvlaran/qgates/gate
package qgates
