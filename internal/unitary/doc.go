// Package unitary verifies catalogue gates against the unitarity invariant
// G†G = I under an explicit epsilon policy.
//
// It carries the small 2×2 kernels (Mul, Dagger, Scale) the checks need.
// These kernels are internal tooling for tests and the qgates check command;
// they are not a public composition API.
package unitary
