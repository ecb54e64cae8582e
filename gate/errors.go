// SPDX-License-Identifier: MIT
// Package gate: sentinel error set.
// Constructors never fail; these sentinels are returned only by the name
// resolution surface (ParseName, Lookup). Callers match them via errors.Is.

package gate

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownGate is returned when a name does not resolve to any gate
	// in the catalogue.
	ErrUnknownGate = errors.New("gate: unknown gate name")

	// ErrAngleRequired indicates that a parameterized gate (R) was requested
	// without exactly one angle.
	ErrAngleRequired = errors.New("gate: parameterized gate requires exactly one angle")

	// ErrUnexpectedAngle indicates that an angle was supplied for a fixed gate.
	ErrUnexpectedAngle = errors.New("gate: fixed gate takes no angle")
)

// lookupErrorf wraps an underlying sentinel with the failing name.
func lookupErrorf(method, name string, err error) error {
	return fmt.Errorf("%s(%q): %w", method, name, err)
}
