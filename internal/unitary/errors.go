// SPDX-License-Identifier: MIT
// Package unitary: sentinel error set.
// Validators return these wrapped with a tag; match via errors.Is.

package unitary

import (
	"errors"
	"fmt"
)

// ErrNotUnitary signals that G†G differs from the identity by more than eps
// in at least one entry.
var ErrNotUnitary = errors.New("unitary: gate is not unitary within eps")

// ErrNaNInf signals that a gate entry is NaN or ±Inf, for which unitarity
// is undefined.
var ErrNaNInf = errors.New("unitary: NaN or Inf encountered")

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
