// SPDX-License-Identifier: MIT
// Package: metapattern/generator
//
// errors.go: sentinel errors for the generator package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach the generator name with generatorErrorf.
//   • Option constructors (WithX) panic instead; generators never do.

package generator

import (
	"errors"
	"fmt"
)

// ErrBadExponent indicates a length exponent outside 0..MaxLengthExponent.
var ErrBadExponent = errors.New("generator: length exponent out of range")

// ErrBadLength indicates a negative pattern length.
var ErrBadLength = errors.New("generator: invalid length")

// generatorErrorf wraps err with the generator name: "<method>: <err>".
func generatorErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
