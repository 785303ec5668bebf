// SPDX-License-Identifier: MIT
// Package pattern: sentinel error set.
// All operations return these sentinels (possibly wrapped with an operation tag
// via patternErrorf) and tests MUST check them via errors.Is.
// No operation panics on user-triggered error conditions.

package pattern

import (
	"errors"
	"fmt"
)

var (
	// ErrSizeMismatch indicates that two patterns combined by position have
	// different lengths. No partial result is produced.
	ErrSizeMismatch = errors.New("pattern: size mismatch")

	// ErrIndexOutOfRange indicates an index outside 0..Len()-1.
	// At/Set return it instead of panicking or growing the pattern.
	ErrIndexOutOfRange = errors.New("pattern: index out of range")

	// ErrEmptyReduction is returned by Max/Min when no slot holds a number.
	ErrEmptyReduction = errors.New("pattern: no numeric slot to reduce")

	// ErrBadLength indicates a negative length requested from a constructor.
	ErrBadLength = errors.New("pattern: invalid length")

	// ErrNilPattern indicates a nil *Pattern receiver or operand.
	ErrNilPattern = errors.New("pattern: nil pattern")

	// ErrNilFunc indicates a nil generator or combinator function.
	ErrNilFunc = errors.New("pattern: nil function")

	// ErrZeroPeak is returned by Normalize when the maximum is zero, so no
	// finite scale factor exists.
	ErrZeroPeak = errors.New("pattern: cannot normalize a zero peak")
)

// patternErrorf attaches an operation tag to a sentinel, preserving it for errors.Is.
func patternErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// indexErrorf attaches an operation tag and the offending index.
func indexErrorf(op string, i, n int, err error) error {
	return fmt.Errorf("%s(%d) on length %d: %w", op, i, n, err)
}
