// SPDX-License-Identifier: MIT

// Package pattern - fixed-length storage & safe accessors.
//
// Purpose:
//   - Hold an ordered, fixed-length slice of Values; the length never changes after construction.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking,
//     and never grow the backing storage.
//   - Keep constructors copy-on-input so no caller slice aliases a Pattern.
//
// Complexity quicksheet:
//   - New/Prefilled/ByFunction: O(n); At/Set: O(1); Clone/Values/Floats: O(n).

package pattern

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	opAt         = "At"
	opSet        = "Set"
	opPrefilled  = "Prefilled"
	opByFunction = "ByFunction"
)

// ---------- formatting literals ----------

const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = " "
)

// Pattern is a fixed-length ordered sequence of slots indexed 0..Len()-1.
// The zero value is an empty pattern of length 0.
type Pattern struct {
	values []Value // len(values) is the immutable pattern length
}

var _ fmt.Stringer = (*Pattern)(nil)

// New wraps a copy of values as a Pattern; Len() == len(values).
// Complexity: O(n).
func New(values []Value) *Pattern {
	buf := make([]Value, len(values))
	copy(buf, values)

	return &Pattern{values: buf}
}

// FromFloats builds a Pattern whose slots are all numbers.
// Complexity: O(n).
func FromFloats(xs ...float64) *Pattern {
	buf := make([]Value, len(xs))
	for i, x := range xs {
		buf[i] = Number(x)
	}

	return &Pattern{values: buf}
}

// Prefilled returns a Pattern of length slots, each set to fill.
// Pass Number(0) for the conventional default, or use Zeros.
//
// Errors:
//   - ErrBadLength if length < 0.
func Prefilled(length int, fill Value) (*Pattern, error) {
	if length < 0 {
		return nil, patternErrorf(opPrefilled, ErrBadLength)
	}
	buf := make([]Value, length)
	for i := range buf {
		buf[i] = fill
	}

	return &Pattern{values: buf}, nil
}

// Zeros returns Prefilled(length, Number(0)).
func Zeros(length int) (*Pattern, error) {
	return Prefilled(length, Number(0))
}

// ByFunction returns a Pattern whose slot i equals fn(i) for i in 0..length-1.
// fn is called exactly once per index, in ascending order.
//
// Errors:
//   - ErrBadLength if length < 0.
//   - ErrNilFunc if fn is nil.
func ByFunction(length int, fn func(i int) Value) (*Pattern, error) {
	if length < 0 {
		return nil, patternErrorf(opByFunction, ErrBadLength)
	}
	if fn == nil {
		return nil, patternErrorf(opByFunction, ErrNilFunc)
	}
	buf := make([]Value, length)
	for i := 0; i < length; i++ {
		buf[i] = fn(i)
	}

	return &Pattern{values: buf}, nil
}

// Len returns the number of slots. A nil Pattern has length 0.
func (p *Pattern) Len() int {
	if p == nil {
		return 0
	}
	return len(p.values)
}

// At returns the slot at index i.
//
// Errors:
//   - ErrIndexOutOfRange when i is outside 0..Len()-1.
func (p *Pattern) At(i int) (Value, error) {
	n := p.Len()
	if i < 0 || i >= n {
		return Rest, indexErrorf(opAt, i, n, ErrIndexOutOfRange)
	}
	return p.values[i], nil
}

// Set overwrites the slot at index i in place.
// The pattern never grows: writing past the end fails.
//
// Errors:
//   - ErrIndexOutOfRange when i is outside 0..Len()-1.
func (p *Pattern) Set(i int, v Value) error {
	n := p.Len()
	if i < 0 || i >= n {
		return indexErrorf(opSet, i, n, ErrIndexOutOfRange)
	}
	p.values[i] = v

	return nil
}

// Values returns a copy of the slots.
func (p *Pattern) Values() []Value {
	out := make([]Value, p.Len())
	if p != nil {
		copy(out, p.values)
	}
	return out
}

// Floats returns a copy of the slots as numbers, with rests read as 0.
func (p *Pattern) Floats() []float64 {
	out := make([]float64, p.Len())
	for i := range out {
		out[i] = p.values[i].OrZero()
	}
	return out
}

// Clone returns an independent copy of p.
func (p *Pattern) Clone() *Pattern {
	return &Pattern{values: p.Values()}
}

// Equal reports whether both patterns have the same length and identical slots.
// Numbers compare with ==, so NaN slots never compare equal.
func (p *Pattern) Equal(other *Pattern) bool {
	n := p.Len()
	if n != other.Len() {
		return false
	}
	for i := 0; i < n; i++ {
		if p.values[i] != other.values[i] {
			return false
		}
	}
	return true
}

// String renders the slots as "[a b - c]".
func (p *Pattern) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i := 0; i < p.Len(); i++ {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(p.values[i].String())
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
