// SPDX-License-Identifier: MIT
// Package: metapattern/pattern
//
// value.go: the slot variant: Number(x) or Rest.
//
// Contract:
//   - The zero Value is Rest, so a freshly declared Value never reads as 0.
//   - Arithmetic helpers (lift) propagate Rest: Rest op x == x op Rest == Rest.
//   - Statistics ignore Rest for Max/Min and count it as 0 for Integral.

package pattern

import "strconv"

// restText is how a Rest prints in String and debugging output.
const restText = "-"

// Value is the content of one pattern slot: either a number or a Rest.
type Value struct {
	x  float64 // numeric payload; meaningful only when ok
	ok bool    // true ⇒ Number, false ⇒ Rest
}

// Rest is the explicit "no event here" marker.
var Rest = Value{}

// Number wraps x as a numeric slot value.
func Number(x float64) Value {
	return Value{x: x, ok: true}
}

// Float returns the number and true, or (0, false) for a Rest.
func (v Value) Float() (float64, bool) {
	return v.x, v.ok
}

// IsRest reports whether v is the Rest marker.
func (v Value) IsRest() bool {
	return !v.ok
}

// OrZero returns the number, or 0 for a Rest.
func (v Value) OrZero() float64 {
	if !v.ok {
		return 0
	}
	return v.x
}

// String renders numbers in shortest form and Rest as "-".
func (v Value) String() string {
	if !v.ok {
		return restText
	}
	return strconv.FormatFloat(v.x, 'g', -1, 64)
}

// lift turns a float operator into a BinaryFunc that propagates Rest.
func lift(op func(a, b float64) float64) BinaryFunc {
	return func(a, b Value, _ int) Value {
		if !a.ok || !b.ok {
			return Rest
		}
		return Number(op(a.x, b.x))
	}
}
