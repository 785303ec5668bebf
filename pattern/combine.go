// SPDX-License-Identifier: MIT
// Package: pattern
//
// Purpose:
//   - Elementwise transforms (Remap) and broadcast arithmetic between a pattern
//     and either a scalar or another pattern of equal length.
//   - One explicit dispatch point (ApplyScalarOrVector) that switches on the
//     Operand tag instead of inspecting runtime types.
//
// Determinism:
//   - Fixed 0..n-1 loop order; fn sees indices in ascending order.
//   - Outputs are freshly allocated; operands are never mutated.

package pattern

import "math"

const (
	opApplyVector = "ApplyVector"
	opApply       = "ApplyScalarOrVector"
	opAdd         = "Add"
	opMultiply    = "Multiply"
	opPower       = "Power"
	opNormalize   = "Normalize"
)

// UnaryFunc maps one slot (and its index) to a new slot.
type UnaryFunc func(v Value, i int) Value

// BinaryFunc combines slot a with operand b at index i.
// For scalar broadcasts b is Number(scalar) at every index.
type BinaryFunc func(a, b Value, i int) Value

// operandKind tags the Operand variant.
type operandKind uint8

const (
	kindScalar operandKind = iota
	kindVector
)

// Operand is the second argument of ApplyScalarOrVector and the arithmetic
// helpers: either a single number broadcast to every slot, or a pattern
// combined position by position. Build it with Scalar or Vector.
type Operand struct {
	kind   operandKind
	scalar float64
	vector *Pattern
}

// Scalar wraps x as a broadcast operand.
func Scalar(x float64) Operand {
	return Operand{kind: kindScalar, scalar: x}
}

// Vector wraps p as a positional operand.
func Vector(p *Pattern) Operand {
	return Operand{kind: kindVector, vector: p}
}

// IsVector reports whether the operand carries a pattern.
func (o Operand) IsVector() bool {
	return o.kind == kindVector
}

// Remap returns a pattern whose slot i is fn(p[i], i). fn may return Rest.
// A nil fn yields an unchanged copy.
func (p *Pattern) Remap(fn UnaryFunc) *Pattern {
	n := p.Len()
	out := make([]Value, n)
	for i := 0; i < n; i++ {
		if fn == nil {
			out[i] = p.values[i]
			continue
		}
		out[i] = fn(p.values[i], i)
	}
	return &Pattern{values: out}
}

// ApplyScalar broadcasts scalar against every slot of a: out[i] = fn(a[i], Number(scalar), i).
// A nil a is treated as an empty pattern; a nil fn yields an unchanged copy.
// Complexity: O(n).
func ApplyScalar(a *Pattern, scalar float64, fn BinaryFunc) *Pattern {
	if fn == nil {
		return a.Clone()
	}
	n := a.Len()
	out := make([]Value, n)
	b := Number(scalar)
	for i := 0; i < n; i++ {
		out[i] = fn(a.values[i], b, i)
	}
	return &Pattern{values: out}
}

// ApplyVector combines a and b position by position: out[i] = fn(a[i], b[i], i).
//
// Errors:
//   - ErrNilPattern if a or b is nil.
//   - ErrSizeMismatch if a.Len() != b.Len(); no partial result is returned.
//
// Complexity: O(n).
func ApplyVector(a, b *Pattern, fn BinaryFunc) (*Pattern, error) {
	if a == nil || b == nil {
		return nil, patternErrorf(opApplyVector, ErrNilPattern)
	}
	if fn == nil {
		return nil, patternErrorf(opApplyVector, ErrNilFunc)
	}
	n := a.Len()
	if n != b.Len() {
		return nil, patternErrorf(opApplyVector, ErrSizeMismatch)
	}
	out := make([]Value, n)
	for i := 0; i < n; i++ {
		out[i] = fn(a.values[i], b.values[i], i)
	}
	return &Pattern{values: out}, nil
}

// ApplyScalarOrVector dispatches on the operand tag: Vector operands go to
// ApplyVector, Scalar operands to ApplyScalar.
//
// Errors:
//   - ErrNilFunc if fn is nil.
//   - Anything ApplyVector returns.
func ApplyScalarOrVector(a *Pattern, other Operand, fn BinaryFunc) (*Pattern, error) {
	if fn == nil {
		return nil, patternErrorf(opApply, ErrNilFunc)
	}
	switch other.kind {
	case kindVector:
		return ApplyVector(a, other.vector, fn)
	default:
		return ApplyScalar(a, other.scalar, fn), nil
	}
}

var (
	addFn = lift(func(a, b float64) float64 { return a + b })
	mulFn = lift(func(a, b float64) float64 { return a * b })
	powFn = lift(math.Pow)
)

// Add returns p + other. A Rest on either side stays a Rest.
func (p *Pattern) Add(other Operand) (*Pattern, error) {
	return p.arith(opAdd, other, addFn)
}

// Multiply returns p * other. A Rest on either side stays a Rest.
func (p *Pattern) Multiply(other Operand) (*Pattern, error) {
	return p.arith(opMultiply, other, mulFn)
}

// Power returns p ^ other following math.Pow; a negative base with a
// fractional exponent yields NaN. A Rest on either side stays a Rest.
func (p *Pattern) Power(other Operand) (*Pattern, error) {
	return p.arith(opPower, other, powFn)
}

// Normalize scales p so that its maximum becomes 1.
//
// Errors:
//   - ErrEmptyReduction when no slot holds a number.
//   - ErrZeroPeak when the maximum is 0.
func (p *Pattern) Normalize() (*Pattern, error) {
	peak, err := p.Max()
	if err != nil {
		return nil, patternErrorf(opNormalize, err)
	}
	if peak == 0 {
		return nil, patternErrorf(opNormalize, ErrZeroPeak)
	}
	return ApplyScalar(p, 1/peak, mulFn), nil
}

func (p *Pattern) arith(op string, other Operand, fn BinaryFunc) (*Pattern, error) {
	if p == nil {
		return nil, patternErrorf(op, ErrNilPattern)
	}
	out, err := ApplyScalarOrVector(p, other, fn)
	if err != nil {
		return nil, patternErrorf(op, err)
	}
	return out, nil
}
