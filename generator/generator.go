// SPDX-License-Identifier: MIT
// Package: metapattern/generator
//
// generator.go: closed-form pattern generators.
//
// Contract:
//   • Every generator returns a fresh *pattern.Pattern or a wrapped sentinel error.
//   • Spiked/Swooshed lengths are powers of two: length = 2^lengthExponent.
//   • O(length·lengthExponent) for Spiked, O(length) otherwise.

package generator

import (
	"math"

	"github.com/katalvlaran/metapattern/pattern"
)

// MaxLengthExponent caps Spiked/Swooshed at 2^24 slots.
const MaxLengthExponent = 24

const (
	methodRandom   = "Random"
	methodSpiked   = "Spiked"
	methodSwooshed = "Swooshed"
)

// ByFunction is pattern.ByFunction, re-exported so generator pipelines need
// only this package for custom closed-form rules.
func ByFunction(length int, fn func(i int) pattern.Value) (*pattern.Pattern, error) {
	return pattern.ByFunction(length, fn)
}

// Random fills length slots with independent uniform draws on [0,1).
// The source comes from WithRand / WithSeed, else the default deterministic stream.
//
// Errors:
//   - ErrBadLength if length < 0.
func Random(length int, opts ...Option) (*pattern.Pattern, error) {
	if length < 0 {
		return nil, generatorErrorf(methodRandom, ErrBadLength)
	}
	src := sourceFrom(newConfig(opts...))

	return pattern.ByFunction(length, func(int) pattern.Value {
		return pattern.Number(src.Float64())
	})
}

// Spiked returns the metrical accent hierarchy of length 2^lengthExponent.
// For each index the largest d in [1, lengthExponent] with idx mod 2^d == 0
// gives the slot (d/lengthExponent)^spikeExponent; indices with no such d
// (all odd indices) are 0. Index 0 therefore always holds the maximum, 1.
//
// Errors:
//   - ErrBadExponent if lengthExponent is outside 0..MaxLengthExponent.
func Spiked(lengthExponent int, opts ...Option) (*pattern.Pattern, error) {
	if err := checkExponent(lengthExponent); err != nil {
		return nil, generatorErrorf(methodSpiked, err)
	}
	cfg := newConfig(opts...)
	length := 1 << lengthExponent
	e := float64(lengthExponent)

	return pattern.ByFunction(length, func(idx int) pattern.Value {
		for d := lengthExponent; d > 0; d-- {
			if idx%(1<<d) == 0 {
				return pattern.Number(math.Pow(float64(d)/e, cfg.spikeExp))
			}
		}
		return pattern.Number(0)
	})
}

// Swooshed returns the ramp (idx/length)^swooshExponent of length
// 2^lengthExponent: 0 at index 0, rising toward (never reaching) 1.
// Higher exponents push the energy toward the end.
//
// Errors:
//   - ErrBadExponent if lengthExponent is outside 0..MaxLengthExponent.
func Swooshed(lengthExponent int, opts ...Option) (*pattern.Pattern, error) {
	if err := checkExponent(lengthExponent); err != nil {
		return nil, generatorErrorf(methodSwooshed, err)
	}
	cfg := newConfig(opts...)
	length := 1 << lengthExponent
	n := float64(length)

	ramp, err := pattern.ByFunction(length, func(idx int) pattern.Value {
		return pattern.Number(float64(idx) / n)
	})
	if err != nil {
		return nil, generatorErrorf(methodSwooshed, err)
	}
	out, err := ramp.Power(pattern.Scalar(cfg.swooshExp))
	if err != nil {
		return nil, generatorErrorf(methodSwooshed, err)
	}
	return out, nil
}

func checkExponent(e int) error {
	if e < 0 || e > MaxLengthExponent {
		return ErrBadExponent
	}
	return nil
}
