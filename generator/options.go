// SPDX-License-Identifier: MIT
// Package: metapattern/generator
//
// options.go: functional options and the resolved generator configuration.
//
// Contract:
//   • Options are functional (type Option func(*config)), applied in order, last wins.
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: randomness flows only through WithSeed / WithRand.

package generator

import "math"

// Deterministic defaults.
const (
	DefaultSpikeExponent  = 1.0 // linear accent hierarchy
	DefaultSwooshExponent = 3.0 // cubic ramp, energy concentrated near the end
)

// Option customizes a generator call.
type Option func(*config)

// config is the single source of truth for generator knobs; passed by value.
type config struct {
	spikeExp  float64
	swooshExp float64
	src       Source // nil ⇒ default deterministic stream
}

func newConfig(opts ...Option) config {
	cfg := config{
		spikeExp:  DefaultSpikeExponent,
		swooshExp: DefaultSwooshExponent,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed seeds a fresh deterministic stream for Random. seed==0 selects the default seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.src = NewSource(seed)
	}
}

// WithRand injects an explicit randomness source. Panics on nil.
func WithRand(src Source) Option {
	if src == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *config) {
		c.src = src
	}
}

// WithSpikeExponent shapes Spiked: slot = (d/e)^x. Panics if x is NaN or ±Inf.
func WithSpikeExponent(x float64) Option {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		panic("generator: WithSpikeExponent(non-finite)")
	}
	return func(c *config) {
		c.spikeExp = x
	}
}

// WithSwooshExponent shapes Swooshed: slot = (i/length)^x. Panics if x is NaN or ±Inf.
func WithSwooshExponent(x float64) Option {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		panic("generator: WithSwooshExponent(non-finite)")
	}
	return func(c *config) {
		c.swooshExp = x
	}
}
