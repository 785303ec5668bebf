// Package generator builds patterns from closed-form rules: hierarchical
// spikes, power-law ramps, uniform noise and arbitrary index functions.
//
// The package offers the following key components:
//
//   - Generators:
//     – Spiked:    metrical accent hierarchy of length 2^e (index 0 strongest).
//     – Swooshed:  ramp (i/length)^x rising from 0 toward 1.
//     – Random:    independent uniform draws on [0,1).
//     – ByFunction: escape hatch for any slot rule i -> Value.
//   - Configuration primitives (functional options):
//     – WithSpikeExponent, WithSwooshExponent: shape the curves.
//     – WithSeed, WithRand: inject the randomness source.
//
// Determinism:
//
//	Nothing reads ambient global randomness. Random draws come from the
//	Source supplied via WithRand, or a stream seeded via WithSeed, or a fixed
//	default stream when neither is given (seed 0 also selects the default).
//
// Errors are package sentinels (errors.go); option constructors panic on
// meaningless values, generators never panic.
package generator
