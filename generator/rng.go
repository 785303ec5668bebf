// SPDX-License-Identifier: MIT
// Package generator - randomness source plumbing.
//
// Goals:
//   - Determinism: same seed ⇒ identical patterns across runs and platforms.
//   - Encapsulation: a single factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a Source across goroutines.
package generator

import "math/rand"

// defaultSeed is used when callers pass seed==0 or configure no source at all.
const defaultSeed int64 = 1

// Source yields uniform draws on [0,1). *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a deterministic Source. Policy: seed==0 ⇒ defaultSeed.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// sourceFrom returns cfg.src if present, else a fresh default stream.
func sourceFrom(cfg config) Source {
	if cfg.src != nil {
		return cfg.src
	}
	return NewSource(0)
}
