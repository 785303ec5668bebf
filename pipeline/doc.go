// SPDX-License-Identifier: MIT

// Package pipeline assembles the stock accent pipeline: a spiked accent
// hierarchy is turned into hit chances, shaped by a power ramp, normalised and
// finally thresholded against uniform noise to decide which steps play.
//
// Stages (in order, all exposed on Result for inspection):
//
//	spiked      Spiked(e)                        accent hierarchy, index 0 = 1
//	chances     2^(v*accent_depth) * chance_scale
//	swooshed    Swooshed(e)                      (i/n)^swoosh_exponent
//	shaped      chances * swooshed
//	normalized  shaped / max(shaped)
//	kernel      zeros with taps set from Config.Kernel
//	convolved   swooshed ⊛ kernel                 circular
//	draws       Random(n)                        uniform noise
//	final       normalized > draw ? hit : Rest
//
// Configuration is a YAML document (see Config); every omitted field keeps
// its default. Generate is deterministic for a fixed Config, seed included.
package pipeline
