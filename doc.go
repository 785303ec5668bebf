// Package metapattern is a small toolkit for building rhythmic accent patterns
// out of fixed-length numeric sequences.
//
// 🚀 What is a pattern?
//
//	A row of slots, each either a number (usually a probability or a
//	velocity in 0..1) or an explicit Rest. Patterns are generated from
//	closed-form rules, combined position by position, smeared with circular
//	convolution and finally played step by step against a MIDI clock.
//
// Subpackages:
//
//	pattern/    the Pattern type, combinators, convolution, ASCII graph
//	generator/  Spiked, Swooshed, Random and ByFunction builders
//	pipeline/   the stock accent pipeline, configured from YAML
//	report/     statistics line + graph output, lipgloss styling
//	player/     step player, MIDI clock mapping, NoteOn/NoteOff, fake clock
//
// Quick example:
//
//	spiked, _ := generator.Spiked(4)
//	ramp, _ := generator.Swooshed(4)
//	shaped, _ := spiked.Multiply(pattern.Vector(ramp))
//	fmt.Print(shaped.RenderASCII())
//
// The cmd/metapattern command wires everything together:
//
//	go run ./cmd/metapattern -stages -play -bpm 128
package metapattern
