// SPDX-License-Identifier: MIT
// Package: metapattern/player
//
// player.go: step lookup with per-step deduplication and clock mapping.

package player

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/metapattern/pattern"
)

// Clock resolution.
const (
	PulsesPerQuarter = 24
	PulsesPerBar     = 4 * PulsesPerQuarter
	StepsPerBar      = 16
)

var (
	// ErrEmptyPattern indicates a player built on a nil or zero-length pattern.
	ErrEmptyPattern = errors.New("player: pattern is empty")

	// ErrBadTempo indicates a non-positive or non-finite BPM.
	ErrBadTempo = errors.New("player: tempo must be positive")
)

// Player yields pattern slots for sixteenth steps, once per distinct step.
// Not safe for concurrent use.
type Player struct {
	pattern  *pattern.Pattern
	lastStep int64
	played   bool
}

// New returns a Player over p. p is read, never modified.
func New(p *pattern.Pattern) (*Player, error) {
	if p.Len() == 0 {
		return nil, fmt.Errorf("player.New: %w", ErrEmptyPattern)
	}
	return &Player{pattern: p}, nil
}

// ClockToStep converts a MIDI clock pulse count to a sixteenth-step index.
// Negative clocks floor toward -Inf so steps stay contiguous across zero.
func ClockToStep(clock int64) int64 {
	num := clock * StepsPerBar
	step := num / PulsesPerBar
	if num%PulsesPerBar != 0 && num < 0 {
		step--
	}
	return step
}

// PlayAtStep returns the slot for step and true the first time a step is
// seen; repeated calls for the same step return (Rest, false). Steps wrap
// modulo the pattern length, negative steps included.
func (pl *Player) PlayAtStep(step int64) (pattern.Value, bool) {
	if pl.played && step == pl.lastStep {
		return pattern.Rest, false
	}
	pl.lastStep, pl.played = step, true

	n := int64(pl.pattern.Len())
	idx := step % n
	if idx < 0 {
		idx += n
	}
	// idx is always in range, so At cannot fail.
	v, _ := pl.pattern.At(int(idx))
	return v, true
}

// PlayAtClock is PlayAtStep(ClockToStep(clock)).
func (pl *Player) PlayAtClock(clock int64) (pattern.Value, bool) {
	return pl.PlayAtStep(ClockToStep(clock))
}

// Reset forgets the last played step.
func (pl *Player) Reset() {
	pl.lastStep, pl.played = 0, false
}
