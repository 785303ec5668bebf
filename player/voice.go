// SPDX-License-Identifier: MIT
// Package: metapattern/player
//
// voice.go: slot value → MIDI note messages.

package player

import (
	"math"

	"github.com/katalvlaran/metapattern/pattern"
	"gitlab.com/gomidi/midi/v2"
)

const (
	maxVelocity = 127
	minVelocity = 1 // velocity 0 would read as NoteOff
	maxData     = 127
	maxChannel  = 15
)

// Voice is the MIDI destination of one pattern: a channel (0-15) and a key (0-127).
type Voice struct {
	Channel uint8
	Key     uint8
}

// Velocity maps a slot to a MIDI velocity: round(v*127) clamped to 1..127.
// Rests, NaN and values ≤ 0 are silent (ok == false).
func Velocity(v pattern.Value) (vel uint8, ok bool) {
	x, isNum := v.Float()
	if !isNum || math.IsNaN(x) || x <= 0 {
		return 0, false
	}
	scaled := math.Round(x * maxVelocity)
	switch {
	case scaled < minVelocity:
		return minVelocity, true
	case scaled > maxVelocity:
		return maxVelocity, true
	}
	return uint8(scaled), true
}

// NoteOn returns the NoteOn message for v, or false when v is silent.
func (vc Voice) NoteOn(v pattern.Value) (midi.Message, bool) {
	vel, ok := Velocity(v)
	if !ok {
		return nil, false
	}
	return midi.NoteOn(vc.channel(), vc.key(), vel), true
}

// NoteOff returns the matching NoteOff message.
func (vc Voice) NoteOff() midi.Message {
	return midi.NoteOff(vc.channel(), vc.key())
}

func (vc Voice) channel() uint8 {
	if vc.Channel > maxChannel {
		return maxChannel
	}
	return vc.Channel
}

func (vc Voice) key() uint8 {
	if vc.Key > maxData {
		return maxData
	}
	return vc.Key
}
