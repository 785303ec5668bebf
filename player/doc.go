// Package player reads a finished pattern on clock ticks, the way a step
// sequencer consumes one: every sixteenth step it looks up slot
// step mod Len() and turns numeric hits into MIDI note messages.
//
// Timing model:
//
//	MIDI clock runs at 24 pulses per quarter note, 96 per 4/4 bar. A bar has
//	16 steps, so one step spans 6 clock pulses. ClockToStep converts a running
//	pulse count into a step index; Player deduplicates repeated steps so each
//	step fires at most once however many pulses land on it.
//
// FakeClock drives a pulse counter from a ticker at a fixed tempo until its
// context is cancelled. It stands in for an external MIDI clock source.
package player
