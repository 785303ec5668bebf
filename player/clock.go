// SPDX-License-Identifier: MIT
// Package: metapattern/player
//
// clock.go: ticker-driven stand-in for an external MIDI clock.

package player

import (
	"context"
	"fmt"
	"math"
	"time"
)

// FakeClock emits MIDI clock pulses at a fixed tempo.
type FakeClock struct {
	BPM float64
}

// Interval returns the duration of one clock pulse: 60s / BPM / 24.
func (c FakeClock) Interval() (time.Duration, error) {
	if c.BPM <= 0 || math.IsNaN(c.BPM) || math.IsInf(c.BPM, 0) {
		return 0, fmt.Errorf("FakeClock(%v): %w", c.BPM, ErrBadTempo)
	}
	d := time.Duration(float64(time.Minute) / c.BPM / PulsesPerQuarter)
	if d <= 0 {
		return 0, fmt.Errorf("FakeClock(%v): %w", c.BPM, ErrBadTempo)
	}
	return d, nil
}

// Run calls fn with pulse counts 0, 1, 2, ... one per Interval until ctx is
// done, then returns ctx.Err(). The first pulse fires immediately. fn runs on
// the caller's goroutine, so a slow fn delays (never overlaps) later pulses.
func (c FakeClock) Run(ctx context.Context, fn func(clock int64)) error {
	d, err := c.Interval()
	if err != nil {
		return err
	}
	ticker := time.NewTicker(d)
	defer ticker.Stop()

	var clock int64
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn(clock)
		clock++

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
