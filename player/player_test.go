// SPDX-License-Identifier: MIT

package player_test

import (
	"context"
	"testing"
	"time"

	"github.com/katalvlaran/metapattern/pattern"
	"github.com/katalvlaran/metapattern/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptyPattern(t *testing.T) {
	t.Parallel()

	_, err := player.New(nil)
	require.ErrorIs(t, err, player.ErrEmptyPattern)
	_, err = player.New(pattern.New(nil))
	require.ErrorIs(t, err, player.ErrEmptyPattern)
}

func TestPlayAtStep_DedupAndWrap(t *testing.T) {
	t.Parallel()

	p := pattern.New([]pattern.Value{pattern.Number(0.8), pattern.Rest, pattern.Number(0.5)})
	pl, err := player.New(p)
	require.NoError(t, err)

	v, ok := pl.PlayAtStep(0)
	require.True(t, ok)
	assert.Equal(t, pattern.Number(0.8), v)

	_, ok = pl.PlayAtStep(0)
	assert.False(t, ok, "same step plays once")

	v, ok = pl.PlayAtStep(1)
	require.True(t, ok)
	assert.True(t, v.IsRest())

	v, ok = pl.PlayAtStep(5)
	require.True(t, ok)
	assert.Equal(t, pattern.Number(0.5), v, "5 mod 3 == 2")

	v, ok = pl.PlayAtStep(-1)
	require.True(t, ok)
	assert.Equal(t, pattern.Number(0.5), v, "negative steps wrap")

	pl.Reset()
	_, ok = pl.PlayAtStep(-1)
	assert.True(t, ok, "Reset forgets the last step")
}

func TestClockToStep(t *testing.T) {
	t.Parallel()

	cases := map[int64]int64{
		0: 0, 5: 0, 6: 1, 11: 1, 12: 2,
		player.PulsesPerBar:     player.StepsPerBar,
		player.PulsesPerBar + 7: player.StepsPerBar + 1,
		-1:                      -1,
		-6:                      -1,
		-7:                      -2,
	}
	for clock, want := range cases {
		assert.Equal(t, want, player.ClockToStep(clock), "clock %d", clock)
	}
}

func TestPlayAtClock_OncePerStep(t *testing.T) {
	t.Parallel()

	p := pattern.FromFloats(1, 0.5)
	pl, err := player.New(p)
	require.NoError(t, err)

	var fired []pattern.Value
	for clock := int64(0); clock < 12; clock++ {
		if v, ok := pl.PlayAtClock(clock); ok {
			fired = append(fired, v)
		}
	}
	assert.Equal(t, []pattern.Value{pattern.Number(1), pattern.Number(0.5)}, fired)
}

func TestVelocity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   pattern.Value
		vel  uint8
		play bool
	}{
		{pattern.Number(1), 127, true},
		{pattern.Number(0.8), 102, true},
		{pattern.Number(0.001), 1, true},
		{pattern.Number(3), 127, true},
		{pattern.Number(0), 0, false},
		{pattern.Number(-0.5), 0, false},
		{pattern.Rest, 0, false},
	}
	for _, tc := range cases {
		vel, ok := player.Velocity(tc.in)
		assert.Equal(t, tc.play, ok, "%v", tc.in)
		assert.Equal(t, tc.vel, vel, "%v", tc.in)
	}
}

func TestVoice_Messages(t *testing.T) {
	t.Parallel()

	vc := player.Voice{Channel: 2, Key: 36}

	msg, ok := vc.NoteOn(pattern.Number(0.8))
	require.True(t, ok)
	var ch, key, vel uint8
	require.True(t, msg.GetNoteOn(&ch, &key, &vel))
	assert.Equal(t, uint8(2), ch)
	assert.Equal(t, uint8(36), key)
	assert.Equal(t, uint8(102), vel)

	_, ok = vc.NoteOn(pattern.Rest)
	assert.False(t, ok)

	assert.Equal(t, []byte{0x82, 36, 0}, []byte(vc.NoteOff()))
}

func TestFakeClock_Interval(t *testing.T) {
	t.Parallel()

	d, err := player.FakeClock{BPM: 125}.Interval()
	require.NoError(t, err)
	assert.Equal(t, 20*time.Millisecond, d)

	_, err = player.FakeClock{BPM: 0}.Interval()
	require.ErrorIs(t, err, player.ErrBadTempo)
	err = player.FakeClock{BPM: -90}.Run(context.Background(), func(int64) {})
	require.ErrorIs(t, err, player.ErrBadTempo)
}

func TestFakeClock_RunUntilCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var clocks []int64
	err := player.FakeClock{BPM: 6000}.Run(ctx, func(clock int64) {
		clocks = append(clocks, clock)
		if len(clocks) == 4 {
			cancel()
		}
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []int64{0, 1, 2, 3}, clocks)
}
