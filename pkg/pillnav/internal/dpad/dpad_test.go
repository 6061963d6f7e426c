package dpad

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/pillnav/pkg/pillnav/constants"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestInput() (*Input, *fakeClock) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	in := New()
	in.now = func() time.Time { return clock.now }
	in.Reset()
	return &in, clock
}

func TestInput_PressSteps(t *testing.T) {
	t.Parallel()

	in, _ := newTestInput()

	assert.Equal(t, -1, in.SetHeld(constants.VirtualButtonLeft, true))
	assert.Equal(t, 0, in.SetHeld(constants.VirtualButtonLeft, false))
	assert.Equal(t, 1, in.SetHeld(constants.VirtualButtonRight, true))
	assert.Equal(t, 0, in.SetHeld(constants.VirtualButtonA, true))
	assert.True(t, in.IsHeld())
}

func TestInput_RepeatTiming(t *testing.T) {
	t.Parallel()

	in, clock := newTestInput()
	in.SetHeld(constants.VirtualButtonRight, true)

	clock.advance(399 * time.Millisecond)
	assert.Equal(t, 0, in.Update(), "no repeat before the initial delay")

	clock.advance(time.Millisecond)
	assert.Equal(t, 1, in.Update(), "first repeat at 400ms")

	clock.advance(149 * time.Millisecond)
	assert.Equal(t, 0, in.Update())

	clock.advance(time.Millisecond)
	assert.Equal(t, 1, in.Update(), "then every 150ms")

	clock.advance(150 * time.Millisecond)
	assert.Equal(t, 1, in.Update())
}

func TestInput_ReleaseStopsRepeat(t *testing.T) {
	t.Parallel()

	in, clock := newTestInput()
	in.SetHeld(constants.VirtualButtonLeft, true)
	in.SetHeld(constants.VirtualButtonLeft, false)

	clock.advance(time.Second)
	assert.False(t, in.IsHeld())
	assert.Equal(t, 0, in.Update())
}

func TestInput_LeftWinsWhenBothHeld(t *testing.T) {
	t.Parallel()

	in, clock := newTestInput()
	in.SetHeld(constants.VirtualButtonRight, true)
	in.SetHeld(constants.VirtualButtonLeft, true)

	clock.advance(400 * time.Millisecond)
	assert.Equal(t, -1, in.Update())
}

func TestInput_NewPressRestartsDelay(t *testing.T) {
	t.Parallel()

	in, clock := newTestInput()
	in.SetHeld(constants.VirtualButtonRight, true)
	clock.advance(400 * time.Millisecond)
	assert.Equal(t, 1, in.Update())

	in.SetHeld(constants.VirtualButtonLeft, true)
	clock.advance(150 * time.Millisecond)
	assert.Equal(t, 0, in.Update(), "a fresh press waits for the full delay")

	clock.advance(250 * time.Millisecond)
	assert.Equal(t, -1, in.Update())
}

func TestInput_Reset(t *testing.T) {
	t.Parallel()

	in, clock := newTestInput()
	in.SetHeld(constants.VirtualButtonLeft, true)
	in.Reset()

	clock.advance(time.Second)
	assert.False(t, in.IsHeld())
	assert.Equal(t, 0, in.Update())
}

func TestNewWithTiming(t *testing.T) {
	t.Parallel()

	in := NewWithTiming(100*time.Millisecond, 50*time.Millisecond)
	assert.Equal(t, 100*time.Millisecond, in.repeatDelay)
	assert.Equal(t, 50*time.Millisecond, in.repeatInterval)
}
