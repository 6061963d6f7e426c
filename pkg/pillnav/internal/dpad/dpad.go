// Package dpad turns held left/right buttons into repeating steps.
package dpad

import (
	"time"

	"github.com/BrandonKowalski/pillnav/pkg/pillnav/constants"
)

// Input tracks held left/right buttons and produces repeat steps
// while one is held, so holding the d-pad walks along the bar.
type Input struct {
	left, right    bool
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// New creates an Input with default timing.
// Default delay is 400ms before first repeat, then 150ms between repeats.
func New() Input {
	return NewWithTiming(400*time.Millisecond, 150*time.Millisecond)
}

// NewWithTiming creates an Input with custom timing.
func NewWithTiming(delay, interval time.Duration) Input {
	return Input{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: time.Now(),
		now:            time.Now,
	}
}

// SetHeld updates the held state from a virtual button and returns the
// step the press itself produces: -1 for left, +1 for right, 0 otherwise.
func (d *Input) SetHeld(button constants.VirtualButton, held bool) int {
	switch button {
	case constants.VirtualButtonLeft:
		d.left = held
	case constants.VirtualButtonRight:
		d.right = held
	default:
		return 0
	}

	d.hasRepeated = false
	d.lastRepeatTime = d.now()

	if !held {
		return 0
	}
	if button == constants.VirtualButtonLeft {
		return -1
	}
	return 1
}

// IsHeld returns true if either direction is currently held.
func (d *Input) IsHeld() bool {
	return d.left || d.right
}

// Update checks if a repeat step should fire. Call it every frame.
// The first repeat occurs after repeatDelay, subsequent repeats after
// repeatInterval. Left wins when both are held.
func (d *Input) Update() int {
	if !d.IsHeld() {
		return 0
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	now := d.now()
	if now.Sub(d.lastRepeatTime) < threshold {
		return 0
	}

	d.lastRepeatTime = now
	d.hasRepeated = true
	if d.left {
		return -1
	}
	return 1
}

// Reset clears held directions and timing state.
func (d *Input) Reset() {
	d.left, d.right = false, false
	d.hasRepeated = false
	d.lastRepeatTime = d.now()
}
