package anim

import "time"

// Clock returns the current time. Timelines use it to stamp new animations.
type Clock func() time.Time

// maxSettlePasses bounds Settle when end actions keep starting animations.
const maxSettlePasses = 32

// Timeline owns every running animation of a component and advances them
// when the host frame loop calls Tick.
type Timeline struct {
	clock   Clock
	active  []*Animation
	started uint64
}

// NewTimeline creates a timeline. A nil clock falls back to time.Now.
func NewTimeline(clock Clock) *Timeline {
	if clock == nil {
		clock = time.Now
	}
	return &Timeline{clock: clock}
}

// Now returns the timeline clock's current time.
func (t *Timeline) Now() time.Time {
	return t.clock()
}

func (t *Timeline) add(a *Animation) {
	a.start = t.clock()
	t.active = append(t.active, a)
	t.started++
}

// Tick advances every running animation to now. Completed animations are
// snapped to their targets first, then their end actions run in start
// order. Animations started by an end action are picked up on the next tick.
func (t *Timeline) Tick(now time.Time) {
	pending := t.active
	t.active = nil

	var finished []*Animation
	for _, a := range pending {
		if !a.Running() {
			continue
		}
		if a.step(now) {
			finished = append(finished, a)
			continue
		}
		t.active = append(t.active, a)
	}

	for _, a := range finished {
		if a.endAction != nil {
			a.endAction()
		}
	}
}

// Running returns how many animations are still in flight.
func (t *Timeline) Running() int {
	n := 0
	for _, a := range t.active {
		if a.Running() {
			n++
		}
	}
	return n
}

// Started returns the total number of animations ever started.
func (t *Timeline) Started() uint64 {
	return t.started
}

// Settle ticks the timeline to the end of every running animation,
// including ones started by end actions, and returns the last time ticked.
func (t *Timeline) Settle() time.Time {
	now := t.clock()
	for pass := 0; pass < maxSettlePasses && t.Running() > 0; pass++ {
		for _, a := range t.active {
			if a.Running() && a.end().After(now) {
				now = a.end()
			}
		}
		t.Tick(now)
	}
	return now
}
