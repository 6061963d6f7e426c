package anim

import (
	"math"
	"time"
)

// DefaultDuration is used when a builder is started without Duration.
const DefaultDuration = 300 * time.Millisecond

// Property identifies an animatable view property.
type Property int

const (
	PropertyAlpha Property = iota
	PropertyTranslationY
	PropertyScaleX
	PropertyScaleY

	propertyCount
)

func (p Property) String() string {
	switch p {
	case PropertyAlpha:
		return "alpha"
	case PropertyTranslationY:
		return "translationY"
	case PropertyScaleX:
		return "scaleX"
	case PropertyScaleY:
		return "scaleY"
	default:
		return "unknown"
	}
}

// Interpolator maps elapsed fraction [0,1] to progress.
type Interpolator func(fraction float64) float64

// Linear progresses at a constant rate.
func Linear(fraction float64) float64 {
	return fraction
}

// AccelerateDecelerate starts and ends slowly, speeding up through the middle.
func AccelerateDecelerate(fraction float64) float64 {
	return math.Cos((fraction+1)*math.Pi)/2 + 0.5
}

// Builder collects target values for an animation on a single view.
type Builder struct {
	view         *View
	to           [propertyCount]float64
	set          [propertyCount]bool
	duration     time.Duration
	interpolator Interpolator
	endAction    func()
}

// Alpha animates opacity to value.
func (b *Builder) Alpha(value float64) *Builder {
	return b.target(PropertyAlpha, value)
}

// TranslationY animates the vertical offset to value.
func (b *Builder) TranslationY(value float64) *Builder {
	return b.target(PropertyTranslationY, value)
}

// Scale animates both scale axes.
func (b *Builder) Scale(x, y float64) *Builder {
	return b.target(PropertyScaleX, x).target(PropertyScaleY, y)
}

// Duration sets how long the animation runs.
func (b *Builder) Duration(d time.Duration) *Builder {
	b.duration = d
	return b
}

// Interpolator overrides the easing curve.
func (b *Builder) Interpolator(fn Interpolator) *Builder {
	if fn != nil {
		b.interpolator = fn
	}
	return b
}

// WithEndAction registers fn to run once when the animation completes
// naturally. Cancelled animations never run their end action.
func (b *Builder) WithEndAction(fn func()) *Builder {
	b.endAction = fn
	return b
}

func (b *Builder) target(p Property, value float64) *Builder {
	b.to[p] = value
	b.set[p] = true
	return b
}

// Start cancels whatever is running on the view, captures the current
// property values as the starting point and registers the animation on
// the view's timeline.
func (b *Builder) Start() *Animation {
	v := b.view
	v.Cancel()

	a := &Animation{
		view:         v,
		to:           b.to,
		set:          b.set,
		duration:     b.duration,
		interpolator: b.interpolator,
		endAction:    b.endAction,
		state:        stateRunning,
	}
	for p := Property(0); p < propertyCount; p++ {
		a.from[p] = v.get(p)
	}

	v.current = a
	if v.timeline != nil {
		v.timeline.add(a)
	}
	return a
}

type animationState int

const (
	stateRunning animationState = iota
	stateCancelled
	stateFinished
)

// Animation is the handle of a started animation.
type Animation struct {
	view         *View
	from         [propertyCount]float64
	to           [propertyCount]float64
	set          [propertyCount]bool
	start        time.Time
	duration     time.Duration
	interpolator Interpolator
	endAction    func()
	state        animationState
}

// Cancel stops the animation at its current values. Safe to call on a
// finished or already cancelled animation.
func (a *Animation) Cancel() {
	if a.state != stateRunning {
		return
	}
	a.state = stateCancelled
	a.detach()
}

// Running reports whether the animation has neither finished nor been cancelled.
func (a *Animation) Running() bool {
	return a.state == stateRunning
}

// Cancelled reports whether the animation was stopped before completing.
func (a *Animation) Cancelled() bool {
	return a.state == stateCancelled
}

// Finished reports whether the animation ran to completion.
func (a *Animation) Finished() bool {
	return a.state == stateFinished
}

// Duration returns the configured duration.
func (a *Animation) Duration() time.Duration {
	return a.duration
}

// Target returns the end value for p and whether p is animated at all.
func (a *Animation) Target(p Property) (float64, bool) {
	if p < 0 || p >= propertyCount {
		return 0, false
	}
	return a.to[p], a.set[p]
}

// step applies the interpolated values for now and reports completion.
func (a *Animation) step(now time.Time) bool {
	fraction := 1.0
	if a.duration > 0 {
		elapsed := now.Sub(a.start)
		switch {
		case elapsed <= 0:
			fraction = 0
		case elapsed < a.duration:
			fraction = float64(elapsed) / float64(a.duration)
		}
	}

	if fraction < 1 {
		progress := a.interpolator(fraction)
		for p := Property(0); p < propertyCount; p++ {
			if a.set[p] {
				a.view.set(p, a.from[p]+(a.to[p]-a.from[p])*progress)
			}
		}
		return false
	}

	// Land exactly on the targets so settled state compares equal.
	for p := Property(0); p < propertyCount; p++ {
		if a.set[p] {
			a.view.set(p, a.to[p])
		}
	}
	a.state = stateFinished
	a.detach()
	return true
}

func (a *Animation) end() time.Time {
	return a.start.Add(a.duration)
}

func (a *Animation) detach() {
	if a.view.current == a {
		a.view.current = nil
	}
}
