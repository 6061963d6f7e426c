// Package anim drives time-based property animations on lightweight views.
//
// A View carries the visual properties a renderer reads every frame
// (visibility, opacity, vertical offset and scale). Animations are started
// through View.Animate, registered on a Timeline and advanced by the host's
// frame loop calling Timeline.Tick. Each view owns at most one running
// animation: starting a new one, or calling View.Cancel, stops the previous
// animation where it is without running its end action.
//
// Nothing in this package is safe for concurrent use. All calls are expected
// on the UI thread that also ticks the timeline.
package anim

// Visibility mirrors the three layout states a view can be in.
type Visibility int

const (
	Visible   Visibility = iota // Drawn and occupying layout space
	Invisible                   // Not drawn but still occupying layout space
	Gone                        // Not drawn and removed from layout flow
)

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Invisible:
		return "invisible"
	case Gone:
		return "gone"
	default:
		return "unknown"
	}
}

// View is an animatable visual element.
type View struct {
	Visibility   Visibility
	Alpha        float64
	TranslationY float64
	ScaleX       float64
	ScaleY       float64

	timeline *Timeline
	current  *Animation
}

// NewView creates a visible, opaque, unscaled view bound to the timeline.
func NewView(timeline *Timeline) *View {
	return &View{
		Visibility: Visible,
		Alpha:      1,
		ScaleX:     1,
		ScaleY:     1,
		timeline:   timeline,
	}
}

// Shown reports whether the view is Visible.
func (v *View) Shown() bool {
	return v.Visibility == Visible
}

// Animate returns a builder for a new animation on this view.
// Nothing happens until Builder.Start is called.
func (v *View) Animate() *Builder {
	return &Builder{
		view:         v,
		duration:     DefaultDuration,
		interpolator: AccelerateDecelerate,
	}
}

// Cancel stops the running animation, if any, leaving the view at its
// current property values. The end action is not run.
func (v *View) Cancel() {
	if v.current != nil {
		v.current.Cancel()
	}
}

// Animation returns the animation currently running on the view, or nil.
func (v *View) Animation() *Animation {
	if v.current != nil && v.current.Running() {
		return v.current
	}
	return nil
}

// Animating reports whether an animation is running on the view.
func (v *View) Animating() bool {
	return v.Animation() != nil
}

func (v *View) get(p Property) float64 {
	switch p {
	case PropertyAlpha:
		return v.Alpha
	case PropertyTranslationY:
		return v.TranslationY
	case PropertyScaleX:
		return v.ScaleX
	case PropertyScaleY:
		return v.ScaleY
	}
	return 0
}

func (v *View) set(p Property, value float64) {
	switch p {
	case PropertyAlpha:
		v.Alpha = value
	case PropertyTranslationY:
		v.TranslationY = value
	case PropertyScaleX:
		v.ScaleX = value
	case PropertyScaleY:
		v.ScaleY = value
	}
}
