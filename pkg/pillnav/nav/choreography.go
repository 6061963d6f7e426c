package nav

import (
	"time"

	"github.com/BrandonKowalski/pillnav/pkg/pillnav/anim"
)

// Shared slide distance and rest scales.
const (
	SlideDistance = 60.0
	InactiveScale = 0.90
	DotRestScale  = 0.30
)

// Activate timings.
const (
	ContainerDuration  = 200 * time.Millisecond
	IconExitDuration   = 200 * time.Millisecond
	LabelEnterDuration = 260 * time.Millisecond
	DotEnterDuration   = 220 * time.Millisecond
)

// Deactivate timings. The container shares ContainerDuration.
const (
	LabelExitDuration = 200 * time.Millisecond
	IconEnterDuration = 220 * time.Millisecond
	DotExitDuration   = 150 * time.Millisecond
)

// activate swaps the icon for the label and pops the dot in.
func activate(s *Slot) {
	s.Container.Animate().
		Scale(1, 1).
		Duration(ContainerDuration).
		Start()

	if icon := s.Icon; icon.Shown() {
		icon.Alpha = 1
		icon.TranslationY = 0
		icon.Animate().
			Alpha(0).
			TranslationY(-SlideDistance).
			Duration(IconExitDuration).
			WithEndAction(func() { icon.Visibility = anim.Gone }).
			Start()
	}

	label := s.Label
	label.Visibility = anim.Visible
	label.Alpha = 0
	label.TranslationY = SlideDistance
	label.Animate().
		Alpha(1).
		TranslationY(0).
		Duration(LabelEnterDuration).
		Start()

	dot := s.Dot
	dot.Visibility = anim.Visible
	dot.ScaleX, dot.ScaleY = 0, 0
	dot.Alpha = 0
	dot.Animate().
		Alpha(1).
		Scale(1, 1).
		Duration(DotEnterDuration).
		Start()
}

// deactivate shrinks the container, swaps the label back for the icon and
// shrinks the dot to its rest state.
func deactivate(s *Slot) {
	s.Container.Animate().
		Scale(InactiveScale, InactiveScale).
		Duration(ContainerDuration).
		Start()

	if label := s.Label; label.Shown() {
		label.Animate().
			Alpha(0).
			TranslationY(SlideDistance).
			Duration(LabelExitDuration).
			WithEndAction(func() {
				label.Visibility = anim.Gone
				label.Alpha = 0
			}).
			Start()
	}

	icon := s.Icon
	if !icon.Shown() {
		icon.Visibility = anim.Visible
		icon.Alpha = 0
		icon.TranslationY = -SlideDistance
	}
	icon.Animate().
		Alpha(1).
		TranslationY(0).
		Duration(IconEnterDuration).
		Start()

	// Rest at 30% so the next pop-in always starts from the same baseline.
	dot := s.Dot
	dot.Animate().
		Alpha(0).
		Scale(DotRestScale, DotRestScale).
		Duration(DotExitDuration).
		WithEndAction(func() {
			dot.Visibility = anim.Gone
			dot.Alpha = 0
			dot.ScaleX, dot.ScaleY = DotRestScale, DotRestScale
		}).
		Start()
}
