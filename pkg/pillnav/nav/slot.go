// Package nav implements the selection logic of the pill bottom navigation
// bar: the fixed row of slots, option resolution, menu population and the
// selection state machine that choreographs each slot's enter and exit
// animations.
//
// The package has no rendering dependency. A host (see pillnav.BottomNav)
// lays the slots out, reads their anim.View properties every frame and
// forwards taps and button presses back into the Machine.
package nav

import (
	"github.com/BrandonKowalski/pillnav/pkg/pillnav/anim"
)

// SlotCount is the fixed number of navigation positions.
const SlotCount = 5

// NoSelection is the selected index before anything has been selected.
const NoSelection = -1

// Icon references icon content. Hosts resolve it to an image; pillnav
// treats it as a file path to a PNG, JPEG or SVG.
type Icon string

// SlotState describes a slot's visual configuration.
type SlotState int

const (
	SlotIdle          SlotState = iota // Never selected or deselected: icon shown, label and dot hidden
	SlotActive                         // Settled selected: icon hidden, label and dot shown
	SlotTransitioning                  // At least one element is mid-animation
)

func (s SlotState) String() string {
	switch s {
	case SlotIdle:
		return "idle"
	case SlotActive:
		return "active"
	case SlotTransitioning:
		return "transitioning"
	default:
		return "unknown"
	}
}

// Slot is one navigation position: a container holding an icon, a label
// and the active indicator dot.
type Slot struct {
	Index     int
	Container *anim.View
	Icon      *anim.View
	Label     *anim.View
	Dot       *anim.View

	Text    string
	IconRef Icon
}

func newSlot(index int, timeline *anim.Timeline) *Slot {
	s := &Slot{
		Index:     index,
		Container: anim.NewView(timeline),
		Icon:      anim.NewView(timeline),
		Label:     anim.NewView(timeline),
		Dot:       anim.NewView(timeline),
	}

	s.Label.Visibility = anim.Gone
	s.Label.Alpha = 0

	s.Dot.Visibility = anim.Gone
	s.Dot.Alpha = 0
	s.Dot.ScaleX = DotRestScale
	s.Dot.ScaleY = DotRestScale

	return s
}

// Hidden reports whether the slot was removed from the layout flow.
func (s *Slot) Hidden() bool {
	return s.Container.Visibility == anim.Gone
}

// Animating reports whether any of the slot's elements is mid-animation.
func (s *Slot) Animating() bool {
	return s.Container.Animating() || s.Icon.Animating() || s.Label.Animating() || s.Dot.Animating()
}

// State classifies the slot's current visuals.
func (s *Slot) State() SlotState {
	if s.Animating() {
		return SlotTransitioning
	}
	if !s.Icon.Shown() && s.Label.Shown() && s.Dot.Shown() {
		return SlotActive
	}
	return SlotIdle
}

func (s *Slot) views() [4]*anim.View {
	return [4]*anim.View{s.Container, s.Icon, s.Label, s.Dot}
}

// cancel stops every in-flight animation on the slot.
func (s *Slot) cancel() {
	for _, v := range s.views() {
		v.Cancel()
	}
}
