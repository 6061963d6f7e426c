package nav

import "github.com/BrandonKowalski/pillnav/pkg/pillnav/anim"

// Registry is the fixed, ordered collection of slots.
type Registry struct {
	slots [SlotCount]*Slot
}

// NewRegistry creates SlotCount slots whose views animate on timeline.
func NewRegistry(timeline *anim.Timeline) *Registry {
	r := &Registry{}
	for i := range r.slots {
		r.slots[i] = newSlot(i, timeline)
	}
	return r
}

// Len always returns SlotCount; hidden slots keep their index.
func (r *Registry) Len() int {
	return len(r.slots)
}

// Slot returns the slot at index.
func (r *Registry) Slot(index int) (*Slot, bool) {
	if index < 0 || index >= len(r.slots) {
		return nil, false
	}
	return r.slots[index], true
}

// Slots returns every slot in index order.
func (r *Registry) Slots() []*Slot {
	return r.slots[:]
}

// Visible returns the slots still in the layout flow, in index order.
func (r *Registry) Visible() []*Slot {
	visible := make([]*Slot, 0, len(r.slots))
	for _, s := range r.slots {
		if !s.Hidden() {
			visible = append(visible, s)
		}
	}
	return visible
}

// Step returns the index of the visible slot delta positions away from
// from, wrapping around the row. If from is not a visible slot the walk
// starts before the first (delta > 0) or after the last (delta < 0)
// visible slot. Returns NoSelection when nothing is visible.
func (r *Registry) Step(from, delta int) int {
	visible := r.Visible()
	if len(visible) == 0 {
		return NoSelection
	}

	pos := -1
	for i, s := range visible {
		if s.Index == from {
			pos = i
			break
		}
	}
	if pos == -1 {
		if delta < 0 {
			pos = 0
		} else {
			pos = len(visible) - 1
		}
	}

	n := len(visible)
	next := ((pos+delta)%n + n) % n
	return visible[next].Index
}

// SetLabel replaces a slot's label text. Out-of-range indices are ignored.
func (r *Registry) SetLabel(index int, text string) {
	if s, ok := r.Slot(index); ok {
		s.Text = text
	}
}

// SetIcon replaces a slot's icon. Out-of-range indices are ignored.
func (r *Registry) SetIcon(index int, icon Icon) {
	if s, ok := r.Slot(index); ok {
		s.IconRef = icon
	}
}
