package nav

import "github.com/BrandonKowalski/pillnav/pkg/pillnav/anim"

// MenuEntry is one item of a navigation menu.
type MenuEntry struct {
	Icon  Icon
	Title string
}

// ApplyMenu populates the registry from entries. Slots with a matching
// entry get its icon and title and are made visible; the remaining slots
// are removed from the layout flow. Entries past SlotCount are ignored.
//
// A nil menu means no menu was supplied and leaves the registry untouched.
// A non-nil empty menu hides every slot.
func ApplyMenu(r *Registry, entries []MenuEntry) {
	if entries == nil {
		return
	}

	for _, s := range r.Slots() {
		if s.Index < len(entries) {
			e := entries[s.Index]
			s.IconRef = e.Icon
			s.Text = e.Title
			s.Container.Visibility = anim.Visible
		} else {
			s.Container.Visibility = anim.Gone
		}
	}
}
