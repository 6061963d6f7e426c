package router

import (
	"fmt"

	"github.com/BrandonKowalski/pillnav/pkg/pillnav/internal/logging"
)

// Tab identifies a bottom navigation slot. Applications define their own
// Tab constants using iota so they line up with menu order.
type Tab int

// NoTab is the current tab before anything has been shown.
const NoTab Tab = -1

// Content is what a tab displays.
type Content interface {
	// Show is called when the tab becomes current. resume is whatever Hide
	// returned the last time the tab was left, nil on first show.
	Show(resume any)
	// Hide is called when another tab replaces this one.
	Hide() (resume any)
}

// ContentFuncs adapts plain functions to Content. Either may be nil.
type ContentFuncs struct {
	OnShow func(resume any)
	OnHide func() any
}

func (c ContentFuncs) Show(resume any) {
	if c.OnShow != nil {
		c.OnShow(resume)
	}
}

func (c ContentFuncs) Hide() any {
	if c.OnHide != nil {
		return c.OnHide()
	}
	return nil
}

// Router shows one tab's content at a time.
type Router struct {
	contents map[Tab]Content
	resume   map[Tab]any
	current  Tab
	history  *Stack
	onChange func(from, to Tab)
}

// New creates a router with no current tab.
func New() *Router {
	return &Router{
		contents: make(map[Tab]Content),
		resume:   make(map[Tab]any),
		current:  NoTab,
		history:  NewStack(),
	}
}

// Register sets the content for tab.
func (r *Router) Register(tab Tab, content Content) *Router {
	r.contents[tab] = content
	return r
}

// OnChange registers fn to run after every tab switch.
func (r *Router) OnChange(fn func(from, to Tab)) *Router {
	r.onChange = fn
	return r
}

// Current returns the tab being shown, NoTab before the first Navigate.
func (r *Router) Current() Tab {
	return r.current
}

// History exposes the visit history.
func (r *Router) History() *Stack {
	return r.history
}

// Navigate shows tab, pushing the previous tab onto the history.
// Navigating to the current tab does nothing.
func (r *Router) Navigate(tab Tab) error {
	if tab == r.current {
		return nil
	}
	if _, ok := r.contents[tab]; !ok {
		return fmt.Errorf("router: tab %d not registered", tab)
	}

	if r.current != NoTab {
		r.history.Remove(r.current)
		r.history.Push(r.current)
	}
	r.history.Remove(tab)
	r.switchTo(tab)
	return nil
}

// Back returns to the most recently visited tab. It reports false, and
// changes nothing, when the history is empty.
func (r *Router) Back() (Tab, bool) {
	entry := r.history.Pop()
	if entry == nil {
		return r.current, false
	}
	r.switchTo(entry.Tab)
	return entry.Tab, true
}

// SelectBack is Back for a router driven by a bar: the restored tab is
// passed to setSelected (usually BottomNav.SetSelected) so the bar's
// selection follows the content. Back alone leaves the bar untouched.
func (r *Router) SelectBack(setSelected func(index int)) bool {
	tab, ok := r.Back()
	if ok && setSelected != nil {
		setSelected(int(tab))
	}
	return ok
}

// Listener adapts Navigate to a selection listener. Unregistered tabs are
// ignored so a bar with more items than screens keeps working.
func (r *Router) Listener() func(index int) {
	return func(index int) {
		if err := r.Navigate(Tab(index)); err != nil {
			logging.GetInternalLogger().Debug("Ignoring selection", "index", index, "error", err)
		}
	}
}

func (r *Router) switchTo(tab Tab) {
	from := r.current
	if content, ok := r.contents[from]; ok {
		r.resume[from] = content.Hide()
	}

	r.current = tab
	r.contents[tab].Show(r.resume[tab])

	if r.onChange != nil {
		r.onChange(from, tab)
	}
}
