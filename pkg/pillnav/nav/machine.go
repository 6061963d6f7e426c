package nav

import (
	"log/slog"
	"time"

	"github.com/BrandonKowalski/pillnav/pkg/pillnav/anim"
	"github.com/BrandonKowalski/pillnav/pkg/pillnav/internal/logging"
)

// Option customises a Machine.
type Option func(*Machine)

// WithClock stamps animations with clock instead of time.Now.
func WithClock(clock anim.Clock) Option {
	return func(m *Machine) {
		m.clock = clock
	}
}

// WithLogger replaces the internal logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithListener sets the selection listener at construction.
func WithListener(l Listener) Option {
	return func(m *Machine) {
		m.emitter.Set(l)
	}
}

// Machine owns the current selection and drives the per-slot transitions.
// It is not safe for concurrent use; every call is expected on the UI thread.
type Machine struct {
	config   Config
	registry *Registry
	timeline *anim.Timeline
	emitter  Emitter
	clock    anim.Clock
	logger   *slog.Logger

	selected int
	ready    bool
}

// NewMachine builds the registry, applies menu (nil for no menu) and
// returns a machine with nothing selected. The default selection happens
// on AfterFirstLayout.
func NewMachine(cfg Config, menu []MenuEntry, opts ...Option) *Machine {
	m := &Machine{
		config:   cfg,
		selected: NoSelection,
		logger:   logging.GetInternalLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.timeline = anim.NewTimeline(m.clock)
	m.registry = NewRegistry(m.timeline)
	ApplyMenu(m.registry, menu)

	return m
}

// Config returns the resolved options the machine was built with.
func (m *Machine) Config() Config {
	return m.config
}

// Registry exposes the slots for layout and rendering.
func (m *Machine) Registry() *Registry {
	return m.registry
}

// Timeline exposes the animation timeline.
func (m *Machine) Timeline() *anim.Timeline {
	return m.timeline
}

// Selected returns the selected index, NoSelection before the first selection.
func (m *Machine) Selected() int {
	return m.selected
}

// SetOnItemSelected replaces the selection listener.
func (m *Machine) SetOnItemSelected(l Listener) {
	m.emitter.Set(l)
}

// AfterFirstLayout selects the configured default index. Hosts call it once
// the slots have real geometry; later calls do nothing.
func (m *Machine) AfterFirstLayout() {
	if m.ready {
		return
	}
	m.ready = true
	m.SetSelected(m.config.DefaultSelected)
}

// Ready reports whether AfterFirstLayout has run.
func (m *Machine) Ready() bool {
	return m.ready
}

// SetSelected makes index the selection and schedules every slot's
// transition. Selecting the current index does nothing. An index with no
// slot is stored as is and every slot settles deactivated.
func (m *Machine) SetSelected(index int) {
	if index == m.selected {
		return
	}

	previous := m.selected
	m.selected = index

	if _, ok := m.registry.Slot(index); !ok {
		m.logger.Debug("Selected index has no slot", "index", index)
	}

	for _, s := range m.registry.Slots() {
		s.cancel()
		if s.Index == index {
			activate(s)
		} else {
			deactivate(s)
		}
	}

	m.logger.Debug("Selection changed", "from", previous, "to", index)
	m.emitter.Emit(index)
}

// Step moves the selection delta visible slots away, wrapping around.
func (m *Machine) Step(delta int) {
	if next := m.registry.Step(m.selected, delta); next != NoSelection {
		m.SetSelected(next)
	}
}

// SetLabel replaces a slot's label immediately. Out-of-range is ignored.
func (m *Machine) SetLabel(index int, text string) {
	m.registry.SetLabel(index, text)
}

// SetIcon replaces a slot's icon immediately. Out-of-range is ignored.
func (m *Machine) SetIcon(index int, icon Icon) {
	m.registry.SetIcon(index, icon)
}

// Tick advances every running animation to now.
func (m *Machine) Tick(now time.Time) {
	m.timeline.Tick(now)
}

// Settled reports whether no animation is in flight.
func (m *Machine) Settled() bool {
	return m.timeline.Running() == 0
}
