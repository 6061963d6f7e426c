package nav_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/pillnav/pkg/pillnav/anim"
	"github.com/BrandonKowalski/pillnav/pkg/pillnav/nav"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

func newMachine(t *testing.T, cfg nav.Config, menu []nav.MenuEntry, opts ...nav.Option) (*nav.Machine, *fakeClock) {
	t.Helper()

	clock := &fakeClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	opts = append([]nav.Option{nav.WithClock(clock.Now)}, opts...)
	return nav.NewMachine(cfg, menu, opts...), clock
}

func defaultConfig() nav.Config {
	return nav.Resolve(nil, nav.DefaultEnvironment())
}

func settle(m *nav.Machine) {
	m.Timeline().Settle()
}

func requireActive(t *testing.T, s *nav.Slot) {
	t.Helper()

	require.Equal(t, nav.SlotActive, s.State(), "slot %d", s.Index)
	assert.Equal(t, anim.Gone, s.Icon.Visibility, "slot %d icon", s.Index)
	assert.Equal(t, anim.Visible, s.Label.Visibility, "slot %d label", s.Index)
	assert.Equal(t, 1.0, s.Label.Alpha, "slot %d label alpha", s.Index)
	assert.Zero(t, s.Label.TranslationY, "slot %d label offset", s.Index)
	assert.Equal(t, anim.Visible, s.Dot.Visibility, "slot %d dot", s.Index)
	assert.Equal(t, 1.0, s.Dot.Alpha, "slot %d dot alpha", s.Index)
	assert.Equal(t, 1.0, s.Dot.ScaleX, "slot %d dot scale", s.Index)
	assert.Equal(t, 1.0, s.Container.ScaleX, "slot %d container scale", s.Index)
}

func requireDeactivated(t *testing.T, s *nav.Slot) {
	t.Helper()

	require.Equal(t, nav.SlotIdle, s.State(), "slot %d", s.Index)
	assert.Equal(t, anim.Visible, s.Icon.Visibility, "slot %d icon", s.Index)
	assert.Equal(t, 1.0, s.Icon.Alpha, "slot %d icon alpha", s.Index)
	assert.Zero(t, s.Icon.TranslationY, "slot %d icon offset", s.Index)
	assert.Equal(t, anim.Gone, s.Label.Visibility, "slot %d label", s.Index)
	assert.Zero(t, s.Label.Alpha, "slot %d label alpha", s.Index)
	assert.Equal(t, anim.Gone, s.Dot.Visibility, "slot %d dot", s.Index)
	assert.Zero(t, s.Dot.Alpha, "slot %d dot alpha", s.Index)
	assert.Equal(t, nav.DotRestScale, s.Dot.ScaleX, "slot %d dot scale x", s.Index)
	assert.Equal(t, nav.DotRestScale, s.Dot.ScaleY, "slot %d dot scale y", s.Index)
	assert.Equal(t, nav.InactiveScale, s.Container.ScaleX, "slot %d container scale", s.Index)
}

func requireExclusive(t *testing.T, m *nav.Machine, active int) {
	t.Helper()

	for _, s := range m.Registry().Slots() {
		if s.Index == active {
			requireActive(t, s)
		} else {
			requireDeactivated(t, s)
		}
	}
}

func TestMachine_InitialState(t *testing.T) {
	t.Parallel()

	m, _ := newMachine(t, defaultConfig(), nil)

	assert.Equal(t, nav.NoSelection, m.Selected())
	assert.False(t, m.Ready())
	assert.True(t, m.Settled())
	assert.Equal(t, nav.SlotCount, m.Registry().Len())
	for _, s := range m.Registry().Slots() {
		assert.Equal(t, nav.SlotIdle, s.State())
		assert.False(t, s.Hidden())
	}
}

func TestMachine_DefaultSelectionAfterFirstLayout(t *testing.T) {
	t.Parallel()

	var calls []int
	m, _ := newMachine(t, defaultConfig(), nil, nav.WithListener(func(i int) { calls = append(calls, i) }))

	m.AfterFirstLayout()
	assert.True(t, m.Ready())
	assert.Equal(t, 1, m.Selected())
	assert.False(t, m.Settled(), "transition effects are asynchronous")

	settle(m)
	requireExclusive(t, m, 1)

	m.AfterFirstLayout()
	assert.Equal(t, []int{1}, calls, "the deferred default selection runs once")
}

func TestMachine_SetSelectedIsIdempotent(t *testing.T) {
	t.Parallel()

	calls := 0
	m, _ := newMachine(t, defaultConfig(), nil, nav.WithListener(func(int) { calls++ }))

	m.SetSelected(2)
	started := m.Timeline().Started()
	assert.Equal(t, uint64(16), started, "4 effects on the active slot, 3 on each inactive slot")

	m.SetSelected(2)
	assert.Equal(t, started, m.Timeline().Started(), "no new animation effects")
	assert.Equal(t, 2, m.Selected())
	assert.Equal(t, 1, calls)
}

func TestMachine_EventContract(t *testing.T) {
	t.Parallel()

	var calls []int
	m, _ := newMachine(t, defaultConfig(), nil)
	m.SetSelected(0)
	settle(m)

	m.SetOnItemSelected(func(i int) { calls = append(calls, i) })

	m.SetSelected(2)
	assert.Equal(t, []int{2}, calls)

	m.SetSelected(2)
	assert.Equal(t, []int{2}, calls, "reselecting does not notify")

	m.SetOnItemSelected(nil)
	m.SetSelected(3)
	assert.Equal(t, []int{2}, calls)
}

func TestMachine_ListenerFiresBeforeAnimationsComplete(t *testing.T) {
	t.Parallel()

	var m *nav.Machine
	settledAtEmit := true
	m, _ = newMachine(t, defaultConfig(), nil, nav.WithListener(func(int) {
		settledAtEmit = m.Settled()
	}))

	m.SetSelected(3)
	assert.False(t, settledAtEmit)
}

func TestMachine_Exclusivity(t *testing.T) {
	t.Parallel()

	m, _ := newMachine(t, defaultConfig(), nil)

	for _, idx := range []int{0, 4, 2, 1, 3, 0} {
		m.SetSelected(idx)
		settle(m)
		requireExclusive(t, m, idx)
	}
}

func TestMachine_ChoreographyTimings(t *testing.T) {
	t.Parallel()

	m, _ := newMachine(t, defaultConfig(), nil)
	m.SetSelected(0)
	settle(m)

	m.SetSelected(1)

	prev, _ := m.Registry().Slot(0)
	next, _ := m.Registry().Slot(1)

	type expectation struct {
		name     string
		view     *anim.View
		duration time.Duration
		prop     anim.Property
		target   float64
	}

	for _, e := range []expectation{
		{"active container", next.Container, nav.ContainerDuration, anim.PropertyScaleX, 1},
		{"active icon", next.Icon, nav.IconExitDuration, anim.PropertyTranslationY, -nav.SlideDistance},
		{"active label", next.Label, nav.LabelEnterDuration, anim.PropertyAlpha, 1},
		{"active dot", next.Dot, nav.DotEnterDuration, anim.PropertyScaleY, 1},
		{"inactive container", prev.Container, nav.ContainerDuration, anim.PropertyScaleY, nav.InactiveScale},
		{"inactive label", prev.Label, nav.LabelExitDuration, anim.PropertyTranslationY, nav.SlideDistance},
		{"inactive icon", prev.Icon, nav.IconEnterDuration, anim.PropertyAlpha, 1},
		{"inactive dot", prev.Dot, nav.DotExitDuration, anim.PropertyScaleX, nav.DotRestScale},
	} {
		a := e.view.Animation()
		require.NotNil(t, a, e.name)
		assert.Equal(t, e.duration, a.Duration(), e.name)
		target, ok := a.Target(e.prop)
		assert.True(t, ok, e.name)
		assert.Equal(t, e.target, target, e.name)
	}

	// Elements entering are pre-positioned before their animation starts.
	assert.Equal(t, anim.Visible, next.Label.Visibility)
	assert.Equal(t, nav.SlideDistance, next.Label.TranslationY)
	assert.Zero(t, next.Dot.ScaleX)
	assert.Equal(t, anim.Visible, prev.Icon.Visibility)
	assert.Equal(t, -nav.SlideDistance, prev.Icon.TranslationY)
}

func TestMachine_StaggeredEndActions(t *testing.T) {
	t.Parallel()

	m, clock := newMachine(t, defaultConfig(), nil)
	m.SetSelected(0)
	settle(m)

	m.SetSelected(1)
	prev, _ := m.Registry().Slot(0)
	next, _ := m.Registry().Slot(1)

	m.Tick(clock.Advance(nav.DotExitDuration))
	assert.Equal(t, anim.Gone, prev.Dot.Visibility, "dot exit is the shortest effect")
	assert.Equal(t, anim.Visible, prev.Label.Visibility)

	m.Tick(clock.Advance(nav.LabelExitDuration - nav.DotExitDuration))
	assert.Equal(t, anim.Gone, prev.Label.Visibility)
	assert.Equal(t, anim.Gone, next.Icon.Visibility)
	assert.False(t, m.Settled(), "label enter outlasts the exits")

	m.Tick(clock.Advance(nav.LabelEnterDuration - nav.LabelExitDuration))
	assert.True(t, m.Settled())
	requireExclusive(t, m, 1)
}

func TestMachine_RapidReselectionIsConsistent(t *testing.T) {
	t.Parallel()

	m, clock := newMachine(t, defaultConfig(), nil)

	m.SetSelected(0)
	m.Tick(clock.Advance(90 * time.Millisecond))

	m.SetSelected(3)
	m.Tick(clock.Advance(40 * time.Millisecond))

	m.SetSelected(0)
	m.Tick(clock.Advance(10 * time.Millisecond))

	m.SetSelected(4)

	for _, s := range m.Registry().Slots() {
		for _, v := range []*anim.View{s.Container, s.Icon, s.Label, s.Dot} {
			assert.LessOrEqual(t, v.Alpha, 1.0)
			assert.GreaterOrEqual(t, v.Alpha, 0.0)
		}
	}

	settle(m)
	requireExclusive(t, m, 4)
}

func TestMachine_InterruptedActivateReverses(t *testing.T) {
	t.Parallel()

	m, clock := newMachine(t, defaultConfig(), nil)
	m.SetSelected(0)
	settle(m)

	m.SetSelected(2)
	m.Tick(clock.Advance(100 * time.Millisecond))

	s, _ := m.Registry().Slot(2)
	midAlpha := s.Icon.Alpha
	require.Greater(t, midAlpha, 0.0)
	require.Less(t, midAlpha, 1.0)

	m.SetSelected(0)
	assert.Equal(t, anim.Visible, s.Icon.Visibility, "cancelled exit never hid the icon")
	assert.Equal(t, midAlpha, s.Icon.Alpha, "the icon restarts from its mid-flight value")

	settle(m)
	requireExclusive(t, m, 0)
}

func TestMachine_OutOfRangeSelectionSettlesWithNoActiveSlot(t *testing.T) {
	t.Parallel()

	var calls []int
	m, _ := newMachine(t, defaultConfig(), nil, nav.WithListener(func(i int) { calls = append(calls, i) }))
	m.SetSelected(1)
	settle(m)

	m.SetSelected(7)
	settle(m)

	assert.Equal(t, 7, m.Selected())
	assert.Equal(t, []int{1, 7}, calls)
	for _, s := range m.Registry().Slots() {
		requireDeactivated(t, s)
	}
}

func TestMachine_MenuPopulation(t *testing.T) {
	t.Parallel()

	menu := []nav.MenuEntry{
		{Icon: "home.svg", Title: "Home"},
		{Icon: "search.svg", Title: "Search"},
		{Icon: "profile.png", Title: "Profile"},
	}
	m, _ := newMachine(t, defaultConfig(), menu)

	for i, s := range m.Registry().Slots() {
		if i < len(menu) {
			assert.False(t, s.Hidden(), "slot %d", i)
			assert.Equal(t, menu[i].Icon, s.IconRef)
			assert.Equal(t, menu[i].Title, s.Text)
		} else {
			assert.True(t, s.Hidden(), "slot %d", i)
			assert.Equal(t, anim.Gone, s.Container.Visibility)
		}
	}
	assert.Len(t, m.Registry().Visible(), 3)
}

func TestMachine_EmptyMenuHidesEverySlot(t *testing.T) {
	t.Parallel()

	m, _ := newMachine(t, defaultConfig(), []nav.MenuEntry{})

	assert.Empty(t, m.Registry().Visible())
}

func TestMachine_MenuLongerThanSlotsIsTruncated(t *testing.T) {
	t.Parallel()

	menu := make([]nav.MenuEntry, 7)
	for i := range menu {
		menu[i] = nav.MenuEntry{Title: string(rune('A' + i))}
	}
	m, _ := newMachine(t, defaultConfig(), menu)

	assert.Len(t, m.Registry().Visible(), nav.SlotCount)
	last, _ := m.Registry().Slot(nav.SlotCount - 1)
	assert.Equal(t, "E", last.Text)
}

func TestMachine_MutatorsAreBoundsChecked(t *testing.T) {
	t.Parallel()

	m, _ := newMachine(t, defaultConfig(), nil)

	before := make([]nav.Slot, 0, nav.SlotCount)
	for _, s := range m.Registry().Slots() {
		before = append(before, *s)
	}

	assert.NotPanics(t, func() {
		m.SetLabel(10, "x")
		m.SetIcon(-1, "x.svg")
		m.SetLabel(nav.SlotCount, "y")
	})

	for i, s := range m.Registry().Slots() {
		assert.Equal(t, before[i].Text, s.Text)
		assert.Equal(t, before[i].IconRef, s.IconRef)
	}
	assert.Zero(t, m.Timeline().Started())

	m.SetLabel(3, "Library")
	m.SetIcon(3, "library.svg")
	s, _ := m.Registry().Slot(3)
	assert.Equal(t, "Library", s.Text)
	assert.Equal(t, nav.Icon("library.svg"), s.IconRef)
	assert.Zero(t, m.Timeline().Started(), "mutators are not animated")
}

func TestMachine_StepSkipsHiddenSlots(t *testing.T) {
	t.Parallel()

	menu := []nav.MenuEntry{{Title: "A"}, {Title: "B"}, {Title: "C"}}
	m, _ := newMachine(t, defaultConfig(), menu)

	m.Step(1)
	assert.Equal(t, 0, m.Selected(), "first step from no selection lands on the first slot")

	m.Step(1)
	m.Step(1)
	assert.Equal(t, 2, m.Selected())

	m.Step(1)
	assert.Equal(t, 0, m.Selected(), "wraps past hidden slots")

	m.Step(-1)
	assert.Equal(t, 2, m.Selected())
}

func TestRegistry_StepWithNothingVisible(t *testing.T) {
	t.Parallel()

	m, _ := newMachine(t, defaultConfig(), []nav.MenuEntry{})

	assert.Equal(t, nav.NoSelection, m.Registry().Step(0, 1))
	m.Step(1)
	assert.Equal(t, nav.NoSelection, m.Selected())
}

func TestSlotState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "idle", nav.SlotIdle.String())
	assert.Equal(t, "active", nav.SlotActive.String())
	assert.Equal(t, "transitioning", nav.SlotTransitioning.String())
}
