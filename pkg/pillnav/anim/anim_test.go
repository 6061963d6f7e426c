package anim_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/pillnav/pkg/pillnav/anim"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

func TestView_Defaults(t *testing.T) {
	t.Parallel()

	v := anim.NewView(anim.NewTimeline(nil))

	assert.Equal(t, anim.Visible, v.Visibility)
	assert.True(t, v.Shown())
	assert.Equal(t, 1.0, v.Alpha)
	assert.Equal(t, 1.0, v.ScaleX)
	assert.Equal(t, 1.0, v.ScaleY)
	assert.Zero(t, v.TranslationY)
	assert.Nil(t, v.Animation())
}

func TestAnimation_RunsToTarget(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	tl := anim.NewTimeline(clock.Now)
	v := anim.NewView(tl)

	a := v.Animate().Alpha(0).TranslationY(-60).Duration(200 * time.Millisecond).Start()
	require.True(t, a.Running())
	assert.Equal(t, 1, tl.Running())

	tl.Tick(clock.Advance(100 * time.Millisecond))
	assert.InDelta(t, 0.5, v.Alpha, 1e-9, "accelerate-decelerate is symmetric at the midpoint")
	assert.InDelta(t, -30, v.TranslationY, 1e-9)
	assert.True(t, v.Animating())

	tl.Tick(clock.Advance(100 * time.Millisecond))
	assert.Equal(t, 0.0, v.Alpha)
	assert.Equal(t, -60.0, v.TranslationY)
	assert.True(t, a.Finished())
	assert.False(t, v.Animating())
	assert.Zero(t, tl.Running())
}

func TestAnimation_UnsetPropertiesUntouched(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	tl := anim.NewTimeline(clock.Now)
	v := anim.NewView(tl)
	v.TranslationY = 12

	a := v.Animate().Scale(0.9, 0.9).Duration(200 * time.Millisecond).Start()
	tl.Settle()

	assert.Equal(t, 0.9, v.ScaleX)
	assert.Equal(t, 0.9, v.ScaleY)
	assert.Equal(t, 12.0, v.TranslationY)

	_, ok := a.Target(anim.PropertyAlpha)
	assert.False(t, ok)
	target, ok := a.Target(anim.PropertyScaleX)
	assert.True(t, ok)
	assert.Equal(t, 0.9, target)
}

func TestAnimation_EndActionRunsOnce(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	tl := anim.NewTimeline(clock.Now)
	v := anim.NewView(tl)

	calls := 0
	v.Animate().Alpha(0).Duration(150 * time.Millisecond).WithEndAction(func() {
		calls++
		v.Visibility = anim.Gone
	}).Start()

	tl.Tick(clock.Advance(200 * time.Millisecond))
	tl.Tick(clock.Advance(200 * time.Millisecond))

	assert.Equal(t, 1, calls)
	assert.Equal(t, anim.Gone, v.Visibility)
}

func TestAnimation_CancelKeepsCurrentValues(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	tl := anim.NewTimeline(clock.Now)
	v := anim.NewView(tl)

	ended := false
	a := v.Animate().Alpha(0).Duration(200 * time.Millisecond).WithEndAction(func() { ended = true }).Start()

	tl.Tick(clock.Advance(100 * time.Millisecond))
	v.Cancel()

	assert.True(t, a.Cancelled())
	assert.InDelta(t, 0.5, v.Alpha, 1e-9)

	tl.Tick(clock.Advance(time.Second))
	assert.False(t, ended, "cancelled animations never run their end action")
	assert.InDelta(t, 0.5, v.Alpha, 1e-9)
	assert.Zero(t, tl.Running())
}

func TestAnimation_StartCancelsPrevious(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	tl := anim.NewTimeline(clock.Now)
	v := anim.NewView(tl)

	first := v.Animate().Alpha(0).Duration(200 * time.Millisecond).Start()
	tl.Tick(clock.Advance(100 * time.Millisecond))

	second := v.Animate().Alpha(1).Duration(200 * time.Millisecond).Start()
	assert.True(t, first.Cancelled())
	assert.Same(t, second, v.Animation())
	assert.Equal(t, 1, tl.Running())

	tl.Tick(clock.Advance(200 * time.Millisecond))
	assert.Equal(t, 1.0, v.Alpha)
}

func TestAnimation_ZeroDurationCompletesOnNextTick(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	tl := anim.NewTimeline(clock.Now)
	v := anim.NewView(tl)

	v.Animate().Alpha(0.25).Duration(0).Start()
	assert.Equal(t, 1.0, v.Alpha, "values change only when the timeline ticks")

	tl.Tick(clock.Now())
	assert.Equal(t, 0.25, v.Alpha)
}

func TestTimeline_SettleFollowsChainedAnimations(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	tl := anim.NewTimeline(clock.Now)
	v := anim.NewView(tl)

	v.Animate().Alpha(0).Duration(100 * time.Millisecond).WithEndAction(func() {
		v.Animate().TranslationY(40).Duration(100 * time.Millisecond).Start()
	}).Start()

	tl.Settle()

	assert.Equal(t, 0.0, v.Alpha)
	assert.Equal(t, 40.0, v.TranslationY)
	assert.Zero(t, tl.Running())
	assert.Equal(t, uint64(2), tl.Started())
}

func TestInterpolators(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0, anim.AccelerateDecelerate(0), 1e-9)
	assert.InDelta(t, 1, anim.AccelerateDecelerate(1), 1e-9)
	assert.Less(t, anim.AccelerateDecelerate(0.1), anim.Linear(0.1))
	assert.Greater(t, anim.AccelerateDecelerate(0.9), anim.Linear(0.9))
}

func TestVisibility_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "visible", anim.Visible.String())
	assert.Equal(t, "invisible", anim.Invisible.String())
	assert.Equal(t, "gone", anim.Gone.String())
}
