package touch

import (
	"testing"

	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
)

func abs(code evdev.EvCode, v int32) *evdev.InputEvent {
	return &evdev.InputEvent{Type: evdev.EV_ABS, Code: code, Value: v}
}

func key(code evdev.EvCode, v int32) *evdev.InputEvent {
	return &evdev.InputEvent{Type: evdev.EV_KEY, Code: code, Value: v}
}

func syn() *evdev.InputEvent {
	return &evdev.InputEvent{Type: evdev.EV_SYN, Code: evdev.SYN_REPORT}
}

func feedAll(t *Tracker, events ...*evdev.InputEvent) []Point {
	var taps []Point
	for _, ev := range events {
		if p, ok := t.Feed(ev); ok {
			taps = append(taps, p)
		}
	}
	return taps
}

func TestTracker_SingleTouchTap(t *testing.T) {
	t.Parallel()

	tr := NewTracker(Axis{0, 4095}, Axis{0, 4095}, 1024, 768)

	taps := feedAll(tr,
		key(evdev.BTN_TOUCH, 1),
		abs(evdev.ABS_X, 2048),
		abs(evdev.ABS_Y, 4095),
		syn(),
		key(evdev.BTN_TOUCH, 0),
		syn(),
	)

	assert.Equal(t, []Point{{X: 511, Y: 767}}, taps)
}

func TestTracker_MultitouchProtocolB(t *testing.T) {
	t.Parallel()

	tr := NewTracker(Axis{0, 720}, Axis{0, 1280}, 720, 1280)

	taps := feedAll(tr,
		abs(evdev.ABS_MT_TRACKING_ID, 12),
		abs(evdev.ABS_MT_POSITION_X, 100),
		abs(evdev.ABS_MT_POSITION_Y, 1200),
		syn(),
		abs(evdev.ABS_MT_POSITION_X, 110),
		syn(),
		abs(evdev.ABS_MT_TRACKING_ID, -1),
		syn(),
	)

	assert.Len(t, taps, 1)
	assert.Equal(t, int32(109), taps[0].X)
	assert.Equal(t, int32(1199), taps[0].Y)
}

func TestTracker_NoTapWithoutPosition(t *testing.T) {
	t.Parallel()

	tr := NewTracker(Axis{0, 100}, Axis{0, 100}, 100, 100)

	taps := feedAll(tr,
		key(evdev.BTN_TOUCH, 1),
		syn(),
		key(evdev.BTN_TOUCH, 0),
		syn(),
	)

	assert.Empty(t, taps)
}

func TestTracker_ReleaseWithoutPressIgnored(t *testing.T) {
	t.Parallel()

	tr := NewTracker(Axis{0, 100}, Axis{0, 100}, 100, 100)

	taps := feedAll(tr,
		abs(evdev.ABS_X, 50),
		abs(evdev.ABS_Y, 50),
		key(evdev.BTN_TOUCH, 0),
		syn(),
	)

	assert.Empty(t, taps)
}

func TestScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    int32
		axis Axis
		size int32
		want int32
	}{
		{"min", 0, Axis{0, 1000}, 500, 0},
		{"max", 1000, Axis{0, 1000}, 500, 499},
		{"offset axis", 150, Axis{100, 200}, 101, 50},
		{"below range clamps", -20, Axis{0, 1000}, 500, 0},
		{"above range clamps", 2000, Axis{0, 1000}, 500, 499},
		{"unknown axis passes through", 321, Axis{}, 500, 321},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scale(tt.v, tt.axis, tt.size))
		})
	}
}
