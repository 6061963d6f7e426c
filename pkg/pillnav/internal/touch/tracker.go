// Package touch turns raw evdev touchscreen events into taps. Handhelds
// without a working SDL touch driver still expose the panel as an input
// device, so taps are read from it directly.
package touch

import (
	"github.com/holoplot/go-evdev"
)

// Point is a position in window pixels.
type Point struct {
	X, Y int32
}

// Axis is the reported range of an absolute axis.
type Axis struct {
	Min, Max int32
}

// Tracker follows one contact and reports a tap when it lifts. It is not
// safe for concurrent use.
type Tracker struct {
	xAxis, yAxis  Axis
	width, height int32

	x, y    int32
	hasX    bool
	hasY    bool
	down    bool
	pending bool
}

// NewTracker scales positions on the given axes to a width x height window.
func NewTracker(xAxis, yAxis Axis, width, height int32) *Tracker {
	return &Tracker{xAxis: xAxis, yAxis: yAxis, width: width, height: height}
}

// Feed consumes one event and returns a tap when a contact has ended. The
// tap is reported on the SYN_REPORT that closes the release, at the last
// position seen while the contact was down.
func (t *Tracker) Feed(ev *evdev.InputEvent) (Point, bool) {
	switch ev.Type {
	case evdev.EV_ABS:
		switch ev.Code {
		case evdev.ABS_X, evdev.ABS_MT_POSITION_X:
			t.x, t.hasX = ev.Value, true
		case evdev.ABS_Y, evdev.ABS_MT_POSITION_Y:
			t.y, t.hasY = ev.Value, true
		case evdev.ABS_MT_TRACKING_ID:
			// -1 ends the contact on type B multitouch panels.
			if ev.Value < 0 {
				t.release()
			} else {
				t.down = true
			}
		}
	case evdev.EV_KEY:
		if ev.Code == evdev.BTN_TOUCH {
			if ev.Value == 0 {
				t.release()
			} else {
				t.down = true
			}
		}
	case evdev.EV_SYN:
		if ev.Code == evdev.SYN_REPORT && t.pending {
			t.pending = false
			if t.hasX && t.hasY {
				return Point{X: scale(t.x, t.xAxis, t.width), Y: scale(t.y, t.yAxis, t.height)}, true
			}
		}
	}
	return Point{}, false
}

func (t *Tracker) release() {
	if t.down {
		t.down = false
		t.pending = true
	}
}

func scale(v int32, axis Axis, size int32) int32 {
	span := int64(axis.Max) - int64(axis.Min)
	if span <= 0 || size <= 0 {
		return v
	}

	p := (int64(v) - int64(axis.Min)) * int64(size-1) / span
	if p < 0 {
		return 0
	}
	if p >= int64(size) {
		return size - 1
	}
	return int32(p)
}
