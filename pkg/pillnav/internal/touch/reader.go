package touch

import (
	"fmt"
	"sync"

	"github.com/BrandonKowalski/pillnav/pkg/pillnav/internal/logging"
	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// tapBuffer is how many taps may queue while the UI thread is busy.
const tapBuffer = 8

// Reader reads a touchscreen device on its own goroutine. Taps are handed
// over on a channel; the reader never touches UI state.
type Reader struct {
	device  *evdev.InputDevice
	tracker *Tracker
	taps    chan Point
	running *atomic.Bool
	dropped *atomic.Int64
	wg      sync.WaitGroup

	mu      sync.Mutex
	started bool
	stopped bool
}

// Open opens the device at path and maps its axes onto a width x height
// window.
func Open(path string, width, height int32) (*Reader, error) {
	device, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open touch device %s: %w", path, err)
	}

	infos, err := device.AbsInfos()
	if err != nil {
		device.Close()
		return nil, fmt.Errorf("read axes of %s: %w", path, err)
	}

	xAxis := axisFor(infos, evdev.ABS_MT_POSITION_X, evdev.ABS_X)
	yAxis := axisFor(infos, evdev.ABS_MT_POSITION_Y, evdev.ABS_Y)

	name, _ := device.Name()
	logging.GetInternalLogger().Debug("Opened touch device",
		"path", path,
		"name", name,
		"x_axis", xAxis,
		"y_axis", yAxis,
	)

	return newReader(device, NewTracker(xAxis, yAxis, width, height)), nil
}

func newReader(device *evdev.InputDevice, tracker *Tracker) *Reader {
	return &Reader{
		device:  device,
		tracker: tracker,
		taps:    make(chan Point, tapBuffer),
		running: atomic.NewBool(false),
		dropped: atomic.NewInt64(0),
	}
}

func axisFor(infos map[evdev.EvCode]evdev.AbsInfo, codes ...evdev.EvCode) Axis {
	for _, code := range codes {
		if info, ok := infos[code]; ok && info.Maximum > info.Minimum {
			return Axis{Min: info.Minimum, Max: info.Maximum}
		}
	}
	return Axis{}
}

// Start begins reading. Calling it on a running or closed reader does
// nothing.
func (r *Reader) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started || r.stopped {
		return
	}
	r.started = true
	r.running.Store(true)

	r.wg.Add(1)
	go r.loop()
}

// Taps delivers completed taps. It is closed when the reader stops.
func (r *Reader) Taps() <-chan Point {
	return r.taps
}

// Dropped counts taps discarded because the channel was full.
func (r *Reader) Dropped() int64 {
	return r.dropped.Load()
}

// Close stops the reader and releases the device. Only the first call has
// any effect. The taps channel is closed by the read loop once it exits,
// or here when the loop never started.
func (r *Reader) Close() error {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return nil
	}
	r.stopped = true
	started := r.started
	r.running.Store(false)
	r.mu.Unlock()

	err := r.device.Close()
	if started {
		r.wg.Wait()
	} else {
		close(r.taps)
	}
	return err
}

func (r *Reader) loop() {
	defer r.wg.Done()
	defer close(r.taps)

	for r.running.Load() {
		ev, err := r.device.ReadOne()
		if err != nil {
			if r.running.Load() {
				logging.GetInternalLogger().Error("Touch device read failed", "error", err)
				r.running.Store(false)
			}
			return
		}

		if p, ok := r.tracker.Feed(ev); ok {
			select {
			case r.taps <- p:
			default:
				r.dropped.Inc()
			}
		}
	}
}
