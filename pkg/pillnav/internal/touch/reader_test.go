package touch

import (
	"testing"
	"time"

	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deadReader wraps a device with no file, so every read fails at once.
func deadReader() *Reader {
	return newReader(&evdev.InputDevice{}, NewTracker(Axis{Max: 1023}, Axis{Max: 767}, 640, 480))
}

func drain(t *testing.T, taps <-chan Point) {
	t.Helper()

	select {
	case _, ok := <-taps:
		require.False(t, ok, "expected taps to be closed")
	case <-time.After(time.Second):
		t.Fatal("taps was not closed after the read loop stopped")
	}
}

func TestReader_CloseAfterReadFailure(t *testing.T) {
	t.Parallel()

	r := deadReader()
	r.Start()
	drain(t, r.Taps())

	assert.NotPanics(t, func() { _ = r.Close() })
	assert.NotPanics(t, func() { _ = r.Close() })
}

func TestReader_CloseWithoutStart(t *testing.T) {
	t.Parallel()

	r := deadReader()
	assert.NotPanics(t, func() { _ = r.Close() })
	drain(t, r.Taps())

	// Starting a closed reader must not launch a second closer.
	r.Start()
	assert.NotPanics(t, func() { _ = r.Close() })
}

func TestReader_StartTwice(t *testing.T) {
	t.Parallel()

	r := deadReader()
	r.Start()
	r.Start()
	drain(t, r.Taps())

	assert.NotPanics(t, func() { _ = r.Close() })
	assert.Zero(t, r.Dropped())
}
