package pillnav

import (
	"time"

	"github.com/BrandonKowalski/pillnav/pkg/pillnav/constants"
	"github.com/BrandonKowalski/pillnav/pkg/pillnav/internal"
	"github.com/BrandonKowalski/pillnav/pkg/pillnav/internal/dpad"
	"github.com/BrandonKowalski/pillnav/pkg/pillnav/internal/logging"
	"github.com/BrandonKowalski/pillnav/pkg/pillnav/internal/touch"
	"github.com/BrandonKowalski/pillnav/pkg/pillnav/nav"
	"github.com/veandco/go-sdl2/sdl"
)

// BottomNavSettings configures the BottomNavigation screen.
type BottomNavSettings struct {
	// Attributes holds the style options. nil uses the defaults.
	Attributes nav.AttributeSource
	// ConfirmButton leaves the screen with the current selection (default: VirtualButtonA)
	ConfirmButton constants.VirtualButton
	// BackButton is the button used to go back/cancel (default: VirtualButtonB)
	BackButton constants.VirtualButton
	// DisableBackButton disables the back button
	DisableBackButton bool
	// ExitOnTap leaves the screen as soon as a slot is tapped.
	ExitOnTap bool
	// Insets reserves room along the screen edges, such as a gesture bar.
	Insets Padding
	// TouchDevice is an evdev touchscreen to read taps from. Empty uses
	// TOUCH_DEVICE; SDL touch and mouse events are always handled.
	TouchDevice string
	// OnItemSelected hears every selection change, including the default
	// selection made when the screen first lays out.
	OnItemSelected func(index int)
	// RenderContent draws the area above the bar each frame.
	RenderContent func(renderer *sdl.Renderer, area sdl.Rect, selected int)
	// OnBack runs when the back button is pressed. Returning true keeps the
	// screen open, for hosts that walk a tab history before leaving.
	OnBack func(bar *BottomNav) bool
	// Setup runs once on the bar before the first frame, for SetLabel or
	// SetIcon calls that depend on runtime state.
	Setup func(bar *BottomNav)
}

type bottomNavController struct {
	bar           *BottomNav
	settings      BottomNavSettings
	confirmButton constants.VirtualButton
	backButton    constants.VirtualButton
	directional   dpad.Input
	touch         *touch.Reader
	taps          <-chan touch.Point
	inputDelay    time.Duration
	lastInputTime time.Time
	result        *BottomNavResult
	cancelled     bool
}

// BottomNavigation shows the bar with menu and blocks until the user
// confirms, taps with ExitOnTap set, presses Menu, or backs out. Backing
// out returns ErrCancelled.
func BottomNavigation(menu []MenuItem, settings BottomNavSettings) (*BottomNavResult, error) {
	window := internal.GetWindow()
	if window == nil {
		return nil, ErrNotInitialized
	}

	bar, err := NewBottomNav(BottomNavOptions{
		Attributes:     settings.Attributes,
		Menu:           menu,
		OnItemSelected: settings.OnItemSelected,
	})
	if err != nil {
		return nil, err
	}
	defer bar.Destroy()

	bar.SetInsets(settings.Insets)
	if settings.Setup != nil {
		settings.Setup(bar)
	}

	c := &bottomNavController{
		bar:           bar,
		settings:      settings,
		confirmButton: settings.ConfirmButton,
		backButton:    settings.BackButton,
		directional:   dpad.New(),
		inputDelay:    constants.DefaultInputDelay,
		lastInputTime: time.Now(),
	}

	if c.confirmButton == constants.VirtualButtonUnassigned {
		c.confirmButton = constants.VirtualButtonA
	}
	if c.backButton == constants.VirtualButtonUnassigned {
		c.backButton = constants.VirtualButtonB
	}

	c.openTouch(window)
	defer c.closeTouch()

	for {
		if !c.handleEvents(window) || !c.handleTouch() {
			break
		}
		if step := c.directional.Update(); step != 0 {
			c.bar.machine.Step(step)
		}

		c.bar.Tick(time.Now())
		c.render(window)
	}

	if c.cancelled {
		return nil, ErrCancelled
	}
	return c.result, nil
}

func (c *bottomNavController) openTouch(window *internal.Window) {
	device := c.settings.TouchDevice
	if device == "" {
		env, _ := constants.LoadEnv()
		device = env.TouchDevice
	}
	if device == "" {
		return
	}

	reader, err := touch.Open(device, window.GetWidth(), window.GetHeight())
	if err != nil {
		logging.GetInternalLogger().Warn("Touch device unavailable; using SDL touch events", "device", device, "error", err)
		return
	}
	reader.Start()
	c.touch = reader
	c.taps = reader.Taps()
}

func (c *bottomNavController) closeTouch() {
	if c.touch == nil {
		return
	}
	if err := c.touch.Close(); err != nil {
		logging.GetInternalLogger().Debug("Closing touch device", "error", err)
	}
	if n := c.touch.Dropped(); n > 0 {
		logging.GetInternalLogger().Debug("Touch taps dropped", "count", n)
	}
}

func (c *bottomNavController) handleEvents(window *internal.Window) bool {
	processor := internal.GetInputProcessor()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch event.(type) {
		case *sdl.QuitEvent:
			c.cancelled = true
			return false

		case *sdl.MouseButtonEvent, *sdl.TouchFingerEvent:
			if tap, ok := processor.ProcessPointerEvent(event, window.GetWidth(), window.GetHeight()); ok {
				if !c.tap(tap.X, tap.Y) {
					return false
				}
			}

		case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent:
			inputEvent := processor.ProcessSDLEvent(event)
			if inputEvent == nil {
				continue
			}

			if !inputEvent.Pressed {
				c.directional.SetHeld(inputEvent.Button, false)
				continue
			}

			if time.Since(c.lastInputTime) < c.inputDelay {
				continue
			}
			c.lastInputTime = time.Now()

			if step := c.directional.SetHeld(inputEvent.Button, true); step != 0 {
				c.bar.machine.Step(step)
				continue
			}
			if c.bar.HandleInput(inputEvent.Button) {
				continue
			}

			switch inputEvent.Button {
			case c.confirmButton, constants.VirtualButtonStart:
				c.finish(BottomNavActionConfirmed)
				return false
			case constants.VirtualButtonMenu:
				c.finish(BottomNavActionMenu)
				return false
			case c.backButton:
				if c.settings.DisableBackButton {
					continue
				}
				if c.settings.OnBack != nil && c.settings.OnBack(c.bar) {
					continue
				}
				c.cancelled = true
				return false
			}
		}
	}
	return true
}

// handleTouch drains taps from the touchscreen reader without blocking.
func (c *bottomNavController) handleTouch() bool {
	if c.taps == nil {
		return true
	}
	for {
		select {
		case p, ok := <-c.taps:
			if !ok {
				c.taps = nil
				return true
			}
			if !c.tap(p.X, p.Y) {
				return false
			}
		default:
			return true
		}
	}
}

// tap forwards a tap to the bar and reports whether the screen stays open.
func (c *bottomNavController) tap(x, y int32) bool {
	if !c.bar.HandleTap(x, y) {
		return true
	}
	if c.settings.ExitOnTap {
		c.finish(BottomNavActionTapped)
		return false
	}
	return true
}

func (c *bottomNavController) finish(action BottomNavAction) {
	c.result = &BottomNavResult{
		SelectedIndex: c.bar.Selected(),
		Action:        action,
	}
}

func (c *bottomNavController) render(window *internal.Window) {
	renderer := window.Renderer
	bounds := nav.Rect{W: window.GetWidth(), H: window.GetHeight()}

	c.bar.Layout(bounds)

	window.RenderBackground()

	if c.settings.RenderContent != nil {
		area := sdlRect(c.bar.Geometry().Content(bounds))
		renderer.SetClipRect(&area)
		c.settings.RenderContent(renderer, area, c.bar.Selected())
		renderer.SetClipRect(nil)
	}

	c.bar.Render(renderer)
	window.Present()
}
