package internal

import (
	"encoding/json"
	"fmt"

	"github.com/BrandonKowalski/pillnav/pkg/pillnav/constants"
	"github.com/BrandonKowalski/pillnav/pkg/pillnav/internal/logging"
	"github.com/veandco/go-sdl2/sdl"
)

type Source int

const (
	SourceKeyboard Source = iota
	SourceController
	SourcePointer
)

// Event is a mapped button press or release.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Source  Source
	RawCode int
}

// Tap is a completed touch or click in window coordinates.
type Tap struct {
	X, Y int32
}

type InputMapping struct {
	KeyboardMap         map[sdl.Keycode]constants.VirtualButton
	ControllerButtonMap map[sdl.GameControllerButton]constants.VirtualButton
}

// Mapping is the JSON form of an InputMapping.
type Mapping struct {
	KeyboardMap         map[int]int `json:"keyboard_map"`
	ControllerButtonMap map[int]int `json:"controller_button_map"`
}

func DefaultInputMapping() *InputMapping {
	return &InputMapping{
		KeyboardMap: map[sdl.Keycode]constants.VirtualButton{
			sdl.K_UP:        constants.VirtualButtonUp,
			sdl.K_DOWN:      constants.VirtualButtonDown,
			sdl.K_LEFT:      constants.VirtualButtonLeft,
			sdl.K_RIGHT:     constants.VirtualButtonRight,
			sdl.K_a:         constants.VirtualButtonA,
			sdl.K_b:         constants.VirtualButtonB,
			sdl.K_ESCAPE:    constants.VirtualButtonB,
			sdl.K_l:         constants.VirtualButtonL1,
			sdl.K_r:         constants.VirtualButtonR1,
			sdl.K_RETURN:    constants.VirtualButtonStart,
			sdl.K_SPACE:     constants.VirtualButtonSelect,
			sdl.K_h:         constants.VirtualButtonMenu,
			sdl.K_TAB:       constants.VirtualButtonR1,
			sdl.K_BACKSPACE: constants.VirtualButtonB,
		},
		ControllerButtonMap: map[sdl.GameControllerButton]constants.VirtualButton{
			sdl.CONTROLLER_BUTTON_DPAD_UP:       constants.VirtualButtonUp,
			sdl.CONTROLLER_BUTTON_DPAD_DOWN:     constants.VirtualButtonDown,
			sdl.CONTROLLER_BUTTON_DPAD_LEFT:     constants.VirtualButtonLeft,
			sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    constants.VirtualButtonRight,
			sdl.CONTROLLER_BUTTON_A:             constants.VirtualButtonB,
			sdl.CONTROLLER_BUTTON_B:             constants.VirtualButtonA,
			sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.VirtualButtonL1,
			sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.VirtualButtonR1,
			sdl.CONTROLLER_BUTTON_START:         constants.VirtualButtonStart,
			sdl.CONTROLLER_BUTTON_BACK:          constants.VirtualButtonSelect,
			sdl.CONTROLLER_BUTTON_GUIDE:         constants.VirtualButtonMenu,
		},
	}
}

// LoadInputMappingFromBytes decodes a JSON mapping. Buttons it omits keep
// their default bindings.
func LoadInputMappingFromBytes(data []byte) (*InputMapping, error) {
	var m Mapping
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	mapping := DefaultInputMapping()
	for code, button := range m.KeyboardMap {
		mapping.KeyboardMap[sdl.Keycode(code)] = constants.VirtualButton(button)
	}
	for code, button := range m.ControllerButtonMap {
		mapping.ControllerButtonMap[sdl.GameControllerButton(code)] = constants.VirtualButton(button)
	}
	return mapping, nil
}

var (
	globalInputProcessor *Processor
	gameControllers      []*sdl.GameController
	inputMappingBytes    []byte
)

// SetInputMappingBytes overrides the default bindings. Call before Init.
func SetInputMappingBytes(data []byte) {
	inputMappingBytes = data
}

func InitInputProcessor() {
	mapping := DefaultInputMapping()
	if len(inputMappingBytes) > 0 {
		custom, err := LoadInputMappingFromBytes(inputMappingBytes)
		if err != nil {
			logging.GetInternalLogger().Warn("Failed to load custom input mapping, using default", "error", err)
		} else {
			mapping = custom
		}
	}
	globalInputProcessor = NewInputProcessor(mapping)

	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		controller := sdl.GameControllerOpen(i)
		if controller == nil {
			logging.GetInternalLogger().Error("Failed to open game controller", "index", i)
			continue
		}
		logging.GetInternalLogger().Debug("Opened game controller", "index", i, "name", controller.Name())
		gameControllers = append(gameControllers, controller)
	}
}

func CloseAllControllers() {
	for _, c := range gameControllers {
		c.Close()
	}
	gameControllers = nil
}

func GetInputProcessor() *Processor {
	if globalInputProcessor == nil {
		globalInputProcessor = NewInputProcessor(DefaultInputMapping())
	}
	return globalInputProcessor
}

// Processor maps SDL events to virtual buttons and taps.
type Processor struct {
	mapping *InputMapping
}

func NewInputProcessor(mapping *InputMapping) *Processor {
	return &Processor{mapping: mapping}
}

// ProcessSDLEvent returns the mapped button event, or nil for events that
// are not bound buttons.
func (ip *Processor) ProcessSDLEvent(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil
		}
		if button, ok := ip.mapping.KeyboardMap[e.Keysym.Sym]; ok {
			return &Event{Button: button, Pressed: e.Type == sdl.KEYDOWN, Source: SourceKeyboard, RawCode: int(e.Keysym.Sym)}
		}
		logging.GetInternalLogger().Debug("Key not mapped", "key", sdl.GetKeyName(e.Keysym.Sym))
	case *sdl.ControllerButtonEvent:
		if button, ok := ip.mapping.ControllerButtonMap[sdl.GameControllerButton(e.Button)]; ok {
			return &Event{Button: button, Pressed: e.Type == sdl.CONTROLLERBUTTONDOWN, Source: SourceController, RawCode: int(e.Button)}
		}
		logging.GetInternalLogger().Debug("Controller button not mapped",
			"button", sdl.GameControllerGetStringForButton(sdl.GameControllerButton(e.Button)))
	}
	return nil
}

// ProcessPointerEvent returns a tap for a released mouse button or lifted
// finger. Finger coordinates are normalised, so they are scaled to the
// window's logical size.
func (ip *Processor) ProcessPointerEvent(event sdl.Event, width, height int32) (Tap, bool) {
	switch e := event.(type) {
	case *sdl.MouseButtonEvent:
		if e.Type == sdl.MOUSEBUTTONUP && e.Button == sdl.BUTTON_LEFT && e.Which != sdl.TOUCH_MOUSEID {
			return Tap{X: e.X, Y: e.Y}, true
		}
	case *sdl.TouchFingerEvent:
		if e.Type == sdl.FINGERUP {
			return Tap{X: int32(e.X * float32(width)), Y: int32(e.Y * float32(height))}, true
		}
	}
	return Tap{}, false
}
