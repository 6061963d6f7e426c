// Package constants defines shared constants, types, and configuration values
// used throughout pillnav.
package constants

import "time"

// Development is the ENVIRONMENT value that enables windowed development mode.
const Development = "DEV"

// Environment variable names read by the framework.
const (
	EnvironmentEnvVar    = "ENVIRONMENT"
	BackgroundPathEnvVar = "BACKGROUND_PATH"
	WindowWidthEnvVar    = "WINDOW_WIDTH"
	WindowHeightEnvVar   = "WINDOW_HEIGHT"
	DisplayDensityEnvVar = "DISPLAY_DENSITY"
	TouchDeviceEnvVar    = "TOUCH_DEVICE"
	DebugEnvVar          = "PILLNAV_DEBUG"
)

// VirtualButton represents an abstract input button, mapped from physical hardware.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonL1
	VirtualButtonR1
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonL1:
		return "L1"
	case VirtualButtonR1:
		return "R1"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// Default timing and sizing constants.
const (
	DefaultInputDelay = 20 * time.Millisecond // Debounce delay between input events
	FrameDelay        = 16 * time.Millisecond // ~60fps when VSync is unavailable

	DefaultBarHeightDP int32 = 72 // Height of the pill row before insets
	DefaultBarMarginDP int32 = 16 // Gap between the pill and the screen edges
	DefaultIconSizeDP  int32 = 28
	DefaultDotSizeDP   int32 = 6
)
