// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/pillnav/pkg/pillnav/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Default asset locations on a Cannoli SD card.
const (
	FontPath     = "/mnt/SDCARD/System/fonts/Cannoli.ttf"
	IconFontPath = "/mnt/SDCARD/System/fonts/MaterialDesignIcons.ttf"
)

// InitCannoliTheme creates a theme with Cannoli's default colors and the specified fonts.
func InitCannoliTheme(fontPath, iconFontPath string) internal.Theme {
	return internal.Theme{
		AccentColor:     internal.HexToColor(0x008080),
		IconColor:       internal.HexToColor(0xFFFFFF),
		TextColor:       internal.HexToColor(0xFFFFFF),
		PillColor:       internal.HexToColor(0x1E2329),
		PillStrokeColor: sdl.Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x33},
		PillStrokeWidth: 2,
		BackgroundColor: internal.HexToColor(0x101317),
		FontPath:        fontPath,
		IconFontPath:    iconFontPath,
	}
}
