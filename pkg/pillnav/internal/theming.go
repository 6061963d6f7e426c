package internal

import (
	"github.com/BrandonKowalski/pillnav/pkg/pillnav/nav"
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the navigation bar and the screen
// behind it. Colors are typically loaded from CFW theme files.
type Theme struct {
	AccentColor         sdl.Color // Active dot and label color
	IconColor           sdl.Color // Icon color when no tint override is set
	TextColor           sdl.Color // Content text color
	PillColor           sdl.Color // Default pill background
	PillStrokeColor     sdl.Color // Default pill outline
	PillStrokeWidth     int32     // Default pill outline width, in dp
	BackgroundColor     sdl.Color // Screen background color
	FontPath            string    // Path to the label font
	IconFontPath        string    // Path to the font used for glyph icons
	BackgroundImagePath string    // Path to the background image
}

var currentTheme Theme

// SetTheme sets the active theme for the framework.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// NavDefaults converts the theme's pill colors for the option resolver.
func (t Theme) NavDefaults(density float64) nav.ThemeDefaults {
	return nav.ThemeDefaults{
		PillStrokeWidth:     int32(float64(t.PillStrokeWidth)*density + 0.5),
		PillStrokeColor:     ColorToNav(t.PillStrokeColor),
		PillBackgroundColor: ColorToNav(t.PillColor),
	}
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) sdl.Color {
	r := uint8((hex >> 16) & 0xFF)
	g := uint8((hex >> 8) & 0xFF)
	b := uint8(hex & 0xFF)

	return sdl.Color{R: r, G: g, B: b, A: 255}
}

// NavToColor converts a resolved 0xAARRGGBB color.
func NavToColor(c nav.Color) sdl.Color {
	r, g, b, a := c.Components()
	return sdl.Color{R: r, G: g, B: b, A: a}
}

// ColorToNav converts an SDL color to the resolver's representation.
func ColorToNav(c sdl.Color) nav.Color {
	return nav.ARGB(c.A, c.R, c.G, c.B)
}

// WithAlpha scales a color's alpha by opacity in [0,1].
func WithAlpha(c sdl.Color, opacity float64) sdl.Color {
	if opacity <= 0 {
		c.A = 0
		return c
	}
	if opacity < 1 {
		c.A = uint8(float64(c.A) * opacity)
	}
	return c
}
