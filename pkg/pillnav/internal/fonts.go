package internal

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/pillnav/pkg/pillnav/internal/logging"
	"github.com/veandco/go-sdl2/ttf"
)

// Font sizes at density 1.
const (
	LabelFontSizeDP = 14
	IconFontSizeDP  = 28
)

// ErrNoFont is returned when the theme names no label font.
var ErrNoFont = errors.New("no font configured")

type fontsManager struct {
	LabelFont *ttf.Font
	IconFont  *ttf.Font
}

// Fonts holds the fonts opened by Init.
var Fonts fontsManager

func initFonts(w *Window) error {
	theme := GetTheme()
	if theme.FontPath == "" {
		return ErrNoFont
	}

	label, err := ttf.OpenFont(theme.FontPath, int(w.DP(LabelFontSizeDP)))
	if err != nil {
		return fmt.Errorf("open font %s: %w", theme.FontPath, err)
	}
	Fonts.LabelFont = label

	// Glyph icons fall back to the label font.
	Fonts.IconFont = label
	if theme.IconFontPath != "" {
		icon, err := ttf.OpenFont(theme.IconFontPath, int(w.DP(IconFontSizeDP)))
		if err != nil {
			logging.GetInternalLogger().Warn("Failed to load icon font, using label font", "path", theme.IconFontPath, "error", err)
		} else {
			Fonts.IconFont = icon
		}
	}

	return nil
}

func closeFonts() {
	if Fonts.IconFont != nil && Fonts.IconFont != Fonts.LabelFont {
		Fonts.IconFont.Close()
	}
	if Fonts.LabelFont != nil {
		Fonts.LabelFont.Close()
	}
	Fonts = fontsManager{}
}
