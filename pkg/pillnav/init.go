// Package pillnav provides a bottom navigation bar for SDL applications on
// embedded Linux devices, particularly handheld gaming consoles running
// custom firmware like Cannoli.
//
// The bar shows up to five slots inside a rounded pill. The selected slot
// swaps its icon for a label and an indicator dot with a short animation;
// every other slot shows its icon, slightly shrunk. Selection is driven by
// taps, the d-pad or SetSelected, and a listener hears about every change.
package pillnav

import (
	"log/slog"

	"golang.org/x/text/language"

	"github.com/BrandonKowalski/pillnav/pkg/pillnav/constants"
	"github.com/BrandonKowalski/pillnav/pkg/pillnav/i18n"
	"github.com/BrandonKowalski/pillnav/pkg/pillnav/internal"
	"github.com/BrandonKowalski/pillnav/pkg/pillnav/internal/logging"
	"github.com/BrandonKowalski/pillnav/pkg/pillnav/platform/cannoli"
)

// Padding is spacing on each side of the bar.
type Padding = internal.Padding

// WindowOptions configures SDL window creation flags.
type WindowOptions = internal.WindowOptions

// Options configures the pillnav framework initialization.
type Options struct {
	WindowTitle          string        // Window title displayed in windowed mode
	ShowBackground       bool          // Whether to render the theme background image
	WindowOptions        WindowOptions // SDL window flags (borderless, resizable, etc.)
	PrimaryThemeColorHex uint32        // Custom accent color for the dot and label
	FontPath             string        // Label font, defaults to the Cannoli system font
	IconFontPath         string        // Font used for glyph icons
	LogPath              string        // Full path for log file including filename (creates parent directories)
	Language             string        // BCP 47 code for menu titles, empty for untranslated
	TranslationFiles     []string      // TOML or JSON go-i18n message files
	InputMappingBytes    []byte        // Custom controller/keyboard bindings as JSON
}

// Init initializes the SDL subsystems, theming, translations and input
// handling. Must be called before BottomNavigation or Render.
func Init(options Options) error {
	if options.LogPath != "" {
		logging.SetLogPath(options.LogPath)
	}

	env, err := constants.LoadEnv()
	if env.Debug {
		logging.SetInternalLogLevel(slog.LevelDebug)
	} else {
		logging.SetInternalLogLevel(slog.LevelError)
	}
	if err != nil {
		logging.GetInternalLogger().Warn("Invalid environment; using defaults", "error", err)
	}

	fontPath := options.FontPath
	if fontPath == "" {
		fontPath = cannoli.FontPath
	}
	iconFontPath := options.IconFontPath
	if iconFontPath == "" {
		iconFontPath = cannoli.IconFontPath
	}

	theme := cannoli.InitCannoliTheme(fontPath, iconFontPath)
	if options.PrimaryThemeColorHex != 0 {
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
	}
	internal.SetTheme(theme)

	if err := SetLanguage(options.Language, options.TranslationFiles...); err != nil {
		return err
	}

	if len(options.InputMappingBytes) > 0 {
		internal.SetInputMappingBytes(options.InputMappingBytes)
	}

	if err := internal.Init(options.WindowTitle, options.ShowBackground, options.WindowOptions); err != nil {
		return NewInfrastructureError("init", err)
	}
	return nil
}

// SetLanguage loads go-i18n message files and makes code the language for
// menu titles. An empty code does nothing. Menus loaded afterwards are
// translated; already loaded menus are not.
func SetLanguage(code string, files ...string) error {
	if code == "" {
		return nil
	}

	lang, err := language.Parse(code)
	if err != nil {
		return NewInfrastructureError("load_translations", err)
	}
	if err := i18n.Init(lang, files...); err != nil {
		return NewInfrastructureError("load_translations", err)
	}
	return nil
}

// Close releases all SDL resources and shuts down the UI framework.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	logging.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return logging.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	logging.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	logging.SetRawLogLevel(level)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
