package internal

import (
	"fmt"

	"github.com/BrandonKowalski/pillnav/pkg/pillnav/constants"
	"github.com/BrandonKowalski/pillnav/pkg/pillnav/internal/logging"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// Init brings up SDL, the window and renderer, fonts and input devices.
func Init(title string, showBackground bool, winOpts WindowOptions) error {
	env, err := constants.LoadEnv()
	if err != nil {
		logging.GetInternalLogger().Warn("Invalid environment; using defaults", "error", err)
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("ttf init: %w", err)
	}

	img.Init(img.INIT_PNG | img.INIT_JPG | img.INIT_WEBP)

	InitInputProcessor()

	if winOpts == (WindowOptions{}) {
		if env.IsDevMode() {
			winOpts = WindowOptions{Resizable: true}
		} else {
			winOpts = WindowOptions{Borderless: true, Fullscreen: true}
		}
	}

	window, err = initWindow(title, showBackground, winOpts, env)
	if err != nil {
		return abortInit(err)
	}

	if err := initFonts(window); err != nil {
		return abortInit(err)
	}

	return nil
}

// abortInit undoes a partial Init. The window is cleared so a later
// SDLCleanup does not close it twice.
func abortInit(err error) error {
	if window != nil {
		window.closeWindow()
		window = nil
	}
	CloseAllControllers()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	return err
}

// SDLCleanup releases everything Init acquired.
func SDLCleanup() {
	if window != nil {
		window.closeWindow()
		window = nil
	}
	CloseAllControllers()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	logging.CloseLogger()
}
