package constants

import (
	"sync"

	"github.com/caarlos0/env/v11"
)

// Env holds the process environment the framework reads.
type Env struct {
	Environment    string  `env:"ENVIRONMENT"`
	WindowWidth    int32   `env:"WINDOW_WIDTH" envDefault:"1024"`
	WindowHeight   int32   `env:"WINDOW_HEIGHT" envDefault:"768"`
	BackgroundPath string  `env:"BACKGROUND_PATH"`
	DisplayDensity float64 `env:"DISPLAY_DENSITY" envDefault:"1"`
	TouchDevice    string  `env:"TOUCH_DEVICE"`
	Debug          bool    `env:"PILLNAV_DEBUG"`
}

// DefaultEnv is used when the environment cannot be parsed.
func DefaultEnv() Env {
	return Env{
		WindowWidth:    1024,
		WindowHeight:   768,
		DisplayDensity: 1,
	}
}

var (
	loadedEnv Env
	envErr    error
	envOnce   sync.Once
)

// ParseEnv reads the environment. On error the defaults are returned
// alongside it so callers can log and carry on.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return DefaultEnv(), err
	}
	if e.DisplayDensity <= 0 {
		e.DisplayDensity = 1
	}
	return e, nil
}

// LoadEnv parses the environment once per process.
func LoadEnv() (Env, error) {
	envOnce.Do(func() {
		loadedEnv, envErr = ParseEnv()
	})
	return loadedEnv, envErr
}

// IsDevMode reports whether e selects windowed development mode.
func (e Env) IsDevMode() bool {
	return e.Environment == Development
}

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	e, _ := LoadEnv()
	return e.IsDevMode()
}
