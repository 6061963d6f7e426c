package nav

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/pillnav/pkg/pillnav/internal/logging"
)

// Recognised attribute names.
const (
	AttrPillStrokeWidth     = "pillStrokeWidth"
	AttrPillStrokeColor     = "pillStrokeColor"
	AttrPillBackgroundColor = "pillBackgroundColor"
	AttrNavIconTint         = "navIconTint"
	AttrMenu                = "menu"
	AttrDefaultSelected     = "defaultSelected"
	AttrPillCornerRadius    = "pillCornerRadius"
)

// Documented defaults that do not come from the theme.
const (
	DefaultSelectedIndex  = 1
	DefaultCornerRadiusDP = 36
)

// Color is a 32-bit 0xAARRGGBB colour.
type Color uint32

// RGB builds an opaque colour.
func RGB(r, g, b uint8) Color {
	return ARGB(0xFF, r, g, b)
}

// ARGB builds a colour with explicit alpha.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Components splits the colour into its channels.
func (c Color) Components() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// ThemeDefaults supplies the values used when the pill options are absent.
type ThemeDefaults struct {
	PillStrokeWidth     int32
	PillStrokeColor     Color
	PillBackgroundColor Color
}

// Environment describes where the control is being built.
type Environment struct {
	// Density converts density-independent units to pixels. Zero means 1.
	Density  float64
	Defaults ThemeDefaults
}

// DefaultEnvironment returns density 1 with a neutral dark pill.
func DefaultEnvironment() Environment {
	return Environment{
		Density: 1,
		Defaults: ThemeDefaults{
			PillStrokeWidth:     2,
			PillStrokeColor:     ARGB(0x33, 0xFF, 0xFF, 0xFF),
			PillBackgroundColor: RGB(0x1E, 0x23, 0x29),
		},
	}
}

func (e Environment) density() float64 {
	if e.Density <= 0 {
		return 1
	}
	return e.Density
}

// Config is the resolved, immutable option snapshot.
type Config struct {
	PillStrokeWidth     int32
	PillStrokeColor     Color
	PillBackgroundColor Color
	PillCornerRadius    int32
	IconTint            *Color // nil keeps the icons' own colours
	DefaultSelected     int
	Menu                string // Menu resource reference, empty for none
}

// AttributeSource supplies raw option values by name.
type AttributeSource interface {
	Lookup(name string) (string, bool)
}

// Attributes is a map-backed AttributeSource.
type Attributes map[string]string

func (a Attributes) Lookup(name string) (string, bool) {
	v, ok := a[name]
	return v, ok
}

// Resolve builds a Config from src, falling back to documented defaults for
// every option that is absent or malformed. src may be nil.
func Resolve(src AttributeSource, env Environment) Config {
	density := env.density()

	cfg := Config{
		PillStrokeWidth:     env.Defaults.PillStrokeWidth,
		PillStrokeColor:     env.Defaults.PillStrokeColor,
		PillBackgroundColor: env.Defaults.PillBackgroundColor,
		PillCornerRadius:    int32(DefaultCornerRadiusDP * density),
		DefaultSelected:     DefaultSelectedIndex,
	}

	if src == nil {
		return cfg
	}

	r := resolver{src: src, density: density}

	cfg.PillStrokeWidth = r.dimension(AttrPillStrokeWidth, cfg.PillStrokeWidth)
	cfg.PillStrokeColor = r.color(AttrPillStrokeColor, cfg.PillStrokeColor)
	cfg.PillBackgroundColor = r.color(AttrPillBackgroundColor, cfg.PillBackgroundColor)
	cfg.PillCornerRadius = r.dimension(AttrPillCornerRadius, cfg.PillCornerRadius)
	cfg.DefaultSelected = r.integer(AttrDefaultSelected, cfg.DefaultSelected)

	// A fully transparent tint is the "unset" marker.
	if tint := r.color(AttrNavIconTint, 0); tint != 0 {
		cfg.IconTint = &tint
	}

	if menu, ok := src.Lookup(AttrMenu); ok {
		cfg.Menu = strings.TrimSpace(menu)
	}

	return cfg
}

type resolver struct {
	src     AttributeSource
	density float64
}

func (r resolver) dimension(name string, fallback int32) int32 {
	raw, ok := r.src.Lookup(name)
	if !ok {
		return fallback
	}
	px, ok := ParseDimension(raw, r.density)
	if !ok {
		logging.GetInternalLogger().Debug("Ignoring malformed dimension", "attribute", name, "value", raw)
		return fallback
	}
	return px
}

func (r resolver) color(name string, fallback Color) Color {
	raw, ok := r.src.Lookup(name)
	if !ok {
		return fallback
	}
	c, ok := ParseColor(raw)
	if !ok {
		logging.GetInternalLogger().Debug("Ignoring malformed color", "attribute", name, "value", raw)
		return fallback
	}
	return c
}

func (r resolver) integer(name string, fallback int) int {
	raw, ok := r.src.Lookup(name)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		logging.GetInternalLogger().Debug("Ignoring malformed integer", "attribute", name, "value", raw)
		return fallback
	}
	return n
}

// ParseDimension converts "12", "12px", "12dp" or "12dip" to whole pixels.
// Non-zero results are at least one pixel, matching how UI toolkits size
// hairline strokes.
func ParseDimension(raw string, density float64) (int32, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))

	scale := 1.0
	switch {
	case strings.HasSuffix(s, "dip"):
		s, scale = strings.TrimSuffix(s, "dip"), density
	case strings.HasSuffix(s, "dp"):
		s, scale = strings.TrimSuffix(s, "dp"), density
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}

	px := v * scale
	if px > math.MaxInt32 {
		return 0, false
	}
	out := int32(px + 0.5)
	if out == 0 && px > 0 {
		out = 1
	}
	return out, true
}

// ParseColor accepts #RGB, #RRGGBB, #AARRGGBB and the same forms prefixed
// with 0x. Six-digit forms are opaque.
func ParseColor(raw string) (Color, bool) {
	s := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(s, "#"):
		s = s[1:]
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = s[2:]
	default:
		if s != "0" {
			return 0, false
		}
	}

	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, false
	}

	switch len(s) {
	case 1:
		// bare "0", the conventional "no colour"
		if v == 0 {
			return 0, true
		}
	case 6:
		return Color(0xFF000000 | uint32(v)), true
	case 8:
		return Color(v), true
	}
	return 0, false
}
