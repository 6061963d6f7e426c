package pillnav

import (
	"math"
	"time"

	"github.com/BrandonKowalski/pillnav/pkg/pillnav/constants"
	"github.com/BrandonKowalski/pillnav/pkg/pillnav/internal"
	"github.com/BrandonKowalski/pillnav/pkg/pillnav/internal/logging"
	"github.com/BrandonKowalski/pillnav/pkg/pillnav/nav"
	"github.com/BrandonKowalski/pillnav/pkg/pillnav/resources"
	"github.com/veandco/go-sdl2/sdl"
)

// BottomNavOptions configures a BottomNav.
type BottomNavOptions struct {
	// Attributes holds the style options. nil uses the defaults.
	Attributes nav.AttributeSource
	// Menu populates the slots. When nil the style's menu reference is
	// loaded instead, if it names one.
	Menu []MenuItem
	// Padding surrounds the pill. Zero uses the default margin.
	Padding Padding
	// OnItemSelected hears every selection change.
	OnItemSelected func(index int)
}

// BottomNav is the bar widget. It draws with SDL but holds its selection
// and animation state in a nav.Machine, so every method must be called on
// the thread that renders.
type BottomNav struct {
	machine  *nav.Machine
	density  float64
	padding  Padding
	insets   Padding
	geometry nav.Geometry
	textures *internal.TextureCache
	failed   map[string]bool
}

// NewBottomNav resolves the style, loads the menu and builds the bar with
// nothing selected. The default selection is applied by the first Layout.
func NewBottomNav(opts BottomNavOptions) (*BottomNav, error) {
	density := displayDensity()
	cfg := nav.Resolve(opts.Attributes, navEnvironment(density))

	menu := opts.Menu
	if menu == nil && cfg.Menu != "" {
		loaded, err := LoadMenu(cfg.Menu)
		if err != nil {
			return nil, err
		}
		menu = loaded
	}

	var machineOpts []nav.Option
	if opts.OnItemSelected != nil {
		machineOpts = append(machineOpts, nav.WithListener(opts.OnItemSelected))
	}

	b := &BottomNav{
		machine:  nav.NewMachine(cfg, menu, machineOpts...),
		density:  density,
		padding:  opts.Padding,
		textures: internal.NewTextureCache(),
		failed:   make(map[string]bool),
	}
	if b.padding == (internal.Padding{}) {
		b.padding = internal.UniformPadding(b.dp(float64(constants.DefaultBarMarginDP)))
	}

	logging.GetInternalLogger().Debug("Bottom navigation created",
		"slots", len(b.machine.Registry().Visible()),
		"default_selected", cfg.DefaultSelected,
		"corner_radius", cfg.PillCornerRadius,
	)
	return b, nil
}

func displayDensity() float64 {
	if w := internal.GetWindow(); w != nil && w.Density > 0 {
		return w.Density
	}
	env, _ := constants.LoadEnv()
	return env.DisplayDensity
}

// navEnvironment takes the pill defaults from the theme once Init has set
// one.
func navEnvironment(density float64) nav.Environment {
	env := nav.DefaultEnvironment()
	env.Density = density

	theme := internal.GetTheme()
	if theme.PillColor != (sdl.Color{}) {
		env.Defaults = theme.NavDefaults(density)
	}
	return env
}

func (b *BottomNav) dp(v float64) int32 {
	return int32(math.Round(v * b.density))
}

// Machine exposes the selection state machine.
func (b *BottomNav) Machine() *nav.Machine {
	return b.machine
}

// Config returns the resolved style.
func (b *BottomNav) Config() nav.Config {
	return b.machine.Config()
}

// Selected returns the selected index, nav.NoSelection before the first layout.
func (b *BottomNav) Selected() int {
	return b.machine.Selected()
}

// SetSelected selects index. See nav.Machine.SetSelected.
func (b *BottomNav) SetSelected(index int) {
	b.machine.SetSelected(index)
}

// SetLabel replaces a slot's label. Out-of-range indexes are ignored.
func (b *BottomNav) SetLabel(index int, text string) {
	b.machine.SetLabel(index, text)
}

// SetIcon replaces a slot's icon. Out-of-range indexes are ignored.
func (b *BottomNav) SetIcon(index int, icon Icon) {
	b.machine.SetIcon(index, icon)
}

// SetOnItemSelected replaces the selection listener.
func (b *BottomNav) SetOnItemSelected(fn func(index int)) {
	b.machine.SetOnItemSelected(fn)
}

// SetInsets sets the system insets added to the base padding, such as a
// gesture bar along the bottom edge. Each call replaces the previous insets.
func (b *BottomNav) SetInsets(insets Padding) {
	b.insets = insets
}

// Layout places the bar at the bottom of bounds. The first call applies
// the default selection.
func (b *BottomNav) Layout(bounds nav.Rect) {
	pad := b.padding.Add(b.insets)
	b.geometry = nav.Layout(bounds,
		nav.Insets{Top: pad.Top, Right: pad.Right, Bottom: pad.Bottom, Left: pad.Left},
		b.dp(float64(constants.DefaultBarHeightDP)),
		b.machine.Registry(),
	)
	b.machine.AfterFirstLayout()
}

// Geometry returns the result of the last Layout.
func (b *BottomNav) Geometry() nav.Geometry {
	return b.geometry
}

// Tick advances the transitions to now.
func (b *BottomNav) Tick(now time.Time) {
	b.machine.Tick(now)
}

// HandleTap selects the slot under the point. It reports whether the point
// hit a slot.
func (b *BottomNav) HandleTap(x, y int32) bool {
	index := b.geometry.HitTest(x, y)
	if index == nav.NoSelection {
		return false
	}
	b.machine.SetSelected(index)
	return true
}

// HandleInput moves the selection along the visible slots for left/right
// and the shoulder buttons. It reports whether the button was consumed.
func (b *BottomNav) HandleInput(button constants.VirtualButton) bool {
	switch button {
	case constants.VirtualButtonLeft, constants.VirtualButtonL1:
		b.machine.Step(-1)
	case constants.VirtualButtonRight, constants.VirtualButtonR1:
		b.machine.Step(1)
	default:
		return false
	}
	return true
}

// Destroy frees the cached textures.
func (b *BottomNav) Destroy() {
	b.textures.Destroy()
}

// Render draws the pill and every visible slot at its current animation
// values.
func (b *BottomNav) Render(renderer *sdl.Renderer) {
	cfg := b.machine.Config()

	pill := sdlRect(b.geometry.Pill)
	if pill.W <= 0 || pill.H <= 0 {
		return
	}
	internal.DrawPill(renderer, &pill, cfg.PillCornerRadius, cfg.PillStrokeWidth,
		internal.NavToColor(cfg.PillBackgroundColor),
		internal.NavToColor(cfg.PillStrokeColor),
	)

	theme := internal.GetTheme()
	for _, s := range b.machine.Registry().Visible() {
		b.renderSlot(renderer, s, b.geometry.Slots[s.Index], cfg, theme)
	}
}

func (b *BottomNav) renderSlot(renderer *sdl.Renderer, s *nav.Slot, rect nav.Rect, cfg nav.Config, theme internal.Theme) {
	if rect.Empty() {
		return
	}

	// Children scale about the slot centre with the container.
	scale := s.Container.ScaleX
	cx, cy := float64(rect.CenterX()), float64(rect.CenterY())
	place := func(x, y, w, h float64) *sdl.Rect {
		w, h = w*scale, h*scale
		x = cx + (x-cx)*scale
		y = cy + (y-cy)*scale
		return &sdl.Rect{X: int32(math.Round(x - w/2)), Y: int32(math.Round(y - h/2)), W: int32(math.Round(w)), H: int32(math.Round(h))}
	}

	if s.Icon.Shown() && s.Icon.Alpha > 0 {
		size := float64(b.dp(float64(constants.DefaultIconSizeDP)))
		if tex := b.iconTexture(renderer, s.IconRef, int32(size)); tex != nil {
			color := sdl.Color{R: 255, G: 255, B: 255, A: 255}
			if cfg.IconTint != nil {
				color = internal.NavToColor(*cfg.IconTint)
			} else if resources.IsGlyph(s.IconRef) {
				color = theme.IconColor
			}
			modulate(tex, color, s.Icon.Alpha)

			dy := s.Icon.TranslationY * b.density
			renderer.Copy(tex, nil, place(cx, cy+dy, size*s.Icon.ScaleX, size*s.Icon.ScaleY))
		}
	}

	dotSize := float64(b.dp(float64(constants.DefaultDotSizeDP)))
	gap := float64(b.dp(4))

	labelHeight := 0.0
	if s.Label.Shown() {
		if tex := b.textTexture(renderer, s.Text); tex != nil {
			_, _, w, h, err := tex.Query()
			if err == nil {
				labelHeight = float64(h)
				modulate(tex, theme.TextColor, s.Label.Alpha)

				y := cy - (dotSize+gap)/2 + s.Label.TranslationY*b.density
				renderer.Copy(tex, nil, place(cx, y, float64(w), float64(h)))
			}
		}
	}

	if s.Dot.Shown() && s.Dot.Alpha > 0 {
		y := cy - (dotSize+gap)/2 + labelHeight/2 + gap + dotSize/2 + s.Dot.TranslationY*b.density
		center := place(cx, y, 0, 0)
		radius := int32(math.Round(dotSize / 2 * s.Dot.ScaleX * scale))
		internal.DrawDot(renderer, center.X, center.Y, radius, internal.WithAlpha(theme.AccentColor, s.Dot.Alpha))
	}
}

func (b *BottomNav) iconTexture(renderer *sdl.Renderer, icon nav.Icon, size int32) *sdl.Texture {
	tex, err := b.textures.Icon(renderer, icon, size)
	if err != nil {
		b.logOnce("icon:"+string(icon), "Failed to load icon", err)
		return nil
	}
	return tex
}

func (b *BottomNav) textTexture(renderer *sdl.Renderer, text string) *sdl.Texture {
	tex, err := b.textures.Text(renderer, text)
	if err != nil {
		b.logOnce("text:"+text, "Failed to render label", err)
		return nil
	}
	return tex
}

func (b *BottomNav) logOnce(key, msg string, err error) {
	if b.failed[key] {
		return
	}
	b.failed[key] = true
	logging.GetInternalLogger().Warn(msg, "key", key, "error", err)
}

func modulate(tex *sdl.Texture, color sdl.Color, alpha float64) {
	tex.SetColorMod(color.R, color.G, color.B)
	tex.SetAlphaMod(internal.WithAlpha(color, alpha).A)
}

func sdlRect(r nav.Rect) sdl.Rect {
	return sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}
