package pillnav

import (
	"github.com/BrandonKowalski/pillnav/pkg/pillnav/i18n"
	"github.com/BrandonKowalski/pillnav/pkg/pillnav/nav"
	"github.com/BrandonKowalski/pillnav/pkg/pillnav/resources"
)

// MenuItem is one entry of the bar, in slot order.
type MenuItem = nav.MenuEntry

// Icon references an image file (PNG, JPEG, WebP or SVG) or a font glyph.
type Icon = nav.Icon

// GlyphIcon returns an Icon drawn from the theme's icon font.
func GlyphIcon(glyph string) Icon {
	return resources.Glyph(glyph)
}

// LoadMenu reads a TOML or YAML menu file. Titles with a title_id are
// translated with the active localizer.
func LoadMenu(path string) ([]MenuItem, error) {
	items, err := resources.LoadMenuFile(path, resources.MenuOptions{Localize: i18n.Localize})
	if err != nil {
		return nil, NewInfrastructureError("load_menu", err)
	}
	return items, nil
}
