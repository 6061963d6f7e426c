package resources

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BrandonKowalski/pillnav/pkg/pillnav/internal/logging"
	"github.com/BrandonKowalski/pillnav/pkg/pillnav/nav"
)

// LocalizeFunc translates a message ID, returning fallback when it can't.
type LocalizeFunc func(id, fallback string) string

type menuFile struct {
	Items []menuItem `toml:"item" yaml:"item"`
}

type menuItem struct {
	Icon    string `toml:"icon" yaml:"icon"`
	Title   string `toml:"title" yaml:"title"`
	TitleID string `toml:"title_id" yaml:"title_id"`
}

// MenuOptions tunes how menu entries are built.
type MenuOptions struct {
	// Localize translates title_id values. nil keeps the literal titles.
	Localize LocalizeFunc
	// IconDir is joined to relative icon paths.
	IconDir string
}

// ParseMenu decodes menu items in file order. The result is never nil, so
// an empty menu file hides every slot rather than meaning "no menu".
func ParseMenu(data []byte, format Format, opts MenuOptions) ([]nav.MenuEntry, error) {
	var f menuFile
	if err := decode(data, format, &f); err != nil {
		return nil, fmt.Errorf("resources: parse menu: %w", err)
	}

	if len(f.Items) > nav.SlotCount {
		logging.GetInternalLogger().Warn("Menu has more items than slots; extra items are ignored",
			"items", len(f.Items),
			"slots", nav.SlotCount,
		)
	}

	entries := make([]nav.MenuEntry, 0, len(f.Items))
	for _, item := range f.Items {
		title := item.Title
		if opts.Localize != nil && item.TitleID != "" {
			title = opts.Localize(item.TitleID, item.Title)
		}

		entries = append(entries, nav.MenuEntry{
			Icon:  nav.Icon(iconPath(opts.IconDir, item.Icon)),
			Title: title,
		})
	}
	return entries, nil
}

// LoadMenuFile reads a menu file. Relative icon paths are resolved against
// the menu file's directory unless opts.IconDir is set.
func LoadMenuFile(path string, opts MenuOptions) ([]nav.MenuEntry, error) {
	data, format, err := readFile(path)
	if err != nil {
		return nil, err
	}

	if opts.IconDir == "" {
		opts.IconDir = filepath.Dir(path)
	}

	entries, err := ParseMenu(data, format, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// iconPath leaves glyph references and absolute paths alone.
func iconPath(dir, icon string) string {
	icon = strings.TrimSpace(icon)
	if icon == "" || dir == "" || filepath.IsAbs(icon) || IsGlyph(nav.Icon(icon)) {
		return icon
	}
	return filepath.Join(dir, icon)
}

// GlyphPrefix marks an icon reference that is a font glyph, not a file.
const GlyphPrefix = "glyph:"

// Glyph builds an icon reference for a font glyph.
func Glyph(glyph string) nav.Icon {
	return nav.Icon(GlyphPrefix + glyph)
}

// IsGlyph reports whether icon refers to a font glyph.
func IsGlyph(icon nav.Icon) bool {
	return strings.HasPrefix(string(icon), GlyphPrefix)
}

// GlyphText returns the glyph text of a glyph reference.
func GlyphText(icon nav.Icon) string {
	return strings.TrimPrefix(string(icon), GlyphPrefix)
}
