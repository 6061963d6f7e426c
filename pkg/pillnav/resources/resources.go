// Package resources loads the files a bottom navigation bar is described by:
// a style file carrying the bar's attributes and a menu file listing its
// items. Both may be TOML or YAML.
//
// Style file:
//
//	[bottom_nav]
//	pillStrokeWidth = "2dp"
//	pillBackgroundColor = "#1E2329"
//	defaultSelected = 0
//	menu = "menu.toml"
//
// Menu file:
//
//	[[item]]
//	icon = "icons/home.svg"
//	title = "Home"
//	title_id = "nav_home"
package resources

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/BrandonKowalski/pillnav/pkg/pillnav/internal/logging"
	"github.com/BrandonKowalski/pillnav/pkg/pillnav/nav"
)

// Format is a resource file encoding.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ErrUnknownFormat is returned for files whose extension is neither TOML nor YAML.
var ErrUnknownFormat = errors.New("resources: unknown file format")

// StyleSection is the table holding bottom navigation attributes.
const StyleSection = "bottom_nav"

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

func decode(data []byte, format Format, v any) error {
	switch format {
	case FormatTOML:
		_, err := toml.NewDecoder(bytes.NewReader(data)).Decode(v)
		return err
	case FormatYAML:
		return yaml.Unmarshal(data, v)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

func readFile(path string) ([]byte, Format, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, 0, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("resources: read %s: %w", path, err)
	}
	return data, format, nil
}

type styleFile struct {
	BottomNav map[string]any `toml:"bottom_nav" yaml:"bottom_nav"`
}

// ParseStyle decodes the bottom_nav table into attributes. Values of any
// scalar type are kept in their textual form; the resolver decides whether
// they are usable. A file without the table yields empty attributes.
func ParseStyle(data []byte, format Format) (nav.Attributes, error) {
	var f styleFile
	if err := decode(data, format, &f); err != nil {
		return nil, fmt.Errorf("resources: parse style: %w", err)
	}

	attrs := make(nav.Attributes, len(f.BottomNav))
	for name, value := range f.BottomNav {
		switch v := value.(type) {
		case string:
			attrs[name] = v
		case int, int64, uint64, float64, bool:
			attrs[name] = fmt.Sprint(v)
		default:
			logging.GetInternalLogger().Debug("Skipping non-scalar style attribute", "attribute", name)
		}
	}
	return attrs, nil
}

// LoadStyleFile reads a style file. A relative menu reference is rewritten
// to be relative to the style file's directory.
func LoadStyleFile(path string) (nav.Attributes, error) {
	data, format, err := readFile(path)
	if err != nil {
		return nil, err
	}

	attrs, err := ParseStyle(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if ref, ok := attrs[nav.AttrMenu]; ok {
		attrs[nav.AttrMenu] = ResolveReference(path, ref)
	}
	return attrs, nil
}

// ResolveReference resolves ref relative to the directory of from.
// Absolute and empty references are returned unchanged.
func ResolveReference(from, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(filepath.Dir(from), ref)
}
