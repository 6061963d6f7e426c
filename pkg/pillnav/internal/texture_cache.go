package internal

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/BrandonKowalski/pillnav/pkg/pillnav/nav"
	"github.com/BrandonKowalski/pillnav/pkg/pillnav/resources"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// An icon and a label per slot, plus room for ones swapped at runtime.
const defaultMaxCacheSize = nav.SlotCount * 3

type TextureCache struct {
	textures map[string]*sdl.Texture
	order    []string // tracks insertion order for LRU eviction
	maxSize  int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

func (c *TextureCache) Get(key string) *sdl.Texture {
	if texture, exists := c.textures[key]; exists {
		c.moveToEnd(key)
		return texture
	}
	return nil
}

func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	if _, exists := c.textures[key]; exists {
		c.textures[key] = texture
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

// Icon returns the texture for icon rendered at size pixels, loading it on
// first use. Icons are loaded white-on-transparent where possible so a tint
// can be applied with SetColorMod.
func (c *TextureCache) Icon(renderer *sdl.Renderer, icon nav.Icon, size int32) (*sdl.Texture, error) {
	if icon == "" {
		return nil, nil
	}

	key := fmt.Sprintf("%s@%d", icon, size)
	if texture := c.Get(key); texture != nil {
		return texture, nil
	}

	texture, err := loadIconTexture(renderer, icon, size)
	if err != nil {
		return nil, err
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	c.Set(key, texture)
	return texture, nil
}

// Text returns a white texture for text in the label font.
func (c *TextureCache) Text(renderer *sdl.Renderer, text string) (*sdl.Texture, error) {
	if text == "" {
		return nil, nil
	}
	if Fonts.LabelFont == nil {
		return nil, ErrNoFont
	}

	key := "text:" + text
	if texture := c.Get(key); texture != nil {
		return texture, nil
	}

	surface, err := Fonts.LabelFont.RenderUTF8Blended(text, sdl.Color{R: 255, G: 255, B: 255, A: 255})
	if err != nil {
		return nil, fmt.Errorf("render label: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("label texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	c.Set(key, texture)
	return texture, nil
}

func (c *TextureCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		texture.Destroy()
		delete(c.textures, oldest)
	}
}

func (c *TextureCache) Destroy() {
	for _, texture := range c.textures {
		texture.Destroy()
	}
	c.textures = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}

func loadIconTexture(renderer *sdl.Renderer, icon nav.Icon, size int32) (*sdl.Texture, error) {
	if resources.IsGlyph(icon) {
		return loadGlyphTexture(renderer, resources.GlyphText(icon))
	}

	path := string(icon)
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read icon: %w", err)
		}
		return loadSVGTexture(renderer, data, size, size)
	}

	texture, err := img.LoadTexture(renderer, path)
	if err != nil {
		return nil, fmt.Errorf("load icon %s: %w", path, err)
	}
	return texture, nil
}

func loadGlyphTexture(renderer *sdl.Renderer, glyph string) (*sdl.Texture, error) {
	if Fonts.IconFont == nil {
		return nil, ErrNoFont
	}

	surface, err := Fonts.IconFont.RenderUTF8Blended(glyph, sdl.Color{R: 255, G: 255, B: 255, A: 255})
	if err != nil {
		return nil, fmt.Errorf("render glyph: %w", err)
	}
	defer surface.Free()

	return renderer.CreateTextureFromSurface(surface)
}

// loadSVGTexture rasterizes an SVG and creates an SDL texture.
func loadSVGTexture(renderer *sdl.Renderer, svgData []byte, width, height int32) (*sdl.Texture, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG: %w", err)
	}

	if width == 0 || height == 0 {
		width = int32(icon.ViewBox.W)
		height = int32(icon.ViewBox.H)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	scanner := rasterx.NewScannerGV(int(width), int(height), rgba, rgba.Bounds())
	raster := rasterx.NewDasher(int(width), int(height), scanner)

	icon.SetTarget(0, 0, float64(width), float64(height))
	icon.Draw(raster, 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return nil, fmt.Errorf("failed to encode SVG as PNG: %w", err)
	}

	rw, err := sdl.RWFromMem(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to create RWops from image data: %w", err)
	}
	texture, err := img.LoadTextureRW(renderer, rw, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture from image data: %w", err)
	}
	return texture, nil
}
