package internal

import (
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
)

// DrawRoundedRect fills rect with corners of the given radius. The radius
// is clamped to half the shorter side.
func DrawRoundedRect(renderer *sdl.Renderer, rect *sdl.Rect, radius int32, color sdl.Color) {
	radius = clampRadius(rect, radius)
	if radius <= 0 {
		renderer.SetDrawColor(color.R, color.G, color.B, color.A)
		renderer.FillRect(rect)
		return
	}

	gfx.RoundedBoxColor(renderer, rect.X, rect.Y, rect.X+rect.W-1, rect.Y+rect.H-1, radius, color)
}

// DrawPill draws a rounded background with an outline stroke inset inside
// its bounds, like a stroked drawable.
func DrawPill(renderer *sdl.Renderer, rect *sdl.Rect, radius, strokeWidth int32, fill, stroke sdl.Color) {
	if strokeWidth <= 0 || stroke.A == 0 {
		DrawRoundedRect(renderer, rect, radius, fill)
		return
	}

	DrawRoundedRect(renderer, rect, radius, stroke)

	inner := &sdl.Rect{
		X: rect.X + strokeWidth,
		Y: rect.Y + strokeWidth,
		W: rect.W - 2*strokeWidth,
		H: rect.H - 2*strokeWidth,
	}
	if inner.W <= 0 || inner.H <= 0 {
		return
	}

	DrawRoundedRect(renderer, inner, radius-strokeWidth, fill)
}

// DrawDot draws an anti-aliased filled circle.
func DrawDot(renderer *sdl.Renderer, cx, cy, radius int32, color sdl.Color) {
	if radius <= 0 || color.A == 0 {
		return
	}
	gfx.FilledCircleColor(renderer, cx, cy, radius, color)
	gfx.AACircleColor(renderer, cx, cy, radius, color)
}

func clampRadius(rect *sdl.Rect, radius int32) int32 {
	limit := rect.W / 2
	if rect.H/2 < limit {
		limit = rect.H / 2
	}
	if radius > limit {
		return limit
	}
	return radius
}
