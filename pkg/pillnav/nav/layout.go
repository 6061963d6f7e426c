package nav

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X, Y, W, H int32
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y int32) bool {
	return !r.Empty() && x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) CenterX() int32 { return r.X + r.W/2 }
func (r Rect) CenterY() int32 { return r.Y + r.H/2 }

// Insets are distances in from each edge.
type Insets struct {
	Top, Right, Bottom, Left int32
}

// Geometry is the laid-out bar. Slots that are Gone get an empty rect.
type Geometry struct {
	Bar   Rect // Whole bar including insets
	Pill  Rect // The rounded pill
	Slots [SlotCount]Rect
}

// Layout places the pill at the bottom of bounds, pillHeight tall and
// inset by padding, then splits it evenly between the visible slots in
// index order. When bounds is too short the pill shrinks to fit.
func Layout(bounds Rect, padding Insets, pillHeight int32, r *Registry) Geometry {
	var g Geometry

	barHeight := pillHeight + padding.Top + padding.Bottom
	if barHeight > bounds.H {
		barHeight = bounds.H
	}

	g.Bar = Rect{X: bounds.X, Y: bounds.Y + bounds.H - barHeight, W: bounds.W, H: barHeight}
	g.Pill = Rect{
		X: bounds.X + padding.Left,
		Y: g.Bar.Y + padding.Top,
		W: bounds.W - padding.Left - padding.Right,
		H: barHeight - padding.Top - padding.Bottom,
	}
	if g.Pill.W < 0 {
		g.Pill.W = 0
	}
	if g.Pill.H < 0 {
		g.Pill.H = 0
	}

	visible := r.Visible()
	if len(visible) == 0 || g.Pill.Empty() {
		return g
	}

	n := int32(len(visible))
	for i, s := range visible {
		// Spread the remainder so the last slot ends flush with the pill.
		left := g.Pill.X + g.Pill.W*int32(i)/n
		right := g.Pill.X + g.Pill.W*int32(i+1)/n
		g.Slots[s.Index] = Rect{X: left, Y: g.Pill.Y, W: right - left, H: g.Pill.H}
	}
	return g
}

// HitTest returns the index of the slot containing the point, or
// NoSelection.
func (g Geometry) HitTest(x, y int32) int {
	for i, rect := range g.Slots {
		if rect.Contains(x, y) {
			return i
		}
	}
	return NoSelection
}

// Content is the area above the bar.
func (g Geometry) Content(bounds Rect) Rect {
	return Rect{X: bounds.X, Y: bounds.Y, W: bounds.W, H: g.Bar.Y - bounds.Y}
}
