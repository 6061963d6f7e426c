package internal

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// Add returns the side-by-side sum of two paddings.
func (p Padding) Add(o Padding) Padding {
	return Padding{
		Top:    p.Top + o.Top,
		Right:  p.Right + o.Right,
		Bottom: p.Bottom + o.Bottom,
		Left:   p.Left + o.Left,
	}
}

// Horizontal is Left + Right.
func (p Padding) Horizontal() int32 {
	return p.Left + p.Right
}

// Vertical is Top + Bottom.
func (p Padding) Vertical() int32 {
	return p.Top + p.Bottom
}
