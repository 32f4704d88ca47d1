package entity

// Rect is an axis-aligned rectangle in level coordinates.
// The origin is the top-left corner and Y grows downward.
type Rect struct {
	X, Y   float64
	Width  float64
	Height float64
}

// Overlaps reports whether the half-open extents of r and o intersect.
// Rectangles that only touch at an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width && r.X+r.Width > o.X &&
		r.Y < o.Y+o.Height && r.Y+r.Height > o.Y
}

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}
