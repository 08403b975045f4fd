package geometry

// Rect represents half-open rectangular bounds: rows [Top, Bottom), columns [Left, Right)
type Rect struct {
	Top, Bottom, Left, Right int
}

// NewRect builds a rect from an origin and size
func NewRect(pos Point, size Size) Rect {
	return Rect{
		Top:    pos.Y,
		Bottom: pos.Y + size.Height,
		Left:   pos.X,
		Right:  pos.X + size.Width,
	}
}

// Pos returns the upper-left corner
func (r Rect) Pos() Point {
	return Point{Y: r.Top, X: r.Left}
}

// Size returns the rect dimensions, never negative
func (r Rect) Size() Size {
	return NewSize(r.Bottom-r.Top, r.Right-r.Left)
}

// Offset returns the rect translated down by p.Y and right by p.X
func (r Rect) Offset(p Point) Rect {
	return Rect{
		Top:    r.Top + p.Y,
		Bottom: r.Bottom + p.Y,
		Left:   r.Left + p.X,
		Right:  r.Right + p.X,
	}
}

// Contains reports whether the point lies inside the rect
func (r Rect) Contains(p Point) bool {
	return r.Top <= p.Y && p.Y < r.Bottom && r.Left <= p.X && p.X < r.Right
}

// Overlaps reports whether two rects share any cell
func (r Rect) Overlaps(o Rect) bool {
	return r.Top < o.Bottom && o.Top < r.Bottom && r.Left < o.Right && o.Left < r.Right
}

// IsEmpty reports whether the rect covers no cells
func (r Rect) IsEmpty() bool {
	return r.Bottom <= r.Top || r.Right <= r.Left
}
