package geometry

import "fmt"

// Rect is an axis-aligned rectangle, half-open on Bottom and Right.
type Rect struct {
	Top    int
	Left   int
	Bottom int
	Right  int
}

// NewRect creates a rectangle from its edges.
func NewRect(top, left, bottom, right int) Rect {
	return Rect{Top: top, Left: left, Bottom: bottom, Right: right}
}

// Width returns the number of columns covered by the rectangle.
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns the number of rows covered by the rectangle.
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// IsValid reports whether the edges are ordered and non-negative.
func (r Rect) IsValid() bool {
	return r.Top >= 0 && r.Left >= 0 && r.Top <= r.Bottom && r.Left <= r.Right
}

// IsEmpty reports whether the rectangle covers no points.
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// TopLeft returns the first point covered by the rectangle.
func (r Rect) TopLeft() Point {
	return Point{Row: r.Top, Column: r.Left}
}

// BottomRight returns the point just outside the bottom-right corner.
func (r Rect) BottomRight() Point {
	return Point{Row: r.Bottom, Column: r.Right}
}

// Contains checks if a point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.Row >= r.Top && p.Row < r.Bottom &&
		p.Column >= r.Left && p.Column < r.Right
}

// ContainsRect checks if other lies entirely inside the rectangle.
func (r Rect) ContainsRect(other Rect) bool {
	return other.Top >= r.Top && other.Bottom <= r.Bottom &&
		other.Left >= r.Left && other.Right <= r.Right
}

// Overlaps checks if two rectangles share at least one point.
func (r Rect) Overlaps(other Rect) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return r.Left < other.Right && other.Left < r.Right &&
		r.Top < other.Bottom && other.Top < r.Bottom
}

// Union returns the smallest rectangle covering both rectangles.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Top:    min(r.Top, other.Top),
		Left:   min(r.Left, other.Left),
		Bottom: max(r.Bottom, other.Bottom),
		Right:  max(r.Right, other.Right),
	}
}

// Transpose swaps rows and columns.
func (r Rect) Transpose() Rect {
	return Rect{Top: r.Left, Left: r.Top, Bottom: r.Right, Right: r.Bottom}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d, %d, %d, %d]", r.Top, r.Left, r.Bottom, r.Right)
}
