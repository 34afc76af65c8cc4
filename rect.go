package viewport

import "math"

// Rect is an axis-aligned rectangle. Min/Max convention: MinX <= MaxX
// and MinY <= MaxY for a well-formed rectangle; use Canon to normalize.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// RectAt creates a rectangle from its top-left corner and dimensions.
func RectAt(min Point, width, height float64) Rect {
	return Rect{
		MinX: min.X,
		MinY: min.Y,
		MaxX: min.X + width,
		MaxY: min.Y + height,
	}
}

// RectFromPoints returns the bounding rectangle of a set of points.
// Returns the zero Rect if pts is empty.
func RectFromPoints(pts ...Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		r.MinX = math.Min(r.MinX, p.X)
		r.MinY = math.Min(r.MinY, p.Y)
		r.MaxX = math.Max(r.MaxX, p.X)
		r.MaxY = math.Max(r.MaxY, p.Y)
	}
	return r
}

// Min returns the top-left corner.
func (r Rect) Min() Point { return Point{X: r.MinX, Y: r.MinY} }

// Max returns the bottom-right corner.
func (r Rect) Max() Point { return Point{X: r.MaxX, Y: r.MaxY} }

// Width returns the rectangle width.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the rectangle height.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.MaxX <= r.MinX || r.MaxY <= r.MinY
}

// Canon returns the canonical form with Min <= Max on both axes.
func (r Rect) Canon() Rect {
	if r.MinX > r.MaxX {
		r.MinX, r.MaxX = r.MaxX, r.MinX
	}
	if r.MinY > r.MaxY {
		r.MinY, r.MaxY = r.MaxY, r.MinY
	}
	return r
}

// Translate returns the rectangle moved by delta.
func (r Rect) Translate(delta Point) Rect {
	return Rect{
		MinX: r.MinX + delta.X,
		MinY: r.MinY + delta.Y,
		MaxX: r.MaxX + delta.X,
		MaxY: r.MaxY + delta.Y,
	}
}

// Scale returns the rectangle with both corners scaled by s about the origin.
func (r Rect) Scale(s float64) Rect {
	return Rect{
		MinX: r.MinX * s,
		MinY: r.MinY * s,
		MaxX: r.MaxX * s,
		MaxY: r.MaxY * s,
	}
}

// Expand returns the rectangle grown by d on every side.
func (r Rect) Expand(d float64) Rect {
	return Rect{
		MinX: r.MinX - d,
		MinY: r.MinY - d,
		MaxX: r.MaxX + d,
		MaxY: r.MaxY + d,
	}
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	return Rect{
		MinX: math.Min(r.MinX, s.MinX),
		MinY: math.Min(r.MinY, s.MinY),
		MaxX: math.Max(r.MaxX, s.MaxX),
		MaxY: math.Max(r.MaxY, s.MaxY),
	}
}

// Intersects reports whether r and s overlap. Touching edges count as
// overlapping; the sampling window uses this for its conservative
// bounding-box test.
func (r Rect) Intersects(s Rect) bool {
	return r.MinX <= s.MaxX && s.MinX <= r.MaxX &&
		r.MinY <= s.MaxY && s.MinY <= r.MaxY
}

// Contains reports whether the point p is inside r (edges inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX &&
		p.Y >= r.MinY && p.Y <= r.MaxY
}

// ContainsRect reports whether s lies entirely inside r.
func (r Rect) ContainsRect(s Rect) bool {
	return s.MinX >= r.MinX && s.MaxX <= r.MaxX &&
		s.MinY >= r.MinY && s.MaxY <= r.MaxY
}
