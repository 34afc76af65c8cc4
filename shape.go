package viewport

import "fmt"

// ShapeKind identifies the geometric variant of a Shape.
type ShapeKind uint8

// The supported shape kinds.
const (
	KindDot ShapeKind = iota
	KindLine
	KindCircle
	KindRectangle
	KindDiamond
	KindPolygon
)

// String implements fmt.Stringer.
func (k ShapeKind) String() string {
	switch k {
	case KindDot:
		return "dot"
	case KindLine:
		return "line"
	case KindCircle:
		return "circle"
	case KindRectangle:
		return "rectangle"
	case KindDiamond:
		return "diamond"
	case KindPolygon:
		return "polygon"
	default:
		return fmt.Sprintf("ShapeKind(%d)", uint8(k))
	}
}

// Shape is the tagged-variant geometry representation. Each kind
// carries exactly the typed fields that shape requires, so an
// ill-shaped vertex list is unrepresentable: a circle is always a
// center and radius, never a 2-point or 8-point encoding.
//
// Bounds returns the axis-aligned bounding box in object space.
// Validate checks structural validity only (arity, non-nil); semantic
// checks such as aspect ratios belong to the editing collaborator.
type Shape interface {
	Kind() ShapeKind
	Bounds() Rect
	Validate() error
}

// Dot is a single point, rendered one pixel wide at native scale.
type Dot struct {
	At Point
}

func (d Dot) Kind() ShapeKind { return KindDot }

func (d Dot) Bounds() Rect {
	return Rect{MinX: d.At.X - 0.5, MinY: d.At.Y - 0.5, MaxX: d.At.X + 0.5, MaxY: d.At.Y + 0.5}
}

func (d Dot) Validate() error { return nil }

// Line is a segment between two points.
type Line struct {
	From, To Point
}

func (l Line) Kind() ShapeKind { return KindLine }

// Bounds includes a half-unit margin for the line's native thickness.
func (l Line) Bounds() Rect {
	return RectFromPoints(l.From, l.To).Expand(0.5)
}

func (l Line) Validate() error { return nil }

// Circle is a center and radius.
type Circle struct {
	Center Point
	Radius float64
}

func (c Circle) Kind() ShapeKind { return KindCircle }

func (c Circle) Bounds() Rect {
	return Rect{
		MinX: c.Center.X - c.Radius,
		MinY: c.Center.Y - c.Radius,
		MaxX: c.Center.X + c.Radius,
		MaxY: c.Center.Y + c.Radius,
	}
}

func (c Circle) Validate() error { return nil }

// Rectangle is an axis-aligned rectangle given by its top-left corner
// and dimensions.
type Rectangle struct {
	Min           Point
	Width, Height float64
}

func (r Rectangle) Kind() ShapeKind { return KindRectangle }

func (r Rectangle) Bounds() Rect {
	return RectAt(r.Min, r.Width, r.Height).Canon()
}

func (r Rectangle) Validate() error { return nil }

// Diamond is a rhombus centered at Center with the given diagonals.
type Diamond struct {
	Center        Point
	Width, Height float64
}

func (d Diamond) Kind() ShapeKind { return KindDiamond }

func (d Diamond) Bounds() Rect {
	return Rect{
		MinX: d.Center.X - d.Width/2,
		MinY: d.Center.Y - d.Height/2,
		MaxX: d.Center.X + d.Width/2,
		MaxY: d.Center.Y + d.Height/2,
	}
}

func (d Diamond) Validate() error { return nil }

// Polygon is a closed polygon with at least three boundary points.
type Polygon struct {
	Points []Point
}

func (p Polygon) Kind() ShapeKind { return KindPolygon }

func (p Polygon) Bounds() Rect {
	return RectFromPoints(p.Points...)
}

func (p Polygon) Validate() error {
	if len(p.Points) < 3 {
		return fmt.Errorf("%w: polygon needs at least 3 points, got %d",
			ErrInvalidVertexCount, len(p.Points))
	}
	return nil
}

// validateShape gates shapes entering the DataLayer.
func validateShape(s Shape) error {
	if s == nil {
		return fmt.Errorf("%w: nil shape", ErrInvalidVertexCount)
	}
	return s.Validate()
}
