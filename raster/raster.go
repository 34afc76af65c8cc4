// Package raster provides the bundled CPU rasterizer backend for the
// viewport engine, built on golang.org/x/image/vector.
//
// Shapes are filled at native object-space scale into RGBA textures
// origin-aligned to the object's bounding box, per the viewport
// Rasterizer contract. GPU backends replace this package; the engine
// does not depend on it.
package raster

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/viewport"
)

// kappa is the cubic Bezier circle approximation constant:
// 4*(sqrt(2)-1)/3.
const kappa = 0.5522847498307936

// Software is a synchronous CPU rasterizer. The zero value is ready to
// use; New exists for symmetry with other backends.
//
// Software is stateless and therefore safe to share, though the engine
// only ever calls it from one goroutine.
type Software struct{}

// New creates a software rasterizer.
func New() *Software { return &Software{} }

// Rasterize renders the object's shape, filled with its style's fill
// color (stroke color for lines and dots when set), into an
// ImageTexture sized to the object's bounding box.
func (s *Software) Rasterize(obj *viewport.Object) (viewport.Texture, error) {
	if obj == nil || obj.Shape == nil {
		return nil, fmt.Errorf("raster: nil object")
	}
	b := obj.Bounds()
	desc := viewport.DefaultTextureDescriptor(
		int(math.Ceil(b.Width())),
		int(math.Ceil(b.Height())),
	)

	ras := vector.NewRasterizer(desc.Width, desc.Height)
	// Shape coordinates are shifted so the bounding-box minimum lands
	// on the texture origin.
	off := b.Min()
	if err := appendShape(ras, obj.Shape, obj.Style, off); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, desc.Width, desc.Height))
	src := image.NewUniform(paintColor(obj).NRGBA())
	ras.Draw(img, img.Bounds(), src, image.Point{})
	return NewImageTexture(img), nil
}

// paintColor picks the color an object fills with. Open shapes (lines,
// dots) prefer the stroke color when one is set.
func paintColor(obj *viewport.Object) viewport.Color {
	k := obj.Shape.Kind()
	if (k == viewport.KindLine || k == viewport.KindDot) && obj.Style.Stroke.A > 0 {
		return obj.Style.Stroke
	}
	return obj.Style.Fill
}

// appendShape adds the shape's outline to the rasterizer, translated
// by -off.
func appendShape(ras *vector.Rasterizer, shape viewport.Shape, style viewport.Style, off viewport.Point) error {
	switch sh := shape.(type) {
	case viewport.Dot:
		appendCircle(ras, sh.At.Sub(off), 0.5)
	case viewport.Circle:
		appendCircle(ras, sh.Center.Sub(off), sh.Radius)
	case viewport.Rectangle:
		r := sh.Bounds().Translate(viewport.Pt(-off.X, -off.Y))
		appendPolygon(ras,
			viewport.Pt(r.MinX, r.MinY),
			viewport.Pt(r.MaxX, r.MinY),
			viewport.Pt(r.MaxX, r.MaxY),
			viewport.Pt(r.MinX, r.MaxY),
		)
	case viewport.Diamond:
		c := sh.Center.Sub(off)
		appendPolygon(ras,
			viewport.Pt(c.X, c.Y-sh.Height/2),
			viewport.Pt(c.X+sh.Width/2, c.Y),
			viewport.Pt(c.X, c.Y+sh.Height/2),
			viewport.Pt(c.X-sh.Width/2, c.Y),
		)
	case viewport.Polygon:
		pts := make([]viewport.Point, len(sh.Points))
		for i, p := range sh.Points {
			pts[i] = p.Sub(off)
		}
		appendPolygon(ras, pts...)
	case viewport.Line:
		appendSegment(ras, sh.From.Sub(off), sh.To.Sub(off), lineWidth(style))
	default:
		return fmt.Errorf("raster: unsupported shape kind %s", shape.Kind())
	}
	return nil
}

func lineWidth(style viewport.Style) float64 {
	if style.StrokeWidth > 0 {
		return style.StrokeWidth
	}
	return 1
}

// appendCircle approximates a circle with four cubic Bezier arcs.
func appendCircle(ras *vector.Rasterizer, c viewport.Point, r float64) {
	k := kappa * r
	ras.MoveTo(f32(c.X+r), f32(c.Y))
	ras.CubeTo(f32(c.X+r), f32(c.Y+k), f32(c.X+k), f32(c.Y+r), f32(c.X), f32(c.Y+r))
	ras.CubeTo(f32(c.X-k), f32(c.Y+r), f32(c.X-r), f32(c.Y+k), f32(c.X-r), f32(c.Y))
	ras.CubeTo(f32(c.X-r), f32(c.Y-k), f32(c.X-k), f32(c.Y-r), f32(c.X), f32(c.Y-r))
	ras.CubeTo(f32(c.X+k), f32(c.Y-r), f32(c.X+r), f32(c.Y-k), f32(c.X+r), f32(c.Y))
	ras.ClosePath()
}

func appendPolygon(ras *vector.Rasterizer, pts ...viewport.Point) {
	if len(pts) == 0 {
		return
	}
	ras.MoveTo(f32(pts[0].X), f32(pts[0].Y))
	for _, p := range pts[1:] {
		ras.LineTo(f32(p.X), f32(p.Y))
	}
	ras.ClosePath()
}

// appendSegment fills a line segment as a quad of the given thickness.
func appendSegment(ras *vector.Rasterizer, from, to viewport.Point, width float64) {
	dir := to.Sub(from)
	length := dir.Length()
	if length == 0 {
		appendCircle(ras, from, width/2)
		return
	}
	// Perpendicular half-thickness offset.
	n := viewport.Pt(-dir.Y/length, dir.X/length).Mul(width / 2)
	appendPolygon(ras, from.Add(n), to.Add(n), to.Sub(n), from.Sub(n))
}

func f32(v float64) float32 { return float32(v) }

var _ viewport.Rasterizer = (*Software)(nil)
