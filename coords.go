package viewport

// The three coordinate flavors are distinct types so that a value from
// one space can never be passed where another is expected. Conversion
// is always explicit and always carries the current zoom resolution
// and window or camera offset; there are no implicit globals.
//
// All conversions are total over finite input and round-trip within
// GridEpsilon at every valid zoom level.

// ObjectPoint is a coordinate in object space, where geometry is
// authored. Object space is scale-invariant and unbounded.
type ObjectPoint struct {
	X, Y float64
}

// GridPoint is a coordinate in grid space, the integer-aligned mesh
// space. Integer grid coordinates correspond exactly to display
// pixels.
type GridPoint struct {
	X, Y float64
}

// DisplayPoint is a coordinate in display space, the final output
// pixels.
type DisplayPoint struct {
	X, Y float64
}

// Obj converts a plain Point to an ObjectPoint.
func Obj(p Point) ObjectPoint { return ObjectPoint{X: p.X, Y: p.Y} }

// Point converts back to a plain Point for arithmetic.
func (c ObjectPoint) Point() Point { return Point{X: c.X, Y: c.Y} }

// Point converts back to a plain Point for arithmetic.
func (c GridPoint) Point() Point { return Point{X: c.X, Y: c.Y} }

// Point converts back to a plain Point for arithmetic.
func (c DisplayPoint) Point() Point { return Point{X: c.X, Y: c.Y} }

// ObjectToGrid scales an object-space coordinate onto the mesh for the
// given zoom level: one grid unit spans ResolutionFor(z).Spacing object
// units.
func ObjectToGrid(c ObjectPoint, z ZoomLevel) GridPoint {
	res := ResolutionFor(z)
	return GridPoint{X: c.X / res.Spacing, Y: c.Y / res.Spacing}
}

// GridToObject is the inverse of ObjectToGrid.
func GridToObject(g GridPoint, z ZoomLevel) ObjectPoint {
	res := ResolutionFor(z)
	return ObjectPoint{X: g.X * res.Spacing, Y: g.Y * res.Spacing}
}

// GridToDisplay maps grid coordinates to display pixels. One grid unit
// is one pixel; the resolution's alignment offset pins grid (0,0) to
// display (0,0).
func GridToDisplay(g GridPoint, res Resolution) DisplayPoint {
	return DisplayPoint{
		X: g.X + res.AlignmentOffset.X,
		Y: g.Y + res.AlignmentOffset.Y,
	}
}

// DisplayToGrid is the inverse of GridToDisplay.
func DisplayToGrid(d DisplayPoint, res Resolution) GridPoint {
	return GridPoint{
		X: d.X - res.AlignmentOffset.X,
		Y: d.Y - res.AlignmentOffset.Y,
	}
}

// ObjectToDisplayWindow maps object space to display space through the
// DataLayer's sampling window. The window is always at scale 1, so
// this is a pure translation; no zoom factor is ever applied on the
// data-layer path.
func ObjectToDisplayWindow(c ObjectPoint, window Rect) DisplayPoint {
	return DisplayPoint{X: c.X - window.MinX, Y: c.Y - window.MinY}
}

// DisplayToObjectWindow is the inverse of ObjectToDisplayWindow.
func DisplayToObjectWindow(d DisplayPoint, window Rect) ObjectPoint {
	return ObjectPoint{X: d.X + window.MinX, Y: d.Y + window.MinY}
}

// ObjectToDisplayCamera maps object space to display space through the
// MirrorLayer's camera: translate by the camera position, then scale
// onto the zoom level's mesh.
func ObjectToDisplayCamera(c ObjectPoint, camera ObjectPoint, z ZoomLevel) DisplayPoint {
	rel := ObjectPoint{X: c.X - camera.X, Y: c.Y - camera.Y}
	return GridToDisplay(ObjectToGrid(rel, z), ResolutionFor(z))
}

// DisplayToObjectCamera is the inverse of ObjectToDisplayCamera.
func DisplayToObjectCamera(d DisplayPoint, camera ObjectPoint, z ZoomLevel) ObjectPoint {
	rel := GridToObject(DisplayToGrid(d, ResolutionFor(z)), z)
	return ObjectPoint{X: rel.X + camera.X, Y: rel.Y + camera.Y}
}
