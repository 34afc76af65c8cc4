package viewport

import "math"

// GridEpsilon is the tolerance, in grid units, within which coordinate
// round trips must be exact. Misalignment beyond this tolerance is a
// defect (see ErrMisaligned), never a condition to render through.
const GridEpsilon = 1e-6

// Resolution describes the mesh geometry for one zoom level: how many
// object units one grid unit spans, and the offset that pins grid
// vertex (0,0) to display pixel (0,0).
//
// One grid unit is always one display pixel. Zoom is absorbed entirely
// by Spacing: at level z a grid unit spans 1/z object units, so the
// mesh refines as the camera zooms in while integer grid coordinates
// stay pixel-exact.
type Resolution struct {
	// Spacing is the size of one grid unit in object units (1/zoom).
	Spacing float64

	// AlignmentOffset is added when converting grid to display
	// coordinates. For the power-of-two zoom set the offset is exactly
	// zero; it exists so ValidateAlignment can assert that fact rather
	// than assume it.
	AlignmentOffset Point
}

// resolutions is the precomputed table, one entry per valid zoom level
// in ZoomLevels order. Computed once at package init; ResolutionFor is
// a table lookup.
var resolutions [len(ZoomLevels)]Resolution

func init() {
	for i, z := range ZoomLevels {
		resolutions[i] = computeResolution(z)
	}
}

func computeResolution(z ZoomLevel) Resolution {
	return Resolution{
		Spacing:         1 / z.Factor(),
		AlignmentOffset: Point{},
	}
}

// ResolutionFor returns the mesh resolution for the given zoom level.
// Deterministic and memoized; invalid levels fall back to the zoom-1
// resolution (callers gate levels through ParseZoomLevel before
// reaching here).
func ResolutionFor(z ZoomLevel) Resolution {
	if !z.Valid() {
		return resolutions[0]
	}
	return resolutions[z.index()]
}

// ValidateAlignment checks that grid vertex (0,0) maps to display
// pixel (0,0) exactly under res. Used as a runtime assertion at
// zoom-level transitions and in tests; a false result indicates a
// programming defect and the affected level must not be rendered.
func ValidateAlignment(res Resolution) bool {
	d := GridToDisplay(GridPoint{}, res)
	return math.Abs(d.X) <= GridEpsilon && math.Abs(d.Y) <= GridEpsilon
}
