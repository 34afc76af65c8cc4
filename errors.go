package viewport

import "errors"

// Package errors for the viewport engine. Structural errors
// (ErrInvalidVertexCount, ErrObjectNotFound, ErrInvalidZoomLevel) are
// caller errors returned synchronously and never retried by the
// engine; resource errors (ErrRasterizationFailed) are recovered
// locally by omitting the affected object from the frame.
var (
	// ErrInvalidVertexCount is returned when a shape's structure does not
	// match its kind (nil shape, polygon with fewer than three points).
	ErrInvalidVertexCount = errors.New("viewport: invalid vertex count for shape kind")

	// ErrObjectNotFound is returned when an operation references an
	// object identity unknown to the DataLayer.
	ErrObjectNotFound = errors.New("viewport: object not found")

	// ErrInvalidZoomLevel is returned when a zoom level is not in the
	// fixed power-of-two set {1, 2, 4, ..., 128}.
	ErrInvalidZoomLevel = errors.New("viewport: invalid zoom level")

	// ErrRasterizationFailed is returned when the rasterizer collaborator
	// fails to produce a texture for an object. The object is rendered
	// as absent for the frame; the frame itself is not aborted.
	ErrRasterizationFailed = errors.New("viewport: rasterization failed")

	// ErrNoRasterizer is returned by texture requests when no rasterizer
	// has been configured.
	ErrNoRasterizer = errors.New("viewport: no rasterizer configured")

	// ErrMirrorMode is returned when a camera operation is invoked at
	// zoom level 1, where the mirror shows the complete sample and
	// there is no sub-viewport to move.
	ErrMirrorMode = errors.New("viewport: camera is unavailable at zoom level 1")

	// ErrMisaligned reports a mesh resolution whose grid origin does not
	// map exactly to display pixel (0,0). This is a programming defect,
	// not a recoverable runtime condition; rendering at the affected
	// level is skipped rather than displayed misaligned.
	ErrMisaligned = errors.New("viewport: grid origin misaligned with display origin")
)
