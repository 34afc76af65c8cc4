package viewport

import "github.com/google/uuid"

// ID identifies a geometric object for its process lifetime. IDs are
// the sole key of the MirrorLayer texture cache; they are never
// combined with a zoom level.
type ID = uuid.UUID

// NewID allocates a fresh object identity.
func NewID() ID { return uuid.New() }

// Object is one geometric object owned by the DataLayer. Version
// increments on every geometric or style mutation and is the
// cache-invalidation key for the MirrorLayer: a cached texture is
// valid iff it was captured at the object's current version.
//
// Objects returned by DataLayer accessors are read-only views; all
// mutation goes through DataLayer methods so version bookkeeping and
// change notification cannot be bypassed.
type Object struct {
	ID      ID
	Shape   Shape
	Style   Style
	Version uint64

	bounds Rect // derived from Shape, cached
}

// NewObject builds a standalone object with a fresh identity, after
// validating the shape's structure. DataLayer.AddObject is the normal
// entry point; NewObject exists for rasterizer backends and tests that
// need objects without a store.
func NewObject(shape Shape, style Style) (*Object, error) {
	if err := validateShape(shape); err != nil {
		return nil, err
	}
	return &Object{
		ID:      NewID(),
		Shape:   shape,
		Style:   style,
		Version: 1,
		bounds:  computeBounds(shape, style),
	}, nil
}

// computeBounds derives the object's bounding box from its shape and
// style. Stroked geometry extends half the stroke width past the
// shape outline, so the box is padded accordingly; over-inclusion is
// fine (the sampling test is conservative), under-inclusion would clip
// textures.
func computeBounds(shape Shape, style Style) Rect {
	b := shape.Bounds()
	if style.StrokeWidth > 0 {
		b = b.Expand(style.StrokeWidth / 2)
	}
	return b
}

// Bounds returns the object's axis-aligned bounding box in object
// space, cached at the last shape mutation.
func (o *Object) Bounds() Rect { return o.bounds }

// Kind returns the shape kind.
func (o *Object) Kind() ShapeKind { return o.Shape.Kind() }
