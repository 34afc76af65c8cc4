package viewport

import "fmt"

// StoreObserver receives notifications about DataLayer mutations.
// Notification is directional and explicit: observers are invoked
// synchronously, in subscription order, after the store state has been
// updated. The MirrorLayer subscribes to evict textures for removed
// objects.
type StoreObserver interface {
	// ObjectUpdated is called after an object is added or mutated, with
	// the object's new version.
	ObjectUpdated(id ID, version uint64)

	// ObjectRemoved is called after an object is removed from the store.
	ObjectRemoved(id ID)
}

// DataStats is the DataLayer's read-only debug snapshot.
type DataStats struct {
	ObjectCount  int
	WindowBounds Rect
}

// DataLayer owns the ground-truth geometry and the fixed-scale
// sampling window. The layer itself is never scaled or offset by
// camera zoom; only the window moves, and always at scale 1. The
// DataLayer has no concept of zoom at all.
//
// Object versions are drawn from a single layer-wide clock, so the
// maximum version across any object set increases monotonically with
// every mutation. The CoordinationController relies on this for
// texture synchronization.
//
// DataLayer is not safe for concurrent use; all mutation happens on
// the engine's single goroutine.
type DataLayer struct {
	objects   map[ID]*Object
	order     []ID // insertion order, for deterministic iteration
	window    Rect
	clock     uint64
	observers []StoreObserver
}

// NewDataLayer creates a DataLayer sampling the given window.
func NewDataLayer(window Rect) *DataLayer {
	return &DataLayer{
		objects: make(map[ID]*Object),
		window:  window.Canon(),
	}
}

// Subscribe registers an observer for store mutations.
func (d *DataLayer) Subscribe(o StoreObserver) {
	d.observers = append(d.observers, o)
}

// AddObject validates the shape and adds a new object to the store.
// Returns ErrInvalidVertexCount if the shape's structure does not
// match its kind.
func (d *DataLayer) AddObject(shape Shape, style Style) (ID, error) {
	obj, err := NewObject(shape, style)
	if err != nil {
		return ID{}, err
	}
	d.clock++
	obj.Version = d.clock
	d.objects[obj.ID] = obj
	d.order = append(d.order, obj.ID)
	d.notifyUpdated(obj.ID, obj.Version)
	return obj.ID, nil
}

// UpdateShape replaces an object's geometry and bumps its version.
// Returns ErrObjectNotFound for unknown ids and ErrInvalidVertexCount
// for structurally invalid shapes; on error no state changes.
func (d *DataLayer) UpdateShape(id ID, shape Shape) error {
	obj, ok := d.objects[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, id)
	}
	if err := validateShape(shape); err != nil {
		return err
	}
	d.clock++
	obj.Shape = shape
	obj.bounds = computeBounds(shape, obj.Style)
	obj.Version = d.clock
	d.notifyUpdated(id, obj.Version)
	return nil
}

// UpdateStyle replaces an object's style and bumps its version.
func (d *DataLayer) UpdateStyle(id ID, style Style) error {
	obj, ok := d.objects[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, id)
	}
	d.clock++
	obj.Style = style
	obj.bounds = computeBounds(obj.Shape, style)
	obj.Version = d.clock
	d.notifyUpdated(id, obj.Version)
	return nil
}

// RemoveObject removes an object and notifies observers so dependent
// caches can evict. Returns ErrObjectNotFound for unknown ids.
func (d *DataLayer) RemoveObject(id ID) error {
	if _, ok := d.objects[id]; !ok {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, id)
	}
	delete(d.objects, id)
	for i, oid := range d.order {
		if oid == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	for _, o := range d.observers {
		o.ObjectRemoved(id)
	}
	return nil
}

// GetObject returns the object with the given id, if present.
// The returned object is a read-only view owned by the DataLayer.
func (d *DataLayer) GetObject(id ID) (*Object, bool) {
	obj, ok := d.objects[id]
	return obj, ok
}

// MoveWindow translates the sampling window by delta, in object units.
// The window is always at scale 1; no zoom factor is ever applied.
func (d *DataLayer) MoveWindow(delta Point) {
	d.window = d.window.Translate(delta)
}

// Window returns the current sampling window in object space.
func (d *DataLayer) Window() Rect {
	return d.window
}

// ObjectsInWindow returns the objects whose bounding box intersects
// the sampling window, in insertion order. The test is conservative:
// it uses the bounding box rather than exact geometry, so false
// positives are possible and false negatives are not.
//
// The returned slice and the objects it points to are read-only views.
func (d *DataLayer) ObjectsInWindow() []*Object {
	var out []*Object
	for _, id := range d.order {
		obj := d.objects[id]
		if obj.bounds.Intersects(d.window) {
			out = append(out, obj)
		}
	}
	return out
}

// Stats returns the debug snapshot of the store.
func (d *DataLayer) Stats() DataStats {
	return DataStats{
		ObjectCount:  len(d.objects),
		WindowBounds: d.window,
	}
}

func (d *DataLayer) notifyUpdated(id ID, version uint64) {
	for _, o := range d.observers {
		o.ObjectUpdated(id, version)
	}
}
