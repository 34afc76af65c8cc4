package viewport

import (
	"fmt"

	"github.com/gogpu/viewport/internal/texcache"
)

// ObjectSource is the MirrorLayer's read-only view of the DataLayer.
// The mirror never mutates geometry; it only resolves identities to
// live objects and enumerates the current sample.
type ObjectSource interface {
	GetObject(id ID) (*Object, bool)
	ObjectsInWindow() []*Object
	Window() Rect
}

// Camera is a snapshot of the mirror's viewport state. Position is in
// object space. At Zoom1 ("mirror mode") the entire DataLayer sample
// is shown and the camera position is unused; above it ("camera mode")
// the camera selects the sub-view of the mirrored content.
type Camera struct {
	Position  Point
	Zoom      ZoomLevel
	IsPanning bool
	PanAnchor *Point
}

// Placement positions one texture in a frame. Transform maps texture
// pixels (native object scale, origin at the object's bounding-box
// minimum) to display pixels; Display is the same mapping applied to
// the whole texture, for callers that only need the target rectangle.
type Placement struct {
	ID        ID
	Texture   Texture
	Transform Matrix
	Display   Rect
}

// Frame is one composited view: placements in DataLayer insertion
// order, plus the ids omitted because their texture could not be
// produced this frame.
type Frame struct {
	Zoom       ZoomLevel
	Placements []Placement
	Skipped    []ID
}

// MirrorStats is the MirrorLayer's read-only debug snapshot.
type MirrorStats struct {
	ZoomLevel     ZoomLevel
	CacheSize     int
	CacheCapacity int
	CacheHitRate  float64
	Evictions     uint64
}

// MirrorLayer presents a camera-transformed, texture-cached view of
// whatever the DataLayer currently reports as visible.
//
// Textures are cached per object identity and validated against the
// object's version; they are always rasterized at native object scale,
// so one object owns at most one cache entry regardless of zoom.
//
// MirrorLayer is not safe for concurrent use; all mutation happens on
// the engine's single goroutine. CompleteRasterization is the delivery
// point for asynchronous backends and must also be called from that
// goroutine (typically from the engine's end-of-frame drain).
type MirrorLayer struct {
	source ObjectSource
	raster Rasterizer
	cache  *texcache.Cache[Texture]

	position  Point
	zoom      ZoomLevel
	isPanning bool
	panAnchor *Point
	aligned   bool

	displayW int
	displayH int

	// pending maps in-flight asynchronous fetches to the object version
	// they were started for. An entry guards the render path from
	// re-rasterizing while a fetch is outstanding.
	pending map[ID]uint64

	// failed records the last object version whose rasterization
	// failure was logged, so failures log once per occurrence rather
	// than once per frame.
	failed map[ID]uint64
}

// NewMirrorLayer creates a mirror over the given source. The
// rasterizer may be nil, in which case texture requests fail with
// ErrNoRasterizer until one is configured.
func NewMirrorLayer(source ObjectSource, raster Rasterizer, maxTextures, displayW, displayH int) *MirrorLayer {
	m := &MirrorLayer{
		source:   source,
		raster:   raster,
		zoom:     Zoom1,
		aligned:  true,
		displayW: displayW,
		displayH: displayH,
		pending:  make(map[ID]uint64),
		failed:   make(map[ID]uint64),
	}
	m.cache = texcache.New(maxTextures, func(_ ID, tex Texture) {
		if tex != nil {
			tex.Release()
		}
	})
	return m
}

// ZoomLevel returns the current zoom level.
func (m *MirrorLayer) ZoomLevel() ZoomLevel { return m.zoom }

// Camera returns a snapshot of the viewport state.
func (m *MirrorLayer) Camera() Camera {
	var anchor *Point
	if m.panAnchor != nil {
		a := *m.panAnchor
		anchor = &a
	}
	return Camera{
		Position:  m.position,
		Zoom:      m.zoom,
		IsPanning: m.isPanning,
		PanAnchor: anchor,
	}
}

// SetZoomLevel switches the camera to a new zoom level. Returns
// ErrInvalidZoomLevel without mutating any state if level is not in the
// fixed power-of-two set. On every accepted change the mesh resolution
// is recomputed and its alignment asserted; a misaligned resolution is
// a defect that disables rendering at that level (see Render).
func (m *MirrorLayer) SetZoomLevel(level ZoomLevel) error {
	if !level.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidZoomLevel, int(level))
	}
	m.zoom = level
	m.aligned = ValidateAlignment(ResolutionFor(level))
	if !m.aligned {
		Logger().Warn("mesh misaligned, rendering disabled for level",
			"zoom", level.String())
	}
	return nil
}

// PanCamera translates the camera position by delta object units.
// Rejected with ErrMirrorMode at zoom level 1, where the mirror shows
// the complete DataLayer sample and there is no sub-viewport to move.
func (m *MirrorLayer) PanCamera(delta Point) error {
	if m.zoom.IsMirror() {
		return ErrMirrorMode
	}
	m.position = m.position.Add(delta)
	return nil
}

// BeginPan records an interactive pan gesture anchor.
func (m *MirrorLayer) BeginPan(anchor Point) {
	m.isPanning = true
	a := anchor
	m.panAnchor = &a
}

// EndPan clears the pan gesture state.
func (m *MirrorLayer) EndPan() {
	m.isPanning = false
	m.panAnchor = nil
}

// ViewportBounds returns the object-space region visible at the
// current zoom: the full sampling window in mirror mode, or the
// camera's sub-rectangle (display size divided by zoom) above it.
func (m *MirrorLayer) ViewportBounds() Rect {
	if m.zoom.IsMirror() {
		return m.source.Window()
	}
	spacing := ResolutionFor(m.zoom).Spacing
	return RectAt(m.position,
		float64(m.displayW)*spacing,
		float64(m.displayH)*spacing)
}

// RequestTexture returns a texture for the object, rasterizing
// synchronously on a miss or when the cached entry's captured version
// is stale. Never returns a stale texture: staleness always triggers
// re-rasterization.
func (m *MirrorLayer) RequestTexture(id ID) (Texture, error) {
	obj, ok := m.source.GetObject(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, id)
	}
	if tex, ver, found := m.cache.Lookup(id); found && ver == obj.Version {
		return tex, nil
	}
	return m.rasterize(obj)
}

// rasterize produces and caches a fresh texture for obj.
func (m *MirrorLayer) rasterize(obj *Object) (Texture, error) {
	if m.raster == nil {
		return nil, ErrNoRasterizer
	}
	tex, err := m.raster.Rasterize(obj)
	if err != nil {
		m.logFailure(obj.ID, obj.Version, err)
		return nil, fmt.Errorf("%w: object %s: %v", ErrRasterizationFailed, obj.ID, err)
	}
	m.cache.Put(obj.ID, obj.Version, tex)
	return tex, nil
}

// MarkInFlight records that an asynchronous rasterization has been
// started for the object's current version. While the entry is
// outstanding, Render uses the last valid cached texture for the
// object if one exists, or skips it, instead of rasterizing again.
func (m *MirrorLayer) MarkInFlight(id ID) {
	if obj, ok := m.source.GetObject(id); ok {
		m.pending[id] = obj.Version
	}
}

// CompleteRasterization delivers the result of an asynchronous fetch.
// The result is discarded (and the texture released) if the object was
// removed in the meantime or its version no longer matches the one the
// fetch was started for.
func (m *MirrorLayer) CompleteRasterization(id ID, version uint64, tex Texture, err error) {
	if pv, ok := m.pending[id]; ok && pv == version {
		delete(m.pending, id)
	}
	obj, ok := m.source.GetObject(id)
	if !ok || obj.Version != version {
		if tex != nil {
			tex.Release()
		}
		Logger().Debug("discarded orphaned rasterization result",
			"object", id, "version", version)
		return
	}
	if err != nil {
		m.logFailure(id, version, err)
		return
	}
	m.cache.Put(id, version, tex)
}

// EvictTexture removes the cached texture for id, if any.
func (m *MirrorLayer) EvictTexture(id ID) {
	m.cache.Delete(id)
}

// ClearCache releases every cached texture.
func (m *MirrorLayer) ClearCache() {
	m.cache.Clear()
}

// HasFreshTexture reports whether the cache holds a texture for id
// captured at the object's current version.
func (m *MirrorLayer) HasFreshTexture(id ID) bool {
	obj, ok := m.source.GetObject(id)
	if !ok {
		return false
	}
	ver, cached := m.cache.Version(id)
	return cached && ver == obj.Version
}

// Render composites the current view into a Frame.
//
// In mirror mode every sampled object is placed at its native
// object-space position relative to the sampling window. In camera
// mode only objects whose bounds intersect the camera viewport are
// placed, translated by the camera position and scaled by the zoom
// factor.
//
// Per-object texture failures do not abort the frame: the object is
// listed in Frame.Skipped and rendering continues. A misaligned mesh
// resolution aborts with ErrMisaligned instead of producing drifted
// output.
func (m *MirrorLayer) Render() (*Frame, error) {
	if !m.aligned {
		return nil, fmt.Errorf("%w: zoom %s", ErrMisaligned, m.zoom)
	}

	frame := &Frame{Zoom: m.zoom}
	viewport := m.ViewportBounds()
	window := m.source.Window()
	zf := m.zoom.Factor()

	for _, obj := range m.source.ObjectsInWindow() {
		if !m.zoom.IsMirror() && !obj.Bounds().Intersects(viewport) {
			continue
		}
		tex, ok := m.textureForFrame(obj, frame)
		if !ok {
			continue
		}

		b := obj.Bounds()
		var display Rect
		if m.zoom.IsMirror() {
			display = b.Translate(Point{X: -window.MinX, Y: -window.MinY})
		} else {
			display = b.Translate(Point{X: -m.position.X, Y: -m.position.Y}).Scale(zf)
		}
		transform := Translation(display.MinX, display.MinY)
		if !m.zoom.IsMirror() {
			transform = transform.Multiply(Scaling(zf))
		}
		frame.Placements = append(frame.Placements, Placement{
			ID:        obj.ID,
			Texture:   tex,
			Transform: transform,
			Display:   display,
		})
	}

	Logger().Debug("rendered frame",
		"zoom", m.zoom.String(),
		"placements", len(frame.Placements),
		"skipped", len(frame.Skipped))
	return frame, nil
}

// textureForFrame resolves the texture to draw for obj this frame:
// fresh cache hit, last valid texture while a fetch is in flight, or
// a synchronous rasterization. Failures record the object in
// frame.Skipped.
func (m *MirrorLayer) textureForFrame(obj *Object, frame *Frame) (Texture, bool) {
	tex, ver, found := m.cache.Lookup(obj.ID)
	if found && ver == obj.Version {
		return tex, true
	}
	if _, inFlight := m.pending[obj.ID]; inFlight {
		if found {
			// Stale but last valid; the in-flight fetch will replace it.
			return tex, true
		}
		frame.Skipped = append(frame.Skipped, obj.ID)
		return nil, false
	}
	fresh, err := m.rasterize(obj)
	if err != nil {
		frame.Skipped = append(frame.Skipped, obj.ID)
		return nil, false
	}
	return fresh, true
}

// Stats returns the debug snapshot.
func (m *MirrorLayer) Stats() MirrorStats {
	cs := m.cache.Stats()
	return MirrorStats{
		ZoomLevel:     m.zoom,
		CacheSize:     cs.Len,
		CacheCapacity: cs.Capacity,
		CacheHitRate:  cs.HitRate,
		Evictions:     cs.Evictions,
	}
}

// ObjectUpdated implements StoreObserver. Staleness is detected by
// version comparison on the next request, so no eager work is needed;
// only the failure log guard is reset so a new version's failure logs
// again.
func (m *MirrorLayer) ObjectUpdated(id ID, version uint64) {
	if lv, ok := m.failed[id]; ok && lv != version {
		delete(m.failed, id)
	}
}

// ObjectRemoved implements StoreObserver: the cached texture is
// evicted and any in-flight fetch is orphaned so its completion will
// be discarded.
func (m *MirrorLayer) ObjectRemoved(id ID) {
	m.cache.Delete(id)
	delete(m.pending, id)
	delete(m.failed, id)
}

// logFailure logs a rasterization failure once per (id, version).
func (m *MirrorLayer) logFailure(id ID, version uint64, err error) {
	if lv, ok := m.failed[id]; ok && lv == version {
		return
	}
	m.failed[id] = version
	Logger().Warn("rasterization failed, object omitted",
		"object", id, "version", version, "err", err)
}

var _ StoreObserver = (*MirrorLayer)(nil)
