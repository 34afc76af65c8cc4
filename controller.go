package viewport

import "fmt"

// WASDTarget names the layer that directional input currently moves.
type WASDTarget uint8

const (
	// TargetDataWindow routes directional input to the DataLayer's
	// sampling window (mirror mode).
	TargetDataWindow WASDTarget = iota

	// TargetCamera routes directional input to the MirrorLayer's camera
	// viewport (camera mode).
	TargetCamera
)

// String implements fmt.Stringer.
func (t WASDTarget) String() string {
	switch t {
	case TargetDataWindow:
		return "data-window"
	case TargetCamera:
		return "camera"
	default:
		return fmt.Sprintf("WASDTarget(%d)", uint8(t))
	}
}

// Direction is a discrete pan direction. The engine has no opinion on
// physical key bindings; input dispatch maps keys to directions.
type Direction uint8

// The four pan directions.
const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Vector returns the unit vector for the direction, in the usual
// screen convention (y grows downward).
func (d Direction) Vector() Point {
	switch d {
	case DirUp:
		return Point{Y: -1}
	case DirDown:
		return Point{Y: 1}
	case DirLeft:
		return Point{X: -1}
	case DirRight:
		return Point{X: 1}
	default:
		return Point{}
	}
}

// Event is a discrete input event consumed by the controller.
type Event interface{ isEvent() }

// PanEvent requests a directional move of whichever layer currently
// owns directional input.
type PanEvent struct {
	Direction Direction
}

// ZoomEvent requests a zoom level change. Level is validated against
// the fixed power-of-two set before any state mutation.
type ZoomEvent struct {
	Level int
}

func (PanEvent) isEvent()  {}
func (ZoomEvent) isEvent() {}

// State is the coordination snapshot. WASDTarget and the two
// visibility flags are pure functions of ZoomLevel, derived on every
// zoom change; they are never settable independently, and any other
// writer would be a bug.
type State struct {
	ZoomLevel          ZoomLevel
	WASDTarget         WASDTarget
	DataLayerVisible   bool
	MirrorLayerVisible bool
	LastSyncVersion    uint64
}

// Controller orchestrates the two layers. It is the single writer of
// the coordination state and the only component that calls both
// DataLayer and MirrorLayer mutators in response to input.
//
// The controller is a state machine over the zoom level. At Zoom1
// (state A) directional input moves the sampling window and both
// layers are visible; above it (state B) directional input pans the
// camera and only the mirror is visible. Every zoom change rederives
// the routing and visibility flags and synchronizes textures.
type Controller struct {
	data   *DataLayer
	mirror *MirrorLayer
	state  State
	step   float64 // object units moved per pan event
}

// NewController wires a controller over the given layers. step is the
// distance one pan event moves, in object units.
func NewController(data *DataLayer, mirror *MirrorLayer, step float64) *Controller {
	c := &Controller{
		data:   data,
		mirror: mirror,
		step:   step,
	}
	c.derive(mirror.ZoomLevel())
	return c
}

// derive recomputes the zoom-dependent state fields. This is the sole
// writer of WASDTarget and the visibility flags in the entire engine.
func (c *Controller) derive(z ZoomLevel) {
	c.state.ZoomLevel = z
	if z.IsMirror() {
		c.state.WASDTarget = TargetDataWindow
		c.state.DataLayerVisible = true
		c.state.MirrorLayerVisible = true
	} else {
		c.state.WASDTarget = TargetCamera
		c.state.DataLayerVisible = false
		c.state.MirrorLayerVisible = true
	}
}

// State returns a snapshot of the coordination state.
func (c *Controller) State() State { return c.state }

// SetZoomLevel transitions the zoom state machine. Invalid levels fail
// with ErrInvalidZoomLevel before any state is touched. On every
// accepted change the derived flags are recomputed and SyncTextures
// runs, keeping the two layers consistent across the transition.
func (c *Controller) SetZoomLevel(level ZoomLevel) error {
	if !level.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidZoomLevel, int(level))
	}
	if err := c.mirror.SetZoomLevel(level); err != nil {
		return err
	}
	c.derive(level)
	c.SyncTextures()
	return nil
}

// MoveDirection dispatches a directional move to the layer selected by
// the current WASD target. Routing itself is never fallible; failures
// from the downstream layer are propagated, not swallowed.
func (c *Controller) MoveDirection(dir Direction) error {
	delta := dir.Vector().Mul(c.step)
	switch c.state.WASDTarget {
	case TargetCamera:
		return c.mirror.PanCamera(delta)
	default:
		c.data.MoveWindow(delta)
		return nil
	}
}

// Apply consumes one input event.
func (c *Controller) Apply(ev Event) error {
	switch e := ev.(type) {
	case PanEvent:
		return c.MoveDirection(e.Direction)
	case ZoomEvent:
		z, err := ParseZoomLevel(e.Level)
		if err != nil {
			return err
		}
		return c.SetZoomLevel(z)
	default:
		return fmt.Errorf("viewport: unknown event %T", ev)
	}
}

// SyncTextures brings the MirrorLayer's cache up to date with the
// DataLayer. Objects in the window whose version is newer than the
// last synchronized version are refreshed (exactly those objects;
// unrelated entries are untouched). Per-object rasterization failures
// are recovered locally by the mirror and do not abort the sync.
func (c *Controller) SyncTextures() {
	maxVersion := c.state.LastSyncVersion
	for _, obj := range c.data.ObjectsInWindow() {
		if obj.Version <= c.state.LastSyncVersion {
			continue
		}
		if obj.Version > maxVersion {
			maxVersion = obj.Version
		}
		// RequestTexture is a cache hit for fresh entries and a
		// re-rasterization for stale or missing ones.
		if _, err := c.mirror.RequestTexture(obj.ID); err != nil {
			Logger().Debug("texture refresh deferred", "object", obj.ID, "err", err)
		}
	}
	c.state.LastSyncVersion = maxVersion
}
