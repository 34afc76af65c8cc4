package viewport

// Engine wires the three components together: the DataLayer owning
// geometry, the MirrorLayer presenting it, and the Controller routing
// input between them. It also drives the per-frame tick.
//
// All Engine methods must be called from a single goroutine; the
// engine's concurrency model is single-threaded cooperative, with
// asynchronous rasterization results delivered back onto this
// goroutine through Mirror().CompleteRasterization.
type Engine struct {
	data   *DataLayer
	mirror *MirrorLayer
	ctrl   *Controller
}

// New creates a fully wired engine. The MirrorLayer is subscribed to
// the DataLayer so removals evict cached textures without the caller
// doing any plumbing.
func New(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	data := NewDataLayer(o.window)
	mirror := NewMirrorLayer(data, o.raster, o.maxTextures, o.displayW, o.displayH)
	data.Subscribe(mirror)
	ctrl := NewController(data, mirror, o.panStep)

	Logger().Info("viewport engine created",
		"window", o.window,
		"display", [2]int{o.displayW, o.displayH},
		"maxTextures", o.maxTextures)

	return &Engine{data: data, mirror: mirror, ctrl: ctrl}
}

// Data returns the DataLayer.
func (e *Engine) Data() *DataLayer { return e.data }

// Mirror returns the MirrorLayer.
func (e *Engine) Mirror() *MirrorLayer { return e.mirror }

// Controller returns the CoordinationController.
func (e *Engine) Controller() *Controller { return e.ctrl }

// Apply consumes one input event (see Controller.Apply).
func (e *Engine) Apply(ev Event) error { return e.ctrl.Apply(ev) }

// RenderFrame synchronizes textures, composites the current view and
// runs end-of-frame maintenance.
func (e *Engine) RenderFrame() (*Frame, error) {
	e.ctrl.SyncTextures()
	frame, err := e.mirror.Render()
	e.EndFrame()
	return frame, err
}

// EndFrame runs opportunistic end-of-frame maintenance. The texture
// cache enforces its bound at insert time, so this is bookkeeping
// only; it exists as the hook where asynchronous backends drain
// completed fetches before the next input cycle.
func (e *Engine) EndFrame() {
	ms := e.mirror.Stats()
	Logger().Debug("frame maintenance",
		"cacheSize", ms.CacheSize,
		"hitRate", ms.CacheHitRate,
		"evictions", ms.Evictions)
}
