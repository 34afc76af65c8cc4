package viewport

// Default engine configuration.
const (
	// DefaultMaxTextures is the texture cache entry bound.
	DefaultMaxTextures = 256

	// DefaultPanStep is the distance one pan event moves, in object units.
	DefaultPanStep = 16.0

	// DefaultDisplayWidth and DefaultDisplayHeight size the display
	// surface and, at scale 1, the sampling window.
	DefaultDisplayWidth  = 1024
	DefaultDisplayHeight = 768
)

// Option configures an Engine during creation.
//
// Example:
//
//	eng := viewport.New(
//	    viewport.WithRasterizer(raster.New()),
//	    viewport.WithMaxTextures(128),
//	)
type Option func(*engineOptions)

type engineOptions struct {
	window      Rect
	displayW    int
	displayH    int
	maxTextures int
	raster      Rasterizer
	panStep     float64
}

func defaultOptions() engineOptions {
	return engineOptions{
		window:      RectAt(Point{}, DefaultDisplayWidth, DefaultDisplayHeight),
		displayW:    DefaultDisplayWidth,
		displayH:    DefaultDisplayHeight,
		maxTextures: DefaultMaxTextures,
		panStep:     DefaultPanStep,
	}
}

// WithRasterizer sets the rasterizer backend. Without one, texture
// requests fail with ErrNoRasterizer; use raster.New() for the bundled
// CPU implementation or inject a GPU-backed one.
func WithRasterizer(r Rasterizer) Option {
	return func(o *engineOptions) { o.raster = r }
}

// WithMaxTextures bounds the texture cache. Non-positive values select
// DefaultMaxTextures.
func WithMaxTextures(n int) Option {
	return func(o *engineOptions) { o.maxTextures = n }
}

// WithWindow sets the initial sampling window in object space.
func WithWindow(w Rect) Option {
	return func(o *engineOptions) { o.window = w.Canon() }
}

// WithDisplaySize sets the display surface size in pixels.
func WithDisplaySize(width, height int) Option {
	return func(o *engineOptions) {
		o.displayW = width
		o.displayH = height
	}
}

// WithPanStep sets the distance one pan event moves, in object units.
func WithPanStep(step float64) Option {
	return func(o *engineOptions) { o.panStep = step }
}
