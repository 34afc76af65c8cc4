package viewport

import "github.com/gogpu/gputypes"

// Texture is an opaque handle to a rasterized snapshot of one object.
// Implementations may be GPU-resident (wgpu textures) or CPU-backed
// (the raster package's image textures); the engine only sizes,
// places and releases them.
type Texture interface {
	// Width returns the texture width in pixels.
	Width() int

	// Height returns the texture height in pixels.
	Height() int

	// Format returns the texture pixel format.
	Format() gputypes.TextureFormat

	// Release frees the resources behind the handle. Called by the
	// texture cache on eviction; the handle must not be used afterwards.
	Release()
}

// TextureDescriptor describes the texture a rasterizer should produce
// for an object: the object's bounding box at native scale, in whole
// pixels.
type TextureDescriptor struct {
	Width  int
	Height int
	Format gputypes.TextureFormat
}

// DefaultTextureDescriptor returns an RGBA8 descriptor with the given
// dimensions, clamped to at least one pixel on each axis.
func DefaultTextureDescriptor(width, height int) TextureDescriptor {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return TextureDescriptor{
		Width:  width,
		Height: height,
		Format: gputypes.TextureFormatRGBA8Unorm,
	}
}
