package raster

import (
	"image"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/viewport"
)

// ImageTexture is a CPU-backed texture over an RGBA image. It
// implements viewport.Texture; the compose package reads the pixels
// back through Image.
type ImageTexture struct {
	img *image.RGBA
}

// NewImageTexture wraps an RGBA image as a texture.
func NewImageTexture(img *image.RGBA) *ImageTexture {
	return &ImageTexture{img: img}
}

// Width returns the texture width in pixels.
func (t *ImageTexture) Width() int {
	if t.img == nil {
		return 0
	}
	return t.img.Bounds().Dx()
}

// Height returns the texture height in pixels.
func (t *ImageTexture) Height() int {
	if t.img == nil {
		return 0
	}
	return t.img.Bounds().Dy()
}

// Format returns the texture pixel format.
func (t *ImageTexture) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Release drops the pixel buffer. The texture must not be used after
// Release; Image returns nil from then on.
func (t *ImageTexture) Release() {
	t.img = nil
}

// Image returns the backing image, or nil after Release.
func (t *ImageTexture) Image() *image.RGBA {
	return t.img
}

var _ viewport.Texture = (*ImageTexture)(nil)
