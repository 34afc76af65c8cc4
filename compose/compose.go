// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package compose provides a CPU compositor that turns viewport frames
// into RGBA images.
//
// Placements are drawn in frame order with nearest-neighbor scaling,
// which keeps the engine's integer zoom factors pixel-exact. Textures
// must be CPU-readable (implement ImageSource, as the raster package's
// textures do); GPU-resident textures are skipped, since compositing
// those belongs to a GPU backend.
package compose

import (
	"fmt"
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/viewport"
)

// ImageSource is implemented by textures whose pixels are CPU-readable.
type ImageSource interface {
	Image() *image.RGBA
}

// Compositor draws frames onto an RGBA surface of fixed size.
type Compositor struct {
	width      int
	height     int
	background viewport.Color
}

// New creates a compositor for the given display size with a white
// background.
func New(width, height int) *Compositor {
	return &Compositor{
		width:      width,
		height:     height,
		background: viewport.RGB(1, 1, 1),
	}
}

// SetBackground sets the frame clear color.
func (c *Compositor) SetBackground(col viewport.Color) {
	c.background = col
}

// Composite draws the frame into a fresh image. Placements whose
// textures are not CPU-readable are skipped with a debug log; that is
// a backend mismatch, not a frame error.
func (c *Compositor) Composite(frame *viewport.Frame) (*image.RGBA, error) {
	if frame == nil {
		return nil, fmt.Errorf("compose: nil frame")
	}
	dst := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(c.background.NRGBA()), image.Point{}, xdraw.Src)

	for _, pl := range frame.Placements {
		src, ok := pl.Texture.(ImageSource)
		if !ok {
			viewport.Logger().Debug("skipping non-CPU texture", "object", pl.ID)
			continue
		}
		img := src.Image()
		if img == nil {
			continue
		}
		dr := image.Rect(
			int(math.Round(pl.Display.MinX)),
			int(math.Round(pl.Display.MinY)),
			int(math.Round(pl.Display.MaxX)),
			int(math.Round(pl.Display.MaxY)),
		)
		if dr.Empty() || !dr.Overlaps(dst.Bounds()) {
			continue
		}
		xdraw.NearestNeighbor.Scale(dst, dr, img, img.Bounds(), xdraw.Over, nil)
	}
	return dst, nil
}
