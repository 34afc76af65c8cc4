package viewport

import "image/color"

// Color represents an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGB creates an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color with explicit alpha.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// NRGBA converts to a non-premultiplied 8-bit stdlib color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Style holds the visual attributes of an object. The engine treats it
// as opaque data: changing a style bumps the object version and
// invalidates its cached texture, but interpretation is left to the
// rasterizer.
type Style struct {
	Fill        Color
	Stroke      Color
	StrokeWidth float64
}

// DefaultStyle returns a black fill with no stroke.
func DefaultStyle() Style {
	return Style{Fill: RGB(0, 0, 0)}
}
