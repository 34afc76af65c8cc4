package viewport

import (
	"math"
	"testing"
)

var samplePoints = []Point{
	{X: 0, Y: 0},
	{X: 1, Y: 1},
	{X: -3.5, Y: 7.25},
	{X: 100.125, Y: -200.625},
	{X: 1e6, Y: -1e6},
	{X: 0.333333, Y: 0.666667},
}

func TestObjectGridRoundTrip(t *testing.T) {
	for _, z := range ZoomLevels {
		t.Run(z.String(), func(t *testing.T) {
			for _, p := range samplePoints {
				c := ObjectPoint{X: p.X, Y: p.Y}
				got := GridToObject(ObjectToGrid(c, z), z)
				if math.Abs(got.X-c.X) > GridEpsilon || math.Abs(got.Y-c.Y) > GridEpsilon {
					t.Errorf("round trip %+v at %s = %+v", c, z, got)
				}
			}
		})
	}
}

func TestGridDisplayRoundTrip(t *testing.T) {
	for _, z := range ZoomLevels {
		t.Run(z.String(), func(t *testing.T) {
			res := ResolutionFor(z)
			for _, p := range samplePoints {
				g := GridPoint{X: p.X, Y: p.Y}
				got := DisplayToGrid(GridToDisplay(g, res), res)
				if math.Abs(got.X-g.X) > GridEpsilon || math.Abs(got.Y-g.Y) > GridEpsilon {
					t.Errorf("round trip %+v at %s = %+v", g, z, got)
				}
			}
		})
	}
}

func TestCameraRoundTrip(t *testing.T) {
	cameras := []ObjectPoint{{}, {X: 50, Y: -20}, {X: -1000.5, Y: 2000.25}}
	for _, z := range ZoomLevels {
		for _, cam := range cameras {
			for _, p := range samplePoints {
				c := ObjectPoint{X: p.X, Y: p.Y}
				got := DisplayToObjectCamera(ObjectToDisplayCamera(c, cam, z), cam, z)
				if math.Abs(got.X-c.X) > GridEpsilon || math.Abs(got.Y-c.Y) > GridEpsilon {
					t.Errorf("camera round trip %+v (cam %+v, zoom %s) = %+v", c, cam, z, got)
				}
			}
		}
	}
}

// The data-layer conversion path must be a pure translation: the
// sampling window never applies a zoom factor.
func TestWindowConversionIsScaleOne(t *testing.T) {
	window := RectAt(Pt(100, 200), 800, 600)
	tests := []struct {
		name string
		in   ObjectPoint
		want DisplayPoint
	}{
		{"window origin", ObjectPoint{X: 100, Y: 200}, DisplayPoint{}},
		{"offset", ObjectPoint{X: 150, Y: 260}, DisplayPoint{X: 50, Y: 60}},
		{"outside window", ObjectPoint{X: 0, Y: 0}, DisplayPoint{X: -100, Y: -200}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ObjectToDisplayWindow(tt.in, window)
			if got != tt.want {
				t.Errorf("ObjectToDisplayWindow(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
			back := DisplayToObjectWindow(got, window)
			if back != tt.in {
				t.Errorf("inverse(%+v) = %+v, want %+v", got, back, tt.in)
			}
		})
	}
}

func TestCameraConversionAppliesZoom(t *testing.T) {
	cam := ObjectPoint{X: 10, Y: 20}
	got := ObjectToDisplayCamera(ObjectPoint{X: 15, Y: 25}, cam, Zoom4)
	want := DisplayPoint{X: 20, Y: 20}
	if math.Abs(got.X-want.X) > GridEpsilon || math.Abs(got.Y-want.Y) > GridEpsilon {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
