// Command viewportdemo demonstrates the dual-layer viewport engine.
// It builds a small scene, pans the sampling window in mirror mode,
// zooms into camera mode and pans the camera, writing one PNG per
// frame.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/viewport"
	"github.com/gogpu/viewport/compose"
	"github.com/gogpu/viewport/raster"
)

func main() {
	var (
		width   = flag.Int("width", 1024, "display width in pixels")
		height  = flag.Int("height", 768, "display height in pixels")
		outDir  = flag.String("out", ".", "output directory for PNG frames")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		viewport.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	eng := viewport.New(
		viewport.WithRasterizer(raster.New()),
		viewport.WithDisplaySize(*width, *height),
		viewport.WithWindow(viewport.RectAt(viewport.Point{}, float64(*width), float64(*height))),
	)
	buildScene(eng.Data())

	comp := compose.New(*width, *height)
	comp.SetBackground(viewport.RGB(0.12, 0.12, 0.16))

	steps := []struct {
		name string
		ev   viewport.Event
	}{
		{"pan-window-right", viewport.PanEvent{Direction: viewport.DirRight}},
		{"pan-window-down", viewport.PanEvent{Direction: viewport.DirDown}},
		{"zoom-4x", viewport.ZoomEvent{Level: 4}},
		{"pan-camera-right", viewport.PanEvent{Direction: viewport.DirRight}},
		{"pan-camera-right-2", viewport.PanEvent{Direction: viewport.DirRight}},
		{"zoom-1x", viewport.ZoomEvent{Level: 1}},
	}

	if err := writeFrame(eng, comp, *outDir, 0, "initial"); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	for i, step := range steps {
		if err := eng.Apply(step.ev); err != nil {
			log.Fatalf("Input %q rejected: %v", step.name, err)
		}
		if err := writeFrame(eng, comp, *outDir, i+1, step.name); err != nil {
			log.Fatalf("Failed to render %q: %v", step.name, err)
		}
	}

	ds := eng.Data().Stats()
	ms := eng.Mirror().Stats()
	log.Printf("Done: %d objects, cache %d/%d, hit rate %.2f",
		ds.ObjectCount, ms.CacheSize, ms.CacheCapacity, ms.CacheHitRate)
}

func buildScene(data *viewport.DataLayer) {
	shapes := []struct {
		shape viewport.Shape
		style viewport.Style
	}{
		{viewport.Circle{Center: viewport.Pt(200, 200), Radius: 80},
			viewport.Style{Fill: viewport.RGB(0.9, 0.3, 0.2)}},
		{viewport.Rectangle{Min: viewport.Pt(400, 150), Width: 220, Height: 140},
			viewport.Style{Fill: viewport.RGB(0.2, 0.6, 0.9)}},
		{viewport.Diamond{Center: viewport.Pt(750, 400), Width: 160, Height: 220},
			viewport.Style{Fill: viewport.RGB(0.3, 0.8, 0.4)}},
		{viewport.Line{From: viewport.Pt(100, 500), To: viewport.Pt(600, 650)},
			viewport.Style{Stroke: viewport.RGB(0.95, 0.8, 0.2), StrokeWidth: 6}},
		{viewport.Polygon{Points: []viewport.Point{
			{X: 820, Y: 120}, {X: 930, Y: 180}, {X: 890, Y: 300}, {X: 760, Y: 260},
		}}, viewport.Style{Fill: viewport.RGB(0.7, 0.4, 0.9)}},
	}
	for _, s := range shapes {
		if _, err := data.AddObject(s.shape, s.style); err != nil {
			log.Fatalf("Failed to add %s: %v", s.shape.Kind(), err)
		}
	}
}

func writeFrame(eng *viewport.Engine, comp *compose.Compositor, dir string, n int, name string) error {
	frame, err := eng.RenderFrame()
	if err != nil {
		return err
	}
	img, err := comp.Composite(frame)
	if err != nil {
		return err
	}
	path := fmt.Sprintf("%s/frame%02d-%s.png", dir, n, name)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return err
	}
	log.Printf("Wrote %s (%d placements, %d skipped, zoom %s)",
		path, len(frame.Placements), len(frame.Skipped), frame.Zoom)
	return nil
}
