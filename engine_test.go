package viewport

import "testing"

func newTestEngine(t *testing.T) (*Engine, *fakeRasterizer) {
	t.Helper()
	ras := newFakeRasterizer()
	eng := New(
		WithRasterizer(ras),
		WithWindow(RectAt(Pt(0, 0), 200, 200)),
		WithDisplaySize(200, 200),
		WithMaxTextures(16),
		WithPanStep(10),
	)
	return eng, ras
}

// A circle at (100,100) radius 50 is reported by a
// window covering (0,0)-(200,200) and rendered end to end.
func TestEngineEndToEnd(t *testing.T) {
	eng, _ := newTestEngine(t)
	id, err := eng.Data().AddObject(Circle{Center: Pt(100, 100), Radius: 50}, DefaultStyle())
	if err != nil {
		t.Fatalf("AddObject: %v", err)
	}

	objs := eng.Data().ObjectsInWindow()
	if len(objs) != 1 || objs[0].ID != id {
		t.Fatalf("ObjectsInWindow = %v", objs)
	}

	frame, err := eng.RenderFrame()
	if err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	if len(frame.Placements) != 1 || frame.Placements[0].ID != id {
		t.Errorf("placements = %+v", frame.Placements)
	}
	if !eng.Mirror().HasFreshTexture(id) {
		t.Error("texture not cached after frame")
	}
}

func TestEngineInputFlow(t *testing.T) {
	eng, _ := newTestEngine(t)

	if err := eng.Apply(PanEvent{Direction: DirRight}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if eng.Data().Window().MinX != 10 {
		t.Errorf("window MinX = %v", eng.Data().Window().MinX)
	}

	if err := eng.Apply(ZoomEvent{Level: 4}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if err := eng.Apply(PanEvent{Direction: DirRight}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if eng.Mirror().Camera().Position != Pt(10, 0) {
		t.Errorf("camera = %+v", eng.Mirror().Camera().Position)
	}
	// The window did not move again after entering camera mode.
	if eng.Data().Window().MinX != 10 {
		t.Errorf("window MinX = %v after camera pan", eng.Data().Window().MinX)
	}
}

func TestEngineRemovalDuringInFlightFetch(t *testing.T) {
	eng, _ := newTestEngine(t)
	id, err := eng.Data().AddObject(Circle{Center: Pt(100, 100), Radius: 50}, DefaultStyle())
	if err != nil {
		t.Fatalf("AddObject: %v", err)
	}
	obj, _ := eng.Data().GetObject(id)
	version := obj.Version

	eng.Mirror().MarkInFlight(id)
	if err := eng.Data().RemoveObject(id); err != nil {
		t.Fatalf("RemoveObject: %v", err)
	}
	tex := &fakeTexture{w: 100, h: 100}
	eng.Mirror().CompleteRasterization(id, version, tex, nil)

	if eng.Mirror().Stats().CacheSize != 0 {
		t.Errorf("cache size = %d, want 0", eng.Mirror().Stats().CacheSize)
	}
}

func TestEngineStats(t *testing.T) {
	eng, _ := newTestEngine(t)
	if _, err := eng.Data().AddObject(Dot{At: Pt(5, 5)}, DefaultStyle()); err != nil {
		t.Fatalf("AddObject: %v", err)
	}
	if _, err := eng.RenderFrame(); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}

	ds := eng.Data().Stats()
	if ds.ObjectCount != 1 {
		t.Errorf("ObjectCount = %d", ds.ObjectCount)
	}
	ms := eng.Mirror().Stats()
	if ms.CacheSize != 1 || ms.CacheCapacity != 16 {
		t.Errorf("mirror stats = %+v", ms)
	}
	if got := eng.Controller().State().ZoomLevel; got != Zoom1 {
		t.Errorf("zoom = %s", got)
	}
}

func TestEngineDefaults(t *testing.T) {
	eng := New()
	if eng.Mirror().Stats().CacheCapacity != DefaultMaxTextures {
		t.Errorf("capacity = %d", eng.Mirror().Stats().CacheCapacity)
	}
	if w := eng.Data().Window(); w.Width() != DefaultDisplayWidth || w.Height() != DefaultDisplayHeight {
		t.Errorf("window = %+v", w)
	}
	// Without a rasterizer, frames render but every object is skipped.
	if _, err := eng.Data().AddObject(Dot{At: Pt(1, 1)}, DefaultStyle()); err != nil {
		t.Fatalf("AddObject: %v", err)
	}
	frame, err := eng.RenderFrame()
	if err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	if len(frame.Placements) != 0 || len(frame.Skipped) != 1 {
		t.Errorf("frame = %+v", frame)
	}
}
