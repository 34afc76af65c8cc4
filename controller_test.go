package viewport

import (
	"errors"
	"testing"
)

func newTestController(t *testing.T) (*DataLayer, *MirrorLayer, *Controller, *fakeRasterizer) {
	t.Helper()
	data, mirror, ras := newTestMirror(16)
	ctrl := NewController(data, mirror, 10)
	return data, mirror, ctrl, ras
}

// checkStateInvariant asserts the zoom-state invariant: the routing
// target and visibility flags must always be the pure function of the
// zoom level.
func checkStateInvariant(t *testing.T, s State) {
	t.Helper()
	if s.ZoomLevel == Zoom1 {
		if s.WASDTarget != TargetDataWindow || !s.DataLayerVisible || !s.MirrorLayerVisible {
			t.Errorf("state invariant violated at zoom 1: %+v", s)
		}
	} else {
		if s.WASDTarget != TargetCamera || s.DataLayerVisible || !s.MirrorLayerVisible {
			t.Errorf("state invariant violated at %s: %+v", s.ZoomLevel, s)
		}
	}
}

func TestInitialState(t *testing.T) {
	_, _, ctrl, _ := newTestController(t)
	s := ctrl.State()
	if s.ZoomLevel != Zoom1 {
		t.Errorf("initial zoom = %s", s.ZoomLevel)
	}
	checkStateInvariant(t, s)
}

func TestZoomStateMachine(t *testing.T) {
	_, mirror, ctrl, _ := newTestController(t)

	transitions := []ZoomLevel{Zoom4, Zoom8, Zoom2, Zoom1, Zoom128, Zoom1}
	for _, z := range transitions {
		if err := ctrl.SetZoomLevel(z); err != nil {
			t.Fatalf("SetZoomLevel(%s): %v", z, err)
		}
		s := ctrl.State()
		if s.ZoomLevel != z {
			t.Errorf("zoom = %s, want %s", s.ZoomLevel, z)
		}
		if mirror.ZoomLevel() != z {
			t.Errorf("mirror zoom = %s, want %s", mirror.ZoomLevel(), z)
		}
		checkStateInvariant(t, s)
	}
}

func TestSetZoomLevelInvalidNoMutation(t *testing.T) {
	_, mirror, ctrl, _ := newTestController(t)
	if err := ctrl.SetZoomLevel(Zoom4); err != nil {
		t.Fatalf("SetZoomLevel: %v", err)
	}
	before := ctrl.State()

	err := ctrl.SetZoomLevel(ZoomLevel(3))
	if !errors.Is(err, ErrInvalidZoomLevel) {
		t.Errorf("err = %v, want ErrInvalidZoomLevel", err)
	}
	if ctrl.State() != before {
		t.Errorf("state mutated: %+v -> %+v", before, ctrl.State())
	}
	if mirror.ZoomLevel() != Zoom4 {
		t.Errorf("mirror zoom mutated: %s", mirror.ZoomLevel())
	}
}

func TestMoveDirectionRouting(t *testing.T) {
	data, mirror, ctrl, _ := newTestController(t)

	// State A: directional input moves the sampling window.
	if err := ctrl.MoveDirection(DirRight); err != nil {
		t.Fatalf("MoveDirection: %v", err)
	}
	if data.Window().MinX != 10 {
		t.Errorf("window MinX = %v, want 10", data.Window().MinX)
	}
	if mirror.Camera().Position != (Point{}) {
		t.Errorf("camera moved in state A: %+v", mirror.Camera().Position)
	}

	// State B: directional input pans the camera.
	if err := ctrl.SetZoomLevel(Zoom4); err != nil {
		t.Fatalf("SetZoomLevel: %v", err)
	}
	windowBefore := data.Window()
	if err := ctrl.MoveDirection(DirDown); err != nil {
		t.Fatalf("MoveDirection: %v", err)
	}
	if mirror.Camera().Position != Pt(0, 10) {
		t.Errorf("camera = %+v, want {0 10}", mirror.Camera().Position)
	}
	if data.Window() != windowBefore {
		t.Errorf("window moved in state B: %+v", data.Window())
	}
}

// After an update, SyncTextures re-rasterizes exactly
// the changed object and leaves all others untouched.
func TestSyncTexturesRefreshesOnlyChanged(t *testing.T) {
	data, mirror, ctrl, ras := newTestController(t)
	changed, _ := data.AddObject(Circle{Center: Pt(50, 50), Radius: 10}, DefaultStyle())
	stable, _ := data.AddObject(Circle{Center: Pt(120, 120), Radius: 10}, DefaultStyle())

	ctrl.SyncTextures()
	if ras.calls[changed] != 1 || ras.calls[stable] != 1 {
		t.Fatalf("initial sync calls = %v", ras.calls)
	}

	if err := data.UpdateShape(changed, Circle{Center: Pt(60, 60), Radius: 15}); err != nil {
		t.Fatalf("UpdateShape: %v", err)
	}
	ctrl.SyncTextures()

	if ras.calls[changed] != 2 {
		t.Errorf("changed object rasterized %d times, want 2", ras.calls[changed])
	}
	if ras.calls[stable] != 1 {
		t.Errorf("stable object rasterized %d times, want 1", ras.calls[stable])
	}

	// Cache coherence: the refreshed entry matches the live version.
	if !mirror.HasFreshTexture(changed) {
		t.Error("cache entry stale after sync")
	}
}

func TestSyncTexturesIsIdempotent(t *testing.T) {
	data, _, ctrl, ras := newTestController(t)
	if _, err := data.AddObject(Circle{Center: Pt(50, 50), Radius: 10}, DefaultStyle()); err != nil {
		t.Fatalf("AddObject: %v", err)
	}

	ctrl.SyncTextures()
	calls := ras.totalCalls()
	ctrl.SyncTextures()
	ctrl.SyncTextures()
	if ras.totalCalls() != calls {
		t.Errorf("repeated sync rasterized again: %d -> %d", calls, ras.totalCalls())
	}
}

func TestSyncTexturesAdvancesLastSyncVersion(t *testing.T) {
	data, _, ctrl, _ := newTestController(t)
	id, _ := data.AddObject(Circle{Center: Pt(50, 50), Radius: 10}, DefaultStyle())
	obj, _ := data.GetObject(id)

	ctrl.SyncTextures()
	if got := ctrl.State().LastSyncVersion; got != obj.Version {
		t.Errorf("LastSyncVersion = %d, want %d", got, obj.Version)
	}
}

func TestZoomChangeSyncsTextures(t *testing.T) {
	data, _, ctrl, ras := newTestController(t)
	id, _ := data.AddObject(Circle{Center: Pt(50, 50), Radius: 10}, DefaultStyle())

	if err := ctrl.SetZoomLevel(Zoom2); err != nil {
		t.Fatalf("SetZoomLevel: %v", err)
	}
	if ras.calls[id] != 1 {
		t.Errorf("zoom transition did not sync textures: calls = %d", ras.calls[id])
	}
}

func TestApplyEvents(t *testing.T) {
	data, _, ctrl, _ := newTestController(t)

	if err := ctrl.Apply(PanEvent{Direction: DirLeft}); err != nil {
		t.Fatalf("Apply(pan): %v", err)
	}
	if data.Window().MinX != -10 {
		t.Errorf("window MinX = %v, want -10", data.Window().MinX)
	}

	if err := ctrl.Apply(ZoomEvent{Level: 4}); err != nil {
		t.Fatalf("Apply(zoom): %v", err)
	}
	checkStateInvariant(t, ctrl.State())

	if err := ctrl.Apply(ZoomEvent{Level: 5}); !errors.Is(err, ErrInvalidZoomLevel) {
		t.Errorf("Apply(zoom 5) err = %v, want ErrInvalidZoomLevel", err)
	}
	if ctrl.State().ZoomLevel != Zoom4 {
		t.Errorf("invalid zoom event mutated state: %s", ctrl.State().ZoomLevel)
	}
}
