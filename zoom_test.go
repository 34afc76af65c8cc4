package viewport

import (
	"errors"
	"testing"
)

func TestZoomLevelValid(t *testing.T) {
	tests := []struct {
		level int
		want  bool
	}{
		{1, true}, {2, true}, {4, true}, {8, true},
		{16, true}, {32, true}, {64, true}, {128, true},
		{0, false}, {-1, false}, {3, false}, {5, false},
		{6, false}, {12, false}, {100, false}, {256, false},
	}
	for _, tt := range tests {
		if got := ZoomLevel(tt.level).Valid(); got != tt.want {
			t.Errorf("ZoomLevel(%d).Valid() = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestParseZoomLevel(t *testing.T) {
	if z, err := ParseZoomLevel(16); err != nil || z != Zoom16 {
		t.Errorf("ParseZoomLevel(16) = %v, %v", z, err)
	}
	if _, err := ParseZoomLevel(3); !errors.Is(err, ErrInvalidZoomLevel) {
		t.Errorf("ParseZoomLevel(3) error = %v, want ErrInvalidZoomLevel", err)
	}
}

func TestZoomLevelIndex(t *testing.T) {
	for i, z := range ZoomLevels {
		if got := z.index(); got != i {
			t.Errorf("%s.index() = %d, want %d", z, got, i)
		}
	}
}

func TestIsMirror(t *testing.T) {
	if !Zoom1.IsMirror() {
		t.Error("Zoom1 should be mirror mode")
	}
	for _, z := range ZoomLevels[1:] {
		if z.IsMirror() {
			t.Errorf("%s should not be mirror mode", z)
		}
	}
}
