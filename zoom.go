package viewport

import "fmt"

// ZoomLevel is the camera magnification factor. Only the power-of-two
// levels Zoom1 through Zoom128 are valid; every entry point that
// accepts a level must gate it through Valid or ParseZoomLevel before
// mutating any state.
type ZoomLevel int

// The fixed set of valid zoom levels.
const (
	Zoom1 ZoomLevel = 1 << iota
	Zoom2
	Zoom4
	Zoom8
	Zoom16
	Zoom32
	Zoom64
	Zoom128
)

// ZoomLevels lists every valid level in ascending order.
var ZoomLevels = [...]ZoomLevel{Zoom1, Zoom2, Zoom4, Zoom8, Zoom16, Zoom32, Zoom64, Zoom128}

// Valid reports whether z is one of the fixed power-of-two levels.
func (z ZoomLevel) Valid() bool {
	return z >= Zoom1 && z <= Zoom128 && z&(z-1) == 0
}

// IsMirror reports whether z is the distinguished mirror-mode level,
// at which the MirrorLayer shows the complete DataLayer sample rather
// than a camera sub-viewport.
func (z ZoomLevel) IsMirror() bool { return z == Zoom1 }

// Factor returns the magnification as a float64.
func (z ZoomLevel) Factor() float64 { return float64(z) }

// String implements fmt.Stringer.
func (z ZoomLevel) String() string { return fmt.Sprintf("%dx", int(z)) }

// ParseZoomLevel validates v and returns it as a ZoomLevel.
// Returns ErrInvalidZoomLevel for values outside the fixed set.
func ParseZoomLevel(v int) (ZoomLevel, error) {
	z := ZoomLevel(v)
	if !z.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidZoomLevel, v)
	}
	return z, nil
}

// index returns the position of z in ZoomLevels. Callers must have
// validated z.
func (z ZoomLevel) index() int {
	i := 0
	for v := z; v > 1; v >>= 1 {
		i++
	}
	return i
}
