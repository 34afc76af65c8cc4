package viewport

import "math"

// Matrix represents a 2D affine transformation as a 2x3 matrix in
// row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// representing x' = A*x + B*y + C, y' = D*x + E*y + F.
//
// The camera transform only ever composes translation and uniform
// scale, but placements carry a full affine matrix so GPU backends can
// consume them directly.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translation creates a translation matrix.
func Translation(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scaling creates a uniform scaling matrix.
func Scaling(s float64) Matrix {
	return Matrix{A: s, E: s}
}

// Multiply multiplies two matrices (m * other), applying other first.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformRect applies the transformation to a rectangle and returns
// the bounding rectangle of the result.
func (m Matrix) TransformRect(r Rect) Rect {
	return RectFromPoints(
		m.TransformPoint(Point{X: r.MinX, Y: r.MinY}),
		m.TransformPoint(Point{X: r.MaxX, Y: r.MinY}),
		m.TransformPoint(Point{X: r.MinX, Y: r.MaxY}),
		m.TransformPoint(Point{X: r.MaxX, Y: r.MaxY}),
	)
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-10 {
		return Identity()
	}
	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}
