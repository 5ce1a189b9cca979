// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "math"

// Matrix is a 2D affine transform mapping (x, y) to
//
//	(A*x + B*y + C, D*x + E*y + F)
//
// Sprites use it to place their source rectangle on a surface.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the transform that changes nothing.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate moves by (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale stretches by x horizontally and y vertically.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate turns by angle radians, clockwise on a y-down surface.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// RotateDegrees is Rotate with the angle in degrees. Quarter turns are
// exact, so axis-aligned cells stay on whole pixels.
func RotateDegrees(deg float64) Matrix {
	switch math.Mod(deg, 360) {
	case 0:
		return Identity()
	case 90, -270:
		return Matrix{A: 0, B: -1, D: 1, E: 0}
	case 180, -180:
		return Matrix{A: -1, B: 0, D: 0, E: -1}
	case 270, -90:
		return Matrix{A: 0, B: 1, D: -1, E: 0}
	}
	return Rotate(deg * math.Pi / 180)
}

// Multiply returns the transform applying other first, then m.
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

// TransformPoint maps p.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Invert returns the inverse transform, or false for a degenerate one
// such as a zero scale.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-10 {
		return Identity(), false
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, true
}

// IsIdentity reports whether m is exactly Identity().
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}
