package scene

import (
	"math"

	"github.com/chewxy/math32"
)

// Point represents a 2D point with float32 coordinates.
type Point struct {
	X, Y float32
}

// Vec2 is a 2D point with float64 coordinates, used by brush geometry
// where sampling happens in pixel space.
type Vec2 struct {
	X, Y float64
}

// Rect represents a bounding rectangle.
type Rect struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// EmptyRect returns an empty rectangle (inverted bounds for union operations).
func EmptyRect() Rect {
	return Rect{
		MinX: math.MaxFloat32,
		MinY: math.MaxFloat32,
		MaxX: -math.MaxFloat32,
		MaxY: -math.MaxFloat32,
	}
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		MinX: min32(r.MinX, other.MinX),
		MinY: min32(r.MinY, other.MinY),
		MaxX: max32(r.MaxX, other.MaxX),
		MaxY: max32(r.MaxY, other.MaxY),
	}
}

// UnionPoint expands the rectangle to include the point.
func (r Rect) UnionPoint(x, y float32) Rect {
	return Rect{
		MinX: min32(r.MinX, x),
		MinY: min32(r.MinY, y),
		MaxX: max32(r.MaxX, x),
		MaxY: max32(r.MaxY, y),
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float32 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float32 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxY - r.MinY
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Affine represents a 2D affine transformation matrix.
// The matrix is stored in row-major order as:
//
//	| A  B  C |
//	| D  E  F |
//
// Where a point (x, y) is transformed to:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Affine struct {
	A, B, C float32
	D, E, F float32
}

// IdentityAffine returns the identity transformation.
func IdentityAffine() Affine {
	return Affine{A: 1, B: 0, C: 0, D: 0, E: 1, F: 0}
}

// TranslateAffine creates a translation transformation.
func TranslateAffine(x, y float32) Affine {
	return Affine{A: 1, B: 0, C: x, D: 0, E: 1, F: y}
}

// ScaleAffine creates a scaling transformation.
func ScaleAffine(x, y float32) Affine {
	return Affine{A: x, B: 0, C: 0, D: 0, E: y, F: 0}
}

// RotateAffine creates a rotation transformation (angle in radians).
func RotateAffine(angle float32) Affine {
	cos := math32.Cos(angle)
	sin := math32.Sin(angle)
	return Affine{A: cos, B: -sin, C: 0, D: sin, E: cos, F: 0}
}

// RotateAboutAffine creates a rotation of angle radians about the
// point (cx, cy).
func RotateAboutAffine(angle, cx, cy float32) Affine {
	return TranslateAffine(cx, cy).
		Multiply(RotateAffine(angle)).
		Multiply(TranslateAffine(-cx, -cy))
}

// Multiply returns the product of two affine transformations.
func (a Affine) Multiply(b Affine) Affine {
	return Affine{
		A: a.A*b.A + a.B*b.D,
		B: a.A*b.B + a.B*b.E,
		C: a.A*b.C + a.B*b.F + a.C,
		D: a.D*b.A + a.E*b.D,
		E: a.D*b.B + a.E*b.E,
		F: a.D*b.C + a.E*b.F + a.F,
	}
}

// TransformPoint transforms a point by the affine matrix.
func (a Affine) TransformPoint(x, y float32) (float32, float32) {
	return a.A*x + a.B*y + a.C, a.D*x + a.E*y + a.F
}

// Invert returns the inverse transformation.
// The second return value is false for degenerate (non-invertible) matrices.
func (a Affine) Invert() (Affine, bool) {
	det := a.A*a.E - a.B*a.D
	if det == 0 {
		return Affine{}, false
	}
	inv := 1 / det
	return Affine{
		A: a.E * inv,
		B: -a.B * inv,
		C: (a.B*a.F - a.E*a.C) * inv,
		D: -a.D * inv,
		E: a.A * inv,
		F: (a.D*a.C - a.A*a.F) * inv,
	}, true
}

// IsIdentity returns true if this is the identity transformation.
func (a Affine) IsIdentity() bool {
	return a.A == 1 && a.B == 0 && a.C == 0 &&
		a.D == 0 && a.E == 1 && a.F == 0
}
