package path2d

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f32"
	"seehuhn.de/go/geom/matrix"
)

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// The constructors below build the transforms AddPathMatrix and
// Builder.Add merge paths under; combine them with Multiply.

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Multiply multiplies two matrices (m * other).
// The result applies other first, then m, so
// Translate(dx, dy).Multiply(Scale(s, s)) places a scaled copy at (dx, dy).
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
// The arithmetic is done in float64 and the result rounded to float32.
// An affine map is defined everywhere, so this never fails; a result too
// large for float32 comes back infinite.
func (m Matrix) TransformPoint(p Point) Point {
	x, y := float64(p.X), float64(p.Y)
	return Point{
		X: float32(m.A*x + m.B*y + m.C),
		Y: float32(m.D*x + m.E*y + m.F),
	}
}

// IsFinite reports whether all six coefficients are finite.
func (m Matrix) IsFinite() bool {
	for _, v := range [...]float64{m.A, m.B, m.C, m.D, m.E, m.F} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// MatrixFromGeom converts a PDF-order matrix [a b c d e f], which maps
// (x, y) to (a*x + c*y + e, b*x + d*y + f).
func MatrixFromGeom(m matrix.Matrix) Matrix {
	return Matrix{
		A: m[0], B: m[2], C: m[4],
		D: m[1], E: m[3], F: m[5],
	}
}

// MatrixFromAff3 converts a row-major float32 affine matrix.
func MatrixFromAff3(m f32.Aff3) Matrix {
	return Matrix{
		A: float64(m[0]), B: float64(m[1]), C: float64(m[2]),
		D: float64(m[3]), E: float64(m[4]), F: float64(m[5]),
	}
}

// MatrixInit describes a 2D matrix the way a DOMMatrix2DInit dictionary
// does: every member is optional, and the aliases A..F and M11..M42 name
// the same coefficients. A nil field is absent.
//
//	x' = m11*x + m21*y + m41
//	y' = m12*x + m22*y + m42
type MatrixInit struct {
	A, B, C, D, E, F             *float64
	M11, M12, M21, M22, M41, M42 *float64
}

// Coef returns a pointer to v, for filling in MatrixInit fields.
func Coef(v float64) *float64 {
	return &v
}

// InitFromMatrix returns a MatrixInit with the short aliases set from m.
func InitFromMatrix(m Matrix) MatrixInit {
	return MatrixInit{
		A: Coef(m.A), B: Coef(m.D), C: Coef(m.B),
		D: Coef(m.E), E: Coef(m.C), F: Coef(m.F),
	}
}

// Matrix validates the dictionary and fills in defaults. If an alias pair
// is both present and the values differ, it returns an error wrapping
// ErrType. Absent coefficients default to the identity.
func (in MatrixInit) Matrix() (Matrix, error) {
	pairs := [...]struct {
		short, long string
		s, l        *float64
		def         float64
	}{
		{"a", "m11", in.A, in.M11, 1},
		{"b", "m12", in.B, in.M12, 0},
		{"c", "m21", in.C, in.M21, 0},
		{"d", "m22", in.D, in.M22, 1},
		{"e", "m41", in.E, in.M41, 0},
		{"f", "m42", in.F, in.M42, 0},
	}
	var v [6]float64
	for i, p := range pairs {
		switch {
		case p.s != nil && p.l != nil:
			if !sameValueZero(*p.s, *p.l) {
				return Matrix{}, fmt.Errorf("%w: %s (%g) and %s (%g) disagree", ErrType, p.short, *p.s, p.long, *p.l)
			}
			v[i] = *p.l
		case p.l != nil:
			v[i] = *p.l
		case p.s != nil:
			v[i] = *p.s
		default:
			v[i] = p.def
		}
	}
	m11, m12, m21, m22, m41, m42 := v[0], v[1], v[2], v[3], v[4], v[5]
	return Matrix{
		A: m11, B: m21, C: m41,
		D: m12, E: m22, F: m42,
	}, nil
}

// sameValueZero treats NaN as equal to itself and +0 as equal to -0.
func sameValueZero(x, y float64) bool {
	if math.IsNaN(x) && math.IsNaN(y) {
		return true
	}
	return x == y
}
