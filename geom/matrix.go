package geom

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix is a 4x4 transformation matrix in row-major order:
//
//	| 0  1  2  3 |
//	| 4  5  6  7 |
//	| 8  9 10 11 |
//	|12 13 14 15 |
//
// Points are treated as column vectors (x, y, 0, 1), so a 2D affine
// transform occupies indices 0, 1, 3 (x row) and 4, 5, 7 (y row), and
// the perspective row is 12, 13, 15.
//
// The zero Matrix is not the identity; use Identity.
type Matrix f64.Mat4

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation creates a translation matrix.
func Translation(tx, ty float64) Matrix {
	m := Identity()
	m[3] = tx
	m[7] = ty
	return m
}

// Scaling creates a scaling matrix.
func Scaling(sx, sy float64) Matrix {
	m := Identity()
	m[0] = sx
	m[5] = sy
	return m
}

// RotationDegrees creates a matrix rotating clockwise (in a y-down
// coordinate system) by the given angle in degrees.
func RotationDegrees(degrees float64) Matrix {
	sin, cos := sinCosDegrees(degrees)
	m := Identity()
	m[0], m[1] = cos, -sin
	m[4], m[5] = sin, cos
	return m
}

// Skewing creates a skew matrix: x' = x + sx*y, y' = sy*x + y.
func Skewing(sx, sy float64) Matrix {
	m := Identity()
	m[1] = sx
	m[4] = sy
	return m
}

// Affine creates a matrix from the six coefficients of a 2D affine transform:
//
//	x' = mxx*x + mxy*y + mxt
//	y' = myx*x + myy*y + myt
func Affine(mxx, mxy, mxt, myx, myy, myt float64) Matrix {
	m := Identity()
	m[0], m[1], m[3] = mxx, mxy, mxt
	m[4], m[5], m[7] = myx, myy, myt
	return m
}

// FromAff3 converts an x/image affine matrix.
func FromAff3(a f64.Aff3) Matrix {
	return Affine(a[0], a[1], a[2], a[3], a[4], a[5])
}

// Aff3 returns the 2D affine part of m. Perspective and Z terms are dropped.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{m[0], m[1], m[3], m[4], m[5], m[7]}
}

// Concat returns m * o, i.e. o is applied first and m second.
func (m Matrix) Concat(o Matrix) Matrix {
	var r Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * o[k*4+col]
			}
			r[row*4+col] = sum
		}
	}
	return r
}

// IsIdentity reports whether m is exactly the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// IsFinite reports whether every element is finite.
func (m Matrix) IsFinite() bool {
	for _, v := range m {
		if !isFinite(v) {
			return false
		}
	}
	return true
}

// HasPerspective reports whether the perspective row differs from (0, 0, 1).
func (m Matrix) HasPerspective() bool {
	return m[12] != 0 || m[13] != 0 || m[15] != 1
}

// IsTranslateScale reports whether m only scales and translates in 2D,
// so rectangles map to rectangles exactly.
func (m Matrix) IsTranslateScale() bool {
	return m[1] == 0 && m[4] == 0 && !m.HasPerspective()
}

// Is2D reports whether m has no Z contribution and therefore describes a
// 2D projective transform.
func (m Matrix) Is2D() bool {
	return m[2] == 0 && m[6] == 0 && m[8] == 0 && m[9] == 0 &&
		m[10] == 1 && m[11] == 0 && m[14] == 0
}

// Determinant returns the determinant of the 2D projective (3x3) part.
func (m Matrix) Determinant() float64 {
	a, b, c := m[0], m[1], m[3]
	d, e, f := m[4], m[5], m[7]
	g, h, i := m[12], m[13], m[15]
	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// Invert returns the inverse of the 2D projective part of m and whether
// the matrix was invertible. Z terms are not inverted; the result maps the
// z=0 plane back to local coordinates.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Determinant()
	if det == 0 || !isFinite(det) {
		return Identity(), false
	}
	a, b, c := m[0], m[1], m[3]
	d, e, f := m[4], m[5], m[7]
	g, h, i := m[12], m[13], m[15]
	inv := 1 / det

	r := Identity()
	r[0] = (e*i - f*h) * inv
	r[1] = (c*h - b*i) * inv
	r[3] = (b*f - c*e) * inv
	r[4] = (f*g - d*i) * inv
	r[5] = (a*i - c*g) * inv
	r[7] = (c*d - a*f) * inv
	r[12] = (d*h - e*g) * inv
	r[13] = (b*g - a*h) * inv
	r[15] = (a*e - b*d) * inv
	return r, true
}

// MapPoint transforms p. The second result is false when the point lands
// behind the viewer (w <= 0) under a perspective transform.
func (m Matrix) MapPoint(p Point) (Point, bool) {
	x := m[0]*p.X + m[1]*p.Y + m[3]
	y := m[4]*p.X + m[5]*p.Y + m[7]
	if !m.HasPerspective() {
		return Point{x, y}, true
	}
	w := m[12]*p.X + m[13]*p.Y + m[15]
	if w <= minPerspectiveW {
		return Point{}, false
	}
	return Point{x / w, y / w}, true
}

// MapRect returns the bounding box of r transformed by m. If any corner
// cannot be projected the result is MaxCullRect.
func (m Matrix) MapRect(r Rect) Rect {
	r = r.Sorted()
	if m.IsTranslateScale() {
		return LTRB(
			r.Left*m[0]+m[3], r.Top*m[5]+m[7],
			r.Right*m[0]+m[3], r.Bottom*m[5]+m[7],
		).Sorted()
	}
	var pts [4]Point
	for i, c := range r.Corners() {
		p, ok := m.MapPoint(c)
		if !ok {
			return MaxCullRect
		}
		pts[i] = p
	}
	return BoundsOfPoints(pts[:])
}

// MapPoints transforms each point in pts in place. Points that cannot be
// projected are left unchanged.
func (m Matrix) MapPoints(pts []Point) {
	for i, p := range pts {
		if q, ok := m.MapPoint(p); ok {
			pts[i] = q
		}
	}
}

// minPerspectiveW is the smallest homogeneous w accepted when projecting.
const minPerspectiveW = 1.0 / (1 << 14)

func sinCosDegrees(degrees float64) (sin, cos float64) {
	// Exact values for quarter turns keep axis-aligned rotations exact.
	switch math.Mod(degrees, 360) {
	case 0:
		return 0, 1
	case 90, -270:
		return 1, 0
	case 180, -180:
		return 0, -1
	case 270, -90:
		return -1, 0
	}
	return math.Sincos(degrees * math.Pi / 180)
}
