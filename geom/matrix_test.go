package geom

import (
	"math"
	"testing"

	"golang.org/x/image/math/f64"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func rectAlmostEqual(a, b Rect) bool {
	return almostEqual(a.Left, b.Left) && almostEqual(a.Top, b.Top) &&
		almostEqual(a.Right, b.Right) && almostEqual(a.Bottom, b.Bottom)
}

func TestIdentity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Error("Identity().IsIdentity() = false, want true")
	}
	if m.HasPerspective() {
		t.Error("Identity().HasPerspective() = true, want false")
	}
	var zero Matrix
	if zero.IsIdentity() {
		t.Error("zero Matrix should not be identity")
	}
}

func TestConcatOrder(t *testing.T) {
	// Translate then scale: points are scaled first, then translated.
	m := Translation(10, 20).Concat(Scaling(2, 3))
	p, ok := m.MapPoint(Pt(1, 1))
	if !ok || p != Pt(12, 23) {
		t.Errorf("MapPoint = %v, want (12, 23)", p)
	}
}

func TestRotationDegrees(t *testing.T) {
	m := RotationDegrees(90)
	p, _ := m.MapPoint(Pt(1, 0))
	if p != Pt(0, 1) {
		t.Errorf("rotate 90 of (1,0) = %v, want (0, 1)", p)
	}
	if !RotationDegrees(0).IsIdentity() {
		t.Error("RotationDegrees(0) should be identity")
	}
	if !RotationDegrees(360).IsIdentity() {
		t.Error("RotationDegrees(360) should be identity")
	}
}

func TestInvert(t *testing.T) {
	m := Translation(5, -3).Concat(Scaling(2, 4)).Concat(RotationDegrees(30))
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert failed")
	}
	p, _ := m.Concat(inv).MapPoint(Pt(7, 11))
	if !almostEqual(p.X, 7) || !almostEqual(p.Y, 11) {
		t.Errorf("m * inv(m) maps (7,11) to %v", p)
	}

	if _, ok := Scaling(0, 1).Invert(); ok {
		t.Error("singular matrix should not invert")
	}
}

func TestMapRect(t *testing.T) {
	r := LTRB(0, 0, 10, 20)

	if got := Scaling(-1, 1).MapRect(r); got != LTRB(-10, 0, 0, 20) {
		t.Errorf("mirror MapRect = %v", got)
	}

	got := RotationDegrees(45).MapRect(LTRB(-1, -1, 1, 1))
	s := math.Sqrt2
	if !rectAlmostEqual(got, LTRB(-s, -s, s, s)) {
		t.Errorf("rotated MapRect = %v", got)
	}

	persp := Identity()
	persp[13] = -1
	if got := persp.MapRect(LTRB(0, 0, 10, 10)); got != MaxCullRect {
		t.Errorf("MapRect behind viewer = %v, want MaxCullRect", got)
	}
}

func TestAff3RoundTrip(t *testing.T) {
	a := f64.Aff3{1, 2, 3, 4, 5, 6}
	m := FromAff3(a)
	if m.Aff3() != a {
		t.Errorf("Aff3() = %v, want %v", m.Aff3(), a)
	}
	if m != Affine(1, 2, 3, 4, 5, 6) {
		t.Error("FromAff3 should match Affine")
	}
}

func TestPathShapes(t *testing.T) {
	p := NewPath()
	p.AddRect(LTRB(10, 10, 0, 0))
	if r, ok := p.IsRect(); !ok || r != LTRB(0, 0, 10, 10) {
		t.Errorf("IsRect = %v, %v", r, ok)
	}
	p.LineTo(20, 20)
	if _, ok := p.IsRect(); ok {
		t.Error("IsRect after LineTo should be false")
	}

	o := NewPath()
	o.AddOval(LTRB(0, 0, 20, 10))
	if r, ok := o.IsOval(); !ok || r != LTRB(0, 0, 20, 10) {
		t.Errorf("IsOval = %v, %v", r, ok)
	}
	if b := o.Bounds(); !rectAlmostEqual(b, LTRB(0, 0, 20, 10)) {
		t.Errorf("oval Bounds = %v", b)
	}

	rr := NewPath()
	rr.AddRRect(RRectXY(LTRB(0, 0, 20, 20), 4, 4))
	if _, ok := rr.IsRRect(); !ok {
		t.Error("IsRRect = false, want true")
	}
}

func TestPathEqualsAndClone(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.QuadraticTo(10, 10, 0, 10)
	p.Close()

	c := p.Clone()
	if !p.Equals(c) {
		t.Error("clone should equal original")
	}
	c.SetInverseFill(true)
	if p.Equals(c) {
		t.Error("inverse fill should break equality")
	}
	c.SetInverseFill(false)
	c.LineTo(1, 1)
	if p.Equals(c) {
		t.Error("extra element should break equality")
	}
	if p.Equals(nil) {
		t.Error("path should not equal nil")
	}
}

func TestPathTransform(t *testing.T) {
	p := NewPath()
	p.AddRect(LTRB(0, 0, 10, 10))
	q := p.Transform(Translation(5, 5))
	if r, ok := q.IsRect(); !ok || r != LTRB(5, 5, 15, 15) {
		t.Errorf("translated IsRect = %v, %v", r, ok)
	}
	if q.Bounds() != LTRB(5, 5, 15, 15) {
		t.Errorf("translated Bounds = %v", q.Bounds())
	}
	if _, ok := p.Transform(RotationDegrees(30)).IsRect(); ok {
		t.Error("rotated rect should lose its rect hint")
	}
}
