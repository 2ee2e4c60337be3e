package geom

import "math"

// Radii holds the horizontal and vertical radius of one corner.
type Radii struct {
	X, Y float64
}

// Corner indexes the Radii array of an RRect.
type Corner int

// Corners in clockwise order starting top-left.
const (
	UpperLeft Corner = iota
	UpperRight
	LowerRight
	LowerLeft
)

// RRect is a rectangle with elliptical corners.
type RRect struct {
	Rect  Rect
	Radii [4]Radii
}

// RRectFromRect returns a rounded rect with square corners.
func RRectFromRect(r Rect) RRect {
	return RRect{Rect: r.Sorted()}
}

// RRectXY returns a rounded rect whose corners all share the same radii.
func RRectXY(r Rect, rx, ry float64) RRect {
	rr := RRect{Rect: r.Sorted()}
	for i := range rr.Radii {
		rr.Radii[i] = Radii{rx, ry}
	}
	rr.normalize()
	return rr
}

// RRectOval returns a rounded rect describing the oval inscribed in r.
func RRectOval(r Rect) RRect {
	r = r.Sorted()
	return RRectXY(r, r.Width()/2, r.Height()/2)
}

// RRectRadii returns a rounded rect with per-corner radii.
func RRectRadii(r Rect, radii [4]Radii) RRect {
	rr := RRect{Rect: r.Sorted(), Radii: radii}
	rr.normalize()
	return rr
}

// Bounds returns the bounding rectangle.
func (rr RRect) Bounds() Rect {
	return rr.Rect
}

// IsEmpty reports whether the rounded rect encloses no area.
func (rr RRect) IsEmpty() bool {
	return rr.Rect.IsEmpty()
}

// IsFinite reports whether the rectangle and all radii are finite.
func (rr RRect) IsFinite() bool {
	if !rr.Rect.IsFinite() {
		return false
	}
	for _, r := range rr.Radii {
		if !isFinite(r.X) || !isFinite(r.Y) {
			return false
		}
	}
	return true
}

// IsRect reports whether every corner is square.
func (rr RRect) IsRect() bool {
	for _, r := range rr.Radii {
		if r.X > 0 && r.Y > 0 {
			return false
		}
	}
	return true
}

// IsOval reports whether the rounded rect is an ellipse filling its bounds.
func (rr RRect) IsOval() bool {
	if rr.IsEmpty() {
		return false
	}
	hw, hh := rr.Rect.Width()/2, rr.Rect.Height()/2
	for _, r := range rr.Radii {
		if r.X < hw || r.Y < hh {
			return false
		}
	}
	return true
}

// Contains reports whether the rectangle o is fully inside rr.
// Corners are checked against their ellipses.
func (rr RRect) Contains(o Rect) bool {
	if !rr.Rect.Contains(o) {
		return false
	}
	if rr.IsRect() {
		return true
	}
	for i, c := range o.Corners() {
		if !rr.containsPoint(Corner(i), c) {
			return false
		}
	}
	return true
}

func (rr RRect) containsPoint(c Corner, p Point) bool {
	rad := rr.Radii[c]
	if rad.X <= 0 || rad.Y <= 0 {
		return true
	}
	var cx, cy float64
	switch c {
	case UpperLeft:
		cx, cy = rr.Rect.Left+rad.X, rr.Rect.Top+rad.Y
		if p.X >= cx || p.Y >= cy {
			return true
		}
	case UpperRight:
		cx, cy = rr.Rect.Right-rad.X, rr.Rect.Top+rad.Y
		if p.X <= cx || p.Y >= cy {
			return true
		}
	case LowerRight:
		cx, cy = rr.Rect.Right-rad.X, rr.Rect.Bottom-rad.Y
		if p.X <= cx || p.Y <= cy {
			return true
		}
	default:
		cx, cy = rr.Rect.Left+rad.X, rr.Rect.Bottom-rad.Y
		if p.X >= cx || p.Y <= cy {
			return true
		}
	}
	dx := (p.X - cx) / rad.X
	dy := (p.Y - cy) / rad.Y
	return dx*dx+dy*dy <= 1
}

// normalize clamps negative radii to zero and scales all radii down
// uniformly when adjacent radii would overlap.
func (rr *RRect) normalize() {
	for i := range rr.Radii {
		r := &rr.Radii[i]
		if r.X <= 0 || r.Y <= 0 || math.IsNaN(r.X) || math.IsNaN(r.Y) {
			*r = Radii{}
		}
	}
	w, h := rr.Rect.Width(), rr.Rect.Height()
	scale := 1.0
	clamp := func(limit, a, b float64) {
		if sum := a + b; sum > limit && sum > 0 {
			scale = math.Min(scale, limit/sum)
		}
	}
	clamp(w, rr.Radii[UpperLeft].X, rr.Radii[UpperRight].X)
	clamp(w, rr.Radii[LowerLeft].X, rr.Radii[LowerRight].X)
	clamp(h, rr.Radii[UpperLeft].Y, rr.Radii[LowerLeft].Y)
	clamp(h, rr.Radii[UpperRight].Y, rr.Radii[LowerRight].Y)
	if scale < 1 {
		for i := range rr.Radii {
			rr.Radii[i].X *= scale
			rr.Radii[i].Y *= scale
		}
	}
}

// ContainsPoint reports whether p lies inside rr.
func (rr RRect) ContainsPoint(p Point) bool {
	if !rr.Rect.ContainsPoint(p) {
		return false
	}
	for c := UpperLeft; c <= LowerLeft; c++ {
		if !rr.containsPoint(c, p) {
			return false
		}
	}
	return true
}
