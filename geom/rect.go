// Package geom provides the value types used to describe geometry in a
// display list: points, rectangles, rounded rectangles, paths and 4x4
// transformation matrices.
//
// All types are plain values (except Path, which is a builder) and are safe
// to copy. Rectangles are stored as left/top/right/bottom edges; most
// operations normalise them first so callers may pass the corners in any
// order.
package geom

import "math"

// MaxCullValue bounds the coordinate space used when nothing else limits it.
const MaxCullValue = 1e9

// MaxCullRect is the cull rectangle used when a builder has no explicit
// cull rectangle. It stands in for "unbounded" while staying finite so
// that rectangle arithmetic never produces Inf or NaN.
var MaxCullRect = Rect{-MaxCullValue, -MaxCullValue, MaxCullValue, MaxCullValue}

// Point is a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// Rect is an axis-aligned rectangle described by its edges.
//
// A Rect with Left >= Right or Top >= Bottom is empty. A Rect containing a
// NaN edge is also empty: every comparison against NaN fails.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// LTRB creates a rectangle from its edges without normalising them.
func LTRB(left, top, right, bottom float64) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// XYWH creates a rectangle from an origin and a size.
func XYWH(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// RectFromPoints returns the smallest rectangle containing a and b.
func RectFromPoints(a, b Point) Rect {
	return Rect{
		Left:   math.Min(a.X, b.X),
		Top:    math.Min(a.Y, b.Y),
		Right:  math.Max(a.X, b.X),
		Bottom: math.Max(a.Y, b.Y),
	}
}

// Width returns Right-Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom-Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// IsEmpty reports whether the rectangle encloses no area.
func (r Rect) IsEmpty() bool {
	return !(r.Left < r.Right && r.Top < r.Bottom)
}

// IsFinite reports whether every edge is finite.
func (r Rect) IsFinite() bool {
	return isFinite(r.Left) && isFinite(r.Top) && isFinite(r.Right) && isFinite(r.Bottom)
}

// Sorted returns the rectangle with its edges swapped as needed so that
// Left <= Right and Top <= Bottom.
func (r Rect) Sorted() Rect {
	if r.Left > r.Right {
		r.Left, r.Right = r.Right, r.Left
	}
	if r.Top > r.Bottom {
		r.Top, r.Bottom = r.Bottom, r.Top
	}
	return r
}

// Outset grows the rectangle by dx horizontally and dy vertically on each side.
// Negative values shrink it.
func (r Rect) Outset(dx, dy float64) Rect {
	return Rect{r.Left - dx, r.Top - dy, r.Right + dx, r.Bottom + dy}
}

// Inset shrinks the rectangle by dx and dy on each side.
func (r Rect) Inset(dx, dy float64) Rect {
	return r.Outset(-dx, -dy)
}

// Translate offsets the rectangle by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{r.Left + dx, r.Top + dy, r.Right + dx, r.Bottom + dy}
}

// Union returns the smallest rectangle containing r and o.
// Empty rectangles do not contribute.
func (r Rect) Union(o Rect) Rect {
	if o.IsEmpty() {
		return r
	}
	if r.IsEmpty() {
		return o
	}
	return Rect{
		Left:   math.Min(r.Left, o.Left),
		Top:    math.Min(r.Top, o.Top),
		Right:  math.Max(r.Right, o.Right),
		Bottom: math.Max(r.Bottom, o.Bottom),
	}
}

// Intersect returns the overlap of r and o and whether it is non-empty.
// When the rectangles do not overlap the zero Rect is returned.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	res := Rect{
		Left:   math.Max(r.Left, o.Left),
		Top:    math.Max(r.Top, o.Top),
		Right:  math.Min(r.Right, o.Right),
		Bottom: math.Min(r.Bottom, o.Bottom),
	}
	if res.IsEmpty() {
		return Rect{}, false
	}
	return res, true
}

// Intersects reports whether r and o share a region of positive area.
// Rectangles that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.Left < o.Right && o.Left < r.Right &&
		r.Top < o.Bottom && o.Top < r.Bottom &&
		!r.IsEmpty() && !o.IsEmpty()
}

// Contains reports whether o lies entirely within r.
func (r Rect) Contains(o Rect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return r.Left <= o.Left && r.Top <= o.Top && r.Right >= o.Right && r.Bottom >= o.Bottom
}

// ContainsPoint reports whether p lies within r. The right and bottom
// edges are exclusive.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Subtract returns the part of r not covered by o when that part is a
// single rectangle. Otherwise r is returned unchanged, which keeps the
// result a conservative bound of the difference.
func (r Rect) Subtract(o Rect) Rect {
	if !r.Intersects(o) {
		return r
	}
	if o.Contains(r) {
		return Rect{}
	}
	if o.Left <= r.Left && o.Right >= r.Right {
		switch {
		case o.Top <= r.Top:
			return Rect{r.Left, o.Bottom, r.Right, r.Bottom}
		case o.Bottom >= r.Bottom:
			return Rect{r.Left, r.Top, r.Right, o.Top}
		}
	}
	if o.Top <= r.Top && o.Bottom >= r.Bottom {
		switch {
		case o.Left <= r.Left:
			return Rect{o.Right, r.Top, r.Right, r.Bottom}
		case o.Right >= r.Right:
			return Rect{r.Left, r.Top, o.Left, r.Bottom}
		}
	}
	return r
}

// Corners returns the four corners in clockwise order starting top-left.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{r.Left, r.Top},
		{r.Right, r.Top},
		{r.Right, r.Bottom},
		{r.Left, r.Bottom},
	}
}

// RoundOut returns the smallest integer-aligned rectangle containing r.
func (r Rect) RoundOut() Rect {
	return Rect{math.Floor(r.Left), math.Floor(r.Top), math.Ceil(r.Right), math.Ceil(r.Bottom)}
}

// BoundsOfPoints returns the bounding box of pts. The result is empty when
// pts is empty; non-finite points are skipped.
func BoundsOfPoints(pts []Point) Rect {
	var res Rect
	first := true
	for _, p := range pts {
		if !p.IsFinite() {
			continue
		}
		if first {
			res = Rect{p.X, p.Y, p.X, p.Y}
			first = false
			continue
		}
		res.Left = math.Min(res.Left, p.X)
		res.Top = math.Min(res.Top, p.Y)
		res.Right = math.Max(res.Right, p.X)
		res.Bottom = math.Max(res.Bottom, p.Y)
	}
	return res
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
