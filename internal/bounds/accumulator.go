// Package bounds accumulates the rectangles covered by recorded operations
// and provides the per-operation outset rules used by the builder.
package bounds

import "github.com/gogpu/displaylist/geom"

// Rect accumulates the union of rectangles. The zero value is empty.
type Rect struct {
	bounds geom.Rect
	init   bool
}

// Add grows the accumulated bounds to include r. Empty rectangles are
// ignored.
func (a *Rect) Add(r geom.Rect) {
	if r.IsEmpty() {
		return
	}
	if !a.init {
		a.bounds = r
		a.init = true
		return
	}
	a.bounds = a.bounds.Union(r)
}

// Bounds returns the accumulated bounds, or the zero Rect when nothing was
// added.
func (a *Rect) Bounds() geom.Rect {
	if !a.init {
		return geom.Rect{}
	}
	return a.bounds
}

// IsEmpty reports whether nothing was added.
func (a *Rect) IsEmpty() bool {
	return !a.init
}

// Reset clears the accumulator.
func (a *Rect) Reset() {
	*a = Rect{}
}

// List records every rectangle together with the index of the operation
// that produced it. It feeds the spatial index.
type List struct {
	rects []geom.Rect
	ids   []int
}

// Add appends r for operation id. Empty rectangles are ignored.
func (l *List) Add(r geom.Rect, id int) {
	if r.IsEmpty() {
		return
	}
	l.rects = append(l.rects, r)
	l.ids = append(l.ids, id)
}

// Len returns the number of recorded rectangles.
func (l *List) Len() int {
	return len(l.rects)
}

// Truncate drops every rectangle recorded at or after position n.
func (l *List) Truncate(n int) {
	if n < len(l.rects) {
		l.rects = l.rects[:n]
		l.ids = l.ids[:n]
	}
}

// BoundsSince returns the union of rectangles recorded at or after n.
func (l *List) BoundsSince(n int) geom.Rect {
	var acc Rect
	for _, r := range l.rects[n:] {
		acc.Add(r)
	}
	return acc.Bounds()
}

// Rects returns the recorded rectangles.
func (l *List) Rects() []geom.Rect {
	return l.rects
}

// IDs returns the operation index of each recorded rectangle.
func (l *List) IDs() []int {
	return l.ids
}

// Reset clears the list, keeping its capacity.
func (l *List) Reset() {
	l.rects = l.rects[:0]
	l.ids = l.ids[:0]
}
