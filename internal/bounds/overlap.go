package bounds

import "github.com/gogpu/displaylist/geom"

// Overlap detects whether any two added rectangles overlap. It answers
// with axis-aligned boxes only, so touching rectangles do not overlap and
// rotated geometry is judged by its bounding box.
type Overlap struct {
	union    geom.Rect
	rects    []geom.Rect
	overlaps bool
}

// Add records r and reports whether it overlaps a previously added
// rectangle. Once an overlap is found the tracker stops storing rectangles.
func (o *Overlap) Add(r geom.Rect) bool {
	if o.overlaps {
		return true
	}
	if r.IsEmpty() {
		return false
	}
	if o.union.Intersects(r) {
		for _, prev := range o.rects {
			if prev.Intersects(r) {
				o.overlaps = true
				o.rects = nil
				return true
			}
		}
	}
	o.union = o.union.Union(r)
	o.rects = append(o.rects, r)
	return false
}

// Overlaps reports whether any two added rectangles overlapped.
func (o *Overlap) Overlaps() bool {
	return o.overlaps
}

// Reset clears the tracker.
func (o *Overlap) Reset() {
	o.union = geom.Rect{}
	o.rects = o.rects[:0]
	o.overlaps = false
}
