package displaylist

import (
	"github.com/gogpu/displaylist/geom"
)

// clipShape describes a clip in local coordinates.
type clipShape struct {
	bounds geom.Rect
	// contains reports whether a local rectangle lies inside the shape.
	// Nil means containment is never assumed.
	contains func(r geom.Rect) bool
	// isRect is set when the shape is exactly its bounds.
	isRect bool
}

// ClipRect clips to a rectangle. Non-finite rectangles are ignored.
func (b *Builder) ClipRect(r geom.Rect, op ClipOp, antiAlias bool) {
	r = r.Sorted()
	if !r.IsFinite() {
		return
	}
	b.clip(clipShape{bounds: r, contains: r.Contains, isRect: true}, op, ClipRectOp{Rect: r, Op: op, AntiAlias: antiAlias})
}

// ClipOval clips to the oval inscribed in bounds.
func (b *Builder) ClipOval(bounds geom.Rect, op ClipOp, antiAlias bool) {
	bounds = bounds.Sorted()
	if !bounds.IsFinite() {
		return
	}
	oval := geom.RRectOval(bounds)
	b.clip(clipShape{bounds: bounds, contains: oval.Contains}, op, ClipOvalOp{Bounds: bounds, Op: op, AntiAlias: antiAlias})
}

// ClipRRect clips to a rounded rectangle. Rounded rectangles that are
// plain rectangles or ovals are recorded as such.
func (b *Builder) ClipRRect(rr geom.RRect, op ClipOp, antiAlias bool) {
	if !rr.IsFinite() {
		return
	}
	switch {
	case rr.IsRect():
		b.ClipRect(rr.Rect, op, antiAlias)
	case rr.IsOval():
		b.ClipOval(rr.Rect, op, antiAlias)
	default:
		b.clip(clipShape{bounds: rr.Rect, contains: rr.Contains}, op, ClipRRectOp{RRect: rr, Op: op, AntiAlias: antiAlias})
	}
}

// ClipPath clips to a path. Paths that describe a rectangle, oval or
// rounded rectangle are recorded as the simpler clip. For inverse-filled
// paths the clip bounds are tracked as if op were reversed.
func (b *Builder) ClipPath(p *geom.Path, op ClipOp, antiAlias bool) {
	if p == nil || !p.IsFinite() {
		return
	}
	if !p.IsInverseFill() {
		if r, ok := p.IsRect(); ok {
			b.ClipRect(r, op, antiAlias)
			return
		}
		if r, ok := p.IsOval(); ok {
			b.ClipOval(r, op, antiAlias)
			return
		}
		if rr, ok := p.IsRRect(); ok {
			b.ClipRRect(rr, op, antiAlias)
			return
		}
	}

	effective := op
	if p.IsInverseFill() {
		if op == ClipIntersect {
			effective = ClipDifference
		} else {
			effective = ClipIntersect
		}
	}
	rec := ClipPathOp{Path: p.Clone(), Op: op, AntiAlias: antiAlias}
	b.clip(clipShape{bounds: p.Bounds()}, effective, rec)
}

// clip applies shape with op to the cull rects and records rec unless the
// clip cannot change anything. A clip that leaves nothing visible makes
// the current frame a no-op instead of being recorded.
func (b *Builder) clip(shape clipShape, op ClipOp, rec Op) {
	if b.nop {
		return
	}
	switch op {
	case ClipIntersect:
		if b.clipContainsCull(shape) {
			return
		}
		global, okG := b.globalCull.Intersect(b.global.MapRect(shape.bounds))
		local, okL := b.localCull.Intersect(b.local.MapRect(shape.bounds))
		if !okG || !okL {
			b.nop = true
			return
		}
		b.recordState(rec)
		b.globalCull, b.localCull = global, local

	case ClipDifference:
		device := b.global.MapRect(shape.bounds)
		if shape.bounds.IsEmpty() || !device.Intersects(b.globalCull) {
			return
		}
		if b.clipContainsCull(shape) {
			b.nop = true
			return
		}
		b.recordState(rec)
		if shape.isRect {
			if b.global.IsTranslateScale() {
				b.globalCull = b.globalCull.Subtract(device)
			}
			if b.local.IsTranslateScale() {
				b.localCull = b.localCull.Subtract(b.local.MapRect(shape.bounds))
			}
		}
	}
}

// clipContainsCull reports whether the device cull rect, mapped back into
// local coordinates, lies inside shape.
func (b *Builder) clipContainsCull(shape clipShape) bool {
	if shape.contains == nil {
		return false
	}
	inv, ok := b.global.Invert()
	if !ok {
		return false
	}
	corners := b.globalCull.Corners()
	pts := make([]geom.Point, 0, len(corners))
	for _, c := range corners {
		p, ok := inv.MapPoint(c)
		if !ok {
			return false
		}
		pts = append(pts, p)
	}
	return shape.contains(geom.BoundsOfPoints(pts))
}
