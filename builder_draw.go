package displaylist

import (
	"image"

	"github.com/gogpu/displaylist/geom"
	"github.com/gogpu/displaylist/internal/bounds"
	"github.com/gogpu/displaylist/internal/debug"
	"github.com/gogpu/displaylist/paint"
	"github.com/gogpu/displaylist/text"
	"github.com/gogpu/displaylist/vertices"
)

// drawSpec describes how a draw is bounded and analyzed.
type drawSpec struct {
	// bounds is the geometric extent in local coordinates.
	bounds geom.Rect
	// unbounded draws cover the whole clip.
	unbounded bool
	// paint is the paint consulted by the draw, nil for the current
	// attributes.
	paint *paint.Paint
	flags paint.Flags
	geom  bounds.Geometry
	// geometric is set when stroke outsets apply to bounds.
	geometric bool
	// compatible is false when the draw kind cannot take a group opacity
	// regardless of its paint.
	compatible bool
	// nested is the recording replayed by DrawDisplayList.
	nested *DisplayList
}

// draw records op according to d. It returns false when the draw was
// dropped.
func (b *Builder) draw(op Op, d drawSpec) bool {
	if b.nop {
		return false
	}
	p := d.paint
	if p == nil {
		p = &b.attrs
	}
	if d.flags != paint.IgnoresPaint {
		if p.Effect(d.flags) == paint.EffectNone {
			return false
		}
		if floods(p, d.flags) {
			d.unbounded = true
		}
		d.compatible = d.compatible && p.IsOpacityCompatible() &&
			(!d.flags.Has(paint.UsesImageFilter) || p.ImageFilter == nil)
	}
	if !d.unbounded {
		r, ok := bounds.ForPaint(d.bounds, p, d.flags, d.geom, d.geometric)
		if ok {
			d.bounds = r
		} else {
			d.unbounded = true
		}
	}

	var global, local geom.Rect
	if d.unbounded {
		global, local = b.globalCull, b.localCull
		d.compatible = false
	} else {
		var ok bool
		if global, local, ok = b.mapBounds(d.bounds); !ok {
			return false
		}
	}

	b.checkDeferred()
	idx := b.push(op)
	b.renderOps++
	if b.opts.rtree {
		b.indexDraw(idx, global, d.nested)
	}
	b.accumulateLocal(local, d.compatible)
	return true
}

// indexDraw adds the device rectangles of draw idx to the R-tree list. A
// nested recording with its own index contributes its consolidated
// rectangles instead of one rectangle for the whole list.
func (b *Builder) indexDraw(idx int, global geom.Rect, nested *DisplayList) {
	if nested == nil || nested.rtree == nil {
		b.rects.Add(global, idx)
		return
	}
	for _, r := range nested.rtree.SearchAndConsolidateRects(nested.bounds, false) {
		if m, ok := b.global.MapRect(r).Intersect(b.globalCull); ok {
			b.rects.Add(m, idx)
		}
	}
}

// floods reports whether a draw consulting flags of p can change pixels
// outside its geometry.
func floods(p *paint.Paint, flags paint.Flags) bool {
	if p.Effect(flags) == paint.EffectAffectsAll {
		return true
	}
	if flags.Has(paint.UsesColorFilter) && p.ColorFilter != nil && p.ColorFilter.ModifiesTransparentBlack() {
		return true
	}
	return flags.Has(paint.UsesImageFilter) && p.ImageFilter != nil && p.ImageFilter.ModifiesTransparentBlack()
}

func imageFlags(withAttributes bool) paint.Flags {
	if withAttributes {
		return paint.ImageFlags
	}
	return paint.IgnoresPaint
}

// ---------------------------------------------------------------------------
// Flood Operations
// ---------------------------------------------------------------------------

// DrawColor fills the clip with c blended by mode. The attributes are not
// consulted.
func (b *Builder) DrawColor(c paint.Color, mode paint.BlendMode) {
	p := paint.Paint{Color: c, BlendMode: mode}
	b.draw(DrawColorOp{Color: c, Mode: mode}, drawSpec{
		unbounded: true,
		paint:     &p,
		flags:     paint.UsesColor | paint.UsesAlpha | paint.UsesBlend,
	})
}

// DrawPaint fills the clip with the current attributes.
func (b *Builder) DrawPaint() {
	b.draw(DrawPaintOp{}, drawSpec{unbounded: true, flags: paint.FloodFlags})
}

// ---------------------------------------------------------------------------
// Shape Operations
// ---------------------------------------------------------------------------

// DrawLine strokes a segment from p0 to p1.
func (b *Builder) DrawLine(p0, p1 geom.Point) {
	if !p0.IsFinite() || !p1.IsFinite() {
		return
	}
	b.draw(DrawLineOp{P0: p0, P1: p1}, drawSpec{
		bounds:     geom.RectFromPoints(p0, p1),
		flags:      paint.ShapeFlags,
		geom:       bounds.Geometry{Stroked: true, DiagonalCaps: p0.X != p1.X && p0.Y != p1.Y},
		geometric:  true,
		compatible: true,
	})
}

// DrawDashedLine strokes a segment from p0 to p1 with dashes of onLength
// separated by gaps of offLength.
func (b *Builder) DrawDashedLine(p0, p1 geom.Point, onLength, offLength float64) {
	if !p0.IsFinite() || !p1.IsFinite() || !isFinite(onLength) || !isFinite(offLength) {
		return
	}
	b.draw(DrawDashedLineOp{P0: p0, P1: p1, OnLength: onLength, OffLength: offLength}, drawSpec{
		bounds:     geom.RectFromPoints(p0, p1),
		flags:      paint.ShapeFlags,
		geom:       bounds.Geometry{Stroked: true, DiagonalCaps: p0.X != p1.X && p0.Y != p1.Y},
		geometric:  true,
		compatible: true,
	})
}

// DrawRect draws a rectangle. The rectangle is sorted before recording.
func (b *Builder) DrawRect(r geom.Rect) {
	r = r.Sorted()
	if !r.IsFinite() {
		return
	}
	b.draw(DrawRectOp{Rect: r}, drawSpec{
		bounds:     r,
		flags:      paint.ShapeFlags,
		geom:       bounds.Geometry{Joins: true},
		geometric:  true,
		compatible: true,
	})
}

// DrawOval draws the oval inscribed in bounds.
func (b *Builder) DrawOval(r geom.Rect) {
	r = r.Sorted()
	if !r.IsFinite() {
		return
	}
	b.draw(DrawOvalOp{Bounds: r}, drawSpec{
		bounds:     r,
		flags:      paint.ShapeFlags,
		geometric:  true,
		compatible: true,
	})
}

// DrawCircle draws a circle. Negative radii draw nothing.
func (b *Builder) DrawCircle(center geom.Point, radius float64) {
	if !center.IsFinite() || !isFinite(radius) || radius < 0 {
		return
	}
	b.draw(DrawCircleOp{Center: center, Radius: radius}, drawSpec{
		bounds:     geom.LTRB(center.X-radius, center.Y-radius, center.X+radius, center.Y+radius),
		flags:      paint.ShapeFlags,
		geometric:  true,
		compatible: true,
	})
}

// DrawRRect draws a rounded rectangle. Rounded rectangles without
// rounding or with fully rounded corners are recorded as DrawRect or
// DrawOval.
func (b *Builder) DrawRRect(rr geom.RRect) {
	if !rr.IsFinite() {
		return
	}
	switch {
	case rr.IsRect():
		b.DrawRect(rr.Rect)
	case rr.IsOval():
		b.DrawOval(rr.Rect)
	default:
		b.draw(DrawRRectOp{RRect: rr}, drawSpec{
			bounds:     rr.Rect,
			flags:      paint.ShapeFlags,
			geometric:  true,
			compatible: true,
		})
	}
}

// DrawDRRect draws the area between outer and inner.
func (b *Builder) DrawDRRect(outer, inner geom.RRect) {
	if !outer.IsFinite() || !inner.IsFinite() {
		return
	}
	b.draw(DrawDRRectOp{Outer: outer, Inner: inner}, drawSpec{
		bounds:     outer.Rect,
		flags:      paint.ShapeFlags,
		geom:       bounds.Geometry{Joins: true},
		geometric:  true,
		compatible: true,
	})
}

// DrawPath draws a path. The path is cloned, so later changes to p do not
// affect the recording. Inverse-filled paths cover the whole clip.
func (b *Builder) DrawPath(p *geom.Path) {
	if p == nil || p.IsEmpty() || !p.IsFinite() {
		return
	}
	b.draw(DrawPathOp{Path: p.Clone()}, drawSpec{
		bounds:     p.Bounds(),
		unbounded:  p.IsInverseFill(),
		flags:      paint.ShapeFlags,
		geom:       bounds.Geometry{Joins: true, AcuteJoins: true, DiagonalCaps: true},
		geometric:  true,
		compatible: true,
	})
}

// DrawArc draws an arc of the oval inscribed in r. With useCenter the arc
// is closed through the oval center.
func (b *Builder) DrawArc(r geom.Rect, start, sweep float64, useCenter bool) {
	r = r.Sorted()
	if !r.IsFinite() || !isFinite(start) || !isFinite(sweep) {
		return
	}
	b.draw(DrawArcOp{Bounds: r, Start: start, Sweep: sweep, UseCenter: useCenter}, drawSpec{
		bounds:     r,
		flags:      paint.ShapeFlags,
		geom:       bounds.Geometry{Joins: useCenter, AcuteJoins: useCenter, DiagonalCaps: !useCenter},
		geometric:  true,
		compatible: true,
	})
}

// DrawPoints strokes pts as points, segments or a polyline. The points are
// copied.
func (b *Builder) DrawPoints(mode PointMode, pts []geom.Point) {
	if len(pts) == 0 {
		return
	}
	for _, p := range pts {
		if !p.IsFinite() {
			return
		}
	}
	b.draw(DrawPointsOp{Mode: mode, Points: append([]geom.Point(nil), pts...)}, drawSpec{
		bounds: bounds.Points(pts),
		flags:  paint.ShapeFlags &^ paint.UsesMaskFilter,
		geom: bounds.Geometry{
			Stroked:      true,
			AcuteJoins:   mode == PointModePolygon,
			DiagonalCaps: mode != PointModePoints,
		},
		geometric: true,
	})
}

// DrawVertices draws a triangle mesh.
func (b *Builder) DrawVertices(v *vertices.Vertices, mode paint.BlendMode) {
	if v == nil || v.VertexCount() == 0 {
		return
	}
	b.draw(DrawVerticesOp{Vertices: v, Mode: mode}, drawSpec{
		bounds: v.Bounds(),
		flags:  paint.FloodFlags | paint.UsesAntiAlias,
	})
}

// ---------------------------------------------------------------------------
// Image Operations
// ---------------------------------------------------------------------------

// DrawImage draws img with its top-left corner at p. The attributes are
// consulted only when renderWithAttributes is set.
func (b *Builder) DrawImage(img image.Image, p geom.Point, sampling paint.Sampling, renderWithAttributes bool) {
	if img == nil || !p.IsFinite() {
		return
	}
	sz := img.Bounds().Size()
	b.draw(DrawImageOp{Image: img, Point: p, Sampling: sampling, RenderWithAttributes: renderWithAttributes}, drawSpec{
		bounds:     geom.XYWH(p.X, p.Y, float64(sz.X), float64(sz.Y)),
		flags:      imageFlags(renderWithAttributes),
		compatible: true,
	})
}

// DrawImageRect draws the src area of img into dst.
func (b *Builder) DrawImageRect(img image.Image, src, dst geom.Rect, sampling paint.Sampling,
	renderWithAttributes bool, constraint SrcRectConstraint) {
	dst = dst.Sorted()
	if img == nil || !dst.IsFinite() || !src.IsFinite() {
		return
	}
	op := DrawImageRectOp{
		Image:                img,
		Src:                  src,
		Dst:                  dst,
		Sampling:             sampling,
		RenderWithAttributes: renderWithAttributes,
		Constraint:           constraint,
	}
	b.draw(op, drawSpec{
		bounds:     dst,
		flags:      imageFlags(renderWithAttributes),
		compatible: true,
	})
}

// DrawImageNine draws img into dst as a nine-patch around center.
func (b *Builder) DrawImageNine(img image.Image, center, dst geom.Rect, sampling paint.Sampling, renderWithAttributes bool) {
	dst = dst.Sorted()
	if img == nil || !dst.IsFinite() || !center.IsFinite() {
		return
	}
	op := DrawImageNineOp{
		Image:                img,
		Center:               center,
		Dst:                  dst,
		Sampling:             sampling,
		RenderWithAttributes: renderWithAttributes,
	}
	b.draw(op, drawSpec{
		bounds:     dst,
		flags:      imageFlags(renderWithAttributes),
		compatible: true,
	})
}

// DrawAtlas draws sprites tex[i] of atlas placed by xforms[i]. colors, when
// non-nil, must be parallel to xforms. The slices are copied.
func (b *Builder) DrawAtlas(atlas image.Image, xforms []RSTransform, tex []geom.Rect, colors []paint.Color,
	mode paint.BlendMode, sampling paint.Sampling, cull *geom.Rect, renderWithAttributes bool) {
	if atlas == nil || len(xforms) == 0 {
		return
	}
	if len(tex) < len(xforms) || (colors != nil && len(colors) < len(xforms)) {
		b.logger().Warn("displaylist: atlas arrays shorter than transforms, draw dropped",
			"transforms", len(xforms), "tex", len(tex), "colors", len(colors))
		return
	}
	n := len(xforms)
	op := DrawAtlasOp{
		Atlas:                atlas,
		Transforms:           append([]RSTransform(nil), xforms...),
		Tex:                  append([]geom.Rect(nil), tex[:n]...),
		Mode:                 mode,
		Sampling:             sampling,
		RenderWithAttributes: renderWithAttributes,
	}
	if colors != nil {
		op.Colors = append([]paint.Color(nil), colors[:n]...)
	}

	var acc bounds.Rect
	if cull != nil {
		c := cull.Sorted()
		op.Cull = &c
		acc.Add(c)
	} else {
		for i, x := range op.Transforms {
			acc.Add(x.MapRect(op.Tex[i]))
		}
	}
	if acc.IsEmpty() {
		return
	}
	b.draw(op, drawSpec{
		bounds: acc.Bounds(),
		flags:  imageFlags(renderWithAttributes),
	})
}

// ---------------------------------------------------------------------------
// Compound Operations
// ---------------------------------------------------------------------------

// DrawDisplayList replays dl at the current transform and clip with its
// alpha scaled by opacity, which is clamped to 1. Lists without rendering
// operations and non-positive opacities are dropped.
func (b *Builder) DrawDisplayList(dl *DisplayList, opacity float64) {
	if dl == nil {
		debug.Assert(false, "nil nested display list")
		b.logger().Warn("displaylist: nil nested display list ignored")
		return
	}
	if debug.Enabled {
		debug.Assert(nestsAcyclically(dl, map[*DisplayList]bool{}), "nested display list contains itself")
	}
	if !(opacity > 0) || dl.RenderOpCount() == 0 {
		return
	}
	opacity = min(opacity, 1)
	if !b.draw(DrawDisplayListOp{List: dl, Opacity: opacity}, drawSpec{
		bounds:     dl.Bounds(),
		flags:      paint.IgnoresPaint,
		compatible: dl.CanApplyGroupOpacity(),
		nested:     dl,
	}) {
		return
	}
	b.nestedOps += dl.OpCount(true)
}

// DrawTextBlob draws shaped text with its origin at (x, y).
func (b *Builder) DrawTextBlob(blob *text.Blob, x, y float64) {
	if blob == nil || blob.GlyphCount() == 0 || !isFinite(x) || !isFinite(y) {
		return
	}
	b.draw(DrawTextBlobOp{Blob: blob, X: x, Y: y}, drawSpec{
		bounds:    blob.Bounds().Translate(x, y),
		flags:     paint.ShapeFlags,
		geom:      bounds.Geometry{Joins: true, AcuteJoins: true},
		geometric: true,
	})
}

// DrawTextFrame draws a laid-out text frame with its origin at (x, y). The
// frame carries its own styling, so the attributes are not consulted.
func (b *Builder) DrawTextFrame(frame text.Frame, x, y float64) {
	if frame == nil || !isFinite(x) || !isFinite(y) {
		return
	}
	b.draw(DrawTextFrameOp{Frame: frame, X: x, Y: y}, drawSpec{
		bounds: frame.Bounds().Translate(x, y),
		flags:  paint.IgnoresPaint,
	})
}

// DrawShadow draws the shadow cast by path at elevation. The attributes
// are not consulted. Fully transparent shadows are dropped.
func (b *Builder) DrawShadow(path *geom.Path, c paint.Color, elevation float64, transparentOccluder bool, dpr float64) {
	if path == nil || path.IsEmpty() || !path.IsFinite() || c.IsTransparent() {
		return
	}
	if !isFinite(elevation) || !isFinite(dpr) {
		return
	}
	pad := bounds.ShadowOutset(elevation, dpr)
	op := DrawShadowOp{
		Path:                path.Clone(),
		Color:               c,
		Elevation:           elevation,
		TransparentOccluder: transparentOccluder,
		DPR:                 dpr,
	}
	b.draw(op, drawSpec{
		bounds: path.Bounds().Outset(pad, pad),
		flags:  paint.IgnoresPaint,
	})
}
