package displaylist

import (
	"github.com/gogpu/displaylist/geom"
	"github.com/gogpu/displaylist/paint"
)

// layerFlags are the attributes consulted when a layer is composited.
const layerFlags = paint.UsesAlpha | paint.UsesBlend | paint.UsesColorFilter | paint.UsesImageFilter

// SaveLayer saves the state like Save and redirects drawing into an
// offscreen layer that is composited with layerPaint on the matching
// Restore. A nil layerPaint composites with SourceOver at full opacity.
//
// bounds, when non-nil, limits the layer to a rectangle in local
// coordinates. backdrop, when non-nil, filters the destination under the
// layer before the layer content is drawn.
//
// A layer whose paint cannot show anything is treated as a Save whose
// content is discarded.
func (b *Builder) SaveLayer(bounds *geom.Rect, layerPaint *paint.Paint, backdrop paint.ImageFilter) {
	var lp *paint.Paint
	if layerPaint != nil {
		cp := *layerPaint
		lp = &cp
	}
	var callerBounds geom.Rect
	if bounds != nil {
		callerBounds = bounds.Sorted()
		if !callerBounds.IsFinite() {
			bounds = nil
		}
	}

	if b.nop {
		b.Save()
		return
	}
	if backdrop == nil && lp != nil && lp.Effect(layerFlags) == paint.EffectNone {
		b.logger().Debug("displaylist: layer paint has no effect, content discarded")
		b.Save()
		b.nop = true
		return
	}
	if bounds != nil && (callerBounds.IsEmpty() || b.QuickReject(callerBounds)) {
		b.Save()
		b.nop = true
		return
	}

	b.checkDeferred()
	opts := SaveLayerOptions{
		RendersWithAttributes:  lp != nil,
		BoundsFromCaller:       bounds != nil,
		ContainsBackdropFilter: backdrop != nil,
	}
	idx := b.push(SaveLayerOp{Bounds: callerBounds, Options: opts, Paint: lp, Backdrop: backdrop})
	b.renderOps++

	layer := &layerState{
		canDistribute: true,
		opIndex:       idx,
		rtreeStart:    b.rects.Len(),
		paint:         lp,
		backdrop:      backdrop,
		base:          b.global,
	}
	// A group opacity cannot pass through a filter, a color filter that
	// does not commute with it, a non-SourceOver blend, or a backdrop.
	if lp != nil && (lp.ImageFilter != nil ||
		(lp.ColorFilter != nil && !lp.ColorFilter.CanCommuteWithOpacity()) ||
		!lp.BlendMode.IsOpacityCompatible()) {
		layer.canDistribute = false
	}
	if backdrop != nil {
		layer.canDistribute = false
	}

	b.frames = append(b.frames, frame{saved: b.state, opIndex: idx, layer: layer})
	b.layer = layer
	b.local = geom.Identity()

	if lp != nil && lp.ImageFilter != nil {
		// The filter may move content from anywhere into the visible area.
		b.globalCull = geom.MaxCullRect
		b.localCull = geom.MaxCullRect
	} else if inv, ok := b.global.Invert(); ok {
		b.localCull = inv.MapRect(b.globalCull)
	} else {
		b.localCull = geom.MaxCullRect
	}
	if bounds != nil {
		b.localCull = intersectOrEmpty(b.localCull, callerBounds)
		b.globalCull = intersectOrEmpty(b.globalCull, b.global.MapRect(callerBounds))
		if b.localCull.IsEmpty() || b.globalCull.IsEmpty() {
			b.nop = true
		}
	}
}

// restoreLayer closes the layer opened by f and accounts for it as a
// single draw in the parent.
func (b *Builder) restoreLayer(f frame) {
	l := f.layer
	content := l.bounds.Bounds()

	op := b.ops[l.opIndex].(SaveLayerOp)
	if !op.Options.BoundsFromCaller {
		op.Bounds = content
	}
	op.Options.CanDistributeOpacity = l.canDistribute
	op.restoreIndex = b.push(RestoreOp{})
	b.ops[l.opIndex] = op

	b.state = f.saved

	filtered, bounded := content, true
	if l.paint != nil && l.paint.ImageFilter != nil {
		filtered, bounded = l.paint.ImageFilter.MapLocalBounds(content)
	}
	flood := !bounded || l.backdrop != nil || (l.paint != nil && !l.paint.NopsOnTransparency())
	compatible := l.canDistribute && (l.paint == nil || l.paint.IsOpacityCompatible())

	filteredOrFlooding := flood || (l.paint != nil && l.paint.ImageFilter != nil)
	if filteredOrFlooding && b.opts.rtree {
		// Culled replay must treat the whole layer as one unit.
		b.rects.Truncate(l.rtreeStart)
	}

	if flood {
		b.layer.bounds.Add(b.localCull)
		b.layer.canDistribute = false
		if b.opts.rtree {
			b.rects.Add(b.globalCull, l.opIndex)
		}
		return
	}
	global, local, ok := b.mapBounds(filtered)
	if !ok {
		return
	}
	if filteredOrFlooding && b.opts.rtree {
		b.rects.Add(global, l.opIndex)
	}
	b.accumulateLocal(local, compatible)
}

// mapBounds maps a rectangle in local coordinates to device and layer
// coordinates, clipped by the current cull rects. ok is false when the
// rectangle is clipped away entirely.
func (b *Builder) mapBounds(r geom.Rect) (global, local geom.Rect, ok bool) {
	global, ok = b.global.MapRect(r).Intersect(b.globalCull)
	if !ok {
		return geom.Rect{}, geom.Rect{}, false
	}
	local, ok = b.local.MapRect(r).Intersect(b.localCull)
	if !ok {
		return geom.Rect{}, geom.Rect{}, false
	}
	return global, local, true
}

// accumulateLocal adds a child covering local to the current layer and
// updates its opacity analysis.
func (b *Builder) accumulateLocal(local geom.Rect, compatible bool) {
	l := b.layer
	l.bounds.Add(local)
	if !compatible {
		l.canDistribute = false
		return
	}
	if l.canDistribute && l.overlap.Add(local) {
		l.canDistribute = false
	}
}

func intersectOrEmpty(a, b geom.Rect) geom.Rect {
	r, _ := a.Intersect(b)
	return r
}
