package displaylist

import (
	"log/slog"

	"github.com/gogpu/displaylist/geom"
	"github.com/gogpu/displaylist/internal/bounds"
	"github.com/gogpu/displaylist/internal/debug"
	"github.com/gogpu/displaylist/paint"
	"github.com/gogpu/displaylist/rtree"
)

// layerState accumulates the content of the root or of one SaveLayer, in
// the coordinate space the layer was opened in.
type layerState struct {
	bounds        bounds.Rect
	overlap       bounds.Overlap
	canDistribute bool

	// opIndex is the index of the SaveLayerOp, or -1 for the root.
	opIndex int
	// rtreeStart is the length of the R-tree list when the layer opened.
	rtreeStart int
	paint      *paint.Paint
	backdrop   paint.ImageFilter
	// base maps layer coordinates to device coordinates.
	base geom.Matrix
}

// state is the part of the builder that Restore reverts.
type state struct {
	attrs paint.Paint

	// global maps local coordinates to device coordinates; globalCull is
	// the device-space clip bounds.
	global     geom.Matrix
	globalCull geom.Rect
	// local maps local coordinates to layer coordinates; localCull is the
	// clip bounds in layer coordinates.
	local     geom.Matrix
	localCull geom.Rect

	// nop is set when nothing drawn in the current frame can be visible.
	nop   bool
	layer *layerState
}

// frame is pushed by Save and SaveLayer.
type frame struct {
	saved state
	// deferred is set until the Save is emitted.
	deferred bool
	// opIndex is the index of the emitted SaveOp or SaveLayerOp.
	opIndex int
	// layer is non-nil for SaveLayer frames.
	layer *layerState
}

// Builder records operations into a DisplayList.
//
// Example:
//
//	b := displaylist.NewBuilder()
//	b.SetColor(paint.Blue)
//	b.DrawRect(geom.XYWH(0, 0, 100, 100))
//	dl := b.Build()
//
// The Builder drops operations that cannot affect the output and delays
// each Save until an operation inside it needs to be reverted. After Build
// the builder is empty and may be reused.
//
// The Builder is not safe for concurrent use.
type Builder struct {
	opts builderOptions

	ops       []Op
	byteSize  int
	renderOps int
	nestedOps int

	state
	root   *layerState
	frames []frame
	rects  bounds.List
}

// NewBuilder creates an empty Builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	b := &Builder{opts: o}
	b.reset()
	return b
}

func (b *Builder) reset() {
	b.ops = nil
	b.byteSize = 0
	b.renderOps = 0
	b.nestedOps = 0
	b.frames = nil
	b.rects = bounds.List{}
	b.root = &layerState{canDistribute: true, opIndex: -1, base: geom.Identity()}
	b.state = state{
		attrs:      paint.Default(),
		global:     geom.Identity(),
		globalCull: b.opts.cull,
		local:      geom.Identity(),
		localCull:  b.opts.cull,
		layer:      b.root,
	}
}

func (b *Builder) logger() *slog.Logger {
	if b.opts.logger != nil {
		return b.opts.logger
	}
	return Logger()
}

// push appends op and returns its index.
func (b *Builder) push(op Op) int {
	idx := len(b.ops)
	b.ops = append(b.ops, op)
	b.byteSize += op.size()
	return idx
}

// checkDeferred emits the Save of the innermost frame if it is still
// deferred. Outer deferred frames stay deferred: everything they would
// revert happens inside the innermost one.
func (b *Builder) checkDeferred() {
	if len(b.frames) == 0 {
		return
	}
	f := &b.frames[len(b.frames)-1]
	if f.deferred {
		f.deferred = false
		f.opIndex = b.push(SaveOp{})
	}
}

// Save pushes the attributes, transform and clip. Nothing is recorded
// until an operation needs the Save.
func (b *Builder) Save() {
	b.frames = append(b.frames, frame{saved: b.state, deferred: true, opIndex: -1})
}

// SaveCount returns the number of saved states plus one, so a new Builder
// reports 1.
func (b *Builder) SaveCount() int {
	return len(b.frames) + 1
}

// Restore pops the state pushed by the matching Save or SaveLayer.
// Restoring with no saved state does nothing.
func (b *Builder) Restore() {
	if len(b.frames) == 0 {
		b.logger().Debug("displaylist: restore without matching save ignored")
		return
	}
	f := b.frames[len(b.frames)-1]
	b.frames = b.frames[:len(b.frames)-1]

	if f.layer != nil {
		b.restoreLayer(f)
		return
	}
	if !f.deferred {
		idx := b.push(RestoreOp{})
		b.ops[f.opIndex] = SaveOp{restoreIndex: idx}
	}
	b.state = f.saved
}

// RestoreToCount restores until SaveCount equals count. Counts below 1
// restore everything.
func (b *Builder) RestoreToCount(count int) {
	for b.SaveCount() > max(count, 1) {
		b.Restore()
	}
}

// Transform returns the current local-to-device matrix.
func (b *Builder) Transform() geom.Matrix {
	return b.global
}

// DestinationClipBounds returns the bounds of the current clip in device
// coordinates.
func (b *Builder) DestinationClipBounds() geom.Rect {
	if b.nop {
		return geom.Rect{}
	}
	return b.globalCull
}

// LocalClipBounds returns the bounds of the current clip in local
// coordinates. It is the maximal cull rect when the transform cannot be
// inverted.
func (b *Builder) LocalClipBounds() geom.Rect {
	if b.nop {
		return geom.Rect{}
	}
	inv, ok := b.global.Invert()
	if !ok {
		return geom.MaxCullRect
	}
	return inv.MapRect(b.globalCull)
}

// QuickReject reports whether anything drawn inside the local rectangle r
// is certain to be clipped away.
func (b *Builder) QuickReject(r geom.Rect) bool {
	if b.nop {
		return true
	}
	return !b.global.MapRect(r.Sorted()).Intersects(b.globalCull)
}

// Attributes returns the attributes used by the next draw.
func (b *Builder) Attributes() paint.Paint {
	return b.attrs
}

// Build finishes the recording and returns it. Unbalanced saves are closed
// first. The Builder is reset and may be reused.
func (b *Builder) Build() *DisplayList {
	if n := len(b.frames); n > 0 {
		debug.Assert(false, "%d unbalanced saves at Build", n)
		b.logger().Warn("displaylist: closing unbalanced saves", "count", n)
		b.RestoreToCount(1)
	}

	dl := &DisplayList{
		ops:                  b.ops,
		byteSize:             b.byteSize,
		renderOpCount:        b.renderOps,
		nestedOpCount:        len(b.ops) + b.nestedOps,
		bounds:               b.root.bounds.Bounds(),
		canApplyGroupOpacity: b.root.canDistribute,
	}
	if b.opts.rtree {
		dl.rtree = rtree.New(b.rects.Rects(), b.rects.IDs())
	}
	b.logger().Debug("displaylist: built",
		"ops", len(dl.ops), "renderOps", dl.renderOpCount, "bounds", dl.bounds)
	b.reset()
	return dl
}

// Receiver returns a Receiver that records every operation into b.
// Dispatching a DisplayList into it reproduces an equal list.
func (b *Builder) Receiver() Receiver {
	return replayReceiver{b}
}

// replayReceiver adapts the SaveLayer signature of the Builder.
type replayReceiver struct {
	*Builder
}

func (r replayReceiver) SaveLayer(bounds geom.Rect, opts SaveLayerOptions, layerPaint *paint.Paint, backdrop paint.ImageFilter) {
	var bp *geom.Rect
	if opts.BoundsFromCaller {
		bp = &bounds
	}
	if !opts.RendersWithAttributes {
		layerPaint = nil
	}
	if !opts.ContainsBackdropFilter {
		backdrop = nil
	}
	r.Builder.SaveLayer(bp, layerPaint, backdrop)
}
