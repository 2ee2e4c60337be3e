package displaylist

import (
	"image"
	"slices"

	"github.com/gogpu/displaylist/geom"
	"github.com/gogpu/displaylist/paint"
	"github.com/gogpu/displaylist/text"
	"github.com/gogpu/displaylist/vertices"
)

// OpKind identifies the type of a recorded operation.
type OpKind uint8

const (
	// Attribute operations
	OpSetAntiAlias OpKind = iota
	OpSetInvertColors
	OpSetStrokeCap
	OpSetStrokeJoin
	OpSetDrawStyle
	OpSetStrokeWidth
	OpSetStrokeMiter
	OpSetColor
	OpSetBlendMode
	OpSetColorSource
	OpSetColorFilter
	OpSetImageFilter
	OpSetMaskFilter

	// State operations
	OpSave
	OpSaveLayer
	OpRestore

	// Transform operations
	OpTranslate
	OpScale
	OpRotate
	OpSkew
	OpTransform2DAffine
	OpTransformFullPerspective
	OpTransformReset

	// Clip operations
	OpClipRect
	OpClipOval
	OpClipRRect
	OpClipPath

	// Draw operations
	OpDrawColor
	OpDrawPaint
	OpDrawLine
	OpDrawDashedLine
	OpDrawRect
	OpDrawOval
	OpDrawCircle
	OpDrawRRect
	OpDrawDRRect
	OpDrawPath
	OpDrawArc
	OpDrawPoints
	OpDrawVertices
	OpDrawImage
	OpDrawImageRect
	OpDrawImageNine
	OpDrawAtlas
	OpDrawDisplayList
	OpDrawTextBlob
	OpDrawTextFrame
	OpDrawShadow

	opKindCount
)

// opKindNames maps OpKind values to their string representation.
var opKindNames = [...]string{
	OpSetAntiAlias:             "SetAntiAlias",
	OpSetInvertColors:          "SetInvertColors",
	OpSetStrokeCap:             "SetStrokeCap",
	OpSetStrokeJoin:            "SetStrokeJoin",
	OpSetDrawStyle:             "SetDrawStyle",
	OpSetStrokeWidth:           "SetStrokeWidth",
	OpSetStrokeMiter:           "SetStrokeMiter",
	OpSetColor:                 "SetColor",
	OpSetBlendMode:             "SetBlendMode",
	OpSetColorSource:           "SetColorSource",
	OpSetColorFilter:           "SetColorFilter",
	OpSetImageFilter:           "SetImageFilter",
	OpSetMaskFilter:            "SetMaskFilter",
	OpSave:                     "Save",
	OpSaveLayer:                "SaveLayer",
	OpRestore:                  "Restore",
	OpTranslate:                "Translate",
	OpScale:                    "Scale",
	OpRotate:                   "Rotate",
	OpSkew:                     "Skew",
	OpTransform2DAffine:        "Transform2DAffine",
	OpTransformFullPerspective: "TransformFullPerspective",
	OpTransformReset:           "TransformReset",
	OpClipRect:                 "ClipRect",
	OpClipOval:                 "ClipOval",
	OpClipRRect:                "ClipRRect",
	OpClipPath:                 "ClipPath",
	OpDrawColor:                "DrawColor",
	OpDrawPaint:                "DrawPaint",
	OpDrawLine:                 "DrawLine",
	OpDrawDashedLine:           "DrawDashedLine",
	OpDrawRect:                 "DrawRect",
	OpDrawOval:                 "DrawOval",
	OpDrawCircle:               "DrawCircle",
	OpDrawRRect:                "DrawRRect",
	OpDrawDRRect:               "DrawDRRect",
	OpDrawPath:                 "DrawPath",
	OpDrawArc:                  "DrawArc",
	OpDrawPoints:               "DrawPoints",
	OpDrawVertices:             "DrawVertices",
	OpDrawImage:                "DrawImage",
	OpDrawImageRect:            "DrawImageRect",
	OpDrawImageNine:            "DrawImageNine",
	OpDrawAtlas:                "DrawAtlas",
	OpDrawDisplayList:          "DrawDisplayList",
	OpDrawTextBlob:             "DrawTextBlob",
	OpDrawTextFrame:            "DrawTextFrame",
	OpDrawShadow:               "DrawShadow",
}

// String returns the string representation of an OpKind.
func (k OpKind) String() string {
	if int(k) < len(opKindNames) {
		return opKindNames[k]
	}
	return "Unknown"
}

// IsDraw reports whether the kind renders pixels.
func (k OpKind) IsDraw() bool {
	return k >= OpDrawColor && k < opKindCount
}

// IsState reports whether the kind is Save, SaveLayer or Restore.
func (k OpKind) IsState() bool {
	return k >= OpSave && k <= OpRestore
}

// Op is one recorded operation. The set of implementations is closed; the
// concrete types are the *Op structs of this package.
type Op interface {
	// Kind returns the OpKind for this operation.
	Kind() OpKind

	size() int
	dispatch(r Receiver)
	equal(o Op) bool
	hash(h *hasher)
}

// Approximate in-memory record sizes used for DisplayList.ByteSize.
const (
	opHeaderSize = 8
	scalarSize   = 8
	pointSize    = 2 * scalarSize
	rectSize     = 4 * scalarSize
	rrectSize    = rectSize + 8*scalarSize
	refSize      = 8
)

// sameOp compares operations whose fields are all comparable.
func sameOp[T comparable](a T, b Op) bool {
	o, ok := b.(T)
	return ok && a == o
}

// --------------------------------------------------------------------------
// Attribute Operations
// --------------------------------------------------------------------------

// SetAntiAliasOp sets the anti-alias attribute.
type SetAntiAliasOp struct{ AntiAlias bool }

// Kind implements Op.
func (SetAntiAliasOp) Kind() OpKind          { return OpSetAntiAlias }
func (SetAntiAliasOp) size() int             { return opHeaderSize }
func (o SetAntiAliasOp) dispatch(r Receiver) { r.SetAntiAlias(o.AntiAlias) }
func (o SetAntiAliasOp) equal(b Op) bool     { return sameOp(o, b) }
func (o SetAntiAliasOp) hash(h *hasher)      { h.bool(o.AntiAlias) }

// SetInvertColorsOp sets the invert-colors attribute.
type SetInvertColorsOp struct{ Invert bool }

// Kind implements Op.
func (SetInvertColorsOp) Kind() OpKind          { return OpSetInvertColors }
func (SetInvertColorsOp) size() int             { return opHeaderSize }
func (o SetInvertColorsOp) dispatch(r Receiver) { r.SetInvertColors(o.Invert) }
func (o SetInvertColorsOp) equal(b Op) bool     { return sameOp(o, b) }
func (o SetInvertColorsOp) hash(h *hasher)      { h.bool(o.Invert) }

// SetStrokeCapOp sets the stroke cap attribute.
type SetStrokeCapOp struct{ Cap paint.StrokeCap }

// Kind implements Op.
func (SetStrokeCapOp) Kind() OpKind          { return OpSetStrokeCap }
func (SetStrokeCapOp) size() int             { return opHeaderSize }
func (o SetStrokeCapOp) dispatch(r Receiver) { r.SetStrokeCap(o.Cap) }
func (o SetStrokeCapOp) equal(b Op) bool     { return sameOp(o, b) }
func (o SetStrokeCapOp) hash(h *hasher)      { h.u64(uint64(o.Cap)) }

// SetStrokeJoinOp sets the stroke join attribute.
type SetStrokeJoinOp struct{ Join paint.StrokeJoin }

// Kind implements Op.
func (SetStrokeJoinOp) Kind() OpKind          { return OpSetStrokeJoin }
func (SetStrokeJoinOp) size() int             { return opHeaderSize }
func (o SetStrokeJoinOp) dispatch(r Receiver) { r.SetStrokeJoin(o.Join) }
func (o SetStrokeJoinOp) equal(b Op) bool     { return sameOp(o, b) }
func (o SetStrokeJoinOp) hash(h *hasher)      { h.u64(uint64(o.Join)) }

// SetDrawStyleOp sets the draw style attribute.
type SetDrawStyleOp struct{ Style paint.DrawStyle }

// Kind implements Op.
func (SetDrawStyleOp) Kind() OpKind          { return OpSetDrawStyle }
func (SetDrawStyleOp) size() int             { return opHeaderSize }
func (o SetDrawStyleOp) dispatch(r Receiver) { r.SetDrawStyle(o.Style) }
func (o SetDrawStyleOp) equal(b Op) bool     { return sameOp(o, b) }
func (o SetDrawStyleOp) hash(h *hasher)      { h.u64(uint64(o.Style)) }

// SetStrokeWidthOp sets the stroke width attribute.
type SetStrokeWidthOp struct{ Width float64 }

// Kind implements Op.
func (SetStrokeWidthOp) Kind() OpKind          { return OpSetStrokeWidth }
func (SetStrokeWidthOp) size() int             { return opHeaderSize + scalarSize }
func (o SetStrokeWidthOp) dispatch(r Receiver) { r.SetStrokeWidth(o.Width) }
func (o SetStrokeWidthOp) equal(b Op) bool     { return sameOp(o, b) }
func (o SetStrokeWidthOp) hash(h *hasher)      { h.f64(o.Width) }

// SetStrokeMiterOp sets the miter limit attribute.
type SetStrokeMiterOp struct{ Limit float64 }

// Kind implements Op.
func (SetStrokeMiterOp) Kind() OpKind          { return OpSetStrokeMiter }
func (SetStrokeMiterOp) size() int             { return opHeaderSize + scalarSize }
func (o SetStrokeMiterOp) dispatch(r Receiver) { r.SetStrokeMiter(o.Limit) }
func (o SetStrokeMiterOp) equal(b Op) bool     { return sameOp(o, b) }
func (o SetStrokeMiterOp) hash(h *hasher)      { h.f64(o.Limit) }

// SetColorOp sets the color attribute.
type SetColorOp struct{ Color paint.Color }

// Kind implements Op.
func (SetColorOp) Kind() OpKind          { return OpSetColor }
func (SetColorOp) size() int             { return opHeaderSize }
func (o SetColorOp) dispatch(r Receiver) { r.SetColor(o.Color) }
func (o SetColorOp) equal(b Op) bool     { return sameOp(o, b) }
func (o SetColorOp) hash(h *hasher)      { h.u64(uint64(o.Color)) }

// SetBlendModeOp sets the blend mode attribute.
type SetBlendModeOp struct{ Mode paint.BlendMode }

// Kind implements Op.
func (SetBlendModeOp) Kind() OpKind          { return OpSetBlendMode }
func (SetBlendModeOp) size() int             { return opHeaderSize }
func (o SetBlendModeOp) dispatch(r Receiver) { r.SetBlendMode(o.Mode) }
func (o SetBlendModeOp) equal(b Op) bool     { return sameOp(o, b) }
func (o SetBlendModeOp) hash(h *hasher)      { h.u64(uint64(o.Mode)) }

// SetColorSourceOp sets or clears the color source attribute.
type SetColorSourceOp struct{ Source paint.ColorSource }

// Kind implements Op.
func (SetColorSourceOp) Kind() OpKind          { return OpSetColorSource }
func (SetColorSourceOp) size() int             { return opHeaderSize + refSize }
func (o SetColorSourceOp) dispatch(r Receiver) { r.SetColorSource(o.Source) }
func (o SetColorSourceOp) hash(h *hasher)      { h.typeOf(o.Source) }
func (o SetColorSourceOp) equal(b Op) bool {
	ob, ok := b.(SetColorSourceOp)
	return ok && paint.EqualColorSource(o.Source, ob.Source)
}

// SetColorFilterOp sets or clears the color filter attribute.
type SetColorFilterOp struct{ Filter paint.ColorFilter }

// Kind implements Op.
func (SetColorFilterOp) Kind() OpKind          { return OpSetColorFilter }
func (SetColorFilterOp) size() int             { return opHeaderSize + refSize }
func (o SetColorFilterOp) dispatch(r Receiver) { r.SetColorFilter(o.Filter) }
func (o SetColorFilterOp) hash(h *hasher)      { h.typeOf(o.Filter) }
func (o SetColorFilterOp) equal(b Op) bool {
	ob, ok := b.(SetColorFilterOp)
	return ok && paint.EqualColorFilter(o.Filter, ob.Filter)
}

// SetImageFilterOp sets or clears the image filter attribute.
type SetImageFilterOp struct{ Filter paint.ImageFilter }

// Kind implements Op.
func (SetImageFilterOp) Kind() OpKind          { return OpSetImageFilter }
func (SetImageFilterOp) size() int             { return opHeaderSize + refSize }
func (o SetImageFilterOp) dispatch(r Receiver) { r.SetImageFilter(o.Filter) }
func (o SetImageFilterOp) hash(h *hasher)      { h.typeOf(o.Filter) }
func (o SetImageFilterOp) equal(b Op) bool {
	ob, ok := b.(SetImageFilterOp)
	return ok && paint.EqualImageFilter(o.Filter, ob.Filter)
}

// SetMaskFilterOp sets or clears the mask filter attribute.
type SetMaskFilterOp struct{ Filter paint.MaskFilter }

// Kind implements Op.
func (SetMaskFilterOp) Kind() OpKind          { return OpSetMaskFilter }
func (SetMaskFilterOp) size() int             { return opHeaderSize + refSize }
func (o SetMaskFilterOp) dispatch(r Receiver) { r.SetMaskFilter(o.Filter) }
func (o SetMaskFilterOp) hash(h *hasher)      { h.typeOf(o.Filter) }
func (o SetMaskFilterOp) equal(b Op) bool {
	ob, ok := b.(SetMaskFilterOp)
	return ok && paint.EqualMaskFilter(o.Filter, ob.Filter)
}

// --------------------------------------------------------------------------
// State Operations
// --------------------------------------------------------------------------

// SaveOp saves the attributes, transform and clip.
type SaveOp struct {
	// restoreIndex is the index of the matching RestoreOp.
	restoreIndex int
}

// Kind implements Op.
func (SaveOp) Kind() OpKind        { return OpSave }
func (SaveOp) size() int           { return opHeaderSize + scalarSize }
func (SaveOp) dispatch(r Receiver) { r.Save() }
func (SaveOp) hash(*hasher)        {}
func (SaveOp) equal(b Op) bool {
	_, ok := b.(SaveOp)
	return ok
}

// SaveLayerOp saves the state and opens an offscreen layer.
type SaveLayerOp struct {
	// Bounds are the caller's bounds or, when Options.BoundsFromCaller is
	// unset, the bounds of the layer content in layer coordinates.
	Bounds  geom.Rect
	Options SaveLayerOptions
	// Paint is applied when the layer is composited. Nil means none.
	Paint    *paint.Paint
	Backdrop paint.ImageFilter

	restoreIndex int
}

// Kind implements Op.
func (SaveLayerOp) Kind() OpKind { return OpSaveLayer }
func (SaveLayerOp) size() int    { return opHeaderSize + rectSize + 3*refSize }
func (o SaveLayerOp) dispatch(r Receiver) {
	r.SaveLayer(o.Bounds, o.Options, o.Paint, o.Backdrop)
}
func (o SaveLayerOp) hash(h *hasher) {
	h.rect(o.Bounds)
	h.bool(o.Options.RendersWithAttributes)
	h.bool(o.Options.BoundsFromCaller)
	h.bool(o.Options.CanDistributeOpacity)
	h.bool(o.Options.ContainsBackdropFilter)
	if o.Paint != nil {
		h.u64(uint64(o.Paint.Color))
		h.u64(uint64(o.Paint.BlendMode))
		h.typeOf(o.Paint.ImageFilter)
		h.typeOf(o.Paint.ColorFilter)
	}
	h.typeOf(o.Backdrop)
}
func (o SaveLayerOp) equal(b Op) bool {
	ob, ok := b.(SaveLayerOp)
	return ok && o.Bounds == ob.Bounds && o.Options == ob.Options &&
		equalPaintRef(o.Paint, ob.Paint) && paint.EqualImageFilter(o.Backdrop, ob.Backdrop)
}

func equalPaintRef(a, b *paint.Paint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equals(b)
}

// RestoreOp restores the state saved by the matching SaveOp or
// SaveLayerOp.
type RestoreOp struct{}

// Kind implements Op.
func (RestoreOp) Kind() OpKind        { return OpRestore }
func (RestoreOp) size() int           { return opHeaderSize }
func (RestoreOp) dispatch(r Receiver) { r.Restore() }
func (o RestoreOp) equal(b Op) bool   { return sameOp(o, b) }
func (RestoreOp) hash(*hasher)        {}

// --------------------------------------------------------------------------
// Transform Operations
// --------------------------------------------------------------------------

// TranslateOp translates the transform.
type TranslateOp struct{ TX, TY float64 }

// Kind implements Op.
func (TranslateOp) Kind() OpKind          { return OpTranslate }
func (TranslateOp) size() int             { return opHeaderSize + 2*scalarSize }
func (o TranslateOp) dispatch(r Receiver) { r.Translate(o.TX, o.TY) }
func (o TranslateOp) equal(b Op) bool     { return sameOp(o, b) }
func (o TranslateOp) hash(h *hasher) {
	h.f64(o.TX)
	h.f64(o.TY)
}

// ScaleOp scales the transform.
type ScaleOp struct{ SX, SY float64 }

// Kind implements Op.
func (ScaleOp) Kind() OpKind          { return OpScale }
func (ScaleOp) size() int             { return opHeaderSize + 2*scalarSize }
func (o ScaleOp) dispatch(r Receiver) { r.Scale(o.SX, o.SY) }
func (o ScaleOp) equal(b Op) bool     { return sameOp(o, b) }
func (o ScaleOp) hash(h *hasher) {
	h.f64(o.SX)
	h.f64(o.SY)
}

// RotateOp rotates the transform by Degrees.
type RotateOp struct{ Degrees float64 }

// Kind implements Op.
func (RotateOp) Kind() OpKind          { return OpRotate }
func (RotateOp) size() int             { return opHeaderSize + scalarSize }
func (o RotateOp) dispatch(r Receiver) { r.Rotate(o.Degrees) }
func (o RotateOp) equal(b Op) bool     { return sameOp(o, b) }
func (o RotateOp) hash(h *hasher)      { h.f64(o.Degrees) }

// SkewOp skews the transform.
type SkewOp struct{ SX, SY float64 }

// Kind implements Op.
func (SkewOp) Kind() OpKind          { return OpSkew }
func (SkewOp) size() int             { return opHeaderSize + 2*scalarSize }
func (o SkewOp) dispatch(r Receiver) { r.Skew(o.SX, o.SY) }
func (o SkewOp) equal(b Op) bool     { return sameOp(o, b) }
func (o SkewOp) hash(h *hasher) {
	h.f64(o.SX)
	h.f64(o.SY)
}

// Transform2DAffineOp concatenates a 2D affine matrix.
type Transform2DAffineOp struct {
	MXX, MXY, MXT float64
	MYX, MYY, MYT float64
}

// Kind implements Op.
func (Transform2DAffineOp) Kind() OpKind { return OpTransform2DAffine }
func (Transform2DAffineOp) size() int    { return opHeaderSize + 6*scalarSize }
func (o Transform2DAffineOp) dispatch(r Receiver) {
	r.Transform2DAffine(o.MXX, o.MXY, o.MXT, o.MYX, o.MYY, o.MYT)
}
func (o Transform2DAffineOp) equal(b Op) bool { return sameOp(o, b) }
func (o Transform2DAffineOp) hash(h *hasher) {
	for _, v := range [...]float64{o.MXX, o.MXY, o.MXT, o.MYX, o.MYY, o.MYT} {
		h.f64(v)
	}
}

// TransformFullPerspectiveOp concatenates a 4x4 matrix.
type TransformFullPerspectiveOp struct{ Matrix geom.Matrix }

// Kind implements Op.
func (TransformFullPerspectiveOp) Kind() OpKind          { return OpTransformFullPerspective }
func (TransformFullPerspectiveOp) size() int             { return opHeaderSize + 16*scalarSize }
func (o TransformFullPerspectiveOp) dispatch(r Receiver) { r.TransformFullPerspective(o.Matrix) }
func (o TransformFullPerspectiveOp) equal(b Op) bool     { return sameOp(o, b) }
func (o TransformFullPerspectiveOp) hash(h *hasher)      { h.matrix(o.Matrix) }

// TransformResetOp resets the transform to the identity.
type TransformResetOp struct{}

// Kind implements Op.
func (TransformResetOp) Kind() OpKind        { return OpTransformReset }
func (TransformResetOp) size() int           { return opHeaderSize }
func (TransformResetOp) dispatch(r Receiver) { r.TransformReset() }
func (o TransformResetOp) equal(b Op) bool   { return sameOp(o, b) }
func (TransformResetOp) hash(*hasher)        {}

// --------------------------------------------------------------------------
// Clip Operations
// --------------------------------------------------------------------------

// ClipRectOp clips to a rectangle.
type ClipRectOp struct {
	Rect      geom.Rect
	Op        ClipOp
	AntiAlias bool
}

// Kind implements Op.
func (ClipRectOp) Kind() OpKind          { return OpClipRect }
func (ClipRectOp) size() int             { return opHeaderSize + rectSize }
func (o ClipRectOp) dispatch(r Receiver) { r.ClipRect(o.Rect, o.Op, o.AntiAlias) }
func (o ClipRectOp) equal(b Op) bool     { return sameOp(o, b) }
func (o ClipRectOp) hash(h *hasher) {
	h.rect(o.Rect)
	h.u64(uint64(o.Op))
	h.bool(o.AntiAlias)
}

// ClipOvalOp clips to the oval inscribed in Bounds.
type ClipOvalOp struct {
	Bounds    geom.Rect
	Op        ClipOp
	AntiAlias bool
}

// Kind implements Op.
func (ClipOvalOp) Kind() OpKind          { return OpClipOval }
func (ClipOvalOp) size() int             { return opHeaderSize + rectSize }
func (o ClipOvalOp) dispatch(r Receiver) { r.ClipOval(o.Bounds, o.Op, o.AntiAlias) }
func (o ClipOvalOp) equal(b Op) bool     { return sameOp(o, b) }
func (o ClipOvalOp) hash(h *hasher) {
	h.rect(o.Bounds)
	h.u64(uint64(o.Op))
	h.bool(o.AntiAlias)
}

// ClipRRectOp clips to a rounded rectangle.
type ClipRRectOp struct {
	RRect     geom.RRect
	Op        ClipOp
	AntiAlias bool
}

// Kind implements Op.
func (ClipRRectOp) Kind() OpKind          { return OpClipRRect }
func (ClipRRectOp) size() int             { return opHeaderSize + rrectSize }
func (o ClipRRectOp) dispatch(r Receiver) { r.ClipRRect(o.RRect, o.Op, o.AntiAlias) }
func (o ClipRRectOp) equal(b Op) bool     { return sameOp(o, b) }
func (o ClipRRectOp) hash(h *hasher) {
	h.rrect(o.RRect)
	h.u64(uint64(o.Op))
	h.bool(o.AntiAlias)
}

// ClipPathOp clips to a path.
type ClipPathOp struct {
	Path      *geom.Path
	Op        ClipOp
	AntiAlias bool
}

// Kind implements Op.
func (ClipPathOp) Kind() OpKind          { return OpClipPath }
func (ClipPathOp) size() int             { return opHeaderSize + refSize }
func (o ClipPathOp) dispatch(r Receiver) { r.ClipPath(o.Path, o.Op, o.AntiAlias) }
func (o ClipPathOp) hash(h *hasher) {
	h.path(o.Path)
	h.u64(uint64(o.Op))
	h.bool(o.AntiAlias)
}
func (o ClipPathOp) equal(b Op) bool {
	ob, ok := b.(ClipPathOp)
	return ok && o.Op == ob.Op && o.AntiAlias == ob.AntiAlias && o.Path.Equals(ob.Path)
}

// --------------------------------------------------------------------------
// Draw Operations
// --------------------------------------------------------------------------

// DrawColorOp floods the clip with a color.
type DrawColorOp struct {
	Color paint.Color
	Mode  paint.BlendMode
}

// Kind implements Op.
func (DrawColorOp) Kind() OpKind          { return OpDrawColor }
func (DrawColorOp) size() int             { return opHeaderSize }
func (o DrawColorOp) dispatch(r Receiver) { r.DrawColor(o.Color, o.Mode) }
func (o DrawColorOp) equal(b Op) bool     { return sameOp(o, b) }
func (o DrawColorOp) hash(h *hasher) {
	h.u64(uint64(o.Color))
	h.u64(uint64(o.Mode))
}

// DrawPaintOp floods the clip with the current attributes.
type DrawPaintOp struct{}

// Kind implements Op.
func (DrawPaintOp) Kind() OpKind        { return OpDrawPaint }
func (DrawPaintOp) size() int           { return opHeaderSize }
func (DrawPaintOp) dispatch(r Receiver) { r.DrawPaint() }
func (o DrawPaintOp) equal(b Op) bool   { return sameOp(o, b) }
func (DrawPaintOp) hash(*hasher)        {}

// DrawLineOp draws a line segment.
type DrawLineOp struct{ P0, P1 geom.Point }

// Kind implements Op.
func (DrawLineOp) Kind() OpKind          { return OpDrawLine }
func (DrawLineOp) size() int             { return opHeaderSize + 2*pointSize }
func (o DrawLineOp) dispatch(r Receiver) { r.DrawLine(o.P0, o.P1) }
func (o DrawLineOp) equal(b Op) bool     { return sameOp(o, b) }
func (o DrawLineOp) hash(h *hasher) {
	h.point(o.P0)
	h.point(o.P1)
}

// DrawDashedLineOp draws a dashed line segment.
type DrawDashedLineOp struct {
	P0, P1    geom.Point
	OnLength  float64
	OffLength float64
}

// Kind implements Op.
func (DrawDashedLineOp) Kind() OpKind { return OpDrawDashedLine }
func (DrawDashedLineOp) size() int    { return opHeaderSize + 2*pointSize + 2*scalarSize }
func (o DrawDashedLineOp) dispatch(r Receiver) {
	r.DrawDashedLine(o.P0, o.P1, o.OnLength, o.OffLength)
}
func (o DrawDashedLineOp) equal(b Op) bool { return sameOp(o, b) }
func (o DrawDashedLineOp) hash(h *hasher) {
	h.point(o.P0)
	h.point(o.P1)
	h.f64(o.OnLength)
	h.f64(o.OffLength)
}

// DrawRectOp draws a rectangle.
type DrawRectOp struct{ Rect geom.Rect }

// Kind implements Op.
func (DrawRectOp) Kind() OpKind          { return OpDrawRect }
func (DrawRectOp) size() int             { return opHeaderSize + rectSize }
func (o DrawRectOp) dispatch(r Receiver) { r.DrawRect(o.Rect) }
func (o DrawRectOp) equal(b Op) bool     { return sameOp(o, b) }
func (o DrawRectOp) hash(h *hasher)      { h.rect(o.Rect) }

// DrawOvalOp draws the oval inscribed in Bounds.
type DrawOvalOp struct{ Bounds geom.Rect }

// Kind implements Op.
func (DrawOvalOp) Kind() OpKind          { return OpDrawOval }
func (DrawOvalOp) size() int             { return opHeaderSize + rectSize }
func (o DrawOvalOp) dispatch(r Receiver) { r.DrawOval(o.Bounds) }
func (o DrawOvalOp) equal(b Op) bool     { return sameOp(o, b) }
func (o DrawOvalOp) hash(h *hasher)      { h.rect(o.Bounds) }

// DrawCircleOp draws a circle.
type DrawCircleOp struct {
	Center geom.Point
	Radius float64
}

// Kind implements Op.
func (DrawCircleOp) Kind() OpKind          { return OpDrawCircle }
func (DrawCircleOp) size() int             { return opHeaderSize + pointSize + scalarSize }
func (o DrawCircleOp) dispatch(r Receiver) { r.DrawCircle(o.Center, o.Radius) }
func (o DrawCircleOp) equal(b Op) bool     { return sameOp(o, b) }
func (o DrawCircleOp) hash(h *hasher) {
	h.point(o.Center)
	h.f64(o.Radius)
}

// DrawRRectOp draws a rounded rectangle.
type DrawRRectOp struct{ RRect geom.RRect }

// Kind implements Op.
func (DrawRRectOp) Kind() OpKind          { return OpDrawRRect }
func (DrawRRectOp) size() int             { return opHeaderSize + rrectSize }
func (o DrawRRectOp) dispatch(r Receiver) { r.DrawRRect(o.RRect) }
func (o DrawRRectOp) equal(b Op) bool     { return sameOp(o, b) }
func (o DrawRRectOp) hash(h *hasher)      { h.rrect(o.RRect) }

// DrawDRRectOp draws the area between two rounded rectangles.
type DrawDRRectOp struct{ Outer, Inner geom.RRect }

// Kind implements Op.
func (DrawDRRectOp) Kind() OpKind          { return OpDrawDRRect }
func (DrawDRRectOp) size() int             { return opHeaderSize + 2*rrectSize }
func (o DrawDRRectOp) dispatch(r Receiver) { r.DrawDRRect(o.Outer, o.Inner) }
func (o DrawDRRectOp) equal(b Op) bool     { return sameOp(o, b) }
func (o DrawDRRectOp) hash(h *hasher) {
	h.rrect(o.Outer)
	h.rrect(o.Inner)
}

// DrawPathOp draws a path.
type DrawPathOp struct{ Path *geom.Path }

// Kind implements Op.
func (DrawPathOp) Kind() OpKind          { return OpDrawPath }
func (DrawPathOp) size() int             { return opHeaderSize + refSize }
func (o DrawPathOp) dispatch(r Receiver) { r.DrawPath(o.Path) }
func (o DrawPathOp) hash(h *hasher)      { h.path(o.Path) }
func (o DrawPathOp) equal(b Op) bool {
	ob, ok := b.(DrawPathOp)
	return ok && o.Path.Equals(ob.Path)
}

// DrawArcOp draws an arc of the oval inscribed in Bounds.
type DrawArcOp struct {
	Bounds       geom.Rect
	Start, Sweep float64
	UseCenter    bool
}

// Kind implements Op.
func (DrawArcOp) Kind() OpKind { return OpDrawArc }
func (DrawArcOp) size() int    { return opHeaderSize + rectSize + 2*scalarSize }
func (o DrawArcOp) dispatch(r Receiver) {
	r.DrawArc(o.Bounds, o.Start, o.Sweep, o.UseCenter)
}
func (o DrawArcOp) equal(b Op) bool { return sameOp(o, b) }
func (o DrawArcOp) hash(h *hasher) {
	h.rect(o.Bounds)
	h.f64(o.Start)
	h.f64(o.Sweep)
	h.bool(o.UseCenter)
}

// DrawPointsOp draws points, segments or a polyline.
type DrawPointsOp struct {
	Mode   PointMode
	Points []geom.Point
}

// Kind implements Op.
func (DrawPointsOp) Kind() OpKind          { return OpDrawPoints }
func (o DrawPointsOp) size() int           { return opHeaderSize + len(o.Points)*pointSize }
func (o DrawPointsOp) dispatch(r Receiver) { r.DrawPoints(o.Mode, o.Points) }
func (o DrawPointsOp) hash(h *hasher) {
	h.u64(uint64(o.Mode))
	for _, p := range o.Points {
		h.point(p)
	}
}
func (o DrawPointsOp) equal(b Op) bool {
	ob, ok := b.(DrawPointsOp)
	return ok && o.Mode == ob.Mode && slices.Equal(o.Points, ob.Points)
}

// DrawVerticesOp draws a triangle mesh.
type DrawVerticesOp struct {
	Vertices *vertices.Vertices
	Mode     paint.BlendMode
}

// Kind implements Op.
func (DrawVerticesOp) Kind() OpKind          { return OpDrawVertices }
func (o DrawVerticesOp) size() int           { return opHeaderSize + refSize + o.Vertices.Size() }
func (o DrawVerticesOp) dispatch(r Receiver) { r.DrawVertices(o.Vertices, o.Mode) }
func (o DrawVerticesOp) hash(h *hasher) {
	h.bytes(o.Vertices.Bytes())
	h.u64(uint64(o.Mode))
}
func (o DrawVerticesOp) equal(b Op) bool {
	ob, ok := b.(DrawVerticesOp)
	return ok && o.Mode == ob.Mode && o.Vertices.Equals(ob.Vertices)
}

// DrawImageOp draws an image with its top-left corner at Point.
type DrawImageOp struct {
	Image                image.Image
	Point                geom.Point
	Sampling             paint.Sampling
	RenderWithAttributes bool
}

// Kind implements Op.
func (DrawImageOp) Kind() OpKind { return OpDrawImage }
func (DrawImageOp) size() int    { return opHeaderSize + refSize + pointSize }
func (o DrawImageOp) dispatch(r Receiver) {
	r.DrawImage(o.Image, o.Point, o.Sampling, o.RenderWithAttributes)
}
func (o DrawImageOp) hash(h *hasher) {
	h.image(o.Image)
	h.point(o.Point)
	h.u64(uint64(o.Sampling))
	h.bool(o.RenderWithAttributes)
}
func (o DrawImageOp) equal(b Op) bool {
	ob, ok := b.(DrawImageOp)
	return ok && o.Point == ob.Point && o.Sampling == ob.Sampling &&
		o.RenderWithAttributes == ob.RenderWithAttributes && paint.SameImage(o.Image, ob.Image)
}

// DrawImageRectOp draws the Src area of an image into Dst.
type DrawImageRectOp struct {
	Image                image.Image
	Src, Dst             geom.Rect
	Sampling             paint.Sampling
	RenderWithAttributes bool
	Constraint           SrcRectConstraint
}

// Kind implements Op.
func (DrawImageRectOp) Kind() OpKind { return OpDrawImageRect }
func (DrawImageRectOp) size() int    { return opHeaderSize + refSize + 2*rectSize }
func (o DrawImageRectOp) dispatch(r Receiver) {
	r.DrawImageRect(o.Image, o.Src, o.Dst, o.Sampling, o.RenderWithAttributes, o.Constraint)
}
func (o DrawImageRectOp) hash(h *hasher) {
	h.image(o.Image)
	h.rect(o.Src)
	h.rect(o.Dst)
	h.u64(uint64(o.Sampling))
	h.bool(o.RenderWithAttributes)
	h.u64(uint64(o.Constraint))
}
func (o DrawImageRectOp) equal(b Op) bool {
	ob, ok := b.(DrawImageRectOp)
	return ok && o.Src == ob.Src && o.Dst == ob.Dst && o.Sampling == ob.Sampling &&
		o.RenderWithAttributes == ob.RenderWithAttributes && o.Constraint == ob.Constraint &&
		paint.SameImage(o.Image, ob.Image)
}

// DrawImageNineOp draws an image as a nine-patch.
type DrawImageNineOp struct {
	Image                image.Image
	Center, Dst          geom.Rect
	Sampling             paint.Sampling
	RenderWithAttributes bool
}

// Kind implements Op.
func (DrawImageNineOp) Kind() OpKind { return OpDrawImageNine }
func (DrawImageNineOp) size() int    { return opHeaderSize + refSize + 2*rectSize }
func (o DrawImageNineOp) dispatch(r Receiver) {
	r.DrawImageNine(o.Image, o.Center, o.Dst, o.Sampling, o.RenderWithAttributes)
}
func (o DrawImageNineOp) hash(h *hasher) {
	h.image(o.Image)
	h.rect(o.Center)
	h.rect(o.Dst)
	h.u64(uint64(o.Sampling))
	h.bool(o.RenderWithAttributes)
}
func (o DrawImageNineOp) equal(b Op) bool {
	ob, ok := b.(DrawImageNineOp)
	return ok && o.Center == ob.Center && o.Dst == ob.Dst && o.Sampling == ob.Sampling &&
		o.RenderWithAttributes == ob.RenderWithAttributes && paint.SameImage(o.Image, ob.Image)
}

// DrawAtlasOp draws sprites from an atlas image.
type DrawAtlasOp struct {
	Atlas                image.Image
	Transforms           []RSTransform
	Tex                  []geom.Rect
	Colors               []paint.Color
	Mode                 paint.BlendMode
	Sampling             paint.Sampling
	Cull                 *geom.Rect
	RenderWithAttributes bool
}

// Kind implements Op.
func (DrawAtlasOp) Kind() OpKind { return OpDrawAtlas }
func (o DrawAtlasOp) size() int {
	n := opHeaderSize + refSize + len(o.Transforms)*4*scalarSize + len(o.Tex)*rectSize + len(o.Colors)*4
	if o.Cull != nil {
		n += rectSize
	}
	return n
}
func (o DrawAtlasOp) dispatch(r Receiver) {
	r.DrawAtlas(o.Atlas, o.Transforms, o.Tex, o.Colors, o.Mode, o.Sampling, o.Cull, o.RenderWithAttributes)
}
func (o DrawAtlasOp) hash(h *hasher) {
	h.image(o.Atlas)
	for _, x := range o.Transforms {
		h.f64(x.SCos)
		h.f64(x.SSin)
		h.f64(x.TX)
		h.f64(x.TY)
	}
	for _, r := range o.Tex {
		h.rect(r)
	}
	for _, c := range o.Colors {
		h.u64(uint64(c))
	}
	h.u64(uint64(o.Mode))
	h.u64(uint64(o.Sampling))
	if o.Cull != nil {
		h.rect(*o.Cull)
	}
	h.bool(o.RenderWithAttributes)
}
func (o DrawAtlasOp) equal(b Op) bool {
	ob, ok := b.(DrawAtlasOp)
	if !ok || o.Mode != ob.Mode || o.Sampling != ob.Sampling || o.RenderWithAttributes != ob.RenderWithAttributes {
		return false
	}
	if (o.Cull == nil) != (ob.Cull == nil) || (o.Cull != nil && *o.Cull != *ob.Cull) {
		return false
	}
	return slices.Equal(o.Transforms, ob.Transforms) && slices.Equal(o.Tex, ob.Tex) &&
		slices.Equal(o.Colors, ob.Colors) && paint.SameImage(o.Atlas, ob.Atlas)
}

// DrawDisplayListOp replays a nested display list.
type DrawDisplayListOp struct {
	List    *DisplayList
	Opacity float64
}

// Kind implements Op.
func (DrawDisplayListOp) Kind() OpKind          { return OpDrawDisplayList }
func (DrawDisplayListOp) size() int             { return opHeaderSize + refSize + scalarSize }
func (o DrawDisplayListOp) dispatch(r Receiver) { r.DrawDisplayList(o.List, o.Opacity) }
func (o DrawDisplayListOp) hash(h *hasher) {
	h.u64(o.List.Fingerprint())
	h.f64(o.Opacity)
}
func (o DrawDisplayListOp) equal(b Op) bool {
	ob, ok := b.(DrawDisplayListOp)
	return ok && o.Opacity == ob.Opacity && o.List.Equals(ob.List)
}

// DrawTextBlobOp draws shaped text with its origin at (X, Y).
type DrawTextBlobOp struct {
	Blob *text.Blob
	X, Y float64
}

// Kind implements Op.
func (DrawTextBlobOp) Kind() OpKind          { return OpDrawTextBlob }
func (DrawTextBlobOp) size() int             { return opHeaderSize + refSize + pointSize }
func (o DrawTextBlobOp) dispatch(r Receiver) { r.DrawTextBlob(o.Blob, o.X, o.Y) }
func (o DrawTextBlobOp) equal(b Op) bool     { return sameOp(o, b) }
func (o DrawTextBlobOp) hash(h *hasher) {
	h.rect(o.Blob.Bounds())
	h.u64(uint64(o.Blob.GlyphCount()))
	h.f64(o.X)
	h.f64(o.Y)
}

// DrawTextFrameOp draws a laid-out paragraph with its origin at (X, Y).
type DrawTextFrameOp struct {
	Frame text.Frame
	X, Y  float64
}

// Kind implements Op.
func (DrawTextFrameOp) Kind() OpKind          { return OpDrawTextFrame }
func (DrawTextFrameOp) size() int             { return opHeaderSize + refSize + pointSize }
func (o DrawTextFrameOp) dispatch(r Receiver) { r.DrawTextFrame(o.Frame, o.X, o.Y) }
func (o DrawTextFrameOp) hash(h *hasher) {
	h.rect(o.Frame.Bounds())
	h.f64(o.X)
	h.f64(o.Y)
}
func (o DrawTextFrameOp) equal(b Op) bool {
	ob, ok := b.(DrawTextFrameOp)
	return ok && o.X == ob.X && o.Y == ob.Y && text.SameFrame(o.Frame, ob.Frame)
}

// DrawShadowOp draws the shadow cast by a path.
type DrawShadowOp struct {
	Path                *geom.Path
	Color               paint.Color
	Elevation           float64
	TransparentOccluder bool
	DPR                 float64
}

// Kind implements Op.
func (DrawShadowOp) Kind() OpKind { return OpDrawShadow }
func (DrawShadowOp) size() int    { return opHeaderSize + refSize + 2*scalarSize + 8 }
func (o DrawShadowOp) dispatch(r Receiver) {
	r.DrawShadow(o.Path, o.Color, o.Elevation, o.TransparentOccluder, o.DPR)
}
func (o DrawShadowOp) hash(h *hasher) {
	h.path(o.Path)
	h.u64(uint64(o.Color))
	h.f64(o.Elevation)
	h.bool(o.TransparentOccluder)
	h.f64(o.DPR)
}
func (o DrawShadowOp) equal(b Op) bool {
	ob, ok := b.(DrawShadowOp)
	return ok && o.Color == ob.Color && o.Elevation == ob.Elevation &&
		o.TransparentOccluder == ob.TransparentOccluder && o.DPR == ob.DPR && o.Path.Equals(ob.Path)
}
