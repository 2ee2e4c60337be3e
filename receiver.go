package displaylist

import (
	"image"

	"github.com/gogpu/displaylist/geom"
	"github.com/gogpu/displaylist/paint"
	"github.com/gogpu/displaylist/text"
	"github.com/gogpu/displaylist/vertices"
)

// AttributeReceiver receives changes to the attributes used by later draws.
type AttributeReceiver interface {
	SetAntiAlias(aa bool)
	SetInvertColors(invert bool)
	SetStrokeCap(c paint.StrokeCap)
	SetStrokeJoin(j paint.StrokeJoin)
	SetDrawStyle(s paint.DrawStyle)
	SetStrokeWidth(width float64)
	SetStrokeMiter(limit float64)
	SetColor(c paint.Color)
	SetBlendMode(mode paint.BlendMode)
	SetColorSource(src paint.ColorSource)
	SetColorFilter(f paint.ColorFilter)
	SetImageFilter(f paint.ImageFilter)
	SetMaskFilter(f paint.MaskFilter)
}

// StateReceiver receives save and restore operations.
//
// Restore reverts the attributes, transform and clip to their values at the
// matching Save or SaveLayer.
type StateReceiver interface {
	Save()
	// SaveLayer opens an offscreen layer covering bounds. layerPaint is
	// nil unless opts.RendersWithAttributes is set; backdrop is nil unless
	// opts.ContainsBackdropFilter is set.
	SaveLayer(bounds geom.Rect, opts SaveLayerOptions, layerPaint *paint.Paint, backdrop paint.ImageFilter)
	Restore()
}

// TransformReceiver receives changes to the current transform. Each
// transform is applied before the current one (in local coordinates).
type TransformReceiver interface {
	Translate(tx, ty float64)
	Scale(sx, sy float64)
	// Rotate rotates by degrees, clockwise on screen.
	Rotate(degrees float64)
	Skew(sx, sy float64)
	Transform2DAffine(mxx, mxy, mxt, myx, myy, myt float64)
	TransformFullPerspective(m geom.Matrix)
	// TransformReset replaces the current transform with the identity.
	TransformReset()
}

// ClipReceiver receives clip operations.
type ClipReceiver interface {
	ClipRect(r geom.Rect, op ClipOp, antiAlias bool)
	ClipOval(bounds geom.Rect, op ClipOp, antiAlias bool)
	ClipRRect(rr geom.RRect, op ClipOp, antiAlias bool)
	ClipPath(p *geom.Path, op ClipOp, antiAlias bool)
}

// DrawReceiver receives draw operations. Draws use the current attributes
// unless stated otherwise.
type DrawReceiver interface {
	// DrawColor floods the clip with c using mode, ignoring the attributes.
	DrawColor(c paint.Color, mode paint.BlendMode)
	DrawPaint()
	DrawLine(p0, p1 geom.Point)
	DrawDashedLine(p0, p1 geom.Point, onLength, offLength float64)
	DrawRect(r geom.Rect)
	DrawOval(bounds geom.Rect)
	DrawCircle(center geom.Point, radius float64)
	DrawRRect(rr geom.RRect)
	DrawDRRect(outer, inner geom.RRect)
	DrawPath(p *geom.Path)
	// DrawArc draws the arc of the oval inscribed in bounds starting at
	// start degrees and spanning sweep degrees.
	DrawArc(bounds geom.Rect, start, sweep float64, useCenter bool)
	DrawPoints(mode PointMode, pts []geom.Point)
	// DrawVertices draws a mesh. mode combines per-vertex colors with the
	// color source.
	DrawVertices(v *vertices.Vertices, mode paint.BlendMode)
	DrawImage(img image.Image, p geom.Point, sampling paint.Sampling, renderWithAttributes bool)
	DrawImageRect(img image.Image, src, dst geom.Rect, sampling paint.Sampling,
		renderWithAttributes bool, constraint SrcRectConstraint)
	// DrawImageNine draws img scaled into dst, stretching only the center
	// rectangle and keeping the corners unscaled.
	DrawImageNine(img image.Image, center, dst geom.Rect, sampling paint.Sampling, renderWithAttributes bool)
	// DrawAtlas draws tex[i] from atlas transformed by xforms[i]. colors
	// is either nil or parallel to xforms. cull, when non-nil, bounds the
	// whole draw.
	DrawAtlas(atlas image.Image, xforms []RSTransform, tex []geom.Rect, colors []paint.Color,
		mode paint.BlendMode, sampling paint.Sampling, cull *geom.Rect, renderWithAttributes bool)
	// DrawDisplayList replays dl with its alpha multiplied by opacity.
	// The attributes are ignored.
	DrawDisplayList(dl *DisplayList, opacity float64)
	DrawTextBlob(blob *text.Blob, x, y float64)
	DrawTextFrame(frame text.Frame, x, y float64)
	// DrawShadow draws the shadow path casts at elevation. The attributes
	// are ignored.
	DrawShadow(path *geom.Path, c paint.Color, elevation float64, transparentOccluder bool, dpr float64)
}

// Receiver consumes a replayed display list. Backends implement it to
// render; the Builder implements it (through Builder.Receiver) to copy.
type Receiver interface {
	AttributeReceiver
	StateReceiver
	TransformReceiver
	ClipReceiver
	DrawReceiver
}

// IgnoreAttributes implements AttributeReceiver by doing nothing. Embed it
// in receivers that do not track attributes.
type IgnoreAttributes struct{}

func (IgnoreAttributes) SetAntiAlias(bool)                {}
func (IgnoreAttributes) SetInvertColors(bool)             {}
func (IgnoreAttributes) SetStrokeCap(paint.StrokeCap)     {}
func (IgnoreAttributes) SetStrokeJoin(paint.StrokeJoin)   {}
func (IgnoreAttributes) SetDrawStyle(paint.DrawStyle)     {}
func (IgnoreAttributes) SetStrokeWidth(float64)           {}
func (IgnoreAttributes) SetStrokeMiter(float64)           {}
func (IgnoreAttributes) SetColor(paint.Color)             {}
func (IgnoreAttributes) SetBlendMode(paint.BlendMode)     {}
func (IgnoreAttributes) SetColorSource(paint.ColorSource) {}
func (IgnoreAttributes) SetColorFilter(paint.ColorFilter) {}
func (IgnoreAttributes) SetImageFilter(paint.ImageFilter) {}
func (IgnoreAttributes) SetMaskFilter(paint.MaskFilter)   {}

// IgnoreState implements StateReceiver by doing nothing.
type IgnoreState struct{}

func (IgnoreState) Save() {}
func (IgnoreState) SaveLayer(geom.Rect, SaveLayerOptions, *paint.Paint, paint.ImageFilter) {
}
func (IgnoreState) Restore() {}

// IgnoreTransforms implements TransformReceiver by doing nothing.
type IgnoreTransforms struct{}

func (IgnoreTransforms) Translate(float64, float64)                                             {}
func (IgnoreTransforms) Scale(float64, float64)                                                 {}
func (IgnoreTransforms) Rotate(float64)                                                         {}
func (IgnoreTransforms) Skew(float64, float64)                                                  {}
func (IgnoreTransforms) Transform2DAffine(float64, float64, float64, float64, float64, float64) {}
func (IgnoreTransforms) TransformFullPerspective(geom.Matrix)                                   {}
func (IgnoreTransforms) TransformReset()                                                        {}

// IgnoreClips implements ClipReceiver by doing nothing.
type IgnoreClips struct{}

func (IgnoreClips) ClipRect(geom.Rect, ClipOp, bool)   {}
func (IgnoreClips) ClipOval(geom.Rect, ClipOp, bool)   {}
func (IgnoreClips) ClipRRect(geom.RRect, ClipOp, bool) {}
func (IgnoreClips) ClipPath(*geom.Path, ClipOp, bool)  {}

// IgnoreDraws implements DrawReceiver by doing nothing.
type IgnoreDraws struct{}

func (IgnoreDraws) DrawColor(paint.Color, paint.BlendMode)                  {}
func (IgnoreDraws) DrawPaint()                                              {}
func (IgnoreDraws) DrawLine(geom.Point, geom.Point)                         {}
func (IgnoreDraws) DrawDashedLine(geom.Point, geom.Point, float64, float64) {}
func (IgnoreDraws) DrawRect(geom.Rect)                                      {}
func (IgnoreDraws) DrawOval(geom.Rect)                                      {}
func (IgnoreDraws) DrawCircle(geom.Point, float64)                          {}
func (IgnoreDraws) DrawRRect(geom.RRect)                                    {}
func (IgnoreDraws) DrawDRRect(geom.RRect, geom.RRect)                       {}
func (IgnoreDraws) DrawPath(*geom.Path)                                     {}
func (IgnoreDraws) DrawArc(geom.Rect, float64, float64, bool)               {}
func (IgnoreDraws) DrawPoints(PointMode, []geom.Point)                      {}
func (IgnoreDraws) DrawVertices(*vertices.Vertices, paint.BlendMode)        {}
func (IgnoreDraws) DrawImage(image.Image, geom.Point, paint.Sampling, bool) {}
func (IgnoreDraws) DrawImageRect(image.Image, geom.Rect, geom.Rect, paint.Sampling, bool, SrcRectConstraint) {
}
func (IgnoreDraws) DrawImageNine(image.Image, geom.Rect, geom.Rect, paint.Sampling, bool) {}
func (IgnoreDraws) DrawAtlas(image.Image, []RSTransform, []geom.Rect, []paint.Color,
	paint.BlendMode, paint.Sampling, *geom.Rect, bool) {
}
func (IgnoreDraws) DrawDisplayList(*DisplayList, float64)                      {}
func (IgnoreDraws) DrawTextBlob(*text.Blob, float64, float64)                  {}
func (IgnoreDraws) DrawTextFrame(text.Frame, float64, float64)                 {}
func (IgnoreDraws) DrawShadow(*geom.Path, paint.Color, float64, bool, float64) {}
