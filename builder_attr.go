package displaylist

import (
	"math"

	"github.com/gogpu/displaylist/paint"
)

// SetAntiAlias sets whether draws are anti-aliased.
func (b *Builder) SetAntiAlias(aa bool) {
	if b.attrs.AntiAlias != aa {
		b.attrs.AntiAlias = aa
		b.recordState(SetAntiAliasOp{AntiAlias: aa})
	}
}

// SetInvertColors sets whether draws invert their colors.
func (b *Builder) SetInvertColors(invert bool) {
	if b.attrs.InvertColors != invert {
		b.attrs.InvertColors = invert
		b.recordState(SetInvertColorsOp{Invert: invert})
	}
}

// SetStrokeCap sets the cap used at the ends of open strokes.
func (b *Builder) SetStrokeCap(c paint.StrokeCap) {
	if b.attrs.StrokeCap != c {
		b.attrs.StrokeCap = c
		b.recordState(SetStrokeCapOp{Cap: c})
	}
}

// SetStrokeJoin sets the join used at stroke corners.
func (b *Builder) SetStrokeJoin(j paint.StrokeJoin) {
	if b.attrs.StrokeJoin != j {
		b.attrs.StrokeJoin = j
		b.recordState(SetStrokeJoinOp{Join: j})
	}
}

// SetDrawStyle sets whether shapes are filled, stroked or both.
func (b *Builder) SetDrawStyle(s paint.DrawStyle) {
	if b.attrs.Style != s {
		b.attrs.Style = s
		b.recordState(SetDrawStyleOp{Style: s})
	}
}

// SetStrokeWidth sets the stroke width. Zero draws hairlines. Non-finite
// widths are ignored.
func (b *Builder) SetStrokeWidth(width float64) {
	if math.IsNaN(width) || math.IsInf(width, 0) {
		return
	}
	if b.attrs.StrokeWidth != width {
		b.attrs.StrokeWidth = width
		b.recordState(SetStrokeWidthOp{Width: width})
	}
}

// SetStrokeMiter sets the miter limit. Non-finite limits are ignored.
func (b *Builder) SetStrokeMiter(limit float64) {
	if math.IsNaN(limit) || math.IsInf(limit, 0) {
		return
	}
	if b.attrs.StrokeMiter != limit {
		b.attrs.StrokeMiter = limit
		b.recordState(SetStrokeMiterOp{Limit: limit})
	}
}

// SetColor sets the draw color.
func (b *Builder) SetColor(c paint.Color) {
	if b.attrs.Color != c {
		b.attrs.Color = c
		b.recordState(SetColorOp{Color: c})
	}
}

// SetBlendMode sets the blend mode.
func (b *Builder) SetBlendMode(mode paint.BlendMode) {
	if b.attrs.BlendMode != mode {
		b.attrs.BlendMode = mode
		b.recordState(SetBlendModeOp{Mode: mode})
	}
}

// SetColorSource sets the color source, or clears it when src is nil.
func (b *Builder) SetColorSource(src paint.ColorSource) {
	if !paint.EqualColorSource(b.attrs.ColorSource, src) {
		b.attrs.ColorSource = src
		b.recordState(SetColorSourceOp{Source: src})
	}
}

// SetColorFilter sets the color filter, or clears it when f is nil.
func (b *Builder) SetColorFilter(f paint.ColorFilter) {
	if !paint.EqualColorFilter(b.attrs.ColorFilter, f) {
		b.attrs.ColorFilter = f
		b.recordState(SetColorFilterOp{Filter: f})
	}
}

// SetImageFilter sets the image filter, or clears it when f is nil.
func (b *Builder) SetImageFilter(f paint.ImageFilter) {
	if !paint.EqualImageFilter(b.attrs.ImageFilter, f) {
		b.attrs.ImageFilter = f
		b.recordState(SetImageFilterOp{Filter: f})
	}
}

// SetMaskFilter sets the mask filter, or clears it when f is nil.
func (b *Builder) SetMaskFilter(f paint.MaskFilter) {
	if !paint.EqualMaskFilter(b.attrs.MaskFilter, f) {
		b.attrs.MaskFilter = f
		b.recordState(SetMaskFilterOp{Filter: f})
	}
}

// SetAttributes applies every attribute of p that differs from the current
// attributes.
func (b *Builder) SetAttributes(p paint.Paint) {
	b.SetAntiAlias(p.AntiAlias)
	b.SetInvertColors(p.InvertColors)
	b.SetStrokeCap(p.StrokeCap)
	b.SetStrokeJoin(p.StrokeJoin)
	b.SetDrawStyle(p.Style)
	b.SetStrokeWidth(p.StrokeWidth)
	b.SetStrokeMiter(p.StrokeMiter)
	b.SetColor(p.Color)
	b.SetBlendMode(p.BlendMode)
	b.SetColorSource(p.ColorSource)
	b.SetColorFilter(p.ColorFilter)
	b.SetImageFilter(p.ImageFilter)
	b.SetMaskFilter(p.MaskFilter)
}
