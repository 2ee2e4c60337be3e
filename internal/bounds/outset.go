package bounds

import (
	"math"

	"github.com/gogpu/displaylist/geom"
	"github.com/gogpu/displaylist/paint"
)

// MinStrokeHalfWidth is the outset used for hairline strokes.
const MinStrokeHalfWidth = 0.01

// Shadow light parameters. The light is treated as directional, so the
// blur and offset of a spot shadow grow linearly with the occluder height.
const (
	shadowLightHeight = 600
	shadowLightRadius = 800
)

// Geometry describes the joins and caps an operation can produce.
type Geometry struct {
	// Stroked forces stroking regardless of the paint style.
	Stroked bool
	// Joins is set when the outline has corners no sharper than 90 degrees.
	Joins bool
	// AcuteJoins is set when corners sharper than 90 degrees can occur.
	AcuteJoins bool
	// DiagonalCaps is set when end caps can point in a diagonal direction.
	DiagonalCaps bool
}

// StrokeOutset returns how far a stroke drawn with p extends beyond the
// geometry. Zero means the paint does not stroke.
func StrokeOutset(p *paint.Paint, g Geometry) float64 {
	if !g.Stroked && !p.Style.Strokes() {
		return 0
	}
	pad := 1.0
	if p.StrokeJoin == paint.JoinMiter {
		switch {
		case g.AcuteJoins:
			pad = math.Max(pad, p.StrokeMiter)
		case g.Joins:
			pad = math.Sqrt2
		}
	}
	if p.StrokeCap == paint.CapSquare && g.DiagonalCaps {
		pad = math.Max(pad, math.Sqrt2)
	}
	return pad * math.Max(p.StrokeWidth*0.5, MinStrokeHalfWidth)
}

// ForPaint adjusts the geometric bounds r of a draw for the paint
// attributes it consults. The second result is false when an image filter
// cannot bound its output, making the draw unbounded.
func ForPaint(r geom.Rect, p *paint.Paint, flags paint.Flags, g Geometry, geometric bool) (geom.Rect, bool) {
	if flags == paint.IgnoresPaint {
		return r, true
	}
	if geometric && flags.Has(paint.UsesStroke) {
		if pad := StrokeOutset(p, g); pad > 0 {
			r = r.Outset(pad, pad)
		}
	}
	if flags.Has(paint.UsesMaskFilter) && p.MaskFilter != nil {
		pad := p.MaskFilter.Outset()
		r = r.Outset(pad, pad)
	}
	if flags.Has(paint.UsesImageFilter) && p.ImageFilter != nil {
		return p.ImageFilter.MapLocalBounds(r)
	}
	return r, true
}

// ShadowOutset returns the distance a shadow cast by an occluder at the
// given elevation spreads beyond the occluder outline.
func ShadowOutset(elevation, dpr float64) float64 {
	z := elevation * dpr
	if z <= 0 || math.IsNaN(z) {
		return 0
	}
	ambient := z * 0.5
	spot := z*shadowLightRadius/shadowLightHeight + z
	return math.Max(ambient, spot)
}

// Points returns the bounds of pts. NaN or infinite points make the
// result empty.
func Points(pts []geom.Point) geom.Rect {
	for _, p := range pts {
		if !p.IsFinite() {
			return geom.Rect{}
		}
	}
	return geom.BoundsOfPoints(pts)
}
