package paint

import "github.com/gogpu/displaylist/geom"

// DefaultBlurOutsetFactor is the number of sigmas a blur is assumed to
// spread when no factor is configured.
const DefaultBlurOutsetFactor = 3.0

// ImageFilter processes the rendered output of a draw or a layer.
// This is a sealed interface; only types in this package implement it.
type ImageFilter interface {
	// MapLocalBounds returns the area affected by the filter when its input
	// covers r. The second result is false when the output is unbounded.
	MapLocalBounds(r geom.Rect) (geom.Rect, bool)

	// ModifiesTransparentBlack reports whether the filter produces visible
	// pixels from a transparent input.
	ModifiesTransparentBlack() bool

	equal(other ImageFilter) bool
}

// BlurImageFilter applies a Gaussian blur.
type BlurImageFilter struct {
	SigmaX, SigmaY float64
	Tile           TileMode

	// OutsetFactor scales sigma to the distance the blur spreads.
	// Zero means DefaultBlurOutsetFactor.
	OutsetFactor float64
}

// NewBlurImageFilter creates a blur filter with the default outset factor.
func NewBlurImageFilter(sigmaX, sigmaY float64, tile TileMode) *BlurImageFilter {
	return &BlurImageFilter{SigmaX: sigmaX, SigmaY: sigmaY, Tile: tile}
}

// MapLocalBounds implements ImageFilter.
func (f *BlurImageFilter) MapLocalBounds(r geom.Rect) (geom.Rect, bool) {
	k := outsetFactor(f.OutsetFactor)
	return r.Outset(f.SigmaX*k, f.SigmaY*k), true
}

// ModifiesTransparentBlack implements ImageFilter.
func (*BlurImageFilter) ModifiesTransparentBlack() bool { return false }

func (f *BlurImageFilter) equal(other ImageFilter) bool {
	o, ok := other.(*BlurImageFilter)
	return ok && f.SigmaX == o.SigmaX && f.SigmaY == o.SigmaY && f.Tile == o.Tile &&
		outsetFactor(f.OutsetFactor) == outsetFactor(o.OutsetFactor)
}

// DilateImageFilter grows opaque regions by a radius.
type DilateImageFilter struct {
	RadiusX, RadiusY float64
}

// NewDilateImageFilter creates a dilate filter.
func NewDilateImageFilter(rx, ry float64) *DilateImageFilter {
	return &DilateImageFilter{RadiusX: rx, RadiusY: ry}
}

// MapLocalBounds implements ImageFilter.
func (f *DilateImageFilter) MapLocalBounds(r geom.Rect) (geom.Rect, bool) {
	return r.Outset(f.RadiusX, f.RadiusY), true
}

// ModifiesTransparentBlack implements ImageFilter.
func (*DilateImageFilter) ModifiesTransparentBlack() bool { return false }

func (f *DilateImageFilter) equal(other ImageFilter) bool {
	o, ok := other.(*DilateImageFilter)
	return ok && *f == *o
}

// ErodeImageFilter shrinks opaque regions by a radius.
type ErodeImageFilter struct {
	RadiusX, RadiusY float64
}

// NewErodeImageFilter creates an erode filter.
func NewErodeImageFilter(rx, ry float64) *ErodeImageFilter {
	return &ErodeImageFilter{RadiusX: rx, RadiusY: ry}
}

// MapLocalBounds implements ImageFilter. Eroding away the whole input
// yields an empty rectangle.
func (f *ErodeImageFilter) MapLocalBounds(r geom.Rect) (geom.Rect, bool) {
	res := r.Inset(f.RadiusX, f.RadiusY)
	if res.IsEmpty() {
		return geom.Rect{}, true
	}
	return res, true
}

// ModifiesTransparentBlack implements ImageFilter.
func (*ErodeImageFilter) ModifiesTransparentBlack() bool { return false }

func (f *ErodeImageFilter) equal(other ImageFilter) bool {
	o, ok := other.(*ErodeImageFilter)
	return ok && *f == *o
}

// MatrixImageFilter transforms its input by a matrix.
type MatrixImageFilter struct {
	Matrix   geom.Matrix
	Sampling Sampling
}

// NewMatrixImageFilter creates a matrix filter.
func NewMatrixImageFilter(m geom.Matrix, sampling Sampling) *MatrixImageFilter {
	return &MatrixImageFilter{Matrix: m, Sampling: sampling}
}

// MapLocalBounds implements ImageFilter.
func (f *MatrixImageFilter) MapLocalBounds(r geom.Rect) (geom.Rect, bool) {
	if !f.Matrix.IsFinite() {
		return geom.Rect{}, false
	}
	return f.Matrix.MapRect(r), true
}

// ModifiesTransparentBlack implements ImageFilter.
func (*MatrixImageFilter) ModifiesTransparentBlack() bool { return false }

func (f *MatrixImageFilter) equal(other ImageFilter) bool {
	o, ok := other.(*MatrixImageFilter)
	return ok && f.Matrix == o.Matrix && f.Sampling == o.Sampling
}

// ComposeImageFilter applies Inner first and then Outer.
type ComposeImageFilter struct {
	Outer, Inner ImageFilter
}

// NewComposeImageFilter creates a composed filter. A nil stage is skipped.
func NewComposeImageFilter(outer, inner ImageFilter) *ComposeImageFilter {
	return &ComposeImageFilter{Outer: outer, Inner: inner}
}

// MapLocalBounds implements ImageFilter.
func (f *ComposeImageFilter) MapLocalBounds(r geom.Rect) (geom.Rect, bool) {
	ok := true
	if f.Inner != nil {
		if r, ok = f.Inner.MapLocalBounds(r); !ok {
			return geom.Rect{}, false
		}
	}
	if f.Outer != nil {
		if r, ok = f.Outer.MapLocalBounds(r); !ok {
			return geom.Rect{}, false
		}
	}
	return r, true
}

// ModifiesTransparentBlack implements ImageFilter.
func (f *ComposeImageFilter) ModifiesTransparentBlack() bool {
	return (f.Inner != nil && f.Inner.ModifiesTransparentBlack()) ||
		(f.Outer != nil && f.Outer.ModifiesTransparentBlack())
}

func (f *ComposeImageFilter) equal(other ImageFilter) bool {
	o, ok := other.(*ComposeImageFilter)
	return ok && EqualImageFilter(f.Outer, o.Outer) && EqualImageFilter(f.Inner, o.Inner)
}

// ColorFilterImageFilter applies a color filter to its input.
type ColorFilterImageFilter struct {
	Filter ColorFilter
}

// NewColorFilterImageFilter wraps a color filter.
func NewColorFilterImageFilter(cf ColorFilter) *ColorFilterImageFilter {
	return &ColorFilterImageFilter{Filter: cf}
}

// MapLocalBounds implements ImageFilter. A color filter that modifies
// transparent black floods everything, so the result is unbounded.
func (f *ColorFilterImageFilter) MapLocalBounds(r geom.Rect) (geom.Rect, bool) {
	if f.ModifiesTransparentBlack() {
		return geom.Rect{}, false
	}
	return r, true
}

// ModifiesTransparentBlack implements ImageFilter.
func (f *ColorFilterImageFilter) ModifiesTransparentBlack() bool {
	return f.Filter != nil && f.Filter.ModifiesTransparentBlack()
}

func (f *ColorFilterImageFilter) equal(other ImageFilter) bool {
	o, ok := other.(*ColorFilterImageFilter)
	return ok && EqualColorFilter(f.Filter, o.Filter)
}

// EqualImageFilter reports whether a and b describe the same filter.
// Nil only equals nil.
func EqualImageFilter(a, b ImageFilter) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a == b || a.equal(b)
}

func outsetFactor(k float64) float64 {
	if k <= 0 {
		return DefaultBlurOutsetFactor
	}
	return k
}
