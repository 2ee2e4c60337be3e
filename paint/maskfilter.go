package paint

// BlurStyle selects which side of a shape edge a mask blur affects.
type BlurStyle uint8

const (
	BlurNormal BlurStyle = iota
	BlurSolid
	BlurOuter
	BlurInner
)

// String returns the blur style name.
func (s BlurStyle) String() string {
	switch s {
	case BlurNormal:
		return "Normal"
	case BlurSolid:
		return "Solid"
	case BlurOuter:
		return "Outer"
	case BlurInner:
		return "Inner"
	default:
		return "Unknown"
	}
}

// MaskFilter modifies the coverage mask of a draw before it is colored.
// This is a sealed interface; only types in this package implement it.
type MaskFilter interface {
	// Outset returns how far the filter spreads coverage beyond the
	// geometry of a draw.
	Outset() float64

	equal(other MaskFilter) bool
}

// BlurMaskFilter blurs the coverage mask.
type BlurMaskFilter struct {
	Style BlurStyle
	Sigma float64

	// OutsetFactor scales sigma to the spread distance.
	// Zero means DefaultBlurOutsetFactor.
	OutsetFactor float64

	// RespectCTM applies the transform to sigma.
	RespectCTM bool
}

// NewBlurMaskFilter creates a blur mask filter that respects the transform.
func NewBlurMaskFilter(style BlurStyle, sigma float64) *BlurMaskFilter {
	return &BlurMaskFilter{Style: style, Sigma: sigma, RespectCTM: true}
}

// Outset implements MaskFilter.
func (f *BlurMaskFilter) Outset() float64 {
	return f.Sigma * outsetFactor(f.OutsetFactor)
}

func (f *BlurMaskFilter) equal(other MaskFilter) bool {
	o, ok := other.(*BlurMaskFilter)
	return ok && f.Style == o.Style && f.Sigma == o.Sigma && f.RespectCTM == o.RespectCTM &&
		outsetFactor(f.OutsetFactor) == outsetFactor(o.OutsetFactor)
}

// EqualMaskFilter reports whether a and b describe the same filter.
// Nil only equals nil.
func EqualMaskFilter(a, b MaskFilter) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a == b || a.equal(b)
}
