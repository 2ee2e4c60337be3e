package paint

// ColorFilter transforms the color of each pixel produced by a draw.
// This is a sealed interface; only types in this package implement it.
type ColorFilter interface {
	// ModifiesTransparentBlack reports whether the filter turns transparent
	// black into a visible color. Such a filter paints outside the
	// geometry of a draw.
	ModifiesTransparentBlack() bool

	// CanCommuteWithOpacity reports whether applying an opacity before or
	// after the filter gives the same result.
	CanCommuteWithOpacity() bool

	equal(other ColorFilter) bool
}

// BlendColorFilter blends a constant color onto each pixel.
type BlendColorFilter struct {
	Color Color
	Mode  BlendMode
}

// NewBlendColorFilter creates a blend color filter.
func NewBlendColorFilter(c Color, mode BlendMode) *BlendColorFilter {
	return &BlendColorFilter{Color: c, Mode: mode}
}

// ModifiesTransparentBlack implements ColorFilter.
func (f *BlendColorFilter) ModifiesTransparentBlack() bool {
	return f.Mode.ModifiesTransparentBlack(f.Color)
}

// CanCommuteWithOpacity implements ColorFilter.
func (f *BlendColorFilter) CanCommuteWithOpacity() bool {
	switch f.Mode {
	case BlendClear, BlendDestination, BlendSourceIn, BlendDestinationIn:
		return true
	case BlendSourceOver:
		return f.Color.IsTransparent()
	}
	return false
}

func (f *BlendColorFilter) equal(other ColorFilter) bool {
	o, ok := other.(*BlendColorFilter)
	return ok && *f == *o
}

// MatrixColorFilter applies a 4x5 color matrix in row-major order. Rows
// produce R, G, B and A from the input (R, G, B, A, 1). The fifth column is
// a bias in the normalized [0, 1] range.
type MatrixColorFilter struct {
	Matrix [20]float32
}

// NewMatrixColorFilter creates a matrix color filter.
func NewMatrixColorFilter(m [20]float32) *MatrixColorFilter {
	return &MatrixColorFilter{Matrix: m}
}

// IdentityColorMatrix returns the identity 4x5 color matrix.
func IdentityColorMatrix() [20]float32 {
	return [20]float32{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// ModifiesTransparentBlack implements ColorFilter. Transparent black maps
// to the bias column, so the filter modifies it iff any bias is non-zero.
func (f *MatrixColorFilter) ModifiesTransparentBlack() bool {
	m := &f.Matrix
	return m[4] != 0 || m[9] != 0 || m[14] != 0 || m[19] != 0
}

// CanCommuteWithOpacity implements ColorFilter. Alpha must not feed the
// color rows, the alpha row must scale alpha alone by a factor in [0, 1],
// and there must be no alpha bias.
func (f *MatrixColorFilter) CanCommuteWithOpacity() bool {
	m := &f.Matrix
	return m[3] == 0 && m[8] == 0 && m[13] == 0 &&
		m[15] == 0 && m[16] == 0 && m[17] == 0 &&
		m[18] >= 0 && m[18] <= 1 && m[19] == 0
}

func (f *MatrixColorFilter) equal(other ColorFilter) bool {
	o, ok := other.(*MatrixColorFilter)
	return ok && f.Matrix == o.Matrix
}

// SrgbToLinearFilter converts sRGB encoded colors to linear.
type SrgbToLinearFilter struct{}

// ModifiesTransparentBlack implements ColorFilter.
func (*SrgbToLinearFilter) ModifiesTransparentBlack() bool { return false }

// CanCommuteWithOpacity implements ColorFilter.
func (*SrgbToLinearFilter) CanCommuteWithOpacity() bool { return true }

func (*SrgbToLinearFilter) equal(other ColorFilter) bool {
	_, ok := other.(*SrgbToLinearFilter)
	return ok
}

// LinearToSrgbFilter converts linear colors to sRGB encoding.
type LinearToSrgbFilter struct{}

// ModifiesTransparentBlack implements ColorFilter.
func (*LinearToSrgbFilter) ModifiesTransparentBlack() bool { return false }

// CanCommuteWithOpacity implements ColorFilter.
func (*LinearToSrgbFilter) CanCommuteWithOpacity() bool { return true }

func (*LinearToSrgbFilter) equal(other ColorFilter) bool {
	_, ok := other.(*LinearToSrgbFilter)
	return ok
}

// EqualColorFilter reports whether a and b describe the same filter.
// Nil only equals nil.
func EqualColorFilter(a, b ColorFilter) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a == b || a.equal(b)
}
