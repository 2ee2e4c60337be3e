package paint

// BlendMode controls how a source color is combined with the destination.
type BlendMode uint8

// Blend modes. Porter-Duff modes come first, followed by the separable and
// non-separable advanced modes.
const (
	BlendSourceOver BlendMode = iota
	BlendClear
	BlendSource
	BlendDestination
	BlendDestinationOver
	BlendSourceIn
	BlendDestinationIn
	BlendSourceOut
	BlendDestinationOut
	BlendSourceAtop
	BlendDestinationAtop
	BlendXor
	BlendPlus
	BlendModulate
	// Separable modes
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendMultiply
	// Non-separable modes
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity

	blendModeCount
)

// String returns a human-readable name for the blend mode.
func (mode BlendMode) String() string {
	switch mode {
	case BlendSourceOver:
		return "SourceOver"
	case BlendClear:
		return "Clear"
	case BlendSource:
		return "Source"
	case BlendDestination:
		return "Destination"
	case BlendDestinationOver:
		return "DestinationOver"
	case BlendSourceIn:
		return "SourceIn"
	case BlendDestinationIn:
		return "DestinationIn"
	case BlendSourceOut:
		return "SourceOut"
	case BlendDestinationOut:
		return "DestinationOut"
	case BlendSourceAtop:
		return "SourceAtop"
	case BlendDestinationAtop:
		return "DestinationAtop"
	case BlendXor:
		return "Xor"
	case BlendPlus:
		return "Plus"
	case BlendModulate:
		return "Modulate"
	case BlendScreen:
		return "Screen"
	case BlendOverlay:
		return "Overlay"
	case BlendDarken:
		return "Darken"
	case BlendLighten:
		return "Lighten"
	case BlendColorDodge:
		return "ColorDodge"
	case BlendColorBurn:
		return "ColorBurn"
	case BlendHardLight:
		return "HardLight"
	case BlendSoftLight:
		return "SoftLight"
	case BlendDifference:
		return "Difference"
	case BlendExclusion:
		return "Exclusion"
	case BlendMultiply:
		return "Multiply"
	case BlendHue:
		return "Hue"
	case BlendSaturation:
		return "Saturation"
	case BlendColor:
		return "Color"
	case BlendLuminosity:
		return "Luminosity"
	default:
		return "Unknown"
	}
}

// IsValid reports whether mode is a known blend mode.
func (mode BlendMode) IsValid() bool {
	return mode < blendModeCount
}

// IsPorterDuff reports whether mode is one of the Porter-Duff operators
// (including Plus and Modulate).
func (mode BlendMode) IsPorterDuff() bool {
	return mode <= BlendModulate
}

// AffectsTransparentSource reports whether drawing a fully transparent
// source with this mode still changes the destination. Under these modes
// a draw can never be skipped as a no-op.
func (mode BlendMode) AffectsTransparentSource() bool {
	switch mode {
	case BlendClear, BlendSource, BlendSourceIn, BlendDestinationIn,
		BlendSourceOut, BlendDestinationAtop, BlendModulate:
		return true
	}
	return false
}

// LeavesDestination reports whether the mode never changes the destination.
func (mode BlendMode) LeavesDestination() bool {
	return mode == BlendDestination
}

// IsOpacityCompatible reports whether a group opacity can be multiplied into
// each draw instead of compositing the group once.
func (mode BlendMode) IsOpacityCompatible() bool {
	return mode == BlendSourceOver
}

// ModifiesTransparentBlack reports whether a blend color filter using this
// mode with the given color maps transparent black to a visible color.
func (mode BlendMode) ModifiesTransparentBlack(c Color) bool {
	switch mode {
	case BlendClear, BlendDestination, BlendSourceIn, BlendDestinationIn,
		BlendDestinationOut, BlendSourceAtop, BlendModulate:
		return false
	}
	return !c.IsTransparent()
}
