package paint

import (
	"image"
	"reflect"
	"slices"

	"github.com/gogpu/displaylist/geom"
)

// TileMode controls how a color source extends beyond its natural area.
type TileMode uint8

const (
	TileClamp TileMode = iota
	TileRepeat
	TileMirror
	TileDecal
)

// String returns the tile mode name.
func (m TileMode) String() string {
	switch m {
	case TileClamp:
		return "Clamp"
	case TileRepeat:
		return "Repeat"
	case TileMirror:
		return "Mirror"
	case TileDecal:
		return "Decal"
	default:
		return "Unknown"
	}
}

// Sampling selects the image sampling filter.
type Sampling uint8

const (
	SampleNearest Sampling = iota
	SampleLinear
	SampleMipmapLinear
	SampleCubic
)

// String returns the sampling name.
func (s Sampling) String() string {
	switch s {
	case SampleNearest:
		return "Nearest"
	case SampleLinear:
		return "Linear"
	case SampleMipmapLinear:
		return "MipmapLinear"
	case SampleCubic:
		return "Cubic"
	default:
		return "Unknown"
	}
}

// ColorSource supplies per-pixel colors in place of the paint color.
// This is a sealed interface; only types in this package implement it.
type ColorSource interface {
	// IsOpaque reports whether every produced pixel is fully opaque.
	IsOpaque() bool

	equal(other ColorSource) bool
}

// GradientStops holds gradient colors with their positions in [0, 1].
// A nil Positions slice spaces the colors evenly.
type GradientStops struct {
	Colors    []Color
	Positions []float64
}

func (s GradientStops) opaque() bool {
	for _, c := range s.Colors {
		if !c.IsOpaque() {
			return false
		}
	}
	return true
}

func (s GradientStops) equal(o GradientStops) bool {
	return slices.Equal(s.Colors, o.Colors) && slices.Equal(s.Positions, o.Positions)
}

// LinearGradient interpolates colors along the line from Start to End.
type LinearGradient struct {
	Start, End geom.Point
	Stops      GradientStops
	Tile       TileMode
	Matrix     geom.Matrix
}

// NewLinearGradient creates a linear gradient with an identity local matrix.
func NewLinearGradient(start, end geom.Point, stops GradientStops, tile TileMode) *LinearGradient {
	return &LinearGradient{Start: start, End: end, Stops: stops, Tile: tile, Matrix: geom.Identity()}
}

// IsOpaque implements ColorSource.
func (g *LinearGradient) IsOpaque() bool {
	return g.Tile != TileDecal && g.Stops.opaque()
}

func (g *LinearGradient) equal(other ColorSource) bool {
	o, ok := other.(*LinearGradient)
	return ok && g.Start == o.Start && g.End == o.End && g.Tile == o.Tile &&
		g.Matrix == o.Matrix && g.Stops.equal(o.Stops)
}

// RadialGradient interpolates colors outward from Center to Radius.
type RadialGradient struct {
	Center geom.Point
	Radius float64
	Stops  GradientStops
	Tile   TileMode
	Matrix geom.Matrix
}

// NewRadialGradient creates a radial gradient with an identity local matrix.
func NewRadialGradient(center geom.Point, radius float64, stops GradientStops, tile TileMode) *RadialGradient {
	return &RadialGradient{Center: center, Radius: radius, Stops: stops, Tile: tile, Matrix: geom.Identity()}
}

// IsOpaque implements ColorSource.
func (g *RadialGradient) IsOpaque() bool {
	return g.Tile != TileDecal && g.Stops.opaque()
}

func (g *RadialGradient) equal(other ColorSource) bool {
	o, ok := other.(*RadialGradient)
	return ok && g.Center == o.Center && g.Radius == o.Radius && g.Tile == o.Tile &&
		g.Matrix == o.Matrix && g.Stops.equal(o.Stops)
}

// SweepGradient interpolates colors around Center between two angles
// given in degrees.
type SweepGradient struct {
	Center     geom.Point
	StartAngle float64
	EndAngle   float64
	Stops      GradientStops
	Tile       TileMode
	Matrix     geom.Matrix
}

// NewSweepGradient creates a sweep gradient with an identity local matrix.
func NewSweepGradient(center geom.Point, start, end float64, stops GradientStops, tile TileMode) *SweepGradient {
	return &SweepGradient{
		Center: center, StartAngle: start, EndAngle: end,
		Stops: stops, Tile: tile, Matrix: geom.Identity(),
	}
}

// IsOpaque implements ColorSource.
func (g *SweepGradient) IsOpaque() bool {
	return g.Tile != TileDecal && g.Stops.opaque()
}

func (g *SweepGradient) equal(other ColorSource) bool {
	o, ok := other.(*SweepGradient)
	return ok && g.Center == o.Center && g.StartAngle == o.StartAngle &&
		g.EndAngle == o.EndAngle && g.Tile == o.Tile && g.Matrix == o.Matrix &&
		g.Stops.equal(o.Stops)
}

// ImageSource tiles an image.
type ImageSource struct {
	Image    image.Image
	TileX    TileMode
	TileY    TileMode
	Sampling Sampling
	Matrix   geom.Matrix
}

// NewImageSource creates an image color source with an identity local matrix.
func NewImageSource(img image.Image, tileX, tileY TileMode, sampling Sampling) *ImageSource {
	return &ImageSource{Image: img, TileX: tileX, TileY: tileY, Sampling: sampling, Matrix: geom.Identity()}
}

// IsOpaque implements ColorSource.
func (s *ImageSource) IsOpaque() bool {
	if s.TileX == TileDecal || s.TileY == TileDecal || s.Image == nil {
		return false
	}
	if o, ok := s.Image.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return false
}

func (s *ImageSource) equal(other ColorSource) bool {
	o, ok := other.(*ImageSource)
	return ok && SameImage(s.Image, o.Image) && s.TileX == o.TileX && s.TileY == o.TileY &&
		s.Sampling == o.Sampling && s.Matrix == o.Matrix
}

// EqualColorSource reports whether a and b describe the same color source.
// Nil only equals nil.
func EqualColorSource(a, b ColorSource) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a == b || a.equal(b)
}

// SameImage reports whether a and b refer to the same image. Images are
// compared by identity; values whose dynamic type is not comparable are
// never considered the same unless both are nil.
func SameImage(a, b image.Image) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
