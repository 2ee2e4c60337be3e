package paint

// Default stroke parameters.
const (
	DefaultStrokeMiter = 4.0
)

// Paint is a snapshot of every attribute that can affect a draw.
//
// The zero Paint is transparent and therefore draws nothing; use Default
// for the identity attributes.
type Paint struct {
	Color        Color
	BlendMode    BlendMode
	Style        DrawStyle
	StrokeWidth  float64
	StrokeMiter  float64
	StrokeCap    StrokeCap
	StrokeJoin   StrokeJoin
	AntiAlias    bool
	InvertColors bool

	ColorSource ColorSource
	ColorFilter ColorFilter
	ImageFilter ImageFilter
	MaskFilter  MaskFilter
}

// Default returns opaque black, SourceOver, fill, hairline width, miter
// limit 4, butt caps, miter joins and no filters.
func Default() Paint {
	return Paint{
		Color:       Black,
		BlendMode:   BlendSourceOver,
		Style:       StyleFill,
		StrokeMiter: DefaultStrokeMiter,
		StrokeCap:   CapButt,
		StrokeJoin:  JoinMiter,
	}
}

// New returns the default paint with the given color.
func New(c Color) Paint {
	p := Default()
	p.Color = c
	return p
}

// Equals reports whether p and o hold the same attributes.
func (p *Paint) Equals(o *Paint) bool {
	return p.Color == o.Color &&
		p.BlendMode == o.BlendMode &&
		p.Style == o.Style &&
		p.StrokeWidth == o.StrokeWidth &&
		p.StrokeMiter == o.StrokeMiter &&
		p.StrokeCap == o.StrokeCap &&
		p.StrokeJoin == o.StrokeJoin &&
		p.AntiAlias == o.AntiAlias &&
		p.InvertColors == o.InvertColors &&
		EqualColorSource(p.ColorSource, o.ColorSource) &&
		EqualColorFilter(p.ColorFilter, o.ColorFilter) &&
		EqualImageFilter(p.ImageFilter, o.ImageFilter) &&
		EqualMaskFilter(p.MaskFilter, o.MaskFilter)
}

// IsDefault reports whether p equals Default().
func (p *Paint) IsDefault() bool {
	d := Default()
	return p.Equals(&d)
}

// Flags describes which attributes an operation consults.
type Flags uint16

const (
	UsesColor Flags = 1 << iota
	UsesAlpha
	UsesBlend
	UsesColorFilter
	UsesImageFilter
	UsesMaskFilter
	UsesStroke
	UsesAntiAlias

	// IgnoresPaint marks operations that take no attributes at all.
	IgnoresPaint Flags = 0

	// ShapeFlags are consulted by geometric primitives.
	ShapeFlags = UsesColor | UsesAlpha | UsesBlend | UsesColorFilter |
		UsesImageFilter | UsesMaskFilter | UsesStroke | UsesAntiAlias

	// FloodFlags are consulted by draws that cover the whole clip.
	FloodFlags = UsesColor | UsesAlpha | UsesBlend | UsesColorFilter | UsesImageFilter

	// ImageFlags are consulted by image draws rendered with attributes.
	ImageFlags = UsesAlpha | UsesBlend | UsesColorFilter | UsesImageFilter |
		UsesMaskFilter | UsesAntiAlias
)

// Has reports whether all bits in o are set.
func (f Flags) Has(o Flags) bool {
	return f&o == o
}

// Effect classifies what a draw does to the destination.
type Effect uint8

const (
	// EffectNone means the draw cannot change any pixel and may be dropped.
	EffectNone Effect = iota
	// EffectPaints means the draw changes pixels under its geometry.
	EffectPaints
	// EffectAffectsAll means the draw may change pixels even where its
	// source is transparent.
	EffectAffectsAll
)

// String returns the effect name.
func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "None"
	case EffectPaints:
		return "Paints"
	case EffectAffectsAll:
		return "AffectsAll"
	default:
		return "Unknown"
	}
}

// Effect determines whether an operation consulting the given attributes
// changes the destination.
func (p *Paint) Effect(flags Flags) Effect {
	if flags.Has(UsesBlend) {
		switch {
		case p.BlendMode.LeavesDestination():
			return EffectNone
		case p.BlendMode.AffectsTransparentSource():
			return EffectAffectsAll
		}
	}
	if p.EffectiveColorTransparent(flags) {
		return EffectNone
	}
	return EffectPaints
}

// EffectiveColorTransparent reports whether the source of an operation
// consulting the given attributes is known to be fully transparent after
// the color source and filters are applied.
func (p *Paint) EffectiveColorTransparent(flags Flags) bool {
	var transparent bool
	switch {
	case flags.Has(UsesColor):
		transparent = p.ColorSource == nil && p.Color.IsTransparent()
	case flags.Has(UsesAlpha):
		transparent = p.Color.IsTransparent()
	default:
		return false
	}
	if !transparent {
		return false
	}
	if flags.Has(UsesImageFilter) && p.ImageFilter != nil && p.ImageFilter.ModifiesTransparentBlack() {
		return false
	}
	if flags.Has(UsesColorFilter) && p.ColorFilter != nil && p.ColorFilter.ModifiesTransparentBlack() {
		return false
	}
	return true
}

// NopsOnTransparency reports whether transparent source pixels leave the
// destination untouched. When false, an operation using p affects the
// entire clip rather than only its geometry.
func (p *Paint) NopsOnTransparency() bool {
	if p.ImageFilter != nil && p.ImageFilter.ModifiesTransparentBlack() {
		return false
	}
	if p.ColorFilter != nil && p.ColorFilter.ModifiesTransparentBlack() {
		return false
	}
	return !p.BlendMode.AffectsTransparentSource()
}

// IsOpacityCompatible reports whether a group opacity may be folded into
// draws rendered with p.
func (p *Paint) IsOpacityCompatible() bool {
	return p.ColorFilter == nil && !p.InvertColors && p.BlendMode.IsOpacityCompatible()
}

// IsStroked reports whether draws using p include an outline.
func (p *Paint) IsStroked() bool {
	return p.Style.Strokes()
}
