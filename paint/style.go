package paint

// DrawStyle selects whether geometry is filled, stroked or both.
type DrawStyle uint8

const (
	// StyleFill fills the interior of the geometry.
	StyleFill DrawStyle = iota
	// StyleStroke strokes the outline of the geometry.
	StyleStroke
	// StyleStrokeAndFill fills the interior and strokes the outline.
	StyleStrokeAndFill
)

// String returns the style name.
func (s DrawStyle) String() string {
	switch s {
	case StyleFill:
		return "Fill"
	case StyleStroke:
		return "Stroke"
	case StyleStrokeAndFill:
		return "StrokeAndFill"
	default:
		return "Unknown"
	}
}

// Strokes reports whether the style includes an outline.
func (s DrawStyle) Strokes() bool {
	return s == StyleStroke || s == StyleStrokeAndFill
}

// StrokeCap is the shape of stroke end points.
type StrokeCap uint8

const (
	// CapButt ends the stroke flush with the end point.
	CapButt StrokeCap = iota
	// CapRound extends the stroke with a half circle.
	CapRound
	// CapSquare extends the stroke with a half square.
	CapSquare
)

// String returns the cap name.
func (c StrokeCap) String() string {
	switch c {
	case CapButt:
		return "Butt"
	case CapRound:
		return "Round"
	case CapSquare:
		return "Square"
	default:
		return "Unknown"
	}
}

// StrokeJoin is the shape of corners between stroke segments.
type StrokeJoin uint8

const (
	// JoinMiter extends the outer edges until they meet, up to the miter limit.
	JoinMiter StrokeJoin = iota
	// JoinRound rounds corners with a circular arc.
	JoinRound
	// JoinBevel cuts corners flat.
	JoinBevel
)

// String returns the join name.
func (j StrokeJoin) String() string {
	switch j {
	case JoinMiter:
		return "Miter"
	case JoinRound:
		return "Round"
	case JoinBevel:
		return "Bevel"
	default:
		return "Unknown"
	}
}
