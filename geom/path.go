package geom

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new contour at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo adds a straight segment.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo adds a quadratic Bezier segment.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo adds a cubic Bezier segment.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current contour.
type Close struct{}

func (Close) isPathElement() {}

// FillType selects how the interior of a path is computed.
type FillType uint8

const (
	// FillNonZero fills regions with a non-zero winding number.
	FillNonZero FillType = iota
	// FillEvenOdd fills regions with an odd crossing count.
	FillEvenOdd
)

// String returns the fill type name.
func (f FillType) String() string {
	if f == FillEvenOdd {
		return "EvenOdd"
	}
	return "NonZero"
}

type shapeHint uint8

const (
	shapeNone shapeHint = iota
	shapeRect
	shapeOval
	shapeRRect
)

// Path is a sequence of contours with a fill rule.
//
// A path built from a single AddRect, AddOval or AddRRect call remembers
// the shape so that consumers can use the specialised primitive.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
	fill     FillType
	inverse  bool

	hint      shapeHint
	hintRRect RRect
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo starts a new contour.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
	p.hint = shapeNone
}

// LineTo adds a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
	p.hint = shapeNone
}

// QuadraticTo adds a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
	p.hint = shapeNone
}

// CubicTo adds a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
	p.hint = shapeNone
}

// Close closes the current contour.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// SetFillType sets the fill rule.
func (p *Path) SetFillType(f FillType) {
	p.fill = f
}

// FillType returns the fill rule.
func (p *Path) FillType() FillType {
	return p.fill
}

// SetInverseFill marks the path as filling everything outside its
// contours.
func (p *Path) SetInverseFill(inverse bool) {
	p.inverse = inverse
}

// IsInverseFill reports whether the path fills its exterior.
func (p *Path) IsInverseFill() bool {
	return p.inverse
}

// Elements returns the path elements. The slice must not be modified.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// AddRect appends a closed clockwise rectangle contour.
func (p *Path) AddRect(r Rect) {
	r = r.Sorted()
	empty := p.IsEmpty()
	p.MoveTo(r.Left, r.Top)
	p.LineTo(r.Right, r.Top)
	p.LineTo(r.Right, r.Bottom)
	p.LineTo(r.Left, r.Bottom)
	p.Close()
	if empty {
		p.hint = shapeRect
		p.hintRRect = RRectFromRect(r)
	}
}

// AddOval appends an ellipse inscribed in r as four cubic segments.
func (p *Path) AddOval(r Rect) {
	r = r.Sorted()
	empty := p.IsEmpty()
	p.addRRectContour(RRectOval(r))
	if empty {
		p.hint = shapeOval
		p.hintRRect = RRectOval(r)
	}
}

// AddRRect appends a rounded rectangle contour.
func (p *Path) AddRRect(rr RRect) {
	empty := p.IsEmpty()
	p.addRRectContour(rr)
	if empty {
		switch {
		case rr.IsRect():
			p.hint = shapeRect
		case rr.IsOval():
			p.hint = shapeOval
		default:
			p.hint = shapeRRect
		}
		p.hintRRect = rr
	}
}

// kappa is the cubic Bezier control point distance for circle approximation.
// Equal to 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498307936

func (p *Path) addRRectContour(rr RRect) {
	r := rr.Rect
	ul, ur := rr.Radii[UpperLeft], rr.Radii[UpperRight]
	lr, ll := rr.Radii[LowerRight], rr.Radii[LowerLeft]

	p.MoveTo(r.Left+ul.X, r.Top)
	p.LineTo(r.Right-ur.X, r.Top)
	if ur.X > 0 && ur.Y > 0 {
		p.CubicTo(r.Right-ur.X+ur.X*kappa, r.Top, r.Right, r.Top+ur.Y-ur.Y*kappa, r.Right, r.Top+ur.Y)
	}
	p.LineTo(r.Right, r.Bottom-lr.Y)
	if lr.X > 0 && lr.Y > 0 {
		p.CubicTo(r.Right, r.Bottom-lr.Y+lr.Y*kappa, r.Right-lr.X+lr.X*kappa, r.Bottom, r.Right-lr.X, r.Bottom)
	}
	p.LineTo(r.Left+ll.X, r.Bottom)
	if ll.X > 0 && ll.Y > 0 {
		p.CubicTo(r.Left+ll.X-ll.X*kappa, r.Bottom, r.Left, r.Bottom-ll.Y+ll.Y*kappa, r.Left, r.Bottom-ll.Y)
	}
	p.LineTo(r.Left, r.Top+ul.Y)
	if ul.X > 0 && ul.Y > 0 {
		p.CubicTo(r.Left, r.Top+ul.Y-ul.Y*kappa, r.Left+ul.X-ul.X*kappa, r.Top, r.Left+ul.X, r.Top)
	}
	p.Close()
}

// IsRect reports whether the path was built as a single rectangle.
func (p *Path) IsRect() (Rect, bool) {
	if p.hint != shapeRect {
		return Rect{}, false
	}
	return p.hintRRect.Rect, true
}

// IsOval reports whether the path was built as a single ellipse.
func (p *Path) IsOval() (Rect, bool) {
	if p.hint != shapeOval {
		return Rect{}, false
	}
	return p.hintRRect.Rect, true
}

// IsRRect reports whether the path was built as a single rounded rectangle
// that is neither a plain rectangle nor an ellipse.
func (p *Path) IsRRect() (RRect, bool) {
	if p.hint != shapeRRect {
		return RRect{}, false
	}
	return p.hintRRect, true
}

// Bounds returns the bounding box of all points including curve control
// points. The control box always contains the curve.
func (p *Path) Bounds() Rect {
	first := true
	var b Rect
	add := func(pt Point) {
		if first {
			b = Rect{pt.X, pt.Y, pt.X, pt.Y}
			first = false
			return
		}
		b.Left = math.Min(b.Left, pt.X)
		b.Top = math.Min(b.Top, pt.Y)
		b.Right = math.Max(b.Right, pt.X)
		b.Bottom = math.Max(b.Bottom, pt.Y)
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			add(e.Point)
		case LineTo:
			add(e.Point)
		case QuadTo:
			add(e.Control)
			add(e.Point)
		case CubicTo:
			add(e.Control1)
			add(e.Control2)
			add(e.Point)
		}
	}
	return b
}

// IsFinite reports whether every point in the path is finite.
func (p *Path) IsFinite() bool {
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			if !e.Point.IsFinite() {
				return false
			}
		case LineTo:
			if !e.Point.IsFinite() {
				return false
			}
		case QuadTo:
			if !e.Control.IsFinite() || !e.Point.IsFinite() {
				return false
			}
		case CubicTo:
			if !e.Control1.IsFinite() || !e.Control2.IsFinite() || !e.Point.IsFinite() {
				return false
			}
		}
	}
	return true
}

// Transform returns a new path with every point mapped by m. Shape hints
// survive only translate/scale transforms.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	mp := func(pt Point) Point {
		q, _ := m.MapPoint(pt)
		return q
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := mp(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := mp(e.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			c, pt := mp(e.Control), mp(e.Point)
			result.QuadraticTo(c.X, c.Y, pt.X, pt.Y)
		case CubicTo:
			c1, c2, pt := mp(e.Control1), mp(e.Control2), mp(e.Point)
			result.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	result.fill = p.fill
	result.inverse = p.inverse
	if p.hint == shapeRect && m.IsTranslateScale() {
		result.hint = shapeRect
		result.hintRRect = RRectFromRect(m.MapRect(p.hintRRect.Rect))
	}
	return result
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	clone := *p
	clone.elements = make([]PathElement, len(p.elements))
	copy(clone.elements, p.elements)
	return &clone
}

// Equals reports whether both paths have the same elements and fill rule.
// A nil path only equals another nil path.
func (p *Path) Equals(o *Path) bool {
	if p == o {
		return true
	}
	if p == nil || o == nil {
		return false
	}
	if p.fill != o.fill || p.inverse != o.inverse || len(p.elements) != len(o.elements) {
		return false
	}
	for i, e := range p.elements {
		if e != o.elements[i] {
			return false
		}
	}
	return true
}
