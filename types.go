package displaylist

import (
	"github.com/gogpu/displaylist/geom"
)

// ClipOp selects how a clip shape combines with the current clip.
type ClipOp uint8

const (
	// ClipIntersect keeps only the area inside the shape.
	ClipIntersect ClipOp = iota
	// ClipDifference removes the area inside the shape.
	ClipDifference
)

// String returns the clip operation name.
func (op ClipOp) String() string {
	switch op {
	case ClipIntersect:
		return "Intersect"
	case ClipDifference:
		return "Difference"
	default:
		return "Unknown"
	}
}

// PointMode selects how DrawPoints interprets its points.
type PointMode uint8

const (
	// PointModePoints draws each point separately.
	PointModePoints PointMode = iota
	// PointModeLines draws a segment for each pair of points.
	PointModeLines
	// PointModePolygon draws a connected polyline through all points.
	PointModePolygon
)

// String returns the point mode name.
func (m PointMode) String() string {
	switch m {
	case PointModePoints:
		return "Points"
	case PointModeLines:
		return "Lines"
	case PointModePolygon:
		return "Polygon"
	default:
		return "Unknown"
	}
}

// SrcRectConstraint controls whether image sampling may read outside the
// source rectangle of DrawImageRect.
type SrcRectConstraint uint8

const (
	// ConstraintFast allows sampling outside the source rectangle.
	ConstraintFast SrcRectConstraint = iota
	// ConstraintStrict restricts sampling to the source rectangle.
	ConstraintStrict
)

// String returns the constraint name.
func (c SrcRectConstraint) String() string {
	if c == ConstraintStrict {
		return "Strict"
	}
	return "Fast"
}

// RSTransform is a compressed rotate-scale-translate matrix used by
// DrawAtlas:
//
//	x' = SCos*x - SSin*y + TX
//	y' = SSin*x + SCos*y + TY
type RSTransform struct {
	SCos, SSin float64
	TX, TY     float64
}

// MapRect returns the bounds of r's corners after the transform.
func (t RSTransform) MapRect(r geom.Rect) geom.Rect {
	w, h := r.Width(), r.Height()
	pts := []geom.Point{
		{X: t.TX, Y: t.TY},
		{X: t.SCos*w + t.TX, Y: t.SSin*w + t.TY},
		{X: t.SCos*w - t.SSin*h + t.TX, Y: t.SSin*w + t.SCos*h + t.TY},
		{X: -t.SSin*h + t.TX, Y: t.SCos*h + t.TY},
	}
	return geom.BoundsOfPoints(pts)
}

// SaveLayerOptions describes a recorded SaveLayer.
type SaveLayerOptions struct {
	// RendersWithAttributes is set when the layer composites with a paint.
	RendersWithAttributes bool
	// BoundsFromCaller is set when the bounds were supplied to SaveLayer
	// rather than computed from the layer content.
	BoundsFromCaller bool
	// CanDistributeOpacity is set when a group opacity applied to the layer
	// may instead be multiplied into each of its children.
	CanDistributeOpacity bool
	// ContainsBackdropFilter is set when the layer has a backdrop filter.
	ContainsBackdropFilter bool
}
