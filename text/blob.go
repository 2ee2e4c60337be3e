// Package text provides the text handles referenced by text draw
// operations. Text arrives already shaped: a Blob wraps go-text shaping
// output runs positioned at baseline origins, and a Frame is an opaque
// laid-out paragraph that only exposes its bounds.
package text

import (
	"reflect"

	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/displaylist/geom"
)

// Run is one shaped run placed with its baseline origin at Origin.
type Run struct {
	Output shaping.Output
	Origin geom.Point
}

// Blob is an immutable sequence of shaped runs. Blobs are compared by
// identity, so the same *Blob should be reused for identical text.
type Blob struct {
	runs   []Run
	bounds geom.Rect
	glyphs int
}

// NewBlob creates a blob from runs. The runs are copied; the glyph slices
// they reference are shared and must not be modified afterwards.
func NewBlob(runs ...Run) *Blob {
	b := &Blob{runs: append([]Run(nil), runs...)}
	for _, r := range b.runs {
		b.bounds = b.bounds.Union(runBounds(r))
		b.glyphs += len(r.Output.Glyphs)
	}
	return b
}

// Runs returns the runs of the blob. The slice must not be modified.
func (b *Blob) Runs() []Run {
	return b.runs
}

// GlyphCount returns the total number of glyphs.
func (b *Blob) GlyphCount() int {
	return b.glyphs
}

// Bounds returns the conservative bounds of the blob relative to the draw
// origin. Each run covers its advance along the text direction and the
// larger of its line and glyph extents across it.
func (b *Blob) Bounds() geom.Rect {
	return b.bounds
}

// runBounds mirrors the layout of a shaped run: horizontal runs extend
// from the origin by the advance with ascent above and descent below the
// baseline; vertical runs extend downward by the advance and are centered
// across the baseline.
func runBounds(r Run) geom.Rect {
	out := &r.Output
	ascent := fixedToFloat(max(out.LineBounds.Ascent, out.GlyphBounds.Ascent))
	// Descents are negative below the baseline.
	descent := -fixedToFloat(min(out.LineBounds.Descent, out.GlyphBounds.Descent))
	advance := fixedToFloat(abs(out.Advance))

	o := r.Origin
	if out.Direction.IsVertical() {
		half := (ascent + descent) / 2
		return geom.LTRB(o.X-half, o.Y, o.X+half, o.Y+advance)
	}
	return geom.LTRB(o.X, o.Y-ascent, o.X+advance, o.Y+descent)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

func abs(v fixed.Int26_6) fixed.Int26_6 {
	if v < 0 {
		return -v
	}
	return v
}

// Frame is a laid-out paragraph produced outside this module. Frames are
// compared by identity.
type Frame interface {
	// Bounds returns the area the frame paints relative to its origin.
	Bounds() geom.Rect
}

// SameFrame reports whether a and b are the same frame. Frames whose
// dynamic type is not comparable never match unless both are nil.
func SameFrame(a, b Frame) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
