package text

import (
	"testing"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/shaping"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/displaylist/geom"
)

func shapedRun(advance, ascent, descent int, dir di.Direction, glyphs int) shaping.Output {
	return shaping.Output{
		Advance:    fixed.I(advance),
		Size:       fixed.I(16),
		Direction:  dir,
		Glyphs:     make([]shaping.Glyph, glyphs),
		LineBounds: shaping.Bounds{Ascent: fixed.I(ascent), Descent: -fixed.I(descent)},
	}
}

func TestBlobBoundsHorizontal(t *testing.T) {
	b := NewBlob(Run{Output: shapedRun(50, 12, 4, di.DirectionLTR, 5), Origin: geom.Pt(10, 20)})
	require.Equal(t, geom.LTRB(10, 8, 60, 24), b.Bounds())
	require.Equal(t, 5, b.GlyphCount())
}

func TestBlobBoundsUsesLargerExtent(t *testing.T) {
	out := shapedRun(20, 10, 2, di.DirectionLTR, 2)
	out.GlyphBounds = shaping.Bounds{Ascent: fixed.I(14), Descent: -fixed.I(1)}
	b := NewBlob(Run{Output: out})
	require.Equal(t, geom.LTRB(0, -14, 20, 2), b.Bounds())
}

func TestBlobBoundsVertical(t *testing.T) {
	out := shapedRun(-30, 6, 6, di.DirectionTTB, 3)
	b := NewBlob(Run{Output: out, Origin: geom.Pt(100, 0)})
	require.Equal(t, geom.LTRB(94, 0, 106, 30), b.Bounds())
}

func TestBlobBoundsUnionOfRuns(t *testing.T) {
	b := NewBlob(
		Run{Output: shapedRun(40, 10, 2, di.DirectionLTR, 4), Origin: geom.Pt(0, 10)},
		Run{Output: shapedRun(30, 10, 2, di.DirectionRTL, 3), Origin: geom.Pt(0, 30)},
	)
	require.Equal(t, geom.LTRB(0, 0, 40, 32), b.Bounds())
	require.Equal(t, 7, b.GlyphCount())
	require.Len(t, b.Runs(), 2)
}

func TestEmptyBlob(t *testing.T) {
	require.True(t, NewBlob().Bounds().IsEmpty())
}

type testFrame struct{ r geom.Rect }

func (f *testFrame) Bounds() geom.Rect { return f.r }

type sliceFrame []geom.Rect

func (f sliceFrame) Bounds() geom.Rect { return f[0] }

func TestSameFrame(t *testing.T) {
	a := &testFrame{geom.XYWH(0, 0, 10, 10)}
	b := &testFrame{geom.XYWH(0, 0, 10, 10)}
	require.True(t, SameFrame(a, a))
	require.False(t, SameFrame(a, b))
	require.True(t, SameFrame(nil, nil))
	require.False(t, SameFrame(a, nil))

	s := sliceFrame{geom.XYWH(0, 0, 1, 1)}
	require.False(t, SameFrame(s, s), "non-comparable frames never match")
}
