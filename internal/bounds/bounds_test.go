package bounds

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/displaylist/geom"
	"github.com/gogpu/displaylist/paint"
)

func TestRectAccumulator(t *testing.T) {
	var acc Rect
	require.True(t, acc.IsEmpty())
	require.Equal(t, geom.Rect{}, acc.Bounds())

	acc.Add(geom.Rect{})
	require.True(t, acc.IsEmpty())

	acc.Add(geom.LTRB(10, 10, 20, 20))
	acc.Add(geom.LTRB(-5, 15, 0, 30))
	require.Equal(t, geom.LTRB(-5, 10, 20, 30), acc.Bounds())

	acc.Reset()
	require.True(t, acc.IsEmpty())
}

func TestListAccumulator(t *testing.T) {
	var l List
	l.Add(geom.LTRB(0, 0, 10, 10), 0)
	l.Add(geom.LTRB(math.NaN(), 0, 10, 10), 1)
	l.Add(geom.LTRB(20, 20, 30, 30), 2)
	l.Add(geom.LTRB(40, 40, 50, 50), 3)
	require.Equal(t, 3, l.Len())
	require.Equal(t, []int{0, 2, 3}, l.IDs())
	require.Equal(t, geom.LTRB(20, 20, 50, 50), l.BoundsSince(1))

	l.Truncate(1)
	require.Equal(t, 1, l.Len())
	require.Equal(t, []geom.Rect{geom.LTRB(0, 0, 10, 10)}, l.Rects())
}

func TestOverlap(t *testing.T) {
	var o Overlap
	require.False(t, o.Add(geom.LTRB(0, 0, 10, 10)))
	require.False(t, o.Add(geom.LTRB(10, 0, 20, 10)), "touching rects do not overlap")
	// Inside the union but clear of both rects.
	require.False(t, o.Add(geom.LTRB(20, 20, 30, 30)))
	require.False(t, o.Add(geom.LTRB(0, 15, 5, 20)))
	require.False(t, o.Overlaps())

	require.True(t, o.Add(geom.LTRB(5, 5, 6, 6)))
	require.True(t, o.Overlaps())
	require.True(t, o.Add(geom.LTRB(100, 100, 110, 110)), "overlap is sticky")

	o.Reset()
	require.False(t, o.Overlaps())
}

func TestStrokeOutset(t *testing.T) {
	p := paint.Default()
	require.Zero(t, StrokeOutset(&p, Geometry{}))

	p.Style = paint.StyleStroke
	p.StrokeWidth = 4
	require.Equal(t, 2.0, StrokeOutset(&p, Geometry{}))

	// Miter joins on acute corners extend by the miter limit.
	require.Equal(t, 8.0, StrokeOutset(&p, Geometry{AcuteJoins: true}))
	// Right-angle miters extend by sqrt(2).
	require.InDelta(t, 2*math.Sqrt2, StrokeOutset(&p, Geometry{Joins: true}), 1e-12)

	p.StrokeJoin = paint.JoinRound
	require.Equal(t, 2.0, StrokeOutset(&p, Geometry{AcuteJoins: true}))

	p.StrokeCap = paint.CapSquare
	require.InDelta(t, 2*math.Sqrt2, StrokeOutset(&p, Geometry{DiagonalCaps: true}), 1e-12)

	p.StrokeWidth = 0
	require.Equal(t, MinStrokeHalfWidth, StrokeOutset(&p, Geometry{}))

	fill := paint.Default()
	require.Equal(t, MinStrokeHalfWidth, StrokeOutset(&fill, Geometry{Stroked: true}))
}

func TestForPaint(t *testing.T) {
	r := geom.LTRB(10, 10, 20, 20)

	p := paint.Default()
	got, ok := ForPaint(r, &p, paint.ShapeFlags, Geometry{}, true)
	require.True(t, ok)
	require.Equal(t, r, got)

	p.Style = paint.StyleStroke
	p.StrokeWidth = 2
	p.MaskFilter = paint.NewBlurMaskFilter(paint.BlurNormal, 1)
	got, _ = ForPaint(r, &p, paint.ShapeFlags, Geometry{}, true)
	require.Equal(t, geom.LTRB(6, 6, 24, 24), got)

	got, _ = ForPaint(r, &p, paint.IgnoresPaint, Geometry{}, true)
	require.Equal(t, r, got)

	p = paint.Default()
	p.ImageFilter = paint.NewColorFilterImageFilter(paint.NewBlendColorFilter(paint.Red, paint.BlendSource))
	_, ok = ForPaint(r, &p, paint.ShapeFlags, Geometry{}, true)
	require.False(t, ok)
}

func TestShadowOutset(t *testing.T) {
	require.Zero(t, ShadowOutset(0, 1))
	require.Zero(t, ShadowOutset(-4, 1))
	require.Greater(t, ShadowOutset(4, 2), ShadowOutset(4, 1))
	require.GreaterOrEqual(t, ShadowOutset(10, 1), 5.0)
}

func TestPoints(t *testing.T) {
	pts := []geom.Point{{X: 3, Y: 4}, {X: -1, Y: 8}}
	require.Equal(t, geom.LTRB(-1, 4, 3, 8), Points(pts))
	require.True(t, Points([]geom.Point{{X: math.Inf(1), Y: 0}}).IsEmpty())
}
