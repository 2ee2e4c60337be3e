package displaylist

import (
	"image"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/displaylist/geom"
	"github.com/gogpu/displaylist/paint"
)

func buildScene(color paint.Color) *DisplayList {
	b := NewBuilder()
	b.SetColor(color)
	b.Save()
	b.Translate(10, 20)
	b.ClipRect(geom.LTRB(0, 0, 100, 100), ClipIntersect, true)
	b.DrawRect(geom.LTRB(5, 5, 50, 50))
	b.DrawCircle(geom.Pt(70, 70), 10)
	b.Restore()
	return b.Build()
}

func TestEquals(t *testing.T) {
	a := buildScene(paint.Red)
	b := buildScene(paint.Red)
	c := buildScene(paint.Blue)

	assert.True(t, a.Equals(a))
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))

	var nilList *DisplayList
	assert.True(t, nilList.Equals(nil))
}

func TestEqualsStructuralFilters(t *testing.T) {
	build := func() *DisplayList {
		b := NewBuilder()
		b.SetImageFilter(paint.NewBlurImageFilter(2, 3, paint.TileClamp))
		b.SetColorFilter(paint.NewBlendColorFilter(paint.Red, paint.BlendMultiply))
		b.DrawRect(geom.LTRB(0, 0, 10, 10))
		return b.Build()
	}
	// Distinct filter instances with equal parameters compare equal.
	assert.True(t, build().Equals(build()))
	assert.Equal(t, build().Fingerprint(), build().Fingerprint())
}

func TestEqualsPaths(t *testing.T) {
	build := func(x float64) *DisplayList {
		p := geom.NewPath()
		p.MoveTo(0, 0)
		p.LineTo(x, 10)
		p.LineTo(0, 10)
		p.Close()
		b := NewBuilder()
		b.DrawPath(p)
		return b.Build()
	}
	assert.True(t, build(10).Equals(build(10)))
	assert.False(t, build(10).Equals(build(11)))
	assert.NotEqual(t, build(10).Fingerprint(), build(11).Fingerprint())
}

func TestDrawPathCopiesPath(t *testing.T) {
	p := geom.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 10)
	p.LineTo(0, 10)
	p.Close()

	b := NewBuilder()
	b.DrawPath(p)
	dl := b.Build()

	p.LineTo(100, 100)
	op := dl.Ops()[0].(DrawPathOp)
	assert.NotSame(t, p, op.Path)
	assert.Len(t, op.Path.Elements(), 4)
}

func TestFingerprintStable(t *testing.T) {
	a := buildScene(paint.Red)
	b := buildScene(paint.Red)
	c := buildScene(paint.Blue)

	fp := a.Fingerprint()
	assert.NotZero(t, fp)
	assert.Equal(t, fp, a.Fingerprint())
	assert.Equal(t, fp, b.Fingerprint())
	assert.NotEqual(t, fp, c.Fingerprint())

	var nilList *DisplayList
	assert.Zero(t, nilList.Fingerprint())
}

func TestFingerprintNegativeZero(t *testing.T) {
	build := func(x float64) *DisplayList {
		b := NewBuilder()
		b.DrawRect(geom.LTRB(x, 0, 10, 10))
		return b.Build()
	}
	assert.Equal(t, build(0).Fingerprint(), build(math.Copysign(0, -1)).Fingerprint())
}

func TestFingerprintConcurrent(t *testing.T) {
	dl := buildScene(paint.Green)
	want := buildScene(paint.Green).Fingerprint()

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, dl.Fingerprint())
		}()
	}
	wg.Wait()
}

func TestOpKindString(t *testing.T) {
	tests := []struct {
		kind OpKind
		want string
	}{
		{OpSetAntiAlias, "SetAntiAlias"},
		{OpSaveLayer, "SaveLayer"},
		{OpTransformFullPerspective, "TransformFullPerspective"},
		{OpClipPath, "ClipPath"},
		{OpDrawShadow, "DrawShadow"},
		{opKindCount, "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}

	for k := OpKind(0); k < opKindCount; k++ {
		require.NotEmpty(t, k.String(), "kind %d has no name", k)
	}
	assert.True(t, OpDrawColor.IsDraw())
	assert.False(t, OpClipRect.IsDraw())
	assert.True(t, OpRestore.IsState())
	assert.False(t, OpTranslate.IsState())
}

func TestOpSizes(t *testing.T) {
	dl := buildScene(paint.Red)
	for _, op := range dl.Ops() {
		assert.NotEqual(t, "Unknown", op.Kind().String())
		assert.Positive(t, op.size())
	}
}

func TestClipElision(t *testing.T) {
	cull := geom.LTRB(0, 0, 100, 100)

	t.Run("covering rect", func(t *testing.T) {
		b := NewBuilder(WithCullRect(cull))
		b.ClipRect(geom.LTRB(-10, -10, 200, 200), ClipIntersect, true)
		assert.Equal(t, 0, b.Build().OpCount(false))
	})
	t.Run("covering rrect", func(t *testing.T) {
		b := NewBuilder(WithCullRect(cull))
		b.ClipRRect(geom.RRectXY(geom.LTRB(-50, -50, 150, 150), 10, 10), ClipIntersect, true)
		assert.Equal(t, 0, b.Build().OpCount(false))
	})
	t.Run("covering oval", func(t *testing.T) {
		b := NewBuilder(WithCullRect(cull))
		b.ClipOval(geom.LTRB(-100, -100, 200, 200), ClipIntersect, true)
		assert.Equal(t, 0, b.Build().OpCount(false))
	})
	t.Run("disjoint difference", func(t *testing.T) {
		b := NewBuilder(WithCullRect(cull))
		b.ClipRect(geom.LTRB(200, 200, 300, 300), ClipDifference, true)
		assert.Equal(t, 0, b.Build().OpCount(false))
	})
	t.Run("NaN", func(t *testing.T) {
		b := NewBuilder(WithCullRect(cull))
		b.ClipRect(geom.LTRB(math.NaN(), 0, 10, 10), ClipIntersect, true)
		assert.Equal(t, cull, b.DestinationClipBounds())
		assert.Equal(t, 0, b.Build().OpCount(false))
	})
}

func TestClipEmptyIntersectionSkipsFrame(t *testing.T) {
	b := NewBuilder()
	b.Save()
	b.ClipRect(geom.LTRB(0, 0, 10, 10), ClipIntersect, false)
	b.ClipRect(geom.LTRB(20, 20, 30, 30), ClipIntersect, false)
	assert.True(t, b.QuickReject(geom.LTRB(0, 0, 10, 10)))
	b.DrawRect(geom.LTRB(0, 0, 10, 10))
	b.Restore()
	b.DrawRect(geom.LTRB(40, 40, 50, 50))
	dl := b.Build()

	assert.Equal(t, []OpKind{OpSave, OpClipRect, OpRestore, OpDrawRect}, kinds(dl))
}

func TestClipCoversEverythingDifference(t *testing.T) {
	b := NewBuilder(WithCullRect(geom.LTRB(0, 0, 100, 100)))
	b.Save()
	b.ClipRect(geom.LTRB(-1, -1, 101, 101), ClipDifference, false)
	b.DrawRect(geom.LTRB(0, 0, 10, 10))
	b.Restore()
	dl := b.Build()
	assert.Equal(t, 0, dl.OpCount(false))
}

func TestClipDifferenceShrinksCull(t *testing.T) {
	b := NewBuilder(WithCullRect(geom.LTRB(0, 0, 100, 100)))
	b.ClipRect(geom.LTRB(-10, 50, 110, 120), ClipDifference, false)
	assert.Equal(t, geom.LTRB(0, 0, 100, 50), b.DestinationClipBounds())

	b.DrawRect(geom.LTRB(0, 60, 10, 70))
	dl := b.Build()
	assert.Equal(t, []OpKind{OpClipRect}, kinds(dl))
}

func TestClipRRectDowngrade(t *testing.T) {
	b := NewBuilder()
	b.ClipRRect(geom.RRectFromRect(geom.LTRB(0, 0, 10, 10)), ClipIntersect, true)
	b.ClipRRect(geom.RRectOval(geom.LTRB(1, 1, 9, 9)), ClipIntersect, true)
	dl := b.Build()
	assert.Equal(t, []OpKind{OpClipRect, OpClipOval}, kinds(dl))
}

func TestClipPathDowngrade(t *testing.T) {
	rect := geom.NewPath()
	rect.AddRect(geom.LTRB(0, 0, 50, 50))
	oval := geom.NewPath()
	oval.AddOval(geom.LTRB(5, 5, 45, 45))

	b := NewBuilder()
	b.ClipPath(rect, ClipIntersect, true)
	b.ClipPath(oval, ClipIntersect, true)
	dl := b.Build()
	assert.Equal(t, []OpKind{OpClipRect, OpClipOval}, kinds(dl))
}

func TestClipInversePath(t *testing.T) {
	p := geom.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(50, 0)
	p.LineTo(0, 50)
	p.Close()
	p.SetInverseFill(true)

	cull := geom.LTRB(0, 0, 100, 100)
	b := NewBuilder(WithCullRect(cull))
	b.ClipPath(p, ClipIntersect, true)
	// An inverse intersect clip behaves like a difference: the bounds stay.
	assert.Equal(t, cull, b.DestinationClipBounds())

	b.DrawPath(p)
	dl := b.Build()
	assert.Equal(t, []OpKind{OpClipPath, OpDrawPath}, kinds(dl))
	assert.Equal(t, cull, dl.Bounds())
	assert.Equal(t, ClipIntersect, dl.Ops()[0].(ClipPathOp).Op)
}

func TestDrawRRectDowngrade(t *testing.T) {
	b := NewBuilder()
	b.DrawRRect(geom.RRectFromRect(geom.LTRB(0, 0, 10, 10)))
	b.DrawRRect(geom.RRectOval(geom.LTRB(20, 0, 30, 10)))
	b.DrawRRect(geom.RRectXY(geom.LTRB(40, 0, 60, 10), 2, 2))
	dl := b.Build()
	assert.Equal(t, []OpKind{OpDrawRect, OpDrawOval, OpDrawRRect}, kinds(dl))
}

func TestDrawAtlasBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	xforms := []RSTransform{{SCos: 1, TX: 10, TY: 10}, {SCos: 2, TX: 100, TY: 0}}
	tex := []geom.Rect{geom.LTRB(0, 0, 8, 8), geom.LTRB(0, 0, 4, 4)}

	b := NewBuilder()
	b.DrawAtlas(img, xforms, tex, nil, paint.BlendSourceOver, paint.SampleLinear, nil, false)
	dl := b.Build()
	assert.Equal(t, geom.LTRB(10, 0, 108, 18), dl.Bounds())

	cull := geom.LTRB(0, 0, 5, 5)
	b.DrawAtlas(img, xforms, tex, nil, paint.BlendSourceOver, paint.SampleLinear, &cull, false)
	dl = b.Build()
	assert.Equal(t, cull, dl.Bounds())

	// Mismatched arrays are dropped.
	b.DrawAtlas(img, xforms, tex[:1], nil, paint.BlendSourceOver, paint.SampleLinear, nil, false)
	assert.Equal(t, 0, b.Build().OpCount(false))
}

func TestDrawImageBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	b := NewBuilder()
	b.DrawImage(img, geom.Pt(4, 4), paint.SampleLinear, false)
	dl := b.Build()
	assert.Equal(t, geom.LTRB(4, 4, 20, 12), dl.Bounds())
	assert.True(t, dl.CanApplyGroupOpacity())
}

func TestDrawShadowBounds(t *testing.T) {
	p := geom.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.Close()

	b := NewBuilder()
	b.DrawShadow(p, paint.Black, 3, false, 1)
	b.DrawShadow(p, paint.Transparent, 3, false, 1)
	dl := b.Build()
	require.Equal(t, 1, dl.OpCount(false))
	assert.True(t, dl.Bounds().Contains(geom.LTRB(0, 0, 10, 10)))
	assert.Greater(t, dl.Bounds().Width(), 10.0)
}
