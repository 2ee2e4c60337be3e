package displaylist

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/displaylist/geom"
	"github.com/gogpu/displaylist/paint"
	"github.com/gogpu/displaylist/vertices"
)

// traceReceiver logs the state ops and rectangle draws it receives and
// ignores everything else.
type traceReceiver struct {
	IgnoreAttributes
	IgnoreState
	IgnoreTransforms
	IgnoreClips
	IgnoreDraws

	log []string
}

func (r *traceReceiver) Save()                                      { r.log = append(r.log, "save") }
func (r *traceReceiver) Restore()                                   { r.log = append(r.log, "restore") }
func (r *traceReceiver) Translate(float64, float64)                 { r.log = append(r.log, "translate") }
func (r *traceReceiver) ClipRect(geom.Rect, ClipOp, bool)           { r.log = append(r.log, "clip") }
func (r *traceReceiver) SetColor(paint.Color)                       { r.log = append(r.log, "color") }
func (r *traceReceiver) DrawRect(rect geom.Rect)                    { r.log = append(r.log, "rect "+rectName(rect)) }
func (r *traceReceiver) DrawDisplayList(dl *DisplayList, _ float64) { r.log = append(r.log, "list") }
func (r *traceReceiver) SaveLayer(geom.Rect, SaveLayerOptions, *paint.Paint, paint.ImageFilter) {
	r.log = append(r.log, "layer")
}

func rectName(r geom.Rect) string {
	switch r.Left {
	case 0:
		return "A"
	case 100:
		return "B"
	case 199, 200:
		return "C"
	}
	return "?"
}

var (
	rectA = geom.LTRB(0, 0, 10, 10)
	rectB = geom.LTRB(100, 0, 110, 10)
	rectC = geom.LTRB(200, 0, 210, 10)
)

func TestDispatchOrder(t *testing.T) {
	b := NewBuilder()
	b.SetColor(paint.Red)
	b.Save()
	b.Translate(1, 1)
	b.DrawRect(rectA)
	b.Restore()
	dl := b.Build()

	var r traceReceiver
	dl.Dispatch(&r)
	assert.Equal(t, []string{"color", "save", "translate", "rect A", "restore"}, r.log)
}

func TestDispatchRange(t *testing.T) {
	b := NewBuilder()
	b.DrawRect(rectA)
	b.DrawRect(rectB)
	b.DrawRect(rectC)
	dl := b.Build()

	var r traceReceiver
	dl.DispatchRange(&r, 1, 2)
	assert.Equal(t, []string{"rect B"}, r.log)

	r.log = nil
	dl.DispatchRange(&r, -5, 50)
	assert.Equal(t, []string{"rect A", "rect B", "rect C"}, r.log)

	r.log = nil
	dl.DispatchRange(&r, 2, 1)
	assert.Empty(t, r.log)
}

func TestDispatchCulled(t *testing.T) {
	b := NewBuilder(WithRTree())
	b.SetColor(paint.Red)
	b.DrawRect(rectA)
	b.Save()
	b.ClipRect(geom.LTRB(90, 0, 120, 20), ClipIntersect, false)
	b.DrawRect(rectB)
	b.Restore()
	b.Save()
	b.Translate(1, 0)
	b.DrawRect(geom.LTRB(199, 0, 209, 10))
	b.Restore()
	b.SetColor(paint.Blue)
	dl := b.Build()

	tests := []struct {
		name string
		cull geom.Rect
		want []string
	}{
		{"first", geom.LTRB(0, 0, 20, 20), []string{"color", "rect A"}},
		{"middle", geom.LTRB(95, 0, 105, 5), []string{"color", "save", "clip", "rect B", "restore"}},
		{"last", geom.LTRB(205, 0, 206, 1), []string{"color", "save", "translate", "rect C", "restore"}},
		{"span", geom.LTRB(5, 0, 205, 5), []string{
			"color", "rect A", "save", "clip", "rect B", "restore", "save", "translate", "rect C", "restore",
		}},
		{"nothing", geom.LTRB(50, 50, 60, 60), nil},
		{"everything", geom.LTRB(-10, -10, 300, 300), []string{
			"color", "rect A", "save", "clip", "rect B", "restore", "save", "translate", "rect C", "restore", "color",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r traceReceiver
			dl.DispatchCulled(&r, tt.cull)
			assert.Equal(t, tt.want, r.log)
		})
	}
}

func TestDispatchCulledWithoutIndex(t *testing.T) {
	b := NewBuilder()
	b.DrawRect(rectA)
	b.DrawRect(rectC)
	dl := b.Build()

	var r traceReceiver
	dl.DispatchCulled(&r, geom.LTRB(0, 0, 1, 1))
	assert.Equal(t, []string{"rect A", "rect C"}, r.log)
}

func TestDispatchCulledFilteredLayerReplayedWhole(t *testing.T) {
	lp := paint.Default()
	lp.ImageFilter = paint.NewBlurImageFilter(10, 10, paint.TileDecal)

	b := NewBuilder(WithRTree())
	b.SaveLayer(nil, &lp, nil)
	b.DrawRect(rectA)
	b.DrawRect(rectB)
	b.Restore()
	dl := b.Build()

	// The blur spreads A into the query area, so the whole layer replays.
	var r traceReceiver
	dl.DispatchCulled(&r, geom.LTRB(12, 0, 14, 4))
	assert.Equal(t, []string{"layer", "rect A", "rect B", "restore"}, r.log)
}

func TestDispatchCulledPlainLayerCullsChildren(t *testing.T) {
	b := NewBuilder(WithRTree())
	b.SaveLayer(nil, nil, nil)
	b.DrawRect(rectA)
	b.DrawRect(rectB)
	b.Restore()
	dl := b.Build()

	var r traceReceiver
	dl.DispatchCulled(&r, geom.LTRB(100, 0, 101, 1))
	assert.Equal(t, []string{"layer", "rect B", "restore"}, r.log)
}

func TestRTreeFromBuilder(t *testing.T) {
	b := NewBuilder(WithRTree())
	b.DrawRect(geom.LTRB(0, 0, 10, 10))
	b.DrawRect(geom.LTRB(50, 50, 60, 60))
	dl := b.Build()

	tree := dl.RTree()
	require.NotNil(t, tree)
	assert.Equal(t, []int{0, 1}, tree.Search(geom.LTRB(5, 5, 55, 55)))
	assert.Equal(t, []int{1}, tree.Search(geom.LTRB(19, 19, 51, 51)))
	assert.Empty(t, tree.Search(geom.LTRB(11, 11, 19, 19)))
}

func TestRTreeNestedList(t *testing.T) {
	inner := NewBuilder(WithRTree())
	inner.DrawRect(geom.LTRB(0, 0, 10, 10))
	inner.DrawRect(geom.LTRB(90, 90, 100, 100))
	nested := inner.Build()

	b := NewBuilder(WithRTree())
	b.DrawRect(geom.LTRB(500, 500, 510, 510))
	b.Translate(100, 0)
	b.DrawDisplayList(nested, 1)
	dl := b.Build()

	tree := dl.RTree()
	// The nested list contributes its own rectangles, not its bounds.
	assert.Equal(t, 3, tree.LeafCount())
	assert.Empty(t, tree.Search(geom.LTRB(150, 50, 160, 60)))
	assert.Equal(t, []int{2}, tree.Search(geom.LTRB(105, 5, 106, 6)))
	assert.Equal(t, []int{2}, tree.Search(geom.LTRB(195, 95, 196, 96)))

	assert.Equal(t, 3+nested.OpCount(true), dl.OpCount(true))
	assert.Equal(t, geom.LTRB(100, 0, 510, 510), dl.Bounds())

	var r traceReceiver
	dl.DispatchCulled(&r, geom.LTRB(105, 5, 106, 6))
	assert.Equal(t, []string{"translate", "list"}, r.log)
}

func TestRTreeNestedListWithoutIndex(t *testing.T) {
	inner := NewBuilder()
	inner.DrawRect(geom.LTRB(0, 0, 10, 10))
	inner.DrawRect(geom.LTRB(90, 90, 100, 100))
	nested := inner.Build()

	b := NewBuilder(WithRTree())
	b.DrawDisplayList(nested, 0.5)
	dl := b.Build()

	assert.Equal(t, 1, dl.RTree().LeafCount())
	assert.Equal(t, []int{0}, dl.RTree().Search(geom.LTRB(50, 50, 51, 51)))
}

func TestDrawDisplayListOpacity(t *testing.T) {
	inner := NewBuilder()
	inner.DrawRect(rectA)
	nested := inner.Build()

	b := NewBuilder()
	b.DrawDisplayList(nested, 0)
	b.DrawDisplayList(nested, -1)
	b.DrawDisplayList(NewBuilder().Build(), 1)
	b.DrawDisplayList(nested, 3)
	dl := b.Build()

	require.Equal(t, 1, dl.OpCount(false))
	assert.Equal(t, DrawDisplayListOp{List: nested, Opacity: 1}, dl.Ops()[0])
	assert.True(t, dl.CanApplyGroupOpacity())
}

// replay copies dl through the Receiver interface of a new Builder.
func replay(dl *DisplayList, opts ...BuilderOption) *DisplayList {
	b := NewBuilder(opts...)
	dl.Dispatch(b.Receiver())
	return b.Build()
}

func TestReplayFidelity(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	nestedBuilder := NewBuilder()
	nestedBuilder.DrawCircle(geom.Pt(5, 5), 5)
	nested := nestedBuilder.Build()

	path := geom.NewPath()
	path.MoveTo(0, 0)
	path.LineTo(30, 5)
	path.QuadraticTo(40, 40, 5, 30)
	path.Close()

	inverse := path.Clone()
	inverse.SetInverseFill(true)

	mesh := vertices.New(vertices.Triangles,
		[]vertices.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}, nil, nil, nil)

	raw, err := mesh.MarshalBinary()
	require.NoError(t, err)
	decodedMesh, err := vertices.Decode(raw)
	require.NoError(t, err)

	scenarios := map[string]func(b *Builder){
		"redundant saves": func(b *Builder) {
			b.Save()
			b.Save()
			b.Translate(10, 10)
			b.Scale(2, 2)
			b.ClipRect(geom.LTRB(0, 0, 50, 50), ClipIntersect, true)
			b.DrawRect(geom.LTRB(5, 5, 20, 20))
			b.Restore()
			b.Restore()
			b.Restore()
		},
		"attributes": func(b *Builder) {
			b.SetAntiAlias(true)
			b.SetColor(paint.Red)
			b.SetDrawStyle(paint.StyleStroke)
			b.SetStrokeWidth(3)
			b.SetStrokeCap(paint.CapRound)
			b.SetStrokeJoin(paint.JoinBevel)
			b.SetStrokeMiter(10)
			b.SetMaskFilter(paint.NewBlurMaskFilter(paint.BlurNormal, 1))
			b.DrawLine(geom.Pt(0, 0), geom.Pt(10, 10))
			b.DrawDashedLine(geom.Pt(0, 20), geom.Pt(50, 20), 4, 2)
			b.DrawArc(geom.LTRB(0, 0, 40, 40), 0, 90, false)
		},
		"non-finite stroke": func(b *Builder) {
			b.SetDrawStyle(paint.StyleStroke)
			b.SetStrokeWidth(math.NaN())
			b.SetStrokeWidth(math.NaN())
			b.SetStrokeMiter(math.Inf(1))
			b.DrawRect(geom.LTRB(0, 0, 10, 10))
		},
		"decoded mesh": func(b *Builder) {
			var zero vertices.Vertices
			b.DrawVertices(&zero, paint.BlendSourceOver)
			b.DrawVertices(decodedMesh, paint.BlendModulate)
		},
		"layers": func(b *Builder) {
			lp := paint.New(paint.ARGB(0x80, 0, 0, 0))
			bounds := geom.LTRB(0, 0, 100, 100)
			b.SaveLayer(&bounds, &lp, nil)
			b.DrawOval(geom.LTRB(10, 10, 30, 20))
			b.SaveLayer(nil, nil, paint.NewBlurImageFilter(2, 2, paint.TileClamp))
			b.DrawRRect(geom.RRectXY(geom.LTRB(40, 40, 80, 80), 5, 5))
			b.Restore()
			b.Restore()
		},
		"clips": func(b *Builder) {
			b.ClipRRect(geom.RRectXY(geom.LTRB(0, 0, 200, 200), 20, 20), ClipIntersect, true)
			b.ClipOval(geom.LTRB(10, 10, 190, 190), ClipIntersect, true)
			b.ClipRect(geom.LTRB(50, 50, 60, 60), ClipDifference, false)
			b.ClipPath(path, ClipIntersect, true)
			b.ClipPath(inverse, ClipIntersect, true)
			b.DrawPath(path)
			b.DrawPaint()
		},
		"transforms": func(b *Builder) {
			b.Rotate(30)
			b.Skew(0.1, 0)
			b.Transform2DAffine(1, 0.5, 3, 0, 1, 4)
			m := geom.Identity()
			m[12] = 0.001
			b.TransformFullPerspective(m)
			b.DrawDRRect(geom.RRectXY(geom.LTRB(0, 0, 50, 50), 4, 4), geom.RRectXY(geom.LTRB(10, 10, 40, 40), 2, 2))
			b.TransformReset()
			b.DrawColor(paint.Blue, paint.BlendMultiply)
		},
		"images": func(b *Builder) {
			b.DrawImage(img, geom.Pt(5, 5), paint.SampleLinear, false)
			b.DrawImageRect(img, geom.LTRB(0, 0, 8, 8), geom.LTRB(20, 20, 60, 60), paint.SampleNearest, true, ConstraintStrict)
			b.DrawImageNine(img, geom.LTRB(4, 4, 12, 12), geom.LTRB(0, 100, 80, 180), paint.SampleLinear, true)
			b.DrawAtlas(img, []RSTransform{{SCos: 1, TX: 200}, {SCos: 0, SSin: 1, TX: 250}},
				[]geom.Rect{geom.LTRB(0, 0, 8, 8), geom.LTRB(8, 8, 16, 16)}, nil,
				paint.BlendSourceOver, paint.SampleLinear, nil, false)
		},
		"compound": func(b *Builder) {
			b.DrawPoints(PointModePolygon, []geom.Point{geom.Pt(0, 0), geom.Pt(10, 5), geom.Pt(0, 10)})
			b.DrawVertices(mesh, paint.BlendModulate)
			b.DrawDisplayList(nested, 0.5)
			b.DrawShadow(path, paint.Black, 3, true, 2)
		},
		"unbalanced": func(b *Builder) {
			b.Save()
			b.Translate(5, 5)
			b.SaveLayer(nil, nil, nil)
			b.DrawRect(geom.LTRB(0, 0, 10, 10))
		},
	}

	for name, record := range scenarios {
		t.Run(name, func(t *testing.T) {
			b := NewBuilder()
			record(b)
			dl := b.Build()
			require.Positive(t, dl.RenderOpCount())

			got := replay(dl)
			assert.True(t, dl.Equals(got), "replayed list differs:\nwant %v\ngot  %v", kinds(dl), kinds(got))
			assert.Equal(t, dl.Bounds(), got.Bounds())
			assert.Equal(t, dl.CanApplyGroupOpacity(), got.CanApplyGroupOpacity())
			assert.Equal(t, dl.Fingerprint(), got.Fingerprint())
		})
	}
}
