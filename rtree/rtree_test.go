package rtree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/displaylist/geom"
)

func TestEmptyTree(t *testing.T) {
	tree := New(nil, nil)
	require.Zero(t, tree.LeafCount())
	require.True(t, tree.Bounds().IsEmpty())
	require.Empty(t, tree.Search(geom.MaxCullRect))
	require.Empty(t, tree.SearchAndConsolidateRects(geom.MaxCullRect, true))
}

func TestSearchTwoRects(t *testing.T) {
	tree := New(
		[]geom.Rect{geom.LTRB(0, 0, 10, 10), geom.LTRB(50, 50, 60, 60)},
		[]int{0, 1},
	)
	require.Equal(t, 2, tree.LeafCount())
	require.Equal(t, geom.LTRB(0, 0, 60, 60), tree.Bounds())

	assert.Equal(t, []int{0, 1}, tree.Search(geom.LTRB(5, 5, 55, 55)))
	assert.Equal(t, []int{1}, tree.Search(geom.LTRB(19, 19, 51, 51)))
	assert.Empty(t, tree.Search(geom.LTRB(11, 11, 19, 19)))
	// Touching edges is not an intersection.
	assert.Empty(t, tree.Search(geom.LTRB(10, 10, 50, 50)))
	// Inverted queries are normalized.
	assert.Equal(t, []int{0, 1}, tree.Search(geom.LTRB(55, 55, 5, 5)))
}

func TestSearchSkipsInvalidRects(t *testing.T) {
	tree := New(
		[]geom.Rect{
			geom.LTRB(0, 0, 10, 10),
			{},
			geom.LTRB(math.NaN(), 0, 10, 10),
			geom.LTRB(20, 20, 10, 10),
		},
		[]int{3, 4, 5, 6},
	)
	require.Equal(t, 2, tree.LeafCount())
	require.Equal(t, []int{3, 6}, tree.Search(geom.MaxCullRect))
}

func TestSearchMatchesBruteForce(t *testing.T) {
	var rects []geom.Rect
	var ids []int
	for i := 0; i < 200; i++ {
		x := float64((i * 37) % 500)
		y := float64((i * 91) % 500)
		w := float64(5 + (i*13)%40)
		rects = append(rects, geom.XYWH(x, y, w, w))
		ids = append(ids, i)
	}
	tree := New(rects, ids)
	require.Equal(t, 200, tree.LeafCount())

	queries := []geom.Rect{
		geom.LTRB(0, 0, 100, 100),
		geom.LTRB(250, 250, 260, 260),
		geom.LTRB(-10, 400, 600, 410),
		geom.LTRB(1000, 1000, 1100, 1100),
	}
	for _, q := range queries {
		var want []int
		for i, r := range rects {
			if r.Intersects(q) {
				want = append(want, ids[i])
			}
		}
		got := tree.Search(q)
		if len(want) == 0 {
			assert.Empty(t, got, "query %v", q)
			continue
		}
		assert.Equal(t, want, got, "query %v", q)
	}
}

func TestSearchDuplicateIDs(t *testing.T) {
	tree := New(
		[]geom.Rect{geom.LTRB(0, 0, 10, 10), geom.LTRB(20, 0, 30, 10), geom.LTRB(40, 0, 50, 10)},
		[]int{2, 2, 1},
	)
	require.Equal(t, []int{1, 2}, tree.Search(geom.LTRB(0, 0, 100, 100)))
}

func TestSearchAndConsolidateRects(t *testing.T) {
	tree := New(
		[]geom.Rect{
			geom.LTRB(0, 0, 10, 10),
			geom.LTRB(100, 0, 110, 10),
			geom.LTRB(5, 5, 15, 15),
			// Overlaps only the union of the first and third.
			geom.LTRB(12, 0, 20, 4),
		},
		[]int{0, 1, 2, 3},
	)
	got := tree.SearchAndConsolidateRects(geom.MaxCullRect, false)
	assert.Equal(t, []geom.Rect{
		geom.LTRB(100, 0, 110, 10),
		geom.LTRB(0, 0, 20, 15),
	}, got)

	again := tree.SearchAndConsolidateRects(geom.MaxCullRect, false)
	assert.Equal(t, got, again, "consolidation is deterministic")
}

func TestConsolidateRepeatsUntilStable(t *testing.T) {
	tree := New(
		[]geom.Rect{
			geom.LTRB(0, 0, 10, 10),
			geom.LTRB(20, 0, 30, 10),
			// Touches neither of the first two directly.
			geom.LTRB(15, 20, 25, 30),
			// Spans from the first to the third, growing the merged
			// rectangle over the second.
			geom.LTRB(5, 5, 16, 21),
		},
		[]int{0, 1, 2, 3},
	)
	got := tree.SearchAndConsolidateRects(geom.MaxCullRect, false)
	assert.Equal(t, []geom.Rect{geom.LTRB(0, 0, 30, 30)}, got)
}

func TestDeband(t *testing.T) {
	tree := New(
		[]geom.Rect{
			geom.LTRB(0, 0, 10, 10),
			geom.LTRB(10, 0, 20, 10),
			geom.LTRB(0, 10, 20, 20),
			geom.LTRB(40, 0, 50, 5),
		},
		[]int{0, 1, 2, 3},
	)
	got := tree.SearchAndConsolidateRects(geom.MaxCullRect, true)
	assert.Equal(t, []geom.Rect{
		geom.LTRB(0, 0, 20, 20),
		geom.LTRB(40, 0, 50, 5),
	}, got)

	assert.Len(t, tree.SearchAndConsolidateRects(geom.MaxCullRect, false), 4)
}

func TestRegion(t *testing.T) {
	rects := []geom.Rect{geom.LTRB(0, 0, 1, 1), geom.LTRB(2, 2, 3, 3)}
	tree := New(rects, []int{7, 9})
	require.Equal(t, rects, tree.Region())
	r, id := tree.LeafBounds(1)
	require.Equal(t, rects[1], r)
	require.Equal(t, 9, id)
}
