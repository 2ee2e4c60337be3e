package rtree

import (
	"cmp"
	"slices"

	"github.com/gogpu/displaylist/geom"
)

// SearchAndConsolidateRects returns rectangles covering every indexed
// rectangle that intersects query, with overlapping hits merged into their
// union. No two returned rectangles overlap. When deband is set, rectangles
// sharing a horizontal band and touching are joined, and then rectangles
// sharing a vertical band and touching are joined.
//
// The result is deterministic for identical trees and queries.
func (t *RTree) SearchAndConsolidateRects(query geom.Rect, deband bool) []geom.Rect {
	var rects []geom.Rect
	for _, l := range t.searchLeaves(query) {
		rects = mergeInto(rects, t.nodes[l].bounds)
	}
	if deband {
		rects = Deband(rects)
	}
	return rects
}

// mergeInto adds r to a set of pairwise disjoint rectangles, absorbing
// every rectangle that intersects it. Absorbing can grow r into
// rectangles it did not touch before, so the scan repeats until stable.
func mergeInto(rects []geom.Rect, r geom.Rect) []geom.Rect {
	for {
		merged := false
		kept := rects[:0]
		for _, o := range rects {
			if o.Intersects(r) {
				r = r.Union(o)
				merged = true
				continue
			}
			kept = append(kept, o)
		}
		rects = kept
		if !merged {
			break
		}
	}
	return append(rects, r)
}

// Deband joins disjoint rectangles that share the same top and bottom and
// touch horizontally, then those that share the same left and right and
// touch vertically. The covered area is unchanged. The result is sorted
// by top, then left.
func Deband(rects []geom.Rect) []geom.Rect {
	if len(rects) < 2 {
		return rects
	}
	res := slices.Clone(rects)

	slices.SortFunc(res, func(a, b geom.Rect) int {
		return cmp.Or(cmp.Compare(a.Top, b.Top), cmp.Compare(a.Bottom, b.Bottom), cmp.Compare(a.Left, b.Left))
	})
	res = joinRuns(res, func(prev, r geom.Rect) bool {
		return prev.Top == r.Top && prev.Bottom == r.Bottom && r.Left <= prev.Right
	})

	slices.SortFunc(res, func(a, b geom.Rect) int {
		return cmp.Or(cmp.Compare(a.Left, b.Left), cmp.Compare(a.Right, b.Right), cmp.Compare(a.Top, b.Top))
	})
	res = joinRuns(res, func(prev, r geom.Rect) bool {
		return prev.Left == r.Left && prev.Right == r.Right && r.Top <= prev.Bottom
	})

	slices.SortFunc(res, func(a, b geom.Rect) int {
		return cmp.Or(cmp.Compare(a.Top, b.Top), cmp.Compare(a.Left, b.Left))
	})
	return res
}

func joinRuns(sorted []geom.Rect, joinable func(prev, r geom.Rect) bool) []geom.Rect {
	out := sorted[:1]
	for _, r := range sorted[1:] {
		last := &out[len(out)-1]
		if joinable(*last, r) {
			*last = last.Union(r)
			continue
		}
		out = append(out, r)
	}
	return out
}
