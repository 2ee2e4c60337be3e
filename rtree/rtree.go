// Package rtree implements a static R-tree over the bounding rectangles of
// recorded operations.
//
// The tree is built once, bottom-up, from leaves given in operation order.
// Consecutive leaves are grouped into nodes of up to MaxChildren entries,
// level by level, until a single root remains. Queries visit only the
// nodes whose bounds intersect the query rectangle and filter results to
// exact leaf overlap.
package rtree

import (
	"slices"

	"github.com/gogpu/displaylist/geom"
)

// MaxChildren is the fan-out of interior nodes.
const MaxChildren = 8

type node struct {
	bounds geom.Rect
	// For leaves, id is the operation index and first/count are unused.
	// For interior nodes, children occupy nodes[first : first+count].
	id    int
	first int
	count int
	leaf  bool
}

// RTree is an immutable spatial index. It is safe for concurrent use.
type RTree struct {
	nodes     []node
	leafCount int
	root      int
}

// New builds a tree from parallel slices of rectangles and operation
// indices. Empty or non-finite rectangles are skipped. Only the first
// min(len(rects), len(ids)) entries are used.
func New(rects []geom.Rect, ids []int) *RTree {
	n := min(len(rects), len(ids))
	t := &RTree{root: -1}
	t.nodes = make([]node, 0, n+n/(MaxChildren-1)+1)
	for i := 0; i < n; i++ {
		r := rects[i].Sorted()
		if r.IsEmpty() || !r.IsFinite() {
			continue
		}
		t.nodes = append(t.nodes, node{bounds: r, id: ids[i], leaf: true})
	}
	t.leafCount = len(t.nodes)
	if t.leafCount == 0 {
		return t
	}

	levelStart, levelLen := 0, t.leafCount
	for levelLen > 1 {
		next := len(t.nodes)
		for i := 0; i < levelLen; i += MaxChildren {
			count := min(MaxChildren, levelLen-i)
			first := levelStart + i
			b := t.nodes[first].bounds
			for _, c := range t.nodes[first+1 : first+count] {
				b = b.Union(c.bounds)
			}
			t.nodes = append(t.nodes, node{bounds: b, first: first, count: count})
		}
		levelStart, levelLen = next, len(t.nodes)-next
	}
	t.root = levelStart
	return t
}

// LeafCount returns the number of indexed rectangles.
func (t *RTree) LeafCount() int {
	return t.leafCount
}

// Bounds returns the union of all indexed rectangles.
func (t *RTree) Bounds() geom.Rect {
	if t.root < 0 {
		return geom.Rect{}
	}
	return t.nodes[t.root].bounds
}

// Region returns every indexed rectangle in leaf order.
func (t *RTree) Region() []geom.Rect {
	res := make([]geom.Rect, t.leafCount)
	for i := range res {
		res[i] = t.nodes[i].bounds
	}
	return res
}

// LeafBounds returns the rectangle and operation index of leaf i.
func (t *RTree) LeafBounds(i int) (geom.Rect, int) {
	n := t.nodes[i]
	return n.bounds, n.id
}

// Search returns the operation indices whose rectangles intersect query,
// in ascending order without duplicates.
func (t *RTree) Search(query geom.Rect) []int {
	leaves := t.searchLeaves(query)
	ids := make([]int, 0, len(leaves))
	for _, l := range leaves {
		ids = append(ids, t.nodes[l].id)
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}

// searchLeaves returns the leaf positions intersecting query in leaf order.
func (t *RTree) searchLeaves(query geom.Rect) []int {
	query = query.Sorted()
	if t.root < 0 || query.IsEmpty() {
		return nil
	}
	var res []int
	t.search(t.root, query, &res)
	return res
}

func (t *RTree) search(idx int, query geom.Rect, res *[]int) {
	n := &t.nodes[idx]
	if !n.bounds.Intersects(query) {
		return
	}
	if n.leaf {
		*res = append(*res, idx)
		return
	}
	for c := n.first; c < n.first+n.count; c++ {
		t.search(c, query, res)
	}
}
