package displaylist

import (
	"github.com/gogpu/displaylist/geom"
)

// Dispatch replays every operation into r in recording order.
func (dl *DisplayList) Dispatch(r Receiver) {
	for _, op := range dl.ops {
		op.dispatch(r)
	}
}

// DispatchRange replays the operations with indices in [start, end). The
// range is clamped to the list. Ranges that split a Save from its Restore
// leave r unbalanced.
func (dl *DisplayList) DispatchRange(r Receiver, start, end int) {
	start = max(start, 0)
	end = min(end, len(dl.ops))
	for i := start; i < end; i++ {
		dl.ops[i].dispatch(r)
	}
}

// DispatchCulled replays only what can paint inside the device rectangle
// cull. Draws outside cull are skipped, as are Save and SaveLayer scopes
// that contain nothing inside cull. A SaveLayer that is itself indexed,
// such as one with an image filter, is replayed whole.
//
// Without an R-tree, or when cull contains the list bounds, every
// operation is replayed.
func (dl *DisplayList) DispatchCulled(r Receiver, cull geom.Rect) {
	if dl.rtree == nil || cull.Contains(dl.bounds) {
		dl.Dispatch(r)
		return
	}
	hits := dl.rtree.Search(cull)
	if len(hits) == 0 {
		return
	}

	n := len(dl.ops)
	hit := make([]bool, n)
	for _, id := range hits {
		if id >= 0 && id < n {
			hit[id] = true
		}
	}
	// prefix[i] counts the hits among ops[:i].
	prefix := make([]int, n+1)
	for i, h := range hit {
		prefix[i+1] = prefix[i]
		if h {
			prefix[i+1]++
		}
	}
	last := hits[len(hits)-1]

	for i := 0; i < n; i++ {
		op := dl.ops[i]
		switch o := op.(type) {
		case SaveLayerOp:
			if hit[i] {
				dl.DispatchRange(r, i, o.restoreIndex+1)
				i = o.restoreIndex
				continue
			}
			if prefix[o.restoreIndex+1]-prefix[i] == 0 {
				i = o.restoreIndex
				continue
			}
			op.dispatch(r)
		case SaveOp:
			if prefix[o.restoreIndex+1]-prefix[i] == 0 {
				i = o.restoreIndex
				continue
			}
			op.dispatch(r)
		case RestoreOp:
			op.dispatch(r)
		default:
			switch {
			case op.Kind().IsDraw():
				if hit[i] {
					op.dispatch(r)
				}
			case i < last:
				op.dispatch(r)
			}
		}
	}
}
