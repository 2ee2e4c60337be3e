package displaylist

import (
	"sync"

	"github.com/gogpu/displaylist/geom"
	"github.com/gogpu/displaylist/rtree"
)

// DisplayList is an immutable recording produced by Builder.Build.
//
// A DisplayList is safe for concurrent use: replay, search and comparison
// never modify it. It may be embedded in any number of other lists with
// DrawDisplayList.
type DisplayList struct {
	ops           []Op
	byteSize      int
	renderOpCount int
	nestedOpCount int

	bounds               geom.Rect
	canApplyGroupOpacity bool
	rtree                *rtree.RTree

	fingerprintOnce sync.Once
	fingerprint     uint64
}

// Ops returns the recorded operations. The slice must not be modified.
func (dl *DisplayList) Ops() []Op {
	return dl.ops
}

// OpCount returns the number of recorded operations. With nested set, the
// operations of embedded lists are counted too.
func (dl *DisplayList) OpCount(nested bool) int {
	if nested {
		return dl.nestedOpCount
	}
	return len(dl.ops)
}

// RenderOpCount returns the number of draws and layers.
func (dl *DisplayList) RenderOpCount() int {
	return dl.renderOpCount
}

// ByteSize returns the encoded size of the operations in bytes.
func (dl *DisplayList) ByteSize() int {
	return dl.byteSize
}

// Bounds returns the area the list may paint, in the coordinates it was
// recorded in. An empty list has zero bounds.
func (dl *DisplayList) Bounds() geom.Rect {
	return dl.bounds
}

// CanApplyGroupOpacity reports whether drawing the list with an opacity
// may be done by scaling the alpha of each draw instead of compositing a
// layer.
func (dl *DisplayList) CanApplyGroupOpacity() bool {
	return dl.canApplyGroupOpacity
}

// RTree returns the spatial index, or nil when the list was built without
// one.
func (dl *DisplayList) RTree() *rtree.RTree {
	return dl.rtree
}

// Equals reports whether dl and o record equivalent operations.
func (dl *DisplayList) Equals(o *DisplayList) bool {
	if dl == o {
		return true
	}
	if dl == nil || o == nil {
		return false
	}
	if len(dl.ops) != len(o.ops) || dl.renderOpCount != o.renderOpCount || dl.byteSize != o.byteSize {
		return false
	}
	for i, op := range dl.ops {
		if op.Kind() != o.ops[i].Kind() || !op.equal(o.ops[i]) {
			return false
		}
	}
	return true
}

// nestsAcyclically reports whether no list reachable from dl through
// DrawDisplayList ops contains itself. path holds the lists being visited.
func nestsAcyclically(dl *DisplayList, path map[*DisplayList]bool) bool {
	if path[dl] {
		return false
	}
	path[dl] = true
	defer delete(path, dl)
	for _, op := range dl.ops {
		if n, ok := op.(DrawDisplayListOp); ok && n.List != nil && !nestsAcyclically(n.List, path) {
			return false
		}
	}
	return true
}

// Fingerprint returns a hash of the operations. Equal lists have equal
// fingerprints. It is computed once.
func (dl *DisplayList) Fingerprint() uint64 {
	if dl == nil {
		return 0
	}
	dl.fingerprintOnce.Do(func() {
		h := newHasher()
		for _, op := range dl.ops {
			h.u64(uint64(op.Kind()))
			op.hash(h)
		}
		dl.fingerprint = h.sum()
	})
	return dl.fingerprint
}
