package displaylist

import (
	"encoding/binary"
	"image"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"

	"github.com/gogpu/displaylist/geom"
)

// hasher feeds the canonical field encoding of operations into xxhash.
// Values compared by identity (images, filters, text) contribute only
// properties that identical values share, so equal lists hash equally.
type hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

func newHasher() *hasher {
	return &hasher{d: xxhash.New()}
}

func (h *hasher) u64(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	_, _ = h.d.Write(h.buf[:])
}

func (h *hasher) f64(v float64) {
	if v == 0 {
		v = 0 // fold -0 into +0
	}
	h.u64(math.Float64bits(v))
}

func (h *hasher) bool(b bool) {
	if b {
		h.u64(1)
	} else {
		h.u64(0)
	}
}

func (h *hasher) bytes(b []byte) {
	h.u64(uint64(len(b)))
	_, _ = h.d.Write(b)
}

func (h *hasher) point(p geom.Point) {
	h.f64(p.X)
	h.f64(p.Y)
}

func (h *hasher) rect(r geom.Rect) {
	h.f64(r.Left)
	h.f64(r.Top)
	h.f64(r.Right)
	h.f64(r.Bottom)
}

func (h *hasher) rrect(rr geom.RRect) {
	h.rect(rr.Rect)
	for _, r := range rr.Radii {
		h.f64(r.X)
		h.f64(r.Y)
	}
}

func (h *hasher) matrix(m geom.Matrix) {
	for _, v := range m {
		h.f64(v)
	}
}

func (h *hasher) typeOf(v any) {
	if v == nil {
		h.u64(0)
		return
	}
	_, _ = h.d.WriteString(reflect.TypeOf(v).String())
}

func (h *hasher) image(img image.Image) {
	if img == nil {
		h.u64(0)
		return
	}
	b := img.Bounds()
	h.u64(uint64(b.Dx()))
	h.u64(uint64(b.Dy()))
}

func (h *hasher) path(p *geom.Path) {
	if p == nil {
		h.u64(0)
		return
	}
	h.u64(uint64(p.FillType()))
	h.bool(p.IsInverseFill())
	for _, e := range p.Elements() {
		switch e := e.(type) {
		case geom.MoveTo:
			h.u64(1)
			h.point(e.Point)
		case geom.LineTo:
			h.u64(2)
			h.point(e.Point)
		case geom.QuadTo:
			h.u64(3)
			h.point(e.Control)
			h.point(e.Point)
		case geom.CubicTo:
			h.u64(4)
			h.point(e.Control1)
			h.point(e.Control2)
			h.point(e.Point)
		case geom.Close:
			h.u64(5)
		}
	}
}

func (h *hasher) sum() uint64 {
	return h.d.Sum64()
}
