package displaylist

import (
	"math"

	"github.com/gogpu/displaylist/geom"
)

// Translate translates the current transform. Zero or non-finite offsets
// are ignored.
func (b *Builder) Translate(tx, ty float64) {
	if !isFinite(tx) || !isFinite(ty) || (tx == 0 && ty == 0) {
		return
	}
	b.concat(geom.Translation(tx, ty), TranslateOp{TX: tx, TY: ty})
}

// Scale scales the current transform. Unit or non-finite factors are
// ignored.
func (b *Builder) Scale(sx, sy float64) {
	if !isFinite(sx) || !isFinite(sy) || (sx == 1 && sy == 1) {
		return
	}
	b.concat(geom.Scaling(sx, sy), ScaleOp{SX: sx, SY: sy})
}

// Rotate rotates the current transform by degrees, clockwise on screen.
// Whole turns are ignored.
func (b *Builder) Rotate(degrees float64) {
	if !isFinite(degrees) || math.Mod(degrees, 360) == 0 {
		return
	}
	b.concat(geom.RotationDegrees(degrees), RotateOp{Degrees: degrees})
}

// Skew skews the current transform.
func (b *Builder) Skew(sx, sy float64) {
	if !isFinite(sx) || !isFinite(sy) || (sx == 0 && sy == 0) {
		return
	}
	b.concat(geom.Skewing(sx, sy), SkewOp{SX: sx, SY: sy})
}

// Transform2DAffine concatenates a 2D affine matrix:
//
//	x' = mxx*x + mxy*y + mxt
//	y' = myx*x + myy*y + myt
func (b *Builder) Transform2DAffine(mxx, mxy, mxt, myx, myy, myt float64) {
	m := geom.Affine(mxx, mxy, mxt, myx, myy, myt)
	if !m.IsFinite() || m.IsIdentity() {
		return
	}
	b.concat(m, Transform2DAffineOp{MXX: mxx, MXY: mxy, MXT: mxt, MYX: myx, MYY: myy, MYT: myt})
}

// TransformFullPerspective concatenates a 4x4 matrix. Matrices without Z
// or perspective terms are recorded as Transform2DAffine.
func (b *Builder) TransformFullPerspective(m geom.Matrix) {
	if !m.IsFinite() || m.IsIdentity() {
		return
	}
	if m.Is2D() && !m.HasPerspective() {
		a := m.Aff3()
		b.Transform2DAffine(a[0], a[1], a[2], a[3], a[4], a[5])
		return
	}
	b.concat(m, TransformFullPerspectiveOp{Matrix: m})
}

// TransformReset replaces the current transform with the identity.
func (b *Builder) TransformReset() {
	if b.global.IsIdentity() {
		return
	}
	b.global = geom.Identity()
	if inv, ok := b.layer.base.Invert(); ok {
		b.local = inv
	} else {
		b.local = geom.Identity()
	}
	b.recordState(TransformResetOp{})
}

// concat applies m before the current transform and records op.
func (b *Builder) concat(m geom.Matrix, op Op) {
	b.global = b.global.Concat(m)
	b.local = b.local.Concat(m)
	b.recordState(op)
}

// recordState records a transform, clip or attribute operation.
func (b *Builder) recordState(op Op) {
	if b.nop {
		return
	}
	b.checkDeferred()
	b.push(op)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
