// Package vertices implements the mesh buffer drawn by DrawVertices.
//
// A Vertices value owns a single byte buffer laid out exactly as its wire
// form: a 32-byte header followed by the position section and the
// optional texture coordinate, color and index sections, all
// little-endian:
//
//	offset 0   u32 magic "DLVX"
//	       4   u8  version (1)
//	       5   u8  mode (0 triangles, 1 strip, 2 fan)
//	       6   u16 flags (bit0 texcoords, bit1 colors, bit2 indices)
//	       8   u32 vertex count
//	      12   u32 index count
//	      16   f32 x4 bounds (left, top, right, bottom)
//	      32   positions  vertexCount * 2 * f32
//	           texcoords  vertexCount * 2 * f32   (if flag)
//	           colors     vertexCount * u32 ARGB  (if flag)
//	           indices    indexCount  * u16       (if flag)
//
// Section offsets are fixed by the counts and flags when the buffer is
// created. Vertices values are immutable and safe for concurrent use.
package vertices

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/gogpu/displaylist/geom"
	"github.com/gogpu/displaylist/paint"
)

// Mode selects how consecutive vertices form triangles.
type Mode uint8

const (
	// Triangles takes each group of three vertices as a triangle.
	Triangles Mode = iota
	// TriangleStrip forms a triangle from every vertex and the two before it.
	TriangleStrip
	// TriangleFan forms a triangle from every vertex, the one before it and
	// the first vertex.
	TriangleFan
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Triangles:
		return "Triangles"
	case TriangleStrip:
		return "TriangleStrip"
	case TriangleFan:
		return "TriangleFan"
	default:
		return "Unknown"
	}
}

// Flags declares the optional per-vertex sections.
type Flags uint16

const (
	// HasTextureCoordinates declares the texture coordinate section.
	HasTextureCoordinates Flags = 1 << iota
	// HasColors declares the per-vertex color section.
	HasColors
	// hasIndices is derived from a non-zero index count.
	hasIndices

	knownFlags = HasTextureCoordinates | HasColors | hasIndices
)

// Point is a vertex position or texture coordinate.
type Point struct {
	X, Y float32
}

const (
	headerSize  = 32
	version     = 1
	pointSize   = 8
	colorSize   = 4
	indexSize   = 2
	magicString = "DLVX"
)

// layout holds the byte offset of each section. A missing section has
// offset -1.
type layout struct {
	positions, texCoords, colors, indices int
	size                                  int
}

func computeLayout(vertexCount, indexCount int, flags Flags) layout {
	l := layout{positions: headerSize, texCoords: -1, colors: -1, indices: -1}
	off := headerSize + vertexCount*pointSize
	if flags&HasTextureCoordinates != 0 {
		l.texCoords = off
		off += vertexCount * pointSize
	}
	if flags&HasColors != 0 {
		l.colors = off
		off += vertexCount * colorSize
	}
	if indexCount > 0 {
		l.indices = off
		off += indexCount * indexSize
	}
	l.size = off
	return l
}

// Vertices is an immutable mesh buffer.
type Vertices struct {
	data   []byte
	layout layout
}

// New copies the given sections into a new mesh buffer. texCoords and
// colors are optional; when present they must hold one entry per position,
// extra entries are ignored and missing ones are zero.
func New(mode Mode, positions, texCoords []Point, colors []paint.Color, indices []uint16) *Vertices {
	var flags Flags
	if texCoords != nil {
		flags |= HasTextureCoordinates
	}
	if colors != nil {
		flags |= HasColors
	}
	b := NewBuilder(mode, len(positions), len(indices), flags)
	b.StorePositions(positions)
	if texCoords != nil {
		b.StoreTexCoords(texCoords)
	}
	if colors != nil {
		b.StoreColors(colors)
	}
	if len(indices) > 0 {
		b.StoreIndices(indices)
	}
	return b.Build()
}

// valid reports whether v holds a header. The zero Vertices, or one left
// behind by a failed decode, reads as an empty triangle list.
func (v *Vertices) valid() bool {
	return len(v.data) >= headerSize
}

// Mode returns the vertex mode.
func (v *Vertices) Mode() Mode {
	if !v.valid() {
		return Triangles
	}
	return Mode(v.data[5])
}

func (v *Vertices) flags() Flags {
	if !v.valid() {
		return 0
	}
	return Flags(binary.LittleEndian.Uint16(v.data[6:]))
}

// VertexCount returns the number of vertices.
func (v *Vertices) VertexCount() int {
	if !v.valid() {
		return 0
	}
	return int(binary.LittleEndian.Uint32(v.data[8:]))
}

// IndexCount returns the number of indices, zero when unindexed.
func (v *Vertices) IndexCount() int {
	if !v.valid() {
		return 0
	}
	return int(binary.LittleEndian.Uint32(v.data[12:]))
}

// HasTexCoords reports whether the texture coordinate section exists.
func (v *Vertices) HasTexCoords() bool {
	return v.valid() && v.layout.texCoords >= 0
}

// HasColors reports whether the color section exists.
func (v *Vertices) HasColors() bool {
	return v.valid() && v.layout.colors >= 0
}

// HasIndices reports whether the index section exists.
func (v *Vertices) HasIndices() bool {
	return v.valid() && v.layout.indices >= 0
}

// Bounds returns the bounding rectangle of the finite positions, computed
// once when the buffer was built or decoded.
func (v *Vertices) Bounds() geom.Rect {
	if !v.valid() {
		return geom.Rect{}
	}
	return geom.LTRB(
		float64(readF32(v.data, 16)),
		float64(readF32(v.data, 20)),
		float64(readF32(v.data, 24)),
		float64(readF32(v.data, 28)),
	)
}

// Positions returns a copy of the vertex positions.
func (v *Vertices) Positions() []Point {
	if !v.valid() {
		return nil
	}
	return readPoints(v.data, v.layout.positions, v.VertexCount())
}

// TexCoords returns a copy of the texture coordinates, or nil when the
// section is absent.
func (v *Vertices) TexCoords() []Point {
	if !v.HasTexCoords() {
		return nil
	}
	return readPoints(v.data, v.layout.texCoords, v.VertexCount())
}

// Colors returns a copy of the per-vertex colors, or nil when the section
// is absent.
func (v *Vertices) Colors() []paint.Color {
	if !v.HasColors() {
		return nil
	}
	n := v.VertexCount()
	res := make([]paint.Color, n)
	for i := range res {
		res[i] = paint.Color(binary.LittleEndian.Uint32(v.data[v.layout.colors+i*colorSize:]))
	}
	return res
}

// Indices returns a copy of the indices, or nil when unindexed.
func (v *Vertices) Indices() []uint16 {
	if !v.HasIndices() {
		return nil
	}
	n := v.IndexCount()
	res := make([]uint16, n)
	for i := range res {
		res[i] = binary.LittleEndian.Uint16(v.data[v.layout.indices+i*indexSize:])
	}
	return res
}

// Size returns the number of bytes used by the buffer.
func (v *Vertices) Size() int {
	return len(v.data)
}

// Bytes returns the underlying buffer in wire form. It must not be modified.
func (v *Vertices) Bytes() []byte {
	return v.data
}

// Equals reports whether both buffers hold identical data.
func (v *Vertices) Equals(o *Vertices) bool {
	if v == o {
		return true
	}
	if v == nil || o == nil {
		return false
	}
	return bytes.Equal(v.data, o.data)
}

func readF32(b []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
}

func writeF32(b []byte, off int, f float32) {
	binary.LittleEndian.PutUint32(b[off:], math.Float32bits(f))
}

// writeBounds stores the bounds of the n positions at off into the header.
// Non-finite positions are skipped; with none left the bounds are zero.
func writeBounds(data []byte, off, n int) {
	var left, top, right, bottom float32
	first := true
	for i := range n {
		x, y := readF32(data, off+i*pointSize), readF32(data, off+i*pointSize+4)
		if !finite32(x) || !finite32(y) {
			continue
		}
		if first {
			left, top, right, bottom = x, y, x, y
			first = false
			continue
		}
		left, top = min(left, x), min(top, y)
		right, bottom = max(right, x), max(bottom, y)
	}
	writeF32(data, 16, left)
	writeF32(data, 20, top)
	writeF32(data, 24, right)
	writeF32(data, 28, bottom)
}

func finite32(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

func readPoints(b []byte, off, n int) []Point {
	res := make([]Point, n)
	for i := range res {
		res[i] = Point{X: readF32(b, off+i*pointSize), Y: readF32(b, off+i*pointSize+4)}
	}
	return res
}
