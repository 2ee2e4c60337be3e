package vertices

import (
	"encoding/binary"

	"github.com/gogpu/displaylist/internal/debug"
	"github.com/gogpu/displaylist/internal/dlog"
	"github.com/gogpu/displaylist/paint"
)

type section uint8

const (
	sectionPositions section = iota
	sectionTexCoords
	sectionColors
	sectionIndices
)

func (s section) String() string {
	switch s {
	case sectionPositions:
		return "positions"
	case sectionTexCoords:
		return "texture coordinates"
	case sectionColors:
		return "colors"
	default:
		return "indices"
	}
}

// Builder fills the sections of a mesh buffer whose shape is fixed at
// construction. Each declared section is filled once, either with a Store
// method or by writing through the slice returned by the matching view
// method. Sections that were never filled are zero in the built buffer.
type Builder struct {
	mode        Mode
	flags       Flags
	vertexCount int
	indexCount  int

	positions []Point
	texCoords []Point
	colors    []paint.Color
	indices   []uint16

	filled [4]bool
	built  bool
}

// NewBuilder creates a builder for vertexCount vertices and indexCount
// indices with the optional sections declared by flags. Negative counts
// are treated as zero.
func NewBuilder(mode Mode, vertexCount, indexCount int, flags Flags) *Builder {
	vertexCount = max(vertexCount, 0)
	indexCount = max(indexCount, 0)
	flags &= HasTextureCoordinates | HasColors
	b := &Builder{
		mode:        mode,
		flags:       flags,
		vertexCount: vertexCount,
		indexCount:  indexCount,
		positions:   make([]Point, vertexCount),
	}
	if flags&HasTextureCoordinates != 0 {
		b.texCoords = make([]Point, vertexCount)
	}
	if flags&HasColors != 0 {
		b.colors = make([]paint.Color, vertexCount)
	}
	if indexCount > 0 {
		b.indices = make([]uint16, indexCount)
	}
	return b
}

// Positions returns the writable position section.
func (b *Builder) Positions() []Point {
	b.filled[sectionPositions] = true
	return b.positions
}

// TexCoords returns the writable texture coordinate section, or nil when
// it was not declared.
func (b *Builder) TexCoords() []Point {
	if !b.declared(sectionTexCoords) {
		return nil
	}
	b.filled[sectionTexCoords] = true
	return b.texCoords
}

// Colors returns the writable color section, or nil when it was not
// declared.
func (b *Builder) Colors() []paint.Color {
	if !b.declared(sectionColors) {
		return nil
	}
	b.filled[sectionColors] = true
	return b.colors
}

// Indices returns the writable index section, or nil when the index count
// is zero.
func (b *Builder) Indices() []uint16 {
	if !b.declared(sectionIndices) {
		return nil
	}
	b.filled[sectionIndices] = true
	return b.indices
}

// StorePositions copies pts into the position section.
func (b *Builder) StorePositions(pts []Point) {
	if b.beginStore(sectionPositions) {
		copy(b.positions, pts)
	}
}

// StoreTexCoords copies pts into the texture coordinate section.
func (b *Builder) StoreTexCoords(pts []Point) {
	if b.beginStore(sectionTexCoords) {
		copy(b.texCoords, pts)
	}
}

// StoreColors copies colors into the color section.
func (b *Builder) StoreColors(colors []paint.Color) {
	if b.beginStore(sectionColors) {
		copy(b.colors, colors)
	}
}

// StoreIndices copies indices into the index section.
func (b *Builder) StoreIndices(indices []uint16) {
	if b.beginStore(sectionIndices) {
		copy(b.indices, indices)
	}
}

func (b *Builder) declared(s section) bool {
	ok := s == sectionPositions || b.isDeclared(s)
	if !ok {
		debug.Assert(false, "vertices: %s section was not declared", s)
		dlog.L().Warn("vertices: write to undeclared section ignored", "section", s.String())
	}
	return ok
}

func (b *Builder) beginStore(s section) bool {
	if !b.declared(s) {
		return false
	}
	if b.filled[s] {
		debug.Assert(false, "vertices: %s section stored twice", s)
		dlog.L().Warn("vertices: section already filled, store ignored", "section", s.String())
		return false
	}
	b.filled[s] = true
	return true
}

// Build encodes the sections into an immutable buffer. Declared sections
// that were never filled are left zero. The builder must not be used
// afterwards.
func (b *Builder) Build() *Vertices {
	debug.Assert(!b.built, "vertices: Build called twice")
	b.built = true

	for s := sectionPositions; s <= sectionIndices; s++ {
		if b.isDeclared(s) && !b.filled[s] {
			debug.Assert(false, "vertices: %s section was never filled", s)
			dlog.L().Warn("vertices: section never filled, using zero values", "section", s.String())
		}
	}

	flags := b.flags
	if b.indexCount > 0 {
		flags |= hasIndices
	}
	l := computeLayout(b.vertexCount, b.indexCount, flags)
	data := make([]byte, l.size)

	copy(data, magicString)
	data[4] = version
	data[5] = byte(b.mode)
	binary.LittleEndian.PutUint16(data[6:], uint16(flags))
	binary.LittleEndian.PutUint32(data[8:], uint32(b.vertexCount))
	binary.LittleEndian.PutUint32(data[12:], uint32(b.indexCount))

	for i, p := range b.positions {
		off := l.positions + i*pointSize
		writeF32(data, off, p.X)
		writeF32(data, off+4, p.Y)
	}
	writeBounds(data, l.positions, b.vertexCount)

	for i, p := range b.texCoords {
		off := l.texCoords + i*pointSize
		writeF32(data, off, p.X)
		writeF32(data, off+4, p.Y)
	}
	for i, c := range b.colors {
		binary.LittleEndian.PutUint32(data[l.colors+i*colorSize:], uint32(c))
	}
	for i, idx := range b.indices {
		binary.LittleEndian.PutUint16(data[l.indices+i*indexSize:], idx)
	}
	return &Vertices{data: data, layout: l}
}

func (b *Builder) isDeclared(s section) bool {
	switch s {
	case sectionTexCoords:
		return b.flags&HasTextureCoordinates != 0
	case sectionColors:
		return b.flags&HasColors != 0
	case sectionIndices:
		return b.indexCount > 0
	}
	return b.vertexCount > 0
}
