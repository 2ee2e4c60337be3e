package vertices

import (
	"encoding"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/klauspost/compress/s2"
)

// Wire decoding errors.
var (
	ErrShortBuffer = errors.New("vertices: buffer too short")
	ErrBadMagic    = errors.New("vertices: bad magic")
	ErrBadVersion  = errors.New("vertices: unsupported version")
	ErrBadMode     = errors.New("vertices: unknown vertex mode")
	ErrBadFlags    = errors.New("vertices: inconsistent section flags")
)

var (
	_ encoding.BinaryMarshaler   = (*Vertices)(nil)
	_ encoding.BinaryUnmarshaler = (*Vertices)(nil)
)

// MarshalBinary returns a copy of the buffer in wire form.
func (v *Vertices) MarshalBinary() ([]byte, error) {
	out := make([]byte, len(v.data))
	copy(out, v.data)
	return out, nil
}

// UnmarshalBinary replaces v with the mesh decoded from data. The input is
// copied. Trailing bytes after the last section are ignored, and the bounds
// field is recomputed from the decoded positions. On error v is unchanged.
func (v *Vertices) UnmarshalBinary(data []byte) error {
	if len(data) < headerSize {
		return fmt.Errorf("vertices: header needs %d bytes, got %d: %w", headerSize, len(data), ErrShortBuffer)
	}
	if string(data[:4]) != magicString {
		return fmt.Errorf("vertices: magic %q: %w", data[:4], ErrBadMagic)
	}
	if data[4] != version {
		return fmt.Errorf("vertices: version %d: %w", data[4], ErrBadVersion)
	}
	if mode := Mode(data[5]); mode > TriangleFan {
		return fmt.Errorf("vertices: mode %d: %w", mode, ErrBadMode)
	}
	flags := Flags(binary.LittleEndian.Uint16(data[6:]))
	vertexCount := binary.LittleEndian.Uint32(data[8:])
	indexCount := binary.LittleEndian.Uint32(data[12:])
	if flags&^knownFlags != 0 || (flags&hasIndices != 0) != (indexCount > 0) {
		return fmt.Errorf("vertices: flags %#x with %d indices: %w", uint16(flags), indexCount, ErrBadFlags)
	}

	// Sizes are checked in 64 bits so oversized counts cannot wrap.
	need := uint64(headerSize) + uint64(vertexCount)*pointSize
	if flags&HasTextureCoordinates != 0 {
		need += uint64(vertexCount) * pointSize
	}
	if flags&HasColors != 0 {
		need += uint64(vertexCount) * colorSize
	}
	need += uint64(indexCount) * indexSize
	if uint64(len(data)) < need {
		return fmt.Errorf("vertices: sections need %d bytes, got %d: %w", need, len(data), ErrShortBuffer)
	}

	l := computeLayout(int(vertexCount), int(indexCount), flags)
	buf := make([]byte, l.size)
	copy(buf, data)
	writeBounds(buf, l.positions, int(vertexCount))
	v.data = buf
	v.layout = l
	return nil
}

// Decode returns the mesh decoded from data.
func Decode(data []byte) (*Vertices, error) {
	v := &Vertices{}
	if err := v.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeCompressed returns the wire form compressed with S2.
func (v *Vertices) EncodeCompressed() []byte {
	return s2.Encode(nil, v.data)
}

// DecodeCompressed decompresses an S2 block produced by EncodeCompressed
// and decodes the mesh.
func DecodeCompressed(data []byte) (*Vertices, error) {
	raw, err := s2.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("vertices: decompress: %w", err)
	}
	return Decode(raw)
}
