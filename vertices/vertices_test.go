package vertices

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/displaylist/geom"
	"github.com/gogpu/displaylist/paint"
)

func samplePositions() []Point {
	return []Point{
		{X: 10, Y: 20}, {X: 30.5, Y: 5}, {X: -4, Y: 12},
		{X: 7, Y: 7}, {X: 100, Y: 40.25}, {X: 0, Y: 0},
	}
}

func sampleColors() []paint.Color {
	return []paint.Color{paint.Red, paint.Green, paint.Blue, paint.White, paint.Black, 0x80112233}
}

func TestRoundTripPositionsAndColors(t *testing.T) {
	pos := samplePositions()
	colors := sampleColors()

	v := New(Triangles, pos, nil, colors, nil)

	require.Equal(t, Triangles, v.Mode())
	require.Equal(t, 6, v.VertexCount())
	require.Equal(t, pos, v.Positions())
	require.Equal(t, colors, v.Colors())
	require.Nil(t, v.TexCoords())
	require.Nil(t, v.Indices())
	require.Zero(t, v.IndexCount())
	require.Equal(t, geom.LTRB(-4, 0, 100, 40.25), v.Bounds())
	require.Equal(t, headerSize+6*pointSize+6*colorSize, v.Size())
}

func TestBuilderViews(t *testing.T) {
	b := NewBuilder(TriangleStrip, 3, 3, HasTextureCoordinates)
	copy(b.Positions(), []Point{{1, 1}, {2, 5}, {3, 1}})
	copy(b.TexCoords(), []Point{{0, 0}, {0.5, 1}, {1, 0}})
	copy(b.Indices(), []uint16{0, 1, 2})
	require.Nil(t, b.Colors(), "undeclared section has no view")

	v := b.Build()
	require.Equal(t, TriangleStrip, v.Mode())
	require.Equal(t, []Point{{0, 0}, {0.5, 1}, {1, 0}}, v.TexCoords())
	require.Equal(t, []uint16{0, 1, 2}, v.Indices())
	require.Nil(t, v.Colors())
	require.Equal(t, geom.LTRB(1, 1, 3, 5), v.Bounds())
}

func TestBuilderUnfilledSectionIsZero(t *testing.T) {
	b := NewBuilder(Triangles, 3, 0, HasColors)
	b.StorePositions([]Point{{1, 2}, {3, 4}, {5, 6}})
	v := b.Build()
	require.Equal(t, []paint.Color{0, 0, 0}, v.Colors())
}

func TestBuilderSecondStoreIgnored(t *testing.T) {
	b := NewBuilder(Triangles, 1, 0, 0)
	b.StorePositions([]Point{{1, 2}})
	b.StorePositions([]Point{{9, 9}})
	require.Equal(t, []Point{{1, 2}}, b.Build().Positions())
}

func TestEmptyMesh(t *testing.T) {
	v := New(Triangles, nil, nil, nil, nil)
	require.Zero(t, v.VertexCount())
	require.True(t, v.Bounds().IsEmpty())
	require.Equal(t, headerSize, v.Size())
}

func TestEquals(t *testing.T) {
	a := New(Triangles, samplePositions(), nil, sampleColors(), nil)
	b := New(Triangles, samplePositions(), nil, sampleColors(), nil)
	c := New(TriangleFan, samplePositions(), nil, sampleColors(), nil)
	require.True(t, a.Equals(b))
	require.False(t, a.Equals(c))
	require.False(t, a.Equals(nil))
}

func TestWireRoundTrip(t *testing.T) {
	orig := New(TriangleFan, samplePositions(), samplePositions(), sampleColors(), []uint16{0, 1, 2, 3, 4, 5})
	data, err := orig.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, magicString, string(data[:4]))
	require.Equal(t, byte(version), data[4])
	require.Equal(t, uint16(HasTextureCoordinates|HasColors|hasIndices), binary.LittleEndian.Uint16(data[6:]))

	var got Vertices
	require.NoError(t, got.UnmarshalBinary(data))
	require.True(t, orig.Equals(&got))
	require.Equal(t, orig.Positions(), got.Positions())
	require.Equal(t, orig.TexCoords(), got.TexCoords())
	require.Equal(t, orig.Colors(), got.Colors())
	require.Equal(t, orig.Indices(), got.Indices())
	require.Equal(t, orig.Bounds(), got.Bounds())
}

func TestUnmarshalErrors(t *testing.T) {
	good, err := New(Triangles, samplePositions(), nil, nil, nil).MarshalBinary()
	require.NoError(t, err)

	corrupt := func(f func(b []byte) []byte) []byte {
		b := append([]byte(nil), good...)
		return f(b)
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"short header", good[:10], ErrShortBuffer},
		{"truncated section", good[:len(good)-1], ErrShortBuffer},
		{"magic", corrupt(func(b []byte) []byte { b[0] = 'X'; return b }), ErrBadMagic},
		{"version", corrupt(func(b []byte) []byte { b[4] = 9; return b }), ErrBadVersion},
		{"mode", corrupt(func(b []byte) []byte { b[5] = 7; return b }), ErrBadMode},
		{"index flag without indices", corrupt(func(b []byte) []byte { b[6] |= byte(hasIndices); return b }), ErrBadFlags},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUnmarshalRecomputesBounds(t *testing.T) {
	orig := New(Triangles, samplePositions(), nil, nil, nil)
	data, err := orig.MarshalBinary()
	require.NoError(t, err)

	// Stale or corrupt header bounds are replaced by the positions' extent.
	binary.LittleEndian.PutUint32(data[16:], math.Float32bits(float32(math.NaN())))
	binary.LittleEndian.PutUint32(data[24:], math.Float32bits(1e6))

	got, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, geom.LTRB(-4, 0, 100, 40.25), got.Bounds())
	require.True(t, orig.Equals(got))
}

func TestBoundsSkipNonFinitePositions(t *testing.T) {
	nan := float32(math.NaN())
	v := New(Triangles, []Point{{X: 1, Y: 2}, {X: nan, Y: 50}, {X: 5, Y: float32(math.Inf(1))}, {X: 3, Y: 4}}, nil, nil, nil)
	require.Equal(t, geom.LTRB(1, 2, 3, 4), v.Bounds())
}

func TestZeroVertices(t *testing.T) {
	var v Vertices
	require.ErrorIs(t, v.UnmarshalBinary([]byte("DLVX")), ErrShortBuffer)

	require.Equal(t, Triangles, v.Mode())
	require.Zero(t, v.VertexCount())
	require.Zero(t, v.IndexCount())
	require.True(t, v.Bounds().IsEmpty())
	require.False(t, v.HasTexCoords())
	require.False(t, v.HasColors())
	require.False(t, v.HasIndices())
	require.Empty(t, v.Positions())
	require.Nil(t, v.TexCoords())
	require.Nil(t, v.Colors())
	require.Nil(t, v.Indices())

	buffers, indices := v.SectionBytes()
	require.Nil(t, buffers)
	require.Nil(t, indices)
}

func TestCompressedRoundTrip(t *testing.T) {
	pos := make([]Point, 300)
	for i := range pos {
		pos[i] = Point{X: float32(i % 10), Y: float32(i % 7)}
	}
	orig := New(Triangles, pos, nil, nil, nil)
	packed := orig.EncodeCompressed()
	require.Less(t, len(packed), orig.Size())

	got, err := DecodeCompressed(packed)
	require.NoError(t, err)
	require.True(t, orig.Equals(got))

	_, err = DecodeCompressed([]byte{0xff, 0xff, 0xff})
	require.Error(t, err)
}

func TestGPUDescriptors(t *testing.T) {
	v := New(Triangles, samplePositions(), samplePositions(), sampleColors(), []uint16{0, 1, 2})
	topo, ok := v.Topology()
	require.True(t, ok)
	require.Equal(t, gputypes.PrimitiveTopologyTriangleList, topo)

	layouts := v.VertexBufferLayouts()
	require.Len(t, layouts, 3)
	require.Equal(t, gputypes.VertexFormatFloat32x2, layouts[0].Attributes[0].Format)
	require.Equal(t, gputypes.VertexFormatUint32, layouts[2].Attributes[0].Format)
	require.Equal(t, gputypes.IndexFormatUint16, v.IndexFormat())

	buffers, indices := v.SectionBytes()
	require.Len(t, buffers, 3)
	require.Len(t, buffers[0], 6*pointSize)
	require.Len(t, buffers[2], 6*colorSize)
	require.Len(t, indices, 3*indexSize)

	fan := New(TriangleFan, samplePositions(), nil, nil, nil)
	_, ok = fan.Topology()
	require.False(t, ok)
	require.Len(t, fan.VertexBufferLayouts(), 1)
}
