package vertices

import "github.com/gogpu/gputypes"

// Shader locations of the vertex attributes described by
// VertexBufferLayouts.
const (
	PositionLocation = 0
	TexCoordLocation = 1
	ColorLocation    = 2
)

// Topology returns the primitive topology for the mesh. Triangle fans have
// no GPU topology and report false; they must be converted to a list first.
func (v *Vertices) Topology() (gputypes.PrimitiveTopology, bool) {
	switch v.Mode() {
	case Triangles:
		return gputypes.PrimitiveTopologyTriangleList, true
	case TriangleStrip:
		return gputypes.PrimitiveTopologyTriangleStrip, true
	default:
		return gputypes.PrimitiveTopologyTriangleList, false
	}
}

// PrimitiveState returns the primitive state for a render pipeline drawing
// the mesh, or false for triangle fans.
func (v *Vertices) PrimitiveState() (gputypes.PrimitiveState, bool) {
	topo, ok := v.Topology()
	return gputypes.PrimitiveState{
		Topology: topo,
		CullMode: gputypes.CullModeNone,
	}, ok
}

// VertexBufferLayouts describes each present section as a separate,
// non-interleaved vertex buffer: positions at location 0, texture
// coordinates at location 1 and ARGB colors (one uint32 per vertex) at
// location 2.
func (v *Vertices) VertexBufferLayouts() []gputypes.VertexBufferLayout {
	layouts := []gputypes.VertexBufferLayout{
		{
			ArrayStride: pointSize,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: PositionLocation},
			},
		},
	}
	if v.HasTexCoords() {
		layouts = append(layouts, gputypes.VertexBufferLayout{
			ArrayStride: pointSize,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: TexCoordLocation},
			},
		})
	}
	if v.HasColors() {
		layouts = append(layouts, gputypes.VertexBufferLayout{
			ArrayStride: colorSize,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatUint32, Offset: 0, ShaderLocation: ColorLocation},
			},
		})
	}
	return layouts
}

// IndexFormat returns the index format of the index section.
func (v *Vertices) IndexFormat() gputypes.IndexFormat {
	return gputypes.IndexFormatUint16
}

// SectionBytes returns the raw bytes of each vertex buffer in the order
// used by VertexBufferLayouts, followed by the index bytes (nil when
// unindexed). The slices alias the buffer and must not be modified.
func (v *Vertices) SectionBytes() (buffers [][]byte, indices []byte) {
	if !v.valid() {
		return nil, nil
	}
	n := v.VertexCount()
	buffers = append(buffers, v.data[v.layout.positions:v.layout.positions+n*pointSize])
	if v.layout.texCoords >= 0 {
		buffers = append(buffers, v.data[v.layout.texCoords:v.layout.texCoords+n*pointSize])
	}
	if v.layout.colors >= 0 {
		buffers = append(buffers, v.data[v.layout.colors:v.layout.colors+n*colorSize])
	}
	if v.layout.indices >= 0 {
		indices = v.data[v.layout.indices : v.layout.indices+v.IndexCount()*indexSize]
	}
	return buffers, indices
}
