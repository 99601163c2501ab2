package mesh

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// Well known vertex attribute names.
const (
	AttributePosition = "Vertex_Position"
	AttributeColor    = "Vertex_Color"
	AttributeUv       = "Vertex_Uv"
)

// VertexAttribute is a single vertex stream. Only the slice matching Format is used.
type VertexAttribute struct {
	Format    wgpu.VertexFormat
	Float32x2 []mgl32.Vec2
	Float32x3 []mgl32.Vec3
	Float32x4 []mgl32.Vec4
}

// Len returns the number of elements in the stream.
func (a *VertexAttribute) Len() int {
	switch a.Format {
	case wgpu.VertexFormatFloat32x2:
		return len(a.Float32x2)
	case wgpu.VertexFormatFloat32x3:
		return len(a.Float32x3)
	case wgpu.VertexFormatFloat32x4:
		return len(a.Float32x4)
	}
	return 0
}

// Indices holds either 16 or 32 bit index data, selected by Format.
type Indices struct {
	Format wgpu.IndexFormat
	U16    []uint16
	U32    []uint32
}

func (ix *Indices) Len() int {
	if ix == nil {
		return 0
	}
	if ix.Format == wgpu.IndexFormatUint16 {
		return len(ix.U16)
	}
	return len(ix.U32)
}

// At returns the i-th index widened to 32 bits.
func (ix *Indices) At(i int) uint32 {
	if ix.Format == wgpu.IndexFormatUint16 {
		return uint32(ix.U16[i])
	}
	return ix.U32[i]
}

// Mesh is CPU side geometry: named vertex streams plus an optional index list.
type Mesh struct {
	Topology   wgpu.PrimitiveTopology
	attributes map[string]*VertexAttribute
	indices    *Indices
}

func New(topology wgpu.PrimitiveTopology) *Mesh {
	return &Mesh{
		Topology:   topology,
		attributes: make(map[string]*VertexAttribute),
	}
}

// NewLineBuffer creates an empty line list mesh with position, color and
// 32 bit index storage, ready to be used as a shared line buffer.
func NewLineBuffer(capacity int) *Mesh {
	m := New(wgpu.PrimitiveTopologyLineList)
	m.SetPositions(make([]mgl32.Vec3, 0, capacity))
	m.SetColors(make([]mgl32.Vec4, 0, capacity))
	m.SetIndicesU32(make([]uint32, 0, capacity))
	return m
}

func (m *Mesh) SetAttribute(name string, attr VertexAttribute) {
	m.attributes[name] = &attr
}

func (m *Mesh) SetPositions(positions []mgl32.Vec3) {
	m.SetAttribute(AttributePosition, VertexAttribute{
		Format:    wgpu.VertexFormatFloat32x3,
		Float32x3: positions,
	})
}

func (m *Mesh) SetColors(colors []mgl32.Vec4) {
	m.SetAttribute(AttributeColor, VertexAttribute{
		Format:    wgpu.VertexFormatFloat32x4,
		Float32x4: colors,
	})
}

// RemoveAttribute drops a vertex stream, if present.
func (m *Mesh) RemoveAttribute(name string) {
	delete(m.attributes, name)
}

func (m *Mesh) SetIndicesU16(indices []uint16) {
	m.indices = &Indices{Format: wgpu.IndexFormatUint16, U16: indices}
}

func (m *Mesh) SetIndicesU32(indices []uint32) {
	m.indices = &Indices{Format: wgpu.IndexFormatUint32, U32: indices}
}

// Attribute returns the named vertex stream.
func (m *Mesh) Attribute(name string) (*VertexAttribute, bool) {
	attr, ok := m.attributes[name]
	return attr, ok
}

// Indices returns the index list, nil for non indexed meshes.
func (m *Mesh) Indices() *Indices {
	return m.indices
}

// Positions panics if the mesh has no Float32x3 position stream.
func (m *Mesh) Positions() []mgl32.Vec3 {
	return m.float32x3(AttributePosition)
}

// Colors panics if the mesh has no Float32x4 color stream.
func (m *Mesh) Colors() []mgl32.Vec4 {
	return m.float32x4(AttributeColor)
}

func (m *Mesh) VertexCount() int {
	if attr, ok := m.attributes[AttributePosition]; ok {
		return attr.Len()
	}
	return 0
}

func (m *Mesh) IndexCount() int {
	return m.indices.Len()
}

func (m *Mesh) float32x3(name string) []mgl32.Vec3 {
	attr := m.mustAttribute(name, wgpu.VertexFormatFloat32x3)
	return attr.Float32x3
}

func (m *Mesh) float32x4(name string) []mgl32.Vec4 {
	attr := m.mustAttribute(name, wgpu.VertexFormatFloat32x4)
	return attr.Float32x4
}

func (m *Mesh) mustAttribute(name string, format wgpu.VertexFormat) *VertexAttribute {
	attr, ok := m.attributes[name]
	if !ok {
		panic(fmt.Sprintf("missing %q mesh attribute", name))
	}
	if attr.Format != format {
		panic(fmt.Sprintf("wrong %q mesh attribute format: expected %d, got %d", name, format, attr.Format))
	}
	return attr
}
