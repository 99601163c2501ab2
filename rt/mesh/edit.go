package mesh

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// Edit gives typed mutable access to the position, color and 32 bit index
// storage of a single mesh. Writes go straight into the mesh.
type Edit struct {
	Positions *[]mgl32.Vec3
	Colors    *[]mgl32.Vec4
	Indices   *[]uint32
}

// NewEdit panics when the mesh lacks a Float32x3 position stream, a Float32x4
// color stream or 32 bit indices.
func NewEdit(m *Mesh) *Edit {
	positions := m.mustAttribute(AttributePosition, wgpu.VertexFormatFloat32x3)
	colors := m.mustAttribute(AttributeColor, wgpu.VertexFormatFloat32x4)
	if m.indices == nil {
		panic("missing mesh indices")
	}
	if m.indices.Format != wgpu.IndexFormatUint32 {
		panic(fmt.Sprintf("wrong mesh indices format: expected %d, got %d", wgpu.IndexFormatUint32, m.indices.Format))
	}
	return &Edit{
		Positions: &positions.Float32x3,
		Colors:    &colors.Float32x4,
		Indices:   &m.indices.U32,
	}
}

func (e *Edit) VertexCount() int { return len(*e.Positions) }
func (e *Edit) IndexCount() int  { return len(*e.Indices) }

// Clear truncates every stream, keeping the allocated capacity.
func (e *Edit) Clear() {
	*e.Positions = (*e.Positions)[:0]
	*e.Colors = (*e.Colors)[:0]
	*e.Indices = (*e.Indices)[:0]
}

// LazyEdit defers fetching a mutable mesh until the first Get, so a tick
// that never touches the mesh never bumps its version.
type LazyEdit struct {
	store    *Store
	handle   Handle
	edit     *Edit
	released bool
}

// BeginEdit opens an edit session on h. Nothing is fetched until Get.
func (s *Store) BeginEdit(h Handle) *LazyEdit {
	return &LazyEdit{store: s, handle: h}
}

func (l *LazyEdit) Get() *Edit {
	if l.released {
		panic(fmt.Sprintf("edit session for mesh %s already released", l.handle))
	}
	if l.edit == nil {
		l.edit = NewEdit(l.store.GetMut(l.handle))
	}
	return l.edit
}

// Acquired reports whether Get was called during this session.
func (l *LazyEdit) Acquired() bool {
	return l.edit != nil
}

func (l *LazyEdit) Release() {
	l.edit = nil
	l.released = true
}
