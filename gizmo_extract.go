package gizmos

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmos/rt/mesh"
)

// DrawItem is everything a render backend needs to issue one gizmo draw.
type DrawItem struct {
	Entity      EntityId
	Matrix      mgl32.Mat4
	Mesh        mesh.Handle
	Version     uint64
	Topology    wgpu.PrimitiveTopology
	IndexFormat wgpu.IndexFormat
	IndexCount  int
	Material    GizmoMaterial
}

// GizmoDrawList is rebuilt every frame from the gizmo render entities.
type GizmoDrawList struct {
	Items []DrawItem
}

// LineItems returns the items drawing line meshes.
func (l *GizmoDrawList) LineItems() []DrawItem {
	var items []DrawItem
	for _, item := range l.Items {
		if item.Topology == wgpu.PrimitiveTopologyLineList {
			items = append(items, item)
		}
	}
	return items
}

// gizmoExtractSystem skips meshes without indices, so an empty shared line
// mesh costs no draw call.
func gizmoExtractSystem(cmd *Commands, assets *AssetServer, list *GizmoDrawList) {
	list.Items = list.Items[:0]

	MakeQuery2[GizmoRenderable, GlobalTransform](cmd).Map(func(eid EntityId, r *GizmoRenderable, global *GlobalTransform) bool {
		m, ok := assets.Mesh(r.Mesh)
		if !ok || m.IndexCount() == 0 {
			return true
		}
		list.Items = append(list.Items, DrawItem{
			Entity:      eid,
			Matrix:      global.Matrix,
			Mesh:        r.Mesh,
			Version:     assets.MeshVersion(r.Mesh),
			Topology:    m.Topology,
			IndexFormat: m.Indices().Format,
			IndexCount:  m.IndexCount(),
			Material:    r.Material,
		})
		return true
	})
}
