package gizmos

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmos/rt/mesh"
)

const DefaultBillboardSize float32 = 0.5

type GizmoMaterial struct {
	Color         mgl32.Vec4
	Unlit         bool
	Texture       *TextureId
	Billboard     bool
	BillboardSize float32
}

func NewGizmoMaterial(color mgl32.Vec4) GizmoMaterial {
	return GizmoMaterial{
		Color:         color,
		Unlit:         true,
		BillboardSize: DefaultBillboardSize,
	}
}

// GizmoRenderable is carried by every render child of a gizmo and by the
// shared line entities.
type GizmoRenderable struct {
	Mesh     mesh.Handle
	Material GizmoMaterial
}

// GizmoLinesTag marks the entities drawing the shared line meshes.
type GizmoLinesTag struct {
	Volatile bool
}
