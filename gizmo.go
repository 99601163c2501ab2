package gizmos

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmos/rt/mesh"
)

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisZ:
		return "Z"
	}
	return "Y"
}

// GizmoShape is one of the Shape* types below.
type GizmoShape interface {
	gizmoShape()
}

// ShapeEmpty marks a point: an octahedron when filled, a 3 axis cross as
// wireframe.
type ShapeEmpty struct {
	Radius float32
}

// ShapeBillboard is a camera facing quad. It has no wireframe form.
type ShapeBillboard struct {
	Texture *TextureId
	Size    float32
}

type ShapeCube struct {
	Size mgl32.Vec3
}

type ShapeCircle struct {
	Radius float32
}

type ShapeSphere struct {
	Radius float32
}

type ShapeHemisphere struct {
	Radius float32
}

type ShapeCylinder struct {
	Radius float32
	Height float32
}

// ShapeCapsule is a cylinder of Height capped by two hemispheres of Radius,
// aligned with Axis.
type ShapeCapsule struct {
	Radius float32
	Height float32
	Axis   Axis
}

type ShapeMesh struct {
	Mesh mesh.Handle
}

func (ShapeEmpty) gizmoShape()      {}
func (ShapeBillboard) gizmoShape()  {}
func (ShapeCube) gizmoShape()       {}
func (ShapeCircle) gizmoShape()     {}
func (ShapeSphere) gizmoShape()     {}
func (ShapeHemisphere) gizmoShape() {}
func (ShapeCylinder) gizmoShape()   {}
func (ShapeCapsule) gizmoShape()    {}
func (ShapeMesh) gizmoShape()       {}

// Gizmo describes a persistent debug shape. Whenever it changes, the render
// children of its entity are rebuilt. A style whose color is fully
// transparent gets no children.
type Gizmo struct {
	Shape          GizmoShape
	WireframeColor mgl32.Vec4
	FillColor      mgl32.Vec4
}

// DefaultGizmo is a white wireframe unit cube without fill.
func DefaultGizmo() Gizmo {
	return Gizmo{
		Shape:          ShapeCube{Size: mgl32.Vec3{1, 1, 1}},
		WireframeColor: mgl32.Vec4{1, 1, 1, 1},
		FillColor:      mgl32.Vec4{0, 0, 0, 0},
	}
}

type GizmoBundle struct {
	Gizmo           Gizmo
	Transform       Transform
	GlobalTransform GlobalTransform
	Children        Children
}

func NewGizmoBundle(transform Transform, gizmo Gizmo) GizmoBundle {
	return GizmoBundle{
		Gizmo:           gizmo,
		Transform:       transform,
		GlobalTransform: GlobalTransform{Matrix: transform.Matrix()},
	}
}

// Components lists the bundle as components for Commands.AddEntity.
func (b GizmoBundle) Components() []any {
	return []any{b.Gizmo, b.Transform, b.GlobalTransform, b.Children}
}
