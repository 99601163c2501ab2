package gizmos

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmos/rt/mesh"
	"github.com/gekko3d/gizmos/rt/shapes"
)

var ErrUnsupportedShape = errors.New("gizmo shape not supported")

type Style = shapes.Style

const (
	StyleWireframe = shapes.Wireframe
	StyleFill      = shapes.Solid
)

// GizmoMeshes holds the canonical unit meshes every gizmo is instanced from.
type GizmoMeshes struct {
	wire  map[shapes.Kind]mesh.Handle
	solid map[shapes.Kind]mesh.Handle
}

var canonicalKinds = []shapes.Kind{
	shapes.KindEmpty,
	shapes.KindBillboard,
	shapes.KindCube,
	shapes.KindSphere,
	shapes.KindHemisphere,
	shapes.KindCylinder,
	shapes.KindCapsuleCap,
	shapes.KindCapsuleBody,
}

// NewGizmoMeshes generates every canonical mesh in both styles and adds it
// to assets. Kinds without a mesh in a style are skipped.
func NewGizmoMeshes(assets *AssetServer, divisions int) (*GizmoMeshes, error) {
	meshes := &GizmoMeshes{
		wire:  make(map[shapes.Kind]mesh.Handle),
		solid: make(map[shapes.Kind]mesh.Handle),
	}
	for _, style := range []Style{StyleWireframe, StyleFill} {
		for _, kind := range canonicalKinds {
			m, err := shapes.Generate(kind, style, divisions)
			if errors.Is(err, shapes.ErrUnsupported) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("generate %s %s mesh: %w", style, kind, err)
			}
			meshes.byStyle(style)[kind] = assets.AddMesh(m)
		}
	}
	return meshes, nil
}

func (m *GizmoMeshes) byStyle(style Style) map[shapes.Kind]mesh.Handle {
	if style == StyleFill {
		return m.solid
	}
	return m.wire
}

// Handle returns the canonical mesh of kind in style. Asking for a mesh that
// was never generated is a programming error.
func (m *GizmoMeshes) Handle(kind shapes.Kind, style Style) mesh.Handle {
	h, ok := m.byStyle(style)[kind]
	if !ok {
		panic(fmt.Sprintf("no %s mesh for %s", style, kind))
	}
	return h
}

func (m *GizmoMeshes) Len() int {
	return len(m.wire) + len(m.solid)
}

// GizmoPart is one render child of a gizmo.
type GizmoPart struct {
	Transform Transform
	Mesh      mesh.Handle
	Material  GizmoMaterial
}

// Instantiate maps a shape to the render children drawing it in style.
// A billboard has no wireframe form and yields no parts. Circles and
// arbitrary meshes return ErrUnsupportedShape.
func Instantiate(shape GizmoShape, style Style, color mgl32.Vec4, meshes *GizmoMeshes) ([]GizmoPart, error) {
	material := NewGizmoMaterial(color)
	single := func(kind shapes.Kind, scale mgl32.Vec3) []GizmoPart {
		t := IdentityTransform()
		t.Scale = scale
		return []GizmoPart{{Transform: t, Mesh: meshes.Handle(kind, style), Material: material}}
	}

	switch s := shape.(type) {
	case ShapeEmpty:
		return single(shapes.KindEmpty, uniform(s.Radius)), nil
	case ShapeBillboard:
		if style == StyleWireframe {
			return nil, nil
		}
		material.Billboard = true
		material.Texture = s.Texture
		if s.Size > 0 {
			material.BillboardSize = s.Size
		}
		return []GizmoPart{{
			Transform: IdentityTransform(),
			Mesh:      meshes.Handle(shapes.KindBillboard, style),
			Material:  material,
		}}, nil
	case ShapeCube:
		return single(shapes.KindCube, s.Size), nil
	case ShapeSphere:
		return single(shapes.KindSphere, uniform(s.Radius)), nil
	case ShapeHemisphere:
		return single(shapes.KindHemisphere, uniform(s.Radius)), nil
	case ShapeCylinder:
		return single(shapes.KindCylinder, mgl32.Vec3{s.Radius, s.Height, s.Radius}), nil
	case ShapeCapsule:
		return capsuleParts(s, style, material, meshes), nil
	case ShapeCircle:
		return nil, fmt.Errorf("%w: circle", ErrUnsupportedShape)
	case ShapeMesh:
		return nil, fmt.Errorf("%w: mesh %s", ErrUnsupportedShape, s.Mesh)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedShape, shape)
}

func uniform(v float32) mgl32.Vec3 {
	return mgl32.Vec3{v, v, v}
}

// axisRotation turns the +Y aligned canonical capsule onto axis.
func axisRotation(axis Axis) mgl32.Quat {
	switch axis {
	case AxisX:
		return mgl32.QuatRotate(math32.Pi/2, mgl32.Vec3{0, 0, 1})
	case AxisZ:
		return mgl32.QuatRotate(math32.Pi/2, mgl32.Vec3{1, 0, 0})
	}
	return mgl32.QuatIdent()
}

// capsuleParts places two caps at +-Height/2 along the axis, the far one
// flipped to face outward, and the body in between.
func capsuleParts(s ShapeCapsule, style Style, material GizmoMaterial, meshes *GizmoMeshes) []GizmoPart {
	base := axisRotation(s.Axis)
	half := s.Height / 2
	capMesh := meshes.Handle(shapes.KindCapsuleCap, style)

	near := Transform{
		Position: base.Rotate(mgl32.Vec3{0, half, 0}),
		Rotation: base,
		Scale:    uniform(s.Radius),
	}
	far := Transform{
		Position: base.Rotate(mgl32.Vec3{0, -half, 0}),
		Rotation: base.Mul(mgl32.QuatRotate(math32.Pi, mgl32.Vec3{1, 0, 0})),
		Scale:    uniform(s.Radius),
	}
	body := Transform{
		Rotation: base,
		Scale:    mgl32.Vec3{s.Radius, s.Height, s.Radius},
	}

	return []GizmoPart{
		{Transform: near, Mesh: capMesh, Material: material},
		{Transform: far, Mesh: capMesh, Material: material},
		{Transform: body, Mesh: meshes.Handle(shapes.KindCapsuleBody, style), Material: material},
	}
}

// spawnGizmoParts spawns the parts as children of parent.
func spawnGizmoParts(cmd *Commands, parent EntityId, parts []GizmoPart) {
	for _, part := range parts {
		cmd.AddEntity(
			Parent{Entity: parent},
			part.Transform,
			IdentityGlobalTransform(),
			GizmoRenderable{Mesh: part.Mesh, Material: part.Material},
		)
	}
}

// instantiateStyles spawns the children of a gizmo for every style whose
// color is visible.
func instantiateStyles(cmd *Commands, parent EntityId, shape GizmoShape, wireframe, fill mgl32.Vec4, alphaEpsilon float32, meshes *GizmoMeshes) error {
	styles := []struct {
		style Style
		color mgl32.Vec4
	}{
		{StyleWireframe, wireframe},
		{StyleFill, fill},
	}
	for _, st := range styles {
		if st.color.W() <= alphaEpsilon {
			continue
		}
		parts, err := Instantiate(shape, st.style, st.color, meshes)
		if err != nil {
			return err
		}
		spawnGizmoParts(cmd, parent, parts)
	}
	return nil
}
