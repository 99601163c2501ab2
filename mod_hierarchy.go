package gizmos

import (
	"reflect"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Transform is the local transform of an entity, relative to its Parent.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func IdentityTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

func TransformFromPosition(position mgl32.Vec3) Transform {
	t := IdentityTransform()
	t.Position = position
	return t
}

// Matrix composes translation * rotation * scale.
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).
		Mul4(t.Rotation.Normalize().Mat4()).
		Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}

// GlobalTransform is the world matrix computed by TransformPropagationSystem.
type GlobalTransform struct {
	Matrix mgl32.Mat4
}

func IdentityGlobalTransform() GlobalTransform {
	return GlobalTransform{Matrix: mgl32.Ident4()}
}

type Parent struct {
	Entity EntityId
}

type Children struct {
	Entities []EntityId
}

// TransformHierarchy is present once HierarchyModule is installed.
type TransformHierarchy struct{}

type HierarchyModule struct{}

func (HierarchyModule) Install(app *App, cmd *Commands) {
	app.addResources(&TransformHierarchy{})
	app.UseSystem(
		System(TransformPropagationSystem).
			InStage(PreRender),
	)
}

// TransformPropagationSystem computes GlobalTransform for every entity with
// a Transform, walking from the roots down to the leaves. An entity whose
// parent is gone counts as a root.
func TransformPropagationSystem(cmd *Commands) {
	MakeQuery1[Transform](cmd).Map(func(eid EntityId, _ *Transform) bool {
		if parent, ok := GetComponent[Parent](cmd, eid); ok && cmd.HasEntity(parent.Entity) {
			return true
		}
		propagateTransform(cmd, eid, mgl32.Ident4())
		return true
	})
}

func propagateTransform(cmd *Commands, eid EntityId, parentMatrix mgl32.Mat4) {
	matrix := parentMatrix
	if local, ok := GetComponent[Transform](cmd, eid); ok {
		matrix = parentMatrix.Mul4(local.Matrix())
	}

	if global, ok := GetComponent[GlobalTransform](cmd, eid); ok {
		global.Matrix = matrix
	} else {
		cmd.AddComponents(eid, GlobalTransform{Matrix: matrix})
	}

	if children, ok := GetComponent[Children](cmd, eid); ok {
		for _, child := range children.Entities {
			propagateTransform(cmd, child, matrix)
		}
	}
}

var (
	typeOfParent   = reflect.TypeFor[Parent]()
	typeOfChildren = reflect.TypeFor[Children]()
)

// attachToParent appends eid to the Children of the entity named by its
// Parent component, creating the Children component if needed.
func attachToParent(ecs *Ecs, eid EntityId) {
	cell, ok := ecs.getComponent(eid, typeOfParent)
	if !ok {
		return
	}
	parent := cell.ptr.(*Parent).Entity
	if !ecs.hasEntity(parent) {
		return
	}

	childrenCell, ok := ecs.getComponent(parent, typeOfChildren)
	if !ok {
		ecs.writeComponent(parent, Children{Entities: []EntityId{eid}})
		return
	}
	children := childrenCell.ptr.(*Children)
	if !slices.Contains(children.Entities, eid) {
		children.Entities = append(children.Entities, eid)
		ecs.markChanged(parent, typeOfChildren)
	}
}

func detachFromParent(ecs *Ecs, eid EntityId) {
	cell, ok := ecs.getComponent(eid, typeOfParent)
	if !ok {
		return
	}
	parent := cell.ptr.(*Parent).Entity

	childrenCell, ok := ecs.getComponent(parent, typeOfChildren)
	if !ok {
		return
	}
	children := childrenCell.ptr.(*Children)
	if i := slices.Index(children.Entities, eid); i >= 0 {
		children.Entities = slices.Delete(children.Entities, i, i+1)
		ecs.markChanged(parent, typeOfChildren)
	}
}

// despawn removes a single entity. Its children stay alive and become roots.
func despawn(ecs *Ecs, eid EntityId) {
	if !ecs.hasEntity(eid) {
		return
	}
	detachFromParent(ecs, eid)
	ecs.removeEntity(eid)
}

// despawnRecursive removes eid and every entity below it.
func despawnRecursive(ecs *Ecs, eid EntityId) {
	if !ecs.hasEntity(eid) {
		return
	}
	detachFromParent(ecs, eid)

	stack := []EntityId{eid}
	for len(stack) > 0 {
		next := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cell, ok := ecs.getComponent(next, typeOfChildren); ok {
			stack = append(stack, cell.ptr.(*Children).Entities...)
		}
		ecs.removeEntity(next)
	}
}
