package gizmos

import (
	"github.com/go-gl/mathgl/mgl32"
)

// DrawContext is the scoped helper handed out by Gizmos.Draw. It keeps a
// transform stack applied to line points and to shape transforms, and the
// colors and duration used by the commands it builds.
type DrawContext struct {
	gizmos    *Gizmos
	matrices  []mgl32.Mat4
	color     mgl32.Vec4
	wireframe mgl32.Vec4
	fill      mgl32.Vec4
	duration  float32
}

func newDrawContext(g *Gizmos) *DrawContext {
	return &DrawContext{
		gizmos:    g,
		color:     mgl32.Vec4{1, 1, 1, 1},
		wireframe: mgl32.Vec4{1, 1, 1, 1},
	}
}

// PushMatrix composes m with the current top of the stack and pushes the
// result.
func (ctx *DrawContext) PushMatrix(m mgl32.Mat4) *DrawContext {
	if top, ok := ctx.top(); ok {
		m = top.Mul4(m)
	}
	ctx.matrices = append(ctx.matrices, m)
	return ctx
}

// PopMatrix drops the top of the stack. Popping an empty stack does nothing.
func (ctx *DrawContext) PopMatrix() *DrawContext {
	if len(ctx.matrices) > 0 {
		ctx.matrices = ctx.matrices[:len(ctx.matrices)-1]
	}
	return ctx
}

func (ctx *DrawContext) top() (mgl32.Mat4, bool) {
	if len(ctx.matrices) == 0 {
		return mgl32.Mat4{}, false
	}
	return ctx.matrices[len(ctx.matrices)-1], true
}

// WithColor sets the color of line lists.
func (ctx *DrawContext) WithColor(color mgl32.Vec4) *DrawContext {
	ctx.color = color
	return ctx
}

// WithWireframe sets the outline color of shapes.
func (ctx *DrawContext) WithWireframe(color mgl32.Vec4) *DrawContext {
	ctx.wireframe = color
	return ctx
}

// WithFill sets the fill color of shapes. Transparent by default.
func (ctx *DrawContext) WithFill(color mgl32.Vec4) *DrawContext {
	ctx.fill = color
	return ctx
}

// WithDuration sets how many seconds the following commands last. Zero
// means a single tick.
func (ctx *DrawContext) WithDuration(seconds float32) *DrawContext {
	ctx.duration = seconds
	return ctx
}

// LineList draws an open polyline through points, transformed by the top of
// the matrix stack.
func (ctx *DrawContext) LineList(points ...mgl32.Vec3) *DrawContext {
	lp := MakeLinePoints(points...)
	if top, ok := ctx.top(); ok {
		lp.transform(top)
	}
	ctx.gizmos.Push(LineListCommand{
		Points:   lp,
		Duration: ctx.duration,
		Color:    ctx.color,
	})
	return ctx
}

func (ctx *DrawContext) Line(from, to mgl32.Vec3) *DrawContext {
	return ctx.LineList(from, to)
}

func (ctx *DrawContext) Ray(origin, direction mgl32.Vec3) *DrawContext {
	return ctx.LineList(origin, origin.Add(direction))
}

// Shape draws shape at transform. When the matrix stack is not empty the
// transform is relative to its top.
func (ctx *DrawContext) Shape(transform Transform, shape GizmoShape) *DrawContext {
	if top, ok := ctx.top(); ok {
		transform = composeTransform(top, transform)
	}
	ctx.gizmos.Push(ShapeCommand{
		Transform:      transform,
		Shape:          shape,
		Duration:       ctx.duration,
		WireframeColor: ctx.wireframe,
		FillColor:      ctx.fill,
	})
	return ctx
}

func (ctx *DrawContext) Cube(center, size mgl32.Vec3) *DrawContext {
	return ctx.Shape(TransformFromPosition(center), ShapeCube{Size: size})
}

func (ctx *DrawContext) Sphere(center mgl32.Vec3, radius float32) *DrawContext {
	return ctx.Shape(TransformFromPosition(center), ShapeSphere{Radius: radius})
}

func (ctx *DrawContext) Capsule(center mgl32.Vec3, radius, height float32, axis Axis) *DrawContext {
	return ctx.Shape(TransformFromPosition(center), ShapeCapsule{Radius: radius, Height: height, Axis: axis})
}

// composeTransform applies m on top of t. m is expected to be a rigid
// transform with uniform scale.
func composeTransform(m mgl32.Mat4, t Transform) Transform {
	scale := m.Col(0).Vec3().Len()
	if scale == 0 {
		scale = 1
	}
	rotation := mgl32.Mat4ToQuat(m.Mul4(mgl32.Scale3D(1/scale, 1/scale, 1/scale)))
	return Transform{
		Position: mgl32.TransformCoordinate(t.Position, m),
		Rotation: rotation.Mul(t.Rotation),
		Scale:    t.Scale.Mul(scale),
	}
}
