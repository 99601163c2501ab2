package gizmos

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/gizmos/rt/shapes"
)

func newTestMeshes(t *testing.T) *GizmoMeshes {
	t.Helper()
	meshes, err := NewGizmoMeshes(NewAssetServer(), 4)
	require.NoError(t, err)
	return meshes
}

func TestNewGizmoMeshes(t *testing.T) {
	assets := NewAssetServer()
	meshes, err := NewGizmoMeshes(assets, 4)
	require.NoError(t, err)

	// no wireframe billboard and no circles
	assert.Equal(t, 7+8, meshes.Len())
	for _, style := range []Style{StyleWireframe, StyleFill} {
		assert.Panics(t, func() { meshes.Handle(shapes.KindCircle, style) })
	}
	assert.Equal(t, meshes.Len(), assets.Meshes().Len())

	require.PanicsWithValue(t, "no wireframe mesh for billboard", func() {
		meshes.Handle(shapes.KindBillboard, StyleWireframe)
	})
}

func TestInstantiate_SinglePart(t *testing.T) {
	meshes := newTestMeshes(t)
	color := mgl32.Vec4{1, 0, 0, 1}

	cases := []struct {
		shape GizmoShape
		kind  shapes.Kind
		scale mgl32.Vec3
	}{
		{ShapeEmpty{Radius: 2}, shapes.KindEmpty, mgl32.Vec3{2, 2, 2}},
		{ShapeCube{Size: mgl32.Vec3{1, 2, 3}}, shapes.KindCube, mgl32.Vec3{1, 2, 3}},
		{ShapeSphere{Radius: 0.5}, shapes.KindSphere, mgl32.Vec3{0.5, 0.5, 0.5}},
		{ShapeHemisphere{Radius: 3}, shapes.KindHemisphere, mgl32.Vec3{3, 3, 3}},
		{ShapeCylinder{Radius: 0.5, Height: 4}, shapes.KindCylinder, mgl32.Vec3{0.5, 4, 0.5}},
	}
	for _, style := range []Style{StyleWireframe, StyleFill} {
		for _, c := range cases {
			parts, err := Instantiate(c.shape, style, color, meshes)
			require.NoError(t, err)
			require.Len(t, parts, 1, "%s %T", style, c.shape)

			part := parts[0]
			assert.Equal(t, c.scale, part.Transform.Scale)
			assert.Equal(t, mgl32.Vec3{}, part.Transform.Position)
			assert.Equal(t, meshes.Handle(c.kind, style), part.Mesh)
			assert.Equal(t, color, part.Material.Color)
			assert.True(t, part.Material.Unlit)
			assert.False(t, part.Material.Billboard)
		}
	}
}

func TestInstantiate_Billboard(t *testing.T) {
	meshes := newTestMeshes(t)
	texture := NewAssetServer().CreateTexture([]uint8{255, 255, 255, 255}, 1, 1, 0)

	parts, err := Instantiate(ShapeBillboard{Texture: &texture}, StyleWireframe, mgl32.Vec4{1, 1, 1, 1}, meshes)
	require.NoError(t, err)
	assert.Empty(t, parts)

	parts, err = Instantiate(ShapeBillboard{Texture: &texture}, StyleFill, mgl32.Vec4{1, 1, 1, 1}, meshes)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, IdentityTransform(), parts[0].Transform)
	assert.True(t, parts[0].Material.Billboard)
	assert.Equal(t, DefaultBillboardSize, parts[0].Material.BillboardSize)
	assert.Equal(t, &texture, parts[0].Material.Texture)

	parts, err = Instantiate(ShapeBillboard{Size: 2}, StyleFill, mgl32.Vec4{1, 1, 1, 1}, meshes)
	require.NoError(t, err)
	assert.Equal(t, float32(2), parts[0].Material.BillboardSize)
	assert.Nil(t, parts[0].Material.Texture)
}

func TestInstantiate_CapsuleY(t *testing.T) {
	meshes := newTestMeshes(t)

	parts, err := Instantiate(ShapeCapsule{Radius: 0.5, Height: 1, Axis: AxisY}, StyleWireframe, mgl32.Vec4{1, 1, 1, 1}, meshes)
	require.NoError(t, err)
	require.Len(t, parts, 3)

	near, far, body := parts[0].Transform, parts[1].Transform, parts[2].Transform

	assertVec3(t, mgl32.Vec3{0, 0.5, 0}, near.Position)
	assertVec3(t, mgl32.Vec3{0, -0.5, 0}, far.Position)
	assert.Equal(t, mgl32.Vec3{0.5, 0.5, 0.5}, near.Scale)
	assert.Equal(t, mgl32.Vec3{0.5, 0.5, 0.5}, far.Scale)

	assert.Equal(t, mgl32.Vec3{}, body.Position)
	assert.Equal(t, mgl32.Vec3{0.5, 1, 0.5}, body.Scale)

	// the far cap faces the other way
	nearUp := near.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
	farUp := far.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
	assertVec3(t, nearUp.Mul(-1), farUp)

	assert.Equal(t, meshes.Handle(shapes.KindCapsuleCap, StyleWireframe), parts[0].Mesh)
	assert.Equal(t, meshes.Handle(shapes.KindCapsuleCap, StyleWireframe), parts[1].Mesh)
	assert.Equal(t, meshes.Handle(shapes.KindCapsuleBody, StyleWireframe), parts[2].Mesh)
}

func TestInstantiate_CapsuleAxes(t *testing.T) {
	meshes := newTestMeshes(t)

	cases := []struct {
		axis Axis
		dir  mgl32.Vec3
	}{
		{AxisX, mgl32.Vec3{1, 0, 0}},
		{AxisY, mgl32.Vec3{0, 1, 0}},
		{AxisZ, mgl32.Vec3{0, 0, 1}},
	}
	for _, c := range cases {
		for _, style := range []Style{StyleWireframe, StyleFill} {
			parts, err := Instantiate(ShapeCapsule{Radius: 0.25, Height: 2, Axis: c.axis}, style, mgl32.Vec4{1, 1, 1, 1}, meshes)
			require.NoError(t, err)
			require.Len(t, parts, 3)

			for _, cp := range parts[:2] {
				p := cp.Transform.Position
				// the caps sit on the axis, one unit away from the center
				assert.InDelta(t, 1, p.Len(), 1e-5, "axis %s: %v", c.axis, p)
				assert.InDelta(t, 1, absf(p.Dot(c.dir)), 1e-5, "axis %s: %v", c.axis, p)
			}
			assertVec3(t, mgl32.Vec3{}, parts[0].Transform.Position.Add(parts[1].Transform.Position))

			// the body's long side follows the axis
			long := parts[2].Transform.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
			assert.InDelta(t, 1, absf(long.Dot(c.dir)), 1e-5, "axis %s: %v", c.axis, long)
			assert.Equal(t, mgl32.Vec3{}, parts[2].Transform.Position)
		}
	}
}

func TestInstantiate_CapsuleSolidMeshes(t *testing.T) {
	meshes := newTestMeshes(t)

	parts, err := Instantiate(ShapeCapsule{Radius: 1, Height: 1}, StyleFill, mgl32.Vec4{1, 1, 1, 1}, meshes)
	require.NoError(t, err)
	require.Len(t, parts, 3)
	assert.Equal(t, meshes.Handle(shapes.KindCapsuleCap, StyleFill), parts[0].Mesh)
	assert.Equal(t, meshes.Handle(shapes.KindCapsuleCap, StyleFill), parts[1].Mesh)
	assert.Equal(t, meshes.Handle(shapes.KindCapsuleBody, StyleFill), parts[2].Mesh)
}

func TestInstantiate_Unsupported(t *testing.T) {
	meshes := newTestMeshes(t)

	for _, shape := range []GizmoShape{ShapeCircle{Radius: 1}, ShapeMesh{}} {
		for _, style := range []Style{StyleWireframe, StyleFill} {
			parts, err := Instantiate(shape, style, mgl32.Vec4{1, 1, 1, 1}, meshes)
			assert.ErrorIs(t, err, ErrUnsupportedShape)
			assert.Nil(t, parts)
		}
	}
}

// vec3Near compares componentwise, so noise around an expected zero passes.
func vec3Near(a, b mgl32.Vec3) bool {
	for i := range a {
		if absf(a[i]-b[i]) > 1e-5 {
			return false
		}
	}
	return true
}

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5, "expected %v, got %v", want, got)
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
