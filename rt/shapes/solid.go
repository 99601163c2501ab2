package shapes

import (
	"github.com/chewxy/math32"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmos/rt/mesh"
)

// SolidEmpty is a small octahedron (0.1 wide) marking a point.
func SolidEmpty() *mesh.Mesh {
	positions := []mgl32.Vec3{
		{0, -0.1414, 0},
		{0, 0.1414, 0},
		{-0.1, 0, -0.1},
		{-0.1, 0, 0.1},
		{0.1, 0, 0.1},
		{0.1, 0, -0.1},
	}
	indices := []uint16{
		2, 1, 3, 3, 1, 4, 4, 1, 5, 5, 1, 2,
		0, 5, 2, 0, 4, 5, 0, 3, 4, 0, 2, 3,
	}
	return finish(mesh.New(wgpu.PrimitiveTopologyTriangleList), positions, indices)
}

// SolidBillboard is a unit quad in the XY plane facing +Z.
func SolidBillboard() *mesh.Mesh {
	positions := []mgl32.Vec3{
		{-0.5, -0.5, 0}, {0.5, -0.5, 0}, {0.5, 0.5, 0}, {-0.5, 0.5, 0},
	}
	m := finish(mesh.New(wgpu.PrimitiveTopologyTriangleList), positions, []uint16{0, 1, 2, 0, 2, 3})
	m.SetAttribute(mesh.AttributeUv, mesh.VertexAttribute{
		Format:    wgpu.VertexFormatFloat32x2,
		Float32x2: []mgl32.Vec2{{0, 1}, {1, 1}, {1, 0}, {0, 0}},
	})
	return m
}

// cubeFace describes one face of the unit cube: right x up == normal.
type cubeFace struct {
	normal, right, up mgl32.Vec3
}

var cubeFaces = [6]cubeFace{
	{normal: mgl32.Vec3{1, 0, 0}, right: mgl32.Vec3{0, 0, -1}, up: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{-1, 0, 0}, right: mgl32.Vec3{0, 0, 1}, up: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{0, 0, 1}, right: mgl32.Vec3{1, 0, 0}, up: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{0, 0, -1}, right: mgl32.Vec3{-1, 0, 0}, up: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{0, 1, 0}, right: mgl32.Vec3{1, 0, 0}, up: mgl32.Vec3{0, 0, -1}},
	{normal: mgl32.Vec3{0, -1, 0}, right: mgl32.Vec3{1, 0, 0}, up: mgl32.Vec3{0, 0, 1}},
}

// SolidCube is a unit cube centered at the origin, four vertices per face.
func SolidCube() *mesh.Mesh {
	positions := make([]mgl32.Vec3, 0, 24)
	indices := make([]uint16, 0, 36)
	for _, f := range cubeFaces {
		base := uint16(len(positions))
		center := f.normal.Mul(0.5)
		r, u := f.right.Mul(0.5), f.up.Mul(0.5)
		positions = append(positions,
			center.Sub(r).Sub(u),
			center.Add(r).Sub(u),
			center.Add(r).Add(u),
			center.Sub(r).Add(u),
		)
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return finish(mesh.New(wgpu.PrimitiveTopologyTriangleList), positions, indices)
}

// SolidCylinder has radius 1 and height 1, centered at the origin, with
// both caps closed.
func SolidCylinder() *mesh.Mesh {
	positions, indices := tube()

	for _, y := range [2]float32{0.5, -0.5} {
		center := uint16(len(positions))
		positions = append(positions, mgl32.Vec3{0, y, 0})
		for i := 0; i < Segments; i++ {
			t := 2 * math32.Pi * float32(i) / Segments
			positions = append(positions, mgl32.Vec3{math32.Cos(t), y, math32.Sin(t)})
		}
		for i := 0; i < Segments; i++ {
			a := center + 1 + uint16(i)
			b := center + 1 + uint16((i+1)%Segments)
			if y > 0 {
				indices = append(indices, center, b, a)
			} else {
				indices = append(indices, center, a, b)
			}
		}
	}

	return finish(mesh.New(wgpu.PrimitiveTopologyTriangleList), positions, indices)
}

// SolidCapsuleBody is the open side wall of SolidCylinder. Capsules close it
// with two hemispheres.
func SolidCapsuleBody() *mesh.Mesh {
	positions, indices := tube()
	return finish(mesh.New(wgpu.PrimitiveTopologyTriangleList), positions, indices)
}

// tube builds the side wall of a unit cylinder, with a duplicated seam column.
func tube() ([]mgl32.Vec3, []uint16) {
	positions := make([]mgl32.Vec3, 0, (Segments+1)*2)
	indices := make([]uint16, 0, Segments*6)
	for i := 0; i <= Segments; i++ {
		t := 2 * math32.Pi * float32(i) / Segments
		x, z := math32.Cos(t), math32.Sin(t)
		positions = append(positions, mgl32.Vec3{x, 0.5, z}, mgl32.Vec3{x, -0.5, z})
	}
	for i := 0; i < Segments; i++ {
		top, bottom := uint16(i*2), uint16(i*2+1)
		nextTop, nextBottom := top+2, bottom+2
		indices = append(indices,
			top, nextTop, bottom,
			bottom, nextTop, nextBottom,
		)
	}
	return positions, indices
}
