package shapes

import (
	"github.com/chewxy/math32"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmos/rt/mesh"
)

// arc appends count+1 points sampled along an arc of the unit circle, from
// angle 0 to sweep, mapped into 3D by place. Consecutive points are linked.
func arc(positions []mgl32.Vec3, indices []uint16, sweep float32, count int, place func(x, y float32) mgl32.Vec3) ([]mgl32.Vec3, []uint16) {
	base := uint16(len(positions))
	for i := 0; i <= count; i++ {
		t := sweep * float32(i) / float32(count)
		positions = append(positions, place(math32.Cos(t), math32.Sin(t)))
		if i < count {
			indices = append(indices, base+uint16(i), base+uint16(i)+1)
		}
	}
	return positions, indices
}

// ring appends a closed circle of Segments points.
func ring(positions []mgl32.Vec3, indices []uint16, place func(x, y float32) mgl32.Vec3) ([]mgl32.Vec3, []uint16) {
	base := uint16(len(positions))
	for i := 0; i < Segments; i++ {
		t := 2 * math32.Pi * float32(i) / Segments
		positions = append(positions, place(math32.Cos(t), math32.Sin(t)))
		indices = append(indices, base+uint16(i), base+uint16((i+1)%Segments))
	}
	return positions, indices
}

// WireEmpty is a three axis cross, one unit long on each axis.
func WireEmpty() *mesh.Mesh {
	positions := []mgl32.Vec3{
		{0.5, 0, 0}, {-0.5, 0, 0},
		{0, -0.5, 0}, {0, 0.5, 0},
		{0, 0, 0.5}, {0, 0, -0.5},
	}
	return finish(mesh.New(wgpu.PrimitiveTopologyLineList), positions, []uint16{0, 1, 2, 3, 4, 5})
}

// WireCube is the 12 edges of a unit cube centered at the origin.
func WireCube() *mesh.Mesh {
	positions := []mgl32.Vec3{
		// front
		{0.5, 0.5, 0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5},
		// back
		{0.5, 0.5, -0.5}, {0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5},
	}
	indices := []uint16{
		0, 1, 1, 2, 2, 3, 3, 0,
		4, 5, 5, 6, 6, 7, 7, 4,
		0, 4, 1, 5, 2, 6, 3, 7,
	}
	return finish(mesh.New(wgpu.PrimitiveTopologyLineList), positions, indices)
}

// WireSphere is three great circles of radius 1, one per axis plane.
func WireSphere() *mesh.Mesh {
	var positions []mgl32.Vec3
	var indices []uint16
	positions, indices = ring(positions, indices, func(x, y float32) mgl32.Vec3 { return mgl32.Vec3{x, y, 0} })
	positions, indices = ring(positions, indices, func(x, y float32) mgl32.Vec3 { return mgl32.Vec3{x, 0, y} })
	positions, indices = ring(positions, indices, func(x, y float32) mgl32.Vec3 { return mgl32.Vec3{0, y, x} })
	return finish(mesh.New(wgpu.PrimitiveTopologyLineList), positions, indices)
}

// WireHemisphere is the upper (+Y) half of WireSphere: two half arcs and the
// full equator.
func WireHemisphere() *mesh.Mesh {
	var positions []mgl32.Vec3
	var indices []uint16
	positions, indices = arc(positions, indices, math32.Pi, Segments/2, func(x, y float32) mgl32.Vec3 { return mgl32.Vec3{x, y, 0} })
	positions, indices = ring(positions, indices, func(x, y float32) mgl32.Vec3 { return mgl32.Vec3{x, 0, y} })
	positions, indices = arc(positions, indices, math32.Pi, Segments/2, func(x, y float32) mgl32.Vec3 { return mgl32.Vec3{0, y, x} })
	return finish(mesh.New(wgpu.PrimitiveTopologyLineList), positions, indices)
}

// WireCylinder has radius 1 and height 1: two rings at y = +-0.5 joined by
// four vertical edges.
func WireCylinder() *mesh.Mesh {
	var positions []mgl32.Vec3
	var indices []uint16
	positions, indices = ring(positions, indices, func(x, y float32) mgl32.Vec3 { return mgl32.Vec3{x, 0.5, y} })
	positions, indices = ring(positions, indices, func(x, y float32) mgl32.Vec3 { return mgl32.Vec3{x, -0.5, y} })
	for i := uint16(0); i < Segments; i += Segments / 4 {
		indices = append(indices, i, i+Segments)
	}
	return finish(mesh.New(wgpu.PrimitiveTopologyLineList), positions, indices)
}

// WireCapsuleCap is a hemisphere without its equator; the capsule body
// cylinder already draws that ring.
func WireCapsuleCap() *mesh.Mesh {
	var positions []mgl32.Vec3
	var indices []uint16
	positions, indices = arc(positions, indices, math32.Pi, Segments/2, func(x, y float32) mgl32.Vec3 { return mgl32.Vec3{x, y, 0} })
	positions, indices = arc(positions, indices, math32.Pi, Segments/2, func(x, y float32) mgl32.Vec3 { return mgl32.Vec3{0, y, x} })
	return finish(mesh.New(wgpu.PrimitiveTopologyLineList), positions, indices)
}
