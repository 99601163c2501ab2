package shapes

import (
	"github.com/chewxy/math32"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmos/rt/mesh"
)

// SolidSphere is a unit sphere built by projecting the six faces of a
// subdivided cube onto the sphere. Each face is a (divisions+1)^2 vertex
// grid; vertices are not shared between faces.
func SolidSphere(divisions int) *mesh.Mesh {
	return spherifiedCube(divisions, false)
}

// SolidHemisphere is the +Y half of SolidSphere: the full top face plus the
// upper half of the four side faces. The bottom face is skipped.
func SolidHemisphere(divisions int) *mesh.Mesh {
	return spherifiedCube(divisions, true)
}

// spherify maps a point on the surface of the [-1, 1] cube onto the unit
// sphere. The correction keeps cell areas close to uniform and has no pole
// singularities.
func spherify(p mgl32.Vec3) mgl32.Vec3 {
	x2, y2, z2 := p[0]*p[0], p[1]*p[1], p[2]*p[2]
	return mgl32.Vec3{
		p[0] * math32.Sqrt(1-0.5*(y2+z2)+y2*z2/3),
		p[1] * math32.Sqrt(1-0.5*(z2+x2)+z2*x2/3),
		p[2] * math32.Sqrt(1-0.5*(x2+y2)+x2*y2/3),
	}
}

func spherifiedCube(divisions int, hemisphere bool) *mesh.Mesh {
	if divisions < 1 {
		divisions = 1
	}
	n := divisions
	half := (n + 1) / 2

	positions := make([]mgl32.Vec3, 0, 6*(n+1)*(n+1))
	indices := make([]uint32, 0, 6*n*n*6)

	for _, f := range cubeFaces {
		rows, vMin, vStep := n, float32(-1), 2/float32(n)
		switch {
		case !hemisphere:
		case f.normal[1] < 0:
			continue
		case f.normal[1] == 0:
			// side faces keep only the rows above the equator
			rows, vMin, vStep = half, 0, 1/float32(half)
		}

		base := uint32(len(positions))
		for j := 0; j <= rows; j++ {
			v := vMin + vStep*float32(j)
			for i := 0; i <= n; i++ {
				u := -1 + 2*float32(i)/float32(n)
				p := f.normal.Add(f.right.Mul(u)).Add(f.up.Mul(v))
				positions = append(positions, spherify(p))
			}
		}

		stride := uint32(n + 1)
		midRow, midCol := rows/2, n/2
		if hemisphere && f.normal[1] == 0 {
			// the sphere midline is the bottom edge of a half face
			midRow = 0
		}
		for j := 0; j < rows; j++ {
			for i := 0; i < n; i++ {
				a := base + uint32(j)*stride + uint32(i)
				b := a + 1
				c := a + stride + 1
				d := a + stride
				// mirror the diagonal across the face midlines so seams
				// meet symmetrically at the face centers and the equator
				if (j < midRow) == (i < midCol) {
					indices = append(indices, a, b, c, a, c, d)
				} else {
					indices = append(indices, a, b, d, b, c, d)
				}
			}
		}
	}

	m := mesh.New(wgpu.PrimitiveTopologyTriangleList)
	m.SetPositions(positions)
	m.SetColors(white(len(positions)))
	m.SetIndicesU32(indices)
	return m
}
