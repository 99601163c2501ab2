// Package linebuf packs many short lived line lists into one shared line
// mesh. Every live line list owns a contiguous vertex range and a contiguous
// index range of that mesh; expiring one splices both ranges out and shifts
// everything behind it down, so the mesh never has holes.
package linebuf

import (
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmos/rt/mesh"
)

// Range is the half open interval [Start, End).
type Range struct {
	Start, End int
}

func (r Range) Len() int { return r.End - r.Start }

func (r Range) String() string { return fmt.Sprintf("[%d, %d)", r.Start, r.End) }

// Entry tracks one volatile line list inside the shared mesh.
type Entry struct {
	TimeLeft float32
	Vertices Range
	Indices  Range
}

// Editor lazily provides the edit view of the shared mesh. mesh.LazyEdit
// satisfies it.
type Editor interface {
	Get() *mesh.Edit
}

// AppendPolyline appends points as an open polyline: one vertex per point,
// every vertex colored with color, and one index pair per consecutive pair
// of points. Indices are absolute offsets into the shared mesh. Fewer than
// two points produce vertices but no indices.
func AppendPolyline(e *mesh.Edit, points []mgl32.Vec3, color mgl32.Vec4) (vertices, indices Range) {
	vertices.Start = len(*e.Positions)
	indices.Start = len(*e.Indices)

	*e.Positions = append(*e.Positions, points...)
	for range points {
		*e.Colors = append(*e.Colors, color)
	}
	for j := 1; j < len(points); j++ {
		v := uint32(vertices.Start + j)
		*e.Indices = append(*e.Indices, v-1, v)
	}

	vertices.End = len(*e.Positions)
	indices.End = len(*e.Indices)
	return vertices, indices
}

// Splice removes the vertex range v and the index range ix from the mesh and
// rebases every remaining index that pointed past v.
func Splice(e *mesh.Edit, v, ix Range) {
	*e.Positions = slices.Delete(*e.Positions, v.Start, v.End)
	*e.Colors = slices.Delete(*e.Colors, v.Start, v.End)
	*e.Indices = slices.Delete(*e.Indices, ix.Start, ix.End)

	shift := uint32(v.Len())
	if shift == 0 {
		return
	}
	end := uint32(v.End)
	indices := *e.Indices
	for k, idx := range indices {
		if idx >= end {
			indices[k] = idx - shift
		}
	}
}
