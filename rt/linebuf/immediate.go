package linebuf

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmos/rt/mesh"
)

// Immediate is a shared line mesh that only ever holds the line lists
// submitted during the current tick. Reset empties it at the start of every
// tick; nothing is tracked per line list.
type Immediate struct {
	lines    int
	vertices int
	indices  int
}

// Reset clears whatever the previous tick left in the mesh. A mesh that is
// already empty is not touched.
func (b *Immediate) Reset(editor Editor) {
	if b.vertices == 0 && b.indices == 0 {
		b.lines = 0
		return
	}
	editor.Get().Clear()
	*b = Immediate{}
}

func (b *Immediate) Append(e *mesh.Edit, points []mgl32.Vec3, color mgl32.Vec4) {
	vertices, indices := AppendPolyline(e, points, color)
	b.lines++
	b.vertices += vertices.Len()
	b.indices += indices.Len()
}

// Lines is the number of line lists appended since the last Reset.
func (b *Immediate) Lines() int { return b.lines }

func (b *Immediate) VertexCount() int { return b.vertices }

func (b *Immediate) IndexCount() int { return b.indices }
