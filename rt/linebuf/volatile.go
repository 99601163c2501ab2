package linebuf

import (
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmos/rt/mesh"
)

// Volatile is the bookkeeping of a shared line mesh whose line lists live
// for a number of seconds. Entries are kept in insertion order, which is
// also the order of their ranges inside the mesh.
type Volatile struct {
	entries []Entry
}

func (b *Volatile) Len() int { return len(b.entries) }

// Entries returns a copy of the live entries.
func (b *Volatile) Entries() []Entry {
	return slices.Clone(b.entries)
}

// Append writes points at the tail of the mesh and starts tracking them for
// duration seconds.
func (b *Volatile) Append(e *mesh.Edit, points []mgl32.Vec3, color mgl32.Vec4, duration float32) Entry {
	vertices, indices := AppendPolyline(e, points, color)
	entry := Entry{TimeLeft: duration, Vertices: vertices, Indices: indices}
	b.entries = append(b.entries, entry)
	return entry
}

// Age advances every timer by dt and removes the entries whose timer went
// below zero, compacting the mesh after each removal. Entries are visited
// from the tail to the head so a removal never moves an entry that is still
// to be visited. The mesh is fetched from editor only if something expires.
// Returns the number of expired entries.
func (b *Volatile) Age(dt float32, editor Editor) int {
	expired := 0
	for i := len(b.entries) - 1; i >= 0; i-- {
		b.entries[i].TimeLeft -= dt
		if b.entries[i].TimeLeft >= 0 {
			continue
		}

		gone := b.entries[i]
		b.entries = slices.Delete(b.entries, i, i+1)
		if gone.Vertices.Len() > 0 || gone.Indices.Len() > 0 {
			Splice(editor.Get(), gone.Vertices, gone.Indices)
			b.shift(i, gone)
		}
		expired++
	}
	return expired
}

// shift moves the ranges of the entries that followed gone, now starting at
// position from, down by the size of gone. Ranges are laid out in entry
// order, so these are exactly the ranges starting at or after gone's.
func (b *Volatile) shift(from int, gone Entry) {
	vLen, iLen := gone.Vertices.Len(), gone.Indices.Len()
	for k := from; k < len(b.entries); k++ {
		entry := &b.entries[k]
		entry.Vertices.Start -= vLen
		entry.Vertices.End -= vLen
		entry.Indices.Start -= iLen
		entry.Indices.End -= iLen
	}
}

// Validate checks that the entries exactly partition the vertex and index
// storage of m and that every index stays inside its own entry.
func (b *Volatile) Validate(m *mesh.Mesh) error {
	return validate(b.entries, m)
}

func validate(entries []Entry, m *mesh.Mesh) error {
	vertexCount := m.VertexCount()
	if colors := len(m.Colors()); colors != vertexCount {
		return fmt.Errorf("%d colors for %d vertices", colors, vertexCount)
	}
	ix := m.Indices()

	nextVertex, nextIndex := 0, 0
	for k, entry := range entries {
		if entry.Vertices.Start != nextVertex {
			return fmt.Errorf("entry %d vertices %s, expected start %d", k, entry.Vertices, nextVertex)
		}
		if entry.Indices.Start != nextIndex {
			return fmt.Errorf("entry %d indices %s, expected start %d", k, entry.Indices, nextIndex)
		}
		if entry.Vertices.Len() < 0 || entry.Indices.Len() < 0 {
			return fmt.Errorf("entry %d has a negative range", k)
		}
		for i := entry.Indices.Start; i < entry.Indices.End && i < ix.Len(); i++ {
			idx := int(ix.At(i))
			if idx < entry.Vertices.Start || idx >= entry.Vertices.End {
				return fmt.Errorf("entry %d index %d = %d outside vertices %s", k, i, idx, entry.Vertices)
			}
		}
		nextVertex, nextIndex = entry.Vertices.End, entry.Indices.End
	}

	if nextVertex != vertexCount {
		return fmt.Errorf("entries cover %d of %d vertices", nextVertex, vertexCount)
	}
	if nextIndex != ix.Len() {
		return fmt.Errorf("entries cover %d of %d indices", nextIndex, ix.Len())
	}
	return nil
}
