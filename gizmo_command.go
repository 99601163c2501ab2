package gizmos

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// GizmoCommand is either a ShapeCommand or a LineListCommand.
type GizmoCommand interface {
	gizmoCommand()
}

// ShapeCommand draws a shape for Duration seconds.
type ShapeCommand struct {
	Transform      Transform
	Shape          GizmoShape
	Duration       float32
	WireframeColor mgl32.Vec4
	FillColor      mgl32.Vec4
}

// LineListCommand draws an open polyline through Points. A Duration at or
// below the duration epsilon lasts a single tick.
type LineListCommand struct {
	Points   LinePoints
	Duration float32
	Color    mgl32.Vec4
}

func (ShapeCommand) gizmoCommand()    {}
func (LineListCommand) gizmoCommand() {}

const inlinePoints = 4

// LinePoints stores up to four points inline and spills the rest to the heap.
// Copies share the spilled points until one of them is modified.
type LinePoints struct {
	inline [inlinePoints]mgl32.Vec3
	n      int
	spill  []mgl32.Vec3
	// owner is the value allowed to write into spill in place.
	owner *LinePoints
}

func MakeLinePoints(points ...mgl32.Vec3) LinePoints {
	var lp LinePoints
	for _, p := range points {
		lp.Push(p)
	}
	return lp
}

func (lp *LinePoints) Push(p mgl32.Vec3) {
	if lp.spill != nil {
		lp.own()
		lp.spill = append(lp.spill, p)
		return
	}
	if lp.n < inlinePoints {
		lp.inline[lp.n] = p
		lp.n++
		return
	}
	lp.spill = make([]mgl32.Vec3, 0, 2*inlinePoints)
	lp.spill = append(lp.spill, lp.inline[:lp.n]...)
	lp.spill = append(lp.spill, p)
	lp.owner = lp
}

// own detaches the spilled points from any copy lp was made from.
func (lp *LinePoints) own() {
	if lp.owner == lp {
		return
	}
	lp.spill = slices.Clone(lp.spill)
	lp.owner = lp
}

func (lp *LinePoints) Len() int {
	if lp.spill != nil {
		return len(lp.spill)
	}
	return lp.n
}

// Slice returns the points. The result aliases lp when it fits inline.
func (lp *LinePoints) Slice() []mgl32.Vec3 {
	if lp.spill != nil {
		return lp.spill
	}
	return lp.inline[:lp.n]
}

// transform applies m to every point in place.
func (lp *LinePoints) transform(m mgl32.Mat4) {
	if lp.spill != nil {
		lp.own()
	}
	points := lp.Slice()
	for i, p := range points {
		points[i] = mgl32.TransformCoordinate(p, m)
	}
}
