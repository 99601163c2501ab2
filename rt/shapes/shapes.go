// Package shapes generates the canonical gizmo meshes: unit sized primitives
// in a wireframe (line list) and a solid (triangle list) flavour. Every
// generator is deterministic and allocates a fresh mesh; vertex colors are
// opaque white so the material color is applied unchanged.
package shapes

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmos/rt/mesh"
)

// Segments is the angular resolution of every circle drawn by the generators.
const Segments = 16

// DefaultDivisions is the per face subdivision used for solid spheres.
const DefaultDivisions = 8

var ErrUnsupported = errors.New("shape not yet supported")

type Kind int

const (
	KindEmpty Kind = iota
	KindBillboard
	KindCube
	KindCircle
	KindSphere
	KindHemisphere
	KindCylinder
	KindCapsuleCap
	KindCapsuleBody
)

var kindNames = [...]string{
	KindEmpty:       "empty",
	KindBillboard:   "billboard",
	KindCube:        "cube",
	KindCircle:      "circle",
	KindSphere:      "sphere",
	KindHemisphere:  "hemisphere",
	KindCylinder:    "cylinder",
	KindCapsuleCap:  "capsule cap",
	KindCapsuleBody: "capsule body",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

type Style int

const (
	Wireframe Style = iota
	Solid
)

func (s Style) String() string {
	if s == Solid {
		return "solid"
	}
	return "wireframe"
}

// Generate builds the canonical mesh for kind in the given style. Shapes
// without a representation in that style (a wireframe billboard) and shapes
// that are not implemented yet (circles) return ErrUnsupported.
func Generate(kind Kind, style Style, divisions int) (*mesh.Mesh, error) {
	if style == Wireframe {
		switch kind {
		case KindEmpty:
			return WireEmpty(), nil
		case KindCube:
			return WireCube(), nil
		case KindSphere:
			return WireSphere(), nil
		case KindHemisphere:
			return WireHemisphere(), nil
		case KindCylinder, KindCapsuleBody:
			return WireCylinder(), nil
		case KindCapsuleCap:
			return WireCapsuleCap(), nil
		}
		return nil, fmt.Errorf("%w: %s %s", ErrUnsupported, style, kind)
	}

	switch kind {
	case KindEmpty:
		return SolidEmpty(), nil
	case KindBillboard:
		return SolidBillboard(), nil
	case KindCube:
		return SolidCube(), nil
	case KindSphere:
		return SolidSphere(divisions), nil
	case KindHemisphere, KindCapsuleCap:
		return SolidHemisphere(divisions), nil
	case KindCylinder:
		return SolidCylinder(), nil
	case KindCapsuleBody:
		return SolidCapsuleBody(), nil
	}
	return nil, fmt.Errorf("%w: %s %s", ErrUnsupported, style, kind)
}

func white(n int) []mgl32.Vec4 {
	colors := make([]mgl32.Vec4, n)
	for i := range colors {
		colors[i] = mgl32.Vec4{1, 1, 1, 1}
	}
	return colors
}

func finish(m *mesh.Mesh, positions []mgl32.Vec3, indices []uint16) *mesh.Mesh {
	m.SetPositions(positions)
	m.SetColors(white(len(positions)))
	m.SetIndicesU16(indices)
	return m
}
