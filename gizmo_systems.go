package gizmos

import (
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmos/rt/linebuf"
	"github.com/gekko3d/gizmos/rt/mesh"
)

var (
	// GizmosStage runs after application logic and before transforms are
	// propagated for rendering.
	GizmosStage = Stage{Name: "Gizmos"}
	// GizmoExtractStage builds the GizmoDrawList once transforms are final.
	GizmoExtractStage = Stage{Name: "GizmoExtract"}
)

type volatileShape struct {
	TimeLeft float32
	Entity   EntityId
}

// GizmoStats describes the last gizmo update.
type GizmoStats struct {
	Drained        int
	Rebuilt        int
	SpawnedShapes  int
	ExpiredShapes  int
	VolatileLines  int
	ExpiredLines   int
	ImmediateLines int
}

// GizmoResources is the state owned by the gizmo systems: the canonical
// meshes, the two shared line meshes and the bookkeeping of everything with
// a lifetime.
type GizmoResources struct {
	config GizmosConfig
	meshes *GizmoMeshes

	volatileLines  mesh.Handle
	immediateLines mesh.Handle
	volatile       linebuf.Volatile
	immediate      linebuf.Immediate

	shapes []volatileShape

	// seenTick is the change tick up to which Gizmo components were
	// reconciled.
	seenTick uint64

	stats GizmoStats
}

func newGizmoResources(config GizmosConfig) *GizmoResources {
	return &GizmoResources{config: config}
}

func (res *GizmoResources) Meshes() *GizmoMeshes { return res.meshes }

func (res *GizmoResources) VolatileLines() mesh.Handle { return res.volatileLines }

func (res *GizmoResources) ImmediateLines() mesh.Handle { return res.immediateLines }

// VolatileEntries returns the live volatile line lists, in buffer order.
func (res *GizmoResources) VolatileEntries() []linebuf.Entry { return res.volatile.Entries() }

// VolatileShapes is the number of shape commands still alive.
func (res *GizmoResources) VolatileShapes() int { return len(res.shapes) }

func (res *GizmoResources) Stats() GizmoStats { return res.stats }

// ValidateVolatileLines checks the volatile line mesh against its entries.
func (res *GizmoResources) ValidateVolatileLines(assets *AssetServer) error {
	m, ok := assets.Mesh(res.volatileLines)
	if !ok {
		return fmt.Errorf("volatile line mesh %s not found", res.volatileLines)
	}
	return res.volatile.Validate(m)
}

// gizmoSetupSystem creates the canonical meshes and the shared line meshes,
// and spawns one render entity per line mesh.
func gizmoSetupSystem(cmd *Commands, assets *AssetServer, res *GizmoResources, logger Logger) {
	meshes, err := NewGizmoMeshes(assets, res.config.SphereDivisions)
	if err != nil {
		panic(err)
	}
	res.meshes = meshes

	res.volatileLines = assets.AddMesh(mesh.NewLineBuffer(res.config.LineCapacity))
	res.immediateLines = assets.AddMesh(mesh.NewLineBuffer(res.config.LineCapacity))

	white := mgl32.Vec4{1, 1, 1, 1}
	for _, lines := range []struct {
		handle   mesh.Handle
		volatile bool
	}{
		{res.volatileLines, true},
		{res.immediateLines, false},
	} {
		cmd.AddEntity(
			IdentityTransform(),
			IdentityGlobalTransform(),
			GizmoRenderable{Mesh: lines.handle, Material: NewGizmoMaterial(white)},
			GizmoLinesTag{Volatile: lines.volatile},
		)
	}

	logger.Infof("gizmos: created %d canonical meshes", meshes.Len())
}

// gizmoUpdateSystem rebuilds changed gizmos, ages everything with a
// lifetime and consumes the command channel. The shared line meshes are
// only fetched for writing when something in them changes.
func gizmoUpdateSystem(cmd *Commands, t *Time, assets *AssetServer, channel *Gizmos, res *GizmoResources, logger Logger) {
	res.stats = GizmoStats{}
	dt := t.DeltaSeconds()

	reconcileGizmos(cmd, res)
	ageShapes(cmd, res, dt)

	volatileEdit := assets.BeginMeshEdit(res.volatileLines)
	defer volatileEdit.Release()
	immediateEdit := assets.BeginMeshEdit(res.immediateLines)
	defer immediateEdit.Release()

	res.stats.ExpiredLines = res.volatile.Age(dt, volatileEdit)
	res.immediate.Reset(immediateEdit)

	res.stats.Drained = channel.drain(func(command GizmoCommand) {
		switch c := command.(type) {
		case ShapeCommand:
			spawnShape(cmd, res, c)
		case LineListCommand:
			points := c.Points.Slice()
			if c.Duration <= res.config.DurationEpsilon {
				res.immediate.Append(immediateEdit.Get(), points, c.Color)
				res.stats.ImmediateLines++
			} else {
				res.volatile.Append(volatileEdit.Get(), points, c.Color, c.Duration)
				res.stats.VolatileLines++
			}
		}
	})

	if logger.DebugEnabled() && res.stats != (GizmoStats{}) {
		logger.Debugf("gizmos: %+v, %d volatile line lists, %d volatile shapes",
			res.stats, res.volatile.Len(), len(res.shapes))
	}
}

// reconcileGizmos rebuilds the render children of every entity whose Gizmo
// changed since the last run.
func reconcileGizmos(cmd *Commands, res *GizmoResources) {
	watermark := cmd.ChangeTick()

	MakeQuery2[Gizmo, Children](cmd).ChangedSince(res.seenTick).Map(func(eid EntityId, gizmo *Gizmo, children *Children) bool {
		if children != nil {
			for _, child := range children.Entities {
				cmd.RemoveEntityRecursive(child)
			}
		}
		err := instantiateStyles(cmd, eid, gizmo.Shape, gizmo.WireframeColor, gizmo.FillColor, res.config.AlphaEpsilon, res.meshes)
		if err != nil {
			panic(fmt.Sprintf("gizmo on entity %d: %v", eid, err))
		}
		res.stats.Rebuilt++
		return true
	}, Children{})

	res.seenTick = watermark
}

// ageShapes despawns the shape commands whose time ran out, visiting the
// newest first.
func ageShapes(cmd *Commands, res *GizmoResources, dt float32) {
	for i := len(res.shapes) - 1; i >= 0; i-- {
		res.shapes[i].TimeLeft -= dt
		if res.shapes[i].TimeLeft >= 0 {
			continue
		}
		cmd.RemoveEntityRecursive(res.shapes[i].Entity)
		res.shapes = slices.Delete(res.shapes, i, i+1)
		res.stats.ExpiredShapes++
	}
}

func spawnShape(cmd *Commands, res *GizmoResources, c ShapeCommand) {
	eid := cmd.AddEntity(
		c.Transform,
		GlobalTransform{Matrix: c.Transform.Matrix()},
		Children{},
	)
	err := instantiateStyles(cmd, eid, c.Shape, c.WireframeColor, c.FillColor, res.config.AlphaEpsilon, res.meshes)
	if err != nil {
		panic(fmt.Sprintf("gizmo shape command: %v", err))
	}
	res.shapes = append(res.shapes, volatileShape{TimeLeft: c.Duration, Entity: eid})
	res.stats.SpawnedShapes++
}
