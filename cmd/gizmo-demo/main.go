package main

import (
	"flag"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmos"
)

var (
	red    = mgl32.Vec4{1, 0, 0, 1}
	green  = mgl32.Vec4{0, 1, 0, 1}
	blue   = mgl32.Vec4{0, 0, 1, 1}
	yellow = mgl32.Vec4{1, 1, 0, 1}
	glass  = mgl32.Vec4{0.2, 0.6, 1, 0.3}
)

type demoState struct {
	frame  int
	frames int
}

func main() {
	frames := flag.Int("frames", 120, "Number of frames to simulate")
	configPath := flag.String("config", "gizmos.yaml", "Gizmo config file")
	debug := flag.Bool("debug", false, "Log every gizmo update")
	flag.Parse()

	config, err := gizmos.LoadGizmosConfig(*configPath)
	if err != nil {
		panic(err)
	}

	app := gizmos.NewAppBuilder().
		UseModule(
			gizmos.LoggingModule{Prefix: "gizmo-demo", Debug: *debug},
			gizmos.TimeModule{FixedDt: time.Second / 60},
			gizmos.LifecycleModule{},
			gizmos.GizmosModule{Config: &config},
			demoModule{frames: *frames},
		).
		Build()

	app.Run()
}

type demoModule struct {
	frames int
}

func (mod demoModule) Install(app *gizmos.App, cmd *gizmos.Commands) {
	cmd.AddResources(&demoState{frames: mod.frames})
	app.UseSystem(gizmos.System(spawnShowcase).InStage(gizmos.Startup))
	app.UseSystem(gizmos.System(animate))
	app.UseSystem(gizmos.System(report).InStage(gizmos.Finale))
}

// spawnShowcase lays out one persistent gizmo per shape.
func spawnShowcase(cmd *gizmos.Commands) {
	showcase := []gizmos.Gizmo{
		{Shape: gizmos.ShapeEmpty{Radius: 0.5}, WireframeColor: yellow},
		{Shape: gizmos.ShapeCube{Size: mgl32.Vec3{1, 1, 1}}, WireframeColor: red, FillColor: glass},
		{Shape: gizmos.ShapeSphere{Radius: 0.5}, WireframeColor: green, FillColor: glass},
		{Shape: gizmos.ShapeHemisphere{Radius: 0.5}, WireframeColor: blue},
		{Shape: gizmos.ShapeCylinder{Radius: 0.5, Height: 1}, WireframeColor: red},
		{Shape: gizmos.ShapeCapsule{Radius: 0.25, Height: 1, Axis: gizmos.AxisY}, WireframeColor: green, FillColor: glass},
		{Shape: gizmos.ShapeBillboard{Size: 0.5}, FillColor: mgl32.Vec4{1, 1, 1, 1}},
	}

	for i, gizmo := range showcase {
		position := mgl32.Vec3{float32(i) * 1.5, 0, 0}
		cmd.AddEntity(gizmos.NewGizmoBundle(gizmos.TransformFromPosition(position), gizmo).Components()...)
	}

	// a marker that goes away after two seconds
	marker := gizmos.DefaultGizmo()
	marker.Shape = gizmos.ShapeSphere{Radius: 0.1}
	components := gizmos.NewGizmoBundle(gizmos.TransformFromPosition(mgl32.Vec3{0, 2, 0}), marker).Components()
	cmd.AddEntity(append(components, gizmos.Lifetime{TimeLeft: 2})...)
}

func animate(state *demoState, t *gizmos.Time, channel *gizmos.Gizmos) {
	state.frame++
	angle := float32(state.frame) * t.DeltaSeconds()

	channel.Draw(gizmos.MaskAll, func(ctx *gizmos.DrawContext) {
		// axes, redrawn every frame
		ctx.WithColor(red).Ray(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0})
		ctx.WithColor(green).Ray(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
		ctx.WithColor(blue).Ray(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1})

		ctx.PushMatrix(mgl32.Translate3D(0, 0, -3).Mul4(mgl32.HomogRotate3DY(angle)))
		ctx.WithWireframe(yellow).Capsule(mgl32.Vec3{}, 0.25, 1, gizmos.AxisX)
		ctx.PopMatrix()

		// a trail segment every ten frames, fading out after a second
		if state.frame%10 == 0 {
			a := mgl32.Vec3{math32.Cos(angle), 1, math32.Sin(angle)}
			b := mgl32.Vec3{math32.Cos(angle + 0.2), 1, math32.Sin(angle + 0.2)}
			ctx.WithDuration(1).WithColor(yellow).Line(a, b).WithDuration(0)
		}
	})
}

func report(state *demoState, cmd *gizmos.Commands, list *gizmos.GizmoDrawList, logger gizmos.Logger) {
	if state.frame%30 == 0 || state.frame >= state.frames {
		logger.Infof("frame %d: %d draw items, %d line items", state.frame, len(list.Items), len(list.LineItems()))
	}
	if state.frame >= state.frames {
		cmd.Exit()
	}
}
