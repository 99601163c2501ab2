package gizmos

import (
	"reflect"
)

// GizmosModule installs the gizmo channel and systems. The Time, AssetServer
// and Hierarchy modules are installed too unless already present.
//
//	app := gizmos.NewAppBuilder().
//		UseModule(gizmos.TimeModule{}, gizmos.GizmosModule{}).
//		Build()
type GizmosModule struct {
	// Config defaults to DefaultGizmosConfig when nil.
	Config *GizmosConfig
}

func (mod GizmosModule) Install(app *App, cmd *Commands) {
	config := DefaultGizmosConfig()
	if mod.Config != nil {
		config = *mod.Config
	}
	if err := config.Validate(); err != nil {
		panic(err)
	}

	if !app.hasResource(reflect.TypeFor[Time]()) {
		app.UseModules(TimeModule{})
	}
	if !app.hasResource(reflect.TypeFor[AssetServer]()) {
		app.UseModules(AssetServerModule{})
	}
	if !app.hasResource(reflect.TypeFor[TransformHierarchy]()) {
		app.UseModules(HierarchyModule{})
	}

	channel := NewGizmos()
	channel.SetEnabled(config.Enabled)
	channel.SetMask(config.Mask)

	cmd.AddResources(channel, newGizmoResources(config), &GizmoDrawList{})

	app.UseStage(GizmosStage, AfterStage(PostUpdate))
	app.UseStage(GizmoExtractStage, AfterStage(PreRender))

	app.UseSystem(System(gizmoSetupSystem).InStage(Startup))
	app.UseSystem(System(gizmoUpdateSystem).InStage(GizmosStage))
	app.UseSystem(System(gizmoExtractSystem).InStage(GizmoExtractStage))
}
