package gizmos

// Lifetime despawns its entity, children included, once TimeLeft drops
// below zero.
type Lifetime struct {
	TimeLeft float32
}

type LifecycleModule struct{}

func (mod LifecycleModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(lifetimeSystem).
			InStage(PostUpdate),
	)
}

func lifetimeSystem(time *Time, cmd *Commands, logger Logger) {
	dt := time.DeltaSeconds()
	MakeQuery1[Lifetime](cmd).Map(func(eid EntityId, lt *Lifetime) bool {
		lt.TimeLeft -= dt
		if lt.TimeLeft < 0 {
			logger.Debugf("lifetime of entity %d is over", eid)
			cmd.RemoveEntityRecursive(eid)
		}
		return true
	})
}
