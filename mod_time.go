package gizmos

import (
	"time"
)

// Time is the frame clock. With FixedDt set every frame advances by exactly
// FixedDt, which makes runs reproducible.
type Time struct {
	Time    time.Time
	Dt      time.Duration
	FixedDt time.Duration
}

// DeltaSeconds is Dt in seconds.
func (t *Time) DeltaSeconds() float32 {
	return float32(t.Dt.Seconds())
}

type TimeModule struct {
	FixedDt time.Duration
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Time{
		Time:    time.Now(),
		Dt:      0,
		FixedDt: mod.FixedDt,
	})
	app.UseSystem(System(timeSystem).InStage(Prelude))
}

func timeSystem(timeResource *Time) {
	if timeResource.FixedDt > 0 {
		timeResource.Dt = timeResource.FixedDt
		timeResource.Time = timeResource.Time.Add(timeResource.FixedDt)
		return
	}

	now := time.Now()

	timeResource.Dt = now.Sub(timeResource.Time)
	timeResource.Time = now
}
