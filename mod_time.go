package lamproom

import (
	"time"
)

// FirstFrameDt is the step used for the first frame, when no previous frame time exists.
const FirstFrameDt = time.Second / 60

type Time struct {
	Time    time.Time
	Dt      time.Duration
	Elapsed time.Duration

	now func() time.Time
}

// Seconds is Dt in seconds.
func (t *Time) Seconds() float32 {
	return float32(t.Dt.Seconds())
}

type TimeModule struct {
	// Now replaces the wall clock; tests use it.
	Now func() time.Time
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	now := mod.Now
	if now == nil {
		now = time.Now
	}
	cmd.AddResources(&Time{now: now})
	app.UseSystem(
		System(timeSystem).
			InStage(Prelude),
	)
}

func timeSystem(timeResource *Time) {
	now := timeResource.now()

	if timeResource.Time.IsZero() {
		timeResource.Dt = FirstFrameDt
	} else {
		timeResource.Dt = now.Sub(timeResource.Time)
	}
	timeResource.Elapsed += timeResource.Dt
	timeResource.Time = now
}
