package lamproom

import (
	"github.com/gekko3d/lamproom/rt/core"
)

// CameraModule drives the scene camera from the keyboard and mouse drags.
// Movement itself is integrated when the scene advances.
type CameraModule struct{}

func (CameraModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(cameraInputSystem).
			InStage(Update),
	)
}

var moveKeys = map[int]core.MoveDirection{
	KeyW:        core.MoveForward,
	KeyUp:       core.MoveForward,
	KeyS:        core.MoveBackward,
	KeyDown:     core.MoveBackward,
	KeyA:        core.MoveLeft,
	KeyLeft:     core.MoveLeft,
	KeyD:        core.MoveRight,
	KeyRight:    core.MoveRight,
	KeyE:        core.MoveUp,
	KeyPageDown: core.MoveUp,
	KeyQ:        core.MoveDown,
	KeyPageUp:   core.MoveDown,
}

func cameraInputSystem(input *Input, state *core.SceneState) {
	cam := state.Camera
	for _, ev := range input.KeyEvents {
		dir, ok := moveKeys[ev.Key]
		if !ok {
			continue
		}
		if ev.Action == KeyRelease {
			cam.Release(dir)
		} else {
			cam.Push(dir)
		}
	}

	for _, m := range input.LookMotions {
		cam.Look(m.X, m.Y)
	}
}
