package lamproom

import (
	"github.com/gekko3d/lamproom/rt/core"
)

// LampSwitch records one lamp being switched during a frame.
type LampSwitch struct {
	Lamp int
	On   bool
}

// LampSwitchEvents holds the switches of the current frame. It is reset at
// the start of every Update stage.
type LampSwitchEvents struct {
	Switches []LampSwitch
}

// LampsModule maps keys to lamp, preset and directional light commands.
// The lamps themselves animate when the scene advances.
type LampsModule struct{}

func (LampsModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&LampSwitchEvents{})
	for _, line := range controlsHelp {
		cmd.Logger().Infof("%s", line)
	}
	app.UseSystem(
		System(lampInputSystem).
			InStage(Update),
	)
}

var controlsHelp = []string{
	"controls:",
	"  WASD or arrow keys to move",
	"  Q/E or PgUp/PgDn to move down and up",
	"  drag the mouse to look around",
	"  1, 2 to switch the lamps on and off",
	"  , and . to cycle the lamp colour",
	"  - and = to lower and raise the lamp intensity",
	"  p to cycle the lighting preset",
	"  o to switch the directional light",
	"  F11 fullscreen, F12 screenshot, Esc to quit",
}

var lampToggleKeys = map[int]int{
	Key1: 0,
	Key2: 1,
}

func lampInputSystem(input *Input, state *core.SceneState, events *LampSwitchEvents, cmd *Commands) {
	events.Switches = events.Switches[:0]
	log := cmd.Logger()

	for _, ev := range input.KeyEvents {
		if ev.Action == KeyRelease {
			continue
		}
		pressed := ev.Action == KeyPress

		switch ev.Key {
		case KeyComma:
			state.ShiftLampColors(-1)
			log.Debugf("lamps: colour -> %v", lampColours(state))
		case KeyPeriod:
			state.ShiftLampColors(+1)
			log.Debugf("lamps: colour -> %v", lampColours(state))
		case KeyMinus, KeyKPMinus:
			state.AdjustLampIntensity(-core.LampIntensityStep)
			log.Debugf("lamps: intensity %v", lampIntensities(state))
		case KeyEqual, KeyKPPlus:
			state.AdjustLampIntensity(core.LampIntensityStep)
			log.Debugf("lamps: intensity %v", lampIntensities(state))
		}

		if !pressed {
			continue
		}
		switch ev.Key {
		case KeyP:
			log.Debugf("lamps: preset %d", state.CyclePreset()+1)
		case KeyO:
			log.Debugf("lamps: directional light on=%v", state.ToggleDirectional())
		default:
			i, ok := lampToggleKeys[ev.Key]
			if !ok {
				continue
			}
			if on, ok := state.ToggleLamp(i); ok {
				events.Switches = append(events.Switches, LampSwitch{Lamp: i, On: on})
				log.Debugf("lamps: lamp %d on=%v", i+1, on)
			}
		}
	}
}

func lampColours(state *core.SceneState) []int {
	out := make([]int, len(state.Lamps))
	for i, l := range state.Lamps {
		out[i] = l.ColorIndex
	}
	return out
}

func lampIntensities(state *core.SceneState) []float32 {
	out := make([]float32, len(state.Lamps))
	for i, l := range state.Lamps {
		out[i] = l.Intensity
	}
	return out
}
