package lamproom

import (
	"bytes"
	"testing"

	"github.com/gekko3d/lamproom/rt/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newControlApp wires the camera and lamp systems around a hand-filled Input.
func newControlApp(t *testing.T) (*App, *Input, *core.SceneState, *LampSwitchEvents) {
	t.Helper()
	def := LampRoom()
	lamps := make([]*core.LampLight, len(def.Lamps))
	for i, d := range def.Lamps {
		lamps[i] = core.NewLampLight(d, def.Palette)
	}
	state := core.NewSceneState(core.DefaultCamera(), lamps)
	input := &Input{WindowWidth: 800, WindowHeight: 600}

	app := NewApp()
	app.addResources(input, state)
	app.UseModules(CameraModule{}, LampsModule{})
	require.NoError(t, app.Err())

	events, ok := Resource[LampSwitchEvents](app)
	require.True(t, ok)
	return app, input, state, events
}

func press(input *Input, keys ...int) {
	for _, k := range keys {
		input.Key(k, KeyPress, false)
	}
}

func TestLampInput_ToggleLamps(t *testing.T) {
	app, input, state, events := newControlApp(t)

	press(input, Key1)
	app.Step()
	assert.False(t, state.Lamps[0].On)
	assert.True(t, state.Lamps[0].ChangingIntensity)
	assert.True(t, state.Lamps[1].On)
	assert.Equal(t, []LampSwitch{{Lamp: 0, On: false}}, events.Switches)

	input.beginFrame()
	press(input, Key2)
	app.Step()
	assert.False(t, state.Lamps[1].On)
	assert.Equal(t, []LampSwitch{{Lamp: 1, On: false}}, events.Switches)

	input.beginFrame()
	app.Step()
	assert.Empty(t, events.Switches, "switches are per frame")
}

func TestLampInput_ToggleIgnoresRepeat(t *testing.T) {
	app, input, state, _ := newControlApp(t)

	input.Key(Key1, KeyRepeat, false)
	input.Key(KeyP, KeyRepeat, false)
	input.Key(KeyO, KeyRepeat, false)
	app.Step()

	assert.True(t, state.Lamps[0].On)
	assert.Equal(t, 0, state.PresetIndex)
	assert.True(t, state.DirectionalOn)
}

func TestLampInput_ColourShift(t *testing.T) {
	app, input, state, _ := newControlApp(t)

	press(input, KeyComma)
	app.Step()
	assert.Equal(t, 6, state.Lamps[0].ColorIndex)
	assert.Equal(t, 0, state.Lamps[1].ColorIndex)

	input.beginFrame()
	press(input, KeyPeriod)
	input.Key(KeyPeriod, KeyRepeat, false)
	app.Step()
	assert.Equal(t, 1, state.Lamps[0].ColorIndex)
	assert.Equal(t, 2, state.Lamps[1].ColorIndex)
	assert.True(t, state.Lamps[0].ChangingColour)
}

func TestLampInput_IntensityClamps(t *testing.T) {
	app, input, state, _ := newControlApp(t)

	press(input, KeyMinus)
	for i := 0; i < 10; i++ {
		input.Key(KeyMinus, KeyRepeat, false)
	}
	app.Step()
	assert.Equal(t, float32(core.MinLampIntensity), state.Lamps[0].Intensity)

	input.beginFrame()
	press(input, KeyEqual, KeyKPPlus)
	app.Step()
	assert.Equal(t, float32(0.75), state.Lamps[1].Intensity)
}

func TestLampInput_PresetAndDirectional(t *testing.T) {
	app, input, state, _ := newControlApp(t)

	press(input, KeyP, KeyO)
	app.Step()
	assert.Equal(t, 1, state.PresetIndex)
	assert.False(t, state.DirectionalOn)

	for i := 0; i < 2; i++ {
		input.beginFrame()
		input.Key(KeyP, KeyRelease, false)
		press(input, KeyP)
		app.Step()
	}
	assert.Equal(t, 0, state.PresetIndex, "presets cycle")
}

func TestLampInput_DebugLogging(t *testing.T) {
	var out bytes.Buffer
	logger := NewLogger(&out, &out, true)

	def := LampRoom()
	state := core.NewSceneState(nil, []*core.LampLight{core.NewLampLight(def.Lamps[0], nil)})
	input := &Input{}
	app := NewApp()
	app.addResources(logger, input, state)
	app.UseModules(LampsModule{})

	press(input, Key1)
	app.Step()
	assert.Contains(t, out.String(), "controls:")
	assert.Contains(t, out.String(), "lamps: lamp 1 on=false")
}
