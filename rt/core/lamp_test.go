package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLamp(colour int) *LampLight {
	return NewLampLight(LampDef{
		Position:      mgl32.Vec3{1, 2, 3},
		On:            true,
		Duration:      1,
		ColorIndex:    colour,
		Intensity:     1,
		SpecularPower: 500,
		Radius:        1.3,
		Cutoff:        0.005,
	}, DefaultPalette)
}

func assertVec3(t *testing.T, expected, actual mgl32.Vec3) {
	t.Helper()
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], 1e-5, "component %d of %v vs %v", i, expected, actual)
	}
}

func TestNewLampLight_StartsSteady(t *testing.T) {
	lamp := newTestLamp(1)

	assert.True(t, lamp.Steady())
	assert.Equal(t, float32(1), lamp.Progress)
	assert.Equal(t, float32(1), lamp.IntensityScale())
	assertVec3(t, mgl32.Vec3{1, 0, 0}, lamp.Colour())
	assert.Equal(t, lamp.Position, lamp.Light.Position)
	assert.True(t, lamp.Light.On)
	assert.Equal(t, mgl32.Vec3{}, lamp.Light.Ambient)
}

func TestNewLampLight_FallsBackToDefaultDuration(t *testing.T) {
	lamp := NewLampLight(LampDef{On: true, Intensity: 1}, nil)

	assert.Equal(t, float32(DefaultLampDuration), lamp.Duration)
	assert.Len(t, lamp.Palette, 7)
}

func TestAdvance_ElapsedStaysWithinDuration(t *testing.T) {
	steps := []float32{0, 0.001, 0.016, 0.1, 0.5, 1, 3, 1000}

	for _, dt := range steps {
		for _, toggle := range []bool{false, true} {
			lamp := newTestLamp(0)
			if toggle {
				lamp.Toggle(NeutralPreset)
			}
			lamp.ShiftColor(1, NeutralPreset)

			for i := 0; i < 5; i++ {
				lamp.Advance(dt, NeutralPreset)
				assert.GreaterOrEqual(t, lamp.Elapsed, float32(0))
				assert.LessOrEqual(t, lamp.Elapsed, lamp.Duration)
				assert.InDelta(t, lamp.Elapsed/lamp.Duration, lamp.Progress, 1e-6)
			}
		}
	}
}

func TestToggle_FullFadeOut(t *testing.T) {
	lamp := newTestLamp(0)

	lamp.Toggle(NeutralPreset)
	lamp.Advance(1.0, NeutralPreset)

	assert.False(t, lamp.On)
	assert.Equal(t, float32(1), lamp.Progress)
	assert.Equal(t, float32(0), lamp.IntensityScale())
	assert.False(t, lamp.ChangingIntensity)
	assert.False(t, lamp.ChangingColour)
	assert.Equal(t, float32(0), lamp.Light.DiffuseStrength)
	assert.Equal(t, float32(0), lamp.Light.Radius)
	// cutoff is not faded
	assert.InDelta(t, 0.005, lamp.Light.Cutoff, 1e-7)
}

func TestToggle_FadeOutRunsFourTimesFaster(t *testing.T) {
	lamp := newTestLamp(0)

	lamp.Toggle(NeutralPreset)
	lamp.Advance(0.125, NeutralPreset)

	assert.InDelta(t, 0.5, lamp.Progress, 1e-6)
	assert.InDelta(t, 0.5, lamp.IntensityScale(), 1e-6)
	assert.True(t, lamp.ChangingIntensity)
}

func TestToggle_FadeInRampsWithProgress(t *testing.T) {
	lamp := newTestLamp(0)
	lamp.Toggle(NeutralPreset)
	lamp.Advance(1, NeutralPreset)
	require.Equal(t, float32(0), lamp.IntensityScale())

	lamp.Toggle(NeutralPreset)
	assert.True(t, lamp.On)
	assert.Equal(t, float32(0), lamp.IntensityScale())

	lamp.Advance(0.25, NeutralPreset)
	assert.InDelta(t, 0.25, lamp.IntensityScale(), 1e-6)
	assert.InDelta(t, 0.25, lamp.Light.DiffuseStrength, 1e-6)

	lamp.Advance(0.75, NeutralPreset)
	assert.True(t, lamp.Steady())
	assert.Equal(t, float32(1), lamp.IntensityScale())
}

func TestToggle_IsContinuousMidFade(t *testing.T) {
	cases := []struct {
		name    string
		prepare func(l *LampLight)
	}{
		{"steady on", func(l *LampLight) {}},
		{"steady off", func(l *LampLight) {
			l.Toggle(NeutralPreset)
			l.Advance(1, NeutralPreset)
		}},
		{"fading out", func(l *LampLight) {
			l.Toggle(NeutralPreset)
			l.Advance(0.1, NeutralPreset)
		}},
		{"fading in", func(l *LampLight) {
			l.Toggle(NeutralPreset)
			l.Advance(1, NeutralPreset)
			l.Toggle(NeutralPreset)
			l.Advance(0.3, NeutralPreset)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lamp := newTestLamp(0)
			tc.prepare(lamp)
			before := lamp.IntensityScale()

			lamp.Toggle(NeutralPreset)

			assert.InDelta(t, before, lamp.IntensityScale(), 1e-5)
		})
	}
}

func TestToggle_MirrorsRunningColourCrossfade(t *testing.T) {
	lamp := newTestLamp(0)
	lamp.ShiftColor(1, NeutralPreset)
	lamp.Advance(0.2, NeutralPreset)
	assertVec3(t, mgl32.Vec3{1, 0.8, 0.8}, lamp.Colour())

	lamp.Toggle(NeutralPreset)

	// the shared timer is inverted, so the crossfade resumes at 0.8
	assert.InDelta(t, 0.8, lamp.Progress, 1e-6)
	assertVec3(t, mgl32.Vec3{1, 0.2, 0.2}, lamp.Colour())
	assert.InDelta(t, 0.2, lamp.IntensityScale(), 1e-6)

	lamp.Advance(1, NeutralPreset)
	assert.True(t, lamp.Steady())
	assertVec3(t, mgl32.Vec3{1, 0, 0}, lamp.Colour())
}

func TestAdvance_ZeroValueLamp(t *testing.T) {
	var lamp LampLight
	lamp.On = true
	lamp.ChangingColour = true

	require.NotPanics(t, func() { lamp.Advance(0.1, NeutralPreset) })
	assert.Equal(t, float32(1), lamp.Progress)
	assert.True(t, lamp.Steady())
	assertVec3(t, DefaultPalette[0], lamp.Colour())

	lamp.ShiftColor(-1, NeutralPreset)
	assert.Equal(t, len(DefaultPalette)-1, lamp.ColorIndex)
	assertVec3(t, DefaultPalette[len(DefaultPalette)-1], lamp.Colour())
}

func TestShiftColor_ReturnsToStartAfterFullCycle(t *testing.T) {
	for _, offset := range []int{1, -1} {
		lamp := newTestLamp(3)
		for i := 0; i < len(DefaultPalette); i++ {
			lamp.ShiftColor(offset, NeutralPreset)
			lamp.Advance(0.016, NeutralPreset)
		}
		assert.Equal(t, 3, lamp.ColorIndex, "offset %d", offset)
	}
}

func TestShiftColor_WrapsAtUpperBoundary(t *testing.T) {
	lamp := newTestLamp(6)

	lamp.ShiftColor(1, NeutralPreset)
	assert.Equal(t, 0, lamp.ColorIndex)
	assert.Equal(t, 6, lamp.PreviousColorIndex)

	lamp.Advance(1, NeutralPreset)
	lamp.ShiftColor(-1, NeutralPreset)
	assert.Equal(t, 6, lamp.ColorIndex)
}

func TestShiftColor_CrossfadesColour(t *testing.T) {
	lamp := newTestLamp(0)

	lamp.ShiftColor(1, NeutralPreset)
	assertVec3(t, mgl32.Vec3{1, 1, 1}, lamp.Colour())

	lamp.Advance(0.5, NeutralPreset)
	assertVec3(t, mgl32.Vec3{1, 0.5, 0.5}, lamp.Colour())
	assertVec3(t, lamp.Light.Diffuse, lamp.Light.Specular)
	// intensity is untouched by a colour change
	assert.Equal(t, float32(1), lamp.IntensityScale())

	lamp.Advance(0.5, NeutralPreset)
	assertVec3(t, mgl32.Vec3{1, 0, 0}, lamp.Colour())
}

func TestAdvance_CompletionPinsPreviousColour(t *testing.T) {
	lamp := newTestLamp(2)
	lamp.ShiftColor(2, NeutralPreset)
	lamp.Toggle(NeutralPreset)

	lamp.Advance(10, NeutralPreset)

	assert.Equal(t, float32(1), lamp.Progress)
	assert.Equal(t, lamp.ColorIndex, lamp.PreviousColorIndex)
	assert.False(t, lamp.ChangingIntensity)
	assert.False(t, lamp.ChangingColour)
}

func TestAdvance_PresetScalesOutput(t *testing.T) {
	lamp := newTestLamp(0)

	lamp.Advance(0, DefaultPresets[1])

	assert.InDelta(t, 0.5, lamp.Light.DiffuseStrength, 1e-6)
	assert.InDelta(t, 12.5, lamp.Light.SpecularPower, 1e-4)
	assert.InDelta(t, 2.6, lamp.Light.Radius, 1e-6)
	assert.InDelta(t, 0.2, lamp.Light.Cutoff, 1e-6)
	assert.True(t, lamp.Steady())
}

func TestAdjustIntensity_Clamps(t *testing.T) {
	lamp := newTestLamp(0)

	for i := 0; i < 10; i++ {
		lamp.AdjustIntensity(-LampIntensityStep)
	}
	assert.Equal(t, float32(MinLampIntensity), lamp.Intensity)

	for i := 0; i < 100; i++ {
		lamp.AdjustIntensity(LampIntensityStep)
	}
	assert.Equal(t, float32(MaxLampIntensity), lamp.Intensity)

	lamp.Advance(0, NeutralPreset)
	assert.Equal(t, float32(MaxLampIntensity), lamp.Light.DiffuseStrength)
}

func TestPalette_Wrap(t *testing.T) {
	p := DefaultPalette

	assert.Equal(t, 0, p.Wrap(7))
	assert.Equal(t, 6, p.Wrap(-1))
	assert.Equal(t, 5, p.Wrap(-9))
	assert.Equal(t, 3, p.Wrap(3))
	assert.Equal(t, 0, Palette{}.Wrap(4))
}
