package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultLampDuration = 1.0

	MinLampIntensity = 0.25
	MaxLampIntensity = 10.0
	LampIntensityStep = 0.25

	// Turning a lamp off runs its timer this many times faster than turning it on.
	lampFadeOutSpeed = 4.0
)

// Palette is the fixed list of colours a lamp can cycle through.
type Palette []mgl32.Vec3

var DefaultPalette = Palette{
	{1, 1, 1},
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 1, 0},
	{0, 1, 1},
	{1, 0, 1},
}

// Wrap maps any index onto the palette with floor modulo: -1 is the last
// colour and len(p) is the first.
func (p Palette) Wrap(index int) int {
	n := len(p)
	if n == 0 {
		return 0
	}
	return ((index % n) + n) % n
}

// LightPreset scales every lamp's output. Presets never touch transition timers.
type LightPreset struct {
	Intensity     float32
	SpecularPower float32
	Radius        float32
	Cutoff        float32
}

var NeutralPreset = LightPreset{Intensity: 1, SpecularPower: 1, Radius: 1, Cutoff: 1}

// DefaultPresets: default, low intensity with soft specular, low intensity with a hard cutoff.
var DefaultPresets = []LightPreset{
	NeutralPreset,
	{Intensity: 0.5, SpecularPower: 0.025, Radius: 2, Cutoff: 40},
	{Intensity: 0.2, SpecularPower: 1, Radius: 1.2, Cutoff: 190},
}

// LampDef is the startup configuration of one lamp.
type LampDef struct {
	Position      mgl32.Vec3
	On            bool
	Duration      float32
	ColorIndex    int
	Intensity     float32
	SpecularPower float32
	Radius        float32
	Cutoff        float32
}

// LampLight is a point light that crossfades its intensity when switched and
// its colour when the colour changes.
//
// Elapsed always stays within [0, Duration] and Progress = Elapsed/Duration.
// A lamp is steady when Progress is 1 and neither change flag is set.
type LampLight struct {
	On                bool
	ChangingIntensity bool
	ChangingColour    bool

	Position mgl32.Vec3

	Duration float32
	Elapsed  float32
	Progress float32

	PreviousColorIndex int
	ColorIndex         int

	Intensity     float32
	SpecularPower float32
	Radius        float32
	Cutoff        float32

	Palette Palette

	// Light holds the parameters computed by the last evaluation.
	Light PointLight

	scale float32
}

// NewLampLight creates a steady lamp. A non-positive duration falls back to
// DefaultLampDuration.
func NewLampLight(def LampDef, palette Palette) *LampLight {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	duration := def.Duration
	if duration <= 0 {
		duration = DefaultLampDuration
	}
	colour := palette.Wrap(def.ColorIndex)

	l := &LampLight{
		On:                 def.On,
		Position:           def.Position,
		Duration:           duration,
		Elapsed:            duration,
		Progress:           1,
		PreviousColorIndex: colour,
		ColorIndex:         colour,
		Intensity:          mgl32.Clamp(def.Intensity, MinLampIntensity, MaxLampIntensity),
		SpecularPower:      def.SpecularPower,
		Radius:             def.Radius,
		Cutoff:             def.Cutoff,
		Palette:            palette,
	}
	l.Advance(0, NeutralPreset)
	return l
}

// Steady reports whether no transition is running.
func (l *LampLight) Steady() bool {
	return l.Progress >= 1 && !l.ChangingIntensity && !l.ChangingColour
}

// IntensityScale is the 0..1 on/off factor from the last evaluation.
func (l *LampLight) IntensityScale() float32 {
	return l.scale
}

// Colour is the colour from the last evaluation.
func (l *LampLight) Colour() mgl32.Vec3 {
	return l.Light.Diffuse
}

// Toggle switches the lamp on or off. The timer is inverted first, so a
// toggle during a running fade continues from the current brightness.
// Colour and intensity share the timer: toggling during a colour crossfade
// jumps the colour to the mirrored point of that crossfade.
func (l *LampLight) Toggle(preset LightPreset) {
	l.invertTimer()
	l.On = !l.On
	l.ChangingIntensity = true
	l.Advance(0, preset)
}

// ShiftColor starts a crossfade to the palette entry offset steps away.
func (l *LampLight) ShiftColor(offset int, preset LightPreset) {
	l.invertTimer()
	l.ChangingColour = true
	l.PreviousColorIndex = l.ColorIndex
	l.ColorIndex = l.palette().Wrap(l.ColorIndex + offset)
	l.Advance(0, preset)
}

// AdjustIntensity changes the base intensity, clamped to
// [MinLampIntensity, MaxLampIntensity].
func (l *LampLight) AdjustIntensity(delta float32) {
	l.Intensity = mgl32.Clamp(l.Intensity+delta, MinLampIntensity, MaxLampIntensity)
}

// palette is Palette, or DefaultPalette when none is set.
func (l *LampLight) palette() Palette {
	if len(l.Palette) == 0 {
		return DefaultPalette
	}
	return l.Palette
}

func (l *LampLight) colourAt(index int) mgl32.Vec3 {
	palette := l.palette()
	return palette[palette.Wrap(index)]
}

func (l *LampLight) invertTimer() {
	l.Elapsed = l.Duration - l.Elapsed
}

// Advance moves the transition timer by dt seconds and recomputes Light,
// scaled by preset.
func (l *LampLight) Advance(dt float32, preset LightPreset) {
	speed := float32(1)
	if !l.On {
		speed = lampFadeOutSpeed
	}

	// a zero-length transition completes at once
	l.Progress = 1
	if l.Duration > 0 {
		l.Elapsed = mgl32.Clamp(l.Elapsed+dt*speed, 0, l.Duration)
		l.Progress = l.Elapsed / l.Duration
	} else {
		l.Duration, l.Elapsed = 0, 0
	}

	scale := float32(0)
	if l.On {
		scale = 1
	}

	var colour mgl32.Vec3
	if l.Progress < 1 {
		if l.ChangingIntensity {
			if l.On {
				scale = l.Progress
			} else {
				scale = 1 - l.Progress
			}
		}

		if l.ChangingColour {
			prev := l.colourAt(l.PreviousColorIndex)
			next := l.colourAt(l.ColorIndex)
			colour = prev.Add(next.Sub(prev).Mul(l.Progress))
		} else {
			colour = l.colourAt(l.ColorIndex)
		}
	} else {
		l.ChangingIntensity = false
		l.ChangingColour = false
		// pin the crossfade start so the next transition begins clean
		l.PreviousColorIndex = l.ColorIndex

		colour = l.colourAt(l.ColorIndex)
	}

	l.scale = scale
	l.Light = PointLight{
		On:              true,
		Position:        l.Position,
		Diffuse:         colour,
		DiffuseStrength: l.Intensity * preset.Intensity * scale,
		Specular:        colour,
		SpecularPower:   l.SpecularPower * preset.SpecularPower * scale,
		Radius:          l.Radius * preset.Radius * scale,
		Cutoff:          l.Cutoff * preset.Cutoff,
	}
}
