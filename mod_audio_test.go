package lamproom

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestSwitchClick_IsShortAndDecays(t *testing.T) {
	sr := beep.SampleRate(44100)
	samples := drain(NewSwitchClick(sr, true))

	require.Len(t, samples, sr.N(clickLength))

	var head, tail float64
	for i, s := range samples {
		assert.Equal(t, s[0], s[1], "mono on both channels")
		assert.LessOrEqual(t, math.Abs(s[0]), 1.0)
		if i < len(samples)/4 {
			head = math.Max(head, math.Abs(s[0]))
		} else if i > 3*len(samples)/4 {
			tail = math.Max(tail, math.Abs(s[0]))
		}
	}
	assert.Greater(t, head, 10*tail)
}

func zeroCrossings(samples [][2]float64) int {
	n := 0
	for i := 1; i < len(samples); i++ {
		if (samples[i-1][0] < 0) != (samples[i][0] < 0) {
			n++
		}
	}
	return n
}

func TestSwitchClick_OnIsHigherThanOff(t *testing.T) {
	sr := beep.SampleRate(44100)
	on := zeroCrossings(drain(NewSwitchClick(sr, true)))
	off := zeroCrossings(drain(NewSwitchClick(sr, false)))
	assert.Greater(t, on, off)
}

func TestLampClickSystem(t *testing.T) {
	var played []beep.Streamer
	app := NewApp()
	app.addResources(
		&LampSwitchEvents{Switches: []LampSwitch{{Lamp: 0, On: true}, {Lamp: 1, On: false}}},
		&Clicker{play: func(s beep.Streamer) { played = append(played, s) }},
	)
	app.UseSystem(System(lampClickSystem).InStage(PostUpdate))

	app.Step()
	assert.Len(t, played, 2)
}

func TestAudioModule_Disabled(t *testing.T) {
	app := NewApp().UseModules(AudioModule{})
	_, ok := Resource[Clicker](app)
	assert.False(t, ok)
	assert.Empty(t, app.systems[PostUpdate.Name])
}
