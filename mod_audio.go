package lamproom

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	audioSampleRate = beep.SampleRate(44100)

	clickLength  = 40 * time.Millisecond
	clickOnFreq  = 1800.0
	clickOffFreq = 1100.0
	clickVolume  = 0.5
)

// AudioModule plays a switch click whenever a lamp is switched. A missing
// audio device only disables the sound.
type AudioModule struct {
	Enabled bool
}

// Clicker turns lamp switches into sounds.
type Clicker struct {
	play func(beep.Streamer)
}

func (mod AudioModule) Install(app *App, cmd *Commands) {
	if !mod.Enabled {
		return
	}
	if err := speaker.Init(audioSampleRate, audioSampleRate.N(100*time.Millisecond)); err != nil {
		cmd.Logger().Warnf("audio: disabled: %v", err)
		return
	}
	cmd.OnCleanup(speaker.Close)

	cmd.AddResources(&Clicker{play: func(s beep.Streamer) { speaker.Play(s) }})
	app.UseSystem(
		System(lampClickSystem).
			InStage(PostUpdate),
	)
}

func lampClickSystem(events *LampSwitchEvents, clicker *Clicker) {
	for _, sw := range events.Switches {
		clicker.play(NewSwitchClick(audioSampleRate, sw.On))
	}
}

// NewSwitchClick is a short decaying tone, higher when switching on.
func NewSwitchClick(sr beep.SampleRate, on bool) beep.Streamer {
	freq := clickOffFreq
	if on {
		freq = clickOnFreq
	}
	click := beep.Take(sr.N(clickLength), &ClickGenerator{sr: sr, freq: freq})
	return &effects.Volume{Streamer: click, Base: 2, Volume: math.Log2(clickVolume)}
}

// ClickGenerator is a sine with a fast exponential decay. It never ends on
// its own; wrap it in beep.Take.
type ClickGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func (g *ClickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := math.Sin(2*math.Pi*g.freq*t) * math.Exp(-t*120)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ClickGenerator) Err() error {
	return nil
}
