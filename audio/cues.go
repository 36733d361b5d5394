// Package audio plays short feedback cues for judge outcomes. Cues are
// synthesized sine tones mixed through one speaker; a failed speaker
// init degrades to silence rather than an error.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Cues plays feedback tones. The zero value is silent; call Init to
// enable playback.
type Cues struct {
	mu      sync.Mutex
	enabled bool
	mixer   *beep.Mixer
}

// NewCues returns a silent cue player
func NewCues() *Cues {
	return &Cues{mixer: &beep.Mixer{}}
}

// Init opens the speaker. Returns the init error for logging, but the
// player stays usable (silent) regardless.
func (c *Cues) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.enabled = true
	return nil
}

// Pass plays a rising two-note cue for a passing test run
func (c *Cues) Pass() {
	c.play(
		tone{freq: 660, dur: 90 * time.Millisecond},
		tone{freq: 880, dur: 140 * time.Millisecond},
	)
}

// Fail plays a short low buzz for a failing test run
func (c *Cues) Fail() {
	c.play(tone{freq: 160, dur: 200 * time.Millisecond})
}

// Accept plays a triad for an accepted submission
func (c *Cues) Accept() {
	c.play(
		tone{freq: 523, dur: 100 * time.Millisecond},
		tone{freq: 659, dur: 100 * time.Millisecond},
		tone{freq: 784, dur: 180 * time.Millisecond},
	)
}

type tone struct {
	freq float64
	dur  time.Duration
}

func (c *Cues) play(tones ...tone) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled {
		return
	}
	var parts []beep.Streamer
	for _, t := range tones {
		parts = append(parts, beep.Take(sampleRate.N(t.dur), newToneGenerator(t.freq)))
	}
	speaker.Lock()
	c.mixer.Add(beep.Seq(parts...))
	speaker.Unlock()
}

// toneGenerator produces a sine tone with a short attack envelope to
// avoid clicks
type toneGenerator struct {
	freq float64
	pos  int
}

func newToneGenerator(freq float64) *toneGenerator {
	return &toneGenerator{freq: freq}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)
		envelope := math.Min(t/0.01, 1.0)
		sample := 0.2 * envelope * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}
