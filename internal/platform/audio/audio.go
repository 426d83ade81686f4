// Package audio provides a sound effect sink for game notifications.
// Playback is fire-and-forget; a failed audio device disables the sink
// silently and the game runs without sound.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/dkotenko/starcatch/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Player plays short synthesized tones for session events.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
}

var _ game.Notifier = (*Player)(nil)

// New initializes the speaker and returns an audio notifier.
// If the audio device cannot be opened the returned player is muted
// rather than failing; sound is not essential to play.
func New() *Player {
	p := &Player{mixer: &beep.Mixer{}}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return p
	}

	speaker.Play(p.mixer)
	p.enabled = true
	return p
}

// play queues a tone on the mixer. Never blocks the game loop.
func (p *Player) play(freq float64, dur time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}

	tone := beep.Take(sampleRate.N(dur), newTone(sampleRate, freq))
	speaker.Lock()
	p.mixer.Add(tone)
	speaker.Unlock()
}

// SessionStart plays a bright confirmation blip.
func (p *Player) SessionStart() {
	p.play(523.25, 120*time.Millisecond)
}

// Collect plays a short high chime for a caught star.
func (p *Player) Collect() {
	p.play(880, 60*time.Millisecond)
}

// HazardHit plays a low thud for a meteor strike.
func (p *Player) HazardHit() {
	p.play(110, 250*time.Millisecond)
}

// SessionEnd plays a falling game-over tone.
func (p *Player) SessionEnd() {
	p.play(196, 400*time.Millisecond)
}

// tone is a sine generator with a short attack/decay envelope to avoid
// clicks at the tone boundaries.
type tone struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newTone(sr beep.SampleRate, freq float64) *tone {
	return &tone{sr: sr, freq: freq}
}

func (g *tone) Stream(samples [][2]float64) (n int, ok bool) {
	attack := float64(g.sr) * 0.005
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := 1.0
		if float64(g.pos) < attack {
			envelope = float64(g.pos) / attack
		}
		envelope *= math.Exp(-t * 6)

		sample := 0.25 * envelope * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *tone) Err() error {
	return nil
}
