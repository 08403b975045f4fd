// Package sound provides short synthesized feedback tones for
// terminal applications
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// Player mixes short UI tones into the speaker. The zero value is
// not usable; create one with NewPlayer and call Init before
// playing.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	initialized bool
	muted       bool
}

// NewPlayer creates a tone player
func NewPlayer() *Player {
	mixer := &beep.Mixer{}
	return &Player{
		mixer: mixer,
		volume: &effects.Volume{
			Streamer: mixer,
			Base:     2,
		},
	}
}

// Init opens the speaker and starts the mixer. Calling Init twice is
// a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(p.volume)
	p.initialized = true
	return nil
}

// Close silences the player. The speaker itself stays open; beep
// offers no way to close it.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Clear()
	p.initialized = false
}

// SetMuted suppresses tones without tearing down the speaker
func (p *Player) SetMuted(m bool) {
	p.mu.Lock()
	p.muted = m
	p.mu.Unlock()
}

// Muted reports whether the player is muted
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Tone plays a shaped tone at the given frequency
func (p *Player) Tone(freq float64, duration time.Duration, wave WaveType) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	s := newTone(freq, duration, wave, sampleRate, 0.2)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Click plays a short tap for key feedback
func (p *Player) Click() {
	p.Tone(880, 30*time.Millisecond, WaveSquare)
}

// Beep plays the standard attention tone
func (p *Player) Beep() {
	p.Tone(440, 120*time.Millisecond, WaveSine)
}

// Alert plays a low warning buzz
func (p *Player) Alert() {
	p.Tone(120, 200*time.Millisecond, WaveSaw)
}

// tone synthesizes one fixed-length wave on both channels, shaped by
// linear attack and release ramps and scaled to the given level. The
// attack covers the first tenth of the tone, the release the last
// quarter.
type tone struct {
	freq    float64
	phase   float64
	wave    WaveType
	rate    beep.SampleRate
	pos     int
	total   int
	attack  int
	release int
	level   float64
}

func newTone(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate, level float64) *tone {
	total := rate.N(duration)
	return &tone{
		freq:    freq,
		wave:    wave,
		rate:    rate,
		total:   total,
		attack:  total / 10,
		release: total / 4,
		level:   level,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (t.phase - 0.5)
		}

		vol := t.level
		if t.pos < t.attack && t.attack > 0 {
			vol *= float64(t.pos) / float64(t.attack)
		} else if rem := t.total - t.pos; rem < t.release && t.release > 0 {
			vol *= float64(rem) / float64(t.release)
		}

		samples[i][0] = val * vol
		samples[i][1] = val * vol

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
