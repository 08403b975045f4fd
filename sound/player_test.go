package sound

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestToneSineRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	tn := newTone(440, 100*time.Millisecond, WaveSine, rate, 1)

	samples := make([][2]float64, 100)
	n, ok := tn.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Stream = (%d, %v), want (100, true)", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1 || samples[i][0] > 1 {
			t.Errorf("sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("sample %d channels differ", i)
		}
	}
	if tn.Err() != nil {
		t.Errorf("Err = %v", tn.Err())
	}
}

func TestToneSquareSustain(t *testing.T) {
	// 100 samples total, attack over the first 10, release over the
	// last 25; a 1 Hz square at this rate holds +1 through the sustain
	rate := beep.SampleRate(1000)
	tn := newTone(1, 100*time.Millisecond, WaveSquare, rate, 1)

	samples := make([][2]float64, 100)
	n, _ := tn.Stream(samples)
	if n != 100 {
		t.Fatalf("streamed %d samples, want 100", n)
	}
	for i := 10; i < 75; i++ {
		if samples[i][0] != 1 {
			t.Errorf("sustain sample %d = %f, want 1", i, samples[i][0])
		}
	}
}

func TestToneEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	tn := newTone(1, 100*time.Millisecond, WaveSquare, rate, 1)

	samples := make([][2]float64, 100)
	tn.Stream(samples)

	if samples[0][0] != 0 {
		t.Errorf("attack start = %f, want 0", samples[0][0])
	}
	if samples[5][0] != 0.5 {
		t.Errorf("mid attack = %f, want 0.5", samples[5][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("sustain = %f, want 1", samples[50][0])
	}
	if samples[80][0] != 0.8 {
		t.Errorf("release = %f, want 0.8", samples[80][0])
	}
}

func TestToneEnds(t *testing.T) {
	rate := beep.SampleRate(1000)
	tn := newTone(100, 10*time.Millisecond, WaveSine, rate, 1)

	samples := make([][2]float64, 100)
	n, ok := tn.Stream(samples)
	if n != 10 || !ok {
		t.Errorf("first stream = (%d, %v), want (10, true)", n, ok)
	}
	n, ok = tn.Stream(samples)
	if n != 0 || ok {
		t.Errorf("drained stream = (%d, %v), want (0, false)", n, ok)
	}
}

func TestPlayerMuted(t *testing.T) {
	p := NewPlayer()
	if p.Muted() {
		t.Error("new player starts muted")
	}
	p.SetMuted(true)
	if !p.Muted() {
		t.Error("mute did not stick")
	}
	// playing while uninitialized or muted is a no-op
	p.Beep()
	p.Click()
	p.Alert()
}
