package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for c := 0; c < 2; c++ {
				if buf[i][c] < -1.0 || buf[i][c] > 1.0 {
					t.Fatalf("sample %d out of range: %f", total+i, buf[i][c])
				}
			}
		}
		total += n
		if !ok {
			return total
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveNoise} {
		s := NewOscillator(440, 100*time.Millisecond, wave, sampleRate)
		if got, want := drain(t, s), sampleRate.N(100*time.Millisecond); got != want {
			t.Errorf("wave %d: streamed %d samples, want %d", wave, got, want)
		}
	}
}

func TestDecayStartsSilent(t *testing.T) {
	s := NewDecay(NewOscillator(440, 50*time.Millisecond, WaveSquare, sampleRate), 10*time.Millisecond, 10, sampleRate)
	buf := make([][2]float64, 1)
	if n, ok := s.Stream(buf); n != 1 || !ok {
		t.Fatalf("Stream() = %d, %v", n, ok)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, want 0 during attack", buf[0][0])
	}
}

func TestEffectsInRange(t *testing.T) {
	if n := drain(t, CreatePew(sampleRate, 1)); n == 0 {
		t.Error("pew produced no samples")
	}
	if n := drain(t, CreateBlast(sampleRate, 1)); n == 0 {
		t.Error("blast produced no samples")
	}
}

func TestSoundManagerUninitialized(t *testing.T) {
	sm := NewSoundManager()
	if sm.Streamer(SoundAlienDestroyed) == nil {
		t.Error("alien destroyed should be registered")
	}
	if sm.Streamer("unknown") != nil {
		t.Error("unknown sound should be nil")
	}
	// Without Initialize these are no-ops.
	sm.Play(SoundShipDestroyed)
	sm.Play("unknown")
	sm.Cleanup()
}

func TestSetVolumeClamps(t *testing.T) {
	sm := NewSoundManager()
	sm.SetVolume(3)
	if sm.volume != 1 {
		t.Errorf("volume = %f, want 1", sm.volume)
	}
	sm.SetVolume(-1)
	if sm.volume != 0 {
		t.Errorf("volume = %f, want 0", sm.volume)
	}
}
