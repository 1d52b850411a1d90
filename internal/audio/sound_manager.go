// Package audio synthesizes and plays game sound effects.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Sound names understood by Play.
const (
	SoundAlienDestroyed = "alien destroyed"
	SoundShipDestroyed  = "ship destroyed"
)

// Factory builds a fresh streamer for one playback.
type Factory func(rate beep.SampleRate, volume float64) beep.Streamer

// SoundManager plays named effects through a shared mixer.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	sounds      map[string]Factory
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager with the default effects.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		sounds: map[string]Factory{
			SoundAlienDestroyed: CreatePew,
			SoundShipDestroyed:  CreateBlast,
		},
		volume: 1.0,
	}
}

// Initialize opens the speaker. Until it succeeds Play is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// SetVolume sets the linear master volume in [0, 1].
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = max(0, min(1, v))
}

// Register adds or replaces a named effect.
func (sm *SoundManager) Register(name string, f Factory) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.sounds[name] = f
}

// Streamer builds the streamer for name, or nil if the name is unknown.
func (sm *SoundManager) Streamer(name string) beep.Streamer {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	f, ok := sm.sounds[name]
	if !ok {
		return nil
	}
	return f(sampleRate, sm.volume)
}

// Play starts the named effect without waiting for it. Unknown names are ignored.
func (sm *SoundManager) Play(name string) {
	s := sm.Streamer(name)
	if s == nil {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	// The speaker goroutine reads the mixer.
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}
