package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a raw wave, optionally sweeping its frequency.
type oscillator struct {
	freq     float64
	sweep    float64 // Hz per second added to freq
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a fixed-frequency oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, 0, duration, wave, rate)
}

// NewSweep creates an oscillator whose frequency changes by sweep Hz per second.
func NewSweep(freq, sweep float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())), //#nosec G404 -- audio noise
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.rate)
		freq := math.Max(20, o.freq+o.sweep*t)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay applies a short linear attack and exponential decay.
type decay struct {
	streamer beep.Streamer
	rate     beep.SampleRate
	attack   int
	speed    float64 // Decay rate per second
	position int
}

// NewDecay shapes s with an attack ramp followed by exp(-speed*t) falloff.
func NewDecay(s beep.Streamer, attack time.Duration, speed float64, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, rate: rate, attack: rate.N(attack), speed: speed}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		var vol float64
		if d.position < d.attack {
			vol = float64(d.position) / float64(d.attack)
		} else {
			t := float64(d.position-d.attack) / float64(d.rate)
			vol = math.Exp(-d.speed * t)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales s linearly; vol <= 0 is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

const (
	pewDuration   = 120 * time.Millisecond
	blastDuration = 600 * time.Millisecond
)

// CreatePew generates a falling laser chirp.
func CreatePew(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewSweep(1400, -7000, pewDuration, WaveSquare, rate)
	return newVolume(NewDecay(osc, 5*time.Millisecond, 18, rate), volume*0.3)
}

// CreateBlast generates a noisy explosion with a low rumble.
func CreateBlast(rate beep.SampleRate, volume float64) beep.Streamer {
	noise := NewDecay(NewOscillator(0, blastDuration, WaveNoise, rate), 10*time.Millisecond, 6, rate)
	rumble := NewDecay(NewSweep(90, -60, blastDuration, WaveSine, rate), 10*time.Millisecond, 4, rate)
	mixed := beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.4))
	return newVolume(mixed, volume*0.5)
}
