package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Effect names a sound the game can play.
type Effect int

const (
	EffectFlap Effect = iota
	EffectPoint
	EffectHit
)

// String returns the effect name.
func (e Effect) String() string {
	switch e {
	case EffectFlap:
		return "flap"
	case EffectPoint:
		return "point"
	case EffectHit:
		return "hit"
	default:
		return "unknown"
	}
}

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type oscillator struct {
	freq, sweep float64 // Start frequency and change per second
	phase       float64
	duration    int
	position    int
	wave        Wave
	rate        beep.SampleRate
	rng         *rand.Rand
}

// NewOscillator creates a finite tone. sweep bends the pitch linearly in
// Hz per second.
func NewOscillator(freq, sweep float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + int64(wave))),
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
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.rate)
		freq := math.Max(o.freq+o.sweep*t, 0)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a stream with a linear attack and release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// gain scales s by a base-2 exponent; 0 leaves it unchanged.
func gain(s beep.Streamer, volume float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: volume}
}

// tone plays a pure sine of the given pitch and length.
func tone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(rate.N(d))
	}
	return NewEnvelope(beep.Take(rate.N(d), sine), d, 5*time.Millisecond, d/2, rate)
}

// NewEffect builds a fresh streamer for e. volume is a base-2 gain.
func NewEffect(e Effect, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch e {
	case EffectFlap:
		// Short upward chirp
		d := 70 * time.Millisecond
		s = NewEnvelope(NewOscillator(320, 2400, d, WaveSquare, rate), d, 3*time.Millisecond, 40*time.Millisecond, rate)
		s = gain(s, -2)
	case EffectPoint:
		// Two-note chime, B5 then E6
		s = beep.Seq(
			tone(987.77, 80*time.Millisecond, rate),
			tone(1318.51, 160*time.Millisecond, rate),
		)
	case EffectHit:
		d := 220 * time.Millisecond
		thud := NewEnvelope(NewOscillator(140, -300, d, WaveSaw, rate), d, 2*time.Millisecond, 150*time.Millisecond, rate)
		crack := NewEnvelope(NewOscillator(0, 0, 60*time.Millisecond, WaveNoise, rate), 60*time.Millisecond, time.Millisecond, 50*time.Millisecond, rate)
		s = beep.Mix(gain(thud, -0.8), gain(crack, -1.6))
	default:
		return nil
	}
	return gain(s, volume)
}
