// Package audio plays the game's sound effects. Effects are synthesized at
// runtime, so there are no asset files to ship.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/actor"
)

const sampleRate = beep.SampleRate(44100)

// Player plays sound effects. Implementations must not block the frame.
type Player interface {
	Play(e Effect)
	Close()
}

// Silent is a Player that does nothing.
type Silent struct{}

// Play does nothing.
func (Silent) Play(Effect) {}

// Close does nothing.
func (Silent) Close() {}

// Speaker plays effects on the default output device through one mixer.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	closed bool
}

// the speaker package drives a single process-wide device
var (
	speakerOnce sync.Once
	speakerErr  error
)

// NewSpeaker opens the output device. volume is a base-2 gain applied to
// every effect.
func NewSpeaker(volume float64) (*Speaker, error) {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(time.Second/20))
	})
	if speakerErr != nil {
		return nil, fmt.Errorf("audio: cannot open speaker: %w", speakerErr)
	}

	s := &Speaker{mixer: &beep.Mixer{}, volume: volume}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues e on the mixer.
func (s *Speaker) Play(e Effect) {
	st := NewEffect(e, sampleRate, s.volume)
	if st == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close silences everything still playing. The device stays open for the
// rest of the process.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}

// Open returns a Speaker, or Silent when disabled or no device is usable.
func Open(enabled bool, volume float64, logger *log.Logger) Player {
	if !enabled {
		return Silent{}
	}
	sp, err := NewSpeaker(volume)
	if err != nil {
		if logger != nil {
			logger.Warn("sound disabled", "error", err)
		}
		return Silent{}
	}
	return sp
}

// EventSource is anything that publishes actor events.
type EventSource interface {
	Subscribe(l actor.Listener)
}

// Attach plays the matching effect for every actor event from src.
func Attach(src EventSource, p Player) {
	src.Subscribe(func(e actor.Event) {
		switch e.Kind {
		case actor.EventJumped:
			p.Play(EffectFlap)
		case actor.EventScored:
			p.Play(EffectPoint)
		case actor.EventDied:
			p.Play(EffectHit)
		}
	})
}
