// Package clock supplies frame delta-time and the time-scale pause flag.
// Real elapsed time is measured by a Stopwatch; Clock turns it into scaled
// game time. A time scale of zero pauses gameplay while frames keep coming.
package clock

import (
	"sync"
	"time"
)

// DefaultMaxDelta caps a single frame so a stalled terminal does not
// teleport the actor through obstacles.
const DefaultMaxDelta = time.Second / 3

// TimeProvider is a source of wall-clock time.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider returns the system time with a monotonic reading.
type RealTimeProvider struct{}

// Now returns the current time.
func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider provides a controllable time source for testing.
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider creates a mock time provider with the given start time.
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: start}
}

// Now returns the current mocked time.
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance moves the mocked time forward.
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// Stopwatch measures real time between consecutive laps.
type Stopwatch struct {
	provider TimeProvider
	last     time.Time
	started  bool
}

// NewStopwatch creates a stopwatch. A nil provider means real time.
func NewStopwatch(provider TimeProvider) *Stopwatch {
	if provider == nil {
		provider = RealTimeProvider{}
	}
	return &Stopwatch{provider: provider}
}

// Lap returns the time since the previous lap. The first lap returns 0.
func (s *Stopwatch) Lap() time.Duration {
	now := s.provider.Now()
	if !s.started {
		s.started = true
		s.last = now
		return 0
	}
	d := now.Sub(s.last)
	s.last = now
	if d < 0 {
		return 0
	}
	return d
}

// Frame is the timing information for one frame, in seconds.
type Frame struct {
	Delta    float64 // Scaled delta; zero while paused
	Unscaled float64 // Real delta after clamping
	Paused   bool
}

// Clock owns the time scale and converts real frame durations into game time.
type Clock struct {
	timeScale float64
	maxDelta  time.Duration
}

// New creates a running clock with time scale 1.
func New() *Clock {
	return &Clock{timeScale: 1, maxDelta: DefaultMaxDelta}
}

// SetMaxDelta changes the per-frame cap. Non-positive values disable it.
func (c *Clock) SetMaxDelta(d time.Duration) {
	c.maxDelta = d
}

// TimeScale returns the current multiplier on real time.
func (c *Clock) TimeScale() float64 {
	return c.timeScale
}

// SetTimeScale sets the multiplier. Negative values are treated as zero.
func (c *Clock) SetTimeScale(s float64) {
	if s < 0 {
		s = 0
	}
	c.timeScale = s
}

// Paused reports whether the time scale is zero.
func (c *Clock) Paused() bool {
	return c.timeScale == 0
}

// Advance converts a real frame duration into a Frame.
func (c *Clock) Advance(real time.Duration) Frame {
	if real < 0 {
		real = 0
	}
	if c.maxDelta > 0 && real > c.maxDelta {
		real = c.maxDelta
	}
	unscaled := real.Seconds()
	return Frame{
		Delta:    unscaled * c.timeScale,
		Unscaled: unscaled,
		Paused:   c.Paused(),
	}
}
