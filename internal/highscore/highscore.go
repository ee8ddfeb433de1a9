// Package highscore persists the best score of a game as a single named
// integer. Writes happen only when a candidate beats the stored value.
package highscore

import (
	"sync"

	"github.com/charmbracelet/log"
)

// DefaultKey is the record name used when a game does not configure one.
const DefaultKey = "Highscore"

// Store is the highscore contract used by gameplay code.
type Store interface {
	// Get returns the last committed value, or 0 if none exists.
	Get() int
	// SetIfGreater persists candidate only if it beats Get().
	SetIfGreater(candidate int)
}

// Prefs is a durable key/value store of named integers, scoped per game.
type Prefs interface {
	GetInt(gameID, key string) (value int, ok bool, err error)
	PutInt(gameID, key string, value int) error
}

// Persistent is a Store backed by Prefs. Read failures read as 0 and
// write failures are logged and dropped.
type Persistent struct {
	prefs  Prefs
	gameID string
	key    string
	logger *log.Logger
}

// New creates a persistent store for one game's record.
func New(prefs Prefs, gameID, key string, logger *log.Logger) *Persistent {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Persistent{
		prefs:  prefs,
		gameID: gameID,
		key:    key,
		logger: logger,
	}
}

// Get returns the stored highscore.
func (p *Persistent) Get() int {
	v, ok, err := p.prefs.GetInt(p.gameID, p.key)
	if err != nil {
		p.logger.Warn("could not read highscore", "game", p.gameID, "key", p.key, "error", err)
		return 0
	}
	if !ok {
		return 0
	}
	return v
}

// SetIfGreater commits candidate when it beats the stored value.
func (p *Persistent) SetIfGreater(candidate int) {
	if candidate <= p.Get() {
		return
	}
	if err := p.prefs.PutInt(p.gameID, p.key, candidate); err != nil {
		p.logger.Warn("could not save highscore", "game", p.gameID, "score", candidate, "error", err)
		return
	}
	p.logger.Debug("new highscore", "game", p.gameID, "score", candidate)
}

// Memory is an in-process Prefs implementation.
type Memory struct {
	mu     sync.Mutex
	values map[string]int
}

// NewMemory creates an empty in-memory Prefs.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]int)}
}

// GetInt returns the stored value for gameID/key.
func (m *Memory) GetInt(gameID, key string) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[gameID+"/"+key]
	return v, ok, nil
}

// PutInt stores value for gameID/key.
func (m *Memory) PutInt(gameID, key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[gameID+"/"+key] = value
	return nil
}

var (
	_ Prefs = (*Memory)(nil)
	_ Store = (*Persistent)(nil)
)
