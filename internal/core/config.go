package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the platform
	Seed     int64 // RNG seed for reproducible obstacle layouts
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the coarse game status reported to the platform.
type GameState struct {
	Score     int  // Current score
	Highscore int  // Best committed score
	GameOver  bool // Whether the actor is dead
	Paused    bool // Whether time is frozen
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
	Quit  bool // The game asked the platform to exit
}
