package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW              int     // Screen width in characters
	ScreenH              int     // Screen height in characters
	TickRate             int     // Simulation ticks per second (default 60)
	Seed                 int64   // RNG seed for deterministic gameplay
	SpawnFourProbability float64 // Chance a spawned tile is a 4 (0.0-1.0)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:              80,
		ScreenH:              24,
		TickRate:             60,
		Seed:                 0, // 0 means use current time in platform layer
		SpawnFourProbability: 0.10,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Moves    int  // Moves that changed the board
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Moved bool // Whether this tick's input changed the board
}
