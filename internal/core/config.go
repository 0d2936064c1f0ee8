package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	TickRate   int    // Display frames per second driven by the platform
	Seed       int64  // RNG seed for deterministic spawning
	PlayerName string // Name recorded with high scores
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       0, // 0 means use current time in platform layer
		PlayerName: "Anonymous",
	}
}

// RunSummary is the final result of a finished run, handed to the platform
// so it can persist a high score.
type RunSummary struct {
	Score             int
	Level             int
	Difficulty        string
	Molecules         []string // Formulas in formation order
	Inventory         []string // Symbols left uncombined
	ElementsCollected int
	LivesRemaining    int
}

// GameState represents the current state of a game.
type GameState struct {
	Score      int
	Level      int
	Lives      int
	Difficulty string
	GameOver   bool
	Paused     bool
	Summary    *RunSummary // Set once the run has ended
}

// StepResult is returned by Game.Frame after each display frame.
type StepResult struct {
	State GameState
	Steps int // Fixed simulation steps executed during the frame
}
