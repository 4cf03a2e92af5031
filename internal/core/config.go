package core

// RuntimeConfig contains configuration passed to games at initialization.
// Screen dimensions are logical surface units, not terminal cells.
type RuntimeConfig struct {
	ScreenW  int   // Surface width in logical units
	ScreenH  int   // Surface height in logical units
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for the board shuffle / ball placement
}

// DefaultConfig returns the fixed window parameters: a 500x400 surface at 60 Hz.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  500,
		ScreenH:  400,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is a summary of a game used by the platform for status display.
type GameState struct {
	Score    int  // Primary score (elapsed seconds, or left score for pong)
	Rival    int  // Secondary score (right score for pong, unused otherwise)
	GameOver bool // Whether the terminal condition holds
}
