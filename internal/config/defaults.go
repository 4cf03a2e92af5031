package config

import (
	_ "embed"
)

//go:embed defaults/window.yaml
var defaultWindowYAML []byte

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultWindowConfig returns the default window configuration.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:    500,
		Height:   400,
		TickRate: 60,
	}
}

// DefaultMemoryConfig returns the default Memory configuration.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Board: MemoryBoard{
			Rows:         4,
			Cols:         4,
			ReservedCols: 1,
			TileBorder:   3,
		},
		MismatchPauseMS: 1000,
		ScoreFontSize:   72,
	}
}

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Paddle: PongPaddle{
			Width:  10,
			Height: 50,
			LeftX:  125,
			RightX: 375,
			Step:   15,
		},
		Ball: PongBall{
			Radius:    5,
			VelocityX: 4,
			VelocityY: 1,
		},
		WinScore:      11,
		ScoreFontSize: 72,
	}
}
