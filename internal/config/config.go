// Package config holds the hardwired rule constants of the arcade games.
// Values live in embedded YAML so they are readable in one place; there is
// no user override path.
package config

import "time"

// WindowConfig holds the fixed surface and tick parameters.
type WindowConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TickRate int `yaml:"tick_rate"`
}

// MemoryConfig contains all configuration for the Memory game.
type MemoryConfig struct {
	Board           MemoryBoard `yaml:"board"`
	MismatchPauseMS int         `yaml:"mismatch_pause_ms"`
	ScoreFontSize   int         `yaml:"score_font_size"`
}

// MemoryBoard defines the tile grid.
type MemoryBoard struct {
	Rows         int `yaml:"rows"`
	Cols         int `yaml:"cols"`
	ReservedCols int `yaml:"reserved_cols"`
	TileBorder   int `yaml:"tile_border"`
}

// Tiles returns the number of tiles on the board.
func (b MemoryBoard) Tiles() int {
	return b.Rows * b.Cols
}

// MismatchPause returns the reveal delay before a mismatched pair hides again.
func (c MemoryConfig) MismatchPause() time.Duration {
	return time.Duration(c.MismatchPauseMS) * time.Millisecond
}

// PongConfig contains all configuration for the Pong game.
type PongConfig struct {
	Paddle        PongPaddle `yaml:"paddle"`
	Ball          PongBall   `yaml:"ball"`
	WinScore      int        `yaml:"win_score"`
	ScoreFontSize int        `yaml:"score_font_size"`
}

// PongPaddle defines paddle geometry and speed.
type PongPaddle struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	LeftX  int `yaml:"left_x"`
	RightX int `yaml:"right_x"`
	Step   int `yaml:"step"`
}

// PongBall defines the ball size and its fixed starting velocity.
type PongBall struct {
	Radius    float64 `yaml:"radius"`
	VelocityX float64 `yaml:"velocity_x"`
	VelocityY float64 `yaml:"velocity_y"`
}
