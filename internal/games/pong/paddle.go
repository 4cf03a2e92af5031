package pong

import "github.com/vovakirdan/frame-arcade/internal/core"

// Side selects a paddle.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Direction is the commanded paddle motion.
type Direction int

const (
	Stop Direction = iota
	Up
	Down
)

// Paddle is a vertical bar that only moves along y.
type Paddle struct {
	Rect core.Rect
	VY   int // One of -step, 0, +step
}

// Move applies the velocity and keeps the paddle inside [0, height].
func (p *Paddle) Move(height int) {
	p.Rect = p.Rect.Translate(0, p.VY).ClampY(0, height)
}

// Hit reports whether the ball center lies inside the paddle.
func (p *Paddle) Hit(b *Ball) bool {
	return p.Rect.ContainsVec(b.Center)
}
