package pong

import "github.com/vovakirdan/frame-arcade/internal/core"

// Ball moves with a fixed-magnitude velocity; collisions only flip signs.
type Ball struct {
	Center   core.Vec
	Velocity core.Vec
	Radius   float64
	Color    core.Color
}

// Move advances the center by one tick of velocity.
func (b *Ball) Move() {
	b.Center = b.Center.Add(b.Velocity)
}

// ReflectWalls flips each velocity component whose leading edge is past a
// surface bound while still heading outward. A ball already heading back in
// is left alone, so one crossing gives one reflection.
func (b *Ball) ReflectWalls(width, height float64) {
	b.Velocity.X = reflect(b.Center.X, b.Velocity.X, b.Radius, width)
	b.Velocity.Y = reflect(b.Center.Y, b.Velocity.Y, b.Radius, height)
}

func reflect(pos, vel, radius, limit float64) float64 {
	if pos < radius && vel < 0 {
		return -vel
	}
	if pos+radius > limit && vel > 0 {
		return -vel
	}
	return vel
}

// Bounce reverses the ball off a paddle.
func (b *Ball) Bounce() {
	b.Velocity = b.Velocity.Neg()
}
