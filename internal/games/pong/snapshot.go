package pong

// Snapshot is a flat copy of the simulation state, used to compare runs and
// to log the final position of a match.
type Snapshot struct {
	Tick       int
	BallX      float64
	BallY      float64
	BallVX     float64
	BallVY     float64
	LeftTop    int
	RightTop   int
	ScoreLeft  int
	ScoreRight int
	GameOver   bool
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tickCount,
		BallX:      g.ball.Center.X,
		BallY:      g.ball.Center.Y,
		BallVX:     g.ball.Velocity.X,
		BallVY:     g.ball.Velocity.Y,
		LeftTop:    g.left.Rect.Y,
		RightTop:   g.right.Rect.Y,
		ScoreLeft:  g.scoreLeft,
		ScoreRight: g.scoreRight,
		GameOver:   g.Complete(),
	}
}
