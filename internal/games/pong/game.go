// Package pong implements two-player Pong on a shared keyboard.
// Q/A move the left paddle, P/L the right one. The first side to reach the
// win score ends the match.
package pong

import (
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/frame-arcade/internal/config"
	"github.com/vovakirdan/frame-arcade/internal/core"
	"github.com/vovakirdan/frame-arcade/internal/registry"
)

const (
	gameID    = "pong"
	gameTitle = "Pong"
)

// Game implements the Pong game logic.
type Game struct {
	cfg     config.PongConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
	rng     *rand.Rand

	left, right Paddle
	ball        Ball

	// Scores
	scoreLeft  int
	scoreRight int

	// Set while the ball sits past a scoring bound, so a point is counted
	// once per entry.
	outLeft  bool
	outRight bool

	tickCount int
}

// New creates a new Pong game instance. A nil logger discards output.
func New(logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg, err := config.LoadPong()
	if err != nil {
		logger.Warn("using built-in pong rules", "err", err)
	}

	g := &Game{cfg: cfg, logger: logger.WithPrefix(gameID)}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return gameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return gameTitle
}

// Reset places both paddles with their tops at mid height and drops the
// ball at a random spot between them.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	p := g.cfg.Paddle
	top := runtime.ScreenH / 2
	g.left = Paddle{Rect: core.NewRect(p.LeftX, top, p.Width, p.Height)}
	g.right = Paddle{Rect: core.NewRect(p.RightX, top, p.Width, p.Height)}

	b := g.cfg.Ball
	r := int(b.Radius)
	x := p.LeftX + g.rng.Intn(p.RightX-p.LeftX+1)
	y := r + g.rng.Intn(max(1, runtime.ScreenH-2*r+1))
	g.ball = Ball{
		Center:   core.Vec{X: float64(x), Y: float64(y)},
		Velocity: core.Vec{X: b.VelocityX, Y: b.VelocityY},
		Radius:   b.Radius,
		Color:    core.ColorWhite,
	}

	g.scoreLeft = 0
	g.scoreRight = 0
	g.outLeft = false
	g.outRight = false
	g.tickCount = 0
}

// HandleEvent maps the paddle keys. Other keys and pointer events are ignored.
func (g *Game) HandleEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventKeyDown:
		switch ev.Key {
		case core.KeyQ:
			g.SetPaddleVelocity(Left, Up)
		case core.KeyA:
			g.SetPaddleVelocity(Left, Down)
		case core.KeyP:
			g.SetPaddleVelocity(Right, Up)
		case core.KeyL:
			g.SetPaddleVelocity(Right, Down)
		}
	case core.EventKeyUp:
		// Releasing either key of a side stops that side.
		switch ev.Key {
		case core.KeyQ, core.KeyA:
			g.SetPaddleVelocity(Left, Stop)
		case core.KeyP, core.KeyL:
			g.SetPaddleVelocity(Right, Stop)
		}
	}
}

// SetPaddleVelocity commands one paddle. The last command wins.
func (g *Game) SetPaddleVelocity(side Side, dir Direction) {
	step := g.cfg.Paddle.Step
	vy := 0
	switch dir {
	case Up:
		vy = -step
	case Down:
		vy = step
	}
	g.paddle(side).VY = vy
}

func (g *Game) paddle(side Side) *Paddle {
	if side == Left {
		return &g.left
	}
	return &g.right
}

// Update advances one tick. Pong runs on tick count, not wall time.
func (g *Game) Update(time.Time) {
	g.Advance()
}

// Advance runs one simulation step: paddles, ball, walls, paddle hits and
// scoring, in that order. It does nothing once the match is over.
func (g *Game) Advance() {
	if g.Complete() {
		return
	}
	g.tickCount++

	h := g.runtime.ScreenH
	g.left.Move(h)
	g.right.Move(h)

	g.ball.Move()
	g.ball.ReflectWalls(float64(g.runtime.ScreenW), float64(h))

	// The ball bounces only off the face it is heading toward.
	if g.ball.Velocity.X < 0 && g.left.Hit(&g.ball) {
		g.ball.Bounce()
	} else if g.ball.Velocity.X > 0 && g.right.Hit(&g.ball) {
		g.ball.Bounce()
	}

	g.score()
}

// score counts a point when the ball enters a scoring zone. The ball is
// not re-served; it keeps going from where it is.
func (g *Game) score() {
	x, r := g.ball.Center.X, g.ball.Radius
	w := float64(g.runtime.ScreenW)

	pastRight := x >= w-r
	if pastRight && !g.outRight {
		g.scoreLeft++
		g.logger.Debug("point", "side", Left, "score", g.scoreLeft, "tick", g.tickCount)
	}
	g.outRight = pastRight

	pastLeft := x <= r
	if pastLeft && !g.outLeft {
		g.scoreRight++
		g.logger.Debug("point", "side", Right, "score", g.scoreRight, "tick", g.tickCount)
	}
	g.outLeft = pastLeft

	if g.Complete() {
		g.logger.Info("match over", "left", g.scoreLeft, "right", g.scoreRight, "final", g.Snapshot())
	}
}

// Complete reports whether either side reached the win score.
func (g *Game) Complete() bool {
	return g.scoreLeft >= g.cfg.WinScore || g.scoreRight >= g.cfg.WinScore
}

// Scores returns (left, right).
func (g *Game) Scores() (int, int) {
	return g.scoreLeft, g.scoreRight
}

// Draw renders both scores, both paddles and the ball.
func (g *Game) Draw(dst core.Surface) {
	dst.Clear(core.ColorBlack)

	size := g.cfg.ScoreFontSize
	leftText := strconv.Itoa(g.scoreLeft)
	dst.DrawText(leftText, size, core.ColorWhite, core.ColorBlack, core.Pt(0, 0))

	rightText := strconv.Itoa(g.scoreRight)
	x := g.runtime.ScreenW - dst.MeasureText(rightText, size)
	dst.DrawText(rightText, size, core.ColorWhite, core.ColorBlack, core.Pt(x, 0))

	dst.DrawRect(g.left.Rect, core.ColorWhite, core.Filled, 0)
	dst.DrawRect(g.right.Rect, core.ColorWhite, core.Filled, 0)
	dst.DrawCircle(g.ball.Center, g.ball.Radius, g.ball.Color)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.scoreLeft,
		Rival:    g.scoreRight,
		GameOver: g.Complete(),
	}
}

// Register the game with the registry
func init() {
	registry.Register(gameID, registry.LocalVersus, func(opts registry.Options) registry.Game {
		return New(opts.Logger)
	})
}
