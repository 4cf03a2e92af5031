// Package memory implements the tile-pairs game.
// The player flips two tiles at a time looking for identical faces; a
// mismatched pair stays visible for a short pause and then hides again.
// The score is the number of whole seconds spent so far, lower is better.
package memory

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
	gameID    = "memory"
	gameTitle = "Memory"
)

func init() {
	registry.Register(gameID, registry.Solo, func(opts registry.Options) registry.Game {
		return New(opts.Logger)
	})
}

// Game is the Memory game state.
type Game struct {
	cfg    config.MemoryConfig
	screen core.RuntimeConfig
	logger *log.Logger

	board     *Board
	selection []int // Board indices, at most 2

	// While resolving, a mismatched pair is on display until the deadline.
	resolving bool
	until     time.Time

	start time.Time // Zero until the first Update
	score int
}

// New creates a new Memory game with the embedded rule constants.
// A nil logger discards output.
func New(logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg, err := config.LoadMemory()
	if err != nil {
		logger.Warn("using built-in memory rules", "err", err)
	}

	g := &Game{cfg: cfg, logger: logger.WithPrefix(gameID)}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return gameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return gameTitle
}

// Reset deals a freshly shuffled board sized to the surface.
func (g *Game) Reset(rc core.RuntimeConfig) {
	rng := rand.New(rand.NewSource(rc.Seed))
	faces := ShuffledFaces(g.cfg.Board.Tiles(), rng)

	// Validated config always yields a matching face count.
	board, _ := NewBoard(g.layout(rc), faces)
	g.reset(rc, board)
}

// ResetWithFaces deals a board with faces in the given row-major order.
func (g *Game) ResetWithFaces(rc core.RuntimeConfig, faces []Face) error {
	board, err := NewBoard(g.layout(rc), faces)
	if err != nil {
		return err
	}
	g.reset(rc, board)
	return nil
}

func (g *Game) reset(rc core.RuntimeConfig, board *Board) {
	g.screen = rc
	g.board = board
	g.selection = g.selection[:0]
	g.resolving = false
	g.until = time.Time{}
	g.start = time.Time{}
	g.score = 0
}

// layout divides the surface into equal tiles. The reserved columns on the
// right are left for the score.
func (g *Game) layout(rc core.RuntimeConfig) Layout {
	b := g.cfg.Board
	return Layout{
		Rows:  b.Rows,
		Cols:  b.Cols,
		TileW: rc.ScreenW / (b.Cols + b.ReservedCols),
		TileH: rc.ScreenH / b.Rows,
	}
}

// Board returns the board being played.
func (g *Game) Board() *Board {
	return g.board
}

// Selection returns a copy of the selected tile indices.
func (g *Game) Selection() []int {
	return append([]int(nil), g.selection...)
}

// Resolving reports whether a mismatched pair is on display.
func (g *Game) Resolving() bool {
	return g.resolving
}

// HandleEvent applies one input event. Only pointer releases matter here.
func (g *Game) HandleEvent(ev core.Event) {
	if ev.Kind == core.EventPointerUp {
		g.Select(ev.Pos)
	}
}

// Select exposes the hidden tile under p if the selection has room.
// It reports whether a tile was exposed.
func (g *Game) Select(p core.Point) bool {
	if g.resolving || g.Complete() {
		return false
	}
	if len(g.selection) >= 2 {
		return false
	}

	i, ok := g.board.At(p)
	if !ok || g.board.Tile(i).Exposed() {
		return false
	}

	g.board.expose(i)
	g.selection = append(g.selection, i)
	return true
}

// Update advances one tick: refreshes the score and resolves the selection.
// The first call starts the score clock.
func (g *Game) Update(now time.Time) {
	if g.start.IsZero() {
		g.start = now
	}
	g.score = int(now.Sub(g.start) / time.Second)
	g.Resolve(now)
}

// Resolve compares a full selection. A match sticks immediately; a mismatch
// starts the reveal pause and hides both tiles once it has elapsed.
// Clicks made during the pause are rejected by Select and not replayed
// afterwards.
func (g *Game) Resolve(now time.Time) {
	if !g.resolving {
		if len(g.selection) != 2 {
			return
		}
		a, b := g.selection[0], g.selection[1]
		if g.board.Tile(a).Face == g.board.Tile(b).Face {
			g.board.match(a)
			g.board.match(b)
			g.selection = g.selection[:0]
			g.logger.Debug("pair found", "face", g.board.Tile(a).Face, "matched", g.board.MatchedCount())
			return
		}
		g.resolving = true
		g.until = now.Add(g.cfg.MismatchPause())
		g.logger.Debug("mismatch", "tiles", g.selection)
	}

	if now.Before(g.until) {
		return
	}
	for _, i := range g.selection {
		g.board.hide(i)
	}
	g.selection = g.selection[:0]
	g.resolving = false
}

// Complete reports whether every tile has been matched.
func (g *Game) Complete() bool {
	return g.board.MatchedCount() == g.board.Len()
}

// Score returns the whole seconds elapsed since the first tick.
func (g *Game) Score() int {
	return g.score
}

// State returns the summary shown by the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.Complete(),
	}
}

// Draw renders the score and then every tile in row-major order.
func (g *Game) Draw(dst core.Surface) {
	dst.Clear(core.ColorBlack)

	text := strconv.Itoa(g.score)
	size := g.cfg.ScoreFontSize
	x := g.screen.ScreenW - dst.MeasureText(text, size)
	dst.DrawText(text, size, core.ColorWhite, core.ColorBlack, core.Pt(x, 0))

	for i := 0; i < g.board.Len(); i++ {
		t := g.board.Tile(i)
		dst.DrawImage(t.Handle(), t.Rect.Min())
		dst.DrawRect(t.Rect, core.ColorBlack, core.Outlined, g.cfg.Board.TileBorder)
	}
}
