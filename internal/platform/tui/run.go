package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/frame-arcade/internal/assets"
	"github.com/vovakirdan/frame-arcade/internal/config"
	"github.com/vovakirdan/frame-arcade/internal/core"
	"github.com/vovakirdan/frame-arcade/internal/loop"
	"github.com/vovakirdan/frame-arcade/internal/registry"
)

// Options configures a game window.
type Options struct {
	Window  config.WindowConfig
	Catalog *assets.Catalog
	Logger  *log.Logger
	Seed    int64 // 0 picks a time-based seed
	Cols    int   // Initial terminal size; refined by the first resize
	Rows    int
}

// statusGame reports the score summary to the canvas with every frame.
type statusGame struct {
	registry.Game
	canvas *Canvas
}

func (g statusGame) Draw(dst core.Surface) {
	g.Game.Draw(dst)
	g.canvas.SetState(g.Game.State())
}

// Run plays one game in the terminal until the window is closed.
// The loop controller runs on its own goroutine; the Bubble Tea program
// runs on the caller's.
func Run(ctx context.Context, game registry.Game, info registry.GameInfo, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	logger := opts.Logger.With("session", uuid.NewString(), "game", game.ID())

	rc := core.RuntimeConfig{
		ScreenW:  opts.Window.Width,
		ScreenH:  opts.Window.Height,
		TickRate: opts.Window.TickRate,
		Seed:     opts.Seed,
	}
	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	game.Reset(rc)
	logger.Info("session started", "seed", rc.Seed, "mode", info.Mode)

	var p *tea.Program
	vp := Fit(rc.ScreenW, rc.ScreenH, opts.Cols, opts.Rows-statusLines)
	canvas := NewCanvas(vp, opts.Catalog, func(f Frame) {
		p.Send(FrameMsg(f))
	})
	input := NewInput(DefaultKeyRelease, PaddleGroups()...)

	p = tea.NewProgram(
		NewModel(info, input, canvas),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Pointer releases select tiles
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ctrl := loop.New(statusGame{Game: game, canvas: canvas}, input, canvas,
		loop.WithTickRate(rc.TickRate),
		loop.WithLogger(logger),
	)
	done := make(chan error, 1)
	go func() {
		err := ctrl.Run(ctx)
		p.Send(loopDoneMsg{err: err})
		done <- err
	}()

	final, err := p.Run()
	canvas.Close()
	cancel()
	loopErr := <-done

	logger.Info("session ended", "frames", ctrl.Frames(), "state", fmt.Sprintf("%+v", game.State()))

	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		loopErr = m.Err()
	}
	if loopErr != nil && !errors.Is(loopErr, ErrClosed) {
		return loopErr
	}
	return nil
}
