package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/frame-arcade/internal/assets"
	"github.com/vovakirdan/frame-arcade/internal/config"
	"github.com/vovakirdan/frame-arcade/internal/platform/tui"
	"github.com/vovakirdan/frame-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  memory  - click a tile to flip it
  pong    - Q/A move the left paddle, P/L the right paddle
  Esc/Ctrl+C closes the window

Examples:
  arcade play memory
  arcade play pong
  arcade play memory --seed 7 --log-file memory.log`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	sess, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer sess.close()

	if err := sess.play(context.Background(), gameID, flagSeed); err != nil {
		sess.logger.Error("game failed", "game", gameID, "err", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		sess.close()
		os.Exit(1)
	}
}

// session holds what every game window needs and is loaded once at startup.
type session struct {
	logger  *log.Logger
	catalog *assets.Catalog
	window  config.WindowConfig
	closeFn func() error
}

// openSession sets up logging and loads the tile images. A missing image is
// fatal before any window opens.
func openSession() (*session, error) {
	logger, closer, err := newLogger(flagLogFile)
	if err != nil {
		return nil, err
	}

	catalog, err := assets.Load()
	if err != nil {
		closer.Close()
		return nil, err
	}

	window, err := config.LoadWindow()
	if err != nil {
		logger.Warn("using built-in window settings", "err", err)
	}

	return &session{
		logger:  logger,
		catalog: catalog,
		window:  window,
		closeFn: closer.Close,
	}, nil
}

func (s *session) close() {
	if s.closeFn != nil {
		//nolint:errcheck // Best-effort close of the log file
		s.closeFn()
		s.closeFn = nil
	}
}

// play creates the game and runs it in the terminal until closed.
func (s *session) play(ctx context.Context, gameID string, seed int64) error {
	game, err := registry.Create(gameID, registry.Options{Logger: s.logger})
	if err != nil {
		return err
	}
	info, _ := registry.Info(gameID)

	// Get terminal size for the first frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.Run(ctx, game, info, tui.Options{
		Window:  s.window,
		Catalog: s.catalog,
		Logger:  s.logger,
		Seed:    seed,
		Cols:    width,
		Rows:    height,
	})
}
