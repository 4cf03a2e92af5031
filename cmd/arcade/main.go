// arcade plays Memory and two-player Pong in the terminal.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for a reproducible board or ball start
//	--log-file <path>   - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/frame-arcade/internal/games/memory"
	_ "github.com/vovakirdan/frame-arcade/internal/games/pong"
)

var (
	// Global flags
	flagSeed    int64
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Frame Arcade - Memory and Pong in your terminal",
	Long: `Frame Arcade runs two small games on a fixed 60 Hz frame loop:

  memory - flip tiles two at a time and find all eight pairs
  pong   - two players, one keyboard, first to 11 wins

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu

Examples:
  arcade list
  arcade play memory
  arcade play pong --seed 42
  arcade menu --log-file arcade.log`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
}

// newLogger builds the session logger. With --log-file it logs everything to
// that file; otherwise only warnings go to stderr so the game screen stays
// clean. The returned closer must be called when done.
func newLogger(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "arcade",
			Level:           log.WarnLevel,
		})
		return logger, io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}
