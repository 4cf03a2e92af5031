package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/frame-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game window is closed, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Esc/Q        - Quit

Examples:
  arcade menu
  arcade menu --log-file arcade.log`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	sess, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer sess.close()

	// Menu loop
	for {
		info, ok, err := tui.RunMenu()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		if !ok {
			break
		}

		// A fixed --seed replays the same layout every round
		if err := sess.play(context.Background(), info.ID, flagSeed); err != nil {
			sess.logger.Error("game failed", "game", info.ID, "err", err)
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}
}
