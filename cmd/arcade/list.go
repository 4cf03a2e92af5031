package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/frame-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with its players and controls.`,
	Run:   runList,
}

var listHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

// controls describes how a game of the given mode is played.
func controls(m registry.Mode) string {
	if m == registry.LocalVersus {
		return "q/a left paddle, p/l right paddle"
	}
	return "click a tile to flip it"
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Title", "Players", "Controls").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return listHeaderStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, g := range games {
		t.Row(g.ID, g.Title, g.Mode.String(), controls(g.Mode))
	}

	fmt.Println(t)
	fmt.Println("Run 'arcade play <id>' to play a game. Esc closes the window.")
}
