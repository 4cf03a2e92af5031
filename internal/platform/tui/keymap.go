package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/frame-arcade/internal/core"
	"github.com/vovakirdan/frame-arcade/internal/registry"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	LeftUp    key.Binding
	LeftDown  key.Binding
	RightUp   key.Binding
	RightDown key.Binding
	Quit      key.Binding
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown, k.Quit}
}

// FullHelp returns bindings grouped by player.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LeftUp, k.LeftDown},
		{k.RightUp, k.RightDown},
		{k.Quit},
	}
}

// DefaultKeyMap returns the default in-game key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		LeftUp: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q", "left up"),
		),
		LeftDown: key.NewBinding(
			key.WithKeys("a", "A"),
			key.WithHelp("a", "left down"),
		),
		RightUp: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "right up"),
		),
		RightDown: key.NewBinding(
			key.WithKeys("l", "L"),
			key.WithHelp("l", "right down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "close"),
		),
	}
}

// ForMode disables the paddle keys for games played with the pointer, so
// they drop out of the help footer.
func (k KeyMap) ForMode(m registry.Mode) KeyMap {
	paddles := m == registry.LocalVersus
	k.LeftUp.SetEnabled(paddles)
	k.LeftDown.SetEnabled(paddles)
	k.RightUp.SetEnabled(paddles)
	k.RightDown.SetEnabled(paddles)
	return k
}

// Code maps a key message to a game key. Keys the games do not use map
// to core.KeyUnknown.
func (k KeyMap) Code(msg tea.KeyMsg) core.KeyCode {
	switch {
	case key.Matches(msg, k.LeftUp):
		return core.KeyQ
	case key.Matches(msg, k.LeftDown):
		return core.KeyA
	case key.Matches(msg, k.RightUp):
		return core.KeyP
	case key.Matches(msg, k.RightDown):
		return core.KeyL
	}
	return core.KeyUnknown
}

// PaddleGroups lists the keys that share a paddle.
func PaddleGroups() [][]core.KeyCode {
	return [][]core.KeyCode{
		{core.KeyQ, core.KeyA},
		{core.KeyP, core.KeyL},
	}
}
