package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/frame-arcade/internal/core"
	"github.com/vovakirdan/frame-arcade/internal/registry"
)

// statusLines is the number of terminal rows below the play surface.
const statusLines = 2

// Frame is one presented picture plus the score summary drawn with it.
type Frame struct {
	Screen *core.Screen
	State  core.GameState
}

// FrameMsg delivers a finished frame from the loop goroutine.
type FrameMsg Frame

// loopDoneMsg reports that the loop goroutine has returned.
type loopDoneMsg struct {
	err error
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	scoreStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	finishedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
)

// Model is the Bubble Tea model for the game window. It owns no game
// state: frames arrive as messages and input leaves through Input.
type Model struct {
	title   string
	mode    registry.Mode
	input   *Input
	canvas  *Canvas
	keys    KeyMap
	help    help.Model
	frame   Frame
	width   int
	height  int
	now     func() time.Time
	loopErr error
}

// NewModel creates the window model for a game.
func NewModel(info registry.GameInfo, input *Input, canvas *Canvas) Model {
	h := help.New()
	h.ShortSeparator = "  "
	return Model{
		title:  info.Title,
		mode:   info.Mode,
		input:  input,
		canvas: canvas,
		keys:   DefaultKeyMap().ForMode(info.Mode),
		help:   h,
		now:    time.Now,
	}
}

// Init starts nothing; frames are pushed by the loop.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		m.frame = Frame(msg)
		return m, nil

	case loopDoneMsg:
		m.loopErr = msg.err
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.input.Push(core.Quit())
		return m, tea.Quit
	}

	if code := m.keys.Code(msg); code != core.KeyUnknown {
		m.input.Press(code, m.now())
	}
	return m, nil
}

// handleMouse turns a button release over the surface into a PointerUp.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease {
		return m, nil
	}
	vp := m.canvas.Viewport()
	if !vp.Contains(msg.X, msg.Y) {
		return m, nil
	}
	p := vp.ToLogical(msg.X, msg.Y)
	m.input.Push(core.PointerUp(p.X, p.Y))
	return m, nil
}

// handleResize refits the surface to the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	vp := m.canvas.Viewport()
	m.canvas.SetViewport(Fit(vp.LogicalW, vp.LogicalH, msg.Width, msg.Height-statusLines))
	return m, nil
}

// status renders the line under the surface.
func (m Model) status() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("  ")

	st := m.frame.State
	switch m.mode {
	case registry.LocalVersus:
		b.WriteString(scoreStyle.Render(fmt.Sprintf("%d : %d", st.Score, st.Rival)))
	default:
		b.WriteString(scoreStyle.Render(fmt.Sprintf("%ds  click a tile to flip it", st.Score)))
	}

	if st.GameOver {
		b.WriteString("  ")
		b.WriteString(finishedStyle.Render("finished"))
	}
	return b.String()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(RenderScreen(m.frame.Screen))
	b.WriteString("\n")
	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Err returns the error the loop ended with, if any.
func (m Model) Err() error {
	return m.loopErr
}
