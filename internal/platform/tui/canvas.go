package tui

import (
	"errors"
	"math"
	"sync"
	"unicode/utf8"

	"github.com/vovakirdan/frame-arcade/internal/assets"
	"github.com/vovakirdan/frame-arcade/internal/core"
)

// ErrClosed is returned by Present once the display has gone away.
var ErrClosed = errors.New("tui: display closed")

// ballGlyph marks cells covered by a circle.
const ballGlyph = '●'

// Canvas rasterizes logical draw calls into a cell buffer. Present hands a
// copy of the finished buffer to the display, so drawing never races with
// the terminal redraw.
type Canvas struct {
	mu      sync.Mutex
	vp      Viewport
	next    Viewport // Applied on the next Clear
	screen  *core.Screen
	catalog *assets.Catalog
	present func(Frame)
	state   core.GameState
	closed  bool
}

// NewCanvas creates a canvas drawing sprites from catalog. present receives
// each finished frame.
func NewCanvas(vp Viewport, catalog *assets.Catalog, present func(Frame)) *Canvas {
	return &Canvas{
		vp:      vp,
		next:    vp,
		screen:  core.NewScreen(vp.Cols, vp.Rows),
		catalog: catalog,
		present: present,
	}
}

// SetViewport changes the cell grid. It takes effect at the next frame.
func (c *Canvas) SetViewport(vp Viewport) {
	c.mu.Lock()
	c.next = vp
	c.mu.Unlock()
}

// Viewport returns the grid currently drawn to.
func (c *Canvas) Viewport() Viewport {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.vp
}

// SetState attaches a score summary to the frame being drawn.
func (c *Canvas) SetState(st core.GameState) {
	c.state = st
}

// Close makes every later Present fail with ErrClosed.
func (c *Canvas) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

func (c *Canvas) Clear(bg core.Color) {
	c.mu.Lock()
	c.vp = c.next
	c.mu.Unlock()

	c.screen.Resize(c.vp.Cols, c.vp.Rows)
	c.screen.Fill(' ', bg, bg)
}

func (c *Canvas) DrawRect(r core.Rect, fill core.Color, mode core.DrawMode, border int) {
	cells := c.vp.CellRect(r)
	if mode == core.Filled {
		c.screen.FillRect(cells, ' ', fill, fill)
		return
	}
	if border <= 0 {
		return
	}

	// Any logical border is at least one cell thick.
	top := core.NewRect(cells.X, cells.Y, cells.W, 1)
	bottom := core.NewRect(cells.X, cells.Bottom()-1, cells.W, 1)
	left := core.NewRect(cells.X, cells.Y, 1, cells.H)
	right := core.NewRect(cells.Right()-1, cells.Y, 1, cells.H)
	for _, edge := range []core.Rect{top, bottom, left, right} {
		c.screen.FillRect(edge, ' ', fill, fill)
	}
}

func (c *Canvas) DrawImage(h core.ImageHandle, p core.Point) {
	s, ok := c.catalog.Sprite(h)
	if !ok {
		return
	}
	cells := c.vp.CellRect(core.NewRect(p.X, p.Y, c.catalog.W, c.catalog.H))
	c.screen.FillRect(cells, ' ', s.Fg, s.Bg)

	cx, cy := cells.Center()
	c.screen.Set(cx, cy, s.Glyph, s.Fg, s.Bg)
}

func (c *Canvas) DrawCircle(center core.Vec, radius float64, fill core.Color) {
	x0, y0 := c.vp.ToCell(int(math.Floor(center.X-radius)), int(math.Floor(center.Y-radius)))
	x1, y1 := c.vp.ToCell(int(math.Ceil(center.X+radius)), int(math.Ceil(center.Y+radius)))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := c.vp.ToLogical(x, y)
			if math.Hypot(float64(p.X)-center.X, float64(p.Y)-center.Y) <= radius {
				c.plot(x, y, fill)
			}
		}
	}

	// Small balls still show up in the cell holding the center.
	cx, cy := c.vp.ToCell(int(math.Floor(center.X)), int(math.Floor(center.Y)))
	c.plot(cx, cy, fill)
}

func (c *Canvas) plot(x, y int, fg core.Color) {
	bg := c.screen.GetCell(x, y).Bg
	c.screen.Set(x, y, ballGlyph, fg, bg)
}

// DrawText writes one character per cell; the terminal has a single font
// size, so size is ignored.
func (c *Canvas) DrawText(text string, _ int, fg, bg core.Color, p core.Point) {
	col, row := c.vp.ToCell(p.X, p.Y)
	c.screen.DrawText(col, row, text, fg, bg)
}

func (c *Canvas) MeasureText(text string, _ int) int {
	return c.vp.Width(utf8.RuneCountInString(text))
}

func (c *Canvas) Present() error {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return ErrClosed
	}

	c.present(Frame{Screen: c.screen.Clone(), State: c.state})
	return nil
}

// Ensure Canvas implements Surface
var _ core.Surface = (*Canvas)(nil)
