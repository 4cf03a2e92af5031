package tui

import (
	"errors"
	"testing"

	"github.com/vovakirdan/frame-arcade/internal/assets"
	"github.com/vovakirdan/frame-arcade/internal/core"
)

func newTestCanvas(t *testing.T) (*Canvas, *[]Frame) {
	t.Helper()
	catalog, err := assets.Load()
	if err != nil {
		t.Fatalf("assets.Load() error: %v", err)
	}
	frames := &[]Frame{}
	vp := Viewport{LogicalW: 500, LogicalH: 400, Cols: 55, Rows: 22}
	c := NewCanvas(vp, catalog, func(f Frame) {
		*frames = append(*frames, f)
	})
	return c, frames
}

func TestCanvasTile(t *testing.T) {
	c, frames := newTestCanvas(t)

	c.Clear(core.ColorBlack)
	c.DrawImage(1, core.Pt(0, 0))
	c.DrawRect(core.NewRect(0, 0, 100, 100), core.ColorBlack, core.Outlined, 3)
	if err := c.Present(); err != nil {
		t.Fatalf("Present() error: %v", err)
	}

	if len(*frames) != 1 {
		t.Fatalf("presented %d frames, want 1", len(*frames))
	}
	s := (*frames)[0].Screen

	// Tile covers cells 0..10 x 0..4; its outline is the outer ring.
	if got := s.GetCell(5, 2); got.Rune != '♥' || got.Color != core.ColorRed || got.Bg != core.ColorWhite {
		t.Errorf("tile center = %+v, want red heart on white", got)
	}
	if got := s.GetCell(3, 1); got.Bg != core.ColorWhite {
		t.Errorf("tile interior bg = %v, want white", got.Bg)
	}
	for _, p := range []core.Point{{X: 0, Y: 0}, {X: 10, Y: 2}, {X: 5, Y: 4}} {
		if got := s.GetCell(p.X, p.Y); got.Bg != core.ColorBlack {
			t.Errorf("outline cell %v bg = %v, want black", p, got.Bg)
		}
	}
}

func TestCanvasHiddenTile(t *testing.T) {
	c, frames := newTestCanvas(t)

	c.Clear(core.ColorBlack)
	c.DrawImage(core.HiddenFace, core.Pt(100, 100))
	c.Present()

	s := (*frames)[0].Screen
	// Tile (1,1) spans cells 11..21 x 5..10.
	if got := s.GetCell(16, 8); got.Rune != '?' || got.Bg != core.ColorGray {
		t.Errorf("hidden tile center = %+v", got)
	}
}

func TestCanvasShapesAndText(t *testing.T) {
	c, frames := newTestCanvas(t)

	c.Clear(core.ColorBlack)
	c.DrawRect(core.NewRect(125, 200, 10, 50), core.ColorWhite, core.Filled, 0)
	c.DrawCircle(core.Vec{X: 250, Y: 200}, 5, core.ColorWhite)
	c.DrawText("12", 72, core.ColorWhite, core.ColorBlack, core.Pt(0, 0))
	c.Present()

	s := (*frames)[0].Screen
	if got := s.GetCell(13, 11); got.Bg != core.ColorWhite {
		t.Errorf("paddle cell bg = %v, want white", got.Bg)
	}
	if got := s.GetCell(27, 11); got.Rune != ballGlyph || got.Color != core.ColorWhite || got.Bg != core.ColorBlack {
		t.Errorf("ball cell = %+v", got)
	}
	if s.Row(0)[:2] != "12" {
		t.Errorf("row 0 starts %q, want score text", s.Row(0)[:2])
	}
}

func TestCanvasMeasureMatchesCells(t *testing.T) {
	c, frames := newTestCanvas(t)

	text := "42"
	x := 500 - c.MeasureText(text, 72)
	c.Clear(core.ColorBlack)
	c.DrawText(text, 72, core.ColorWhite, core.ColorBlack, core.Pt(x, 0))
	c.Present()

	row := []rune((*frames)[0].Screen.Row(0))
	// Right-aligned text ends on or just before the last column.
	end := string(row[len(row)-3:])
	if end != "42 " && end[1:] != "42" {
		t.Errorf("row 0 ends %q, want right-aligned score", end)
	}
}

func TestCanvasViewportAppliesOnClear(t *testing.T) {
	c, frames := newTestCanvas(t)

	c.SetViewport(Viewport{LogicalW: 500, LogicalH: 400, Cols: 25, Rows: 10})
	if c.Viewport().Cols != 55 {
		t.Fatal("viewport changed mid-frame")
	}

	c.Clear(core.ColorBlack)
	c.Present()
	if c.Viewport().Cols != 25 {
		t.Errorf("viewport cols = %d after Clear, want 25", c.Viewport().Cols)
	}
	s := (*frames)[0].Screen
	if s.Width() != 25 || s.Height() != 10 {
		t.Errorf("frame is %dx%d, want 25x10", s.Width(), s.Height())
	}
}

func TestCanvasFramesAreCopies(t *testing.T) {
	c, frames := newTestCanvas(t)

	c.SetState(core.GameState{Score: 3})
	c.Clear(core.ColorBlack)
	c.Present()
	c.Clear(core.ColorWhite)
	c.Present()

	first := (*frames)[0]
	if first.Screen.GetCell(0, 0).Bg != core.ColorBlack {
		t.Error("first frame changed after the canvas was redrawn")
	}
	if first.State.Score != 3 {
		t.Errorf("frame state = %+v, want score 3", first.State)
	}
}

func TestCanvasClosed(t *testing.T) {
	c, frames := newTestCanvas(t)
	c.Close()

	c.Clear(core.ColorBlack)
	if err := c.Present(); !errors.Is(err, ErrClosed) {
		t.Errorf("Present() = %v, want ErrClosed", err)
	}
	if len(*frames) != 0 {
		t.Error("closed canvas presented a frame")
	}
}
