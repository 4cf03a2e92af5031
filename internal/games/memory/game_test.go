package memory

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/frame-arcade/internal/core"
)

// knownFaces puts face 1 at (0,0) and (1,0), face 2 at (0,1) and (1,1), and so on.
var knownFaces = []Face{
	1, 2, 3, 4,
	1, 2, 3, 4,
	5, 6, 7, 8,
	5, 6, 7, 8,
}

var t0 = time.Unix(1_700_000_000, 0)

func newKnownGame(t *testing.T) *Game {
	t.Helper()
	g := New(nil)
	if err := g.ResetWithFaces(core.DefaultConfig(), knownFaces); err != nil {
		t.Fatalf("ResetWithFaces: %v", err)
	}
	g.Update(t0)
	return g
}

// tileCenter returns the logical center of tile (row, col) on a 500x400 surface.
func tileCenter(row, col int) core.Point {
	return core.Pt(col*100+50, row*100+50)
}

func TestShuffleEachFaceTwice(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		faces := ShuffledFaces(16, rand.New(rand.NewSource(seed)))
		counts := make(map[Face]int)
		for _, f := range faces {
			counts[f]++
		}
		if len(counts) != core.FaceCount {
			t.Fatalf("seed %d: %d distinct faces, want %d", seed, len(counts), core.FaceCount)
		}
		for f, n := range counts {
			if n != 2 {
				t.Errorf("seed %d: face %d appears %d times", seed, f, n)
			}
		}
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 12345

	g1 := New(nil)
	g1.Reset(cfg)
	g2 := New(nil)
	g2.Reset(cfg)

	for i := 0; i < g1.Board().Len(); i++ {
		if g1.Board().Tile(i).Face != g2.Board().Tile(i).Face {
			t.Fatalf("tile %d differs between games with the same seed", i)
		}
	}
	for f, n := range g1.Board().FaceCounts() {
		if n != 2 {
			t.Errorf("face %d appears %d times", f, n)
		}
	}
}

func TestTileLayout(t *testing.T) {
	g := newKnownGame(t)
	b := g.Board()

	if b.Len() != 16 {
		t.Fatalf("board has %d tiles, want 16", b.Len())
	}
	last := b.Tile(b.Index(3, 3)).Rect
	if last != core.NewRect(300, 300, 100, 100) {
		t.Errorf("tile (3,3) rect = %+v", last)
	}
	for i := 0; i < b.Len(); i++ {
		if b.Tile(i).Exposed() {
			t.Errorf("tile %d starts exposed", i)
		}
	}
}

func TestMismatchRevertsAfterPause(t *testing.T) {
	g := newKnownGame(t)
	b := g.Board()

	g.HandleEvent(core.PointerUp(tileCenter(0, 0).X, tileCenter(0, 0).Y))
	g.HandleEvent(core.PointerUp(tileCenter(0, 1).X, tileCenter(0, 1).Y))

	now := t0.Add(16 * time.Millisecond)
	g.Update(now)
	if !g.Resolving() {
		t.Fatal("mismatch should start the reveal pause")
	}
	if !b.Tile(0).Exposed() || !b.Tile(1).Exposed() {
		t.Fatal("mismatched pair should stay visible during the pause")
	}

	// Input during the pause is dropped.
	if g.Select(tileCenter(2, 2)) {
		t.Error("selection accepted while resolving")
	}

	g.Update(now.Add(999 * time.Millisecond))
	if !b.Tile(0).Exposed() {
		t.Fatal("pair hidden before the pause elapsed")
	}

	g.Update(now.Add(time.Second))
	if b.Tile(0).Exposed() || b.Tile(1).Exposed() {
		t.Error("mismatched pair should be hidden after the pause")
	}
	if len(g.Selection()) != 0 {
		t.Errorf("selection = %v, want empty", g.Selection())
	}
	if g.Resolving() {
		t.Error("still resolving after revert")
	}

	// Both tiles can be picked again.
	if !g.Select(tileCenter(0, 0)) || !g.Select(tileCenter(0, 1)) {
		t.Fatal("reverted tiles should be selectable again")
	}
	if got := g.Selection(); len(got) != 2 {
		t.Fatalf("selection = %v, want 2 tiles", got)
	}
	g.Update(now.Add(time.Second + 16*time.Millisecond))
	if !g.Resolving() {
		t.Error("second mismatch should start a new pause")
	}
}

func TestMatchIsPermanent(t *testing.T) {
	g := newKnownGame(t)
	b := g.Board()

	g.Select(tileCenter(0, 0))
	g.Select(tileCenter(1, 0))
	g.Update(t0)

	a, c := b.Index(0, 0), b.Index(1, 0)
	if !b.Tile(a).Matched() || !b.Tile(c).Matched() {
		t.Fatal("pair should be matched")
	}
	if len(g.Selection()) != 0 {
		t.Errorf("selection = %v, want empty", g.Selection())
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, a match must not change the score", g.Score())
	}

	// Much later the pair is still up and cannot be reselected.
	g.Update(t0.Add(10 * time.Second))
	if !b.Tile(a).Exposed() || !b.Tile(c).Exposed() {
		t.Error("matched tiles were hidden")
	}
	if g.Select(tileCenter(0, 0)) {
		t.Error("matched tile accepted as a selection")
	}
}

func TestSelectionNeverExceedsTwo(t *testing.T) {
	g := newKnownGame(t)

	tests := []struct {
		name string
		at   core.Point
		want bool
	}{
		{"first", tileCenter(0, 0), true},
		{"same tile again", tileCenter(0, 0), false},
		{"second", tileCenter(0, 1), true},
		{"third in the same batch", tileCenter(0, 2), false},
	}
	for _, tc := range tests {
		if got := g.Select(tc.at); got != tc.want {
			t.Errorf("%s: Select = %v, want %v", tc.name, got, tc.want)
		}
	}

	if got := g.Board().ExposedCount(); got != 2 {
		t.Errorf("exposed = %d, want 2", got)
	}
	if got := len(g.Selection()); got != 2 {
		t.Errorf("selection length = %d, want 2", got)
	}
}

func TestSelectOutsideBoard(t *testing.T) {
	g := newKnownGame(t)

	for _, p := range []core.Point{core.Pt(450, 50), core.Pt(-1, 10), core.Pt(10, 400)} {
		if g.Select(p) {
			t.Errorf("Select(%v) exposed a tile", p)
		}
	}
}

func TestCompleteExactlyAtLastPair(t *testing.T) {
	g := newKnownGame(t)
	b := g.Board()

	for row := 0; row < 4; row += 2 {
		for col := 0; col < 4; col++ {
			if g.Complete() {
				t.Fatalf("complete with %d tiles matched", b.MatchedCount())
			}
			g.Select(tileCenter(row, col))
			g.Select(tileCenter(row+1, col))
			g.Update(t0)
		}
	}

	if !g.Complete() {
		t.Fatal("all pairs found but game not complete")
	}
	if b.ExposedCount() != 16 {
		t.Errorf("exposed = %d, want 16", b.ExposedCount())
	}
	if !g.State().GameOver {
		t.Error("State().GameOver should be true")
	}
}

func TestScoreCountsWholeSeconds(t *testing.T) {
	g := newKnownGame(t)

	tests := []struct {
		after time.Duration
		want  int
	}{
		{0, 0},
		{999 * time.Millisecond, 0},
		{time.Second, 1},
		{2500 * time.Millisecond, 2},
		{61 * time.Second, 61},
	}
	for _, tc := range tests {
		g.Update(t0.Add(tc.after))
		if g.Score() != tc.want {
			t.Errorf("after %v: score = %d, want %d", tc.after, g.Score(), tc.want)
		}
	}
}

func TestDrawOrder(t *testing.T) {
	g := newKnownGame(t)
	g.Select(tileCenter(0, 0))

	rec := core.NewRecorder()
	g.Draw(rec)
	ops := rec.Pending

	if want := 2 + 2*16; len(ops) != want {
		t.Fatalf("got %d ops, want %d", len(ops), want)
	}
	if ops[0].Name != "clear" || ops[0].Color != core.ColorBlack {
		t.Errorf("op 0 = %v, want clear(black)", ops[0])
	}

	// "0" is one glyph wide, right-aligned against the surface edge.
	score := ops[1]
	if score.Name != "text" || score.Text != "0" || score.Point != core.Pt(490, 0) || score.Size != 72 {
		t.Errorf("op 1 = %v size %d, want score text at (490,0) size 72", score, score.Size)
	}

	for i := 0; i < 16; i++ {
		img, outline := ops[2+2*i], ops[3+2*i]
		tile := g.Board().Tile(i)
		if img.Name != "image" || img.Point != tile.Rect.Min() {
			t.Errorf("tile %d: image op = %v", i, img)
		}
		if outline.Name != "rect" || outline.Rect != tile.Rect || outline.Mode != core.Outlined || outline.Size != 3 {
			t.Errorf("tile %d: outline op = %v", i, outline)
		}
	}

	if ops[2].Image != 1 {
		t.Errorf("exposed tile drew image %d, want face 1", ops[2].Image)
	}
	if ops[4].Image != core.HiddenFace {
		t.Errorf("hidden tile drew image %d, want hidden face", ops[4].Image)
	}
}

func TestNewBoardRejectsWrongFaceCount(t *testing.T) {
	_, err := NewBoard(Layout{Rows: 4, Cols: 4, TileW: 100, TileH: 100}, knownFaces[:15])
	if err == nil {
		t.Fatal("expected error for 15 faces on a 16-tile board")
	}
}
