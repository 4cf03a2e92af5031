package pong

import (
	"testing"
	"time"

	"github.com/vovakirdan/frame-arcade/internal/core"
)

func newGame(seed int64) *Game {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g := New(nil)
	g.Reset(cfg)
	return g
}

// place puts the ball at (x, y) with velocity (vx, vy).
func (g *Game) place(x, y, vx, vy float64) {
	g.ball.Center = core.Vec{X: x, Y: y}
	g.ball.Velocity = core.Vec{X: vx, Y: vy}
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(12345)
	g2 := newGame(12345)

	events := map[int]core.Event{
		10: core.KeyDown(core.KeyQ),
		25: core.KeyUp(core.KeyQ),
		40: core.KeyDown(core.KeyL),
		90: core.KeyUp(core.KeyL),
	}
	for i := 0; i < 300; i++ {
		if ev, ok := events[i]; ok {
			g1.HandleEvent(ev)
			g2.HandleEvent(ev)
		}
		g1.Advance()
		g2.Advance()
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestResetPlacement(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		g := newGame(seed)
		s := g.Snapshot()

		if s.BallX < 125 || s.BallX > 375 {
			t.Errorf("seed %d: ball x = %v, want within [125, 375]", seed, s.BallX)
		}
		if s.BallY < 5 || s.BallY > 395 {
			t.Errorf("seed %d: ball y = %v, want within [5, 395]", seed, s.BallY)
		}
		if s.BallVX != 4 || s.BallVY != 1 {
			t.Errorf("seed %d: velocity = (%v, %v), want (4, 1)", seed, s.BallVX, s.BallVY)
		}
		if s.LeftTop != 200 || s.RightTop != 200 {
			t.Errorf("seed %d: paddle tops = %d, %d, want 200", seed, s.LeftTop, s.RightTop)
		}
	}
}

func TestFreeFlightMatchesClosedForm(t *testing.T) {
	g := newGame(1)
	// Move the right paddle out of the ball's path.
	g.right.Rect.Y = 0
	g.place(250, 200, 4, 1)

	for i := 0; i < 50; i++ {
		g.Advance()
	}

	s := g.Snapshot()
	if s.BallX != 450 || s.BallY != 250 {
		t.Errorf("ball at (%v, %v), want (450, 250)", s.BallX, s.BallY)
	}
	if s.BallVX != 4 || s.BallVY != 1 {
		t.Errorf("velocity changed to (%v, %v)", s.BallVX, s.BallVY)
	}
}

func TestPaddleClamping(t *testing.T) {
	tests := []struct {
		name    string
		top     int
		dir     Direction
		ticks   int
		wantTop int
	}{
		{"held at top bound", 0, Up, 1, 0},
		{"runs into top bound", 20, Up, 5, 0},
		{"runs into bottom bound", 200, Down, 100, 350},
		{"stopped", 100, Stop, 10, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame(1)
			g.place(250, 100, 0, 0)
			g.left.Rect.Y = tc.top
			g.SetPaddleVelocity(Left, tc.dir)

			for i := 0; i < tc.ticks; i++ {
				g.Advance()
			}
			if g.left.Rect.Y != tc.wantTop {
				t.Errorf("top = %d, want %d", g.left.Rect.Y, tc.wantTop)
			}
		})
	}
}

func TestKeyMapping(t *testing.T) {
	tests := []struct {
		name      string
		events    []core.Event
		wantLeft  int
		wantRight int
	}{
		{"q moves left up", []core.Event{core.KeyDown(core.KeyQ)}, -15, 0},
		{"a moves left down", []core.Event{core.KeyDown(core.KeyA)}, 15, 0},
		{"p moves right up", []core.Event{core.KeyDown(core.KeyP)}, 0, -15},
		{"l moves right down", []core.Event{core.KeyDown(core.KeyL)}, 0, 15},
		{"last key wins", []core.Event{core.KeyDown(core.KeyQ), core.KeyDown(core.KeyA)}, 15, 0},
		{"release of the other key stops", []core.Event{core.KeyDown(core.KeyQ), core.KeyUp(core.KeyA)}, 0, 0},
		{"release on one side keeps the other", []core.Event{core.KeyDown(core.KeyQ), core.KeyDown(core.KeyP), core.KeyUp(core.KeyL)}, -15, 0},
		{"unknown key ignored", []core.Event{core.KeyDown(core.KeyQ), core.KeyDown(core.KeyUnknown), core.KeyUp(core.KeyUnknown)}, -15, 0},
		{"pointer ignored", []core.Event{core.PointerUp(130, 210)}, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame(1)
			for _, ev := range tc.events {
				g.HandleEvent(ev)
			}
			if g.left.VY != tc.wantLeft || g.right.VY != tc.wantRight {
				t.Errorf("velocities = (%d, %d), want (%d, %d)", g.left.VY, g.right.VY, tc.wantLeft, tc.wantRight)
			}
		})
	}
}

func TestWallReflectsOncePerCrossing(t *testing.T) {
	g := newGame(1)
	g.place(250, 398, 4, 1)

	g.Advance()
	if g.ball.Velocity.Y != -1 {
		t.Fatalf("vy = %v after hitting the bottom, want -1", g.ball.Velocity.Y)
	}

	// Still overlapping the bound but heading back in.
	g.Advance()
	if g.ball.Center.Y+g.ball.Radius <= 400 {
		t.Fatalf("test setup: ball should still overlap the bottom bound, y = %v", g.ball.Center.Y)
	}
	if g.ball.Velocity.Y != -1 {
		t.Errorf("vy = %v, ball reflected twice for one crossing", g.ball.Velocity.Y)
	}
}

func TestPaddleBounceIsDirectionGated(t *testing.T) {
	tests := []struct {
		name   string
		x, vx  float64
		wantVX float64
	}{
		{"right paddle, approaching", 380, 4, -4},
		{"left paddle, approaching", 130, -4, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame(1)
			g.place(tc.x, 220, tc.vx, 1)

			g.Advance()
			if g.ball.Velocity.X != tc.wantVX || g.ball.Velocity.Y != -1 {
				t.Fatalf("velocity = %+v, want (%v, -1)", g.ball.Velocity, tc.wantVX)
			}

			// Overlapping again on the next tick, but now receding.
			g.Advance()
			if !g.left.Hit(&g.ball) && !g.right.Hit(&g.ball) {
				t.Fatalf("test setup: ball should still overlap the paddle at %+v", g.ball.Center)
			}
			if g.ball.Velocity.X != tc.wantVX {
				t.Errorf("receding ball re-reflected: vx = %v", g.ball.Velocity.X)
			}
		})
	}
}

func TestScoreOncePerCrossing(t *testing.T) {
	g := newGame(1)
	// Parked past the right bound with no velocity.
	g.place(497, 100, 0, 0)

	for i := 0; i < 10; i++ {
		g.Advance()
	}
	if l, r := g.Scores(); l != 1 || r != 0 {
		t.Errorf("scores = (%d, %d), want (1, 0)", l, r)
	}
}

func TestScoreLeftEdge(t *testing.T) {
	g := newGame(1)
	g.place(10, 100, -4, 0)

	for i := 0; i < 3; i++ {
		g.Advance()
	}
	if l, r := g.Scores(); l != 0 || r != 1 {
		t.Errorf("scores = (%d, %d), want (0, 1)", l, r)
	}
}

func TestWinAfterElevenCrossings(t *testing.T) {
	g := newGame(1)

	for i := 1; i <= 11; i++ {
		if g.Complete() {
			t.Fatalf("complete after %d points", i-1)
		}
		// 490 -> 494 -> 498 (scores, reflects) -> 494
		g.place(490, 100, 4, 0)
		for j := 0; j < 3; j++ {
			g.Advance()
		}
		if l, _ := g.Scores(); l != i {
			t.Fatalf("after crossing %d: left score = %d", i, l)
		}
	}

	if !g.Complete() {
		t.Fatal("game should be complete at 11")
	}
	if !g.State().GameOver {
		t.Error("State().GameOver should be true")
	}

	g.place(490, 100, 4, 0)
	for j := 0; j < 3; j++ {
		g.Update(time.Now())
	}
	if l, r := g.Scores(); l != 11 || r != 0 {
		t.Errorf("scores moved after completion: (%d, %d)", l, r)
	}
}

func TestDrawOrder(t *testing.T) {
	g := newGame(1)
	rec := core.NewRecorder()
	g.Draw(rec)

	want := []string{"clear", "text", "text", "rect", "rect", "circle"}
	ops := rec.Pending
	if len(ops) != len(want) {
		t.Fatalf("got %d ops %v, want %v", len(ops), ops, want)
	}
	for i, name := range want {
		if ops[i].Name != name {
			t.Errorf("op %d = %s, want %s", i, ops[i].Name, name)
		}
	}

	if ops[1].Point != core.Pt(0, 0) {
		t.Errorf("left score at %v, want (0,0)", ops[1].Point)
	}
	if ops[2].Point != core.Pt(490, 0) {
		t.Errorf("right score at %v, want (490,0)", ops[2].Point)
	}
	if ops[3].Rect != g.left.Rect || ops[4].Rect != g.right.Rect {
		t.Errorf("paddles drawn out of order: %v %v", ops[3], ops[4])
	}
	if ops[5].Radius != 5 || ops[5].Color != core.ColorWhite {
		t.Errorf("ball op = %v", ops[5])
	}
}
