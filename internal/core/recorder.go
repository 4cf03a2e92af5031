package core

import "fmt"

// Op is one recorded draw call.
type Op struct {
	Name   string // "clear", "rect", "image", "circle", "text"
	Rect   Rect
	Point  Point
	Center Vec
	Radius float64
	Image  ImageHandle
	Text   string
	Size   int
	Color  Color
	Mode   DrawMode
}

// String renders the op compactly, for test diffs.
func (o Op) String() string {
	switch o.Name {
	case "clear":
		return fmt.Sprintf("clear(%s)", o.Color)
	case "rect":
		return fmt.Sprintf("rect(%d,%d,%d,%d %s)", o.Rect.X, o.Rect.Y, o.Rect.W, o.Rect.H, o.Color)
	case "image":
		return fmt.Sprintf("image(%d @%d,%d)", o.Image, o.Point.X, o.Point.Y)
	case "circle":
		return fmt.Sprintf("circle(%.1f,%.1f r%.0f)", o.Center.X, o.Center.Y, o.Radius)
	case "text":
		return fmt.Sprintf("text(%q @%d,%d)", o.Text, o.Point.X, o.Point.Y)
	default:
		return o.Name
	}
}

// Recorder is a Surface that records draw calls instead of drawing.
// Frames holds one slice of ops per Present call; Pending holds the ops of
// the frame being built.
type Recorder struct {
	Frames  [][]Op
	Pending []Op

	// GlyphWidth is the logical width of one character for MeasureText.
	GlyphWidth int

	// PresentErr, when set, is returned from Present.
	PresentErr error
}

// NewRecorder creates a recorder measuring text at 10 units per glyph.
func NewRecorder() *Recorder {
	return &Recorder{GlyphWidth: 10}
}

func (r *Recorder) Clear(bg Color) {
	r.Pending = append(r.Pending, Op{Name: "clear", Color: bg})
}

func (r *Recorder) DrawRect(rect Rect, c Color, mode DrawMode, border int) {
	r.Pending = append(r.Pending, Op{Name: "rect", Rect: rect, Color: c, Mode: mode, Size: border})
}

func (r *Recorder) DrawImage(h ImageHandle, p Point) {
	r.Pending = append(r.Pending, Op{Name: "image", Image: h, Point: p})
}

func (r *Recorder) DrawCircle(center Vec, radius float64, c Color) {
	r.Pending = append(r.Pending, Op{Name: "circle", Center: center, Radius: radius, Color: c})
}

func (r *Recorder) DrawText(text string, size int, fg, _ Color, p Point) {
	r.Pending = append(r.Pending, Op{Name: "text", Text: text, Size: size, Color: fg, Point: p})
}

func (r *Recorder) MeasureText(text string, _ int) int {
	return len(text) * r.GlyphWidth
}

func (r *Recorder) Present() error {
	if r.PresentErr != nil {
		return r.PresentErr
	}
	r.Frames = append(r.Frames, r.Pending)
	r.Pending = nil
	return nil
}

// Last returns the ops of the most recently presented frame.
func (r *Recorder) Last() []Op {
	if len(r.Frames) == 0 {
		return nil
	}
	return r.Frames[len(r.Frames)-1]
}

// Ensure Recorder implements Surface
var _ Surface = (*Recorder)(nil)
