package core

// ImageHandle selects an image owned by the render adapter.
// 0 is the hidden tile face, 1-8 are the revealed faces.
type ImageHandle int

// HiddenFace is the image drawn for a tile that is face down.
const HiddenFace ImageHandle = 0

// FaceCount is the number of distinct revealed faces.
const FaceCount = 8

// DrawMode selects between filled and outlined rectangles.
type DrawMode int

const (
	Filled DrawMode = iota
	Outlined
)

// Surface is the render adapter contract. All coordinates are logical
// surface units. Calls between Clear and Present build one frame; Present
// shows it atomically.
type Surface interface {
	// Clear fills the whole surface with the background color.
	Clear(bg Color)

	// DrawRect draws a rectangle. For Outlined, border is the line width.
	DrawRect(r Rect, c Color, mode DrawMode, border int)

	// DrawImage draws the image for handle with its top-left corner at p.
	DrawImage(h ImageHandle, p Point)

	// DrawCircle draws a filled circle.
	DrawCircle(center Vec, radius float64, c Color)

	// DrawText draws text with its top-left corner at p.
	DrawText(text string, size int, fg, bg Color, p Point)

	// MeasureText returns the logical width text would occupy at size.
	MeasureText(text string, size int) int

	// Present makes the frame visible.
	Present() error
}
