// Package core provides the shared types of the frame loop: geometry, colors,
// input events and the drawing surface contract. It has no external
// dependencies (especially no Bubble Tea) so game logic stays pure and testable.
package core

// Point is an integer position in logical surface units.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Vec is a continuous 2D vector, used for ball centers and velocities.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Neg returns the vector with both components negated.
func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

// Rect is an axis-aligned rectangle in logical units.
// The right and bottom edges are exclusive.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Min returns the top-left corner.
func (r Rect) Min() Point {
	return Point{X: r.X, Y: r.Y}
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsPoint is Contains for a Point.
func (r Rect) ContainsPoint(p Point) bool {
	return r.Contains(p.X, p.Y)
}

// ContainsVec reports whether a continuous point lies inside the rectangle,
// using the same half-open edges as Contains.
func (r Rect) ContainsVec(v Vec) bool {
	return v.X >= float64(r.X) && v.X < float64(r.Right()) &&
		v.Y >= float64(r.Y) && v.Y < float64(r.Bottom())
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// ClampY moves the rectangle vertically so that it lies within [top, bottom].
// A rectangle taller than the span is pinned to top.
func (r Rect) ClampY(top, bottom int) Rect {
	if r.Bottom() > bottom {
		r.Y = bottom - r.H
	}
	if r.Y < top {
		r.Y = top
	}
	return r
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}
