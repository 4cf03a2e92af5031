package tui

import "github.com/vovakirdan/frame-arcade/internal/core"

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2

// Viewport maps the logical surface onto a grid of terminal cells.
type Viewport struct {
	LogicalW, LogicalH int
	Cols, Rows         int
}

// Fit returns the largest viewport that fits in cols x rows cells while
// keeping the surface's proportions.
func Fit(logicalW, logicalH, cols, rows int) Viewport {
	cols = max(cols, 1)
	rows = max(rows, 1)

	w := rows * logicalW * cellAspect / logicalH
	if w <= cols {
		return Viewport{LogicalW: logicalW, LogicalH: logicalH, Cols: max(w, 1), Rows: rows}
	}
	h := cols * logicalH / (logicalW * cellAspect)
	return Viewport{LogicalW: logicalW, LogicalH: logicalH, Cols: cols, Rows: max(h, 1)}
}

// ToCell returns the cell containing logical point (x, y).
func (v Viewport) ToCell(x, y int) (col, row int) {
	return floorDiv(x*v.Cols, v.LogicalW), floorDiv(y*v.Rows, v.LogicalH)
}

// ToLogical returns the logical point at the center of a cell.
func (v Viewport) ToLogical(col, row int) core.Point {
	x := (2*col + 1) * v.LogicalW / (2 * v.Cols)
	y := (2*row + 1) * v.LogicalH / (2 * v.Rows)
	return core.Pt(x, y)
}

// Contains reports whether a cell lies on the surface.
func (v Viewport) Contains(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
}

// CellRect converts a logical rectangle to the cells it covers. A non-empty
// rectangle always covers at least one cell.
func (v Viewport) CellRect(r core.Rect) core.Rect {
	if r.W <= 0 || r.H <= 0 {
		return core.Rect{}
	}
	c0, r0 := v.ToCell(r.X, r.Y)
	c1, r1 := v.ToCell(r.Right(), r.Bottom())
	return core.NewRect(c0, r0, max(c1-c0, 1), max(r1-r0, 1))
}

// Width returns the logical width of n cells, rounded up.
func (v Viewport) Width(n int) int {
	return (n*v.LogicalW + v.Cols - 1) / v.Cols
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
