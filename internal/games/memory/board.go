package memory

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/frame-arcade/internal/core"
)

// Face identifies the picture under a tile (1..core.FaceCount).
type Face int

// Handle returns the image handle that shows this face.
func (f Face) Handle() core.ImageHandle {
	return core.ImageHandle(f)
}

// Tile is one cell of the board. Its rect and face never change after the
// board is built; only the exposure flags do.
type Tile struct {
	Rect core.Rect
	Face Face

	exposed bool // Face up, either transiently or for good
	matched bool // Part of a found pair; implies exposed
}

// Exposed reports whether the tile is face up.
func (t Tile) Exposed() bool {
	return t.exposed
}

// Matched reports whether the tile belongs to a found pair.
func (t Tile) Matched() bool {
	return t.matched
}

// Handle returns the image to draw for the tile's current state.
func (t Tile) Handle() core.ImageHandle {
	if t.exposed {
		return t.Face.Handle()
	}
	return core.HiddenFace
}

// Board is a row-major arena of tiles. Everything else refers to tiles by
// index, so the board is the only owner of tile state.
type Board struct {
	cols  int
	tiles []Tile
}

// Layout describes tile geometry on the surface.
type Layout struct {
	Rows, Cols   int
	TileW, TileH int
}

// ShuffledFaces returns every face of a board with n tiles exactly twice, in
// an order drawn from rng.
func ShuffledFaces(n int, rng *rand.Rand) []Face {
	faces := make([]Face, 0, n)
	for i := 0; i < n/2; i++ {
		faces = append(faces, Face(i%core.FaceCount+1))
	}
	faces = append(faces, faces...)
	rng.Shuffle(len(faces), func(i, j int) {
		faces[i], faces[j] = faces[j], faces[i]
	})
	return faces
}

// NewBoard builds a board from faces listed in row-major order.
func NewBoard(l Layout, faces []Face) (*Board, error) {
	n := l.Rows * l.Cols
	if len(faces) != n {
		return nil, fmt.Errorf("memory: need %d faces for a %dx%d board, got %d", n, l.Rows, l.Cols, len(faces))
	}

	b := &Board{
		cols:  l.Cols,
		tiles: make([]Tile, 0, n),
	}
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Cols; col++ {
			b.tiles = append(b.tiles, Tile{
				Rect: core.NewRect(col*l.TileW, row*l.TileH, l.TileW, l.TileH),
				Face: faces[row*l.Cols+col],
			})
		}
	}
	return b, nil
}

// Len returns the number of tiles.
func (b *Board) Len() int {
	return len(b.tiles)
}

// Index converts a (row, col) position into an arena index.
func (b *Board) Index(row, col int) int {
	return row*b.cols + col
}

// Tile returns a copy of the tile at index i.
func (b *Board) Tile(i int) Tile {
	return b.tiles[i]
}

// At returns the index of the tile containing p.
func (b *Board) At(p core.Point) (int, bool) {
	for i := range b.tiles {
		if b.tiles[i].Rect.ContainsPoint(p) {
			return i, true
		}
	}
	return 0, false
}

// ExposedCount returns how many tiles are face up.
func (b *Board) ExposedCount() int {
	n := 0
	for _, t := range b.tiles {
		if t.exposed {
			n++
		}
	}
	return n
}

// MatchedCount returns how many tiles belong to found pairs.
func (b *Board) MatchedCount() int {
	n := 0
	for _, t := range b.tiles {
		if t.matched {
			n++
		}
	}
	return n
}

// FaceCounts returns how many times each face occurs on the board.
func (b *Board) FaceCounts() map[Face]int {
	counts := make(map[Face]int)
	for _, t := range b.tiles {
		counts[t.Face]++
	}
	return counts
}

func (b *Board) expose(i int) {
	b.tiles[i].exposed = true
}

func (b *Board) hide(i int) {
	if b.tiles[i].matched {
		return
	}
	b.tiles[i].exposed = false
}

func (b *Board) match(i int) {
	b.tiles[i].exposed = true
	b.tiles[i].matched = true
}
