// Package assets holds the tile images drawn by the render adapter.
// Images are glyph sprites described in an embedded YAML catalog.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/frame-arcade/internal/core"
)

//go:embed data/faces.yaml
var facesYAML []byte

// ErrMissingFace is returned when the catalog lacks one of the handles the
// games draw (0 through core.FaceCount).
var ErrMissingFace = errors.New("missing face image")

// Sprite is one tile image.
type Sprite struct {
	Handle core.ImageHandle
	Glyph  rune
	Fg     core.Color
	Bg     core.Color
	Label  string
}

// Catalog maps image handles to sprites. Every sprite has the same size.
type Catalog struct {
	W, H    int
	sprites map[core.ImageHandle]Sprite
}

// Sprite returns the sprite for h.
func (c *Catalog) Sprite(h core.ImageHandle) (Sprite, bool) {
	s, ok := c.sprites[h]
	return s, ok
}

// Len returns the number of sprites.
func (c *Catalog) Len() int {
	return len(c.sprites)
}

// Handles returns all handles in ascending order.
func (c *Catalog) Handles() []core.ImageHandle {
	hs := make([]core.ImageHandle, 0, len(c.sprites))
	for h := range c.sprites {
		hs = append(hs, h)
	}
	sort.Slice(hs, func(i, j int) bool { return hs[i] < hs[j] })
	return hs
}

// yamlCatalog is the file layout of faces.yaml.
type yamlCatalog struct {
	Size  yamlSize   `yaml:"size"`
	Faces []yamlFace `yaml:"faces"`
}

type yamlSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

type yamlFace struct {
	Handle int    `yaml:"handle"`
	Glyph  string `yaml:"glyph"`
	Fg     string `yaml:"fg"`
	Bg     string `yaml:"bg"`
	Label  string `yaml:"label"`
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(facesYAML)
}

// Parse builds a catalog from YAML data and checks that every handle the
// games use is present.
func Parse(data []byte) (*Catalog, error) {
	var yc yamlCatalog
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, fmt.Errorf("assets: yaml unmarshal: %w", err)
	}
	if yc.Size.W <= 0 || yc.Size.H <= 0 {
		return nil, fmt.Errorf("assets: invalid sprite size %dx%d", yc.Size.W, yc.Size.H)
	}

	c := &Catalog{
		W:       yc.Size.W,
		H:       yc.Size.H,
		sprites: make(map[core.ImageHandle]Sprite, len(yc.Faces)),
	}
	for _, f := range yc.Faces {
		s, err := f.sprite()
		if err != nil {
			return nil, err
		}
		if _, dup := c.sprites[s.Handle]; dup {
			return nil, fmt.Errorf("assets: duplicate handle %d", s.Handle)
		}
		c.sprites[s.Handle] = s
	}

	for h := core.HiddenFace; h <= core.FaceCount; h++ {
		if _, ok := c.sprites[h]; !ok {
			return nil, fmt.Errorf("assets: %w: handle %d", ErrMissingFace, h)
		}
	}
	return c, nil
}

func (f yamlFace) sprite() (Sprite, error) {
	if utf8.RuneCountInString(f.Glyph) != 1 {
		return Sprite{}, fmt.Errorf("assets: handle %d: glyph %q must be a single character", f.Handle, f.Glyph)
	}
	glyph, _ := utf8.DecodeRuneInString(f.Glyph)

	fg, ok := core.ParseColor(f.Fg)
	if !ok {
		return Sprite{}, fmt.Errorf("assets: handle %d: unknown color %q", f.Handle, f.Fg)
	}
	bg, ok := core.ParseColor(f.Bg)
	if !ok {
		return Sprite{}, fmt.Errorf("assets: handle %d: unknown color %q", f.Handle, f.Bg)
	}

	return Sprite{
		Handle: core.ImageHandle(f.Handle),
		Glyph:  glyph,
		Fg:     fg,
		Bg:     bg,
		Label:  f.Label,
	}, nil
}
