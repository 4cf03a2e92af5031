// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/frame-arcade/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("unknown game")

// Game is the interface every arcade game implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The loop controller owns the instance and drives it one frame at a time.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "memory", "pong").
	// Used for CLI commands.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game for a new session.
	// The RuntimeConfig provides surface dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// HandleEvent applies one input event. Quit never reaches the game.
	HandleEvent(ev core.Event)

	// Update advances the simulation by one tick.
	Update(now time.Time)

	// Draw issues the draw calls for the current state.
	Draw(dst core.Surface)

	// Complete reports whether the terminal condition holds.
	Complete() bool

	// State returns the current score summary.
	State() core.GameState
}

// Mode says who is at the controls.
type Mode int

const (
	Solo        Mode = iota // One player with the pointer
	LocalVersus             // Two players sharing the keyboard
)

// String returns a short label for menus.
func (m Mode) String() string {
	switch m {
	case Solo:
		return "solo"
	case LocalVersus:
		return "2 players"
	default:
		return "unknown"
	}
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
	Mode  Mode
}

// Options carries the collaborators a factory may need.
type Options struct {
	Logger *log.Logger // nil means discard
}

// Factory is a function that creates a new instance of a game.
type Factory func(opts Options) Game

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, mode Mode, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	// Get title by creating a temporary instance
	g := f(Options{})
	entries[id] = entry{
		factory: f,
		info:    GameInfo{ID: id, Title: g.Title(), Mode: mode},
	}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Info returns the metadata of a registered game.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a new game by its ID.
// Returns an error wrapping ErrUnknownGame if the ID is not registered.
func Create(id string, opts Options) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownGame, id)
	}

	return e.factory(opts), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
