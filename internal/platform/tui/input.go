package tui

import (
	"sync"
	"time"

	"github.com/vovakirdan/frame-arcade/internal/core"
)

// DefaultKeyRelease is how long a key must go without a press or repeat
// before it counts as released. It has to outlast the terminal's initial
// auto-repeat delay.
const DefaultKeyRelease = 550 * time.Millisecond

// Input queues events from the Bubble Tea program for the loop to poll.
//
// Terminals report presses and auto-repeats but no releases, so Input
// remembers held keys and emits KeyUp once a key has been quiet for the
// release timeout. Keys in the same group share one motion: pressing one
// forgets the others so a stale timeout cannot stop the new motion.
type Input struct {
	mu      sync.Mutex
	queue   []core.Event
	held    map[core.KeyCode]time.Time
	group   map[core.KeyCode]int
	release time.Duration
}

// NewInput creates an input queue. Each group lists keys that drive the
// same thing, such as the two keys of one paddle.
func NewInput(release time.Duration, groups ...[]core.KeyCode) *Input {
	in := &Input{
		held:    make(map[core.KeyCode]time.Time),
		group:   make(map[core.KeyCode]int),
		release: release,
	}
	for i, g := range groups {
		for _, k := range g {
			in.group[k] = i + 1
		}
	}
	return in
}

// Push queues an event as is.
func (in *Input) Push(ev core.Event) {
	in.mu.Lock()
	in.queue = append(in.queue, ev)
	in.mu.Unlock()
}

// Press records a key press or auto-repeat at time at. Only the first press
// of a held key produces a KeyDown.
func (in *Input) Press(k core.KeyCode, at time.Time) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if _, down := in.held[k]; !down {
		if g := in.group[k]; g != 0 {
			for other := range in.held {
				if other != k && in.group[other] == g {
					delete(in.held, other)
				}
			}
		}
		in.queue = append(in.queue, core.KeyDown(k))
	}
	in.held[k] = at
}

// Poll returns everything queued since the last call, followed by a KeyUp
// for each key whose release timeout has passed at now.
func (in *Input) Poll(now time.Time) []core.Event {
	in.mu.Lock()
	defer in.mu.Unlock()

	for k, last := range in.held {
		if now.Sub(last) >= in.release {
			delete(in.held, k)
			in.queue = append(in.queue, core.KeyUp(k))
		}
	}

	batch := in.queue
	in.queue = nil
	return batch
}

// Held reports whether k is currently considered down.
func (in *Input) Held(k core.KeyCode) bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	_, ok := in.held[k]
	return ok
}
