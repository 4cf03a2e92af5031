package core

import "fmt"

// EventKind identifies the type of an input event.
type EventKind int

const (
	EventQuit      EventKind = iota // Window close requested
	EventPointerUp                  // Pointer button released at Pos
	EventKeyDown                    // Key pressed
	EventKeyUp                      // Key released
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "Quit"
	case EventPointerUp:
		return "PointerUp"
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	default:
		return "Unknown"
	}
}

// KeyCode is a platform-neutral key identifier. The input adapter maps
// physical keys onto these; anything it cannot map becomes KeyUnknown.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyQ
	KeyA
	KeyP
	KeyL
)

// String returns the key's letter.
func (k KeyCode) String() string {
	switch k {
	case KeyQ:
		return "q"
	case KeyA:
		return "a"
	case KeyP:
		return "p"
	case KeyL:
		return "l"
	default:
		return "?"
	}
}

// Event is a discrete, already debounced input event.
// Pos is set for PointerUp, Key for KeyDown/KeyUp.
type Event struct {
	Kind EventKind
	Pos  Point
	Key  KeyCode
}

// Quit returns a close-request event.
func Quit() Event {
	return Event{Kind: EventQuit}
}

// PointerUp returns a pointer release at the given logical position.
func PointerUp(x, y int) Event {
	return Event{Kind: EventPointerUp, Pos: Pt(x, y)}
}

// KeyDown returns a key press event.
func KeyDown(k KeyCode) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// KeyUp returns a key release event.
func KeyUp(k KeyCode) Event {
	return Event{Kind: EventKeyUp, Key: k}
}

func (e Event) String() string {
	switch e.Kind {
	case EventPointerUp:
		return fmt.Sprintf("PointerUp(%d,%d)", e.Pos.X, e.Pos.Y)
	case EventKeyDown, EventKeyUp:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Key)
	default:
		return e.Kind.String()
	}
}
