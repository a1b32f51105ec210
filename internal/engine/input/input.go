// Package input defines window events and dispatches them to a Handler.
// Event polling lives in package window.
package input

// EventType identifies the kind of Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventFramebufferResize
	EventKey
	EventMouseMove
	EventMouseButton
	EventMouseScroll
)

// Action is the state change of a key or button.
type Action int

const (
	Release Action = iota
	Press
	Repeat
)

// Modifier is a bit set of held modifier keys.
type Modifier uint16

const (
	ModShift Modifier = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// Key is a physical key code (SDL scancode values).
type Key int

// KeyEscape is the scancode of the Escape key.
const KeyEscape Key = 41

// MouseButton identifies a mouse button (1 = left, 2 = middle, 3 = right).
type MouseButton uint8

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    Key
	Action Action
	Mods   Modifier
	Button MouseButton
	X, Y   float64 // cursor position or scroll offset
	Width  int
	Height int
}

// Handler receives dispatched events.
type Handler interface {
	OnKey(key Key, action Action, mods Modifier)
	OnMouseMove(x, y float64)
	OnMouseButton(button MouseButton, action Action, mods Modifier)
	OnMouseScroll(xoffset, yoffset float64)
	OnFramebufferResize(width, height int)
}

// Dispatch forwards events to h in order. It returns true if a quit event
// was seen; events after it are not dispatched.
func Dispatch(events []Event, h Handler) bool {
	for _, e := range events {
		switch e.Type {
		case EventQuit:
			return true
		case EventFramebufferResize:
			h.OnFramebufferResize(e.Width, e.Height)
		case EventKey:
			h.OnKey(e.Key, e.Action, e.Mods)
		case EventMouseMove:
			h.OnMouseMove(e.X, e.Y)
		case EventMouseButton:
			h.OnMouseButton(e.Button, e.Action, e.Mods)
		case EventMouseScroll:
			h.OnMouseScroll(e.X, e.Y)
		}
	}
	return false
}

// KeyPressed checks if key went down in events.
func KeyPressed(events []Event, key Key) bool {
	for _, e := range events {
		if e.Type == EventKey && e.Action == Press && e.Key == key {
			return true
		}
	}
	return false
}
