package trui

// Event is the base interface for everything the input goroutine delivers
// to the render loop. Use a type switch to handle specific event types.
type Event interface {
	// isEvent is a marker method to prevent external implementations.
	isEvent()
}

// KeyEvent represents a keyboard input event.
type KeyEvent struct {
	// Key is the key pressed. For printable characters, this is KeyRune.
	Key Key
	// Rune is the character for KeyRune events. Zero for special keys.
	Rune rune
	// Mod contains modifier flags (Ctrl, Alt, Shift).
	Mod Modifier
}

func (KeyEvent) isEvent() {}

// Is checks if the event matches a specific key with optional modifiers.
// Example: event.Is(KeyEnter) or event.Is(KeyRune, ModCtrl)
func (e KeyEvent) Is(key Key, mods ...Modifier) bool {
	if e.Key != key {
		return false
	}
	if len(mods) == 0 {
		return true
	}
	var combined Modifier
	for _, m := range mods {
		combined |= m
	}
	return e.Mod == combined
}

// Char returns the rune if this is a KeyRune event, or 0 otherwise.
func (e KeyEvent) Char() rune {
	if e.Key == KeyRune {
		return e.Rune
	}
	return 0
}

// MouseButton represents which mouse button was involved in an event.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
	// MouseNone is reported for motion without a held button.
	MouseNone
)

// MouseAction represents the type of mouse action.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	// MouseDrag is motion while a button is held.
	MouseDrag
	// MouseMotion is motion with no button held. Reported only when
	// any-motion tracking is enabled.
	MouseMotion
)

// MouseEvent represents a pointer input event. Coordinates are 0-indexed cells.
type MouseEvent struct {
	Button MouseButton
	Action MouseAction
	X, Y   int
	Mod    Modifier
}

func (MouseEvent) isEvent() {}

// Pos returns the pointer position as a Point.
func (e MouseEvent) Pos() Point {
	return Point{X: e.X, Y: e.Y}
}

// ResizeEvent is emitted when the terminal is resized.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) isEvent() {}

// FocusEvent reports the terminal window gaining or losing focus.
type FocusEvent struct {
	Gained bool
}

func (FocusEvent) isEvent() {}

// StartEvent is queued once before the render loop starts so the first
// frame is drawn without waiting for input.
type StartEvent struct{}

func (StartEvent) isEvent() {}

// WakeEvent is sent by the logic task when async work completed and a
// fresh render should be requested.
type WakeEvent struct{}

func (WakeEvent) isEvent() {}

// QuitEvent ends the render loop after the cycle it arrives in.
type QuitEvent struct{}

func (QuitEvent) isEvent() {}
