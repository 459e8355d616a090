package vista

// KeyEvent represents a keyboard input event.
type KeyEvent struct {
	// Key is the key pressed. For printable characters, this is KeyRune.
	// For special keys (arrows, function keys), this is the specific constant.
	Key Key

	// Rune is the character for KeyRune events. Zero for special keys.
	Rune rune

	// Mod contains modifier flags (Ctrl, Alt, Shift).
	Mod Modifier
}

// IsRune returns true if this is a printable character event.
func (e KeyEvent) IsRune() bool {
	return e.Key == KeyRune
}

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
	// MouseNone indicates no button (used for motion events).
	MouseNone MouseButton = iota
	// MouseLeft is the left (primary) mouse button.
	MouseLeft
	// MouseMiddle is the middle mouse button (scroll wheel click).
	MouseMiddle
	// MouseRight is the right (secondary) mouse button.
	MouseRight
	// MouseWheelUp is a scroll wheel up event.
	MouseWheelUp
	// MouseWheelDown is a scroll wheel down event.
	MouseWheelDown
)

// MouseAction represents the type of mouse action.
type MouseAction int

const (
	// MousePress indicates a button was pressed.
	MousePress MouseAction = iota
	// MouseRelease indicates a button was released.
	MouseRelease
	// MouseDrag indicates motion while a button is held.
	MouseDrag
	// MouseMove indicates motion with no button held.
	MouseMove
)

// MouseEvent represents a mouse input event. X and Y arrive in screen
// coordinates from the driver; the router translates them into the local
// space of the view that receives the event.
type MouseEvent struct {
	// Button is which mouse button was involved.
	Button MouseButton
	// Action is the type of mouse action.
	Action MouseAction
	// X is the column position (0-indexed).
	X int
	// Y is the row position (0-indexed).
	Y int
	// Mod contains modifier flags held during the event.
	Mod Modifier
}
