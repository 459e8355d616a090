package vista

import "time"

// DriverCallbacks carries the functions a driver invokes when it has decoded
// raw input. All callbacks run on the goroutine that calls WaitEvents, which
// keeps the view tree single-threaded.
type DriverCallbacks struct {
	// OnKey receives completed key events.
	OnKey func(KeyEvent)
	// OnMouse receives completed mouse events in screen coordinates.
	OnMouse func(MouseEvent)
	// OnResize fires after the console geometry changes.
	OnResize func(cols, rows int)
}

// Driver is the capability contract a console backend must satisfy. The
// toolkit core draws exclusively through this interface; concrete backends
// live in the drivers/ subpackages and MockDriver backs the tests.
//
// Output primitives must respect the active clip rectangle: drawing outside
// it is silently discarded.
type Driver interface {
	// Init prepares the console (raw mode, alternate screen, mouse
	// reporting where available) and installs the input callbacks.
	Init(cb DriverCallbacks) error

	// End restores the console to its pre-Init state. Safe to call after a
	// failed Init and idempotent.
	End()

	// Suspend temporarily restores the console (for shelling out). The
	// next Refresh repaints from scratch.
	Suspend() error

	// Size returns the console geometry in cells.
	Size() (cols, rows int)

	// SetClip installs the clipping rectangle in screen coordinates.
	SetClip(r Rect)

	// Clip returns the active clipping rectangle.
	Clip() Rect

	// Move positions the drawing pen. It does not touch the hardware
	// cursor; see UpdateCursor.
	Move(col, row int)

	// AddRune draws one glyph at the pen under the current style and
	// advances the pen by the glyph's display width.
	AddRune(r rune)

	// SetStyle sets the style used by subsequent AddRune calls.
	SetStyle(s Style)

	// UpdateCursor places the hardware cursor.
	UpdateCursor(col, row int)

	// Refresh flushes buffered output to the physical screen.
	Refresh()

	// WaitEvents blocks until input is available or the timeout elapses,
	// then delivers every pending event through the callbacks. A negative
	// timeout blocks indefinitely; zero polls. Returns false when it timed
	// out without delivering anything.
	WaitEvents(timeout time.Duration) bool

	// Caps reports what the console supports.
	Caps() Capabilities
}
