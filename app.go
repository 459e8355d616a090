package vista

import (
	"errors"
	"fmt"
	"time"

	"github.com/vistaterm/vista/internal/debug"
)

// App is the application context: it owns the console driver, the top view,
// the mouse grab, and the run-loop state. There is no package-level
// singleton; tests construct isolated instances around a MockDriver.
//
// The entire view tree is single-threaded: drivers deliver events on the
// goroutine that calls WaitEvents, and layout, redraw and dispatch are
// plain run-to-completion recursive calls on that same goroutine.
type App struct {
	driver Driver
	top    *View
	scheme *ColorScheme

	grabbed *View

	inputLatency time.Duration
	stopped      bool
}

// AppOption configures an App at construction time.
type AppOption func(*App)

// WithAppScheme sets the application-wide fallback color scheme, used by
// views with no scheme of their own anywhere on their superview chain.
func WithAppScheme(s *ColorScheme) AppOption {
	return func(a *App) { a.scheme = s }
}

// WithInputLatency sets how long the run loop blocks waiting for input per
// iteration. The timeout is advisory: a bounded wait, not a deadline.
// Negative blocks indefinitely.
func WithInputLatency(d time.Duration) AppOption {
	return func(a *App) { a.inputLatency = d }
}

// NewApp initializes the driver and returns the application context.
func NewApp(driver Driver, opts ...AppOption) (*App, error) {
	if driver == nil {
		return nil, errors.New("vista: NewApp requires a driver")
	}
	a := &App{
		driver:       driver,
		inputLatency: 50 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(a)
	}
	err := driver.Init(DriverCallbacks{
		OnKey:    a.handleKey,
		OnMouse:  a.handleMouse,
		OnResize: a.handleResize,
	})
	if err != nil {
		return nil, fmt.Errorf("vista: driver init: %w", err)
	}
	return a, nil
}

// Driver returns the console driver.
func (a *App) Driver() Driver { return a.driver }

// Top returns the top view.
func (a *App) Top() *View { return a.top }

// SetTop installs the top view, sizing its frame to the console.
func (a *App) SetTop(top *View) {
	if a.top != nil {
		a.top.setApp(nil)
	}
	a.top = top
	if top == nil {
		return
	}
	top.setApp(a)
	cols, rows := a.driver.Size()
	top.SetFrame(NewRect(0, 0, cols, rows))
	top.SetNeedsDisplay()
}

// Run drives the main loop: block for one batch of input, route it, resolve
// pending layout, repaint damaged regions, place the cursor, flush. Returns
// nil after RequestStop. Fatal conditions inside the core (layout cycles,
// hierarchy violations) surface as panics carrying typed errors; Run
// recovers them, restores the console, and returns the error so embedders
// can tell an internal invariant violation from a normal close.
func (a *App) Run() (err error) {
	if a.top == nil {
		return errors.New("vista: Run requires a top view; call SetTop first")
	}
	defer a.driver.End()
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("vista: %v", r)
		}
	}()

	a.stopped = false
	a.top.ensureFocus()
	a.redrawPass()

	for !a.stopped {
		a.driver.WaitEvents(a.inputLatency)
		a.redrawPass()
	}
	return nil
}

// RequestStop makes Run return nil after the current iteration: the normal
// way to close the application, distinct from a fatal error return.
func (a *App) RequestStop() { a.stopped = true }

// redrawPass performs the per-iteration layout, damage repaint and cursor
// placement. Exposed to tests indirectly through RunOnce.
func (a *App) redrawPass() {
	top := a.top
	if top == nil {
		return
	}
	top.LayoutSubviews()
	if top.NeedsDisplay() || top.ChildNeedsDisplay() {
		cols, rows := a.driver.Size()
		a.driver.SetClip(NewRect(0, 0, cols, rows))
		top.Redraw(top.DirtyRegion())
	}
	if most := top.MostFocused(); most != nil {
		most.PositionCursor()
	}
	a.driver.Refresh()
}

// RunOnce performs a single loop iteration without blocking beyond the
// input latency: deliver pending events, then layout and repaint. Useful
// for embedders that own their own outer loop, and for tests.
func (a *App) RunOnce() {
	a.driver.WaitEvents(0)
	a.redrawPass()
}

// GrabMouse installs an exclusive mouse grab: all mouse events bypass
// hit-testing and go to view (translated into its local space) until
// UngrabMouse. Used for drag interactions.
func (a *App) GrabMouse(v *View) {
	debug.Log("GrabMouse: %s", viewLabel(v))
	a.grabbed = v
}

// UngrabMouse releases the mouse grab.
func (a *App) UngrabMouse() {
	a.grabbed = nil
}

// MouseGrabber returns the view holding the mouse grab, or nil.
func (a *App) MouseGrabber() *View { return a.grabbed }

// handleKey routes a key event through the three dispatch phases and falls
// back to Tab/Backtab focus cycling when nothing claimed the event.
func (a *App) handleKey(ev KeyEvent) {
	top := a.top
	if top == nil {
		return
	}
	if top.ProcessHotKey(ev) {
		return
	}
	if top.ProcessKey(ev) {
		return
	}
	if top.ProcessColdKey(ev) {
		return
	}

	switch {
	case ev.Is(KeyBacktab) || ev.Is(KeyTab, ModShift):
		if !top.FocusPrev() {
			top.focusLastDeep()
		}
	case ev.Is(KeyTab):
		if !top.FocusNext() {
			top.FocusFirst()
		}
	}
}

// handleMouse delivers a mouse event to the grabbing view, or to the
// deepest view under the pointer. A press focuses the hit view before
// delivery when it can take focus.
func (a *App) handleMouse(ev MouseEvent) {
	if a.grabbed != nil {
		ev.X, ev.Y = a.grabbed.ScreenToView(ev.X, ev.Y)
		a.grabbed.handleMouse(ev)
		return
	}
	target, lx, ly := FindDeepestView(a.top, ev.X, ev.Y)
	if target == nil {
		return
	}
	if ev.Action == MousePress && target.canFocus && target.superview != nil {
		target.superview.SetFocus(target)
	}
	ev.X, ev.Y = lx, ly
	target.handleMouse(ev)
}

// handleResize refits the top view to the new geometry and forces a full
// repaint.
func (a *App) handleResize(cols, rows int) {
	debug.Log("resize: %dx%d", cols, rows)
	if a.top == nil {
		return
	}
	a.top.SetFrame(NewRect(0, 0, cols, rows))
	a.top.SetNeedsDisplay()
}

// Suspend temporarily restores the console (for shelling out). The next
// loop iteration repaints from scratch.
func (a *App) Suspend() error {
	if err := a.driver.Suspend(); err != nil {
		return err
	}
	if a.top != nil {
		a.top.SetNeedsDisplay()
	}
	return nil
}
