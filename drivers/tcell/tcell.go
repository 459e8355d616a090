// Package tcelldriver implements the vista console driver contract on top
// of github.com/gdamore/tcell/v2. tcell owns terminal capability
// negotiation, raw rendering and key-code mapping; this package translates
// between its event and style model and vista's.
package tcelldriver

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vistaterm/vista"
)

// Driver renders a vista view tree through a tcell.Screen.
type Driver struct {
	screen tcell.Screen
	cb     vista.DriverCallbacks

	clip       vista.Rect
	penX, penY int
	style      tcell.Style

	events chan tcell.Event
	quit   chan struct{}

	// lastButtons tracks the previous button mask so press, drag and
	// release can be told apart; tcell only reports the current mask.
	lastButtons tcell.ButtonMask

	mouse bool
}

var _ vista.Driver = (*Driver)(nil)

// Option configures the driver.
type Option func(*Driver)

// WithMouse enables mouse reporting.
func WithMouse(enabled bool) Option {
	return func(d *Driver) { d.mouse = enabled }
}

// New creates a driver over a fresh tcell screen.
func New(opts ...Option) (*Driver, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, opts...), nil
}

// NewWithScreen creates a driver over an existing screen. Tests pass a
// tcell simulation screen.
func NewWithScreen(screen tcell.Screen, opts ...Option) *Driver {
	d := &Driver{screen: screen, mouse: true}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Init initializes the screen, enables mouse reporting when configured, and
// starts pumping tcell events into the channel WaitEvents drains.
func (d *Driver) Init(cb vista.DriverCallbacks) error {
	if err := d.screen.Init(); err != nil {
		return err
	}
	d.cb = cb
	if d.mouse {
		d.screen.EnableMouse()
	}
	d.screen.HideCursor()
	w, h := d.screen.Size()
	d.clip = vista.NewRect(0, 0, w, h)

	d.events = make(chan tcell.Event, 64)
	d.quit = make(chan struct{})
	go d.screen.ChannelEvents(d.events, d.quit)
	return nil
}

// End restores the terminal. Idempotent.
func (d *Driver) End() {
	if d.quit != nil {
		select {
		case <-d.quit:
		default:
			close(d.quit)
		}
	}
	d.screen.Fini()
}

// Suspend restores the terminal until the next draw.
func (d *Driver) Suspend() error {
	return d.screen.Suspend()
}

// Size returns the screen geometry in cells.
func (d *Driver) Size() (cols, rows int) {
	return d.screen.Size()
}

// SetClip installs the clipping rectangle, bounded by the screen.
func (d *Driver) SetClip(r vista.Rect) {
	w, h := d.screen.Size()
	d.clip = r.Intersect(vista.NewRect(0, 0, w, h))
}

// Clip returns the active clipping rectangle.
func (d *Driver) Clip() vista.Rect { return d.clip }

// Move positions the drawing pen.
func (d *Driver) Move(col, row int) {
	d.penX, d.penY = col, row
}

// SetStyle sets the style for subsequent AddRune calls.
func (d *Driver) SetStyle(s vista.Style) {
	d.style = toTcellStyle(s)
}

// AddRune draws a glyph at the pen if it falls inside the clip, then
// advances the pen by the glyph's display width.
func (d *Driver) AddRune(r rune) {
	if d.clip.Contains(d.penX, d.penY) {
		d.screen.SetContent(d.penX, d.penY, r, nil, d.style)
	}
	d.penX += vista.RuneWidth(r)
}

// UpdateCursor places the hardware cursor.
func (d *Driver) UpdateCursor(col, row int) {
	d.screen.ShowCursor(col, row)
}

// Refresh flushes buffered changes to the physical screen.
func (d *Driver) Refresh() {
	d.screen.Show()
}

// WaitEvents blocks until an event arrives or the timeout elapses, then
// delivers it and any further pending events through the callbacks.
func (d *Driver) WaitEvents(timeout time.Duration) bool {
	var first tcell.Event
	if timeout < 0 {
		select {
		case first = <-d.events:
		case <-d.quit:
			return false
		}
	} else {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		select {
		case first = <-d.events:
		case <-timer.C:
			return false
		case <-d.quit:
			return false
		}
	}
	d.deliver(first)
	for {
		select {
		case ev := <-d.events:
			d.deliver(ev)
		default:
			return true
		}
	}
}

// Caps reports the negotiated capabilities.
func (d *Driver) Caps() vista.Capabilities {
	caps := vista.DetectCapabilities()
	caps.Mouse = d.mouse
	return caps
}

func (d *Driver) deliver(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		d.clip = vista.NewRect(0, 0, w, h)
		d.screen.Sync()
		if d.cb.OnResize != nil {
			d.cb.OnResize(w, h)
		}
	case *tcell.EventKey:
		if d.cb.OnKey != nil {
			d.cb.OnKey(toKeyEvent(ev))
		}
	case *tcell.EventMouse:
		if d.cb.OnMouse != nil {
			d.cb.OnMouse(toMouseEvent(ev, &d.lastButtons))
		}
	}
}

func toTcellStyle(s vista.Style) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(toTcellColor(s.Fg)).
		Background(toTcellColor(s.Bg))
	if s.Attrs&vista.AttrBold != 0 {
		st = st.Bold(true)
	}
	if s.Attrs&vista.AttrDim != 0 {
		st = st.Dim(true)
	}
	if s.Attrs&vista.AttrItalic != 0 {
		st = st.Italic(true)
	}
	if s.Attrs&vista.AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if s.Attrs&vista.AttrBlink != 0 {
		st = st.Blink(true)
	}
	if s.Attrs&vista.AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}

func toTcellColor(c vista.Color) tcell.Color {
	switch c.Type() {
	case vista.ColorANSI:
		return tcell.PaletteColor(int(c.ANSI()))
	case vista.ColorRGB:
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.ColorDefault
}

func toKeyEvent(ev *tcell.EventKey) vista.KeyEvent {
	var mod vista.Modifier
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mod |= vista.ModCtrl
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mod |= vista.ModAlt
	}
	if ev.Modifiers()&tcell.ModShift != 0 {
		mod |= vista.ModShift
	}

	if key, ok := specialKeys[ev.Key()]; ok {
		return vista.KeyEvent{Key: key, Mod: mod}
	}

	switch ev.Key() {
	case tcell.KeyRune:
		return vista.KeyEvent{Key: vista.KeyRune, Rune: ev.Rune(), Mod: mod}
	default:
		// Ctrl chords arrive as dedicated tcell keys in the C0 range.
		if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
			r := rune('a' + ev.Key() - tcell.KeyCtrlA)
			return vista.KeyEvent{Key: vista.KeyRune, Rune: r, Mod: mod | vista.ModCtrl}
		}
	}
	return vista.KeyEvent{Key: vista.KeyNone, Mod: mod}
}

var specialKeys = map[tcell.Key]vista.Key{
	tcell.KeyEscape:     vista.KeyEscape,
	tcell.KeyEnter:      vista.KeyEnter,
	tcell.KeyTab:        vista.KeyTab,
	tcell.KeyBacktab:    vista.KeyBacktab,
	tcell.KeyBackspace:  vista.KeyBackspace,
	tcell.KeyBackspace2: vista.KeyBackspace,
	tcell.KeyDelete:     vista.KeyDelete,
	tcell.KeyInsert:     vista.KeyInsert,
	tcell.KeyUp:         vista.KeyUp,
	tcell.KeyDown:       vista.KeyDown,
	tcell.KeyLeft:       vista.KeyLeft,
	tcell.KeyRight:      vista.KeyRight,
	tcell.KeyHome:       vista.KeyHome,
	tcell.KeyEnd:        vista.KeyEnd,
	tcell.KeyPgUp:       vista.KeyPageUp,
	tcell.KeyPgDn:       vista.KeyPageDown,
	tcell.KeyF1:         vista.KeyF1,
	tcell.KeyF2:         vista.KeyF2,
	tcell.KeyF3:         vista.KeyF3,
	tcell.KeyF4:         vista.KeyF4,
	tcell.KeyF5:         vista.KeyF5,
	tcell.KeyF6:         vista.KeyF6,
	tcell.KeyF7:         vista.KeyF7,
	tcell.KeyF8:         vista.KeyF8,
	tcell.KeyF9:         vista.KeyF9,
	tcell.KeyF10:        vista.KeyF10,
	tcell.KeyF11:        vista.KeyF11,
	tcell.KeyF12:        vista.KeyF12,
}

func toMouseEvent(ev *tcell.EventMouse, last *tcell.ButtonMask) vista.MouseEvent {
	x, y := ev.Position()
	buttons := ev.Buttons()
	prev := *last
	*last = buttons & (tcell.Button1 | tcell.Button2 | tcell.Button3)

	var mod vista.Modifier
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mod |= vista.ModCtrl
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mod |= vista.ModAlt
	}
	if ev.Modifiers()&tcell.ModShift != 0 {
		mod |= vista.ModShift
	}

	me := vista.MouseEvent{X: x, Y: y, Mod: mod}

	switch {
	case buttons&tcell.WheelUp != 0:
		me.Button = vista.MouseWheelUp
		me.Action = vista.MousePress
	case buttons&tcell.WheelDown != 0:
		me.Button = vista.MouseWheelDown
		me.Action = vista.MousePress
	case buttons&tcell.Button1 != 0 && prev&tcell.Button1 == 0:
		me.Button = vista.MouseLeft
		me.Action = vista.MousePress
	case buttons&tcell.Button1 != 0:
		me.Button = vista.MouseLeft
		me.Action = vista.MouseDrag
	case prev&tcell.Button1 != 0:
		me.Button = vista.MouseLeft
		me.Action = vista.MouseRelease
	// tcell names the secondary (right) button Button2 and the middle one
	// Button3.
	case buttons&tcell.Button2 != 0 && prev&tcell.Button2 == 0:
		me.Button = vista.MouseRight
		me.Action = vista.MousePress
	case buttons&tcell.Button2 != 0:
		me.Button = vista.MouseRight
		me.Action = vista.MouseDrag
	case prev&tcell.Button2 != 0:
		me.Button = vista.MouseRight
		me.Action = vista.MouseRelease
	case buttons&tcell.Button3 != 0 && prev&tcell.Button3 == 0:
		me.Button = vista.MouseMiddle
		me.Action = vista.MousePress
	case buttons&tcell.Button3 != 0:
		me.Button = vista.MouseMiddle
		me.Action = vista.MouseDrag
	case prev&tcell.Button3 != 0:
		me.Button = vista.MouseMiddle
		me.Action = vista.MouseRelease
	default:
		me.Button = vista.MouseNone
		me.Action = vista.MouseMove
	}
	return me
}
