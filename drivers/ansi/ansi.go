// Package ansidriver implements the vista console driver contract directly
// on ANSI escape sequences: raw mode via golang.org/x/term, SGR styling via
// charmbracelet/x/ansi, and a hand-rolled CSI input parser. It works on any
// VT100-descendant terminal emulator without a terminfo database.
package ansidriver

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/vistaterm/vista"
)

// Driver renders through raw escape sequences on a tty. Drawing goes into
// an in-memory cell grid; Refresh diffs it against what is already on the
// terminal and emits only the changed cells.
type Driver struct {
	out io.Writer
	in  *os.File
	cb  vista.DriverCallbacks

	cols, rows int
	back       []vista.Cell // pending grid, rows*cols
	front      []vista.Cell // what the terminal currently shows

	clip       vista.Rect
	penX, penY int
	style      vista.Style

	cursorX, cursorY int

	caps vista.Capabilities
	raw  *term.State
	esc  escBuilder

	events chan inputEvent
	resize chan struct{}
	quit   chan struct{}
	sigCh  chan os.Signal

	mouse bool
}

var _ vista.Driver = (*Driver)(nil)

type inputEvent struct {
	key   vista.KeyEvent
	mouse vista.MouseEvent
	isKey bool
}

// Option configures the driver.
type Option func(*Driver)

// WithMouse enables SGR mouse reporting.
func WithMouse(enabled bool) Option {
	return func(d *Driver) { d.mouse = enabled }
}

// New creates a driver over stdin/stdout.
func New(opts ...Option) *Driver {
	return NewWithFiles(os.Stdout, os.Stdin, opts...)
}

// NewWithFiles creates a driver over explicit streams. Tests pass a buffer
// as out; raw mode and size queries then fall back to defaults.
func NewWithFiles(out io.Writer, in *os.File, opts ...Option) *Driver {
	d := &Driver{
		out:   out,
		in:    in,
		caps:  vista.DetectCapabilities(),
		mouse: true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Init puts the terminal into raw mode, switches to the alternate screen
// and starts the input reader goroutine.
func (d *Driver) Init(cb vista.DriverCallbacks) error {
	d.cb = cb

	if d.in != nil {
		state, err := term.MakeRaw(int(d.in.Fd()))
		if err == nil {
			d.raw = state
		}
	}

	d.cols, d.rows = d.querySize()
	d.clip = vista.NewRect(0, 0, d.cols, d.rows)
	d.back = make([]vista.Cell, d.cols*d.rows)
	d.front = make([]vista.Cell, d.cols*d.rows)
	d.cursorX, d.cursorY = -1, -1

	d.esc.Reset()
	d.esc.EnterAltScreen()
	d.esc.HideCursor()
	d.esc.ClearScreen()
	if d.mouse {
		d.esc.EnableMouse()
	}
	d.flushEsc()

	d.events = make(chan inputEvent, 64)
	d.resize = make(chan struct{}, 1)
	d.quit = make(chan struct{})
	if d.in != nil {
		go d.readLoop()
	}
	d.notifyResize()
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
	d.stopResize()
	d.esc.Reset()
	if d.mouse {
		d.esc.DisableMouse()
	}
	d.esc.ResetStyle()
	d.esc.ShowCursor()
	d.esc.ExitAltScreen()
	d.flushEsc()
	if d.raw != nil && d.in != nil {
		term.Restore(int(d.in.Fd()), d.raw)
		d.raw = nil
	}
}

// Suspend restores cooked mode and the main screen so a child process can
// use the terminal. The next Refresh repaints from scratch.
func (d *Driver) Suspend() error {
	d.esc.Reset()
	d.esc.ResetStyle()
	d.esc.ShowCursor()
	d.esc.ExitAltScreen()
	d.flushEsc()
	if d.raw != nil && d.in != nil {
		if err := term.Restore(int(d.in.Fd()), d.raw); err != nil {
			return err
		}
		d.raw = nil
	}
	return nil
}

// Size returns the terminal geometry in cells.
func (d *Driver) Size() (cols, rows int) { return d.cols, d.rows }

func (d *Driver) querySize() (cols, rows int) {
	if f, ok := d.out.(*os.File); ok {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil && w > 0 && h > 0 {
			return w, h
		}
		if w, h, ok := winsize(int(f.Fd())); ok {
			return w, h
		}
	}
	return 80, 24
}

// SetClip installs the clipping rectangle, bounded by the screen.
func (d *Driver) SetClip(r vista.Rect) {
	d.clip = r.Intersect(vista.NewRect(0, 0, d.cols, d.rows))
}

// Clip returns the active clipping rectangle.
func (d *Driver) Clip() vista.Rect { return d.clip }

// Move positions the drawing pen.
func (d *Driver) Move(col, row int) { d.penX, d.penY = col, row }

// SetStyle sets the style for subsequent AddRune calls.
func (d *Driver) SetStyle(s vista.Style) { d.style = s }

// AddRune writes a glyph into the back grid if the pen is inside the clip,
// then advances the pen by the glyph's display width. Wide glyphs leave a
// continuation cell in the trailing column.
func (d *Driver) AddRune(r rune) {
	w := vista.RuneWidth(r)
	if d.clip.Contains(d.penX, d.penY) {
		cell := vista.NewCell(r, d.style)
		d.back[d.penY*d.cols+d.penX] = cell
		if w > 1 && d.penX+1 < d.cols {
			d.back[d.penY*d.cols+d.penX+1] = vista.Cell{Style: d.style, Width: 0}
		}
	}
	d.penX += w
}

// UpdateCursor records where the hardware cursor goes on the next Refresh.
func (d *Driver) UpdateCursor(col, row int) {
	d.cursorX, d.cursorY = col, row
}

// Refresh diffs the back grid against the front grid and writes the
// changed cells in one batch, minimizing cursor moves and style changes
// the same way a curses implementation would.
func (d *Driver) Refresh() {
	d.esc.Reset()
	d.esc.HideCursor()

	lastX, lastY := -2, -2
	var lastStyle vista.Style
	styleSet := false

	for row := 0; row < d.rows; row++ {
		for col := 0; col < d.cols; col++ {
			i := row*d.cols + col
			cell := d.back[i]
			if cell.Equal(d.front[i]) {
				continue
			}
			d.front[i] = cell
			if cell.IsContinuation() {
				// Painted by the wide rune in the previous column.
				continue
			}
			if row != lastY || col != lastX+1 {
				d.esc.MoveTo(col, row)
			}
			if !styleSet || !cell.Style.Equal(lastStyle) {
				d.esc.SetStyle(cell.Style, d.caps)
				lastStyle = cell.Style
				styleSet = true
			}
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			d.esc.WriteRune(r)
			lastX, lastY = col+int(cell.Width)-1, row
		}
	}

	if d.cursorX >= 0 && d.cursorY >= 0 {
		d.esc.MoveTo(d.cursorX, d.cursorY)
		d.esc.ShowCursor()
	}
	d.flushEsc()
}

// WaitEvents blocks until input or a resize arrives, or the timeout
// elapses, then drains everything pending through the callbacks.
func (d *Driver) WaitEvents(timeout time.Duration) bool {
	got := false
	if timeout < 0 {
		select {
		case ev := <-d.events:
			d.deliver(ev)
			got = true
		case <-d.resize:
			d.handleResize()
			got = true
		case <-d.quit:
			return false
		}
	} else {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		select {
		case ev := <-d.events:
			d.deliver(ev)
			got = true
		case <-d.resize:
			d.handleResize()
			got = true
		case <-timer.C:
			return false
		case <-d.quit:
			return false
		}
	}
	for {
		select {
		case ev := <-d.events:
			d.deliver(ev)
		case <-d.resize:
			d.handleResize()
		default:
			return got
		}
	}
}

// Caps reports the detected capabilities.
func (d *Driver) Caps() vista.Capabilities {
	caps := d.caps
	caps.Mouse = d.mouse
	return caps
}

func (d *Driver) deliver(ev inputEvent) {
	if ev.isKey {
		if d.cb.OnKey != nil {
			d.cb.OnKey(ev.key)
		}
		return
	}
	if d.cb.OnMouse != nil {
		d.cb.OnMouse(ev.mouse)
	}
}

func (d *Driver) handleResize() {
	cols, rows := d.querySize()
	if cols == d.cols && rows == d.rows {
		return
	}
	d.cols, d.rows = cols, rows
	d.clip = vista.NewRect(0, 0, cols, rows)
	d.back = make([]vista.Cell, cols*rows)
	d.front = make([]vista.Cell, cols*rows)
	d.esc.Reset()
	d.esc.ClearScreen()
	d.flushEsc()
	if d.cb.OnResize != nil {
		d.cb.OnResize(cols, rows)
	}
}

// readLoop reads raw bytes off the tty and feeds parsed events into the
// channel WaitEvents drains. Incomplete UTF-8 or escape tails are carried
// over to the next read.
func (d *Driver) readLoop() {
	buf := make([]byte, 256)
	var partial []byte
	for {
		n, err := d.in.Read(buf)
		if err != nil || n == 0 {
			select {
			case <-d.quit:
			default:
				close(d.quit)
			}
			return
		}
		data := buf[:n]
		if len(partial) > 0 {
			data = append(partial, data...)
			partial = nil
		}
		events, rest := parseInput(data)
		if len(rest) > 0 {
			partial = append([]byte(nil), rest...)
		}
		for _, ev := range events {
			select {
			case d.events <- ev:
			case <-d.quit:
				return
			}
		}
	}
}

func (d *Driver) flushEsc() {
	if b := d.esc.Bytes(); len(b) > 0 {
		d.out.Write(b)
	}
	d.esc.Reset()
}

// escBuilder accumulates escape sequences for one batched write, so a
// whole repaint reaches the terminal in a single syscall.
type escBuilder struct {
	buf bytes.Buffer
}

func (e *escBuilder) Reset()           { e.buf.Reset() }
func (e *escBuilder) Bytes() []byte    { return e.buf.Bytes() }
func (e *escBuilder) WriteRune(r rune) { e.buf.WriteRune(r) }

func (e *escBuilder) ClearScreen()    { e.buf.WriteString("\x1b[2J") }
func (e *escBuilder) HideCursor()     { e.buf.WriteString("\x1b[?25l") }
func (e *escBuilder) ShowCursor()     { e.buf.WriteString("\x1b[?25h") }
func (e *escBuilder) EnterAltScreen() { e.buf.WriteString("\x1b[?1049h") }
func (e *escBuilder) ExitAltScreen()  { e.buf.WriteString("\x1b[?1049l") }

// MoveTo emits a cursor position sequence (input is 0-indexed, the wire
// format is 1-indexed).
func (e *escBuilder) MoveTo(x, y int) {
	fmt.Fprintf(&e.buf, "\x1b[%d;%dH", y+1, x+1)
}

// EnableMouse turns on button + drag tracking in SGR coordinate encoding.
func (e *escBuilder) EnableMouse()  { e.buf.WriteString("\x1b[?1002h\x1b[?1006h") }
func (e *escBuilder) DisableMouse() { e.buf.WriteString("\x1b[?1006l\x1b[?1002l") }
