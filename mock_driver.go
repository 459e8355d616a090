package vista

import (
	"strings"
	"time"
)

// MockDriver is an in-memory Driver for tests. It keeps a cell grid that
// assertions can read back, and a queue of synthetic events that WaitEvents
// delivers through the installed callbacks.
type MockDriver struct {
	width, height int
	cells         []Cell
	penX, penY    int
	cursorX       int
	cursorY       int
	clip          Rect
	style         Style
	cb            DriverCallbacks
	queue         []func(DriverCallbacks)
	inited        bool
	refreshCount  int
}

var _ Driver = (*MockDriver)(nil)

// NewMockDriver creates a mock console with the given geometry.
func NewMockDriver(width, height int) *MockDriver {
	m := &MockDriver{width: width, height: height}
	m.reset()
	return m
}

func (m *MockDriver) reset() {
	m.cells = make([]Cell, m.width*m.height)
	blank := NewCell(' ', NewStyle())
	for i := range m.cells {
		m.cells[i] = blank
	}
	m.clip = NewRect(0, 0, m.width, m.height)
}

// Init installs the callbacks. The mock has no console state to set up.
func (m *MockDriver) Init(cb DriverCallbacks) error {
	m.cb = cb
	m.inited = true
	return nil
}

// End marks the driver shut down.
func (m *MockDriver) End() { m.inited = false }

// Suspend is a no-op for the mock.
func (m *MockDriver) Suspend() error { return nil }

// Size returns the mock geometry.
func (m *MockDriver) Size() (cols, rows int) { return m.width, m.height }

// SetClip installs the clipping rectangle, bounded by the screen.
func (m *MockDriver) SetClip(r Rect) {
	m.clip = r.Intersect(NewRect(0, 0, m.width, m.height))
}

// Clip returns the active clipping rectangle.
func (m *MockDriver) Clip() Rect { return m.clip }

// Move positions the drawing pen.
func (m *MockDriver) Move(col, row int) {
	m.penX, m.penY = col, row
}

// SetStyle sets the style for subsequent AddRune calls.
func (m *MockDriver) SetStyle(s Style) { m.style = s }

// AddRune draws a glyph at the pen, honoring the clip, and advances the pen
// by the glyph's display width.
func (m *MockDriver) AddRune(r rune) {
	w := RuneWidth(r)
	if m.clip.Contains(m.penX, m.penY) {
		m.cells[m.penY*m.width+m.penX] = NewCell(r, m.style)
		for i := 1; i < w; i++ {
			if m.clip.Contains(m.penX+i, m.penY) {
				m.cells[m.penY*m.width+m.penX+i] = Cell{Style: m.style}
			}
		}
	}
	m.penX += w
}

// UpdateCursor places the hardware cursor.
func (m *MockDriver) UpdateCursor(col, row int) {
	m.cursorX, m.cursorY = col, row
}

// Refresh counts flushes so tests can assert render passes happened.
func (m *MockDriver) Refresh() { m.refreshCount++ }

// WaitEvents delivers every queued event. Returns false when the queue was
// empty (a timeout, from the core's point of view).
func (m *MockDriver) WaitEvents(timeout time.Duration) bool {
	if len(m.queue) == 0 {
		return false
	}
	pending := m.queue
	m.queue = nil
	for _, deliver := range pending {
		deliver(m.cb)
	}
	return true
}

// Caps reports a fully capable console.
func (m *MockDriver) Caps() Capabilities {
	return Capabilities{Colors: ColorTrue, Unicode: true, TrueColor: true, Mouse: true}
}

// QueueKey enqueues a key event for the next WaitEvents call.
func (m *MockDriver) QueueKey(ev KeyEvent) {
	m.queue = append(m.queue, func(cb DriverCallbacks) {
		if cb.OnKey != nil {
			cb.OnKey(ev)
		}
	})
}

// QueueMouse enqueues a mouse event for the next WaitEvents call.
func (m *MockDriver) QueueMouse(ev MouseEvent) {
	m.queue = append(m.queue, func(cb DriverCallbacks) {
		if cb.OnMouse != nil {
			cb.OnMouse(ev)
		}
	})
}

// Resize changes the mock geometry and enqueues the resize notification.
func (m *MockDriver) Resize(width, height int) {
	m.width, m.height = width, height
	m.reset()
	m.queue = append(m.queue, func(cb DriverCallbacks) {
		if cb.OnResize != nil {
			cb.OnResize(width, height)
		}
	})
}

// CellAt returns the cell at (x, y), or a zero Cell when out of range.
func (m *MockDriver) CellAt(x, y int) Cell {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Cell{}
	}
	return m.cells[y*m.width+x]
}

// Cursor returns the hardware cursor position.
func (m *MockDriver) Cursor() (x, y int) { return m.cursorX, m.cursorY }

// RefreshCount returns how many times Refresh has been called.
func (m *MockDriver) RefreshCount() int { return m.refreshCount }

// Line returns row y as a string with trailing blanks trimmed.
func (m *MockDriver) Line(y int) string {
	if y < 0 || y >= m.height {
		return ""
	}
	var b strings.Builder
	for x := 0; x < m.width; x++ {
		c := m.cells[y*m.width+x]
		if c.IsContinuation() {
			continue
		}
		if c.Rune == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Rune)
	}
	return strings.TrimRight(b.String(), " ")
}

// Contents returns the whole grid as newline-separated rows, each trimmed
// of trailing blanks.
func (m *MockDriver) Contents() string {
	lines := make([]string, m.height)
	for y := 0; y < m.height; y++ {
		lines[y] = m.Line(y)
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
