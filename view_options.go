package vista

// ViewOption configures a View at construction time.
type ViewOption func(*View)

// WithID sets the view's identifier.
func WithID(id string) ViewOption {
	return func(v *View) { v.id = id }
}

// WithFrame sets an explicit frame: the view starts in Explicit mode and the
// layout engine never recomputes it.
func WithFrame(frame Rect) ViewOption {
	return func(v *View) {
		v.mode = Explicit
		v.frame = frame
	}
}

// WithX sets the x-position expression (Computed mode).
func WithX(p Pos) ViewOption {
	return func(v *View) { v.x = p; v.mode = Computed }
}

// WithY sets the y-position expression (Computed mode).
func WithY(p Pos) ViewOption {
	return func(v *View) { v.y = p; v.mode = Computed }
}

// WithWidth sets the width expression (Computed mode).
func WithWidth(d Dim) ViewOption {
	return func(v *View) { v.w = d; v.mode = Computed }
}

// WithHeight sets the height expression (Computed mode).
func WithHeight(d Dim) ViewOption {
	return func(v *View) { v.h = d; v.mode = Computed }
}

// WithCanFocus marks the view as able to receive keyboard focus.
func WithCanFocus(can bool) ViewOption {
	return func(v *View) {
		v.canFocusSelf = can
		v.canFocus = can
	}
}

// WithScheme sets the view's own color scheme.
func WithScheme(s *ColorScheme) ViewOption {
	return func(v *View) { v.scheme = s }
}

// WithOnDraw sets the content paint hook, called by Redraw before the
// default subview traversal. The region is in the view's local coordinates.
func WithOnDraw(fn func(*View, Rect)) ViewOption {
	return func(v *View) { v.onDraw = fn }
}

// WithOnKey sets the focused-key hook. It runs only while the view is on
// the focus chain and its focused subview (if any) declined the event.
// Return true to claim the event.
func WithOnKey(fn func(*View, KeyEvent) bool) ViewOption {
	return func(v *View) { v.onKey = fn }
}

// WithOnHotKey sets the hot-key hook, offered to every view in pre-order
// before normal dispatch. Return true to claim the event.
func WithOnHotKey(fn func(*View, KeyEvent) bool) ViewOption {
	return func(v *View) { v.onHotKey = fn }
}

// WithOnColdKey sets the cold-key hook, offered in post-order after normal
// dispatch declined the event. Return true to claim it.
func WithOnColdKey(fn func(*View, KeyEvent) bool) ViewOption {
	return func(v *View) { v.onColdKey = fn }
}

// WithOnMouse sets the mouse hook. Events arrive with coordinates already
// translated into the view's local space. Return true to claim the event.
func WithOnMouse(fn func(*View, MouseEvent) bool) ViewOption {
	return func(v *View) { v.onMouse = fn }
}

// WithOnPositionCursor sets the hook that places the hardware cursor while
// the view is the most-focused view.
func WithOnPositionCursor(fn func(*View)) ViewOption {
	return func(v *View) { v.onPositionCursor = fn }
}

// SetOnDraw replaces the content paint hook.
func (v *View) SetOnDraw(fn func(*View, Rect)) { v.onDraw = fn }

// SetOnKey replaces the focused-key hook.
func (v *View) SetOnKey(fn func(*View, KeyEvent) bool) { v.onKey = fn }

// SetOnHotKey replaces the hot-key hook.
func (v *View) SetOnHotKey(fn func(*View, KeyEvent) bool) { v.onHotKey = fn }

// SetOnColdKey replaces the cold-key hook.
func (v *View) SetOnColdKey(fn func(*View, KeyEvent) bool) { v.onColdKey = fn }

// SetOnMouse replaces the mouse hook.
func (v *View) SetOnMouse(fn func(*View, MouseEvent) bool) { v.onMouse = fn }

// SetOnPositionCursor replaces the cursor placement hook.
func (v *View) SetOnPositionCursor(fn func(*View)) { v.onPositionCursor = fn }
