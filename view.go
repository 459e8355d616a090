package vista

// LayoutMode controls how a view's frame is determined.
type LayoutMode uint8

const (
	// Explicit means the frame was set directly and is never recomputed.
	Explicit LayoutMode = iota
	// Computed means the frame is derived from Pos/Dim expressions each
	// layout pass.
	Computed
)

// View is a node in the toolkit's tree of rectangular regions. A view owns
// its subviews (z-order equals slice order, later entries draw on top),
// keeps a non-owning pointer to its superview, and carries the focus, dirty
// and layout state the engine operates on.
//
// View is a single concrete type: widgets customize behavior through the
// hook funcs (OnDraw, OnKey, ...) instead of subclassing. The default
// methods hold the shared traversal logic.
type View struct {
	id string

	frame Rect
	mode  LayoutMode
	x, y  Pos
	w, h  Dim

	superview *View
	subviews  []*View
	app       *App

	focused      *View
	canFocusSelf bool
	canFocus     bool
	hasFocus     bool

	needsLayout bool
	dirty       Rect // local coordinates, bounding-box union
	childDirty  bool

	scheme *ColorScheme

	onDraw           func(*View, Rect)
	onKey            func(*View, KeyEvent) bool
	onHotKey         func(*View, KeyEvent) bool
	onColdKey        func(*View, KeyEvent) bool
	onMouse          func(*View, MouseEvent) bool
	onPositionCursor func(*View)
}

// NewView creates a view. Without a WithFrame option the view starts in
// Computed mode with nil expressions, which resolve to the full container
// extent at origin.
func NewView(opts ...ViewOption) *View {
	v := &View{
		mode:        Computed,
		needsLayout: true,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ID returns the view's identifier (used in error messages and debugging).
func (v *View) ID() string { return v.id }

// SetID sets the view's identifier.
func (v *View) SetID(id string) { v.id = id }

// Frame returns the view's rectangle in its superview's coordinate space.
func (v *View) Frame() Rect { return v.frame }

// Mode returns the view's layout mode.
func (v *View) Mode() LayoutMode { return v.mode }

// Bounds returns the view's rectangle in its own coordinate space.
func (v *View) Bounds() Rect {
	return Rect{Width: v.frame.Width, Height: v.frame.Height}
}

// SetFrame sets the frame directly and switches the view to Explicit mode:
// the layout engine will never overwrite it. The vacated and newly covered
// areas are marked dirty on the superview so it repaints both.
func (v *View) SetFrame(frame Rect) {
	v.mode = Explicit
	v.commitFrame(frame)
}

// commitFrame changes the frame without touching the layout mode. Used by
// both SetFrame and the layout engine when it resolves computed frames.
func (v *View) commitFrame(frame Rect) {
	if frame == v.frame {
		return
	}
	old := v.frame
	v.frame = frame
	if v.superview != nil {
		v.superview.SetNeedsDisplayRect(old)
		v.superview.SetNeedsDisplayRect(frame)
	}
	v.setNeedsLayout()
	v.SetNeedsDisplay()
}

// SetX installs the x-position expression and switches to Computed mode.
func (v *View) SetX(p Pos) { v.x = p; v.becomeComputed() }

// SetY installs the y-position expression and switches to Computed mode.
func (v *View) SetY(p Pos) { v.y = p; v.becomeComputed() }

// SetWidth installs the width expression and switches to Computed mode.
func (v *View) SetWidth(d Dim) { v.w = d; v.becomeComputed() }

// SetHeight installs the height expression and switches to Computed mode.
func (v *View) SetHeight(d Dim) { v.h = d; v.becomeComputed() }

func (v *View) becomeComputed() {
	v.mode = Computed
	v.setNeedsLayout()
	if v.superview != nil {
		v.superview.setNeedsLayout()
	}
}

// Superview returns the view's parent, or nil for a detached or top view.
func (v *View) Superview() *View { return v.superview }

// App returns the owning application context, or nil while the view is not
// attached under an application's top view.
func (v *View) App() *App { return v.app }

// Subviews returns a copy of the subview list in z-order (frontmost last).
// The view retains exclusive ownership of the underlying list.
func (v *View) Subviews() []*View {
	out := make([]*View, len(v.subviews))
	copy(out, v.subviews)
	return out
}

// Add appends child to the subview list, on top of existing subviews.
// Adding nil is a no-op. Adding a view that already has a superview, or the
// view itself, is a hierarchy error.
func (v *View) Add(child *View) {
	if child == nil {
		return
	}
	if child == v {
		panic(&HierarchyError{Op: "Add: view cannot contain itself", View: v})
	}
	if child.superview != nil {
		panic(&HierarchyError{Op: "Add: view already has a superview", View: child})
	}
	v.subviews = append(v.subviews, child)
	child.superview = v
	child.setApp(v.app)
	if child.canFocus {
		v.bubbleCanFocus()
	}
	child.setNeedsLayout()
	v.SetNeedsDisplay()
}

// Remove detaches child from the subview list. Removing nil or a view that
// is not a subview is a no-op. The area the child covered is marked dirty on
// the view, which also re-marks any overlapping siblings.
func (v *View) Remove(child *View) {
	idx := v.indexOf(child)
	if idx < 0 {
		return
	}
	touched := child.frame
	v.subviews = append(v.subviews[:idx], v.subviews[idx+1:]...)
	child.superview = nil
	child.setApp(nil)
	if v.focused == child {
		child.clearFocus()
		v.focused = nil
	}
	if !v.canFocusSelf {
		remaining := false
		for _, s := range v.subviews {
			if s.canFocus {
				remaining = true
				break
			}
		}
		v.canFocus = remaining
	}
	v.SetNeedsDisplayRect(touched)
	v.setNeedsLayout()
}

// RemoveAll detaches every subview.
func (v *View) RemoveAll() {
	for len(v.subviews) > 0 {
		v.Remove(v.subviews[len(v.subviews)-1])
	}
}

func (v *View) indexOf(child *View) int {
	if child == nil {
		return -1
	}
	for i, s := range v.subviews {
		if s == child {
			return i
		}
	}
	return -1
}

// IsDescendantOf reports whether v sits somewhere below ancestor.
func (v *View) IsDescendantOf(ancestor *View) bool {
	for cur := v.superview; cur != nil; cur = cur.superview {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// setApp propagates the owning application pointer through the subtree.
// Views attached under an application's top view draw through its driver;
// detached subtrees have a nil app and their drawing helpers are no-ops.
func (v *View) setApp(app *App) {
	v.app = app
	for _, s := range v.subviews {
		s.setApp(app)
	}
}

// setNeedsLayout marks the view and its ancestor chain as needing a layout
// pass, so the next lazy LayoutSubviews call from the top reaches it.
func (v *View) setNeedsLayout() {
	v.needsLayout = true
	for cur := v.superview; cur != nil; cur = cur.superview {
		if cur.needsLayout {
			// Flags propagate upward together, so a marked ancestor
			// means the rest of the chain is marked too.
			break
		}
		cur.needsLayout = true
	}
}

// NeedsLayout reports whether a layout pass is pending for this view.
func (v *View) NeedsLayout() bool { return v.needsLayout }

// ViewToScreen converts a point in the view's local coordinate space to
// screen coordinates by summing frame offsets up the superview chain. When
// clamp is true the result is constrained to the driver's visible extent,
// which guarantees the hardware cursor is never sent off-screen.
func (v *View) ViewToScreen(col, row int, clamp bool) (int, int) {
	x, y := col, row
	for cur := v; cur != nil; cur = cur.superview {
		x += cur.frame.X
		y += cur.frame.Y
	}
	if clamp && v.app != nil && v.app.driver != nil {
		w, h := v.app.driver.Size()
		x, y = NewRect(0, 0, w, h).Clamp(x, y)
	}
	return x, y
}

// ScreenToView converts screen coordinates into the view's local space.
// It is the inverse of ViewToScreen when no clamping occurs.
func (v *View) ScreenToView(x, y int) (int, int) {
	if v.superview != nil {
		x, y = v.superview.ScreenToView(x, y)
	}
	return x - v.frame.X, y - v.frame.Y
}

// Scheme returns the effective color scheme: the view's own when set,
// otherwise the nearest ancestor's, falling back to the application scheme.
// The lookup happens at read time; schemes are never copied down the tree.
func (v *View) Scheme() *ColorScheme {
	for cur := v; cur != nil; cur = cur.superview {
		if cur.scheme != nil {
			return cur.scheme
		}
	}
	if v.app != nil && v.app.scheme != nil {
		return v.app.scheme
	}
	return defaultScheme
}

// SetScheme sets the view's own color scheme. Passing nil reverts the view
// to inheriting its ancestor's scheme.
func (v *View) SetScheme(s *ColorScheme) {
	v.scheme = s
	v.SetNeedsDisplay()
}

var defaultScheme = DefaultScheme()
