package vista

// FindDeepestView descends from start to the deepest view under the point
// (x, y), given in start's superview coordinates (screen coordinates when
// start is the top view). At every level the frontmost matching subview
// wins: subviews are scanned in reverse z-order, so later-added views
// occlude earlier ones. Returns the hit view and the point translated into
// its local space, or nil when the point is outside start.
func FindDeepestView(start *View, x, y int) (*View, int, int) {
	if start == nil || !start.frame.Contains(x, y) {
		return nil, 0, 0
	}
	lx, ly := x-start.frame.X, y-start.frame.Y
	for i := len(start.subviews) - 1; i >= 0; i-- {
		if start.subviews[i].frame.Contains(lx, ly) {
			return FindDeepestView(start.subviews[i], lx, ly)
		}
	}
	return start, lx, ly
}

// handleMouse invokes the view's mouse hook with an event already
// translated into local coordinates.
func (v *View) handleMouse(ev MouseEvent) bool {
	if v.onMouse != nil {
		return v.onMouse(v, ev)
	}
	return false
}
