package vista

// Key events pass through three ordered phases. The hot-key phase offers
// the event to every view in pre-order so any view can claim an accelerator
// before focus routing. The normal phase walks only the focus chain, each
// level delegating to its focused subview first. The cold-key phase runs
// post-order and implements "default action" semantics, such as a default
// button reacting to Enter that nothing else wanted. The router stops at
// the first phase that claims the event.

// ProcessHotKey offers the event to the view's hot-key hook and then to
// every subview in pre-order. Returns true if some view claimed it.
func (v *View) ProcessHotKey(ev KeyEvent) bool {
	if v.onHotKey != nil && v.onHotKey(v, ev) {
		return true
	}
	for _, s := range v.subviews {
		if s.ProcessHotKey(ev) {
			return true
		}
	}
	return false
}

// ProcessKey routes the event along the focus chain: the focused subview
// gets it first, then the view's own key hook. Views off the focus chain
// never see the event in this phase.
func (v *View) ProcessKey(ev KeyEvent) bool {
	if v.focused != nil && v.focused.hasFocus && v.focused.ProcessKey(ev) {
		return true
	}
	if v.onKey != nil {
		return v.onKey(v, ev)
	}
	return false
}

// ProcessColdKey offers the event to every subview in post-order and then
// to the view's own cold-key hook. Returns true if some view claimed it.
func (v *View) ProcessColdKey(ev KeyEvent) bool {
	for _, s := range v.subviews {
		if s.ProcessColdKey(ev) {
			return true
		}
	}
	if v.onColdKey != nil && v.onColdKey(v, ev) {
		return true
	}
	return false
}
