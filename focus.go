package vista

import "github.com/vistaterm/vista/internal/debug"

// CanFocus reports whether the view can receive keyboard focus, either by
// itself or through a focusable descendant.
func (v *View) CanFocus() bool { return v.canFocus }

// HasFocus reports whether the view is on the current focus chain.
func (v *View) HasFocus() bool { return v.hasFocus }

// Focused returns the subview that holds (or last held) the view's internal
// focus, or nil.
func (v *View) Focused() *View { return v.focused }

// SetCanFocus marks the view as focusable. Enabling focus bubbles up the
// superview chain so ancestors become transitively focusable; disabling
// keeps any focusability derived from subviews.
func (v *View) SetCanFocus(can bool) {
	v.canFocusSelf = can
	if can {
		v.canFocus = true
		if v.superview != nil {
			v.superview.bubbleCanFocus()
		}
		return
	}
	derived := false
	for _, s := range v.subviews {
		if s.canFocus {
			derived = true
			break
		}
	}
	v.canFocus = derived
}

// bubbleCanFocus makes the view and its ancestors focusable. Stops at the
// first view that already is: focusability always bubbles when gained, so a
// focusable view implies a focusable chain above it.
func (v *View) bubbleCanFocus() {
	for cur := v; cur != nil; cur = cur.superview {
		if cur.canFocus {
			break
		}
		cur.canFocus = true
	}
}

// SetFocus moves keyboard focus to child, which must be a focusable
// descendant of the view. The previously focused branch is unfocused, the
// new branch gains focus down to a leaf (ensureFocus auto-descends), and
// the request propagates upward so the whole ancestor chain is marked
// focused.
//
// A nil or non-focusable child is ignored. A child that is not a descendant
// is a hierarchy error: it indicates broken tree construction in the
// caller, and silently accepting it would corrupt the focus invariants.
func (v *View) SetFocus(child *View) {
	if child == nil || !child.canFocus {
		return
	}

	// Locate the direct subview on the path down to child.
	direct := child
	for direct != nil && direct.superview != v {
		direct = direct.superview
	}
	if direct == nil {
		panic(&HierarchyError{Op: "SetFocus: view is not a descendant", View: child})
	}

	if v.focused == child && child.hasFocus {
		return
	}
	debug.Log("SetFocus: %s -> %s", viewLabel(v), viewLabel(child))

	if v.focused != direct && v.focused != nil {
		v.focused.clearFocus()
	}
	v.focused = direct
	direct.setHasFocus(true)
	direct.ensureFocus()
	if direct != child {
		direct.SetFocus(child)
	}

	if v.superview != nil {
		v.superview.SetFocus(v)
	} else {
		v.setHasFocus(true)
	}
}

// ensureFocus gives the view an internal focus if it has focusable
// subviews and none holds focus yet. A remembered (previously focused)
// subview is restored in preference to the first focusable one.
func (v *View) ensureFocus() {
	if v.focused == nil {
		v.FocusFirst()
	} else if !v.focused.hasFocus {
		v.SetFocus(v.focused)
	}
}

// FocusFirst focuses the first focusable subview, if any.
func (v *View) FocusFirst() {
	for _, s := range v.subviews {
		if s.canFocus {
			v.SetFocus(s)
			return
		}
	}
}

// FocusLast focuses the last focusable subview, if any.
func (v *View) FocusLast() {
	for i := len(v.subviews) - 1; i >= 0; i-- {
		if v.subviews[i].canFocus {
			v.SetFocus(v.subviews[i])
			return
		}
	}
}

// focusLastDeep re-aims the internal focus at the last focusable view on
// every level. Used when focus arrives from the following sibling, so
// backward traversal continues at the subtree's end.
func (v *View) focusLastDeep() {
	v.FocusLast()
	if v.focused != nil && v.focused.hasFocus {
		v.focused.focusLastDeep()
	}
}

// FocusNext advances focus to the next focusable subview in z-order. The
// currently focused subview gets the chance to advance internally first
// (depth-first traversal). Returns true if focus moved; a false return
// means the caller decides whether to wrap around.
func (v *View) FocusNext() bool {
	start := 0
	if v.focused != nil && v.focused.hasFocus {
		if v.focused.FocusNext() {
			return true
		}
		start = v.indexOf(v.focused) + 1
	}
	for i := start; i < len(v.subviews); i++ {
		if v.subviews[i].canFocus {
			v.SetFocus(v.subviews[i])
			return true
		}
	}
	return false
}

// FocusPrev moves focus to the previous focusable subview, initializing the
// target's internal focus to its deepest last focusable view. Returns true
// if focus moved.
func (v *View) FocusPrev() bool {
	start := len(v.subviews) - 1
	if v.focused != nil && v.focused.hasFocus {
		if v.focused.FocusPrev() {
			return true
		}
		start = v.indexOf(v.focused) - 1
	}
	for i := start; i >= 0; i-- {
		if v.subviews[i].canFocus {
			v.SetFocus(v.subviews[i])
			v.subviews[i].focusLastDeep()
			return true
		}
	}
	return false
}

// MostFocused returns the deepest focused view in the chain starting at v,
// or nil when v itself is not focused.
func (v *View) MostFocused() *View {
	if !v.hasFocus {
		return nil
	}
	cur := v
	for cur.focused != nil && cur.focused.hasFocus {
		cur = cur.focused
	}
	return cur
}

func (v *View) setHasFocus(has bool) {
	if v.hasFocus == has {
		return
	}
	v.hasFocus = has
	v.SetNeedsDisplay()
}

// clearFocus removes the view and its focused descendants from the focus
// chain. The focused pointers survive as memory so focus can be restored
// when the branch is focused again.
func (v *View) clearFocus() {
	v.setHasFocus(false)
	if v.focused != nil && v.focused.hasFocus {
		v.focused.clearFocus()
	}
}
