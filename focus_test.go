package vista

import (
	"testing"
)

// newFocusTree builds root -> {left, right}; left -> {a, b}, right -> {c}.
// Every leaf is focusable.
func newFocusTree() (root, left, right, a, b, c *View) {
	root = NewView(WithID("root"))
	root.SetFrame(NewRect(0, 0, 80, 24))
	left = NewView(WithID("left"))
	right = NewView(WithID("right"))
	a = NewView(WithID("a"), WithCanFocus(true))
	b = NewView(WithID("b"), WithCanFocus(true))
	c = NewView(WithID("c"), WithCanFocus(true))
	root.Add(left)
	root.Add(right)
	left.Add(a)
	left.Add(b)
	right.Add(c)
	return
}

func TestFocus_CanFocusBubbles(t *testing.T) {
	root, left, _, _, _, _ := newFocusTree()

	// Containers derive focusability from their focusable leaves.
	if !left.CanFocus() {
		t.Error("left.CanFocus() = false, want true (derived from subviews)")
	}
	if !root.CanFocus() {
		t.Error("root.CanFocus() = false, want true (derived from subviews)")
	}
}

func TestFocus_SetFocusChain(t *testing.T) {
	root, left, _, a, _, _ := newFocusTree()

	root.SetFocus(a)

	for _, v := range []*View{root, left, a} {
		if !v.HasFocus() {
			t.Errorf("%s.HasFocus() = false, want the whole chain focused", v.ID())
		}
	}
	if got := root.MostFocused(); got != a {
		t.Errorf("MostFocused() = %s, want a", viewLabel(got))
	}
}

func TestFocus_Exclusive(t *testing.T) {
	root, left, right, a, b, c := newFocusTree()

	root.SetFocus(a)
	root.SetFocus(c)

	// At most one focus chain exists at any time.
	if a.HasFocus() || b.HasFocus() || left.HasFocus() {
		t.Error("previous branch still focused after moving focus to c")
	}
	for _, v := range []*View{root, right, c} {
		if !v.HasFocus() {
			t.Errorf("%s.HasFocus() = false, want true", v.ID())
		}
	}
	if got := root.MostFocused(); got != c {
		t.Errorf("MostFocused() = %s, want c", viewLabel(got))
	}
}

func TestFocus_DeepTargetFocusesIntermediates(t *testing.T) {
	root, left, _, a, _, _ := newFocusTree()

	// Focusing a deep view from the root walks the intermediate container.
	root.SetFocus(a)

	if left.Focused() != a {
		t.Errorf("left.Focused() = %s, want a", viewLabel(left.Focused()))
	}
	if root.Focused() != left {
		t.Errorf("root.Focused() = %s, want left", viewLabel(root.Focused()))
	}
}

func TestFocus_ContainerAutoDescends(t *testing.T) {
	root, left, _, a, _, _ := newFocusTree()

	// Focusing a container gives its first focusable subview focus.
	root.SetFocus(left)

	if got := root.MostFocused(); got != a {
		t.Errorf("MostFocused() = %s, want a (auto-descend)", viewLabel(got))
	}
}

func TestFocus_Memory(t *testing.T) {
	root, left, _, _, b, c := newFocusTree()

	root.SetFocus(b)
	root.SetFocus(c)
	// Refocusing the container restores b, not the first subview.
	root.SetFocus(left)

	if got := root.MostFocused(); got != b {
		t.Errorf("MostFocused() = %s, want b (restored from memory)", viewLabel(got))
	}
}

func TestFocus_NonFocusableIgnored(t *testing.T) {
	root := NewView(WithID("root"))
	root.SetFrame(NewRect(0, 0, 80, 24))
	plain := NewView(WithID("plain"))
	root.Add(plain)

	root.SetFocus(plain)
	root.SetFocus(nil)

	if root.Focused() != nil {
		t.Error("Focused() != nil after focusing a non-focusable view")
	}
}

func TestFocus_NonDescendantPanics(t *testing.T) {
	root, _, _, _, _, _ := newFocusTree()
	stranger := NewView(WithID("stranger"), WithCanFocus(true))

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("SetFocus(non-descendant) did not panic")
		}
		if _, ok := r.(*HierarchyError); !ok {
			t.Fatalf("SetFocus panicked with %T, want *HierarchyError", r)
		}
	}()
	root.SetFocus(stranger)
}

func TestFocus_NextPrevTraversal(t *testing.T) {
	root, _, _, a, b, c := newFocusTree()
	root.FocusFirst()

	order := []*View{a, b, c}
	for i, want := range order {
		if got := root.MostFocused(); got != want {
			t.Fatalf("step %d: MostFocused() = %s, want %s", i, viewLabel(got), want.ID())
		}
		root.FocusNext()
	}

	// Past the end: FocusNext reports no movement so the caller can wrap.
	root.SetFocus(c)
	if root.FocusNext() {
		t.Error("FocusNext() = true at the last focusable view, want false")
	}

	root.SetFocus(b)
	if !root.FocusPrev() {
		t.Fatal("FocusPrev() = false, want true")
	}
	if got := root.MostFocused(); got != a {
		t.Errorf("MostFocused() = %s after FocusPrev, want a", viewLabel(got))
	}

	root.SetFocus(a)
	if root.FocusPrev() {
		t.Error("FocusPrev() = true at the first focusable view, want false")
	}
}

func TestFocus_TabCycling(t *testing.T) {
	driver := NewMockDriver(80, 24)
	app, err := NewApp(driver)
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	root := NewView(WithID("root"))
	app.SetTop(root)
	a := NewView(WithID("a"), WithCanFocus(true))
	b := NewView(WithID("b"), WithCanFocus(true))
	root.Add(a)
	root.Add(b)
	root.FocusFirst()

	tab := KeyEvent{Key: KeyTab}
	backtab := KeyEvent{Key: KeyBacktab}

	steps := []struct {
		ev   KeyEvent
		want *View
	}{
		{tab, b},
		{tab, a},     // wraps forward
		{backtab, b}, // wraps backward
		{backtab, a},
	}

	for i, step := range steps {
		driver.QueueKey(step.ev)
		app.RunOnce()
		if got := root.MostFocused(); got != step.want {
			t.Fatalf("step %d: MostFocused() = %s, want %s", i, viewLabel(got), step.want.ID())
		}
	}
}

func TestFocus_RepaintOnChange(t *testing.T) {
	driver := NewMockDriver(80, 24)
	app, err := NewApp(driver)
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	root := NewView(WithID("root"))
	app.SetTop(root)
	a := NewView(WithID("a"), WithCanFocus(true))
	root.Add(a)
	app.RunOnce()

	if a.NeedsDisplay() {
		t.Fatal("a dirty before focus change")
	}
	root.SetFocus(a)
	if !a.NeedsDisplay() {
		t.Error("a.NeedsDisplay() = false after gaining focus, want true")
	}
}
