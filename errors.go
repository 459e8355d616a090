package vista

import (
	"fmt"
	"strings"
)

// InvalidPercentError reports a percentage expression constructed with a
// fraction outside [0, 100]. It is raised as a panic at construction time:
// a malformed expression is a programmer error, not a runtime condition.
type InvalidPercentError struct {
	Fraction float64
}

func (e *InvalidPercentError) Error() string {
	return fmt.Sprintf("vista: percent fraction %v outside [0, 100]", e.Fraction)
}

// HierarchyError reports an operation that would break the view tree's
// invariants, such as focusing a view that is not a descendant of the
// receiver or attaching a view that already has a superview. It is raised
// as a panic: continuing would corrupt focus and ownership state.
type HierarchyError struct {
	Op   string
	View *View
}

func (e *HierarchyError) Error() string {
	return fmt.Sprintf("vista: %s: %s", e.Op, viewLabel(e.View))
}

// LayoutCycleError reports a dependency cycle between the positional
// expressions of sibling views. The frames of the named views cannot be
// resolved in any order. Raised as a panic from LayoutSubviews.
type LayoutCycleError struct {
	Container *View
	Views     []*View
}

func (e *LayoutCycleError) Error() string {
	names := make([]string, len(e.Views))
	for i, v := range e.Views {
		names[i] = viewLabel(v)
	}
	return fmt.Sprintf("vista: positional expression cycle under %s involving [%s]",
		viewLabel(e.Container), strings.Join(names, ", "))
}

// viewLabel produces a short identifier for error messages: the view's ID
// when set, otherwise its frame.
func viewLabel(v *View) string {
	if v == nil {
		return "<nil>"
	}
	if v.id != "" {
		return v.id
	}
	f := v.frame
	return fmt.Sprintf("view(%d,%d %dx%d)", f.X, f.Y, f.Width, f.Height)
}
