package vista

import "github.com/vistaterm/vista/internal/debug"

// LayoutSubviews resolves the frames of the view's computed subviews
// against its current bounds, in dependency order, and recurses into each
// subtree. The pass is lazy: it returns immediately unless a mutation has
// marked the view as needing layout.
//
// Subviews whose expressions reference a sibling are ordered after that
// sibling; a reference cycle (including a self-reference) makes the frames
// unresolvable and panics with *LayoutCycleError.
func (v *View) LayoutSubviews() {
	if !v.needsLayout {
		return
	}
	bounds := v.Bounds()
	for _, s := range v.layoutOrder() {
		if s.mode == Computed {
			s.resolveFrame(bounds)
		}
		s.LayoutSubviews()
		s.needsLayout = false
	}
	v.needsLayout = false
}

// resolveFrame evaluates the view's expressions against the container.
// Dimensions resolve before positions so Center and AnchorEnd see the final
// size; a nil dimension defaults to the full container extent and a nil
// position to zero.
func (v *View) resolveFrame(container Rect) {
	width := container.Width
	if v.w != nil {
		width = v.w.Resolve(container.Width)
	}
	height := container.Height
	if v.h != nil {
		height = v.h.Resolve(container.Height)
	}
	x := 0
	if v.x != nil {
		x = v.x.Resolve(container.Width, width)
	}
	y := 0
	if v.y != nil {
		y = v.y.Resolve(container.Height, height)
	}
	v.commitFrame(NewRect(x, y, width, height))
}

// layoutOrder returns the subviews ordered so that every view appears after
// the siblings its expressions reference. A view must be positioned only
// after every view it positionally depends on, so views with no unresolved
// dependencies are emitted first; no post-hoc reversal is involved. Views
// with no dependencies between them keep their z-order.
func (v *View) layoutOrder() []*View {
	n := len(v.subviews)
	if n == 0 {
		return nil
	}

	index := make(map[*View]int, n)
	for i, s := range v.subviews {
		index[s] = i
	}

	// deps[i] holds the sibling indices subview i reads frames from.
	// References to views outside this sibling set impose no ordering:
	// they read whatever frame the referenced view currently has.
	deps := make([]map[int]struct{}, n)
	var refs []*View
	for i, s := range v.subviews {
		if s.mode != Computed {
			continue
		}
		refs = refs[:0]
		if s.x != nil {
			refs = s.x.refs(refs)
		}
		if s.y != nil {
			refs = s.y.refs(refs)
		}
		if s.w != nil {
			refs = s.w.refs(refs)
		}
		if s.h != nil {
			refs = s.h.refs(refs)
		}
		for _, dep := range refs {
			j, ok := index[dep]
			if !ok {
				continue
			}
			if deps[i] == nil {
				deps[i] = make(map[int]struct{})
			}
			deps[i][j] = struct{}{}
		}
	}

	order := make([]*View, 0, n)
	done := make([]bool, n)
	for len(order) < n {
		progressed := false
		for i, s := range v.subviews {
			if done[i] {
				continue
			}
			ready := true
			for j := range deps[i] {
				if !done[j] {
					ready = false
					break
				}
			}
			if !ready {
				continue
			}
			order = append(order, s)
			done[i] = true
			progressed = true
		}
		if !progressed {
			stuck := make([]*View, 0, n-len(order))
			for i, s := range v.subviews {
				if !done[i] {
					stuck = append(stuck, s)
				}
			}
			debug.Log("layoutOrder: cycle under %s, %d unresolved views", viewLabel(v), len(stuck))
			panic(&LayoutCycleError{Container: v, Views: stuck})
		}
	}
	return order
}
