package vista

// SetNeedsDisplay marks the view's entire bounds as needing repaint.
func (v *View) SetNeedsDisplay() {
	v.SetNeedsDisplayRect(v.Bounds())
}

// SetNeedsDisplayRect unions region (in local coordinates) into the view's
// dirty region. Accumulation is by bounding box, not exact shape: redraw may
// over-paint but never under-paints.
//
// Every ancestor learns that a descendant is dirty, and the region is pushed
// down into overlapping subviews in their local coordinates so descendant
// dirty state stays consistent when an ancestor's area changes.
func (v *View) SetNeedsDisplayRect(region Rect) {
	if region.IsEmpty() {
		return
	}
	for cur := v.superview; cur != nil; cur = cur.superview {
		cur.childDirty = true
	}
	v.markDown(region)
}

// markDown unions the region into the view and recurses into overlapping
// subviews without re-walking the ancestor chain.
func (v *View) markDown(region Rect) {
	v.dirty = v.dirty.Union(region)
	for _, s := range v.subviews {
		overlap := region.Intersect(s.frame)
		if overlap.IsEmpty() {
			continue
		}
		v.childDirty = true
		s.markDown(overlap.Translate(-s.frame.X, -s.frame.Y))
	}
}

// NeedsDisplay reports whether the view itself has damage to repaint.
func (v *View) NeedsDisplay() bool { return !v.dirty.IsEmpty() }

// ChildNeedsDisplay reports whether some descendant has damage.
func (v *View) ChildNeedsDisplay() bool { return v.childDirty }

// DirtyRegion returns the accumulated damage in local coordinates.
func (v *View) DirtyRegion() Rect { return v.dirty }

func (v *View) clearNeedsDisplay() {
	v.dirty = Rect{}
	v.childDirty = false
}

// Redraw repaints the requested region (local coordinates): the view's own
// content through the OnDraw hook (or a background fill in the effective
// scheme), then every dirty subview overlapping the region, front subviews
// painted last. Flags are cleared per view only after that view's paint and
// subview traversal complete, so a pass aborted by a panicking hook leaves
// the remaining dirty state intact and the next run-loop iteration repaints
// it.
func (v *View) Redraw(region Rect) {
	region = region.Union(v.dirty).Intersect(v.Bounds())
	if !region.IsEmpty() {
		if v.onDraw != nil {
			v.onDraw(v, region)
		} else {
			v.Fill(region, v.drawStyle())
		}
	}
	if !region.IsEmpty() || v.childDirty {
		v.redrawSubviews(region)
	}
	v.clearNeedsDisplay()
}

// redrawSubviews repaints every subview that overlaps region or carries
// damage of its own. A dirty subview outside region still repaints: its
// damage was recorded in its own coordinates and does not depend on what
// the superview painted.
func (v *View) redrawSubviews(region Rect) {
	for _, s := range v.subviews {
		overlap := region.Intersect(s.frame)
		if overlap.IsEmpty() && !s.NeedsDisplay() && !s.childDirty {
			continue
		}
		local := Rect{}
		if !overlap.IsEmpty() {
			local = overlap.Translate(-s.frame.X, -s.frame.Y)
		}
		if drv := v.driver(); drv != nil {
			prev := drv.Clip()
			sx, sy := s.ViewToScreen(0, 0, false)
			drv.SetClip(prev.Intersect(NewRect(sx, sy, s.frame.Width, s.frame.Height)))
			s.Redraw(local)
			drv.SetClip(prev)
		} else {
			s.Redraw(local)
		}
	}
}

// drawStyle returns the style for the view's own background: the scheme's
// focus style while focused, otherwise the normal style.
func (v *View) drawStyle() Style {
	sch := v.Scheme()
	if v.hasFocus {
		return sch.Focus
	}
	return sch.Normal
}

func (v *View) driver() Driver {
	if v.app == nil {
		return nil
	}
	return v.app.driver
}
