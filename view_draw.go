package vista

// Drawing helpers for widget authors. All coordinates are view-local; the
// helpers translate to screen space and draw through the application's
// driver, which enforces the active clip rectangle. On a detached view
// (no application) they are no-ops.

// Move positions the drawing pen at view-local coordinates.
func (v *View) Move(col, row int) {
	drv := v.driver()
	if drv == nil {
		return
	}
	x, y := v.ViewToScreen(col, row, false)
	drv.Move(x, y)
}

// AddRune draws one glyph at view-local coordinates in the given style.
func (v *View) AddRune(col, row int, r rune, style Style) {
	drv := v.driver()
	if drv == nil {
		return
	}
	x, y := v.ViewToScreen(col, row, false)
	drv.SetStyle(style)
	drv.Move(x, y)
	drv.AddRune(r)
}

// AddStr draws a string starting at view-local coordinates in the given
// style. Wide runes advance the pen by their display width.
func (v *View) AddStr(col, row int, text string, style Style) {
	drv := v.driver()
	if drv == nil {
		return
	}
	x, y := v.ViewToScreen(col, row, false)
	drv.SetStyle(style)
	drv.Move(x, y)
	for _, r := range text {
		drv.AddRune(r)
	}
}

// Fill paints the given view-local region with spaces in the given style.
func (v *View) Fill(region Rect, style Style) {
	drv := v.driver()
	if drv == nil {
		return
	}
	region = region.Intersect(v.Bounds())
	if region.IsEmpty() {
		return
	}
	drv.SetStyle(style)
	for row := region.Y; row < region.Bottom(); row++ {
		x, y := v.ViewToScreen(region.X, row, false)
		drv.Move(x, y)
		for col := 0; col < region.Width; col++ {
			drv.AddRune(' ')
		}
	}
}

// Clear fills the whole bounds with the effective scheme's normal style.
func (v *View) Clear() {
	v.Fill(v.Bounds(), v.Scheme().Normal)
}

// DrawHotString draws text at view-local coordinates. The rune following
// the marker is drawn in the hot style (the accelerator); the marker itself
// is not drawn. A doubled marker draws the marker rune literally.
func (v *View) DrawHotString(col, row int, text string, marker rune, normal, hot Style) {
	drv := v.driver()
	if drv == nil {
		return
	}
	x, y := v.ViewToScreen(col, row, false)
	drv.Move(x, y)
	hotNext := false
	for _, r := range text {
		if r == marker && !hotNext {
			hotNext = true
			continue
		}
		if hotNext && r != marker {
			drv.SetStyle(hot)
		} else {
			drv.SetStyle(normal)
		}
		hotNext = false
		drv.AddRune(r)
	}
}

// PositionCursor places the hardware cursor for the view: the cursor hook
// when set, otherwise the view's origin clamped to the visible extent.
// The run loop calls this on the most-focused view after every redraw.
func (v *View) PositionCursor() {
	if v.onPositionCursor != nil {
		v.onPositionCursor(v)
		return
	}
	drv := v.driver()
	if drv == nil {
		return
	}
	x, y := v.ViewToScreen(0, 0, true)
	drv.UpdateCursor(x, y)
}
