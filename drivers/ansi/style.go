package ansidriver

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/vistaterm/vista"
)

// SetStyle emits the SGR sequence for a style, degraded to what the
// terminal can represent. The sequence always starts from a reset so the
// previous cell's attributes never leak.
func (e *escBuilder) SetStyle(s vista.Style, caps vista.Capabilities) {
	st := ansi.Style{}

	if s.Attrs&vista.AttrBold != 0 {
		st = st.Bold()
	}
	if s.Attrs&vista.AttrDim != 0 {
		st = st.Faint()
	}
	if s.Attrs&vista.AttrItalic != 0 {
		st = st.Italic()
	}
	if s.Attrs&vista.AttrUnderline != 0 {
		st = st.Underline()
	}
	if s.Attrs&vista.AttrBlink != 0 {
		st = st.SlowBlink()
	}
	if s.Attrs&vista.AttrReverse != 0 {
		st = st.Reverse()
	}

	if fg := caps.EffectiveColor(s.Fg); !fg.IsDefault() {
		st = st.ForegroundColor(toAnsiColor(fg))
	}
	if bg := caps.EffectiveColor(s.Bg); !bg.IsDefault() {
		st = st.BackgroundColor(toAnsiColor(bg))
	}

	e.buf.WriteString(ansi.ResetStyle)
	e.buf.WriteString(st.String())
}

// ResetStyle emits a bare SGR reset.
func (e *escBuilder) ResetStyle() {
	e.buf.WriteString(ansi.ResetStyle)
}

func toAnsiColor(c vista.Color) ansi.Color {
	switch c.Type() {
	case vista.ColorANSI:
		idx := c.ANSI()
		if idx < 16 {
			return ansi.BasicColor(idx)
		}
		return ansi.ExtendedColor(idx)
	case vista.ColorRGB:
		r, g, b := c.RGB()
		return ansi.TrueColor(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
	}
	return ansi.BasicColor(0)
}
