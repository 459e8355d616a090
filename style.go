package vista

// Attr represents text attributes as a bitfield for efficient comparison.
type Attr uint8

const (
	// AttrNone represents no text attributes.
	AttrNone Attr = 0
	// AttrBold makes text bold/bright.
	AttrBold Attr = 1 << iota
	// AttrDim makes text dimmed/faint.
	AttrDim
	// AttrItalic makes text italic.
	AttrItalic
	// AttrUnderline underlines the text.
	AttrUnderline
	// AttrBlink makes text blink (rarely supported).
	AttrBlink
	// AttrReverse swaps foreground and background colors.
	AttrReverse
)

// Style combines text attributes with foreground and background colors.
// Zero value represents default styling (no attributes, default colors).
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// NewStyle returns a new Style with default colors and no attributes.
func NewStyle() Style {
	return Style{}
}

// Foreground returns a new Style with the given foreground color.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a new Style with the given background color.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// Bold returns a new Style with the bold attribute set.
func (s Style) Bold() Style {
	s.Attrs |= AttrBold
	return s
}

// Underline returns a new Style with the underline attribute set.
func (s Style) Underline() Style {
	s.Attrs |= AttrUnderline
	return s
}

// Reverse returns a new Style with the reverse attribute set.
func (s Style) Reverse() Style {
	s.Attrs |= AttrReverse
	return s
}

// Equal returns true if both styles are identical.
func (s Style) Equal(other Style) bool {
	return s.Fg.Equal(other.Fg) && s.Bg.Equal(other.Bg) && s.Attrs == other.Attrs
}

// ColorScheme groups the styles a view draws itself with. A view without a
// scheme of its own inherits its parent's at read time; the scheme is not
// copied down the tree.
type ColorScheme struct {
	// Normal is used for regular content.
	Normal Style
	// Focus is used while the view holds focus.
	Focus Style
	// HotNormal is used for the accelerator character of an unfocused view.
	HotNormal Style
	// HotFocus is used for the accelerator character of a focused view.
	HotFocus Style
}

// DefaultScheme returns a conservative scheme that renders on any terminal:
// default colors for normal content, reverse video for focus.
func DefaultScheme() *ColorScheme {
	return &ColorScheme{
		Normal:    NewStyle(),
		Focus:     NewStyle().Reverse(),
		HotNormal: NewStyle().Underline(),
		HotFocus:  NewStyle().Reverse().Underline(),
	}
}
