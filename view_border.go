package vista

// BorderStyle represents different styles of box borders.
type BorderStyle int

const (
	// BorderNone indicates no border should be drawn.
	BorderNone BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderRounded uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRounded
	// BorderThick uses thick/heavy box-drawing characters (━, ┃, ┏, etc.)
	BorderThick
)

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// Chars returns the box-drawing characters for this border style.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderSingle:
		return BorderChars{
			TopLeft:     '┌',
			Top:         '─',
			TopRight:    '┐',
			Left:        '│',
			Right:       '│',
			BottomLeft:  '└',
			Bottom:      '─',
			BottomRight: '┘',
		}
	case BorderDouble:
		return BorderChars{
			TopLeft:     '╔',
			Top:         '═',
			TopRight:    '╗',
			Left:        '║',
			Right:       '║',
			BottomLeft:  '╚',
			Bottom:      '═',
			BottomRight: '╝',
		}
	case BorderRounded:
		return BorderChars{
			TopLeft:     '╭',
			Top:         '─',
			TopRight:    '╮',
			Left:        '│',
			Right:       '│',
			BottomLeft:  '╰',
			Bottom:      '─',
			BottomRight: '╯',
		}
	case BorderThick:
		return BorderChars{
			TopLeft:     '┏',
			Top:         '━',
			TopRight:    '┓',
			Left:        '┃',
			Right:       '┃',
			BottomLeft:  '┗',
			Bottom:      '━',
			BottomRight: '┛',
		}
	default:
		return BorderChars{
			TopLeft:     ' ',
			Top:         ' ',
			TopRight:    ' ',
			Left:        ' ',
			Right:       ' ',
			BottomLeft:  ' ',
			Bottom:      ' ',
			BottomRight: ' ',
		}
	}
}

// DrawBorder draws a box border just inside the given view-local rectangle.
// Rectangles smaller than 2x2 cannot hold a border and are skipped.
func (v *View) DrawBorder(rect Rect, border BorderStyle, style Style) {
	if border == BorderNone || rect.Width < 2 || rect.Height < 2 {
		return
	}
	chars := border.Chars()

	left := rect.X
	right := rect.Right() - 1
	top := rect.Y
	bottom := rect.Bottom() - 1

	v.AddRune(left, top, chars.TopLeft, style)
	v.AddRune(right, top, chars.TopRight, style)
	v.AddRune(left, bottom, chars.BottomLeft, style)
	v.AddRune(right, bottom, chars.BottomRight, style)

	for x := left + 1; x < right; x++ {
		v.AddRune(x, top, chars.Top, style)
		v.AddRune(x, bottom, chars.Bottom, style)
	}
	for y := top + 1; y < bottom; y++ {
		v.AddRune(left, y, chars.Left, style)
		v.AddRune(right, y, chars.Right, style)
	}
}
