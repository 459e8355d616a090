package vista

import "github.com/mattn/go-runewidth"

// Cell represents a single character cell on the screen. Wide characters
// (CJK, emoji) occupy multiple cells; the first cell holds the rune,
// subsequent cells are marked as continuations.
type Cell struct {
	Rune  rune  // The character (0 for continuation cells)
	Style Style // Visual styling
	Width uint8 // Display width (1 or 2; 0 for continuation)
}

// NewCell creates a new Cell with automatic width detection.
func NewCell(r rune, style Style) Cell {
	return Cell{
		Rune:  r,
		Style: style,
		Width: uint8(RuneWidth(r)),
	}
}

// IsContinuation returns true if this cell is a continuation of a wide
// character. Continuation cells have Width == 0 and follow the primary cell.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Equal returns true if both cells are identical.
func (c Cell) Equal(other Cell) bool {
	return c.Rune == other.Rune && c.Style.Equal(other.Style) && c.Width == other.Width
}

// RuneWidth returns the display width of a rune in terminal cells.
// Control characters are given width 1 since they still consume a cell when
// drawn. Everything else defers to the runewidth tables.
func RuneWidth(r rune) int {
	if r < 32 {
		return 1
	}
	w := runewidth.RuneWidth(r)
	if w < 1 {
		return 1
	}
	return w
}
