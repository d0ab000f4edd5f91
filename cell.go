package trui

import "github.com/mattn/go-runewidth"

// Cell is one character cell of the screen. A wide rune occupies its own
// cell plus a continuation cell with Width 0 to its right.
type Cell struct {
	Rune  rune
	Style Style
	Width uint8
}

// NewCell creates a Cell, measuring the display width of r.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style, Width: uint8(RuneWidth(r))}
}

func continuationCell(style Style) Cell {
	return Cell{Style: style}
}

var blankCell = Cell{Rune: ' ', Width: 1}

// IsContinuation reports whether c is the right half of a wide rune.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Equal reports whether both cells render identically.
func (c Cell) Equal(other Cell) bool {
	return c.Rune == other.Rune && c.Width == other.Width && c.Style.Equal(other.Style)
}

// IsEmpty reports whether c is a blank with default style.
func (c Cell) IsEmpty() bool {
	return c.Rune == 0 || (c.Rune == ' ' && c.Style.Equal(Style{}))
}

// RuneWidth is the number of cells r occupies: 1 or 2. Zero width and
// control runes are given a full cell so every rune remains addressable.
func RuneWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w == 2 {
		return 2
	}
	return 1
}

// StringWidth is the display width of s in cells.
func StringWidth(s string) int {
	n := 0
	for _, r := range s {
		n += RuneWidth(r)
	}
	return n
}
