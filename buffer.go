package trui

import "strings"

// Buffer is a double buffered cell grid. Widgets paint into the back
// buffer; Render sends the cells that differ from the front buffer and
// then swaps.
type Buffer struct {
	front  []Cell
	back   []Cell
	width  int
	height int
}

// CellChange is one cell that differs between the front and back buffers.
type CellChange struct {
	X, Y int
	Cell Cell
}

// NewBuffer creates a blank buffer of the given size.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

func newCells(n int) []Cell {
	cells := make([]Cell, n)
	for i := range cells {
		cells[i] = blankCell
	}
	return cells
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// Rect is the whole buffer area.
func (b *Buffer) Rect() Rect {
	return NewRect(0, 0, b.width, b.height)
}

func (b *Buffer) index(x, y int) (int, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, false
	}
	return y*b.width + x, true
}

// Cell returns the back buffer cell at (x, y), or the zero Cell when out
// of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	if i, ok := b.index(x, y); ok {
		return b.back[i]
	}
	return Cell{}
}

// SetCell stores c at (x, y). Out of bounds writes are dropped.
func (b *Buffer) SetCell(x, y int, c Cell) {
	if i, ok := b.index(x, y); ok {
		b.back[i] = c
	}
}

// SetRune writes r at (x, y). Overwriting either half of a wide rune
// blanks the other half. A wide rune that does not fit in the last
// column is replaced with a blank.
func (b *Buffer) SetRune(x, y int, r rune, style Style) {
	if _, ok := b.index(x, y); !ok {
		return
	}
	w := RuneWidth(r)
	b.breakWide(x, y)
	if w == 2 {
		if x+1 >= b.width {
			b.SetCell(x, y, Cell{Rune: ' ', Style: style, Width: 1})
			return
		}
		b.breakWide(x+1, y)
		b.SetCell(x, y, Cell{Rune: r, Style: style, Width: 2})
		b.SetCell(x+1, y, continuationCell(style))
		return
	}
	b.SetCell(x, y, Cell{Rune: r, Style: style, Width: 1})
}

// breakWide blanks the wide rune that covers (x, y), if any.
func (b *Buffer) breakWide(x, y int) {
	c := b.Cell(x, y)
	switch {
	case c.IsContinuation():
		b.SetCell(x-1, y, blankCell)
		b.SetCell(x, y, blankCell)
	case c.Width == 2:
		b.SetCell(x, y, blankCell)
		b.SetCell(x+1, y, blankCell)
	}
}

// SetString writes s from (x, y) without wrapping and returns the width
// written.
func (b *Buffer) SetString(x, y int, s string, style Style) int {
	return b.SetStringClipped(x, y, s, style, b.Rect())
}

// SetStringClipped writes s from (x, y) keeping only the runes that lie
// entirely inside clip. It returns the width written.
func (b *Buffer) SetStringClipped(x, y int, s string, style Style, clip Rect) int {
	clip = clip.Intersect(b.Rect())
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}
	written := 0
	cur := x
	for _, r := range s {
		if cur >= clip.Right() {
			break
		}
		w := RuneWidth(r)
		if cur >= clip.X && cur+w <= clip.Right() {
			b.SetRune(cur, y, r, style)
			written += w
		}
		cur += w
	}
	return written
}

// Fill sets every cell of rect to r.
func (b *Buffer) Fill(rect Rect, r rune, style Style) {
	rect = rect.Intersect(b.Rect())
	w := RuneWidth(r)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x += w {
			if w == 2 && x+1 >= rect.Right() {
				b.SetRune(x, y, ' ', style)
				break
			}
			b.SetRune(x, y, r, style)
		}
	}
}

// Clear blanks the whole back buffer.
func (b *Buffer) Clear() {
	for i := range b.back {
		b.back[i] = blankCell
	}
}

// ClearRect blanks rect, including wide runes that straddle its edges.
func (b *Buffer) ClearRect(rect Rect) {
	b.Fill(rect, ' ', Style{})
}

// Diff lists the back buffer cells that differ from the front buffer in
// row-major order.
func (b *Buffer) Diff() []CellChange {
	var changes []CellChange
	for i := range b.back {
		if !b.back[i].Equal(b.front[i]) {
			changes = append(changes, CellChange{X: i % b.width, Y: i / b.width, Cell: b.back[i]})
		}
	}
	return changes
}

// Swap makes the back buffer the displayed state.
func (b *Buffer) Swap() {
	copy(b.front, b.back)
}

// Invalidate forgets the displayed state so the next Diff reports every
// cell.
func (b *Buffer) Invalidate() {
	for i := range b.front {
		b.front[i] = Cell{Rune: -1}
	}
}

// String returns the back buffer text, one line per row.
func (b *Buffer) String() string {
	return b.text(false)
}

// StringTrimmed is String with trailing blanks removed from each row.
func (b *Buffer) StringTrimmed() string {
	return b.text(true)
}

func (b *Buffer) text(trim bool) string {
	lines := make([]string, b.height)
	for y := range lines {
		var sb strings.Builder
		for _, c := range b.back[y*b.width : (y+1)*b.width] {
			switch {
			case c.IsContinuation():
			case c.Rune == 0:
				sb.WriteByte(' ')
			default:
				sb.WriteRune(c.Rune)
			}
		}
		lines[y] = sb.String()
		if trim {
			lines[y] = strings.TrimRight(lines[y], " ")
		}
	}
	return strings.Join(lines, "\n")
}

// Resize changes the dimensions and blanks both buffers. The next frame
// is expected to be a full redraw.
func (b *Buffer) Resize(width, height int) {
	width, height = max(0, width), max(0, height)
	if width == b.width && height == b.height && b.back != nil {
		return
	}
	b.width, b.height = width, height
	b.front = newCells(width * height)
	b.back = newCells(width * height)
}
