package trui

import "github.com/charmbracelet/lipgloss"

// BorderSides selects which sides of a border are drawn.
type BorderSides uint8

const (
	BorderTop BorderSides = 1 << iota
	BorderRight
	BorderBottom
	BorderLeft

	BorderAll = BorderTop | BorderRight | BorderBottom | BorderLeft
)

// Edges returns one cell of inset for each selected side.
func (s BorderSides) Edges() Edges {
	var e Edges
	if s&BorderTop != 0 {
		e.Top = 1
	}
	if s&BorderRight != 0 {
		e.Right = 1
	}
	if s&BorderBottom != 0 {
		e.Bottom = 1
	}
	if s&BorderLeft != 0 {
		e.Left = 1
	}
	return e
}

// BorderKind is the line style of a border.
type BorderKind uint8

const (
	// BorderPlain uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderPlain BorderKind = iota
	// BorderRounded uses rounded corners (╭, ╮, ╰, ╯)
	BorderRounded
	// BorderThick uses heavy box-drawing characters (━, ┃, ┏, etc.)
	BorderThick
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
)

// BorderChars holds the characters used to draw a border.
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

// Chars returns the box-drawing characters for k, taken from the lipgloss
// border presets.
func (k BorderKind) Chars() BorderChars {
	var b lipgloss.Border
	switch k {
	case BorderRounded:
		b = lipgloss.RoundedBorder()
	case BorderThick:
		b = lipgloss.ThickBorder()
	case BorderDouble:
		b = lipgloss.DoubleBorder()
	default:
		b = lipgloss.NormalBorder()
	}
	return BorderChars{
		TopLeft:     firstRune(b.TopLeft),
		Top:         firstRune(b.Top),
		TopRight:    firstRune(b.TopRight),
		Left:        firstRune(b.Left),
		Right:       firstRune(b.Right),
		BottomLeft:  firstRune(b.BottomLeft),
		Bottom:      firstRune(b.Bottom),
		BottomRight: firstRune(b.BottomRight),
	}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

// DrawBorder draws the selected sides of a border along the edges of rect.
// Corners are only drawn where both adjoining sides are. Cells outside the
// buffer are skipped.
func DrawBorder(buf *Buffer, rect Rect, sides BorderSides, kind BorderKind, style Style) {
	if rect.IsEmpty() || sides == 0 {
		return
	}
	chars := kind.Chars()
	top, bottom := sides&BorderTop != 0, sides&BorderBottom != 0
	left, right := sides&BorderLeft != 0, sides&BorderRight != 0
	x0, y0, x1, y1 := rect.X, rect.Y, rect.Right()-1, rect.Bottom()-1

	if top {
		buf.Fill(NewRect(x0, y0, rect.Width, 1), chars.Top, style)
	}
	if bottom {
		buf.Fill(NewRect(x0, y1, rect.Width, 1), chars.Bottom, style)
	}
	if left {
		buf.Fill(NewRect(x0, y0, 1, rect.Height), chars.Left, style)
	}
	if right {
		buf.Fill(NewRect(x1, y0, 1, rect.Height), chars.Right, style)
	}

	if top && left {
		buf.SetRune(x0, y0, chars.TopLeft, style)
	}
	if top && right {
		buf.SetRune(x1, y0, chars.TopRight, style)
	}
	if bottom && left {
		buf.SetRune(x0, y1, chars.BottomLeft, style)
	}
	if bottom && right {
		buf.SetRune(x1, y1, chars.BottomRight, style)
	}
}
