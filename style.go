package trui

// Attr is a set of text attributes.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrStrikethrough
)

// AttrNone is the empty attribute set.
const AttrNone Attr = 0

// Style is the foreground, background and attributes of a cell. The zero
// value is the terminal default.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// NewStyle returns the default style.
func NewStyle() Style {
	return Style{}
}

func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

func (s Style) Bold() Style      { return s.with(AttrBold) }
func (s Style) Dim() Style       { return s.with(AttrDim) }
func (s Style) Italic() Style    { return s.with(AttrItalic) }
func (s Style) Underline() Style { return s.with(AttrUnderline) }
func (s Style) Reverse() Style   { return s.with(AttrReverse) }

func (s Style) with(a Attr) Style {
	s.Attrs |= a
	return s
}

// Patch overlays the non-default parts of other onto s.
func (s Style) Patch(other Style) Style {
	if !other.Fg.IsDefault() {
		s.Fg = other.Fg
	}
	if !other.Bg.IsDefault() {
		s.Bg = other.Bg
	}
	s.Attrs |= other.Attrs
	return s
}

// Equal reports whether both styles render identically.
func (s Style) Equal(other Style) bool {
	return s.Fg.Equal(other.Fg) && s.Bg.Equal(other.Bg) && s.Attrs == other.Attrs
}

// HasAttr reports whether all attributes in a are set.
func (s Style) HasAttr(a Attr) bool {
	return s.Attrs&a == a
}
