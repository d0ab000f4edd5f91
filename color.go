package trui

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// ColorType distinguishes the encodings a Color can carry.
type ColorType uint8

const (
	ColorDefault ColorType = iota
	ColorANSI
	ColorRGB
)

// Color is a terminal color. The zero value is the terminal default.
type Color struct {
	typ     ColorType
	r, g, b uint8
}

// DefaultColor is the terminal's own foreground or background.
func DefaultColor() Color {
	return Color{}
}

// ANSIColor is an entry of the 256 color palette.
func ANSIColor(index uint8) Color {
	return Color{typ: ColorANSI, r: index}
}

// RGBColor is a 24-bit color.
func RGBColor(r, g, b uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b}
}

// HexColor parses "#RRGGBB" or "#RGB". The leading '#' is optional.
func HexColor(hex string) (Color, error) {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return RGBColor(r, g, b), nil
}

var (
	Black   = ANSIColor(0)
	Red     = ANSIColor(1)
	Green   = ANSIColor(2)
	Yellow  = ANSIColor(3)
	Blue    = ANSIColor(4)
	Magenta = ANSIColor(5)
	Cyan    = ANSIColor(6)
	White   = ANSIColor(7)

	BrightBlack = ANSIColor(8)
	BrightWhite = ANSIColor(15)
)

func (c Color) Type() ColorType {
	return c.typ
}

func (c Color) IsDefault() bool {
	return c.typ == ColorDefault
}

// ANSI returns the palette index. It panics for other color types.
func (c Color) ANSI() uint8 {
	if c.typ != ColorANSI {
		panic("trui: ANSI on non-palette color")
	}
	return c.r
}

// RGB returns the components. It panics for other color types.
func (c Color) RGB() (r, g, b uint8) {
	if c.typ != ColorRGB {
		panic("trui: RGB on non-RGB color")
	}
	return c.r, c.g, c.b
}

func (c Color) Equal(other Color) bool {
	return c == other
}

// Hex formats an RGB color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// ToANSI approximates an RGB color with the nearest palette entry.
// Other color types are returned unchanged.
func (c Color) ToANSI() Color {
	if c.typ != ColorRGB {
		return c
	}
	switch conv := termenv.ANSI256.Convert(termenv.RGBColor(c.Hex())).(type) {
	case termenv.ANSI256Color:
		return ANSIColor(uint8(conv))
	case termenv.ANSIColor:
		return ANSIColor(uint8(conv))
	}
	return DefaultColor()
}

// toBasic approximates a color with one of the 16 basic palette entries.
func (c Color) toBasic() Color {
	var tc termenv.Color
	switch c.typ {
	case ColorRGB:
		tc = termenv.RGBColor(c.Hex())
	case ColorANSI:
		if c.r < 16 {
			return c
		}
		tc = termenv.ANSI256Color(int(c.r))
	default:
		return c
	}
	if conv, ok := termenv.ANSI.Convert(tc).(termenv.ANSIColor); ok {
		return ANSIColor(uint8(conv))
	}
	return DefaultColor()
}
