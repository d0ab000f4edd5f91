package trui

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorCapability is the level of color support of a terminal.
type ColorCapability int

const (
	ColorNone ColorCapability = iota
	Color16
	Color256
	ColorTrue
)

func (c ColorCapability) String() string {
	switch c {
	case ColorNone:
		return "no-color"
	case Color16:
		return "16-color"
	case Color256:
		return "256-color"
	case ColorTrue:
		return "true-color"
	}
	return "unknown"
}

// Capabilities describes what a terminal can render.
type Capabilities struct {
	Colors    ColorCapability
	Unicode   bool
	AltScreen bool
}

// DetectCapabilities inspects the environment of the current process.
// It honors NO_COLOR and CLICOLOR_FORCE.
func DetectCapabilities() Capabilities {
	caps := Capabilities{
		Colors:    fromProfile(termenv.EnvColorProfile()),
		Unicode:   true,
		AltScreen: true,
	}
	if strings.EqualFold(os.Getenv("TERM"), "dumb") {
		caps.Unicode = false
		caps.AltScreen = false
	}
	return caps
}

func fromProfile(p termenv.Profile) ColorCapability {
	switch p {
	case termenv.TrueColor:
		return ColorTrue
	case termenv.ANSI256:
		return Color256
	case termenv.ANSI:
		return Color16
	}
	return ColorNone
}

// EffectiveColor degrades color to what the terminal can show.
func (c Capabilities) EffectiveColor(color Color) Color {
	switch color.Type() {
	case ColorRGB:
		switch {
		case c.Colors >= ColorTrue:
			return color
		case c.Colors == Color256:
			return color.ToANSI()
		case c.Colors == Color16:
			return color.toBasic()
		}
		return DefaultColor()
	case ColorANSI:
		switch {
		case c.Colors >= Color256:
			return color
		case c.Colors == Color16:
			return color.toBasic()
		}
		return DefaultColor()
	}
	return color
}

func (c Capabilities) String() string {
	parts := []string{c.Colors.String()}
	if c.Unicode {
		parts = append(parts, "unicode")
	} else {
		parts = append(parts, "ascii")
	}
	if c.AltScreen {
		parts = append(parts, "altscreen")
	}
	return strings.Join(parts, ", ")
}
