package trui

import (
	"strconv"
	"unicode/utf8"
)

// escBuilder accumulates escape sequences into a reusable byte buffer.
type escBuilder struct {
	buf []byte
}

func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{buf: make([]byte, 0, capacity)}
}

func (e *escBuilder) Reset()        { e.buf = e.buf[:0] }
func (e *escBuilder) Bytes() []byte { return e.buf }

func (e *escBuilder) csi(params string, final byte) {
	e.buf = append(e.buf, '\x1b', '[')
	e.buf = append(e.buf, params...)
	e.buf = append(e.buf, final)
}

// private sets (on) or resets a DEC private mode.
func (e *escBuilder) private(mode int, on bool) {
	e.buf = append(e.buf, '\x1b', '[', '?')
	e.buf = strconv.AppendInt(e.buf, int64(mode), 10)
	if on {
		e.buf = append(e.buf, 'h')
	} else {
		e.buf = append(e.buf, 'l')
	}
}

// MoveTo positions the cursor at the 0-indexed cell (x, y).
func (e *escBuilder) MoveTo(x, y int) {
	e.buf = append(e.buf, '\x1b', '[')
	e.buf = strconv.AppendInt(e.buf, int64(y+1), 10)
	e.buf = append(e.buf, ';')
	e.buf = strconv.AppendInt(e.buf, int64(x+1), 10)
	e.buf = append(e.buf, 'H')
}

func (e *escBuilder) ClearScreen()     { e.csi("2", 'J') }
func (e *escBuilder) ClearScrollback() { e.csi("3", 'J') }
func (e *escBuilder) ResetStyle()      { e.csi("0", 'm') }

const (
	modeCursor       = 25
	modeMouseButtons = 1000
	modeMouseAny     = 1003
	modeFocus        = 1004
	modeMouseSGR     = 1006
	modeAltScreen    = 1049
	modeSyncUpdate   = 2026
)

func (e *escBuilder) ShowCursor(on bool)     { e.private(modeCursor, on) }
func (e *escBuilder) AltScreen(on bool)      { e.private(modeAltScreen, on) }
func (e *escBuilder) SyncUpdate(on bool)     { e.private(modeSyncUpdate, on) }
func (e *escBuilder) FocusReporting(on bool) { e.private(modeFocus, on) }

// Mouse toggles button, motion and SGR encoded reporting. Motion
// reporting is needed for hover tracking.
func (e *escBuilder) Mouse(on bool) {
	if on {
		e.private(modeMouseButtons, true)
		e.private(modeMouseAny, true)
		e.private(modeMouseSGR, true)
		return
	}
	e.private(modeMouseSGR, false)
	e.private(modeMouseAny, false)
	e.private(modeMouseButtons, false)
}

// SetStyle emits a full SGR sequence for s, degraded to caps.
func (e *escBuilder) SetStyle(s Style, caps Capabilities) {
	e.buf = append(e.buf, '\x1b', '[', '0')
	for _, a := range []struct {
		attr Attr
		code byte
	}{
		{AttrBold, '1'}, {AttrDim, '2'}, {AttrItalic, '3'}, {AttrUnderline, '4'},
		{AttrBlink, '5'}, {AttrReverse, '7'}, {AttrStrikethrough, '9'},
	} {
		if s.HasAttr(a.attr) {
			e.buf = append(e.buf, ';', a.code)
		}
	}
	e.color(caps.EffectiveColor(s.Fg), true)
	e.color(caps.EffectiveColor(s.Bg), false)
	e.buf = append(e.buf, 'm')
}

func (e *escBuilder) color(c Color, fg bool) {
	base := 38
	if !fg {
		base = 48
	}
	switch c.Type() {
	case ColorANSI:
		idx := int(c.ANSI())
		e.buf = append(e.buf, ';')
		switch {
		case idx < 8:
			e.buf = strconv.AppendInt(e.buf, int64(base-8+idx), 10)
		case idx < 16:
			e.buf = strconv.AppendInt(e.buf, int64(base+52+idx-8), 10)
		default:
			e.buf = strconv.AppendInt(e.buf, int64(base), 10)
			e.buf = append(e.buf, ";5;"...)
			e.buf = strconv.AppendInt(e.buf, int64(idx), 10)
		}
	case ColorRGB:
		r, g, b := c.RGB()
		e.buf = append(e.buf, ';')
		e.buf = strconv.AppendInt(e.buf, int64(base), 10)
		e.buf = append(e.buf, ";2;"...)
		e.buf = strconv.AppendInt(e.buf, int64(r), 10)
		e.buf = append(e.buf, ';')
		e.buf = strconv.AppendInt(e.buf, int64(g), 10)
		e.buf = append(e.buf, ';')
		e.buf = strconv.AppendInt(e.buf, int64(b), 10)
	}
}

func (e *escBuilder) WriteRune(r rune) {
	e.buf = utf8.AppendRune(e.buf, r)
}
