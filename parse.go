package trui

import "unicode/utf8"

// parseInput decodes raw terminal input. Bytes that may be the start of
// an unfinished escape sequence or UTF-8 rune are returned as rest so the
// caller can prepend them to the next read. A lone trailing ESC is only
// held back when more is set; otherwise it is the Escape key.
func parseInput(data []byte, more bool) (events []Event, rest []byte) {
	for len(data) > 0 {
		ev, n := parseOne(data)
		if n == 0 {
			if more {
				return events, data
			}
			// Nothing more is coming: the fragment is an Escape followed
			// by ordinary input.
			if data[0] == 0x1b {
				events = append(events, KeyEvent{Key: KeyEscape})
				data = data[1:]
				continue
			}
			return events, nil
		}
		if ev != nil {
			events = append(events, ev)
		}
		data = data[n:]
	}
	return events, nil
}

// parseOne decodes the event at the start of data. It returns n == 0 when
// data holds an incomplete sequence and ev == nil for sequences that are
// recognized but carry no event.
func parseOne(data []byte) (ev Event, n int) {
	b := data[0]
	switch {
	case b == 0x1b:
		return parseEscape(data)
	case b == 0x7f:
		return KeyEvent{Key: KeyBackspace}, 1
	case b < 0x20:
		return KeyEvent{Key: controlToKey(b)}, 1
	}
	if !utf8.FullRune(data) {
		return nil, 0
	}
	r, size := utf8.DecodeRune(data)
	if r == utf8.RuneError && size == 1 {
		return nil, 1
	}
	return KeyEvent{Key: KeyRune, Rune: r}, size
}

func parseEscape(data []byte) (Event, int) {
	if len(data) == 1 {
		return nil, 0
	}
	switch next := data[1]; {
	case next == '[':
		if len(data) > 2 && data[2] == '<' {
			return parseMouseSGR(data)
		}
		return parseCSI(data)
	case next == 'O':
		if len(data) < 3 {
			return nil, 0
		}
		if key := ss3Key(data[2]); key != KeyNone {
			return KeyEvent{Key: key}, 3
		}
		return KeyEvent{Key: KeyEscape}, 1
	case next == 0x1b:
		return KeyEvent{Key: KeyEscape}, 1
	case next >= 0x20 && next < 0x7f:
		return KeyEvent{Key: KeyRune, Rune: rune(next), Mod: ModAlt}, 2
	case next < 0x20:
		return KeyEvent{Key: controlToKey(next), Mod: ModAlt}, 2
	}
	return KeyEvent{Key: KeyEscape}, 1
}

// controlToKey maps C0 control bytes. Tab, Enter and Backspace win over
// their Ctrl+letter aliases.
func controlToKey(b byte) Key {
	switch b {
	case 0x00:
		return KeyCtrlSpace
	case 0x08:
		return KeyBackspace
	case 0x09:
		return KeyTab
	case 0x0d:
		return KeyEnter
	case 0x1b:
		return KeyEscape
	}
	if b >= 0x01 && b <= 0x1a {
		return KeyCtrlA + Key(b-0x01)
	}
	return KeyNone
}

// csiParams reads "n;n;...F" after the CSI introducer at data[start].
// It returns the final byte and the index just past it, or 0 when the
// sequence is unfinished, or -1 when it is malformed.
func csiParams(data []byte, start int) (params []int, final byte, end int) {
	cur, has := 0, false
	for i := start; i < len(data); i++ {
		switch b := data[i]; {
		case b >= '0' && b <= '9':
			cur = cur*10 + int(b-'0')
			has = true
		case b == ';':
			params = append(params, cur)
			cur, has = 0, false
		case b >= 0x40 && b <= 0x7e:
			if has {
				params = append(params, cur)
			}
			return params, b, i + 1
		default:
			return nil, 0, -1
		}
	}
	return nil, 0, 0
}

var tildeKeys = map[int]Key{
	1: KeyHome, 2: KeyInsert, 3: KeyDelete, 4: KeyEnd, 5: KeyPageUp, 6: KeyPageDown,
	11: KeyF1, 12: KeyF2, 13: KeyF3, 14: KeyF4, 15: KeyF5, 17: KeyF6,
	18: KeyF7, 19: KeyF8, 20: KeyF9, 21: KeyF10, 23: KeyF11, 24: KeyF12,
}

func parseCSI(data []byte) (Event, int) {
	params, final, end := csiParams(data, 2)
	switch {
	case end == 0:
		return nil, 0
	case end < 0:
		return KeyEvent{Key: KeyEscape}, 1
	}
	var mod Modifier
	if len(params) >= 2 {
		mod = decodeModifier(params[1])
	}
	switch final {
	case 'I':
		return FocusEvent{Gained: true}, end
	case 'O':
		return FocusEvent{Gained: false}, end
	case 'Z':
		return KeyEvent{Key: KeyTab, Mod: ModShift}, end
	case '~':
		if len(params) > 0 {
			if key, ok := tildeKeys[params[0]]; ok {
				return KeyEvent{Key: key, Mod: mod}, end
			}
		}
		return nil, end
	}
	if key := ss3Key(final); key != KeyNone {
		return KeyEvent{Key: key, Mod: mod}, end
	}
	return nil, end
}

// ss3Key maps the final byte shared by SS3 and xterm CSI cursor keys.
func ss3Key(b byte) Key {
	switch b {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	case 'H':
		return KeyHome
	case 'F':
		return KeyEnd
	case 'P':
		return KeyF1
	case 'Q':
		return KeyF2
	case 'R':
		return KeyF3
	case 'S':
		return KeyF4
	}
	return KeyNone
}

// decodeModifier decodes the xterm parameter 1 + shift + 2*alt + 4*ctrl.
func decodeModifier(param int) Modifier {
	if param <= 1 {
		return ModNone
	}
	bits := param - 1
	var mod Modifier
	if bits&1 != 0 {
		mod |= ModShift
	}
	if bits&2 != 0 {
		mod |= ModAlt
	}
	if bits&4 != 0 {
		mod |= ModCtrl
	}
	return mod
}

// parseMouseSGR decodes "ESC [ < b ; x ; y M|m". In b, bits 0-1 select
// the button, bits 2-4 are shift, alt and ctrl, bit 5 marks motion and
// bit 6 marks the wheel.
func parseMouseSGR(data []byte) (Event, int) {
	params, final, end := csiParams(data, 3)
	switch {
	case end == 0:
		return nil, 0
	case end < 0 || len(params) != 3 || (final != 'M' && final != 'm'):
		return KeyEvent{Key: KeyEscape}, 1
	}
	b := params[0]
	ev := MouseEvent{X: params[1] - 1, Y: params[2] - 1}
	if b&4 != 0 {
		ev.Mod |= ModShift
	}
	if b&8 != 0 {
		ev.Mod |= ModAlt
	}
	if b&16 != 0 {
		ev.Mod |= ModCtrl
	}
	if b&64 != 0 {
		ev.Button = MouseWheelUp
		if b&1 != 0 {
			ev.Button = MouseWheelDown
		}
		return ev, end
	}
	ev.Button = [...]MouseButton{MouseLeft, MouseMiddle, MouseRight, MouseNone}[b&3]
	switch {
	case b&32 != 0 && ev.Button == MouseNone:
		ev.Action = MouseMotion
	case b&32 != 0:
		ev.Action = MouseDrag
	case final == 'M':
		ev.Action = MousePress
	default:
		ev.Action = MouseRelease
	}
	return ev, end
}
