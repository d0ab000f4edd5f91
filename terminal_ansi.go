package trui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ANSITerminal drives a VT compatible terminal with escape sequences.
type ANSITerminal struct {
	out       io.Writer
	outFd     int
	inFd      int
	caps      Capabilities
	esc       *escBuilder
	lastStyle Style
	styleSet  bool
	raw       *term.State
}

var _ Terminal = (*ANSITerminal)(nil)

// NewANSITerminal creates a terminal writing to out and reading modes
// from in. Both must be terminals.
func NewANSITerminal(out, in *os.File) (*ANSITerminal, error) {
	if !isatty.IsTerminal(out.Fd()) || !isatty.IsTerminal(in.Fd()) {
		return nil, ErrNotTerminal
	}
	return NewANSITerminalWithCaps(out, in, DetectCapabilities()), nil
}

// NewANSITerminalWithCaps skips detection and tty checks.
func NewANSITerminalWithCaps(out, in *os.File, caps Capabilities) *ANSITerminal {
	return &ANSITerminal{
		out:   out,
		outFd: int(out.Fd()),
		inFd:  int(in.Fd()),
		caps:  caps,
		esc:   newEscBuilder(4096),
	}
}

func (t *ANSITerminal) emit(build func(e *escBuilder)) error {
	t.esc.Reset()
	build(t.esc)
	_, err := t.out.Write(t.esc.Bytes())
	return err
}

func (t *ANSITerminal) Size() (int, int, error) {
	w, h, err := term.GetSize(t.outFd)
	if err != nil {
		return 0, 0, fmt.Errorf("terminal size: %w", err)
	}
	return w, h, nil
}

// Flush moves the cursor only when a change is not adjacent to the
// previous one and emits styles only when they change.
func (t *ANSITerminal) Flush(changes []CellChange) error {
	if len(changes) == 0 {
		return nil
	}
	return t.emit(func(e *escBuilder) {
		nextX, nextY := -1, -1
		for _, ch := range changes {
			if ch.Cell.IsContinuation() {
				continue
			}
			if ch.X != nextX || ch.Y != nextY {
				e.MoveTo(ch.X, ch.Y)
			}
			if !t.styleSet || !ch.Cell.Style.Equal(t.lastStyle) {
				e.SetStyle(ch.Cell.Style, t.caps)
				t.lastStyle, t.styleSet = ch.Cell.Style, true
			}
			r := ch.Cell.Rune
			if r == 0 || (!t.caps.Unicode && r > 0x7f) {
				r = ' '
			}
			e.WriteRune(r)
			nextX, nextY = ch.X+int(max(ch.Cell.Width, 1)), ch.Y
		}
	})
}

func (t *ANSITerminal) Clear() error {
	t.styleSet = false
	return t.emit(func(e *escBuilder) {
		e.ResetStyle()
		e.MoveTo(0, 0)
		e.ClearScreen()
		e.ClearScrollback()
	})
}

func (t *ANSITerminal) BeginSyncUpdate() error {
	return t.emit(func(e *escBuilder) { e.SyncUpdate(true) })
}

func (t *ANSITerminal) EndSyncUpdate() error {
	return t.emit(func(e *escBuilder) { e.SyncUpdate(false) })
}

func (t *ANSITerminal) EnterRawMode() error {
	if t.raw != nil {
		return nil
	}
	state, err := term.MakeRaw(t.inFd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	t.raw = state
	return nil
}

func (t *ANSITerminal) ExitRawMode() error {
	if t.raw == nil {
		return nil
	}
	err := term.Restore(t.inFd, t.raw)
	t.raw = nil
	if err != nil {
		return fmt.Errorf("exit raw mode: %w", err)
	}
	return nil
}

func (t *ANSITerminal) EnterAltScreen() error {
	if !t.caps.AltScreen {
		return nil
	}
	return t.emit(func(e *escBuilder) { e.AltScreen(true) })
}

func (t *ANSITerminal) ExitAltScreen() error {
	if !t.caps.AltScreen {
		return nil
	}
	return t.emit(func(e *escBuilder) {
		e.ResetStyle()
		e.AltScreen(false)
	})
}

func (t *ANSITerminal) HideCursor() error {
	return t.emit(func(e *escBuilder) { e.ShowCursor(false) })
}

func (t *ANSITerminal) ShowCursor() error {
	return t.emit(func(e *escBuilder) { e.ShowCursor(true) })
}

func (t *ANSITerminal) EnableMouse() error {
	return t.emit(func(e *escBuilder) { e.Mouse(true) })
}

func (t *ANSITerminal) DisableMouse() error {
	return t.emit(func(e *escBuilder) { e.Mouse(false) })
}

func (t *ANSITerminal) EnableFocusReporting() error {
	return t.emit(func(e *escBuilder) { e.FocusReporting(true) })
}

func (t *ANSITerminal) DisableFocusReporting() error {
	return t.emit(func(e *escBuilder) { e.FocusReporting(false) })
}

func (t *ANSITerminal) Caps() Capabilities {
	return t.caps
}
