package trui

import (
	"strings"
	"sync"
)

// MockTerminal is an in-memory Terminal for tests. It records the cells
// it was sent and the modes it was put in. It is safe to inspect from a
// test goroutine while an app renders into it.
type MockTerminal struct {
	mu            sync.Mutex
	width, height int
	cells         []Cell
	caps          Capabilities

	rawMode, altScreen, mouse, focus, cursorHidden bool

	frames     int
	syncDepth  int
	clearCount int
	sizeErr    error
}

var _ Terminal = (*MockTerminal)(nil)

// NewMockTerminal creates a blank mock terminal.
func NewMockTerminal(width, height int) *MockTerminal {
	return &MockTerminal{
		width:  width,
		height: height,
		cells:  newCells(width * height),
		caps:   Capabilities{Colors: ColorTrue, Unicode: true, AltScreen: true},
	}
}

func (m *MockTerminal) Size() (int, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sizeErr != nil {
		return 0, 0, m.sizeErr
	}
	return m.width, m.height, nil
}

// FailSize makes Size return err until it is called with nil.
func (m *MockTerminal) FailSize(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sizeErr = err
}

func (m *MockTerminal) Flush(changes []CellChange) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ch := range changes {
		if ch.X >= 0 && ch.X < m.width && ch.Y >= 0 && ch.Y < m.height {
			m.cells[ch.Y*m.width+ch.X] = ch.Cell
		}
	}
	return nil
}

func (m *MockTerminal) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.cells {
		m.cells[i] = blankCell
	}
	m.clearCount++
	return nil
}

func (m *MockTerminal) BeginSyncUpdate() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.syncDepth++
	return nil
}

// EndSyncUpdate closes a frame. Every closed frame is counted.
func (m *MockTerminal) EndSyncUpdate() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.syncDepth--
	m.frames++
	return nil
}

func (m *MockTerminal) setMode(mode *bool, on bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	*mode = on
	return nil
}

func (m *MockTerminal) EnterRawMode() error          { return m.setMode(&m.rawMode, true) }
func (m *MockTerminal) ExitRawMode() error           { return m.setMode(&m.rawMode, false) }
func (m *MockTerminal) EnterAltScreen() error        { return m.setMode(&m.altScreen, true) }
func (m *MockTerminal) ExitAltScreen() error         { return m.setMode(&m.altScreen, false) }
func (m *MockTerminal) HideCursor() error            { return m.setMode(&m.cursorHidden, true) }
func (m *MockTerminal) ShowCursor() error            { return m.setMode(&m.cursorHidden, false) }
func (m *MockTerminal) EnableMouse() error           { return m.setMode(&m.mouse, true) }
func (m *MockTerminal) DisableMouse() error          { return m.setMode(&m.mouse, false) }
func (m *MockTerminal) EnableFocusReporting() error  { return m.setMode(&m.focus, true) }
func (m *MockTerminal) DisableFocusReporting() error { return m.setMode(&m.focus, false) }

func (m *MockTerminal) Caps() Capabilities {
	return m.caps
}

// Resize changes the reported size and blanks the screen.
func (m *MockTerminal) Resize(width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.width, m.height = width, height
	m.cells = newCells(width * height)
}

// Frames is the number of completed synchronized updates.
func (m *MockTerminal) Frames() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frames
}

// Clears is the number of full screen clears.
func (m *MockTerminal) Clears() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clearCount
}

// InSyncUpdate reports whether a frame is open.
func (m *MockTerminal) InSyncUpdate() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.syncDepth > 0
}

// Modes reports raw mode, alt screen, mouse and focus reporting.
func (m *MockTerminal) Modes() (raw, alt, mouse, focus bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rawMode, m.altScreen, m.mouse, m.focus
}

// CellAt returns the cell last sent to (x, y).
func (m *MockTerminal) CellAt(x, y int) Cell {
	m.mu.Lock()
	defer m.mu.Unlock()
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Cell{}
	}
	return m.cells[y*m.width+x]
}

// String is the screen text with trailing blanks removed from each row.
func (m *MockTerminal) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	lines := make([]string, m.height)
	for y := range lines {
		var sb strings.Builder
		for _, c := range m.cells[y*m.width : (y+1)*m.width] {
			if c.IsContinuation() {
				continue
			}
			if c.Rune == 0 {
				sb.WriteByte(' ')
			} else {
				sb.WriteRune(c.Rune)
			}
		}
		lines[y] = strings.TrimRight(sb.String(), " ")
	}
	return strings.Join(lines, "\n")
}
