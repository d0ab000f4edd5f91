package trui

// Terminal is the output side of the screen. The render loop is its only
// user, so implementations need not be safe for concurrent use.
type Terminal interface {
	// Size returns the dimensions in cells.
	Size() (width, height int, err error)
	// Flush writes changes, given in row-major order.
	Flush(changes []CellChange) error
	Clear() error

	// BeginSyncUpdate and EndSyncUpdate bracket a frame so terminals
	// that support synchronized output show it at once.
	BeginSyncUpdate() error
	EndSyncUpdate() error

	EnterRawMode() error
	ExitRawMode() error
	EnterAltScreen() error
	ExitAltScreen() error
	HideCursor() error
	ShowCursor() error
	EnableMouse() error
	DisableMouse() error
	EnableFocusReporting() error
	DisableFocusReporting() error

	Caps() Capabilities
}
