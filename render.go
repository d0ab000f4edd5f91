package trui

// Render sends the changed cells of buf to term and swaps buf.
func Render(term Terminal, buf *Buffer) error {
	if changes := buf.Diff(); len(changes) > 0 {
		if err := term.Flush(changes); err != nil {
			return err
		}
	}
	buf.Swap()
	return nil
}

// RenderFull clears term and sends every cell of buf. It is used for the
// first frame and after a resize.
func RenderFull(term Terminal, buf *Buffer) error {
	if err := term.Clear(); err != nil {
		return err
	}
	buf.Invalidate()
	return Render(term, buf)
}
