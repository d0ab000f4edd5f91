package trui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	term := NewMockTerminal(6, 2)
	buf := NewBuffer(6, 2)

	buf.SetString(0, 0, "hello", Style{})
	require.NoError(t, Render(term, buf))
	assert.Equal(t, "hello\n", term.String())

	buf.Clear()
	buf.SetString(0, 1, "bye", Style{})
	require.NoError(t, Render(term, buf))
	assert.Equal(t, "\nbye", term.String())
	assert.Empty(t, buf.Diff())
	assert.Zero(t, term.Clears())
}

func TestRenderFull(t *testing.T) {
	term := NewMockTerminal(4, 1)
	buf := NewBuffer(4, 1)
	buf.SetString(0, 0, "ab", Style{})
	require.NoError(t, Render(term, buf))

	// Content written behind the buffer's back is repaired by a full render.
	require.NoError(t, term.Flush([]CellChange{{X: 3, Y: 0, Cell: NewCell('!', Style{})}}))
	require.NoError(t, RenderFull(term, buf))
	assert.Equal(t, "ab", term.String())
	assert.Equal(t, 1, term.Clears())
}
