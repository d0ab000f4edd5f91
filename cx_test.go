package trui

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestId(t *testing.T) {
	a, b := nextId(), nextId()
	assert.NotZero(t, a)
	assert.Greater(t, b, a)
	assert.Equal(t, "#7", Id(7).String())
}

func TestIdPath(t *testing.T) {
	p := IdPath{1, 2, 3}
	c := p.Clone()
	c[0] = 9
	assert.Equal(t, Id(1), p[0], "clone does not alias")
	assert.Nil(t, IdPath(nil).Clone())

	last, ok := p.Last()
	assert.True(t, ok)
	assert.Equal(t, Id(3), last)
	_, ok = IdPath{}.Last()
	assert.False(t, ok)

	assert.Equal(t, "[#1 #2 #3]", p.String())
}

func TestCx_Path(t *testing.T) {
	cx := newCx(context.Background(), nil)
	assert.True(t, cx.IsEmpty())

	var inner IdPath
	outer := cx.WithNewId(func(cx *Cx) {
		cx.With(42, func(cx *Cx) {
			inner = cx.Path()
		})
		assert.Len(t, cx.Path(), 1)
	})

	assert.Equal(t, IdPath{outer, 42}, inner)
	assert.True(t, cx.IsEmpty())
	assert.NotPanics(t, func() { cx.assertEmpty("build") })
}

func TestCx_Imbalance(t *testing.T) {
	cx := newCx(context.Background(), nil)
	assert.Panics(t, func() { cx.Pop() })

	cx.Push(1)
	assert.PanicsWithValue(t, "trui: id path imbalance on rebuild: [#1]", func() { cx.assertEmpty("rebuild") })
}

func TestCx_Pending(t *testing.T) {
	cx := newCx(context.Background(), nil)
	cx.AddPendingAsync(1)
	cx.AddPendingAsync(2)
	cx.AddPendingAsync(1)

	p := cx.takePending()
	assert.Len(t, p, 2)
	assert.True(t, p.has(1))
	assert.Empty(t, cx.takePending())
}

func TestWaker(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wake := make(chan IdPath, 1)
	cx := newCx(ctx, wake)

	var w Waker
	cx.With(5, func(cx *Cx) { w = cx.Waker() })
	assert.Equal(t, IdPath{5}, w.Path())

	w.Wake()
	select {
	case got := <-wake:
		assert.Equal(t, IdPath{5}, got)
	case <-time.After(time.Second):
		t.Fatal("no wake")
	}

	t.Run("full queue unblocks when the app stops", func(t *testing.T) {
		w.Wake()
		done := make(chan struct{})
		go func() {
			w.Wake()
			close(done)
		}()
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("wake blocked after cancel")
		}
	})

	t.Run("zero waker is a no-op", func(t *testing.T) {
		require.NotPanics(t, func() { Waker{}.Wake() })
	})
}

func TestCx_Context(t *testing.T) {
	assert.NotNil(t, (&Cx{}).Context())
}
