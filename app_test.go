package trui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitFor = 2 * time.Second

type running struct {
	term   *MockTerminal
	reader *MockEventReader
	cancel context.CancelFunc
	done   chan error
}

// start runs app against a 30x6 mock terminal until the test ends.
func start[T, A any](t *testing.T, app *App[T, A]) *running {
	t.Helper()
	r := &running{
		term:   app.settings.term.(*MockTerminal),
		reader: app.settings.reader.(*MockEventReader),
		done:   make(chan error, 1),
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	go func() { r.done <- app.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case <-r.done:
		case <-time.After(waitFor):
			t.Error("app did not stop")
		}
	})
	return r
}

func newTestApp[T, A any](t *testing.T, data *T, logic func(*T) View[T, A], opts ...Option) *App[T, A] {
	t.Helper()
	opts = append([]Option{
		WithTerminal(NewMockTerminal(30, 6)),
		WithEventReader(NewMockEventReader()),
		WithInputLatency(5 * time.Millisecond),
	}, opts...)
	app, err := New(data, logic, opts...)
	require.NoError(t, err)
	return app
}

func (r *running) screenContains(t *testing.T, s string) {
	t.Helper()
	require.Eventually(t, func() bool { return strings.Contains(r.term.String(), s) }, waitFor, 2*time.Millisecond,
		"screen never showed %q, last:\n%s", s, r.term.String())
}

func (r *running) wait(t *testing.T) error {
	t.Helper()
	select {
	case err := <-r.done:
		r.done <- err
		return err
	case <-time.After(waitFor):
		t.Fatal("app did not stop")
		return nil
	}
}

func counterView(d *appData) View[appData, noAction] {
	return VStack(
		OnClick(text(fmt.Sprintf("clicks: %d", d.clicks)), func(d *appData) { d.clicks++ }),
		text("footer"),
	)
}

func TestApp_FirstFrameAndQuit(t *testing.T) {
	app := newTestApp(t, &appData{}, counterView)
	r := start(t, app)

	r.screenContains(t, "clicks: 0")
	raw, alt, mouse, focus := r.term.Modes()
	assert.True(t, raw && alt && mouse && focus)
	assert.GreaterOrEqual(t, r.term.Clears(), 1)

	r.reader.Push(KeyEvent{Key: KeyEscape})
	require.NoError(t, r.wait(t))

	raw, alt, mouse, focus = r.term.Modes()
	assert.False(t, raw || alt || mouse || focus, "terminal restored")
	assert.False(t, r.term.InSyncUpdate())
}

func TestApp_ClickRebuilds(t *testing.T) {
	app := newTestApp(t, &appData{}, counterView)
	r := start(t, app)
	r.screenContains(t, "clicks: 0")

	r.reader.Push(MouseEvent{Button: MouseLeft, Action: MousePress, X: 1, Y: 0})
	r.screenContains(t, "clicks: 1")

	r.reader.Push(MouseEvent{Button: MouseLeft, Action: MousePress, X: 1, Y: 1})
	r.reader.Push(MouseEvent{Button: MouseLeft, Action: MousePress, X: 2, Y: 0})
	r.screenContains(t, "clicks: 2")
	assert.Contains(t, r.term.String(), "footer")
}

func TestApp_KeysRebuild(t *testing.T) {
	logic := func(d *appData) View[appData, noAction] {
		return OnKey(text(fmt.Sprintf("keys: %d", len(d.keys))), func(d *appData, ev KeyEvent) {
			d.keys = append(d.keys, ev.Key)
		})
	}
	app := newTestApp(t, &appData{}, logic)
	r := start(t, app)
	r.screenContains(t, "keys: 0")

	r.reader.Push(KeyEvent{Key: KeyRune, Rune: 'a'})
	r.reader.Push(KeyEvent{Key: KeyRune, Rune: 'b'})
	r.screenContains(t, "keys: 2")
}

func TestApp_Hover(t *testing.T) {
	logic := func(d *appData) View[appData, noAction] {
		label := "idle"
		if d.hovered {
			label = "hovered"
		}
		return VStack(OnHoverChange(text(label),
			func(d *appData) { d.hovered = true },
			func(d *appData) { d.hovered = false },
		))
	}
	app := newTestApp(t, &appData{}, logic)
	r := start(t, app)
	r.screenContains(t, "idle")

	r.reader.Push(MouseEvent{Button: MouseNone, Action: MouseMotion, X: 1, Y: 0})
	r.screenContains(t, "hovered")

	r.reader.Push(MouseEvent{Button: MouseNone, Action: MouseMotion, X: 20, Y: 4})
	r.screenContains(t, "idle")

	r.reader.Push(MouseEvent{Button: MouseNone, Action: MouseMotion, X: 0, Y: 0})
	r.screenContains(t, "hovered")
	r.reader.Push(FocusEvent{Gained: false})
	r.screenContains(t, "idle")
}

func TestApp_DeferWithinDebounce(t *testing.T) {
	logic := func(d *appData) View[appData, noAction] {
		return Defer(
			func(ctx context.Context) string { return "ready" },
			func(s string) View[appData, noAction] { return text(s) },
			text("loading"),
		)
	}
	app := newTestApp(t, &appData{}, logic, WithDebounce(time.Minute))
	r := start(t, app)

	r.screenContains(t, "ready")
	assert.Equal(t, 1, r.term.Frames(), "fast work lands in the first frame")
}

func TestApp_DeferAfterDebounce(t *testing.T) {
	release := make(chan struct{})
	logic := func(d *appData) View[appData, noAction] {
		return Defer(
			func(ctx context.Context) string {
				select {
				case <-release:
				case <-ctx.Done():
				}
				return "ready"
			},
			func(s string) View[appData, noAction] { return text(s) },
			text("loading"),
		)
	}
	app := newTestApp(t, &appData{}, logic, WithDebounce(5*time.Millisecond))
	r := start(t, app)

	r.screenContains(t, "loading")
	close(release)
	r.screenContains(t, "ready")
}

func TestApp_DebounceCoalescesCompletions(t *testing.T) {
	release := make(chan struct{})
	task := func(name string, gate <-chan struct{}) View[appData, noAction] {
		return Defer(
			func(ctx context.Context) string {
				select {
				case <-gate:
				case <-ctx.Done():
				}
				return name + " ready"
			},
			func(s string) View[appData, noAction] { return text(s) },
			text(name+" loading"),
		)
	}
	done := make(chan struct{})
	close(done)
	logic := func(d *appData) View[appData, noAction] {
		return VStack(task("a", done), task("b", done), task("c", done), task("d", release))
	}
	app := newTestApp(t, &appData{}, logic, WithDebounce(50*time.Millisecond))
	r := start(t, app)

	r.screenContains(t, "d loading")
	screen := r.term.String()
	for _, name := range []string{"a", "b", "c"} {
		assert.Contains(t, screen, name+" ready")
	}
	assert.Equal(t, 1, r.term.Frames(), "three completions in the window share one frame")

	close(release)
	r.screenContains(t, "d ready")
	assert.Equal(t, 2, r.term.Frames(), "a completion after the deadline gets its own frame")
}

func TestApp_Actions(t *testing.T) {
	logic := func(d *appData) View[appData, string] {
		return OnClickAction(Text[appData, string]("save"), func(d *appData) string { return "saved" })
	}
	app := newTestApp(t, &appData{}, logic)
	got := make(chan string, 1)
	app.OnAction(func(a string) { got <- a })
	r := start(t, app)
	r.screenContains(t, "save")

	r.reader.Push(MouseEvent{Button: MouseLeft, Action: MousePress})
	select {
	case a := <-got:
		assert.Equal(t, "saved", a)
	case <-time.After(waitFor):
		t.Fatal("no action")
	}
}

func TestApp_Resize(t *testing.T) {
	logic := func(d *appData) View[appData, noAction] {
		return Border(text("x"), BorderAll, BorderPlain, Style{})
	}
	app := newTestApp(t, &appData{}, logic)
	r := start(t, app)
	r.screenContains(t, "┐")
	clears := r.term.Clears()

	r.term.Resize(10, 3)
	r.reader.Push(ResizeEvent{Width: 10, Height: 3})
	require.Eventually(t, func() bool { return r.term.String() == "┌────────┐\n│x       │\n└────────┘" }, waitFor, 2*time.Millisecond)
	assert.Greater(t, r.term.Clears(), clears, "resize redraws from scratch")
}

func TestApp_RootTypeChangePanics(t *testing.T) {
	calls := 0
	logic := func(d *appData) View[appData, noAction] {
		calls++
		if calls == 1 {
			return text("first")
		}
		return VStack(text("second"))
	}
	app := newTestApp(t, &appData{}, logic)
	term := app.settings.term.(*MockTerminal)
	reader := app.settings.reader.(*MockEventReader)

	panicked := make(chan any, 1)
	go func() {
		defer func() { panicked <- recover() }()
		_ = app.Run(context.Background())
	}()
	require.Eventually(t, func() bool { return strings.Contains(term.String(), "first") }, waitFor, 2*time.Millisecond)
	reader.Push(KeyEvent{Key: KeyRune, Rune: 'x'})

	var recovered any
	select {
	case recovered = <-panicked:
	case <-time.After(waitFor):
		t.Fatal("rebuild did not panic")
	}

	err, ok := recovered.(error)
	require.True(t, ok, "panic value %v", recovered)
	var mismatch *RootTypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Contains(t, err.Error(), "root widget changed its type")
	raw, _, _, _ := term.Modes()
	assert.False(t, raw, "terminal restored while panicking")
}

func TestApp_RunTwice(t *testing.T) {
	app := newTestApp(t, &appData{}, counterView)
	r := start(t, app)
	r.screenContains(t, "clicks")

	assert.ErrorIs(t, app.Run(context.Background()), ErrAppRunning)
}

func TestApp_ContextCancel(t *testing.T) {
	app := newTestApp(t, &appData{}, counterView)
	r := start(t, app)
	r.screenContains(t, "clicks")

	r.cancel()
	assert.NoError(t, r.wait(t))
}

func TestApp_SizeError(t *testing.T) {
	app := newTestApp(t, &appData{}, counterView)
	boom := errors.New("no size")
	app.settings.term.(*MockTerminal).FailSize(boom)

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestApp_Options(t *testing.T) {
	t.Run("custom quit keys", func(t *testing.T) {
		app := newTestApp(t, &appData{}, counterView, WithQuitKeys(RuneOf('q')))
		r := start(t, app)
		r.screenContains(t, "clicks")

		r.reader.Push(KeyEvent{Key: KeyEscape})
		r.reader.Push(KeyEvent{Key: KeyRune, Rune: 'q'})
		require.NoError(t, r.wait(t))
	})

	t.Run("modes can be disabled", func(t *testing.T) {
		app := newTestApp(t, &appData{}, counterView, WithoutMouse(), WithoutAltScreen(), WithoutFocusReporting())
		r := start(t, app)
		r.screenContains(t, "clicks")

		raw, alt, mouse, focus := r.term.Modes()
		assert.True(t, raw)
		assert.False(t, alt || mouse || focus)
	})

	t.Run("invalid values", func(t *testing.T) {
		for name, opt := range map[string]Option{
			"debounce":      WithDebounce(0),
			"event queue":   WithEventQueueSize(0),
			"wake queue":    WithWakeQueueSize(-1),
			"input latency": WithInputLatency(0),
			"log level":     WithLogFile("x.log", "loud"),
			"config":        WithConfig(Config{}),
		} {
			_, err := New(&appData{}, counterView, opt)
			assert.ErrorIs(t, err, ErrInvalidConfig, name)
		}
	})

	t.Run("log file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "trui.log")
		app := newTestApp(t, &appData{}, counterView, WithLogFile(path, "debug"))
		r := start(t, app)
		r.screenContains(t, "clicks")
		r.reader.Push(KeyEvent{Key: KeyCtrlC})
		require.NoError(t, r.wait(t))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "render without delay")
	})
}
