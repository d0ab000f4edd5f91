// Command trui-demo shows the trui runtime: click and hover handlers,
// per-node state, a weighted split, markdown and async work that lands in
// the first frame when it is fast enough.
//
// Usage:
//
//	trui-demo [-config trui.yaml] [-env .env] [-delay 2ms]
//
// Press Escape or Ctrl+C to quit.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/trui-go/trui"
)

type model struct {
	clicks  int
	hovered bool
	resets  int
	delay   time.Duration
}

type action string

const actionReset action = "reset"

const notes = `# trui

Click the **counter** or press *+* to bump it, hover the box on the
right, and press *Esc* to quit.`

var (
	accent = trui.NewStyle().Foreground(trui.ANSIColor(6)).Bold()
	muted  = trui.NewStyle().Dim()
)

func view(m *model) trui.View[model, action] {
	hover := "hover me"
	if m.hovered {
		hover = "hovering"
	}
	root := trui.Stack(trui.Vertical, 1,
		trui.Weight(trui.Markdown[model, action](notes), 1),
		trui.HStack(
			trui.Weight(counter(m), 1),
			trui.Weight(trui.Border(
				trui.OnHoverChange(trui.Text[model, action](hover, trui.WithTextStyle(accent)),
					func(m *model) { m.hovered = true },
					func(m *model) { m.hovered = false },
				),
				trui.BorderAll, trui.BorderRounded, muted,
			), 1),
		),
		trui.Border(forecast(m.delay), trui.BorderTop, trui.BorderPlain, muted),
		trui.OnClickAction(trui.Text[model, action](fmt.Sprintf("[reset] (%d so far)", m.resets), trui.WithTextStyle(muted)),
			func(*model) action { return actionReset }),
	)
	return trui.OnKeyMatch(root, trui.RuneOf('+'), func(m *model) { m.clicks++ })
}

// counter keeps its own click tally next to the shared one.
func counter(m *model) trui.View[model, action] {
	type scope = trui.StateScope[model, int]
	return trui.UseState[model, action, int](
		func() int { return 0 },
		func(local *int) trui.View[scope, action] {
			label := fmt.Sprintf("clicks: %d (this session %d)", m.clicks, *local)
			return trui.Border(
				trui.OnClick(trui.Text[scope, action](label), func(s *scope) {
					s.Data.clicks++
					*s.State++
				}),
				trui.BorderAll, trui.BorderPlain, accent,
			)
		},
	)
}

// forecast simulates a slow lookup. With a delay under the debounce window
// the result is drawn in the first frame.
func forecast(delay time.Duration) trui.View[model, action] {
	return trui.Defer(
		func(ctx context.Context) string {
			select {
			case <-time.After(delay):
				return fmt.Sprintf("forecast: clear skies (took %s)", delay)
			case <-ctx.Done():
				return ""
			}
		},
		func(s string) trui.View[model, action] { return trui.Text[model, action](s) },
		trui.Text[model, action]("forecast: loading...", trui.WithTextStyle(muted)),
	)
}

func run() error {
	configPath := flag.String("config", "", "YAML config file")
	envFile := flag.String("env", "", "env file with TRUI_* overrides, .env when unset")
	delay := flag.Duration("delay", 2*time.Millisecond, "simulated forecast latency")
	flag.Parse()

	cfg := trui.DefaultConfig()
	if *configPath != "" {
		c, err := trui.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = c
	}
	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}
	cfg, err := trui.ConfigFromEnv(cfg, envFiles...)
	if err != nil {
		return err
	}

	m := &model{delay: *delay}
	app, err := trui.New(m, view, trui.WithConfig(cfg))
	if err != nil {
		return err
	}
	app.OnAction(func(a action) {
		if a == actionReset {
			m.clicks = 0
			m.resets++
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.Run(ctx)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
