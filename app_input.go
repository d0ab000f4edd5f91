package trui

import (
	"context"

	"github.com/trui-go/trui/internal/debug"
)

// relayWakes forwards completed async work to the logic task.
func relayWakes(ctx context.Context, wake <-chan IdPath, requests chan<- taskRequest) {
	for {
		select {
		case <-ctx.Done():
			return
		case path := <-wake:
			if err := send(ctx, requests, taskRequest{kind: reqWake, path: path}); err != nil {
				return
			}
		}
	}
}

// readInput polls reader and queues its events for the render loop. Quit
// keys are turned into a QuitEvent. Reading stops after a QuitEvent, which
// readers also report when their input ends.
func readInput(ctx context.Context, reader EventReader, events chan<- Event, s *settings) {
	for ctx.Err() == nil {
		ev, ok := reader.PollEvent(s.cfg.InputLatency)
		if !ok {
			continue
		}
		_, quit := ev.(QuitEvent)
		if s.isQuitKey(ev) {
			debug.Debugf("input: quit key %v", ev)
			ev, quit = QuitEvent{}, true
		}
		if err := send(ctx, events, ev); err != nil || quit {
			return
		}
	}
}
