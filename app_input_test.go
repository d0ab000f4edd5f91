package trui

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInput(t *testing.T) {
	type tc struct {
		input []Event
		want  []Event
	}

	tests := map[string]tc{
		"quit key": {
			input: []Event{KeyEvent{Key: KeyRune, Rune: 'a'}, KeyEvent{Key: KeyEscape}, KeyEvent{Key: KeyRune, Rune: 'b'}},
			want:  []Event{KeyEvent{Key: KeyRune, Rune: 'a'}, QuitEvent{}},
		},
		"reader reports end of input": {
			input: []Event{KeyEvent{Key: KeyRune, Rune: 'a'}, QuitEvent{}, KeyEvent{Key: KeyRune, Rune: 'b'}},
			want:  []Event{KeyEvent{Key: KeyRune, Rune: 'a'}, QuitEvent{}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			reader := NewMockEventReader(tt.input...)
			events := make(chan Event, len(tt.input))
			s := defaultSettings()
			s.cfg.InputLatency = 5 * time.Millisecond

			done := make(chan struct{})
			go func() {
				readInput(context.Background(), reader, events, &s)
				close(done)
			}()
			select {
			case <-done:
			case <-time.After(2 * time.Second):
				t.Fatal("readInput did not stop")
			}

			close(events)
			var got []Event
			for ev := range events {
				got = append(got, ev)
			}
			require.Len(t, got, len(tt.want))
			assert.Equal(t, tt.want, got)
		})
	}
}
