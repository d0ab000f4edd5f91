package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 5*time.Millisecond, cfg.Debounce)
	assert.Equal(t, 1000, cfg.EventQueueSize)
	assert.Equal(t, 10, cfg.WakeQueueSize)
	assert.True(t, cfg.Mouse)
}

func TestParse(t *testing.T) {
	type tc struct {
		yaml    string
		check   func(t *testing.T, cfg Config)
		wantErr bool
	}

	tests := map[string]tc{
		"empty document keeps defaults": {
			yaml: "",
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, Default(), cfg)
			},
		},
		"overrides selected keys": {
			yaml: "debounce: 20ms\nwake_queue_size: 4\nmouse: false\nlog_level: debug\n",
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, 20*time.Millisecond, cfg.Debounce)
				assert.Equal(t, 4, cfg.WakeQueueSize)
				assert.False(t, cfg.Mouse)
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, 1000, cfg.EventQueueSize)
			},
		},
		"unknown key is rejected": {
			yaml:    "frame_rate: 60\n",
			wantErr: true,
		},
		"bad duration is rejected": {
			yaml:    "debounce: soon\n",
			wantErr: true,
		},
		"zero queue is rejected": {
			yaml:    "event_queue_size: 0\n",
			wantErr: true,
		},
		"bad level is rejected": {
			yaml:    "log_level: chatty\n",
			wantErr: true,
		},
		"malformed yaml": {
			yaml:    "debounce: [\n",
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalid)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trui.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input_latency: 10ms\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Millisecond, cfg.InputLatency)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("TRUI_DEBOUNCE", "15ms")
	t.Setenv("TRUI_MOUSE", "false")
	t.Setenv("TRUI_LOG", "/tmp/trui-test.log")

	cfg, err := FromEnv(Default())
	require.NoError(t, err)
	assert.Equal(t, 15*time.Millisecond, cfg.Debounce)
	assert.False(t, cfg.Mouse)
	assert.Equal(t, "/tmp/trui-test.log", cfg.LogFile)
}

func TestFromEnv_Invalid(t *testing.T) {
	t.Setenv("TRUI_EVENT_QUEUE_SIZE", "lots")
	_, err := FromEnv(Default())
	require.ErrorIs(t, err, ErrInvalid)
}

func TestFromEnv_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TRUI_WAKE_QUEUE_SIZE=32\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("TRUI_WAKE_QUEUE_SIZE") })

	cfg, err := FromEnv(Default(), path)
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.WakeQueueSize)

	_, err = FromEnv(Default(), filepath.Join(t.TempDir(), "absent.env"))
	require.Error(t, err)
}
