package trui

import (
	"fmt"
	"time"

	"github.com/trui-go/trui/internal/config"
)

// Config holds the tunables of an App. See DefaultConfig.
type Config = config.Config

// ErrInvalidConfig is wrapped by every configuration validation error.
var ErrInvalidConfig = config.ErrInvalid

// DefaultConfig returns the settings an App uses without options.
func DefaultConfig() Config {
	return config.Default()
}

// LoadConfig reads a YAML config file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	return config.Load(path)
}

// ConfigFromEnv overrides cfg with TRUI_* environment variables. envFiles
// are loaded into the environment first; a missing ".env" is ignored.
func ConfigFromEnv(cfg Config, envFiles ...string) (Config, error) {
	return config.FromEnv(cfg, envFiles...)
}

// Option configures an App.
type Option func(*settings) error

type settings struct {
	cfg      Config
	term     Terminal
	reader   EventReader
	quitKeys []KeyPattern
}

var defaultQuitKeys = []KeyPattern{KeyOf(KeyEscape), KeyOf(KeyCtrlC)}

func defaultSettings() settings {
	return settings{cfg: config.Default(), quitKeys: defaultQuitKeys}
}

// isQuitKey reports whether ev is one of the configured quit keys.
func (s *settings) isQuitKey(ev Event) bool {
	ke, ok := ev.(KeyEvent)
	if !ok {
		return false
	}
	for _, k := range s.quitKeys {
		if k.Matches(ke) {
			return true
		}
	}
	return false
}

// WithConfig replaces all tunables at once.
func WithConfig(cfg Config) Option {
	return func(s *settings) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		s.cfg = cfg
		return nil
	}
}

// WithTerminal renders into t instead of the process's terminal.
func WithTerminal(t Terminal) Option {
	return func(s *settings) error {
		s.term = t
		return nil
	}
}

// WithEventReader reads input from r instead of standard input.
func WithEventReader(r EventReader) Option {
	return func(s *settings) error {
		s.reader = r
		return nil
	}
}

// WithDebounce sets how long a frame may wait for pending async work.
// Default is 5ms.
func WithDebounce(d time.Duration) Option {
	return func(s *settings) error {
		if d <= 0 {
			return fmt.Errorf("%w: debounce must be positive", config.ErrInvalid)
		}
		s.cfg.Debounce = d
		return nil
	}
}

// WithEventQueueSize sets the capacity of the input and request queues.
// Default is 1000.
func WithEventQueueSize(n int) Option {
	return func(s *settings) error {
		if n < 1 {
			return fmt.Errorf("%w: event queue size must be at least 1", config.ErrInvalid)
		}
		s.cfg.EventQueueSize = n
		return nil
	}
}

// WithWakeQueueSize sets the capacity of the async completion queue.
// Default is 10.
func WithWakeQueueSize(n int) Option {
	return func(s *settings) error {
		if n < 1 {
			return fmt.Errorf("%w: wake queue size must be at least 1", config.ErrInvalid)
		}
		s.cfg.WakeQueueSize = n
		return nil
	}
}

// WithInputLatency sets the poll timeout of the input goroutine, which
// bounds how quickly it notices shutdown. Default is 50ms.
func WithInputLatency(d time.Duration) Option {
	return func(s *settings) error {
		if d <= 0 {
			return fmt.Errorf("%w: input latency must be positive", config.ErrInvalid)
		}
		s.cfg.InputLatency = d
		return nil
	}
}

// WithoutMouse disables mouse reporting.
func WithoutMouse() Option {
	return func(s *settings) error {
		s.cfg.Mouse = false
		return nil
	}
}

// WithoutFocusReporting disables terminal focus events.
func WithoutFocusReporting() Option {
	return func(s *settings) error {
		s.cfg.FocusReporting = false
		return nil
	}
}

// WithoutAltScreen draws on the main screen instead of the alternate one.
func WithoutAltScreen() Option {
	return func(s *settings) error {
		s.cfg.AltScreen = false
		return nil
	}
}

// WithQuitKeys replaces the keys that stop the app. The defaults are
// Escape and Ctrl+C. With no keys the app only stops when its context
// ends.
func WithQuitKeys(keys ...KeyPattern) Option {
	return func(s *settings) error {
		s.quitKeys = keys
		return nil
	}
}

// WithLogFile appends debug logs at level or above to path.
func WithLogFile(path, level string) Option {
	return func(s *settings) error {
		s.cfg.LogFile, s.cfg.LogLevel = path, level
		return nil
	}
}
