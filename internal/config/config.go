// Package config loads runtime settings for a trui application.
//
// Settings come from three layers applied in order: built-in defaults,
// an optional YAML file validated against an embedded JSON schema, and
// TRUI_* environment variables (optionally seeded from a .env file).
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds the tunables of the render loop and logic task.
type Config struct {
	// Debounce bounds how long a render may wait for pending async work.
	Debounce time.Duration `yaml:"debounce"`
	// EventQueueSize is the capacity of the input and request queues.
	EventQueueSize int `yaml:"event_queue_size"`
	// WakeQueueSize is the capacity of the async completion queue.
	WakeQueueSize int `yaml:"wake_queue_size"`
	// InputLatency is the poll timeout of the input goroutine.
	InputLatency time.Duration `yaml:"input_latency"`

	Mouse          bool `yaml:"mouse"`
	FocusReporting bool `yaml:"focus_reporting"`
	AltScreen      bool `yaml:"alt_screen"`

	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the settings used when nothing else is configured.
func Default() Config {
	return Config{
		Debounce:       5 * time.Millisecond,
		EventQueueSize: 1000,
		WakeQueueSize:  10,
		InputLatency:   50 * time.Millisecond,
		Mouse:          true,
		FocusReporting: true,
		AltScreen:      true,
		LogLevel:       "info",
	}
}

// Validate checks semantic constraints the schema cannot express.
func (c Config) Validate() error {
	if c.Debounce <= 0 {
		return fmt.Errorf("%w: debounce must be positive, got %s", ErrInvalid, c.Debounce)
	}
	if c.EventQueueSize < 1 {
		return fmt.Errorf("%w: event queue size must be at least 1", ErrInvalid)
	}
	if c.WakeQueueSize < 1 {
		return fmt.Errorf("%w: wake queue size must be at least 1", ErrInvalid)
	}
	if c.InputLatency <= 0 {
		return fmt.Errorf("%w: input latency must be positive, got %s", ErrInvalid, c.InputLatency)
	}
	return nil
}
