package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

const schema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "debounce":         {"$ref": "#/definitions/duration"},
    "input_latency":    {"$ref": "#/definitions/duration"},
    "event_queue_size": {"type": "integer", "minimum": 1},
    "wake_queue_size":  {"type": "integer", "minimum": 1},
    "mouse":            {"type": "boolean"},
    "focus_reporting":  {"type": "boolean"},
    "alt_screen":       {"type": "boolean"},
    "log_file":         {"type": "string"},
    "log_level":        {"type": "string", "enum": ["debug", "info", "warn", "error"]}
  },
  "definitions": {
    "duration": {"type": "string", "pattern": "^[0-9]+(\\.[0-9]+)?(ns|us|µs|ms|s|m|h)$"}
  }
}`

// Load reads a YAML file on top of Default. Keys absent from the file keep
// their default value.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML document on top of Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if doc == nil {
		return cfg, nil
	}
	if err := validateSchema(doc); err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateSchema(doc map[string]any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// FromEnv overlays TRUI_* environment variables onto cfg. When envFiles is
// empty a ./.env file is loaded if present; named files must exist.
// Variables already set in the process environment win over .env entries.
func FromEnv(cfg Config, envFiles ...string) (Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return Config{}, fmt.Errorf("load env files: %w", err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var err error
	if cfg.Debounce, err = envDuration("TRUI_DEBOUNCE", cfg.Debounce); err != nil {
		return Config{}, err
	}
	if cfg.InputLatency, err = envDuration("TRUI_INPUT_LATENCY", cfg.InputLatency); err != nil {
		return Config{}, err
	}
	if cfg.EventQueueSize, err = envInt("TRUI_EVENT_QUEUE_SIZE", cfg.EventQueueSize); err != nil {
		return Config{}, err
	}
	if cfg.WakeQueueSize, err = envInt("TRUI_WAKE_QUEUE_SIZE", cfg.WakeQueueSize); err != nil {
		return Config{}, err
	}
	if cfg.Mouse, err = envBool("TRUI_MOUSE", cfg.Mouse); err != nil {
		return Config{}, err
	}
	if cfg.FocusReporting, err = envBool("TRUI_FOCUS_REPORTING", cfg.FocusReporting); err != nil {
		return Config{}, err
	}
	if cfg.AltScreen, err = envBool("TRUI_ALT_SCREEN", cfg.AltScreen); err != nil {
		return Config{}, err
	}
	if v, ok := os.LookupEnv("TRUI_LOG"); ok {
		cfg.LogFile = v
	}
	if v, ok := os.LookupEnv("TRUI_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	return cfg, cfg.Validate()
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalid, key, err)
	}
	return d, nil
}

func envInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalid, key, err)
	}
	return n, nil
}

func envBool(key string, def bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrInvalid, key, err)
	}
	return b, nil
}
