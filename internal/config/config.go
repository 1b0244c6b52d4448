package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/alarm-clock/internal/clock"
	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/prompt"
)

// Config holds the alarm clock settings.
type Config struct {
	// LogLevel is the minimum level written to stderr.
	LogLevel string `yaml:"log_level"`
	// Prompter selects the interaction mode: auto, line or terminal.
	Prompter string `yaml:"prompter"`
	// Alarms are registered at startup, in order.
	Alarms []Alarm `yaml:"alarms"`
}

// Alarm is an alarm preset.
type Alarm struct {
	// Time is the trigger time in HH:MM format.
	Time string `yaml:"time"`
	// Day is the weekday name.
	Day string `yaml:"day"`
}

const (
	// DefaultConfigFilename is the settings file looked up when no path is given.
	DefaultConfigFilename = "alarm-clock.yaml"

	// DefaultLogLevel is used when log_level is empty.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the mode of files written by Save.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errInvalidLogLevel is returned for an unknown log_level.
	errInvalidLogLevel = errors.New("invalid log level")
	// errInvalidAlarm is returned for a preset with a malformed time or day.
	errInvalidAlarm = errors.New("invalid alarm")
)

// Default returns the settings used when no file exists.
func Default() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Prompter: string(prompt.ModeAuto),
	}
}

// Load reads the settings at path and validates them.
// A missing file at the default path yields Default.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultConfigFilename {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save validates cfg and writes it to path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the settings and fills in defaults for empty fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, cfg.LogLevel)
	}

	mode, err := prompt.ParseMode(cfg.Prompter)
	if err != nil {
		return fmt.Errorf("invalid prompter: %w", err)
	}

	cfg.Prompter = string(mode)

	for i, preset := range cfg.Alarms {
		if err := ValidateAlarm(preset.Time, preset.Day); err != nil {
			return fmt.Errorf("alarms[%d]: %w", i, err)
		}
	}

	return nil
}

// ValidateAlarm checks that value is a HH:MM time and day a weekday name.
func ValidateAlarm(value, day string) error {
	if _, err := time.Parse(clock.TimeLayout, value); err != nil || len(value) != len(clock.TimeLayout) {
		return fmt.Errorf("%w: time %q is not HH:MM", errInvalidAlarm, value)
	}

	if !domain.IsDay(day) {
		return fmt.Errorf("%w: unknown day %q", errInvalidAlarm, day)
	}

	return nil
}

// ParseAlarm parses a "HH:MM@Day" preset as given on the command line.
func ParseAlarm(s string) (Alarm, error) {
	value, day, ok := strings.Cut(strings.TrimSpace(s), "@")
	if !ok {
		return Alarm{}, fmt.Errorf("%w: %q is not TIME@DAY", errInvalidAlarm, s)
	}

	preset := Alarm{
		Time: strings.TrimSpace(value),
		Day:  strings.TrimSpace(day),
	}

	if err := ValidateAlarm(preset.Time, preset.Day); err != nil {
		return Alarm{}, err
	}

	return preset, nil
}
