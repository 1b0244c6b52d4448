package menu

import (
	"context"
	"fmt"
	"os"

	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/prompt"
	"github.com/oshokin/alarm-clock/internal/service/registry"
)

// Options configures the alarm clock shell.
type Options struct {
	// ConfigPath to the YAML settings file, defaults to the standard filename if empty.
	ConfigPath string
	// LogLevel overrides log_level from the config when set.
	LogLevel string
	// Prompter overrides the prompter mode from the config when set.
	Prompter string
	// Alarms are extra TIME@DAY presets registered after the configured ones.
	Alarms []string
	// In and Out default to os.Stdin and os.Stdout.
	In  *os.File
	Out *os.File
}

// Run loads settings, builds the registry and runs the menu until the user exits.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "alarm-clock")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	if opts.Prompter != "" {
		cfg.Prompter = opts.Prompter
	}

	if err = config.Validate(cfg); err != nil {
		return fmt.Errorf("validate configuration: %w", err)
	}

	// Validate already accepted the level name.
	level, _ := logger.ParseLogLevel(cfg.LogLevel)
	logger.SetLevel(level)

	presets := cfg.Alarms

	for _, s := range opts.Alarms {
		preset, err := config.ParseAlarm(s)
		if err != nil {
			return fmt.Errorf("parse --alarm: %w", err)
		}

		presets = append(presets, preset)
	}

	in, out := opts.In, opts.Out
	if in == nil {
		in = os.Stdin
	}

	if out == nil {
		out = os.Stdout
	}

	p, err := prompt.New(prompt.Mode(cfg.Prompter), in, out)
	if err != nil {
		return fmt.Errorf("create prompter: %w", err)
	}

	alarms := registry.New(p)
	for _, preset := range presets {
		alarms.Add(ctx, preset.Time, preset.Day)
	}

	logger.InfoKV(ctx, "Alarm clock started", "prompter", cfg.Prompter, "alarms", alarms.Len())

	return New(alarms, p, out).Loop(ctx)
}
