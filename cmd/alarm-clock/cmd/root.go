package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/service/menu"
	"github.com/oshokin/alarm-clock/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// logLevel overrides the configured log level.
	logLevel string
	// prompterMode overrides the configured prompter.
	prompterMode string
	// alarms holds TIME@DAY presets given on the command line.
	alarms []string

	// rootCmd represents the interactive alarm clock.
	rootCmd = &cobra.Command{
		Use:   "alarm-clock",
		Short: "Interactive command-line alarm clock.",
		Long: `Interactive alarm clock with a numbered menu: Set Alarm, Check Alarms,
Delete Alarm and Exit.

Alarms are a time (HH:MM, 24-hour) and a weekday. They are only compared with
the current time when "Check Alarms" is chosen. A triggered alarm asks to
Snooze or Dismiss; an alarm can be snoozed three times, and three unanswered
or invalid rounds dismiss it automatically.

Alarms live in memory only. Presets can be listed in the configuration file
or passed with --alarm 07:00@Monday.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Restore default signal handling once cancelled so a second
			// ctrl+c terminates immediately.
			context.AfterFunc(ctx, stop)

			return menu.Run(ctx, &menu.Options{
				ConfigPath: configPath,
				LogLevel:   logLevel,
				Prompter:   prompterMode,
				Alarms:     alarms,
			})
		},
	}
)

// Execute runs the alarm-clock CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	err := rootCmd.Execute()
	if err != nil {
		logger.ErrorKV(context.Background(), "Alarm clock failed", "error", err)
	}

	logger.Sync()

	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "", "log level: debug, info, warn, error")
	rootCmd.Flags().StringVarP(&prompterMode, "prompter", "p", "", "prompter mode: auto, line, terminal")
	rootCmd.Flags().StringArrayVarP(&alarms, "alarm", "a", nil, "alarm preset as TIME@DAY, may be repeated")
}
