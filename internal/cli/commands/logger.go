package commands

import (
	"github.com/aki/remocode/internal/cli/ui"
	"github.com/aki/remocode/internal/core/logger"
	"github.com/spf13/cobra"
)

// Global flags for logging configuration
var (
	flagLogLevel  string
	flagLogFormat string
	flagDebug     bool
)

// RegisterLoggerFlags registers global logging flags
func RegisterLoggerFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")
	cmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging (overrides --log-level)")
}

// CreateLogger creates a logger based on CLI flags
func CreateLogger() (logger.Logger, error) {
	level, err := logger.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, err
	}

	format, err := logger.ParseFormat(flagLogFormat)
	if err != nil {
		return nil, err
	}

	opts := []logger.Option{
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(ui.Stderr),
	}
	if flagDebug {
		opts = append(opts, logger.WithDebug())
	}
	return logger.New(opts...), nil
}
