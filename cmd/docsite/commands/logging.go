package commands

import (
	"io"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/docsite/internal/config"
)

const (
	envLogLevel  = "DOCSITE_LOG_LEVEL"
	envLogFormat = "DOCSITE_LOG_FORMAT"
)

// NewLogger builds the process logger. --verbose wins over the environment,
// which wins over the configuration file.
func NewLogger(w io.Writer, verbose bool, cfg config.LoggingConfig) *slog.Logger {
	level := cfg.Level
	if v := os.Getenv(envLogLevel); v != "" {
		level = config.NormalizeLogLevel(v)
	}
	if verbose {
		level = config.LogLevelDebug
	}

	format := cfg.Format
	if v := os.Getenv(envLogFormat); v != "" {
		format = config.NormalizeLogFormat(v)
	}

	opts := &slog.HandlerOptions{Level: level.Slog()}
	if format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
