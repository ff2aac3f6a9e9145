// Package logging builds the structured logger shared by the server and the
// CLI: slog records rendered as JSON, logfmt text or colourised terminal
// output, with secrets redacted and an optional rolling log file.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelTrace sits below debug for very chatty output.
const LevelTrace = slog.Level(-8)

// Config holds logging configuration.
type Config struct {
	Level  string     `koanf:"level" validate:"omitempty,oneof=trace debug info warn warning error"`
	Format string     `koanf:"format" validate:"omitempty,oneof=json text pretty"`
	File   FileConfig `koanf:"file"`
}

// FileConfig enables a rolling JSON log file next to the terminal output.
type FileConfig struct {
	Path       string `koanf:"path"`
	MaxSizeMB  int    `koanf:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `koanf:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `koanf:"max_age_days" validate:"gte=0"`
	Compress   bool   `koanf:"compress"`
}

// New creates a logger writing to stderr.
func New(cfg Config) *slog.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter creates a logger writing to w, and to the configured log file
// when one is set.
func NewWithWriter(cfg Config, w io.Writer) *slog.Logger {
	level := parseLevel(cfg.Level)
	opts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: NewReplaceAttr(),
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	case "pretty":
		pretty := log.NewWithOptions(w, log.Options{
			Level:           slogToCharmLevel(level),
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
		})
		handler = newRedactHandler(pretty, opts.ReplaceAttr)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	if cfg.File.Path != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    orDefault(cfg.File.MaxSizeMB, 10),
			MaxBackups: orDefault(cfg.File.MaxBackups, 3),
			MaxAge:     orDefault(cfg.File.MaxAgeDays, 28),
			Compress:   cfg.File.Compress,
		}
		handler = teeHandler{console: handler, file: slog.NewJSONHandler(file, opts)}
	}

	return slog.New(handler)
}

func orDefault(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// slogToCharmLevel clamps an slog level onto the levels the terminal
// renderer knows.
func slogToCharmLevel(level slog.Level) log.Level {
	switch {
	case level < slog.LevelInfo:
		return log.DebugLevel
	case level < slog.LevelWarn:
		return log.InfoLevel
	case level < slog.LevelError:
		return log.WarnLevel
	default:
		return log.ErrorLevel
	}
}
