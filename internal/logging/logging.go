package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"proposal-assistant/internal/config"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxLogSizeMB  = 5
	maxLogBackups = 5
	maxLogAgeDays = 14
)

// Init configures slog from cfg and installs the logger as the default.
// When console is non-nil records are also written there. A configured file
// is rotated by lumberjack; the returned closer releases it.
func Init(cfg config.LogConfig, console io.Writer) (*slog.Logger, io.Closer, error) {
	handlerOptions := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var writers []io.Writer
	if console != nil {
		writers = append(writers, console)
	}

	var closer io.Closer = nopCloser{}
	var initErr error
	if logPath := strings.TrimSpace(cfg.File); logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
			initErr = err
		} else {
			rotating := &lumberjack.Logger{
				Filename:   logPath,
				MaxSize:    maxLogSizeMB,
				MaxBackups: maxLogBackups,
				MaxAge:     maxLogAgeDays,
				Compress:   true,
			}
			writers = append(writers, rotating)
			closer = rotating
		}
	}

	var out io.Writer
	switch len(writers) {
	case 0:
		out = io.Discard
	case 1:
		out = writers[0]
	default:
		out = io.MultiWriter(writers...)
	}

	logger := slog.New(newHandler(cfg.Format, out, handlerOptions))
	slog.SetDefault(logger)
	return logger, closer, initErr
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newHandler(format string, out io.Writer, opts *slog.HandlerOptions) slog.Handler {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text":
		return slog.NewTextHandler(out, opts)
	default:
		return slog.NewJSONHandler(out, opts)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
