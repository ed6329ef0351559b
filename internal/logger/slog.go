package logger

import (
	"fmt"
	"io"
	"log/slog"

	"hexquantity/internal/config"
)

// slogAdapter implements AppLogger on top of *slog.Logger.
type slogAdapter struct {
	adaptee *slog.Logger
}

// NewSlogAdapter wraps l; a nil l falls back to slog.Default().
func NewSlogAdapter(l *slog.Logger) AppLogger {
	if l == nil {
		l = slog.Default()
	}
	return &slogAdapter{adaptee: l}
}

// NewAppLogger builds an AppLogger writing to out with the configured level and format.
// The resulting logger also becomes the slog default.
func NewAppLogger(cfg config.LoggerConfig, out io.Writer) (AppLogger, error) {
	level, err := toSlogLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logger setup failed: %w", err)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch cfg.Format {
	case config.LogFormatJSON:
		handler = slog.NewJSONHandler(out, opts)
	case config.LogFormatText:
		handler = slog.NewTextHandler(out, opts)
	default:
		return nil, fmt.Errorf("logger setup failed: unsupported output format: %s", cfg.Format)
	}

	l := slog.New(handler).With("app", "hexquantity")
	slog.SetDefault(l)
	return NewSlogAdapter(l), nil
}

func toSlogLevel(level config.LogLevel) (slog.Level, error) {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug, nil
	case config.LogLevelInfo:
		return slog.LevelInfo, nil
	case config.LogLevelWarn:
		return slog.LevelWarn, nil
	case config.LogLevelError:
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unsupported logger level: %s", level)
	}
}

func (s *slogAdapter) Debug(msg string, args ...any) { s.adaptee.Debug(msg, args...) }
func (s *slogAdapter) Info(msg string, args ...any)  { s.adaptee.Info(msg, args...) }
func (s *slogAdapter) Warn(msg string, args ...any)  { s.adaptee.Warn(msg, args...) }
func (s *slogAdapter) Error(msg string, args ...any) { s.adaptee.Error(msg, args...) }

// With returns a new AppLogger with the given arguments added to the context.
func (s *slogAdapter) With(args ...any) AppLogger {
	return &slogAdapter{adaptee: s.adaptee.With(args...)}
}
