// Package logging builds the process logger.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config holds logger settings.
type Config struct {
	Level  string // panic, fatal, error, warn, info, debug, trace
	Format string // text or json
	File   string // append to this file instead of the default output
}

// DefaultConfig returns info-level text logging.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "text",
	}
}

// ConfigFromEnv overlays QUIZRUN_LOG_* variables on the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("QUIZRUN_LOG_LEVEL"); v != "" {
		cfg.Level = v
	}
	if v := os.Getenv("QUIZRUN_LOG_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("QUIZRUN_LOG_FILE"); v != "" {
		cfg.File = v
	}
	return cfg
}

// New builds a logger from cfg. Output goes to cfg.File when set and to
// fallback otherwise; a nil fallback discards. The returned closer
// releases the log file and is never nil.
func New(cfg Config, fallback io.Writer) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(strings.TrimSpace(cfg.Level))
	if err != nil {
		return nil, nopCloser{}, fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, nopCloser{}, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	var closer io.Closer = nopCloser{}
	switch {
	case cfg.File != "":
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nopCloser{}, fmt.Errorf("open log file: %w", err)
		}
		log.SetOutput(f)
		closer = f
	case fallback != nil:
		log.SetOutput(fallback)
	default:
		log.SetOutput(io.Discard)
	}

	return log, closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

type ctxKey struct{}

// NewContext returns a copy of ctx carrying log.
func NewContext(ctx context.Context, log logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// FromContext returns the logger stored in ctx, or a discarding logger.
func FromContext(ctx context.Context) logrus.FieldLogger {
	if ctx != nil {
		if log, ok := ctx.Value(ctxKey{}).(logrus.FieldLogger); ok {
			return log
		}
	}
	return Discard()
}
