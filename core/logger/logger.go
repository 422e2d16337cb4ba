package logger

import (
	"io"
	"log/slog"
	"os"
)

type settings struct {
	writer io.Writer
	level  slog.Leveler
	json   bool
	attrs  []slog.Attr
}

// Option configures a logger during construction.
type Option func(*settings)

// WithLevel sets the minimum level the logger emits.
func WithLevel(level slog.Leveler) Option {
	return func(s *settings) {
		s.level = level
	}
}

// WithWriter sets the output destination. Defaults to stderr.
func WithWriter(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.writer = w
		}
	}
}

// WithJSON switches output to JSON records for log aggregation.
func WithJSON() Option {
	return func(s *settings) {
		s.json = true
	}
}

// WithService attaches a service name to every record.
func WithService(name string) Option {
	return func(s *settings) {
		if name != "" {
			s.attrs = append(s.attrs, slog.String("service", name))
		}
	}
}

// New creates an slog logger. Without options it writes text records at
// info level to stderr.
func New(opts ...Option) *slog.Logger {
	s := settings{
		writer: os.Stderr,
		level:  slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(&s)
	}

	handlerOpts := &slog.HandlerOptions{Level: s.level}

	var handler slog.Handler
	if s.json {
		handler = slog.NewJSONHandler(s.writer, handlerOpts)
	} else {
		handler = slog.NewTextHandler(s.writer, handlerOpts)
	}
	if len(s.attrs) > 0 {
		handler = handler.WithAttrs(s.attrs)
	}

	return slog.New(handler)
}
