// Package logging builds the application logger from config.
package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vancomm/minesweeper/internal/config"
)

// New returns a logger writing to stderr, coloured in development and JSON
// otherwise, plus a rotated JSON file when cfg.Log.File is set. The returned
// closer releases the file.
func New(cfg *config.Config, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}

	var console slog.Handler
	if cfg.Development {
		console = tint.NewHandler(stderr, &tint.Options{Level: level})
	} else {
		console = slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: level})
	}

	if cfg.Log.File == "" {
		return slog.New(console), nopCloser{}, nil
	}

	file := &lumberjack.Logger{
		Filename:   cfg.Log.File,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays,
	}
	handler := fanout{
		console,
		slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level}),
	}
	return slog.New(handler), file, nil
}

// Bootstrap is the logger used until the config has been loaded.
func Bootstrap() *slog.Logger {
	return slog.New(tint.NewHandler(os.Stderr, nil))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// fanout sends every record to all of its handlers.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}
