// Package logger configures structured logging with log/slog and carries a
// logger through a context.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mossy2100/galaxon-core/stringify"
)

// configMutex serialises Configure, which replaces process-wide defaults.
var configMutex sync.Mutex //nolint:gochecknoglobals

// It's considered good practice to use unexported custom types for context keys.
type contextKey string

// ErrInvalidLevel is returned by ParseLevel for unknown level names.
var ErrInvalidLevel = errors.New("invalid log level")

// Options is used to configure logging.
type Options struct {
	Subsystem string
	JSON      bool
	MinLevel  slog.Level
	Output    io.Writer
}

// New builds a logger from opts without touching any global state.
func New(opts Options) *slog.Logger {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	logger := slog.New(handler)
	if opts.Subsystem != "" {
		logger = logger.With("subsystem", opts.Subsystem)
	}

	return logger
}

// Configure builds a logger from opts and installs it as the slog default.
// The standard library log package is redirected into it at info level.
func Configure(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	logger := New(opts)

	slog.SetDefault(logger)

	def := log.Default()
	*def = *slog.NewLogLogger(logger.Handler(), slog.LevelInfo)

	return logger
}

// ParseLevel accepts debug, info, warn/warning and error in any case.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
}

// WithLogger attaches logger to ctx; Get returns it.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("logger"), logger)
}

// WithMuted marks ctx so that Get returns a logger that discards everything.
func WithMuted(ctx context.Context, muted bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("mute"), muted)
}

func isMuted(ctx context.Context) bool {
	muted, ok := ctx.Value(contextKey("mute")).(bool)

	return ok && muted
}

// nullLogger discards all output. It is returned by Get for muted contexts.
var nullLogger = slog.New(slog.DiscardHandler) //nolint:gochecknoglobals

// Get returns the logger attached to ctx, or slog.Default() if there is none.
func Get(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}

	if isMuted(ctx) {
		return nullLogger
	}

	if logger, ok := ctx.Value(contextKey("logger")).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return slog.Default()
}

// Value is a slog attribute holding the stringify rendering of v, so floats
// keep their decimal point and containers stay readable in text logs.
func Value(key string, v any) slog.Attr {
	return slog.String(key, stringify.Value(v))
}
