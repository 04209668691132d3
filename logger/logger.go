// Package logger configures log/slog for the reorder tools and hands out
// loggers that carry context-scoped attributes (subsystem, run id, extra values).
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/amp-labs/reorderable/envutil"
	"github.com/google/uuid"
)

// Default subsystem name, set by ConfigureLogging.
var subsystem atomic.Value //nolint:gochecknoglobals

// configMutex serializes ConfigureLoggingWithOptions, which swaps the slog default.
var configMutex sync.Mutex //nolint:gochecknoglobals

type contextKey string

// Options is used to configure logging.
type Options struct {
	Subsystem string
	JSON      bool
	MinLevel  slog.Level
	Output    io.Writer
}

// ConfigureLoggingWithOptions installs a slog default logger built from opts
// and returns it. Errors annotated with AnnotateError have their attributes
// expanded by the installed handler.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	logger := slog.New(&slogErrorLogger{inner: handler})

	slog.SetDefault(logger)
	subsystem.Store(opts.Subsystem)

	return logger
}

// Option is a functional option for configuring logging via ConfigureLogging.
type Option func(*Options)

// WithOutput overrides the LOG_OUTPUT setting.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

// ErrInvalidLogOutput is returned when an invalid log output destination is specified.
var ErrInvalidLogOutput = errors.New("invalid log output")

// ConfigureLogging configures logging from the environment:
//
//	LOG_JSON    true for JSON output (default false)
//	LOG_LEVEL   debug, info, warn or error (default info)
//	LOG_OUTPUT  stdout or stderr (default stderr)
//
// Bad values fall back to the default and are reported with a warning.
func ConfigureLogging(ctx context.Context, app string, opts ...Option) *slog.Logger {
	logJSON := envutil.Bool(ctx, "LOG_JSON", envutil.Default(false)).ValueOrElse(false)
	minLevel := envutil.SlogLevel(ctx, "LOG_LEVEL", envutil.Default(slog.LevelInfo)).ValueOrElse(slog.LevelInfo)

	output := envutil.Map(envutil.String(ctx, "LOG_OUTPUT"), func(outName string) (io.Writer, error) {
		switch outName {
		case "stdout":
			return os.Stdout, nil
		case "stderr":
			return os.Stderr, nil
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidLogOutput, outName)
		}
	}).ValueOrElse(os.Stderr)

	options := Options{
		Subsystem: app,
		JSON:      logJSON,
		MinLevel:  minLevel,
		Output:    output,
	}

	for _, o := range opts {
		o(&options)
	}

	return ConfigureLoggingWithOptions(options)
}

// WithSubsystem overrides the default subsystem for loggers obtained from ctx.
func WithSubsystem(ctx context.Context, subsystem string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("subsystem"), subsystem)
}

// GetSubsystem returns the subsystem from the context, falling back to the
// one given to ConfigureLogging.
func GetSubsystem(ctx context.Context) string { //nolint:contextcheck
	if ctx == nil {
		ctx = context.Background()
	}

	if val, ok := ctx.Value(contextKey("subsystem")).(string); ok {
		return val
	}

	if val, ok := subsystem.Load().(string); ok {
		return val
	}

	return ""
}

// WithRunId tags ctx with a fresh random run id, so all log lines of one
// invocation can be grouped.
func WithRunId(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("run_id"), uuid.NewString())
}

// GetRunId returns the run id set by WithRunId.
func GetRunId(ctx context.Context) (string, bool) { //nolint:contextcheck
	if ctx == nil {
		return "", false
	}

	val, ok := ctx.Value(contextKey("run_id")).(string)

	return val, ok
}

// WithMuted suppresses all output from loggers obtained from ctx.
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

// With returns a new context with the given key-value pairs added.
// They are attached to every logger obtained from the context.
func With(ctx context.Context, values ...any) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	if len(values) == 0 {
		return ctx
	}

	vals := append(append([]any(nil), getValues(ctx)...), values...)

	return context.WithValue(ctx, contextKey("loggerValues"), vals)
}

func getValues(ctx context.Context) []any {
	vals, _ := ctx.Value(contextKey("loggerValues")).([]any)

	return vals
}

var nullLogger = slog.New(slog.DiscardHandler) //nolint:gochecknoglobals

// WithLogger makes Get use base instead of slog.Default for ctx.
// Tests use it to send a component's logs to the test output.
func WithLogger(ctx context.Context, base *slog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("base"), base)
}

// Get returns a logger carrying the subsystem, run id and any values added
// with With. Only the first non-nil context is consulted.
//
//nolint:contextcheck
func Get(ctx ...context.Context) *slog.Logger {
	realCtx := context.Background()

	for _, c := range ctx {
		if c != nil {
			realCtx = c

			break
		}
	}

	if isMuted(realCtx) {
		return nullLogger
	}

	base, ok := realCtx.Value(contextKey("base")).(*slog.Logger)
	if !ok || base == nil {
		base = slog.Default()
	}

	logger := base.With("subsystem", GetSubsystem(realCtx))

	if runId, ok := GetRunId(realCtx); ok {
		logger = logger.With("run-id", runId)
	}

	if vals := getValues(realCtx); vals != nil {
		logger = logger.With(vals...)
	}

	return logger
}
