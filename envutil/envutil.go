// Package envutil reads typed configuration from environment variables.
package envutil

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

var ErrInvalidLogLevel = errors.New("invalid log level")

type envContextKey string

// WithEnvOverride makes readers called with ctx see value for key instead of
// the process environment. Handy in tests, which can't safely share os env.
func WithEnvOverride(ctx context.Context, key string, value string) context.Context {
	return context.WithValue(ctx, envContextKey(key), value)
}

func get(ctx context.Context, key string) Reader[string] {
	if ctx != nil {
		if val, ok := ctx.Value(envContextKey(key)).(string); ok {
			return Reader[string]{key: key, present: true, value: val}
		}
	}

	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the given environment variable key.
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

// Bool returns a Reader that parses the variable with strconv.ParseBool.
func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(ctx, key), strconv.ParseBool), opts)
}

// Int returns a Reader that parses the variable as a base-10 int.
func Int(ctx context.Context, key string, opts ...Option[int]) Reader[int] {
	return apply(Map(get(ctx, key), strconv.Atoi), opts)
}

// SlogLevel returns a Reader that parses debug, info, warn or error (any case).
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(get(ctx, key), parseSlogLevel), opts)
}

func parseSlogLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}
