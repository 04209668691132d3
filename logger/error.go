package logger

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// AnnotateError wraps err with slog key-value pairs. Loggers installed by
// ConfigureLogging expand the pairs whenever the error is logged as an
// attribute, and ErrorAttrs recovers them anywhere else. The wrapper is
// transparent to errors.Is and errors.As.
//
//	return AnnotateError(err, "index", index, "length", n)
//
// Returns nil if err is nil.
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	r := slog.NewRecord(time.Now(), slog.LevelDebug, "", 0)
	r.Add(args...)

	var errAttrs []slog.Attr

	r.Attrs(func(attr slog.Attr) bool {
		errAttrs = append(errAttrs, attr)

		return true
	})

	return &slogError{
		err:   err,
		attrs: errAttrs,
	}
}

// ErrorAttrs returns the attributes attached to err (or anything it wraps)
// by AnnotateError, outermost annotation first.
func ErrorAttrs(err error) []slog.Attr {
	var attrs []slog.Attr

	for err != nil {
		var se *slogError
		if !errors.As(err, &se) {
			break
		}

		attrs = append(attrs, se.attrs...)
		err = se.err
	}

	return attrs
}

type slogError struct {
	err   error
	attrs []slog.Attr
}

func (s *slogError) Error() string {
	return s.err.Error()
}

func (s *slogError) Unwrap() error {
	return s.err
}

var _ error = (*slogError)(nil)

// slogErrorLogger is a slog.Handler decorator that replaces annotated errors
// with their underlying error and appends the annotation attributes to the record.
type slogErrorLogger struct {
	inner slog.Handler
}

var _ slog.Handler = (*slogErrorLogger)(nil)

func (s *slogErrorLogger) Enabled(ctx context.Context, level slog.Level) bool {
	return s.inner.Enabled(ctx, level)
}

func (s *slogErrorLogger) Handle(ctx context.Context, record slog.Record) error {
	var (
		baseAttrs []slog.Attr
		errAttrs  []slog.Attr
	)

	record.Attrs(func(attr slog.Attr) bool {
		if err, ok := attr.Value.Any().(error); ok {
			if extra := ErrorAttrs(err); len(extra) > 0 {
				errAttrs = append(errAttrs, extra...)
			}
		}

		baseAttrs = append(baseAttrs, attr)

		return true
	})

	if len(errAttrs) == 0 {
		return s.inner.Handle(ctx, record)
	}

	r := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	r.AddAttrs(baseAttrs...)
	r.AddAttrs(errAttrs...)

	return s.inner.Handle(ctx, r)
}

func (s *slogErrorLogger) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &slogErrorLogger{inner: s.inner.WithAttrs(attrs)}
}

func (s *slogErrorLogger) WithGroup(name string) slog.Handler {
	return &slogErrorLogger{inner: s.inner.WithGroup(name)}
}
