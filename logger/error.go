package logger

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// AnnotateError wraps an error with structured logging attributes (slog key-value pairs).
// When the returned error is logged through a handler built by NewErrorHandler
// (ConfigureLogging installs one), the attributes are added to the record.
//
// The sorting package uses this to attach the offending range to precondition
// failures:
//
//	return logger.AnnotateError(
//	    fmt.Errorf("%w: start %d > end %d", errors.ErrInvalidRange, start, end),
//	    "start", start, "end", end, "length", length)
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

// ErrorAttrs returns every attribute attached with AnnotateError anywhere in
// the error tree of err, outermost first.
func ErrorAttrs(err error) []slog.Attr {
	var attrs []slog.Attr

	collectAttrs(err, &attrs)

	return attrs
}

func collectAttrs(err error, out *[]slog.Attr) {
	if err == nil {
		return
	}

	if se, ok := err.(*slogError); ok { //nolint:errorlint
		*out = append(*out, se.attrs...)
	}

	switch x := err.(type) { //nolint:errorlint
	case interface{ Unwrap() []error }:
		for _, e := range x.Unwrap() {
			collectAttrs(e, out)
		}
	case interface{ Unwrap() error }:
		collectAttrs(x.Unwrap(), out)
	}
}

// slogError wraps an error with structured logging attributes.
// It supports unwrapping, so errors.Is and errors.As see through it.
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

// errorHandler is a slog.Handler decorator that extracts structured attributes
// from annotated errors and includes them in the log output.
type errorHandler struct {
	inner slog.Handler
}

var _ slog.Handler = (*errorHandler)(nil)

// NewErrorHandler wraps inner so that records carrying annotated errors also
// carry the annotation attributes.
func NewErrorHandler(inner slog.Handler) slog.Handler {
	return &errorHandler{inner: inner}
}

func (s *errorHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return s.inner.Enabled(ctx, level)
}

func (s *errorHandler) Handle(ctx context.Context, record slog.Record) error {
	var errAttrs []slog.Attr

	record.Attrs(func(attr slog.Attr) bool {
		if err, ok := attr.Value.Any().(error); ok {
			var se *slogError
			if errors.As(err, &se) || isJoined(err) {
				errAttrs = append(errAttrs, ErrorAttrs(err)...)
			}
		}

		return true
	})

	if len(errAttrs) == 0 {
		return s.inner.Handle(ctx, record)
	}

	r := record.Clone()
	r.AddAttrs(errAttrs...)

	return s.inner.Handle(ctx, r)
}

func isJoined(err error) bool {
	_, ok := err.(interface{ Unwrap() []error }) //nolint:errorlint

	return ok
}

func (s *errorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &errorHandler{inner: s.inner.WithAttrs(attrs)}
}

func (s *errorHandler) WithGroup(name string) slog.Handler {
	return &errorHandler{inner: s.inner.WithGroup(name)}
}
