package sorting

import (
	"log/slog"
)

// Option configures a Sorter.
type Option func(*options)

type options struct {
	name     string
	logger   *slog.Logger
	metrics  bool
	counting bool
}

// WithName sets the kind label used in logs and metrics. Defaults to the
// element type, e.g. "int64" or "sortable.String".
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger sets the logger rejected calls are reported to. Defaults to
// logger.Get().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithoutMetrics disables Prometheus recording for the Sorter.
func WithoutMetrics() Option {
	return func(o *options) {
		o.metrics = false
	}
}

// WithComparisonCounting counts every comparator call and reports the total
// in the sorting_comparisons_total metric and through Sorter.Comparisons.
func WithComparisonCounting() Option {
	return func(o *options) {
		o.counting = true
	}
}
