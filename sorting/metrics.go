package sorting

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics recorded by Sorter. Each call is recorded once, after it
// finishes; nothing is recorded per comparison.

var (
	// callsTotal counts Sorter calls.
	//
	// Labels:
	//   - operation: "quicksort", "mergesort" or "binary_search".
	//   - kind: the Sorter's name (by default the element type, e.g. "float64").
	//   - outcome: "ok", or "rejected" when the range or comparator was invalid.
	callsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sorting_calls_total",
		Help: "The total number of sort and search calls",
	}, []string{"operation", "kind", "outcome"})

	// rangeLength observes the length of every accepted range.
	//
	// Buckets grow by powers of four from 8 (just above the insertion sort
	// cutoff) to about two million elements.
	rangeLength = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "sorting_range_length",
		Help:    "The number of elements in each sorted or searched range",
		Buckets: prometheus.ExponentialBuckets(8, 4, 10), //nolint:mnd
	}, []string{"operation", "kind"})

	// comparisonsTotal counts comparator invocations, for Sorters created
	// with WithComparisonCounting.
	comparisonsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sorting_comparisons_total",
		Help: "The total number of comparator calls made by counting sorters",
	}, []string{"operation", "kind"})
)

const (
	opQuickSort    = "quicksort"
	opMergeSort    = "mergesort"
	opBinarySearch = "binary_search"

	outcomeOK       = "ok"
	outcomeRejected = "rejected"
)
