package sorting

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/logger"
	"github.com/amp-labs/amp-sort/sortable"
	"go.uber.org/atomic"
)

// Algorithm names one of the sort engines.
type Algorithm string

const (
	// Quick is the unstable three-way quicksort.
	Quick Algorithm = "quick"
	// Merge is the stable galloping mergesort.
	Merge Algorithm = "merge"
)

// ParseAlgorithm parses "quick"/"quicksort" or "merge"/"mergesort",
// case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "quick", "quicksort":
		return Quick, nil
	case "merge", "mergesort":
		return Merge, nil
	default:
		return "", fmt.Errorf("%w: %q", errors.ErrUnknownAlgorithm, name)
	}
}

// Stable reports whether the algorithm keeps equal elements in input order.
func (a Algorithm) Stable() bool {
	return a == Merge
}

// Sorter is a comparator bundled with instrumentation. Its methods behave
// exactly like the package-level functions, and additionally log rejected
// calls at debug level and record Prometheus metrics.
//
// A Sorter holds no per-call state and may be shared between goroutines, as
// long as they sort different slices.
type Sorter[T any] struct {
	cmp         compare.Comparator[T]
	opts        options
	comparisons *atomic.Int64
}

// New returns a Sorter ordering elements by cmp.
func New[T any](cmp compare.Comparator[T], opts ...Option) *Sorter[T] {
	o := options{
		name:    typeName[T](),
		metrics: true,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return &Sorter[T]{
		cmp:         cmp,
		opts:        o,
		comparisons: atomic.NewInt64(0),
	}
}

// NewNatural returns a Sorter using the natural order of a numeric kind.
func NewNatural[T compare.Number](opts ...Option) *Sorter[T] {
	return New(compare.Natural[T], opts...)
}

// NewSortable returns a Sorter for element kinds that order themselves.
func NewSortable[T sortable.Sortable[T]](opts ...Option) *Sorter[T] {
	return New(sortable.Compare[T], opts...)
}

// Name returns the kind label used in logs and metrics.
func (s *Sorter[T]) Name() string {
	return s.opts.name
}

// Comparator returns the order the Sorter sorts by.
func (s *Sorter[T]) Comparator() compare.Comparator[T] {
	return s.cmp
}

// Comparisons returns the number of comparator calls made so far, when the
// Sorter was created WithComparisonCounting. Otherwise it returns 0.
func (s *Sorter[T]) Comparisons() int64 {
	return s.comparisons.Load()
}

// Sort runs the named algorithm over seq[start:end].
func (s *Sorter[T]) Sort(alg Algorithm, seq []T, start, end int) error {
	switch alg {
	case Quick:
		return s.QuickSort(seq, start, end)
	case Merge:
		return s.MergeSort(seq, start, end)
	default:
		return fmt.Errorf("%w: %q", errors.ErrUnknownAlgorithm, string(alg))
	}
}

// QuickSort is QuickSortFunc with the Sorter's comparator.
func (s *Sorter[T]) QuickSort(seq []T, start, end int) error {
	return s.run(opQuickSort, seq, start, end, checkRange[T], func(cmp compare.Comparator[T]) {
		quickSort(seq, start, end, cmp)
	})
}

// MergeSort is MergeSortFunc with the Sorter's comparator.
func (s *Sorter[T]) MergeSort(seq []T, start, end int) error {
	return s.run(opMergeSort, seq, start, end, checkRange[T], func(cmp compare.Comparator[T]) {
		mergeSortRange(seq[start:end], cmp)
	})
}

// BinarySearch is BinarySearchFunc with the Sorter's comparator.
func (s *Sorter[T]) BinarySearch(seq []T, value T, from, to int) (int, error) {
	result := -1

	err := s.run(opBinarySearch, seq, from, to, checkSearchRange[T], func(cmp compare.Comparator[T]) {
		result = binarySearch(seq, value, from, to, cmp)
	})

	return result, err
}

// Sorted returns a stably sorted copy of seq, leaving seq untouched. A nil
// seq is errors.ErrNilSequence, as for MergeSort.
func (s *Sorter[T]) Sorted(seq []T) ([]T, error) {
	if err := checkComparator(s.cmp); err != nil {
		s.reject(opMergeSort, err)

		return nil, err
	}

	if err := checkRange(seq, 0, len(seq)); err != nil {
		s.reject(opMergeSort, err)

		return nil, err
	}

	out := make([]T, len(seq))
	copy(out, seq)

	if err := s.MergeSort(out, 0, len(out)); err != nil {
		return nil, err
	}

	return out, nil
}

// IsSorted reports whether seq[start:end] is in ascending order.
func (s *Sorter[T]) IsSorted(seq []T, start, end int) (bool, error) {
	if err := checkComparator(s.cmp); err != nil {
		return false, err
	}

	return IsSortedFunc(seq, start, end, s.cmp)
}

func (s *Sorter[T]) run(
	op string,
	seq []T,
	lo, hi int,
	check func([]T, int, int) error,
	body func(compare.Comparator[T]),
) error {
	err := checkComparator(s.cmp)
	if err == nil {
		err = check(seq, lo, hi)
	}

	if err != nil {
		s.reject(op, err)

		return err
	}

	cmp := s.cmp

	var counter *compare.Counter[T]

	if s.opts.counting {
		counter = compare.Counting(s.cmp)
		cmp = counter.Comparator()
	}

	body(cmp)

	length := hi - lo
	if op == opBinarySearch {
		length++
	}

	s.record(op, length, counter)

	return nil
}

func (s *Sorter[T]) reject(op string, err error) {
	s.log().Debug("rejected sorting call",
		"operation", op,
		"kind", s.opts.name,
		"error", err)

	if s.opts.metrics {
		callsTotal.WithLabelValues(op, s.opts.name, outcomeRejected).Inc()
	}
}

func (s *Sorter[T]) record(op string, length int, counter *compare.Counter[T]) {
	var calls int64
	if counter != nil {
		calls = counter.Calls()
		s.comparisons.Add(calls)
	}

	if !s.opts.metrics {
		return
	}

	callsTotal.WithLabelValues(op, s.opts.name, outcomeOK).Inc()
	rangeLength.WithLabelValues(op, s.opts.name).Observe(float64(length))

	if counter != nil {
		comparisonsTotal.WithLabelValues(op, s.opts.name).Add(float64(calls))
	}
}

func (s *Sorter[T]) log() *slog.Logger {
	if s.opts.logger != nil {
		return s.opts.logger
	}

	return logger.Get()
}

// IsSorted reports whether s[start:end] is in natural ascending order.
func IsSorted[T compare.Number](s []T, start, end int) (bool, error) {
	return IsSortedFunc(s, start, end, compare.Natural[T])
}

// IsSortedFunc reports whether s[start:end] is ascending under cmp.
func IsSortedFunc[T any](s []T, start, end int, cmp compare.Comparator[T]) (bool, error) {
	if err := checkComparator(cmp); err != nil {
		return false, err
	}

	if err := checkRange(s, start, end); err != nil {
		return false, err
	}

	for i := start + 1; i < end; i++ {
		if cmp(s[i-1], s[i]) > 0 {
			return false, nil
		}
	}

	return true, nil
}

func typeName[T any]() string {
	var zero T

	name := fmt.Sprintf("%T", zero)
	if name == "<nil>" {
		// Interface element types have no dynamic type in their zero value.
		return "any"
	}

	return name
}
