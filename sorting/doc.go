// Package sorting implements in-place sorting and searching over ranges of
// Go slices.
//
// # Algorithms
//
// Three independent engines share one comparison abstraction,
// [github.com/amp-labs/amp-sort/compare.Comparator]:
//
//   - [BinarySearch] finds a value in an ascending, inclusive range [from, to].
//   - [QuickSort] sorts [start, end) in place. It picks a median-of-3 pivot
//     (median-of-9 above 40 elements), partitions three ways so runs of equal
//     keys are finished in a single pass, and switches to insertion sort
//     below 7 elements. It is not stable.
//   - [MergeSort] sorts [start, end) stably using one scratch buffer. Its
//     merge step gallops: it locates whole blocks of one run with an
//     exponential search and copies them at once, and skips merging when the
//     two halves are already in order.
//
// # Kinds
//
// Every engine is written once and instantiated per element kind:
//
//	sorting.QuickSort([]float64{...}, 0, n)              // natural order, numeric kinds
//	sorting.MergeSortSortable([]sortable.String{...}, 0, n) // types that order themselves
//	sorting.MergeSortFunc(records, 0, n, byTimestamp)    // explicit comparator
//
// Natural order for floats places NaN after every other value and -0.0 before
// +0.0, so searching and both sorts agree on float data.
//
// # Errors
//
// Ranges are validated before anything is touched:
//
//   - a nil slice yields [github.com/amp-labs/amp-sort/errors.ErrNilSequence]
//   - start > end yields [github.com/amp-labs/amp-sort/errors.ErrInvalidRange]
//   - a bound outside the slice yields [github.com/amp-labs/amp-sort/errors.ErrIndexOutOfRange]
//
// The returned errors carry the offending bounds as log attributes (see
// [github.com/amp-labs/amp-sort/logger.AnnotateError]).
//
// # Instrumentation
//
// The package-level functions do no logging and record no metrics. A
// [Sorter] bundles a comparator with a logger and Prometheus metrics for
// callers that want them.
package sorting
