package sorting

import (
	"fmt"

	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/logger"
)

// checkRange validates the half-open range [start, end) over s.
func checkRange[T any](s []T, start, end int) error {
	if s == nil {
		return errors.ErrNilSequence
	}

	length := len(s)

	if start > end {
		return rangeError(errors.ErrInvalidRange,
			fmt.Sprintf("start index %d is greater than end index %d", start, end),
			start, end, length)
	}

	if start < 0 {
		return rangeError(errors.ErrIndexOutOfRange,
			fmt.Sprintf("start index %d", start),
			start, end, length)
	}

	if end > length {
		return rangeError(errors.ErrIndexOutOfRange,
			fmt.Sprintf("end index %d exceeds length %d", end, length),
			start, end, length)
	}

	return nil
}

// checkSearchRange validates the inclusive range [from, to] over s. An empty
// range is written as to == from-1.
func checkSearchRange[T any](s []T, from, to int) error {
	if s == nil {
		return errors.ErrNilSequence
	}

	length := len(s)

	if from > to+1 {
		return rangeError(errors.ErrInvalidRange,
			fmt.Sprintf("from index %d is greater than to index %d", from, to),
			from, to, length)
	}

	if from < 0 {
		return rangeError(errors.ErrIndexOutOfRange,
			fmt.Sprintf("from index %d", from),
			from, to, length)
	}

	if to >= length {
		return rangeError(errors.ErrIndexOutOfRange,
			fmt.Sprintf("to index %d exceeds last index %d", to, length-1),
			from, to, length)
	}

	return nil
}

func checkComparator[T any](cmp compare.Comparator[T]) error {
	if cmp == nil {
		return errors.ErrNilComparator
	}

	return nil
}

func rangeError(sentinel error, msg string, start, end, length int) error {
	return logger.AnnotateError(fmt.Errorf("%w: %s", sentinel, msg),
		"start", start, "end", end, "length", length)
}
