// Package verify checks the output of a sort against its input: that it is
// ordered, that it is a permutation of the input, and, for stable sorts, that
// equal elements kept their relative order.
package verify

import (
	"fmt"

	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/hashing"
	"github.com/amp-labs/amp-sort/logger"
)

// Sorted returns an error naming the first descending adjacent pair in s.
func Sorted[T any](s []T, cmp compare.Comparator[T]) error {
	for i := 1; i < len(s); i++ {
		if cmp(s[i-1], s[i]) > 0 {
			return logger.AnnotateError(
				fmt.Errorf("%w: element %d orders after element %d", errors.ErrNotSorted, i-1, i),
				"index", i-1)
		}
	}

	return nil
}

// Permutation returns an error unless after holds exactly the elements of
// before, in any order.
func Permutation[T any](before, after []T, hash hashing.HashFunc[T]) error {
	if len(before) != len(after) {
		return logger.AnnotateError(
			fmt.Errorf("%w: length changed from %d to %d", errors.ErrNotPermutation, len(before), len(after)),
			"before", len(before), "after", len(after))
	}

	if !hashing.Fingerprint(before, hash).Equal(hashing.Fingerprint(after, hash)) {
		return fmt.Errorf("%w: fingerprints differ", errors.ErrNotPermutation)
	}

	return nil
}

// Stable returns an error if two adjacent elements of the sorted s compare
// equal under cmp but appear in the opposite order of their origin, the
// position each element had before sorting.
func Stable[T any](s []T, cmp compare.Comparator[T], origin func(T) int) error {
	for i := 1; i < len(s); i++ {
		if cmp(s[i-1], s[i]) == 0 && origin(s[i-1]) > origin(s[i]) {
			return logger.AnnotateError(
				fmt.Errorf("%w: elements from positions %d and %d swapped",
					errors.ErrNotStable, origin(s[i-1]), origin(s[i])),
				"index", i-1)
		}
	}

	return nil
}

// Check runs Sorted and Permutation, and Stable when origin is not nil, and
// reports every failure.
func Check[T any](
	before, after []T,
	cmp compare.Comparator[T],
	hash hashing.HashFunc[T],
	origin func(T) int,
) error {
	var errs errors.Collection

	errs.Add(Sorted(after, cmp))
	errs.Add(Permutation(before, after, hash))

	if origin != nil {
		errs.Add(Stable(after, cmp, origin))
	}

	return errs.GetError()
}
