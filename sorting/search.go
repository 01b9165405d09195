package sorting

import (
	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/sortable"
)

// BinarySearch searches the ascending range s[from..to] (both inclusive) for
// value using the natural order of its kind.
//
// It returns the index of an element equal to value. With duplicates, which
// of them is found is unspecified. When value is absent it returns
// -(insertionPoint)-1, where insertionPoint is the index at which value would
// have to be inserted to keep the range sorted; the result is then always
// negative. The range must already be sorted, or the result is undefined.
//
// For floats, equality follows compare.Natural: a NaN finds a NaN, and -0.0
// does not find +0.0.
func BinarySearch[T compare.Number](s []T, value T, from, to int) (int, error) {
	return BinarySearchFunc(s, value, from, to, compare.Natural[T])
}

// BinarySearchFunc is BinarySearch with an explicit comparator. The range must
// be sorted ascending under cmp.
func BinarySearchFunc[T any](s []T, value T, from, to int, cmp compare.Comparator[T]) (int, error) {
	if err := checkComparator(cmp); err != nil {
		return -1, err
	}

	if err := checkSearchRange(s, from, to); err != nil {
		return -1, err
	}

	return binarySearch(s, value, from, to, cmp), nil
}

// BinarySearchSortable is BinarySearch for element kinds that order themselves.
func BinarySearchSortable[T sortable.Sortable[T]](s []T, value T, from, to int) (int, error) {
	return BinarySearchFunc(s, value, from, to, sortable.Compare[T])
}

// InsertionPoint decodes a negative search result into the index at which the
// value would be inserted. found is false for non-negative results.
func InsertionPoint(result int) (index int, found bool) {
	if result >= 0 {
		return result, true
	}

	return -result - 1, false
}

func binarySearch[T any](s []T, value T, low, high int, cmp compare.Comparator[T]) int {
	for low <= high {
		mid := int(uint(low+high) >> 1)

		switch r := cmp(s[mid], value); {
		case r < 0:
			low = mid + 1
		case r > 0:
			high = mid - 1
		default:
			return mid
		}
	}

	return -(low + 1)
}
