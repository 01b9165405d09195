package sortable

import (
	"github.com/amp-labs/amp-sort/compare"
)

// Sortable is implemented by element types that carry their own order.
// LessThan must be a strict weak order, and Equals must agree with it:
// a.Equals(b) exactly when neither a.LessThan(b) nor b.LessThan(a).
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare adapts a Sortable type to a compare.Comparator. It is the
// comparator the sorting package uses for its ...Sortable entry points.
func Compare[T Sortable[T]](a, b T) int {
	if a.LessThan(b) {
		return -1
	}

	if a.Equals(b) {
		return 0
	}

	return 1
}

// Comparator returns Compare as a compare.Comparator value.
func Comparator[T Sortable[T]]() compare.Comparator[T] {
	return Compare[T]
}
