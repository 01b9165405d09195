package compare

import (
	"cmp"
	"math"
)

// Comparator is a total order over T. It returns a negative number when a
// orders before b, zero when they are equivalent and a positive number when a
// orders after b.
//
// The sort and search engines assume the order is consistent (antisymmetric
// and transitive). An inconsistent comparator never causes a panic, but the
// resulting permutation or search index is unspecified.
type Comparator[T any] func(a, b T) int

// Reverse returns the comparator with the opposite order.
func (c Comparator[T]) Reverse() Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Then returns a comparator that falls back to next whenever c reports
// two values as equivalent.
func (c Comparator[T]) Then(next Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if r := c(a, b); r != 0 {
			return r
		}

		return next(a, b)
	}
}

// By returns a comparator ordering values of T by a key extracted with key
// and compared with c.
func By[T, K any](key func(T) K, c Comparator[K]) Comparator[T] {
	return func(a, b T) int {
		return c(key(a), key(b))
	}
}

// Natural is the natural order for the numeric kinds.
//
// Integers compare numerically. Floats use a total order that differs from
// the native operators in two places: NaN orders after every other value
// (including +Inf) and is equal only to NaN, and -0.0 orders before +0.0.
// Binary search, quicksort and mergesort all rely on it for float input.
func Natural[T Number](a, b T) int {
	if a < b {
		return -1
	}

	if a > b {
		return 1
	}

	aNaN := a != a //nolint:gocritic
	bNaN := b != b //nolint:gocritic

	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	}

	// a == b. Only zeros can still differ, by their sign bit.
	if a == 0 {
		aNeg := math.Signbit(float64(a))
		bNeg := math.Signbit(float64(b))

		switch {
		case aNeg == bNeg:
			return 0
		case aNeg:
			return -1
		default:
			return 1
		}
	}

	return 0
}

// Less reports whether a orders strictly before b in the natural order.
func Less[T Number](a, b T) bool {
	return Natural(a, b) < 0
}

// Equal reports whether a and b are the same value in the natural order.
// For floats this is bit identity, except that every NaN equals every other
// NaN: -0.0 and +0.0 are not equal.
func Equal[T Number](a, b T) bool {
	return Natural(a, b) == 0
}

// Ordered orders any cmp.Ordered type with the native < and > operators.
// Use it for strings; numeric kinds should prefer Natural, which also
// orders NaN and signed zeros.
func Ordered[T cmp.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
