package sortable

import "github.com/amp-labs/amp-sort/compare"

// Float64 is a sortable float64 using the total order of compare.Natural:
// NaN sorts last and equals only NaN, and -0.0 sorts before +0.0.
type Float64 float64

var _ Sortable[Float64] = (*Float64)(nil)

// Equals reports whether both values are the same float64 under the total
// order. Unlike ==, NaN equals NaN and -0.0 does not equal +0.0.
func (f Float64) Equals(other Float64) bool {
	return compare.Equal(float64(f), float64(other))
}

// LessThan reports whether f orders strictly before other.
func (f Float64) LessThan(other Float64) bool {
	return compare.Less(float64(f), float64(other))
}
