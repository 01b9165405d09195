package sortable

import "github.com/amp-labs/amp-sort/compare"

// String orders strings byte-wise.
type String string

var _ Sortable[String] = (*String)(nil)

// Equals returns true if both strings hold the same bytes.
func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

// LessThan returns true if this String orders byte-wise before the other String.
func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

// NaturalString orders strings so that embedded numbers compare numerically,
// e.g. "v2" before "v10". See compare.NaturalStrings.
type NaturalString string

var _ Sortable[NaturalString] = (*NaturalString)(nil)

// Equals returns true if both strings hold the same bytes. Strings the
// natural order treats as equivalent, like "a1" and "a01", are not equal.
func (s NaturalString) Equals(other NaturalString) bool {
	return string(s) == string(other)
}

// LessThan returns true if this NaturalString orders before the other one.
func (s NaturalString) LessThan(other NaturalString) bool {
	return compare.NaturalStrings(string(s), string(other)) < 0
}
