// Package sortable provides the element kinds that carry their own order,
// for use with the ...Sortable entry points of the sorting package.
//
// # Overview
//
// The [Sortable] interface extends [github.com/amp-labs/amp-sort/compare.Comparable]
// with a LessThan method, giving both equality and ordering. [Compare] turns any
// Sortable type into a [github.com/amp-labs/amp-sort/compare.Comparator].
//
// Ready-made kinds wrap common primitives: [Int], [Byte], [String], [Float64]
// and [NaturalString].
//
// # Usage
//
//	people := []sortable.String{"mallory", "alice", "bob"}
//	if err := sorting.MergeSortSortable(people, 0, len(people)); err != nil {
//	    return err
//	}
//	// people is now: alice, bob, mallory
//
// # Creating Custom Sortable Types
//
//	type Task struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (t Task) Equals(other Task) bool {
//	    return t.Priority == other.Priority && t.Name == other.Name
//	}
//
//	func (t Task) LessThan(other Task) bool {
//	    if t.Priority != other.Priority {
//	        return t.Priority < other.Priority
//	    }
//	    return t.Name < other.Name
//	}
//
// Equals must agree with LessThan. A type whose Equals is stricter than its
// order (for example, comparing a field LessThan ignores) breaks binary search
// and leaves Compare without a consistent answer for equivalent values.
//
// # Thread Safety
//
// The wrapper types are value types and are safe to share. Sorting a slice
// of them is not: the engines mutate the caller's slice in place.
package sortable
