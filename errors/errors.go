// Package errors defines the sentinel errors returned by the search and sort
// engines, plus a small utility for accumulating several errors.
package errors

import "errors"

var (
	// ErrInvalidRange means the range start lies after its end.
	ErrInvalidRange = errors.New("invalid range")

	// ErrIndexOutOfRange means a range bound lies outside the sequence.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNilSequence means the sequence to sort or search was nil.
	ErrNilSequence = errors.New("nil sequence")

	// ErrNilComparator means a nil comparator was supplied.
	ErrNilComparator = errors.New("nil comparator")

	// ErrUnknownAlgorithm means an algorithm name could not be parsed.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrNotSorted is returned by verification when a range is out of order.
	ErrNotSorted = errors.New("sequence is not sorted")

	// ErrNotPermutation is returned by verification when elements were lost or duplicated.
	ErrNotPermutation = errors.New("sequence is not a permutation of its input")

	// ErrNotStable is returned by verification when equal elements changed relative order.
	ErrNotStable = errors.New("equal elements changed relative order")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Len returns the number of errors collected.
func (c *Collection) Len() int {
	return len(c.errors)
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
