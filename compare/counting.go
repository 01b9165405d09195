package compare

import (
	"go.uber.org/atomic"
)

// Counter wraps a Comparator and counts how many times it was invoked.
// It is safe to share a Counter between goroutines.
type Counter[T any] struct {
	inner Comparator[T]
	calls *atomic.Int64
}

// Counting returns a Counter around c.
func Counting[T any](c Comparator[T]) *Counter[T] {
	return &Counter[T]{
		inner: c,
		calls: atomic.NewInt64(0),
	}
}

// Compare invokes the wrapped comparator and increments the call count.
func (c *Counter[T]) Compare(a, b T) int {
	c.calls.Inc()

	return c.inner(a, b)
}

// Comparator returns the counting comparator as a plain Comparator value.
func (c *Counter[T]) Comparator() Comparator[T] {
	return c.Compare
}

// Calls returns the number of comparisons performed so far.
func (c *Counter[T]) Calls() int64 {
	return c.calls.Load()
}

// Reset sets the call count back to zero and returns the previous count.
func (c *Counter[T]) Reset() int64 {
	return c.calls.Swap(0)
}
