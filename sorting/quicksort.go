package sorting

import (
	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/sortable"
)

const (
	// Ranges of at most this many elements are insertion sorted by
	// mergesort; quicksort insertion sorts ranges strictly shorter.
	simpleLength = 7

	// Above this length quicksort takes its pivot as a median of medians.
	ninetherLength = 40
)

// QuickSort sorts s[start:end] in place into the natural order of its kind.
// The sort is not stable. See the package documentation for the algorithm.
func QuickSort[T compare.Number](s []T, start, end int) error {
	return QuickSortFunc(s, start, end, compare.Natural[T])
}

// QuickSortFunc sorts s[start:end] in place by cmp. The sort is not stable.
func QuickSortFunc[T any](s []T, start, end int, cmp compare.Comparator[T]) error {
	if err := checkComparator(cmp); err != nil {
		return err
	}

	if err := checkRange(s, start, end); err != nil {
		return err
	}

	quickSort(s, start, end, cmp)

	return nil
}

// QuickSortSortable sorts s[start:end] in place for element kinds that order
// themselves. The sort is not stable.
func QuickSortSortable[T sortable.Sortable[T]](s []T, start, end int) error {
	return QuickSortFunc(s, start, end, sortable.Compare[T])
}

func quickSort[T any](s []T, start, end int, cmp compare.Comparator[T]) {
	for {
		length := end - start
		if length < simpleLength {
			insertionSort(s, start, end, cmp)

			return
		}

		pivot := s[choosePivot(s, start, end, cmp)]

		// Bentley-McIlroy partition. While scanning, the range looks like
		//
		//	[start, a) == pivot
		//	[a, b)     <  pivot
		//	[b, c]     unscanned
		//	(c, d]     >  pivot
		//	(d, end)   == pivot
		a, b := start, start
		c, d := end-1, end-1

		for {
			for b <= c {
				r := cmp(s[b], pivot)
				if r > 0 {
					break
				}

				if r == 0 {
					s[a], s[b] = s[b], s[a]
					a++
				}

				b++
			}

			for c >= b {
				r := cmp(s[c], pivot)
				if r < 0 {
					break
				}

				if r == 0 {
					s[c], s[d] = s[d], s[c]
					d--
				}

				c--
			}

			if b > c {
				break
			}

			s[b], s[c] = s[c], s[b]
			b++
			c--
		}

		// Move both equal runs to the middle: [<][=][>].
		n := min(a-start, b-a)
		swapRange(s, start, b-n, n)

		n = min(d-c, end-1-d)
		swapRange(s, b, end-n, n)

		less := b - a
		greater := d - c

		// Recurse into the smaller side and loop on the larger one, so the
		// stack stays logarithmic even when pivots are poor.
		if less < greater {
			if less > 1 {
				quickSort(s, start, start+less, cmp)
			}

			start = end - greater
		} else {
			if greater > 1 {
				quickSort(s, end-greater, end, cmp)
			}

			end = start + less
		}

		if end-start < 2 {
			return
		}
	}
}

// choosePivot returns the index of the pivot for s[start:end], which has at
// least simpleLength elements.
func choosePivot[T any](s []T, start, end int, cmp compare.Comparator[T]) int {
	length := end - start
	middle := int(uint(start+end) >> 1)

	if length == simpleLength {
		return middle
	}

	bottom, top := start, end-1

	if length > ninetherLength {
		step := length / 8
		bottom = medianOfThree(s, bottom, bottom+step, bottom+2*step, cmp)
		middle = medianOfThree(s, middle-step, middle, middle+step, cmp)
		top = medianOfThree(s, top-2*step, top-step, top, cmp)
	}

	return medianOfThree(s, bottom, middle, top, cmp)
}

// medianOfThree returns whichever of the indices a, b, c holds the median value.
func medianOfThree[T any](s []T, a, b, c int, cmp compare.Comparator[T]) int {
	x, y, z := s[a], s[b], s[c]
	xy := cmp(x, y)
	xz := cmp(x, z)
	yz := cmp(y, z)

	if xy < 0 {
		switch {
		case yz < 0:
			return b
		case xz < 0:
			return c
		default:
			return a
		}
	}

	switch {
	case yz > 0:
		return b
	case xz > 0:
		return c
	default:
		return a
	}
}

// swapRange swaps the n elements starting at a with the n elements starting at b.
func swapRange[T any](s []T, a, b, n int) {
	for i := range n {
		s[a+i], s[b+i] = s[b+i], s[a+i]
	}
}

// insertionSort sorts s[start:end] by adjacent swaps. It is stable.
func insertionSort[T any](s []T, start, end int, cmp compare.Comparator[T]) {
	for i := start + 1; i < end; i++ {
		for j := i; j > start && cmp(s[j-1], s[j]) > 0; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
