package sorting

import (
	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/sortable"
)

// MergeSort sorts s[start:end] in place into the natural order of its kind.
// The sort is stable: equal elements keep their relative order.
func MergeSort[T compare.Number](s []T, start, end int) error {
	return MergeSortFunc(s, start, end, compare.Natural[T])
}

// MergeSortFunc sorts s[start:end] in place by cmp. The sort is stable.
//
// It allocates one scratch buffer of end-start elements for the duration of
// the call.
func MergeSortFunc[T any](s []T, start, end int, cmp compare.Comparator[T]) error {
	if err := checkComparator(cmp); err != nil {
		return err
	}

	if err := checkRange(s, start, end); err != nil {
		return err
	}

	mergeSortRange(s[start:end], cmp)

	return nil
}

// MergeSortSortable sorts s[start:end] in place for element kinds that order
// themselves. The sort is stable.
func MergeSortSortable[T sortable.Sortable[T]](s []T, start, end int) error {
	return MergeSortFunc(s, start, end, sortable.Compare[T])
}

// MergeSorted returns a stably sorted copy of s in natural order, leaving s
// untouched.
func MergeSorted[T compare.Number](s []T) ([]T, error) {
	return MergeSortedFunc(s, compare.Natural[T])
}

// MergeSortedFunc returns a copy of s stably sorted by cmp, leaving s
// untouched. It validates its arguments like MergeSortFunc: a nil s is
// errors.ErrNilSequence and a nil cmp is errors.ErrNilComparator.
func MergeSortedFunc[T any](s []T, cmp compare.Comparator[T]) ([]T, error) {
	if err := checkComparator(cmp); err != nil {
		return nil, err
	}

	if err := checkRange(s, 0, len(s)); err != nil {
		return nil, err
	}

	out := make([]T, len(s))
	copy(out, s)

	mergeSortRange(out, cmp)

	return out, nil
}

// mergeSortRange sorts all of s. Both s and the scratch copy start out with
// the same contents; each recursion level swaps which one it reads from.
func mergeSortRange[T any](s []T, cmp compare.Comparator[T]) {
	if len(s) < 2 {
		return
	}

	scratch := make([]T, len(s))
	copy(scratch, s)

	mergeSort(scratch, s, 0, len(s), cmp)
}

// mergeSort leaves out[start:end] sorted. On entry in[start:end] and
// out[start:end] hold the same elements; on return in[start:end] holds an
// unspecified permutation of them.
func mergeSort[T any](in, out []T, start, end int, cmp compare.Comparator[T]) {
	if end-start <= simpleLength {
		for i := start + 1; i < end; i++ {
			current := out[i]
			prev := out[i-1]

			if cmp(prev, current) <= 0 {
				continue
			}

			j := i
			for {
				out[j] = prev
				j--

				if j == start {
					break
				}

				prev = out[j-1]
				if cmp(prev, current) <= 0 {
					break
				}
			}

			out[j] = current
		}

		return
	}

	med := int(uint(start+end) >> 1)
	mergeSort(out, in, start, med, cmp)
	mergeSort(out, in, med, end, cmp)

	// Halves already in order relative to each other.
	if cmp(in[med-1], in[med]) <= 0 {
		copy(out[start:end], in[start:end])

		return
	}

	left, right, i := start, med, start

	for {
		leftVal := in[left]
		rightVal := in[right]

		if cmp(leftVal, rightVal) <= 0 {
			// Take every left element up to and including ties with
			// rightVal, then rightVal itself.
			last := find(in, rightVal, -1, left+1, med-1, cmp)
			n := copy(out[i:], in[left:last+1])
			i += n
			out[i] = rightVal
			i++
			right++
			left = last + 1
		} else {
			// Take every right element strictly below leftVal, then
			// leftVal itself. Ties stay behind it.
			last := find(in, leftVal, 0, right+1, end-1, cmp)
			n := copy(out[i:], in[right:last+1])
			i += n
			out[i] = leftVal
			i++
			left++
			right = last + 1
		}

		if right >= end || left >= med {
			break
		}
	}

	if right >= end {
		copy(out[i:], in[left:med])
	} else {
		copy(out[i:], in[right:end])
	}
}

// find returns the last index m in s[l..r] (inclusive, ascending) for which
// cmp(val, s[m]) > bnd, or l-1 if there is none. With bnd == -1 that is the
// last element <= val; with bnd == 0 the last element < val.
//
// It first gallops with doubling steps to bracket the answer, then binary
// searches inside the bracket, so a block of k elements costs O(log k)
// comparisons.
func find[T any](s []T, val T, bnd, l, r int, cmp compare.Comparator[T]) int {
	m, step := l, 1

	for m <= r {
		if cmp(val, s[m]) > bnd {
			l = m + 1
		} else {
			r = m - 1

			break
		}

		m += step
		step <<= 1
	}

	for l <= r {
		m = int(uint(l+r) >> 1)
		if cmp(val, s[m]) > bnd {
			l = m + 1
		} else {
			r = m - 1
		}
	}

	return l - 1
}
