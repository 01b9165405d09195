package sorting

import (
	"testing"

	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/sortable"
	"github.com/neilotoole/slogt"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Algorithm
	}{
		{input: "quick", want: Quick},
		{input: "QuickSort", want: Quick},
		{input: " merge ", want: Merge},
		{input: "mergesort", want: Merge},
	}

	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseAlgorithm("bogo")
	require.ErrorIs(t, err, errors.ErrUnknownAlgorithm)

	assert.True(t, Merge.Stable())
	assert.False(t, Quick.Stable())
}

func TestSorter_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "int64", NewNatural[int64](WithoutMetrics()).Name())
	assert.Equal(t, "sortable.String", NewSortable[sortable.String](WithoutMetrics()).Name())
	assert.Equal(t, "any", New(func(a, b any) int { return 0 }, WithoutMetrics()).Name())
	assert.Equal(t, "custom", NewNatural[int](WithName("custom"), WithoutMetrics()).Name())
}

func TestSorter_Sort(t *testing.T) {
	t.Parallel()

	sorter := NewNatural[int](WithoutMetrics())

	for _, alg := range []Algorithm{Quick, Merge} {
		t.Run(string(alg), func(t *testing.T) {
			t.Parallel()

			input := shapes["random"](newRand(21), 200)
			s := clone(input)

			require.NoError(t, sorter.Sort(alg, s, 0, len(s)))
			requireSortedPermutation(t, input, s)

			ok, err := sorter.IsSorted(s, 0, len(s))
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}

	require.ErrorIs(t, sorter.Sort("heap", []int{2, 1}, 0, 2), errors.ErrUnknownAlgorithm)
}

func TestSorter_StableMerge(t *testing.T) {
	t.Parallel()

	sorter := New(byKey, WithoutMetrics())
	s := toRecords([]int{2, 1, 2, 1})

	require.NoError(t, sorter.MergeSort(s, 0, len(s)))
	assert.Equal(t, []record{{1, 1}, {1, 3}, {2, 0}, {2, 2}}, s)
}

func TestSorter_BinarySearch(t *testing.T) {
	t.Parallel()

	sorter := NewNatural[float64](WithoutMetrics())

	got, err := sorter.BinarySearch([]float64{1, 2, 3}, 2, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = sorter.BinarySearch([]float64{1, 2, 3}, 2.5, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, -3, got)

	_, err = sorter.BinarySearch([]float64{1, 2, 3}, 2, 0, 3)
	require.ErrorIs(t, err, errors.ErrIndexOutOfRange)
}

func TestSorter_Sorted(t *testing.T) {
	t.Parallel()

	sorter := NewNatural[int](WithoutMetrics())
	input := []int{3, 1, 2}

	out, err := sorter.Sorted(input)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, out)
	assert.Equal(t, []int{3, 1, 2}, input)

	out, err = sorter.Sorted(nil)
	require.ErrorIs(t, err, errors.ErrNilSequence)
	assert.Nil(t, out)

	_, err = New[int](nil, WithoutMetrics()).Sorted([]int{2, 1})
	require.ErrorIs(t, err, errors.ErrNilComparator)
}

func TestSorter_NilComparator(t *testing.T) {
	t.Parallel()

	sorter := New[int](nil, WithoutMetrics(), WithLogger(slogt.New(t)))

	require.ErrorIs(t, sorter.QuickSort([]int{2, 1}, 0, 2), errors.ErrNilComparator)
	require.ErrorIs(t, sorter.MergeSort([]int{2, 1}, 0, 2), errors.ErrNilComparator)

	_, err := sorter.IsSorted([]int{2, 1}, 0, 2)
	require.ErrorIs(t, err, errors.ErrNilComparator)
}

func TestSorter_Metrics(t *testing.T) {
	t.Parallel()

	const kind = "sorter-metrics-test"

	sorter := NewNatural[int](WithName(kind), WithLogger(slogt.New(t)))

	s := []int{3, 2, 1}
	require.NoError(t, sorter.QuickSort(s, 0, 3))
	require.NoError(t, sorter.QuickSort(s, 0, 3))
	require.NoError(t, sorter.MergeSort(s, 0, 3))
	require.Error(t, sorter.MergeSort(s, 0, 4))

	_, err := sorter.BinarySearch(s, 2, 0, 2)
	require.NoError(t, err)

	assert.InDelta(t, 2, testutil.ToFloat64(callsTotal.WithLabelValues(opQuickSort, kind, outcomeOK)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(callsTotal.WithLabelValues(opMergeSort, kind, outcomeOK)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(callsTotal.WithLabelValues(opMergeSort, kind, outcomeRejected)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(callsTotal.WithLabelValues(opBinarySearch, kind, outcomeOK)), 0)
}

func TestSorter_WithoutMetrics(t *testing.T) {
	t.Parallel()

	const kind = "sorter-no-metrics-test"

	sorter := NewNatural[int](WithName(kind), WithoutMetrics())
	require.NoError(t, sorter.QuickSort([]int{2, 1}, 0, 2))

	assert.InDelta(t, 0, testutil.ToFloat64(callsTotal.WithLabelValues(opQuickSort, kind, outcomeOK)), 0)
}

func TestSorter_ComparisonCounting(t *testing.T) {
	t.Parallel()

	const kind = "sorter-counting-test"

	sorter := NewNatural[int](WithName(kind), WithComparisonCounting())

	require.NoError(t, sorter.QuickSort([]int{3, 1, 2}, 0, 3))
	first := sorter.Comparisons()
	assert.Positive(t, first)

	require.NoError(t, sorter.MergeSort([]int{3, 1, 2}, 0, 3))
	assert.Greater(t, sorter.Comparisons(), first)

	total := testutil.ToFloat64(comparisonsTotal.WithLabelValues(opQuickSort, kind)) +
		testutil.ToFloat64(comparisonsTotal.WithLabelValues(opMergeSort, kind))
	assert.InDelta(t, float64(sorter.Comparisons()), total, 0)

	plain := NewNatural[int](WithoutMetrics())
	require.NoError(t, plain.QuickSort([]int{3, 1, 2}, 0, 3))
	assert.Zero(t, plain.Comparisons())
}

func TestIsSorted(t *testing.T) {
	t.Parallel()

	ok, err := IsSorted([]int{1, 2, 2, 5}, 0, 4)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsSorted([]int{1, 3, 2, 5}, 0, 4)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = IsSorted([]int{9, 1, 2, 0}, 1, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = IsSorted([]int{1}, 0, 2)
	require.ErrorIs(t, err, errors.ErrIndexOutOfRange)

	_, err = IsSortedFunc([]int{1}, 0, 1, nil)
	require.ErrorIs(t, err, errors.ErrNilComparator)

	ok, err = IsSortedFunc([]int{3, 2, 1}, 0, 3, compare.Comparator[int](compare.Natural[int]).Reverse())
	require.NoError(t, err)
	assert.True(t, ok)
}
