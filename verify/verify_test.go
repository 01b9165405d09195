package verify

import (
	"testing"

	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/hashing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tagged struct {
	key    int
	origin int
}

func byKey(a, b tagged) int {
	return compare.Natural(a.key, b.key)
}

func hashTagged(v tagged) uint64 {
	return hashing.Number(v.key)*31 + hashing.Number(v.origin)
}

func originOf(v tagged) int {
	return v.origin
}

func TestSorted(t *testing.T) {
	t.Parallel()

	require.NoError(t, Sorted([]int{1, 1, 2, 3}, compare.Natural[int]))
	require.NoError(t, Sorted([]int{}, compare.Natural[int]))

	err := Sorted([]int{1, 3, 2}, compare.Natural[int])
	require.ErrorIs(t, err, errors.ErrNotSorted)
	assert.Contains(t, err.Error(), "element 1")
}

func TestPermutation(t *testing.T) {
	t.Parallel()

	require.NoError(t, Permutation([]int{3, 1, 2}, []int{1, 2, 3}, hashing.Number[int]))
	require.ErrorIs(t, Permutation([]int{3, 1, 2}, []int{1, 2}, hashing.Number[int]), errors.ErrNotPermutation)
	require.ErrorIs(t, Permutation([]int{3, 1, 2}, []int{1, 1, 3}, hashing.Number[int]), errors.ErrNotPermutation)
}

func TestStable(t *testing.T) {
	t.Parallel()

	stable := []tagged{{1, 1}, {1, 3}, {2, 0}, {2, 2}}
	require.NoError(t, Stable(stable, byKey, originOf))

	unstable := []tagged{{1, 3}, {1, 1}, {2, 0}, {2, 2}}
	require.ErrorIs(t, Stable(unstable, byKey, originOf), errors.ErrNotStable)
}

func TestCheck(t *testing.T) {
	t.Parallel()

	before := []tagged{{2, 0}, {1, 1}, {2, 2}, {1, 3}}

	t.Run("all good", func(t *testing.T) {
		t.Parallel()

		after := []tagged{{1, 1}, {1, 3}, {2, 0}, {2, 2}}
		require.NoError(t, Check(before, after, byKey, hashTagged, originOf))
	})

	t.Run("reports every failure", func(t *testing.T) {
		t.Parallel()

		after := []tagged{{2, 2}, {1, 3}, {1, 1}, {2, 0}}
		err := Check(before, after, byKey, hashTagged, originOf)

		require.ErrorIs(t, err, errors.ErrNotSorted)
		require.ErrorIs(t, err, errors.ErrNotStable)
		assert.NotErrorIs(t, err, errors.ErrNotPermutation)
	})

	t.Run("stability skipped without origin", func(t *testing.T) {
		t.Parallel()

		after := []tagged{{1, 3}, {1, 1}, {2, 2}, {2, 0}}
		require.NoError(t, Check(before, after, byKey, hashTagged, nil))
	})
}
