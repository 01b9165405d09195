package sorting

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/hashing"
	"github.com/amp-labs/amp-sort/verify"
	"github.com/stretchr/testify/require"
)

// record is an element with a sort key and the position it started at.
type record struct {
	Key    int
	Origin int
}

func byKey(a, b record) int {
	return compare.Natural(a.Key, b.Key)
}

func hashRecord(r record) uint64 {
	return hashing.Number(r.Key)*0x9e3779b97f4a7c15 ^ hashing.Number(r.Origin)
}

func originOf(r record) int {
	return r.Origin
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef)) //nolint:gosec
}

// shapes are input patterns that stress different paths of both sorts.
var shapes = map[string]func(r *rand.Rand, n int) []int{ //nolint:gochecknoglobals
	"random": func(r *rand.Rand, n int) []int {
		s := make([]int, n)
		for i := range s {
			s[i] = r.IntN(n*4 + 1)
		}

		return s
	},
	"few distinct": func(r *rand.Rand, n int) []int {
		s := make([]int, n)
		for i := range s {
			s[i] = r.IntN(5)
		}

		return s
	},
	"ascending": func(_ *rand.Rand, n int) []int {
		s := make([]int, n)
		for i := range s {
			s[i] = i
		}

		return s
	},
	"descending": func(_ *rand.Rand, n int) []int {
		s := make([]int, n)
		for i := range s {
			s[i] = n - i
		}

		return s
	},
	"all equal": func(_ *rand.Rand, n int) []int {
		return make([]int, n)
	},
	"organ pipe": func(_ *rand.Rand, n int) []int {
		s := make([]int, n)
		for i := range s {
			s[i] = min(i, n-i)
		}

		return s
	},
	"sawtooth": func(_ *rand.Rand, n int) []int {
		s := make([]int, n)
		for i := range s {
			s[i] = i % 17
		}

		return s
	},
}

var lengths = []int{0, 1, 2, 5, 6, 7, 8, 9, 40, 41, 42, 100, 1000} //nolint:gochecknoglobals

func toRecords(keys []int) []record {
	out := make([]record, len(keys))
	for i, k := range keys {
		out[i] = record{Key: k, Origin: i}
	}

	return out
}

func randomFloats(r *rand.Rand, n int) []float64 {
	special := []float64{math.NaN(), math.Inf(1), math.Inf(-1), 0, math.Copysign(0, -1)}

	s := make([]float64, n)
	for i := range s {
		if r.IntN(8) == 0 {
			s[i] = special[r.IntN(len(special))]
		} else {
			s[i] = r.NormFloat64() * 100
		}
	}

	return s
}

func requireSortedPermutation[T compare.Number](t *testing.T, before, after []T) {
	t.Helper()

	require.NoError(t, verify.Sorted(after, compare.Natural[T]))
	require.NoError(t, verify.Permutation(before, after, hashing.Number[T]))
}

func clone[T any](s []T) []T {
	if s == nil {
		return nil
	}

	out := make([]T, len(s))
	copy(out, s)

	return out
}
