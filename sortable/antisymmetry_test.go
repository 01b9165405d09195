package sortable

import (
	"math"
	"testing"
)

func requireAntisymmetric[T Sortable[T]](t *testing.T, values []T) {
	t.Helper()

	for _, a := range values {
		for _, b := range values {
			ab, ba := Compare(a, b), Compare(b, a)
			if ab != -ba {
				t.Fatalf("Compare(%v, %v) = %d but Compare(%v, %v) = %d", a, b, ab, b, a, ba)
			}

			if (ab == 0) != a.Equals(b) {
				t.Fatalf("Compare(%v, %v) = %d disagrees with Equals = %t", a, b, ab, a.Equals(b))
			}
		}
	}
}

func TestCompare_Antisymmetric(t *testing.T) {
	t.Parallel()

	strs := []string{"", "0", "00", "a", "a1", "a01", "a001", "x7", "x007", "f0", "f00", "file2", "file10", "é", "e"}

	var (
		naturals []NaturalString
		plains   []String
	)

	for _, s := range strs {
		naturals = append(naturals, NaturalString(s))
		plains = append(plains, String(s))
	}

	requireAntisymmetric(t, naturals)
	requireAntisymmetric(t, plains)
	requireAntisymmetric(t, []Int{math.MinInt, -3, 0, 0, 7, math.MaxInt})
	requireAntisymmetric(t, []Byte{0, 1, 'a', 'a', 255})
	requireAntisymmetric(t, []Float64{
		Float64(math.NaN()), Float64(math.Inf(1)), Float64(math.Inf(-1)),
		0, Float64(math.Copysign(0, -1)), 1.5, -2,
	})
}
