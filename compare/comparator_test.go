package compare

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

func TestNatural_Float64(t *testing.T) {
	t.Parallel()

	negZero := math.Copysign(0, -1)
	nan := math.NaN()

	tests := []struct {
		name     string
		a        float64
		b        float64
		expected int
	}{
		{name: "less", a: 1, b: 2, expected: -1},
		{name: "greater", a: 2, b: 1, expected: 1},
		{name: "equal", a: 3.5, b: 3.5, expected: 0},
		{name: "nan after positive infinity", a: nan, b: math.Inf(1), expected: 1},
		{name: "positive infinity before nan", a: math.Inf(1), b: nan, expected: -1},
		{name: "nan equals nan", a: nan, b: nan, expected: 0},
		{name: "nan after negative number", a: nan, b: -1, expected: 1},
		{name: "negative zero before positive zero", a: negZero, b: 0, expected: -1},
		{name: "positive zero after negative zero", a: 0, b: negZero, expected: 1},
		{name: "negative zero equals itself", a: negZero, b: negZero, expected: 0},
		{name: "negative infinity first", a: math.Inf(-1), b: -math.MaxFloat64, expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, sign(Natural(tt.a, tt.b)))
		})
	}
}

func TestNatural_Float32(t *testing.T) {
	t.Parallel()

	nan := float32(math.NaN())
	negZero := float32(math.Copysign(0, -1))

	assert.Equal(t, 1, Natural(nan, float32(math.Inf(1))))
	assert.Equal(t, 0, Natural(nan, nan))
	assert.Equal(t, -1, Natural(negZero, float32(0)))
	assert.Equal(t, -1, Natural(float32(1.5), float32(2.5)))
}

func TestNatural_Integers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -1, Natural[int8](-128, 127))
	assert.Equal(t, 1, Natural[int16](5, -5))
	assert.Equal(t, 0, Natural[int32](0, 0))
	assert.Equal(t, -1, Natural[int64](math.MinInt64, math.MaxInt64))
	assert.Equal(t, 1, Natural[uint16]('b', 'a'))
	assert.Equal(t, -1, Natural[byte](0, 255))
	assert.Equal(t, 1, Natural[uint64](math.MaxUint64, 0))
}

func TestLessAndEqual(t *testing.T) {
	t.Parallel()

	negZero := math.Copysign(0, -1)

	assert.True(t, Less(negZero, 0.0))
	assert.False(t, Less(math.NaN(), math.Inf(1)))
	assert.True(t, Less(math.Inf(1), math.NaN()))

	assert.True(t, Equal(math.NaN(), math.NaN()))
	assert.False(t, Equal(negZero, 0.0))
	assert.True(t, Equal(7, 7))
}

func TestOrdered(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -1, Ordered("apple", "banana"))
	assert.Equal(t, 1, Ordered("b", "a"))
	assert.Equal(t, 0, Ordered("same", "same"))
}

func TestComparator_Reverse(t *testing.T) {
	t.Parallel()

	c := Comparator[int](Natural[int]).Reverse()

	assert.Equal(t, 1, c(1, 2))
	assert.Equal(t, -1, c(2, 1))
	assert.Equal(t, 0, c(3, 3))
}

func TestComparator_Then(t *testing.T) {
	t.Parallel()

	type person struct {
		last  string
		first string
	}

	byLast := By(func(p person) string { return p.last }, Ordered[string])
	byFirst := By(func(p person) string { return p.first }, Ordered[string])
	c := byLast.Then(byFirst)

	assert.Negative(t, c(person{"doe", "alice"}, person{"doe", "bob"}))
	assert.Positive(t, c(person{"smith", "alice"}, person{"doe", "zed"}))
	assert.Zero(t, c(person{"doe", "jane"}, person{"doe", "jane"}))
}

func TestCounting(t *testing.T) {
	t.Parallel()

	counter := Counting(Natural[int])
	c := counter.Comparator()

	assert.Equal(t, -1, c(1, 2))
	assert.Equal(t, 1, c(2, 1))
	assert.Equal(t, int64(2), counter.Calls())

	assert.Equal(t, int64(2), counter.Reset())
	assert.Equal(t, int64(0), counter.Calls())
}
