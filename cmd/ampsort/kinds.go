package main

import (
	"strconv"
	"strings"

	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/hashing"
)

// kind describes how input lines become elements and back.
type kind[T any] struct {
	name   string
	parse  func(line string) (T, error)
	format func(v T) string
	cmp    compare.Comparator[T]
	hash   hashing.HashFunc[T]

	// numeric kinds ignore blank lines and surrounding spaces.
	numeric bool
}

func int64Kind() kind[int64] {
	return kind[int64]{
		name: "int64",
		parse: func(line string) (int64, error) {
			return strconv.ParseInt(line, 10, 64)
		},
		format: func(v int64) string {
			return strconv.FormatInt(v, 10)
		},
		cmp:     compare.Natural[int64],
		hash:    hashing.Number[int64],
		numeric: true,
	}
}

func float64Kind() kind[float64] {
	return kind[float64]{
		name: "float64",
		parse: func(line string) (float64, error) {
			return strconv.ParseFloat(line, 64)
		},
		format: func(v float64) string {
			return strconv.FormatFloat(v, 'g', -1, 64)
		},
		cmp:     compare.Natural[float64],
		hash:    hashing.Number[float64],
		numeric: true,
	}
}

func stringKind(name string, cmp compare.Comparator[string]) kind[string] {
	return kind[string]{
		name: name,
		parse: func(line string) (string, error) {
			return strings.TrimSuffix(line, "\r"), nil
		},
		format: func(v string) string {
			return v
		},
		cmp:  cmp,
		hash: hashing.String[string],
	}
}

// clean strips what the kind ignores around a value before parsing.
func (k kind[T]) clean(text string) string {
	if k.numeric {
		return strings.TrimSpace(text)
	}

	return text
}
