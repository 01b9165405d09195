// Package hashing computes order-independent fingerprints of sequences, so a
// sorted sequence can be checked to hold exactly the elements it started with.
package hashing

import (
	"encoding/binary"
	"hash"
	"math"

	"github.com/amp-labs/amp-sort/compare"
	"github.com/zeebo/xxh3"
)

// HashFunc hashes one element.
type HashFunc[T any] func(T) uint64

// Hashable is an interface that allows an object to update a hash.Hash with
// its contents. It lets arbitrary element kinds take part in fingerprints.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Xxh3 returns the 64-bit xxh3 hash of a Hashable.
func Xxh3(hashable Hashable) (uint64, error) {
	h := xxh3.New()

	if err := hashable.UpdateHash(h); err != nil {
		return 0, err
	}

	return h.Sum64(), nil
}

// Number hashes a numeric value by its bit pattern. Floats hash their IEEE-754
// bits, so -0.0 and +0.0 hash differently, like they sort differently.
func Number[T compare.Number](v T) uint64 {
	var buf [8]byte

	if isFloat[T]() {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(float64(v)))
	} else {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
	}

	return xxh3.Hash(buf[:])
}

// String hashes a string.
func String[S ~string](s S) uint64 {
	return xxh3.HashString(string(s))
}

func isFloat[T compare.Number]() bool {
	var half T = 1

	half /= 2

	return half != 0
}

// Multiset is an order-independent fingerprint of a collection of hashes.
// Two permutations of the same elements always have equal fingerprints;
// different collections collide only with negligible probability.
type Multiset struct {
	count int
	sum   uint64
	xor   uint64
	mixed uint64
}

// Add adds one element hash to the fingerprint.
func (m *Multiset) Add(h uint64) {
	m.count++
	m.sum += h
	m.xor ^= h

	// A second, non-linear accumulator: the plain sum and xor alone cancel
	// out for some pairs of swaps.
	m.mixed += xxh3.Hash(binary.LittleEndian.AppendUint64(nil, h))
}

// Len returns the number of hashes added.
func (m Multiset) Len() int {
	return m.count
}

// Equal reports whether two fingerprints match.
func (m Multiset) Equal(other Multiset) bool {
	return m == other
}

// Fingerprint returns the Multiset of every element of s under hash.
func Fingerprint[T any](s []T, hash HashFunc[T]) Multiset {
	var m Multiset

	for _, v := range s {
		m.Add(hash(v))
	}

	return m
}
