// Package utils provides small generic helpers shared across the
// factorization packages.
package utils

import (
	"encoding/binary"
	"io"
	"sort"

	"golang.org/x/exp/constraints"
)

// GetKeys returns the keys of the input map. Order is not guaranteed.
func GetKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {
	keys = make([]K, len(m))

	var i int
	for key := range m {
		keys[i] = key
		i++
	}

	return
}

// GetSortedKeys returns the keys of the input map in ascending order.
func GetSortedKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {
	keys = GetKeys(m)
	SortSlice(keys)
	return
}

// SortSlice sorts a slice in place in ascending order.
func SortSlice[T constraints.Ordered](s []T) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}

// RandUint64 draws a uniform uint64 from r, panicking if the source
// fails.
func RandUint64(r io.Reader) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := io.ReadFull(r, b); err != nil {
		panic(err)
	}
	return binary.BigEndian.Uint64(b)
}
