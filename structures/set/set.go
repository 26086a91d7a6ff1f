package set

import (
	"cmp"
	"slices"
)

// Set formalizes set semantics for a map with empty values.
// A nil Set is a valid, empty set for reads.
type Set[T comparable] map[T]struct{}

// New creates a new [Set] from the given values.
// The returned [Set] will have no values if none are given.
func New[T comparable](vals ...T) Set[T] {
	s := make(Set[T], len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts one or more values, allocating the [Set] if it's nil.
// The possibly new [Set] is returned.
func (s Set[T]) Add(val T, others ...T) Set[T] {
	if s == nil {
		s = Set[T]{}
	}
	s[val] = struct{}{}
	for _, v := range others {
		s[v] = struct{}{}
	}
	return s
}

func (s Set[T]) Has(val T) bool {
	_, ok := s[val]
	return ok
}

// Sorted returns the values of the [Set] in ascending order, or nil if it's empty.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	if len(s) == 0 {
		return nil
	}
	vals := make([]T, 0, len(s))
	for v := range s {
		vals = append(vals, v)
	}
	slices.Sort(vals)
	return vals
}
