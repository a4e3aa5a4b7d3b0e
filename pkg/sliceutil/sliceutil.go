// Package sliceutil provides set-style helpers over string slices.
package sliceutil

import (
	"slices"
)

// Difference returns the elements of a that are not in b, in the order they
// first appear in a, without duplicates.
func Difference(a, b []string) []string {
	exclude := toSet(b)
	seen := make(map[string]struct{}, len(a))
	var result []string
	for _, item := range a {
		if _, skip := exclude[item]; skip {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}

// SortedUnique returns the distinct elements of s in ascending order.
// The result is never nil.
func SortedUnique(s []string) []string {
	result := make([]string, 0, len(s))
	for item := range toSet(s) {
		result = append(result, item)
	}
	slices.Sort(result)
	return result
}

// SetEqual reports whether a and b hold the same distinct elements,
// ignoring order and duplicates.
func SetEqual(a, b []string) bool {
	return slices.Equal(SortedUnique(a), SortedUnique(b))
}

// Without returns a copy of s with every occurrence of item removed.
func Without(s []string, item string) []string {
	result := make([]string, 0, len(s))
	for _, v := range s {
		if v != item {
			result = append(result, v)
		}
	}
	return result
}

func toSet(s []string) map[string]struct{} {
	set := make(map[string]struct{}, len(s))
	for _, item := range s {
		set[item] = struct{}{}
	}
	return set
}
