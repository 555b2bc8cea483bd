package util

/**
 * Generic shared utilities
 */

// SliceIncludes returns true is slice includes value
func SliceIncludes[T comparable](s []T, val T) bool {
	for _, v := range s {
		if v == val {
			return true
		}
	}
	return false
}

// Unique returns a copy of s without duplicates, preserving first occurrence order
func Unique[T comparable](s []T) []T {
	seen := map[T]struct{}{}
	result := []T{}

	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}

	return result
}
