package util

// CloneSlice returns a copy of src that does not share its backing array.
//
// The clone has length len(src) and capacity max(len(src), minCap). The result is
// never nil, so an empty src yields an empty, non-nil slice.
func CloneSlice[T any](src []T, minCap int) []T {
	clone := make([]T, len(src), max(len(src), minCap))
	copy(clone, src)

	return clone
}
