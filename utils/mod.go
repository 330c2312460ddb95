package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

func Contains[T comparable](slice []T, item T) bool {
	return FindIndex(slice, item) >= 0
}

// Rotate returns a copy of slice starting at index i, wrapping around.
func Rotate[T any](slice []T, i int) []T {
	rotated := make([]T, 0, len(slice))
	rotated = append(rotated, slice[i:]...)
	return append(rotated, slice[:i]...)
}

// Remove returns slice without the first occurrence of item.
func Remove[T comparable](slice []T, item T) []T {
	i := FindIndex(slice, item)
	if i < 0 {
		return slice
	}
	out := make([]T, 0, len(slice)-1)
	out = append(out, slice[:i]...)
	return append(out, slice[i+1:]...)
}
