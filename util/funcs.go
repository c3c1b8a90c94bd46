package util

// MapSlice applies f to every element of slice, keeping order
func MapSlice[A, B any](slice []A, f func(A) B) []B {
	res := make([]B, 0, len(slice))
	for _, v := range slice {
		res = append(res, f(v))
	}
	return res
}
