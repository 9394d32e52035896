package utils

// P returns a pointer to v, for optional response fields.
func P[T any](v T) *T {
	return &v
}
