package utils

func FromStringPtr(v *string) string {
	return ValueOr(v, "")
}

// ValueOr dereferences v, or returns def when v is nil.
func ValueOr[T any](v *T, def T) T {
	if v != nil {
		return *v
	}
	return def
}
