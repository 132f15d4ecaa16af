package domain

// ValueOr returns the value behind the first non-nil pointer, or fallback.
func ValueOr[T any](fallback T, ptrs ...*T) T {
	if p := FirstNonNil(ptrs...); p != nil {
		return *p
	}
	return fallback
}

// FirstNonNil returns the first non-nil pointer, or nil.
func FirstNonNil[T any](ptrs ...*T) *T {
	for _, p := range ptrs {
		if p != nil {
			return p
		}
	}
	return nil
}
