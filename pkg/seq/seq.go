// Package seq provides try-style helpers over slices.
//
// Every helper reports absence with a boolean rather than an error: for
// callers probing syntax trees, a miss is an expected outcome, not a failure.
package seq

// First returns the first element of s.
func First[T any](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[0], true
}

// FirstFunc returns the first element of s for which match returns true.
func FirstFunc[T any](s []T, match func(T) bool) (T, bool) {
	for _, v := range s {
		if match(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Last returns the last element of s.
func Last[T any](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[len(s)-1], true
}

// LastFunc returns the last element of s for which match returns true.
func LastFunc[T any](s []T, match func(T) bool) (T, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if match(s[i]) {
			return s[i], true
		}
	}
	var zero T
	return zero, false
}

// Single returns the sole element of s. It reports false when s is empty or
// holds more than one element.
func Single[T any](s []T) (T, bool) {
	if len(s) != 1 {
		var zero T
		return zero, false
	}
	return s[0], true
}

// SingleFunc returns the sole element of s for which match returns true.
// It reports false when no element or more than one element matches.
func SingleFunc[T any](s []T, match func(T) bool) (T, bool) {
	var found T
	var n int
	for _, v := range s {
		if match(v) {
			found = v
			n++
			if n > 1 {
				var zero T
				return zero, false
			}
		}
	}
	if n != 1 {
		var zero T
		return zero, false
	}
	return found, true
}

// At returns the element at index i, reporting false for out-of-range
// indexes, including negative ones.
func At[T any](s []T, i int) (T, bool) {
	if i < 0 || i >= len(s) {
		var zero T
		return zero, false
	}
	return s[i], true
}

// OfType returns the elements of s whose dynamic type is T, preserving order.
func OfType[T any, S any](s []S) []T {
	var out []T
	for _, v := range s {
		if t, ok := any(v).(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// FirstOfType returns the first element of s whose dynamic type is T.
func FirstOfType[T any, S any](s []S) (T, bool) {
	for _, v := range s {
		if t, ok := any(v).(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// LastOfType returns the last element of s whose dynamic type is T.
func LastOfType[T any, S any](s []S) (T, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if t, ok := any(s[i]).(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// SingleOfType returns the sole element of s whose dynamic type is T,
// reporting false when none or more than one qualifies.
func SingleOfType[T any, S any](s []S) (T, bool) {
	var found T
	var n int
	for _, v := range s {
		if t, ok := any(v).(T); ok {
			found = t
			n++
			if n > 1 {
				var zero T
				return zero, false
			}
		}
	}
	if n != 1 {
		var zero T
		return zero, false
	}
	return found, true
}
