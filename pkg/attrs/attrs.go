// Package attrs reads values back out of slog-style key/value slices.
package attrs

// Extract returns the value stored under key in a [key1, value1, ...] slice
// when it has type T. The second result reports whether it was found.
func Extract[T any](attrs []any, key string) (T, bool) {
	var zero T
	for i := 0; i+1 < len(attrs); i += 2 {
		if k, ok := attrs[i].(string); ok && k == key {
			v, ok := attrs[i+1].(T)
			return v, ok
		}
	}
	return zero, false
}

// ExtractString returns the string under key, or "" when absent.
func ExtractString(attrs []any, key string) string {
	v, _ := Extract[string](attrs, key)
	return v
}
