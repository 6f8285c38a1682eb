package database

// Value comparison helpers shared by the record facade and the query
// emulator. JSON decoding leaves numbers as float64, so numeric values are
// normalised before comparing; everything else compares by exact type.

// toFloat reports v as a float64 when it is any numeric type.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// Equal reports whether two scalar values are equal. Numbers compare by
// value regardless of width; all other types must match exactly.
func Equal(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		return ok && fa == fb
	}
	return a == b
}

// Compare orders two scalar values: -1, 0 or 1. Numbers order numerically,
// strings lexicographically; mismatched or unordered types compare as
// equal.
func Compare(a, b any) int {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			}
			return 0
		}
	}
	if sa, ok := a.(string); ok {
		if sb, ok := b.(string); ok {
			switch {
			case sa < sb:
				return -1
			case sa > sb:
				return 1
			}
			return 0
		}
	}
	return 0
}
