package table

import (
	"cmp"
	"strings"
)

// Compare orders two column values. Strings compare case-insensitively and
// numbers numerically; any other pairing, including mixed types, is equal.
func Compare(a, b any) int {
	if sa, ok := a.(string); ok {
		sb, ok := b.(string)
		if !ok {
			return 0
		}
		return strings.Compare(strings.ToLower(sa), strings.ToLower(sb))
	}
	na, ok := number(a)
	if !ok {
		return 0
	}
	nb, ok := number(b)
	if !ok {
		return 0
	}
	return cmp.Compare(na, nb)
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
