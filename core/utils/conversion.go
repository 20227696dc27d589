package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToInt converts various types to int using explicit type switching.
// It handles integer and float kinds, numeric strings and byte slices.
// Values that cannot be parsed yield 0 and ok=false. Floats outside the int
// range saturate at math.MaxInt or math.MinInt.
func ToInt(val any) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case int32:
		return int(v), true
	case uint:
		return int(v), true
	case uint64:
		return int(v), true
	case uint32:
		return int(v), true
	case float64:
		return floatToInt(v)
	case float32:
		return floatToInt(float64(v))
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		return i, err == nil
	case []byte:
		i, err := strconv.Atoi(strings.TrimSpace(string(v)))
		return i, err == nil
	default:
		return 0, false
	}
}

func floatToInt(v float64) (int, bool) {
	switch {
	case math.IsNaN(v):
		return 0, false
	case v >= math.MaxInt:
		return math.MaxInt, true
	case v <= math.MinInt:
		return math.MinInt, true
	}
	return int(v), true
}

// ToString converts scalars to their textual form. nil becomes "".
// Floats holding whole numbers are printed without a fraction, so a JSON 42
// becomes "42".
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToStringSlice coerces a scalar or a list into a list of strings.
// A scalar becomes a single element list; nil becomes an empty list.
func ToStringSlice(val any) []string {
	switch v := val.(type) {
	case nil:
		return []string{}
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, x := range v {
			out = append(out, ToString(x))
		}
		return out
	default:
		return []string{ToString(v)}
	}
}
