package record

import (
	"fmt"
	"math"
)

// Normalize maps a raw cell value from a grid reader onto the scalar
// variant set. Missing cells, NaN and infinities, and empty strings all
// collapse to null; numeric wrappers unwrap to int when the magnitude is
// integral and in range, otherwise to float. Unknown runtime types fall
// back to their string rendering.
func Normalize(raw interface{}) Value {
	if raw == nil {
		return Null()
	}
	switch v := raw.(type) {
	case bool:
		return Bool(v)
	case int:
		return Int(int64(v))
	case int32:
		return Int(int64(v))
	case int64:
		return Int(v)
	case float32:
		return normalizeFloat(float64(v))
	case float64:
		return normalizeFloat(v)
	case string:
		if v == "" {
			return Null()
		}
		return String(v)
	default:
		return String(fmt.Sprintf("%v", v))
	}
}

func normalizeFloat(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Null()
	}
	if isIntegral(f) {
		return Int(int64(f))
	}
	return Float(f)
}

// isIntegral reports whether f is a whole number that converts to int64
// without overflow. float64(MaxInt64) rounds up to 2^63, so the upper
// bound is exclusive.
func isIntegral(f float64) bool {
	return f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64
}
