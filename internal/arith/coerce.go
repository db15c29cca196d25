package arith

import "math"

// ToInt64 coerces integral values into the signed 64-bit lane.
func ToInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint:
		if v <= math.MaxInt64 {
			return int64(v), true
		}
	case uint64:
		if v <= math.MaxInt64 {
			return int64(v), true
		}
	case uintptr:
		if uint64(v) <= math.MaxInt64 {
			return int64(v), true
		}
	}
	return 0, false
}

// ToUint64 coerces non-negative integral values into the unsigned 64-bit lane.
func ToUint64(value any) (uint64, bool) {
	switch v := value.(type) {
	case uint64:
		return v, true
	case uint8:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint32:
		return uint64(v), true
	case uint:
		return uint64(v), true
	case uintptr:
		return uint64(v), true
	case int8:
		if v >= 0 {
			return uint64(v), true
		}
	case int16:
		if v >= 0 {
			return uint64(v), true
		}
	case int32:
		if v >= 0 {
			return uint64(v), true
		}
	case int:
		if v >= 0 {
			return uint64(v), true
		}
	case int64:
		if v >= 0 {
			return uint64(v), true
		}
	}
	return 0, false
}

// ToFloat64 coerces any numeric value into the float lane.
func ToFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uintptr:
		return float64(v), true
	}
	return 0, false
}

// ToBool coerces a value into a truth value. Numeric values are true when
// nonzero, matching contextual-bool conversion.
func ToBool(value any) (bool, bool) {
	if b, ok := value.(bool); ok {
		return b, true
	}
	if f, ok := ToFloat64(value); ok {
		return f != 0, true
	}
	if u, ok := ToUint64(value); ok {
		return u != 0, true
	}
	return false, false
}

// ToIndex coerces a value into an int suitable for indexing. Negative
// values pass through; the caller bounds-checks.
func ToIndex(value any) (int, bool) {
	if i, ok := ToInt64(value); ok {
		if i >= math.MinInt && i <= math.MaxInt {
			return int(i), true
		}
	}
	return 0, false
}

// IsFloat reports whether the value occupies the float lane.
func IsFloat(value any) bool {
	switch value.(type) {
	case float32, float64:
		return true
	}
	return false
}

// IsNumeric reports whether the value occupies any numeric lane.
func IsNumeric(value any) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return true
	}
	return false
}
