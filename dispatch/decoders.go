package dispatch

import (
	"fmt"
	"math"
)

// Int64 accepts any Go integer that fits in an int64 and finite floats with no
// fractional part inside the int64 range.
func Int64(v any) (any, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return fromUint64(uint64(n))
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		return fromUint64(n)
	case uintptr:
		return fromUint64(uint64(n))
	case float32:
		return fromFloat64(float64(n))
	case float64:
		return fromFloat64(n)
	}
	return nil, mismatch(v)
}

func fromUint64(n uint64) (any, error) {
	if n > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d overflows int64", ErrTypeMismatch, n)
	}
	return int64(n), nil
}

// fromFloat64 rejects 2^63 itself: float64(math.MaxInt64) rounds up to it.
func fromFloat64(n float64) (any, error) {
	if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
		return nil, fmt.Errorf("%w: %v is not integral", ErrTypeMismatch, n)
	}
	if n < math.MinInt64 || n >= math.MaxInt64 {
		return nil, fmt.Errorf("%w: %v overflows int64", ErrTypeMismatch, n)
	}
	return int64(n), nil
}

// Float64 accepts floats and integers.
func Float64(v any) (any, error) {
	switch n := v.(type) {
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return nil, mismatch(v)
}

// Bool accepts only booleans.
func Bool(v any) (any, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return nil, mismatch(v)
}

// String accepts strings and fmt.Stringer values.
func String(v any) (any, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case fmt.Stringer:
		return s.String(), nil
	}
	return nil, mismatch(v)
}

// Any passes the value through unchanged.
func Any(v any) (any, error) {
	return v, nil
}

func mismatch(v any) error {
	return fmt.Errorf("%w: got %T", ErrTypeMismatch, v)
}
