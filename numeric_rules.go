package checkkit

import "fmt"

// InRange checks that value lies within [min, max] inclusive. Panics
// with ErrMinGreaterThanMax when min > max.
func InRange[T Numeric](field string, value, min, max T) Rule {
	if min > max {
		panic(ErrMinGreaterThanMax)
	}
	return newValueRule(field,
		func() bool { return value >= min && value <= max },
		func() string { return fmt.Sprintf("must be between %v and %v", min, max) },
		showValue(value))
}

// Min checks that value is at least min, inclusive.
func Min[T Numeric](field string, value, min T) Rule {
	return newValueRule(field,
		func() bool { return value >= min },
		func() string { return fmt.Sprintf("must be at least %v", min) },
		showValue(value))
}

// Max checks that value is at most max, inclusive.
func Max[T Numeric](field string, value, max T) Rule {
	return newValueRule(field,
		func() bool { return value <= max },
		func() string { return fmt.Sprintf("must be at most %v", max) },
		showValue(value))
}

// Positive checks that value is strictly greater than zero.
func Positive[T Numeric](field string, value T) Rule {
	return newValueRule(field,
		func() bool { return value > 0 },
		staticMessage("must be positive"),
		showValue(value))
}

// Negative checks that value is strictly less than zero.
func Negative[T Numeric](field string, value T) Rule {
	return newValueRule(field,
		func() bool { return value < 0 },
		staticMessage("must be negative"),
		showValue(value))
}

// NonNegative checks that value is zero or greater.
func NonNegative[T Numeric](field string, value T) Rule {
	return newValueRule(field,
		func() bool { return value >= 0 },
		staticMessage("must be non-negative"),
		showValue(value))
}

// NonPositive checks that value is zero or less.
func NonPositive[T Numeric](field string, value T) Rule {
	return newValueRule(field,
		func() bool { return value <= 0 },
		staticMessage("must be non-positive"),
		showValue(value))
}

// Null-tolerant variants. Each passes automatically when value is nil
// and applies the underlying comparison only to a present value, for
// optional fields that may legitimately be unset.

// NilOrInRange checks that value is nil or within [min, max] inclusive.
// Panics with ErrMinGreaterThanMax when min > max.
func NilOrInRange[T Numeric](field string, value *T, min, max T) Rule {
	if min > max {
		panic(ErrMinGreaterThanMax)
	}
	return newValueRule(field,
		func() bool { return value == nil || (*value >= min && *value <= max) },
		func() string { return fmt.Sprintf("must be null or between %v and %v", min, max) },
		showPtr(value))
}

// NilOrMin checks that value is nil or at least min.
func NilOrMin[T Numeric](field string, value *T, min T) Rule {
	return newValueRule(field,
		func() bool { return value == nil || *value >= min },
		func() string { return fmt.Sprintf("must be null or at least %v", min) },
		showPtr(value))
}

// NilOrMax checks that value is nil or at most max.
func NilOrMax[T Numeric](field string, value *T, max T) Rule {
	return newValueRule(field,
		func() bool { return value == nil || *value <= max },
		func() string { return fmt.Sprintf("must be null or at most %v", max) },
		showPtr(value))
}

// NilOrPositive checks that value is nil or strictly positive.
func NilOrPositive[T Numeric](field string, value *T) Rule {
	return newValueRule(field,
		func() bool { return value == nil || *value > 0 },
		staticMessage("must be null or positive"),
		showPtr(value))
}

// NilOrNegative checks that value is nil or strictly negative.
func NilOrNegative[T Numeric](field string, value *T) Rule {
	return newValueRule(field,
		func() bool { return value == nil || *value < 0 },
		staticMessage("must be null or negative"),
		showPtr(value))
}

// NilOrNonNegative checks that value is nil, zero, or greater.
func NilOrNonNegative[T Numeric](field string, value *T) Rule {
	return newValueRule(field,
		func() bool { return value == nil || *value >= 0 },
		staticMessage("must be null or non-negative"),
		showPtr(value))
}

// NilOrNonPositive checks that value is nil, zero, or less.
func NilOrNonPositive[T Numeric](field string, value *T) Rule {
	return newValueRule(field,
		func() bool { return value == nil || *value <= 0 },
		staticMessage("must be null or non-positive"),
		showPtr(value))
}
