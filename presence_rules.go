package checkkit

import "reflect"

// NotNil checks that value is not nil, including typed nil pointers,
// slices, maps, channels, and functions.
func NotNil(field string, value any) Rule {
	return newValueRule(field,
		func() bool { return !isNil(value) },
		staticMessage("must not be null"),
		showValue(value))
}

// IsNil checks that value is nil.
func IsNil(field string, value any) Rule {
	return newValueRule(field,
		func() bool { return isNil(value) },
		staticMessage("must be null"),
		showValue(value))
}

// NotZero checks that a comparable value is not its type's zero value.
func NotZero[T comparable](field string, value T) Rule {
	var zero T
	return newValueRule(field,
		func() bool { return value != zero },
		staticMessage("must not be the zero value"),
		showValue(value))
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
