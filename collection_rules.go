package checkkit

import "fmt"

// NotEmptySlice checks that value has at least one element. A nil slice
// fails. The value is never rendered into the failure message.
func NotEmptySlice[T any](field string, value []T) Rule {
	return newRule(field,
		func() bool { return len(value) > 0 },
		staticMessage("must not be empty"))
}

// NotEmptyMap checks that value has at least one entry. A nil map
// fails. The value is never rendered into the failure message.
func NotEmptyMap[K comparable, V any](field string, value map[K]V) Rule {
	return newRule(field,
		func() bool { return len(value) > 0 },
		staticMessage("must not be empty"))
}

// HasSize checks that the number of elements in value is within
// [min, max] inclusive. Panics with ErrMinGreaterThanMax when min > max.
func HasSize[T any](field string, value []T, min, max int) Rule {
	if min > max {
		panic(ErrMinGreaterThanMax)
	}
	return newValueRule(field,
		func() bool { return len(value) >= min && len(value) <= max },
		func() string { return fmt.Sprintf("must have size between %d and %d", min, max) },
		showSlice(value))
}

// HasMapSize checks that the number of entries in value is within
// [min, max] inclusive. Panics with ErrMinGreaterThanMax when min > max.
func HasMapSize[K comparable, V any](field string, value map[K]V, min, max int) Rule {
	if min > max {
		panic(ErrMinGreaterThanMax)
	}
	return newValueRule(field,
		func() bool { return len(value) >= min && len(value) <= max },
		func() string { return fmt.Sprintf("must have size between %d and %d", min, max) },
		showMap(value))
}

// NilOrNotEmptySlice checks that value is nil or has at least one
// element. A non-nil empty slice fails.
func NilOrNotEmptySlice[T any](field string, value []T) Rule {
	return newRule(field,
		func() bool { return value == nil || len(value) > 0 },
		staticMessage("must be null or not empty"))
}

// NilOrNotEmptyMap checks that value is nil or has at least one entry.
func NilOrNotEmptyMap[K comparable, V any](field string, value map[K]V) Rule {
	return newRule(field,
		func() bool { return value == nil || len(value) > 0 },
		staticMessage("must be null or not empty"))
}

// NilOrHasSize checks that value is nil or sized within [min, max]
// inclusive. Panics with ErrMinGreaterThanMax when min > max.
func NilOrHasSize[T any](field string, value []T, min, max int) Rule {
	if min > max {
		panic(ErrMinGreaterThanMax)
	}
	return newValueRule(field,
		func() bool { return value == nil || (len(value) >= min && len(value) <= max) },
		func() string { return fmt.Sprintf("must be null or have size between %d and %d", min, max) },
		showSlice(value))
}

// NilOrHasMapSize checks that value is nil or sized within [min, max]
// inclusive. Panics with ErrMinGreaterThanMax when min > max.
func NilOrHasMapSize[K comparable, V any](field string, value map[K]V, min, max int) Rule {
	if min > max {
		panic(ErrMinGreaterThanMax)
	}
	return newValueRule(field,
		func() bool { return value == nil || (len(value) >= min && len(value) <= max) },
		func() string { return fmt.Sprintf("must be null or have size between %d and %d", min, max) },
		showMap(value))
}
