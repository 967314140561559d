package checkkit

import (
	"fmt"
	"slices"
)

// OneOf checks that value is one of the allowed values. Panics with
// ErrNoChoices when no allowed values are given.
func OneOf[T comparable](field string, value T, allowed ...T) Rule {
	if len(allowed) == 0 {
		panic(ErrNoChoices)
	}
	return newValueRule(field,
		func() bool { return slices.Contains(allowed, value) },
		func() string { return fmt.Sprintf("must be one of: %v", allowed) },
		showValue(value))
}

// NotOneOf checks that value is none of the forbidden values. Panics
// with ErrNoChoices when no forbidden values are given.
func NotOneOf[T comparable](field string, value T, forbidden ...T) Rule {
	if len(forbidden) == 0 {
		panic(ErrNoChoices)
	}
	return newValueRule(field,
		func() bool { return !slices.Contains(forbidden, value) },
		func() string { return fmt.Sprintf("must not be one of: %v", forbidden) },
		showValue(value))
}

// NilOrOneOf checks that value is nil or one of the allowed values.
// Panics with ErrNoChoices when no allowed values are given.
func NilOrOneOf[T comparable](field string, value *T, allowed ...T) Rule {
	if len(allowed) == 0 {
		panic(ErrNoChoices)
	}
	return newValueRule(field,
		func() bool { return value == nil || slices.Contains(allowed, *value) },
		func() string { return fmt.Sprintf("must be null or one of: %v", allowed) },
		showPtr(value))
}
