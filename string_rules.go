package checkkit

import (
	"fmt"
	"strings"
)

// NotEmpty checks that value is not the empty string. The value is
// never rendered into the failure message.
func NotEmpty(field, value string) Rule {
	return newRule(field,
		func() bool { return value != "" },
		staticMessage("must not be empty"))
}

// NotBlank checks that value contains at least one non-whitespace
// character. The value is never rendered into the failure message.
func NotBlank(field, value string) Rule {
	return newRule(field,
		func() bool { return strings.TrimSpace(value) != "" },
		staticMessage("must not be blank"))
}

// HasLength checks that the length of value is within [min, max]
// inclusive. Panics with ErrMinGreaterThanMax when min > max.
func HasLength(field, value string, min, max int) Rule {
	if min > max {
		panic(ErrMinGreaterThanMax)
	}
	return newValueRule(field,
		func() bool { return len(value) >= min && len(value) <= max },
		func() string { return fmt.Sprintf("must have length between %d and %d", min, max) },
		showValue(value))
}

// NilOrNotEmpty checks that value is nil or a non-empty string.
func NilOrNotEmpty(field string, value *string) Rule {
	return newRule(field,
		func() bool { return value == nil || *value != "" },
		staticMessage("must be null or not empty"))
}

// NilOrNotBlank checks that value is nil or contains at least one
// non-whitespace character.
func NilOrNotBlank(field string, value *string) Rule {
	return newRule(field,
		func() bool { return value == nil || strings.TrimSpace(*value) != "" },
		staticMessage("must be null or not blank"))
}

// NilOrHasLength checks that value is nil or has a length within
// [min, max] inclusive. Panics with ErrMinGreaterThanMax when min > max.
func NilOrHasLength(field string, value *string, min, max int) Rule {
	if min > max {
		panic(ErrMinGreaterThanMax)
	}
	return newValueRule(field,
		func() bool { return value == nil || (len(*value) >= min && len(*value) <= max) },
		func() string { return fmt.Sprintf("must be null or have length between %d and %d", min, max) },
		showPtr(value))
}
