package checkkit

import (
	"github.com/google/uuid"
)

// ValidUUID checks standard 36-character hyphenated UUID format, with a
// fast rejection on length and hyphen positions before parsing.
func ValidUUID(field, value string) Rule {
	return newValueRule(field,
		func() bool {
			if len(value) != 36 {
				return false
			}
			if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
				return false
			}
			_, err := uuid.Parse(value)
			return err == nil
		},
		staticMessage("must be a valid UUID"),
		showValue(value))
}

// NonNilUUID checks that id is not the nil UUID.
func NonNilUUID(field string, id uuid.UUID) Rule {
	return newValueRule(field,
		func() bool { return id != uuid.Nil },
		staticMessage("must not be the nil UUID"),
		showValue(id))
}

// NilOrValidUUID checks that value is nil or a valid UUID.
func NilOrValidUUID(field string, value *string) Rule {
	return newValueRule(field,
		func() bool {
			if value == nil {
				return true
			}
			_, err := uuid.Parse(*value)
			return err == nil && len(*value) == 36
		},
		staticMessage("must be null or a valid UUID"),
		showPtr(value))
}
