package checkkit

import "errors"

// Programming-error signals. Malformed rule arguments indicate a bug in
// the calling code rather than invalid input data, so rule constructors
// panic with these values immediately, independent of the engine's
// evaluation strategy. They are never added to a validator's error
// list.
var (
	// ErrMinGreaterThanMax is the panic value for a bounded rule whose
	// min exceeds its max.
	ErrMinGreaterThanMax = errors.New("checkkit: min cannot be greater than max")

	// ErrNilPattern is the panic value for a pattern rule given a nil
	// compiled pattern.
	ErrNilPattern = errors.New("checkkit: pattern cannot be nil")

	// ErrInvalidPattern wraps the compile error for an invalid pattern
	// source.
	ErrInvalidPattern = errors.New("checkkit: invalid pattern")

	// ErrNoChoices is the panic value for a membership rule given an
	// empty allowed (or forbidden) set.
	ErrNoChoices = errors.New("checkkit: at least one choice is required")

	// ErrNilCheck is the panic value for applying a rule without a
	// predicate, such as a zero Rule value.
	ErrNilCheck = errors.New("checkkit: rule has no check")
)
