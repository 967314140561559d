package checkkit

import "fmt"

// Rendered values longer than this are truncated to keep failure
// messages bounded.
const maxDisplayedValueLength = 100

// Rule pairs a predicate with the error metadata reported when the
// predicate fails. Build rules with the package-level rule functions,
// or with NewRule for one-off custom checks. The message producer runs
// only when the predicate fails, so expensive message construction
// never happens on the success path.
type Rule struct {
	check   func() bool
	field   string
	message func() string
	// value lazily renders the offending value for the failure message.
	// nil marks rules that never display values.
	value  func() (string, bool)
	custom bool
}

// NewRule builds a custom rule from a predicate and a lazy message. The
// produced message is reported verbatim: no field prefix, no value
// suffix, no redaction interaction.
func NewRule(check func() bool, message func() string) Rule {
	return Rule{check: check, message: message, custom: true}
}

// WithMessage returns a copy of the rule with the default message
// replaced by a caller-supplied lazy producer. Like NewRule, the
// produced message is reported verbatim.
func (r Rule) WithMessage(message func() string) Rule {
	r.field = ""
	r.message = message
	r.value = nil
	r.custom = true
	return r
}

func newRule(field string, check func() bool, message func() string) Rule {
	return Rule{check: check, field: field, message: message}
}

func newValueRule(field string, check func() bool, message func() string, value func() (string, bool)) Rule {
	return Rule{check: check, field: field, message: message, value: value}
}

func staticMessage(s string) func() string {
	return func() string { return s }
}

// renderValue produces the textual form of a value for failure
// messages: strings quoted, everything else via its natural rendering,
// truncated past maxDisplayedValueLength with an ellipsis.
func renderValue(v any) string {
	s := fmt.Sprint(v)
	if len(s) > maxDisplayedValueLength {
		s = s[:maxDisplayedValueLength-3] + "..."
	}
	if _, ok := v.(string); ok {
		return "'" + s + "'"
	}
	return s
}

func showValue(v any) func() (string, bool) {
	return func() (string, bool) {
		if isNil(v) {
			return "", false
		}
		return renderValue(v), true
	}
}

func showPtr[T any](p *T) func() (string, bool) {
	return func() (string, bool) {
		if p == nil {
			return "", false
		}
		return renderValue(*p), true
	}
}

func showSlice[T any](s []T) func() (string, bool) {
	return func() (string, bool) {
		if s == nil {
			return "", false
		}
		return renderValue(s), true
	}
}

func showMap[K comparable, V any](m map[K]V) func() (string, bool) {
	return func() (string, bool) {
		if m == nil {
			return "", false
		}
		return renderValue(m), true
	}
}
