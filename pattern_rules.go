package checkkit

import (
	"fmt"
	"regexp"
)

// Matches checks that value fully matches the pattern source expr.
// Sources are resolved through the process-wide pattern cache, so a
// given pattern literal is compiled at most once. The source is
// anchored before compiling; an invalid source panics.
func Matches(field, value, expr string) Rule {
	re := compilePattern(expr)
	return newValueRule(field,
		func() bool { return re.MatchString(value) },
		func() string { return fmt.Sprintf("must match pattern '%s'", expr) },
		showValue(value))
}

// MatchesPattern checks value against a caller-compiled pattern, used
// as given: the caller controls anchoring. Panics with ErrNilPattern
// when re is nil.
func MatchesPattern(field, value string, re *regexp.Regexp) Rule {
	if re == nil {
		panic(ErrNilPattern)
	}
	return newValueRule(field,
		func() bool { return re.MatchString(value) },
		func() string { return fmt.Sprintf("must match pattern '%s'", re.String()) },
		showValue(value))
}

// NilOrMatches checks that value is nil or fully matches the pattern
// source expr.
func NilOrMatches(field string, value *string, expr string) Rule {
	re := compilePattern(expr)
	return newValueRule(field,
		func() bool { return value == nil || re.MatchString(*value) },
		func() string { return fmt.Sprintf("must be null or match pattern '%s'", expr) },
		showPtr(value))
}

// NilOrMatchesPattern checks that value is nil or matches a
// caller-compiled pattern. Panics with ErrNilPattern when re is nil.
func NilOrMatchesPattern(field string, value *string, re *regexp.Regexp) Rule {
	if re == nil {
		panic(ErrNilPattern)
	}
	return newValueRule(field,
		func() bool { return value == nil || re.MatchString(*value) },
		func() string { return fmt.Sprintf("must be null or match pattern '%s'", re.String()) },
		showPtr(value))
}
