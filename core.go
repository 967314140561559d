package checkkit

import "slices"

// Numeric constrains the numeric rule helpers.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Config controls a Validator's behavior. It is fixed at construction
// and never mutated.
type Config struct {
	// IncludeValues appends the offending value to failure messages for
	// rules that display values. Leave false to redact values entirely.
	IncludeValues bool

	// FailFast builds the failure at the first failed rule; every later
	// rule applied to the engine becomes a no-op.
	FailFast bool

	// StackTrace captures the call stack in the default failure.
	// Ignored when Failure is set.
	StackTrace bool

	// Failure overrides the default failure construction. It receives
	// the collected errors in order and may return any error type.
	Failure FailureFunc
}

// Validator accumulates validation errors according to its Config. It
// is a single-owner value: not safe for concurrent mutation.
type Validator struct {
	cfg     Config
	errors  []ValidationError
	failure error
}

// New returns a Validator with the given configuration.
func New(cfg Config) *Validator {
	return &Validator{cfg: cfg}
}

// Check returns a batch engine: errors accumulate until Validate.
// Failure messages include offending values and capture a stack trace.
func Check() *Validator {
	return New(Config{IncludeValues: true, StackTrace: true})
}

// Require returns a fail-fast engine: the first failed rule builds the
// failure and later rules are skipped. Failure messages include
// offending values and capture a stack trace.
func Require() *Validator {
	return New(Config{IncludeValues: true, FailFast: true, StackTrace: true})
}

// SafeCheck returns a batch engine that never renders offending values
// into failure messages.
func SafeCheck() *Validator {
	return New(Config{StackTrace: true})
}

// SafeRequire returns a fail-fast engine that never renders offending
// values into failure messages.
func SafeRequire() *Validator {
	return New(Config{FailFast: true, StackTrace: true})
}

// FastCheck returns a batch engine that skips stack-trace capture, for
// high-frequency paths where failures are expected.
func FastCheck() *Validator {
	return New(Config{IncludeValues: true})
}

// FastRequire returns a fail-fast engine that skips stack-trace
// capture.
func FastRequire() *Validator {
	return New(Config{IncludeValues: true, FailFast: true})
}

// RequireNotNil is a one-shot helper validating a single value.
func RequireNotNil(value any, name string) error {
	return Require().Apply(NotNil(name, value)).Validate()
}

// Assert is a one-shot helper validating a single condition.
func Assert(condition bool, message string) error {
	return Require().AssertTrue(condition, message).Validate()
}

// Apply evaluates the given rules in order. Every rule, built-in or
// custom, funnels through this single primitive: a failed predicate
// appends one ValidationError and, on a fail-fast engine, immediately
// builds the failure.
func (v *Validator) Apply(rules ...Rule) *Validator {
	for _, r := range rules {
		v.applyRule(r)
	}
	return v
}

// AssertTrue records a failure with the given message when condition is
// false. The message is reported verbatim.
func (v *Validator) AssertTrue(condition bool, message string) *Validator {
	return v.AssertTrueFn(condition, func() string { return message })
}

// AssertTrueFn is AssertTrue with a lazy message producer; the producer
// runs only when the condition is false.
func (v *Validator) AssertTrueFn(condition bool, message func() string) *Validator {
	return v.Apply(NewRule(func() bool { return condition }, message))
}

// AssertFalse records a failure with the given message when condition
// is true.
func (v *Validator) AssertFalse(condition bool, message string) *Validator {
	return v.AssertTrue(!condition, message)
}

// AssertFalseFn is AssertFalse with a lazy message producer.
func (v *Validator) AssertFalseFn(condition bool, message func() string) *Validator {
	return v.AssertTrueFn(!condition, message)
}

// When runs fn against the validator only when condition is true. A
// false condition skips the callback entirely: none of its rules are
// built or evaluated.
func (v *Validator) When(condition bool, fn func(*Validator)) *Validator {
	if condition && fn != nil {
		fn(v)
	}
	return v
}

// Include copies other's collected errors, in order, onto the end of
// this validator's error list. other is not modified.
func (v *Validator) Include(other *Validator) *Validator {
	if other == nil || len(other.errors) == 0 || v.halted() {
		return v
	}

	v.errors = append(v.errors, other.errors...)
	if v.cfg.FailFast && v.failure == nil {
		v.failure = v.buildFailure()
	}
	return v
}

// IsValid reports whether no errors have been collected. It never
// builds a failure and may be called any number of times.
func (v *Validator) IsValid() bool {
	return len(v.errors) == 0
}

// Errors returns a copy of the collected errors in collection order.
func (v *Validator) Errors() []ValidationError {
	return slices.Clone(v.errors)
}

// Validate returns the configured failure when any errors have been
// collected, nil otherwise. Batch engines call it exactly once after
// all rules; fail-fast engines return the failure built at the first
// failed rule.
func (v *Validator) Validate() error {
	if v.failure != nil {
		return v.failure
	}
	if len(v.errors) == 0 {
		return nil
	}
	return v.buildFailure()
}

func (v *Validator) applyRule(r Rule) {
	if v.halted() {
		return
	}
	if r.check == nil {
		panic(ErrNilCheck)
	}
	if r.check() {
		return
	}

	v.errors = append(v.errors, v.buildError(r))
	if v.cfg.FailFast {
		v.failure = v.buildFailure()
	}
}

// buildError composes the final message: "parameter" sentinel for
// anonymous rules, then the optional ", but it was <value>" suffix for
// value-displaying rules on engines that include values.
func (v *Validator) buildError(r Rule) ValidationError {
	if r.custom {
		return ValidationError{Message: r.message()}
	}

	msg := r.message()
	if r.field == "" {
		msg = "parameter " + msg
	}
	if v.cfg.IncludeValues && r.value != nil {
		if rendered, ok := r.value(); ok {
			msg += ", but it was " + rendered
		}
	}
	return ValidationError{Field: r.field, Message: msg}
}

func (v *Validator) buildFailure() error {
	if v.cfg.Failure != nil {
		return v.cfg.Failure(slices.Clone(v.errors))
	}
	return newFailure(v.cfg.StackTrace, v.errors)
}

func (v *Validator) halted() bool {
	return v.cfg.FailFast && v.failure != nil
}
