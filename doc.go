// Package checkkit provides a small parameter-checking engine for
// rejecting invalid input at API boundaries and construction sites.
//
// Callers obtain a configured Validator, apply a sequence of predicate
// rules against their values, and finish with Validate, which returns a
// single structured error covering every failed rule. Two evaluation
// strategies are supported: fail-fast engines stop at the first failed
// rule, batch engines collect every failure before reporting.
//
// # Architecture
//
// Each source file groups a family of rules for a specific domain
// (`string_rules.go`, `numeric_rules.go`, `pattern_rules.go`, etc.).
// Every exported rule function constructs a Rule value pairing a
// predicate with lazy error metadata; the Validator funnels every rule
// through one evaluation primitive that appends a ValidationError on
// failure and, in fail-fast mode, immediately builds the failure.
//
// Core building blocks:
//   - Rule             – predicate plus lazy message and value rendering
//   - Validator        – accumulates failures per its Config
//   - ValidationError  – one failed rule: optional field name + message
//   - Failure          – the error returned when validation fails
//   - FailureFunc      – pluggable failure construction
//
// # Usage
//
//	err := checkkit.Check().
//	    Apply(
//	        checkkit.NotBlank("username", username),
//	        checkkit.HasLength("username", username, 3, 30),
//	        checkkit.InRange("age", age, 13, 120),
//	    ).
//	    Validate()
//
// A nil error means every rule passed. On failure the returned error is
// a *Failure (unless a custom FailureFunc is configured) carrying the
// ordered list of field errors.
//
// # Error Handling
//
// Validation failures are ordinary error values. Malformed rule
// arguments — a min greater than its max, a nil pattern, an invalid
// regex literal — are bugs in the calling code and panic immediately,
// regardless of the engine's evaluation strategy.
//
// # Value Redaction
//
// Engines built with the Safe presets (or Config.IncludeValues false)
// never render the offending value into failure messages. Rules whose
// value is often the sensitive payload itself (emptiness, blankness)
// never render values under any configuration.
//
// # Concurrency
//
// A Validator is a plain single-owner value and carries no internal
// synchronization. The only shared state is the process-wide compiled
// pattern cache, which is safe for concurrent use from any number of
// engines.
package checkkit
