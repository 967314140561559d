package checkkit

import (
	"fmt"
	"runtime"
	"slices"
	"strings"
)

// ValidationError describes a single failed rule. Field is empty for
// anonymous checks and caller-supplied messages. Two errors are equal
// when their fields and messages are equal.
type ValidationError struct {
	Field   string
	Message string
}

// String renders the error as "'field' message", or just the message
// when no field name was recorded.
func (e ValidationError) String() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("'%s' %s", e.Field, e.Message)
}

// Join renders errors in collection order, separated by "; ".
func Join(errs []ValidationError) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.String()
	}
	return strings.Join(parts, "; ")
}

// FailureFunc builds the error returned when validation fails. It
// receives the collected errors in order and may return any error type;
// the engine never inspects the result.
type FailureFunc func(errs []ValidationError) error

// Failure is the error produced by the default failure construction.
// Its message is the joined text of every collected error.
type Failure struct {
	message string
	errors  []ValidationError
	stack   []uintptr
}

func newFailure(captureStack bool, errs []ValidationError) *Failure {
	f := &Failure{
		message: Join(errs),
		errors:  slices.Clone(errs),
	}
	if captureStack {
		pc := make([]uintptr, 64)
		// Skip runtime.Callers, newFailure, and the engine frame that
		// triggered failure construction.
		n := runtime.Callers(3, pc)
		f.stack = pc[:n]
	}
	return f
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return f.message
}

// Errors returns a copy of the collected errors in collection order.
func (f *Failure) Errors() []ValidationError {
	return slices.Clone(f.errors)
}

// StackTrace formats the call stack captured when the failure was
// built, one frame per line. It returns the empty string for engines
// that suppress stack capture.
func (f *Failure) StackTrace() string {
	if len(f.stack) == 0 {
		return ""
	}

	var b strings.Builder
	frames := runtime.CallersFrames(f.stack)
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return b.String()
}
