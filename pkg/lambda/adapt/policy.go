package adapt

import (
	"errors"
	"fmt"

	"github.com/ib-77/lambda3/pkg/lambda"
)

type Policy int

const (
	// Rethrow raises a declared failure as a *lambda.UncheckedError panic.
	Rethrow Policy = iota + 1
	// FallbackOther calls an alternate with the same inputs.
	FallbackOther
	// FallbackValue returns a fixed substitute.
	FallbackValue
	// Escalate returns a different error built by an ErrorFactory.
	Escalate
	// IgnoreChecked drops declared failures and lets panics through.
	IgnoreChecked
	// IgnoreAll drops declared failures and recovers panics.
	IgnoreAll
)

func (p Policy) String() string {
	switch p {
	case Rethrow:
		return "rethrow"
	case FallbackOther:
		return "fallback_other"
	case FallbackValue:
		return "fallback_value"
	case Escalate:
		return "escalate"
	case IgnoreChecked:
		return "ignore_checked"
	case IgnoreAll:
		return "ignore_all"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ErrorFactory builds the error raised by the Escalate policy.
type ErrorFactory func() error

// EscalatedError is the failure produced by Escalate. It matches both the
// target and the original cause with errors.Is and errors.As.
type EscalatedError struct {
	Target error
	Cause  error
}

func (e *EscalatedError) Error() string {
	return fmt.Sprintf("%v: %v", e.Target, e.Cause)
}

func (e *EscalatedError) Unwrap() []error {
	return []error{e.Target, e.Cause}
}

// CheckFactory panics with a *lambda.ConfigurationError when factory is nil.
func CheckFactory(factory ErrorFactory) {
	if factory == nil {
		panic(&lambda.ConfigurationError{Reason: "nil escalation factory"})
	}
}

// DoRethrow calls call and raises its error as an unchecked failure.
func DoRethrow[R any](call func() (R, error), opts ...Option) R {
	r, err := call()
	if err != nil {
		NewOptions(opts...).notify(Rethrow, err, nil)
		lambda.Throw(err)
	}
	return r
}

// DoFallback calls other when call fails. A failure of other is returned.
func DoFallback[R any](call, other func() (R, error), opts ...Option) (R, error) {
	r, err := call()
	if err == nil {
		return r, nil
	}
	NewOptions(opts...).notify(FallbackOther, err, nil)
	return other()
}

// DoOrReturn returns v when call fails.
func DoOrReturn[R any](call func() (R, error), v R, opts ...Option) R {
	r, err := call()
	if err != nil {
		NewOptions(opts...).notify(FallbackValue, err, nil)
		return v
	}
	return r
}

// DoEscalate replaces the failure of call with an *EscalatedError. A factory
// that produces nil or panics yields a *lambda.ConfigurationError instead.
func DoEscalate[R any](call func() (R, error), factory ErrorFactory, opts ...Option) (R, error) {
	r, err := call()
	if err == nil {
		return r, nil
	}

	var zero R
	target, cfgErr := buildTarget(factory, err)
	if cfgErr != nil {
		return zero, cfgErr
	}

	NewOptions(opts...).notify(Escalate, err, nil)
	return zero, &EscalatedError{Target: target, Cause: err}
}

// buildTarget calls factory for the error that replaces cause. A factory
// that panics or produces nil is reported as a *lambda.ConfigurationError.
func buildTarget(factory ErrorFactory, cause error) (target error, cfgErr *lambda.ConfigurationError) {
	defer func() {
		if rec := recover(); rec != nil {
			target = nil
			cfgErr = &lambda.ConfigurationError{
				Reason:   fmt.Sprintf("escalation factory panicked: %v", rec),
				Original: cause,
			}
		}
	}()

	target = factory()
	if target == nil {
		return nil, &lambda.ConfigurationError{
			Reason:   "escalation factory returned nil",
			Original: cause,
		}
	}
	return target, nil
}

// DoIgnoreChecked drops a declared failure and returns the zero value. An
// error that wraps a *lambda.UncheckedError is an unchecked failure, and the
// *lambda.UncheckedError is raised as is.
func DoIgnoreChecked[R any](call func() (R, error), opts ...Option) R {
	r, err := call()
	if err != nil {
		var u *lambda.UncheckedError
		if errors.As(err, &u) {
			panic(u)
		}
		NewOptions(opts...).notify(IgnoreChecked, err, nil)
		var zero R
		return zero
	}
	return r
}

// DoIgnoreAll drops every failure, panics included, and returns the zero
// value.
func DoIgnoreAll[R any](call func() (R, error), opts ...Option) (res R) {
	o := NewOptions(opts...)
	defer func() {
		if rec := recover(); rec != nil {
			var zero R
			res = zero
			err, _ := rec.(error)
			o.notify(IgnoreAll, err, rec)
		}
	}()

	r, err := call()
	if err != nil {
		o.notify(IgnoreAll, err, nil)
		var zero R
		return zero
	}
	return r
}
