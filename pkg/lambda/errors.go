package lambda

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

var (
	// ErrNilFunction is wrapped by the panic raised when a builder receives
	// a nil delegate.
	ErrNilFunction = errors.New("lambda: nil function")

	// ErrEmptyResult marks a Result that holds neither a value nor an error.
	ErrEmptyResult = errors.New("lambda: empty result")
)

// UncheckedError carries a declared failure across a call boundary that has
// no error return. It is raised with panic by Throw and turned back into an
// error by Catch.
type UncheckedError struct {
	cause error
	trace *goerrors.Error
}

// Unchecked wraps err, recording the caller's stack. When err is or wraps an
// *UncheckedError, that instance is returned as is. A nil err gives nil.
func Unchecked(err error) *UncheckedError {
	if err == nil {
		return nil
	}
	var u *UncheckedError
	if errors.As(err, &u) {
		return u
	}
	return &UncheckedError{
		cause: err,
		trace: goerrors.Wrap(err, 1),
	}
}

func (e *UncheckedError) Error() string {
	return "unchecked: " + e.cause.Error()
}

func (e *UncheckedError) Unwrap() error {
	return e.cause
}

// Cause returns the declared failure that was converted.
func (e *UncheckedError) Cause() error {
	return e.cause
}

// Stack returns the goroutine stack captured when the failure was converted.
func (e *UncheckedError) Stack() string {
	return string(e.trace.Stack())
}

// ConfigurationError reports a misconfigured adapter, such as an escalation
// factory that produced no error. It deliberately does not unwrap to the
// failure that was being handled.
type ConfigurationError struct {
	Reason   string
	Original error
}

func (e *ConfigurationError) Error() string {
	if e.Original == nil {
		return fmt.Sprintf("lambda: configuration error: %s", e.Reason)
	}
	return fmt.Sprintf("lambda: configuration error: %s (while handling: %v)", e.Reason, e.Original)
}

// Throw raises err as an unchecked failure. A nil err is a no-op and an
// *UncheckedError is re-raised unmodified.
func Throw(err error) {
	if err == nil {
		return
	}
	panic(Unchecked(err))
}

// Catch calls f and converts an *UncheckedError panic into a returned error.
// Any other panic keeps unwinding.
func Catch[T any](f func() T) (res T, err error) {
	defer func() {
		if r := recover(); r != nil {
			u, ok := r.(*UncheckedError)
			if !ok {
				panic(r)
			}
			err = u
		}
	}()

	return f(), nil
}

// Catch0 is Catch for calls without a result.
func Catch0(f func()) error {
	_, err := Catch(func() struct{} {
		f()
		return struct{}{}
	})
	return err
}
