package lambda

import "github.com/samber/mo"

// Result is the explicit result-or-error value produced by the Nest and Try
// forms of throwing callables.
type Result[T any] struct {
	result    T
	err       error
	isSuccess bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
	}
}

// TryFrom converts a customary (value, error) pair to a Result.
func TryFrom[T any](r T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Success(r)
}

// FailFrom carries the failure of one Result over to a Result of another type.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: from.isSuccess,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && r.err != nil
}

func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isSuccess
}

// Get ejects the Result into the two return values customary in go idiom.
func (r Result[T]) Get() (T, error) {
	return r.result, r.err
}

// OrElse returns the successful value or v.
func (r Result[T]) OrElse(v T) T {
	if r.isSuccess {
		return r.result
	}
	return v
}

// ToMo converts the Result to a samber/mo Result for code written against mo.
// An empty Result converts to a failure carrying ErrEmptyResult.
func (r Result[T]) ToMo() mo.Result[T] {
	if r.isSuccess {
		return mo.Ok(r.result)
	}
	if r.err == nil {
		return mo.Err[T](ErrEmptyResult)
	}
	return mo.Err[T](r.err)
}

// FromMo converts a samber/mo Result.
func FromMo[T any](r mo.Result[T]) Result[T] {
	return TryFrom(r.Get())
}

var _ ResultProvider[int] = Result[int]{}
