package solo

import (
	"errors"

	"github.com/ib-77/lambda3/pkg/lambda"
)

func Succeed[T any](input T) lambda.Result[T] {
	return lambda.Success(input)
}

func Fail[T any](err error) lambda.Result[T] {
	return lambda.Fail[T](err)
}

func Validate[T any](input T, validate func(in T) (isValid bool, errMsg string)) lambda.Result[T] {
	return AndValidate(Succeed(input), validate)
}

func AndValidate[T any](input lambda.Result[T],
	validate func(in T) (valid bool, errMsg string)) lambda.Result[T] {

	if input.IsSuccess() {

		if isValid, errMsg := validate(input.Result()); isValid {
			return lambda.Success(input.Result())
		} else {
			return lambda.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

func Switch[In any, Out any](input lambda.Result[In],
	onSuccess func(r In) lambda.Result[Out]) lambda.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return lambda.FailFrom[In, Out](input)
}

func Map[In any, Out any](input lambda.Result[In], onSuccess func(r In) Out) lambda.Result[Out] {
	if input.IsSuccess() {
		return lambda.Success(onSuccess(input.Result()))
	}
	return lambda.FailFrom[In, Out](input)
}

func Tee[T any](input lambda.Result[T], onSuccess func(r T)) lambda.Result[T] {
	if input.IsSuccess() {
		onSuccess(input.Result())
	}
	return input
}

func DoubleTee[T any](input lambda.Result[T],
	onSuccess func(r T),
	onError func(err error)) lambda.Result[T] {

	if input.IsSuccess() {
		onSuccess(input.Result())
	} else {
		onError(input.Err())
	}
	return input
}

func DoubleMap[In any, Out any](input lambda.Result[In],
	onSuccess func(r In) Out,
	onError func(err error) Out) lambda.Result[Out] {

	if input.IsSuccess() {
		return lambda.Success(onSuccess(input.Result()))
	}

	onError(input.Err())
	return lambda.FailFrom[In, Out](input)
}

func Try[In any, Out any](input lambda.Result[In],
	onTryExecute func(r In) (Out, error)) lambda.Result[Out] {

	if input.IsSuccess() {
		return lambda.TryFrom(onTryExecute(input.Result()))
	}
	return lambda.FailFrom[In, Out](input)
}

func FailOnError[T any](input lambda.Result[T], maybeErr func(in T) error) lambda.Result[T] {
	if input.IsSuccess() {
		if err := maybeErr(input.Result()); err != nil {
			return lambda.Fail[T](err)
		}
	}
	return input
}

// Recover turns a failure back into a success using onError.
func Recover[T any](input lambda.Result[T], onError func(err error) T) lambda.Result[T] {
	if input.IsFailure() {
		return lambda.Success(onError(input.Err()))
	}
	return input
}

func Finally[In, Out any](input lambda.Result[In],
	onSuccess func(r In) Out,
	onError func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onError(input.Err())
}
