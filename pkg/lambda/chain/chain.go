package chain

import (
	"github.com/ib-77/lambda3/pkg/lambda"
	"github.com/ib-77/lambda3/pkg/lambda/solo"
)

// Chain wraps a lambda.Result to enable fluent chaining
type Chain[T any] struct {
	result lambda.Result[T]
}

// Start creates a new chain from a lambda.Result
func Start[T any](result lambda.Result[T]) *Chain[T] {
	return &Chain[T]{result: result}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](value T) *Chain[T] {
	return &Chain[T]{result: lambda.Success(value)}
}

// FromTry creates a new chain from a customary (value, error) pair
func FromTry[T any](value T, err error) *Chain[T] {
	return &Chain[T]{result: lambda.TryFrom(value, err)}
}

// Result returns the underlying lambda.Result
func (c *Chain[T]) Result() lambda.Result[T] {
	return c.result
}

// Then chains a function that returns lambda.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(T) lambda.Result[U]) *Chain[U] {
	return &Chain[U]{result: solo.Switch(c.result, onSuccess)}
}

// ThenTry chains a function that returns (U, error). Throwing callables fit
// through their TryApply method.
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(T) (U, error)) *Chain[U] {
	return &Chain[U]{result: solo.Try(c.result, tryOnSuccess)}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(T) U) *Chain[U] {
	return &Chain[U]{result: solo.Map(c.result, onSuccess)}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(T)) *Chain[T] {
	return &Chain[T]{result: solo.Tee(c.result, onSuccess)}
}

// Recover replaces a failure with a value computed from the error
func (c *Chain[T]) Recover(onError func(error) T) *Chain[T] {
	return &Chain[T]{result: solo.Recover(c.result, onError)}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(T) U, onFailure func(error) U) U {
	return solo.Finally(c.result, onSuccess, onFailure)
}
