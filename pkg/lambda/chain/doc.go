// Package chain provides a fluent wrapper around lambda.Result
// for building synchronous chains using solo primitives.
//
// Key operations:
// - Start/FromValue/FromTry: begin a chain from a Result[T], a value or a (value, error) pair
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the result
// - Recover: replace a failure with a value
// - Finally: collapse the chain into a final value via handlers
package chain
