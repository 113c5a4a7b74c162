// Package solo contains single-value, synchronous primitives over
// lambda.Result. They are the explicit result-or-error counterpart of the
// panic-based primary operations of the throwing callables.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out]
// - Map/DoubleMap: transform successful values (with an optional error hook)
// - Try: call a function (Out, error) and convert error to failure
// - Tee/DoubleTee: side-effect helpers
// - Recover: turn a failure into a success
// - Finally: reduce to a concrete value via success/error handlers
package solo
