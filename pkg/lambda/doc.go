// Package lambda holds what the callable packages share: the Result type,
// the error taxonomy and the panic boundary.
//
// Failures come in two categories. A declared failure is an error returned
// by a throwing callable. An unchecked failure is a panic. Throw converts a
// declared failure to an unchecked one (*UncheckedError, keeping the cause
// and the stack), and Catch converts it back at a higher point.
//
// Subpackages:
// - fn: callables, predicates, consumers and combinators
// - throwing: fallible callables and their failure policies
// - adapt: the policy engine and its observer hook
// - observe: zap and prometheus observers
// - solo, chain: combinators over Result
// - specialized: generated aliases for primitive kinds
package lambda
