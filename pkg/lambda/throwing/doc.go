// Package throwing holds the callables whose call can fail with a declared
// error, and the failure policies that adapt them.
//
// Each type has two operations of the same arity:
//   - TryApply/TryTest/TryAccept: the declared-failure operation
//   - Apply/Test/Accept: the primary operation, which raises a declared failure
//     as a *lambda.UncheckedError panic
//
// The primary operation lets a throwing callable stand in wherever the fn
// interfaces (Applier1, Tester1, Accepter1, ...) are expected. Nest returns
// the outcome as a lambda.Result.
//
// Policy methods return a new callable that uses exactly one policy:
// Must, OrElse, OrReturn, OrReturnTrue/OrReturnFalse, Escalate,
// IgnoreChecked and IgnoreAll. Document the policy at the point of use; a
// swallowed failure is otherwise indistinguishable from a success.
package throwing
