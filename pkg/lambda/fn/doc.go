// Package fn contains the callable types of the module and the combinators
// that build new callables from existing ones.
//
// Every shape comes in arities 0 to 3:
// - Func0..Func3: value-producing, primary operation Apply
// - Predicate0..Predicate3: boolean-producing, primary operation Test
// - Consumer0..Consumer3: side-effect-only, primary operation Accept
//
// Combinators:
// - Compose1..3: pre-transform each input, left to right
// - AndThen0..3, AndConsume1..3: post-process the result
// - Partial/PartialLazy: bind leading inputs, down to a thunk
// - Constant0..3, Identity, ConstantPredicate1..3, IsEqual1..3
// - Negate/And/Or/Xor on predicates; And and Or short-circuit, Xor does not
//
// Builders panic with an error wrapping lambda.ErrNilFunction when a required
// delegate is nil. The Of* conversions pass nil through.
//
// None of the combinators recover panics. Use the throwing package to attach a
// failure policy.
package fn
