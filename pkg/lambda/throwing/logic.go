package throwing

import (
	"github.com/ib-77/lambda3/pkg/lambda"
	"github.com/ib-77/lambda3/pkg/lambda/adapt"
	"github.com/ib-77/lambda3/pkg/lambda/fn"
)

// Predicate0 is a boolean thunk whose call can fail with a declared error.
// It is what partial application of a throwing predicate reduces to.
type Predicate0 func() (bool, error)

func (p Predicate0) TryTest() (bool, error) {
	return p()
}

// Test rethrows a declared failure as a *lambda.UncheckedError panic.
func (p Predicate0) Test() bool {
	return adapt.DoRethrow[bool](p)
}

func (p Predicate0) Nest() lambda.Result[bool] {
	return lambda.TryFrom(p())
}

func (p Predicate0) Arity() int {
	return 0
}

func (p Predicate0) OrReturnTrue(opts ...adapt.Option) fn.Predicate0 {
	lambda.RequireNonNil(p, "p")
	return func() bool {
		return adapt.DoOrReturn[bool](p, true, opts...)
	}
}

func (p Predicate0) OrReturnFalse(opts ...adapt.Option) fn.Predicate0 {
	lambda.RequireNonNil(p, "p")
	return func() bool {
		return adapt.DoOrReturn[bool](p, false, opts...)
	}
}

// The predicate logic below never suppresses a declared failure: a failing
// operand ends the evaluation and its error is returned.

func negate(p func() (bool, error)) (bool, error) {
	ok, err := p()
	if err != nil {
		return false, err
	}
	return !ok, nil
}

// and stops at the first operand that fails or is false.
func and(first, second func() (bool, error)) (bool, error) {
	ok, err := first()
	if err != nil || !ok {
		return false, err
	}
	return second()
}

// or stops at the first operand that fails or is true.
func or(first, second func() (bool, error)) (bool, error) {
	ok, err := first()
	if err != nil {
		return false, err
	}
	if ok {
		return true, nil
	}
	return second()
}

// xor evaluates both operands unless the first one fails.
func xor(first, second func() (bool, error)) (bool, error) {
	a, err := first()
	if err != nil {
		return false, err
	}
	b, err := second()
	if err != nil {
		return false, err
	}
	return a != b, nil
}

func (p Predicate0) Negate() Predicate0 {
	lambda.RequireNonNil(p, "p")
	return func() (bool, error) {
		return negate(p)
	}
}

func (p Predicate0) And(other Predicate0) Predicate0 {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(other, "other")
	return func() (bool, error) {
		return and(p, other)
	}
}

func (p Predicate0) Or(other Predicate0) Predicate0 {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(other, "other")
	return func() (bool, error) {
		return or(p, other)
	}
}

func (p Predicate0) Xor(other Predicate0) Predicate0 {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(other, "other")
	return func() (bool, error) {
		return xor(p, other)
	}
}

func (p Predicate1[A]) Negate() Predicate1[A] {
	lambda.RequireNonNil(p, "p")
	return func(a A) (bool, error) {
		return negate(func() (bool, error) { return p(a) })
	}
}

func (p Predicate1[A]) And(other Predicate1[A]) Predicate1[A] {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(other, "other")
	return func(a A) (bool, error) {
		return and(func() (bool, error) { return p(a) }, func() (bool, error) { return other(a) })
	}
}

func (p Predicate1[A]) Or(other Predicate1[A]) Predicate1[A] {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(other, "other")
	return func(a A) (bool, error) {
		return or(func() (bool, error) { return p(a) }, func() (bool, error) { return other(a) })
	}
}

func (p Predicate1[A]) Xor(other Predicate1[A]) Predicate1[A] {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(other, "other")
	return func(a A) (bool, error) {
		return xor(func() (bool, error) { return p(a) }, func() (bool, error) { return other(a) })
	}
}

func (p Predicate2[A, B]) Negate() Predicate2[A, B] {
	lambda.RequireNonNil(p, "p")
	return func(a A, b B) (bool, error) {
		return negate(func() (bool, error) { return p(a, b) })
	}
}

func (p Predicate2[A, B]) And(other Predicate2[A, B]) Predicate2[A, B] {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(other, "other")
	return func(a A, b B) (bool, error) {
		return and(func() (bool, error) { return p(a, b) }, func() (bool, error) { return other(a, b) })
	}
}

func (p Predicate2[A, B]) Or(other Predicate2[A, B]) Predicate2[A, B] {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(other, "other")
	return func(a A, b B) (bool, error) {
		return or(func() (bool, error) { return p(a, b) }, func() (bool, error) { return other(a, b) })
	}
}

func (p Predicate2[A, B]) Xor(other Predicate2[A, B]) Predicate2[A, B] {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(other, "other")
	return func(a A, b B) (bool, error) {
		return xor(func() (bool, error) { return p(a, b) }, func() (bool, error) { return other(a, b) })
	}
}

func (p Predicate3[A, B, C]) Negate() Predicate3[A, B, C] {
	lambda.RequireNonNil(p, "p")
	return func(a A, b B, c C) (bool, error) {
		return negate(func() (bool, error) { return p(a, b, c) })
	}
}

func (p Predicate3[A, B, C]) And(other Predicate3[A, B, C]) Predicate3[A, B, C] {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(other, "other")
	return func(a A, b B, c C) (bool, error) {
		return and(func() (bool, error) { return p(a, b, c) }, func() (bool, error) { return other(a, b, c) })
	}
}

func (p Predicate3[A, B, C]) Or(other Predicate3[A, B, C]) Predicate3[A, B, C] {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(other, "other")
	return func(a A, b B, c C) (bool, error) {
		return or(func() (bool, error) { return p(a, b, c) }, func() (bool, error) { return other(a, b, c) })
	}
}

func (p Predicate3[A, B, C]) Xor(other Predicate3[A, B, C]) Predicate3[A, B, C] {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(other, "other")
	return func(a A, b B, c C) (bool, error) {
		return xor(func() (bool, error) { return p(a, b, c) }, func() (bool, error) { return other(a, b, c) })
	}
}
