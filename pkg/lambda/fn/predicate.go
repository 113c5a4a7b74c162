package fn

import (
	"slices"

	"github.com/samber/lo"

	"github.com/ib-77/lambda3/pkg/lambda"
)

// Predicate0 is a boolean-producing callable without inputs.
type Predicate0 func() bool

func (p Predicate0) Test() bool {
	return p()
}

func (p Predicate0) Arity() int {
	return 0
}

func (p Predicate0) Negate() Predicate0 {
	lambda.RequireNonNil(p, "p")
	return func() bool {
		return !p()
	}
}

// And short-circuits: other is not called when p is false.
func (p Predicate0) And(other Predicate0) Predicate0 {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(other, "other")
	return func() bool {
		return p() && other()
	}
}

// Or short-circuits: other is not called when p is true.
func (p Predicate0) Or(other Predicate0) Predicate0 {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(other, "other")
	return func() bool {
		return p() || other()
	}
}

// Xor always evaluates both predicates.
func (p Predicate0) Xor(other Predicate0) Predicate0 {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(other, "other")
	return func() bool {
		first := p()
		second := other()
		return first != second
	}
}

func (p Predicate0) Boxed() func() bool {
	return p
}

// Predicate1 is a boolean-producing callable with one input.
type Predicate1[A any] func(A) bool

func (p Predicate1[A]) Test(a A) bool {
	return p(a)
}

func (p Predicate1[A]) Arity() int {
	return 1
}

func (p Predicate1[A]) Negate() Predicate1[A] {
	lambda.RequireNonNil(p, "p")
	return func(a A) bool {
		return !p(a)
	}
}

// And short-circuits: other is not called when p is false.
func (p Predicate1[A]) And(other Predicate1[A]) Predicate1[A] {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(other, "other")
	return func(a A) bool {
		return p(a) && other(a)
	}
}

// Or short-circuits: other is not called when p is true.
func (p Predicate1[A]) Or(other Predicate1[A]) Predicate1[A] {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(other, "other")
	return func(a A) bool {
		return p(a) || other(a)
	}
}

// Xor always evaluates both predicates.
func (p Predicate1[A]) Xor(other Predicate1[A]) Predicate1[A] {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(other, "other")
	return func(a A) bool {
		first := p(a)
		second := other(a)
		return first != second
	}
}

func (p Predicate1[A]) Partial(a A) Predicate0 {
	lambda.RequireNonNil(p, "p")
	return func() bool {
		return p(a)
	}
}

func (p Predicate1[A]) PartialLazy(a Func0[A]) Predicate0 {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(a, "a")
	return func() bool {
		return p(a())
	}
}

func (p Predicate1[A]) Boxed() func(A) bool {
	return p
}

// Predicate2 is a boolean-producing callable with two inputs.
type Predicate2[A, B any] func(A, B) bool

func (p Predicate2[A, B]) Test(a A, b B) bool {
	return p(a, b)
}

func (p Predicate2[A, B]) Arity() int {
	return 2
}

func (p Predicate2[A, B]) Negate() Predicate2[A, B] {
	lambda.RequireNonNil(p, "p")
	return func(a A, b B) bool {
		return !p(a, b)
	}
}

func (p Predicate2[A, B]) And(other Predicate2[A, B]) Predicate2[A, B] {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(other, "other")
	return func(a A, b B) bool {
		return p(a, b) && other(a, b)
	}
}

func (p Predicate2[A, B]) Or(other Predicate2[A, B]) Predicate2[A, B] {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(other, "other")
	return func(a A, b B) bool {
		return p(a, b) || other(a, b)
	}
}

func (p Predicate2[A, B]) Xor(other Predicate2[A, B]) Predicate2[A, B] {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(other, "other")
	return func(a A, b B) bool {
		first := p(a, b)
		second := other(a, b)
		return first != second
	}
}

func (p Predicate2[A, B]) Partial(a A) Predicate1[B] {
	lambda.RequireNonNil(p, "p")
	return func(b B) bool {
		return p(a, b)
	}
}

func (p Predicate2[A, B]) Partial2(a A, b B) Predicate0 {
	lambda.RequireNonNil(p, "p")
	return func() bool {
		return p(a, b)
	}
}

func (p Predicate2[A, B]) PartialLazy(a Func0[A]) Predicate1[B] {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(a, "a")
	return func(b B) bool {
		return p(a(), b)
	}
}

func (p Predicate2[A, B]) Boxed() func(A, B) bool {
	return p
}

// Predicate3 is a boolean-producing callable with three inputs.
type Predicate3[A, B, C any] func(A, B, C) bool

func (p Predicate3[A, B, C]) Test(a A, b B, c C) bool {
	return p(a, b, c)
}

func (p Predicate3[A, B, C]) Arity() int {
	return 3
}

func (p Predicate3[A, B, C]) Negate() Predicate3[A, B, C] {
	lambda.RequireNonNil(p, "p")
	return func(a A, b B, c C) bool {
		return !p(a, b, c)
	}
}

func (p Predicate3[A, B, C]) And(other Predicate3[A, B, C]) Predicate3[A, B, C] {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(other, "other")
	return func(a A, b B, c C) bool {
		return p(a, b, c) && other(a, b, c)
	}
}

func (p Predicate3[A, B, C]) Or(other Predicate3[A, B, C]) Predicate3[A, B, C] {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(other, "other")
	return func(a A, b B, c C) bool {
		return p(a, b, c) || other(a, b, c)
	}
}

func (p Predicate3[A, B, C]) Xor(other Predicate3[A, B, C]) Predicate3[A, B, C] {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(other, "other")
	return func(a A, b B, c C) bool {
		first := p(a, b, c)
		second := other(a, b, c)
		return first != second
	}
}

func (p Predicate3[A, B, C]) Partial(a A) Predicate2[B, C] {
	lambda.RequireNonNil(p, "p")
	return func(b B, c C) bool {
		return p(a, b, c)
	}
}

func (p Predicate3[A, B, C]) Partial2(a A, b B) Predicate1[C] {
	lambda.RequireNonNil(p, "p")
	return func(c C) bool {
		return p(a, b, c)
	}
}

func (p Predicate3[A, B, C]) Partial3(a A, b B, c C) Predicate0 {
	lambda.RequireNonNil(p, "p")
	return func() bool {
		return p(a, b, c)
	}
}

func (p Predicate3[A, B, C]) PartialLazy(a Func0[A]) Predicate2[B, C] {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(a, "a")
	return func(b B, c C) bool {
		return p(a(), b, c)
	}
}

func (p Predicate3[A, B, C]) Boxed() func(A, B, C) bool {
	return p
}

// OfPredicate1 converts a plain function. A nil function gives a nil predicate.
func OfPredicate1[A any](p func(A) bool) Predicate1[A] {
	return p
}

func OfPredicate2[A, B any](p func(A, B) bool) Predicate2[A, B] {
	return p
}

func OfPredicate3[A, B, C any](p func(A, B, C) bool) Predicate3[A, B, C] {
	return p
}

func ComposePredicate1[A, B any](p Predicate1[B], before Func1[A, B]) Predicate1[A] {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(before, "before")
	return func(a A) bool {
		return p(before(a))
	}
}

func ComposePredicate2[A1, A2, B1, B2 any](p Predicate2[B1, B2],
	before1 Func1[A1, B1], before2 Func1[A2, B2]) Predicate2[A1, A2] {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(before1, "before1")
	lambda.RequireNonNil(before2, "before2")
	return func(a1 A1, a2 A2) bool {
		b1 := before1(a1)
		b2 := before2(a2)
		return p(b1, b2)
	}
}

func ComposePredicate3[A1, A2, A3, B1, B2, B3 any](p Predicate3[B1, B2, B3],
	before1 Func1[A1, B1], before2 Func1[A2, B2], before3 Func1[A3, B3]) Predicate3[A1, A2, A3] {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(before1, "before1")
	lambda.RequireNonNil(before2, "before2")
	lambda.RequireNonNil(before3, "before3")
	return func(a1 A1, a2 A2, a3 A3) bool {
		b1 := before1(a1)
		b2 := before2(a2)
		b3 := before3(a3)
		return p(b1, b2, b3)
	}
}

// PredicateAndThen1 maps the outcome of p to a value.
func PredicateAndThen1[A, V any](p Predicate1[A], after Func1[bool, V]) Func1[A, V] {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(after, "after")
	return func(a A) V {
		return after(p(a))
	}
}

func PredicateAndThen2[A, B, V any](p Predicate2[A, B], after Func1[bool, V]) Func2[A, B, V] {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(after, "after")
	return func(a A, b B) V {
		return after(p(a, b))
	}
}

func PredicateAndThen3[A, B, C, V any](p Predicate3[A, B, C], after Func1[bool, V]) Func3[A, B, C, V] {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(after, "after")
	return func(a A, b B, c C) V {
		return after(p(a, b, c))
	}
}

func ConstantPredicate1[A any](v bool) Predicate1[A] {
	return func(A) bool {
		return v
	}
}

func ConstantPredicate2[A, B any](v bool) Predicate2[A, B] {
	return func(A, B) bool {
		return v
	}
}

func ConstantPredicate3[A, B, C any](v bool) Predicate3[A, B, C] {
	return func(A, B, C) bool {
		return v
	}
}

// IsEqual1 tests its input for equality with v.
func IsEqual1[A comparable](v A) Predicate1[A] {
	return func(a A) bool {
		return a == v
	}
}

// IsEqual2 is true only for the exact pair (v1, v2).
func IsEqual2[A, B comparable](v1 A, v2 B) Predicate2[A, B] {
	return func(a A, b B) bool {
		return a == v1 && b == v2
	}
}

func IsEqual3[A, B, C comparable](v1 A, v2 B, v3 C) Predicate3[A, B, C] {
	return func(a A, b B, c C) bool {
		return a == v1 && b == v2 && c == v3
	}
}

// AllOf1 is true when every predicate holds. Evaluation stops at the first
// predicate that fails; an empty list is always true.
func AllOf1[A any](ps ...Predicate1[A]) Predicate1[A] {
	for _, p := range ps {
		lambda.RequireNonNil(p, "ps")
	}
	ps = slices.Clone(ps)
	return func(a A) bool {
		return lo.EveryBy(ps, func(p Predicate1[A]) bool {
			return p(a)
		})
	}
}

// AnyOf1 is true when some predicate holds. Evaluation stops at the first
// predicate that passes; an empty list is always false.
func AnyOf1[A any](ps ...Predicate1[A]) Predicate1[A] {
	for _, p := range ps {
		lambda.RequireNonNil(p, "ps")
	}
	ps = slices.Clone(ps)
	return func(a A) bool {
		return lo.SomeBy(ps, func(p Predicate1[A]) bool {
			return p(a)
		})
	}
}
