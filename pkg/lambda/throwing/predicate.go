package throwing

import (
	"github.com/ib-77/lambda3/pkg/lambda"
	"github.com/ib-77/lambda3/pkg/lambda/adapt"
	"github.com/ib-77/lambda3/pkg/lambda/fn"
)

// Predicate1 is a boolean-producing callable whose call can fail with a
// declared error.
type Predicate1[A any] func(A) (bool, error)

func (p Predicate1[A]) TryTest(a A) (bool, error) {
	return p(a)
}

// Test rethrows a declared failure as a *lambda.UncheckedError panic.
func (p Predicate1[A]) Test(a A) bool {
	return adapt.DoRethrow(func() (bool, error) {
		return p(a)
	})
}

func (p Predicate1[A]) Nest(a A) lambda.Result[bool] {
	return lambda.TryFrom(p(a))
}

func (p Predicate1[A]) Arity() int {
	return 1
}

func (p Predicate1[A]) Must(opts ...adapt.Option) fn.Predicate1[A] {
	lambda.RequireNonNil(p, "p")
	return func(a A) bool {
		return adapt.DoRethrow(func() (bool, error) {
			return p(a)
		}, opts...)
	}
}

func (p Predicate1[A]) OrElse(other Predicate1[A], opts ...adapt.Option) Predicate1[A] {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(other, "other")
	return func(a A) (bool, error) {
		return adapt.DoFallback(func() (bool, error) {
			return p(a)
		}, func() (bool, error) {
			return other(a)
		}, opts...)
	}
}

func (p Predicate1[A]) OrReturn(v bool, opts ...adapt.Option) fn.Predicate1[A] {
	lambda.RequireNonNil(p, "p")
	return func(a A) bool {
		return adapt.DoOrReturn(func() (bool, error) {
			return p(a)
		}, v, opts...)
	}
}

// OrReturnTrue is true when p fails and the outcome of p otherwise.
func (p Predicate1[A]) OrReturnTrue(opts ...adapt.Option) fn.Predicate1[A] {
	return p.OrReturn(true, opts...)
}

// OrReturnFalse is false when p fails and the outcome of p otherwise.
func (p Predicate1[A]) OrReturnFalse(opts ...adapt.Option) fn.Predicate1[A] {
	return p.OrReturn(false, opts...)
}

func (p Predicate1[A]) Escalate(factory adapt.ErrorFactory, opts ...adapt.Option) Predicate1[A] {
	lambda.RequireNonNil(p, "p")
	adapt.CheckFactory(factory)
	return func(a A) (bool, error) {
		return adapt.DoEscalate(func() (bool, error) {
			return p(a)
		}, factory, opts...)
	}
}

func (p Predicate1[A]) IgnoreChecked(opts ...adapt.Option) fn.Predicate1[A] {
	lambda.RequireNonNil(p, "p")
	return func(a A) bool {
		return adapt.DoIgnoreChecked(func() (bool, error) {
			return p(a)
		}, opts...)
	}
}

func (p Predicate1[A]) IgnoreAll(opts ...adapt.Option) fn.Predicate1[A] {
	lambda.RequireNonNil(p, "p")
	return func(a A) bool {
		return adapt.DoIgnoreAll(func() (bool, error) {
			return p(a)
		}, opts...)
	}
}

type Predicate2[A, B any] func(A, B) (bool, error)

func (p Predicate2[A, B]) TryTest(a A, b B) (bool, error) {
	return p(a, b)
}

func (p Predicate2[A, B]) Test(a A, b B) bool {
	return adapt.DoRethrow(func() (bool, error) {
		return p(a, b)
	})
}

func (p Predicate2[A, B]) Nest(a A, b B) lambda.Result[bool] {
	return lambda.TryFrom(p(a, b))
}

func (p Predicate2[A, B]) Arity() int {
	return 2
}

func (p Predicate2[A, B]) Must(opts ...adapt.Option) fn.Predicate2[A, B] {
	lambda.RequireNonNil(p, "p")
	return func(a A, b B) bool {
		return adapt.DoRethrow(func() (bool, error) {
			return p(a, b)
		}, opts...)
	}
}

func (p Predicate2[A, B]) OrElse(other Predicate2[A, B], opts ...adapt.Option) Predicate2[A, B] {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(other, "other")
	return func(a A, b B) (bool, error) {
		return adapt.DoFallback(func() (bool, error) {
			return p(a, b)
		}, func() (bool, error) {
			return other(a, b)
		}, opts...)
	}
}

func (p Predicate2[A, B]) OrReturn(v bool, opts ...adapt.Option) fn.Predicate2[A, B] {
	lambda.RequireNonNil(p, "p")
	return func(a A, b B) bool {
		return adapt.DoOrReturn(func() (bool, error) {
			return p(a, b)
		}, v, opts...)
	}
}

func (p Predicate2[A, B]) OrReturnTrue(opts ...adapt.Option) fn.Predicate2[A, B] {
	return p.OrReturn(true, opts...)
}

func (p Predicate2[A, B]) OrReturnFalse(opts ...adapt.Option) fn.Predicate2[A, B] {
	return p.OrReturn(false, opts...)
}

func (p Predicate2[A, B]) Escalate(factory adapt.ErrorFactory, opts ...adapt.Option) Predicate2[A, B] {
	lambda.RequireNonNil(p, "p")
	adapt.CheckFactory(factory)
	return func(a A, b B) (bool, error) {
		return adapt.DoEscalate(func() (bool, error) {
			return p(a, b)
		}, factory, opts...)
	}
}

func (p Predicate2[A, B]) IgnoreChecked(opts ...adapt.Option) fn.Predicate2[A, B] {
	lambda.RequireNonNil(p, "p")
	return func(a A, b B) bool {
		return adapt.DoIgnoreChecked(func() (bool, error) {
			return p(a, b)
		}, opts...)
	}
}

func (p Predicate2[A, B]) IgnoreAll(opts ...adapt.Option) fn.Predicate2[A, B] {
	lambda.RequireNonNil(p, "p")
	return func(a A, b B) bool {
		return adapt.DoIgnoreAll(func() (bool, error) {
			return p(a, b)
		}, opts...)
	}
}

type Predicate3[A, B, C any] func(A, B, C) (bool, error)

func (p Predicate3[A, B, C]) TryTest(a A, b B, c C) (bool, error) {
	return p(a, b, c)
}

func (p Predicate3[A, B, C]) Test(a A, b B, c C) bool {
	return adapt.DoRethrow(func() (bool, error) {
		return p(a, b, c)
	})
}

func (p Predicate3[A, B, C]) Nest(a A, b B, c C) lambda.Result[bool] {
	return lambda.TryFrom(p(a, b, c))
}

func (p Predicate3[A, B, C]) Arity() int {
	return 3
}

func (p Predicate3[A, B, C]) Must(opts ...adapt.Option) fn.Predicate3[A, B, C] {
	lambda.RequireNonNil(p, "p")
	return func(a A, b B, c C) bool {
		return adapt.DoRethrow(func() (bool, error) {
			return p(a, b, c)
		}, opts...)
	}
}

func (p Predicate3[A, B, C]) OrElse(other Predicate3[A, B, C], opts ...adapt.Option) Predicate3[A, B, C] {
	lambda.RequireNonNil(p, "p")
	lambda.RequireNonNil(other, "other")
	return func(a A, b B, c C) (bool, error) {
		return adapt.DoFallback(func() (bool, error) {
			return p(a, b, c)
		}, func() (bool, error) {
			return other(a, b, c)
		}, opts...)
	}
}

func (p Predicate3[A, B, C]) OrReturn(v bool, opts ...adapt.Option) fn.Predicate3[A, B, C] {
	lambda.RequireNonNil(p, "p")
	return func(a A, b B, c C) bool {
		return adapt.DoOrReturn(func() (bool, error) {
			return p(a, b, c)
		}, v, opts...)
	}
}

func (p Predicate3[A, B, C]) OrReturnTrue(opts ...adapt.Option) fn.Predicate3[A, B, C] {
	return p.OrReturn(true, opts...)
}

func (p Predicate3[A, B, C]) OrReturnFalse(opts ...adapt.Option) fn.Predicate3[A, B, C] {
	return p.OrReturn(false, opts...)
}

func (p Predicate3[A, B, C]) Escalate(factory adapt.ErrorFactory, opts ...adapt.Option) Predicate3[A, B, C] {
	lambda.RequireNonNil(p, "p")
	adapt.CheckFactory(factory)
	return func(a A, b B, c C) (bool, error) {
		return adapt.DoEscalate(func() (bool, error) {
			return p(a, b, c)
		}, factory, opts...)
	}
}

func (p Predicate3[A, B, C]) IgnoreChecked(opts ...adapt.Option) fn.Predicate3[A, B, C] {
	lambda.RequireNonNil(p, "p")
	return func(a A, b B, c C) bool {
		return adapt.DoIgnoreChecked(func() (bool, error) {
			return p(a, b, c)
		}, opts...)
	}
}

func (p Predicate3[A, B, C]) IgnoreAll(opts ...adapt.Option) fn.Predicate3[A, B, C] {
	lambda.RequireNonNil(p, "p")
	return func(a A, b B, c C) bool {
		return adapt.DoIgnoreAll(func() (bool, error) {
			return p(a, b, c)
		}, opts...)
	}
}
