package throwing

import (
	"github.com/ib-77/lambda3/pkg/lambda"
	"github.com/ib-77/lambda3/pkg/lambda/adapt"
	"github.com/ib-77/lambda3/pkg/lambda/fn"
)

// Func0 is a thunk whose call can fail with a declared error.
type Func0[R any] func() (R, error)

func (f Func0[R]) TryApply() (R, error) {
	return f()
}

func (f Func0[R]) Apply() R {
	return adapt.DoRethrow(func() (R, error) {
		return f()
	})
}

func (f Func0[R]) Nest() lambda.Result[R] {
	return lambda.TryFrom(f())
}

func (f Func0[R]) Arity() int {
	return 0
}

func (f Func0[R]) Must(opts ...adapt.Option) fn.Func0[R] {
	lambda.RequireNonNil(f, "f")
	return func() R {
		return adapt.DoRethrow(func() (R, error) {
			return f()
		}, opts...)
	}
}

func (f Func0[R]) OrElse(other Func0[R], opts ...adapt.Option) Func0[R] {
	lambda.RequireNonNil(f, "f")
	lambda.RequireNonNil(other, "other")
	return func() (R, error) {
		return adapt.DoFallback(func() (R, error) {
			return f()
		}, func() (R, error) {
			return other()
		}, opts...)
	}
}

func (f Func0[R]) OrReturn(v R, opts ...adapt.Option) fn.Func0[R] {
	lambda.RequireNonNil(f, "f")
	return func() R {
		return adapt.DoOrReturn(func() (R, error) {
			return f()
		}, v, opts...)
	}
}

func (f Func0[R]) Escalate(factory adapt.ErrorFactory, opts ...adapt.Option) Func0[R] {
	lambda.RequireNonNil(f, "f")
	adapt.CheckFactory(factory)
	return func() (R, error) {
		return adapt.DoEscalate(func() (R, error) {
			return f()
		}, factory, opts...)
	}
}

func (f Func0[R]) IgnoreChecked(opts ...adapt.Option) fn.Func0[R] {
	lambda.RequireNonNil(f, "f")
	return func() R {
		return adapt.DoIgnoreChecked(func() (R, error) {
			return f()
		}, opts...)
	}
}

func (f Func0[R]) IgnoreAll(opts ...adapt.Option) fn.Func0[R] {
	lambda.RequireNonNil(f, "f")
	return func() R {
		return adapt.DoIgnoreAll(func() (R, error) {
			return f()
		}, opts...)
	}
}

// Func1 is a value-producing callable with one input whose call can fail
// with a declared error.
type Func1[A, R any] func(A) (R, error)

// TryApply is the declared-failure operation.
func (f Func1[A, R]) TryApply(a A) (R, error) {
	return f(a)
}

// Apply rethrows a declared failure as a *lambda.UncheckedError panic.
func (f Func1[A, R]) Apply(a A) R {
	return adapt.DoRethrow(func() (R, error) {
		return f(a)
	})
}

// Nest returns the outcome of the call as a Result.
func (f Func1[A, R]) Nest(a A) lambda.Result[R] {
	return lambda.TryFrom(f(a))
}

func (f Func1[A, R]) Arity() int {
	return 1
}

// Must adapts f with the rethrow policy.
func (f Func1[A, R]) Must(opts ...adapt.Option) fn.Func1[A, R] {
	lambda.RequireNonNil(f, "f")
	return func(a A) R {
		return adapt.DoRethrow(func() (R, error) {
			return f(a)
		}, opts...)
	}
}

// OrElse calls other with the same inputs when f fails.
func (f Func1[A, R]) OrElse(other Func1[A, R], opts ...adapt.Option) Func1[A, R] {
	lambda.RequireNonNil(f, "f")
	lambda.RequireNonNil(other, "other")
	return func(a A) (R, error) {
		return adapt.DoFallback(func() (R, error) {
			return f(a)
		}, func() (R, error) {
			return other(a)
		}, opts...)
	}
}

// OrReturn substitutes v when f fails.
func (f Func1[A, R]) OrReturn(v R, opts ...adapt.Option) fn.Func1[A, R] {
	lambda.RequireNonNil(f, "f")
	return func(a A) R {
		return adapt.DoOrReturn(func() (R, error) {
			return f(a)
		}, v, opts...)
	}
}

// Escalate replaces a failure of f with an *adapt.EscalatedError built from
// factory. A nil factory panics with a *lambda.ConfigurationError.
func (f Func1[A, R]) Escalate(factory adapt.ErrorFactory, opts ...adapt.Option) Func1[A, R] {
	lambda.RequireNonNil(f, "f")
	adapt.CheckFactory(factory)
	return func(a A) (R, error) {
		return adapt.DoEscalate(func() (R, error) {
			return f(a)
		}, factory, opts...)
	}
}

// IgnoreChecked returns the zero value when f fails. Panics are not
// recovered.
func (f Func1[A, R]) IgnoreChecked(opts ...adapt.Option) fn.Func1[A, R] {
	lambda.RequireNonNil(f, "f")
	return func(a A) R {
		return adapt.DoIgnoreChecked(func() (R, error) {
			return f(a)
		}, opts...)
	}
}

// IgnoreAll returns the zero value on any failure, including panics.
func (f Func1[A, R]) IgnoreAll(opts ...adapt.Option) fn.Func1[A, R] {
	lambda.RequireNonNil(f, "f")
	return func(a A) R {
		return adapt.DoIgnoreAll(func() (R, error) {
			return f(a)
		}, opts...)
	}
}

// Func2 is Func1 with two inputs.
type Func2[A, B, R any] func(A, B) (R, error)

func (f Func2[A, B, R]) TryApply(a A, b B) (R, error) {
	return f(a, b)
}

func (f Func2[A, B, R]) Apply(a A, b B) R {
	return adapt.DoRethrow(func() (R, error) {
		return f(a, b)
	})
}

func (f Func2[A, B, R]) Nest(a A, b B) lambda.Result[R] {
	return lambda.TryFrom(f(a, b))
}

func (f Func2[A, B, R]) Arity() int {
	return 2
}

func (f Func2[A, B, R]) Must(opts ...adapt.Option) fn.Func2[A, B, R] {
	lambda.RequireNonNil(f, "f")
	return func(a A, b B) R {
		return adapt.DoRethrow(func() (R, error) {
			return f(a, b)
		}, opts...)
	}
}

func (f Func2[A, B, R]) OrElse(other Func2[A, B, R], opts ...adapt.Option) Func2[A, B, R] {
	lambda.RequireNonNil(f, "f")
	lambda.RequireNonNil(other, "other")
	return func(a A, b B) (R, error) {
		return adapt.DoFallback(func() (R, error) {
			return f(a, b)
		}, func() (R, error) {
			return other(a, b)
		}, opts...)
	}
}

func (f Func2[A, B, R]) OrReturn(v R, opts ...adapt.Option) fn.Func2[A, B, R] {
	lambda.RequireNonNil(f, "f")
	return func(a A, b B) R {
		return adapt.DoOrReturn(func() (R, error) {
			return f(a, b)
		}, v, opts...)
	}
}

func (f Func2[A, B, R]) Escalate(factory adapt.ErrorFactory, opts ...adapt.Option) Func2[A, B, R] {
	lambda.RequireNonNil(f, "f")
	adapt.CheckFactory(factory)
	return func(a A, b B) (R, error) {
		return adapt.DoEscalate(func() (R, error) {
			return f(a, b)
		}, factory, opts...)
	}
}

func (f Func2[A, B, R]) IgnoreChecked(opts ...adapt.Option) fn.Func2[A, B, R] {
	lambda.RequireNonNil(f, "f")
	return func(a A, b B) R {
		return adapt.DoIgnoreChecked(func() (R, error) {
			return f(a, b)
		}, opts...)
	}
}

func (f Func2[A, B, R]) IgnoreAll(opts ...adapt.Option) fn.Func2[A, B, R] {
	lambda.RequireNonNil(f, "f")
	return func(a A, b B) R {
		return adapt.DoIgnoreAll(func() (R, error) {
			return f(a, b)
		}, opts...)
	}
}

// Func3 is Func1 with three inputs.
type Func3[A, B, C, R any] func(A, B, C) (R, error)

func (f Func3[A, B, C, R]) TryApply(a A, b B, c C) (R, error) {
	return f(a, b, c)
}

func (f Func3[A, B, C, R]) Apply(a A, b B, c C) R {
	return adapt.DoRethrow(func() (R, error) {
		return f(a, b, c)
	})
}

func (f Func3[A, B, C, R]) Nest(a A, b B, c C) lambda.Result[R] {
	return lambda.TryFrom(f(a, b, c))
}

func (f Func3[A, B, C, R]) Arity() int {
	return 3
}

func (f Func3[A, B, C, R]) Must(opts ...adapt.Option) fn.Func3[A, B, C, R] {
	lambda.RequireNonNil(f, "f")
	return func(a A, b B, c C) R {
		return adapt.DoRethrow(func() (R, error) {
			return f(a, b, c)
		}, opts...)
	}
}

func (f Func3[A, B, C, R]) OrElse(other Func3[A, B, C, R], opts ...adapt.Option) Func3[A, B, C, R] {
	lambda.RequireNonNil(f, "f")
	lambda.RequireNonNil(other, "other")
	return func(a A, b B, c C) (R, error) {
		return adapt.DoFallback(func() (R, error) {
			return f(a, b, c)
		}, func() (R, error) {
			return other(a, b, c)
		}, opts...)
	}
}

func (f Func3[A, B, C, R]) OrReturn(v R, opts ...adapt.Option) fn.Func3[A, B, C, R] {
	lambda.RequireNonNil(f, "f")
	return func(a A, b B, c C) R {
		return adapt.DoOrReturn(func() (R, error) {
			return f(a, b, c)
		}, v, opts...)
	}
}

func (f Func3[A, B, C, R]) Escalate(factory adapt.ErrorFactory, opts ...adapt.Option) Func3[A, B, C, R] {
	lambda.RequireNonNil(f, "f")
	adapt.CheckFactory(factory)
	return func(a A, b B, c C) (R, error) {
		return adapt.DoEscalate(func() (R, error) {
			return f(a, b, c)
		}, factory, opts...)
	}
}

func (f Func3[A, B, C, R]) IgnoreChecked(opts ...adapt.Option) fn.Func3[A, B, C, R] {
	lambda.RequireNonNil(f, "f")
	return func(a A, b B, c C) R {
		return adapt.DoIgnoreChecked(func() (R, error) {
			return f(a, b, c)
		}, opts...)
	}
}

func (f Func3[A, B, C, R]) IgnoreAll(opts ...adapt.Option) fn.Func3[A, B, C, R] {
	lambda.RequireNonNil(f, "f")
	return func(a A, b B, c C) R {
		return adapt.DoIgnoreAll(func() (R, error) {
			return f(a, b, c)
		}, opts...)
	}
}
