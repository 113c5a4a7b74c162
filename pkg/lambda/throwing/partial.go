package throwing

import (
	"github.com/ib-77/lambda3/pkg/lambda"
	"github.com/ib-77/lambda3/pkg/lambda/adapt"
)

// Consumer0 is a side-effect thunk whose call can fail with a declared error.
type Consumer0 func() error

func (c Consumer0) TryAccept() error {
	return c()
}

// Accept rethrows a declared failure as a *lambda.UncheckedError panic.
func (c Consumer0) Accept() {
	adapt.DoRethrow(func() (lambda.Unit, error) {
		return lambda.Unit{}, c()
	})
}

func (c Consumer0) Arity() int {
	return 0
}

// Partial fixes the first input. The call is deferred until the result is
// applied, and a declared failure is returned from there.
func (f Func1[A, R]) Partial(a A) Func0[R] {
	lambda.RequireNonNil(f, "f")
	return func() (R, error) {
		return f(a)
	}
}

func (f Func2[A, B, R]) Partial(a A) Func1[B, R] {
	lambda.RequireNonNil(f, "f")
	return func(b B) (R, error) {
		return f(a, b)
	}
}

func (f Func2[A, B, R]) Partial2(a A, b B) Func0[R] {
	lambda.RequireNonNil(f, "f")
	return func() (R, error) {
		return f(a, b)
	}
}

func (f Func3[A, B, C, R]) Partial(a A) Func2[B, C, R] {
	lambda.RequireNonNil(f, "f")
	return func(b B, c C) (R, error) {
		return f(a, b, c)
	}
}

func (f Func3[A, B, C, R]) Partial2(a A, b B) Func1[C, R] {
	lambda.RequireNonNil(f, "f")
	return func(c C) (R, error) {
		return f(a, b, c)
	}
}

func (f Func3[A, B, C, R]) Partial3(a A, b B, c C) Func0[R] {
	lambda.RequireNonNil(f, "f")
	return func() (R, error) {
		return f(a, b, c)
	}
}

func (p Predicate1[A]) Partial(a A) Predicate0 {
	lambda.RequireNonNil(p, "p")
	return func() (bool, error) {
		return p(a)
	}
}

func (p Predicate2[A, B]) Partial(a A) Predicate1[B] {
	lambda.RequireNonNil(p, "p")
	return func(b B) (bool, error) {
		return p(a, b)
	}
}

func (p Predicate2[A, B]) Partial2(a A, b B) Predicate0 {
	lambda.RequireNonNil(p, "p")
	return func() (bool, error) {
		return p(a, b)
	}
}

func (p Predicate3[A, B, C]) Partial(a A) Predicate2[B, C] {
	lambda.RequireNonNil(p, "p")
	return func(b B, c C) (bool, error) {
		return p(a, b, c)
	}
}

func (p Predicate3[A, B, C]) Partial2(a A, b B) Predicate1[C] {
	lambda.RequireNonNil(p, "p")
	return func(c C) (bool, error) {
		return p(a, b, c)
	}
}

func (p Predicate3[A, B, C]) Partial3(a A, b B, c C) Predicate0 {
	lambda.RequireNonNil(p, "p")
	return func() (bool, error) {
		return p(a, b, c)
	}
}

func (c Consumer1[A]) Partial(a A) Consumer0 {
	lambda.RequireNonNil(c, "c")
	return func() error {
		return c(a)
	}
}

func (c Consumer2[A, B]) Partial(a A) Consumer1[B] {
	lambda.RequireNonNil(c, "c")
	return func(b B) error {
		return c(a, b)
	}
}

func (c Consumer2[A, B]) Partial2(a A, b B) Consumer0 {
	lambda.RequireNonNil(c, "c")
	return func() error {
		return c(a, b)
	}
}

func (c Consumer3[A, B, C]) Partial(a A) Consumer2[B, C] {
	lambda.RequireNonNil(c, "c")
	return func(b B, cc C) error {
		return c(a, b, cc)
	}
}

func (c Consumer3[A, B, C]) Partial2(a A, b B) Consumer1[C] {
	lambda.RequireNonNil(c, "c")
	return func(cc C) error {
		return c(a, b, cc)
	}
}

func (c Consumer3[A, B, C]) Partial3(a A, b B, cc C) Consumer0 {
	lambda.RequireNonNil(c, "c")
	return func() error {
		return c(a, b, cc)
	}
}
