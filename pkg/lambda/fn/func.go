package fn

import "github.com/ib-77/lambda3/pkg/lambda"

// Func0 is a value-producing callable without inputs (a thunk).
type Func0[R any] func() R

func (f Func0[R]) Apply() R {
	return f()
}

func (f Func0[R]) Arity() int {
	return 0
}

// Boxed returns the plain Go function behind f.
func (f Func0[R]) Boxed() func() R {
	return f
}

// Func1 is a value-producing callable with one input.
type Func1[A, R any] func(A) R

func (f Func1[A, R]) Apply(a A) R {
	return f(a)
}

func (f Func1[A, R]) Arity() int {
	return 1
}

// Partial binds the input. The call itself is deferred until the thunk runs.
func (f Func1[A, R]) Partial(a A) Func0[R] {
	lambda.RequireNonNil(f, "f")
	return func() R {
		return f(a)
	}
}

// PartialLazy binds the input to a supplier that is evaluated on every call
// of the returned thunk.
func (f Func1[A, R]) PartialLazy(a Func0[A]) Func0[R] {
	lambda.RequireNonNil(f, "f")
	lambda.RequireNonNil(a, "a")
	return func() R {
		return f(a())
	}
}

func (f Func1[A, R]) Boxed() func(A) R {
	return f
}

// Func2 is a value-producing callable with two inputs.
type Func2[A, B, R any] func(A, B) R

func (f Func2[A, B, R]) Apply(a A, b B) R {
	return f(a, b)
}

func (f Func2[A, B, R]) Arity() int {
	return 2
}

// Partial binds the first input.
func (f Func2[A, B, R]) Partial(a A) Func1[B, R] {
	lambda.RequireNonNil(f, "f")
	return func(b B) R {
		return f(a, b)
	}
}

// Partial2 binds both inputs.
func (f Func2[A, B, R]) Partial2(a A, b B) Func0[R] {
	lambda.RequireNonNil(f, "f")
	return func() R {
		return f(a, b)
	}
}

func (f Func2[A, B, R]) PartialLazy(a Func0[A]) Func1[B, R] {
	lambda.RequireNonNil(f, "f")
	lambda.RequireNonNil(a, "a")
	return func(b B) R {
		return f(a(), b)
	}
}

func (f Func2[A, B, R]) Boxed() func(A, B) R {
	return f
}

// Func3 is a value-producing callable with three inputs.
type Func3[A, B, C, R any] func(A, B, C) R

func (f Func3[A, B, C, R]) Apply(a A, b B, c C) R {
	return f(a, b, c)
}

func (f Func3[A, B, C, R]) Arity() int {
	return 3
}

// Partial binds the first input.
func (f Func3[A, B, C, R]) Partial(a A) Func2[B, C, R] {
	lambda.RequireNonNil(f, "f")
	return func(b B, c C) R {
		return f(a, b, c)
	}
}

// Partial2 binds the first two inputs.
func (f Func3[A, B, C, R]) Partial2(a A, b B) Func1[C, R] {
	lambda.RequireNonNil(f, "f")
	return func(c C) R {
		return f(a, b, c)
	}
}

// Partial3 binds all inputs.
func (f Func3[A, B, C, R]) Partial3(a A, b B, c C) Func0[R] {
	lambda.RequireNonNil(f, "f")
	return func() R {
		return f(a, b, c)
	}
}

func (f Func3[A, B, C, R]) PartialLazy(a Func0[A]) Func2[B, C, R] {
	lambda.RequireNonNil(f, "f")
	lambda.RequireNonNil(a, "a")
	return func(b B, c C) R {
		return f(a(), b, c)
	}
}

func (f Func3[A, B, C, R]) Boxed() func(A, B, C) R {
	return f
}

// Of0 converts a plain function. A nil function gives a nil Func0.
func Of0[R any](f func() R) Func0[R] {
	return f
}

func Of1[A, R any](f func(A) R) Func1[A, R] {
	return f
}

func Of2[A, B, R any](f func(A, B) R) Func2[A, B, R] {
	return f
}

func Of3[A, B, C, R any](f func(A, B, C) R) Func3[A, B, C, R] {
	return f
}

// Compose1 returns a function that transforms its input with before and
// passes the result to f. Compose1(f, g)(x) == f(g(x)).
func Compose1[A, B, R any](f Func1[B, R], before Func1[A, B]) Func1[A, R] {
	lambda.RequireNonNil(f, "f")
	lambda.RequireNonNil(before, "before")
	return func(a A) R {
		return f(before(a))
	}
}

// Compose2 runs before1 and then before2, left to right, before f. A panic in
// a pre-transform stops the evaluation.
func Compose2[A1, A2, B1, B2, R any](f Func2[B1, B2, R],
	before1 Func1[A1, B1], before2 Func1[A2, B2]) Func2[A1, A2, R] {
	lambda.RequireNonNil(f, "f")
	lambda.RequireNonNil(before1, "before1")
	lambda.RequireNonNil(before2, "before2")
	return func(a1 A1, a2 A2) R {
		b1 := before1(a1)
		b2 := before2(a2)
		return f(b1, b2)
	}
}

func Compose3[A1, A2, A3, B1, B2, B3, R any](f Func3[B1, B2, B3, R],
	before1 Func1[A1, B1], before2 Func1[A2, B2], before3 Func1[A3, B3]) Func3[A1, A2, A3, R] {
	lambda.RequireNonNil(f, "f")
	lambda.RequireNonNil(before1, "before1")
	lambda.RequireNonNil(before2, "before2")
	lambda.RequireNonNil(before3, "before3")
	return func(a1 A1, a2 A2, a3 A3) R {
		b1 := before1(a1)
		b2 := before2(a2)
		b3 := before3(a3)
		return f(b1, b2, b3)
	}
}

// AndThen0 applies after to the result of f.
func AndThen0[R, V any](f Func0[R], after Func1[R, V]) Func0[V] {
	lambda.RequireNonNil(f, "f")
	lambda.RequireNonNil(after, "after")
	return func() V {
		return after(f())
	}
}

// AndThen1 applies after to the result of f. AndThen1(f, g)(x) == g(f(x)).
func AndThen1[A, R, V any](f Func1[A, R], after Func1[R, V]) Func1[A, V] {
	lambda.RequireNonNil(f, "f")
	lambda.RequireNonNil(after, "after")
	return func(a A) V {
		return after(f(a))
	}
}

func AndThen2[A, B, R, V any](f Func2[A, B, R], after Func1[R, V]) Func2[A, B, V] {
	lambda.RequireNonNil(f, "f")
	lambda.RequireNonNil(after, "after")
	return func(a A, b B) V {
		return after(f(a, b))
	}
}

func AndThen3[A, B, C, R, V any](f Func3[A, B, C, R], after Func1[R, V]) Func3[A, B, C, V] {
	lambda.RequireNonNil(f, "f")
	lambda.RequireNonNil(after, "after")
	return func(a A, b B, c C) V {
		return after(f(a, b, c))
	}
}

// AndConsume1 passes the result of f to a consumer.
func AndConsume1[A, R any](f Func1[A, R], after Consumer1[R]) Consumer1[A] {
	lambda.RequireNonNil(f, "f")
	lambda.RequireNonNil(after, "after")
	return func(a A) {
		after(f(a))
	}
}

func AndConsume2[A, B, R any](f Func2[A, B, R], after Consumer1[R]) Consumer2[A, B] {
	lambda.RequireNonNil(f, "f")
	lambda.RequireNonNil(after, "after")
	return func(a A, b B) {
		after(f(a, b))
	}
}

func AndConsume3[A, B, C, R any](f Func3[A, B, C, R], after Consumer1[R]) Consumer3[A, B, C] {
	lambda.RequireNonNil(f, "f")
	lambda.RequireNonNil(after, "after")
	return func(a A, b B, c C) {
		after(f(a, b, c))
	}
}

// Constant0 is a thunk that always returns v.
func Constant0[R any](v R) Func0[R] {
	return func() R {
		return v
	}
}

// Constant1 ignores its input and returns v.
func Constant1[A, R any](v R) Func1[A, R] {
	return func(A) R {
		return v
	}
}

func Constant2[A, B, R any](v R) Func2[A, B, R] {
	return func(A, B) R {
		return v
	}
}

func Constant3[A, B, C, R any](v R) Func3[A, B, C, R] {
	return func(A, B, C) R {
		return v
	}
}

// Identity returns its input.
func Identity[A any]() Func1[A, A] {
	return func(a A) A {
		return a
	}
}
