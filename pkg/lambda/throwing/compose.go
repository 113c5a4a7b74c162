package throwing

import (
	"github.com/ib-77/lambda3/pkg/lambda"
	"github.com/ib-77/lambda3/pkg/lambda/fn"
)

// Lift1 turns a function that cannot fail into a Func1.
func Lift1[A, R any](f fn.Func1[A, R]) Func1[A, R] {
	lambda.RequireNonNil(f, "f")
	return func(a A) (R, error) {
		return f(a), nil
	}
}

// Of1 converts a plain function. A nil function gives a nil Func1.
func Of1[A, R any](f func(A) (R, error)) Func1[A, R] {
	return f
}

func Of2[A, B, R any](f func(A, B) (R, error)) Func2[A, B, R] {
	return f
}

func Of3[A, B, C, R any](f func(A, B, C) (R, error)) Func3[A, B, C, R] {
	return f
}

// Compose1 transforms the input with before and passes it to f. A failure of
// before is returned without calling f.
func Compose1[A, B, R any](f Func1[B, R], before Func1[A, B]) Func1[A, R] {
	lambda.RequireNonNil(f, "f")
	lambda.RequireNonNil(before, "before")
	return func(a A) (R, error) {
		b, err := before(a)
		if err != nil {
			var zero R
			return zero, err
		}
		return f(b)
	}
}

// Compose2 runs before1 and then before2 ahead of f. The first failure is
// returned and nothing after it is called.
func Compose2[A1, A2, B1, B2, R any](f Func2[B1, B2, R],
	before1 Func1[A1, B1], before2 Func1[A2, B2]) Func2[A1, A2, R] {
	lambda.RequireNonNil(f, "f")
	lambda.RequireNonNil(before1, "before1")
	lambda.RequireNonNil(before2, "before2")
	return func(a1 A1, a2 A2) (R, error) {
		var zero R
		b1, err := before1(a1)
		if err != nil {
			return zero, err
		}
		b2, err := before2(a2)
		if err != nil {
			return zero, err
		}
		return f(b1, b2)
	}
}

func Compose3[A1, A2, A3, B1, B2, B3, R any](f Func3[B1, B2, B3, R],
	before1 Func1[A1, B1], before2 Func1[A2, B2], before3 Func1[A3, B3]) Func3[A1, A2, A3, R] {
	lambda.RequireNonNil(f, "f")
	lambda.RequireNonNil(before1, "before1")
	lambda.RequireNonNil(before2, "before2")
	lambda.RequireNonNil(before3, "before3")
	return func(a1 A1, a2 A2, a3 A3) (R, error) {
		var zero R
		b1, err := before1(a1)
		if err != nil {
			return zero, err
		}
		b2, err := before2(a2)
		if err != nil {
			return zero, err
		}
		b3, err := before3(a3)
		if err != nil {
			return zero, err
		}
		return f(b1, b2, b3)
	}
}

func AndThen0[R, V any](f Func0[R], after Func1[R, V]) Func0[V] {
	lambda.RequireNonNil(f, "f")
	lambda.RequireNonNil(after, "after")
	return func() (V, error) {
		r, err := f()
		if err != nil {
			var zero V
			return zero, err
		}
		return after(r)
	}
}

// AndThen1 passes the result of f to after. after is not called when f fails.
func AndThen1[A, R, V any](f Func1[A, R], after Func1[R, V]) Func1[A, V] {
	lambda.RequireNonNil(f, "f")
	lambda.RequireNonNil(after, "after")
	return func(a A) (V, error) {
		r, err := f(a)
		if err != nil {
			var zero V
			return zero, err
		}
		return after(r)
	}
}

func AndThen2[A, B, R, V any](f Func2[A, B, R], after Func1[R, V]) Func2[A, B, V] {
	lambda.RequireNonNil(f, "f")
	lambda.RequireNonNil(after, "after")
	return func(a A, b B) (V, error) {
		r, err := f(a, b)
		if err != nil {
			var zero V
			return zero, err
		}
		return after(r)
	}
}

func AndThen3[A, B, C, R, V any](f Func3[A, B, C, R], after Func1[R, V]) Func3[A, B, C, V] {
	lambda.RequireNonNil(f, "f")
	lambda.RequireNonNil(after, "after")
	return func(a A, b B, c C) (V, error) {
		r, err := f(a, b, c)
		if err != nil {
			var zero V
			return zero, err
		}
		return after(r)
	}
}

var (
	_ fn.Applier1[int, int]      = Func1[int, int](nil)
	_ fn.Applier2[int, int, int] = Func2[int, int, int](nil)
	_ fn.Tester1[int]            = Predicate1[int](nil)
	_ fn.Accepter2[int, int]     = Consumer2[int, int](nil)
)
