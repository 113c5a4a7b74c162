package fn

import "github.com/ib-77/lambda3/pkg/lambda"

// Consumer0 is a side-effect-only callable without inputs.
type Consumer0 func()

func (c Consumer0) Accept() {
	c()
}

func (c Consumer0) Arity() int {
	return 0
}

// AndThen runs c and then after. after is skipped if c panics.
func (c Consumer0) AndThen(after Consumer0) Consumer0 {
	lambda.RequireNonNil(c, "c")
	lambda.RequireNonNil(after, "after")
	return func() {
		c()
		after()
	}
}

func (c Consumer0) Boxed() func() {
	return c
}

// Consumer1 is a side-effect-only callable with one input.
type Consumer1[A any] func(A)

func (c Consumer1[A]) Accept(a A) {
	c(a)
}

func (c Consumer1[A]) Arity() int {
	return 1
}

func (c Consumer1[A]) AndThen(after Consumer1[A]) Consumer1[A] {
	lambda.RequireNonNil(c, "c")
	lambda.RequireNonNil(after, "after")
	return func(a A) {
		c(a)
		after(a)
	}
}

func (c Consumer1[A]) Partial(a A) Consumer0 {
	lambda.RequireNonNil(c, "c")
	return func() {
		c(a)
	}
}

func (c Consumer1[A]) PartialLazy(a Func0[A]) Consumer0 {
	lambda.RequireNonNil(c, "c")
	lambda.RequireNonNil(a, "a")
	return func() {
		c(a())
	}
}

func (c Consumer1[A]) Boxed() func(A) {
	return c
}

// Consumer2 is a side-effect-only callable with two inputs.
type Consumer2[A, B any] func(A, B)

func (c Consumer2[A, B]) Accept(a A, b B) {
	c(a, b)
}

func (c Consumer2[A, B]) Arity() int {
	return 2
}

func (c Consumer2[A, B]) AndThen(after Consumer2[A, B]) Consumer2[A, B] {
	lambda.RequireNonNil(c, "c")
	lambda.RequireNonNil(after, "after")
	return func(a A, b B) {
		c(a, b)
		after(a, b)
	}
}

func (c Consumer2[A, B]) Partial(a A) Consumer1[B] {
	lambda.RequireNonNil(c, "c")
	return func(b B) {
		c(a, b)
	}
}

func (c Consumer2[A, B]) Partial2(a A, b B) Consumer0 {
	lambda.RequireNonNil(c, "c")
	return func() {
		c(a, b)
	}
}

func (c Consumer2[A, B]) PartialLazy(a Func0[A]) Consumer1[B] {
	lambda.RequireNonNil(c, "c")
	lambda.RequireNonNil(a, "a")
	return func(b B) {
		c(a(), b)
	}
}

func (c Consumer2[A, B]) Boxed() func(A, B) {
	return c
}

// Consumer3 is a side-effect-only callable with three inputs.
type Consumer3[A, B, C any] func(A, B, C)

func (c Consumer3[A, B, C]) Accept(a A, b B, cc C) {
	c(a, b, cc)
}

func (c Consumer3[A, B, C]) Arity() int {
	return 3
}

func (c Consumer3[A, B, C]) AndThen(after Consumer3[A, B, C]) Consumer3[A, B, C] {
	lambda.RequireNonNil(c, "c")
	lambda.RequireNonNil(after, "after")
	return func(a A, b B, cc C) {
		c(a, b, cc)
		after(a, b, cc)
	}
}

func (c Consumer3[A, B, C]) Partial(a A) Consumer2[B, C] {
	lambda.RequireNonNil(c, "c")
	return func(b B, cc C) {
		c(a, b, cc)
	}
}

func (c Consumer3[A, B, C]) Partial2(a A, b B) Consumer1[C] {
	lambda.RequireNonNil(c, "c")
	return func(cc C) {
		c(a, b, cc)
	}
}

func (c Consumer3[A, B, C]) Partial3(a A, b B, cc C) Consumer0 {
	lambda.RequireNonNil(c, "c")
	return func() {
		c(a, b, cc)
	}
}

func (c Consumer3[A, B, C]) PartialLazy(a Func0[A]) Consumer2[B, C] {
	lambda.RequireNonNil(c, "c")
	lambda.RequireNonNil(a, "a")
	return func(b B, cc C) {
		c(a(), b, cc)
	}
}

func (c Consumer3[A, B, C]) Boxed() func(A, B, C) {
	return c
}

// OfConsumer1 converts a plain function. A nil function gives a nil consumer.
func OfConsumer1[A any](c func(A)) Consumer1[A] {
	return c
}

func OfConsumer2[A, B any](c func(A, B)) Consumer2[A, B] {
	return c
}

func OfConsumer3[A, B, C any](c func(A, B, C)) Consumer3[A, B, C] {
	return c
}

func ComposeConsumer1[A, B any](c Consumer1[B], before Func1[A, B]) Consumer1[A] {
	lambda.RequireNonNil(c, "c")
	lambda.RequireNonNil(before, "before")
	return func(a A) {
		c(before(a))
	}
}

func ComposeConsumer2[A1, A2, B1, B2 any](c Consumer2[B1, B2],
	before1 Func1[A1, B1], before2 Func1[A2, B2]) Consumer2[A1, A2] {
	lambda.RequireNonNil(c, "c")
	lambda.RequireNonNil(before1, "before1")
	lambda.RequireNonNil(before2, "before2")
	return func(a1 A1, a2 A2) {
		b1 := before1(a1)
		b2 := before2(a2)
		c(b1, b2)
	}
}

func ComposeConsumer3[A1, A2, A3, B1, B2, B3 any](c Consumer3[B1, B2, B3],
	before1 Func1[A1, B1], before2 Func1[A2, B2], before3 Func1[A3, B3]) Consumer3[A1, A2, A3] {
	lambda.RequireNonNil(c, "c")
	lambda.RequireNonNil(before1, "before1")
	lambda.RequireNonNil(before2, "before2")
	lambda.RequireNonNil(before3, "before3")
	return func(a1 A1, a2 A2, a3 A3) {
		b1 := before1(a1)
		b2 := before2(a2)
		b3 := before3(a3)
		c(b1, b2, b3)
	}
}

// Nop1 is a consumer that does nothing.
func Nop1[A any]() Consumer1[A] {
	return func(A) {}
}
