package throwing

import (
	"github.com/ib-77/lambda3/pkg/lambda"
	"github.com/ib-77/lambda3/pkg/lambda/adapt"
	"github.com/ib-77/lambda3/pkg/lambda/fn"
)

// Consumer1 is a side-effect-only callable whose call can fail with a
// declared error.
type Consumer1[A any] func(A) error

func (c Consumer1[A]) TryAccept(a A) error {
	return c(a)
}

// Accept rethrows a declared failure as a *lambda.UncheckedError panic.
func (c Consumer1[A]) Accept(a A) {
	adapt.DoRethrow(func() (lambda.Unit, error) {
		return lambda.Unit{}, c(a)
	})
}

func (c Consumer1[A]) Arity() int {
	return 1
}

func (c Consumer1[A]) Must(opts ...adapt.Option) fn.Consumer1[A] {
	lambda.RequireNonNil(c, "c")
	return func(a A) {
		adapt.DoRethrow(func() (lambda.Unit, error) {
			return lambda.Unit{}, c(a)
		}, opts...)
	}
}

func (c Consumer1[A]) OrElse(other Consumer1[A], opts ...adapt.Option) Consumer1[A] {
	lambda.RequireNonNil(c, "c")
	lambda.RequireNonNil(other, "other")
	return func(a A) error {
		_, err := adapt.DoFallback(func() (lambda.Unit, error) {
			return lambda.Unit{}, c(a)
		}, func() (lambda.Unit, error) {
			return lambda.Unit{}, other(a)
		}, opts...)
		return err
	}
}

func (c Consumer1[A]) Escalate(factory adapt.ErrorFactory, opts ...adapt.Option) Consumer1[A] {
	lambda.RequireNonNil(c, "c")
	adapt.CheckFactory(factory)
	return func(a A) error {
		_, err := adapt.DoEscalate(func() (lambda.Unit, error) {
			return lambda.Unit{}, c(a)
		}, factory, opts...)
		return err
	}
}

func (c Consumer1[A]) IgnoreChecked(opts ...adapt.Option) fn.Consumer1[A] {
	lambda.RequireNonNil(c, "c")
	return func(a A) {
		adapt.DoIgnoreChecked(func() (lambda.Unit, error) {
			return lambda.Unit{}, c(a)
		}, opts...)
	}
}

func (c Consumer1[A]) IgnoreAll(opts ...adapt.Option) fn.Consumer1[A] {
	lambda.RequireNonNil(c, "c")
	return func(a A) {
		adapt.DoIgnoreAll(func() (lambda.Unit, error) {
			return lambda.Unit{}, c(a)
		}, opts...)
	}
}

type Consumer2[A, B any] func(A, B) error

func (c Consumer2[A, B]) TryAccept(a A, b B) error {
	return c(a, b)
}

func (c Consumer2[A, B]) Accept(a A, b B) {
	adapt.DoRethrow(func() (lambda.Unit, error) {
		return lambda.Unit{}, c(a, b)
	})
}

func (c Consumer2[A, B]) Arity() int {
	return 2
}

func (c Consumer2[A, B]) Must(opts ...adapt.Option) fn.Consumer2[A, B] {
	lambda.RequireNonNil(c, "c")
	return func(a A, b B) {
		adapt.DoRethrow(func() (lambda.Unit, error) {
			return lambda.Unit{}, c(a, b)
		}, opts...)
	}
}

func (c Consumer2[A, B]) OrElse(other Consumer2[A, B], opts ...adapt.Option) Consumer2[A, B] {
	lambda.RequireNonNil(c, "c")
	lambda.RequireNonNil(other, "other")
	return func(a A, b B) error {
		_, err := adapt.DoFallback(func() (lambda.Unit, error) {
			return lambda.Unit{}, c(a, b)
		}, func() (lambda.Unit, error) {
			return lambda.Unit{}, other(a, b)
		}, opts...)
		return err
	}
}

func (c Consumer2[A, B]) Escalate(factory adapt.ErrorFactory, opts ...adapt.Option) Consumer2[A, B] {
	lambda.RequireNonNil(c, "c")
	adapt.CheckFactory(factory)
	return func(a A, b B) error {
		_, err := adapt.DoEscalate(func() (lambda.Unit, error) {
			return lambda.Unit{}, c(a, b)
		}, factory, opts...)
		return err
	}
}

func (c Consumer2[A, B]) IgnoreChecked(opts ...adapt.Option) fn.Consumer2[A, B] {
	lambda.RequireNonNil(c, "c")
	return func(a A, b B) {
		adapt.DoIgnoreChecked(func() (lambda.Unit, error) {
			return lambda.Unit{}, c(a, b)
		}, opts...)
	}
}

func (c Consumer2[A, B]) IgnoreAll(opts ...adapt.Option) fn.Consumer2[A, B] {
	lambda.RequireNonNil(c, "c")
	return func(a A, b B) {
		adapt.DoIgnoreAll(func() (lambda.Unit, error) {
			return lambda.Unit{}, c(a, b)
		}, opts...)
	}
}

type Consumer3[A, B, C any] func(A, B, C) error

func (c Consumer3[A, B, C]) TryAccept(a A, b B, cc C) error {
	return c(a, b, cc)
}

func (c Consumer3[A, B, C]) Accept(a A, b B, cc C) {
	adapt.DoRethrow(func() (lambda.Unit, error) {
		return lambda.Unit{}, c(a, b, cc)
	})
}

func (c Consumer3[A, B, C]) Arity() int {
	return 3
}

func (c Consumer3[A, B, C]) Must(opts ...adapt.Option) fn.Consumer3[A, B, C] {
	lambda.RequireNonNil(c, "c")
	return func(a A, b B, cc C) {
		adapt.DoRethrow(func() (lambda.Unit, error) {
			return lambda.Unit{}, c(a, b, cc)
		}, opts...)
	}
}

func (c Consumer3[A, B, C]) OrElse(other Consumer3[A, B, C], opts ...adapt.Option) Consumer3[A, B, C] {
	lambda.RequireNonNil(c, "c")
	lambda.RequireNonNil(other, "other")
	return func(a A, b B, cc C) error {
		_, err := adapt.DoFallback(func() (lambda.Unit, error) {
			return lambda.Unit{}, c(a, b, cc)
		}, func() (lambda.Unit, error) {
			return lambda.Unit{}, other(a, b, cc)
		}, opts...)
		return err
	}
}

func (c Consumer3[A, B, C]) Escalate(factory adapt.ErrorFactory, opts ...adapt.Option) Consumer3[A, B, C] {
	lambda.RequireNonNil(c, "c")
	adapt.CheckFactory(factory)
	return func(a A, b B, cc C) error {
		_, err := adapt.DoEscalate(func() (lambda.Unit, error) {
			return lambda.Unit{}, c(a, b, cc)
		}, factory, opts...)
		return err
	}
}

func (c Consumer3[A, B, C]) IgnoreChecked(opts ...adapt.Option) fn.Consumer3[A, B, C] {
	lambda.RequireNonNil(c, "c")
	return func(a A, b B, cc C) {
		adapt.DoIgnoreChecked(func() (lambda.Unit, error) {
			return lambda.Unit{}, c(a, b, cc)
		}, opts...)
	}
}

func (c Consumer3[A, B, C]) IgnoreAll(opts ...adapt.Option) fn.Consumer3[A, B, C] {
	lambda.RequireNonNil(c, "c")
	return func(a A, b B, cc C) {
		adapt.DoIgnoreAll(func() (lambda.Unit, error) {
			return lambda.Unit{}, c(a, b, cc)
		}, opts...)
	}
}
