package fn

import "github.com/ib-77/lambda3/pkg/lambda"

// Applier1 is satisfied by every value-producing callable of arity one,
// including the throwing variants.
type Applier1[A, R any] interface {
	lambda.Callable
	Apply(a A) R
}

type Applier2[A, B, R any] interface {
	lambda.Callable
	Apply(a A, b B) R
}

type Applier3[A, B, C, R any] interface {
	lambda.Callable
	Apply(a A, b B, c C) R
}

type Tester1[A any] interface {
	lambda.Callable
	Test(a A) bool
}

type Tester2[A, B any] interface {
	lambda.Callable
	Test(a A, b B) bool
}

type Tester3[A, B, C any] interface {
	lambda.Callable
	Test(a A, b B, c C) bool
}

type Accepter1[A any] interface {
	lambda.Callable
	Accept(a A)
}

type Accepter2[A, B any] interface {
	lambda.Callable
	Accept(a A, b B)
}

type Accepter3[A, B, C any] interface {
	lambda.Callable
	Accept(a A, b B, c C)
}

var (
	_ Applier1[int, int]       = Func1[int, int](nil)
	_ Tester2[int, int]        = Predicate2[int, int](nil)
	_ Accepter3[int, int, int] = Consumer3[int, int, int](nil)
)
