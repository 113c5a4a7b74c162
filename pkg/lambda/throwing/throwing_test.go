package throwing

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/lambda3/pkg/lambda"
	"github.com/ib-77/lambda3/pkg/lambda/adapt"
)

var (
	errParse  = errors.New("parse failed")
	errDomain = errors.New("domain failure")
)

func atoi(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errParse
	}
	return n, nil
}

func recoverUnchecked(t *testing.T, f func()) *lambda.UncheckedError {
	t.Helper()
	err := lambda.Catch0(f)
	require.Error(t, err)

	var u *lambda.UncheckedError
	require.ErrorAs(t, err, &u, spew.Sdump(err))
	return u
}

func TestApply_RethrowsDeclaredFailureUnwrapped(t *testing.T) {
	t.Parallel()

	f := Of1(atoi)
	assert.Equal(t, 12, f.Apply("12"))

	u := recoverUnchecked(t, func() { f.Apply("x") })
	assert.Same(t, errParse, errors.Unwrap(u))
	assert.ErrorIs(t, u, errParse)
}

func TestApply_UncheckedFailurePropagatesAsIs(t *testing.T) {
	t.Parallel()

	original := lambda.Unchecked(errDomain)

	returned := Func0[int](func() (int, error) { return 0, original })
	assert.Same(t, original, recoverUnchecked(t, func() { returned.Apply() }))

	raised := Func0[int](func() (int, error) { panic(original) })
	assert.Same(t, original, recoverUnchecked(t, func() { raised.Apply() }))
	assert.Same(t, original, recoverUnchecked(t, func() { raised.Must()() }))
}

func TestPrimaryOperations_HaveNoErrorResult(t *testing.T) {
	t.Parallel()

	checks := []struct {
		name   string
		method reflect.Value
		outs   int
	}{
		{"Func0.Apply", reflect.ValueOf(Func0[int](nil).Apply), 1},
		{"Func2.Apply", reflect.ValueOf(Func2[int, int, int](nil).Apply), 1},
		{"Predicate3.Test", reflect.ValueOf(Predicate3[int, int, int](nil).Test), 1},
		{"Consumer1.Accept", reflect.ValueOf(Consumer1[int](nil).Accept), 0},
		{"Func1.TryApply", reflect.ValueOf(Func1[int, int](nil).TryApply), 2},
	}

	for _, c := range checks {
		assert.Equal(t, c.outs, c.method.Type().NumOut(), c.name)
	}
}

func TestArity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Func0[int](nil).Arity())
	assert.Equal(t, 1, Func1[int, int](nil).Arity())
	assert.Equal(t, 2, Func2[int, int, int](nil).Arity())
	assert.Equal(t, 3, Func3[int, int, int, int](nil).Arity())
	assert.Equal(t, 1, Predicate1[int](nil).Arity())
	assert.Equal(t, 2, Predicate2[int, int](nil).Arity())
	assert.Equal(t, 3, Predicate3[int, int, int](nil).Arity())
	assert.Equal(t, 1, Consumer1[int](nil).Arity())
	assert.Equal(t, 2, Consumer2[int, int](nil).Arity())
	assert.Equal(t, 3, Consumer3[int, int, int](nil).Arity())
}

func TestNest(t *testing.T) {
	t.Parallel()

	f := Of1(atoi)
	assert.Equal(t, 7, f.Nest("7").Result())
	assert.ErrorIs(t, f.Nest("seven").Err(), errParse)

	p := Predicate2[int, int](func(a, b int) (bool, error) { return a == b, nil })
	assert.True(t, p.Nest(1, 1).Result())
}

func TestOrElse_FallsBackToOther(t *testing.T) {
	t.Parallel()

	otherCalls := 0
	other := Func1[string, int](func(s string) (int, error) {
		otherCalls++
		return len(s), nil
	})
	g := Of1(atoi).OrElse(other)

	v, err := g.TryApply("5")
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Equal(t, 0, otherCalls)

	v, err = g.TryApply("abc")
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, 1, otherCalls)

	failing := Of1(atoi).OrElse(func(string) (int, error) { return 0, errDomain })
	_, err = failing.TryApply("abc")
	assert.ErrorIs(t, err, errDomain)
	assert.NotErrorIs(t, err, errParse)
}

func TestOrReturn_SubstitutesValue(t *testing.T) {
	t.Parallel()

	f := Of1(atoi).OrReturn(-1)
	assert.Equal(t, 4, f.Apply("4"))
	assert.Equal(t, -1, f.Apply("four"))

	zero := Func0[string](func() (string, error) { return "", errDomain }).OrReturn("default")
	assert.Equal(t, "default", zero.Apply())
}

func TestPredicate_OrReturnTrueAndFalse(t *testing.T) {
	t.Parallel()

	failing := Predicate1[int](func(int) (bool, error) { return false, errDomain })
	assert.True(t, failing.OrReturnTrue().Test(1))
	assert.False(t, failing.OrReturnFalse().Test(1))

	passes := Predicate1[int](func(v int) (bool, error) { return v > 0, nil })
	assert.True(t, passes.OrReturnFalse().Test(1))
	assert.False(t, passes.OrReturnTrue().Test(-1))

	pair := Predicate2[string, string](func(a, b string) (bool, error) {
		if a == "" || b == "" {
			return false, errDomain
		}
		return a == b, nil
	})
	assert.True(t, pair.OrReturnTrue().Test("", "x"))
	assert.False(t, pair.OrReturnTrue().Test("x", "y"))

	triple := Predicate3[int, int, int](func(int, int, int) (bool, error) { return false, errDomain })
	assert.True(t, triple.OrReturnTrue().Test(1, 2, 3))
	assert.False(t, triple.OrReturnFalse().Test(1, 2, 3))
}

func TestEscalate(t *testing.T) {
	t.Parallel()

	errTarget := errors.New("service unavailable")
	f := Of1(atoi).Escalate(func() error { return errTarget })

	v, err := f.TryApply("8")
	require.NoError(t, err)
	assert.Equal(t, 8, v)

	_, err = f.TryApply("eight")
	var escalated *adapt.EscalatedError
	require.ErrorAs(t, err, &escalated)
	assert.ErrorIs(t, err, errTarget)
	assert.ErrorIs(t, err, errParse)
}

func TestEscalate_ConfigurationErrors(t *testing.T) {
	t.Parallel()

	assert.PanicsWithError(t, "lambda: configuration error: nil escalation factory", func() {
		Of1(atoi).Escalate(nil)
	})

	f := Of1(atoi).Escalate(func() error { return nil })
	_, err := f.TryApply("bad")

	var cfg *lambda.ConfigurationError
	require.ErrorAs(t, err, &cfg)
	assert.Same(t, errParse, cfg.Original)
	assert.NotErrorIs(t, err, errParse)

	panicking := Of1(atoi).Escalate(func() error { panic("cannot construct target") })
	require.NotPanics(t, func() { _, err = panicking.TryApply("bad") })

	var panicked *lambda.ConfigurationError
	require.ErrorAs(t, err, &panicked)
	assert.Same(t, errParse, panicked.Original)
	assert.Contains(t, panicked.Reason, "cannot construct target")
	assert.NotErrorIs(t, err, errParse)
}

func TestIgnoreChecked(t *testing.T) {
	t.Parallel()

	f := Of1(atoi).IgnoreChecked()
	assert.Equal(t, 3, f.Apply("3"))
	assert.Equal(t, 0, f.Apply("three"))

	panicking := Func0[int](func() (int, error) { panic("unchecked") })
	assert.PanicsWithValue(t, "unchecked", func() { panicking.IgnoreChecked()() })

	original := lambda.Unchecked(errDomain)
	returnsUnchecked := Func0[int](func() (int, error) { return 0, original })
	assert.Same(t, original, recoverUnchecked(t, func() { returnsUnchecked.IgnoreChecked()() }))

	wrapped := Func0[int](func() (int, error) { return 0, fmt.Errorf("loading: %w", original) })
	assert.Same(t, original, recoverUnchecked(t, func() { wrapped.IgnoreChecked()() }))

	var seen []string
	c := Consumer2[string, int](func(s string, n int) error {
		if n < 0 {
			return errDomain
		}
		seen = append(seen, s)
		return nil
	})
	c.IgnoreChecked().Accept("a", 1)
	c.IgnoreChecked().Accept("b", -1)
	assert.Equal(t, []string{"a"}, seen)
}

func TestIgnoreAll(t *testing.T) {
	t.Parallel()

	panicking := Func2[int, int, int](func(a, b int) (int, error) { return a / b, nil })
	safe := panicking.IgnoreAll()
	assert.Equal(t, 2, safe.Apply(4, 2))
	assert.NotPanics(t, func() { assert.Equal(t, 0, safe.Apply(1, 0)) })

	declared := Predicate1[string](func(string) (bool, error) { return true, errDomain })
	assert.False(t, declared.IgnoreAll().Test("x"))

	consumer := Consumer3[int, int, int](func(int, int, int) error { panic("boom") })
	assert.NotPanics(t, func() { consumer.IgnoreAll().Accept(1, 2, 3) })
}

func TestConsumer_Policies(t *testing.T) {
	t.Parallel()

	var log []string
	failing := Consumer1[string](func(string) error { return errDomain })
	logging := Consumer1[string](func(s string) error { log = append(log, s); return nil })

	require.NoError(t, failing.OrElse(logging).TryAccept("fallback"))
	assert.Equal(t, []string{"fallback"}, log)

	u := recoverUnchecked(t, func() { failing.Must()("x") })
	assert.ErrorIs(t, u, errDomain)
	assert.ErrorIs(t, recoverUnchecked(t, func() { failing.Accept("x") }), errDomain)

	errTarget := errors.New("target")
	err := Consumer3[int, int, int](func(int, int, int) error { return errDomain }).
		Escalate(func() error { return errTarget }).
		TryAccept(1, 2, 3)
	assert.ErrorIs(t, err, errTarget)
	assert.ErrorIs(t, err, errDomain)
}

func TestPolicies_NotifyObserver(t *testing.T) {
	t.Parallel()

	var events []adapt.Event
	observer := adapt.WithObserver(adapt.ObserverFunc(func(e adapt.Event) {
		events = append(events, e)
	}))

	f := Of1(atoi)
	f.OrReturn(0, observer).Apply("a")
	f.IgnoreChecked(observer).Apply("b")
	f.IgnoreAll(observer).Apply("c")
	_, _ = f.OrElse(Lift1[string, int](func(string) int { return 0 }), observer).TryApply("d")
	_, _ = f.Escalate(func() error { return errDomain }, observer).TryApply("e")
	recoverUnchecked(t, func() { f.Must(observer).Apply("f") })
	f.OrReturn(0, observer).Apply("1")

	require.Len(t, events, 6, spew.Sdump(events))
	policies := make([]adapt.Policy, 0, len(events))
	for _, e := range events {
		assert.ErrorIs(t, e.Err, errParse)
		policies = append(policies, e.Policy)
	}
	assert.Equal(t, []adapt.Policy{
		adapt.FallbackValue,
		adapt.IgnoreChecked,
		adapt.IgnoreAll,
		adapt.FallbackOther,
		adapt.Escalate,
		adapt.Rethrow,
	}, policies)
}

func TestBuilders_NilGuard(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Func1[int, int](nil).OrReturn(0) })
	assert.Panics(t, func() { Of1(atoi).OrElse(nil) })
	assert.Panics(t, func() { Predicate1[int](nil).OrReturnTrue() })
	assert.Panics(t, func() { Consumer2[int, int](nil).IgnoreAll() })
	assert.Nil(t, Of2[int, int, int](nil))
}
