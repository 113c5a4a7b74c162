package throwing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/lambda3/pkg/lambda/fn"
)

func TestCompose1_StopsOnBeforeFailure(t *testing.T) {
	t.Parallel()

	called := false
	double := Func1[int, int](func(n int) (int, error) { called = true; return n * 2, nil })
	f := Compose1(double, Of1(atoi))

	v, err := f.TryApply("21")
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	called = false
	_, err = f.TryApply("x")
	assert.ErrorIs(t, err, errParse)
	assert.False(t, called)
}

func TestAndThen_SkipsAfterOnFailure(t *testing.T) {
	t.Parallel()

	called := 0
	after := Lift1(fn.Func1[int, string](func(n int) string { called++; return strings.Repeat("*", n) }))

	stars := AndThen1(Of1(atoi), after)
	v, err := stars.TryApply("3")
	require.NoError(t, err)
	assert.Equal(t, "***", v)

	_, err = stars.TryApply("three")
	assert.ErrorIs(t, err, errParse)
	assert.Equal(t, 1, called)

	sum := Of2(func(a, b int) (int, error) { return a + b, nil })
	v, err = AndThen2(sum, after).TryApply(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "**", v)

	fails := Of3(func(int, int, int) (int, error) { return 0, errDomain })
	_, err = AndThen3(fails, after).TryApply(1, 2, 3)
	assert.ErrorIs(t, err, errDomain)
	assert.Equal(t, 2, called)
}

func TestCompose2And3_StopAtFirstFailure(t *testing.T) {
	t.Parallel()

	var order []string
	step := func(tag string) Func1[string, int] {
		return func(s string) (int, error) {
			order = append(order, tag)
			return atoi(s)
		}
	}
	add := Func2[int, int, int](func(a, b int) (int, error) { order = append(order, "f"); return a + b, nil })

	v, err := Compose2(add, step("b1"), step("b2")).TryApply("1", "2")
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, []string{"b1", "b2", "f"}, order)

	order = nil
	_, err = Compose2(add, step("b1"), step("b2")).TryApply("x", "2")
	assert.ErrorIs(t, err, errParse)
	assert.Equal(t, []string{"b1"}, order)

	sum3 := Func3[int, int, int, int](func(a, b, c int) (int, error) { order = append(order, "f"); return a + b + c, nil })
	order = nil
	v, err = Compose3(sum3, step("b1"), step("b2"), step("b3")).TryApply("1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, 6, v)

	order = nil
	_, err = Compose3(sum3, step("b1"), step("b2"), step("b3")).TryApply("1", "y", "3")
	assert.ErrorIs(t, err, errParse)
	assert.Equal(t, []string{"b1", "b2"}, order)
}

func TestAndThen0(t *testing.T) {
	t.Parallel()

	length := Lift1(fn.Func1[string, int](func(s string) int { return len(s) }))

	v, err := AndThen0(Func0[string](func() (string, error) { return "four", nil }), length).TryApply()
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	called := false
	after := Func1[string, int](func(string) (int, error) { called = true; return 0, nil })
	_, err = AndThen0(Func0[string](func() (string, error) { return "", errDomain }), after).TryApply()
	assert.ErrorIs(t, err, errDomain)
	assert.False(t, called)
}
