package lambda

import (
	"errors"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_States(t *testing.T) {
	t.Parallel()

	ok := Success(3)
	assert.True(t, ok.IsSuccess())
	assert.False(t, ok.IsFailure())
	assert.False(t, ok.IsEmpty())
	assert.Equal(t, 3, ok.Result())

	failed := Fail[int](errDeclared)
	assert.False(t, failed.IsSuccess())
	assert.True(t, failed.IsFailure())
	assert.ErrorIs(t, failed.Err(), errDeclared)

	var empty Result[int]
	assert.True(t, empty.IsEmpty())
	assert.False(t, empty.IsFailure())
}

func TestResult_TryFromAndGet(t *testing.T) {
	t.Parallel()

	v, err := TryFrom("x", nil).Get()
	require.NoError(t, err)
	assert.Equal(t, "x", v)

	r := TryFrom("ignored", errDeclared)
	assert.True(t, r.IsFailure())
	assert.Equal(t, "fallback", r.OrElse("fallback"))

	moved := FailFrom[string, int](r)
	assert.True(t, moved.IsFailure())
	assert.ErrorIs(t, moved.Err(), errDeclared)
}

func TestResult_MoInterop(t *testing.T) {
	t.Parallel()

	assert.Equal(t, mo.Ok(5), Success(5).ToMo())

	m := Fail[int](errDeclared).ToMo()
	assert.True(t, m.IsError())
	assert.ErrorIs(t, m.Error(), errDeclared)

	var empty Result[int]
	assert.ErrorIs(t, empty.ToMo().Error(), ErrEmptyResult)

	back := FromMo(mo.Err[int](errDeclared))
	assert.True(t, back.IsFailure())
	assert.Equal(t, 9, FromMo(mo.Ok(9)).Result())
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	other := errors.New("other")
	assert.Empty(t, GetErrors(nil))
	assert.Equal(t, []error{errDeclared}, GetErrors(errDeclared))
	assert.Equal(t, []error{errDeclared, other}, GetErrors(errors.Join(errDeclared, other)))
}
