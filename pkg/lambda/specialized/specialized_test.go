package specialized

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/lambda3/pkg/lambda/fn"
	"github.com/ib-77/lambda3/pkg/lambda/throwing"
)

func TestBiIntPredicate_IsEqual(t *testing.T) {
	t.Parallel()

	var p BiIntPredicate = fn.IsEqual2(3, 5)
	assert.Equal(t, 2, p.Arity())
	assert.True(t, p.Test(3, 5))
	assert.False(t, p.Test(3, 6))
	assert.False(t, p.Test(4, 5))
	assert.False(t, p.Test(4, 6))
}

func TestAliasesAreInterchangeable(t *testing.T) {
	t.Parallel()

	var square IntUnaryOperator = func(v int) int { return v * v }
	var widen IntToInt64Function = func(v int) int64 { return int64(v) << 32 }
	var format Int64Function[string] = func(v int64) string { return strconv.FormatInt(v, 16) }

	composed := fn.AndThen1(fn.AndThen1(square, widen), format)
	assert.Equal(t, "900000000", composed.Apply(3))

	var positive IntPredicate = func(v int) bool { return v > 0 }
	var fnForm fn.Predicate1[int] = positive.Negate()
	assert.True(t, fnForm.Test(-1))

	var acc []float64
	var sink Float64Consumer = func(v float64) { acc = append(acc, v) }
	var half ToFloat64Function[int] = func(v int) float64 { return float64(v) / 2 }
	fn.AndConsume1(half, sink).Accept(3)
	assert.Equal(t, []float64{1.5}, acc)
}

func TestThrowingAliases(t *testing.T) {
	t.Parallel()

	errNegative := errors.New("negative")
	var sqrtFloor ThrowingIntUnaryOperator = func(v int) (int, error) {
		if v < 0 {
			return 0, errNegative
		}
		r := 0
		for (r+1)*(r+1) <= v {
			r++
		}
		return r, nil
	}

	assert.Equal(t, 4, sqrtFloor.Apply(17))
	assert.Equal(t, -1, sqrtFloor.OrReturn(-1).Apply(-4))

	var nonZero ThrowingBytePredicate = func(b byte) (bool, error) {
		if b == 0xff {
			return false, errNegative
		}
		return b != 0, nil
	}
	assert.True(t, nonZero.OrReturnTrue().Test(0xff))
	assert.False(t, nonZero.OrReturnTrue().Test(0))

	var lift throwing.Func1[bool, string] = ThrowingBoolFunction[string](func(b bool) (string, error) {
		return strconv.FormatBool(b), nil
	})
	assert.Equal(t, "true", lift.Apply(true))
}
