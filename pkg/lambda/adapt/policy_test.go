package adapt

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/lambda3/pkg/lambda"
)

var errCall = errors.New("call failed")

func failing() (int, error) { return 0, errCall }

func succeeding() (int, error) { return 1, nil }

type recorder struct {
	events []Event
}

func (r *recorder) Observe(e Event) {
	r.events = append(r.events, e)
}

func TestPolicy_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "rethrow", Rethrow.String())
	assert.Equal(t, "fallback_other", FallbackOther.String())
	assert.Equal(t, "fallback_value", FallbackValue.String())
	assert.Equal(t, "escalate", Escalate.String())
	assert.Equal(t, "ignore_checked", IgnoreChecked.String())
	assert.Equal(t, "ignore_all", IgnoreAll.String())
	assert.Equal(t, "policy(42)", Policy(42).String())
}

func TestNewOptions_SkipsNil(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	o := NewOptions(nil, WithObserver(rec), nil)
	assert.Same(t, rec, o.Observer)
	assert.Nil(t, NewOptions().Observer)
}

func TestDoRethrow(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, DoRethrow(succeeding))

	rec := &recorder{}
	_, err := lambda.Catch(func() int { return DoRethrow(failing, WithObserver(rec)) })

	var u *lambda.UncheckedError
	require.ErrorAs(t, err, &u)
	assert.Same(t, errCall, u.Cause())
	require.Len(t, rec.events, 1)
	assert.Equal(t, Rethrow, rec.events[0].Policy)
}

func TestDoFallback(t *testing.T) {
	t.Parallel()

	v, err := DoFallback(failing, succeeding)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	otherErr := errors.New("other failed")
	_, err = DoFallback(failing, func() (int, error) { return 0, otherErr })
	assert.Same(t, otherErr, err)

	called := false
	v, err = DoFallback(succeeding, func() (int, error) { called = true; return 2, nil })
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.False(t, called)
}

func TestDoOrReturn(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, DoOrReturn(failing, 7))
	assert.Equal(t, 1, DoOrReturn(succeeding, 7))
}

func TestDoEscalate(t *testing.T) {
	t.Parallel()

	target := errors.New("target")
	_, err := DoEscalate(failing, func() error { return target })

	var escalated *EscalatedError
	require.ErrorAs(t, err, &escalated)
	assert.Same(t, target, escalated.Target)
	assert.Same(t, errCall, escalated.Cause)
	assert.Equal(t, "target: call failed", err.Error())
	assert.Equal(t, []error{target, errCall}, lambda.GetErrors(err))

	factoryCalled := false
	_, err = DoEscalate(succeeding, func() error { factoryCalled = true; return target })
	require.NoError(t, err)
	assert.False(t, factoryCalled)
}

func TestDoEscalate_FactoryReturningNil(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	_, err := DoEscalate(failing, func() error { return nil }, WithObserver(rec))

	var cfg *lambda.ConfigurationError
	require.ErrorAs(t, err, &cfg)
	assert.Equal(t, "escalation factory returned nil", cfg.Reason)
	assert.NotErrorIs(t, err, errCall)
	assert.Empty(t, rec.events)
}

func TestDoEscalate_FactoryPanicking(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	var err error
	require.NotPanics(t, func() {
		_, err = DoEscalate(failing, func() error { panic("cannot construct target") }, WithObserver(rec))
	})

	var cfg *lambda.ConfigurationError
	require.ErrorAs(t, err, &cfg)
	assert.Same(t, errCall, cfg.Original)
	assert.Equal(t, "escalation factory panicked: cannot construct target", cfg.Reason)
	assert.Empty(t, rec.events)
}

func TestCheckFactory(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { CheckFactory(func() error { return errCall }) })

	defer func() {
		_, ok := recover().(*lambda.ConfigurationError)
		assert.True(t, ok)
	}()
	CheckFactory(nil)
}

func TestDoIgnoreChecked(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, DoIgnoreChecked(failing))
	assert.Equal(t, 1, DoIgnoreChecked(succeeding))
	assert.PanicsWithValue(t, "raised", func() {
		DoIgnoreChecked(func() (int, error) { panic("raised") })
	})

	u := lambda.Unchecked(errCall)
	wrapped := fmt.Errorf("ctx: %w", u)
	assert.PanicsWithValue(t, u, func() {
		DoIgnoreChecked(func() (int, error) { return 0, wrapped })
	})
}

func TestDoIgnoreAll_RecordsRecoveredValue(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	before := time.Now().UTC()

	v := DoIgnoreAll(func() (int, error) { panic("raised") }, WithObserver(rec))
	assert.Equal(t, 0, v)
	assert.Equal(t, 0, DoIgnoreAll(failing, WithObserver(rec)))
	assert.Equal(t, 1, DoIgnoreAll(succeeding, WithObserver(rec)))

	require.Len(t, rec.events, 2)
	panicked, declared := rec.events[0], rec.events[1]

	assert.Equal(t, "raised", panicked.Recovered)
	assert.NoError(t, panicked.Err)
	assert.Same(t, errCall, declared.Err)
	assert.Nil(t, declared.Recovered)

	for _, e := range rec.events {
		assert.Equal(t, IgnoreAll, e.Policy)
		assert.NotEqual(t, uuid.Nil, e.ID)
		assert.False(t, e.At.Before(before))
		assert.Equal(t, time.UTC, e.At.Location())
	}
	assert.NotEqual(t, panicked.ID, declared.ID)
}
