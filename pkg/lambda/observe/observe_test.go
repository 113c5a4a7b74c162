package observe

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ib-77/lambda3/pkg/lambda/adapt"
	"github.com/ib-77/lambda3/pkg/lambda/throwing"
)

var errParse = errors.New("parse failed")

func parse(s string) (int, error) {
	if s == "" {
		return 0, errParse
	}
	return len(s), nil
}

func TestLogger_WritesWarnPerEvent(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)
	f := throwing.Of1(parse).OrReturn(-1, adapt.WithObserver(Logger(zap.New(core))))

	assert.Equal(t, 3, f.Apply("abc"))
	assert.Equal(t, -1, f.Apply(""))

	entries := logs.FilterMessage("failure adapted").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "fallback_value", fields["policy"])
	assert.Equal(t, "parse failed", fields["error"])
	assert.NotEmpty(t, fields["id"])
	assert.NotContains(t, fields, "recovered")
}

func TestLogger_RecordsRecoveredPanic(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)
	f := throwing.Func0[int](func() (int, error) { panic("boom") }).
		IgnoreAll(adapt.WithObserver(Logger(zap.New(core))))

	assert.Equal(t, 0, f.Apply())
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "boom", logs.All()[0].ContextMap()["recovered"])
}

func TestLogger_NilDiscards(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		Logger(nil).Observe(adapt.Event{Policy: adapt.Rethrow, Err: errParse})
	})
}

func TestMetrics_CountsByPolicyAndKind(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	opt := adapt.WithObserver(m)
	throwing.Of1(parse).OrReturn(0, opt).Apply("")
	throwing.Of1(parse).OrReturn(0, opt).Apply("")
	throwing.Of1(parse).IgnoreAll(opt).Apply("")
	throwing.Of1(func(string) (int, error) { panic("boom") }).IgnoreAll(opt).Apply("x")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.failures.WithLabelValues("fallback_value", KindDeclared)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues("ignore_all", KindDeclared)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues("ignore_all", KindPanic)))
	assert.Equal(t, 3, testutil.CollectAndCount(m.failures))
}

func TestMetrics_DuplicateRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	var already prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &already)
}

func TestMulti_FansOutInOrder(t *testing.T) {
	t.Parallel()

	var order []string
	first := adapt.ObserverFunc(func(adapt.Event) { order = append(order, "first") })
	second := adapt.ObserverFunc(func(adapt.Event) { order = append(order, "second") })

	Multi(first, nil, second).Observe(adapt.Event{Policy: adapt.IgnoreChecked})
	assert.Equal(t, []string{"first", "second"}, order)
}
