package observe

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ib-77/lambda3/pkg/lambda/adapt"
)

const (
	KindDeclared = "declared"
	KindPanic    = "panic"
)

// Metrics counts adapted failures by policy and kind. The counter lives in
// the registry it was registered with.
type Metrics struct {
	failures *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lambda",
			Name:      "adapted_failures_total",
			Help:      "Failures handled by a failure-adaptation policy.",
		}, []string{"policy", "kind"}),
	}
	if err := reg.Register(m.failures); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) Observe(e adapt.Event) {
	kind := KindDeclared
	if e.Recovered != nil {
		kind = KindPanic
	}
	m.failures.WithLabelValues(e.Policy.String(), kind).Inc()
}

var _ adapt.Observer = (*Metrics)(nil)
