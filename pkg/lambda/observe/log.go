package observe

import (
	"go.uber.org/zap"

	"github.com/ib-77/lambda3/pkg/lambda/adapt"
)

// Logger returns an observer that writes each event at warn level. A nil
// logger discards events.
func Logger(logger *zap.Logger) adapt.Observer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return adapt.ObserverFunc(func(e adapt.Event) {
		fields := []zap.Field{
			zap.String("id", e.ID.String()),
			zap.Stringer("policy", e.Policy),
			zap.Time("at", e.At),
		}
		if e.Err != nil {
			fields = append(fields, zap.Error(e.Err))
		}
		if e.Recovered != nil && e.Err == nil {
			fields = append(fields, zap.Any("recovered", e.Recovered))
		}
		logger.Warn("failure adapted", fields...)
	})
}

// Multi fans an event out to every non-nil observer, in order.
func Multi(observers ...adapt.Observer) adapt.Observer {
	return adapt.ObserverFunc(func(e adapt.Event) {
		for _, o := range observers {
			if o != nil {
				o.Observe(e)
			}
		}
	})
}
