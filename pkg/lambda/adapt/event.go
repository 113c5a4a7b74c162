package adapt

import (
	"time"

	"github.com/google/uuid"
)

// Event describes one failure handled by a policy. Callers cannot tell from
// the adapted call alone whether a failure was swallowed, so observers are
// the only record of it.
type Event struct {
	ID        uuid.UUID
	Policy    Policy
	Err       error
	Recovered any
	At        time.Time
}

type Observer interface {
	Observe(e Event)
}

type ObserverFunc func(e Event)

func (f ObserverFunc) Observe(e Event) {
	f(e)
}

func (o Options) notify(policy Policy, err error, recovered any) {
	if o.Observer == nil {
		return
	}
	o.Observer.Observe(Event{
		ID:        uuid.New(),
		Policy:    policy,
		Err:       err,
		Recovered: recovered,
		At:        time.Now().UTC(),
	})
}
